package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Job holds the schema definition for the Job entity.
// The durable unit of work: one job per turn, claimed from the queue by a
// worker, retried with exponential backoff on transient failure.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.String("workspace_id").
			Immutable(),
		field.String("turn_id").
			Unique().
			Immutable(),
		field.Enum("source").
			Values("web", "slack", "other").
			Default("web"),
		field.Enum("status").
			Values("queued", "running", "waiting_input", "completed", "failed").
			Default("queued"),
		field.Int("priority").
			Default(0).
			Comment("Higher claims first"),
		field.Int("retries").
			Default(0),
		field.Int("max_retries").
			Default(3),
		field.Time("backoff_until").
			Optional().
			Nillable().
			Comment("Set only while status=queued; the claim query skips jobs still backing off"),
		field.JSON("requested_context", map[string]interface{}{}).
			Optional().
			Comment("Opaque bag: query, user id, integration hints"),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("finished_at").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For stale-running detection"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Job.
func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("turn", ChatTurn.Type).
			Ref("job").
			Field("turn_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "status"),
		index.Fields("status", "backoff_until"),
		index.Fields("status", "last_heartbeat_at"),
		index.Fields("status", "priority", "created_at"),
	}
}
