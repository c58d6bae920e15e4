package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TurnStep holds the schema definition for the TurnStep entity.
// One observable event within a turn. Steps are the durable source of truth
// for the stream: every frame a subscriber sees is either a persisted step or
// a terminal frame derived from the turn row.
type TurnStep struct {
	ent.Schema
}

// Fields of the TurnStep.
func (TurnStep) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("step_id").
			Unique().
			Immutable(),
		field.String("turn_id").
			Immutable(),
		field.Enum("step_type").
			Values("status", "tool_call", "thinking"),
		field.String("tool_name").
			Optional().
			Nillable().
			Comment("Set for tool_call steps"),
		field.Text("content").
			Optional().
			Nillable(),
		field.Enum("step_status").
			Values("pending", "running", "completed", "failed").
			Default("pending"),
		field.Int("sequence").
			Comment("Strictly increasing within a turn, starting at 1, gap-free"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TurnStep.
func (TurnStep) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("turn", ChatTurn.Type).
			Ref("steps").
			Field("turn_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TurnStep.
func (TurnStep) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("turn_id"),
		index.Fields("turn_id", "sequence").
			Unique(),
	}
}
