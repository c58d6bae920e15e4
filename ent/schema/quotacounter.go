package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuotaCounter holds the schema definition for the QuotaCounter entity.
// One row per (workspace, resource, window); incremented atomically by the
// quota gate with an upsert that refuses to pass the limit.
type QuotaCounter struct {
	ent.Schema
}

// Fields of the QuotaCounter.
func (QuotaCounter) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("quota_counter_id").
			Unique().
			Immutable(),
		field.String("workspace_id").
			Immutable(),
		field.String("resource").
			Comment("Counted resource, e.g. rca_turns"),
		field.String("window_key").
			Comment("UTC day key, YYYY-MM-DD"),
		field.Int("count").
			Default(0),
		field.Int("limit_value").
			Comment("Effective limit when the row was created"),
		field.Time("reset_at").
			Comment("Next UTC midnight"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the QuotaCounter.
func (QuotaCounter) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "resource", "window_key").
			Unique(),
	}
}
