package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TurnFeedback holds the schema definition for the TurnFeedback entity.
// Thumbs up/down on a completed turn, one row per (turn, user); a repeat
// vote overwrites the score.
type TurnFeedback struct {
	ent.Schema
}

// Fields of the TurnFeedback.
func (TurnFeedback) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("feedback_id").
			Unique().
			Immutable(),
		field.String("turn_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Int("score").
			Comment("+1 or -1"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the TurnFeedback.
func (TurnFeedback) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("turn", ChatTurn.Type).
			Ref("feedback").
			Field("turn_id").
			Unique().
			Required().
			Immutable().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the TurnFeedback.
func (TurnFeedback) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("turn_id", "user_id").
			Unique(),
	}
}
