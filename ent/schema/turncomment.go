package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TurnComment holds the schema definition for the TurnComment entity.
// Free-text annotation on a turn; unlike feedback, a user may leave many.
type TurnComment struct {
	ent.Schema
}

// Fields of the TurnComment.
func (TurnComment) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("comment_id").
			Unique().
			Immutable(),
		field.String("turn_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Text("body").
			NotEmpty(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TurnComment.
func (TurnComment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("turn", ChatTurn.Type).
			Ref("comments").
			Field("turn_id").
			Unique().
			Required().
			Immutable().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the TurnComment.
func (TurnComment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("turn_id", "created_at"),
	}
}
