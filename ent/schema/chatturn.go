package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatTurn holds the schema definition for the ChatTurn entity.
// One (question, answer) unit: the user message, the eventual final response,
// and the ordered steps produced while the answer was being worked out.
type ChatTurn struct {
	ent.Schema
}

// Fields of the ChatTurn.
func (ChatTurn) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("turn_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Text("user_message"),
		field.Text("final_response").
			Optional().
			Nillable().
			Comment("Filled when processing completes"),
		field.Enum("status").
			Values("pending", "processing", "completed", "failed").
			Default("pending"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the ChatTurn.
func (ChatTurn) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", ChatSession.Type).
			Ref("turns").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
		edge.To("steps", TurnStep.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("job", Job.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("feedback", TurnFeedback.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("comments", TurnComment.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ChatTurn.
func (ChatTurn) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("status"),
		index.Fields("session_id", "created_at"),
	}
}
