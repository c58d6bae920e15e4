package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatSession holds the schema definition for the ChatSession entity.
// A session is one conversation; every turn belongs to exactly one session.
type ChatSession struct {
	ent.Schema
}

// Fields of the ChatSession.
func (ChatSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("workspace_id").
			Immutable().
			Comment("Tenant boundary — no cross-workspace reads"),
		field.String("user_id").
			Optional().
			Nillable().
			Comment("Owning user; empty for bot-originated sessions"),
		field.Enum("origin").
			Values("web", "slack", "other").
			Default("web"),
		field.String("title").
			Optional().
			Nillable().
			Comment("Defaults to a sanitized prefix of the first message"),

		// External thread coordinates for chat-platform sessions.
		field.String("external_channel_id").
			Optional().
			Nillable(),
		field.String("external_thread_ts").
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

// Edges of the ChatSession.
func (ChatSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("turns", ChatTurn.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ChatSession.
func (ChatSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id"),
		index.Fields("workspace_id", "user_id"),
		index.Fields("workspace_id", "created_at"),

		// One session per external thread for chat-platform origins.
		index.Fields("workspace_id", "origin", "external_channel_id", "external_thread_ts").
			Annotations(entsql.IndexWhere("origin = 'slack'")).
			Unique(),
	}
}
