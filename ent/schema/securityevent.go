package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SecurityEvent holds the schema definition for the SecurityEvent entity.
// Audit trail for prompt-guard verdicts. Message previews are capped at
// write time so raw user input never lands here in full.
type SecurityEvent struct {
	ent.Schema
}

// Fields of the SecurityEvent.
func (SecurityEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("security_event_id").
			Unique().
			Immutable(),
		field.String("workspace_id").
			Immutable(),
		field.String("user_id").
			Optional().
			Nillable(),
		field.Enum("event_type").
			Values("prompt_injection", "guard_degraded"),
		field.String("message_preview").
			MaxLen(300),
		field.String("detail").
			Optional().
			Nillable().
			Comment("Guard rationale or degradation cause"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the SecurityEvent.
func (SecurityEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "created_at"),
		index.Fields("event_type"),
	}
}
