package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMConfig holds the schema definition for the LLMConfig entity.
// Per-workspace bring-your-own-LLM settings. At most one row per workspace;
// workspaces without a row use the platform default model.
type LLMConfig struct {
	ent.Schema
}

// Fields of the LLMConfig.
func (LLMConfig) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("llm_config_id").
			Unique().
			Immutable(),
		field.String("workspace_id").
			Unique().
			Immutable(),
		field.Enum("provider").
			Values("openai", "azure_openai", "gemini"),
		field.String("model").
			Comment("Must be on the provider's model allowlist"),
		field.Bytes("encrypted_api_key").
			Sensitive(),
		field.String("base_url").
			Optional().
			Nillable().
			Comment("Azure endpoint or OpenAI-compatible gateway URL"),
		field.String("api_version").
			Optional().
			Nillable(),
		field.Bool("enabled").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the LLMConfig.
func (LLMConfig) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id").
			Unique(),
	}
}
