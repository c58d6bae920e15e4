package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Integration holds the schema definition for the Integration entity.
// A workspace-scoped connection to an observability or code provider.
// Credentials are AES-GCM encrypted at rest.
type Integration struct {
	ent.Schema
}

// Fields of the Integration.
func (Integration) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("integration_id").
			Unique().
			Immutable(),
		field.String("workspace_id").
			Immutable(),
		field.Enum("provider").
			Values("grafana", "datadog", "cloudwatch", "newrelic", "github"),
		field.String("name").
			Comment("Display name shown in tool descriptions"),
		field.Bytes("encrypted_credentials").
			Sensitive(),
		field.JSON("settings", map[string]interface{}{}).
			Optional().
			Comment("Non-secret provider settings: base URL, region, default repo"),
		field.Bool("enabled").
			Default(true),
		field.Enum("health_status").
			Values("unknown", "healthy", "unhealthy").
			Default("unknown"),
		field.Time("last_health_check_at").
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

// Indexes of the Integration.
func (Integration) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id"),
		index.Fields("workspace_id", "provider"),
	}
}
