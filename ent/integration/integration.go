// Code generated by ent, DO NOT EDIT.

package integration

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the integration type in the database.
	Label = "integration"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "integration_id"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldEncryptedCredentials holds the string denoting the encrypted_credentials field in the database.
	FieldEncryptedCredentials = "encrypted_credentials"
	// FieldSettings holds the string denoting the settings field in the database.
	FieldSettings = "settings"
	// FieldEnabled holds the string denoting the enabled field in the database.
	FieldEnabled = "enabled"
	// FieldHealthStatus holds the string denoting the health_status field in the database.
	FieldHealthStatus = "health_status"
	// FieldLastHealthCheckAt holds the string denoting the last_health_check_at field in the database.
	FieldLastHealthCheckAt = "last_health_check_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the integration in the database.
	Table = "integrations"
)

// Columns holds all SQL columns for integration fields.
var Columns = []string{
	FieldID,
	FieldWorkspaceID,
	FieldProvider,
	FieldName,
	FieldEncryptedCredentials,
	FieldSettings,
	FieldEnabled,
	FieldHealthStatus,
	FieldLastHealthCheckAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultEnabled holds the default value on creation for the "enabled" field.
	DefaultEnabled bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Provider defines the type for the "provider" enum field.
type Provider string

// Provider values.
const (
	ProviderGrafana    Provider = "grafana"
	ProviderDatadog    Provider = "datadog"
	ProviderCloudwatch Provider = "cloudwatch"
	ProviderNewrelic   Provider = "newrelic"
	ProviderGithub     Provider = "github"
)

func (pr Provider) String() string {
	return string(pr)
}

// ProviderValidator is a validator for the "provider" field enum values. It is called by the builders before save.
func ProviderValidator(pr Provider) error {
	switch pr {
	case ProviderGrafana, ProviderDatadog, ProviderCloudwatch, ProviderNewrelic, ProviderGithub:
		return nil
	default:
		return fmt.Errorf("integration: invalid enum value for provider field: %q", pr)
	}
}

// HealthStatus defines the type for the "health_status" enum field.
type HealthStatus string

// HealthStatusUnknown is the default value of the HealthStatus enum.
const DefaultHealthStatus = HealthStatusUnknown

// HealthStatus values.
const (
	HealthStatusUnknown   HealthStatus = "unknown"
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

func (hs HealthStatus) String() string {
	return string(hs)
}

// HealthStatusValidator is a validator for the "health_status" field enum values. It is called by the builders before save.
func HealthStatusValidator(hs HealthStatus) error {
	switch hs {
	case HealthStatusUnknown, HealthStatusHealthy, HealthStatusUnhealthy:
		return nil
	default:
		return fmt.Errorf("integration: invalid enum value for health_status field: %q", hs)
	}
}

// OrderOption defines the ordering options for the Integration queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkspaceID orders the results by the workspace_id field.
func ByWorkspaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceID, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByEnabled orders the results by the enabled field.
func ByEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnabled, opts...).ToFunc()
}

// ByHealthStatus orders the results by the health_status field.
func ByHealthStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHealthStatus, opts...).ToFunc()
}

// ByLastHealthCheckAt orders the results by the last_health_check_at field.
func ByLastHealthCheckAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHealthCheckAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
