// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vibemonitor/rca/ent/llmconfig"
)

// LLMConfig is the model entity for the LLMConfig schema.
type LLMConfig struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID string `json:"workspace_id,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider llmconfig.Provider `json:"provider,omitempty"`
	// Must be on the provider's model allowlist
	Model string `json:"model,omitempty"`
	// EncryptedAPIKey holds the value of the "encrypted_api_key" field.
	EncryptedAPIKey []byte `json:"-"`
	// Azure endpoint or OpenAI-compatible gateway URL
	BaseURL *string `json:"base_url,omitempty"`
	// APIVersion holds the value of the "api_version" field.
	APIVersion *string `json:"api_version,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LLMConfig) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case llmconfig.FieldEncryptedAPIKey:
			values[i] = new([]byte)
		case llmconfig.FieldEnabled:
			values[i] = new(sql.NullBool)
		case llmconfig.FieldID, llmconfig.FieldWorkspaceID, llmconfig.FieldProvider, llmconfig.FieldModel, llmconfig.FieldBaseURL, llmconfig.FieldAPIVersion:
			values[i] = new(sql.NullString)
		case llmconfig.FieldCreatedAt, llmconfig.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LLMConfig fields.
func (_m *LLMConfig) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case llmconfig.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case llmconfig.FieldWorkspaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value.Valid {
				_m.WorkspaceID = value.String
			}
		case llmconfig.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = llmconfig.Provider(value.String)
			}
		case llmconfig.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case llmconfig.FieldEncryptedAPIKey:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field encrypted_api_key", values[i])
			} else if value != nil {
				_m.EncryptedAPIKey = *value
			}
		case llmconfig.FieldBaseURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field base_url", values[i])
			} else if value.Valid {
				_m.BaseURL = new(string)
				*_m.BaseURL = value.String
			}
		case llmconfig.FieldAPIVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field api_version", values[i])
			} else if value.Valid {
				_m.APIVersion = new(string)
				*_m.APIVersion = value.String
			}
		case llmconfig.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case llmconfig.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case llmconfig.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LLMConfig.
// This includes values selected through modifiers, order, etc.
func (_m *LLMConfig) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LLMConfig.
// Note that you need to call LLMConfig.Unwrap() before calling this method if this LLMConfig
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LLMConfig) Update() *LLMConfigUpdateOne {
	return NewLLMConfigClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LLMConfig entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LLMConfig) Unwrap() *LLMConfig {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LLMConfig is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LLMConfig) String() string {
	var builder strings.Builder
	builder.WriteString("LLMConfig(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workspace_id=")
	builder.WriteString(_m.WorkspaceID)
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(fmt.Sprintf("%v", _m.Provider))
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("encrypted_api_key=<sensitive>")
	builder.WriteString(", ")
	if v := _m.BaseURL; v != nil {
		builder.WriteString("base_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.APIVersion; v != nil {
		builder.WriteString("api_version=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LLMConfigs is a parsable slice of LLMConfig.
type LLMConfigs []*LLMConfig
