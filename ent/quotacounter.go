// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vibemonitor/rca/ent/quotacounter"
)

// QuotaCounter is the model entity for the QuotaCounter schema.
type QuotaCounter struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID string `json:"workspace_id,omitempty"`
	// Counted resource, e.g. rca_turns
	Resource string `json:"resource,omitempty"`
	// UTC day key, YYYY-MM-DD
	WindowKey string `json:"window_key,omitempty"`
	// Count holds the value of the "count" field.
	Count int `json:"count,omitempty"`
	// Effective limit when the row was created
	LimitValue int `json:"limit_value,omitempty"`
	// Next UTC midnight
	ResetAt time.Time `json:"reset_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuotaCounter) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quotacounter.FieldCount, quotacounter.FieldLimitValue:
			values[i] = new(sql.NullInt64)
		case quotacounter.FieldID, quotacounter.FieldWorkspaceID, quotacounter.FieldResource, quotacounter.FieldWindowKey:
			values[i] = new(sql.NullString)
		case quotacounter.FieldResetAt, quotacounter.FieldCreatedAt, quotacounter.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuotaCounter fields.
func (_m *QuotaCounter) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quotacounter.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case quotacounter.FieldWorkspaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value.Valid {
				_m.WorkspaceID = value.String
			}
		case quotacounter.FieldResource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resource", values[i])
			} else if value.Valid {
				_m.Resource = value.String
			}
		case quotacounter.FieldWindowKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field window_key", values[i])
			} else if value.Valid {
				_m.WindowKey = value.String
			}
		case quotacounter.FieldCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field count", values[i])
			} else if value.Valid {
				_m.Count = int(value.Int64)
			}
		case quotacounter.FieldLimitValue:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field limit_value", values[i])
			} else if value.Valid {
				_m.LimitValue = int(value.Int64)
			}
		case quotacounter.FieldResetAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field reset_at", values[i])
			} else if value.Valid {
				_m.ResetAt = value.Time
			}
		case quotacounter.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case quotacounter.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the QuotaCounter.
// This includes values selected through modifiers, order, etc.
func (_m *QuotaCounter) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QuotaCounter.
// Note that you need to call QuotaCounter.Unwrap() before calling this method if this QuotaCounter
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuotaCounter) Update() *QuotaCounterUpdateOne {
	return NewQuotaCounterClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuotaCounter entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuotaCounter) Unwrap() *QuotaCounter {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuotaCounter is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuotaCounter) String() string {
	var builder strings.Builder
	builder.WriteString("QuotaCounter(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workspace_id=")
	builder.WriteString(_m.WorkspaceID)
	builder.WriteString(", ")
	builder.WriteString("resource=")
	builder.WriteString(_m.Resource)
	builder.WriteString(", ")
	builder.WriteString("window_key=")
	builder.WriteString(_m.WindowKey)
	builder.WriteString(", ")
	builder.WriteString("count=")
	builder.WriteString(fmt.Sprintf("%v", _m.Count))
	builder.WriteString(", ")
	builder.WriteString("limit_value=")
	builder.WriteString(fmt.Sprintf("%v", _m.LimitValue))
	builder.WriteString(", ")
	builder.WriteString("reset_at=")
	builder.WriteString(_m.ResetAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// QuotaCounters is a parsable slice of QuotaCounter.
type QuotaCounters []*QuotaCounter
