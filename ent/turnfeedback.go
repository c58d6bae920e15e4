// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vibemonitor/rca/ent/chatturn"
	"github.com/vibemonitor/rca/ent/turnfeedback"
)

// TurnFeedback is the model entity for the TurnFeedback schema.
type TurnFeedback struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TurnID holds the value of the "turn_id" field.
	TurnID string `json:"turn_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// +1 or -1
	Score int `json:"score,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TurnFeedbackQuery when eager-loading is set.
	Edges        TurnFeedbackEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TurnFeedbackEdges holds the relations/edges for other nodes in the graph.
type TurnFeedbackEdges struct {
	// Turn holds the value of the turn edge.
	Turn *ChatTurn `json:"turn,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TurnOrErr returns the Turn value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TurnFeedbackEdges) TurnOrErr() (*ChatTurn, error) {
	if e.Turn != nil {
		return e.Turn, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: chatturn.Label}
	}
	return nil, &NotLoadedError{edge: "turn"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TurnFeedback) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case turnfeedback.FieldScore:
			values[i] = new(sql.NullInt64)
		case turnfeedback.FieldID, turnfeedback.FieldTurnID, turnfeedback.FieldUserID:
			values[i] = new(sql.NullString)
		case turnfeedback.FieldCreatedAt, turnfeedback.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TurnFeedback fields.
func (_m *TurnFeedback) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case turnfeedback.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case turnfeedback.FieldTurnID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field turn_id", values[i])
			} else if value.Valid {
				_m.TurnID = value.String
			}
		case turnfeedback.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case turnfeedback.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case turnfeedback.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case turnfeedback.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the TurnFeedback.
// This includes values selected through modifiers, order, etc.
func (_m *TurnFeedback) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTurn queries the "turn" edge of the TurnFeedback entity.
func (_m *TurnFeedback) QueryTurn() *ChatTurnQuery {
	return NewTurnFeedbackClient(_m.config).QueryTurn(_m)
}

// Update returns a builder for updating this TurnFeedback.
// Note that you need to call TurnFeedback.Unwrap() before calling this method if this TurnFeedback
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TurnFeedback) Update() *TurnFeedbackUpdateOne {
	return NewTurnFeedbackClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TurnFeedback entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TurnFeedback) Unwrap() *TurnFeedback {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TurnFeedback is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TurnFeedback) String() string {
	var builder strings.Builder
	builder.WriteString("TurnFeedback(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("turn_id=")
	builder.WriteString(_m.TurnID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TurnFeedbacks is a parsable slice of TurnFeedback.
type TurnFeedbacks []*TurnFeedback
