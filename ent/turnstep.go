// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vibemonitor/rca/ent/chatturn"
	"github.com/vibemonitor/rca/ent/turnstep"
)

// TurnStep is the model entity for the TurnStep schema.
type TurnStep struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TurnID holds the value of the "turn_id" field.
	TurnID string `json:"turn_id,omitempty"`
	// StepType holds the value of the "step_type" field.
	StepType turnstep.StepType `json:"step_type,omitempty"`
	// Set for tool_call steps
	ToolName *string `json:"tool_name,omitempty"`
	// Content holds the value of the "content" field.
	Content *string `json:"content,omitempty"`
	// StepStatus holds the value of the "step_status" field.
	StepStatus turnstep.StepStatus `json:"step_status,omitempty"`
	// Strictly increasing within a turn, starting at 1, gap-free
	Sequence int `json:"sequence,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TurnStepQuery when eager-loading is set.
	Edges        TurnStepEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TurnStepEdges holds the relations/edges for other nodes in the graph.
type TurnStepEdges struct {
	// Turn holds the value of the turn edge.
	Turn *ChatTurn `json:"turn,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TurnOrErr returns the Turn value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TurnStepEdges) TurnOrErr() (*ChatTurn, error) {
	if e.Turn != nil {
		return e.Turn, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: chatturn.Label}
	}
	return nil, &NotLoadedError{edge: "turn"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TurnStep) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case turnstep.FieldSequence:
			values[i] = new(sql.NullInt64)
		case turnstep.FieldID, turnstep.FieldTurnID, turnstep.FieldStepType, turnstep.FieldToolName, turnstep.FieldContent, turnstep.FieldStepStatus:
			values[i] = new(sql.NullString)
		case turnstep.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TurnStep fields.
func (_m *TurnStep) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case turnstep.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case turnstep.FieldTurnID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field turn_id", values[i])
			} else if value.Valid {
				_m.TurnID = value.String
			}
		case turnstep.FieldStepType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step_type", values[i])
			} else if value.Valid {
				_m.StepType = turnstep.StepType(value.String)
			}
		case turnstep.FieldToolName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool_name", values[i])
			} else if value.Valid {
				_m.ToolName = new(string)
				*_m.ToolName = value.String
			}
		case turnstep.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = new(string)
				*_m.Content = value.String
			}
		case turnstep.FieldStepStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step_status", values[i])
			} else if value.Valid {
				_m.StepStatus = turnstep.StepStatus(value.String)
			}
		case turnstep.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = int(value.Int64)
			}
		case turnstep.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TurnStep.
// This includes values selected through modifiers, order, etc.
func (_m *TurnStep) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTurn queries the "turn" edge of the TurnStep entity.
func (_m *TurnStep) QueryTurn() *ChatTurnQuery {
	return NewTurnStepClient(_m.config).QueryTurn(_m)
}

// Update returns a builder for updating this TurnStep.
// Note that you need to call TurnStep.Unwrap() before calling this method if this TurnStep
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TurnStep) Update() *TurnStepUpdateOne {
	return NewTurnStepClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TurnStep entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TurnStep) Unwrap() *TurnStep {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TurnStep is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TurnStep) String() string {
	var builder strings.Builder
	builder.WriteString("TurnStep(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("turn_id=")
	builder.WriteString(_m.TurnID)
	builder.WriteString(", ")
	builder.WriteString("step_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepType))
	builder.WriteString(", ")
	if v := _m.ToolName; v != nil {
		builder.WriteString("tool_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Content; v != nil {
		builder.WriteString("content=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("step_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepStatus))
	builder.WriteString(", ")
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TurnSteps is a parsable slice of TurnStep.
type TurnSteps []*TurnStep
