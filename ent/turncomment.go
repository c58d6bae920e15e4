// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vibemonitor/rca/ent/chatturn"
	"github.com/vibemonitor/rca/ent/turncomment"
)

// TurnComment is the model entity for the TurnComment schema.
type TurnComment struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TurnID holds the value of the "turn_id" field.
	TurnID string `json:"turn_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Body holds the value of the "body" field.
	Body string `json:"body,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TurnCommentQuery when eager-loading is set.
	Edges        TurnCommentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TurnCommentEdges holds the relations/edges for other nodes in the graph.
type TurnCommentEdges struct {
	// Turn holds the value of the turn edge.
	Turn *ChatTurn `json:"turn,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TurnOrErr returns the Turn value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TurnCommentEdges) TurnOrErr() (*ChatTurn, error) {
	if e.Turn != nil {
		return e.Turn, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: chatturn.Label}
	}
	return nil, &NotLoadedError{edge: "turn"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TurnComment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case turncomment.FieldID, turncomment.FieldTurnID, turncomment.FieldUserID, turncomment.FieldBody:
			values[i] = new(sql.NullString)
		case turncomment.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TurnComment fields.
func (_m *TurnComment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case turncomment.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case turncomment.FieldTurnID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field turn_id", values[i])
			} else if value.Valid {
				_m.TurnID = value.String
			}
		case turncomment.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case turncomment.FieldBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body", values[i])
			} else if value.Valid {
				_m.Body = value.String
			}
		case turncomment.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the TurnComment.
// This includes values selected through modifiers, order, etc.
func (_m *TurnComment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTurn queries the "turn" edge of the TurnComment entity.
func (_m *TurnComment) QueryTurn() *ChatTurnQuery {
	return NewTurnCommentClient(_m.config).QueryTurn(_m)
}

// Update returns a builder for updating this TurnComment.
// Note that you need to call TurnComment.Unwrap() before calling this method if this TurnComment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TurnComment) Update() *TurnCommentUpdateOne {
	return NewTurnCommentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TurnComment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TurnComment) Unwrap() *TurnComment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TurnComment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TurnComment) String() string {
	var builder strings.Builder
	builder.WriteString("TurnComment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("turn_id=")
	builder.WriteString(_m.TurnID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("body=")
	builder.WriteString(_m.Body)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TurnComments is a parsable slice of TurnComment.
type TurnComments []*TurnComment
