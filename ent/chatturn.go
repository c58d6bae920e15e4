// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vibemonitor/rca/ent/chatsession"
	"github.com/vibemonitor/rca/ent/chatturn"
	"github.com/vibemonitor/rca/ent/job"
)

// ChatTurn is the model entity for the ChatTurn schema.
type ChatTurn struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// UserMessage holds the value of the "user_message" field.
	UserMessage string `json:"user_message,omitempty"`
	// Filled when processing completes
	FinalResponse *string `json:"final_response,omitempty"`
	// Status holds the value of the "status" field.
	Status chatturn.Status `json:"status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ChatTurnQuery when eager-loading is set.
	Edges        ChatTurnEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ChatTurnEdges holds the relations/edges for other nodes in the graph.
type ChatTurnEdges struct {
	// Session holds the value of the session edge.
	Session *ChatSession `json:"session,omitempty"`
	// Steps holds the value of the steps edge.
	Steps []*TurnStep `json:"steps,omitempty"`
	// Job holds the value of the job edge.
	Job *Job `json:"job,omitempty"`
	// Feedback holds the value of the feedback edge.
	Feedback []*TurnFeedback `json:"feedback,omitempty"`
	// Comments holds the value of the comments edge.
	Comments []*TurnComment `json:"comments,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ChatTurnEdges) SessionOrErr() (*ChatSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: chatsession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// StepsOrErr returns the Steps value or an error if the edge
// was not loaded in eager-loading.
func (e ChatTurnEdges) StepsOrErr() ([]*TurnStep, error) {
	if e.loadedTypes[1] {
		return e.Steps, nil
	}
	return nil, &NotLoadedError{edge: "steps"}
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ChatTurnEdges) JobOrErr() (*Job, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: job.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// FeedbackOrErr returns the Feedback value or an error if the edge
// was not loaded in eager-loading.
func (e ChatTurnEdges) FeedbackOrErr() ([]*TurnFeedback, error) {
	if e.loadedTypes[3] {
		return e.Feedback, nil
	}
	return nil, &NotLoadedError{edge: "feedback"}
}

// CommentsOrErr returns the Comments value or an error if the edge
// was not loaded in eager-loading.
func (e ChatTurnEdges) CommentsOrErr() ([]*TurnComment, error) {
	if e.loadedTypes[4] {
		return e.Comments, nil
	}
	return nil, &NotLoadedError{edge: "comments"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ChatTurn) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case chatturn.FieldID, chatturn.FieldSessionID, chatturn.FieldUserMessage, chatturn.FieldFinalResponse, chatturn.FieldStatus, chatturn.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case chatturn.FieldCreatedAt, chatturn.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ChatTurn fields.
func (_m *ChatTurn) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case chatturn.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case chatturn.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case chatturn.FieldUserMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_message", values[i])
			} else if value.Valid {
				_m.UserMessage = value.String
			}
		case chatturn.FieldFinalResponse:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field final_response", values[i])
			} else if value.Valid {
				_m.FinalResponse = new(string)
				*_m.FinalResponse = value.String
			}
		case chatturn.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = chatturn.Status(value.String)
			}
		case chatturn.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case chatturn.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case chatturn.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ChatTurn.
// This includes values selected through modifiers, order, etc.
func (_m *ChatTurn) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the ChatTurn entity.
func (_m *ChatTurn) QuerySession() *ChatSessionQuery {
	return NewChatTurnClient(_m.config).QuerySession(_m)
}

// QuerySteps queries the "steps" edge of the ChatTurn entity.
func (_m *ChatTurn) QuerySteps() *TurnStepQuery {
	return NewChatTurnClient(_m.config).QuerySteps(_m)
}

// QueryJob queries the "job" edge of the ChatTurn entity.
func (_m *ChatTurn) QueryJob() *JobQuery {
	return NewChatTurnClient(_m.config).QueryJob(_m)
}

// QueryFeedback queries the "feedback" edge of the ChatTurn entity.
func (_m *ChatTurn) QueryFeedback() *TurnFeedbackQuery {
	return NewChatTurnClient(_m.config).QueryFeedback(_m)
}

// QueryComments queries the "comments" edge of the ChatTurn entity.
func (_m *ChatTurn) QueryComments() *TurnCommentQuery {
	return NewChatTurnClient(_m.config).QueryComments(_m)
}

// Update returns a builder for updating this ChatTurn.
// Note that you need to call ChatTurn.Unwrap() before calling this method if this ChatTurn
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ChatTurn) Update() *ChatTurnUpdateOne {
	return NewChatTurnClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ChatTurn entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ChatTurn) Unwrap() *ChatTurn {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ChatTurn is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ChatTurn) String() string {
	var builder strings.Builder
	builder.WriteString("ChatTurn(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("user_message=")
	builder.WriteString(_m.UserMessage)
	builder.WriteString(", ")
	if v := _m.FinalResponse; v != nil {
		builder.WriteString("final_response=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ChatTurns is a parsable slice of ChatTurn.
type ChatTurns []*ChatTurn
