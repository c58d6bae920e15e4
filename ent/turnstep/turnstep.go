// Code generated by ent, DO NOT EDIT.

package turnstep

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the turnstep type in the database.
	Label = "turn_step"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "step_id"
	// FieldTurnID holds the string denoting the turn_id field in the database.
	FieldTurnID = "turn_id"
	// FieldStepType holds the string denoting the step_type field in the database.
	FieldStepType = "step_type"
	// FieldToolName holds the string denoting the tool_name field in the database.
	FieldToolName = "tool_name"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldStepStatus holds the string denoting the step_status field in the database.
	FieldStepStatus = "step_status"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeTurn holds the string denoting the turn edge name in mutations.
	EdgeTurn = "turn"
	// ChatTurnFieldID holds the string denoting the ID field of the ChatTurn.
	ChatTurnFieldID = "turn_id"
	// Table holds the table name of the turnstep in the database.
	Table = "turn_steps"
	// TurnTable is the table that holds the turn relation/edge.
	TurnTable = "turn_steps"
	// TurnInverseTable is the table name for the ChatTurn entity.
	// It exists in this package in order to avoid circular dependency with the "chatturn" package.
	TurnInverseTable = "chat_turns"
	// TurnColumn is the table column denoting the turn relation/edge.
	TurnColumn = "turn_id"
)

// Columns holds all SQL columns for turnstep fields.
var Columns = []string{
	FieldID,
	FieldTurnID,
	FieldStepType,
	FieldToolName,
	FieldContent,
	FieldStepStatus,
	FieldSequence,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// StepType defines the type for the "step_type" enum field.
type StepType string

// StepType values.
const (
	StepTypeStatus   StepType = "status"
	StepTypeToolCall StepType = "tool_call"
	StepTypeThinking StepType = "thinking"
)

func (st StepType) String() string {
	return string(st)
}

// StepTypeValidator is a validator for the "step_type" field enum values. It is called by the builders before save.
func StepTypeValidator(st StepType) error {
	switch st {
	case StepTypeStatus, StepTypeToolCall, StepTypeThinking:
		return nil
	default:
		return fmt.Errorf("turnstep: invalid enum value for step_type field: %q", st)
	}
}

// StepStatus defines the type for the "step_status" enum field.
type StepStatus string

// StepStatusPending is the default value of the StepStatus enum.
const DefaultStepStatus = StepStatusPending

// StepStatus values.
const (
	StepStatusPending   StepStatus = "pending"
	StepStatusRunning   StepStatus = "running"
	StepStatusCompleted StepStatus = "completed"
	StepStatusFailed    StepStatus = "failed"
)

func (ss StepStatus) String() string {
	return string(ss)
}

// StepStatusValidator is a validator for the "step_status" field enum values. It is called by the builders before save.
func StepStatusValidator(ss StepStatus) error {
	switch ss {
	case StepStatusPending, StepStatusRunning, StepStatusCompleted, StepStatusFailed:
		return nil
	default:
		return fmt.Errorf("turnstep: invalid enum value for step_status field: %q", ss)
	}
}

// OrderOption defines the ordering options for the TurnStep queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTurnID orders the results by the turn_id field.
func ByTurnID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTurnID, opts...).ToFunc()
}

// ByStepType orders the results by the step_type field.
func ByStepType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepType, opts...).ToFunc()
}

// ByToolName orders the results by the tool_name field.
func ByToolName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToolName, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByStepStatus orders the results by the step_status field.
func ByStepStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepStatus, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByTurnField orders the results by turn field.
func ByTurnField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTurnStep(), sql.OrderByField(field, opts...))
	}
}
func newTurnStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TurnInverseTable, ChatTurnFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TurnTable, TurnColumn),
	)
}
