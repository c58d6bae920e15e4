// Code generated by ent, DO NOT EDIT.

package chatsession

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the chatsession type in the database.
	Label = "chat_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "session_id"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldOrigin holds the string denoting the origin field in the database.
	FieldOrigin = "origin"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldExternalChannelID holds the string denoting the external_channel_id field in the database.
	FieldExternalChannelID = "external_channel_id"
	// FieldExternalThreadTs holds the string denoting the external_thread_ts field in the database.
	FieldExternalThreadTs = "external_thread_ts"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeTurns holds the string denoting the turns edge name in mutations.
	EdgeTurns = "turns"
	// ChatTurnFieldID holds the string denoting the ID field of the ChatTurn.
	ChatTurnFieldID = "turn_id"
	// Table holds the table name of the chatsession in the database.
	Table = "chat_sessions"
	// TurnsTable is the table that holds the turns relation/edge.
	TurnsTable = "chat_turns"
	// TurnsInverseTable is the table name for the ChatTurn entity.
	// It exists in this package in order to avoid circular dependency with the "chatturn" package.
	TurnsInverseTable = "chat_turns"
	// TurnsColumn is the table column denoting the turns relation/edge.
	TurnsColumn = "session_id"
)

// Columns holds all SQL columns for chatsession fields.
var Columns = []string{
	FieldID,
	FieldWorkspaceID,
	FieldUserID,
	FieldOrigin,
	FieldTitle,
	FieldExternalChannelID,
	FieldExternalThreadTs,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Origin defines the type for the "origin" enum field.
type Origin string

// OriginWeb is the default value of the Origin enum.
const DefaultOrigin = OriginWeb

// Origin values.
const (
	OriginWeb   Origin = "web"
	OriginSlack Origin = "slack"
	OriginOther Origin = "other"
)

func (o Origin) String() string {
	return string(o)
}

// OriginValidator is a validator for the "origin" field enum values. It is called by the builders before save.
func OriginValidator(o Origin) error {
	switch o {
	case OriginWeb, OriginSlack, OriginOther:
		return nil
	default:
		return fmt.Errorf("chatsession: invalid enum value for origin field: %q", o)
	}
}

// OrderOption defines the ordering options for the ChatSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkspaceID orders the results by the workspace_id field.
func ByWorkspaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByOrigin orders the results by the origin field.
func ByOrigin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrigin, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByExternalChannelID orders the results by the external_channel_id field.
func ByExternalChannelID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalChannelID, opts...).ToFunc()
}

// ByExternalThreadTs orders the results by the external_thread_ts field.
func ByExternalThreadTs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalThreadTs, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTurnsCount orders the results by turns count.
func ByTurnsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTurnsStep(), opts...)
	}
}

// ByTurns orders the results by turns terms.
func ByTurns(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTurnsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newTurnsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TurnsInverseTable, ChatTurnFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TurnsTable, TurnsColumn),
	)
}
