// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vibemonitor/rca/ent/chatsession"
	"github.com/vibemonitor/rca/ent/chatturn"
	"github.com/vibemonitor/rca/ent/integration"
	"github.com/vibemonitor/rca/ent/job"
	"github.com/vibemonitor/rca/ent/llmconfig"
	"github.com/vibemonitor/rca/ent/predicate"
	"github.com/vibemonitor/rca/ent/quotacounter"
	"github.com/vibemonitor/rca/ent/securityevent"
	"github.com/vibemonitor/rca/ent/turncomment"
	"github.com/vibemonitor/rca/ent/turnfeedback"
	"github.com/vibemonitor/rca/ent/turnstep"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeChatSession   = "ChatSession"
	TypeChatTurn      = "ChatTurn"
	TypeIntegration   = "Integration"
	TypeJob           = "Job"
	TypeLLMConfig     = "LLMConfig"
	TypeQuotaCounter  = "QuotaCounter"
	TypeSecurityEvent = "SecurityEvent"
	TypeTurnComment   = "TurnComment"
	TypeTurnFeedback  = "TurnFeedback"
	TypeTurnStep      = "TurnStep"
)

// ChatSessionMutation represents an operation that mutates the ChatSession nodes in the graph.
type ChatSessionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	workspace_id        *string
	user_id             *string
	origin              *chatsession.Origin
	title               *string
	external_channel_id *string
	external_thread_ts  *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	turns               map[string]struct{}
	removedturns        map[string]struct{}
	clearedturns        bool
	done                bool
	oldValue            func(context.Context) (*ChatSession, error)
	predicates          []predicate.ChatSession
}

var _ ent.Mutation = (*ChatSessionMutation)(nil)

// chatsessionOption allows management of the mutation configuration using functional options.
type chatsessionOption func(*ChatSessionMutation)

// newChatSessionMutation creates new mutation for the ChatSession entity.
func newChatSessionMutation(c config, op Op, opts ...chatsessionOption) *ChatSessionMutation {
	m := &ChatSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeChatSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatSessionID sets the ID field of the mutation.
func withChatSessionID(id string) chatsessionOption {
	return func(m *ChatSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *ChatSession
		)
		m.oldValue = func(ctx context.Context) (*ChatSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChatSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChatSession sets the old ChatSession of the mutation.
func withChatSession(node *ChatSession) chatsessionOption {
	return func(m *ChatSessionMutation) {
		m.oldValue = func(context.Context) (*ChatSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChatSession entities.
func (m *ChatSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChatSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *ChatSessionMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *ChatSessionMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *ChatSessionMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetUserID sets the "user_id" field.
func (m *ChatSessionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ChatSessionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *ChatSessionMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[chatsession.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *ChatSessionMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[chatsession.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ChatSessionMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, chatsession.FieldUserID)
}

// SetOrigin sets the "origin" field.
func (m *ChatSessionMutation) SetOrigin(c chatsession.Origin) {
	m.origin = &c
}

// Origin returns the value of the "origin" field in the mutation.
func (m *ChatSessionMutation) Origin() (r chatsession.Origin, exists bool) {
	v := m.origin
	if v == nil {
		return
	}
	return *v, true
}

// OldOrigin returns the old "origin" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldOrigin(ctx context.Context) (v chatsession.Origin, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrigin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrigin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrigin: %w", err)
	}
	return oldValue.Origin, nil
}

// ResetOrigin resets all changes to the "origin" field.
func (m *ChatSessionMutation) ResetOrigin() {
	m.origin = nil
}

// SetTitle sets the "title" field.
func (m *ChatSessionMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ChatSessionMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldTitle(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *ChatSessionMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[chatsession.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *ChatSessionMutation) TitleCleared() bool {
	_, ok := m.clearedFields[chatsession.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *ChatSessionMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, chatsession.FieldTitle)
}

// SetExternalChannelID sets the "external_channel_id" field.
func (m *ChatSessionMutation) SetExternalChannelID(s string) {
	m.external_channel_id = &s
}

// ExternalChannelID returns the value of the "external_channel_id" field in the mutation.
func (m *ChatSessionMutation) ExternalChannelID() (r string, exists bool) {
	v := m.external_channel_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalChannelID returns the old "external_channel_id" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldExternalChannelID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalChannelID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalChannelID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalChannelID: %w", err)
	}
	return oldValue.ExternalChannelID, nil
}

// ClearExternalChannelID clears the value of the "external_channel_id" field.
func (m *ChatSessionMutation) ClearExternalChannelID() {
	m.external_channel_id = nil
	m.clearedFields[chatsession.FieldExternalChannelID] = struct{}{}
}

// ExternalChannelIDCleared returns if the "external_channel_id" field was cleared in this mutation.
func (m *ChatSessionMutation) ExternalChannelIDCleared() bool {
	_, ok := m.clearedFields[chatsession.FieldExternalChannelID]
	return ok
}

// ResetExternalChannelID resets all changes to the "external_channel_id" field.
func (m *ChatSessionMutation) ResetExternalChannelID() {
	m.external_channel_id = nil
	delete(m.clearedFields, chatsession.FieldExternalChannelID)
}

// SetExternalThreadTs sets the "external_thread_ts" field.
func (m *ChatSessionMutation) SetExternalThreadTs(s string) {
	m.external_thread_ts = &s
}

// ExternalThreadTs returns the value of the "external_thread_ts" field in the mutation.
func (m *ChatSessionMutation) ExternalThreadTs() (r string, exists bool) {
	v := m.external_thread_ts
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalThreadTs returns the old "external_thread_ts" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldExternalThreadTs(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalThreadTs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalThreadTs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalThreadTs: %w", err)
	}
	return oldValue.ExternalThreadTs, nil
}

// ClearExternalThreadTs clears the value of the "external_thread_ts" field.
func (m *ChatSessionMutation) ClearExternalThreadTs() {
	m.external_thread_ts = nil
	m.clearedFields[chatsession.FieldExternalThreadTs] = struct{}{}
}

// ExternalThreadTsCleared returns if the "external_thread_ts" field was cleared in this mutation.
func (m *ChatSessionMutation) ExternalThreadTsCleared() bool {
	_, ok := m.clearedFields[chatsession.FieldExternalThreadTs]
	return ok
}

// ResetExternalThreadTs resets all changes to the "external_thread_ts" field.
func (m *ChatSessionMutation) ResetExternalThreadTs() {
	m.external_thread_ts = nil
	delete(m.clearedFields, chatsession.FieldExternalThreadTs)
}

// SetCreatedAt sets the "created_at" field.
func (m *ChatSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChatSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChatSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ChatSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ChatSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ChatSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddTurnIDs adds the "turns" edge to the ChatTurn entity by ids.
func (m *ChatSessionMutation) AddTurnIDs(ids ...string) {
	if m.turns == nil {
		m.turns = make(map[string]struct{})
	}
	for i := range ids {
		m.turns[ids[i]] = struct{}{}
	}
}

// ClearTurns clears the "turns" edge to the ChatTurn entity.
func (m *ChatSessionMutation) ClearTurns() {
	m.clearedturns = true
}

// TurnsCleared reports if the "turns" edge to the ChatTurn entity was cleared.
func (m *ChatSessionMutation) TurnsCleared() bool {
	return m.clearedturns
}

// RemoveTurnIDs removes the "turns" edge to the ChatTurn entity by IDs.
func (m *ChatSessionMutation) RemoveTurnIDs(ids ...string) {
	if m.removedturns == nil {
		m.removedturns = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.turns, ids[i])
		m.removedturns[ids[i]] = struct{}{}
	}
}

// RemovedTurns returns the removed IDs of the "turns" edge to the ChatTurn entity.
func (m *ChatSessionMutation) RemovedTurnsIDs() (ids []string) {
	for id := range m.removedturns {
		ids = append(ids, id)
	}
	return
}

// TurnsIDs returns the "turns" edge IDs in the mutation.
func (m *ChatSessionMutation) TurnsIDs() (ids []string) {
	for id := range m.turns {
		ids = append(ids, id)
	}
	return
}

// ResetTurns resets all changes to the "turns" edge.
func (m *ChatSessionMutation) ResetTurns() {
	m.turns = nil
	m.clearedturns = false
	m.removedturns = nil
}

// Where appends a list predicates to the ChatSessionMutation builder.
func (m *ChatSessionMutation) Where(ps ...predicate.ChatSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChatSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChatSession).
func (m *ChatSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatSessionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.workspace_id != nil {
		fields = append(fields, chatsession.FieldWorkspaceID)
	}
	if m.user_id != nil {
		fields = append(fields, chatsession.FieldUserID)
	}
	if m.origin != nil {
		fields = append(fields, chatsession.FieldOrigin)
	}
	if m.title != nil {
		fields = append(fields, chatsession.FieldTitle)
	}
	if m.external_channel_id != nil {
		fields = append(fields, chatsession.FieldExternalChannelID)
	}
	if m.external_thread_ts != nil {
		fields = append(fields, chatsession.FieldExternalThreadTs)
	}
	if m.created_at != nil {
		fields = append(fields, chatsession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, chatsession.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chatsession.FieldWorkspaceID:
		return m.WorkspaceID()
	case chatsession.FieldUserID:
		return m.UserID()
	case chatsession.FieldOrigin:
		return m.Origin()
	case chatsession.FieldTitle:
		return m.Title()
	case chatsession.FieldExternalChannelID:
		return m.ExternalChannelID()
	case chatsession.FieldExternalThreadTs:
		return m.ExternalThreadTs()
	case chatsession.FieldCreatedAt:
		return m.CreatedAt()
	case chatsession.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chatsession.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case chatsession.FieldUserID:
		return m.OldUserID(ctx)
	case chatsession.FieldOrigin:
		return m.OldOrigin(ctx)
	case chatsession.FieldTitle:
		return m.OldTitle(ctx)
	case chatsession.FieldExternalChannelID:
		return m.OldExternalChannelID(ctx)
	case chatsession.FieldExternalThreadTs:
		return m.OldExternalThreadTs(ctx)
	case chatsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case chatsession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChatSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chatsession.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case chatsession.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case chatsession.FieldOrigin:
		v, ok := value.(chatsession.Origin)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrigin(v)
		return nil
	case chatsession.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case chatsession.FieldExternalChannelID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalChannelID(v)
		return nil
	case chatsession.FieldExternalThreadTs:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalThreadTs(v)
		return nil
	case chatsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case chatsession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChatSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ChatSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chatsession.FieldUserID) {
		fields = append(fields, chatsession.FieldUserID)
	}
	if m.FieldCleared(chatsession.FieldTitle) {
		fields = append(fields, chatsession.FieldTitle)
	}
	if m.FieldCleared(chatsession.FieldExternalChannelID) {
		fields = append(fields, chatsession.FieldExternalChannelID)
	}
	if m.FieldCleared(chatsession.FieldExternalThreadTs) {
		fields = append(fields, chatsession.FieldExternalThreadTs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatSessionMutation) ClearField(name string) error {
	switch name {
	case chatsession.FieldUserID:
		m.ClearUserID()
		return nil
	case chatsession.FieldTitle:
		m.ClearTitle()
		return nil
	case chatsession.FieldExternalChannelID:
		m.ClearExternalChannelID()
		return nil
	case chatsession.FieldExternalThreadTs:
		m.ClearExternalThreadTs()
		return nil
	}
	return fmt.Errorf("unknown ChatSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatSessionMutation) ResetField(name string) error {
	switch name {
	case chatsession.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case chatsession.FieldUserID:
		m.ResetUserID()
		return nil
	case chatsession.FieldOrigin:
		m.ResetOrigin()
		return nil
	case chatsession.FieldTitle:
		m.ResetTitle()
		return nil
	case chatsession.FieldExternalChannelID:
		m.ResetExternalChannelID()
		return nil
	case chatsession.FieldExternalThreadTs:
		m.ResetExternalThreadTs()
		return nil
	case chatsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case chatsession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ChatSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.turns != nil {
		edges = append(edges, chatsession.EdgeTurns)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chatsession.EdgeTurns:
		ids := make([]ent.Value, 0, len(m.turns))
		for id := range m.turns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedturns != nil {
		edges = append(edges, chatsession.EdgeTurns)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case chatsession.EdgeTurns:
		ids := make([]ent.Value, 0, len(m.removedturns))
		for id := range m.removedturns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedturns {
		edges = append(edges, chatsession.EdgeTurns)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case chatsession.EdgeTurns:
		return m.clearedturns
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatSessionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ChatSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatSessionMutation) ResetEdge(name string) error {
	switch name {
	case chatsession.EdgeTurns:
		m.ResetTurns()
		return nil
	}
	return fmt.Errorf("unknown ChatSession edge %s", name)
}

// ChatTurnMutation represents an operation that mutates the ChatTurn nodes in the graph.
type ChatTurnMutation struct {
	config
	op              Op
	typ             string
	id              *string
	user_message    *string
	final_response  *string
	status          *chatturn.Status
	error_message   *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	session         *string
	clearedsession  bool
	steps           map[string]struct{}
	removedsteps    map[string]struct{}
	clearedsteps    bool
	job             *string
	clearedjob      bool
	feedback        map[string]struct{}
	removedfeedback map[string]struct{}
	clearedfeedback bool
	comments        map[string]struct{}
	removedcomments map[string]struct{}
	clearedcomments bool
	done            bool
	oldValue        func(context.Context) (*ChatTurn, error)
	predicates      []predicate.ChatTurn
}

var _ ent.Mutation = (*ChatTurnMutation)(nil)

// chatturnOption allows management of the mutation configuration using functional options.
type chatturnOption func(*ChatTurnMutation)

// newChatTurnMutation creates new mutation for the ChatTurn entity.
func newChatTurnMutation(c config, op Op, opts ...chatturnOption) *ChatTurnMutation {
	m := &ChatTurnMutation{
		config:        c,
		op:            op,
		typ:           TypeChatTurn,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatTurnID sets the ID field of the mutation.
func withChatTurnID(id string) chatturnOption {
	return func(m *ChatTurnMutation) {
		var (
			err   error
			once  sync.Once
			value *ChatTurn
		)
		m.oldValue = func(ctx context.Context) (*ChatTurn, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChatTurn.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChatTurn sets the old ChatTurn of the mutation.
func withChatTurn(node *ChatTurn) chatturnOption {
	return func(m *ChatTurnMutation) {
		m.oldValue = func(context.Context) (*ChatTurn, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatTurnMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatTurnMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChatTurn entities.
func (m *ChatTurnMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatTurnMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatTurnMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChatTurn.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *ChatTurnMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ChatTurnMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ChatTurn entity.
// If the ChatTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatTurnMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ChatTurnMutation) ResetSessionID() {
	m.session = nil
}

// SetUserMessage sets the "user_message" field.
func (m *ChatTurnMutation) SetUserMessage(s string) {
	m.user_message = &s
}

// UserMessage returns the value of the "user_message" field in the mutation.
func (m *ChatTurnMutation) UserMessage() (r string, exists bool) {
	v := m.user_message
	if v == nil {
		return
	}
	return *v, true
}

// OldUserMessage returns the old "user_message" field's value of the ChatTurn entity.
// If the ChatTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatTurnMutation) OldUserMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserMessage: %w", err)
	}
	return oldValue.UserMessage, nil
}

// ResetUserMessage resets all changes to the "user_message" field.
func (m *ChatTurnMutation) ResetUserMessage() {
	m.user_message = nil
}

// SetFinalResponse sets the "final_response" field.
func (m *ChatTurnMutation) SetFinalResponse(s string) {
	m.final_response = &s
}

// FinalResponse returns the value of the "final_response" field in the mutation.
func (m *ChatTurnMutation) FinalResponse() (r string, exists bool) {
	v := m.final_response
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalResponse returns the old "final_response" field's value of the ChatTurn entity.
// If the ChatTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatTurnMutation) OldFinalResponse(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalResponse: %w", err)
	}
	return oldValue.FinalResponse, nil
}

// ClearFinalResponse clears the value of the "final_response" field.
func (m *ChatTurnMutation) ClearFinalResponse() {
	m.final_response = nil
	m.clearedFields[chatturn.FieldFinalResponse] = struct{}{}
}

// FinalResponseCleared returns if the "final_response" field was cleared in this mutation.
func (m *ChatTurnMutation) FinalResponseCleared() bool {
	_, ok := m.clearedFields[chatturn.FieldFinalResponse]
	return ok
}

// ResetFinalResponse resets all changes to the "final_response" field.
func (m *ChatTurnMutation) ResetFinalResponse() {
	m.final_response = nil
	delete(m.clearedFields, chatturn.FieldFinalResponse)
}

// SetStatus sets the "status" field.
func (m *ChatTurnMutation) SetStatus(c chatturn.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *ChatTurnMutation) Status() (r chatturn.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ChatTurn entity.
// If the ChatTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatTurnMutation) OldStatus(ctx context.Context) (v chatturn.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ChatTurnMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ChatTurnMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ChatTurnMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ChatTurn entity.
// If the ChatTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatTurnMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ChatTurnMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[chatturn.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ChatTurnMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[chatturn.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ChatTurnMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, chatturn.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *ChatTurnMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChatTurnMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChatTurn entity.
// If the ChatTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatTurnMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChatTurnMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ChatTurnMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ChatTurnMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ChatTurn entity.
// If the ChatTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatTurnMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ChatTurnMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearSession clears the "session" edge to the ChatSession entity.
func (m *ChatTurnMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[chatturn.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the ChatSession entity was cleared.
func (m *ChatTurnMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *ChatTurnMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *ChatTurnMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// AddStepIDs adds the "steps" edge to the TurnStep entity by ids.
func (m *ChatTurnMutation) AddStepIDs(ids ...string) {
	if m.steps == nil {
		m.steps = make(map[string]struct{})
	}
	for i := range ids {
		m.steps[ids[i]] = struct{}{}
	}
}

// ClearSteps clears the "steps" edge to the TurnStep entity.
func (m *ChatTurnMutation) ClearSteps() {
	m.clearedsteps = true
}

// StepsCleared reports if the "steps" edge to the TurnStep entity was cleared.
func (m *ChatTurnMutation) StepsCleared() bool {
	return m.clearedsteps
}

// RemoveStepIDs removes the "steps" edge to the TurnStep entity by IDs.
func (m *ChatTurnMutation) RemoveStepIDs(ids ...string) {
	if m.removedsteps == nil {
		m.removedsteps = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.steps, ids[i])
		m.removedsteps[ids[i]] = struct{}{}
	}
}

// RemovedSteps returns the removed IDs of the "steps" edge to the TurnStep entity.
func (m *ChatTurnMutation) RemovedStepsIDs() (ids []string) {
	for id := range m.removedsteps {
		ids = append(ids, id)
	}
	return
}

// StepsIDs returns the "steps" edge IDs in the mutation.
func (m *ChatTurnMutation) StepsIDs() (ids []string) {
	for id := range m.steps {
		ids = append(ids, id)
	}
	return
}

// ResetSteps resets all changes to the "steps" edge.
func (m *ChatTurnMutation) ResetSteps() {
	m.steps = nil
	m.clearedsteps = false
	m.removedsteps = nil
}

// SetJobID sets the "job" edge to the Job entity by id.
func (m *ChatTurnMutation) SetJobID(id string) {
	m.job = &id
}

// ClearJob clears the "job" edge to the Job entity.
func (m *ChatTurnMutation) ClearJob() {
	m.clearedjob = true
}

// JobCleared reports if the "job" edge to the Job entity was cleared.
func (m *ChatTurnMutation) JobCleared() bool {
	return m.clearedjob
}

// JobID returns the "job" edge ID in the mutation.
func (m *ChatTurnMutation) JobID() (id string, exists bool) {
	if m.job != nil {
		return *m.job, true
	}
	return
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *ChatTurnMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *ChatTurnMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// AddFeedbackIDs adds the "feedback" edge to the TurnFeedback entity by ids.
func (m *ChatTurnMutation) AddFeedbackIDs(ids ...string) {
	if m.feedback == nil {
		m.feedback = make(map[string]struct{})
	}
	for i := range ids {
		m.feedback[ids[i]] = struct{}{}
	}
}

// ClearFeedback clears the "feedback" edge to the TurnFeedback entity.
func (m *ChatTurnMutation) ClearFeedback() {
	m.clearedfeedback = true
}

// FeedbackCleared reports if the "feedback" edge to the TurnFeedback entity was cleared.
func (m *ChatTurnMutation) FeedbackCleared() bool {
	return m.clearedfeedback
}

// RemoveFeedbackIDs removes the "feedback" edge to the TurnFeedback entity by IDs.
func (m *ChatTurnMutation) RemoveFeedbackIDs(ids ...string) {
	if m.removedfeedback == nil {
		m.removedfeedback = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.feedback, ids[i])
		m.removedfeedback[ids[i]] = struct{}{}
	}
}

// RemovedFeedback returns the removed IDs of the "feedback" edge to the TurnFeedback entity.
func (m *ChatTurnMutation) RemovedFeedbackIDs() (ids []string) {
	for id := range m.removedfeedback {
		ids = append(ids, id)
	}
	return
}

// FeedbackIDs returns the "feedback" edge IDs in the mutation.
func (m *ChatTurnMutation) FeedbackIDs() (ids []string) {
	for id := range m.feedback {
		ids = append(ids, id)
	}
	return
}

// ResetFeedback resets all changes to the "feedback" edge.
func (m *ChatTurnMutation) ResetFeedback() {
	m.feedback = nil
	m.clearedfeedback = false
	m.removedfeedback = nil
}

// AddCommentIDs adds the "comments" edge to the TurnComment entity by ids.
func (m *ChatTurnMutation) AddCommentIDs(ids ...string) {
	if m.comments == nil {
		m.comments = make(map[string]struct{})
	}
	for i := range ids {
		m.comments[ids[i]] = struct{}{}
	}
}

// ClearComments clears the "comments" edge to the TurnComment entity.
func (m *ChatTurnMutation) ClearComments() {
	m.clearedcomments = true
}

// CommentsCleared reports if the "comments" edge to the TurnComment entity was cleared.
func (m *ChatTurnMutation) CommentsCleared() bool {
	return m.clearedcomments
}

// RemoveCommentIDs removes the "comments" edge to the TurnComment entity by IDs.
func (m *ChatTurnMutation) RemoveCommentIDs(ids ...string) {
	if m.removedcomments == nil {
		m.removedcomments = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.comments, ids[i])
		m.removedcomments[ids[i]] = struct{}{}
	}
}

// RemovedComments returns the removed IDs of the "comments" edge to the TurnComment entity.
func (m *ChatTurnMutation) RemovedCommentsIDs() (ids []string) {
	for id := range m.removedcomments {
		ids = append(ids, id)
	}
	return
}

// CommentsIDs returns the "comments" edge IDs in the mutation.
func (m *ChatTurnMutation) CommentsIDs() (ids []string) {
	for id := range m.comments {
		ids = append(ids, id)
	}
	return
}

// ResetComments resets all changes to the "comments" edge.
func (m *ChatTurnMutation) ResetComments() {
	m.comments = nil
	m.clearedcomments = false
	m.removedcomments = nil
}

// Where appends a list predicates to the ChatTurnMutation builder.
func (m *ChatTurnMutation) Where(ps ...predicate.ChatTurn) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatTurnMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatTurnMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChatTurn, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatTurnMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatTurnMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChatTurn).
func (m *ChatTurnMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatTurnMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.session != nil {
		fields = append(fields, chatturn.FieldSessionID)
	}
	if m.user_message != nil {
		fields = append(fields, chatturn.FieldUserMessage)
	}
	if m.final_response != nil {
		fields = append(fields, chatturn.FieldFinalResponse)
	}
	if m.status != nil {
		fields = append(fields, chatturn.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, chatturn.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, chatturn.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, chatturn.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatTurnMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chatturn.FieldSessionID:
		return m.SessionID()
	case chatturn.FieldUserMessage:
		return m.UserMessage()
	case chatturn.FieldFinalResponse:
		return m.FinalResponse()
	case chatturn.FieldStatus:
		return m.Status()
	case chatturn.FieldErrorMessage:
		return m.ErrorMessage()
	case chatturn.FieldCreatedAt:
		return m.CreatedAt()
	case chatturn.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatTurnMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chatturn.FieldSessionID:
		return m.OldSessionID(ctx)
	case chatturn.FieldUserMessage:
		return m.OldUserMessage(ctx)
	case chatturn.FieldFinalResponse:
		return m.OldFinalResponse(ctx)
	case chatturn.FieldStatus:
		return m.OldStatus(ctx)
	case chatturn.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case chatturn.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case chatturn.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChatTurn field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatTurnMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chatturn.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case chatturn.FieldUserMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserMessage(v)
		return nil
	case chatturn.FieldFinalResponse:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalResponse(v)
		return nil
	case chatturn.FieldStatus:
		v, ok := value.(chatturn.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case chatturn.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case chatturn.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case chatturn.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChatTurn field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatTurnMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatTurnMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatTurnMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ChatTurn numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatTurnMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chatturn.FieldFinalResponse) {
		fields = append(fields, chatturn.FieldFinalResponse)
	}
	if m.FieldCleared(chatturn.FieldErrorMessage) {
		fields = append(fields, chatturn.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatTurnMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatTurnMutation) ClearField(name string) error {
	switch name {
	case chatturn.FieldFinalResponse:
		m.ClearFinalResponse()
		return nil
	case chatturn.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown ChatTurn nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatTurnMutation) ResetField(name string) error {
	switch name {
	case chatturn.FieldSessionID:
		m.ResetSessionID()
		return nil
	case chatturn.FieldUserMessage:
		m.ResetUserMessage()
		return nil
	case chatturn.FieldFinalResponse:
		m.ResetFinalResponse()
		return nil
	case chatturn.FieldStatus:
		m.ResetStatus()
		return nil
	case chatturn.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case chatturn.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case chatturn.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ChatTurn field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatTurnMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.session != nil {
		edges = append(edges, chatturn.EdgeSession)
	}
	if m.steps != nil {
		edges = append(edges, chatturn.EdgeSteps)
	}
	if m.job != nil {
		edges = append(edges, chatturn.EdgeJob)
	}
	if m.feedback != nil {
		edges = append(edges, chatturn.EdgeFeedback)
	}
	if m.comments != nil {
		edges = append(edges, chatturn.EdgeComments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatTurnMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chatturn.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	case chatturn.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.steps))
		for id := range m.steps {
			ids = append(ids, id)
		}
		return ids
	case chatturn.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	case chatturn.EdgeFeedback:
		ids := make([]ent.Value, 0, len(m.feedback))
		for id := range m.feedback {
			ids = append(ids, id)
		}
		return ids
	case chatturn.EdgeComments:
		ids := make([]ent.Value, 0, len(m.comments))
		for id := range m.comments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatTurnMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedsteps != nil {
		edges = append(edges, chatturn.EdgeSteps)
	}
	if m.removedfeedback != nil {
		edges = append(edges, chatturn.EdgeFeedback)
	}
	if m.removedcomments != nil {
		edges = append(edges, chatturn.EdgeComments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatTurnMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case chatturn.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.removedsteps))
		for id := range m.removedsteps {
			ids = append(ids, id)
		}
		return ids
	case chatturn.EdgeFeedback:
		ids := make([]ent.Value, 0, len(m.removedfeedback))
		for id := range m.removedfeedback {
			ids = append(ids, id)
		}
		return ids
	case chatturn.EdgeComments:
		ids := make([]ent.Value, 0, len(m.removedcomments))
		for id := range m.removedcomments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatTurnMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedsession {
		edges = append(edges, chatturn.EdgeSession)
	}
	if m.clearedsteps {
		edges = append(edges, chatturn.EdgeSteps)
	}
	if m.clearedjob {
		edges = append(edges, chatturn.EdgeJob)
	}
	if m.clearedfeedback {
		edges = append(edges, chatturn.EdgeFeedback)
	}
	if m.clearedcomments {
		edges = append(edges, chatturn.EdgeComments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatTurnMutation) EdgeCleared(name string) bool {
	switch name {
	case chatturn.EdgeSession:
		return m.clearedsession
	case chatturn.EdgeSteps:
		return m.clearedsteps
	case chatturn.EdgeJob:
		return m.clearedjob
	case chatturn.EdgeFeedback:
		return m.clearedfeedback
	case chatturn.EdgeComments:
		return m.clearedcomments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatTurnMutation) ClearEdge(name string) error {
	switch name {
	case chatturn.EdgeSession:
		m.ClearSession()
		return nil
	case chatturn.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown ChatTurn unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatTurnMutation) ResetEdge(name string) error {
	switch name {
	case chatturn.EdgeSession:
		m.ResetSession()
		return nil
	case chatturn.EdgeSteps:
		m.ResetSteps()
		return nil
	case chatturn.EdgeJob:
		m.ResetJob()
		return nil
	case chatturn.EdgeFeedback:
		m.ResetFeedback()
		return nil
	case chatturn.EdgeComments:
		m.ResetComments()
		return nil
	}
	return fmt.Errorf("unknown ChatTurn edge %s", name)
}

// IntegrationMutation represents an operation that mutates the Integration nodes in the graph.
type IntegrationMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	workspace_id          *string
	provider              *integration.Provider
	name                  *string
	encrypted_credentials *[]byte
	settings              *map[string]interface{}
	enabled               *bool
	health_status         *integration.HealthStatus
	last_health_check_at  *time.Time
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*Integration, error)
	predicates            []predicate.Integration
}

var _ ent.Mutation = (*IntegrationMutation)(nil)

// integrationOption allows management of the mutation configuration using functional options.
type integrationOption func(*IntegrationMutation)

// newIntegrationMutation creates new mutation for the Integration entity.
func newIntegrationMutation(c config, op Op, opts ...integrationOption) *IntegrationMutation {
	m := &IntegrationMutation{
		config:        c,
		op:            op,
		typ:           TypeIntegration,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIntegrationID sets the ID field of the mutation.
func withIntegrationID(id string) integrationOption {
	return func(m *IntegrationMutation) {
		var (
			err   error
			once  sync.Once
			value *Integration
		)
		m.oldValue = func(ctx context.Context) (*Integration, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Integration.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIntegration sets the old Integration of the mutation.
func withIntegration(node *Integration) integrationOption {
	return func(m *IntegrationMutation) {
		m.oldValue = func(context.Context) (*Integration, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IntegrationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IntegrationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Integration entities.
func (m *IntegrationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IntegrationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IntegrationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Integration.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *IntegrationMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *IntegrationMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the Integration entity.
// If the Integration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *IntegrationMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetProvider sets the "provider" field.
func (m *IntegrationMutation) SetProvider(i integration.Provider) {
	m.provider = &i
}

// Provider returns the value of the "provider" field in the mutation.
func (m *IntegrationMutation) Provider() (r integration.Provider, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the Integration entity.
// If the Integration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationMutation) OldProvider(ctx context.Context) (v integration.Provider, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *IntegrationMutation) ResetProvider() {
	m.provider = nil
}

// SetName sets the "name" field.
func (m *IntegrationMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *IntegrationMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Integration entity.
// If the Integration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *IntegrationMutation) ResetName() {
	m.name = nil
}

// SetEncryptedCredentials sets the "encrypted_credentials" field.
func (m *IntegrationMutation) SetEncryptedCredentials(b []byte) {
	m.encrypted_credentials = &b
}

// EncryptedCredentials returns the value of the "encrypted_credentials" field in the mutation.
func (m *IntegrationMutation) EncryptedCredentials() (r []byte, exists bool) {
	v := m.encrypted_credentials
	if v == nil {
		return
	}
	return *v, true
}

// OldEncryptedCredentials returns the old "encrypted_credentials" field's value of the Integration entity.
// If the Integration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationMutation) OldEncryptedCredentials(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEncryptedCredentials is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEncryptedCredentials requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEncryptedCredentials: %w", err)
	}
	return oldValue.EncryptedCredentials, nil
}

// ResetEncryptedCredentials resets all changes to the "encrypted_credentials" field.
func (m *IntegrationMutation) ResetEncryptedCredentials() {
	m.encrypted_credentials = nil
}

// SetSettings sets the "settings" field.
func (m *IntegrationMutation) SetSettings(value map[string]interface{}) {
	m.settings = &value
}

// Settings returns the value of the "settings" field in the mutation.
func (m *IntegrationMutation) Settings() (r map[string]interface{}, exists bool) {
	v := m.settings
	if v == nil {
		return
	}
	return *v, true
}

// OldSettings returns the old "settings" field's value of the Integration entity.
// If the Integration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationMutation) OldSettings(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSettings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSettings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSettings: %w", err)
	}
	return oldValue.Settings, nil
}

// ClearSettings clears the value of the "settings" field.
func (m *IntegrationMutation) ClearSettings() {
	m.settings = nil
	m.clearedFields[integration.FieldSettings] = struct{}{}
}

// SettingsCleared returns if the "settings" field was cleared in this mutation.
func (m *IntegrationMutation) SettingsCleared() bool {
	_, ok := m.clearedFields[integration.FieldSettings]
	return ok
}

// ResetSettings resets all changes to the "settings" field.
func (m *IntegrationMutation) ResetSettings() {
	m.settings = nil
	delete(m.clearedFields, integration.FieldSettings)
}

// SetEnabled sets the "enabled" field.
func (m *IntegrationMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *IntegrationMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the Integration entity.
// If the Integration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *IntegrationMutation) ResetEnabled() {
	m.enabled = nil
}

// SetHealthStatus sets the "health_status" field.
func (m *IntegrationMutation) SetHealthStatus(is integration.HealthStatus) {
	m.health_status = &is
}

// HealthStatus returns the value of the "health_status" field in the mutation.
func (m *IntegrationMutation) HealthStatus() (r integration.HealthStatus, exists bool) {
	v := m.health_status
	if v == nil {
		return
	}
	return *v, true
}

// OldHealthStatus returns the old "health_status" field's value of the Integration entity.
// If the Integration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationMutation) OldHealthStatus(ctx context.Context) (v integration.HealthStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHealthStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHealthStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHealthStatus: %w", err)
	}
	return oldValue.HealthStatus, nil
}

// ResetHealthStatus resets all changes to the "health_status" field.
func (m *IntegrationMutation) ResetHealthStatus() {
	m.health_status = nil
}

// SetLastHealthCheckAt sets the "last_health_check_at" field.
func (m *IntegrationMutation) SetLastHealthCheckAt(t time.Time) {
	m.last_health_check_at = &t
}

// LastHealthCheckAt returns the value of the "last_health_check_at" field in the mutation.
func (m *IntegrationMutation) LastHealthCheckAt() (r time.Time, exists bool) {
	v := m.last_health_check_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHealthCheckAt returns the old "last_health_check_at" field's value of the Integration entity.
// If the Integration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationMutation) OldLastHealthCheckAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHealthCheckAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHealthCheckAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHealthCheckAt: %w", err)
	}
	return oldValue.LastHealthCheckAt, nil
}

// ClearLastHealthCheckAt clears the value of the "last_health_check_at" field.
func (m *IntegrationMutation) ClearLastHealthCheckAt() {
	m.last_health_check_at = nil
	m.clearedFields[integration.FieldLastHealthCheckAt] = struct{}{}
}

// LastHealthCheckAtCleared returns if the "last_health_check_at" field was cleared in this mutation.
func (m *IntegrationMutation) LastHealthCheckAtCleared() bool {
	_, ok := m.clearedFields[integration.FieldLastHealthCheckAt]
	return ok
}

// ResetLastHealthCheckAt resets all changes to the "last_health_check_at" field.
func (m *IntegrationMutation) ResetLastHealthCheckAt() {
	m.last_health_check_at = nil
	delete(m.clearedFields, integration.FieldLastHealthCheckAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *IntegrationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IntegrationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Integration entity.
// If the Integration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *IntegrationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *IntegrationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *IntegrationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Integration entity.
// If the Integration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *IntegrationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the IntegrationMutation builder.
func (m *IntegrationMutation) Where(ps ...predicate.Integration) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IntegrationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IntegrationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Integration, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IntegrationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IntegrationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Integration).
func (m *IntegrationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IntegrationMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.workspace_id != nil {
		fields = append(fields, integration.FieldWorkspaceID)
	}
	if m.provider != nil {
		fields = append(fields, integration.FieldProvider)
	}
	if m.name != nil {
		fields = append(fields, integration.FieldName)
	}
	if m.encrypted_credentials != nil {
		fields = append(fields, integration.FieldEncryptedCredentials)
	}
	if m.settings != nil {
		fields = append(fields, integration.FieldSettings)
	}
	if m.enabled != nil {
		fields = append(fields, integration.FieldEnabled)
	}
	if m.health_status != nil {
		fields = append(fields, integration.FieldHealthStatus)
	}
	if m.last_health_check_at != nil {
		fields = append(fields, integration.FieldLastHealthCheckAt)
	}
	if m.created_at != nil {
		fields = append(fields, integration.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, integration.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IntegrationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case integration.FieldWorkspaceID:
		return m.WorkspaceID()
	case integration.FieldProvider:
		return m.Provider()
	case integration.FieldName:
		return m.Name()
	case integration.FieldEncryptedCredentials:
		return m.EncryptedCredentials()
	case integration.FieldSettings:
		return m.Settings()
	case integration.FieldEnabled:
		return m.Enabled()
	case integration.FieldHealthStatus:
		return m.HealthStatus()
	case integration.FieldLastHealthCheckAt:
		return m.LastHealthCheckAt()
	case integration.FieldCreatedAt:
		return m.CreatedAt()
	case integration.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IntegrationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case integration.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case integration.FieldProvider:
		return m.OldProvider(ctx)
	case integration.FieldName:
		return m.OldName(ctx)
	case integration.FieldEncryptedCredentials:
		return m.OldEncryptedCredentials(ctx)
	case integration.FieldSettings:
		return m.OldSettings(ctx)
	case integration.FieldEnabled:
		return m.OldEnabled(ctx)
	case integration.FieldHealthStatus:
		return m.OldHealthStatus(ctx)
	case integration.FieldLastHealthCheckAt:
		return m.OldLastHealthCheckAt(ctx)
	case integration.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case integration.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Integration field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IntegrationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case integration.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case integration.FieldProvider:
		v, ok := value.(integration.Provider)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case integration.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case integration.FieldEncryptedCredentials:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEncryptedCredentials(v)
		return nil
	case integration.FieldSettings:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSettings(v)
		return nil
	case integration.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case integration.FieldHealthStatus:
		v, ok := value.(integration.HealthStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHealthStatus(v)
		return nil
	case integration.FieldLastHealthCheckAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHealthCheckAt(v)
		return nil
	case integration.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case integration.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Integration field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IntegrationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IntegrationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IntegrationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Integration numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IntegrationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(integration.FieldSettings) {
		fields = append(fields, integration.FieldSettings)
	}
	if m.FieldCleared(integration.FieldLastHealthCheckAt) {
		fields = append(fields, integration.FieldLastHealthCheckAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IntegrationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IntegrationMutation) ClearField(name string) error {
	switch name {
	case integration.FieldSettings:
		m.ClearSettings()
		return nil
	case integration.FieldLastHealthCheckAt:
		m.ClearLastHealthCheckAt()
		return nil
	}
	return fmt.Errorf("unknown Integration nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IntegrationMutation) ResetField(name string) error {
	switch name {
	case integration.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case integration.FieldProvider:
		m.ResetProvider()
		return nil
	case integration.FieldName:
		m.ResetName()
		return nil
	case integration.FieldEncryptedCredentials:
		m.ResetEncryptedCredentials()
		return nil
	case integration.FieldSettings:
		m.ResetSettings()
		return nil
	case integration.FieldEnabled:
		m.ResetEnabled()
		return nil
	case integration.FieldHealthStatus:
		m.ResetHealthStatus()
		return nil
	case integration.FieldLastHealthCheckAt:
		m.ResetLastHealthCheckAt()
		return nil
	case integration.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case integration.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Integration field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IntegrationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IntegrationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IntegrationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IntegrationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IntegrationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IntegrationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IntegrationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Integration unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IntegrationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Integration edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op                Op
	typ               string
	id                *string
	workspace_id      *string
	source            *job.Source
	status            *job.Status
	priority          *int
	addpriority       *int
	retries           *int
	addretries        *int
	max_retries       *int
	addmax_retries    *int
	backoff_until     *time.Time
	requested_context *map[string]interface{}
	started_at        *time.Time
	finished_at       *time.Time
	error_message     *string
	pod_id            *string
	last_heartbeat_at *time.Time
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	turn              *string
	clearedturn       bool
	done              bool
	oldValue          func(context.Context) (*Job, error)
	predicates        []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id string) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *JobMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *JobMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *JobMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetTurnID sets the "turn_id" field.
func (m *JobMutation) SetTurnID(s string) {
	m.turn = &s
}

// TurnID returns the value of the "turn_id" field in the mutation.
func (m *JobMutation) TurnID() (r string, exists bool) {
	v := m.turn
	if v == nil {
		return
	}
	return *v, true
}

// OldTurnID returns the old "turn_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldTurnID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTurnID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTurnID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTurnID: %w", err)
	}
	return oldValue.TurnID, nil
}

// ResetTurnID resets all changes to the "turn_id" field.
func (m *JobMutation) ResetTurnID() {
	m.turn = nil
}

// SetSource sets the "source" field.
func (m *JobMutation) SetSource(j job.Source) {
	m.source = &j
}

// Source returns the value of the "source" field in the mutation.
func (m *JobMutation) Source() (r job.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldSource(ctx context.Context) (v job.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *JobMutation) ResetSource() {
	m.source = nil
}

// SetStatus sets the "status" field.
func (m *JobMutation) SetStatus(j job.Status) {
	m.status = &j
}

// Status returns the value of the "status" field in the mutation.
func (m *JobMutation) Status() (r job.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStatus(ctx context.Context) (v job.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobMutation) ResetStatus() {
	m.status = nil
}

// SetPriority sets the "priority" field.
func (m *JobMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *JobMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *JobMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *JobMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *JobMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetRetries sets the "retries" field.
func (m *JobMutation) SetRetries(i int) {
	m.retries = &i
	m.addretries = nil
}

// Retries returns the value of the "retries" field in the mutation.
func (m *JobMutation) Retries() (r int, exists bool) {
	v := m.retries
	if v == nil {
		return
	}
	return *v, true
}

// OldRetries returns the old "retries" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldRetries(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetries: %w", err)
	}
	return oldValue.Retries, nil
}

// AddRetries adds i to the "retries" field.
func (m *JobMutation) AddRetries(i int) {
	if m.addretries != nil {
		*m.addretries += i
	} else {
		m.addretries = &i
	}
}

// AddedRetries returns the value that was added to the "retries" field in this mutation.
func (m *JobMutation) AddedRetries() (r int, exists bool) {
	v := m.addretries
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetries resets all changes to the "retries" field.
func (m *JobMutation) ResetRetries() {
	m.retries = nil
	m.addretries = nil
}

// SetMaxRetries sets the "max_retries" field.
func (m *JobMutation) SetMaxRetries(i int) {
	m.max_retries = &i
	m.addmax_retries = nil
}

// MaxRetries returns the value of the "max_retries" field in the mutation.
func (m *JobMutation) MaxRetries() (r int, exists bool) {
	v := m.max_retries
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxRetries returns the old "max_retries" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldMaxRetries(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxRetries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxRetries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxRetries: %w", err)
	}
	return oldValue.MaxRetries, nil
}

// AddMaxRetries adds i to the "max_retries" field.
func (m *JobMutation) AddMaxRetries(i int) {
	if m.addmax_retries != nil {
		*m.addmax_retries += i
	} else {
		m.addmax_retries = &i
	}
}

// AddedMaxRetries returns the value that was added to the "max_retries" field in this mutation.
func (m *JobMutation) AddedMaxRetries() (r int, exists bool) {
	v := m.addmax_retries
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxRetries resets all changes to the "max_retries" field.
func (m *JobMutation) ResetMaxRetries() {
	m.max_retries = nil
	m.addmax_retries = nil
}

// SetBackoffUntil sets the "backoff_until" field.
func (m *JobMutation) SetBackoffUntil(t time.Time) {
	m.backoff_until = &t
}

// BackoffUntil returns the value of the "backoff_until" field in the mutation.
func (m *JobMutation) BackoffUntil() (r time.Time, exists bool) {
	v := m.backoff_until
	if v == nil {
		return
	}
	return *v, true
}

// OldBackoffUntil returns the old "backoff_until" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldBackoffUntil(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBackoffUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBackoffUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBackoffUntil: %w", err)
	}
	return oldValue.BackoffUntil, nil
}

// ClearBackoffUntil clears the value of the "backoff_until" field.
func (m *JobMutation) ClearBackoffUntil() {
	m.backoff_until = nil
	m.clearedFields[job.FieldBackoffUntil] = struct{}{}
}

// BackoffUntilCleared returns if the "backoff_until" field was cleared in this mutation.
func (m *JobMutation) BackoffUntilCleared() bool {
	_, ok := m.clearedFields[job.FieldBackoffUntil]
	return ok
}

// ResetBackoffUntil resets all changes to the "backoff_until" field.
func (m *JobMutation) ResetBackoffUntil() {
	m.backoff_until = nil
	delete(m.clearedFields, job.FieldBackoffUntil)
}

// SetRequestedContext sets the "requested_context" field.
func (m *JobMutation) SetRequestedContext(value map[string]interface{}) {
	m.requested_context = &value
}

// RequestedContext returns the value of the "requested_context" field in the mutation.
func (m *JobMutation) RequestedContext() (r map[string]interface{}, exists bool) {
	v := m.requested_context
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestedContext returns the old "requested_context" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldRequestedContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestedContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestedContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestedContext: %w", err)
	}
	return oldValue.RequestedContext, nil
}

// ClearRequestedContext clears the value of the "requested_context" field.
func (m *JobMutation) ClearRequestedContext() {
	m.requested_context = nil
	m.clearedFields[job.FieldRequestedContext] = struct{}{}
}

// RequestedContextCleared returns if the "requested_context" field was cleared in this mutation.
func (m *JobMutation) RequestedContextCleared() bool {
	_, ok := m.clearedFields[job.FieldRequestedContext]
	return ok
}

// ResetRequestedContext resets all changes to the "requested_context" field.
func (m *JobMutation) ResetRequestedContext() {
	m.requested_context = nil
	delete(m.clearedFields, job.FieldRequestedContext)
}

// SetStartedAt sets the "started_at" field.
func (m *JobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *JobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *JobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[job.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *JobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *JobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, job.FieldStartedAt)
}

// SetFinishedAt sets the "finished_at" field.
func (m *JobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *JobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *JobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[job.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *JobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *JobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, job.FieldFinishedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *JobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *JobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *JobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[job.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *JobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[job.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *JobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, job.FieldErrorMessage)
}

// SetPodID sets the "pod_id" field.
func (m *JobMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *JobMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *JobMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[job.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *JobMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[job.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *JobMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, job.FieldPodID)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *JobMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *JobMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *JobMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[job.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *JobMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[job.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *JobMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, job.FieldLastHeartbeatAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *JobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *JobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *JobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTurn clears the "turn" edge to the ChatTurn entity.
func (m *JobMutation) ClearTurn() {
	m.clearedturn = true
	m.clearedFields[job.FieldTurnID] = struct{}{}
}

// TurnCleared reports if the "turn" edge to the ChatTurn entity was cleared.
func (m *JobMutation) TurnCleared() bool {
	return m.clearedturn
}

// TurnIDs returns the "turn" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TurnID instead. It exists only for internal usage by the builders.
func (m *JobMutation) TurnIDs() (ids []string) {
	if id := m.turn; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTurn resets all changes to the "turn" edge.
func (m *JobMutation) ResetTurn() {
	m.turn = nil
	m.clearedturn = false
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.workspace_id != nil {
		fields = append(fields, job.FieldWorkspaceID)
	}
	if m.turn != nil {
		fields = append(fields, job.FieldTurnID)
	}
	if m.source != nil {
		fields = append(fields, job.FieldSource)
	}
	if m.status != nil {
		fields = append(fields, job.FieldStatus)
	}
	if m.priority != nil {
		fields = append(fields, job.FieldPriority)
	}
	if m.retries != nil {
		fields = append(fields, job.FieldRetries)
	}
	if m.max_retries != nil {
		fields = append(fields, job.FieldMaxRetries)
	}
	if m.backoff_until != nil {
		fields = append(fields, job.FieldBackoffUntil)
	}
	if m.requested_context != nil {
		fields = append(fields, job.FieldRequestedContext)
	}
	if m.started_at != nil {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, job.FieldFinishedAt)
	}
	if m.error_message != nil {
		fields = append(fields, job.FieldErrorMessage)
	}
	if m.pod_id != nil {
		fields = append(fields, job.FieldPodID)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, job.FieldLastHeartbeatAt)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, job.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldWorkspaceID:
		return m.WorkspaceID()
	case job.FieldTurnID:
		return m.TurnID()
	case job.FieldSource:
		return m.Source()
	case job.FieldStatus:
		return m.Status()
	case job.FieldPriority:
		return m.Priority()
	case job.FieldRetries:
		return m.Retries()
	case job.FieldMaxRetries:
		return m.MaxRetries()
	case job.FieldBackoffUntil:
		return m.BackoffUntil()
	case job.FieldRequestedContext:
		return m.RequestedContext()
	case job.FieldStartedAt:
		return m.StartedAt()
	case job.FieldFinishedAt:
		return m.FinishedAt()
	case job.FieldErrorMessage:
		return m.ErrorMessage()
	case job.FieldPodID:
		return m.PodID()
	case job.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case job.FieldTurnID:
		return m.OldTurnID(ctx)
	case job.FieldSource:
		return m.OldSource(ctx)
	case job.FieldStatus:
		return m.OldStatus(ctx)
	case job.FieldPriority:
		return m.OldPriority(ctx)
	case job.FieldRetries:
		return m.OldRetries(ctx)
	case job.FieldMaxRetries:
		return m.OldMaxRetries(ctx)
	case job.FieldBackoffUntil:
		return m.OldBackoffUntil(ctx)
	case job.FieldRequestedContext:
		return m.OldRequestedContext(ctx)
	case job.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case job.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case job.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case job.FieldPodID:
		return m.OldPodID(ctx)
	case job.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case job.FieldTurnID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTurnID(v)
		return nil
	case job.FieldSource:
		v, ok := value.(job.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case job.FieldStatus:
		v, ok := value.(job.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case job.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case job.FieldRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetries(v)
		return nil
	case job.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxRetries(v)
		return nil
	case job.FieldBackoffUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBackoffUntil(v)
		return nil
	case job.FieldRequestedContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestedContext(v)
		return nil
	case job.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case job.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case job.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case job.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case job.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, job.FieldPriority)
	}
	if m.addretries != nil {
		fields = append(fields, job.FieldRetries)
	}
	if m.addmax_retries != nil {
		fields = append(fields, job.FieldMaxRetries)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case job.FieldPriority:
		return m.AddedPriority()
	case job.FieldRetries:
		return m.AddedRetries()
	case job.FieldMaxRetries:
		return m.AddedMaxRetries()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case job.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case job.FieldRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetries(v)
		return nil
	case job.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxRetries(v)
		return nil
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldBackoffUntil) {
		fields = append(fields, job.FieldBackoffUntil)
	}
	if m.FieldCleared(job.FieldRequestedContext) {
		fields = append(fields, job.FieldRequestedContext)
	}
	if m.FieldCleared(job.FieldStartedAt) {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.FieldCleared(job.FieldFinishedAt) {
		fields = append(fields, job.FieldFinishedAt)
	}
	if m.FieldCleared(job.FieldErrorMessage) {
		fields = append(fields, job.FieldErrorMessage)
	}
	if m.FieldCleared(job.FieldPodID) {
		fields = append(fields, job.FieldPodID)
	}
	if m.FieldCleared(job.FieldLastHeartbeatAt) {
		fields = append(fields, job.FieldLastHeartbeatAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldBackoffUntil:
		m.ClearBackoffUntil()
		return nil
	case job.FieldRequestedContext:
		m.ClearRequestedContext()
		return nil
	case job.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case job.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case job.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case job.FieldPodID:
		m.ClearPodID()
		return nil
	case job.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case job.FieldTurnID:
		m.ResetTurnID()
		return nil
	case job.FieldSource:
		m.ResetSource()
		return nil
	case job.FieldStatus:
		m.ResetStatus()
		return nil
	case job.FieldPriority:
		m.ResetPriority()
		return nil
	case job.FieldRetries:
		m.ResetRetries()
		return nil
	case job.FieldMaxRetries:
		m.ResetMaxRetries()
		return nil
	case job.FieldBackoffUntil:
		m.ResetBackoffUntil()
		return nil
	case job.FieldRequestedContext:
		m.ResetRequestedContext()
		return nil
	case job.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case job.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case job.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case job.FieldPodID:
		m.ResetPodID()
		return nil
	case job.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.turn != nil {
		edges = append(edges, job.EdgeTurn)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeTurn:
		if id := m.turn; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedturn {
		edges = append(edges, job.EdgeTurn)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	switch name {
	case job.EdgeTurn:
		return m.clearedturn
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	switch name {
	case job.EdgeTurn:
		m.ClearTurn()
		return nil
	}
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	switch name {
	case job.EdgeTurn:
		m.ResetTurn()
		return nil
	}
	return fmt.Errorf("unknown Job edge %s", name)
}

// LLMConfigMutation represents an operation that mutates the LLMConfig nodes in the graph.
type LLMConfigMutation struct {
	config
	op                Op
	typ               string
	id                *string
	workspace_id      *string
	provider          *llmconfig.Provider
	model             *string
	encrypted_api_key *[]byte
	base_url          *string
	api_version       *string
	enabled           *bool
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*LLMConfig, error)
	predicates        []predicate.LLMConfig
}

var _ ent.Mutation = (*LLMConfigMutation)(nil)

// llmconfigOption allows management of the mutation configuration using functional options.
type llmconfigOption func(*LLMConfigMutation)

// newLLMConfigMutation creates new mutation for the LLMConfig entity.
func newLLMConfigMutation(c config, op Op, opts ...llmconfigOption) *LLMConfigMutation {
	m := &LLMConfigMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMConfig,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMConfigID sets the ID field of the mutation.
func withLLMConfigID(id string) llmconfigOption {
	return func(m *LLMConfigMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMConfig
		)
		m.oldValue = func(ctx context.Context) (*LLMConfig, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMConfig.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMConfig sets the old LLMConfig of the mutation.
func withLLMConfig(node *LLMConfig) llmconfigOption {
	return func(m *LLMConfigMutation) {
		m.oldValue = func(context.Context) (*LLMConfig, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMConfigMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMConfigMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LLMConfig entities.
func (m *LLMConfigMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMConfigMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMConfigMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMConfig.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *LLMConfigMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *LLMConfigMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the LLMConfig entity.
// If the LLMConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMConfigMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *LLMConfigMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetProvider sets the "provider" field.
func (m *LLMConfigMutation) SetProvider(l llmconfig.Provider) {
	m.provider = &l
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMConfigMutation) Provider() (r llmconfig.Provider, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMConfig entity.
// If the LLMConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMConfigMutation) OldProvider(ctx context.Context) (v llmconfig.Provider, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMConfigMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMConfigMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMConfigMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMConfig entity.
// If the LLMConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMConfigMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMConfigMutation) ResetModel() {
	m.model = nil
}

// SetEncryptedAPIKey sets the "encrypted_api_key" field.
func (m *LLMConfigMutation) SetEncryptedAPIKey(b []byte) {
	m.encrypted_api_key = &b
}

// EncryptedAPIKey returns the value of the "encrypted_api_key" field in the mutation.
func (m *LLMConfigMutation) EncryptedAPIKey() (r []byte, exists bool) {
	v := m.encrypted_api_key
	if v == nil {
		return
	}
	return *v, true
}

// OldEncryptedAPIKey returns the old "encrypted_api_key" field's value of the LLMConfig entity.
// If the LLMConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMConfigMutation) OldEncryptedAPIKey(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEncryptedAPIKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEncryptedAPIKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEncryptedAPIKey: %w", err)
	}
	return oldValue.EncryptedAPIKey, nil
}

// ResetEncryptedAPIKey resets all changes to the "encrypted_api_key" field.
func (m *LLMConfigMutation) ResetEncryptedAPIKey() {
	m.encrypted_api_key = nil
}

// SetBaseURL sets the "base_url" field.
func (m *LLMConfigMutation) SetBaseURL(s string) {
	m.base_url = &s
}

// BaseURL returns the value of the "base_url" field in the mutation.
func (m *LLMConfigMutation) BaseURL() (r string, exists bool) {
	v := m.base_url
	if v == nil {
		return
	}
	return *v, true
}

// OldBaseURL returns the old "base_url" field's value of the LLMConfig entity.
// If the LLMConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMConfigMutation) OldBaseURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaseURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaseURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaseURL: %w", err)
	}
	return oldValue.BaseURL, nil
}

// ClearBaseURL clears the value of the "base_url" field.
func (m *LLMConfigMutation) ClearBaseURL() {
	m.base_url = nil
	m.clearedFields[llmconfig.FieldBaseURL] = struct{}{}
}

// BaseURLCleared returns if the "base_url" field was cleared in this mutation.
func (m *LLMConfigMutation) BaseURLCleared() bool {
	_, ok := m.clearedFields[llmconfig.FieldBaseURL]
	return ok
}

// ResetBaseURL resets all changes to the "base_url" field.
func (m *LLMConfigMutation) ResetBaseURL() {
	m.base_url = nil
	delete(m.clearedFields, llmconfig.FieldBaseURL)
}

// SetAPIVersion sets the "api_version" field.
func (m *LLMConfigMutation) SetAPIVersion(s string) {
	m.api_version = &s
}

// APIVersion returns the value of the "api_version" field in the mutation.
func (m *LLMConfigMutation) APIVersion() (r string, exists bool) {
	v := m.api_version
	if v == nil {
		return
	}
	return *v, true
}

// OldAPIVersion returns the old "api_version" field's value of the LLMConfig entity.
// If the LLMConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMConfigMutation) OldAPIVersion(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAPIVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAPIVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAPIVersion: %w", err)
	}
	return oldValue.APIVersion, nil
}

// ClearAPIVersion clears the value of the "api_version" field.
func (m *LLMConfigMutation) ClearAPIVersion() {
	m.api_version = nil
	m.clearedFields[llmconfig.FieldAPIVersion] = struct{}{}
}

// APIVersionCleared returns if the "api_version" field was cleared in this mutation.
func (m *LLMConfigMutation) APIVersionCleared() bool {
	_, ok := m.clearedFields[llmconfig.FieldAPIVersion]
	return ok
}

// ResetAPIVersion resets all changes to the "api_version" field.
func (m *LLMConfigMutation) ResetAPIVersion() {
	m.api_version = nil
	delete(m.clearedFields, llmconfig.FieldAPIVersion)
}

// SetEnabled sets the "enabled" field.
func (m *LLMConfigMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *LLMConfigMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the LLMConfig entity.
// If the LLMConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMConfigMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *LLMConfigMutation) ResetEnabled() {
	m.enabled = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *LLMConfigMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LLMConfigMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LLMConfig entity.
// If the LLMConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMConfigMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LLMConfigMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LLMConfigMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LLMConfigMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the LLMConfig entity.
// If the LLMConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMConfigMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LLMConfigMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the LLMConfigMutation builder.
func (m *LLMConfigMutation) Where(ps ...predicate.LLMConfig) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMConfigMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMConfigMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMConfig, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMConfigMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMConfigMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMConfig).
func (m *LLMConfigMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMConfigMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.workspace_id != nil {
		fields = append(fields, llmconfig.FieldWorkspaceID)
	}
	if m.provider != nil {
		fields = append(fields, llmconfig.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmconfig.FieldModel)
	}
	if m.encrypted_api_key != nil {
		fields = append(fields, llmconfig.FieldEncryptedAPIKey)
	}
	if m.base_url != nil {
		fields = append(fields, llmconfig.FieldBaseURL)
	}
	if m.api_version != nil {
		fields = append(fields, llmconfig.FieldAPIVersion)
	}
	if m.enabled != nil {
		fields = append(fields, llmconfig.FieldEnabled)
	}
	if m.created_at != nil {
		fields = append(fields, llmconfig.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, llmconfig.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMConfigMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmconfig.FieldWorkspaceID:
		return m.WorkspaceID()
	case llmconfig.FieldProvider:
		return m.Provider()
	case llmconfig.FieldModel:
		return m.Model()
	case llmconfig.FieldEncryptedAPIKey:
		return m.EncryptedAPIKey()
	case llmconfig.FieldBaseURL:
		return m.BaseURL()
	case llmconfig.FieldAPIVersion:
		return m.APIVersion()
	case llmconfig.FieldEnabled:
		return m.Enabled()
	case llmconfig.FieldCreatedAt:
		return m.CreatedAt()
	case llmconfig.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMConfigMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmconfig.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case llmconfig.FieldProvider:
		return m.OldProvider(ctx)
	case llmconfig.FieldModel:
		return m.OldModel(ctx)
	case llmconfig.FieldEncryptedAPIKey:
		return m.OldEncryptedAPIKey(ctx)
	case llmconfig.FieldBaseURL:
		return m.OldBaseURL(ctx)
	case llmconfig.FieldAPIVersion:
		return m.OldAPIVersion(ctx)
	case llmconfig.FieldEnabled:
		return m.OldEnabled(ctx)
	case llmconfig.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case llmconfig.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LLMConfig field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMConfigMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmconfig.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case llmconfig.FieldProvider:
		v, ok := value.(llmconfig.Provider)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmconfig.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmconfig.FieldEncryptedAPIKey:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEncryptedAPIKey(v)
		return nil
	case llmconfig.FieldBaseURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaseURL(v)
		return nil
	case llmconfig.FieldAPIVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAPIVersion(v)
		return nil
	case llmconfig.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case llmconfig.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case llmconfig.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LLMConfig field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMConfigMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMConfigMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMConfigMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown LLMConfig numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMConfigMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(llmconfig.FieldBaseURL) {
		fields = append(fields, llmconfig.FieldBaseURL)
	}
	if m.FieldCleared(llmconfig.FieldAPIVersion) {
		fields = append(fields, llmconfig.FieldAPIVersion)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMConfigMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMConfigMutation) ClearField(name string) error {
	switch name {
	case llmconfig.FieldBaseURL:
		m.ClearBaseURL()
		return nil
	case llmconfig.FieldAPIVersion:
		m.ClearAPIVersion()
		return nil
	}
	return fmt.Errorf("unknown LLMConfig nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMConfigMutation) ResetField(name string) error {
	switch name {
	case llmconfig.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case llmconfig.FieldProvider:
		m.ResetProvider()
		return nil
	case llmconfig.FieldModel:
		m.ResetModel()
		return nil
	case llmconfig.FieldEncryptedAPIKey:
		m.ResetEncryptedAPIKey()
		return nil
	case llmconfig.FieldBaseURL:
		m.ResetBaseURL()
		return nil
	case llmconfig.FieldAPIVersion:
		m.ResetAPIVersion()
		return nil
	case llmconfig.FieldEnabled:
		m.ResetEnabled()
		return nil
	case llmconfig.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case llmconfig.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown LLMConfig field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMConfigMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMConfigMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMConfigMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMConfigMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMConfigMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMConfigMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMConfigMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMConfig unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMConfigMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMConfig edge %s", name)
}

// QuotaCounterMutation represents an operation that mutates the QuotaCounter nodes in the graph.
type QuotaCounterMutation struct {
	config
	op             Op
	typ            string
	id             *string
	workspace_id   *string
	resource       *string
	window_key     *string
	count          *int
	addcount       *int
	limit_value    *int
	addlimit_value *int
	reset_at       *time.Time
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*QuotaCounter, error)
	predicates     []predicate.QuotaCounter
}

var _ ent.Mutation = (*QuotaCounterMutation)(nil)

// quotacounterOption allows management of the mutation configuration using functional options.
type quotacounterOption func(*QuotaCounterMutation)

// newQuotaCounterMutation creates new mutation for the QuotaCounter entity.
func newQuotaCounterMutation(c config, op Op, opts ...quotacounterOption) *QuotaCounterMutation {
	m := &QuotaCounterMutation{
		config:        c,
		op:            op,
		typ:           TypeQuotaCounter,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuotaCounterID sets the ID field of the mutation.
func withQuotaCounterID(id string) quotacounterOption {
	return func(m *QuotaCounterMutation) {
		var (
			err   error
			once  sync.Once
			value *QuotaCounter
		)
		m.oldValue = func(ctx context.Context) (*QuotaCounter, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuotaCounter.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuotaCounter sets the old QuotaCounter of the mutation.
func withQuotaCounter(node *QuotaCounter) quotacounterOption {
	return func(m *QuotaCounterMutation) {
		m.oldValue = func(context.Context) (*QuotaCounter, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuotaCounterMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuotaCounterMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of QuotaCounter entities.
func (m *QuotaCounterMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuotaCounterMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuotaCounterMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuotaCounter.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *QuotaCounterMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *QuotaCounterMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the QuotaCounter entity.
// If the QuotaCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuotaCounterMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *QuotaCounterMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetResource sets the "resource" field.
func (m *QuotaCounterMutation) SetResource(s string) {
	m.resource = &s
}

// Resource returns the value of the "resource" field in the mutation.
func (m *QuotaCounterMutation) Resource() (r string, exists bool) {
	v := m.resource
	if v == nil {
		return
	}
	return *v, true
}

// OldResource returns the old "resource" field's value of the QuotaCounter entity.
// If the QuotaCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuotaCounterMutation) OldResource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResource: %w", err)
	}
	return oldValue.Resource, nil
}

// ResetResource resets all changes to the "resource" field.
func (m *QuotaCounterMutation) ResetResource() {
	m.resource = nil
}

// SetWindowKey sets the "window_key" field.
func (m *QuotaCounterMutation) SetWindowKey(s string) {
	m.window_key = &s
}

// WindowKey returns the value of the "window_key" field in the mutation.
func (m *QuotaCounterMutation) WindowKey() (r string, exists bool) {
	v := m.window_key
	if v == nil {
		return
	}
	return *v, true
}

// OldWindowKey returns the old "window_key" field's value of the QuotaCounter entity.
// If the QuotaCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuotaCounterMutation) OldWindowKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindowKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindowKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindowKey: %w", err)
	}
	return oldValue.WindowKey, nil
}

// ResetWindowKey resets all changes to the "window_key" field.
func (m *QuotaCounterMutation) ResetWindowKey() {
	m.window_key = nil
}

// SetCount sets the "count" field.
func (m *QuotaCounterMutation) SetCount(i int) {
	m.count = &i
	m.addcount = nil
}

// Count returns the value of the "count" field in the mutation.
func (m *QuotaCounterMutation) Count() (r int, exists bool) {
	v := m.count
	if v == nil {
		return
	}
	return *v, true
}

// OldCount returns the old "count" field's value of the QuotaCounter entity.
// If the QuotaCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuotaCounterMutation) OldCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCount: %w", err)
	}
	return oldValue.Count, nil
}

// AddCount adds i to the "count" field.
func (m *QuotaCounterMutation) AddCount(i int) {
	if m.addcount != nil {
		*m.addcount += i
	} else {
		m.addcount = &i
	}
}

// AddedCount returns the value that was added to the "count" field in this mutation.
func (m *QuotaCounterMutation) AddedCount() (r int, exists bool) {
	v := m.addcount
	if v == nil {
		return
	}
	return *v, true
}

// ResetCount resets all changes to the "count" field.
func (m *QuotaCounterMutation) ResetCount() {
	m.count = nil
	m.addcount = nil
}

// SetLimitValue sets the "limit_value" field.
func (m *QuotaCounterMutation) SetLimitValue(i int) {
	m.limit_value = &i
	m.addlimit_value = nil
}

// LimitValue returns the value of the "limit_value" field in the mutation.
func (m *QuotaCounterMutation) LimitValue() (r int, exists bool) {
	v := m.limit_value
	if v == nil {
		return
	}
	return *v, true
}

// OldLimitValue returns the old "limit_value" field's value of the QuotaCounter entity.
// If the QuotaCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuotaCounterMutation) OldLimitValue(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLimitValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLimitValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLimitValue: %w", err)
	}
	return oldValue.LimitValue, nil
}

// AddLimitValue adds i to the "limit_value" field.
func (m *QuotaCounterMutation) AddLimitValue(i int) {
	if m.addlimit_value != nil {
		*m.addlimit_value += i
	} else {
		m.addlimit_value = &i
	}
}

// AddedLimitValue returns the value that was added to the "limit_value" field in this mutation.
func (m *QuotaCounterMutation) AddedLimitValue() (r int, exists bool) {
	v := m.addlimit_value
	if v == nil {
		return
	}
	return *v, true
}

// ResetLimitValue resets all changes to the "limit_value" field.
func (m *QuotaCounterMutation) ResetLimitValue() {
	m.limit_value = nil
	m.addlimit_value = nil
}

// SetResetAt sets the "reset_at" field.
func (m *QuotaCounterMutation) SetResetAt(t time.Time) {
	m.reset_at = &t
}

// ResetAt returns the value of the "reset_at" field in the mutation.
func (m *QuotaCounterMutation) ResetAt() (r time.Time, exists bool) {
	v := m.reset_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResetAt returns the old "reset_at" field's value of the QuotaCounter entity.
// If the QuotaCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuotaCounterMutation) OldResetAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResetAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResetAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResetAt: %w", err)
	}
	return oldValue.ResetAt, nil
}

// ResetResetAt resets all changes to the "reset_at" field.
func (m *QuotaCounterMutation) ResetResetAt() {
	m.reset_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *QuotaCounterMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QuotaCounterMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the QuotaCounter entity.
// If the QuotaCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuotaCounterMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QuotaCounterMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *QuotaCounterMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *QuotaCounterMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the QuotaCounter entity.
// If the QuotaCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuotaCounterMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *QuotaCounterMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the QuotaCounterMutation builder.
func (m *QuotaCounterMutation) Where(ps ...predicate.QuotaCounter) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuotaCounterMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuotaCounterMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuotaCounter, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuotaCounterMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuotaCounterMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuotaCounter).
func (m *QuotaCounterMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuotaCounterMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.workspace_id != nil {
		fields = append(fields, quotacounter.FieldWorkspaceID)
	}
	if m.resource != nil {
		fields = append(fields, quotacounter.FieldResource)
	}
	if m.window_key != nil {
		fields = append(fields, quotacounter.FieldWindowKey)
	}
	if m.count != nil {
		fields = append(fields, quotacounter.FieldCount)
	}
	if m.limit_value != nil {
		fields = append(fields, quotacounter.FieldLimitValue)
	}
	if m.reset_at != nil {
		fields = append(fields, quotacounter.FieldResetAt)
	}
	if m.created_at != nil {
		fields = append(fields, quotacounter.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, quotacounter.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuotaCounterMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case quotacounter.FieldWorkspaceID:
		return m.WorkspaceID()
	case quotacounter.FieldResource:
		return m.Resource()
	case quotacounter.FieldWindowKey:
		return m.WindowKey()
	case quotacounter.FieldCount:
		return m.Count()
	case quotacounter.FieldLimitValue:
		return m.LimitValue()
	case quotacounter.FieldResetAt:
		return m.ResetAt()
	case quotacounter.FieldCreatedAt:
		return m.CreatedAt()
	case quotacounter.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuotaCounterMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case quotacounter.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case quotacounter.FieldResource:
		return m.OldResource(ctx)
	case quotacounter.FieldWindowKey:
		return m.OldWindowKey(ctx)
	case quotacounter.FieldCount:
		return m.OldCount(ctx)
	case quotacounter.FieldLimitValue:
		return m.OldLimitValue(ctx)
	case quotacounter.FieldResetAt:
		return m.OldResetAt(ctx)
	case quotacounter.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case quotacounter.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown QuotaCounter field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuotaCounterMutation) SetField(name string, value ent.Value) error {
	switch name {
	case quotacounter.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case quotacounter.FieldResource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResource(v)
		return nil
	case quotacounter.FieldWindowKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindowKey(v)
		return nil
	case quotacounter.FieldCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCount(v)
		return nil
	case quotacounter.FieldLimitValue:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLimitValue(v)
		return nil
	case quotacounter.FieldResetAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResetAt(v)
		return nil
	case quotacounter.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case quotacounter.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown QuotaCounter field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuotaCounterMutation) AddedFields() []string {
	var fields []string
	if m.addcount != nil {
		fields = append(fields, quotacounter.FieldCount)
	}
	if m.addlimit_value != nil {
		fields = append(fields, quotacounter.FieldLimitValue)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuotaCounterMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case quotacounter.FieldCount:
		return m.AddedCount()
	case quotacounter.FieldLimitValue:
		return m.AddedLimitValue()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuotaCounterMutation) AddField(name string, value ent.Value) error {
	switch name {
	case quotacounter.FieldCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCount(v)
		return nil
	case quotacounter.FieldLimitValue:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLimitValue(v)
		return nil
	}
	return fmt.Errorf("unknown QuotaCounter numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuotaCounterMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuotaCounterMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuotaCounterMutation) ClearField(name string) error {
	return fmt.Errorf("unknown QuotaCounter nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuotaCounterMutation) ResetField(name string) error {
	switch name {
	case quotacounter.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case quotacounter.FieldResource:
		m.ResetResource()
		return nil
	case quotacounter.FieldWindowKey:
		m.ResetWindowKey()
		return nil
	case quotacounter.FieldCount:
		m.ResetCount()
		return nil
	case quotacounter.FieldLimitValue:
		m.ResetLimitValue()
		return nil
	case quotacounter.FieldResetAt:
		m.ResetResetAt()
		return nil
	case quotacounter.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case quotacounter.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown QuotaCounter field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuotaCounterMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuotaCounterMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuotaCounterMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuotaCounterMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuotaCounterMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuotaCounterMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuotaCounterMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QuotaCounter unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuotaCounterMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QuotaCounter edge %s", name)
}

// SecurityEventMutation represents an operation that mutates the SecurityEvent nodes in the graph.
type SecurityEventMutation struct {
	config
	op              Op
	typ             string
	id              *string
	workspace_id    *string
	user_id         *string
	event_type      *securityevent.EventType
	message_preview *string
	detail          *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*SecurityEvent, error)
	predicates      []predicate.SecurityEvent
}

var _ ent.Mutation = (*SecurityEventMutation)(nil)

// securityeventOption allows management of the mutation configuration using functional options.
type securityeventOption func(*SecurityEventMutation)

// newSecurityEventMutation creates new mutation for the SecurityEvent entity.
func newSecurityEventMutation(c config, op Op, opts ...securityeventOption) *SecurityEventMutation {
	m := &SecurityEventMutation{
		config:        c,
		op:            op,
		typ:           TypeSecurityEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSecurityEventID sets the ID field of the mutation.
func withSecurityEventID(id string) securityeventOption {
	return func(m *SecurityEventMutation) {
		var (
			err   error
			once  sync.Once
			value *SecurityEvent
		)
		m.oldValue = func(ctx context.Context) (*SecurityEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SecurityEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSecurityEvent sets the old SecurityEvent of the mutation.
func withSecurityEvent(node *SecurityEvent) securityeventOption {
	return func(m *SecurityEventMutation) {
		m.oldValue = func(context.Context) (*SecurityEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SecurityEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SecurityEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SecurityEvent entities.
func (m *SecurityEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SecurityEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SecurityEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SecurityEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *SecurityEventMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *SecurityEventMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the SecurityEvent entity.
// If the SecurityEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecurityEventMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *SecurityEventMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetUserID sets the "user_id" field.
func (m *SecurityEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SecurityEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the SecurityEvent entity.
// If the SecurityEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecurityEventMutation) OldUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *SecurityEventMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[securityevent.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *SecurityEventMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[securityevent.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SecurityEventMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, securityevent.FieldUserID)
}

// SetEventType sets the "event_type" field.
func (m *SecurityEventMutation) SetEventType(st securityevent.EventType) {
	m.event_type = &st
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *SecurityEventMutation) EventType() (r securityevent.EventType, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the SecurityEvent entity.
// If the SecurityEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecurityEventMutation) OldEventType(ctx context.Context) (v securityevent.EventType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *SecurityEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetMessagePreview sets the "message_preview" field.
func (m *SecurityEventMutation) SetMessagePreview(s string) {
	m.message_preview = &s
}

// MessagePreview returns the value of the "message_preview" field in the mutation.
func (m *SecurityEventMutation) MessagePreview() (r string, exists bool) {
	v := m.message_preview
	if v == nil {
		return
	}
	return *v, true
}

// OldMessagePreview returns the old "message_preview" field's value of the SecurityEvent entity.
// If the SecurityEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecurityEventMutation) OldMessagePreview(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessagePreview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessagePreview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessagePreview: %w", err)
	}
	return oldValue.MessagePreview, nil
}

// ResetMessagePreview resets all changes to the "message_preview" field.
func (m *SecurityEventMutation) ResetMessagePreview() {
	m.message_preview = nil
}

// SetDetail sets the "detail" field.
func (m *SecurityEventMutation) SetDetail(s string) {
	m.detail = &s
}

// Detail returns the value of the "detail" field in the mutation.
func (m *SecurityEventMutation) Detail() (r string, exists bool) {
	v := m.detail
	if v == nil {
		return
	}
	return *v, true
}

// OldDetail returns the old "detail" field's value of the SecurityEvent entity.
// If the SecurityEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecurityEventMutation) OldDetail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetail: %w", err)
	}
	return oldValue.Detail, nil
}

// ClearDetail clears the value of the "detail" field.
func (m *SecurityEventMutation) ClearDetail() {
	m.detail = nil
	m.clearedFields[securityevent.FieldDetail] = struct{}{}
}

// DetailCleared returns if the "detail" field was cleared in this mutation.
func (m *SecurityEventMutation) DetailCleared() bool {
	_, ok := m.clearedFields[securityevent.FieldDetail]
	return ok
}

// ResetDetail resets all changes to the "detail" field.
func (m *SecurityEventMutation) ResetDetail() {
	m.detail = nil
	delete(m.clearedFields, securityevent.FieldDetail)
}

// SetCreatedAt sets the "created_at" field.
func (m *SecurityEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SecurityEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SecurityEvent entity.
// If the SecurityEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecurityEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SecurityEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the SecurityEventMutation builder.
func (m *SecurityEventMutation) Where(ps ...predicate.SecurityEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SecurityEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SecurityEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SecurityEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SecurityEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SecurityEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SecurityEvent).
func (m *SecurityEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SecurityEventMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.workspace_id != nil {
		fields = append(fields, securityevent.FieldWorkspaceID)
	}
	if m.user_id != nil {
		fields = append(fields, securityevent.FieldUserID)
	}
	if m.event_type != nil {
		fields = append(fields, securityevent.FieldEventType)
	}
	if m.message_preview != nil {
		fields = append(fields, securityevent.FieldMessagePreview)
	}
	if m.detail != nil {
		fields = append(fields, securityevent.FieldDetail)
	}
	if m.created_at != nil {
		fields = append(fields, securityevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SecurityEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case securityevent.FieldWorkspaceID:
		return m.WorkspaceID()
	case securityevent.FieldUserID:
		return m.UserID()
	case securityevent.FieldEventType:
		return m.EventType()
	case securityevent.FieldMessagePreview:
		return m.MessagePreview()
	case securityevent.FieldDetail:
		return m.Detail()
	case securityevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SecurityEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case securityevent.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case securityevent.FieldUserID:
		return m.OldUserID(ctx)
	case securityevent.FieldEventType:
		return m.OldEventType(ctx)
	case securityevent.FieldMessagePreview:
		return m.OldMessagePreview(ctx)
	case securityevent.FieldDetail:
		return m.OldDetail(ctx)
	case securityevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SecurityEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SecurityEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case securityevent.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case securityevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case securityevent.FieldEventType:
		v, ok := value.(securityevent.EventType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case securityevent.FieldMessagePreview:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessagePreview(v)
		return nil
	case securityevent.FieldDetail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetail(v)
		return nil
	case securityevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SecurityEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SecurityEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SecurityEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SecurityEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SecurityEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SecurityEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(securityevent.FieldUserID) {
		fields = append(fields, securityevent.FieldUserID)
	}
	if m.FieldCleared(securityevent.FieldDetail) {
		fields = append(fields, securityevent.FieldDetail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SecurityEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SecurityEventMutation) ClearField(name string) error {
	switch name {
	case securityevent.FieldUserID:
		m.ClearUserID()
		return nil
	case securityevent.FieldDetail:
		m.ClearDetail()
		return nil
	}
	return fmt.Errorf("unknown SecurityEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SecurityEventMutation) ResetField(name string) error {
	switch name {
	case securityevent.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case securityevent.FieldUserID:
		m.ResetUserID()
		return nil
	case securityevent.FieldEventType:
		m.ResetEventType()
		return nil
	case securityevent.FieldMessagePreview:
		m.ResetMessagePreview()
		return nil
	case securityevent.FieldDetail:
		m.ResetDetail()
		return nil
	case securityevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SecurityEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SecurityEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SecurityEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SecurityEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SecurityEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SecurityEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SecurityEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SecurityEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SecurityEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SecurityEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SecurityEvent edge %s", name)
}

// TurnCommentMutation represents an operation that mutates the TurnComment nodes in the graph.
type TurnCommentMutation struct {
	config
	op            Op
	typ           string
	id            *string
	user_id       *string
	body          *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	turn          *string
	clearedturn   bool
	done          bool
	oldValue      func(context.Context) (*TurnComment, error)
	predicates    []predicate.TurnComment
}

var _ ent.Mutation = (*TurnCommentMutation)(nil)

// turncommentOption allows management of the mutation configuration using functional options.
type turncommentOption func(*TurnCommentMutation)

// newTurnCommentMutation creates new mutation for the TurnComment entity.
func newTurnCommentMutation(c config, op Op, opts ...turncommentOption) *TurnCommentMutation {
	m := &TurnCommentMutation{
		config:        c,
		op:            op,
		typ:           TypeTurnComment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTurnCommentID sets the ID field of the mutation.
func withTurnCommentID(id string) turncommentOption {
	return func(m *TurnCommentMutation) {
		var (
			err   error
			once  sync.Once
			value *TurnComment
		)
		m.oldValue = func(ctx context.Context) (*TurnComment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TurnComment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTurnComment sets the old TurnComment of the mutation.
func withTurnComment(node *TurnComment) turncommentOption {
	return func(m *TurnCommentMutation) {
		m.oldValue = func(context.Context) (*TurnComment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TurnCommentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TurnCommentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TurnComment entities.
func (m *TurnCommentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TurnCommentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TurnCommentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TurnComment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTurnID sets the "turn_id" field.
func (m *TurnCommentMutation) SetTurnID(s string) {
	m.turn = &s
}

// TurnID returns the value of the "turn_id" field in the mutation.
func (m *TurnCommentMutation) TurnID() (r string, exists bool) {
	v := m.turn
	if v == nil {
		return
	}
	return *v, true
}

// OldTurnID returns the old "turn_id" field's value of the TurnComment entity.
// If the TurnComment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnCommentMutation) OldTurnID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTurnID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTurnID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTurnID: %w", err)
	}
	return oldValue.TurnID, nil
}

// ResetTurnID resets all changes to the "turn_id" field.
func (m *TurnCommentMutation) ResetTurnID() {
	m.turn = nil
}

// SetUserID sets the "user_id" field.
func (m *TurnCommentMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *TurnCommentMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the TurnComment entity.
// If the TurnComment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnCommentMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *TurnCommentMutation) ResetUserID() {
	m.user_id = nil
}

// SetBody sets the "body" field.
func (m *TurnCommentMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *TurnCommentMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the TurnComment entity.
// If the TurnComment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnCommentMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *TurnCommentMutation) ResetBody() {
	m.body = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TurnCommentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TurnCommentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TurnComment entity.
// If the TurnComment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnCommentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TurnCommentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTurn clears the "turn" edge to the ChatTurn entity.
func (m *TurnCommentMutation) ClearTurn() {
	m.clearedturn = true
	m.clearedFields[turncomment.FieldTurnID] = struct{}{}
}

// TurnCleared reports if the "turn" edge to the ChatTurn entity was cleared.
func (m *TurnCommentMutation) TurnCleared() bool {
	return m.clearedturn
}

// TurnIDs returns the "turn" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TurnID instead. It exists only for internal usage by the builders.
func (m *TurnCommentMutation) TurnIDs() (ids []string) {
	if id := m.turn; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTurn resets all changes to the "turn" edge.
func (m *TurnCommentMutation) ResetTurn() {
	m.turn = nil
	m.clearedturn = false
}

// Where appends a list predicates to the TurnCommentMutation builder.
func (m *TurnCommentMutation) Where(ps ...predicate.TurnComment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TurnCommentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TurnCommentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TurnComment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TurnCommentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TurnCommentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TurnComment).
func (m *TurnCommentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TurnCommentMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.turn != nil {
		fields = append(fields, turncomment.FieldTurnID)
	}
	if m.user_id != nil {
		fields = append(fields, turncomment.FieldUserID)
	}
	if m.body != nil {
		fields = append(fields, turncomment.FieldBody)
	}
	if m.created_at != nil {
		fields = append(fields, turncomment.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TurnCommentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case turncomment.FieldTurnID:
		return m.TurnID()
	case turncomment.FieldUserID:
		return m.UserID()
	case turncomment.FieldBody:
		return m.Body()
	case turncomment.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TurnCommentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case turncomment.FieldTurnID:
		return m.OldTurnID(ctx)
	case turncomment.FieldUserID:
		return m.OldUserID(ctx)
	case turncomment.FieldBody:
		return m.OldBody(ctx)
	case turncomment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TurnComment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TurnCommentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case turncomment.FieldTurnID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTurnID(v)
		return nil
	case turncomment.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case turncomment.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case turncomment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TurnComment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TurnCommentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TurnCommentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TurnCommentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TurnComment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TurnCommentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TurnCommentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TurnCommentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TurnComment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TurnCommentMutation) ResetField(name string) error {
	switch name {
	case turncomment.FieldTurnID:
		m.ResetTurnID()
		return nil
	case turncomment.FieldUserID:
		m.ResetUserID()
		return nil
	case turncomment.FieldBody:
		m.ResetBody()
		return nil
	case turncomment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TurnComment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TurnCommentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.turn != nil {
		edges = append(edges, turncomment.EdgeTurn)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TurnCommentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case turncomment.EdgeTurn:
		if id := m.turn; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TurnCommentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TurnCommentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TurnCommentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedturn {
		edges = append(edges, turncomment.EdgeTurn)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TurnCommentMutation) EdgeCleared(name string) bool {
	switch name {
	case turncomment.EdgeTurn:
		return m.clearedturn
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TurnCommentMutation) ClearEdge(name string) error {
	switch name {
	case turncomment.EdgeTurn:
		m.ClearTurn()
		return nil
	}
	return fmt.Errorf("unknown TurnComment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TurnCommentMutation) ResetEdge(name string) error {
	switch name {
	case turncomment.EdgeTurn:
		m.ResetTurn()
		return nil
	}
	return fmt.Errorf("unknown TurnComment edge %s", name)
}

// TurnFeedbackMutation represents an operation that mutates the TurnFeedback nodes in the graph.
type TurnFeedbackMutation struct {
	config
	op            Op
	typ           string
	id            *string
	user_id       *string
	score         *int
	addscore      *int
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	turn          *string
	clearedturn   bool
	done          bool
	oldValue      func(context.Context) (*TurnFeedback, error)
	predicates    []predicate.TurnFeedback
}

var _ ent.Mutation = (*TurnFeedbackMutation)(nil)

// turnfeedbackOption allows management of the mutation configuration using functional options.
type turnfeedbackOption func(*TurnFeedbackMutation)

// newTurnFeedbackMutation creates new mutation for the TurnFeedback entity.
func newTurnFeedbackMutation(c config, op Op, opts ...turnfeedbackOption) *TurnFeedbackMutation {
	m := &TurnFeedbackMutation{
		config:        c,
		op:            op,
		typ:           TypeTurnFeedback,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTurnFeedbackID sets the ID field of the mutation.
func withTurnFeedbackID(id string) turnfeedbackOption {
	return func(m *TurnFeedbackMutation) {
		var (
			err   error
			once  sync.Once
			value *TurnFeedback
		)
		m.oldValue = func(ctx context.Context) (*TurnFeedback, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TurnFeedback.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTurnFeedback sets the old TurnFeedback of the mutation.
func withTurnFeedback(node *TurnFeedback) turnfeedbackOption {
	return func(m *TurnFeedbackMutation) {
		m.oldValue = func(context.Context) (*TurnFeedback, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TurnFeedbackMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TurnFeedbackMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TurnFeedback entities.
func (m *TurnFeedbackMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TurnFeedbackMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TurnFeedbackMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TurnFeedback.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTurnID sets the "turn_id" field.
func (m *TurnFeedbackMutation) SetTurnID(s string) {
	m.turn = &s
}

// TurnID returns the value of the "turn_id" field in the mutation.
func (m *TurnFeedbackMutation) TurnID() (r string, exists bool) {
	v := m.turn
	if v == nil {
		return
	}
	return *v, true
}

// OldTurnID returns the old "turn_id" field's value of the TurnFeedback entity.
// If the TurnFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnFeedbackMutation) OldTurnID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTurnID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTurnID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTurnID: %w", err)
	}
	return oldValue.TurnID, nil
}

// ResetTurnID resets all changes to the "turn_id" field.
func (m *TurnFeedbackMutation) ResetTurnID() {
	m.turn = nil
}

// SetUserID sets the "user_id" field.
func (m *TurnFeedbackMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *TurnFeedbackMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the TurnFeedback entity.
// If the TurnFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnFeedbackMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *TurnFeedbackMutation) ResetUserID() {
	m.user_id = nil
}

// SetScore sets the "score" field.
func (m *TurnFeedbackMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *TurnFeedbackMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the TurnFeedback entity.
// If the TurnFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnFeedbackMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *TurnFeedbackMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *TurnFeedbackMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *TurnFeedbackMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TurnFeedbackMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TurnFeedbackMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TurnFeedback entity.
// If the TurnFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnFeedbackMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TurnFeedbackMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TurnFeedbackMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TurnFeedbackMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TurnFeedback entity.
// If the TurnFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnFeedbackMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TurnFeedbackMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTurn clears the "turn" edge to the ChatTurn entity.
func (m *TurnFeedbackMutation) ClearTurn() {
	m.clearedturn = true
	m.clearedFields[turnfeedback.FieldTurnID] = struct{}{}
}

// TurnCleared reports if the "turn" edge to the ChatTurn entity was cleared.
func (m *TurnFeedbackMutation) TurnCleared() bool {
	return m.clearedturn
}

// TurnIDs returns the "turn" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TurnID instead. It exists only for internal usage by the builders.
func (m *TurnFeedbackMutation) TurnIDs() (ids []string) {
	if id := m.turn; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTurn resets all changes to the "turn" edge.
func (m *TurnFeedbackMutation) ResetTurn() {
	m.turn = nil
	m.clearedturn = false
}

// Where appends a list predicates to the TurnFeedbackMutation builder.
func (m *TurnFeedbackMutation) Where(ps ...predicate.TurnFeedback) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TurnFeedbackMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TurnFeedbackMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TurnFeedback, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TurnFeedbackMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TurnFeedbackMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TurnFeedback).
func (m *TurnFeedbackMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TurnFeedbackMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.turn != nil {
		fields = append(fields, turnfeedback.FieldTurnID)
	}
	if m.user_id != nil {
		fields = append(fields, turnfeedback.FieldUserID)
	}
	if m.score != nil {
		fields = append(fields, turnfeedback.FieldScore)
	}
	if m.created_at != nil {
		fields = append(fields, turnfeedback.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, turnfeedback.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TurnFeedbackMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case turnfeedback.FieldTurnID:
		return m.TurnID()
	case turnfeedback.FieldUserID:
		return m.UserID()
	case turnfeedback.FieldScore:
		return m.Score()
	case turnfeedback.FieldCreatedAt:
		return m.CreatedAt()
	case turnfeedback.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TurnFeedbackMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case turnfeedback.FieldTurnID:
		return m.OldTurnID(ctx)
	case turnfeedback.FieldUserID:
		return m.OldUserID(ctx)
	case turnfeedback.FieldScore:
		return m.OldScore(ctx)
	case turnfeedback.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case turnfeedback.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TurnFeedback field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TurnFeedbackMutation) SetField(name string, value ent.Value) error {
	switch name {
	case turnfeedback.FieldTurnID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTurnID(v)
		return nil
	case turnfeedback.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case turnfeedback.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case turnfeedback.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case turnfeedback.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TurnFeedback field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TurnFeedbackMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, turnfeedback.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TurnFeedbackMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case turnfeedback.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TurnFeedbackMutation) AddField(name string, value ent.Value) error {
	switch name {
	case turnfeedback.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown TurnFeedback numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TurnFeedbackMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TurnFeedbackMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TurnFeedbackMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TurnFeedback nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TurnFeedbackMutation) ResetField(name string) error {
	switch name {
	case turnfeedback.FieldTurnID:
		m.ResetTurnID()
		return nil
	case turnfeedback.FieldUserID:
		m.ResetUserID()
		return nil
	case turnfeedback.FieldScore:
		m.ResetScore()
		return nil
	case turnfeedback.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case turnfeedback.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TurnFeedback field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TurnFeedbackMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.turn != nil {
		edges = append(edges, turnfeedback.EdgeTurn)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TurnFeedbackMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case turnfeedback.EdgeTurn:
		if id := m.turn; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TurnFeedbackMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TurnFeedbackMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TurnFeedbackMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedturn {
		edges = append(edges, turnfeedback.EdgeTurn)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TurnFeedbackMutation) EdgeCleared(name string) bool {
	switch name {
	case turnfeedback.EdgeTurn:
		return m.clearedturn
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TurnFeedbackMutation) ClearEdge(name string) error {
	switch name {
	case turnfeedback.EdgeTurn:
		m.ClearTurn()
		return nil
	}
	return fmt.Errorf("unknown TurnFeedback unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TurnFeedbackMutation) ResetEdge(name string) error {
	switch name {
	case turnfeedback.EdgeTurn:
		m.ResetTurn()
		return nil
	}
	return fmt.Errorf("unknown TurnFeedback edge %s", name)
}

// TurnStepMutation represents an operation that mutates the TurnStep nodes in the graph.
type TurnStepMutation struct {
	config
	op            Op
	typ           string
	id            *string
	step_type     *turnstep.StepType
	tool_name     *string
	content       *string
	step_status   *turnstep.StepStatus
	sequence      *int
	addsequence   *int
	created_at    *time.Time
	clearedFields map[string]struct{}
	turn          *string
	clearedturn   bool
	done          bool
	oldValue      func(context.Context) (*TurnStep, error)
	predicates    []predicate.TurnStep
}

var _ ent.Mutation = (*TurnStepMutation)(nil)

// turnstepOption allows management of the mutation configuration using functional options.
type turnstepOption func(*TurnStepMutation)

// newTurnStepMutation creates new mutation for the TurnStep entity.
func newTurnStepMutation(c config, op Op, opts ...turnstepOption) *TurnStepMutation {
	m := &TurnStepMutation{
		config:        c,
		op:            op,
		typ:           TypeTurnStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTurnStepID sets the ID field of the mutation.
func withTurnStepID(id string) turnstepOption {
	return func(m *TurnStepMutation) {
		var (
			err   error
			once  sync.Once
			value *TurnStep
		)
		m.oldValue = func(ctx context.Context) (*TurnStep, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TurnStep.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTurnStep sets the old TurnStep of the mutation.
func withTurnStep(node *TurnStep) turnstepOption {
	return func(m *TurnStepMutation) {
		m.oldValue = func(context.Context) (*TurnStep, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TurnStepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TurnStepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TurnStep entities.
func (m *TurnStepMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TurnStepMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TurnStepMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TurnStep.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTurnID sets the "turn_id" field.
func (m *TurnStepMutation) SetTurnID(s string) {
	m.turn = &s
}

// TurnID returns the value of the "turn_id" field in the mutation.
func (m *TurnStepMutation) TurnID() (r string, exists bool) {
	v := m.turn
	if v == nil {
		return
	}
	return *v, true
}

// OldTurnID returns the old "turn_id" field's value of the TurnStep entity.
// If the TurnStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnStepMutation) OldTurnID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTurnID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTurnID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTurnID: %w", err)
	}
	return oldValue.TurnID, nil
}

// ResetTurnID resets all changes to the "turn_id" field.
func (m *TurnStepMutation) ResetTurnID() {
	m.turn = nil
}

// SetStepType sets the "step_type" field.
func (m *TurnStepMutation) SetStepType(tt turnstep.StepType) {
	m.step_type = &tt
}

// StepType returns the value of the "step_type" field in the mutation.
func (m *TurnStepMutation) StepType() (r turnstep.StepType, exists bool) {
	v := m.step_type
	if v == nil {
		return
	}
	return *v, true
}

// OldStepType returns the old "step_type" field's value of the TurnStep entity.
// If the TurnStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnStepMutation) OldStepType(ctx context.Context) (v turnstep.StepType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepType: %w", err)
	}
	return oldValue.StepType, nil
}

// ResetStepType resets all changes to the "step_type" field.
func (m *TurnStepMutation) ResetStepType() {
	m.step_type = nil
}

// SetToolName sets the "tool_name" field.
func (m *TurnStepMutation) SetToolName(s string) {
	m.tool_name = &s
}

// ToolName returns the value of the "tool_name" field in the mutation.
func (m *TurnStepMutation) ToolName() (r string, exists bool) {
	v := m.tool_name
	if v == nil {
		return
	}
	return *v, true
}

// OldToolName returns the old "tool_name" field's value of the TurnStep entity.
// If the TurnStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnStepMutation) OldToolName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolName: %w", err)
	}
	return oldValue.ToolName, nil
}

// ClearToolName clears the value of the "tool_name" field.
func (m *TurnStepMutation) ClearToolName() {
	m.tool_name = nil
	m.clearedFields[turnstep.FieldToolName] = struct{}{}
}

// ToolNameCleared returns if the "tool_name" field was cleared in this mutation.
func (m *TurnStepMutation) ToolNameCleared() bool {
	_, ok := m.clearedFields[turnstep.FieldToolName]
	return ok
}

// ResetToolName resets all changes to the "tool_name" field.
func (m *TurnStepMutation) ResetToolName() {
	m.tool_name = nil
	delete(m.clearedFields, turnstep.FieldToolName)
}

// SetContent sets the "content" field.
func (m *TurnStepMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *TurnStepMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the TurnStep entity.
// If the TurnStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnStepMutation) OldContent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ClearContent clears the value of the "content" field.
func (m *TurnStepMutation) ClearContent() {
	m.content = nil
	m.clearedFields[turnstep.FieldContent] = struct{}{}
}

// ContentCleared returns if the "content" field was cleared in this mutation.
func (m *TurnStepMutation) ContentCleared() bool {
	_, ok := m.clearedFields[turnstep.FieldContent]
	return ok
}

// ResetContent resets all changes to the "content" field.
func (m *TurnStepMutation) ResetContent() {
	m.content = nil
	delete(m.clearedFields, turnstep.FieldContent)
}

// SetStepStatus sets the "step_status" field.
func (m *TurnStepMutation) SetStepStatus(ts turnstep.StepStatus) {
	m.step_status = &ts
}

// StepStatus returns the value of the "step_status" field in the mutation.
func (m *TurnStepMutation) StepStatus() (r turnstep.StepStatus, exists bool) {
	v := m.step_status
	if v == nil {
		return
	}
	return *v, true
}

// OldStepStatus returns the old "step_status" field's value of the TurnStep entity.
// If the TurnStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnStepMutation) OldStepStatus(ctx context.Context) (v turnstep.StepStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepStatus: %w", err)
	}
	return oldValue.StepStatus, nil
}

// ResetStepStatus resets all changes to the "step_status" field.
func (m *TurnStepMutation) ResetStepStatus() {
	m.step_status = nil
}

// SetSequence sets the "sequence" field.
func (m *TurnStepMutation) SetSequence(i int) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *TurnStepMutation) Sequence() (r int, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the TurnStep entity.
// If the TurnStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnStepMutation) OldSequence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *TurnStepMutation) AddSequence(i int) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *TurnStepMutation) AddedSequence() (r int, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *TurnStepMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TurnStepMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TurnStepMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TurnStep entity.
// If the TurnStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TurnStepMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TurnStepMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTurn clears the "turn" edge to the ChatTurn entity.
func (m *TurnStepMutation) ClearTurn() {
	m.clearedturn = true
	m.clearedFields[turnstep.FieldTurnID] = struct{}{}
}

// TurnCleared reports if the "turn" edge to the ChatTurn entity was cleared.
func (m *TurnStepMutation) TurnCleared() bool {
	return m.clearedturn
}

// TurnIDs returns the "turn" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TurnID instead. It exists only for internal usage by the builders.
func (m *TurnStepMutation) TurnIDs() (ids []string) {
	if id := m.turn; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTurn resets all changes to the "turn" edge.
func (m *TurnStepMutation) ResetTurn() {
	m.turn = nil
	m.clearedturn = false
}

// Where appends a list predicates to the TurnStepMutation builder.
func (m *TurnStepMutation) Where(ps ...predicate.TurnStep) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TurnStepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TurnStepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TurnStep, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TurnStepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TurnStepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TurnStep).
func (m *TurnStepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TurnStepMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.turn != nil {
		fields = append(fields, turnstep.FieldTurnID)
	}
	if m.step_type != nil {
		fields = append(fields, turnstep.FieldStepType)
	}
	if m.tool_name != nil {
		fields = append(fields, turnstep.FieldToolName)
	}
	if m.content != nil {
		fields = append(fields, turnstep.FieldContent)
	}
	if m.step_status != nil {
		fields = append(fields, turnstep.FieldStepStatus)
	}
	if m.sequence != nil {
		fields = append(fields, turnstep.FieldSequence)
	}
	if m.created_at != nil {
		fields = append(fields, turnstep.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TurnStepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case turnstep.FieldTurnID:
		return m.TurnID()
	case turnstep.FieldStepType:
		return m.StepType()
	case turnstep.FieldToolName:
		return m.ToolName()
	case turnstep.FieldContent:
		return m.Content()
	case turnstep.FieldStepStatus:
		return m.StepStatus()
	case turnstep.FieldSequence:
		return m.Sequence()
	case turnstep.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TurnStepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case turnstep.FieldTurnID:
		return m.OldTurnID(ctx)
	case turnstep.FieldStepType:
		return m.OldStepType(ctx)
	case turnstep.FieldToolName:
		return m.OldToolName(ctx)
	case turnstep.FieldContent:
		return m.OldContent(ctx)
	case turnstep.FieldStepStatus:
		return m.OldStepStatus(ctx)
	case turnstep.FieldSequence:
		return m.OldSequence(ctx)
	case turnstep.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TurnStep field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TurnStepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case turnstep.FieldTurnID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTurnID(v)
		return nil
	case turnstep.FieldStepType:
		v, ok := value.(turnstep.StepType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepType(v)
		return nil
	case turnstep.FieldToolName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolName(v)
		return nil
	case turnstep.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case turnstep.FieldStepStatus:
		v, ok := value.(turnstep.StepStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepStatus(v)
		return nil
	case turnstep.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case turnstep.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TurnStep field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TurnStepMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, turnstep.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TurnStepMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case turnstep.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TurnStepMutation) AddField(name string, value ent.Value) error {
	switch name {
	case turnstep.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown TurnStep numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TurnStepMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(turnstep.FieldToolName) {
		fields = append(fields, turnstep.FieldToolName)
	}
	if m.FieldCleared(turnstep.FieldContent) {
		fields = append(fields, turnstep.FieldContent)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TurnStepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TurnStepMutation) ClearField(name string) error {
	switch name {
	case turnstep.FieldToolName:
		m.ClearToolName()
		return nil
	case turnstep.FieldContent:
		m.ClearContent()
		return nil
	}
	return fmt.Errorf("unknown TurnStep nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TurnStepMutation) ResetField(name string) error {
	switch name {
	case turnstep.FieldTurnID:
		m.ResetTurnID()
		return nil
	case turnstep.FieldStepType:
		m.ResetStepType()
		return nil
	case turnstep.FieldToolName:
		m.ResetToolName()
		return nil
	case turnstep.FieldContent:
		m.ResetContent()
		return nil
	case turnstep.FieldStepStatus:
		m.ResetStepStatus()
		return nil
	case turnstep.FieldSequence:
		m.ResetSequence()
		return nil
	case turnstep.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TurnStep field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TurnStepMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.turn != nil {
		edges = append(edges, turnstep.EdgeTurn)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TurnStepMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case turnstep.EdgeTurn:
		if id := m.turn; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TurnStepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TurnStepMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TurnStepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedturn {
		edges = append(edges, turnstep.EdgeTurn)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TurnStepMutation) EdgeCleared(name string) bool {
	switch name {
	case turnstep.EdgeTurn:
		return m.clearedturn
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TurnStepMutation) ClearEdge(name string) error {
	switch name {
	case turnstep.EdgeTurn:
		m.ClearTurn()
		return nil
	}
	return fmt.Errorf("unknown TurnStep unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TurnStepMutation) ResetEdge(name string) error {
	switch name {
	case turnstep.EdgeTurn:
		m.ResetTurn()
		return nil
	}
	return fmt.Errorf("unknown TurnStep edge %s", name)
}
