// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vibemonitor/rca/ent/chatsession"
	"github.com/vibemonitor/rca/ent/chatturn"
	"github.com/vibemonitor/rca/ent/predicate"
)

// ChatSessionUpdate is the builder for updating ChatSession entities.
type ChatSessionUpdate struct {
	config
	hooks    []Hook
	mutation *ChatSessionMutation
}

// Where appends a list predicates to the ChatSessionUpdate builder.
func (_u *ChatSessionUpdate) Where(ps ...predicate.ChatSession) *ChatSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ChatSessionUpdate) SetUserID(v string) *ChatSessionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableUserID(v *string) *ChatSessionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *ChatSessionUpdate) ClearUserID() *ChatSessionUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetOrigin sets the "origin" field.
func (_u *ChatSessionUpdate) SetOrigin(v chatsession.Origin) *ChatSessionUpdate {
	_u.mutation.SetOrigin(v)
	return _u
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableOrigin(v *chatsession.Origin) *ChatSessionUpdate {
	if v != nil {
		_u.SetOrigin(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ChatSessionUpdate) SetTitle(v string) *ChatSessionUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableTitle(v *string) *ChatSessionUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *ChatSessionUpdate) ClearTitle() *ChatSessionUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetExternalChannelID sets the "external_channel_id" field.
func (_u *ChatSessionUpdate) SetExternalChannelID(v string) *ChatSessionUpdate {
	_u.mutation.SetExternalChannelID(v)
	return _u
}

// SetNillableExternalChannelID sets the "external_channel_id" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableExternalChannelID(v *string) *ChatSessionUpdate {
	if v != nil {
		_u.SetExternalChannelID(*v)
	}
	return _u
}

// ClearExternalChannelID clears the value of the "external_channel_id" field.
func (_u *ChatSessionUpdate) ClearExternalChannelID() *ChatSessionUpdate {
	_u.mutation.ClearExternalChannelID()
	return _u
}

// SetExternalThreadTs sets the "external_thread_ts" field.
func (_u *ChatSessionUpdate) SetExternalThreadTs(v string) *ChatSessionUpdate {
	_u.mutation.SetExternalThreadTs(v)
	return _u
}

// SetNillableExternalThreadTs sets the "external_thread_ts" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableExternalThreadTs(v *string) *ChatSessionUpdate {
	if v != nil {
		_u.SetExternalThreadTs(*v)
	}
	return _u
}

// ClearExternalThreadTs clears the value of the "external_thread_ts" field.
func (_u *ChatSessionUpdate) ClearExternalThreadTs() *ChatSessionUpdate {
	_u.mutation.ClearExternalThreadTs()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChatSessionUpdate) SetUpdatedAt(v time.Time) *ChatSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddTurnIDs adds the "turns" edge to the ChatTurn entity by IDs.
func (_u *ChatSessionUpdate) AddTurnIDs(ids ...string) *ChatSessionUpdate {
	_u.mutation.AddTurnIDs(ids...)
	return _u
}

// AddTurns adds the "turns" edges to the ChatTurn entity.
func (_u *ChatSessionUpdate) AddTurns(v ...*ChatTurn) *ChatSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTurnIDs(ids...)
}

// Mutation returns the ChatSessionMutation object of the builder.
func (_u *ChatSessionUpdate) Mutation() *ChatSessionMutation {
	return _u.mutation
}

// ClearTurns clears all "turns" edges to the ChatTurn entity.
func (_u *ChatSessionUpdate) ClearTurns() *ChatSessionUpdate {
	_u.mutation.ClearTurns()
	return _u
}

// RemoveTurnIDs removes the "turns" edge to ChatTurn entities by IDs.
func (_u *ChatSessionUpdate) RemoveTurnIDs(ids ...string) *ChatSessionUpdate {
	_u.mutation.RemoveTurnIDs(ids...)
	return _u
}

// RemoveTurns removes "turns" edges to ChatTurn entities.
func (_u *ChatSessionUpdate) RemoveTurns(v ...*ChatTurn) *ChatSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTurnIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChatSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChatSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChatSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := chatsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatSessionUpdate) check() error {
	if v, ok := _u.mutation.Origin(); ok {
		if err := chatsession.OriginValidator(v); err != nil {
			return &ValidationError{Name: "origin", err: fmt.Errorf(`ent: validator failed for field "ChatSession.origin": %w`, err)}
		}
	}
	return nil
}

func (_u *ChatSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatsession.Table, chatsession.Columns, sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(chatsession.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(chatsession.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Origin(); ok {
		_spec.SetField(chatsession.FieldOrigin, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(chatsession.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(chatsession.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.ExternalChannelID(); ok {
		_spec.SetField(chatsession.FieldExternalChannelID, field.TypeString, value)
	}
	if _u.mutation.ExternalChannelIDCleared() {
		_spec.ClearField(chatsession.FieldExternalChannelID, field.TypeString)
	}
	if value, ok := _u.mutation.ExternalThreadTs(); ok {
		_spec.SetField(chatsession.FieldExternalThreadTs, field.TypeString, value)
	}
	if _u.mutation.ExternalThreadTsCleared() {
		_spec.ClearField(chatsession.FieldExternalThreadTs, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(chatsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TurnsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chatsession.TurnsTable,
			Columns: []string{chatsession.TurnsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatturn.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTurnsIDs(); len(nodes) > 0 && !_u.mutation.TurnsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chatsession.TurnsTable,
			Columns: []string{chatsession.TurnsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatturn.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TurnsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chatsession.TurnsTable,
			Columns: []string{chatsession.TurnsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatturn.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChatSessionUpdateOne is the builder for updating a single ChatSession entity.
type ChatSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChatSessionMutation
}

// SetUserID sets the "user_id" field.
func (_u *ChatSessionUpdateOne) SetUserID(v string) *ChatSessionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableUserID(v *string) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *ChatSessionUpdateOne) ClearUserID() *ChatSessionUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetOrigin sets the "origin" field.
func (_u *ChatSessionUpdateOne) SetOrigin(v chatsession.Origin) *ChatSessionUpdateOne {
	_u.mutation.SetOrigin(v)
	return _u
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableOrigin(v *chatsession.Origin) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetOrigin(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ChatSessionUpdateOne) SetTitle(v string) *ChatSessionUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableTitle(v *string) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *ChatSessionUpdateOne) ClearTitle() *ChatSessionUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetExternalChannelID sets the "external_channel_id" field.
func (_u *ChatSessionUpdateOne) SetExternalChannelID(v string) *ChatSessionUpdateOne {
	_u.mutation.SetExternalChannelID(v)
	return _u
}

// SetNillableExternalChannelID sets the "external_channel_id" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableExternalChannelID(v *string) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetExternalChannelID(*v)
	}
	return _u
}

// ClearExternalChannelID clears the value of the "external_channel_id" field.
func (_u *ChatSessionUpdateOne) ClearExternalChannelID() *ChatSessionUpdateOne {
	_u.mutation.ClearExternalChannelID()
	return _u
}

// SetExternalThreadTs sets the "external_thread_ts" field.
func (_u *ChatSessionUpdateOne) SetExternalThreadTs(v string) *ChatSessionUpdateOne {
	_u.mutation.SetExternalThreadTs(v)
	return _u
}

// SetNillableExternalThreadTs sets the "external_thread_ts" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableExternalThreadTs(v *string) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetExternalThreadTs(*v)
	}
	return _u
}

// ClearExternalThreadTs clears the value of the "external_thread_ts" field.
func (_u *ChatSessionUpdateOne) ClearExternalThreadTs() *ChatSessionUpdateOne {
	_u.mutation.ClearExternalThreadTs()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChatSessionUpdateOne) SetUpdatedAt(v time.Time) *ChatSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddTurnIDs adds the "turns" edge to the ChatTurn entity by IDs.
func (_u *ChatSessionUpdateOne) AddTurnIDs(ids ...string) *ChatSessionUpdateOne {
	_u.mutation.AddTurnIDs(ids...)
	return _u
}

// AddTurns adds the "turns" edges to the ChatTurn entity.
func (_u *ChatSessionUpdateOne) AddTurns(v ...*ChatTurn) *ChatSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTurnIDs(ids...)
}

// Mutation returns the ChatSessionMutation object of the builder.
func (_u *ChatSessionUpdateOne) Mutation() *ChatSessionMutation {
	return _u.mutation
}

// ClearTurns clears all "turns" edges to the ChatTurn entity.
func (_u *ChatSessionUpdateOne) ClearTurns() *ChatSessionUpdateOne {
	_u.mutation.ClearTurns()
	return _u
}

// RemoveTurnIDs removes the "turns" edge to ChatTurn entities by IDs.
func (_u *ChatSessionUpdateOne) RemoveTurnIDs(ids ...string) *ChatSessionUpdateOne {
	_u.mutation.RemoveTurnIDs(ids...)
	return _u
}

// RemoveTurns removes "turns" edges to ChatTurn entities.
func (_u *ChatSessionUpdateOne) RemoveTurns(v ...*ChatTurn) *ChatSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTurnIDs(ids...)
}

// Where appends a list predicates to the ChatSessionUpdate builder.
func (_u *ChatSessionUpdateOne) Where(ps ...predicate.ChatSession) *ChatSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChatSessionUpdateOne) Select(field string, fields ...string) *ChatSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChatSession entity.
func (_u *ChatSessionUpdateOne) Save(ctx context.Context) (*ChatSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatSessionUpdateOne) SaveX(ctx context.Context) *ChatSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChatSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChatSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := chatsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Origin(); ok {
		if err := chatsession.OriginValidator(v); err != nil {
			return &ValidationError{Name: "origin", err: fmt.Errorf(`ent: validator failed for field "ChatSession.origin": %w`, err)}
		}
	}
	return nil
}

func (_u *ChatSessionUpdateOne) sqlSave(ctx context.Context) (_node *ChatSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatsession.Table, chatsession.Columns, sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChatSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chatsession.FieldID)
		for _, f := range fields {
			if !chatsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chatsession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(chatsession.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(chatsession.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Origin(); ok {
		_spec.SetField(chatsession.FieldOrigin, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(chatsession.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(chatsession.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.ExternalChannelID(); ok {
		_spec.SetField(chatsession.FieldExternalChannelID, field.TypeString, value)
	}
	if _u.mutation.ExternalChannelIDCleared() {
		_spec.ClearField(chatsession.FieldExternalChannelID, field.TypeString)
	}
	if value, ok := _u.mutation.ExternalThreadTs(); ok {
		_spec.SetField(chatsession.FieldExternalThreadTs, field.TypeString, value)
	}
	if _u.mutation.ExternalThreadTsCleared() {
		_spec.ClearField(chatsession.FieldExternalThreadTs, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(chatsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TurnsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chatsession.TurnsTable,
			Columns: []string{chatsession.TurnsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatturn.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTurnsIDs(); len(nodes) > 0 && !_u.mutation.TurnsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chatsession.TurnsTable,
			Columns: []string{chatsession.TurnsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatturn.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TurnsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chatsession.TurnsTable,
			Columns: []string{chatsession.TurnsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatturn.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ChatSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
