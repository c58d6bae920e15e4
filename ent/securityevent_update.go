// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vibemonitor/rca/ent/predicate"
	"github.com/vibemonitor/rca/ent/securityevent"
)

// SecurityEventUpdate is the builder for updating SecurityEvent entities.
type SecurityEventUpdate struct {
	config
	hooks    []Hook
	mutation *SecurityEventMutation
}

// Where appends a list predicates to the SecurityEventUpdate builder.
func (_u *SecurityEventUpdate) Where(ps ...predicate.SecurityEvent) *SecurityEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SecurityEventUpdate) SetUserID(v string) *SecurityEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SecurityEventUpdate) SetNillableUserID(v *string) *SecurityEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *SecurityEventUpdate) ClearUserID() *SecurityEventUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *SecurityEventUpdate) SetEventType(v securityevent.EventType) *SecurityEventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *SecurityEventUpdate) SetNillableEventType(v *securityevent.EventType) *SecurityEventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetMessagePreview sets the "message_preview" field.
func (_u *SecurityEventUpdate) SetMessagePreview(v string) *SecurityEventUpdate {
	_u.mutation.SetMessagePreview(v)
	return _u
}

// SetNillableMessagePreview sets the "message_preview" field if the given value is not nil.
func (_u *SecurityEventUpdate) SetNillableMessagePreview(v *string) *SecurityEventUpdate {
	if v != nil {
		_u.SetMessagePreview(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *SecurityEventUpdate) SetDetail(v string) *SecurityEventUpdate {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *SecurityEventUpdate) SetNillableDetail(v *string) *SecurityEventUpdate {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *SecurityEventUpdate) ClearDetail() *SecurityEventUpdate {
	_u.mutation.ClearDetail()
	return _u
}

// Mutation returns the SecurityEventMutation object of the builder.
func (_u *SecurityEventUpdate) Mutation() *SecurityEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SecurityEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SecurityEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SecurityEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SecurityEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SecurityEventUpdate) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := securityevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "SecurityEvent.event_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MessagePreview(); ok {
		if err := securityevent.MessagePreviewValidator(v); err != nil {
			return &ValidationError{Name: "message_preview", err: fmt.Errorf(`ent: validator failed for field "SecurityEvent.message_preview": %w`, err)}
		}
	}
	return nil
}

func (_u *SecurityEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(securityevent.Table, securityevent.Columns, sqlgraph.NewFieldSpec(securityevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(securityevent.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(securityevent.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(securityevent.FieldEventType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MessagePreview(); ok {
		_spec.SetField(securityevent.FieldMessagePreview, field.TypeString, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(securityevent.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(securityevent.FieldDetail, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{securityevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SecurityEventUpdateOne is the builder for updating a single SecurityEvent entity.
type SecurityEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SecurityEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *SecurityEventUpdateOne) SetUserID(v string) *SecurityEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SecurityEventUpdateOne) SetNillableUserID(v *string) *SecurityEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *SecurityEventUpdateOne) ClearUserID() *SecurityEventUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *SecurityEventUpdateOne) SetEventType(v securityevent.EventType) *SecurityEventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *SecurityEventUpdateOne) SetNillableEventType(v *securityevent.EventType) *SecurityEventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetMessagePreview sets the "message_preview" field.
func (_u *SecurityEventUpdateOne) SetMessagePreview(v string) *SecurityEventUpdateOne {
	_u.mutation.SetMessagePreview(v)
	return _u
}

// SetNillableMessagePreview sets the "message_preview" field if the given value is not nil.
func (_u *SecurityEventUpdateOne) SetNillableMessagePreview(v *string) *SecurityEventUpdateOne {
	if v != nil {
		_u.SetMessagePreview(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *SecurityEventUpdateOne) SetDetail(v string) *SecurityEventUpdateOne {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *SecurityEventUpdateOne) SetNillableDetail(v *string) *SecurityEventUpdateOne {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *SecurityEventUpdateOne) ClearDetail() *SecurityEventUpdateOne {
	_u.mutation.ClearDetail()
	return _u
}

// Mutation returns the SecurityEventMutation object of the builder.
func (_u *SecurityEventUpdateOne) Mutation() *SecurityEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SecurityEventUpdate builder.
func (_u *SecurityEventUpdateOne) Where(ps ...predicate.SecurityEvent) *SecurityEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SecurityEventUpdateOne) Select(field string, fields ...string) *SecurityEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SecurityEvent entity.
func (_u *SecurityEventUpdateOne) Save(ctx context.Context) (*SecurityEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SecurityEventUpdateOne) SaveX(ctx context.Context) *SecurityEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SecurityEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SecurityEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SecurityEventUpdateOne) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := securityevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "SecurityEvent.event_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MessagePreview(); ok {
		if err := securityevent.MessagePreviewValidator(v); err != nil {
			return &ValidationError{Name: "message_preview", err: fmt.Errorf(`ent: validator failed for field "SecurityEvent.message_preview": %w`, err)}
		}
	}
	return nil
}

func (_u *SecurityEventUpdateOne) sqlSave(ctx context.Context) (_node *SecurityEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(securityevent.Table, securityevent.Columns, sqlgraph.NewFieldSpec(securityevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SecurityEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, securityevent.FieldID)
		for _, f := range fields {
			if !securityevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != securityevent.FieldID {
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
		_spec.SetField(securityevent.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(securityevent.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(securityevent.FieldEventType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MessagePreview(); ok {
		_spec.SetField(securityevent.FieldMessagePreview, field.TypeString, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(securityevent.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(securityevent.FieldDetail, field.TypeString)
	}
	_node = &SecurityEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{securityevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
