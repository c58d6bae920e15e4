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
	"github.com/vibemonitor/rca/ent/predicate"
	"github.com/vibemonitor/rca/ent/quotacounter"
)

// QuotaCounterUpdate is the builder for updating QuotaCounter entities.
type QuotaCounterUpdate struct {
	config
	hooks    []Hook
	mutation *QuotaCounterMutation
}

// Where appends a list predicates to the QuotaCounterUpdate builder.
func (_u *QuotaCounterUpdate) Where(ps ...predicate.QuotaCounter) *QuotaCounterUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetResource sets the "resource" field.
func (_u *QuotaCounterUpdate) SetResource(v string) *QuotaCounterUpdate {
	_u.mutation.SetResource(v)
	return _u
}

// SetNillableResource sets the "resource" field if the given value is not nil.
func (_u *QuotaCounterUpdate) SetNillableResource(v *string) *QuotaCounterUpdate {
	if v != nil {
		_u.SetResource(*v)
	}
	return _u
}

// SetWindowKey sets the "window_key" field.
func (_u *QuotaCounterUpdate) SetWindowKey(v string) *QuotaCounterUpdate {
	_u.mutation.SetWindowKey(v)
	return _u
}

// SetNillableWindowKey sets the "window_key" field if the given value is not nil.
func (_u *QuotaCounterUpdate) SetNillableWindowKey(v *string) *QuotaCounterUpdate {
	if v != nil {
		_u.SetWindowKey(*v)
	}
	return _u
}

// SetCount sets the "count" field.
func (_u *QuotaCounterUpdate) SetCount(v int) *QuotaCounterUpdate {
	_u.mutation.ResetCount()
	_u.mutation.SetCount(v)
	return _u
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_u *QuotaCounterUpdate) SetNillableCount(v *int) *QuotaCounterUpdate {
	if v != nil {
		_u.SetCount(*v)
	}
	return _u
}

// AddCount adds value to the "count" field.
func (_u *QuotaCounterUpdate) AddCount(v int) *QuotaCounterUpdate {
	_u.mutation.AddCount(v)
	return _u
}

// SetLimitValue sets the "limit_value" field.
func (_u *QuotaCounterUpdate) SetLimitValue(v int) *QuotaCounterUpdate {
	_u.mutation.ResetLimitValue()
	_u.mutation.SetLimitValue(v)
	return _u
}

// SetNillableLimitValue sets the "limit_value" field if the given value is not nil.
func (_u *QuotaCounterUpdate) SetNillableLimitValue(v *int) *QuotaCounterUpdate {
	if v != nil {
		_u.SetLimitValue(*v)
	}
	return _u
}

// AddLimitValue adds value to the "limit_value" field.
func (_u *QuotaCounterUpdate) AddLimitValue(v int) *QuotaCounterUpdate {
	_u.mutation.AddLimitValue(v)
	return _u
}

// SetResetAt sets the "reset_at" field.
func (_u *QuotaCounterUpdate) SetResetAt(v time.Time) *QuotaCounterUpdate {
	_u.mutation.SetResetAt(v)
	return _u
}

// SetNillableResetAt sets the "reset_at" field if the given value is not nil.
func (_u *QuotaCounterUpdate) SetNillableResetAt(v *time.Time) *QuotaCounterUpdate {
	if v != nil {
		_u.SetResetAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuotaCounterUpdate) SetUpdatedAt(v time.Time) *QuotaCounterUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the QuotaCounterMutation object of the builder.
func (_u *QuotaCounterUpdate) Mutation() *QuotaCounterMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuotaCounterUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuotaCounterUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuotaCounterUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuotaCounterUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuotaCounterUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := quotacounter.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *QuotaCounterUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(quotacounter.Table, quotacounter.Columns, sqlgraph.NewFieldSpec(quotacounter.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Resource(); ok {
		_spec.SetField(quotacounter.FieldResource, field.TypeString, value)
	}
	if value, ok := _u.mutation.WindowKey(); ok {
		_spec.SetField(quotacounter.FieldWindowKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Count(); ok {
		_spec.SetField(quotacounter.FieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCount(); ok {
		_spec.AddField(quotacounter.FieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LimitValue(); ok {
		_spec.SetField(quotacounter.FieldLimitValue, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLimitValue(); ok {
		_spec.AddField(quotacounter.FieldLimitValue, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResetAt(); ok {
		_spec.SetField(quotacounter.FieldResetAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(quotacounter.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quotacounter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuotaCounterUpdateOne is the builder for updating a single QuotaCounter entity.
type QuotaCounterUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuotaCounterMutation
}

// SetResource sets the "resource" field.
func (_u *QuotaCounterUpdateOne) SetResource(v string) *QuotaCounterUpdateOne {
	_u.mutation.SetResource(v)
	return _u
}

// SetNillableResource sets the "resource" field if the given value is not nil.
func (_u *QuotaCounterUpdateOne) SetNillableResource(v *string) *QuotaCounterUpdateOne {
	if v != nil {
		_u.SetResource(*v)
	}
	return _u
}

// SetWindowKey sets the "window_key" field.
func (_u *QuotaCounterUpdateOne) SetWindowKey(v string) *QuotaCounterUpdateOne {
	_u.mutation.SetWindowKey(v)
	return _u
}

// SetNillableWindowKey sets the "window_key" field if the given value is not nil.
func (_u *QuotaCounterUpdateOne) SetNillableWindowKey(v *string) *QuotaCounterUpdateOne {
	if v != nil {
		_u.SetWindowKey(*v)
	}
	return _u
}

// SetCount sets the "count" field.
func (_u *QuotaCounterUpdateOne) SetCount(v int) *QuotaCounterUpdateOne {
	_u.mutation.ResetCount()
	_u.mutation.SetCount(v)
	return _u
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_u *QuotaCounterUpdateOne) SetNillableCount(v *int) *QuotaCounterUpdateOne {
	if v != nil {
		_u.SetCount(*v)
	}
	return _u
}

// AddCount adds value to the "count" field.
func (_u *QuotaCounterUpdateOne) AddCount(v int) *QuotaCounterUpdateOne {
	_u.mutation.AddCount(v)
	return _u
}

// SetLimitValue sets the "limit_value" field.
func (_u *QuotaCounterUpdateOne) SetLimitValue(v int) *QuotaCounterUpdateOne {
	_u.mutation.ResetLimitValue()
	_u.mutation.SetLimitValue(v)
	return _u
}

// SetNillableLimitValue sets the "limit_value" field if the given value is not nil.
func (_u *QuotaCounterUpdateOne) SetNillableLimitValue(v *int) *QuotaCounterUpdateOne {
	if v != nil {
		_u.SetLimitValue(*v)
	}
	return _u
}

// AddLimitValue adds value to the "limit_value" field.
func (_u *QuotaCounterUpdateOne) AddLimitValue(v int) *QuotaCounterUpdateOne {
	_u.mutation.AddLimitValue(v)
	return _u
}

// SetResetAt sets the "reset_at" field.
func (_u *QuotaCounterUpdateOne) SetResetAt(v time.Time) *QuotaCounterUpdateOne {
	_u.mutation.SetResetAt(v)
	return _u
}

// SetNillableResetAt sets the "reset_at" field if the given value is not nil.
func (_u *QuotaCounterUpdateOne) SetNillableResetAt(v *time.Time) *QuotaCounterUpdateOne {
	if v != nil {
		_u.SetResetAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuotaCounterUpdateOne) SetUpdatedAt(v time.Time) *QuotaCounterUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the QuotaCounterMutation object of the builder.
func (_u *QuotaCounterUpdateOne) Mutation() *QuotaCounterMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuotaCounterUpdate builder.
func (_u *QuotaCounterUpdateOne) Where(ps ...predicate.QuotaCounter) *QuotaCounterUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuotaCounterUpdateOne) Select(field string, fields ...string) *QuotaCounterUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuotaCounter entity.
func (_u *QuotaCounterUpdateOne) Save(ctx context.Context) (*QuotaCounter, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuotaCounterUpdateOne) SaveX(ctx context.Context) *QuotaCounter {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuotaCounterUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuotaCounterUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuotaCounterUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := quotacounter.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *QuotaCounterUpdateOne) sqlSave(ctx context.Context) (_node *QuotaCounter, err error) {
	_spec := sqlgraph.NewUpdateSpec(quotacounter.Table, quotacounter.Columns, sqlgraph.NewFieldSpec(quotacounter.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuotaCounter.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quotacounter.FieldID)
		for _, f := range fields {
			if !quotacounter.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quotacounter.FieldID {
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
	if value, ok := _u.mutation.Resource(); ok {
		_spec.SetField(quotacounter.FieldResource, field.TypeString, value)
	}
	if value, ok := _u.mutation.WindowKey(); ok {
		_spec.SetField(quotacounter.FieldWindowKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Count(); ok {
		_spec.SetField(quotacounter.FieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCount(); ok {
		_spec.AddField(quotacounter.FieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LimitValue(); ok {
		_spec.SetField(quotacounter.FieldLimitValue, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLimitValue(); ok {
		_spec.AddField(quotacounter.FieldLimitValue, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResetAt(); ok {
		_spec.SetField(quotacounter.FieldResetAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(quotacounter.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &QuotaCounter{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quotacounter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
