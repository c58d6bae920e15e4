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
	"github.com/vibemonitor/rca/ent/turnfeedback"
)

// TurnFeedbackUpdate is the builder for updating TurnFeedback entities.
type TurnFeedbackUpdate struct {
	config
	hooks    []Hook
	mutation *TurnFeedbackMutation
}

// Where appends a list predicates to the TurnFeedbackUpdate builder.
func (_u *TurnFeedbackUpdate) Where(ps ...predicate.TurnFeedback) *TurnFeedbackUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetScore sets the "score" field.
func (_u *TurnFeedbackUpdate) SetScore(v int) *TurnFeedbackUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *TurnFeedbackUpdate) SetNillableScore(v *int) *TurnFeedbackUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *TurnFeedbackUpdate) AddScore(v int) *TurnFeedbackUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TurnFeedbackUpdate) SetUpdatedAt(v time.Time) *TurnFeedbackUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TurnFeedbackMutation object of the builder.
func (_u *TurnFeedbackUpdate) Mutation() *TurnFeedbackMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TurnFeedbackUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TurnFeedbackUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TurnFeedbackUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TurnFeedbackUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TurnFeedbackUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := turnfeedback.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TurnFeedbackUpdate) check() error {
	if _u.mutation.TurnCleared() && len(_u.mutation.TurnIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TurnFeedback.turn"`)
	}
	return nil
}

func (_u *TurnFeedbackUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(turnfeedback.Table, turnfeedback.Columns, sqlgraph.NewFieldSpec(turnfeedback.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(turnfeedback.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(turnfeedback.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(turnfeedback.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{turnfeedback.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TurnFeedbackUpdateOne is the builder for updating a single TurnFeedback entity.
type TurnFeedbackUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TurnFeedbackMutation
}

// SetScore sets the "score" field.
func (_u *TurnFeedbackUpdateOne) SetScore(v int) *TurnFeedbackUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *TurnFeedbackUpdateOne) SetNillableScore(v *int) *TurnFeedbackUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *TurnFeedbackUpdateOne) AddScore(v int) *TurnFeedbackUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TurnFeedbackUpdateOne) SetUpdatedAt(v time.Time) *TurnFeedbackUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TurnFeedbackMutation object of the builder.
func (_u *TurnFeedbackUpdateOne) Mutation() *TurnFeedbackMutation {
	return _u.mutation
}

// Where appends a list predicates to the TurnFeedbackUpdate builder.
func (_u *TurnFeedbackUpdateOne) Where(ps ...predicate.TurnFeedback) *TurnFeedbackUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TurnFeedbackUpdateOne) Select(field string, fields ...string) *TurnFeedbackUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TurnFeedback entity.
func (_u *TurnFeedbackUpdateOne) Save(ctx context.Context) (*TurnFeedback, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TurnFeedbackUpdateOne) SaveX(ctx context.Context) *TurnFeedback {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TurnFeedbackUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TurnFeedbackUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TurnFeedbackUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := turnfeedback.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TurnFeedbackUpdateOne) check() error {
	if _u.mutation.TurnCleared() && len(_u.mutation.TurnIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TurnFeedback.turn"`)
	}
	return nil
}

func (_u *TurnFeedbackUpdateOne) sqlSave(ctx context.Context) (_node *TurnFeedback, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(turnfeedback.Table, turnfeedback.Columns, sqlgraph.NewFieldSpec(turnfeedback.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TurnFeedback.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, turnfeedback.FieldID)
		for _, f := range fields {
			if !turnfeedback.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != turnfeedback.FieldID {
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
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(turnfeedback.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(turnfeedback.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(turnfeedback.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &TurnFeedback{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{turnfeedback.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
