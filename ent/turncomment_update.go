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
	"github.com/vibemonitor/rca/ent/turncomment"
)

// TurnCommentUpdate is the builder for updating TurnComment entities.
type TurnCommentUpdate struct {
	config
	hooks    []Hook
	mutation *TurnCommentMutation
}

// Where appends a list predicates to the TurnCommentUpdate builder.
func (_u *TurnCommentUpdate) Where(ps ...predicate.TurnComment) *TurnCommentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBody sets the "body" field.
func (_u *TurnCommentUpdate) SetBody(v string) *TurnCommentUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *TurnCommentUpdate) SetNillableBody(v *string) *TurnCommentUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// Mutation returns the TurnCommentMutation object of the builder.
func (_u *TurnCommentUpdate) Mutation() *TurnCommentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TurnCommentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TurnCommentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TurnCommentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TurnCommentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TurnCommentUpdate) check() error {
	if v, ok := _u.mutation.Body(); ok {
		if err := turncomment.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "TurnComment.body": %w`, err)}
		}
	}
	if _u.mutation.TurnCleared() && len(_u.mutation.TurnIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TurnComment.turn"`)
	}
	return nil
}

func (_u *TurnCommentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(turncomment.Table, turncomment.Columns, sqlgraph.NewFieldSpec(turncomment.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(turncomment.FieldBody, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{turncomment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TurnCommentUpdateOne is the builder for updating a single TurnComment entity.
type TurnCommentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TurnCommentMutation
}

// SetBody sets the "body" field.
func (_u *TurnCommentUpdateOne) SetBody(v string) *TurnCommentUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *TurnCommentUpdateOne) SetNillableBody(v *string) *TurnCommentUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// Mutation returns the TurnCommentMutation object of the builder.
func (_u *TurnCommentUpdateOne) Mutation() *TurnCommentMutation {
	return _u.mutation
}

// Where appends a list predicates to the TurnCommentUpdate builder.
func (_u *TurnCommentUpdateOne) Where(ps ...predicate.TurnComment) *TurnCommentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TurnCommentUpdateOne) Select(field string, fields ...string) *TurnCommentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TurnComment entity.
func (_u *TurnCommentUpdateOne) Save(ctx context.Context) (*TurnComment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TurnCommentUpdateOne) SaveX(ctx context.Context) *TurnComment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TurnCommentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TurnCommentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TurnCommentUpdateOne) check() error {
	if v, ok := _u.mutation.Body(); ok {
		if err := turncomment.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "TurnComment.body": %w`, err)}
		}
	}
	if _u.mutation.TurnCleared() && len(_u.mutation.TurnIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TurnComment.turn"`)
	}
	return nil
}

func (_u *TurnCommentUpdateOne) sqlSave(ctx context.Context) (_node *TurnComment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(turncomment.Table, turncomment.Columns, sqlgraph.NewFieldSpec(turncomment.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TurnComment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, turncomment.FieldID)
		for _, f := range fields {
			if !turncomment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != turncomment.FieldID {
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
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(turncomment.FieldBody, field.TypeString, value)
	}
	_node = &TurnComment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{turncomment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
