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
	"github.com/vibemonitor/rca/ent/turnstep"
)

// TurnStepUpdate is the builder for updating TurnStep entities.
type TurnStepUpdate struct {
	config
	hooks    []Hook
	mutation *TurnStepMutation
}

// Where appends a list predicates to the TurnStepUpdate builder.
func (_u *TurnStepUpdate) Where(ps ...predicate.TurnStep) *TurnStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStepType sets the "step_type" field.
func (_u *TurnStepUpdate) SetStepType(v turnstep.StepType) *TurnStepUpdate {
	_u.mutation.SetStepType(v)
	return _u
}

// SetNillableStepType sets the "step_type" field if the given value is not nil.
func (_u *TurnStepUpdate) SetNillableStepType(v *turnstep.StepType) *TurnStepUpdate {
	if v != nil {
		_u.SetStepType(*v)
	}
	return _u
}

// SetToolName sets the "tool_name" field.
func (_u *TurnStepUpdate) SetToolName(v string) *TurnStepUpdate {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *TurnStepUpdate) SetNillableToolName(v *string) *TurnStepUpdate {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// ClearToolName clears the value of the "tool_name" field.
func (_u *TurnStepUpdate) ClearToolName() *TurnStepUpdate {
	_u.mutation.ClearToolName()
	return _u
}

// SetContent sets the "content" field.
func (_u *TurnStepUpdate) SetContent(v string) *TurnStepUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *TurnStepUpdate) SetNillableContent(v *string) *TurnStepUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *TurnStepUpdate) ClearContent() *TurnStepUpdate {
	_u.mutation.ClearContent()
	return _u
}

// SetStepStatus sets the "step_status" field.
func (_u *TurnStepUpdate) SetStepStatus(v turnstep.StepStatus) *TurnStepUpdate {
	_u.mutation.SetStepStatus(v)
	return _u
}

// SetNillableStepStatus sets the "step_status" field if the given value is not nil.
func (_u *TurnStepUpdate) SetNillableStepStatus(v *turnstep.StepStatus) *TurnStepUpdate {
	if v != nil {
		_u.SetStepStatus(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *TurnStepUpdate) SetSequence(v int) *TurnStepUpdate {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *TurnStepUpdate) SetNillableSequence(v *int) *TurnStepUpdate {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *TurnStepUpdate) AddSequence(v int) *TurnStepUpdate {
	_u.mutation.AddSequence(v)
	return _u
}

// Mutation returns the TurnStepMutation object of the builder.
func (_u *TurnStepUpdate) Mutation() *TurnStepMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TurnStepUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TurnStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TurnStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TurnStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TurnStepUpdate) check() error {
	if v, ok := _u.mutation.StepType(); ok {
		if err := turnstep.StepTypeValidator(v); err != nil {
			return &ValidationError{Name: "step_type", err: fmt.Errorf(`ent: validator failed for field "TurnStep.step_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StepStatus(); ok {
		if err := turnstep.StepStatusValidator(v); err != nil {
			return &ValidationError{Name: "step_status", err: fmt.Errorf(`ent: validator failed for field "TurnStep.step_status": %w`, err)}
		}
	}
	if _u.mutation.TurnCleared() && len(_u.mutation.TurnIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TurnStep.turn"`)
	}
	return nil
}

func (_u *TurnStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(turnstep.Table, turnstep.Columns, sqlgraph.NewFieldSpec(turnstep.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StepType(); ok {
		_spec.SetField(turnstep.FieldStepType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(turnstep.FieldToolName, field.TypeString, value)
	}
	if _u.mutation.ToolNameCleared() {
		_spec.ClearField(turnstep.FieldToolName, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(turnstep.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(turnstep.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.StepStatus(); ok {
		_spec.SetField(turnstep.FieldStepStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(turnstep.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(turnstep.FieldSequence, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{turnstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TurnStepUpdateOne is the builder for updating a single TurnStep entity.
type TurnStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TurnStepMutation
}

// SetStepType sets the "step_type" field.
func (_u *TurnStepUpdateOne) SetStepType(v turnstep.StepType) *TurnStepUpdateOne {
	_u.mutation.SetStepType(v)
	return _u
}

// SetNillableStepType sets the "step_type" field if the given value is not nil.
func (_u *TurnStepUpdateOne) SetNillableStepType(v *turnstep.StepType) *TurnStepUpdateOne {
	if v != nil {
		_u.SetStepType(*v)
	}
	return _u
}

// SetToolName sets the "tool_name" field.
func (_u *TurnStepUpdateOne) SetToolName(v string) *TurnStepUpdateOne {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *TurnStepUpdateOne) SetNillableToolName(v *string) *TurnStepUpdateOne {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// ClearToolName clears the value of the "tool_name" field.
func (_u *TurnStepUpdateOne) ClearToolName() *TurnStepUpdateOne {
	_u.mutation.ClearToolName()
	return _u
}

// SetContent sets the "content" field.
func (_u *TurnStepUpdateOne) SetContent(v string) *TurnStepUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *TurnStepUpdateOne) SetNillableContent(v *string) *TurnStepUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *TurnStepUpdateOne) ClearContent() *TurnStepUpdateOne {
	_u.mutation.ClearContent()
	return _u
}

// SetStepStatus sets the "step_status" field.
func (_u *TurnStepUpdateOne) SetStepStatus(v turnstep.StepStatus) *TurnStepUpdateOne {
	_u.mutation.SetStepStatus(v)
	return _u
}

// SetNillableStepStatus sets the "step_status" field if the given value is not nil.
func (_u *TurnStepUpdateOne) SetNillableStepStatus(v *turnstep.StepStatus) *TurnStepUpdateOne {
	if v != nil {
		_u.SetStepStatus(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *TurnStepUpdateOne) SetSequence(v int) *TurnStepUpdateOne {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *TurnStepUpdateOne) SetNillableSequence(v *int) *TurnStepUpdateOne {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *TurnStepUpdateOne) AddSequence(v int) *TurnStepUpdateOne {
	_u.mutation.AddSequence(v)
	return _u
}

// Mutation returns the TurnStepMutation object of the builder.
func (_u *TurnStepUpdateOne) Mutation() *TurnStepMutation {
	return _u.mutation
}

// Where appends a list predicates to the TurnStepUpdate builder.
func (_u *TurnStepUpdateOne) Where(ps ...predicate.TurnStep) *TurnStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TurnStepUpdateOne) Select(field string, fields ...string) *TurnStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TurnStep entity.
func (_u *TurnStepUpdateOne) Save(ctx context.Context) (*TurnStep, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TurnStepUpdateOne) SaveX(ctx context.Context) *TurnStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TurnStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TurnStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TurnStepUpdateOne) check() error {
	if v, ok := _u.mutation.StepType(); ok {
		if err := turnstep.StepTypeValidator(v); err != nil {
			return &ValidationError{Name: "step_type", err: fmt.Errorf(`ent: validator failed for field "TurnStep.step_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StepStatus(); ok {
		if err := turnstep.StepStatusValidator(v); err != nil {
			return &ValidationError{Name: "step_status", err: fmt.Errorf(`ent: validator failed for field "TurnStep.step_status": %w`, err)}
		}
	}
	if _u.mutation.TurnCleared() && len(_u.mutation.TurnIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TurnStep.turn"`)
	}
	return nil
}

func (_u *TurnStepUpdateOne) sqlSave(ctx context.Context) (_node *TurnStep, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(turnstep.Table, turnstep.Columns, sqlgraph.NewFieldSpec(turnstep.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TurnStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, turnstep.FieldID)
		for _, f := range fields {
			if !turnstep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != turnstep.FieldID {
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
	if value, ok := _u.mutation.StepType(); ok {
		_spec.SetField(turnstep.FieldStepType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(turnstep.FieldToolName, field.TypeString, value)
	}
	if _u.mutation.ToolNameCleared() {
		_spec.ClearField(turnstep.FieldToolName, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(turnstep.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(turnstep.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.StepStatus(); ok {
		_spec.SetField(turnstep.FieldStepStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(turnstep.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(turnstep.FieldSequence, field.TypeInt, value)
	}
	_node = &TurnStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{turnstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
