// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vibemonitor/rca/ent/chatturn"
	"github.com/vibemonitor/rca/ent/turnstep"
)

// TurnStepCreate is the builder for creating a TurnStep entity.
type TurnStepCreate struct {
	config
	mutation *TurnStepMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTurnID sets the "turn_id" field.
func (_c *TurnStepCreate) SetTurnID(v string) *TurnStepCreate {
	_c.mutation.SetTurnID(v)
	return _c
}

// SetStepType sets the "step_type" field.
func (_c *TurnStepCreate) SetStepType(v turnstep.StepType) *TurnStepCreate {
	_c.mutation.SetStepType(v)
	return _c
}

// SetToolName sets the "tool_name" field.
func (_c *TurnStepCreate) SetToolName(v string) *TurnStepCreate {
	_c.mutation.SetToolName(v)
	return _c
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_c *TurnStepCreate) SetNillableToolName(v *string) *TurnStepCreate {
	if v != nil {
		_c.SetToolName(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *TurnStepCreate) SetContent(v string) *TurnStepCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_c *TurnStepCreate) SetNillableContent(v *string) *TurnStepCreate {
	if v != nil {
		_c.SetContent(*v)
	}
	return _c
}

// SetStepStatus sets the "step_status" field.
func (_c *TurnStepCreate) SetStepStatus(v turnstep.StepStatus) *TurnStepCreate {
	_c.mutation.SetStepStatus(v)
	return _c
}

// SetNillableStepStatus sets the "step_status" field if the given value is not nil.
func (_c *TurnStepCreate) SetNillableStepStatus(v *turnstep.StepStatus) *TurnStepCreate {
	if v != nil {
		_c.SetStepStatus(*v)
	}
	return _c
}

// SetSequence sets the "sequence" field.
func (_c *TurnStepCreate) SetSequence(v int) *TurnStepCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TurnStepCreate) SetCreatedAt(v time.Time) *TurnStepCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TurnStepCreate) SetNillableCreatedAt(v *time.Time) *TurnStepCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TurnStepCreate) SetID(v string) *TurnStepCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTurn sets the "turn" edge to the ChatTurn entity.
func (_c *TurnStepCreate) SetTurn(v *ChatTurn) *TurnStepCreate {
	return _c.SetTurnID(v.ID)
}

// Mutation returns the TurnStepMutation object of the builder.
func (_c *TurnStepCreate) Mutation() *TurnStepMutation {
	return _c.mutation
}

// Save creates the TurnStep in the database.
func (_c *TurnStepCreate) Save(ctx context.Context) (*TurnStep, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TurnStepCreate) SaveX(ctx context.Context) *TurnStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TurnStepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TurnStepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TurnStepCreate) defaults() {
	if _, ok := _c.mutation.StepStatus(); !ok {
		v := turnstep.DefaultStepStatus
		_c.mutation.SetStepStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := turnstep.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TurnStepCreate) check() error {
	if _, ok := _c.mutation.TurnID(); !ok {
		return &ValidationError{Name: "turn_id", err: errors.New(`ent: missing required field "TurnStep.turn_id"`)}
	}
	if _, ok := _c.mutation.StepType(); !ok {
		return &ValidationError{Name: "step_type", err: errors.New(`ent: missing required field "TurnStep.step_type"`)}
	}
	if v, ok := _c.mutation.StepType(); ok {
		if err := turnstep.StepTypeValidator(v); err != nil {
			return &ValidationError{Name: "step_type", err: fmt.Errorf(`ent: validator failed for field "TurnStep.step_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StepStatus(); !ok {
		return &ValidationError{Name: "step_status", err: errors.New(`ent: missing required field "TurnStep.step_status"`)}
	}
	if v, ok := _c.mutation.StepStatus(); ok {
		if err := turnstep.StepStatusValidator(v); err != nil {
			return &ValidationError{Name: "step_status", err: fmt.Errorf(`ent: validator failed for field "TurnStep.step_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "TurnStep.sequence"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TurnStep.created_at"`)}
	}
	if len(_c.mutation.TurnIDs()) == 0 {
		return &ValidationError{Name: "turn", err: errors.New(`ent: missing required edge "TurnStep.turn"`)}
	}
	return nil
}

func (_c *TurnStepCreate) sqlSave(ctx context.Context) (*TurnStep, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected TurnStep.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TurnStepCreate) createSpec() (*TurnStep, *sqlgraph.CreateSpec) {
	var (
		_node = &TurnStep{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(turnstep.Table, sqlgraph.NewFieldSpec(turnstep.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StepType(); ok {
		_spec.SetField(turnstep.FieldStepType, field.TypeEnum, value)
		_node.StepType = value
	}
	if value, ok := _c.mutation.ToolName(); ok {
		_spec.SetField(turnstep.FieldToolName, field.TypeString, value)
		_node.ToolName = &value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(turnstep.FieldContent, field.TypeString, value)
		_node.Content = &value
	}
	if value, ok := _c.mutation.StepStatus(); ok {
		_spec.SetField(turnstep.FieldStepStatus, field.TypeEnum, value)
		_node.StepStatus = value
	}
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(turnstep.FieldSequence, field.TypeInt, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(turnstep.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TurnIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   turnstep.TurnTable,
			Columns: []string{turnstep.TurnColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatturn.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TurnID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TurnStep.Create().
//		SetTurnID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TurnStepUpsert) {
//			SetTurnID(v+v).
//		}).
//		Exec(ctx)
func (_c *TurnStepCreate) OnConflict(opts ...sql.ConflictOption) *TurnStepUpsertOne {
	_c.conflict = opts
	return &TurnStepUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TurnStep.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TurnStepCreate) OnConflictColumns(columns ...string) *TurnStepUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TurnStepUpsertOne{
		create: _c,
	}
}

type (
	// TurnStepUpsertOne is the builder for "upsert"-ing
	//  one TurnStep node.
	TurnStepUpsertOne struct {
		create *TurnStepCreate
	}

	// TurnStepUpsert is the "OnConflict" setter.
	TurnStepUpsert struct {
		*sql.UpdateSet
	}
)

// SetStepType sets the "step_type" field.
func (u *TurnStepUpsert) SetStepType(v turnstep.StepType) *TurnStepUpsert {
	u.Set(turnstep.FieldStepType, v)
	return u
}

// UpdateStepType sets the "step_type" field to the value that was provided on create.
func (u *TurnStepUpsert) UpdateStepType() *TurnStepUpsert {
	u.SetExcluded(turnstep.FieldStepType)
	return u
}

// SetToolName sets the "tool_name" field.
func (u *TurnStepUpsert) SetToolName(v string) *TurnStepUpsert {
	u.Set(turnstep.FieldToolName, v)
	return u
}

// UpdateToolName sets the "tool_name" field to the value that was provided on create.
func (u *TurnStepUpsert) UpdateToolName() *TurnStepUpsert {
	u.SetExcluded(turnstep.FieldToolName)
	return u
}

// ClearToolName clears the value of the "tool_name" field.
func (u *TurnStepUpsert) ClearToolName() *TurnStepUpsert {
	u.SetNull(turnstep.FieldToolName)
	return u
}

// SetContent sets the "content" field.
func (u *TurnStepUpsert) SetContent(v string) *TurnStepUpsert {
	u.Set(turnstep.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *TurnStepUpsert) UpdateContent() *TurnStepUpsert {
	u.SetExcluded(turnstep.FieldContent)
	return u
}

// ClearContent clears the value of the "content" field.
func (u *TurnStepUpsert) ClearContent() *TurnStepUpsert {
	u.SetNull(turnstep.FieldContent)
	return u
}

// SetStepStatus sets the "step_status" field.
func (u *TurnStepUpsert) SetStepStatus(v turnstep.StepStatus) *TurnStepUpsert {
	u.Set(turnstep.FieldStepStatus, v)
	return u
}

// UpdateStepStatus sets the "step_status" field to the value that was provided on create.
func (u *TurnStepUpsert) UpdateStepStatus() *TurnStepUpsert {
	u.SetExcluded(turnstep.FieldStepStatus)
	return u
}

// SetSequence sets the "sequence" field.
func (u *TurnStepUpsert) SetSequence(v int) *TurnStepUpsert {
	u.Set(turnstep.FieldSequence, v)
	return u
}

// UpdateSequence sets the "sequence" field to the value that was provided on create.
func (u *TurnStepUpsert) UpdateSequence() *TurnStepUpsert {
	u.SetExcluded(turnstep.FieldSequence)
	return u
}

// AddSequence adds v to the "sequence" field.
func (u *TurnStepUpsert) AddSequence(v int) *TurnStepUpsert {
	u.Add(turnstep.FieldSequence, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TurnStep.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(turnstep.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TurnStepUpsertOne) UpdateNewValues() *TurnStepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(turnstep.FieldID)
		}
		if _, exists := u.create.mutation.TurnID(); exists {
			s.SetIgnore(turnstep.FieldTurnID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(turnstep.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TurnStep.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TurnStepUpsertOne) Ignore() *TurnStepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TurnStepUpsertOne) DoNothing() *TurnStepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TurnStepCreate.OnConflict
// documentation for more info.
func (u *TurnStepUpsertOne) Update(set func(*TurnStepUpsert)) *TurnStepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TurnStepUpsert{UpdateSet: update})
	}))
	return u
}

// SetStepType sets the "step_type" field.
func (u *TurnStepUpsertOne) SetStepType(v turnstep.StepType) *TurnStepUpsertOne {
	return u.Update(func(s *TurnStepUpsert) {
		s.SetStepType(v)
	})
}

// UpdateStepType sets the "step_type" field to the value that was provided on create.
func (u *TurnStepUpsertOne) UpdateStepType() *TurnStepUpsertOne {
	return u.Update(func(s *TurnStepUpsert) {
		s.UpdateStepType()
	})
}

// SetToolName sets the "tool_name" field.
func (u *TurnStepUpsertOne) SetToolName(v string) *TurnStepUpsertOne {
	return u.Update(func(s *TurnStepUpsert) {
		s.SetToolName(v)
	})
}

// UpdateToolName sets the "tool_name" field to the value that was provided on create.
func (u *TurnStepUpsertOne) UpdateToolName() *TurnStepUpsertOne {
	return u.Update(func(s *TurnStepUpsert) {
		s.UpdateToolName()
	})
}

// ClearToolName clears the value of the "tool_name" field.
func (u *TurnStepUpsertOne) ClearToolName() *TurnStepUpsertOne {
	return u.Update(func(s *TurnStepUpsert) {
		s.ClearToolName()
	})
}

// SetContent sets the "content" field.
func (u *TurnStepUpsertOne) SetContent(v string) *TurnStepUpsertOne {
	return u.Update(func(s *TurnStepUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *TurnStepUpsertOne) UpdateContent() *TurnStepUpsertOne {
	return u.Update(func(s *TurnStepUpsert) {
		s.UpdateContent()
	})
}

// ClearContent clears the value of the "content" field.
func (u *TurnStepUpsertOne) ClearContent() *TurnStepUpsertOne {
	return u.Update(func(s *TurnStepUpsert) {
		s.ClearContent()
	})
}

// SetStepStatus sets the "step_status" field.
func (u *TurnStepUpsertOne) SetStepStatus(v turnstep.StepStatus) *TurnStepUpsertOne {
	return u.Update(func(s *TurnStepUpsert) {
		s.SetStepStatus(v)
	})
}

// UpdateStepStatus sets the "step_status" field to the value that was provided on create.
func (u *TurnStepUpsertOne) UpdateStepStatus() *TurnStepUpsertOne {
	return u.Update(func(s *TurnStepUpsert) {
		s.UpdateStepStatus()
	})
}

// SetSequence sets the "sequence" field.
func (u *TurnStepUpsertOne) SetSequence(v int) *TurnStepUpsertOne {
	return u.Update(func(s *TurnStepUpsert) {
		s.SetSequence(v)
	})
}

// AddSequence adds v to the "sequence" field.
func (u *TurnStepUpsertOne) AddSequence(v int) *TurnStepUpsertOne {
	return u.Update(func(s *TurnStepUpsert) {
		s.AddSequence(v)
	})
}

// UpdateSequence sets the "sequence" field to the value that was provided on create.
func (u *TurnStepUpsertOne) UpdateSequence() *TurnStepUpsertOne {
	return u.Update(func(s *TurnStepUpsert) {
		s.UpdateSequence()
	})
}

// Exec executes the query.
func (u *TurnStepUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TurnStepCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TurnStepUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TurnStepUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TurnStepUpsertOne.ID is not supported by MySQL driver. Use TurnStepUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TurnStepUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TurnStepCreateBulk is the builder for creating many TurnStep entities in bulk.
type TurnStepCreateBulk struct {
	config
	err      error
	builders []*TurnStepCreate
	conflict []sql.ConflictOption
}

// Save creates the TurnStep entities in the database.
func (_c *TurnStepCreateBulk) Save(ctx context.Context) ([]*TurnStep, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TurnStep, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TurnStepMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TurnStepCreateBulk) SaveX(ctx context.Context) []*TurnStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TurnStepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TurnStepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TurnStep.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TurnStepUpsert) {
//			SetTurnID(v+v).
//		}).
//		Exec(ctx)
func (_c *TurnStepCreateBulk) OnConflict(opts ...sql.ConflictOption) *TurnStepUpsertBulk {
	_c.conflict = opts
	return &TurnStepUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TurnStep.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TurnStepCreateBulk) OnConflictColumns(columns ...string) *TurnStepUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TurnStepUpsertBulk{
		create: _c,
	}
}

// TurnStepUpsertBulk is the builder for "upsert"-ing
// a bulk of TurnStep nodes.
type TurnStepUpsertBulk struct {
	create *TurnStepCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TurnStep.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(turnstep.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TurnStepUpsertBulk) UpdateNewValues() *TurnStepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(turnstep.FieldID)
			}
			if _, exists := b.mutation.TurnID(); exists {
				s.SetIgnore(turnstep.FieldTurnID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(turnstep.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TurnStep.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TurnStepUpsertBulk) Ignore() *TurnStepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TurnStepUpsertBulk) DoNothing() *TurnStepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TurnStepCreateBulk.OnConflict
// documentation for more info.
func (u *TurnStepUpsertBulk) Update(set func(*TurnStepUpsert)) *TurnStepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TurnStepUpsert{UpdateSet: update})
	}))
	return u
}

// SetStepType sets the "step_type" field.
func (u *TurnStepUpsertBulk) SetStepType(v turnstep.StepType) *TurnStepUpsertBulk {
	return u.Update(func(s *TurnStepUpsert) {
		s.SetStepType(v)
	})
}

// UpdateStepType sets the "step_type" field to the value that was provided on create.
func (u *TurnStepUpsertBulk) UpdateStepType() *TurnStepUpsertBulk {
	return u.Update(func(s *TurnStepUpsert) {
		s.UpdateStepType()
	})
}

// SetToolName sets the "tool_name" field.
func (u *TurnStepUpsertBulk) SetToolName(v string) *TurnStepUpsertBulk {
	return u.Update(func(s *TurnStepUpsert) {
		s.SetToolName(v)
	})
}

// UpdateToolName sets the "tool_name" field to the value that was provided on create.
func (u *TurnStepUpsertBulk) UpdateToolName() *TurnStepUpsertBulk {
	return u.Update(func(s *TurnStepUpsert) {
		s.UpdateToolName()
	})
}

// ClearToolName clears the value of the "tool_name" field.
func (u *TurnStepUpsertBulk) ClearToolName() *TurnStepUpsertBulk {
	return u.Update(func(s *TurnStepUpsert) {
		s.ClearToolName()
	})
}

// SetContent sets the "content" field.
func (u *TurnStepUpsertBulk) SetContent(v string) *TurnStepUpsertBulk {
	return u.Update(func(s *TurnStepUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *TurnStepUpsertBulk) UpdateContent() *TurnStepUpsertBulk {
	return u.Update(func(s *TurnStepUpsert) {
		s.UpdateContent()
	})
}

// ClearContent clears the value of the "content" field.
func (u *TurnStepUpsertBulk) ClearContent() *TurnStepUpsertBulk {
	return u.Update(func(s *TurnStepUpsert) {
		s.ClearContent()
	})
}

// SetStepStatus sets the "step_status" field.
func (u *TurnStepUpsertBulk) SetStepStatus(v turnstep.StepStatus) *TurnStepUpsertBulk {
	return u.Update(func(s *TurnStepUpsert) {
		s.SetStepStatus(v)
	})
}

// UpdateStepStatus sets the "step_status" field to the value that was provided on create.
func (u *TurnStepUpsertBulk) UpdateStepStatus() *TurnStepUpsertBulk {
	return u.Update(func(s *TurnStepUpsert) {
		s.UpdateStepStatus()
	})
}

// SetSequence sets the "sequence" field.
func (u *TurnStepUpsertBulk) SetSequence(v int) *TurnStepUpsertBulk {
	return u.Update(func(s *TurnStepUpsert) {
		s.SetSequence(v)
	})
}

// AddSequence adds v to the "sequence" field.
func (u *TurnStepUpsertBulk) AddSequence(v int) *TurnStepUpsertBulk {
	return u.Update(func(s *TurnStepUpsert) {
		s.AddSequence(v)
	})
}

// UpdateSequence sets the "sequence" field to the value that was provided on create.
func (u *TurnStepUpsertBulk) UpdateSequence() *TurnStepUpsertBulk {
	return u.Update(func(s *TurnStepUpsert) {
		s.UpdateSequence()
	})
}

// Exec executes the query.
func (u *TurnStepUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TurnStepCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TurnStepCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TurnStepUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
