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
	"github.com/vibemonitor/rca/ent/turnfeedback"
)

// TurnFeedbackCreate is the builder for creating a TurnFeedback entity.
type TurnFeedbackCreate struct {
	config
	mutation *TurnFeedbackMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTurnID sets the "turn_id" field.
func (_c *TurnFeedbackCreate) SetTurnID(v string) *TurnFeedbackCreate {
	_c.mutation.SetTurnID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *TurnFeedbackCreate) SetUserID(v string) *TurnFeedbackCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *TurnFeedbackCreate) SetScore(v int) *TurnFeedbackCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TurnFeedbackCreate) SetCreatedAt(v time.Time) *TurnFeedbackCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TurnFeedbackCreate) SetNillableCreatedAt(v *time.Time) *TurnFeedbackCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TurnFeedbackCreate) SetUpdatedAt(v time.Time) *TurnFeedbackCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TurnFeedbackCreate) SetNillableUpdatedAt(v *time.Time) *TurnFeedbackCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TurnFeedbackCreate) SetID(v string) *TurnFeedbackCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTurn sets the "turn" edge to the ChatTurn entity.
func (_c *TurnFeedbackCreate) SetTurn(v *ChatTurn) *TurnFeedbackCreate {
	return _c.SetTurnID(v.ID)
}

// Mutation returns the TurnFeedbackMutation object of the builder.
func (_c *TurnFeedbackCreate) Mutation() *TurnFeedbackMutation {
	return _c.mutation
}

// Save creates the TurnFeedback in the database.
func (_c *TurnFeedbackCreate) Save(ctx context.Context) (*TurnFeedback, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TurnFeedbackCreate) SaveX(ctx context.Context) *TurnFeedback {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TurnFeedbackCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TurnFeedbackCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TurnFeedbackCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := turnfeedback.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := turnfeedback.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TurnFeedbackCreate) check() error {
	if _, ok := _c.mutation.TurnID(); !ok {
		return &ValidationError{Name: "turn_id", err: errors.New(`ent: missing required field "TurnFeedback.turn_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "TurnFeedback.user_id"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "TurnFeedback.score"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TurnFeedback.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TurnFeedback.updated_at"`)}
	}
	if len(_c.mutation.TurnIDs()) == 0 {
		return &ValidationError{Name: "turn", err: errors.New(`ent: missing required edge "TurnFeedback.turn"`)}
	}
	return nil
}

func (_c *TurnFeedbackCreate) sqlSave(ctx context.Context) (*TurnFeedback, error) {
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
			return nil, fmt.Errorf("unexpected TurnFeedback.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TurnFeedbackCreate) createSpec() (*TurnFeedback, *sqlgraph.CreateSpec) {
	var (
		_node = &TurnFeedback{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(turnfeedback.Table, sqlgraph.NewFieldSpec(turnfeedback.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(turnfeedback.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(turnfeedback.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(turnfeedback.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(turnfeedback.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TurnIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   turnfeedback.TurnTable,
			Columns: []string{turnfeedback.TurnColumn},
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
//	client.TurnFeedback.Create().
//		SetTurnID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TurnFeedbackUpsert) {
//			SetTurnID(v+v).
//		}).
//		Exec(ctx)
func (_c *TurnFeedbackCreate) OnConflict(opts ...sql.ConflictOption) *TurnFeedbackUpsertOne {
	_c.conflict = opts
	return &TurnFeedbackUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TurnFeedback.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TurnFeedbackCreate) OnConflictColumns(columns ...string) *TurnFeedbackUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TurnFeedbackUpsertOne{
		create: _c,
	}
}

type (
	// TurnFeedbackUpsertOne is the builder for "upsert"-ing
	//  one TurnFeedback node.
	TurnFeedbackUpsertOne struct {
		create *TurnFeedbackCreate
	}

	// TurnFeedbackUpsert is the "OnConflict" setter.
	TurnFeedbackUpsert struct {
		*sql.UpdateSet
	}
)

// SetScore sets the "score" field.
func (u *TurnFeedbackUpsert) SetScore(v int) *TurnFeedbackUpsert {
	u.Set(turnfeedback.FieldScore, v)
	return u
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *TurnFeedbackUpsert) UpdateScore() *TurnFeedbackUpsert {
	u.SetExcluded(turnfeedback.FieldScore)
	return u
}

// AddScore adds v to the "score" field.
func (u *TurnFeedbackUpsert) AddScore(v int) *TurnFeedbackUpsert {
	u.Add(turnfeedback.FieldScore, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TurnFeedbackUpsert) SetUpdatedAt(v time.Time) *TurnFeedbackUpsert {
	u.Set(turnfeedback.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TurnFeedbackUpsert) UpdateUpdatedAt() *TurnFeedbackUpsert {
	u.SetExcluded(turnfeedback.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TurnFeedback.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(turnfeedback.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TurnFeedbackUpsertOne) UpdateNewValues() *TurnFeedbackUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(turnfeedback.FieldID)
		}
		if _, exists := u.create.mutation.TurnID(); exists {
			s.SetIgnore(turnfeedback.FieldTurnID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(turnfeedback.FieldUserID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(turnfeedback.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TurnFeedback.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TurnFeedbackUpsertOne) Ignore() *TurnFeedbackUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TurnFeedbackUpsertOne) DoNothing() *TurnFeedbackUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TurnFeedbackCreate.OnConflict
// documentation for more info.
func (u *TurnFeedbackUpsertOne) Update(set func(*TurnFeedbackUpsert)) *TurnFeedbackUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TurnFeedbackUpsert{UpdateSet: update})
	}))
	return u
}

// SetScore sets the "score" field.
func (u *TurnFeedbackUpsertOne) SetScore(v int) *TurnFeedbackUpsertOne {
	return u.Update(func(s *TurnFeedbackUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *TurnFeedbackUpsertOne) AddScore(v int) *TurnFeedbackUpsertOne {
	return u.Update(func(s *TurnFeedbackUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *TurnFeedbackUpsertOne) UpdateScore() *TurnFeedbackUpsertOne {
	return u.Update(func(s *TurnFeedbackUpsert) {
		s.UpdateScore()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TurnFeedbackUpsertOne) SetUpdatedAt(v time.Time) *TurnFeedbackUpsertOne {
	return u.Update(func(s *TurnFeedbackUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TurnFeedbackUpsertOne) UpdateUpdatedAt() *TurnFeedbackUpsertOne {
	return u.Update(func(s *TurnFeedbackUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TurnFeedbackUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TurnFeedbackCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TurnFeedbackUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TurnFeedbackUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TurnFeedbackUpsertOne.ID is not supported by MySQL driver. Use TurnFeedbackUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TurnFeedbackUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TurnFeedbackCreateBulk is the builder for creating many TurnFeedback entities in bulk.
type TurnFeedbackCreateBulk struct {
	config
	err      error
	builders []*TurnFeedbackCreate
	conflict []sql.ConflictOption
}

// Save creates the TurnFeedback entities in the database.
func (_c *TurnFeedbackCreateBulk) Save(ctx context.Context) ([]*TurnFeedback, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TurnFeedback, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TurnFeedbackMutation)
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
func (_c *TurnFeedbackCreateBulk) SaveX(ctx context.Context) []*TurnFeedback {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TurnFeedbackCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TurnFeedbackCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TurnFeedback.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TurnFeedbackUpsert) {
//			SetTurnID(v+v).
//		}).
//		Exec(ctx)
func (_c *TurnFeedbackCreateBulk) OnConflict(opts ...sql.ConflictOption) *TurnFeedbackUpsertBulk {
	_c.conflict = opts
	return &TurnFeedbackUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TurnFeedback.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TurnFeedbackCreateBulk) OnConflictColumns(columns ...string) *TurnFeedbackUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TurnFeedbackUpsertBulk{
		create: _c,
	}
}

// TurnFeedbackUpsertBulk is the builder for "upsert"-ing
// a bulk of TurnFeedback nodes.
type TurnFeedbackUpsertBulk struct {
	create *TurnFeedbackCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TurnFeedback.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(turnfeedback.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TurnFeedbackUpsertBulk) UpdateNewValues() *TurnFeedbackUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(turnfeedback.FieldID)
			}
			if _, exists := b.mutation.TurnID(); exists {
				s.SetIgnore(turnfeedback.FieldTurnID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(turnfeedback.FieldUserID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(turnfeedback.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TurnFeedback.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TurnFeedbackUpsertBulk) Ignore() *TurnFeedbackUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TurnFeedbackUpsertBulk) DoNothing() *TurnFeedbackUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TurnFeedbackCreateBulk.OnConflict
// documentation for more info.
func (u *TurnFeedbackUpsertBulk) Update(set func(*TurnFeedbackUpsert)) *TurnFeedbackUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TurnFeedbackUpsert{UpdateSet: update})
	}))
	return u
}

// SetScore sets the "score" field.
func (u *TurnFeedbackUpsertBulk) SetScore(v int) *TurnFeedbackUpsertBulk {
	return u.Update(func(s *TurnFeedbackUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *TurnFeedbackUpsertBulk) AddScore(v int) *TurnFeedbackUpsertBulk {
	return u.Update(func(s *TurnFeedbackUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *TurnFeedbackUpsertBulk) UpdateScore() *TurnFeedbackUpsertBulk {
	return u.Update(func(s *TurnFeedbackUpsert) {
		s.UpdateScore()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TurnFeedbackUpsertBulk) SetUpdatedAt(v time.Time) *TurnFeedbackUpsertBulk {
	return u.Update(func(s *TurnFeedbackUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TurnFeedbackUpsertBulk) UpdateUpdatedAt() *TurnFeedbackUpsertBulk {
	return u.Update(func(s *TurnFeedbackUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TurnFeedbackUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TurnFeedbackCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TurnFeedbackCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TurnFeedbackUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
