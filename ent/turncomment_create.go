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
	"github.com/vibemonitor/rca/ent/turncomment"
)

// TurnCommentCreate is the builder for creating a TurnComment entity.
type TurnCommentCreate struct {
	config
	mutation *TurnCommentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTurnID sets the "turn_id" field.
func (_c *TurnCommentCreate) SetTurnID(v string) *TurnCommentCreate {
	_c.mutation.SetTurnID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *TurnCommentCreate) SetUserID(v string) *TurnCommentCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetBody sets the "body" field.
func (_c *TurnCommentCreate) SetBody(v string) *TurnCommentCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TurnCommentCreate) SetCreatedAt(v time.Time) *TurnCommentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TurnCommentCreate) SetNillableCreatedAt(v *time.Time) *TurnCommentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TurnCommentCreate) SetID(v string) *TurnCommentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTurn sets the "turn" edge to the ChatTurn entity.
func (_c *TurnCommentCreate) SetTurn(v *ChatTurn) *TurnCommentCreate {
	return _c.SetTurnID(v.ID)
}

// Mutation returns the TurnCommentMutation object of the builder.
func (_c *TurnCommentCreate) Mutation() *TurnCommentMutation {
	return _c.mutation
}

// Save creates the TurnComment in the database.
func (_c *TurnCommentCreate) Save(ctx context.Context) (*TurnComment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TurnCommentCreate) SaveX(ctx context.Context) *TurnComment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TurnCommentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TurnCommentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TurnCommentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := turncomment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TurnCommentCreate) check() error {
	if _, ok := _c.mutation.TurnID(); !ok {
		return &ValidationError{Name: "turn_id", err: errors.New(`ent: missing required field "TurnComment.turn_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "TurnComment.user_id"`)}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "TurnComment.body"`)}
	}
	if v, ok := _c.mutation.Body(); ok {
		if err := turncomment.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "TurnComment.body": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TurnComment.created_at"`)}
	}
	if len(_c.mutation.TurnIDs()) == 0 {
		return &ValidationError{Name: "turn", err: errors.New(`ent: missing required edge "TurnComment.turn"`)}
	}
	return nil
}

func (_c *TurnCommentCreate) sqlSave(ctx context.Context) (*TurnComment, error) {
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
			return nil, fmt.Errorf("unexpected TurnComment.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TurnCommentCreate) createSpec() (*TurnComment, *sqlgraph.CreateSpec) {
	var (
		_node = &TurnComment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(turncomment.Table, sqlgraph.NewFieldSpec(turncomment.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(turncomment.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(turncomment.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(turncomment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TurnIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   turncomment.TurnTable,
			Columns: []string{turncomment.TurnColumn},
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
//	client.TurnComment.Create().
//		SetTurnID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TurnCommentUpsert) {
//			SetTurnID(v+v).
//		}).
//		Exec(ctx)
func (_c *TurnCommentCreate) OnConflict(opts ...sql.ConflictOption) *TurnCommentUpsertOne {
	_c.conflict = opts
	return &TurnCommentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TurnComment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TurnCommentCreate) OnConflictColumns(columns ...string) *TurnCommentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TurnCommentUpsertOne{
		create: _c,
	}
}

type (
	// TurnCommentUpsertOne is the builder for "upsert"-ing
	//  one TurnComment node.
	TurnCommentUpsertOne struct {
		create *TurnCommentCreate
	}

	// TurnCommentUpsert is the "OnConflict" setter.
	TurnCommentUpsert struct {
		*sql.UpdateSet
	}
)

// SetBody sets the "body" field.
func (u *TurnCommentUpsert) SetBody(v string) *TurnCommentUpsert {
	u.Set(turncomment.FieldBody, v)
	return u
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *TurnCommentUpsert) UpdateBody() *TurnCommentUpsert {
	u.SetExcluded(turncomment.FieldBody)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TurnComment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(turncomment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TurnCommentUpsertOne) UpdateNewValues() *TurnCommentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(turncomment.FieldID)
		}
		if _, exists := u.create.mutation.TurnID(); exists {
			s.SetIgnore(turncomment.FieldTurnID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(turncomment.FieldUserID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(turncomment.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TurnComment.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TurnCommentUpsertOne) Ignore() *TurnCommentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TurnCommentUpsertOne) DoNothing() *TurnCommentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TurnCommentCreate.OnConflict
// documentation for more info.
func (u *TurnCommentUpsertOne) Update(set func(*TurnCommentUpsert)) *TurnCommentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TurnCommentUpsert{UpdateSet: update})
	}))
	return u
}

// SetBody sets the "body" field.
func (u *TurnCommentUpsertOne) SetBody(v string) *TurnCommentUpsertOne {
	return u.Update(func(s *TurnCommentUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *TurnCommentUpsertOne) UpdateBody() *TurnCommentUpsertOne {
	return u.Update(func(s *TurnCommentUpsert) {
		s.UpdateBody()
	})
}

// Exec executes the query.
func (u *TurnCommentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TurnCommentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TurnCommentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TurnCommentUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TurnCommentUpsertOne.ID is not supported by MySQL driver. Use TurnCommentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TurnCommentUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TurnCommentCreateBulk is the builder for creating many TurnComment entities in bulk.
type TurnCommentCreateBulk struct {
	config
	err      error
	builders []*TurnCommentCreate
	conflict []sql.ConflictOption
}

// Save creates the TurnComment entities in the database.
func (_c *TurnCommentCreateBulk) Save(ctx context.Context) ([]*TurnComment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TurnComment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TurnCommentMutation)
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
func (_c *TurnCommentCreateBulk) SaveX(ctx context.Context) []*TurnComment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TurnCommentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TurnCommentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TurnComment.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TurnCommentUpsert) {
//			SetTurnID(v+v).
//		}).
//		Exec(ctx)
func (_c *TurnCommentCreateBulk) OnConflict(opts ...sql.ConflictOption) *TurnCommentUpsertBulk {
	_c.conflict = opts
	return &TurnCommentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TurnComment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TurnCommentCreateBulk) OnConflictColumns(columns ...string) *TurnCommentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TurnCommentUpsertBulk{
		create: _c,
	}
}

// TurnCommentUpsertBulk is the builder for "upsert"-ing
// a bulk of TurnComment nodes.
type TurnCommentUpsertBulk struct {
	create *TurnCommentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TurnComment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(turncomment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TurnCommentUpsertBulk) UpdateNewValues() *TurnCommentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(turncomment.FieldID)
			}
			if _, exists := b.mutation.TurnID(); exists {
				s.SetIgnore(turncomment.FieldTurnID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(turncomment.FieldUserID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(turncomment.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TurnComment.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TurnCommentUpsertBulk) Ignore() *TurnCommentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TurnCommentUpsertBulk) DoNothing() *TurnCommentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TurnCommentCreateBulk.OnConflict
// documentation for more info.
func (u *TurnCommentUpsertBulk) Update(set func(*TurnCommentUpsert)) *TurnCommentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TurnCommentUpsert{UpdateSet: update})
	}))
	return u
}

// SetBody sets the "body" field.
func (u *TurnCommentUpsertBulk) SetBody(v string) *TurnCommentUpsertBulk {
	return u.Update(func(s *TurnCommentUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *TurnCommentUpsertBulk) UpdateBody() *TurnCommentUpsertBulk {
	return u.Update(func(s *TurnCommentUpsert) {
		s.UpdateBody()
	})
}

// Exec executes the query.
func (u *TurnCommentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TurnCommentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TurnCommentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TurnCommentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
