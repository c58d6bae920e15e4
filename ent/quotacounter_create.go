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
	"github.com/vibemonitor/rca/ent/quotacounter"
)

// QuotaCounterCreate is the builder for creating a QuotaCounter entity.
type QuotaCounterCreate struct {
	config
	mutation *QuotaCounterMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *QuotaCounterCreate) SetWorkspaceID(v string) *QuotaCounterCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetResource sets the "resource" field.
func (_c *QuotaCounterCreate) SetResource(v string) *QuotaCounterCreate {
	_c.mutation.SetResource(v)
	return _c
}

// SetWindowKey sets the "window_key" field.
func (_c *QuotaCounterCreate) SetWindowKey(v string) *QuotaCounterCreate {
	_c.mutation.SetWindowKey(v)
	return _c
}

// SetCount sets the "count" field.
func (_c *QuotaCounterCreate) SetCount(v int) *QuotaCounterCreate {
	_c.mutation.SetCount(v)
	return _c
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_c *QuotaCounterCreate) SetNillableCount(v *int) *QuotaCounterCreate {
	if v != nil {
		_c.SetCount(*v)
	}
	return _c
}

// SetLimitValue sets the "limit_value" field.
func (_c *QuotaCounterCreate) SetLimitValue(v int) *QuotaCounterCreate {
	_c.mutation.SetLimitValue(v)
	return _c
}

// SetResetAt sets the "reset_at" field.
func (_c *QuotaCounterCreate) SetResetAt(v time.Time) *QuotaCounterCreate {
	_c.mutation.SetResetAt(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuotaCounterCreate) SetCreatedAt(v time.Time) *QuotaCounterCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuotaCounterCreate) SetNillableCreatedAt(v *time.Time) *QuotaCounterCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *QuotaCounterCreate) SetUpdatedAt(v time.Time) *QuotaCounterCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *QuotaCounterCreate) SetNillableUpdatedAt(v *time.Time) *QuotaCounterCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QuotaCounterCreate) SetID(v string) *QuotaCounterCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the QuotaCounterMutation object of the builder.
func (_c *QuotaCounterCreate) Mutation() *QuotaCounterMutation {
	return _c.mutation
}

// Save creates the QuotaCounter in the database.
func (_c *QuotaCounterCreate) Save(ctx context.Context) (*QuotaCounter, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuotaCounterCreate) SaveX(ctx context.Context) *QuotaCounter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuotaCounterCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuotaCounterCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuotaCounterCreate) defaults() {
	if _, ok := _c.mutation.Count(); !ok {
		v := quotacounter.DefaultCount
		_c.mutation.SetCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := quotacounter.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := quotacounter.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuotaCounterCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "QuotaCounter.workspace_id"`)}
	}
	if _, ok := _c.mutation.Resource(); !ok {
		return &ValidationError{Name: "resource", err: errors.New(`ent: missing required field "QuotaCounter.resource"`)}
	}
	if _, ok := _c.mutation.WindowKey(); !ok {
		return &ValidationError{Name: "window_key", err: errors.New(`ent: missing required field "QuotaCounter.window_key"`)}
	}
	if _, ok := _c.mutation.Count(); !ok {
		return &ValidationError{Name: "count", err: errors.New(`ent: missing required field "QuotaCounter.count"`)}
	}
	if _, ok := _c.mutation.LimitValue(); !ok {
		return &ValidationError{Name: "limit_value", err: errors.New(`ent: missing required field "QuotaCounter.limit_value"`)}
	}
	if _, ok := _c.mutation.ResetAt(); !ok {
		return &ValidationError{Name: "reset_at", err: errors.New(`ent: missing required field "QuotaCounter.reset_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QuotaCounter.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "QuotaCounter.updated_at"`)}
	}
	return nil
}

func (_c *QuotaCounterCreate) sqlSave(ctx context.Context) (*QuotaCounter, error) {
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
			return nil, fmt.Errorf("unexpected QuotaCounter.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuotaCounterCreate) createSpec() (*QuotaCounter, *sqlgraph.CreateSpec) {
	var (
		_node = &QuotaCounter{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quotacounter.Table, sqlgraph.NewFieldSpec(quotacounter.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(quotacounter.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.Resource(); ok {
		_spec.SetField(quotacounter.FieldResource, field.TypeString, value)
		_node.Resource = value
	}
	if value, ok := _c.mutation.WindowKey(); ok {
		_spec.SetField(quotacounter.FieldWindowKey, field.TypeString, value)
		_node.WindowKey = value
	}
	if value, ok := _c.mutation.Count(); ok {
		_spec.SetField(quotacounter.FieldCount, field.TypeInt, value)
		_node.Count = value
	}
	if value, ok := _c.mutation.LimitValue(); ok {
		_spec.SetField(quotacounter.FieldLimitValue, field.TypeInt, value)
		_node.LimitValue = value
	}
	if value, ok := _c.mutation.ResetAt(); ok {
		_spec.SetField(quotacounter.FieldResetAt, field.TypeTime, value)
		_node.ResetAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(quotacounter.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(quotacounter.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QuotaCounter.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuotaCounterUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *QuotaCounterCreate) OnConflict(opts ...sql.ConflictOption) *QuotaCounterUpsertOne {
	_c.conflict = opts
	return &QuotaCounterUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QuotaCounter.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuotaCounterCreate) OnConflictColumns(columns ...string) *QuotaCounterUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuotaCounterUpsertOne{
		create: _c,
	}
}

type (
	// QuotaCounterUpsertOne is the builder for "upsert"-ing
	//  one QuotaCounter node.
	QuotaCounterUpsertOne struct {
		create *QuotaCounterCreate
	}

	// QuotaCounterUpsert is the "OnConflict" setter.
	QuotaCounterUpsert struct {
		*sql.UpdateSet
	}
)

// SetResource sets the "resource" field.
func (u *QuotaCounterUpsert) SetResource(v string) *QuotaCounterUpsert {
	u.Set(quotacounter.FieldResource, v)
	return u
}

// UpdateResource sets the "resource" field to the value that was provided on create.
func (u *QuotaCounterUpsert) UpdateResource() *QuotaCounterUpsert {
	u.SetExcluded(quotacounter.FieldResource)
	return u
}

// SetWindowKey sets the "window_key" field.
func (u *QuotaCounterUpsert) SetWindowKey(v string) *QuotaCounterUpsert {
	u.Set(quotacounter.FieldWindowKey, v)
	return u
}

// UpdateWindowKey sets the "window_key" field to the value that was provided on create.
func (u *QuotaCounterUpsert) UpdateWindowKey() *QuotaCounterUpsert {
	u.SetExcluded(quotacounter.FieldWindowKey)
	return u
}

// SetCount sets the "count" field.
func (u *QuotaCounterUpsert) SetCount(v int) *QuotaCounterUpsert {
	u.Set(quotacounter.FieldCount, v)
	return u
}

// UpdateCount sets the "count" field to the value that was provided on create.
func (u *QuotaCounterUpsert) UpdateCount() *QuotaCounterUpsert {
	u.SetExcluded(quotacounter.FieldCount)
	return u
}

// AddCount adds v to the "count" field.
func (u *QuotaCounterUpsert) AddCount(v int) *QuotaCounterUpsert {
	u.Add(quotacounter.FieldCount, v)
	return u
}

// SetLimitValue sets the "limit_value" field.
func (u *QuotaCounterUpsert) SetLimitValue(v int) *QuotaCounterUpsert {
	u.Set(quotacounter.FieldLimitValue, v)
	return u
}

// UpdateLimitValue sets the "limit_value" field to the value that was provided on create.
func (u *QuotaCounterUpsert) UpdateLimitValue() *QuotaCounterUpsert {
	u.SetExcluded(quotacounter.FieldLimitValue)
	return u
}

// AddLimitValue adds v to the "limit_value" field.
func (u *QuotaCounterUpsert) AddLimitValue(v int) *QuotaCounterUpsert {
	u.Add(quotacounter.FieldLimitValue, v)
	return u
}

// SetResetAt sets the "reset_at" field.
func (u *QuotaCounterUpsert) SetResetAt(v time.Time) *QuotaCounterUpsert {
	u.Set(quotacounter.FieldResetAt, v)
	return u
}

// UpdateResetAt sets the "reset_at" field to the value that was provided on create.
func (u *QuotaCounterUpsert) UpdateResetAt() *QuotaCounterUpsert {
	u.SetExcluded(quotacounter.FieldResetAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *QuotaCounterUpsert) SetUpdatedAt(v time.Time) *QuotaCounterUpsert {
	u.Set(quotacounter.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *QuotaCounterUpsert) UpdateUpdatedAt() *QuotaCounterUpsert {
	u.SetExcluded(quotacounter.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.QuotaCounter.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(quotacounter.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QuotaCounterUpsertOne) UpdateNewValues() *QuotaCounterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(quotacounter.FieldID)
		}
		if _, exists := u.create.mutation.WorkspaceID(); exists {
			s.SetIgnore(quotacounter.FieldWorkspaceID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(quotacounter.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QuotaCounter.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QuotaCounterUpsertOne) Ignore() *QuotaCounterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuotaCounterUpsertOne) DoNothing() *QuotaCounterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuotaCounterCreate.OnConflict
// documentation for more info.
func (u *QuotaCounterUpsertOne) Update(set func(*QuotaCounterUpsert)) *QuotaCounterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuotaCounterUpsert{UpdateSet: update})
	}))
	return u
}

// SetResource sets the "resource" field.
func (u *QuotaCounterUpsertOne) SetResource(v string) *QuotaCounterUpsertOne {
	return u.Update(func(s *QuotaCounterUpsert) {
		s.SetResource(v)
	})
}

// UpdateResource sets the "resource" field to the value that was provided on create.
func (u *QuotaCounterUpsertOne) UpdateResource() *QuotaCounterUpsertOne {
	return u.Update(func(s *QuotaCounterUpsert) {
		s.UpdateResource()
	})
}

// SetWindowKey sets the "window_key" field.
func (u *QuotaCounterUpsertOne) SetWindowKey(v string) *QuotaCounterUpsertOne {
	return u.Update(func(s *QuotaCounterUpsert) {
		s.SetWindowKey(v)
	})
}

// UpdateWindowKey sets the "window_key" field to the value that was provided on create.
func (u *QuotaCounterUpsertOne) UpdateWindowKey() *QuotaCounterUpsertOne {
	return u.Update(func(s *QuotaCounterUpsert) {
		s.UpdateWindowKey()
	})
}

// SetCount sets the "count" field.
func (u *QuotaCounterUpsertOne) SetCount(v int) *QuotaCounterUpsertOne {
	return u.Update(func(s *QuotaCounterUpsert) {
		s.SetCount(v)
	})
}

// AddCount adds v to the "count" field.
func (u *QuotaCounterUpsertOne) AddCount(v int) *QuotaCounterUpsertOne {
	return u.Update(func(s *QuotaCounterUpsert) {
		s.AddCount(v)
	})
}

// UpdateCount sets the "count" field to the value that was provided on create.
func (u *QuotaCounterUpsertOne) UpdateCount() *QuotaCounterUpsertOne {
	return u.Update(func(s *QuotaCounterUpsert) {
		s.UpdateCount()
	})
}

// SetLimitValue sets the "limit_value" field.
func (u *QuotaCounterUpsertOne) SetLimitValue(v int) *QuotaCounterUpsertOne {
	return u.Update(func(s *QuotaCounterUpsert) {
		s.SetLimitValue(v)
	})
}

// AddLimitValue adds v to the "limit_value" field.
func (u *QuotaCounterUpsertOne) AddLimitValue(v int) *QuotaCounterUpsertOne {
	return u.Update(func(s *QuotaCounterUpsert) {
		s.AddLimitValue(v)
	})
}

// UpdateLimitValue sets the "limit_value" field to the value that was provided on create.
func (u *QuotaCounterUpsertOne) UpdateLimitValue() *QuotaCounterUpsertOne {
	return u.Update(func(s *QuotaCounterUpsert) {
		s.UpdateLimitValue()
	})
}

// SetResetAt sets the "reset_at" field.
func (u *QuotaCounterUpsertOne) SetResetAt(v time.Time) *QuotaCounterUpsertOne {
	return u.Update(func(s *QuotaCounterUpsert) {
		s.SetResetAt(v)
	})
}

// UpdateResetAt sets the "reset_at" field to the value that was provided on create.
func (u *QuotaCounterUpsertOne) UpdateResetAt() *QuotaCounterUpsertOne {
	return u.Update(func(s *QuotaCounterUpsert) {
		s.UpdateResetAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *QuotaCounterUpsertOne) SetUpdatedAt(v time.Time) *QuotaCounterUpsertOne {
	return u.Update(func(s *QuotaCounterUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *QuotaCounterUpsertOne) UpdateUpdatedAt() *QuotaCounterUpsertOne {
	return u.Update(func(s *QuotaCounterUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *QuotaCounterUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuotaCounterCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuotaCounterUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QuotaCounterUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: QuotaCounterUpsertOne.ID is not supported by MySQL driver. Use QuotaCounterUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QuotaCounterUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QuotaCounterCreateBulk is the builder for creating many QuotaCounter entities in bulk.
type QuotaCounterCreateBulk struct {
	config
	err      error
	builders []*QuotaCounterCreate
	conflict []sql.ConflictOption
}

// Save creates the QuotaCounter entities in the database.
func (_c *QuotaCounterCreateBulk) Save(ctx context.Context) ([]*QuotaCounter, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuotaCounter, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuotaCounterMutation)
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
func (_c *QuotaCounterCreateBulk) SaveX(ctx context.Context) []*QuotaCounter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuotaCounterCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuotaCounterCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QuotaCounter.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuotaCounterUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *QuotaCounterCreateBulk) OnConflict(opts ...sql.ConflictOption) *QuotaCounterUpsertBulk {
	_c.conflict = opts
	return &QuotaCounterUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QuotaCounter.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuotaCounterCreateBulk) OnConflictColumns(columns ...string) *QuotaCounterUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuotaCounterUpsertBulk{
		create: _c,
	}
}

// QuotaCounterUpsertBulk is the builder for "upsert"-ing
// a bulk of QuotaCounter nodes.
type QuotaCounterUpsertBulk struct {
	create *QuotaCounterCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.QuotaCounter.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(quotacounter.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QuotaCounterUpsertBulk) UpdateNewValues() *QuotaCounterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(quotacounter.FieldID)
			}
			if _, exists := b.mutation.WorkspaceID(); exists {
				s.SetIgnore(quotacounter.FieldWorkspaceID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(quotacounter.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QuotaCounter.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QuotaCounterUpsertBulk) Ignore() *QuotaCounterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuotaCounterUpsertBulk) DoNothing() *QuotaCounterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuotaCounterCreateBulk.OnConflict
// documentation for more info.
func (u *QuotaCounterUpsertBulk) Update(set func(*QuotaCounterUpsert)) *QuotaCounterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuotaCounterUpsert{UpdateSet: update})
	}))
	return u
}

// SetResource sets the "resource" field.
func (u *QuotaCounterUpsertBulk) SetResource(v string) *QuotaCounterUpsertBulk {
	return u.Update(func(s *QuotaCounterUpsert) {
		s.SetResource(v)
	})
}

// UpdateResource sets the "resource" field to the value that was provided on create.
func (u *QuotaCounterUpsertBulk) UpdateResource() *QuotaCounterUpsertBulk {
	return u.Update(func(s *QuotaCounterUpsert) {
		s.UpdateResource()
	})
}

// SetWindowKey sets the "window_key" field.
func (u *QuotaCounterUpsertBulk) SetWindowKey(v string) *QuotaCounterUpsertBulk {
	return u.Update(func(s *QuotaCounterUpsert) {
		s.SetWindowKey(v)
	})
}

// UpdateWindowKey sets the "window_key" field to the value that was provided on create.
func (u *QuotaCounterUpsertBulk) UpdateWindowKey() *QuotaCounterUpsertBulk {
	return u.Update(func(s *QuotaCounterUpsert) {
		s.UpdateWindowKey()
	})
}

// SetCount sets the "count" field.
func (u *QuotaCounterUpsertBulk) SetCount(v int) *QuotaCounterUpsertBulk {
	return u.Update(func(s *QuotaCounterUpsert) {
		s.SetCount(v)
	})
}

// AddCount adds v to the "count" field.
func (u *QuotaCounterUpsertBulk) AddCount(v int) *QuotaCounterUpsertBulk {
	return u.Update(func(s *QuotaCounterUpsert) {
		s.AddCount(v)
	})
}

// UpdateCount sets the "count" field to the value that was provided on create.
func (u *QuotaCounterUpsertBulk) UpdateCount() *QuotaCounterUpsertBulk {
	return u.Update(func(s *QuotaCounterUpsert) {
		s.UpdateCount()
	})
}

// SetLimitValue sets the "limit_value" field.
func (u *QuotaCounterUpsertBulk) SetLimitValue(v int) *QuotaCounterUpsertBulk {
	return u.Update(func(s *QuotaCounterUpsert) {
		s.SetLimitValue(v)
	})
}

// AddLimitValue adds v to the "limit_value" field.
func (u *QuotaCounterUpsertBulk) AddLimitValue(v int) *QuotaCounterUpsertBulk {
	return u.Update(func(s *QuotaCounterUpsert) {
		s.AddLimitValue(v)
	})
}

// UpdateLimitValue sets the "limit_value" field to the value that was provided on create.
func (u *QuotaCounterUpsertBulk) UpdateLimitValue() *QuotaCounterUpsertBulk {
	return u.Update(func(s *QuotaCounterUpsert) {
		s.UpdateLimitValue()
	})
}

// SetResetAt sets the "reset_at" field.
func (u *QuotaCounterUpsertBulk) SetResetAt(v time.Time) *QuotaCounterUpsertBulk {
	return u.Update(func(s *QuotaCounterUpsert) {
		s.SetResetAt(v)
	})
}

// UpdateResetAt sets the "reset_at" field to the value that was provided on create.
func (u *QuotaCounterUpsertBulk) UpdateResetAt() *QuotaCounterUpsertBulk {
	return u.Update(func(s *QuotaCounterUpsert) {
		s.UpdateResetAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *QuotaCounterUpsertBulk) SetUpdatedAt(v time.Time) *QuotaCounterUpsertBulk {
	return u.Update(func(s *QuotaCounterUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *QuotaCounterUpsertBulk) UpdateUpdatedAt() *QuotaCounterUpsertBulk {
	return u.Update(func(s *QuotaCounterUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *QuotaCounterUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the QuotaCounterCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuotaCounterCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuotaCounterUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
