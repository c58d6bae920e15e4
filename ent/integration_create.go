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
	"github.com/vibemonitor/rca/ent/integration"
)

// IntegrationCreate is the builder for creating a Integration entity.
type IntegrationCreate struct {
	config
	mutation *IntegrationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *IntegrationCreate) SetWorkspaceID(v string) *IntegrationCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *IntegrationCreate) SetProvider(v integration.Provider) *IntegrationCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetName sets the "name" field.
func (_c *IntegrationCreate) SetName(v string) *IntegrationCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetEncryptedCredentials sets the "encrypted_credentials" field.
func (_c *IntegrationCreate) SetEncryptedCredentials(v []byte) *IntegrationCreate {
	_c.mutation.SetEncryptedCredentials(v)
	return _c
}

// SetSettings sets the "settings" field.
func (_c *IntegrationCreate) SetSettings(v map[string]interface{}) *IntegrationCreate {
	_c.mutation.SetSettings(v)
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *IntegrationCreate) SetEnabled(v bool) *IntegrationCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *IntegrationCreate) SetNillableEnabled(v *bool) *IntegrationCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetHealthStatus sets the "health_status" field.
func (_c *IntegrationCreate) SetHealthStatus(v integration.HealthStatus) *IntegrationCreate {
	_c.mutation.SetHealthStatus(v)
	return _c
}

// SetNillableHealthStatus sets the "health_status" field if the given value is not nil.
func (_c *IntegrationCreate) SetNillableHealthStatus(v *integration.HealthStatus) *IntegrationCreate {
	if v != nil {
		_c.SetHealthStatus(*v)
	}
	return _c
}

// SetLastHealthCheckAt sets the "last_health_check_at" field.
func (_c *IntegrationCreate) SetLastHealthCheckAt(v time.Time) *IntegrationCreate {
	_c.mutation.SetLastHealthCheckAt(v)
	return _c
}

// SetNillableLastHealthCheckAt sets the "last_health_check_at" field if the given value is not nil.
func (_c *IntegrationCreate) SetNillableLastHealthCheckAt(v *time.Time) *IntegrationCreate {
	if v != nil {
		_c.SetLastHealthCheckAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *IntegrationCreate) SetCreatedAt(v time.Time) *IntegrationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *IntegrationCreate) SetNillableCreatedAt(v *time.Time) *IntegrationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *IntegrationCreate) SetUpdatedAt(v time.Time) *IntegrationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *IntegrationCreate) SetNillableUpdatedAt(v *time.Time) *IntegrationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *IntegrationCreate) SetID(v string) *IntegrationCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the IntegrationMutation object of the builder.
func (_c *IntegrationCreate) Mutation() *IntegrationMutation {
	return _c.mutation
}

// Save creates the Integration in the database.
func (_c *IntegrationCreate) Save(ctx context.Context) (*Integration, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IntegrationCreate) SaveX(ctx context.Context) *Integration {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IntegrationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IntegrationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IntegrationCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := integration.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.HealthStatus(); !ok {
		v := integration.DefaultHealthStatus
		_c.mutation.SetHealthStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := integration.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := integration.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IntegrationCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "Integration.workspace_id"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "Integration.provider"`)}
	}
	if v, ok := _c.mutation.Provider(); ok {
		if err := integration.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "Integration.provider": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Integration.name"`)}
	}
	if _, ok := _c.mutation.EncryptedCredentials(); !ok {
		return &ValidationError{Name: "encrypted_credentials", err: errors.New(`ent: missing required field "Integration.encrypted_credentials"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "Integration.enabled"`)}
	}
	if _, ok := _c.mutation.HealthStatus(); !ok {
		return &ValidationError{Name: "health_status", err: errors.New(`ent: missing required field "Integration.health_status"`)}
	}
	if v, ok := _c.mutation.HealthStatus(); ok {
		if err := integration.HealthStatusValidator(v); err != nil {
			return &ValidationError{Name: "health_status", err: fmt.Errorf(`ent: validator failed for field "Integration.health_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Integration.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Integration.updated_at"`)}
	}
	return nil
}

func (_c *IntegrationCreate) sqlSave(ctx context.Context) (*Integration, error) {
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
			return nil, fmt.Errorf("unexpected Integration.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *IntegrationCreate) createSpec() (*Integration, *sqlgraph.CreateSpec) {
	var (
		_node = &Integration{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(integration.Table, sqlgraph.NewFieldSpec(integration.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(integration.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(integration.FieldProvider, field.TypeEnum, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(integration.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.EncryptedCredentials(); ok {
		_spec.SetField(integration.FieldEncryptedCredentials, field.TypeBytes, value)
		_node.EncryptedCredentials = value
	}
	if value, ok := _c.mutation.Settings(); ok {
		_spec.SetField(integration.FieldSettings, field.TypeJSON, value)
		_node.Settings = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(integration.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.HealthStatus(); ok {
		_spec.SetField(integration.FieldHealthStatus, field.TypeEnum, value)
		_node.HealthStatus = value
	}
	if value, ok := _c.mutation.LastHealthCheckAt(); ok {
		_spec.SetField(integration.FieldLastHealthCheckAt, field.TypeTime, value)
		_node.LastHealthCheckAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(integration.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(integration.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Integration.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.IntegrationUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *IntegrationCreate) OnConflict(opts ...sql.ConflictOption) *IntegrationUpsertOne {
	_c.conflict = opts
	return &IntegrationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Integration.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *IntegrationCreate) OnConflictColumns(columns ...string) *IntegrationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &IntegrationUpsertOne{
		create: _c,
	}
}

type (
	// IntegrationUpsertOne is the builder for "upsert"-ing
	//  one Integration node.
	IntegrationUpsertOne struct {
		create *IntegrationCreate
	}

	// IntegrationUpsert is the "OnConflict" setter.
	IntegrationUpsert struct {
		*sql.UpdateSet
	}
)

// SetProvider sets the "provider" field.
func (u *IntegrationUpsert) SetProvider(v integration.Provider) *IntegrationUpsert {
	u.Set(integration.FieldProvider, v)
	return u
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *IntegrationUpsert) UpdateProvider() *IntegrationUpsert {
	u.SetExcluded(integration.FieldProvider)
	return u
}

// SetName sets the "name" field.
func (u *IntegrationUpsert) SetName(v string) *IntegrationUpsert {
	u.Set(integration.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *IntegrationUpsert) UpdateName() *IntegrationUpsert {
	u.SetExcluded(integration.FieldName)
	return u
}

// SetEncryptedCredentials sets the "encrypted_credentials" field.
func (u *IntegrationUpsert) SetEncryptedCredentials(v []byte) *IntegrationUpsert {
	u.Set(integration.FieldEncryptedCredentials, v)
	return u
}

// UpdateEncryptedCredentials sets the "encrypted_credentials" field to the value that was provided on create.
func (u *IntegrationUpsert) UpdateEncryptedCredentials() *IntegrationUpsert {
	u.SetExcluded(integration.FieldEncryptedCredentials)
	return u
}

// SetSettings sets the "settings" field.
func (u *IntegrationUpsert) SetSettings(v map[string]interface{}) *IntegrationUpsert {
	u.Set(integration.FieldSettings, v)
	return u
}

// UpdateSettings sets the "settings" field to the value that was provided on create.
func (u *IntegrationUpsert) UpdateSettings() *IntegrationUpsert {
	u.SetExcluded(integration.FieldSettings)
	return u
}

// ClearSettings clears the value of the "settings" field.
func (u *IntegrationUpsert) ClearSettings() *IntegrationUpsert {
	u.SetNull(integration.FieldSettings)
	return u
}

// SetEnabled sets the "enabled" field.
func (u *IntegrationUpsert) SetEnabled(v bool) *IntegrationUpsert {
	u.Set(integration.FieldEnabled, v)
	return u
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *IntegrationUpsert) UpdateEnabled() *IntegrationUpsert {
	u.SetExcluded(integration.FieldEnabled)
	return u
}

// SetHealthStatus sets the "health_status" field.
func (u *IntegrationUpsert) SetHealthStatus(v integration.HealthStatus) *IntegrationUpsert {
	u.Set(integration.FieldHealthStatus, v)
	return u
}

// UpdateHealthStatus sets the "health_status" field to the value that was provided on create.
func (u *IntegrationUpsert) UpdateHealthStatus() *IntegrationUpsert {
	u.SetExcluded(integration.FieldHealthStatus)
	return u
}

// SetLastHealthCheckAt sets the "last_health_check_at" field.
func (u *IntegrationUpsert) SetLastHealthCheckAt(v time.Time) *IntegrationUpsert {
	u.Set(integration.FieldLastHealthCheckAt, v)
	return u
}

// UpdateLastHealthCheckAt sets the "last_health_check_at" field to the value that was provided on create.
func (u *IntegrationUpsert) UpdateLastHealthCheckAt() *IntegrationUpsert {
	u.SetExcluded(integration.FieldLastHealthCheckAt)
	return u
}

// ClearLastHealthCheckAt clears the value of the "last_health_check_at" field.
func (u *IntegrationUpsert) ClearLastHealthCheckAt() *IntegrationUpsert {
	u.SetNull(integration.FieldLastHealthCheckAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *IntegrationUpsert) SetUpdatedAt(v time.Time) *IntegrationUpsert {
	u.Set(integration.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *IntegrationUpsert) UpdateUpdatedAt() *IntegrationUpsert {
	u.SetExcluded(integration.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Integration.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(integration.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *IntegrationUpsertOne) UpdateNewValues() *IntegrationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(integration.FieldID)
		}
		if _, exists := u.create.mutation.WorkspaceID(); exists {
			s.SetIgnore(integration.FieldWorkspaceID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(integration.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Integration.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *IntegrationUpsertOne) Ignore() *IntegrationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *IntegrationUpsertOne) DoNothing() *IntegrationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the IntegrationCreate.OnConflict
// documentation for more info.
func (u *IntegrationUpsertOne) Update(set func(*IntegrationUpsert)) *IntegrationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&IntegrationUpsert{UpdateSet: update})
	}))
	return u
}

// SetProvider sets the "provider" field.
func (u *IntegrationUpsertOne) SetProvider(v integration.Provider) *IntegrationUpsertOne {
	return u.Update(func(s *IntegrationUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *IntegrationUpsertOne) UpdateProvider() *IntegrationUpsertOne {
	return u.Update(func(s *IntegrationUpsert) {
		s.UpdateProvider()
	})
}

// SetName sets the "name" field.
func (u *IntegrationUpsertOne) SetName(v string) *IntegrationUpsertOne {
	return u.Update(func(s *IntegrationUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *IntegrationUpsertOne) UpdateName() *IntegrationUpsertOne {
	return u.Update(func(s *IntegrationUpsert) {
		s.UpdateName()
	})
}

// SetEncryptedCredentials sets the "encrypted_credentials" field.
func (u *IntegrationUpsertOne) SetEncryptedCredentials(v []byte) *IntegrationUpsertOne {
	return u.Update(func(s *IntegrationUpsert) {
		s.SetEncryptedCredentials(v)
	})
}

// UpdateEncryptedCredentials sets the "encrypted_credentials" field to the value that was provided on create.
func (u *IntegrationUpsertOne) UpdateEncryptedCredentials() *IntegrationUpsertOne {
	return u.Update(func(s *IntegrationUpsert) {
		s.UpdateEncryptedCredentials()
	})
}

// SetSettings sets the "settings" field.
func (u *IntegrationUpsertOne) SetSettings(v map[string]interface{}) *IntegrationUpsertOne {
	return u.Update(func(s *IntegrationUpsert) {
		s.SetSettings(v)
	})
}

// UpdateSettings sets the "settings" field to the value that was provided on create.
func (u *IntegrationUpsertOne) UpdateSettings() *IntegrationUpsertOne {
	return u.Update(func(s *IntegrationUpsert) {
		s.UpdateSettings()
	})
}

// ClearSettings clears the value of the "settings" field.
func (u *IntegrationUpsertOne) ClearSettings() *IntegrationUpsertOne {
	return u.Update(func(s *IntegrationUpsert) {
		s.ClearSettings()
	})
}

// SetEnabled sets the "enabled" field.
func (u *IntegrationUpsertOne) SetEnabled(v bool) *IntegrationUpsertOne {
	return u.Update(func(s *IntegrationUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *IntegrationUpsertOne) UpdateEnabled() *IntegrationUpsertOne {
	return u.Update(func(s *IntegrationUpsert) {
		s.UpdateEnabled()
	})
}

// SetHealthStatus sets the "health_status" field.
func (u *IntegrationUpsertOne) SetHealthStatus(v integration.HealthStatus) *IntegrationUpsertOne {
	return u.Update(func(s *IntegrationUpsert) {
		s.SetHealthStatus(v)
	})
}

// UpdateHealthStatus sets the "health_status" field to the value that was provided on create.
func (u *IntegrationUpsertOne) UpdateHealthStatus() *IntegrationUpsertOne {
	return u.Update(func(s *IntegrationUpsert) {
		s.UpdateHealthStatus()
	})
}

// SetLastHealthCheckAt sets the "last_health_check_at" field.
func (u *IntegrationUpsertOne) SetLastHealthCheckAt(v time.Time) *IntegrationUpsertOne {
	return u.Update(func(s *IntegrationUpsert) {
		s.SetLastHealthCheckAt(v)
	})
}

// UpdateLastHealthCheckAt sets the "last_health_check_at" field to the value that was provided on create.
func (u *IntegrationUpsertOne) UpdateLastHealthCheckAt() *IntegrationUpsertOne {
	return u.Update(func(s *IntegrationUpsert) {
		s.UpdateLastHealthCheckAt()
	})
}

// ClearLastHealthCheckAt clears the value of the "last_health_check_at" field.
func (u *IntegrationUpsertOne) ClearLastHealthCheckAt() *IntegrationUpsertOne {
	return u.Update(func(s *IntegrationUpsert) {
		s.ClearLastHealthCheckAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *IntegrationUpsertOne) SetUpdatedAt(v time.Time) *IntegrationUpsertOne {
	return u.Update(func(s *IntegrationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *IntegrationUpsertOne) UpdateUpdatedAt() *IntegrationUpsertOne {
	return u.Update(func(s *IntegrationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *IntegrationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for IntegrationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *IntegrationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *IntegrationUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: IntegrationUpsertOne.ID is not supported by MySQL driver. Use IntegrationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *IntegrationUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// IntegrationCreateBulk is the builder for creating many Integration entities in bulk.
type IntegrationCreateBulk struct {
	config
	err      error
	builders []*IntegrationCreate
	conflict []sql.ConflictOption
}

// Save creates the Integration entities in the database.
func (_c *IntegrationCreateBulk) Save(ctx context.Context) ([]*Integration, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Integration, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IntegrationMutation)
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
func (_c *IntegrationCreateBulk) SaveX(ctx context.Context) []*Integration {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IntegrationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IntegrationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Integration.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.IntegrationUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *IntegrationCreateBulk) OnConflict(opts ...sql.ConflictOption) *IntegrationUpsertBulk {
	_c.conflict = opts
	return &IntegrationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Integration.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *IntegrationCreateBulk) OnConflictColumns(columns ...string) *IntegrationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &IntegrationUpsertBulk{
		create: _c,
	}
}

// IntegrationUpsertBulk is the builder for "upsert"-ing
// a bulk of Integration nodes.
type IntegrationUpsertBulk struct {
	create *IntegrationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Integration.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(integration.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *IntegrationUpsertBulk) UpdateNewValues() *IntegrationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(integration.FieldID)
			}
			if _, exists := b.mutation.WorkspaceID(); exists {
				s.SetIgnore(integration.FieldWorkspaceID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(integration.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Integration.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *IntegrationUpsertBulk) Ignore() *IntegrationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *IntegrationUpsertBulk) DoNothing() *IntegrationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the IntegrationCreateBulk.OnConflict
// documentation for more info.
func (u *IntegrationUpsertBulk) Update(set func(*IntegrationUpsert)) *IntegrationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&IntegrationUpsert{UpdateSet: update})
	}))
	return u
}

// SetProvider sets the "provider" field.
func (u *IntegrationUpsertBulk) SetProvider(v integration.Provider) *IntegrationUpsertBulk {
	return u.Update(func(s *IntegrationUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *IntegrationUpsertBulk) UpdateProvider() *IntegrationUpsertBulk {
	return u.Update(func(s *IntegrationUpsert) {
		s.UpdateProvider()
	})
}

// SetName sets the "name" field.
func (u *IntegrationUpsertBulk) SetName(v string) *IntegrationUpsertBulk {
	return u.Update(func(s *IntegrationUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *IntegrationUpsertBulk) UpdateName() *IntegrationUpsertBulk {
	return u.Update(func(s *IntegrationUpsert) {
		s.UpdateName()
	})
}

// SetEncryptedCredentials sets the "encrypted_credentials" field.
func (u *IntegrationUpsertBulk) SetEncryptedCredentials(v []byte) *IntegrationUpsertBulk {
	return u.Update(func(s *IntegrationUpsert) {
		s.SetEncryptedCredentials(v)
	})
}

// UpdateEncryptedCredentials sets the "encrypted_credentials" field to the value that was provided on create.
func (u *IntegrationUpsertBulk) UpdateEncryptedCredentials() *IntegrationUpsertBulk {
	return u.Update(func(s *IntegrationUpsert) {
		s.UpdateEncryptedCredentials()
	})
}

// SetSettings sets the "settings" field.
func (u *IntegrationUpsertBulk) SetSettings(v map[string]interface{}) *IntegrationUpsertBulk {
	return u.Update(func(s *IntegrationUpsert) {
		s.SetSettings(v)
	})
}

// UpdateSettings sets the "settings" field to the value that was provided on create.
func (u *IntegrationUpsertBulk) UpdateSettings() *IntegrationUpsertBulk {
	return u.Update(func(s *IntegrationUpsert) {
		s.UpdateSettings()
	})
}

// ClearSettings clears the value of the "settings" field.
func (u *IntegrationUpsertBulk) ClearSettings() *IntegrationUpsertBulk {
	return u.Update(func(s *IntegrationUpsert) {
		s.ClearSettings()
	})
}

// SetEnabled sets the "enabled" field.
func (u *IntegrationUpsertBulk) SetEnabled(v bool) *IntegrationUpsertBulk {
	return u.Update(func(s *IntegrationUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *IntegrationUpsertBulk) UpdateEnabled() *IntegrationUpsertBulk {
	return u.Update(func(s *IntegrationUpsert) {
		s.UpdateEnabled()
	})
}

// SetHealthStatus sets the "health_status" field.
func (u *IntegrationUpsertBulk) SetHealthStatus(v integration.HealthStatus) *IntegrationUpsertBulk {
	return u.Update(func(s *IntegrationUpsert) {
		s.SetHealthStatus(v)
	})
}

// UpdateHealthStatus sets the "health_status" field to the value that was provided on create.
func (u *IntegrationUpsertBulk) UpdateHealthStatus() *IntegrationUpsertBulk {
	return u.Update(func(s *IntegrationUpsert) {
		s.UpdateHealthStatus()
	})
}

// SetLastHealthCheckAt sets the "last_health_check_at" field.
func (u *IntegrationUpsertBulk) SetLastHealthCheckAt(v time.Time) *IntegrationUpsertBulk {
	return u.Update(func(s *IntegrationUpsert) {
		s.SetLastHealthCheckAt(v)
	})
}

// UpdateLastHealthCheckAt sets the "last_health_check_at" field to the value that was provided on create.
func (u *IntegrationUpsertBulk) UpdateLastHealthCheckAt() *IntegrationUpsertBulk {
	return u.Update(func(s *IntegrationUpsert) {
		s.UpdateLastHealthCheckAt()
	})
}

// ClearLastHealthCheckAt clears the value of the "last_health_check_at" field.
func (u *IntegrationUpsertBulk) ClearLastHealthCheckAt() *IntegrationUpsertBulk {
	return u.Update(func(s *IntegrationUpsert) {
		s.ClearLastHealthCheckAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *IntegrationUpsertBulk) SetUpdatedAt(v time.Time) *IntegrationUpsertBulk {
	return u.Update(func(s *IntegrationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *IntegrationUpsertBulk) UpdateUpdatedAt() *IntegrationUpsertBulk {
	return u.Update(func(s *IntegrationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *IntegrationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the IntegrationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for IntegrationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *IntegrationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
