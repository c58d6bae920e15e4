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
	"github.com/vibemonitor/rca/ent/llmconfig"
)

// LLMConfigCreate is the builder for creating a LLMConfig entity.
type LLMConfigCreate struct {
	config
	mutation *LLMConfigMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *LLMConfigCreate) SetWorkspaceID(v string) *LLMConfigCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *LLMConfigCreate) SetProvider(v llmconfig.Provider) *LLMConfigCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *LLMConfigCreate) SetModel(v string) *LLMConfigCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetEncryptedAPIKey sets the "encrypted_api_key" field.
func (_c *LLMConfigCreate) SetEncryptedAPIKey(v []byte) *LLMConfigCreate {
	_c.mutation.SetEncryptedAPIKey(v)
	return _c
}

// SetBaseURL sets the "base_url" field.
func (_c *LLMConfigCreate) SetBaseURL(v string) *LLMConfigCreate {
	_c.mutation.SetBaseURL(v)
	return _c
}

// SetNillableBaseURL sets the "base_url" field if the given value is not nil.
func (_c *LLMConfigCreate) SetNillableBaseURL(v *string) *LLMConfigCreate {
	if v != nil {
		_c.SetBaseURL(*v)
	}
	return _c
}

// SetAPIVersion sets the "api_version" field.
func (_c *LLMConfigCreate) SetAPIVersion(v string) *LLMConfigCreate {
	_c.mutation.SetAPIVersion(v)
	return _c
}

// SetNillableAPIVersion sets the "api_version" field if the given value is not nil.
func (_c *LLMConfigCreate) SetNillableAPIVersion(v *string) *LLMConfigCreate {
	if v != nil {
		_c.SetAPIVersion(*v)
	}
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *LLMConfigCreate) SetEnabled(v bool) *LLMConfigCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *LLMConfigCreate) SetNillableEnabled(v *bool) *LLMConfigCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LLMConfigCreate) SetCreatedAt(v time.Time) *LLMConfigCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LLMConfigCreate) SetNillableCreatedAt(v *time.Time) *LLMConfigCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LLMConfigCreate) SetUpdatedAt(v time.Time) *LLMConfigCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LLMConfigCreate) SetNillableUpdatedAt(v *time.Time) *LLMConfigCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LLMConfigCreate) SetID(v string) *LLMConfigCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the LLMConfigMutation object of the builder.
func (_c *LLMConfigCreate) Mutation() *LLMConfigMutation {
	return _c.mutation
}

// Save creates the LLMConfig in the database.
func (_c *LLMConfigCreate) Save(ctx context.Context) (*LLMConfig, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LLMConfigCreate) SaveX(ctx context.Context) *LLMConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMConfigCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMConfigCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LLMConfigCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := llmconfig.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := llmconfig.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := llmconfig.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LLMConfigCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "LLMConfig.workspace_id"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "LLMConfig.provider"`)}
	}
	if v, ok := _c.mutation.Provider(); ok {
		if err := llmconfig.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "LLMConfig.provider": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "LLMConfig.model"`)}
	}
	if _, ok := _c.mutation.EncryptedAPIKey(); !ok {
		return &ValidationError{Name: "encrypted_api_key", err: errors.New(`ent: missing required field "LLMConfig.encrypted_api_key"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "LLMConfig.enabled"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LLMConfig.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LLMConfig.updated_at"`)}
	}
	return nil
}

func (_c *LLMConfigCreate) sqlSave(ctx context.Context) (*LLMConfig, error) {
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
			return nil, fmt.Errorf("unexpected LLMConfig.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LLMConfigCreate) createSpec() (*LLMConfig, *sqlgraph.CreateSpec) {
	var (
		_node = &LLMConfig{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(llmconfig.Table, sqlgraph.NewFieldSpec(llmconfig.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(llmconfig.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(llmconfig.FieldProvider, field.TypeEnum, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(llmconfig.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.EncryptedAPIKey(); ok {
		_spec.SetField(llmconfig.FieldEncryptedAPIKey, field.TypeBytes, value)
		_node.EncryptedAPIKey = value
	}
	if value, ok := _c.mutation.BaseURL(); ok {
		_spec.SetField(llmconfig.FieldBaseURL, field.TypeString, value)
		_node.BaseURL = &value
	}
	if value, ok := _c.mutation.APIVersion(); ok {
		_spec.SetField(llmconfig.FieldAPIVersion, field.TypeString, value)
		_node.APIVersion = &value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(llmconfig.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(llmconfig.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(llmconfig.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LLMConfig.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LLMConfigUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *LLMConfigCreate) OnConflict(opts ...sql.ConflictOption) *LLMConfigUpsertOne {
	_c.conflict = opts
	return &LLMConfigUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LLMConfig.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LLMConfigCreate) OnConflictColumns(columns ...string) *LLMConfigUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LLMConfigUpsertOne{
		create: _c,
	}
}

type (
	// LLMConfigUpsertOne is the builder for "upsert"-ing
	//  one LLMConfig node.
	LLMConfigUpsertOne struct {
		create *LLMConfigCreate
	}

	// LLMConfigUpsert is the "OnConflict" setter.
	LLMConfigUpsert struct {
		*sql.UpdateSet
	}
)

// SetProvider sets the "provider" field.
func (u *LLMConfigUpsert) SetProvider(v llmconfig.Provider) *LLMConfigUpsert {
	u.Set(llmconfig.FieldProvider, v)
	return u
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *LLMConfigUpsert) UpdateProvider() *LLMConfigUpsert {
	u.SetExcluded(llmconfig.FieldProvider)
	return u
}

// SetModel sets the "model" field.
func (u *LLMConfigUpsert) SetModel(v string) *LLMConfigUpsert {
	u.Set(llmconfig.FieldModel, v)
	return u
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *LLMConfigUpsert) UpdateModel() *LLMConfigUpsert {
	u.SetExcluded(llmconfig.FieldModel)
	return u
}

// SetEncryptedAPIKey sets the "encrypted_api_key" field.
func (u *LLMConfigUpsert) SetEncryptedAPIKey(v []byte) *LLMConfigUpsert {
	u.Set(llmconfig.FieldEncryptedAPIKey, v)
	return u
}

// UpdateEncryptedAPIKey sets the "encrypted_api_key" field to the value that was provided on create.
func (u *LLMConfigUpsert) UpdateEncryptedAPIKey() *LLMConfigUpsert {
	u.SetExcluded(llmconfig.FieldEncryptedAPIKey)
	return u
}

// SetBaseURL sets the "base_url" field.
func (u *LLMConfigUpsert) SetBaseURL(v string) *LLMConfigUpsert {
	u.Set(llmconfig.FieldBaseURL, v)
	return u
}

// UpdateBaseURL sets the "base_url" field to the value that was provided on create.
func (u *LLMConfigUpsert) UpdateBaseURL() *LLMConfigUpsert {
	u.SetExcluded(llmconfig.FieldBaseURL)
	return u
}

// ClearBaseURL clears the value of the "base_url" field.
func (u *LLMConfigUpsert) ClearBaseURL() *LLMConfigUpsert {
	u.SetNull(llmconfig.FieldBaseURL)
	return u
}

// SetAPIVersion sets the "api_version" field.
func (u *LLMConfigUpsert) SetAPIVersion(v string) *LLMConfigUpsert {
	u.Set(llmconfig.FieldAPIVersion, v)
	return u
}

// UpdateAPIVersion sets the "api_version" field to the value that was provided on create.
func (u *LLMConfigUpsert) UpdateAPIVersion() *LLMConfigUpsert {
	u.SetExcluded(llmconfig.FieldAPIVersion)
	return u
}

// ClearAPIVersion clears the value of the "api_version" field.
func (u *LLMConfigUpsert) ClearAPIVersion() *LLMConfigUpsert {
	u.SetNull(llmconfig.FieldAPIVersion)
	return u
}

// SetEnabled sets the "enabled" field.
func (u *LLMConfigUpsert) SetEnabled(v bool) *LLMConfigUpsert {
	u.Set(llmconfig.FieldEnabled, v)
	return u
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *LLMConfigUpsert) UpdateEnabled() *LLMConfigUpsert {
	u.SetExcluded(llmconfig.FieldEnabled)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LLMConfigUpsert) SetUpdatedAt(v time.Time) *LLMConfigUpsert {
	u.Set(llmconfig.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LLMConfigUpsert) UpdateUpdatedAt() *LLMConfigUpsert {
	u.SetExcluded(llmconfig.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.LLMConfig.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(llmconfig.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LLMConfigUpsertOne) UpdateNewValues() *LLMConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(llmconfig.FieldID)
		}
		if _, exists := u.create.mutation.WorkspaceID(); exists {
			s.SetIgnore(llmconfig.FieldWorkspaceID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(llmconfig.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LLMConfig.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LLMConfigUpsertOne) Ignore() *LLMConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LLMConfigUpsertOne) DoNothing() *LLMConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LLMConfigCreate.OnConflict
// documentation for more info.
func (u *LLMConfigUpsertOne) Update(set func(*LLMConfigUpsert)) *LLMConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LLMConfigUpsert{UpdateSet: update})
	}))
	return u
}

// SetProvider sets the "provider" field.
func (u *LLMConfigUpsertOne) SetProvider(v llmconfig.Provider) *LLMConfigUpsertOne {
	return u.Update(func(s *LLMConfigUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *LLMConfigUpsertOne) UpdateProvider() *LLMConfigUpsertOne {
	return u.Update(func(s *LLMConfigUpsert) {
		s.UpdateProvider()
	})
}

// SetModel sets the "model" field.
func (u *LLMConfigUpsertOne) SetModel(v string) *LLMConfigUpsertOne {
	return u.Update(func(s *LLMConfigUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *LLMConfigUpsertOne) UpdateModel() *LLMConfigUpsertOne {
	return u.Update(func(s *LLMConfigUpsert) {
		s.UpdateModel()
	})
}

// SetEncryptedAPIKey sets the "encrypted_api_key" field.
func (u *LLMConfigUpsertOne) SetEncryptedAPIKey(v []byte) *LLMConfigUpsertOne {
	return u.Update(func(s *LLMConfigUpsert) {
		s.SetEncryptedAPIKey(v)
	})
}

// UpdateEncryptedAPIKey sets the "encrypted_api_key" field to the value that was provided on create.
func (u *LLMConfigUpsertOne) UpdateEncryptedAPIKey() *LLMConfigUpsertOne {
	return u.Update(func(s *LLMConfigUpsert) {
		s.UpdateEncryptedAPIKey()
	})
}

// SetBaseURL sets the "base_url" field.
func (u *LLMConfigUpsertOne) SetBaseURL(v string) *LLMConfigUpsertOne {
	return u.Update(func(s *LLMConfigUpsert) {
		s.SetBaseURL(v)
	})
}

// UpdateBaseURL sets the "base_url" field to the value that was provided on create.
func (u *LLMConfigUpsertOne) UpdateBaseURL() *LLMConfigUpsertOne {
	return u.Update(func(s *LLMConfigUpsert) {
		s.UpdateBaseURL()
	})
}

// ClearBaseURL clears the value of the "base_url" field.
func (u *LLMConfigUpsertOne) ClearBaseURL() *LLMConfigUpsertOne {
	return u.Update(func(s *LLMConfigUpsert) {
		s.ClearBaseURL()
	})
}

// SetAPIVersion sets the "api_version" field.
func (u *LLMConfigUpsertOne) SetAPIVersion(v string) *LLMConfigUpsertOne {
	return u.Update(func(s *LLMConfigUpsert) {
		s.SetAPIVersion(v)
	})
}

// UpdateAPIVersion sets the "api_version" field to the value that was provided on create.
func (u *LLMConfigUpsertOne) UpdateAPIVersion() *LLMConfigUpsertOne {
	return u.Update(func(s *LLMConfigUpsert) {
		s.UpdateAPIVersion()
	})
}

// ClearAPIVersion clears the value of the "api_version" field.
func (u *LLMConfigUpsertOne) ClearAPIVersion() *LLMConfigUpsertOne {
	return u.Update(func(s *LLMConfigUpsert) {
		s.ClearAPIVersion()
	})
}

// SetEnabled sets the "enabled" field.
func (u *LLMConfigUpsertOne) SetEnabled(v bool) *LLMConfigUpsertOne {
	return u.Update(func(s *LLMConfigUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *LLMConfigUpsertOne) UpdateEnabled() *LLMConfigUpsertOne {
	return u.Update(func(s *LLMConfigUpsert) {
		s.UpdateEnabled()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LLMConfigUpsertOne) SetUpdatedAt(v time.Time) *LLMConfigUpsertOne {
	return u.Update(func(s *LLMConfigUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LLMConfigUpsertOne) UpdateUpdatedAt() *LLMConfigUpsertOne {
	return u.Update(func(s *LLMConfigUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *LLMConfigUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LLMConfigCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LLMConfigUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LLMConfigUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: LLMConfigUpsertOne.ID is not supported by MySQL driver. Use LLMConfigUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LLMConfigUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LLMConfigCreateBulk is the builder for creating many LLMConfig entities in bulk.
type LLMConfigCreateBulk struct {
	config
	err      error
	builders []*LLMConfigCreate
	conflict []sql.ConflictOption
}

// Save creates the LLMConfig entities in the database.
func (_c *LLMConfigCreateBulk) Save(ctx context.Context) ([]*LLMConfig, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LLMConfig, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LLMConfigMutation)
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
func (_c *LLMConfigCreateBulk) SaveX(ctx context.Context) []*LLMConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMConfigCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMConfigCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LLMConfig.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LLMConfigUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *LLMConfigCreateBulk) OnConflict(opts ...sql.ConflictOption) *LLMConfigUpsertBulk {
	_c.conflict = opts
	return &LLMConfigUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LLMConfig.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LLMConfigCreateBulk) OnConflictColumns(columns ...string) *LLMConfigUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LLMConfigUpsertBulk{
		create: _c,
	}
}

// LLMConfigUpsertBulk is the builder for "upsert"-ing
// a bulk of LLMConfig nodes.
type LLMConfigUpsertBulk struct {
	create *LLMConfigCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LLMConfig.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(llmconfig.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LLMConfigUpsertBulk) UpdateNewValues() *LLMConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(llmconfig.FieldID)
			}
			if _, exists := b.mutation.WorkspaceID(); exists {
				s.SetIgnore(llmconfig.FieldWorkspaceID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(llmconfig.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LLMConfig.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LLMConfigUpsertBulk) Ignore() *LLMConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LLMConfigUpsertBulk) DoNothing() *LLMConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LLMConfigCreateBulk.OnConflict
// documentation for more info.
func (u *LLMConfigUpsertBulk) Update(set func(*LLMConfigUpsert)) *LLMConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LLMConfigUpsert{UpdateSet: update})
	}))
	return u
}

// SetProvider sets the "provider" field.
func (u *LLMConfigUpsertBulk) SetProvider(v llmconfig.Provider) *LLMConfigUpsertBulk {
	return u.Update(func(s *LLMConfigUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *LLMConfigUpsertBulk) UpdateProvider() *LLMConfigUpsertBulk {
	return u.Update(func(s *LLMConfigUpsert) {
		s.UpdateProvider()
	})
}

// SetModel sets the "model" field.
func (u *LLMConfigUpsertBulk) SetModel(v string) *LLMConfigUpsertBulk {
	return u.Update(func(s *LLMConfigUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *LLMConfigUpsertBulk) UpdateModel() *LLMConfigUpsertBulk {
	return u.Update(func(s *LLMConfigUpsert) {
		s.UpdateModel()
	})
}

// SetEncryptedAPIKey sets the "encrypted_api_key" field.
func (u *LLMConfigUpsertBulk) SetEncryptedAPIKey(v []byte) *LLMConfigUpsertBulk {
	return u.Update(func(s *LLMConfigUpsert) {
		s.SetEncryptedAPIKey(v)
	})
}

// UpdateEncryptedAPIKey sets the "encrypted_api_key" field to the value that was provided on create.
func (u *LLMConfigUpsertBulk) UpdateEncryptedAPIKey() *LLMConfigUpsertBulk {
	return u.Update(func(s *LLMConfigUpsert) {
		s.UpdateEncryptedAPIKey()
	})
}

// SetBaseURL sets the "base_url" field.
func (u *LLMConfigUpsertBulk) SetBaseURL(v string) *LLMConfigUpsertBulk {
	return u.Update(func(s *LLMConfigUpsert) {
		s.SetBaseURL(v)
	})
}

// UpdateBaseURL sets the "base_url" field to the value that was provided on create.
func (u *LLMConfigUpsertBulk) UpdateBaseURL() *LLMConfigUpsertBulk {
	return u.Update(func(s *LLMConfigUpsert) {
		s.UpdateBaseURL()
	})
}

// ClearBaseURL clears the value of the "base_url" field.
func (u *LLMConfigUpsertBulk) ClearBaseURL() *LLMConfigUpsertBulk {
	return u.Update(func(s *LLMConfigUpsert) {
		s.ClearBaseURL()
	})
}

// SetAPIVersion sets the "api_version" field.
func (u *LLMConfigUpsertBulk) SetAPIVersion(v string) *LLMConfigUpsertBulk {
	return u.Update(func(s *LLMConfigUpsert) {
		s.SetAPIVersion(v)
	})
}

// UpdateAPIVersion sets the "api_version" field to the value that was provided on create.
func (u *LLMConfigUpsertBulk) UpdateAPIVersion() *LLMConfigUpsertBulk {
	return u.Update(func(s *LLMConfigUpsert) {
		s.UpdateAPIVersion()
	})
}

// ClearAPIVersion clears the value of the "api_version" field.
func (u *LLMConfigUpsertBulk) ClearAPIVersion() *LLMConfigUpsertBulk {
	return u.Update(func(s *LLMConfigUpsert) {
		s.ClearAPIVersion()
	})
}

// SetEnabled sets the "enabled" field.
func (u *LLMConfigUpsertBulk) SetEnabled(v bool) *LLMConfigUpsertBulk {
	return u.Update(func(s *LLMConfigUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *LLMConfigUpsertBulk) UpdateEnabled() *LLMConfigUpsertBulk {
	return u.Update(func(s *LLMConfigUpsert) {
		s.UpdateEnabled()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LLMConfigUpsertBulk) SetUpdatedAt(v time.Time) *LLMConfigUpsertBulk {
	return u.Update(func(s *LLMConfigUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LLMConfigUpsertBulk) UpdateUpdatedAt() *LLMConfigUpsertBulk {
	return u.Update(func(s *LLMConfigUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *LLMConfigUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LLMConfigCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LLMConfigCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LLMConfigUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
