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
	"github.com/vibemonitor/rca/ent/securityevent"
)

// SecurityEventCreate is the builder for creating a SecurityEvent entity.
type SecurityEventCreate struct {
	config
	mutation *SecurityEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *SecurityEventCreate) SetWorkspaceID(v string) *SecurityEventCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *SecurityEventCreate) SetUserID(v string) *SecurityEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *SecurityEventCreate) SetNillableUserID(v *string) *SecurityEventCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *SecurityEventCreate) SetEventType(v securityevent.EventType) *SecurityEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetMessagePreview sets the "message_preview" field.
func (_c *SecurityEventCreate) SetMessagePreview(v string) *SecurityEventCreate {
	_c.mutation.SetMessagePreview(v)
	return _c
}

// SetDetail sets the "detail" field.
func (_c *SecurityEventCreate) SetDetail(v string) *SecurityEventCreate {
	_c.mutation.SetDetail(v)
	return _c
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_c *SecurityEventCreate) SetNillableDetail(v *string) *SecurityEventCreate {
	if v != nil {
		_c.SetDetail(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SecurityEventCreate) SetCreatedAt(v time.Time) *SecurityEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SecurityEventCreate) SetNillableCreatedAt(v *time.Time) *SecurityEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SecurityEventCreate) SetID(v string) *SecurityEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SecurityEventMutation object of the builder.
func (_c *SecurityEventCreate) Mutation() *SecurityEventMutation {
	return _c.mutation
}

// Save creates the SecurityEvent in the database.
func (_c *SecurityEventCreate) Save(ctx context.Context) (*SecurityEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SecurityEventCreate) SaveX(ctx context.Context) *SecurityEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SecurityEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SecurityEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SecurityEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := securityevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SecurityEventCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "SecurityEvent.workspace_id"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "SecurityEvent.event_type"`)}
	}
	if v, ok := _c.mutation.EventType(); ok {
		if err := securityevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "SecurityEvent.event_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MessagePreview(); !ok {
		return &ValidationError{Name: "message_preview", err: errors.New(`ent: missing required field "SecurityEvent.message_preview"`)}
	}
	if v, ok := _c.mutation.MessagePreview(); ok {
		if err := securityevent.MessagePreviewValidator(v); err != nil {
			return &ValidationError{Name: "message_preview", err: fmt.Errorf(`ent: validator failed for field "SecurityEvent.message_preview": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SecurityEvent.created_at"`)}
	}
	return nil
}

func (_c *SecurityEventCreate) sqlSave(ctx context.Context) (*SecurityEvent, error) {
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
			return nil, fmt.Errorf("unexpected SecurityEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SecurityEventCreate) createSpec() (*SecurityEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SecurityEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(securityevent.Table, sqlgraph.NewFieldSpec(securityevent.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(securityevent.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(securityevent.FieldUserID, field.TypeString, value)
		_node.UserID = &value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(securityevent.FieldEventType, field.TypeEnum, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.MessagePreview(); ok {
		_spec.SetField(securityevent.FieldMessagePreview, field.TypeString, value)
		_node.MessagePreview = value
	}
	if value, ok := _c.mutation.Detail(); ok {
		_spec.SetField(securityevent.FieldDetail, field.TypeString, value)
		_node.Detail = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(securityevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SecurityEvent.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SecurityEventUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *SecurityEventCreate) OnConflict(opts ...sql.ConflictOption) *SecurityEventUpsertOne {
	_c.conflict = opts
	return &SecurityEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SecurityEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SecurityEventCreate) OnConflictColumns(columns ...string) *SecurityEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SecurityEventUpsertOne{
		create: _c,
	}
}

type (
	// SecurityEventUpsertOne is the builder for "upsert"-ing
	//  one SecurityEvent node.
	SecurityEventUpsertOne struct {
		create *SecurityEventCreate
	}

	// SecurityEventUpsert is the "OnConflict" setter.
	SecurityEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *SecurityEventUpsert) SetUserID(v string) *SecurityEventUpsert {
	u.Set(securityevent.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SecurityEventUpsert) UpdateUserID() *SecurityEventUpsert {
	u.SetExcluded(securityevent.FieldUserID)
	return u
}

// ClearUserID clears the value of the "user_id" field.
func (u *SecurityEventUpsert) ClearUserID() *SecurityEventUpsert {
	u.SetNull(securityevent.FieldUserID)
	return u
}

// SetEventType sets the "event_type" field.
func (u *SecurityEventUpsert) SetEventType(v securityevent.EventType) *SecurityEventUpsert {
	u.Set(securityevent.FieldEventType, v)
	return u
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *SecurityEventUpsert) UpdateEventType() *SecurityEventUpsert {
	u.SetExcluded(securityevent.FieldEventType)
	return u
}

// SetMessagePreview sets the "message_preview" field.
func (u *SecurityEventUpsert) SetMessagePreview(v string) *SecurityEventUpsert {
	u.Set(securityevent.FieldMessagePreview, v)
	return u
}

// UpdateMessagePreview sets the "message_preview" field to the value that was provided on create.
func (u *SecurityEventUpsert) UpdateMessagePreview() *SecurityEventUpsert {
	u.SetExcluded(securityevent.FieldMessagePreview)
	return u
}

// SetDetail sets the "detail" field.
func (u *SecurityEventUpsert) SetDetail(v string) *SecurityEventUpsert {
	u.Set(securityevent.FieldDetail, v)
	return u
}

// UpdateDetail sets the "detail" field to the value that was provided on create.
func (u *SecurityEventUpsert) UpdateDetail() *SecurityEventUpsert {
	u.SetExcluded(securityevent.FieldDetail)
	return u
}

// ClearDetail clears the value of the "detail" field.
func (u *SecurityEventUpsert) ClearDetail() *SecurityEventUpsert {
	u.SetNull(securityevent.FieldDetail)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SecurityEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(securityevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SecurityEventUpsertOne) UpdateNewValues() *SecurityEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(securityevent.FieldID)
		}
		if _, exists := u.create.mutation.WorkspaceID(); exists {
			s.SetIgnore(securityevent.FieldWorkspaceID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(securityevent.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SecurityEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SecurityEventUpsertOne) Ignore() *SecurityEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SecurityEventUpsertOne) DoNothing() *SecurityEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SecurityEventCreate.OnConflict
// documentation for more info.
func (u *SecurityEventUpsertOne) Update(set func(*SecurityEventUpsert)) *SecurityEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SecurityEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *SecurityEventUpsertOne) SetUserID(v string) *SecurityEventUpsertOne {
	return u.Update(func(s *SecurityEventUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SecurityEventUpsertOne) UpdateUserID() *SecurityEventUpsertOne {
	return u.Update(func(s *SecurityEventUpsert) {
		s.UpdateUserID()
	})
}

// ClearUserID clears the value of the "user_id" field.
func (u *SecurityEventUpsertOne) ClearUserID() *SecurityEventUpsertOne {
	return u.Update(func(s *SecurityEventUpsert) {
		s.ClearUserID()
	})
}

// SetEventType sets the "event_type" field.
func (u *SecurityEventUpsertOne) SetEventType(v securityevent.EventType) *SecurityEventUpsertOne {
	return u.Update(func(s *SecurityEventUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *SecurityEventUpsertOne) UpdateEventType() *SecurityEventUpsertOne {
	return u.Update(func(s *SecurityEventUpsert) {
		s.UpdateEventType()
	})
}

// SetMessagePreview sets the "message_preview" field.
func (u *SecurityEventUpsertOne) SetMessagePreview(v string) *SecurityEventUpsertOne {
	return u.Update(func(s *SecurityEventUpsert) {
		s.SetMessagePreview(v)
	})
}

// UpdateMessagePreview sets the "message_preview" field to the value that was provided on create.
func (u *SecurityEventUpsertOne) UpdateMessagePreview() *SecurityEventUpsertOne {
	return u.Update(func(s *SecurityEventUpsert) {
		s.UpdateMessagePreview()
	})
}

// SetDetail sets the "detail" field.
func (u *SecurityEventUpsertOne) SetDetail(v string) *SecurityEventUpsertOne {
	return u.Update(func(s *SecurityEventUpsert) {
		s.SetDetail(v)
	})
}

// UpdateDetail sets the "detail" field to the value that was provided on create.
func (u *SecurityEventUpsertOne) UpdateDetail() *SecurityEventUpsertOne {
	return u.Update(func(s *SecurityEventUpsert) {
		s.UpdateDetail()
	})
}

// ClearDetail clears the value of the "detail" field.
func (u *SecurityEventUpsertOne) ClearDetail() *SecurityEventUpsertOne {
	return u.Update(func(s *SecurityEventUpsert) {
		s.ClearDetail()
	})
}

// Exec executes the query.
func (u *SecurityEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SecurityEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SecurityEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SecurityEventUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SecurityEventUpsertOne.ID is not supported by MySQL driver. Use SecurityEventUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SecurityEventUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SecurityEventCreateBulk is the builder for creating many SecurityEvent entities in bulk.
type SecurityEventCreateBulk struct {
	config
	err      error
	builders []*SecurityEventCreate
	conflict []sql.ConflictOption
}

// Save creates the SecurityEvent entities in the database.
func (_c *SecurityEventCreateBulk) Save(ctx context.Context) ([]*SecurityEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SecurityEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SecurityEventMutation)
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
func (_c *SecurityEventCreateBulk) SaveX(ctx context.Context) []*SecurityEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SecurityEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SecurityEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SecurityEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SecurityEventUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *SecurityEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *SecurityEventUpsertBulk {
	_c.conflict = opts
	return &SecurityEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SecurityEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SecurityEventCreateBulk) OnConflictColumns(columns ...string) *SecurityEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SecurityEventUpsertBulk{
		create: _c,
	}
}

// SecurityEventUpsertBulk is the builder for "upsert"-ing
// a bulk of SecurityEvent nodes.
type SecurityEventUpsertBulk struct {
	create *SecurityEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SecurityEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(securityevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SecurityEventUpsertBulk) UpdateNewValues() *SecurityEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(securityevent.FieldID)
			}
			if _, exists := b.mutation.WorkspaceID(); exists {
				s.SetIgnore(securityevent.FieldWorkspaceID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(securityevent.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SecurityEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SecurityEventUpsertBulk) Ignore() *SecurityEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SecurityEventUpsertBulk) DoNothing() *SecurityEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SecurityEventCreateBulk.OnConflict
// documentation for more info.
func (u *SecurityEventUpsertBulk) Update(set func(*SecurityEventUpsert)) *SecurityEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SecurityEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *SecurityEventUpsertBulk) SetUserID(v string) *SecurityEventUpsertBulk {
	return u.Update(func(s *SecurityEventUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SecurityEventUpsertBulk) UpdateUserID() *SecurityEventUpsertBulk {
	return u.Update(func(s *SecurityEventUpsert) {
		s.UpdateUserID()
	})
}

// ClearUserID clears the value of the "user_id" field.
func (u *SecurityEventUpsertBulk) ClearUserID() *SecurityEventUpsertBulk {
	return u.Update(func(s *SecurityEventUpsert) {
		s.ClearUserID()
	})
}

// SetEventType sets the "event_type" field.
func (u *SecurityEventUpsertBulk) SetEventType(v securityevent.EventType) *SecurityEventUpsertBulk {
	return u.Update(func(s *SecurityEventUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *SecurityEventUpsertBulk) UpdateEventType() *SecurityEventUpsertBulk {
	return u.Update(func(s *SecurityEventUpsert) {
		s.UpdateEventType()
	})
}

// SetMessagePreview sets the "message_preview" field.
func (u *SecurityEventUpsertBulk) SetMessagePreview(v string) *SecurityEventUpsertBulk {
	return u.Update(func(s *SecurityEventUpsert) {
		s.SetMessagePreview(v)
	})
}

// UpdateMessagePreview sets the "message_preview" field to the value that was provided on create.
func (u *SecurityEventUpsertBulk) UpdateMessagePreview() *SecurityEventUpsertBulk {
	return u.Update(func(s *SecurityEventUpsert) {
		s.UpdateMessagePreview()
	})
}

// SetDetail sets the "detail" field.
func (u *SecurityEventUpsertBulk) SetDetail(v string) *SecurityEventUpsertBulk {
	return u.Update(func(s *SecurityEventUpsert) {
		s.SetDetail(v)
	})
}

// UpdateDetail sets the "detail" field to the value that was provided on create.
func (u *SecurityEventUpsertBulk) UpdateDetail() *SecurityEventUpsertBulk {
	return u.Update(func(s *SecurityEventUpsert) {
		s.UpdateDetail()
	})
}

// ClearDetail clears the value of the "detail" field.
func (u *SecurityEventUpsertBulk) ClearDetail() *SecurityEventUpsertBulk {
	return u.Update(func(s *SecurityEventUpsert) {
		s.ClearDetail()
	})
}

// Exec executes the query.
func (u *SecurityEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SecurityEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SecurityEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SecurityEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
