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
	"github.com/vibemonitor/rca/ent/chatsession"
	"github.com/vibemonitor/rca/ent/chatturn"
)

// ChatSessionCreate is the builder for creating a ChatSession entity.
type ChatSessionCreate struct {
	config
	mutation *ChatSessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *ChatSessionCreate) SetWorkspaceID(v string) *ChatSessionCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ChatSessionCreate) SetUserID(v string) *ChatSessionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *ChatSessionCreate) SetNillableUserID(v *string) *ChatSessionCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetOrigin sets the "origin" field.
func (_c *ChatSessionCreate) SetOrigin(v chatsession.Origin) *ChatSessionCreate {
	_c.mutation.SetOrigin(v)
	return _c
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (_c *ChatSessionCreate) SetNillableOrigin(v *chatsession.Origin) *ChatSessionCreate {
	if v != nil {
		_c.SetOrigin(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *ChatSessionCreate) SetTitle(v string) *ChatSessionCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *ChatSessionCreate) SetNillableTitle(v *string) *ChatSessionCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetExternalChannelID sets the "external_channel_id" field.
func (_c *ChatSessionCreate) SetExternalChannelID(v string) *ChatSessionCreate {
	_c.mutation.SetExternalChannelID(v)
	return _c
}

// SetNillableExternalChannelID sets the "external_channel_id" field if the given value is not nil.
func (_c *ChatSessionCreate) SetNillableExternalChannelID(v *string) *ChatSessionCreate {
	if v != nil {
		_c.SetExternalChannelID(*v)
	}
	return _c
}

// SetExternalThreadTs sets the "external_thread_ts" field.
func (_c *ChatSessionCreate) SetExternalThreadTs(v string) *ChatSessionCreate {
	_c.mutation.SetExternalThreadTs(v)
	return _c
}

// SetNillableExternalThreadTs sets the "external_thread_ts" field if the given value is not nil.
func (_c *ChatSessionCreate) SetNillableExternalThreadTs(v *string) *ChatSessionCreate {
	if v != nil {
		_c.SetExternalThreadTs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChatSessionCreate) SetCreatedAt(v time.Time) *ChatSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChatSessionCreate) SetNillableCreatedAt(v *time.Time) *ChatSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ChatSessionCreate) SetUpdatedAt(v time.Time) *ChatSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ChatSessionCreate) SetNillableUpdatedAt(v *time.Time) *ChatSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChatSessionCreate) SetID(v string) *ChatSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddTurnIDs adds the "turns" edge to the ChatTurn entity by IDs.
func (_c *ChatSessionCreate) AddTurnIDs(ids ...string) *ChatSessionCreate {
	_c.mutation.AddTurnIDs(ids...)
	return _c
}

// AddTurns adds the "turns" edges to the ChatTurn entity.
func (_c *ChatSessionCreate) AddTurns(v ...*ChatTurn) *ChatSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTurnIDs(ids...)
}

// Mutation returns the ChatSessionMutation object of the builder.
func (_c *ChatSessionCreate) Mutation() *ChatSessionMutation {
	return _c.mutation
}

// Save creates the ChatSession in the database.
func (_c *ChatSessionCreate) Save(ctx context.Context) (*ChatSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChatSessionCreate) SaveX(ctx context.Context) *ChatSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChatSessionCreate) defaults() {
	if _, ok := _c.mutation.Origin(); !ok {
		v := chatsession.DefaultOrigin
		_c.mutation.SetOrigin(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := chatsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := chatsession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChatSessionCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "ChatSession.workspace_id"`)}
	}
	if _, ok := _c.mutation.Origin(); !ok {
		return &ValidationError{Name: "origin", err: errors.New(`ent: missing required field "ChatSession.origin"`)}
	}
	if v, ok := _c.mutation.Origin(); ok {
		if err := chatsession.OriginValidator(v); err != nil {
			return &ValidationError{Name: "origin", err: fmt.Errorf(`ent: validator failed for field "ChatSession.origin": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ChatSession.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ChatSession.updated_at"`)}
	}
	return nil
}

func (_c *ChatSessionCreate) sqlSave(ctx context.Context) (*ChatSession, error) {
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
			return nil, fmt.Errorf("unexpected ChatSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChatSessionCreate) createSpec() (*ChatSession, *sqlgraph.CreateSpec) {
	var (
		_node = &ChatSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chatsession.Table, sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(chatsession.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(chatsession.FieldUserID, field.TypeString, value)
		_node.UserID = &value
	}
	if value, ok := _c.mutation.Origin(); ok {
		_spec.SetField(chatsession.FieldOrigin, field.TypeEnum, value)
		_node.Origin = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(chatsession.FieldTitle, field.TypeString, value)
		_node.Title = &value
	}
	if value, ok := _c.mutation.ExternalChannelID(); ok {
		_spec.SetField(chatsession.FieldExternalChannelID, field.TypeString, value)
		_node.ExternalChannelID = &value
	}
	if value, ok := _c.mutation.ExternalThreadTs(); ok {
		_spec.SetField(chatsession.FieldExternalThreadTs, field.TypeString, value)
		_node.ExternalThreadTs = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(chatsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(chatsession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TurnsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chatsession.TurnsTable,
			Columns: []string{chatsession.TurnsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatturn.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ChatSession.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChatSessionUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *ChatSessionCreate) OnConflict(opts ...sql.ConflictOption) *ChatSessionUpsertOne {
	_c.conflict = opts
	return &ChatSessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ChatSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChatSessionCreate) OnConflictColumns(columns ...string) *ChatSessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChatSessionUpsertOne{
		create: _c,
	}
}

type (
	// ChatSessionUpsertOne is the builder for "upsert"-ing
	//  one ChatSession node.
	ChatSessionUpsertOne struct {
		create *ChatSessionCreate
	}

	// ChatSessionUpsert is the "OnConflict" setter.
	ChatSessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *ChatSessionUpsert) SetUserID(v string) *ChatSessionUpsert {
	u.Set(chatsession.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ChatSessionUpsert) UpdateUserID() *ChatSessionUpsert {
	u.SetExcluded(chatsession.FieldUserID)
	return u
}

// ClearUserID clears the value of the "user_id" field.
func (u *ChatSessionUpsert) ClearUserID() *ChatSessionUpsert {
	u.SetNull(chatsession.FieldUserID)
	return u
}

// SetOrigin sets the "origin" field.
func (u *ChatSessionUpsert) SetOrigin(v chatsession.Origin) *ChatSessionUpsert {
	u.Set(chatsession.FieldOrigin, v)
	return u
}

// UpdateOrigin sets the "origin" field to the value that was provided on create.
func (u *ChatSessionUpsert) UpdateOrigin() *ChatSessionUpsert {
	u.SetExcluded(chatsession.FieldOrigin)
	return u
}

// SetTitle sets the "title" field.
func (u *ChatSessionUpsert) SetTitle(v string) *ChatSessionUpsert {
	u.Set(chatsession.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ChatSessionUpsert) UpdateTitle() *ChatSessionUpsert {
	u.SetExcluded(chatsession.FieldTitle)
	return u
}

// ClearTitle clears the value of the "title" field.
func (u *ChatSessionUpsert) ClearTitle() *ChatSessionUpsert {
	u.SetNull(chatsession.FieldTitle)
	return u
}

// SetExternalChannelID sets the "external_channel_id" field.
func (u *ChatSessionUpsert) SetExternalChannelID(v string) *ChatSessionUpsert {
	u.Set(chatsession.FieldExternalChannelID, v)
	return u
}

// UpdateExternalChannelID sets the "external_channel_id" field to the value that was provided on create.
func (u *ChatSessionUpsert) UpdateExternalChannelID() *ChatSessionUpsert {
	u.SetExcluded(chatsession.FieldExternalChannelID)
	return u
}

// ClearExternalChannelID clears the value of the "external_channel_id" field.
func (u *ChatSessionUpsert) ClearExternalChannelID() *ChatSessionUpsert {
	u.SetNull(chatsession.FieldExternalChannelID)
	return u
}

// SetExternalThreadTs sets the "external_thread_ts" field.
func (u *ChatSessionUpsert) SetExternalThreadTs(v string) *ChatSessionUpsert {
	u.Set(chatsession.FieldExternalThreadTs, v)
	return u
}

// UpdateExternalThreadTs sets the "external_thread_ts" field to the value that was provided on create.
func (u *ChatSessionUpsert) UpdateExternalThreadTs() *ChatSessionUpsert {
	u.SetExcluded(chatsession.FieldExternalThreadTs)
	return u
}

// ClearExternalThreadTs clears the value of the "external_thread_ts" field.
func (u *ChatSessionUpsert) ClearExternalThreadTs() *ChatSessionUpsert {
	u.SetNull(chatsession.FieldExternalThreadTs)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ChatSessionUpsert) SetUpdatedAt(v time.Time) *ChatSessionUpsert {
	u.Set(chatsession.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ChatSessionUpsert) UpdateUpdatedAt() *ChatSessionUpsert {
	u.SetExcluded(chatsession.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ChatSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(chatsession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ChatSessionUpsertOne) UpdateNewValues() *ChatSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(chatsession.FieldID)
		}
		if _, exists := u.create.mutation.WorkspaceID(); exists {
			s.SetIgnore(chatsession.FieldWorkspaceID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(chatsession.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ChatSession.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ChatSessionUpsertOne) Ignore() *ChatSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChatSessionUpsertOne) DoNothing() *ChatSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChatSessionCreate.OnConflict
// documentation for more info.
func (u *ChatSessionUpsertOne) Update(set func(*ChatSessionUpsert)) *ChatSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChatSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *ChatSessionUpsertOne) SetUserID(v string) *ChatSessionUpsertOne {
	return u.Update(func(s *ChatSessionUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ChatSessionUpsertOne) UpdateUserID() *ChatSessionUpsertOne {
	return u.Update(func(s *ChatSessionUpsert) {
		s.UpdateUserID()
	})
}

// ClearUserID clears the value of the "user_id" field.
func (u *ChatSessionUpsertOne) ClearUserID() *ChatSessionUpsertOne {
	return u.Update(func(s *ChatSessionUpsert) {
		s.ClearUserID()
	})
}

// SetOrigin sets the "origin" field.
func (u *ChatSessionUpsertOne) SetOrigin(v chatsession.Origin) *ChatSessionUpsertOne {
	return u.Update(func(s *ChatSessionUpsert) {
		s.SetOrigin(v)
	})
}

// UpdateOrigin sets the "origin" field to the value that was provided on create.
func (u *ChatSessionUpsertOne) UpdateOrigin() *ChatSessionUpsertOne {
	return u.Update(func(s *ChatSessionUpsert) {
		s.UpdateOrigin()
	})
}

// SetTitle sets the "title" field.
func (u *ChatSessionUpsertOne) SetTitle(v string) *ChatSessionUpsertOne {
	return u.Update(func(s *ChatSessionUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ChatSessionUpsertOne) UpdateTitle() *ChatSessionUpsertOne {
	return u.Update(func(s *ChatSessionUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *ChatSessionUpsertOne) ClearTitle() *ChatSessionUpsertOne {
	return u.Update(func(s *ChatSessionUpsert) {
		s.ClearTitle()
	})
}

// SetExternalChannelID sets the "external_channel_id" field.
func (u *ChatSessionUpsertOne) SetExternalChannelID(v string) *ChatSessionUpsertOne {
	return u.Update(func(s *ChatSessionUpsert) {
		s.SetExternalChannelID(v)
	})
}

// UpdateExternalChannelID sets the "external_channel_id" field to the value that was provided on create.
func (u *ChatSessionUpsertOne) UpdateExternalChannelID() *ChatSessionUpsertOne {
	return u.Update(func(s *ChatSessionUpsert) {
		s.UpdateExternalChannelID()
	})
}

// ClearExternalChannelID clears the value of the "external_channel_id" field.
func (u *ChatSessionUpsertOne) ClearExternalChannelID() *ChatSessionUpsertOne {
	return u.Update(func(s *ChatSessionUpsert) {
		s.ClearExternalChannelID()
	})
}

// SetExternalThreadTs sets the "external_thread_ts" field.
func (u *ChatSessionUpsertOne) SetExternalThreadTs(v string) *ChatSessionUpsertOne {
	return u.Update(func(s *ChatSessionUpsert) {
		s.SetExternalThreadTs(v)
	})
}

// UpdateExternalThreadTs sets the "external_thread_ts" field to the value that was provided on create.
func (u *ChatSessionUpsertOne) UpdateExternalThreadTs() *ChatSessionUpsertOne {
	return u.Update(func(s *ChatSessionUpsert) {
		s.UpdateExternalThreadTs()
	})
}

// ClearExternalThreadTs clears the value of the "external_thread_ts" field.
func (u *ChatSessionUpsertOne) ClearExternalThreadTs() *ChatSessionUpsertOne {
	return u.Update(func(s *ChatSessionUpsert) {
		s.ClearExternalThreadTs()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ChatSessionUpsertOne) SetUpdatedAt(v time.Time) *ChatSessionUpsertOne {
	return u.Update(func(s *ChatSessionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ChatSessionUpsertOne) UpdateUpdatedAt() *ChatSessionUpsertOne {
	return u.Update(func(s *ChatSessionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ChatSessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ChatSessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChatSessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ChatSessionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ChatSessionUpsertOne.ID is not supported by MySQL driver. Use ChatSessionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ChatSessionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ChatSessionCreateBulk is the builder for creating many ChatSession entities in bulk.
type ChatSessionCreateBulk struct {
	config
	err      error
	builders []*ChatSessionCreate
	conflict []sql.ConflictOption
}

// Save creates the ChatSession entities in the database.
func (_c *ChatSessionCreateBulk) Save(ctx context.Context) ([]*ChatSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChatSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChatSessionMutation)
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
func (_c *ChatSessionCreateBulk) SaveX(ctx context.Context) []*ChatSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ChatSession.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChatSessionUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *ChatSessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *ChatSessionUpsertBulk {
	_c.conflict = opts
	return &ChatSessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ChatSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChatSessionCreateBulk) OnConflictColumns(columns ...string) *ChatSessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChatSessionUpsertBulk{
		create: _c,
	}
}

// ChatSessionUpsertBulk is the builder for "upsert"-ing
// a bulk of ChatSession nodes.
type ChatSessionUpsertBulk struct {
	create *ChatSessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ChatSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(chatsession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ChatSessionUpsertBulk) UpdateNewValues() *ChatSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(chatsession.FieldID)
			}
			if _, exists := b.mutation.WorkspaceID(); exists {
				s.SetIgnore(chatsession.FieldWorkspaceID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(chatsession.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ChatSession.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ChatSessionUpsertBulk) Ignore() *ChatSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChatSessionUpsertBulk) DoNothing() *ChatSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChatSessionCreateBulk.OnConflict
// documentation for more info.
func (u *ChatSessionUpsertBulk) Update(set func(*ChatSessionUpsert)) *ChatSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChatSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *ChatSessionUpsertBulk) SetUserID(v string) *ChatSessionUpsertBulk {
	return u.Update(func(s *ChatSessionUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ChatSessionUpsertBulk) UpdateUserID() *ChatSessionUpsertBulk {
	return u.Update(func(s *ChatSessionUpsert) {
		s.UpdateUserID()
	})
}

// ClearUserID clears the value of the "user_id" field.
func (u *ChatSessionUpsertBulk) ClearUserID() *ChatSessionUpsertBulk {
	return u.Update(func(s *ChatSessionUpsert) {
		s.ClearUserID()
	})
}

// SetOrigin sets the "origin" field.
func (u *ChatSessionUpsertBulk) SetOrigin(v chatsession.Origin) *ChatSessionUpsertBulk {
	return u.Update(func(s *ChatSessionUpsert) {
		s.SetOrigin(v)
	})
}

// UpdateOrigin sets the "origin" field to the value that was provided on create.
func (u *ChatSessionUpsertBulk) UpdateOrigin() *ChatSessionUpsertBulk {
	return u.Update(func(s *ChatSessionUpsert) {
		s.UpdateOrigin()
	})
}

// SetTitle sets the "title" field.
func (u *ChatSessionUpsertBulk) SetTitle(v string) *ChatSessionUpsertBulk {
	return u.Update(func(s *ChatSessionUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ChatSessionUpsertBulk) UpdateTitle() *ChatSessionUpsertBulk {
	return u.Update(func(s *ChatSessionUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *ChatSessionUpsertBulk) ClearTitle() *ChatSessionUpsertBulk {
	return u.Update(func(s *ChatSessionUpsert) {
		s.ClearTitle()
	})
}

// SetExternalChannelID sets the "external_channel_id" field.
func (u *ChatSessionUpsertBulk) SetExternalChannelID(v string) *ChatSessionUpsertBulk {
	return u.Update(func(s *ChatSessionUpsert) {
		s.SetExternalChannelID(v)
	})
}

// UpdateExternalChannelID sets the "external_channel_id" field to the value that was provided on create.
func (u *ChatSessionUpsertBulk) UpdateExternalChannelID() *ChatSessionUpsertBulk {
	return u.Update(func(s *ChatSessionUpsert) {
		s.UpdateExternalChannelID()
	})
}

// ClearExternalChannelID clears the value of the "external_channel_id" field.
func (u *ChatSessionUpsertBulk) ClearExternalChannelID() *ChatSessionUpsertBulk {
	return u.Update(func(s *ChatSessionUpsert) {
		s.ClearExternalChannelID()
	})
}

// SetExternalThreadTs sets the "external_thread_ts" field.
func (u *ChatSessionUpsertBulk) SetExternalThreadTs(v string) *ChatSessionUpsertBulk {
	return u.Update(func(s *ChatSessionUpsert) {
		s.SetExternalThreadTs(v)
	})
}

// UpdateExternalThreadTs sets the "external_thread_ts" field to the value that was provided on create.
func (u *ChatSessionUpsertBulk) UpdateExternalThreadTs() *ChatSessionUpsertBulk {
	return u.Update(func(s *ChatSessionUpsert) {
		s.UpdateExternalThreadTs()
	})
}

// ClearExternalThreadTs clears the value of the "external_thread_ts" field.
func (u *ChatSessionUpsertBulk) ClearExternalThreadTs() *ChatSessionUpsertBulk {
	return u.Update(func(s *ChatSessionUpsert) {
		s.ClearExternalThreadTs()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ChatSessionUpsertBulk) SetUpdatedAt(v time.Time) *ChatSessionUpsertBulk {
	return u.Update(func(s *ChatSessionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ChatSessionUpsertBulk) UpdateUpdatedAt() *ChatSessionUpsertBulk {
	return u.Update(func(s *ChatSessionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ChatSessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ChatSessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ChatSessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChatSessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
