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
	"github.com/vibemonitor/rca/ent/job"
	"github.com/vibemonitor/rca/ent/turncomment"
	"github.com/vibemonitor/rca/ent/turnfeedback"
	"github.com/vibemonitor/rca/ent/turnstep"
)

// ChatTurnCreate is the builder for creating a ChatTurn entity.
type ChatTurnCreate struct {
	config
	mutation *ChatTurnMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionID sets the "session_id" field.
func (_c *ChatTurnCreate) SetSessionID(v string) *ChatTurnCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUserMessage sets the "user_message" field.
func (_c *ChatTurnCreate) SetUserMessage(v string) *ChatTurnCreate {
	_c.mutation.SetUserMessage(v)
	return _c
}

// SetFinalResponse sets the "final_response" field.
func (_c *ChatTurnCreate) SetFinalResponse(v string) *ChatTurnCreate {
	_c.mutation.SetFinalResponse(v)
	return _c
}

// SetNillableFinalResponse sets the "final_response" field if the given value is not nil.
func (_c *ChatTurnCreate) SetNillableFinalResponse(v *string) *ChatTurnCreate {
	if v != nil {
		_c.SetFinalResponse(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ChatTurnCreate) SetStatus(v chatturn.Status) *ChatTurnCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ChatTurnCreate) SetNillableStatus(v *chatturn.Status) *ChatTurnCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ChatTurnCreate) SetErrorMessage(v string) *ChatTurnCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ChatTurnCreate) SetNillableErrorMessage(v *string) *ChatTurnCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChatTurnCreate) SetCreatedAt(v time.Time) *ChatTurnCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChatTurnCreate) SetNillableCreatedAt(v *time.Time) *ChatTurnCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ChatTurnCreate) SetUpdatedAt(v time.Time) *ChatTurnCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ChatTurnCreate) SetNillableUpdatedAt(v *time.Time) *ChatTurnCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChatTurnCreate) SetID(v string) *ChatTurnCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the ChatSession entity.
func (_c *ChatTurnCreate) SetSession(v *ChatSession) *ChatTurnCreate {
	return _c.SetSessionID(v.ID)
}

// AddStepIDs adds the "steps" edge to the TurnStep entity by IDs.
func (_c *ChatTurnCreate) AddStepIDs(ids ...string) *ChatTurnCreate {
	_c.mutation.AddStepIDs(ids...)
	return _c
}

// AddSteps adds the "steps" edges to the TurnStep entity.
func (_c *ChatTurnCreate) AddSteps(v ...*TurnStep) *ChatTurnCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStepIDs(ids...)
}

// SetJobID sets the "job" edge to the Job entity by ID.
func (_c *ChatTurnCreate) SetJobID(id string) *ChatTurnCreate {
	_c.mutation.SetJobID(id)
	return _c
}

// SetNillableJobID sets the "job" edge to the Job entity by ID if the given value is not nil.
func (_c *ChatTurnCreate) SetNillableJobID(id *string) *ChatTurnCreate {
	if id != nil {
		_c = _c.SetJobID(*id)
	}
	return _c
}

// SetJob sets the "job" edge to the Job entity.
func (_c *ChatTurnCreate) SetJob(v *Job) *ChatTurnCreate {
	return _c.SetJobID(v.ID)
}

// AddFeedbackIDs adds the "feedback" edge to the TurnFeedback entity by IDs.
func (_c *ChatTurnCreate) AddFeedbackIDs(ids ...string) *ChatTurnCreate {
	_c.mutation.AddFeedbackIDs(ids...)
	return _c
}

// AddFeedback adds the "feedback" edges to the TurnFeedback entity.
func (_c *ChatTurnCreate) AddFeedback(v ...*TurnFeedback) *ChatTurnCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFeedbackIDs(ids...)
}

// AddCommentIDs adds the "comments" edge to the TurnComment entity by IDs.
func (_c *ChatTurnCreate) AddCommentIDs(ids ...string) *ChatTurnCreate {
	_c.mutation.AddCommentIDs(ids...)
	return _c
}

// AddComments adds the "comments" edges to the TurnComment entity.
func (_c *ChatTurnCreate) AddComments(v ...*TurnComment) *ChatTurnCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCommentIDs(ids...)
}

// Mutation returns the ChatTurnMutation object of the builder.
func (_c *ChatTurnCreate) Mutation() *ChatTurnMutation {
	return _c.mutation
}

// Save creates the ChatTurn in the database.
func (_c *ChatTurnCreate) Save(ctx context.Context) (*ChatTurn, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChatTurnCreate) SaveX(ctx context.Context) *ChatTurn {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatTurnCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatTurnCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChatTurnCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := chatturn.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := chatturn.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := chatturn.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChatTurnCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ChatTurn.session_id"`)}
	}
	if _, ok := _c.mutation.UserMessage(); !ok {
		return &ValidationError{Name: "user_message", err: errors.New(`ent: missing required field "ChatTurn.user_message"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ChatTurn.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := chatturn.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ChatTurn.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ChatTurn.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ChatTurn.updated_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "ChatTurn.session"`)}
	}
	return nil
}

func (_c *ChatTurnCreate) sqlSave(ctx context.Context) (*ChatTurn, error) {
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
			return nil, fmt.Errorf("unexpected ChatTurn.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChatTurnCreate) createSpec() (*ChatTurn, *sqlgraph.CreateSpec) {
	var (
		_node = &ChatTurn{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chatturn.Table, sqlgraph.NewFieldSpec(chatturn.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserMessage(); ok {
		_spec.SetField(chatturn.FieldUserMessage, field.TypeString, value)
		_node.UserMessage = value
	}
	if value, ok := _c.mutation.FinalResponse(); ok {
		_spec.SetField(chatturn.FieldFinalResponse, field.TypeString, value)
		_node.FinalResponse = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(chatturn.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(chatturn.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(chatturn.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(chatturn.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   chatturn.SessionTable,
			Columns: []string{chatturn.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chatturn.StepsTable,
			Columns: []string{chatturn.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(turnstep.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   chatturn.JobTable,
			Columns: []string{chatturn.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FeedbackIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chatturn.FeedbackTable,
			Columns: []string{chatturn.FeedbackColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(turnfeedback.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CommentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chatturn.CommentsTable,
			Columns: []string{chatturn.CommentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(turncomment.FieldID, field.TypeString),
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
//	client.ChatTurn.Create().
//		SetSessionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChatTurnUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *ChatTurnCreate) OnConflict(opts ...sql.ConflictOption) *ChatTurnUpsertOne {
	_c.conflict = opts
	return &ChatTurnUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ChatTurn.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChatTurnCreate) OnConflictColumns(columns ...string) *ChatTurnUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChatTurnUpsertOne{
		create: _c,
	}
}

type (
	// ChatTurnUpsertOne is the builder for "upsert"-ing
	//  one ChatTurn node.
	ChatTurnUpsertOne struct {
		create *ChatTurnCreate
	}

	// ChatTurnUpsert is the "OnConflict" setter.
	ChatTurnUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserMessage sets the "user_message" field.
func (u *ChatTurnUpsert) SetUserMessage(v string) *ChatTurnUpsert {
	u.Set(chatturn.FieldUserMessage, v)
	return u
}

// UpdateUserMessage sets the "user_message" field to the value that was provided on create.
func (u *ChatTurnUpsert) UpdateUserMessage() *ChatTurnUpsert {
	u.SetExcluded(chatturn.FieldUserMessage)
	return u
}

// SetFinalResponse sets the "final_response" field.
func (u *ChatTurnUpsert) SetFinalResponse(v string) *ChatTurnUpsert {
	u.Set(chatturn.FieldFinalResponse, v)
	return u
}

// UpdateFinalResponse sets the "final_response" field to the value that was provided on create.
func (u *ChatTurnUpsert) UpdateFinalResponse() *ChatTurnUpsert {
	u.SetExcluded(chatturn.FieldFinalResponse)
	return u
}

// ClearFinalResponse clears the value of the "final_response" field.
func (u *ChatTurnUpsert) ClearFinalResponse() *ChatTurnUpsert {
	u.SetNull(chatturn.FieldFinalResponse)
	return u
}

// SetStatus sets the "status" field.
func (u *ChatTurnUpsert) SetStatus(v chatturn.Status) *ChatTurnUpsert {
	u.Set(chatturn.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ChatTurnUpsert) UpdateStatus() *ChatTurnUpsert {
	u.SetExcluded(chatturn.FieldStatus)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *ChatTurnUpsert) SetErrorMessage(v string) *ChatTurnUpsert {
	u.Set(chatturn.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ChatTurnUpsert) UpdateErrorMessage() *ChatTurnUpsert {
	u.SetExcluded(chatturn.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ChatTurnUpsert) ClearErrorMessage() *ChatTurnUpsert {
	u.SetNull(chatturn.FieldErrorMessage)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ChatTurnUpsert) SetUpdatedAt(v time.Time) *ChatTurnUpsert {
	u.Set(chatturn.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ChatTurnUpsert) UpdateUpdatedAt() *ChatTurnUpsert {
	u.SetExcluded(chatturn.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ChatTurn.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(chatturn.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ChatTurnUpsertOne) UpdateNewValues() *ChatTurnUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(chatturn.FieldID)
		}
		if _, exists := u.create.mutation.SessionID(); exists {
			s.SetIgnore(chatturn.FieldSessionID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(chatturn.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ChatTurn.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ChatTurnUpsertOne) Ignore() *ChatTurnUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChatTurnUpsertOne) DoNothing() *ChatTurnUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChatTurnCreate.OnConflict
// documentation for more info.
func (u *ChatTurnUpsertOne) Update(set func(*ChatTurnUpsert)) *ChatTurnUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChatTurnUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserMessage sets the "user_message" field.
func (u *ChatTurnUpsertOne) SetUserMessage(v string) *ChatTurnUpsertOne {
	return u.Update(func(s *ChatTurnUpsert) {
		s.SetUserMessage(v)
	})
}

// UpdateUserMessage sets the "user_message" field to the value that was provided on create.
func (u *ChatTurnUpsertOne) UpdateUserMessage() *ChatTurnUpsertOne {
	return u.Update(func(s *ChatTurnUpsert) {
		s.UpdateUserMessage()
	})
}

// SetFinalResponse sets the "final_response" field.
func (u *ChatTurnUpsertOne) SetFinalResponse(v string) *ChatTurnUpsertOne {
	return u.Update(func(s *ChatTurnUpsert) {
		s.SetFinalResponse(v)
	})
}

// UpdateFinalResponse sets the "final_response" field to the value that was provided on create.
func (u *ChatTurnUpsertOne) UpdateFinalResponse() *ChatTurnUpsertOne {
	return u.Update(func(s *ChatTurnUpsert) {
		s.UpdateFinalResponse()
	})
}

// ClearFinalResponse clears the value of the "final_response" field.
func (u *ChatTurnUpsertOne) ClearFinalResponse() *ChatTurnUpsertOne {
	return u.Update(func(s *ChatTurnUpsert) {
		s.ClearFinalResponse()
	})
}

// SetStatus sets the "status" field.
func (u *ChatTurnUpsertOne) SetStatus(v chatturn.Status) *ChatTurnUpsertOne {
	return u.Update(func(s *ChatTurnUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ChatTurnUpsertOne) UpdateStatus() *ChatTurnUpsertOne {
	return u.Update(func(s *ChatTurnUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *ChatTurnUpsertOne) SetErrorMessage(v string) *ChatTurnUpsertOne {
	return u.Update(func(s *ChatTurnUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ChatTurnUpsertOne) UpdateErrorMessage() *ChatTurnUpsertOne {
	return u.Update(func(s *ChatTurnUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ChatTurnUpsertOne) ClearErrorMessage() *ChatTurnUpsertOne {
	return u.Update(func(s *ChatTurnUpsert) {
		s.ClearErrorMessage()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ChatTurnUpsertOne) SetUpdatedAt(v time.Time) *ChatTurnUpsertOne {
	return u.Update(func(s *ChatTurnUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ChatTurnUpsertOne) UpdateUpdatedAt() *ChatTurnUpsertOne {
	return u.Update(func(s *ChatTurnUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ChatTurnUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ChatTurnCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChatTurnUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ChatTurnUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ChatTurnUpsertOne.ID is not supported by MySQL driver. Use ChatTurnUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ChatTurnUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ChatTurnCreateBulk is the builder for creating many ChatTurn entities in bulk.
type ChatTurnCreateBulk struct {
	config
	err      error
	builders []*ChatTurnCreate
	conflict []sql.ConflictOption
}

// Save creates the ChatTurn entities in the database.
func (_c *ChatTurnCreateBulk) Save(ctx context.Context) ([]*ChatTurn, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChatTurn, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChatTurnMutation)
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
func (_c *ChatTurnCreateBulk) SaveX(ctx context.Context) []*ChatTurn {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatTurnCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatTurnCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ChatTurn.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChatTurnUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *ChatTurnCreateBulk) OnConflict(opts ...sql.ConflictOption) *ChatTurnUpsertBulk {
	_c.conflict = opts
	return &ChatTurnUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ChatTurn.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChatTurnCreateBulk) OnConflictColumns(columns ...string) *ChatTurnUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChatTurnUpsertBulk{
		create: _c,
	}
}

// ChatTurnUpsertBulk is the builder for "upsert"-ing
// a bulk of ChatTurn nodes.
type ChatTurnUpsertBulk struct {
	create *ChatTurnCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ChatTurn.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(chatturn.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ChatTurnUpsertBulk) UpdateNewValues() *ChatTurnUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(chatturn.FieldID)
			}
			if _, exists := b.mutation.SessionID(); exists {
				s.SetIgnore(chatturn.FieldSessionID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(chatturn.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ChatTurn.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ChatTurnUpsertBulk) Ignore() *ChatTurnUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChatTurnUpsertBulk) DoNothing() *ChatTurnUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChatTurnCreateBulk.OnConflict
// documentation for more info.
func (u *ChatTurnUpsertBulk) Update(set func(*ChatTurnUpsert)) *ChatTurnUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChatTurnUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserMessage sets the "user_message" field.
func (u *ChatTurnUpsertBulk) SetUserMessage(v string) *ChatTurnUpsertBulk {
	return u.Update(func(s *ChatTurnUpsert) {
		s.SetUserMessage(v)
	})
}

// UpdateUserMessage sets the "user_message" field to the value that was provided on create.
func (u *ChatTurnUpsertBulk) UpdateUserMessage() *ChatTurnUpsertBulk {
	return u.Update(func(s *ChatTurnUpsert) {
		s.UpdateUserMessage()
	})
}

// SetFinalResponse sets the "final_response" field.
func (u *ChatTurnUpsertBulk) SetFinalResponse(v string) *ChatTurnUpsertBulk {
	return u.Update(func(s *ChatTurnUpsert) {
		s.SetFinalResponse(v)
	})
}

// UpdateFinalResponse sets the "final_response" field to the value that was provided on create.
func (u *ChatTurnUpsertBulk) UpdateFinalResponse() *ChatTurnUpsertBulk {
	return u.Update(func(s *ChatTurnUpsert) {
		s.UpdateFinalResponse()
	})
}

// ClearFinalResponse clears the value of the "final_response" field.
func (u *ChatTurnUpsertBulk) ClearFinalResponse() *ChatTurnUpsertBulk {
	return u.Update(func(s *ChatTurnUpsert) {
		s.ClearFinalResponse()
	})
}

// SetStatus sets the "status" field.
func (u *ChatTurnUpsertBulk) SetStatus(v chatturn.Status) *ChatTurnUpsertBulk {
	return u.Update(func(s *ChatTurnUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ChatTurnUpsertBulk) UpdateStatus() *ChatTurnUpsertBulk {
	return u.Update(func(s *ChatTurnUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *ChatTurnUpsertBulk) SetErrorMessage(v string) *ChatTurnUpsertBulk {
	return u.Update(func(s *ChatTurnUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ChatTurnUpsertBulk) UpdateErrorMessage() *ChatTurnUpsertBulk {
	return u.Update(func(s *ChatTurnUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ChatTurnUpsertBulk) ClearErrorMessage() *ChatTurnUpsertBulk {
	return u.Update(func(s *ChatTurnUpsert) {
		s.ClearErrorMessage()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ChatTurnUpsertBulk) SetUpdatedAt(v time.Time) *ChatTurnUpsertBulk {
	return u.Update(func(s *ChatTurnUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ChatTurnUpsertBulk) UpdateUpdatedAt() *ChatTurnUpsertBulk {
	return u.Update(func(s *ChatTurnUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ChatTurnUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ChatTurnCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ChatTurnCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChatTurnUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
