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
	"github.com/vibemonitor/rca/ent/job"
)

// JobCreate is the builder for creating a Job entity.
type JobCreate struct {
	config
	mutation *JobMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *JobCreate) SetWorkspaceID(v string) *JobCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetTurnID sets the "turn_id" field.
func (_c *JobCreate) SetTurnID(v string) *JobCreate {
	_c.mutation.SetTurnID(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *JobCreate) SetSource(v job.Source) *JobCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *JobCreate) SetNillableSource(v *job.Source) *JobCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *JobCreate) SetStatus(v job.Status) *JobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *JobCreate) SetNillableStatus(v *job.Status) *JobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *JobCreate) SetPriority(v int) *JobCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *JobCreate) SetNillablePriority(v *int) *JobCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetRetries sets the "retries" field.
func (_c *JobCreate) SetRetries(v int) *JobCreate {
	_c.mutation.SetRetries(v)
	return _c
}

// SetNillableRetries sets the "retries" field if the given value is not nil.
func (_c *JobCreate) SetNillableRetries(v *int) *JobCreate {
	if v != nil {
		_c.SetRetries(*v)
	}
	return _c
}

// SetMaxRetries sets the "max_retries" field.
func (_c *JobCreate) SetMaxRetries(v int) *JobCreate {
	_c.mutation.SetMaxRetries(v)
	return _c
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_c *JobCreate) SetNillableMaxRetries(v *int) *JobCreate {
	if v != nil {
		_c.SetMaxRetries(*v)
	}
	return _c
}

// SetBackoffUntil sets the "backoff_until" field.
func (_c *JobCreate) SetBackoffUntil(v time.Time) *JobCreate {
	_c.mutation.SetBackoffUntil(v)
	return _c
}

// SetNillableBackoffUntil sets the "backoff_until" field if the given value is not nil.
func (_c *JobCreate) SetNillableBackoffUntil(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetBackoffUntil(*v)
	}
	return _c
}

// SetRequestedContext sets the "requested_context" field.
func (_c *JobCreate) SetRequestedContext(v map[string]interface{}) *JobCreate {
	_c.mutation.SetRequestedContext(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *JobCreate) SetStartedAt(v time.Time) *JobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableStartedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *JobCreate) SetFinishedAt(v time.Time) *JobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableFinishedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *JobCreate) SetErrorMessage(v string) *JobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *JobCreate) SetNillableErrorMessage(v *string) *JobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *JobCreate) SetPodID(v string) *JobCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *JobCreate) SetNillablePodID(v *string) *JobCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *JobCreate) SetLastHeartbeatAt(v time.Time) *JobCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableLastHeartbeatAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *JobCreate) SetCreatedAt(v time.Time) *JobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableCreatedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *JobCreate) SetUpdatedAt(v time.Time) *JobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableUpdatedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *JobCreate) SetID(v string) *JobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTurn sets the "turn" edge to the ChatTurn entity.
func (_c *JobCreate) SetTurn(v *ChatTurn) *JobCreate {
	return _c.SetTurnID(v.ID)
}

// Mutation returns the JobMutation object of the builder.
func (_c *JobCreate) Mutation() *JobMutation {
	return _c.mutation
}

// Save creates the Job in the database.
func (_c *JobCreate) Save(ctx context.Context) (*Job, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobCreate) SaveX(ctx context.Context) *Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobCreate) defaults() {
	if _, ok := _c.mutation.Source(); !ok {
		v := job.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := job.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := job.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Retries(); !ok {
		v := job.DefaultRetries
		_c.mutation.SetRetries(v)
	}
	if _, ok := _c.mutation.MaxRetries(); !ok {
		v := job.DefaultMaxRetries
		_c.mutation.SetMaxRetries(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := job.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := job.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "Job.workspace_id"`)}
	}
	if _, ok := _c.mutation.TurnID(); !ok {
		return &ValidationError{Name: "turn_id", err: errors.New(`ent: missing required field "Job.turn_id"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Job.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := job.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Job.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Job.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Job.priority"`)}
	}
	if _, ok := _c.mutation.Retries(); !ok {
		return &ValidationError{Name: "retries", err: errors.New(`ent: missing required field "Job.retries"`)}
	}
	if _, ok := _c.mutation.MaxRetries(); !ok {
		return &ValidationError{Name: "max_retries", err: errors.New(`ent: missing required field "Job.max_retries"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Job.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Job.updated_at"`)}
	}
	if len(_c.mutation.TurnIDs()) == 0 {
		return &ValidationError{Name: "turn", err: errors.New(`ent: missing required edge "Job.turn"`)}
	}
	return nil
}

func (_c *JobCreate) sqlSave(ctx context.Context) (*Job, error) {
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
			return nil, fmt.Errorf("unexpected Job.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *JobCreate) createSpec() (*Job, *sqlgraph.CreateSpec) {
	var (
		_node = &Job{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(job.Table, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(job.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(job.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(job.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Retries(); ok {
		_spec.SetField(job.FieldRetries, field.TypeInt, value)
		_node.Retries = value
	}
	if value, ok := _c.mutation.MaxRetries(); ok {
		_spec.SetField(job.FieldMaxRetries, field.TypeInt, value)
		_node.MaxRetries = value
	}
	if value, ok := _c.mutation.BackoffUntil(); ok {
		_spec.SetField(job.FieldBackoffUntil, field.TypeTime, value)
		_node.BackoffUntil = &value
	}
	if value, ok := _c.mutation.RequestedContext(); ok {
		_spec.SetField(job.FieldRequestedContext, field.TypeJSON, value)
		_node.RequestedContext = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(job.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(job.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(job.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(job.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(job.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TurnIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   job.TurnTable,
			Columns: []string{job.TurnColumn},
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
//	client.Job.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.JobUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *JobCreate) OnConflict(opts ...sql.ConflictOption) *JobUpsertOne {
	_c.conflict = opts
	return &JobUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *JobCreate) OnConflictColumns(columns ...string) *JobUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &JobUpsertOne{
		create: _c,
	}
}

type (
	// JobUpsertOne is the builder for "upsert"-ing
	//  one Job node.
	JobUpsertOne struct {
		create *JobCreate
	}

	// JobUpsert is the "OnConflict" setter.
	JobUpsert struct {
		*sql.UpdateSet
	}
)

// SetSource sets the "source" field.
func (u *JobUpsert) SetSource(v job.Source) *JobUpsert {
	u.Set(job.FieldSource, v)
	return u
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *JobUpsert) UpdateSource() *JobUpsert {
	u.SetExcluded(job.FieldSource)
	return u
}

// SetStatus sets the "status" field.
func (u *JobUpsert) SetStatus(v job.Status) *JobUpsert {
	u.Set(job.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *JobUpsert) UpdateStatus() *JobUpsert {
	u.SetExcluded(job.FieldStatus)
	return u
}

// SetPriority sets the "priority" field.
func (u *JobUpsert) SetPriority(v int) *JobUpsert {
	u.Set(job.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *JobUpsert) UpdatePriority() *JobUpsert {
	u.SetExcluded(job.FieldPriority)
	return u
}

// AddPriority adds v to the "priority" field.
func (u *JobUpsert) AddPriority(v int) *JobUpsert {
	u.Add(job.FieldPriority, v)
	return u
}

// SetRetries sets the "retries" field.
func (u *JobUpsert) SetRetries(v int) *JobUpsert {
	u.Set(job.FieldRetries, v)
	return u
}

// UpdateRetries sets the "retries" field to the value that was provided on create.
func (u *JobUpsert) UpdateRetries() *JobUpsert {
	u.SetExcluded(job.FieldRetries)
	return u
}

// AddRetries adds v to the "retries" field.
func (u *JobUpsert) AddRetries(v int) *JobUpsert {
	u.Add(job.FieldRetries, v)
	return u
}

// SetMaxRetries sets the "max_retries" field.
func (u *JobUpsert) SetMaxRetries(v int) *JobUpsert {
	u.Set(job.FieldMaxRetries, v)
	return u
}

// UpdateMaxRetries sets the "max_retries" field to the value that was provided on create.
func (u *JobUpsert) UpdateMaxRetries() *JobUpsert {
	u.SetExcluded(job.FieldMaxRetries)
	return u
}

// AddMaxRetries adds v to the "max_retries" field.
func (u *JobUpsert) AddMaxRetries(v int) *JobUpsert {
	u.Add(job.FieldMaxRetries, v)
	return u
}

// SetBackoffUntil sets the "backoff_until" field.
func (u *JobUpsert) SetBackoffUntil(v time.Time) *JobUpsert {
	u.Set(job.FieldBackoffUntil, v)
	return u
}

// UpdateBackoffUntil sets the "backoff_until" field to the value that was provided on create.
func (u *JobUpsert) UpdateBackoffUntil() *JobUpsert {
	u.SetExcluded(job.FieldBackoffUntil)
	return u
}

// ClearBackoffUntil clears the value of the "backoff_until" field.
func (u *JobUpsert) ClearBackoffUntil() *JobUpsert {
	u.SetNull(job.FieldBackoffUntil)
	return u
}

// SetRequestedContext sets the "requested_context" field.
func (u *JobUpsert) SetRequestedContext(v map[string]interface{}) *JobUpsert {
	u.Set(job.FieldRequestedContext, v)
	return u
}

// UpdateRequestedContext sets the "requested_context" field to the value that was provided on create.
func (u *JobUpsert) UpdateRequestedContext() *JobUpsert {
	u.SetExcluded(job.FieldRequestedContext)
	return u
}

// ClearRequestedContext clears the value of the "requested_context" field.
func (u *JobUpsert) ClearRequestedContext() *JobUpsert {
	u.SetNull(job.FieldRequestedContext)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *JobUpsert) SetStartedAt(v time.Time) *JobUpsert {
	u.Set(job.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *JobUpsert) UpdateStartedAt() *JobUpsert {
	u.SetExcluded(job.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *JobUpsert) ClearStartedAt() *JobUpsert {
	u.SetNull(job.FieldStartedAt)
	return u
}

// SetFinishedAt sets the "finished_at" field.
func (u *JobUpsert) SetFinishedAt(v time.Time) *JobUpsert {
	u.Set(job.FieldFinishedAt, v)
	return u
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *JobUpsert) UpdateFinishedAt() *JobUpsert {
	u.SetExcluded(job.FieldFinishedAt)
	return u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *JobUpsert) ClearFinishedAt() *JobUpsert {
	u.SetNull(job.FieldFinishedAt)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *JobUpsert) SetErrorMessage(v string) *JobUpsert {
	u.Set(job.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *JobUpsert) UpdateErrorMessage() *JobUpsert {
	u.SetExcluded(job.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *JobUpsert) ClearErrorMessage() *JobUpsert {
	u.SetNull(job.FieldErrorMessage)
	return u
}

// SetPodID sets the "pod_id" field.
func (u *JobUpsert) SetPodID(v string) *JobUpsert {
	u.Set(job.FieldPodID, v)
	return u
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *JobUpsert) UpdatePodID() *JobUpsert {
	u.SetExcluded(job.FieldPodID)
	return u
}

// ClearPodID clears the value of the "pod_id" field.
func (u *JobUpsert) ClearPodID() *JobUpsert {
	u.SetNull(job.FieldPodID)
	return u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *JobUpsert) SetLastHeartbeatAt(v time.Time) *JobUpsert {
	u.Set(job.FieldLastHeartbeatAt, v)
	return u
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *JobUpsert) UpdateLastHeartbeatAt() *JobUpsert {
	u.SetExcluded(job.FieldLastHeartbeatAt)
	return u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *JobUpsert) ClearLastHeartbeatAt() *JobUpsert {
	u.SetNull(job.FieldLastHeartbeatAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *JobUpsert) SetUpdatedAt(v time.Time) *JobUpsert {
	u.Set(job.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *JobUpsert) UpdateUpdatedAt() *JobUpsert {
	u.SetExcluded(job.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(job.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *JobUpsertOne) UpdateNewValues() *JobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(job.FieldID)
		}
		if _, exists := u.create.mutation.WorkspaceID(); exists {
			s.SetIgnore(job.FieldWorkspaceID)
		}
		if _, exists := u.create.mutation.TurnID(); exists {
			s.SetIgnore(job.FieldTurnID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(job.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Job.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *JobUpsertOne) Ignore() *JobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *JobUpsertOne) DoNothing() *JobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the JobCreate.OnConflict
// documentation for more info.
func (u *JobUpsertOne) Update(set func(*JobUpsert)) *JobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&JobUpsert{UpdateSet: update})
	}))
	return u
}

// SetSource sets the "source" field.
func (u *JobUpsertOne) SetSource(v job.Source) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateSource() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateSource()
	})
}

// SetStatus sets the "status" field.
func (u *JobUpsertOne) SetStatus(v job.Status) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateStatus() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateStatus()
	})
}

// SetPriority sets the "priority" field.
func (u *JobUpsertOne) SetPriority(v int) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *JobUpsertOne) AddPriority(v int) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *JobUpsertOne) UpdatePriority() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdatePriority()
	})
}

// SetRetries sets the "retries" field.
func (u *JobUpsertOne) SetRetries(v int) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetRetries(v)
	})
}

// AddRetries adds v to the "retries" field.
func (u *JobUpsertOne) AddRetries(v int) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.AddRetries(v)
	})
}

// UpdateRetries sets the "retries" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateRetries() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateRetries()
	})
}

// SetMaxRetries sets the "max_retries" field.
func (u *JobUpsertOne) SetMaxRetries(v int) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetMaxRetries(v)
	})
}

// AddMaxRetries adds v to the "max_retries" field.
func (u *JobUpsertOne) AddMaxRetries(v int) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.AddMaxRetries(v)
	})
}

// UpdateMaxRetries sets the "max_retries" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateMaxRetries() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateMaxRetries()
	})
}

// SetBackoffUntil sets the "backoff_until" field.
func (u *JobUpsertOne) SetBackoffUntil(v time.Time) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetBackoffUntil(v)
	})
}

// UpdateBackoffUntil sets the "backoff_until" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateBackoffUntil() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateBackoffUntil()
	})
}

// ClearBackoffUntil clears the value of the "backoff_until" field.
func (u *JobUpsertOne) ClearBackoffUntil() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearBackoffUntil()
	})
}

// SetRequestedContext sets the "requested_context" field.
func (u *JobUpsertOne) SetRequestedContext(v map[string]interface{}) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetRequestedContext(v)
	})
}

// UpdateRequestedContext sets the "requested_context" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateRequestedContext() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateRequestedContext()
	})
}

// ClearRequestedContext clears the value of the "requested_context" field.
func (u *JobUpsertOne) ClearRequestedContext() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearRequestedContext()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *JobUpsertOne) SetStartedAt(v time.Time) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateStartedAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *JobUpsertOne) ClearStartedAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearStartedAt()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *JobUpsertOne) SetFinishedAt(v time.Time) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateFinishedAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *JobUpsertOne) ClearFinishedAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearFinishedAt()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *JobUpsertOne) SetErrorMessage(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateErrorMessage() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *JobUpsertOne) ClearErrorMessage() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearErrorMessage()
	})
}

// SetPodID sets the "pod_id" field.
func (u *JobUpsertOne) SetPodID(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *JobUpsertOne) UpdatePodID() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *JobUpsertOne) ClearPodID() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearPodID()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *JobUpsertOne) SetLastHeartbeatAt(v time.Time) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateLastHeartbeatAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *JobUpsertOne) ClearLastHeartbeatAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *JobUpsertOne) SetUpdatedAt(v time.Time) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateUpdatedAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *JobUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for JobCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *JobUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *JobUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: JobUpsertOne.ID is not supported by MySQL driver. Use JobUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *JobUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// JobCreateBulk is the builder for creating many Job entities in bulk.
type JobCreateBulk struct {
	config
	err      error
	builders []*JobCreate
	conflict []sql.ConflictOption
}

// Save creates the Job entities in the database.
func (_c *JobCreateBulk) Save(ctx context.Context) ([]*Job, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Job, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobMutation)
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
func (_c *JobCreateBulk) SaveX(ctx context.Context) []*Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Job.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.JobUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *JobCreateBulk) OnConflict(opts ...sql.ConflictOption) *JobUpsertBulk {
	_c.conflict = opts
	return &JobUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *JobCreateBulk) OnConflictColumns(columns ...string) *JobUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &JobUpsertBulk{
		create: _c,
	}
}

// JobUpsertBulk is the builder for "upsert"-ing
// a bulk of Job nodes.
type JobUpsertBulk struct {
	create *JobCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(job.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *JobUpsertBulk) UpdateNewValues() *JobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(job.FieldID)
			}
			if _, exists := b.mutation.WorkspaceID(); exists {
				s.SetIgnore(job.FieldWorkspaceID)
			}
			if _, exists := b.mutation.TurnID(); exists {
				s.SetIgnore(job.FieldTurnID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(job.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *JobUpsertBulk) Ignore() *JobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *JobUpsertBulk) DoNothing() *JobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the JobCreateBulk.OnConflict
// documentation for more info.
func (u *JobUpsertBulk) Update(set func(*JobUpsert)) *JobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&JobUpsert{UpdateSet: update})
	}))
	return u
}

// SetSource sets the "source" field.
func (u *JobUpsertBulk) SetSource(v job.Source) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateSource() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateSource()
	})
}

// SetStatus sets the "status" field.
func (u *JobUpsertBulk) SetStatus(v job.Status) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateStatus() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateStatus()
	})
}

// SetPriority sets the "priority" field.
func (u *JobUpsertBulk) SetPriority(v int) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *JobUpsertBulk) AddPriority(v int) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdatePriority() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdatePriority()
	})
}

// SetRetries sets the "retries" field.
func (u *JobUpsertBulk) SetRetries(v int) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetRetries(v)
	})
}

// AddRetries adds v to the "retries" field.
func (u *JobUpsertBulk) AddRetries(v int) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.AddRetries(v)
	})
}

// UpdateRetries sets the "retries" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateRetries() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateRetries()
	})
}

// SetMaxRetries sets the "max_retries" field.
func (u *JobUpsertBulk) SetMaxRetries(v int) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetMaxRetries(v)
	})
}

// AddMaxRetries adds v to the "max_retries" field.
func (u *JobUpsertBulk) AddMaxRetries(v int) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.AddMaxRetries(v)
	})
}

// UpdateMaxRetries sets the "max_retries" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateMaxRetries() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateMaxRetries()
	})
}

// SetBackoffUntil sets the "backoff_until" field.
func (u *JobUpsertBulk) SetBackoffUntil(v time.Time) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetBackoffUntil(v)
	})
}

// UpdateBackoffUntil sets the "backoff_until" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateBackoffUntil() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateBackoffUntil()
	})
}

// ClearBackoffUntil clears the value of the "backoff_until" field.
func (u *JobUpsertBulk) ClearBackoffUntil() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearBackoffUntil()
	})
}

// SetRequestedContext sets the "requested_context" field.
func (u *JobUpsertBulk) SetRequestedContext(v map[string]interface{}) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetRequestedContext(v)
	})
}

// UpdateRequestedContext sets the "requested_context" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateRequestedContext() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateRequestedContext()
	})
}

// ClearRequestedContext clears the value of the "requested_context" field.
func (u *JobUpsertBulk) ClearRequestedContext() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearRequestedContext()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *JobUpsertBulk) SetStartedAt(v time.Time) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateStartedAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *JobUpsertBulk) ClearStartedAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearStartedAt()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *JobUpsertBulk) SetFinishedAt(v time.Time) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateFinishedAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *JobUpsertBulk) ClearFinishedAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearFinishedAt()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *JobUpsertBulk) SetErrorMessage(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateErrorMessage() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *JobUpsertBulk) ClearErrorMessage() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearErrorMessage()
	})
}

// SetPodID sets the "pod_id" field.
func (u *JobUpsertBulk) SetPodID(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdatePodID() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *JobUpsertBulk) ClearPodID() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearPodID()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *JobUpsertBulk) SetLastHeartbeatAt(v time.Time) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateLastHeartbeatAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *JobUpsertBulk) ClearLastHeartbeatAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *JobUpsertBulk) SetUpdatedAt(v time.Time) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateUpdatedAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *JobUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the JobCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for JobCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *JobUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
