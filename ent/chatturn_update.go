// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vibemonitor/rca/ent/chatturn"
	"github.com/vibemonitor/rca/ent/job"
	"github.com/vibemonitor/rca/ent/predicate"
	"github.com/vibemonitor/rca/ent/turncomment"
	"github.com/vibemonitor/rca/ent/turnfeedback"
	"github.com/vibemonitor/rca/ent/turnstep"
)

// ChatTurnUpdate is the builder for updating ChatTurn entities.
type ChatTurnUpdate struct {
	config
	hooks    []Hook
	mutation *ChatTurnMutation
}

// Where appends a list predicates to the ChatTurnUpdate builder.
func (_u *ChatTurnUpdate) Where(ps ...predicate.ChatTurn) *ChatTurnUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserMessage sets the "user_message" field.
func (_u *ChatTurnUpdate) SetUserMessage(v string) *ChatTurnUpdate {
	_u.mutation.SetUserMessage(v)
	return _u
}

// SetNillableUserMessage sets the "user_message" field if the given value is not nil.
func (_u *ChatTurnUpdate) SetNillableUserMessage(v *string) *ChatTurnUpdate {
	if v != nil {
		_u.SetUserMessage(*v)
	}
	return _u
}

// SetFinalResponse sets the "final_response" field.
func (_u *ChatTurnUpdate) SetFinalResponse(v string) *ChatTurnUpdate {
	_u.mutation.SetFinalResponse(v)
	return _u
}

// SetNillableFinalResponse sets the "final_response" field if the given value is not nil.
func (_u *ChatTurnUpdate) SetNillableFinalResponse(v *string) *ChatTurnUpdate {
	if v != nil {
		_u.SetFinalResponse(*v)
	}
	return _u
}

// ClearFinalResponse clears the value of the "final_response" field.
func (_u *ChatTurnUpdate) ClearFinalResponse() *ChatTurnUpdate {
	_u.mutation.ClearFinalResponse()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ChatTurnUpdate) SetStatus(v chatturn.Status) *ChatTurnUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ChatTurnUpdate) SetNillableStatus(v *chatturn.Status) *ChatTurnUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ChatTurnUpdate) SetErrorMessage(v string) *ChatTurnUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ChatTurnUpdate) SetNillableErrorMessage(v *string) *ChatTurnUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ChatTurnUpdate) ClearErrorMessage() *ChatTurnUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChatTurnUpdate) SetUpdatedAt(v time.Time) *ChatTurnUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddStepIDs adds the "steps" edge to the TurnStep entity by IDs.
func (_u *ChatTurnUpdate) AddStepIDs(ids ...string) *ChatTurnUpdate {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the TurnStep entity.
func (_u *ChatTurnUpdate) AddSteps(v ...*TurnStep) *ChatTurnUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// SetJobID sets the "job" edge to the Job entity by ID.
func (_u *ChatTurnUpdate) SetJobID(id string) *ChatTurnUpdate {
	_u.mutation.SetJobID(id)
	return _u
}

// SetNillableJobID sets the "job" edge to the Job entity by ID if the given value is not nil.
func (_u *ChatTurnUpdate) SetNillableJobID(id *string) *ChatTurnUpdate {
	if id != nil {
		_u = _u.SetJobID(*id)
	}
	return _u
}

// SetJob sets the "job" edge to the Job entity.
func (_u *ChatTurnUpdate) SetJob(v *Job) *ChatTurnUpdate {
	return _u.SetJobID(v.ID)
}

// AddFeedbackIDs adds the "feedback" edge to the TurnFeedback entity by IDs.
func (_u *ChatTurnUpdate) AddFeedbackIDs(ids ...string) *ChatTurnUpdate {
	_u.mutation.AddFeedbackIDs(ids...)
	return _u
}

// AddFeedback adds the "feedback" edges to the TurnFeedback entity.
func (_u *ChatTurnUpdate) AddFeedback(v ...*TurnFeedback) *ChatTurnUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFeedbackIDs(ids...)
}

// AddCommentIDs adds the "comments" edge to the TurnComment entity by IDs.
func (_u *ChatTurnUpdate) AddCommentIDs(ids ...string) *ChatTurnUpdate {
	_u.mutation.AddCommentIDs(ids...)
	return _u
}

// AddComments adds the "comments" edges to the TurnComment entity.
func (_u *ChatTurnUpdate) AddComments(v ...*TurnComment) *ChatTurnUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCommentIDs(ids...)
}

// Mutation returns the ChatTurnMutation object of the builder.
func (_u *ChatTurnUpdate) Mutation() *ChatTurnMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the TurnStep entity.
func (_u *ChatTurnUpdate) ClearSteps() *ChatTurnUpdate {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to TurnStep entities by IDs.
func (_u *ChatTurnUpdate) RemoveStepIDs(ids ...string) *ChatTurnUpdate {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to TurnStep entities.
func (_u *ChatTurnUpdate) RemoveSteps(v ...*TurnStep) *ChatTurnUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// ClearJob clears the "job" edge to the Job entity.
func (_u *ChatTurnUpdate) ClearJob() *ChatTurnUpdate {
	_u.mutation.ClearJob()
	return _u
}

// ClearFeedback clears all "feedback" edges to the TurnFeedback entity.
func (_u *ChatTurnUpdate) ClearFeedback() *ChatTurnUpdate {
	_u.mutation.ClearFeedback()
	return _u
}

// RemoveFeedbackIDs removes the "feedback" edge to TurnFeedback entities by IDs.
func (_u *ChatTurnUpdate) RemoveFeedbackIDs(ids ...string) *ChatTurnUpdate {
	_u.mutation.RemoveFeedbackIDs(ids...)
	return _u
}

// RemoveFeedback removes "feedback" edges to TurnFeedback entities.
func (_u *ChatTurnUpdate) RemoveFeedback(v ...*TurnFeedback) *ChatTurnUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFeedbackIDs(ids...)
}

// ClearComments clears all "comments" edges to the TurnComment entity.
func (_u *ChatTurnUpdate) ClearComments() *ChatTurnUpdate {
	_u.mutation.ClearComments()
	return _u
}

// RemoveCommentIDs removes the "comments" edge to TurnComment entities by IDs.
func (_u *ChatTurnUpdate) RemoveCommentIDs(ids ...string) *ChatTurnUpdate {
	_u.mutation.RemoveCommentIDs(ids...)
	return _u
}

// RemoveComments removes "comments" edges to TurnComment entities.
func (_u *ChatTurnUpdate) RemoveComments(v ...*TurnComment) *ChatTurnUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCommentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChatTurnUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatTurnUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChatTurnUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatTurnUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChatTurnUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := chatturn.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatTurnUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := chatturn.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ChatTurn.status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChatTurn.session"`)
	}
	return nil
}

func (_u *ChatTurnUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatturn.Table, chatturn.Columns, sqlgraph.NewFieldSpec(chatturn.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserMessage(); ok {
		_spec.SetField(chatturn.FieldUserMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.FinalResponse(); ok {
		_spec.SetField(chatturn.FieldFinalResponse, field.TypeString, value)
	}
	if _u.mutation.FinalResponseCleared() {
		_spec.ClearField(chatturn.FieldFinalResponse, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(chatturn.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(chatturn.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(chatturn.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(chatturn.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FeedbackCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFeedbackIDs(); len(nodes) > 0 && !_u.mutation.FeedbackCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FeedbackIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CommentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCommentsIDs(); len(nodes) > 0 && !_u.mutation.CommentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CommentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatturn.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChatTurnUpdateOne is the builder for updating a single ChatTurn entity.
type ChatTurnUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChatTurnMutation
}

// SetUserMessage sets the "user_message" field.
func (_u *ChatTurnUpdateOne) SetUserMessage(v string) *ChatTurnUpdateOne {
	_u.mutation.SetUserMessage(v)
	return _u
}

// SetNillableUserMessage sets the "user_message" field if the given value is not nil.
func (_u *ChatTurnUpdateOne) SetNillableUserMessage(v *string) *ChatTurnUpdateOne {
	if v != nil {
		_u.SetUserMessage(*v)
	}
	return _u
}

// SetFinalResponse sets the "final_response" field.
func (_u *ChatTurnUpdateOne) SetFinalResponse(v string) *ChatTurnUpdateOne {
	_u.mutation.SetFinalResponse(v)
	return _u
}

// SetNillableFinalResponse sets the "final_response" field if the given value is not nil.
func (_u *ChatTurnUpdateOne) SetNillableFinalResponse(v *string) *ChatTurnUpdateOne {
	if v != nil {
		_u.SetFinalResponse(*v)
	}
	return _u
}

// ClearFinalResponse clears the value of the "final_response" field.
func (_u *ChatTurnUpdateOne) ClearFinalResponse() *ChatTurnUpdateOne {
	_u.mutation.ClearFinalResponse()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ChatTurnUpdateOne) SetStatus(v chatturn.Status) *ChatTurnUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ChatTurnUpdateOne) SetNillableStatus(v *chatturn.Status) *ChatTurnUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ChatTurnUpdateOne) SetErrorMessage(v string) *ChatTurnUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ChatTurnUpdateOne) SetNillableErrorMessage(v *string) *ChatTurnUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ChatTurnUpdateOne) ClearErrorMessage() *ChatTurnUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChatTurnUpdateOne) SetUpdatedAt(v time.Time) *ChatTurnUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddStepIDs adds the "steps" edge to the TurnStep entity by IDs.
func (_u *ChatTurnUpdateOne) AddStepIDs(ids ...string) *ChatTurnUpdateOne {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the TurnStep entity.
func (_u *ChatTurnUpdateOne) AddSteps(v ...*TurnStep) *ChatTurnUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// SetJobID sets the "job" edge to the Job entity by ID.
func (_u *ChatTurnUpdateOne) SetJobID(id string) *ChatTurnUpdateOne {
	_u.mutation.SetJobID(id)
	return _u
}

// SetNillableJobID sets the "job" edge to the Job entity by ID if the given value is not nil.
func (_u *ChatTurnUpdateOne) SetNillableJobID(id *string) *ChatTurnUpdateOne {
	if id != nil {
		_u = _u.SetJobID(*id)
	}
	return _u
}

// SetJob sets the "job" edge to the Job entity.
func (_u *ChatTurnUpdateOne) SetJob(v *Job) *ChatTurnUpdateOne {
	return _u.SetJobID(v.ID)
}

// AddFeedbackIDs adds the "feedback" edge to the TurnFeedback entity by IDs.
func (_u *ChatTurnUpdateOne) AddFeedbackIDs(ids ...string) *ChatTurnUpdateOne {
	_u.mutation.AddFeedbackIDs(ids...)
	return _u
}

// AddFeedback adds the "feedback" edges to the TurnFeedback entity.
func (_u *ChatTurnUpdateOne) AddFeedback(v ...*TurnFeedback) *ChatTurnUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFeedbackIDs(ids...)
}

// AddCommentIDs adds the "comments" edge to the TurnComment entity by IDs.
func (_u *ChatTurnUpdateOne) AddCommentIDs(ids ...string) *ChatTurnUpdateOne {
	_u.mutation.AddCommentIDs(ids...)
	return _u
}

// AddComments adds the "comments" edges to the TurnComment entity.
func (_u *ChatTurnUpdateOne) AddComments(v ...*TurnComment) *ChatTurnUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCommentIDs(ids...)
}

// Mutation returns the ChatTurnMutation object of the builder.
func (_u *ChatTurnUpdateOne) Mutation() *ChatTurnMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the TurnStep entity.
func (_u *ChatTurnUpdateOne) ClearSteps() *ChatTurnUpdateOne {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to TurnStep entities by IDs.
func (_u *ChatTurnUpdateOne) RemoveStepIDs(ids ...string) *ChatTurnUpdateOne {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to TurnStep entities.
func (_u *ChatTurnUpdateOne) RemoveSteps(v ...*TurnStep) *ChatTurnUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// ClearJob clears the "job" edge to the Job entity.
func (_u *ChatTurnUpdateOne) ClearJob() *ChatTurnUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// ClearFeedback clears all "feedback" edges to the TurnFeedback entity.
func (_u *ChatTurnUpdateOne) ClearFeedback() *ChatTurnUpdateOne {
	_u.mutation.ClearFeedback()
	return _u
}

// RemoveFeedbackIDs removes the "feedback" edge to TurnFeedback entities by IDs.
func (_u *ChatTurnUpdateOne) RemoveFeedbackIDs(ids ...string) *ChatTurnUpdateOne {
	_u.mutation.RemoveFeedbackIDs(ids...)
	return _u
}

// RemoveFeedback removes "feedback" edges to TurnFeedback entities.
func (_u *ChatTurnUpdateOne) RemoveFeedback(v ...*TurnFeedback) *ChatTurnUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFeedbackIDs(ids...)
}

// ClearComments clears all "comments" edges to the TurnComment entity.
func (_u *ChatTurnUpdateOne) ClearComments() *ChatTurnUpdateOne {
	_u.mutation.ClearComments()
	return _u
}

// RemoveCommentIDs removes the "comments" edge to TurnComment entities by IDs.
func (_u *ChatTurnUpdateOne) RemoveCommentIDs(ids ...string) *ChatTurnUpdateOne {
	_u.mutation.RemoveCommentIDs(ids...)
	return _u
}

// RemoveComments removes "comments" edges to TurnComment entities.
func (_u *ChatTurnUpdateOne) RemoveComments(v ...*TurnComment) *ChatTurnUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCommentIDs(ids...)
}

// Where appends a list predicates to the ChatTurnUpdate builder.
func (_u *ChatTurnUpdateOne) Where(ps ...predicate.ChatTurn) *ChatTurnUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChatTurnUpdateOne) Select(field string, fields ...string) *ChatTurnUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChatTurn entity.
func (_u *ChatTurnUpdateOne) Save(ctx context.Context) (*ChatTurn, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatTurnUpdateOne) SaveX(ctx context.Context) *ChatTurn {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChatTurnUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatTurnUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChatTurnUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := chatturn.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatTurnUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := chatturn.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ChatTurn.status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChatTurn.session"`)
	}
	return nil
}

func (_u *ChatTurnUpdateOne) sqlSave(ctx context.Context) (_node *ChatTurn, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatturn.Table, chatturn.Columns, sqlgraph.NewFieldSpec(chatturn.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChatTurn.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chatturn.FieldID)
		for _, f := range fields {
			if !chatturn.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chatturn.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserMessage(); ok {
		_spec.SetField(chatturn.FieldUserMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.FinalResponse(); ok {
		_spec.SetField(chatturn.FieldFinalResponse, field.TypeString, value)
	}
	if _u.mutation.FinalResponseCleared() {
		_spec.ClearField(chatturn.FieldFinalResponse, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(chatturn.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(chatturn.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(chatturn.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(chatturn.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FeedbackCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFeedbackIDs(); len(nodes) > 0 && !_u.mutation.FeedbackCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FeedbackIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CommentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCommentsIDs(); len(nodes) > 0 && !_u.mutation.CommentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CommentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ChatTurn{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatturn.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
