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
	"github.com/vibemonitor/rca/ent/llmconfig"
	"github.com/vibemonitor/rca/ent/predicate"
)

// LLMConfigUpdate is the builder for updating LLMConfig entities.
type LLMConfigUpdate struct {
	config
	hooks    []Hook
	mutation *LLMConfigMutation
}

// Where appends a list predicates to the LLMConfigUpdate builder.
func (_u *LLMConfigUpdate) Where(ps ...predicate.LLMConfig) *LLMConfigUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *LLMConfigUpdate) SetProvider(v llmconfig.Provider) *LLMConfigUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *LLMConfigUpdate) SetNillableProvider(v *llmconfig.Provider) *LLMConfigUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *LLMConfigUpdate) SetModel(v string) *LLMConfigUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *LLMConfigUpdate) SetNillableModel(v *string) *LLMConfigUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetEncryptedAPIKey sets the "encrypted_api_key" field.
func (_u *LLMConfigUpdate) SetEncryptedAPIKey(v []byte) *LLMConfigUpdate {
	_u.mutation.SetEncryptedAPIKey(v)
	return _u
}

// SetBaseURL sets the "base_url" field.
func (_u *LLMConfigUpdate) SetBaseURL(v string) *LLMConfigUpdate {
	_u.mutation.SetBaseURL(v)
	return _u
}

// SetNillableBaseURL sets the "base_url" field if the given value is not nil.
func (_u *LLMConfigUpdate) SetNillableBaseURL(v *string) *LLMConfigUpdate {
	if v != nil {
		_u.SetBaseURL(*v)
	}
	return _u
}

// ClearBaseURL clears the value of the "base_url" field.
func (_u *LLMConfigUpdate) ClearBaseURL() *LLMConfigUpdate {
	_u.mutation.ClearBaseURL()
	return _u
}

// SetAPIVersion sets the "api_version" field.
func (_u *LLMConfigUpdate) SetAPIVersion(v string) *LLMConfigUpdate {
	_u.mutation.SetAPIVersion(v)
	return _u
}

// SetNillableAPIVersion sets the "api_version" field if the given value is not nil.
func (_u *LLMConfigUpdate) SetNillableAPIVersion(v *string) *LLMConfigUpdate {
	if v != nil {
		_u.SetAPIVersion(*v)
	}
	return _u
}

// ClearAPIVersion clears the value of the "api_version" field.
func (_u *LLMConfigUpdate) ClearAPIVersion() *LLMConfigUpdate {
	_u.mutation.ClearAPIVersion()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *LLMConfigUpdate) SetEnabled(v bool) *LLMConfigUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *LLMConfigUpdate) SetNillableEnabled(v *bool) *LLMConfigUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LLMConfigUpdate) SetUpdatedAt(v time.Time) *LLMConfigUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LLMConfigMutation object of the builder.
func (_u *LLMConfigUpdate) Mutation() *LLMConfigMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LLMConfigUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LLMConfigUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LLMConfigUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LLMConfigUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LLMConfigUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := llmconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LLMConfigUpdate) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := llmconfig.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "LLMConfig.provider": %w`, err)}
		}
	}
	return nil
}

func (_u *LLMConfigUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(llmconfig.Table, llmconfig.Columns, sqlgraph.NewFieldSpec(llmconfig.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(llmconfig.FieldProvider, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(llmconfig.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.EncryptedAPIKey(); ok {
		_spec.SetField(llmconfig.FieldEncryptedAPIKey, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.BaseURL(); ok {
		_spec.SetField(llmconfig.FieldBaseURL, field.TypeString, value)
	}
	if _u.mutation.BaseURLCleared() {
		_spec.ClearField(llmconfig.FieldBaseURL, field.TypeString)
	}
	if value, ok := _u.mutation.APIVersion(); ok {
		_spec.SetField(llmconfig.FieldAPIVersion, field.TypeString, value)
	}
	if _u.mutation.APIVersionCleared() {
		_spec.ClearField(llmconfig.FieldAPIVersion, field.TypeString)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(llmconfig.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(llmconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{llmconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LLMConfigUpdateOne is the builder for updating a single LLMConfig entity.
type LLMConfigUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LLMConfigMutation
}

// SetProvider sets the "provider" field.
func (_u *LLMConfigUpdateOne) SetProvider(v llmconfig.Provider) *LLMConfigUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *LLMConfigUpdateOne) SetNillableProvider(v *llmconfig.Provider) *LLMConfigUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *LLMConfigUpdateOne) SetModel(v string) *LLMConfigUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *LLMConfigUpdateOne) SetNillableModel(v *string) *LLMConfigUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetEncryptedAPIKey sets the "encrypted_api_key" field.
func (_u *LLMConfigUpdateOne) SetEncryptedAPIKey(v []byte) *LLMConfigUpdateOne {
	_u.mutation.SetEncryptedAPIKey(v)
	return _u
}

// SetBaseURL sets the "base_url" field.
func (_u *LLMConfigUpdateOne) SetBaseURL(v string) *LLMConfigUpdateOne {
	_u.mutation.SetBaseURL(v)
	return _u
}

// SetNillableBaseURL sets the "base_url" field if the given value is not nil.
func (_u *LLMConfigUpdateOne) SetNillableBaseURL(v *string) *LLMConfigUpdateOne {
	if v != nil {
		_u.SetBaseURL(*v)
	}
	return _u
}

// ClearBaseURL clears the value of the "base_url" field.
func (_u *LLMConfigUpdateOne) ClearBaseURL() *LLMConfigUpdateOne {
	_u.mutation.ClearBaseURL()
	return _u
}

// SetAPIVersion sets the "api_version" field.
func (_u *LLMConfigUpdateOne) SetAPIVersion(v string) *LLMConfigUpdateOne {
	_u.mutation.SetAPIVersion(v)
	return _u
}

// SetNillableAPIVersion sets the "api_version" field if the given value is not nil.
func (_u *LLMConfigUpdateOne) SetNillableAPIVersion(v *string) *LLMConfigUpdateOne {
	if v != nil {
		_u.SetAPIVersion(*v)
	}
	return _u
}

// ClearAPIVersion clears the value of the "api_version" field.
func (_u *LLMConfigUpdateOne) ClearAPIVersion() *LLMConfigUpdateOne {
	_u.mutation.ClearAPIVersion()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *LLMConfigUpdateOne) SetEnabled(v bool) *LLMConfigUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *LLMConfigUpdateOne) SetNillableEnabled(v *bool) *LLMConfigUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LLMConfigUpdateOne) SetUpdatedAt(v time.Time) *LLMConfigUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LLMConfigMutation object of the builder.
func (_u *LLMConfigUpdateOne) Mutation() *LLMConfigMutation {
	return _u.mutation
}

// Where appends a list predicates to the LLMConfigUpdate builder.
func (_u *LLMConfigUpdateOne) Where(ps ...predicate.LLMConfig) *LLMConfigUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LLMConfigUpdateOne) Select(field string, fields ...string) *LLMConfigUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LLMConfig entity.
func (_u *LLMConfigUpdateOne) Save(ctx context.Context) (*LLMConfig, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LLMConfigUpdateOne) SaveX(ctx context.Context) *LLMConfig {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LLMConfigUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LLMConfigUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LLMConfigUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := llmconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LLMConfigUpdateOne) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := llmconfig.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "LLMConfig.provider": %w`, err)}
		}
	}
	return nil
}

func (_u *LLMConfigUpdateOne) sqlSave(ctx context.Context) (_node *LLMConfig, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(llmconfig.Table, llmconfig.Columns, sqlgraph.NewFieldSpec(llmconfig.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LLMConfig.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, llmconfig.FieldID)
		for _, f := range fields {
			if !llmconfig.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != llmconfig.FieldID {
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
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(llmconfig.FieldProvider, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(llmconfig.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.EncryptedAPIKey(); ok {
		_spec.SetField(llmconfig.FieldEncryptedAPIKey, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.BaseURL(); ok {
		_spec.SetField(llmconfig.FieldBaseURL, field.TypeString, value)
	}
	if _u.mutation.BaseURLCleared() {
		_spec.ClearField(llmconfig.FieldBaseURL, field.TypeString)
	}
	if value, ok := _u.mutation.APIVersion(); ok {
		_spec.SetField(llmconfig.FieldAPIVersion, field.TypeString, value)
	}
	if _u.mutation.APIVersionCleared() {
		_spec.ClearField(llmconfig.FieldAPIVersion, field.TypeString)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(llmconfig.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(llmconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &LLMConfig{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{llmconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
