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
	"github.com/vibemonitor/rca/ent/integration"
	"github.com/vibemonitor/rca/ent/predicate"
)

// IntegrationUpdate is the builder for updating Integration entities.
type IntegrationUpdate struct {
	config
	hooks    []Hook
	mutation *IntegrationMutation
}

// Where appends a list predicates to the IntegrationUpdate builder.
func (_u *IntegrationUpdate) Where(ps ...predicate.Integration) *IntegrationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *IntegrationUpdate) SetProvider(v integration.Provider) *IntegrationUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *IntegrationUpdate) SetNillableProvider(v *integration.Provider) *IntegrationUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *IntegrationUpdate) SetName(v string) *IntegrationUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *IntegrationUpdate) SetNillableName(v *string) *IntegrationUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEncryptedCredentials sets the "encrypted_credentials" field.
func (_u *IntegrationUpdate) SetEncryptedCredentials(v []byte) *IntegrationUpdate {
	_u.mutation.SetEncryptedCredentials(v)
	return _u
}

// SetSettings sets the "settings" field.
func (_u *IntegrationUpdate) SetSettings(v map[string]interface{}) *IntegrationUpdate {
	_u.mutation.SetSettings(v)
	return _u
}

// ClearSettings clears the value of the "settings" field.
func (_u *IntegrationUpdate) ClearSettings() *IntegrationUpdate {
	_u.mutation.ClearSettings()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *IntegrationUpdate) SetEnabled(v bool) *IntegrationUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *IntegrationUpdate) SetNillableEnabled(v *bool) *IntegrationUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetHealthStatus sets the "health_status" field.
func (_u *IntegrationUpdate) SetHealthStatus(v integration.HealthStatus) *IntegrationUpdate {
	_u.mutation.SetHealthStatus(v)
	return _u
}

// SetNillableHealthStatus sets the "health_status" field if the given value is not nil.
func (_u *IntegrationUpdate) SetNillableHealthStatus(v *integration.HealthStatus) *IntegrationUpdate {
	if v != nil {
		_u.SetHealthStatus(*v)
	}
	return _u
}

// SetLastHealthCheckAt sets the "last_health_check_at" field.
func (_u *IntegrationUpdate) SetLastHealthCheckAt(v time.Time) *IntegrationUpdate {
	_u.mutation.SetLastHealthCheckAt(v)
	return _u
}

// SetNillableLastHealthCheckAt sets the "last_health_check_at" field if the given value is not nil.
func (_u *IntegrationUpdate) SetNillableLastHealthCheckAt(v *time.Time) *IntegrationUpdate {
	if v != nil {
		_u.SetLastHealthCheckAt(*v)
	}
	return _u
}

// ClearLastHealthCheckAt clears the value of the "last_health_check_at" field.
func (_u *IntegrationUpdate) ClearLastHealthCheckAt() *IntegrationUpdate {
	_u.mutation.ClearLastHealthCheckAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IntegrationUpdate) SetUpdatedAt(v time.Time) *IntegrationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the IntegrationMutation object of the builder.
func (_u *IntegrationUpdate) Mutation() *IntegrationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IntegrationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IntegrationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IntegrationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IntegrationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IntegrationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := integration.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IntegrationUpdate) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := integration.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "Integration.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HealthStatus(); ok {
		if err := integration.HealthStatusValidator(v); err != nil {
			return &ValidationError{Name: "health_status", err: fmt.Errorf(`ent: validator failed for field "Integration.health_status": %w`, err)}
		}
	}
	return nil
}

func (_u *IntegrationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(integration.Table, integration.Columns, sqlgraph.NewFieldSpec(integration.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(integration.FieldProvider, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(integration.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.EncryptedCredentials(); ok {
		_spec.SetField(integration.FieldEncryptedCredentials, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.Settings(); ok {
		_spec.SetField(integration.FieldSettings, field.TypeJSON, value)
	}
	if _u.mutation.SettingsCleared() {
		_spec.ClearField(integration.FieldSettings, field.TypeJSON)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(integration.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HealthStatus(); ok {
		_spec.SetField(integration.FieldHealthStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastHealthCheckAt(); ok {
		_spec.SetField(integration.FieldLastHealthCheckAt, field.TypeTime, value)
	}
	if _u.mutation.LastHealthCheckAtCleared() {
		_spec.ClearField(integration.FieldLastHealthCheckAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(integration.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{integration.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IntegrationUpdateOne is the builder for updating a single Integration entity.
type IntegrationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IntegrationMutation
}

// SetProvider sets the "provider" field.
func (_u *IntegrationUpdateOne) SetProvider(v integration.Provider) *IntegrationUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *IntegrationUpdateOne) SetNillableProvider(v *integration.Provider) *IntegrationUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *IntegrationUpdateOne) SetName(v string) *IntegrationUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *IntegrationUpdateOne) SetNillableName(v *string) *IntegrationUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEncryptedCredentials sets the "encrypted_credentials" field.
func (_u *IntegrationUpdateOne) SetEncryptedCredentials(v []byte) *IntegrationUpdateOne {
	_u.mutation.SetEncryptedCredentials(v)
	return _u
}

// SetSettings sets the "settings" field.
func (_u *IntegrationUpdateOne) SetSettings(v map[string]interface{}) *IntegrationUpdateOne {
	_u.mutation.SetSettings(v)
	return _u
}

// ClearSettings clears the value of the "settings" field.
func (_u *IntegrationUpdateOne) ClearSettings() *IntegrationUpdateOne {
	_u.mutation.ClearSettings()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *IntegrationUpdateOne) SetEnabled(v bool) *IntegrationUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *IntegrationUpdateOne) SetNillableEnabled(v *bool) *IntegrationUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetHealthStatus sets the "health_status" field.
func (_u *IntegrationUpdateOne) SetHealthStatus(v integration.HealthStatus) *IntegrationUpdateOne {
	_u.mutation.SetHealthStatus(v)
	return _u
}

// SetNillableHealthStatus sets the "health_status" field if the given value is not nil.
func (_u *IntegrationUpdateOne) SetNillableHealthStatus(v *integration.HealthStatus) *IntegrationUpdateOne {
	if v != nil {
		_u.SetHealthStatus(*v)
	}
	return _u
}

// SetLastHealthCheckAt sets the "last_health_check_at" field.
func (_u *IntegrationUpdateOne) SetLastHealthCheckAt(v time.Time) *IntegrationUpdateOne {
	_u.mutation.SetLastHealthCheckAt(v)
	return _u
}

// SetNillableLastHealthCheckAt sets the "last_health_check_at" field if the given value is not nil.
func (_u *IntegrationUpdateOne) SetNillableLastHealthCheckAt(v *time.Time) *IntegrationUpdateOne {
	if v != nil {
		_u.SetLastHealthCheckAt(*v)
	}
	return _u
}

// ClearLastHealthCheckAt clears the value of the "last_health_check_at" field.
func (_u *IntegrationUpdateOne) ClearLastHealthCheckAt() *IntegrationUpdateOne {
	_u.mutation.ClearLastHealthCheckAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IntegrationUpdateOne) SetUpdatedAt(v time.Time) *IntegrationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the IntegrationMutation object of the builder.
func (_u *IntegrationUpdateOne) Mutation() *IntegrationMutation {
	return _u.mutation
}

// Where appends a list predicates to the IntegrationUpdate builder.
func (_u *IntegrationUpdateOne) Where(ps ...predicate.Integration) *IntegrationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IntegrationUpdateOne) Select(field string, fields ...string) *IntegrationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Integration entity.
func (_u *IntegrationUpdateOne) Save(ctx context.Context) (*Integration, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IntegrationUpdateOne) SaveX(ctx context.Context) *Integration {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IntegrationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IntegrationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IntegrationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := integration.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IntegrationUpdateOne) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := integration.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "Integration.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HealthStatus(); ok {
		if err := integration.HealthStatusValidator(v); err != nil {
			return &ValidationError{Name: "health_status", err: fmt.Errorf(`ent: validator failed for field "Integration.health_status": %w`, err)}
		}
	}
	return nil
}

func (_u *IntegrationUpdateOne) sqlSave(ctx context.Context) (_node *Integration, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(integration.Table, integration.Columns, sqlgraph.NewFieldSpec(integration.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Integration.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, integration.FieldID)
		for _, f := range fields {
			if !integration.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != integration.FieldID {
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
		_spec.SetField(integration.FieldProvider, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(integration.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.EncryptedCredentials(); ok {
		_spec.SetField(integration.FieldEncryptedCredentials, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.Settings(); ok {
		_spec.SetField(integration.FieldSettings, field.TypeJSON, value)
	}
	if _u.mutation.SettingsCleared() {
		_spec.ClearField(integration.FieldSettings, field.TypeJSON)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(integration.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HealthStatus(); ok {
		_spec.SetField(integration.FieldHealthStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastHealthCheckAt(); ok {
		_spec.SetField(integration.FieldLastHealthCheckAt, field.TypeTime, value)
	}
	if _u.mutation.LastHealthCheckAtCleared() {
		_spec.ClearField(integration.FieldLastHealthCheckAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(integration.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Integration{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{integration.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
