// Code generated by ent, DO NOT EDIT.

package integration

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/vibemonitor/rca/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Integration {
	return predicate.Integration(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Integration {
	return predicate.Integration(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Integration {
	return predicate.Integration(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Integration {
	return predicate.Integration(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Integration {
	return predicate.Integration(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Integration {
	return predicate.Integration(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Integration {
	return predicate.Integration(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Integration {
	return predicate.Integration(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Integration {
	return predicate.Integration(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Integration {
	return predicate.Integration(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Integration {
	return predicate.Integration(sql.FieldContainsFold(FieldID, id))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v string) predicate.Integration {
	return predicate.Integration(sql.FieldEQ(FieldWorkspaceID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Integration {
	return predicate.Integration(sql.FieldEQ(FieldName, v))
}

// EncryptedCredentials applies equality check predicate on the "encrypted_credentials" field. It's identical to EncryptedCredentialsEQ.
func EncryptedCredentials(v []byte) predicate.Integration {
	return predicate.Integration(sql.FieldEQ(FieldEncryptedCredentials, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.Integration {
	return predicate.Integration(sql.FieldEQ(FieldEnabled, v))
}

// LastHealthCheckAt applies equality check predicate on the "last_health_check_at" field. It's identical to LastHealthCheckAtEQ.
func LastHealthCheckAt(v time.Time) predicate.Integration {
	return predicate.Integration(sql.FieldEQ(FieldLastHealthCheckAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Integration {
	return predicate.Integration(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Integration {
	return predicate.Integration(sql.FieldEQ(FieldUpdatedAt, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v string) predicate.Integration {
	return predicate.Integration(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v string) predicate.Integration {
	return predicate.Integration(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...string) predicate.Integration {
	return predicate.Integration(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...string) predicate.Integration {
	return predicate.Integration(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDGT applies the GT predicate on the "workspace_id" field.
func WorkspaceIDGT(v string) predicate.Integration {
	return predicate.Integration(sql.FieldGT(FieldWorkspaceID, v))
}

// WorkspaceIDGTE applies the GTE predicate on the "workspace_id" field.
func WorkspaceIDGTE(v string) predicate.Integration {
	return predicate.Integration(sql.FieldGTE(FieldWorkspaceID, v))
}

// WorkspaceIDLT applies the LT predicate on the "workspace_id" field.
func WorkspaceIDLT(v string) predicate.Integration {
	return predicate.Integration(sql.FieldLT(FieldWorkspaceID, v))
}

// WorkspaceIDLTE applies the LTE predicate on the "workspace_id" field.
func WorkspaceIDLTE(v string) predicate.Integration {
	return predicate.Integration(sql.FieldLTE(FieldWorkspaceID, v))
}

// WorkspaceIDContains applies the Contains predicate on the "workspace_id" field.
func WorkspaceIDContains(v string) predicate.Integration {
	return predicate.Integration(sql.FieldContains(FieldWorkspaceID, v))
}

// WorkspaceIDHasPrefix applies the HasPrefix predicate on the "workspace_id" field.
func WorkspaceIDHasPrefix(v string) predicate.Integration {
	return predicate.Integration(sql.FieldHasPrefix(FieldWorkspaceID, v))
}

// WorkspaceIDHasSuffix applies the HasSuffix predicate on the "workspace_id" field.
func WorkspaceIDHasSuffix(v string) predicate.Integration {
	return predicate.Integration(sql.FieldHasSuffix(FieldWorkspaceID, v))
}

// WorkspaceIDEqualFold applies the EqualFold predicate on the "workspace_id" field.
func WorkspaceIDEqualFold(v string) predicate.Integration {
	return predicate.Integration(sql.FieldEqualFold(FieldWorkspaceID, v))
}

// WorkspaceIDContainsFold applies the ContainsFold predicate on the "workspace_id" field.
func WorkspaceIDContainsFold(v string) predicate.Integration {
	return predicate.Integration(sql.FieldContainsFold(FieldWorkspaceID, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v Provider) predicate.Integration {
	return predicate.Integration(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v Provider) predicate.Integration {
	return predicate.Integration(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...Provider) predicate.Integration {
	return predicate.Integration(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...Provider) predicate.Integration {
	return predicate.Integration(sql.FieldNotIn(FieldProvider, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Integration {
	return predicate.Integration(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Integration {
	return predicate.Integration(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Integration {
	return predicate.Integration(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Integration {
	return predicate.Integration(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Integration {
	return predicate.Integration(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Integration {
	return predicate.Integration(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Integration {
	return predicate.Integration(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Integration {
	return predicate.Integration(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Integration {
	return predicate.Integration(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Integration {
	return predicate.Integration(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Integration {
	return predicate.Integration(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Integration {
	return predicate.Integration(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Integration {
	return predicate.Integration(sql.FieldContainsFold(FieldName, v))
}

// EncryptedCredentialsEQ applies the EQ predicate on the "encrypted_credentials" field.
func EncryptedCredentialsEQ(v []byte) predicate.Integration {
	return predicate.Integration(sql.FieldEQ(FieldEncryptedCredentials, v))
}

// EncryptedCredentialsNEQ applies the NEQ predicate on the "encrypted_credentials" field.
func EncryptedCredentialsNEQ(v []byte) predicate.Integration {
	return predicate.Integration(sql.FieldNEQ(FieldEncryptedCredentials, v))
}

// EncryptedCredentialsIn applies the In predicate on the "encrypted_credentials" field.
func EncryptedCredentialsIn(vs ...[]byte) predicate.Integration {
	return predicate.Integration(sql.FieldIn(FieldEncryptedCredentials, vs...))
}

// EncryptedCredentialsNotIn applies the NotIn predicate on the "encrypted_credentials" field.
func EncryptedCredentialsNotIn(vs ...[]byte) predicate.Integration {
	return predicate.Integration(sql.FieldNotIn(FieldEncryptedCredentials, vs...))
}

// EncryptedCredentialsGT applies the GT predicate on the "encrypted_credentials" field.
func EncryptedCredentialsGT(v []byte) predicate.Integration {
	return predicate.Integration(sql.FieldGT(FieldEncryptedCredentials, v))
}

// EncryptedCredentialsGTE applies the GTE predicate on the "encrypted_credentials" field.
func EncryptedCredentialsGTE(v []byte) predicate.Integration {
	return predicate.Integration(sql.FieldGTE(FieldEncryptedCredentials, v))
}

// EncryptedCredentialsLT applies the LT predicate on the "encrypted_credentials" field.
func EncryptedCredentialsLT(v []byte) predicate.Integration {
	return predicate.Integration(sql.FieldLT(FieldEncryptedCredentials, v))
}

// EncryptedCredentialsLTE applies the LTE predicate on the "encrypted_credentials" field.
func EncryptedCredentialsLTE(v []byte) predicate.Integration {
	return predicate.Integration(sql.FieldLTE(FieldEncryptedCredentials, v))
}

// SettingsIsNil applies the IsNil predicate on the "settings" field.
func SettingsIsNil() predicate.Integration {
	return predicate.Integration(sql.FieldIsNull(FieldSettings))
}

// SettingsNotNil applies the NotNil predicate on the "settings" field.
func SettingsNotNil() predicate.Integration {
	return predicate.Integration(sql.FieldNotNull(FieldSettings))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.Integration {
	return predicate.Integration(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.Integration {
	return predicate.Integration(sql.FieldNEQ(FieldEnabled, v))
}

// HealthStatusEQ applies the EQ predicate on the "health_status" field.
func HealthStatusEQ(v HealthStatus) predicate.Integration {
	return predicate.Integration(sql.FieldEQ(FieldHealthStatus, v))
}

// HealthStatusNEQ applies the NEQ predicate on the "health_status" field.
func HealthStatusNEQ(v HealthStatus) predicate.Integration {
	return predicate.Integration(sql.FieldNEQ(FieldHealthStatus, v))
}

// HealthStatusIn applies the In predicate on the "health_status" field.
func HealthStatusIn(vs ...HealthStatus) predicate.Integration {
	return predicate.Integration(sql.FieldIn(FieldHealthStatus, vs...))
}

// HealthStatusNotIn applies the NotIn predicate on the "health_status" field.
func HealthStatusNotIn(vs ...HealthStatus) predicate.Integration {
	return predicate.Integration(sql.FieldNotIn(FieldHealthStatus, vs...))
}

// LastHealthCheckAtEQ applies the EQ predicate on the "last_health_check_at" field.
func LastHealthCheckAtEQ(v time.Time) predicate.Integration {
	return predicate.Integration(sql.FieldEQ(FieldLastHealthCheckAt, v))
}

// LastHealthCheckAtNEQ applies the NEQ predicate on the "last_health_check_at" field.
func LastHealthCheckAtNEQ(v time.Time) predicate.Integration {
	return predicate.Integration(sql.FieldNEQ(FieldLastHealthCheckAt, v))
}

// LastHealthCheckAtIn applies the In predicate on the "last_health_check_at" field.
func LastHealthCheckAtIn(vs ...time.Time) predicate.Integration {
	return predicate.Integration(sql.FieldIn(FieldLastHealthCheckAt, vs...))
}

// LastHealthCheckAtNotIn applies the NotIn predicate on the "last_health_check_at" field.
func LastHealthCheckAtNotIn(vs ...time.Time) predicate.Integration {
	return predicate.Integration(sql.FieldNotIn(FieldLastHealthCheckAt, vs...))
}

// LastHealthCheckAtGT applies the GT predicate on the "last_health_check_at" field.
func LastHealthCheckAtGT(v time.Time) predicate.Integration {
	return predicate.Integration(sql.FieldGT(FieldLastHealthCheckAt, v))
}

// LastHealthCheckAtGTE applies the GTE predicate on the "last_health_check_at" field.
func LastHealthCheckAtGTE(v time.Time) predicate.Integration {
	return predicate.Integration(sql.FieldGTE(FieldLastHealthCheckAt, v))
}

// LastHealthCheckAtLT applies the LT predicate on the "last_health_check_at" field.
func LastHealthCheckAtLT(v time.Time) predicate.Integration {
	return predicate.Integration(sql.FieldLT(FieldLastHealthCheckAt, v))
}

// LastHealthCheckAtLTE applies the LTE predicate on the "last_health_check_at" field.
func LastHealthCheckAtLTE(v time.Time) predicate.Integration {
	return predicate.Integration(sql.FieldLTE(FieldLastHealthCheckAt, v))
}

// LastHealthCheckAtIsNil applies the IsNil predicate on the "last_health_check_at" field.
func LastHealthCheckAtIsNil() predicate.Integration {
	return predicate.Integration(sql.FieldIsNull(FieldLastHealthCheckAt))
}

// LastHealthCheckAtNotNil applies the NotNil predicate on the "last_health_check_at" field.
func LastHealthCheckAtNotNil() predicate.Integration {
	return predicate.Integration(sql.FieldNotNull(FieldLastHealthCheckAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Integration {
	return predicate.Integration(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Integration {
	return predicate.Integration(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Integration {
	return predicate.Integration(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Integration {
	return predicate.Integration(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Integration {
	return predicate.Integration(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Integration {
	return predicate.Integration(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Integration {
	return predicate.Integration(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Integration {
	return predicate.Integration(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Integration {
	return predicate.Integration(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Integration {
	return predicate.Integration(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Integration {
	return predicate.Integration(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Integration {
	return predicate.Integration(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Integration {
	return predicate.Integration(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Integration {
	return predicate.Integration(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Integration {
	return predicate.Integration(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Integration {
	return predicate.Integration(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Integration) predicate.Integration {
	return predicate.Integration(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Integration) predicate.Integration {
	return predicate.Integration(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Integration) predicate.Integration {
	return predicate.Integration(sql.NotPredicates(p))
}
