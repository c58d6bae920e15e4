// Code generated by ent, DO NOT EDIT.

package llmconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/vibemonitor/rca/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldContainsFold(FieldID, id))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEQ(FieldWorkspaceID, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEQ(FieldModel, v))
}

// EncryptedAPIKey applies equality check predicate on the "encrypted_api_key" field. It's identical to EncryptedAPIKeyEQ.
func EncryptedAPIKey(v []byte) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEQ(FieldEncryptedAPIKey, v))
}

// BaseURL applies equality check predicate on the "base_url" field. It's identical to BaseURLEQ.
func BaseURL(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEQ(FieldBaseURL, v))
}

// APIVersion applies equality check predicate on the "api_version" field. It's identical to APIVersionEQ.
func APIVersion(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEQ(FieldAPIVersion, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEQ(FieldEnabled, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDGT applies the GT predicate on the "workspace_id" field.
func WorkspaceIDGT(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldGT(FieldWorkspaceID, v))
}

// WorkspaceIDGTE applies the GTE predicate on the "workspace_id" field.
func WorkspaceIDGTE(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldGTE(FieldWorkspaceID, v))
}

// WorkspaceIDLT applies the LT predicate on the "workspace_id" field.
func WorkspaceIDLT(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldLT(FieldWorkspaceID, v))
}

// WorkspaceIDLTE applies the LTE predicate on the "workspace_id" field.
func WorkspaceIDLTE(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldLTE(FieldWorkspaceID, v))
}

// WorkspaceIDContains applies the Contains predicate on the "workspace_id" field.
func WorkspaceIDContains(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldContains(FieldWorkspaceID, v))
}

// WorkspaceIDHasPrefix applies the HasPrefix predicate on the "workspace_id" field.
func WorkspaceIDHasPrefix(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldHasPrefix(FieldWorkspaceID, v))
}

// WorkspaceIDHasSuffix applies the HasSuffix predicate on the "workspace_id" field.
func WorkspaceIDHasSuffix(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldHasSuffix(FieldWorkspaceID, v))
}

// WorkspaceIDEqualFold applies the EqualFold predicate on the "workspace_id" field.
func WorkspaceIDEqualFold(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEqualFold(FieldWorkspaceID, v))
}

// WorkspaceIDContainsFold applies the ContainsFold predicate on the "workspace_id" field.
func WorkspaceIDContainsFold(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldContainsFold(FieldWorkspaceID, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v Provider) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v Provider) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...Provider) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...Provider) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNotIn(FieldProvider, vs...))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldContainsFold(FieldModel, v))
}

// EncryptedAPIKeyEQ applies the EQ predicate on the "encrypted_api_key" field.
func EncryptedAPIKeyEQ(v []byte) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEQ(FieldEncryptedAPIKey, v))
}

// EncryptedAPIKeyNEQ applies the NEQ predicate on the "encrypted_api_key" field.
func EncryptedAPIKeyNEQ(v []byte) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNEQ(FieldEncryptedAPIKey, v))
}

// EncryptedAPIKeyIn applies the In predicate on the "encrypted_api_key" field.
func EncryptedAPIKeyIn(vs ...[]byte) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldIn(FieldEncryptedAPIKey, vs...))
}

// EncryptedAPIKeyNotIn applies the NotIn predicate on the "encrypted_api_key" field.
func EncryptedAPIKeyNotIn(vs ...[]byte) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNotIn(FieldEncryptedAPIKey, vs...))
}

// EncryptedAPIKeyGT applies the GT predicate on the "encrypted_api_key" field.
func EncryptedAPIKeyGT(v []byte) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldGT(FieldEncryptedAPIKey, v))
}

// EncryptedAPIKeyGTE applies the GTE predicate on the "encrypted_api_key" field.
func EncryptedAPIKeyGTE(v []byte) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldGTE(FieldEncryptedAPIKey, v))
}

// EncryptedAPIKeyLT applies the LT predicate on the "encrypted_api_key" field.
func EncryptedAPIKeyLT(v []byte) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldLT(FieldEncryptedAPIKey, v))
}

// EncryptedAPIKeyLTE applies the LTE predicate on the "encrypted_api_key" field.
func EncryptedAPIKeyLTE(v []byte) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldLTE(FieldEncryptedAPIKey, v))
}

// BaseURLEQ applies the EQ predicate on the "base_url" field.
func BaseURLEQ(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEQ(FieldBaseURL, v))
}

// BaseURLNEQ applies the NEQ predicate on the "base_url" field.
func BaseURLNEQ(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNEQ(FieldBaseURL, v))
}

// BaseURLIn applies the In predicate on the "base_url" field.
func BaseURLIn(vs ...string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldIn(FieldBaseURL, vs...))
}

// BaseURLNotIn applies the NotIn predicate on the "base_url" field.
func BaseURLNotIn(vs ...string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNotIn(FieldBaseURL, vs...))
}

// BaseURLGT applies the GT predicate on the "base_url" field.
func BaseURLGT(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldGT(FieldBaseURL, v))
}

// BaseURLGTE applies the GTE predicate on the "base_url" field.
func BaseURLGTE(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldGTE(FieldBaseURL, v))
}

// BaseURLLT applies the LT predicate on the "base_url" field.
func BaseURLLT(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldLT(FieldBaseURL, v))
}

// BaseURLLTE applies the LTE predicate on the "base_url" field.
func BaseURLLTE(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldLTE(FieldBaseURL, v))
}

// BaseURLContains applies the Contains predicate on the "base_url" field.
func BaseURLContains(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldContains(FieldBaseURL, v))
}

// BaseURLHasPrefix applies the HasPrefix predicate on the "base_url" field.
func BaseURLHasPrefix(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldHasPrefix(FieldBaseURL, v))
}

// BaseURLHasSuffix applies the HasSuffix predicate on the "base_url" field.
func BaseURLHasSuffix(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldHasSuffix(FieldBaseURL, v))
}

// BaseURLIsNil applies the IsNil predicate on the "base_url" field.
func BaseURLIsNil() predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldIsNull(FieldBaseURL))
}

// BaseURLNotNil applies the NotNil predicate on the "base_url" field.
func BaseURLNotNil() predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNotNull(FieldBaseURL))
}

// BaseURLEqualFold applies the EqualFold predicate on the "base_url" field.
func BaseURLEqualFold(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEqualFold(FieldBaseURL, v))
}

// BaseURLContainsFold applies the ContainsFold predicate on the "base_url" field.
func BaseURLContainsFold(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldContainsFold(FieldBaseURL, v))
}

// APIVersionEQ applies the EQ predicate on the "api_version" field.
func APIVersionEQ(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEQ(FieldAPIVersion, v))
}

// APIVersionNEQ applies the NEQ predicate on the "api_version" field.
func APIVersionNEQ(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNEQ(FieldAPIVersion, v))
}

// APIVersionIn applies the In predicate on the "api_version" field.
func APIVersionIn(vs ...string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldIn(FieldAPIVersion, vs...))
}

// APIVersionNotIn applies the NotIn predicate on the "api_version" field.
func APIVersionNotIn(vs ...string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNotIn(FieldAPIVersion, vs...))
}

// APIVersionGT applies the GT predicate on the "api_version" field.
func APIVersionGT(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldGT(FieldAPIVersion, v))
}

// APIVersionGTE applies the GTE predicate on the "api_version" field.
func APIVersionGTE(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldGTE(FieldAPIVersion, v))
}

// APIVersionLT applies the LT predicate on the "api_version" field.
func APIVersionLT(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldLT(FieldAPIVersion, v))
}

// APIVersionLTE applies the LTE predicate on the "api_version" field.
func APIVersionLTE(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldLTE(FieldAPIVersion, v))
}

// APIVersionContains applies the Contains predicate on the "api_version" field.
func APIVersionContains(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldContains(FieldAPIVersion, v))
}

// APIVersionHasPrefix applies the HasPrefix predicate on the "api_version" field.
func APIVersionHasPrefix(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldHasPrefix(FieldAPIVersion, v))
}

// APIVersionHasSuffix applies the HasSuffix predicate on the "api_version" field.
func APIVersionHasSuffix(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldHasSuffix(FieldAPIVersion, v))
}

// APIVersionIsNil applies the IsNil predicate on the "api_version" field.
func APIVersionIsNil() predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldIsNull(FieldAPIVersion))
}

// APIVersionNotNil applies the NotNil predicate on the "api_version" field.
func APIVersionNotNil() predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNotNull(FieldAPIVersion))
}

// APIVersionEqualFold applies the EqualFold predicate on the "api_version" field.
func APIVersionEqualFold(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEqualFold(FieldAPIVersion, v))
}

// APIVersionContainsFold applies the ContainsFold predicate on the "api_version" field.
func APIVersionContainsFold(v string) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldContainsFold(FieldAPIVersion, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNEQ(FieldEnabled, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LLMConfig {
	return predicate.LLMConfig(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LLMConfig) predicate.LLMConfig {
	return predicate.LLMConfig(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LLMConfig) predicate.LLMConfig {
	return predicate.LLMConfig(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LLMConfig) predicate.LLMConfig {
	return predicate.LLMConfig(sql.NotPredicates(p))
}
