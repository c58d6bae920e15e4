// Code generated by ent, DO NOT EDIT.

package quotacounter

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/vibemonitor/rca/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldContainsFold(FieldID, id))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldEQ(FieldWorkspaceID, v))
}

// Resource applies equality check predicate on the "resource" field. It's identical to ResourceEQ.
func Resource(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldEQ(FieldResource, v))
}

// WindowKey applies equality check predicate on the "window_key" field. It's identical to WindowKeyEQ.
func WindowKey(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldEQ(FieldWindowKey, v))
}

// Count applies equality check predicate on the "count" field. It's identical to CountEQ.
func Count(v int) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldEQ(FieldCount, v))
}

// LimitValue applies equality check predicate on the "limit_value" field. It's identical to LimitValueEQ.
func LimitValue(v int) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldEQ(FieldLimitValue, v))
}

// ResetAt applies equality check predicate on the "reset_at" field. It's identical to ResetAtEQ.
func ResetAt(v time.Time) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldEQ(FieldResetAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldEQ(FieldUpdatedAt, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDGT applies the GT predicate on the "workspace_id" field.
func WorkspaceIDGT(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldGT(FieldWorkspaceID, v))
}

// WorkspaceIDGTE applies the GTE predicate on the "workspace_id" field.
func WorkspaceIDGTE(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldGTE(FieldWorkspaceID, v))
}

// WorkspaceIDLT applies the LT predicate on the "workspace_id" field.
func WorkspaceIDLT(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldLT(FieldWorkspaceID, v))
}

// WorkspaceIDLTE applies the LTE predicate on the "workspace_id" field.
func WorkspaceIDLTE(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldLTE(FieldWorkspaceID, v))
}

// WorkspaceIDContains applies the Contains predicate on the "workspace_id" field.
func WorkspaceIDContains(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldContains(FieldWorkspaceID, v))
}

// WorkspaceIDHasPrefix applies the HasPrefix predicate on the "workspace_id" field.
func WorkspaceIDHasPrefix(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldHasPrefix(FieldWorkspaceID, v))
}

// WorkspaceIDHasSuffix applies the HasSuffix predicate on the "workspace_id" field.
func WorkspaceIDHasSuffix(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldHasSuffix(FieldWorkspaceID, v))
}

// WorkspaceIDEqualFold applies the EqualFold predicate on the "workspace_id" field.
func WorkspaceIDEqualFold(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldEqualFold(FieldWorkspaceID, v))
}

// WorkspaceIDContainsFold applies the ContainsFold predicate on the "workspace_id" field.
func WorkspaceIDContainsFold(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldContainsFold(FieldWorkspaceID, v))
}

// ResourceEQ applies the EQ predicate on the "resource" field.
func ResourceEQ(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldEQ(FieldResource, v))
}

// ResourceNEQ applies the NEQ predicate on the "resource" field.
func ResourceNEQ(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldNEQ(FieldResource, v))
}

// ResourceIn applies the In predicate on the "resource" field.
func ResourceIn(vs ...string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldIn(FieldResource, vs...))
}

// ResourceNotIn applies the NotIn predicate on the "resource" field.
func ResourceNotIn(vs ...string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldNotIn(FieldResource, vs...))
}

// ResourceGT applies the GT predicate on the "resource" field.
func ResourceGT(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldGT(FieldResource, v))
}

// ResourceGTE applies the GTE predicate on the "resource" field.
func ResourceGTE(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldGTE(FieldResource, v))
}

// ResourceLT applies the LT predicate on the "resource" field.
func ResourceLT(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldLT(FieldResource, v))
}

// ResourceLTE applies the LTE predicate on the "resource" field.
func ResourceLTE(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldLTE(FieldResource, v))
}

// ResourceContains applies the Contains predicate on the "resource" field.
func ResourceContains(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldContains(FieldResource, v))
}

// ResourceHasPrefix applies the HasPrefix predicate on the "resource" field.
func ResourceHasPrefix(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldHasPrefix(FieldResource, v))
}

// ResourceHasSuffix applies the HasSuffix predicate on the "resource" field.
func ResourceHasSuffix(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldHasSuffix(FieldResource, v))
}

// ResourceEqualFold applies the EqualFold predicate on the "resource" field.
func ResourceEqualFold(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldEqualFold(FieldResource, v))
}

// ResourceContainsFold applies the ContainsFold predicate on the "resource" field.
func ResourceContainsFold(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldContainsFold(FieldResource, v))
}

// WindowKeyEQ applies the EQ predicate on the "window_key" field.
func WindowKeyEQ(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldEQ(FieldWindowKey, v))
}

// WindowKeyNEQ applies the NEQ predicate on the "window_key" field.
func WindowKeyNEQ(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldNEQ(FieldWindowKey, v))
}

// WindowKeyIn applies the In predicate on the "window_key" field.
func WindowKeyIn(vs ...string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldIn(FieldWindowKey, vs...))
}

// WindowKeyNotIn applies the NotIn predicate on the "window_key" field.
func WindowKeyNotIn(vs ...string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldNotIn(FieldWindowKey, vs...))
}

// WindowKeyGT applies the GT predicate on the "window_key" field.
func WindowKeyGT(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldGT(FieldWindowKey, v))
}

// WindowKeyGTE applies the GTE predicate on the "window_key" field.
func WindowKeyGTE(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldGTE(FieldWindowKey, v))
}

// WindowKeyLT applies the LT predicate on the "window_key" field.
func WindowKeyLT(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldLT(FieldWindowKey, v))
}

// WindowKeyLTE applies the LTE predicate on the "window_key" field.
func WindowKeyLTE(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldLTE(FieldWindowKey, v))
}

// WindowKeyContains applies the Contains predicate on the "window_key" field.
func WindowKeyContains(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldContains(FieldWindowKey, v))
}

// WindowKeyHasPrefix applies the HasPrefix predicate on the "window_key" field.
func WindowKeyHasPrefix(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldHasPrefix(FieldWindowKey, v))
}

// WindowKeyHasSuffix applies the HasSuffix predicate on the "window_key" field.
func WindowKeyHasSuffix(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldHasSuffix(FieldWindowKey, v))
}

// WindowKeyEqualFold applies the EqualFold predicate on the "window_key" field.
func WindowKeyEqualFold(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldEqualFold(FieldWindowKey, v))
}

// WindowKeyContainsFold applies the ContainsFold predicate on the "window_key" field.
func WindowKeyContainsFold(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldContainsFold(FieldWindowKey, v))
}

// CountEQ applies the EQ predicate on the "count" field.
func CountEQ(v int) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldEQ(FieldCount, v))
}

// CountNEQ applies the NEQ predicate on the "count" field.
func CountNEQ(v int) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldNEQ(FieldCount, v))
}

// CountIn applies the In predicate on the "count" field.
func CountIn(vs ...int) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldIn(FieldCount, vs...))
}

// CountNotIn applies the NotIn predicate on the "count" field.
func CountNotIn(vs ...int) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldNotIn(FieldCount, vs...))
}

// CountGT applies the GT predicate on the "count" field.
func CountGT(v int) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldGT(FieldCount, v))
}

// CountGTE applies the GTE predicate on the "count" field.
func CountGTE(v int) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldGTE(FieldCount, v))
}

// CountLT applies the LT predicate on the "count" field.
func CountLT(v int) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldLT(FieldCount, v))
}

// CountLTE applies the LTE predicate on the "count" field.
func CountLTE(v int) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldLTE(FieldCount, v))
}

// LimitValueEQ applies the EQ predicate on the "limit_value" field.
func LimitValueEQ(v int) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldEQ(FieldLimitValue, v))
}

// LimitValueNEQ applies the NEQ predicate on the "limit_value" field.
func LimitValueNEQ(v int) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldNEQ(FieldLimitValue, v))
}

// LimitValueIn applies the In predicate on the "limit_value" field.
func LimitValueIn(vs ...int) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldIn(FieldLimitValue, vs...))
}

// LimitValueNotIn applies the NotIn predicate on the "limit_value" field.
func LimitValueNotIn(vs ...int) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldNotIn(FieldLimitValue, vs...))
}

// LimitValueGT applies the GT predicate on the "limit_value" field.
func LimitValueGT(v int) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldGT(FieldLimitValue, v))
}

// LimitValueGTE applies the GTE predicate on the "limit_value" field.
func LimitValueGTE(v int) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldGTE(FieldLimitValue, v))
}

// LimitValueLT applies the LT predicate on the "limit_value" field.
func LimitValueLT(v int) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldLT(FieldLimitValue, v))
}

// LimitValueLTE applies the LTE predicate on the "limit_value" field.
func LimitValueLTE(v int) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldLTE(FieldLimitValue, v))
}

// ResetAtEQ applies the EQ predicate on the "reset_at" field.
func ResetAtEQ(v time.Time) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldEQ(FieldResetAt, v))
}

// ResetAtNEQ applies the NEQ predicate on the "reset_at" field.
func ResetAtNEQ(v time.Time) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldNEQ(FieldResetAt, v))
}

// ResetAtIn applies the In predicate on the "reset_at" field.
func ResetAtIn(vs ...time.Time) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldIn(FieldResetAt, vs...))
}

// ResetAtNotIn applies the NotIn predicate on the "reset_at" field.
func ResetAtNotIn(vs ...time.Time) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldNotIn(FieldResetAt, vs...))
}

// ResetAtGT applies the GT predicate on the "reset_at" field.
func ResetAtGT(v time.Time) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldGT(FieldResetAt, v))
}

// ResetAtGTE applies the GTE predicate on the "reset_at" field.
func ResetAtGTE(v time.Time) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldGTE(FieldResetAt, v))
}

// ResetAtLT applies the LT predicate on the "reset_at" field.
func ResetAtLT(v time.Time) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldLT(FieldResetAt, v))
}

// ResetAtLTE applies the LTE predicate on the "reset_at" field.
func ResetAtLTE(v time.Time) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldLTE(FieldResetAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuotaCounter) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuotaCounter) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuotaCounter) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.NotPredicates(p))
}
