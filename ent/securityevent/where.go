// Code generated by ent, DO NOT EDIT.

package securityevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/vibemonitor/rca/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldContainsFold(FieldID, id))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldEQ(FieldWorkspaceID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldEQ(FieldUserID, v))
}

// MessagePreview applies equality check predicate on the "message_preview" field. It's identical to MessagePreviewEQ.
func MessagePreview(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldEQ(FieldMessagePreview, v))
}

// Detail applies equality check predicate on the "detail" field. It's identical to DetailEQ.
func Detail(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldEQ(FieldDetail, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDGT applies the GT predicate on the "workspace_id" field.
func WorkspaceIDGT(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldGT(FieldWorkspaceID, v))
}

// WorkspaceIDGTE applies the GTE predicate on the "workspace_id" field.
func WorkspaceIDGTE(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldGTE(FieldWorkspaceID, v))
}

// WorkspaceIDLT applies the LT predicate on the "workspace_id" field.
func WorkspaceIDLT(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldLT(FieldWorkspaceID, v))
}

// WorkspaceIDLTE applies the LTE predicate on the "workspace_id" field.
func WorkspaceIDLTE(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldLTE(FieldWorkspaceID, v))
}

// WorkspaceIDContains applies the Contains predicate on the "workspace_id" field.
func WorkspaceIDContains(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldContains(FieldWorkspaceID, v))
}

// WorkspaceIDHasPrefix applies the HasPrefix predicate on the "workspace_id" field.
func WorkspaceIDHasPrefix(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldHasPrefix(FieldWorkspaceID, v))
}

// WorkspaceIDHasSuffix applies the HasSuffix predicate on the "workspace_id" field.
func WorkspaceIDHasSuffix(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldHasSuffix(FieldWorkspaceID, v))
}

// WorkspaceIDEqualFold applies the EqualFold predicate on the "workspace_id" field.
func WorkspaceIDEqualFold(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldEqualFold(FieldWorkspaceID, v))
}

// WorkspaceIDContainsFold applies the ContainsFold predicate on the "workspace_id" field.
func WorkspaceIDContainsFold(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldContainsFold(FieldWorkspaceID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldNotNull(FieldUserID))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldContainsFold(FieldUserID, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v EventType) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v EventType) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...EventType) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...EventType) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldNotIn(FieldEventType, vs...))
}

// MessagePreviewEQ applies the EQ predicate on the "message_preview" field.
func MessagePreviewEQ(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldEQ(FieldMessagePreview, v))
}

// MessagePreviewNEQ applies the NEQ predicate on the "message_preview" field.
func MessagePreviewNEQ(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldNEQ(FieldMessagePreview, v))
}

// MessagePreviewIn applies the In predicate on the "message_preview" field.
func MessagePreviewIn(vs ...string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldIn(FieldMessagePreview, vs...))
}

// MessagePreviewNotIn applies the NotIn predicate on the "message_preview" field.
func MessagePreviewNotIn(vs ...string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldNotIn(FieldMessagePreview, vs...))
}

// MessagePreviewGT applies the GT predicate on the "message_preview" field.
func MessagePreviewGT(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldGT(FieldMessagePreview, v))
}

// MessagePreviewGTE applies the GTE predicate on the "message_preview" field.
func MessagePreviewGTE(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldGTE(FieldMessagePreview, v))
}

// MessagePreviewLT applies the LT predicate on the "message_preview" field.
func MessagePreviewLT(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldLT(FieldMessagePreview, v))
}

// MessagePreviewLTE applies the LTE predicate on the "message_preview" field.
func MessagePreviewLTE(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldLTE(FieldMessagePreview, v))
}

// MessagePreviewContains applies the Contains predicate on the "message_preview" field.
func MessagePreviewContains(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldContains(FieldMessagePreview, v))
}

// MessagePreviewHasPrefix applies the HasPrefix predicate on the "message_preview" field.
func MessagePreviewHasPrefix(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldHasPrefix(FieldMessagePreview, v))
}

// MessagePreviewHasSuffix applies the HasSuffix predicate on the "message_preview" field.
func MessagePreviewHasSuffix(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldHasSuffix(FieldMessagePreview, v))
}

// MessagePreviewEqualFold applies the EqualFold predicate on the "message_preview" field.
func MessagePreviewEqualFold(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldEqualFold(FieldMessagePreview, v))
}

// MessagePreviewContainsFold applies the ContainsFold predicate on the "message_preview" field.
func MessagePreviewContainsFold(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldContainsFold(FieldMessagePreview, v))
}

// DetailEQ applies the EQ predicate on the "detail" field.
func DetailEQ(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldEQ(FieldDetail, v))
}

// DetailNEQ applies the NEQ predicate on the "detail" field.
func DetailNEQ(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldNEQ(FieldDetail, v))
}

// DetailIn applies the In predicate on the "detail" field.
func DetailIn(vs ...string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldIn(FieldDetail, vs...))
}

// DetailNotIn applies the NotIn predicate on the "detail" field.
func DetailNotIn(vs ...string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldNotIn(FieldDetail, vs...))
}

// DetailGT applies the GT predicate on the "detail" field.
func DetailGT(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldGT(FieldDetail, v))
}

// DetailGTE applies the GTE predicate on the "detail" field.
func DetailGTE(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldGTE(FieldDetail, v))
}

// DetailLT applies the LT predicate on the "detail" field.
func DetailLT(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldLT(FieldDetail, v))
}

// DetailLTE applies the LTE predicate on the "detail" field.
func DetailLTE(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldLTE(FieldDetail, v))
}

// DetailContains applies the Contains predicate on the "detail" field.
func DetailContains(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldContains(FieldDetail, v))
}

// DetailHasPrefix applies the HasPrefix predicate on the "detail" field.
func DetailHasPrefix(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldHasPrefix(FieldDetail, v))
}

// DetailHasSuffix applies the HasSuffix predicate on the "detail" field.
func DetailHasSuffix(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldHasSuffix(FieldDetail, v))
}

// DetailIsNil applies the IsNil predicate on the "detail" field.
func DetailIsNil() predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldIsNull(FieldDetail))
}

// DetailNotNil applies the NotNil predicate on the "detail" field.
func DetailNotNil() predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldNotNull(FieldDetail))
}

// DetailEqualFold applies the EqualFold predicate on the "detail" field.
func DetailEqualFold(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldEqualFold(FieldDetail, v))
}

// DetailContainsFold applies the ContainsFold predicate on the "detail" field.
func DetailContainsFold(v string) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldContainsFold(FieldDetail, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SecurityEvent) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SecurityEvent) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SecurityEvent) predicate.SecurityEvent {
	return predicate.SecurityEvent(sql.NotPredicates(p))
}
