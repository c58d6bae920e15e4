// Code generated by ent, DO NOT EDIT.

package chatturn

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/vibemonitor/rca/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldEQ(FieldSessionID, v))
}

// UserMessage applies equality check predicate on the "user_message" field. It's identical to UserMessageEQ.
func UserMessage(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldEQ(FieldUserMessage, v))
}

// FinalResponse applies equality check predicate on the "final_response" field. It's identical to FinalResponseEQ.
func FinalResponse(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldEQ(FieldFinalResponse, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldEQ(FieldUpdatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldContainsFold(FieldSessionID, v))
}

// UserMessageEQ applies the EQ predicate on the "user_message" field.
func UserMessageEQ(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldEQ(FieldUserMessage, v))
}

// UserMessageNEQ applies the NEQ predicate on the "user_message" field.
func UserMessageNEQ(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldNEQ(FieldUserMessage, v))
}

// UserMessageIn applies the In predicate on the "user_message" field.
func UserMessageIn(vs ...string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldIn(FieldUserMessage, vs...))
}

// UserMessageNotIn applies the NotIn predicate on the "user_message" field.
func UserMessageNotIn(vs ...string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldNotIn(FieldUserMessage, vs...))
}

// UserMessageGT applies the GT predicate on the "user_message" field.
func UserMessageGT(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldGT(FieldUserMessage, v))
}

// UserMessageGTE applies the GTE predicate on the "user_message" field.
func UserMessageGTE(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldGTE(FieldUserMessage, v))
}

// UserMessageLT applies the LT predicate on the "user_message" field.
func UserMessageLT(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldLT(FieldUserMessage, v))
}

// UserMessageLTE applies the LTE predicate on the "user_message" field.
func UserMessageLTE(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldLTE(FieldUserMessage, v))
}

// UserMessageContains applies the Contains predicate on the "user_message" field.
func UserMessageContains(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldContains(FieldUserMessage, v))
}

// UserMessageHasPrefix applies the HasPrefix predicate on the "user_message" field.
func UserMessageHasPrefix(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldHasPrefix(FieldUserMessage, v))
}

// UserMessageHasSuffix applies the HasSuffix predicate on the "user_message" field.
func UserMessageHasSuffix(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldHasSuffix(FieldUserMessage, v))
}

// UserMessageEqualFold applies the EqualFold predicate on the "user_message" field.
func UserMessageEqualFold(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldEqualFold(FieldUserMessage, v))
}

// UserMessageContainsFold applies the ContainsFold predicate on the "user_message" field.
func UserMessageContainsFold(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldContainsFold(FieldUserMessage, v))
}

// FinalResponseEQ applies the EQ predicate on the "final_response" field.
func FinalResponseEQ(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldEQ(FieldFinalResponse, v))
}

// FinalResponseNEQ applies the NEQ predicate on the "final_response" field.
func FinalResponseNEQ(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldNEQ(FieldFinalResponse, v))
}

// FinalResponseIn applies the In predicate on the "final_response" field.
func FinalResponseIn(vs ...string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldIn(FieldFinalResponse, vs...))
}

// FinalResponseNotIn applies the NotIn predicate on the "final_response" field.
func FinalResponseNotIn(vs ...string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldNotIn(FieldFinalResponse, vs...))
}

// FinalResponseGT applies the GT predicate on the "final_response" field.
func FinalResponseGT(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldGT(FieldFinalResponse, v))
}

// FinalResponseGTE applies the GTE predicate on the "final_response" field.
func FinalResponseGTE(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldGTE(FieldFinalResponse, v))
}

// FinalResponseLT applies the LT predicate on the "final_response" field.
func FinalResponseLT(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldLT(FieldFinalResponse, v))
}

// FinalResponseLTE applies the LTE predicate on the "final_response" field.
func FinalResponseLTE(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldLTE(FieldFinalResponse, v))
}

// FinalResponseContains applies the Contains predicate on the "final_response" field.
func FinalResponseContains(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldContains(FieldFinalResponse, v))
}

// FinalResponseHasPrefix applies the HasPrefix predicate on the "final_response" field.
func FinalResponseHasPrefix(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldHasPrefix(FieldFinalResponse, v))
}

// FinalResponseHasSuffix applies the HasSuffix predicate on the "final_response" field.
func FinalResponseHasSuffix(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldHasSuffix(FieldFinalResponse, v))
}

// FinalResponseIsNil applies the IsNil predicate on the "final_response" field.
func FinalResponseIsNil() predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldIsNull(FieldFinalResponse))
}

// FinalResponseNotNil applies the NotNil predicate on the "final_response" field.
func FinalResponseNotNil() predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldNotNull(FieldFinalResponse))
}

// FinalResponseEqualFold applies the EqualFold predicate on the "final_response" field.
func FinalResponseEqualFold(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldEqualFold(FieldFinalResponse, v))
}

// FinalResponseContainsFold applies the ContainsFold predicate on the "final_response" field.
func FinalResponseContainsFold(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldContainsFold(FieldFinalResponse, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldNotIn(FieldStatus, vs...))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ChatTurn {
	return predicate.ChatTurn(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.ChatTurn {
	return predicate.ChatTurn(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.ChatSession) predicate.ChatTurn {
	return predicate.ChatTurn(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSteps applies the HasEdge predicate on the "steps" edge.
func HasSteps() predicate.ChatTurn {
	return predicate.ChatTurn(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStepsWith applies the HasEdge predicate on the "steps" edge with a given conditions (other predicates).
func HasStepsWith(preds ...predicate.TurnStep) predicate.ChatTurn {
	return predicate.ChatTurn(func(s *sql.Selector) {
		step := newStepsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.ChatTurn {
	return predicate.ChatTurn(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.Job) predicate.ChatTurn {
	return predicate.ChatTurn(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFeedback applies the HasEdge predicate on the "feedback" edge.
func HasFeedback() predicate.ChatTurn {
	return predicate.ChatTurn(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FeedbackTable, FeedbackColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFeedbackWith applies the HasEdge predicate on the "feedback" edge with a given conditions (other predicates).
func HasFeedbackWith(preds ...predicate.TurnFeedback) predicate.ChatTurn {
	return predicate.ChatTurn(func(s *sql.Selector) {
		step := newFeedbackStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasComments applies the HasEdge predicate on the "comments" edge.
func HasComments() predicate.ChatTurn {
	return predicate.ChatTurn(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CommentsTable, CommentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCommentsWith applies the HasEdge predicate on the "comments" edge with a given conditions (other predicates).
func HasCommentsWith(preds ...predicate.TurnComment) predicate.ChatTurn {
	return predicate.ChatTurn(func(s *sql.Selector) {
		step := newCommentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ChatTurn) predicate.ChatTurn {
	return predicate.ChatTurn(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ChatTurn) predicate.ChatTurn {
	return predicate.ChatTurn(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ChatTurn) predicate.ChatTurn {
	return predicate.ChatTurn(sql.NotPredicates(p))
}
