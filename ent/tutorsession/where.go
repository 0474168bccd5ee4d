// Code generated by ent, DO NOT EDIT.

package tutorsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/prefrontal-labs/mindly-app/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldEQ(FieldUserID, v))
}

// ExamDomain applies equality check predicate on the "exam_domain" field. It's identical to ExamDomainEQ.
func ExamDomain(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldEQ(FieldExamDomain, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldContainsFold(FieldUserID, v))
}

// ExamDomainEQ applies the EQ predicate on the "exam_domain" field.
func ExamDomainEQ(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldEQ(FieldExamDomain, v))
}

// ExamDomainNEQ applies the NEQ predicate on the "exam_domain" field.
func ExamDomainNEQ(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldNEQ(FieldExamDomain, v))
}

// ExamDomainIn applies the In predicate on the "exam_domain" field.
func ExamDomainIn(vs ...string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldIn(FieldExamDomain, vs...))
}

// ExamDomainNotIn applies the NotIn predicate on the "exam_domain" field.
func ExamDomainNotIn(vs ...string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldNotIn(FieldExamDomain, vs...))
}

// ExamDomainGT applies the GT predicate on the "exam_domain" field.
func ExamDomainGT(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldGT(FieldExamDomain, v))
}

// ExamDomainGTE applies the GTE predicate on the "exam_domain" field.
func ExamDomainGTE(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldGTE(FieldExamDomain, v))
}

// ExamDomainLT applies the LT predicate on the "exam_domain" field.
func ExamDomainLT(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldLT(FieldExamDomain, v))
}

// ExamDomainLTE applies the LTE predicate on the "exam_domain" field.
func ExamDomainLTE(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldLTE(FieldExamDomain, v))
}

// ExamDomainContains applies the Contains predicate on the "exam_domain" field.
func ExamDomainContains(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldContains(FieldExamDomain, v))
}

// ExamDomainHasPrefix applies the HasPrefix predicate on the "exam_domain" field.
func ExamDomainHasPrefix(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldHasPrefix(FieldExamDomain, v))
}

// ExamDomainHasSuffix applies the HasSuffix predicate on the "exam_domain" field.
func ExamDomainHasSuffix(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldHasSuffix(FieldExamDomain, v))
}

// ExamDomainEqualFold applies the EqualFold predicate on the "exam_domain" field.
func ExamDomainEqualFold(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldEqualFold(FieldExamDomain, v))
}

// ExamDomainContainsFold applies the ContainsFold predicate on the "exam_domain" field.
func ExamDomainContainsFold(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldContainsFold(FieldExamDomain, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TutorSession) predicate.TutorSession {
	return predicate.TutorSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TutorSession) predicate.TutorSession {
	return predicate.TutorSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TutorSession) predicate.TutorSession {
	return predicate.TutorSession(sql.NotPredicates(p))
}
