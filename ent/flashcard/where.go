// Code generated by ent, DO NOT EDIT.

package flashcard

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/prefrontal-labs/mindly-app/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldUserID, v))
}

// Concept applies equality check predicate on the "concept" field. It's identical to ConceptEQ.
func Concept(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldConcept, v))
}

// Front applies equality check predicate on the "front" field. It's identical to FrontEQ.
func Front(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldFront, v))
}

// Back applies equality check predicate on the "back" field. It's identical to BackEQ.
func Back(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldBack, v))
}

// EaseFactor applies equality check predicate on the "ease_factor" field. It's identical to EaseFactorEQ.
func EaseFactor(v float64) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldEaseFactor, v))
}

// IntervalDays applies equality check predicate on the "interval_days" field. It's identical to IntervalDaysEQ.
func IntervalDays(v int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldIntervalDays, v))
}

// Repetitions applies equality check predicate on the "repetitions" field. It's identical to RepetitionsEQ.
func Repetitions(v int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldRepetitions, v))
}

// DueAt applies equality check predicate on the "due_at" field. It's identical to DueAtEQ.
func DueAt(v time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldDueAt, v))
}

// LastReviewedAt applies equality check predicate on the "last_reviewed_at" field. It's identical to LastReviewedAtEQ.
func LastReviewedAt(v time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldLastReviewedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldContainsFold(FieldUserID, v))
}

// ConceptEQ applies the EQ predicate on the "concept" field.
func ConceptEQ(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldConcept, v))
}

// ConceptNEQ applies the NEQ predicate on the "concept" field.
func ConceptNEQ(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNEQ(FieldConcept, v))
}

// ConceptIn applies the In predicate on the "concept" field.
func ConceptIn(vs ...string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldIn(FieldConcept, vs...))
}

// ConceptNotIn applies the NotIn predicate on the "concept" field.
func ConceptNotIn(vs ...string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNotIn(FieldConcept, vs...))
}

// ConceptGT applies the GT predicate on the "concept" field.
func ConceptGT(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGT(FieldConcept, v))
}

// ConceptGTE applies the GTE predicate on the "concept" field.
func ConceptGTE(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGTE(FieldConcept, v))
}

// ConceptLT applies the LT predicate on the "concept" field.
func ConceptLT(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLT(FieldConcept, v))
}

// ConceptLTE applies the LTE predicate on the "concept" field.
func ConceptLTE(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLTE(FieldConcept, v))
}

// ConceptContains applies the Contains predicate on the "concept" field.
func ConceptContains(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldContains(FieldConcept, v))
}

// ConceptHasPrefix applies the HasPrefix predicate on the "concept" field.
func ConceptHasPrefix(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldHasPrefix(FieldConcept, v))
}

// ConceptHasSuffix applies the HasSuffix predicate on the "concept" field.
func ConceptHasSuffix(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldHasSuffix(FieldConcept, v))
}

// ConceptEqualFold applies the EqualFold predicate on the "concept" field.
func ConceptEqualFold(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEqualFold(FieldConcept, v))
}

// ConceptContainsFold applies the ContainsFold predicate on the "concept" field.
func ConceptContainsFold(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldContainsFold(FieldConcept, v))
}

// FrontEQ applies the EQ predicate on the "front" field.
func FrontEQ(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldFront, v))
}

// FrontNEQ applies the NEQ predicate on the "front" field.
func FrontNEQ(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNEQ(FieldFront, v))
}

// FrontIn applies the In predicate on the "front" field.
func FrontIn(vs ...string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldIn(FieldFront, vs...))
}

// FrontNotIn applies the NotIn predicate on the "front" field.
func FrontNotIn(vs ...string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNotIn(FieldFront, vs...))
}

// FrontGT applies the GT predicate on the "front" field.
func FrontGT(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGT(FieldFront, v))
}

// FrontGTE applies the GTE predicate on the "front" field.
func FrontGTE(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGTE(FieldFront, v))
}

// FrontLT applies the LT predicate on the "front" field.
func FrontLT(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLT(FieldFront, v))
}

// FrontLTE applies the LTE predicate on the "front" field.
func FrontLTE(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLTE(FieldFront, v))
}

// FrontContains applies the Contains predicate on the "front" field.
func FrontContains(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldContains(FieldFront, v))
}

// FrontHasPrefix applies the HasPrefix predicate on the "front" field.
func FrontHasPrefix(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldHasPrefix(FieldFront, v))
}

// FrontHasSuffix applies the HasSuffix predicate on the "front" field.
func FrontHasSuffix(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldHasSuffix(FieldFront, v))
}

// FrontEqualFold applies the EqualFold predicate on the "front" field.
func FrontEqualFold(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEqualFold(FieldFront, v))
}

// FrontContainsFold applies the ContainsFold predicate on the "front" field.
func FrontContainsFold(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldContainsFold(FieldFront, v))
}

// BackEQ applies the EQ predicate on the "back" field.
func BackEQ(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldBack, v))
}

// BackNEQ applies the NEQ predicate on the "back" field.
func BackNEQ(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNEQ(FieldBack, v))
}

// BackIn applies the In predicate on the "back" field.
func BackIn(vs ...string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldIn(FieldBack, vs...))
}

// BackNotIn applies the NotIn predicate on the "back" field.
func BackNotIn(vs ...string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNotIn(FieldBack, vs...))
}

// BackGT applies the GT predicate on the "back" field.
func BackGT(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGT(FieldBack, v))
}

// BackGTE applies the GTE predicate on the "back" field.
func BackGTE(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGTE(FieldBack, v))
}

// BackLT applies the LT predicate on the "back" field.
func BackLT(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLT(FieldBack, v))
}

// BackLTE applies the LTE predicate on the "back" field.
func BackLTE(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLTE(FieldBack, v))
}

// BackContains applies the Contains predicate on the "back" field.
func BackContains(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldContains(FieldBack, v))
}

// BackHasPrefix applies the HasPrefix predicate on the "back" field.
func BackHasPrefix(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldHasPrefix(FieldBack, v))
}

// BackHasSuffix applies the HasSuffix predicate on the "back" field.
func BackHasSuffix(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldHasSuffix(FieldBack, v))
}

// BackEqualFold applies the EqualFold predicate on the "back" field.
func BackEqualFold(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEqualFold(FieldBack, v))
}

// BackContainsFold applies the ContainsFold predicate on the "back" field.
func BackContainsFold(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldContainsFold(FieldBack, v))
}

// EaseFactorEQ applies the EQ predicate on the "ease_factor" field.
func EaseFactorEQ(v float64) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldEaseFactor, v))
}

// EaseFactorNEQ applies the NEQ predicate on the "ease_factor" field.
func EaseFactorNEQ(v float64) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNEQ(FieldEaseFactor, v))
}

// EaseFactorIn applies the In predicate on the "ease_factor" field.
func EaseFactorIn(vs ...float64) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldIn(FieldEaseFactor, vs...))
}

// EaseFactorNotIn applies the NotIn predicate on the "ease_factor" field.
func EaseFactorNotIn(vs ...float64) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNotIn(FieldEaseFactor, vs...))
}

// EaseFactorGT applies the GT predicate on the "ease_factor" field.
func EaseFactorGT(v float64) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGT(FieldEaseFactor, v))
}

// EaseFactorGTE applies the GTE predicate on the "ease_factor" field.
func EaseFactorGTE(v float64) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGTE(FieldEaseFactor, v))
}

// EaseFactorLT applies the LT predicate on the "ease_factor" field.
func EaseFactorLT(v float64) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLT(FieldEaseFactor, v))
}

// EaseFactorLTE applies the LTE predicate on the "ease_factor" field.
func EaseFactorLTE(v float64) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLTE(FieldEaseFactor, v))
}

// IntervalDaysEQ applies the EQ predicate on the "interval_days" field.
func IntervalDaysEQ(v int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldIntervalDays, v))
}

// IntervalDaysNEQ applies the NEQ predicate on the "interval_days" field.
func IntervalDaysNEQ(v int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNEQ(FieldIntervalDays, v))
}

// IntervalDaysIn applies the In predicate on the "interval_days" field.
func IntervalDaysIn(vs ...int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldIn(FieldIntervalDays, vs...))
}

// IntervalDaysNotIn applies the NotIn predicate on the "interval_days" field.
func IntervalDaysNotIn(vs ...int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNotIn(FieldIntervalDays, vs...))
}

// IntervalDaysGT applies the GT predicate on the "interval_days" field.
func IntervalDaysGT(v int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGT(FieldIntervalDays, v))
}

// IntervalDaysGTE applies the GTE predicate on the "interval_days" field.
func IntervalDaysGTE(v int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGTE(FieldIntervalDays, v))
}

// IntervalDaysLT applies the LT predicate on the "interval_days" field.
func IntervalDaysLT(v int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLT(FieldIntervalDays, v))
}

// IntervalDaysLTE applies the LTE predicate on the "interval_days" field.
func IntervalDaysLTE(v int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLTE(FieldIntervalDays, v))
}

// RepetitionsEQ applies the EQ predicate on the "repetitions" field.
func RepetitionsEQ(v int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldRepetitions, v))
}

// RepetitionsNEQ applies the NEQ predicate on the "repetitions" field.
func RepetitionsNEQ(v int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNEQ(FieldRepetitions, v))
}

// RepetitionsIn applies the In predicate on the "repetitions" field.
func RepetitionsIn(vs ...int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldIn(FieldRepetitions, vs...))
}

// RepetitionsNotIn applies the NotIn predicate on the "repetitions" field.
func RepetitionsNotIn(vs ...int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNotIn(FieldRepetitions, vs...))
}

// RepetitionsGT applies the GT predicate on the "repetitions" field.
func RepetitionsGT(v int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGT(FieldRepetitions, v))
}

// RepetitionsGTE applies the GTE predicate on the "repetitions" field.
func RepetitionsGTE(v int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGTE(FieldRepetitions, v))
}

// RepetitionsLT applies the LT predicate on the "repetitions" field.
func RepetitionsLT(v int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLT(FieldRepetitions, v))
}

// RepetitionsLTE applies the LTE predicate on the "repetitions" field.
func RepetitionsLTE(v int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLTE(FieldRepetitions, v))
}

// DueAtEQ applies the EQ predicate on the "due_at" field.
func DueAtEQ(v time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldDueAt, v))
}

// DueAtNEQ applies the NEQ predicate on the "due_at" field.
func DueAtNEQ(v time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNEQ(FieldDueAt, v))
}

// DueAtIn applies the In predicate on the "due_at" field.
func DueAtIn(vs ...time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldIn(FieldDueAt, vs...))
}

// DueAtNotIn applies the NotIn predicate on the "due_at" field.
func DueAtNotIn(vs ...time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNotIn(FieldDueAt, vs...))
}

// DueAtGT applies the GT predicate on the "due_at" field.
func DueAtGT(v time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGT(FieldDueAt, v))
}

// DueAtGTE applies the GTE predicate on the "due_at" field.
func DueAtGTE(v time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGTE(FieldDueAt, v))
}

// DueAtLT applies the LT predicate on the "due_at" field.
func DueAtLT(v time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLT(FieldDueAt, v))
}

// DueAtLTE applies the LTE predicate on the "due_at" field.
func DueAtLTE(v time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLTE(FieldDueAt, v))
}

// LastReviewedAtEQ applies the EQ predicate on the "last_reviewed_at" field.
func LastReviewedAtEQ(v time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldLastReviewedAt, v))
}

// LastReviewedAtNEQ applies the NEQ predicate on the "last_reviewed_at" field.
func LastReviewedAtNEQ(v time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNEQ(FieldLastReviewedAt, v))
}

// LastReviewedAtIn applies the In predicate on the "last_reviewed_at" field.
func LastReviewedAtIn(vs ...time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldIn(FieldLastReviewedAt, vs...))
}

// LastReviewedAtNotIn applies the NotIn predicate on the "last_reviewed_at" field.
func LastReviewedAtNotIn(vs ...time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNotIn(FieldLastReviewedAt, vs...))
}

// LastReviewedAtGT applies the GT predicate on the "last_reviewed_at" field.
func LastReviewedAtGT(v time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGT(FieldLastReviewedAt, v))
}

// LastReviewedAtGTE applies the GTE predicate on the "last_reviewed_at" field.
func LastReviewedAtGTE(v time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGTE(FieldLastReviewedAt, v))
}

// LastReviewedAtLT applies the LT predicate on the "last_reviewed_at" field.
func LastReviewedAtLT(v time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLT(FieldLastReviewedAt, v))
}

// LastReviewedAtLTE applies the LTE predicate on the "last_reviewed_at" field.
func LastReviewedAtLTE(v time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLTE(FieldLastReviewedAt, v))
}

// LastReviewedAtIsNil applies the IsNil predicate on the "last_reviewed_at" field.
func LastReviewedAtIsNil() predicate.Flashcard {
	return predicate.Flashcard(sql.FieldIsNull(FieldLastReviewedAt))
}

// LastReviewedAtNotNil applies the NotNil predicate on the "last_reviewed_at" field.
func LastReviewedAtNotNil() predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNotNull(FieldLastReviewedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Flashcard) predicate.Flashcard {
	return predicate.Flashcard(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Flashcard) predicate.Flashcard {
	return predicate.Flashcard(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Flashcard) predicate.Flashcard {
	return predicate.Flashcard(sql.NotPredicates(p))
}
