// Code generated by ent, DO NOT EDIT.

package streak

import (
	"entgo.io/ent/dialect/sql"
	"github.com/prefrontal-labs/mindly-app/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Streak {
	return predicate.Streak(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Streak {
	return predicate.Streak(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Streak {
	return predicate.Streak(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Streak {
	return predicate.Streak(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Streak {
	return predicate.Streak(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Streak {
	return predicate.Streak(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Streak {
	return predicate.Streak(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Streak {
	return predicate.Streak(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Streak {
	return predicate.Streak(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Streak {
	return predicate.Streak(sql.FieldEQ(FieldUserID, v))
}

// Current applies equality check predicate on the "current" field. It's identical to CurrentEQ.
func Current(v int) predicate.Streak {
	return predicate.Streak(sql.FieldEQ(FieldCurrent, v))
}

// Longest applies equality check predicate on the "longest" field. It's identical to LongestEQ.
func Longest(v int) predicate.Streak {
	return predicate.Streak(sql.FieldEQ(FieldLongest, v))
}

// LastActiveDate applies equality check predicate on the "last_active_date" field. It's identical to LastActiveDateEQ.
func LastActiveDate(v string) predicate.Streak {
	return predicate.Streak(sql.FieldEQ(FieldLastActiveDate, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Streak {
	return predicate.Streak(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Streak {
	return predicate.Streak(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Streak {
	return predicate.Streak(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Streak {
	return predicate.Streak(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Streak {
	return predicate.Streak(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Streak {
	return predicate.Streak(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Streak {
	return predicate.Streak(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Streak {
	return predicate.Streak(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Streak {
	return predicate.Streak(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Streak {
	return predicate.Streak(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Streak {
	return predicate.Streak(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Streak {
	return predicate.Streak(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Streak {
	return predicate.Streak(sql.FieldContainsFold(FieldUserID, v))
}

// CurrentEQ applies the EQ predicate on the "current" field.
func CurrentEQ(v int) predicate.Streak {
	return predicate.Streak(sql.FieldEQ(FieldCurrent, v))
}

// CurrentNEQ applies the NEQ predicate on the "current" field.
func CurrentNEQ(v int) predicate.Streak {
	return predicate.Streak(sql.FieldNEQ(FieldCurrent, v))
}

// CurrentIn applies the In predicate on the "current" field.
func CurrentIn(vs ...int) predicate.Streak {
	return predicate.Streak(sql.FieldIn(FieldCurrent, vs...))
}

// CurrentNotIn applies the NotIn predicate on the "current" field.
func CurrentNotIn(vs ...int) predicate.Streak {
	return predicate.Streak(sql.FieldNotIn(FieldCurrent, vs...))
}

// CurrentGT applies the GT predicate on the "current" field.
func CurrentGT(v int) predicate.Streak {
	return predicate.Streak(sql.FieldGT(FieldCurrent, v))
}

// CurrentGTE applies the GTE predicate on the "current" field.
func CurrentGTE(v int) predicate.Streak {
	return predicate.Streak(sql.FieldGTE(FieldCurrent, v))
}

// CurrentLT applies the LT predicate on the "current" field.
func CurrentLT(v int) predicate.Streak {
	return predicate.Streak(sql.FieldLT(FieldCurrent, v))
}

// CurrentLTE applies the LTE predicate on the "current" field.
func CurrentLTE(v int) predicate.Streak {
	return predicate.Streak(sql.FieldLTE(FieldCurrent, v))
}

// LongestEQ applies the EQ predicate on the "longest" field.
func LongestEQ(v int) predicate.Streak {
	return predicate.Streak(sql.FieldEQ(FieldLongest, v))
}

// LongestNEQ applies the NEQ predicate on the "longest" field.
func LongestNEQ(v int) predicate.Streak {
	return predicate.Streak(sql.FieldNEQ(FieldLongest, v))
}

// LongestIn applies the In predicate on the "longest" field.
func LongestIn(vs ...int) predicate.Streak {
	return predicate.Streak(sql.FieldIn(FieldLongest, vs...))
}

// LongestNotIn applies the NotIn predicate on the "longest" field.
func LongestNotIn(vs ...int) predicate.Streak {
	return predicate.Streak(sql.FieldNotIn(FieldLongest, vs...))
}

// LongestGT applies the GT predicate on the "longest" field.
func LongestGT(v int) predicate.Streak {
	return predicate.Streak(sql.FieldGT(FieldLongest, v))
}

// LongestGTE applies the GTE predicate on the "longest" field.
func LongestGTE(v int) predicate.Streak {
	return predicate.Streak(sql.FieldGTE(FieldLongest, v))
}

// LongestLT applies the LT predicate on the "longest" field.
func LongestLT(v int) predicate.Streak {
	return predicate.Streak(sql.FieldLT(FieldLongest, v))
}

// LongestLTE applies the LTE predicate on the "longest" field.
func LongestLTE(v int) predicate.Streak {
	return predicate.Streak(sql.FieldLTE(FieldLongest, v))
}

// LastActiveDateEQ applies the EQ predicate on the "last_active_date" field.
func LastActiveDateEQ(v string) predicate.Streak {
	return predicate.Streak(sql.FieldEQ(FieldLastActiveDate, v))
}

// LastActiveDateNEQ applies the NEQ predicate on the "last_active_date" field.
func LastActiveDateNEQ(v string) predicate.Streak {
	return predicate.Streak(sql.FieldNEQ(FieldLastActiveDate, v))
}

// LastActiveDateIn applies the In predicate on the "last_active_date" field.
func LastActiveDateIn(vs ...string) predicate.Streak {
	return predicate.Streak(sql.FieldIn(FieldLastActiveDate, vs...))
}

// LastActiveDateNotIn applies the NotIn predicate on the "last_active_date" field.
func LastActiveDateNotIn(vs ...string) predicate.Streak {
	return predicate.Streak(sql.FieldNotIn(FieldLastActiveDate, vs...))
}

// LastActiveDateGT applies the GT predicate on the "last_active_date" field.
func LastActiveDateGT(v string) predicate.Streak {
	return predicate.Streak(sql.FieldGT(FieldLastActiveDate, v))
}

// LastActiveDateGTE applies the GTE predicate on the "last_active_date" field.
func LastActiveDateGTE(v string) predicate.Streak {
	return predicate.Streak(sql.FieldGTE(FieldLastActiveDate, v))
}

// LastActiveDateLT applies the LT predicate on the "last_active_date" field.
func LastActiveDateLT(v string) predicate.Streak {
	return predicate.Streak(sql.FieldLT(FieldLastActiveDate, v))
}

// LastActiveDateLTE applies the LTE predicate on the "last_active_date" field.
func LastActiveDateLTE(v string) predicate.Streak {
	return predicate.Streak(sql.FieldLTE(FieldLastActiveDate, v))
}

// LastActiveDateContains applies the Contains predicate on the "last_active_date" field.
func LastActiveDateContains(v string) predicate.Streak {
	return predicate.Streak(sql.FieldContains(FieldLastActiveDate, v))
}

// LastActiveDateHasPrefix applies the HasPrefix predicate on the "last_active_date" field.
func LastActiveDateHasPrefix(v string) predicate.Streak {
	return predicate.Streak(sql.FieldHasPrefix(FieldLastActiveDate, v))
}

// LastActiveDateHasSuffix applies the HasSuffix predicate on the "last_active_date" field.
func LastActiveDateHasSuffix(v string) predicate.Streak {
	return predicate.Streak(sql.FieldHasSuffix(FieldLastActiveDate, v))
}

// LastActiveDateEqualFold applies the EqualFold predicate on the "last_active_date" field.
func LastActiveDateEqualFold(v string) predicate.Streak {
	return predicate.Streak(sql.FieldEqualFold(FieldLastActiveDate, v))
}

// LastActiveDateContainsFold applies the ContainsFold predicate on the "last_active_date" field.
func LastActiveDateContainsFold(v string) predicate.Streak {
	return predicate.Streak(sql.FieldContainsFold(FieldLastActiveDate, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Streak) predicate.Streak {
	return predicate.Streak(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Streak) predicate.Streak {
	return predicate.Streak(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Streak) predicate.Streak {
	return predicate.Streak(sql.NotPredicates(p))
}
