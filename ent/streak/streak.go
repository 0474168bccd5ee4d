// Code generated by ent, DO NOT EDIT.

package streak

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the streak type in the database.
	Label = "streak"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldCurrent holds the string denoting the current field in the database.
	FieldCurrent = "current"
	// FieldLongest holds the string denoting the longest field in the database.
	FieldLongest = "longest"
	// FieldLastActiveDate holds the string denoting the last_active_date field in the database.
	FieldLastActiveDate = "last_active_date"
	// Table holds the table name of the streak in the database.
	Table = "streaks"
)

// Columns holds all SQL columns for streak fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldCurrent,
	FieldLongest,
	FieldLastActiveDate,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCurrent holds the default value on creation for the "current" field.
	DefaultCurrent int
	// DefaultLongest holds the default value on creation for the "longest" field.
	DefaultLongest int
	// DefaultLastActiveDate holds the default value on creation for the "last_active_date" field.
	DefaultLastActiveDate string
)

// OrderOption defines the ordering options for the Streak queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByCurrent orders the results by the current field.
func ByCurrent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrent, opts...).ToFunc()
}

// ByLongest orders the results by the longest field.
func ByLongest(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLongest, opts...).ToFunc()
}

// ByLastActiveDate orders the results by the last_active_date field.
func ByLastActiveDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActiveDate, opts...).ToFunc()
}
