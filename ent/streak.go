// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/prefrontal-labs/mindly-app/ent/streak"
)

// Streak is the model entity for the Streak schema.
type Streak struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Current holds the value of the "current" field.
	Current int `json:"current,omitempty"`
	// Longest holds the value of the "longest" field.
	Longest int `json:"longest,omitempty"`
	// Local calendar date of last activity, YYYY-MM-DD
	LastActiveDate string `json:"last_active_date,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Streak) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case streak.FieldID, streak.FieldCurrent, streak.FieldLongest:
			values[i] = new(sql.NullInt64)
		case streak.FieldUserID, streak.FieldLastActiveDate:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Streak fields.
func (_m *Streak) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case streak.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case streak.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case streak.FieldCurrent:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current", values[i])
			} else if value.Valid {
				_m.Current = int(value.Int64)
			}
		case streak.FieldLongest:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field longest", values[i])
			} else if value.Valid {
				_m.Longest = int(value.Int64)
			}
		case streak.FieldLastActiveDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_active_date", values[i])
			} else if value.Valid {
				_m.LastActiveDate = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Streak.
// This includes values selected through modifiers, order, etc.
func (_m *Streak) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Streak.
// Note that you need to call Streak.Unwrap() before calling this method if this Streak
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Streak) Update() *StreakUpdateOne {
	return NewStreakClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Streak entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Streak) Unwrap() *Streak {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Streak is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Streak) String() string {
	var builder strings.Builder
	builder.WriteString("Streak(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("current=")
	builder.WriteString(fmt.Sprintf("%v", _m.Current))
	builder.WriteString(", ")
	builder.WriteString("longest=")
	builder.WriteString(fmt.Sprintf("%v", _m.Longest))
	builder.WriteString(", ")
	builder.WriteString("last_active_date=")
	builder.WriteString(_m.LastActiveDate)
	builder.WriteByte(')')
	return builder.String()
}

// Streaks is a parsable slice of Streak.
type Streaks []*Streak
