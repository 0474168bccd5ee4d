// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/prefrontal-labs/mindly-app/ent/tutorsession"
	"github.com/prefrontal-labs/mindly-app/internal/tutor"
)

// TutorSession is the model entity for the TutorSession schema.
type TutorSession struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Owner of this session state
	UserID string `json:"user_id,omitempty"`
	// Exam the student is preparing for
	ExamDomain string `json:"exam_domain,omitempty"`
	// Serialized student model: mastery map, streaks, pending question
	State *tutor.StudentState `json:"state,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last turn that touched this state
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TutorSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tutorsession.FieldState:
			values[i] = new([]byte)
		case tutorsession.FieldID:
			values[i] = new(sql.NullInt64)
		case tutorsession.FieldUserID, tutorsession.FieldExamDomain:
			values[i] = new(sql.NullString)
		case tutorsession.FieldCreatedAt, tutorsession.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TutorSession fields.
func (_m *TutorSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tutorsession.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case tutorsession.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case tutorsession.FieldExamDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field exam_domain", values[i])
			} else if value.Valid {
				_m.ExamDomain = value.String
			}
		case tutorsession.FieldState:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.State); err != nil {
					return fmt.Errorf("unmarshal field state: %w", err)
				}
			}
		case tutorsession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case tutorsession.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TutorSession.
// This includes values selected through modifiers, order, etc.
func (_m *TutorSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TutorSession.
// Note that you need to call TutorSession.Unwrap() before calling this method if this TutorSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TutorSession) Update() *TutorSessionUpdateOne {
	return NewTutorSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TutorSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TutorSession) Unwrap() *TutorSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TutorSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TutorSession) String() string {
	var builder strings.Builder
	builder.WriteString("TutorSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("exam_domain=")
	builder.WriteString(_m.ExamDomain)
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TutorSessions is a parsable slice of TutorSession.
type TutorSessions []*TutorSession
