// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prefrontal-labs/mindly-app/ent/predicate"
	"github.com/prefrontal-labs/mindly-app/ent/streak"
)

// StreakUpdate is the builder for updating Streak entities.
type StreakUpdate struct {
	config
	hooks    []Hook
	mutation *StreakMutation
}

// Where appends a list predicates to the StreakUpdate builder.
func (_u *StreakUpdate) Where(ps ...predicate.Streak) *StreakUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCurrent sets the "current" field.
func (_u *StreakUpdate) SetCurrent(v int) *StreakUpdate {
	_u.mutation.ResetCurrent()
	_u.mutation.SetCurrent(v)
	return _u
}

// SetNillableCurrent sets the "current" field if the given value is not nil.
func (_u *StreakUpdate) SetNillableCurrent(v *int) *StreakUpdate {
	if v != nil {
		_u.SetCurrent(*v)
	}
	return _u
}

// AddCurrent adds value to the "current" field.
func (_u *StreakUpdate) AddCurrent(v int) *StreakUpdate {
	_u.mutation.AddCurrent(v)
	return _u
}

// SetLongest sets the "longest" field.
func (_u *StreakUpdate) SetLongest(v int) *StreakUpdate {
	_u.mutation.ResetLongest()
	_u.mutation.SetLongest(v)
	return _u
}

// SetNillableLongest sets the "longest" field if the given value is not nil.
func (_u *StreakUpdate) SetNillableLongest(v *int) *StreakUpdate {
	if v != nil {
		_u.SetLongest(*v)
	}
	return _u
}

// AddLongest adds value to the "longest" field.
func (_u *StreakUpdate) AddLongest(v int) *StreakUpdate {
	_u.mutation.AddLongest(v)
	return _u
}

// SetLastActiveDate sets the "last_active_date" field.
func (_u *StreakUpdate) SetLastActiveDate(v string) *StreakUpdate {
	_u.mutation.SetLastActiveDate(v)
	return _u
}

// SetNillableLastActiveDate sets the "last_active_date" field if the given value is not nil.
func (_u *StreakUpdate) SetNillableLastActiveDate(v *string) *StreakUpdate {
	if v != nil {
		_u.SetLastActiveDate(*v)
	}
	return _u
}

// Mutation returns the StreakMutation object of the builder.
func (_u *StreakUpdate) Mutation() *StreakMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StreakUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StreakUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StreakUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StreakUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *StreakUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(streak.Table, streak.Columns, sqlgraph.NewFieldSpec(streak.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Current(); ok {
		_spec.SetField(streak.FieldCurrent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrent(); ok {
		_spec.AddField(streak.FieldCurrent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Longest(); ok {
		_spec.SetField(streak.FieldLongest, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLongest(); ok {
		_spec.AddField(streak.FieldLongest, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastActiveDate(); ok {
		_spec.SetField(streak.FieldLastActiveDate, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{streak.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StreakUpdateOne is the builder for updating a single Streak entity.
type StreakUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StreakMutation
}

// SetCurrent sets the "current" field.
func (_u *StreakUpdateOne) SetCurrent(v int) *StreakUpdateOne {
	_u.mutation.ResetCurrent()
	_u.mutation.SetCurrent(v)
	return _u
}

// SetNillableCurrent sets the "current" field if the given value is not nil.
func (_u *StreakUpdateOne) SetNillableCurrent(v *int) *StreakUpdateOne {
	if v != nil {
		_u.SetCurrent(*v)
	}
	return _u
}

// AddCurrent adds value to the "current" field.
func (_u *StreakUpdateOne) AddCurrent(v int) *StreakUpdateOne {
	_u.mutation.AddCurrent(v)
	return _u
}

// SetLongest sets the "longest" field.
func (_u *StreakUpdateOne) SetLongest(v int) *StreakUpdateOne {
	_u.mutation.ResetLongest()
	_u.mutation.SetLongest(v)
	return _u
}

// SetNillableLongest sets the "longest" field if the given value is not nil.
func (_u *StreakUpdateOne) SetNillableLongest(v *int) *StreakUpdateOne {
	if v != nil {
		_u.SetLongest(*v)
	}
	return _u
}

// AddLongest adds value to the "longest" field.
func (_u *StreakUpdateOne) AddLongest(v int) *StreakUpdateOne {
	_u.mutation.AddLongest(v)
	return _u
}

// SetLastActiveDate sets the "last_active_date" field.
func (_u *StreakUpdateOne) SetLastActiveDate(v string) *StreakUpdateOne {
	_u.mutation.SetLastActiveDate(v)
	return _u
}

// SetNillableLastActiveDate sets the "last_active_date" field if the given value is not nil.
func (_u *StreakUpdateOne) SetNillableLastActiveDate(v *string) *StreakUpdateOne {
	if v != nil {
		_u.SetLastActiveDate(*v)
	}
	return _u
}

// Mutation returns the StreakMutation object of the builder.
func (_u *StreakUpdateOne) Mutation() *StreakMutation {
	return _u.mutation
}

// Where appends a list predicates to the StreakUpdate builder.
func (_u *StreakUpdateOne) Where(ps ...predicate.Streak) *StreakUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StreakUpdateOne) Select(field string, fields ...string) *StreakUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Streak entity.
func (_u *StreakUpdateOne) Save(ctx context.Context) (*Streak, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StreakUpdateOne) SaveX(ctx context.Context) *Streak {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StreakUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StreakUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *StreakUpdateOne) sqlSave(ctx context.Context) (_node *Streak, err error) {
	_spec := sqlgraph.NewUpdateSpec(streak.Table, streak.Columns, sqlgraph.NewFieldSpec(streak.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Streak.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, streak.FieldID)
		for _, f := range fields {
			if !streak.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != streak.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Current(); ok {
		_spec.SetField(streak.FieldCurrent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrent(); ok {
		_spec.AddField(streak.FieldCurrent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Longest(); ok {
		_spec.SetField(streak.FieldLongest, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLongest(); ok {
		_spec.AddField(streak.FieldLongest, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastActiveDate(); ok {
		_spec.SetField(streak.FieldLastActiveDate, field.TypeString, value)
	}
	_node = &Streak{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{streak.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
