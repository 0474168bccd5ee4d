// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prefrontal-labs/mindly-app/ent/streak"
)

// StreakCreate is the builder for creating a Streak entity.
type StreakCreate struct {
	config
	mutation *StreakMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *StreakCreate) SetUserID(v string) *StreakCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCurrent sets the "current" field.
func (_c *StreakCreate) SetCurrent(v int) *StreakCreate {
	_c.mutation.SetCurrent(v)
	return _c
}

// SetNillableCurrent sets the "current" field if the given value is not nil.
func (_c *StreakCreate) SetNillableCurrent(v *int) *StreakCreate {
	if v != nil {
		_c.SetCurrent(*v)
	}
	return _c
}

// SetLongest sets the "longest" field.
func (_c *StreakCreate) SetLongest(v int) *StreakCreate {
	_c.mutation.SetLongest(v)
	return _c
}

// SetNillableLongest sets the "longest" field if the given value is not nil.
func (_c *StreakCreate) SetNillableLongest(v *int) *StreakCreate {
	if v != nil {
		_c.SetLongest(*v)
	}
	return _c
}

// SetLastActiveDate sets the "last_active_date" field.
func (_c *StreakCreate) SetLastActiveDate(v string) *StreakCreate {
	_c.mutation.SetLastActiveDate(v)
	return _c
}

// SetNillableLastActiveDate sets the "last_active_date" field if the given value is not nil.
func (_c *StreakCreate) SetNillableLastActiveDate(v *string) *StreakCreate {
	if v != nil {
		_c.SetLastActiveDate(*v)
	}
	return _c
}

// Mutation returns the StreakMutation object of the builder.
func (_c *StreakCreate) Mutation() *StreakMutation {
	return _c.mutation
}

// Save creates the Streak in the database.
func (_c *StreakCreate) Save(ctx context.Context) (*Streak, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StreakCreate) SaveX(ctx context.Context) *Streak {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StreakCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StreakCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StreakCreate) defaults() {
	if _, ok := _c.mutation.Current(); !ok {
		v := streak.DefaultCurrent
		_c.mutation.SetCurrent(v)
	}
	if _, ok := _c.mutation.Longest(); !ok {
		v := streak.DefaultLongest
		_c.mutation.SetLongest(v)
	}
	if _, ok := _c.mutation.LastActiveDate(); !ok {
		v := streak.DefaultLastActiveDate
		_c.mutation.SetLastActiveDate(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StreakCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Streak.user_id"`)}
	}
	if _, ok := _c.mutation.Current(); !ok {
		return &ValidationError{Name: "current", err: errors.New(`ent: missing required field "Streak.current"`)}
	}
	if _, ok := _c.mutation.Longest(); !ok {
		return &ValidationError{Name: "longest", err: errors.New(`ent: missing required field "Streak.longest"`)}
	}
	if _, ok := _c.mutation.LastActiveDate(); !ok {
		return &ValidationError{Name: "last_active_date", err: errors.New(`ent: missing required field "Streak.last_active_date"`)}
	}
	return nil
}

func (_c *StreakCreate) sqlSave(ctx context.Context) (*Streak, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StreakCreate) createSpec() (*Streak, *sqlgraph.CreateSpec) {
	var (
		_node = &Streak{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(streak.Table, sqlgraph.NewFieldSpec(streak.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(streak.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Current(); ok {
		_spec.SetField(streak.FieldCurrent, field.TypeInt, value)
		_node.Current = value
	}
	if value, ok := _c.mutation.Longest(); ok {
		_spec.SetField(streak.FieldLongest, field.TypeInt, value)
		_node.Longest = value
	}
	if value, ok := _c.mutation.LastActiveDate(); ok {
		_spec.SetField(streak.FieldLastActiveDate, field.TypeString, value)
		_node.LastActiveDate = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Streak.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StreakUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *StreakCreate) OnConflict(opts ...sql.ConflictOption) *StreakUpsertOne {
	_c.conflict = opts
	return &StreakUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Streak.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StreakCreate) OnConflictColumns(columns ...string) *StreakUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StreakUpsertOne{
		create: _c,
	}
}

type (
	// StreakUpsertOne is the builder for "upsert"-ing
	//  one Streak node.
	StreakUpsertOne struct {
		create *StreakCreate
	}

	// StreakUpsert is the "OnConflict" setter.
	StreakUpsert struct {
		*sql.UpdateSet
	}
)

// SetCurrent sets the "current" field.
func (u *StreakUpsert) SetCurrent(v int) *StreakUpsert {
	u.Set(streak.FieldCurrent, v)
	return u
}

// UpdateCurrent sets the "current" field to the value that was provided on create.
func (u *StreakUpsert) UpdateCurrent() *StreakUpsert {
	u.SetExcluded(streak.FieldCurrent)
	return u
}

// AddCurrent adds v to the "current" field.
func (u *StreakUpsert) AddCurrent(v int) *StreakUpsert {
	u.Add(streak.FieldCurrent, v)
	return u
}

// SetLongest sets the "longest" field.
func (u *StreakUpsert) SetLongest(v int) *StreakUpsert {
	u.Set(streak.FieldLongest, v)
	return u
}

// UpdateLongest sets the "longest" field to the value that was provided on create.
func (u *StreakUpsert) UpdateLongest() *StreakUpsert {
	u.SetExcluded(streak.FieldLongest)
	return u
}

// AddLongest adds v to the "longest" field.
func (u *StreakUpsert) AddLongest(v int) *StreakUpsert {
	u.Add(streak.FieldLongest, v)
	return u
}

// SetLastActiveDate sets the "last_active_date" field.
func (u *StreakUpsert) SetLastActiveDate(v string) *StreakUpsert {
	u.Set(streak.FieldLastActiveDate, v)
	return u
}

// UpdateLastActiveDate sets the "last_active_date" field to the value that was provided on create.
func (u *StreakUpsert) UpdateLastActiveDate() *StreakUpsert {
	u.SetExcluded(streak.FieldLastActiveDate)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Streak.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *StreakUpsertOne) UpdateNewValues() *StreakUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(streak.FieldUserID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Streak.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StreakUpsertOne) Ignore() *StreakUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StreakUpsertOne) DoNothing() *StreakUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StreakCreate.OnConflict
// documentation for more info.
func (u *StreakUpsertOne) Update(set func(*StreakUpsert)) *StreakUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StreakUpsert{UpdateSet: update})
	}))
	return u
}

// SetCurrent sets the "current" field.
func (u *StreakUpsertOne) SetCurrent(v int) *StreakUpsertOne {
	return u.Update(func(s *StreakUpsert) {
		s.SetCurrent(v)
	})
}

// AddCurrent adds v to the "current" field.
func (u *StreakUpsertOne) AddCurrent(v int) *StreakUpsertOne {
	return u.Update(func(s *StreakUpsert) {
		s.AddCurrent(v)
	})
}

// UpdateCurrent sets the "current" field to the value that was provided on create.
func (u *StreakUpsertOne) UpdateCurrent() *StreakUpsertOne {
	return u.Update(func(s *StreakUpsert) {
		s.UpdateCurrent()
	})
}

// SetLongest sets the "longest" field.
func (u *StreakUpsertOne) SetLongest(v int) *StreakUpsertOne {
	return u.Update(func(s *StreakUpsert) {
		s.SetLongest(v)
	})
}

// AddLongest adds v to the "longest" field.
func (u *StreakUpsertOne) AddLongest(v int) *StreakUpsertOne {
	return u.Update(func(s *StreakUpsert) {
		s.AddLongest(v)
	})
}

// UpdateLongest sets the "longest" field to the value that was provided on create.
func (u *StreakUpsertOne) UpdateLongest() *StreakUpsertOne {
	return u.Update(func(s *StreakUpsert) {
		s.UpdateLongest()
	})
}

// SetLastActiveDate sets the "last_active_date" field.
func (u *StreakUpsertOne) SetLastActiveDate(v string) *StreakUpsertOne {
	return u.Update(func(s *StreakUpsert) {
		s.SetLastActiveDate(v)
	})
}

// UpdateLastActiveDate sets the "last_active_date" field to the value that was provided on create.
func (u *StreakUpsertOne) UpdateLastActiveDate() *StreakUpsertOne {
	return u.Update(func(s *StreakUpsert) {
		s.UpdateLastActiveDate()
	})
}

// Exec executes the query.
func (u *StreakUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StreakCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StreakUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StreakUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StreakUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StreakCreateBulk is the builder for creating many Streak entities in bulk.
type StreakCreateBulk struct {
	config
	err      error
	builders []*StreakCreate
	conflict []sql.ConflictOption
}

// Save creates the Streak entities in the database.
func (_c *StreakCreateBulk) Save(ctx context.Context) ([]*Streak, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Streak, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StreakMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *StreakCreateBulk) SaveX(ctx context.Context) []*Streak {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StreakCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StreakCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Streak.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StreakUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *StreakCreateBulk) OnConflict(opts ...sql.ConflictOption) *StreakUpsertBulk {
	_c.conflict = opts
	return &StreakUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Streak.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StreakCreateBulk) OnConflictColumns(columns ...string) *StreakUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StreakUpsertBulk{
		create: _c,
	}
}

// StreakUpsertBulk is the builder for "upsert"-ing
// a bulk of Streak nodes.
type StreakUpsertBulk struct {
	create *StreakCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Streak.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *StreakUpsertBulk) UpdateNewValues() *StreakUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(streak.FieldUserID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Streak.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StreakUpsertBulk) Ignore() *StreakUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StreakUpsertBulk) DoNothing() *StreakUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StreakCreateBulk.OnConflict
// documentation for more info.
func (u *StreakUpsertBulk) Update(set func(*StreakUpsert)) *StreakUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StreakUpsert{UpdateSet: update})
	}))
	return u
}

// SetCurrent sets the "current" field.
func (u *StreakUpsertBulk) SetCurrent(v int) *StreakUpsertBulk {
	return u.Update(func(s *StreakUpsert) {
		s.SetCurrent(v)
	})
}

// AddCurrent adds v to the "current" field.
func (u *StreakUpsertBulk) AddCurrent(v int) *StreakUpsertBulk {
	return u.Update(func(s *StreakUpsert) {
		s.AddCurrent(v)
	})
}

// UpdateCurrent sets the "current" field to the value that was provided on create.
func (u *StreakUpsertBulk) UpdateCurrent() *StreakUpsertBulk {
	return u.Update(func(s *StreakUpsert) {
		s.UpdateCurrent()
	})
}

// SetLongest sets the "longest" field.
func (u *StreakUpsertBulk) SetLongest(v int) *StreakUpsertBulk {
	return u.Update(func(s *StreakUpsert) {
		s.SetLongest(v)
	})
}

// AddLongest adds v to the "longest" field.
func (u *StreakUpsertBulk) AddLongest(v int) *StreakUpsertBulk {
	return u.Update(func(s *StreakUpsert) {
		s.AddLongest(v)
	})
}

// UpdateLongest sets the "longest" field to the value that was provided on create.
func (u *StreakUpsertBulk) UpdateLongest() *StreakUpsertBulk {
	return u.Update(func(s *StreakUpsert) {
		s.UpdateLongest()
	})
}

// SetLastActiveDate sets the "last_active_date" field.
func (u *StreakUpsertBulk) SetLastActiveDate(v string) *StreakUpsertBulk {
	return u.Update(func(s *StreakUpsert) {
		s.SetLastActiveDate(v)
	})
}

// UpdateLastActiveDate sets the "last_active_date" field to the value that was provided on create.
func (u *StreakUpsertBulk) UpdateLastActiveDate() *StreakUpsertBulk {
	return u.Update(func(s *StreakUpsert) {
		s.UpdateLastActiveDate()
	})
}

// Exec executes the query.
func (u *StreakUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StreakCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StreakCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StreakUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
