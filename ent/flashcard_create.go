// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prefrontal-labs/mindly-app/ent/flashcard"
)

// FlashcardCreate is the builder for creating a Flashcard entity.
type FlashcardCreate struct {
	config
	mutation *FlashcardMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *FlashcardCreate) SetUserID(v string) *FlashcardCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetConcept sets the "concept" field.
func (_c *FlashcardCreate) SetConcept(v string) *FlashcardCreate {
	_c.mutation.SetConcept(v)
	return _c
}

// SetFront sets the "front" field.
func (_c *FlashcardCreate) SetFront(v string) *FlashcardCreate {
	_c.mutation.SetFront(v)
	return _c
}

// SetBack sets the "back" field.
func (_c *FlashcardCreate) SetBack(v string) *FlashcardCreate {
	_c.mutation.SetBack(v)
	return _c
}

// SetEaseFactor sets the "ease_factor" field.
func (_c *FlashcardCreate) SetEaseFactor(v float64) *FlashcardCreate {
	_c.mutation.SetEaseFactor(v)
	return _c
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_c *FlashcardCreate) SetNillableEaseFactor(v *float64) *FlashcardCreate {
	if v != nil {
		_c.SetEaseFactor(*v)
	}
	return _c
}

// SetIntervalDays sets the "interval_days" field.
func (_c *FlashcardCreate) SetIntervalDays(v int) *FlashcardCreate {
	_c.mutation.SetIntervalDays(v)
	return _c
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_c *FlashcardCreate) SetNillableIntervalDays(v *int) *FlashcardCreate {
	if v != nil {
		_c.SetIntervalDays(*v)
	}
	return _c
}

// SetRepetitions sets the "repetitions" field.
func (_c *FlashcardCreate) SetRepetitions(v int) *FlashcardCreate {
	_c.mutation.SetRepetitions(v)
	return _c
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_c *FlashcardCreate) SetNillableRepetitions(v *int) *FlashcardCreate {
	if v != nil {
		_c.SetRepetitions(*v)
	}
	return _c
}

// SetDueAt sets the "due_at" field.
func (_c *FlashcardCreate) SetDueAt(v time.Time) *FlashcardCreate {
	_c.mutation.SetDueAt(v)
	return _c
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_c *FlashcardCreate) SetNillableDueAt(v *time.Time) *FlashcardCreate {
	if v != nil {
		_c.SetDueAt(*v)
	}
	return _c
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_c *FlashcardCreate) SetLastReviewedAt(v time.Time) *FlashcardCreate {
	_c.mutation.SetLastReviewedAt(v)
	return _c
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_c *FlashcardCreate) SetNillableLastReviewedAt(v *time.Time) *FlashcardCreate {
	if v != nil {
		_c.SetLastReviewedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FlashcardCreate) SetCreatedAt(v time.Time) *FlashcardCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FlashcardCreate) SetNillableCreatedAt(v *time.Time) *FlashcardCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the FlashcardMutation object of the builder.
func (_c *FlashcardCreate) Mutation() *FlashcardMutation {
	return _c.mutation
}

// Save creates the Flashcard in the database.
func (_c *FlashcardCreate) Save(ctx context.Context) (*Flashcard, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FlashcardCreate) SaveX(ctx context.Context) *Flashcard {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FlashcardCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FlashcardCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FlashcardCreate) defaults() {
	if _, ok := _c.mutation.EaseFactor(); !ok {
		v := flashcard.DefaultEaseFactor
		_c.mutation.SetEaseFactor(v)
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		v := flashcard.DefaultIntervalDays
		_c.mutation.SetIntervalDays(v)
	}
	if _, ok := _c.mutation.Repetitions(); !ok {
		v := flashcard.DefaultRepetitions
		_c.mutation.SetRepetitions(v)
	}
	if _, ok := _c.mutation.DueAt(); !ok {
		v := flashcard.DefaultDueAt()
		_c.mutation.SetDueAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := flashcard.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FlashcardCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Flashcard.user_id"`)}
	}
	if _, ok := _c.mutation.Concept(); !ok {
		return &ValidationError{Name: "concept", err: errors.New(`ent: missing required field "Flashcard.concept"`)}
	}
	if _, ok := _c.mutation.Front(); !ok {
		return &ValidationError{Name: "front", err: errors.New(`ent: missing required field "Flashcard.front"`)}
	}
	if _, ok := _c.mutation.Back(); !ok {
		return &ValidationError{Name: "back", err: errors.New(`ent: missing required field "Flashcard.back"`)}
	}
	if _, ok := _c.mutation.EaseFactor(); !ok {
		return &ValidationError{Name: "ease_factor", err: errors.New(`ent: missing required field "Flashcard.ease_factor"`)}
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "Flashcard.interval_days"`)}
	}
	if _, ok := _c.mutation.Repetitions(); !ok {
		return &ValidationError{Name: "repetitions", err: errors.New(`ent: missing required field "Flashcard.repetitions"`)}
	}
	if _, ok := _c.mutation.DueAt(); !ok {
		return &ValidationError{Name: "due_at", err: errors.New(`ent: missing required field "Flashcard.due_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Flashcard.created_at"`)}
	}
	return nil
}

func (_c *FlashcardCreate) sqlSave(ctx context.Context) (*Flashcard, error) {
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

func (_c *FlashcardCreate) createSpec() (*Flashcard, *sqlgraph.CreateSpec) {
	var (
		_node = &Flashcard{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(flashcard.Table, sqlgraph.NewFieldSpec(flashcard.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(flashcard.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Concept(); ok {
		_spec.SetField(flashcard.FieldConcept, field.TypeString, value)
		_node.Concept = value
	}
	if value, ok := _c.mutation.Front(); ok {
		_spec.SetField(flashcard.FieldFront, field.TypeString, value)
		_node.Front = value
	}
	if value, ok := _c.mutation.Back(); ok {
		_spec.SetField(flashcard.FieldBack, field.TypeString, value)
		_node.Back = value
	}
	if value, ok := _c.mutation.EaseFactor(); ok {
		_spec.SetField(flashcard.FieldEaseFactor, field.TypeFloat64, value)
		_node.EaseFactor = value
	}
	if value, ok := _c.mutation.IntervalDays(); ok {
		_spec.SetField(flashcard.FieldIntervalDays, field.TypeInt, value)
		_node.IntervalDays = value
	}
	if value, ok := _c.mutation.Repetitions(); ok {
		_spec.SetField(flashcard.FieldRepetitions, field.TypeInt, value)
		_node.Repetitions = value
	}
	if value, ok := _c.mutation.DueAt(); ok {
		_spec.SetField(flashcard.FieldDueAt, field.TypeTime, value)
		_node.DueAt = value
	}
	if value, ok := _c.mutation.LastReviewedAt(); ok {
		_spec.SetField(flashcard.FieldLastReviewedAt, field.TypeTime, value)
		_node.LastReviewedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(flashcard.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Flashcard.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FlashcardUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *FlashcardCreate) OnConflict(opts ...sql.ConflictOption) *FlashcardUpsertOne {
	_c.conflict = opts
	return &FlashcardUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Flashcard.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FlashcardCreate) OnConflictColumns(columns ...string) *FlashcardUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FlashcardUpsertOne{
		create: _c,
	}
}

type (
	// FlashcardUpsertOne is the builder for "upsert"-ing
	//  one Flashcard node.
	FlashcardUpsertOne struct {
		create *FlashcardCreate
	}

	// FlashcardUpsert is the "OnConflict" setter.
	FlashcardUpsert struct {
		*sql.UpdateSet
	}
)

// SetConcept sets the "concept" field.
func (u *FlashcardUpsert) SetConcept(v string) *FlashcardUpsert {
	u.Set(flashcard.FieldConcept, v)
	return u
}

// UpdateConcept sets the "concept" field to the value that was provided on create.
func (u *FlashcardUpsert) UpdateConcept() *FlashcardUpsert {
	u.SetExcluded(flashcard.FieldConcept)
	return u
}

// SetFront sets the "front" field.
func (u *FlashcardUpsert) SetFront(v string) *FlashcardUpsert {
	u.Set(flashcard.FieldFront, v)
	return u
}

// UpdateFront sets the "front" field to the value that was provided on create.
func (u *FlashcardUpsert) UpdateFront() *FlashcardUpsert {
	u.SetExcluded(flashcard.FieldFront)
	return u
}

// SetBack sets the "back" field.
func (u *FlashcardUpsert) SetBack(v string) *FlashcardUpsert {
	u.Set(flashcard.FieldBack, v)
	return u
}

// UpdateBack sets the "back" field to the value that was provided on create.
func (u *FlashcardUpsert) UpdateBack() *FlashcardUpsert {
	u.SetExcluded(flashcard.FieldBack)
	return u
}

// SetEaseFactor sets the "ease_factor" field.
func (u *FlashcardUpsert) SetEaseFactor(v float64) *FlashcardUpsert {
	u.Set(flashcard.FieldEaseFactor, v)
	return u
}

// UpdateEaseFactor sets the "ease_factor" field to the value that was provided on create.
func (u *FlashcardUpsert) UpdateEaseFactor() *FlashcardUpsert {
	u.SetExcluded(flashcard.FieldEaseFactor)
	return u
}

// AddEaseFactor adds v to the "ease_factor" field.
func (u *FlashcardUpsert) AddEaseFactor(v float64) *FlashcardUpsert {
	u.Add(flashcard.FieldEaseFactor, v)
	return u
}

// SetIntervalDays sets the "interval_days" field.
func (u *FlashcardUpsert) SetIntervalDays(v int) *FlashcardUpsert {
	u.Set(flashcard.FieldIntervalDays, v)
	return u
}

// UpdateIntervalDays sets the "interval_days" field to the value that was provided on create.
func (u *FlashcardUpsert) UpdateIntervalDays() *FlashcardUpsert {
	u.SetExcluded(flashcard.FieldIntervalDays)
	return u
}

// AddIntervalDays adds v to the "interval_days" field.
func (u *FlashcardUpsert) AddIntervalDays(v int) *FlashcardUpsert {
	u.Add(flashcard.FieldIntervalDays, v)
	return u
}

// SetRepetitions sets the "repetitions" field.
func (u *FlashcardUpsert) SetRepetitions(v int) *FlashcardUpsert {
	u.Set(flashcard.FieldRepetitions, v)
	return u
}

// UpdateRepetitions sets the "repetitions" field to the value that was provided on create.
func (u *FlashcardUpsert) UpdateRepetitions() *FlashcardUpsert {
	u.SetExcluded(flashcard.FieldRepetitions)
	return u
}

// AddRepetitions adds v to the "repetitions" field.
func (u *FlashcardUpsert) AddRepetitions(v int) *FlashcardUpsert {
	u.Add(flashcard.FieldRepetitions, v)
	return u
}

// SetDueAt sets the "due_at" field.
func (u *FlashcardUpsert) SetDueAt(v time.Time) *FlashcardUpsert {
	u.Set(flashcard.FieldDueAt, v)
	return u
}

// UpdateDueAt sets the "due_at" field to the value that was provided on create.
func (u *FlashcardUpsert) UpdateDueAt() *FlashcardUpsert {
	u.SetExcluded(flashcard.FieldDueAt)
	return u
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (u *FlashcardUpsert) SetLastReviewedAt(v time.Time) *FlashcardUpsert {
	u.Set(flashcard.FieldLastReviewedAt, v)
	return u
}

// UpdateLastReviewedAt sets the "last_reviewed_at" field to the value that was provided on create.
func (u *FlashcardUpsert) UpdateLastReviewedAt() *FlashcardUpsert {
	u.SetExcluded(flashcard.FieldLastReviewedAt)
	return u
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (u *FlashcardUpsert) ClearLastReviewedAt() *FlashcardUpsert {
	u.SetNull(flashcard.FieldLastReviewedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Flashcard.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *FlashcardUpsertOne) UpdateNewValues() *FlashcardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(flashcard.FieldUserID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(flashcard.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Flashcard.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *FlashcardUpsertOne) Ignore() *FlashcardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FlashcardUpsertOne) DoNothing() *FlashcardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FlashcardCreate.OnConflict
// documentation for more info.
func (u *FlashcardUpsertOne) Update(set func(*FlashcardUpsert)) *FlashcardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FlashcardUpsert{UpdateSet: update})
	}))
	return u
}

// SetConcept sets the "concept" field.
func (u *FlashcardUpsertOne) SetConcept(v string) *FlashcardUpsertOne {
	return u.Update(func(s *FlashcardUpsert) {
		s.SetConcept(v)
	})
}

// UpdateConcept sets the "concept" field to the value that was provided on create.
func (u *FlashcardUpsertOne) UpdateConcept() *FlashcardUpsertOne {
	return u.Update(func(s *FlashcardUpsert) {
		s.UpdateConcept()
	})
}

// SetFront sets the "front" field.
func (u *FlashcardUpsertOne) SetFront(v string) *FlashcardUpsertOne {
	return u.Update(func(s *FlashcardUpsert) {
		s.SetFront(v)
	})
}

// UpdateFront sets the "front" field to the value that was provided on create.
func (u *FlashcardUpsertOne) UpdateFront() *FlashcardUpsertOne {
	return u.Update(func(s *FlashcardUpsert) {
		s.UpdateFront()
	})
}

// SetBack sets the "back" field.
func (u *FlashcardUpsertOne) SetBack(v string) *FlashcardUpsertOne {
	return u.Update(func(s *FlashcardUpsert) {
		s.SetBack(v)
	})
}

// UpdateBack sets the "back" field to the value that was provided on create.
func (u *FlashcardUpsertOne) UpdateBack() *FlashcardUpsertOne {
	return u.Update(func(s *FlashcardUpsert) {
		s.UpdateBack()
	})
}

// SetEaseFactor sets the "ease_factor" field.
func (u *FlashcardUpsertOne) SetEaseFactor(v float64) *FlashcardUpsertOne {
	return u.Update(func(s *FlashcardUpsert) {
		s.SetEaseFactor(v)
	})
}

// AddEaseFactor adds v to the "ease_factor" field.
func (u *FlashcardUpsertOne) AddEaseFactor(v float64) *FlashcardUpsertOne {
	return u.Update(func(s *FlashcardUpsert) {
		s.AddEaseFactor(v)
	})
}

// UpdateEaseFactor sets the "ease_factor" field to the value that was provided on create.
func (u *FlashcardUpsertOne) UpdateEaseFactor() *FlashcardUpsertOne {
	return u.Update(func(s *FlashcardUpsert) {
		s.UpdateEaseFactor()
	})
}

// SetIntervalDays sets the "interval_days" field.
func (u *FlashcardUpsertOne) SetIntervalDays(v int) *FlashcardUpsertOne {
	return u.Update(func(s *FlashcardUpsert) {
		s.SetIntervalDays(v)
	})
}

// AddIntervalDays adds v to the "interval_days" field.
func (u *FlashcardUpsertOne) AddIntervalDays(v int) *FlashcardUpsertOne {
	return u.Update(func(s *FlashcardUpsert) {
		s.AddIntervalDays(v)
	})
}

// UpdateIntervalDays sets the "interval_days" field to the value that was provided on create.
func (u *FlashcardUpsertOne) UpdateIntervalDays() *FlashcardUpsertOne {
	return u.Update(func(s *FlashcardUpsert) {
		s.UpdateIntervalDays()
	})
}

// SetRepetitions sets the "repetitions" field.
func (u *FlashcardUpsertOne) SetRepetitions(v int) *FlashcardUpsertOne {
	return u.Update(func(s *FlashcardUpsert) {
		s.SetRepetitions(v)
	})
}

// AddRepetitions adds v to the "repetitions" field.
func (u *FlashcardUpsertOne) AddRepetitions(v int) *FlashcardUpsertOne {
	return u.Update(func(s *FlashcardUpsert) {
		s.AddRepetitions(v)
	})
}

// UpdateRepetitions sets the "repetitions" field to the value that was provided on create.
func (u *FlashcardUpsertOne) UpdateRepetitions() *FlashcardUpsertOne {
	return u.Update(func(s *FlashcardUpsert) {
		s.UpdateRepetitions()
	})
}

// SetDueAt sets the "due_at" field.
func (u *FlashcardUpsertOne) SetDueAt(v time.Time) *FlashcardUpsertOne {
	return u.Update(func(s *FlashcardUpsert) {
		s.SetDueAt(v)
	})
}

// UpdateDueAt sets the "due_at" field to the value that was provided on create.
func (u *FlashcardUpsertOne) UpdateDueAt() *FlashcardUpsertOne {
	return u.Update(func(s *FlashcardUpsert) {
		s.UpdateDueAt()
	})
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (u *FlashcardUpsertOne) SetLastReviewedAt(v time.Time) *FlashcardUpsertOne {
	return u.Update(func(s *FlashcardUpsert) {
		s.SetLastReviewedAt(v)
	})
}

// UpdateLastReviewedAt sets the "last_reviewed_at" field to the value that was provided on create.
func (u *FlashcardUpsertOne) UpdateLastReviewedAt() *FlashcardUpsertOne {
	return u.Update(func(s *FlashcardUpsert) {
		s.UpdateLastReviewedAt()
	})
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (u *FlashcardUpsertOne) ClearLastReviewedAt() *FlashcardUpsertOne {
	return u.Update(func(s *FlashcardUpsert) {
		s.ClearLastReviewedAt()
	})
}

// Exec executes the query.
func (u *FlashcardUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FlashcardCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FlashcardUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *FlashcardUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *FlashcardUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// FlashcardCreateBulk is the builder for creating many Flashcard entities in bulk.
type FlashcardCreateBulk struct {
	config
	err      error
	builders []*FlashcardCreate
	conflict []sql.ConflictOption
}

// Save creates the Flashcard entities in the database.
func (_c *FlashcardCreateBulk) Save(ctx context.Context) ([]*Flashcard, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Flashcard, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FlashcardMutation)
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
func (_c *FlashcardCreateBulk) SaveX(ctx context.Context) []*Flashcard {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FlashcardCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FlashcardCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Flashcard.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FlashcardUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *FlashcardCreateBulk) OnConflict(opts ...sql.ConflictOption) *FlashcardUpsertBulk {
	_c.conflict = opts
	return &FlashcardUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Flashcard.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FlashcardCreateBulk) OnConflictColumns(columns ...string) *FlashcardUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FlashcardUpsertBulk{
		create: _c,
	}
}

// FlashcardUpsertBulk is the builder for "upsert"-ing
// a bulk of Flashcard nodes.
type FlashcardUpsertBulk struct {
	create *FlashcardCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Flashcard.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *FlashcardUpsertBulk) UpdateNewValues() *FlashcardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(flashcard.FieldUserID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(flashcard.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Flashcard.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *FlashcardUpsertBulk) Ignore() *FlashcardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FlashcardUpsertBulk) DoNothing() *FlashcardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FlashcardCreateBulk.OnConflict
// documentation for more info.
func (u *FlashcardUpsertBulk) Update(set func(*FlashcardUpsert)) *FlashcardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FlashcardUpsert{UpdateSet: update})
	}))
	return u
}

// SetConcept sets the "concept" field.
func (u *FlashcardUpsertBulk) SetConcept(v string) *FlashcardUpsertBulk {
	return u.Update(func(s *FlashcardUpsert) {
		s.SetConcept(v)
	})
}

// UpdateConcept sets the "concept" field to the value that was provided on create.
func (u *FlashcardUpsertBulk) UpdateConcept() *FlashcardUpsertBulk {
	return u.Update(func(s *FlashcardUpsert) {
		s.UpdateConcept()
	})
}

// SetFront sets the "front" field.
func (u *FlashcardUpsertBulk) SetFront(v string) *FlashcardUpsertBulk {
	return u.Update(func(s *FlashcardUpsert) {
		s.SetFront(v)
	})
}

// UpdateFront sets the "front" field to the value that was provided on create.
func (u *FlashcardUpsertBulk) UpdateFront() *FlashcardUpsertBulk {
	return u.Update(func(s *FlashcardUpsert) {
		s.UpdateFront()
	})
}

// SetBack sets the "back" field.
func (u *FlashcardUpsertBulk) SetBack(v string) *FlashcardUpsertBulk {
	return u.Update(func(s *FlashcardUpsert) {
		s.SetBack(v)
	})
}

// UpdateBack sets the "back" field to the value that was provided on create.
func (u *FlashcardUpsertBulk) UpdateBack() *FlashcardUpsertBulk {
	return u.Update(func(s *FlashcardUpsert) {
		s.UpdateBack()
	})
}

// SetEaseFactor sets the "ease_factor" field.
func (u *FlashcardUpsertBulk) SetEaseFactor(v float64) *FlashcardUpsertBulk {
	return u.Update(func(s *FlashcardUpsert) {
		s.SetEaseFactor(v)
	})
}

// AddEaseFactor adds v to the "ease_factor" field.
func (u *FlashcardUpsertBulk) AddEaseFactor(v float64) *FlashcardUpsertBulk {
	return u.Update(func(s *FlashcardUpsert) {
		s.AddEaseFactor(v)
	})
}

// UpdateEaseFactor sets the "ease_factor" field to the value that was provided on create.
func (u *FlashcardUpsertBulk) UpdateEaseFactor() *FlashcardUpsertBulk {
	return u.Update(func(s *FlashcardUpsert) {
		s.UpdateEaseFactor()
	})
}

// SetIntervalDays sets the "interval_days" field.
func (u *FlashcardUpsertBulk) SetIntervalDays(v int) *FlashcardUpsertBulk {
	return u.Update(func(s *FlashcardUpsert) {
		s.SetIntervalDays(v)
	})
}

// AddIntervalDays adds v to the "interval_days" field.
func (u *FlashcardUpsertBulk) AddIntervalDays(v int) *FlashcardUpsertBulk {
	return u.Update(func(s *FlashcardUpsert) {
		s.AddIntervalDays(v)
	})
}

// UpdateIntervalDays sets the "interval_days" field to the value that was provided on create.
func (u *FlashcardUpsertBulk) UpdateIntervalDays() *FlashcardUpsertBulk {
	return u.Update(func(s *FlashcardUpsert) {
		s.UpdateIntervalDays()
	})
}

// SetRepetitions sets the "repetitions" field.
func (u *FlashcardUpsertBulk) SetRepetitions(v int) *FlashcardUpsertBulk {
	return u.Update(func(s *FlashcardUpsert) {
		s.SetRepetitions(v)
	})
}

// AddRepetitions adds v to the "repetitions" field.
func (u *FlashcardUpsertBulk) AddRepetitions(v int) *FlashcardUpsertBulk {
	return u.Update(func(s *FlashcardUpsert) {
		s.AddRepetitions(v)
	})
}

// UpdateRepetitions sets the "repetitions" field to the value that was provided on create.
func (u *FlashcardUpsertBulk) UpdateRepetitions() *FlashcardUpsertBulk {
	return u.Update(func(s *FlashcardUpsert) {
		s.UpdateRepetitions()
	})
}

// SetDueAt sets the "due_at" field.
func (u *FlashcardUpsertBulk) SetDueAt(v time.Time) *FlashcardUpsertBulk {
	return u.Update(func(s *FlashcardUpsert) {
		s.SetDueAt(v)
	})
}

// UpdateDueAt sets the "due_at" field to the value that was provided on create.
func (u *FlashcardUpsertBulk) UpdateDueAt() *FlashcardUpsertBulk {
	return u.Update(func(s *FlashcardUpsert) {
		s.UpdateDueAt()
	})
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (u *FlashcardUpsertBulk) SetLastReviewedAt(v time.Time) *FlashcardUpsertBulk {
	return u.Update(func(s *FlashcardUpsert) {
		s.SetLastReviewedAt(v)
	})
}

// UpdateLastReviewedAt sets the "last_reviewed_at" field to the value that was provided on create.
func (u *FlashcardUpsertBulk) UpdateLastReviewedAt() *FlashcardUpsertBulk {
	return u.Update(func(s *FlashcardUpsert) {
		s.UpdateLastReviewedAt()
	})
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (u *FlashcardUpsertBulk) ClearLastReviewedAt() *FlashcardUpsertBulk {
	return u.Update(func(s *FlashcardUpsert) {
		s.ClearLastReviewedAt()
	})
}

// Exec executes the query.
func (u *FlashcardUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the FlashcardCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FlashcardCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FlashcardUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
