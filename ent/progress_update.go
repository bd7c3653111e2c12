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
	"github.com/thinkle/deep/ent/predicate"
	"github.com/thinkle/deep/ent/progress"
)

// ProgressUpdate is the builder for updating Progress entities.
type ProgressUpdate struct {
	config
	hooks    []Hook
	mutation *ProgressMutation
}

// Where appends a list predicates to the ProgressUpdate builder.
func (_u *ProgressUpdate) Where(ps ...predicate.Progress) *ProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ProgressUpdate) SetUserID(v string) *ProgressUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableUserID(v *string) *ProgressUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetXpTotal sets the "xp_total" field.
func (_u *ProgressUpdate) SetXpTotal(v int) *ProgressUpdate {
	_u.mutation.ResetXpTotal()
	_u.mutation.SetXpTotal(v)
	return _u
}

// SetNillableXpTotal sets the "xp_total" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableXpTotal(v *int) *ProgressUpdate {
	if v != nil {
		_u.SetXpTotal(*v)
	}
	return _u
}

// AddXpTotal adds value to the "xp_total" field.
func (_u *ProgressUpdate) AddXpTotal(v int) *ProgressUpdate {
	_u.mutation.AddXpTotal(v)
	return _u
}

// SetStreak sets the "streak" field.
func (_u *ProgressUpdate) SetStreak(v int) *ProgressUpdate {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableStreak(v *int) *ProgressUpdate {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *ProgressUpdate) AddStreak(v int) *ProgressUpdate {
	_u.mutation.AddStreak(v)
	return _u
}

// SetLastAnsweredOn sets the "last_answered_on" field.
func (_u *ProgressUpdate) SetLastAnsweredOn(v string) *ProgressUpdate {
	_u.mutation.SetLastAnsweredOn(v)
	return _u
}

// SetNillableLastAnsweredOn sets the "last_answered_on" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableLastAnsweredOn(v *string) *ProgressUpdate {
	if v != nil {
		_u.SetLastAnsweredOn(*v)
	}
	return _u
}

// SetWeekIndex sets the "week_index" field.
func (_u *ProgressUpdate) SetWeekIndex(v int) *ProgressUpdate {
	_u.mutation.ResetWeekIndex()
	_u.mutation.SetWeekIndex(v)
	return _u
}

// SetNillableWeekIndex sets the "week_index" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableWeekIndex(v *int) *ProgressUpdate {
	if v != nil {
		_u.SetWeekIndex(*v)
	}
	return _u
}

// AddWeekIndex adds value to the "week_index" field.
func (_u *ProgressUpdate) AddWeekIndex(v int) *ProgressUpdate {
	_u.mutation.AddWeekIndex(v)
	return _u
}

// SetCompletedDays sets the "completed_days" field.
func (_u *ProgressUpdate) SetCompletedDays(v int) *ProgressUpdate {
	_u.mutation.ResetCompletedDays()
	_u.mutation.SetCompletedDays(v)
	return _u
}

// SetNillableCompletedDays sets the "completed_days" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableCompletedDays(v *int) *ProgressUpdate {
	if v != nil {
		_u.SetCompletedDays(*v)
	}
	return _u
}

// AddCompletedDays adds value to the "completed_days" field.
func (_u *ProgressUpdate) AddCompletedDays(v int) *ProgressUpdate {
	_u.mutation.AddCompletedDays(v)
	return _u
}

// SetBadgeEarned sets the "badge_earned" field.
func (_u *ProgressUpdate) SetBadgeEarned(v bool) *ProgressUpdate {
	_u.mutation.SetBadgeEarned(v)
	return _u
}

// SetNillableBadgeEarned sets the "badge_earned" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableBadgeEarned(v *bool) *ProgressUpdate {
	if v != nil {
		_u.SetBadgeEarned(*v)
	}
	return _u
}

// SetBadgeName sets the "badge_name" field.
func (_u *ProgressUpdate) SetBadgeName(v string) *ProgressUpdate {
	_u.mutation.SetBadgeName(v)
	return _u
}

// SetNillableBadgeName sets the "badge_name" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableBadgeName(v *string) *ProgressUpdate {
	if v != nil {
		_u.SetBadgeName(*v)
	}
	return _u
}

// SetLastFeedback sets the "last_feedback" field.
func (_u *ProgressUpdate) SetLastFeedback(v string) *ProgressUpdate {
	_u.mutation.SetLastFeedback(v)
	return _u
}

// SetNillableLastFeedback sets the "last_feedback" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableLastFeedback(v *string) *ProgressUpdate {
	if v != nil {
		_u.SetLastFeedback(*v)
	}
	return _u
}

// SetPrimingSeenOn sets the "priming_seen_on" field.
func (_u *ProgressUpdate) SetPrimingSeenOn(v string) *ProgressUpdate {
	_u.mutation.SetPrimingSeenOn(v)
	return _u
}

// SetNillablePrimingSeenOn sets the "priming_seen_on" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillablePrimingSeenOn(v *string) *ProgressUpdate {
	if v != nil {
		_u.SetPrimingSeenOn(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProgressUpdate) SetUpdatedAt(v time.Time) *ProgressUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProgressMutation object of the builder.
func (_u *ProgressUpdate) Mutation() *ProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProgressUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProgressUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := progress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := progress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Progress.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progress.Table, progress.Columns, sqlgraph.NewFieldSpec(progress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(progress.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.XpTotal(); ok {
		_spec.SetField(progress.FieldXpTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpTotal(); ok {
		_spec.AddField(progress.FieldXpTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(progress.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(progress.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAnsweredOn(); ok {
		_spec.SetField(progress.FieldLastAnsweredOn, field.TypeString, value)
	}
	if value, ok := _u.mutation.WeekIndex(); ok {
		_spec.SetField(progress.FieldWeekIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeekIndex(); ok {
		_spec.AddField(progress.FieldWeekIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedDays(); ok {
		_spec.SetField(progress.FieldCompletedDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedDays(); ok {
		_spec.AddField(progress.FieldCompletedDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BadgeEarned(); ok {
		_spec.SetField(progress.FieldBadgeEarned, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BadgeName(); ok {
		_spec.SetField(progress.FieldBadgeName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastFeedback(); ok {
		_spec.SetField(progress.FieldLastFeedback, field.TypeString, value)
	}
	if value, ok := _u.mutation.PrimingSeenOn(); ok {
		_spec.SetField(progress.FieldPrimingSeenOn, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(progress.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProgressUpdateOne is the builder for updating a single Progress entity.
type ProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgressMutation
}

// SetUserID sets the "user_id" field.
func (_u *ProgressUpdateOne) SetUserID(v string) *ProgressUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableUserID(v *string) *ProgressUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetXpTotal sets the "xp_total" field.
func (_u *ProgressUpdateOne) SetXpTotal(v int) *ProgressUpdateOne {
	_u.mutation.ResetXpTotal()
	_u.mutation.SetXpTotal(v)
	return _u
}

// SetNillableXpTotal sets the "xp_total" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableXpTotal(v *int) *ProgressUpdateOne {
	if v != nil {
		_u.SetXpTotal(*v)
	}
	return _u
}

// AddXpTotal adds value to the "xp_total" field.
func (_u *ProgressUpdateOne) AddXpTotal(v int) *ProgressUpdateOne {
	_u.mutation.AddXpTotal(v)
	return _u
}

// SetStreak sets the "streak" field.
func (_u *ProgressUpdateOne) SetStreak(v int) *ProgressUpdateOne {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableStreak(v *int) *ProgressUpdateOne {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *ProgressUpdateOne) AddStreak(v int) *ProgressUpdateOne {
	_u.mutation.AddStreak(v)
	return _u
}

// SetLastAnsweredOn sets the "last_answered_on" field.
func (_u *ProgressUpdateOne) SetLastAnsweredOn(v string) *ProgressUpdateOne {
	_u.mutation.SetLastAnsweredOn(v)
	return _u
}

// SetNillableLastAnsweredOn sets the "last_answered_on" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableLastAnsweredOn(v *string) *ProgressUpdateOne {
	if v != nil {
		_u.SetLastAnsweredOn(*v)
	}
	return _u
}

// SetWeekIndex sets the "week_index" field.
func (_u *ProgressUpdateOne) SetWeekIndex(v int) *ProgressUpdateOne {
	_u.mutation.ResetWeekIndex()
	_u.mutation.SetWeekIndex(v)
	return _u
}

// SetNillableWeekIndex sets the "week_index" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableWeekIndex(v *int) *ProgressUpdateOne {
	if v != nil {
		_u.SetWeekIndex(*v)
	}
	return _u
}

// AddWeekIndex adds value to the "week_index" field.
func (_u *ProgressUpdateOne) AddWeekIndex(v int) *ProgressUpdateOne {
	_u.mutation.AddWeekIndex(v)
	return _u
}

// SetCompletedDays sets the "completed_days" field.
func (_u *ProgressUpdateOne) SetCompletedDays(v int) *ProgressUpdateOne {
	_u.mutation.ResetCompletedDays()
	_u.mutation.SetCompletedDays(v)
	return _u
}

// SetNillableCompletedDays sets the "completed_days" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableCompletedDays(v *int) *ProgressUpdateOne {
	if v != nil {
		_u.SetCompletedDays(*v)
	}
	return _u
}

// AddCompletedDays adds value to the "completed_days" field.
func (_u *ProgressUpdateOne) AddCompletedDays(v int) *ProgressUpdateOne {
	_u.mutation.AddCompletedDays(v)
	return _u
}

// SetBadgeEarned sets the "badge_earned" field.
func (_u *ProgressUpdateOne) SetBadgeEarned(v bool) *ProgressUpdateOne {
	_u.mutation.SetBadgeEarned(v)
	return _u
}

// SetNillableBadgeEarned sets the "badge_earned" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableBadgeEarned(v *bool) *ProgressUpdateOne {
	if v != nil {
		_u.SetBadgeEarned(*v)
	}
	return _u
}

// SetBadgeName sets the "badge_name" field.
func (_u *ProgressUpdateOne) SetBadgeName(v string) *ProgressUpdateOne {
	_u.mutation.SetBadgeName(v)
	return _u
}

// SetNillableBadgeName sets the "badge_name" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableBadgeName(v *string) *ProgressUpdateOne {
	if v != nil {
		_u.SetBadgeName(*v)
	}
	return _u
}

// SetLastFeedback sets the "last_feedback" field.
func (_u *ProgressUpdateOne) SetLastFeedback(v string) *ProgressUpdateOne {
	_u.mutation.SetLastFeedback(v)
	return _u
}

// SetNillableLastFeedback sets the "last_feedback" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableLastFeedback(v *string) *ProgressUpdateOne {
	if v != nil {
		_u.SetLastFeedback(*v)
	}
	return _u
}

// SetPrimingSeenOn sets the "priming_seen_on" field.
func (_u *ProgressUpdateOne) SetPrimingSeenOn(v string) *ProgressUpdateOne {
	_u.mutation.SetPrimingSeenOn(v)
	return _u
}

// SetNillablePrimingSeenOn sets the "priming_seen_on" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillablePrimingSeenOn(v *string) *ProgressUpdateOne {
	if v != nil {
		_u.SetPrimingSeenOn(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProgressUpdateOne) SetUpdatedAt(v time.Time) *ProgressUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProgressMutation object of the builder.
func (_u *ProgressUpdateOne) Mutation() *ProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProgressUpdate builder.
func (_u *ProgressUpdateOne) Where(ps ...predicate.Progress) *ProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProgressUpdateOne) Select(field string, fields ...string) *ProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Progress entity.
func (_u *ProgressUpdateOne) Save(ctx context.Context) (*Progress, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressUpdateOne) SaveX(ctx context.Context) *Progress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProgressUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := progress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := progress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Progress.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressUpdateOne) sqlSave(ctx context.Context) (_node *Progress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progress.Table, progress.Columns, sqlgraph.NewFieldSpec(progress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Progress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progress.FieldID)
		for _, f := range fields {
			if !progress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != progress.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(progress.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.XpTotal(); ok {
		_spec.SetField(progress.FieldXpTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpTotal(); ok {
		_spec.AddField(progress.FieldXpTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(progress.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(progress.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAnsweredOn(); ok {
		_spec.SetField(progress.FieldLastAnsweredOn, field.TypeString, value)
	}
	if value, ok := _u.mutation.WeekIndex(); ok {
		_spec.SetField(progress.FieldWeekIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeekIndex(); ok {
		_spec.AddField(progress.FieldWeekIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedDays(); ok {
		_spec.SetField(progress.FieldCompletedDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedDays(); ok {
		_spec.AddField(progress.FieldCompletedDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BadgeEarned(); ok {
		_spec.SetField(progress.FieldBadgeEarned, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BadgeName(); ok {
		_spec.SetField(progress.FieldBadgeName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastFeedback(); ok {
		_spec.SetField(progress.FieldLastFeedback, field.TypeString, value)
	}
	if value, ok := _u.mutation.PrimingSeenOn(); ok {
		_spec.SetField(progress.FieldPrimingSeenOn, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(progress.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Progress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
