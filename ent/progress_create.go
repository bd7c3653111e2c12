// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/thinkle/deep/ent/progress"
)

// ProgressCreate is the builder for creating a Progress entity.
type ProgressCreate struct {
	config
	mutation *ProgressMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ProgressCreate) SetUserID(v string) *ProgressCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetXpTotal sets the "xp_total" field.
func (_c *ProgressCreate) SetXpTotal(v int) *ProgressCreate {
	_c.mutation.SetXpTotal(v)
	return _c
}

// SetNillableXpTotal sets the "xp_total" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableXpTotal(v *int) *ProgressCreate {
	if v != nil {
		_c.SetXpTotal(*v)
	}
	return _c
}

// SetStreak sets the "streak" field.
func (_c *ProgressCreate) SetStreak(v int) *ProgressCreate {
	_c.mutation.SetStreak(v)
	return _c
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableStreak(v *int) *ProgressCreate {
	if v != nil {
		_c.SetStreak(*v)
	}
	return _c
}

// SetLastAnsweredOn sets the "last_answered_on" field.
func (_c *ProgressCreate) SetLastAnsweredOn(v string) *ProgressCreate {
	_c.mutation.SetLastAnsweredOn(v)
	return _c
}

// SetNillableLastAnsweredOn sets the "last_answered_on" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableLastAnsweredOn(v *string) *ProgressCreate {
	if v != nil {
		_c.SetLastAnsweredOn(*v)
	}
	return _c
}

// SetWeekIndex sets the "week_index" field.
func (_c *ProgressCreate) SetWeekIndex(v int) *ProgressCreate {
	_c.mutation.SetWeekIndex(v)
	return _c
}

// SetNillableWeekIndex sets the "week_index" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableWeekIndex(v *int) *ProgressCreate {
	if v != nil {
		_c.SetWeekIndex(*v)
	}
	return _c
}

// SetCompletedDays sets the "completed_days" field.
func (_c *ProgressCreate) SetCompletedDays(v int) *ProgressCreate {
	_c.mutation.SetCompletedDays(v)
	return _c
}

// SetNillableCompletedDays sets the "completed_days" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableCompletedDays(v *int) *ProgressCreate {
	if v != nil {
		_c.SetCompletedDays(*v)
	}
	return _c
}

// SetBadgeEarned sets the "badge_earned" field.
func (_c *ProgressCreate) SetBadgeEarned(v bool) *ProgressCreate {
	_c.mutation.SetBadgeEarned(v)
	return _c
}

// SetNillableBadgeEarned sets the "badge_earned" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableBadgeEarned(v *bool) *ProgressCreate {
	if v != nil {
		_c.SetBadgeEarned(*v)
	}
	return _c
}

// SetBadgeName sets the "badge_name" field.
func (_c *ProgressCreate) SetBadgeName(v string) *ProgressCreate {
	_c.mutation.SetBadgeName(v)
	return _c
}

// SetNillableBadgeName sets the "badge_name" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableBadgeName(v *string) *ProgressCreate {
	if v != nil {
		_c.SetBadgeName(*v)
	}
	return _c
}

// SetLastFeedback sets the "last_feedback" field.
func (_c *ProgressCreate) SetLastFeedback(v string) *ProgressCreate {
	_c.mutation.SetLastFeedback(v)
	return _c
}

// SetNillableLastFeedback sets the "last_feedback" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableLastFeedback(v *string) *ProgressCreate {
	if v != nil {
		_c.SetLastFeedback(*v)
	}
	return _c
}

// SetPrimingSeenOn sets the "priming_seen_on" field.
func (_c *ProgressCreate) SetPrimingSeenOn(v string) *ProgressCreate {
	_c.mutation.SetPrimingSeenOn(v)
	return _c
}

// SetNillablePrimingSeenOn sets the "priming_seen_on" field if the given value is not nil.
func (_c *ProgressCreate) SetNillablePrimingSeenOn(v *string) *ProgressCreate {
	if v != nil {
		_c.SetPrimingSeenOn(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProgressCreate) SetUpdatedAt(v time.Time) *ProgressCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableUpdatedAt(v *time.Time) *ProgressCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ProgressMutation object of the builder.
func (_c *ProgressCreate) Mutation() *ProgressMutation {
	return _c.mutation
}

// Save creates the Progress in the database.
func (_c *ProgressCreate) Save(ctx context.Context) (*Progress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProgressCreate) SaveX(ctx context.Context) *Progress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProgressCreate) defaults() {
	if _, ok := _c.mutation.XpTotal(); !ok {
		v := progress.DefaultXpTotal
		_c.mutation.SetXpTotal(v)
	}
	if _, ok := _c.mutation.Streak(); !ok {
		v := progress.DefaultStreak
		_c.mutation.SetStreak(v)
	}
	if _, ok := _c.mutation.LastAnsweredOn(); !ok {
		v := progress.DefaultLastAnsweredOn
		_c.mutation.SetLastAnsweredOn(v)
	}
	if _, ok := _c.mutation.WeekIndex(); !ok {
		v := progress.DefaultWeekIndex
		_c.mutation.SetWeekIndex(v)
	}
	if _, ok := _c.mutation.CompletedDays(); !ok {
		v := progress.DefaultCompletedDays
		_c.mutation.SetCompletedDays(v)
	}
	if _, ok := _c.mutation.BadgeEarned(); !ok {
		v := progress.DefaultBadgeEarned
		_c.mutation.SetBadgeEarned(v)
	}
	if _, ok := _c.mutation.BadgeName(); !ok {
		v := progress.DefaultBadgeName
		_c.mutation.SetBadgeName(v)
	}
	if _, ok := _c.mutation.LastFeedback(); !ok {
		v := progress.DefaultLastFeedback
		_c.mutation.SetLastFeedback(v)
	}
	if _, ok := _c.mutation.PrimingSeenOn(); !ok {
		v := progress.DefaultPrimingSeenOn
		_c.mutation.SetPrimingSeenOn(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := progress.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProgressCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Progress.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := progress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Progress.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.XpTotal(); !ok {
		return &ValidationError{Name: "xp_total", err: errors.New(`ent: missing required field "Progress.xp_total"`)}
	}
	if _, ok := _c.mutation.Streak(); !ok {
		return &ValidationError{Name: "streak", err: errors.New(`ent: missing required field "Progress.streak"`)}
	}
	if _, ok := _c.mutation.LastAnsweredOn(); !ok {
		return &ValidationError{Name: "last_answered_on", err: errors.New(`ent: missing required field "Progress.last_answered_on"`)}
	}
	if _, ok := _c.mutation.WeekIndex(); !ok {
		return &ValidationError{Name: "week_index", err: errors.New(`ent: missing required field "Progress.week_index"`)}
	}
	if _, ok := _c.mutation.CompletedDays(); !ok {
		return &ValidationError{Name: "completed_days", err: errors.New(`ent: missing required field "Progress.completed_days"`)}
	}
	if _, ok := _c.mutation.BadgeEarned(); !ok {
		return &ValidationError{Name: "badge_earned", err: errors.New(`ent: missing required field "Progress.badge_earned"`)}
	}
	if _, ok := _c.mutation.BadgeName(); !ok {
		return &ValidationError{Name: "badge_name", err: errors.New(`ent: missing required field "Progress.badge_name"`)}
	}
	if _, ok := _c.mutation.LastFeedback(); !ok {
		return &ValidationError{Name: "last_feedback", err: errors.New(`ent: missing required field "Progress.last_feedback"`)}
	}
	if _, ok := _c.mutation.PrimingSeenOn(); !ok {
		return &ValidationError{Name: "priming_seen_on", err: errors.New(`ent: missing required field "Progress.priming_seen_on"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Progress.updated_at"`)}
	}
	return nil
}

func (_c *ProgressCreate) sqlSave(ctx context.Context) (*Progress, error) {
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

func (_c *ProgressCreate) createSpec() (*Progress, *sqlgraph.CreateSpec) {
	var (
		_node = &Progress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(progress.Table, sqlgraph.NewFieldSpec(progress.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(progress.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.XpTotal(); ok {
		_spec.SetField(progress.FieldXpTotal, field.TypeInt, value)
		_node.XpTotal = value
	}
	if value, ok := _c.mutation.Streak(); ok {
		_spec.SetField(progress.FieldStreak, field.TypeInt, value)
		_node.Streak = value
	}
	if value, ok := _c.mutation.LastAnsweredOn(); ok {
		_spec.SetField(progress.FieldLastAnsweredOn, field.TypeString, value)
		_node.LastAnsweredOn = value
	}
	if value, ok := _c.mutation.WeekIndex(); ok {
		_spec.SetField(progress.FieldWeekIndex, field.TypeInt, value)
		_node.WeekIndex = value
	}
	if value, ok := _c.mutation.CompletedDays(); ok {
		_spec.SetField(progress.FieldCompletedDays, field.TypeInt, value)
		_node.CompletedDays = value
	}
	if value, ok := _c.mutation.BadgeEarned(); ok {
		_spec.SetField(progress.FieldBadgeEarned, field.TypeBool, value)
		_node.BadgeEarned = value
	}
	if value, ok := _c.mutation.BadgeName(); ok {
		_spec.SetField(progress.FieldBadgeName, field.TypeString, value)
		_node.BadgeName = value
	}
	if value, ok := _c.mutation.LastFeedback(); ok {
		_spec.SetField(progress.FieldLastFeedback, field.TypeString, value)
		_node.LastFeedback = value
	}
	if value, ok := _c.mutation.PrimingSeenOn(); ok {
		_spec.SetField(progress.FieldPrimingSeenOn, field.TypeString, value)
		_node.PrimingSeenOn = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(progress.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ProgressCreateBulk is the builder for creating many Progress entities in bulk.
type ProgressCreateBulk struct {
	config
	err      error
	builders []*ProgressCreate
}

// Save creates the Progress entities in the database.
func (_c *ProgressCreateBulk) Save(ctx context.Context) ([]*Progress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Progress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProgressMutation)
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
func (_c *ProgressCreateBulk) SaveX(ctx context.Context) []*Progress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
