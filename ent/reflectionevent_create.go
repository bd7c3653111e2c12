// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/thinkle/deep/ent/reflectionevent"
)

// ReflectionEventCreate is the builder for creating a ReflectionEvent entity.
type ReflectionEventCreate struct {
	config
	mutation *ReflectionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ReflectionEventCreate) SetSequence(v int64) *ReflectionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ReflectionEventCreate) SetTimestamp(v time.Time) *ReflectionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ReflectionEventCreate) SetNillableTimestamp(v *time.Time) *ReflectionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ReflectionEventCreate) SetUserID(v string) *ReflectionEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *ReflectionEventCreate) SetQuestionID(v string) *ReflectionEventCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetDay sets the "day" field.
func (_c *ReflectionEventCreate) SetDay(v string) *ReflectionEventCreate {
	_c.mutation.SetDay(v)
	return _c
}

// SetTheme sets the "theme" field.
func (_c *ReflectionEventCreate) SetTheme(v string) *ReflectionEventCreate {
	_c.mutation.SetTheme(v)
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *ReflectionEventCreate) SetPrompt(v string) *ReflectionEventCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *ReflectionEventCreate) SetAnswer(v string) *ReflectionEventCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_c *ReflectionEventCreate) SetDurationSeconds(v int) *ReflectionEventCreate {
	_c.mutation.SetDurationSeconds(v)
	return _c
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_c *ReflectionEventCreate) SetNillableDurationSeconds(v *int) *ReflectionEventCreate {
	if v != nil {
		_c.SetDurationSeconds(*v)
	}
	return _c
}

// SetFeedback sets the "feedback" field.
func (_c *ReflectionEventCreate) SetFeedback(v string) *ReflectionEventCreate {
	_c.mutation.SetFeedback(v)
	return _c
}

// SetXpAwarded sets the "xp_awarded" field.
func (_c *ReflectionEventCreate) SetXpAwarded(v int) *ReflectionEventCreate {
	_c.mutation.SetXpAwarded(v)
	return _c
}

// SetBaseXp sets the "base_xp" field.
func (_c *ReflectionEventCreate) SetBaseXp(v int) *ReflectionEventCreate {
	_c.mutation.SetBaseXp(v)
	return _c
}

// SetNillableBaseXp sets the "base_xp" field if the given value is not nil.
func (_c *ReflectionEventCreate) SetNillableBaseXp(v *int) *ReflectionEventCreate {
	if v != nil {
		_c.SetBaseXp(*v)
	}
	return _c
}

// SetBonusXp sets the "bonus_xp" field.
func (_c *ReflectionEventCreate) SetBonusXp(v int) *ReflectionEventCreate {
	_c.mutation.SetBonusXp(v)
	return _c
}

// SetNillableBonusXp sets the "bonus_xp" field if the given value is not nil.
func (_c *ReflectionEventCreate) SetNillableBonusXp(v *int) *ReflectionEventCreate {
	if v != nil {
		_c.SetBonusXp(*v)
	}
	return _c
}

// SetStreak sets the "streak" field.
func (_c *ReflectionEventCreate) SetStreak(v int) *ReflectionEventCreate {
	_c.mutation.SetStreak(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *ReflectionEventCreate) SetDifficulty(v string) *ReflectionEventCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetMultiplier sets the "multiplier" field.
func (_c *ReflectionEventCreate) SetMultiplier(v float64) *ReflectionEventCreate {
	_c.mutation.SetMultiplier(v)
	return _c
}

// SetNillableMultiplier sets the "multiplier" field if the given value is not nil.
func (_c *ReflectionEventCreate) SetNillableMultiplier(v *float64) *ReflectionEventCreate {
	if v != nil {
		_c.SetMultiplier(*v)
	}
	return _c
}

// Mutation returns the ReflectionEventMutation object of the builder.
func (_c *ReflectionEventCreate) Mutation() *ReflectionEventMutation {
	return _c.mutation
}

// Save creates the ReflectionEvent in the database.
func (_c *ReflectionEventCreate) Save(ctx context.Context) (*ReflectionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReflectionEventCreate) SaveX(ctx context.Context) *ReflectionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReflectionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReflectionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReflectionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := reflectionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.DurationSeconds(); !ok {
		v := reflectionevent.DefaultDurationSeconds
		_c.mutation.SetDurationSeconds(v)
	}
	if _, ok := _c.mutation.BaseXp(); !ok {
		v := reflectionevent.DefaultBaseXp
		_c.mutation.SetBaseXp(v)
	}
	if _, ok := _c.mutation.BonusXp(); !ok {
		v := reflectionevent.DefaultBonusXp
		_c.mutation.SetBonusXp(v)
	}
	if _, ok := _c.mutation.Multiplier(); !ok {
		v := reflectionevent.DefaultMultiplier
		_c.mutation.SetMultiplier(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReflectionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ReflectionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ReflectionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ReflectionEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := reflectionevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ReflectionEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "ReflectionEvent.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := reflectionevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ReflectionEvent.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Day(); !ok {
		return &ValidationError{Name: "day", err: errors.New(`ent: missing required field "ReflectionEvent.day"`)}
	}
	if v, ok := _c.mutation.Day(); ok {
		if err := reflectionevent.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`ent: validator failed for field "ReflectionEvent.day": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Theme(); !ok {
		return &ValidationError{Name: "theme", err: errors.New(`ent: missing required field "ReflectionEvent.theme"`)}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "ReflectionEvent.prompt"`)}
	}
	if v, ok := _c.mutation.Prompt(); ok {
		if err := reflectionevent.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "ReflectionEvent.prompt": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Answer(); !ok {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required field "ReflectionEvent.answer"`)}
	}
	if v, ok := _c.mutation.Answer(); ok {
		if err := reflectionevent.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "ReflectionEvent.answer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DurationSeconds(); !ok {
		return &ValidationError{Name: "duration_seconds", err: errors.New(`ent: missing required field "ReflectionEvent.duration_seconds"`)}
	}
	if _, ok := _c.mutation.Feedback(); !ok {
		return &ValidationError{Name: "feedback", err: errors.New(`ent: missing required field "ReflectionEvent.feedback"`)}
	}
	if _, ok := _c.mutation.XpAwarded(); !ok {
		return &ValidationError{Name: "xp_awarded", err: errors.New(`ent: missing required field "ReflectionEvent.xp_awarded"`)}
	}
	if _, ok := _c.mutation.BaseXp(); !ok {
		return &ValidationError{Name: "base_xp", err: errors.New(`ent: missing required field "ReflectionEvent.base_xp"`)}
	}
	if _, ok := _c.mutation.BonusXp(); !ok {
		return &ValidationError{Name: "bonus_xp", err: errors.New(`ent: missing required field "ReflectionEvent.bonus_xp"`)}
	}
	if _, ok := _c.mutation.Streak(); !ok {
		return &ValidationError{Name: "streak", err: errors.New(`ent: missing required field "ReflectionEvent.streak"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "ReflectionEvent.difficulty"`)}
	}
	if _, ok := _c.mutation.Multiplier(); !ok {
		return &ValidationError{Name: "multiplier", err: errors.New(`ent: missing required field "ReflectionEvent.multiplier"`)}
	}
	return nil
}

func (_c *ReflectionEventCreate) sqlSave(ctx context.Context) (*ReflectionEvent, error) {
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

func (_c *ReflectionEventCreate) createSpec() (*ReflectionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ReflectionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reflectionevent.Table, sqlgraph.NewFieldSpec(reflectionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(reflectionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(reflectionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(reflectionevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(reflectionevent.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.Day(); ok {
		_spec.SetField(reflectionevent.FieldDay, field.TypeString, value)
		_node.Day = value
	}
	if value, ok := _c.mutation.Theme(); ok {
		_spec.SetField(reflectionevent.FieldTheme, field.TypeString, value)
		_node.Theme = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(reflectionevent.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(reflectionevent.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.DurationSeconds(); ok {
		_spec.SetField(reflectionevent.FieldDurationSeconds, field.TypeInt, value)
		_node.DurationSeconds = value
	}
	if value, ok := _c.mutation.Feedback(); ok {
		_spec.SetField(reflectionevent.FieldFeedback, field.TypeString, value)
		_node.Feedback = value
	}
	if value, ok := _c.mutation.XpAwarded(); ok {
		_spec.SetField(reflectionevent.FieldXpAwarded, field.TypeInt, value)
		_node.XpAwarded = value
	}
	if value, ok := _c.mutation.BaseXp(); ok {
		_spec.SetField(reflectionevent.FieldBaseXp, field.TypeInt, value)
		_node.BaseXp = value
	}
	if value, ok := _c.mutation.BonusXp(); ok {
		_spec.SetField(reflectionevent.FieldBonusXp, field.TypeInt, value)
		_node.BonusXp = value
	}
	if value, ok := _c.mutation.Streak(); ok {
		_spec.SetField(reflectionevent.FieldStreak, field.TypeInt, value)
		_node.Streak = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(reflectionevent.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Multiplier(); ok {
		_spec.SetField(reflectionevent.FieldMultiplier, field.TypeFloat64, value)
		_node.Multiplier = value
	}
	return _node, _spec
}

// ReflectionEventCreateBulk is the builder for creating many ReflectionEvent entities in bulk.
type ReflectionEventCreateBulk struct {
	config
	err      error
	builders []*ReflectionEventCreate
}

// Save creates the ReflectionEvent entities in the database.
func (_c *ReflectionEventCreateBulk) Save(ctx context.Context) ([]*ReflectionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReflectionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReflectionEventMutation)
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
func (_c *ReflectionEventCreateBulk) SaveX(ctx context.Context) []*ReflectionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReflectionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReflectionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
