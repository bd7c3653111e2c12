// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/thinkle/deep/ent/predicate"
	"github.com/thinkle/deep/ent/reflectionevent"
)

// ReflectionEventUpdate is the builder for updating ReflectionEvent entities.
type ReflectionEventUpdate struct {
	config
	hooks    []Hook
	mutation *ReflectionEventMutation
}

// Where appends a list predicates to the ReflectionEventUpdate builder.
func (_u *ReflectionEventUpdate) Where(ps ...predicate.ReflectionEvent) *ReflectionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ReflectionEventUpdate) SetUserID(v string) *ReflectionEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReflectionEventUpdate) SetNillableUserID(v *string) *ReflectionEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *ReflectionEventUpdate) SetQuestionID(v string) *ReflectionEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *ReflectionEventUpdate) SetNillableQuestionID(v *string) *ReflectionEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *ReflectionEventUpdate) SetDay(v string) *ReflectionEventUpdate {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *ReflectionEventUpdate) SetNillableDay(v *string) *ReflectionEventUpdate {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// SetTheme sets the "theme" field.
func (_u *ReflectionEventUpdate) SetTheme(v string) *ReflectionEventUpdate {
	_u.mutation.SetTheme(v)
	return _u
}

// SetNillableTheme sets the "theme" field if the given value is not nil.
func (_u *ReflectionEventUpdate) SetNillableTheme(v *string) *ReflectionEventUpdate {
	if v != nil {
		_u.SetTheme(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *ReflectionEventUpdate) SetPrompt(v string) *ReflectionEventUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *ReflectionEventUpdate) SetNillablePrompt(v *string) *ReflectionEventUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *ReflectionEventUpdate) SetAnswer(v string) *ReflectionEventUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *ReflectionEventUpdate) SetNillableAnswer(v *string) *ReflectionEventUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *ReflectionEventUpdate) SetDurationSeconds(v int) *ReflectionEventUpdate {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *ReflectionEventUpdate) SetNillableDurationSeconds(v *int) *ReflectionEventUpdate {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *ReflectionEventUpdate) AddDurationSeconds(v int) *ReflectionEventUpdate {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *ReflectionEventUpdate) SetFeedback(v string) *ReflectionEventUpdate {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *ReflectionEventUpdate) SetNillableFeedback(v *string) *ReflectionEventUpdate {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// SetXpAwarded sets the "xp_awarded" field.
func (_u *ReflectionEventUpdate) SetXpAwarded(v int) *ReflectionEventUpdate {
	_u.mutation.ResetXpAwarded()
	_u.mutation.SetXpAwarded(v)
	return _u
}

// SetNillableXpAwarded sets the "xp_awarded" field if the given value is not nil.
func (_u *ReflectionEventUpdate) SetNillableXpAwarded(v *int) *ReflectionEventUpdate {
	if v != nil {
		_u.SetXpAwarded(*v)
	}
	return _u
}

// AddXpAwarded adds value to the "xp_awarded" field.
func (_u *ReflectionEventUpdate) AddXpAwarded(v int) *ReflectionEventUpdate {
	_u.mutation.AddXpAwarded(v)
	return _u
}

// SetBaseXp sets the "base_xp" field.
func (_u *ReflectionEventUpdate) SetBaseXp(v int) *ReflectionEventUpdate {
	_u.mutation.ResetBaseXp()
	_u.mutation.SetBaseXp(v)
	return _u
}

// SetNillableBaseXp sets the "base_xp" field if the given value is not nil.
func (_u *ReflectionEventUpdate) SetNillableBaseXp(v *int) *ReflectionEventUpdate {
	if v != nil {
		_u.SetBaseXp(*v)
	}
	return _u
}

// AddBaseXp adds value to the "base_xp" field.
func (_u *ReflectionEventUpdate) AddBaseXp(v int) *ReflectionEventUpdate {
	_u.mutation.AddBaseXp(v)
	return _u
}

// SetBonusXp sets the "bonus_xp" field.
func (_u *ReflectionEventUpdate) SetBonusXp(v int) *ReflectionEventUpdate {
	_u.mutation.ResetBonusXp()
	_u.mutation.SetBonusXp(v)
	return _u
}

// SetNillableBonusXp sets the "bonus_xp" field if the given value is not nil.
func (_u *ReflectionEventUpdate) SetNillableBonusXp(v *int) *ReflectionEventUpdate {
	if v != nil {
		_u.SetBonusXp(*v)
	}
	return _u
}

// AddBonusXp adds value to the "bonus_xp" field.
func (_u *ReflectionEventUpdate) AddBonusXp(v int) *ReflectionEventUpdate {
	_u.mutation.AddBonusXp(v)
	return _u
}

// SetStreak sets the "streak" field.
func (_u *ReflectionEventUpdate) SetStreak(v int) *ReflectionEventUpdate {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *ReflectionEventUpdate) SetNillableStreak(v *int) *ReflectionEventUpdate {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *ReflectionEventUpdate) AddStreak(v int) *ReflectionEventUpdate {
	_u.mutation.AddStreak(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ReflectionEventUpdate) SetDifficulty(v string) *ReflectionEventUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ReflectionEventUpdate) SetNillableDifficulty(v *string) *ReflectionEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetMultiplier sets the "multiplier" field.
func (_u *ReflectionEventUpdate) SetMultiplier(v float64) *ReflectionEventUpdate {
	_u.mutation.ResetMultiplier()
	_u.mutation.SetMultiplier(v)
	return _u
}

// SetNillableMultiplier sets the "multiplier" field if the given value is not nil.
func (_u *ReflectionEventUpdate) SetNillableMultiplier(v *float64) *ReflectionEventUpdate {
	if v != nil {
		_u.SetMultiplier(*v)
	}
	return _u
}

// AddMultiplier adds value to the "multiplier" field.
func (_u *ReflectionEventUpdate) AddMultiplier(v float64) *ReflectionEventUpdate {
	_u.mutation.AddMultiplier(v)
	return _u
}

// Mutation returns the ReflectionEventMutation object of the builder.
func (_u *ReflectionEventUpdate) Mutation() *ReflectionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReflectionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReflectionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReflectionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReflectionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReflectionEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := reflectionevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ReflectionEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := reflectionevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ReflectionEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Day(); ok {
		if err := reflectionevent.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`ent: validator failed for field "ReflectionEvent.day": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := reflectionevent.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "ReflectionEvent.prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Answer(); ok {
		if err := reflectionevent.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "ReflectionEvent.answer": %w`, err)}
		}
	}
	return nil
}

func (_u *ReflectionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reflectionevent.Table, reflectionevent.Columns, sqlgraph.NewFieldSpec(reflectionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(reflectionevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(reflectionevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(reflectionevent.FieldDay, field.TypeString, value)
	}
	if value, ok := _u.mutation.Theme(); ok {
		_spec.SetField(reflectionevent.FieldTheme, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(reflectionevent.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(reflectionevent.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(reflectionevent.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(reflectionevent.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(reflectionevent.FieldFeedback, field.TypeString, value)
	}
	if value, ok := _u.mutation.XpAwarded(); ok {
		_spec.SetField(reflectionevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpAwarded(); ok {
		_spec.AddField(reflectionevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BaseXp(); ok {
		_spec.SetField(reflectionevent.FieldBaseXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBaseXp(); ok {
		_spec.AddField(reflectionevent.FieldBaseXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BonusXp(); ok {
		_spec.SetField(reflectionevent.FieldBonusXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBonusXp(); ok {
		_spec.AddField(reflectionevent.FieldBonusXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(reflectionevent.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(reflectionevent.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(reflectionevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Multiplier(); ok {
		_spec.SetField(reflectionevent.FieldMultiplier, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMultiplier(); ok {
		_spec.AddField(reflectionevent.FieldMultiplier, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reflectionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReflectionEventUpdateOne is the builder for updating a single ReflectionEvent entity.
type ReflectionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReflectionEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *ReflectionEventUpdateOne) SetUserID(v string) *ReflectionEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReflectionEventUpdateOne) SetNillableUserID(v *string) *ReflectionEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *ReflectionEventUpdateOne) SetQuestionID(v string) *ReflectionEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *ReflectionEventUpdateOne) SetNillableQuestionID(v *string) *ReflectionEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *ReflectionEventUpdateOne) SetDay(v string) *ReflectionEventUpdateOne {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *ReflectionEventUpdateOne) SetNillableDay(v *string) *ReflectionEventUpdateOne {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// SetTheme sets the "theme" field.
func (_u *ReflectionEventUpdateOne) SetTheme(v string) *ReflectionEventUpdateOne {
	_u.mutation.SetTheme(v)
	return _u
}

// SetNillableTheme sets the "theme" field if the given value is not nil.
func (_u *ReflectionEventUpdateOne) SetNillableTheme(v *string) *ReflectionEventUpdateOne {
	if v != nil {
		_u.SetTheme(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *ReflectionEventUpdateOne) SetPrompt(v string) *ReflectionEventUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *ReflectionEventUpdateOne) SetNillablePrompt(v *string) *ReflectionEventUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *ReflectionEventUpdateOne) SetAnswer(v string) *ReflectionEventUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *ReflectionEventUpdateOne) SetNillableAnswer(v *string) *ReflectionEventUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *ReflectionEventUpdateOne) SetDurationSeconds(v int) *ReflectionEventUpdateOne {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *ReflectionEventUpdateOne) SetNillableDurationSeconds(v *int) *ReflectionEventUpdateOne {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *ReflectionEventUpdateOne) AddDurationSeconds(v int) *ReflectionEventUpdateOne {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *ReflectionEventUpdateOne) SetFeedback(v string) *ReflectionEventUpdateOne {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *ReflectionEventUpdateOne) SetNillableFeedback(v *string) *ReflectionEventUpdateOne {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// SetXpAwarded sets the "xp_awarded" field.
func (_u *ReflectionEventUpdateOne) SetXpAwarded(v int) *ReflectionEventUpdateOne {
	_u.mutation.ResetXpAwarded()
	_u.mutation.SetXpAwarded(v)
	return _u
}

// SetNillableXpAwarded sets the "xp_awarded" field if the given value is not nil.
func (_u *ReflectionEventUpdateOne) SetNillableXpAwarded(v *int) *ReflectionEventUpdateOne {
	if v != nil {
		_u.SetXpAwarded(*v)
	}
	return _u
}

// AddXpAwarded adds value to the "xp_awarded" field.
func (_u *ReflectionEventUpdateOne) AddXpAwarded(v int) *ReflectionEventUpdateOne {
	_u.mutation.AddXpAwarded(v)
	return _u
}

// SetBaseXp sets the "base_xp" field.
func (_u *ReflectionEventUpdateOne) SetBaseXp(v int) *ReflectionEventUpdateOne {
	_u.mutation.ResetBaseXp()
	_u.mutation.SetBaseXp(v)
	return _u
}

// SetNillableBaseXp sets the "base_xp" field if the given value is not nil.
func (_u *ReflectionEventUpdateOne) SetNillableBaseXp(v *int) *ReflectionEventUpdateOne {
	if v != nil {
		_u.SetBaseXp(*v)
	}
	return _u
}

// AddBaseXp adds value to the "base_xp" field.
func (_u *ReflectionEventUpdateOne) AddBaseXp(v int) *ReflectionEventUpdateOne {
	_u.mutation.AddBaseXp(v)
	return _u
}

// SetBonusXp sets the "bonus_xp" field.
func (_u *ReflectionEventUpdateOne) SetBonusXp(v int) *ReflectionEventUpdateOne {
	_u.mutation.ResetBonusXp()
	_u.mutation.SetBonusXp(v)
	return _u
}

// SetNillableBonusXp sets the "bonus_xp" field if the given value is not nil.
func (_u *ReflectionEventUpdateOne) SetNillableBonusXp(v *int) *ReflectionEventUpdateOne {
	if v != nil {
		_u.SetBonusXp(*v)
	}
	return _u
}

// AddBonusXp adds value to the "bonus_xp" field.
func (_u *ReflectionEventUpdateOne) AddBonusXp(v int) *ReflectionEventUpdateOne {
	_u.mutation.AddBonusXp(v)
	return _u
}

// SetStreak sets the "streak" field.
func (_u *ReflectionEventUpdateOne) SetStreak(v int) *ReflectionEventUpdateOne {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *ReflectionEventUpdateOne) SetNillableStreak(v *int) *ReflectionEventUpdateOne {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *ReflectionEventUpdateOne) AddStreak(v int) *ReflectionEventUpdateOne {
	_u.mutation.AddStreak(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ReflectionEventUpdateOne) SetDifficulty(v string) *ReflectionEventUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ReflectionEventUpdateOne) SetNillableDifficulty(v *string) *ReflectionEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetMultiplier sets the "multiplier" field.
func (_u *ReflectionEventUpdateOne) SetMultiplier(v float64) *ReflectionEventUpdateOne {
	_u.mutation.ResetMultiplier()
	_u.mutation.SetMultiplier(v)
	return _u
}

// SetNillableMultiplier sets the "multiplier" field if the given value is not nil.
func (_u *ReflectionEventUpdateOne) SetNillableMultiplier(v *float64) *ReflectionEventUpdateOne {
	if v != nil {
		_u.SetMultiplier(*v)
	}
	return _u
}

// AddMultiplier adds value to the "multiplier" field.
func (_u *ReflectionEventUpdateOne) AddMultiplier(v float64) *ReflectionEventUpdateOne {
	_u.mutation.AddMultiplier(v)
	return _u
}

// Mutation returns the ReflectionEventMutation object of the builder.
func (_u *ReflectionEventUpdateOne) Mutation() *ReflectionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReflectionEventUpdate builder.
func (_u *ReflectionEventUpdateOne) Where(ps ...predicate.ReflectionEvent) *ReflectionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReflectionEventUpdateOne) Select(field string, fields ...string) *ReflectionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReflectionEvent entity.
func (_u *ReflectionEventUpdateOne) Save(ctx context.Context) (*ReflectionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReflectionEventUpdateOne) SaveX(ctx context.Context) *ReflectionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReflectionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReflectionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReflectionEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := reflectionevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ReflectionEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := reflectionevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ReflectionEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Day(); ok {
		if err := reflectionevent.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`ent: validator failed for field "ReflectionEvent.day": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := reflectionevent.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "ReflectionEvent.prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Answer(); ok {
		if err := reflectionevent.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "ReflectionEvent.answer": %w`, err)}
		}
	}
	return nil
}

func (_u *ReflectionEventUpdateOne) sqlSave(ctx context.Context) (_node *ReflectionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reflectionevent.Table, reflectionevent.Columns, sqlgraph.NewFieldSpec(reflectionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReflectionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reflectionevent.FieldID)
		for _, f := range fields {
			if !reflectionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reflectionevent.FieldID {
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
		_spec.SetField(reflectionevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(reflectionevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(reflectionevent.FieldDay, field.TypeString, value)
	}
	if value, ok := _u.mutation.Theme(); ok {
		_spec.SetField(reflectionevent.FieldTheme, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(reflectionevent.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(reflectionevent.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(reflectionevent.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(reflectionevent.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(reflectionevent.FieldFeedback, field.TypeString, value)
	}
	if value, ok := _u.mutation.XpAwarded(); ok {
		_spec.SetField(reflectionevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpAwarded(); ok {
		_spec.AddField(reflectionevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BaseXp(); ok {
		_spec.SetField(reflectionevent.FieldBaseXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBaseXp(); ok {
		_spec.AddField(reflectionevent.FieldBaseXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BonusXp(); ok {
		_spec.SetField(reflectionevent.FieldBonusXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBonusXp(); ok {
		_spec.AddField(reflectionevent.FieldBonusXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(reflectionevent.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(reflectionevent.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(reflectionevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Multiplier(); ok {
		_spec.SetField(reflectionevent.FieldMultiplier, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMultiplier(); ok {
		_spec.AddField(reflectionevent.FieldMultiplier, field.TypeFloat64, value)
	}
	_node = &ReflectionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reflectionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
