// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mkrishnan/storyfox/ent/predicate"
	"github.com/mkrishnan/storyfox/ent/sessionevent"
)

// SessionEventUpdate is the builder for updating SessionEvent entities.
type SessionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SessionEventMutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdate) Where(ps ...predicate.SessionEvent) *SessionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdate) SetSessionID(v string) *SessionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableSessionID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStoryID sets the "story_id" field.
func (_u *SessionEventUpdate) SetStoryID(v string) *SessionEventUpdate {
	_u.mutation.SetStoryID(v)
	return _u
}

// SetNillableStoryID sets the "story_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableStoryID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetStoryID(*v)
	}
	return _u
}

// SetStoryTitle sets the "story_title" field.
func (_u *SessionEventUpdate) SetStoryTitle(v string) *SessionEventUpdate {
	_u.mutation.SetStoryTitle(v)
	return _u
}

// SetNillableStoryTitle sets the "story_title" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableStoryTitle(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetStoryTitle(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SessionEventUpdate) SetAction(v string) *SessionEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableAction(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetCached sets the "cached" field.
func (_u *SessionEventUpdate) SetCached(v bool) *SessionEventUpdate {
	_u.mutation.SetCached(v)
	return _u
}

// SetNillableCached sets the "cached" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableCached(v *bool) *SessionEventUpdate {
	if v != nil {
		_u.SetCached(*v)
	}
	return _u
}

// SetQuestionsAttempted sets the "questions_attempted" field.
func (_u *SessionEventUpdate) SetQuestionsAttempted(v int) *SessionEventUpdate {
	_u.mutation.ResetQuestionsAttempted()
	_u.mutation.SetQuestionsAttempted(v)
	return _u
}

// SetNillableQuestionsAttempted sets the "questions_attempted" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableQuestionsAttempted(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetQuestionsAttempted(*v)
	}
	return _u
}

// AddQuestionsAttempted adds value to the "questions_attempted" field.
func (_u *SessionEventUpdate) AddQuestionsAttempted(v int) *SessionEventUpdate {
	_u.mutation.AddQuestionsAttempted(v)
	return _u
}

// SetQuestionsCorrect sets the "questions_correct" field.
func (_u *SessionEventUpdate) SetQuestionsCorrect(v int) *SessionEventUpdate {
	_u.mutation.ResetQuestionsCorrect()
	_u.mutation.SetQuestionsCorrect(v)
	return _u
}

// SetNillableQuestionsCorrect sets the "questions_correct" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableQuestionsCorrect(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetQuestionsCorrect(*v)
	}
	return _u
}

// AddQuestionsCorrect adds value to the "questions_correct" field.
func (_u *SessionEventUpdate) AddQuestionsCorrect(v int) *SessionEventUpdate {
	_u.mutation.AddQuestionsCorrect(v)
	return _u
}

// SetReadingSecs sets the "reading_secs" field.
func (_u *SessionEventUpdate) SetReadingSecs(v int) *SessionEventUpdate {
	_u.mutation.ResetReadingSecs()
	_u.mutation.SetReadingSecs(v)
	return _u
}

// SetNillableReadingSecs sets the "reading_secs" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableReadingSecs(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetReadingSecs(*v)
	}
	return _u
}

// AddReadingSecs adds value to the "reading_secs" field.
func (_u *SessionEventUpdate) AddReadingSecs(v int) *SessionEventUpdate {
	_u.mutation.AddReadingSecs(v)
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdate) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StoryID(); ok {
		if err := sessionevent.StoryIDValidator(v); err != nil {
			return &ValidationError{Name: "story_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.story_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StoryID(); ok {
		_spec.SetField(sessionevent.FieldStoryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StoryTitle(); ok {
		_spec.SetField(sessionevent.FieldStoryTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Cached(); ok {
		_spec.SetField(sessionevent.FieldCached, field.TypeBool, value)
	}
	if value, ok := _u.mutation.QuestionsAttempted(); ok {
		_spec.SetField(sessionevent.FieldQuestionsAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAttempted(); ok {
		_spec.AddField(sessionevent.FieldQuestionsAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsCorrect(); ok {
		_spec.SetField(sessionevent.FieldQuestionsCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsCorrect(); ok {
		_spec.AddField(sessionevent.FieldQuestionsCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReadingSecs(); ok {
		_spec.SetField(sessionevent.FieldReadingSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReadingSecs(); ok {
		_spec.AddField(sessionevent.FieldReadingSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionEventUpdateOne is the builder for updating a single SessionEvent entity.
type SessionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdateOne) SetSessionID(v string) *SessionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableSessionID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStoryID sets the "story_id" field.
func (_u *SessionEventUpdateOne) SetStoryID(v string) *SessionEventUpdateOne {
	_u.mutation.SetStoryID(v)
	return _u
}

// SetNillableStoryID sets the "story_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableStoryID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetStoryID(*v)
	}
	return _u
}

// SetStoryTitle sets the "story_title" field.
func (_u *SessionEventUpdateOne) SetStoryTitle(v string) *SessionEventUpdateOne {
	_u.mutation.SetStoryTitle(v)
	return _u
}

// SetNillableStoryTitle sets the "story_title" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableStoryTitle(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetStoryTitle(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SessionEventUpdateOne) SetAction(v string) *SessionEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableAction(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetCached sets the "cached" field.
func (_u *SessionEventUpdateOne) SetCached(v bool) *SessionEventUpdateOne {
	_u.mutation.SetCached(v)
	return _u
}

// SetNillableCached sets the "cached" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableCached(v *bool) *SessionEventUpdateOne {
	if v != nil {
		_u.SetCached(*v)
	}
	return _u
}

// SetQuestionsAttempted sets the "questions_attempted" field.
func (_u *SessionEventUpdateOne) SetQuestionsAttempted(v int) *SessionEventUpdateOne {
	_u.mutation.ResetQuestionsAttempted()
	_u.mutation.SetQuestionsAttempted(v)
	return _u
}

// SetNillableQuestionsAttempted sets the "questions_attempted" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableQuestionsAttempted(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetQuestionsAttempted(*v)
	}
	return _u
}

// AddQuestionsAttempted adds value to the "questions_attempted" field.
func (_u *SessionEventUpdateOne) AddQuestionsAttempted(v int) *SessionEventUpdateOne {
	_u.mutation.AddQuestionsAttempted(v)
	return _u
}

// SetQuestionsCorrect sets the "questions_correct" field.
func (_u *SessionEventUpdateOne) SetQuestionsCorrect(v int) *SessionEventUpdateOne {
	_u.mutation.ResetQuestionsCorrect()
	_u.mutation.SetQuestionsCorrect(v)
	return _u
}

// SetNillableQuestionsCorrect sets the "questions_correct" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableQuestionsCorrect(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetQuestionsCorrect(*v)
	}
	return _u
}

// AddQuestionsCorrect adds value to the "questions_correct" field.
func (_u *SessionEventUpdateOne) AddQuestionsCorrect(v int) *SessionEventUpdateOne {
	_u.mutation.AddQuestionsCorrect(v)
	return _u
}

// SetReadingSecs sets the "reading_secs" field.
func (_u *SessionEventUpdateOne) SetReadingSecs(v int) *SessionEventUpdateOne {
	_u.mutation.ResetReadingSecs()
	_u.mutation.SetReadingSecs(v)
	return _u
}

// SetNillableReadingSecs sets the "reading_secs" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableReadingSecs(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetReadingSecs(*v)
	}
	return _u
}

// AddReadingSecs adds value to the "reading_secs" field.
func (_u *SessionEventUpdateOne) AddReadingSecs(v int) *SessionEventUpdateOne {
	_u.mutation.AddReadingSecs(v)
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdateOne) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdateOne) Where(ps ...predicate.SessionEvent) *SessionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionEventUpdateOne) Select(field string, fields ...string) *SessionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionEvent entity.
func (_u *SessionEventUpdateOne) Save(ctx context.Context) (*SessionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdateOne) SaveX(ctx context.Context) *SessionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StoryID(); ok {
		if err := sessionevent.StoryIDValidator(v); err != nil {
			return &ValidationError{Name: "story_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.story_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdateOne) sqlSave(ctx context.Context) (_node *SessionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionevent.FieldID)
		for _, f := range fields {
			if !sessionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StoryID(); ok {
		_spec.SetField(sessionevent.FieldStoryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StoryTitle(); ok {
		_spec.SetField(sessionevent.FieldStoryTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Cached(); ok {
		_spec.SetField(sessionevent.FieldCached, field.TypeBool, value)
	}
	if value, ok := _u.mutation.QuestionsAttempted(); ok {
		_spec.SetField(sessionevent.FieldQuestionsAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAttempted(); ok {
		_spec.AddField(sessionevent.FieldQuestionsAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsCorrect(); ok {
		_spec.SetField(sessionevent.FieldQuestionsCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsCorrect(); ok {
		_spec.AddField(sessionevent.FieldQuestionsCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReadingSecs(); ok {
		_spec.SetField(sessionevent.FieldReadingSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReadingSecs(); ok {
		_spec.AddField(sessionevent.FieldReadingSecs, field.TypeInt, value)
	}
	_node = &SessionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
