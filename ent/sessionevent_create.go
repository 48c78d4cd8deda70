// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mkrishnan/storyfox/ent/sessionevent"
)

// SessionEventCreate is the builder for creating a SessionEvent entity.
type SessionEventCreate struct {
	config
	mutation *SessionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *SessionEventCreate) SetSequence(v int64) *SessionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *SessionEventCreate) SetTimestamp(v time.Time) *SessionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableTimestamp(v *time.Time) *SessionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *SessionEventCreate) SetSessionID(v string) *SessionEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetStoryID sets the "story_id" field.
func (_c *SessionEventCreate) SetStoryID(v string) *SessionEventCreate {
	_c.mutation.SetStoryID(v)
	return _c
}

// SetStoryTitle sets the "story_title" field.
func (_c *SessionEventCreate) SetStoryTitle(v string) *SessionEventCreate {
	_c.mutation.SetStoryTitle(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *SessionEventCreate) SetAction(v string) *SessionEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetCached sets the "cached" field.
func (_c *SessionEventCreate) SetCached(v bool) *SessionEventCreate {
	_c.mutation.SetCached(v)
	return _c
}

// SetNillableCached sets the "cached" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableCached(v *bool) *SessionEventCreate {
	if v != nil {
		_c.SetCached(*v)
	}
	return _c
}

// SetQuestionsAttempted sets the "questions_attempted" field.
func (_c *SessionEventCreate) SetQuestionsAttempted(v int) *SessionEventCreate {
	_c.mutation.SetQuestionsAttempted(v)
	return _c
}

// SetNillableQuestionsAttempted sets the "questions_attempted" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableQuestionsAttempted(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetQuestionsAttempted(*v)
	}
	return _c
}

// SetQuestionsCorrect sets the "questions_correct" field.
func (_c *SessionEventCreate) SetQuestionsCorrect(v int) *SessionEventCreate {
	_c.mutation.SetQuestionsCorrect(v)
	return _c
}

// SetNillableQuestionsCorrect sets the "questions_correct" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableQuestionsCorrect(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetQuestionsCorrect(*v)
	}
	return _c
}

// SetReadingSecs sets the "reading_secs" field.
func (_c *SessionEventCreate) SetReadingSecs(v int) *SessionEventCreate {
	_c.mutation.SetReadingSecs(v)
	return _c
}

// SetNillableReadingSecs sets the "reading_secs" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableReadingSecs(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetReadingSecs(*v)
	}
	return _c
}

// Mutation returns the SessionEventMutation object of the builder.
func (_c *SessionEventCreate) Mutation() *SessionEventMutation {
	return _c.mutation
}

// Save creates the SessionEvent in the database.
func (_c *SessionEventCreate) Save(ctx context.Context) (*SessionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionEventCreate) SaveX(ctx context.Context) *SessionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := sessionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Cached(); !ok {
		v := sessionevent.DefaultCached
		_c.mutation.SetCached(v)
	}
	if _, ok := _c.mutation.QuestionsAttempted(); !ok {
		v := sessionevent.DefaultQuestionsAttempted
		_c.mutation.SetQuestionsAttempted(v)
	}
	if _, ok := _c.mutation.QuestionsCorrect(); !ok {
		v := sessionevent.DefaultQuestionsCorrect
		_c.mutation.SetQuestionsCorrect(v)
	}
	if _, ok := _c.mutation.ReadingSecs(); !ok {
		v := sessionevent.DefaultReadingSecs
		_c.mutation.SetReadingSecs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "SessionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SessionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StoryID(); !ok {
		return &ValidationError{Name: "story_id", err: errors.New(`ent: missing required field "SessionEvent.story_id"`)}
	}
	if v, ok := _c.mutation.StoryID(); ok {
		if err := sessionevent.StoryIDValidator(v); err != nil {
			return &ValidationError{Name: "story_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.story_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StoryTitle(); !ok {
		return &ValidationError{Name: "story_title", err: errors.New(`ent: missing required field "SessionEvent.story_title"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "SessionEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Cached(); !ok {
		return &ValidationError{Name: "cached", err: errors.New(`ent: missing required field "SessionEvent.cached"`)}
	}
	if _, ok := _c.mutation.QuestionsAttempted(); !ok {
		return &ValidationError{Name: "questions_attempted", err: errors.New(`ent: missing required field "SessionEvent.questions_attempted"`)}
	}
	if _, ok := _c.mutation.QuestionsCorrect(); !ok {
		return &ValidationError{Name: "questions_correct", err: errors.New(`ent: missing required field "SessionEvent.questions_correct"`)}
	}
	if _, ok := _c.mutation.ReadingSecs(); !ok {
		return &ValidationError{Name: "reading_secs", err: errors.New(`ent: missing required field "SessionEvent.reading_secs"`)}
	}
	return nil
}

func (_c *SessionEventCreate) sqlSave(ctx context.Context) (*SessionEvent, error) {
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

func (_c *SessionEventCreate) createSpec() (*SessionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionevent.Table, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(sessionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(sessionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.StoryID(); ok {
		_spec.SetField(sessionevent.FieldStoryID, field.TypeString, value)
		_node.StoryID = value
	}
	if value, ok := _c.mutation.StoryTitle(); ok {
		_spec.SetField(sessionevent.FieldStoryTitle, field.TypeString, value)
		_node.StoryTitle = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Cached(); ok {
		_spec.SetField(sessionevent.FieldCached, field.TypeBool, value)
		_node.Cached = value
	}
	if value, ok := _c.mutation.QuestionsAttempted(); ok {
		_spec.SetField(sessionevent.FieldQuestionsAttempted, field.TypeInt, value)
		_node.QuestionsAttempted = value
	}
	if value, ok := _c.mutation.QuestionsCorrect(); ok {
		_spec.SetField(sessionevent.FieldQuestionsCorrect, field.TypeInt, value)
		_node.QuestionsCorrect = value
	}
	if value, ok := _c.mutation.ReadingSecs(); ok {
		_spec.SetField(sessionevent.FieldReadingSecs, field.TypeInt, value)
		_node.ReadingSecs = value
	}
	return _node, _spec
}

// SessionEventCreateBulk is the builder for creating many SessionEvent entities in bulk.
type SessionEventCreateBulk struct {
	config
	err      error
	builders []*SessionEventCreate
}

// Save creates the SessionEvent entities in the database.
func (_c *SessionEventCreateBulk) Save(ctx context.Context) ([]*SessionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionEventMutation)
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
func (_c *SessionEventCreateBulk) SaveX(ctx context.Context) []*SessionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
