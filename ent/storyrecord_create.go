// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mkrishnan/storyfox/ent/storyrecord"
)

// StoryRecordCreate is the builder for creating a StoryRecord entity.
type StoryRecordCreate struct {
	config
	mutation *StoryRecordMutation
	hooks    []Hook
}

// SetStoryID sets the "story_id" field.
func (_c *StoryRecordCreate) SetStoryID(v string) *StoryRecordCreate {
	_c.mutation.SetStoryID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *StoryRecordCreate) SetTitle(v string) *StoryRecordCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *StoryRecordCreate) SetLanguage(v string) *StoryRecordCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *StoryRecordCreate) SetNillableLanguage(v *string) *StoryRecordCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetTheme sets the "theme" field.
func (_c *StoryRecordCreate) SetTheme(v string) *StoryRecordCreate {
	_c.mutation.SetTheme(v)
	return _c
}

// SetNillableTheme sets the "theme" field if the given value is not nil.
func (_c *StoryRecordCreate) SetNillableTheme(v *string) *StoryRecordCreate {
	if v != nil {
		_c.SetTheme(*v)
	}
	return _c
}

// SetWordCount sets the "word_count" field.
func (_c *StoryRecordCreate) SetWordCount(v int) *StoryRecordCreate {
	_c.mutation.SetWordCount(v)
	return _c
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (_c *StoryRecordCreate) SetNillableWordCount(v *int) *StoryRecordCreate {
	if v != nil {
		_c.SetWordCount(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *StoryRecordCreate) SetContent(v []byte) *StoryRecordCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StoryRecordCreate) SetCreatedAt(v time.Time) *StoryRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StoryRecordCreate) SetNillableCreatedAt(v *time.Time) *StoryRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the StoryRecordMutation object of the builder.
func (_c *StoryRecordCreate) Mutation() *StoryRecordMutation {
	return _c.mutation
}

// Save creates the StoryRecord in the database.
func (_c *StoryRecordCreate) Save(ctx context.Context) (*StoryRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StoryRecordCreate) SaveX(ctx context.Context) *StoryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StoryRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StoryRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StoryRecordCreate) defaults() {
	if _, ok := _c.mutation.Language(); !ok {
		v := storyrecord.DefaultLanguage
		_c.mutation.SetLanguage(v)
	}
	if _, ok := _c.mutation.Theme(); !ok {
		v := storyrecord.DefaultTheme
		_c.mutation.SetTheme(v)
	}
	if _, ok := _c.mutation.WordCount(); !ok {
		v := storyrecord.DefaultWordCount
		_c.mutation.SetWordCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := storyrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StoryRecordCreate) check() error {
	if _, ok := _c.mutation.StoryID(); !ok {
		return &ValidationError{Name: "story_id", err: errors.New(`ent: missing required field "StoryRecord.story_id"`)}
	}
	if v, ok := _c.mutation.StoryID(); ok {
		if err := storyrecord.StoryIDValidator(v); err != nil {
			return &ValidationError{Name: "story_id", err: fmt.Errorf(`ent: validator failed for field "StoryRecord.story_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "StoryRecord.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := storyrecord.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "StoryRecord.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "StoryRecord.language"`)}
	}
	if _, ok := _c.mutation.Theme(); !ok {
		return &ValidationError{Name: "theme", err: errors.New(`ent: missing required field "StoryRecord.theme"`)}
	}
	if _, ok := _c.mutation.WordCount(); !ok {
		return &ValidationError{Name: "word_count", err: errors.New(`ent: missing required field "StoryRecord.word_count"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "StoryRecord.content"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StoryRecord.created_at"`)}
	}
	return nil
}

func (_c *StoryRecordCreate) sqlSave(ctx context.Context) (*StoryRecord, error) {
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

func (_c *StoryRecordCreate) createSpec() (*StoryRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &StoryRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(storyrecord.Table, sqlgraph.NewFieldSpec(storyrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StoryID(); ok {
		_spec.SetField(storyrecord.FieldStoryID, field.TypeString, value)
		_node.StoryID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(storyrecord.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(storyrecord.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.Theme(); ok {
		_spec.SetField(storyrecord.FieldTheme, field.TypeString, value)
		_node.Theme = value
	}
	if value, ok := _c.mutation.WordCount(); ok {
		_spec.SetField(storyrecord.FieldWordCount, field.TypeInt, value)
		_node.WordCount = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(storyrecord.FieldContent, field.TypeBytes, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(storyrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// StoryRecordCreateBulk is the builder for creating many StoryRecord entities in bulk.
type StoryRecordCreateBulk struct {
	config
	err      error
	builders []*StoryRecordCreate
}

// Save creates the StoryRecord entities in the database.
func (_c *StoryRecordCreateBulk) Save(ctx context.Context) ([]*StoryRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StoryRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StoryRecordMutation)
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
func (_c *StoryRecordCreateBulk) SaveX(ctx context.Context) []*StoryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StoryRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StoryRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
