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
	"github.com/mkrishnan/storyfox/ent/storyrecord"
)

// StoryRecordUpdate is the builder for updating StoryRecord entities.
type StoryRecordUpdate struct {
	config
	hooks    []Hook
	mutation *StoryRecordMutation
}

// Where appends a list predicates to the StoryRecordUpdate builder.
func (_u *StoryRecordUpdate) Where(ps ...predicate.StoryRecord) *StoryRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStoryID sets the "story_id" field.
func (_u *StoryRecordUpdate) SetStoryID(v string) *StoryRecordUpdate {
	_u.mutation.SetStoryID(v)
	return _u
}

// SetNillableStoryID sets the "story_id" field if the given value is not nil.
func (_u *StoryRecordUpdate) SetNillableStoryID(v *string) *StoryRecordUpdate {
	if v != nil {
		_u.SetStoryID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *StoryRecordUpdate) SetTitle(v string) *StoryRecordUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *StoryRecordUpdate) SetNillableTitle(v *string) *StoryRecordUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *StoryRecordUpdate) SetLanguage(v string) *StoryRecordUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *StoryRecordUpdate) SetNillableLanguage(v *string) *StoryRecordUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetTheme sets the "theme" field.
func (_u *StoryRecordUpdate) SetTheme(v string) *StoryRecordUpdate {
	_u.mutation.SetTheme(v)
	return _u
}

// SetNillableTheme sets the "theme" field if the given value is not nil.
func (_u *StoryRecordUpdate) SetNillableTheme(v *string) *StoryRecordUpdate {
	if v != nil {
		_u.SetTheme(*v)
	}
	return _u
}

// SetWordCount sets the "word_count" field.
func (_u *StoryRecordUpdate) SetWordCount(v int) *StoryRecordUpdate {
	_u.mutation.ResetWordCount()
	_u.mutation.SetWordCount(v)
	return _u
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (_u *StoryRecordUpdate) SetNillableWordCount(v *int) *StoryRecordUpdate {
	if v != nil {
		_u.SetWordCount(*v)
	}
	return _u
}

// AddWordCount adds value to the "word_count" field.
func (_u *StoryRecordUpdate) AddWordCount(v int) *StoryRecordUpdate {
	_u.mutation.AddWordCount(v)
	return _u
}

// SetContent sets the "content" field.
func (_u *StoryRecordUpdate) SetContent(v []byte) *StoryRecordUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// Mutation returns the StoryRecordMutation object of the builder.
func (_u *StoryRecordUpdate) Mutation() *StoryRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StoryRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StoryRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StoryRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StoryRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StoryRecordUpdate) check() error {
	if v, ok := _u.mutation.StoryID(); ok {
		if err := storyrecord.StoryIDValidator(v); err != nil {
			return &ValidationError{Name: "story_id", err: fmt.Errorf(`ent: validator failed for field "StoryRecord.story_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := storyrecord.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "StoryRecord.title": %w`, err)}
		}
	}
	return nil
}

func (_u *StoryRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(storyrecord.Table, storyrecord.Columns, sqlgraph.NewFieldSpec(storyrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StoryID(); ok {
		_spec.SetField(storyrecord.FieldStoryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(storyrecord.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(storyrecord.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Theme(); ok {
		_spec.SetField(storyrecord.FieldTheme, field.TypeString, value)
	}
	if value, ok := _u.mutation.WordCount(); ok {
		_spec.SetField(storyrecord.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWordCount(); ok {
		_spec.AddField(storyrecord.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(storyrecord.FieldContent, field.TypeBytes, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{storyrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StoryRecordUpdateOne is the builder for updating a single StoryRecord entity.
type StoryRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StoryRecordMutation
}

// SetStoryID sets the "story_id" field.
func (_u *StoryRecordUpdateOne) SetStoryID(v string) *StoryRecordUpdateOne {
	_u.mutation.SetStoryID(v)
	return _u
}

// SetNillableStoryID sets the "story_id" field if the given value is not nil.
func (_u *StoryRecordUpdateOne) SetNillableStoryID(v *string) *StoryRecordUpdateOne {
	if v != nil {
		_u.SetStoryID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *StoryRecordUpdateOne) SetTitle(v string) *StoryRecordUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *StoryRecordUpdateOne) SetNillableTitle(v *string) *StoryRecordUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *StoryRecordUpdateOne) SetLanguage(v string) *StoryRecordUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *StoryRecordUpdateOne) SetNillableLanguage(v *string) *StoryRecordUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetTheme sets the "theme" field.
func (_u *StoryRecordUpdateOne) SetTheme(v string) *StoryRecordUpdateOne {
	_u.mutation.SetTheme(v)
	return _u
}

// SetNillableTheme sets the "theme" field if the given value is not nil.
func (_u *StoryRecordUpdateOne) SetNillableTheme(v *string) *StoryRecordUpdateOne {
	if v != nil {
		_u.SetTheme(*v)
	}
	return _u
}

// SetWordCount sets the "word_count" field.
func (_u *StoryRecordUpdateOne) SetWordCount(v int) *StoryRecordUpdateOne {
	_u.mutation.ResetWordCount()
	_u.mutation.SetWordCount(v)
	return _u
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (_u *StoryRecordUpdateOne) SetNillableWordCount(v *int) *StoryRecordUpdateOne {
	if v != nil {
		_u.SetWordCount(*v)
	}
	return _u
}

// AddWordCount adds value to the "word_count" field.
func (_u *StoryRecordUpdateOne) AddWordCount(v int) *StoryRecordUpdateOne {
	_u.mutation.AddWordCount(v)
	return _u
}

// SetContent sets the "content" field.
func (_u *StoryRecordUpdateOne) SetContent(v []byte) *StoryRecordUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// Mutation returns the StoryRecordMutation object of the builder.
func (_u *StoryRecordUpdateOne) Mutation() *StoryRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the StoryRecordUpdate builder.
func (_u *StoryRecordUpdateOne) Where(ps ...predicate.StoryRecord) *StoryRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StoryRecordUpdateOne) Select(field string, fields ...string) *StoryRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StoryRecord entity.
func (_u *StoryRecordUpdateOne) Save(ctx context.Context) (*StoryRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StoryRecordUpdateOne) SaveX(ctx context.Context) *StoryRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StoryRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StoryRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StoryRecordUpdateOne) check() error {
	if v, ok := _u.mutation.StoryID(); ok {
		if err := storyrecord.StoryIDValidator(v); err != nil {
			return &ValidationError{Name: "story_id", err: fmt.Errorf(`ent: validator failed for field "StoryRecord.story_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := storyrecord.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "StoryRecord.title": %w`, err)}
		}
	}
	return nil
}

func (_u *StoryRecordUpdateOne) sqlSave(ctx context.Context) (_node *StoryRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(storyrecord.Table, storyrecord.Columns, sqlgraph.NewFieldSpec(storyrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StoryRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, storyrecord.FieldID)
		for _, f := range fields {
			if !storyrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != storyrecord.FieldID {
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
	if value, ok := _u.mutation.StoryID(); ok {
		_spec.SetField(storyrecord.FieldStoryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(storyrecord.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(storyrecord.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Theme(); ok {
		_spec.SetField(storyrecord.FieldTheme, field.TypeString, value)
	}
	if value, ok := _u.mutation.WordCount(); ok {
		_spec.SetField(storyrecord.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWordCount(); ok {
		_spec.AddField(storyrecord.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(storyrecord.FieldContent, field.TypeBytes, value)
	}
	_node = &StoryRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{storyrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
