// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/storiz/ent/predicate"
	"github.com/abhisek/storiz/ent/storyevent"
)

// StoryEventUpdate is the builder for updating StoryEvent entities.
type StoryEventUpdate struct {
	config
	hooks    []Hook
	mutation *StoryEventMutation
}

// Where appends a list predicates to the StoryEventUpdate builder.
func (_u *StoryEventUpdate) Where(ps ...predicate.StoryEvent) *StoryEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTheme sets the "theme" field.
func (_u *StoryEventUpdate) SetTheme(v string) *StoryEventUpdate {
	_u.mutation.SetTheme(v)
	return _u
}

// SetNillableTheme sets the "theme" field if the given value is not nil.
func (_u *StoryEventUpdate) SetNillableTheme(v *string) *StoryEventUpdate {
	if v != nil {
		_u.SetTheme(*v)
	}
	return _u
}

// SetSuggestedLengthSecs sets the "suggested_length_secs" field.
func (_u *StoryEventUpdate) SetSuggestedLengthSecs(v int) *StoryEventUpdate {
	_u.mutation.ResetSuggestedLengthSecs()
	_u.mutation.SetSuggestedLengthSecs(v)
	return _u
}

// SetNillableSuggestedLengthSecs sets the "suggested_length_secs" field if the given value is not nil.
func (_u *StoryEventUpdate) SetNillableSuggestedLengthSecs(v *int) *StoryEventUpdate {
	if v != nil {
		_u.SetSuggestedLengthSecs(*v)
	}
	return _u
}

// AddSuggestedLengthSecs adds value to the "suggested_length_secs" field.
func (_u *StoryEventUpdate) AddSuggestedLengthSecs(v int) *StoryEventUpdate {
	_u.mutation.AddSuggestedLengthSecs(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *StoryEventUpdate) SetTitle(v string) *StoryEventUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *StoryEventUpdate) SetNillableTitle(v *string) *StoryEventUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetGenerated sets the "generated" field.
func (_u *StoryEventUpdate) SetGenerated(v bool) *StoryEventUpdate {
	_u.mutation.SetGenerated(v)
	return _u
}

// SetNillableGenerated sets the "generated" field if the given value is not nil.
func (_u *StoryEventUpdate) SetNillableGenerated(v *bool) *StoryEventUpdate {
	if v != nil {
		_u.SetGenerated(*v)
	}
	return _u
}

// Mutation returns the StoryEventMutation object of the builder.
func (_u *StoryEventUpdate) Mutation() *StoryEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StoryEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StoryEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StoryEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StoryEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StoryEventUpdate) check() error {
	if v, ok := _u.mutation.Theme(); ok {
		if err := storyevent.ThemeValidator(v); err != nil {
			return &ValidationError{Name: "theme", err: fmt.Errorf(`ent: validator failed for field "StoryEvent.theme": %w`, err)}
		}
	}
	return nil
}

func (_u *StoryEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(storyevent.Table, storyevent.Columns, sqlgraph.NewFieldSpec(storyevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Theme(); ok {
		_spec.SetField(storyevent.FieldTheme, field.TypeString, value)
	}
	if value, ok := _u.mutation.SuggestedLengthSecs(); ok {
		_spec.SetField(storyevent.FieldSuggestedLengthSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuggestedLengthSecs(); ok {
		_spec.AddField(storyevent.FieldSuggestedLengthSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(storyevent.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Generated(); ok {
		_spec.SetField(storyevent.FieldGenerated, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{storyevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StoryEventUpdateOne is the builder for updating a single StoryEvent entity.
type StoryEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StoryEventMutation
}

// SetTheme sets the "theme" field.
func (_u *StoryEventUpdateOne) SetTheme(v string) *StoryEventUpdateOne {
	_u.mutation.SetTheme(v)
	return _u
}

// SetNillableTheme sets the "theme" field if the given value is not nil.
func (_u *StoryEventUpdateOne) SetNillableTheme(v *string) *StoryEventUpdateOne {
	if v != nil {
		_u.SetTheme(*v)
	}
	return _u
}

// SetSuggestedLengthSecs sets the "suggested_length_secs" field.
func (_u *StoryEventUpdateOne) SetSuggestedLengthSecs(v int) *StoryEventUpdateOne {
	_u.mutation.ResetSuggestedLengthSecs()
	_u.mutation.SetSuggestedLengthSecs(v)
	return _u
}

// SetNillableSuggestedLengthSecs sets the "suggested_length_secs" field if the given value is not nil.
func (_u *StoryEventUpdateOne) SetNillableSuggestedLengthSecs(v *int) *StoryEventUpdateOne {
	if v != nil {
		_u.SetSuggestedLengthSecs(*v)
	}
	return _u
}

// AddSuggestedLengthSecs adds value to the "suggested_length_secs" field.
func (_u *StoryEventUpdateOne) AddSuggestedLengthSecs(v int) *StoryEventUpdateOne {
	_u.mutation.AddSuggestedLengthSecs(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *StoryEventUpdateOne) SetTitle(v string) *StoryEventUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *StoryEventUpdateOne) SetNillableTitle(v *string) *StoryEventUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetGenerated sets the "generated" field.
func (_u *StoryEventUpdateOne) SetGenerated(v bool) *StoryEventUpdateOne {
	_u.mutation.SetGenerated(v)
	return _u
}

// SetNillableGenerated sets the "generated" field if the given value is not nil.
func (_u *StoryEventUpdateOne) SetNillableGenerated(v *bool) *StoryEventUpdateOne {
	if v != nil {
		_u.SetGenerated(*v)
	}
	return _u
}

// Mutation returns the StoryEventMutation object of the builder.
func (_u *StoryEventUpdateOne) Mutation() *StoryEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the StoryEventUpdate builder.
func (_u *StoryEventUpdateOne) Where(ps ...predicate.StoryEvent) *StoryEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StoryEventUpdateOne) Select(field string, fields ...string) *StoryEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StoryEvent entity.
func (_u *StoryEventUpdateOne) Save(ctx context.Context) (*StoryEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StoryEventUpdateOne) SaveX(ctx context.Context) *StoryEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StoryEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StoryEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StoryEventUpdateOne) check() error {
	if v, ok := _u.mutation.Theme(); ok {
		if err := storyevent.ThemeValidator(v); err != nil {
			return &ValidationError{Name: "theme", err: fmt.Errorf(`ent: validator failed for field "StoryEvent.theme": %w`, err)}
		}
	}
	return nil
}

func (_u *StoryEventUpdateOne) sqlSave(ctx context.Context) (_node *StoryEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(storyevent.Table, storyevent.Columns, sqlgraph.NewFieldSpec(storyevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StoryEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, storyevent.FieldID)
		for _, f := range fields {
			if !storyevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != storyevent.FieldID {
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
	if value, ok := _u.mutation.Theme(); ok {
		_spec.SetField(storyevent.FieldTheme, field.TypeString, value)
	}
	if value, ok := _u.mutation.SuggestedLengthSecs(); ok {
		_spec.SetField(storyevent.FieldSuggestedLengthSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuggestedLengthSecs(); ok {
		_spec.AddField(storyevent.FieldSuggestedLengthSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(storyevent.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Generated(); ok {
		_spec.SetField(storyevent.FieldGenerated, field.TypeBool, value)
	}
	_node = &StoryEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{storyevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
