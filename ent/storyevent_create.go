// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/storiz/ent/storyevent"
)

// StoryEventCreate is the builder for creating a StoryEvent entity.
type StoryEventCreate struct {
	config
	mutation *StoryEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *StoryEventCreate) SetSequence(v int64) *StoryEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *StoryEventCreate) SetTimestamp(v time.Time) *StoryEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *StoryEventCreate) SetNillableTimestamp(v *time.Time) *StoryEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetTheme sets the "theme" field.
func (_c *StoryEventCreate) SetTheme(v string) *StoryEventCreate {
	_c.mutation.SetTheme(v)
	return _c
}

// SetSuggestedLengthSecs sets the "suggested_length_secs" field.
func (_c *StoryEventCreate) SetSuggestedLengthSecs(v int) *StoryEventCreate {
	_c.mutation.SetSuggestedLengthSecs(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *StoryEventCreate) SetTitle(v string) *StoryEventCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *StoryEventCreate) SetNillableTitle(v *string) *StoryEventCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetGenerated sets the "generated" field.
func (_c *StoryEventCreate) SetGenerated(v bool) *StoryEventCreate {
	_c.mutation.SetGenerated(v)
	return _c
}

// SetNillableGenerated sets the "generated" field if the given value is not nil.
func (_c *StoryEventCreate) SetNillableGenerated(v *bool) *StoryEventCreate {
	if v != nil {
		_c.SetGenerated(*v)
	}
	return _c
}

// Mutation returns the StoryEventMutation object of the builder.
func (_c *StoryEventCreate) Mutation() *StoryEventMutation {
	return _c.mutation
}

// Save creates the StoryEvent in the database.
func (_c *StoryEventCreate) Save(ctx context.Context) (*StoryEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StoryEventCreate) SaveX(ctx context.Context) *StoryEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StoryEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StoryEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StoryEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := storyevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Title(); !ok {
		v := storyevent.DefaultTitle
		_c.mutation.SetTitle(v)
	}
	if _, ok := _c.mutation.Generated(); !ok {
		v := storyevent.DefaultGenerated
		_c.mutation.SetGenerated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StoryEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "StoryEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "StoryEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Theme(); !ok {
		return &ValidationError{Name: "theme", err: errors.New(`ent: missing required field "StoryEvent.theme"`)}
	}
	if v, ok := _c.mutation.Theme(); ok {
		if err := storyevent.ThemeValidator(v); err != nil {
			return &ValidationError{Name: "theme", err: fmt.Errorf(`ent: validator failed for field "StoryEvent.theme": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SuggestedLengthSecs(); !ok {
		return &ValidationError{Name: "suggested_length_secs", err: errors.New(`ent: missing required field "StoryEvent.suggested_length_secs"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "StoryEvent.title"`)}
	}
	if _, ok := _c.mutation.Generated(); !ok {
		return &ValidationError{Name: "generated", err: errors.New(`ent: missing required field "StoryEvent.generated"`)}
	}
	return nil
}

func (_c *StoryEventCreate) sqlSave(ctx context.Context) (*StoryEvent, error) {
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

func (_c *StoryEventCreate) createSpec() (*StoryEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &StoryEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(storyevent.Table, sqlgraph.NewFieldSpec(storyevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(storyevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(storyevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Theme(); ok {
		_spec.SetField(storyevent.FieldTheme, field.TypeString, value)
		_node.Theme = value
	}
	if value, ok := _c.mutation.SuggestedLengthSecs(); ok {
		_spec.SetField(storyevent.FieldSuggestedLengthSecs, field.TypeInt, value)
		_node.SuggestedLengthSecs = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(storyevent.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Generated(); ok {
		_spec.SetField(storyevent.FieldGenerated, field.TypeBool, value)
		_node.Generated = value
	}
	return _node, _spec
}

// StoryEventCreateBulk is the builder for creating many StoryEvent entities in bulk.
type StoryEventCreateBulk struct {
	config
	err      error
	builders []*StoryEventCreate
}

// Save creates the StoryEvent entities in the database.
func (_c *StoryEventCreateBulk) Save(ctx context.Context) ([]*StoryEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StoryEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StoryEventMutation)
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
func (_c *StoryEventCreateBulk) SaveX(ctx context.Context) []*StoryEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StoryEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StoryEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
