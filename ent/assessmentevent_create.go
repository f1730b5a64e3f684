// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anand/fintype/ent/assessmentevent"
)

// AssessmentEventCreate is the builder for creating a AssessmentEvent entity.
type AssessmentEventCreate struct {
	config
	mutation *AssessmentEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AssessmentEventCreate) SetSequence(v int64) *AssessmentEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AssessmentEventCreate) SetTimestamp(v time.Time) *AssessmentEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableTimestamp(v *time.Time) *AssessmentEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetTestID sets the "test_id" field.
func (_c *AssessmentEventCreate) SetTestID(v string) *AssessmentEventCreate {
	_c.mutation.SetTestID(v)
	return _c
}

// SetPrimaryDimension sets the "primary_dimension" field.
func (_c *AssessmentEventCreate) SetPrimaryDimension(v string) *AssessmentEventCreate {
	_c.mutation.SetPrimaryDimension(v)
	return _c
}

// SetSecondaryDimension sets the "secondary_dimension" field.
func (_c *AssessmentEventCreate) SetSecondaryDimension(v string) *AssessmentEventCreate {
	_c.mutation.SetSecondaryDimension(v)
	return _c
}

// SetCombination sets the "combination" field.
func (_c *AssessmentEventCreate) SetCombination(v string) *AssessmentEventCreate {
	_c.mutation.SetCombination(v)
	return _c
}

// SetBlindSpot sets the "blind_spot" field.
func (_c *AssessmentEventCreate) SetBlindSpot(v string) *AssessmentEventCreate {
	_c.mutation.SetBlindSpot(v)
	return _c
}

// SetTotals sets the "totals" field.
func (_c *AssessmentEventCreate) SetTotals(v map[string]int) *AssessmentEventCreate {
	_c.mutation.SetTotals(v)
	return _c
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_c *AssessmentEventCreate) Mutation() *AssessmentEventMutation {
	return _c.mutation
}

// Save creates the AssessmentEvent in the database.
func (_c *AssessmentEventCreate) Save(ctx context.Context) (*AssessmentEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssessmentEventCreate) SaveX(ctx context.Context) *AssessmentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssessmentEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := assessmentevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssessmentEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AssessmentEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AssessmentEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.TestID(); !ok {
		return &ValidationError{Name: "test_id", err: errors.New(`ent: missing required field "AssessmentEvent.test_id"`)}
	}
	if v, ok := _c.mutation.TestID(); ok {
		if err := assessmentevent.TestIDValidator(v); err != nil {
			return &ValidationError{Name: "test_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.test_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PrimaryDimension(); !ok {
		return &ValidationError{Name: "primary_dimension", err: errors.New(`ent: missing required field "AssessmentEvent.primary_dimension"`)}
	}
	if v, ok := _c.mutation.PrimaryDimension(); ok {
		if err := assessmentevent.PrimaryDimensionValidator(v); err != nil {
			return &ValidationError{Name: "primary_dimension", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.primary_dimension": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SecondaryDimension(); !ok {
		return &ValidationError{Name: "secondary_dimension", err: errors.New(`ent: missing required field "AssessmentEvent.secondary_dimension"`)}
	}
	if v, ok := _c.mutation.SecondaryDimension(); ok {
		if err := assessmentevent.SecondaryDimensionValidator(v); err != nil {
			return &ValidationError{Name: "secondary_dimension", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.secondary_dimension": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Combination(); !ok {
		return &ValidationError{Name: "combination", err: errors.New(`ent: missing required field "AssessmentEvent.combination"`)}
	}
	if v, ok := _c.mutation.Combination(); ok {
		if err := assessmentevent.CombinationValidator(v); err != nil {
			return &ValidationError{Name: "combination", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.combination": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BlindSpot(); !ok {
		return &ValidationError{Name: "blind_spot", err: errors.New(`ent: missing required field "AssessmentEvent.blind_spot"`)}
	}
	if v, ok := _c.mutation.BlindSpot(); ok {
		if err := assessmentevent.BlindSpotValidator(v); err != nil {
			return &ValidationError{Name: "blind_spot", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.blind_spot": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Totals(); !ok {
		return &ValidationError{Name: "totals", err: errors.New(`ent: missing required field "AssessmentEvent.totals"`)}
	}
	return nil
}

func (_c *AssessmentEventCreate) sqlSave(ctx context.Context) (*AssessmentEvent, error) {
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

func (_c *AssessmentEventCreate) createSpec() (*AssessmentEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AssessmentEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assessmentevent.Table, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(assessmentevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(assessmentevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.TestID(); ok {
		_spec.SetField(assessmentevent.FieldTestID, field.TypeString, value)
		_node.TestID = value
	}
	if value, ok := _c.mutation.PrimaryDimension(); ok {
		_spec.SetField(assessmentevent.FieldPrimaryDimension, field.TypeString, value)
		_node.PrimaryDimension = value
	}
	if value, ok := _c.mutation.SecondaryDimension(); ok {
		_spec.SetField(assessmentevent.FieldSecondaryDimension, field.TypeString, value)
		_node.SecondaryDimension = value
	}
	if value, ok := _c.mutation.Combination(); ok {
		_spec.SetField(assessmentevent.FieldCombination, field.TypeString, value)
		_node.Combination = value
	}
	if value, ok := _c.mutation.BlindSpot(); ok {
		_spec.SetField(assessmentevent.FieldBlindSpot, field.TypeString, value)
		_node.BlindSpot = value
	}
	if value, ok := _c.mutation.Totals(); ok {
		_spec.SetField(assessmentevent.FieldTotals, field.TypeJSON, value)
		_node.Totals = value
	}
	return _node, _spec
}

// AssessmentEventCreateBulk is the builder for creating many AssessmentEvent entities in bulk.
type AssessmentEventCreateBulk struct {
	config
	err      error
	builders []*AssessmentEventCreate
}

// Save creates the AssessmentEvent entities in the database.
func (_c *AssessmentEventCreateBulk) Save(ctx context.Context) ([]*AssessmentEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AssessmentEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssessmentEventMutation)
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
func (_c *AssessmentEventCreateBulk) SaveX(ctx context.Context) []*AssessmentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
