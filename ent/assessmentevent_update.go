// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anand/fintype/ent/assessmentevent"
	"github.com/anand/fintype/ent/predicate"
)

// AssessmentEventUpdate is the builder for updating AssessmentEvent entities.
type AssessmentEventUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentEventMutation
}

// Where appends a list predicates to the AssessmentEventUpdate builder.
func (_u *AssessmentEventUpdate) Where(ps ...predicate.AssessmentEvent) *AssessmentEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTestID sets the "test_id" field.
func (_u *AssessmentEventUpdate) SetTestID(v string) *AssessmentEventUpdate {
	_u.mutation.SetTestID(v)
	return _u
}

// SetNillableTestID sets the "test_id" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableTestID(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetTestID(*v)
	}
	return _u
}

// SetPrimaryDimension sets the "primary_dimension" field.
func (_u *AssessmentEventUpdate) SetPrimaryDimension(v string) *AssessmentEventUpdate {
	_u.mutation.SetPrimaryDimension(v)
	return _u
}

// SetNillablePrimaryDimension sets the "primary_dimension" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillablePrimaryDimension(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetPrimaryDimension(*v)
	}
	return _u
}

// SetSecondaryDimension sets the "secondary_dimension" field.
func (_u *AssessmentEventUpdate) SetSecondaryDimension(v string) *AssessmentEventUpdate {
	_u.mutation.SetSecondaryDimension(v)
	return _u
}

// SetNillableSecondaryDimension sets the "secondary_dimension" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableSecondaryDimension(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetSecondaryDimension(*v)
	}
	return _u
}

// SetCombination sets the "combination" field.
func (_u *AssessmentEventUpdate) SetCombination(v string) *AssessmentEventUpdate {
	_u.mutation.SetCombination(v)
	return _u
}

// SetNillableCombination sets the "combination" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableCombination(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetCombination(*v)
	}
	return _u
}

// SetBlindSpot sets the "blind_spot" field.
func (_u *AssessmentEventUpdate) SetBlindSpot(v string) *AssessmentEventUpdate {
	_u.mutation.SetBlindSpot(v)
	return _u
}

// SetNillableBlindSpot sets the "blind_spot" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableBlindSpot(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetBlindSpot(*v)
	}
	return _u
}

// SetTotals sets the "totals" field.
func (_u *AssessmentEventUpdate) SetTotals(v map[string]int) *AssessmentEventUpdate {
	_u.mutation.SetTotals(v)
	return _u
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_u *AssessmentEventUpdate) Mutation() *AssessmentEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentEventUpdate) check() error {
	if v, ok := _u.mutation.TestID(); ok {
		if err := assessmentevent.TestIDValidator(v); err != nil {
			return &ValidationError{Name: "test_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.test_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PrimaryDimension(); ok {
		if err := assessmentevent.PrimaryDimensionValidator(v); err != nil {
			return &ValidationError{Name: "primary_dimension", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.primary_dimension": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SecondaryDimension(); ok {
		if err := assessmentevent.SecondaryDimensionValidator(v); err != nil {
			return &ValidationError{Name: "secondary_dimension", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.secondary_dimension": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Combination(); ok {
		if err := assessmentevent.CombinationValidator(v); err != nil {
			return &ValidationError{Name: "combination", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.combination": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BlindSpot(); ok {
		if err := assessmentevent.BlindSpotValidator(v); err != nil {
			return &ValidationError{Name: "blind_spot", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.blind_spot": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentevent.Table, assessmentevent.Columns, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TestID(); ok {
		_spec.SetField(assessmentevent.FieldTestID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PrimaryDimension(); ok {
		_spec.SetField(assessmentevent.FieldPrimaryDimension, field.TypeString, value)
	}
	if value, ok := _u.mutation.SecondaryDimension(); ok {
		_spec.SetField(assessmentevent.FieldSecondaryDimension, field.TypeString, value)
	}
	if value, ok := _u.mutation.Combination(); ok {
		_spec.SetField(assessmentevent.FieldCombination, field.TypeString, value)
	}
	if value, ok := _u.mutation.BlindSpot(); ok {
		_spec.SetField(assessmentevent.FieldBlindSpot, field.TypeString, value)
	}
	if value, ok := _u.mutation.Totals(); ok {
		_spec.SetField(assessmentevent.FieldTotals, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentEventUpdateOne is the builder for updating a single AssessmentEvent entity.
type AssessmentEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentEventMutation
}

// SetTestID sets the "test_id" field.
func (_u *AssessmentEventUpdateOne) SetTestID(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetTestID(v)
	return _u
}

// SetNillableTestID sets the "test_id" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableTestID(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetTestID(*v)
	}
	return _u
}

// SetPrimaryDimension sets the "primary_dimension" field.
func (_u *AssessmentEventUpdateOne) SetPrimaryDimension(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetPrimaryDimension(v)
	return _u
}

// SetNillablePrimaryDimension sets the "primary_dimension" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillablePrimaryDimension(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetPrimaryDimension(*v)
	}
	return _u
}

// SetSecondaryDimension sets the "secondary_dimension" field.
func (_u *AssessmentEventUpdateOne) SetSecondaryDimension(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetSecondaryDimension(v)
	return _u
}

// SetNillableSecondaryDimension sets the "secondary_dimension" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableSecondaryDimension(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetSecondaryDimension(*v)
	}
	return _u
}

// SetCombination sets the "combination" field.
func (_u *AssessmentEventUpdateOne) SetCombination(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetCombination(v)
	return _u
}

// SetNillableCombination sets the "combination" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableCombination(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetCombination(*v)
	}
	return _u
}

// SetBlindSpot sets the "blind_spot" field.
func (_u *AssessmentEventUpdateOne) SetBlindSpot(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetBlindSpot(v)
	return _u
}

// SetNillableBlindSpot sets the "blind_spot" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableBlindSpot(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetBlindSpot(*v)
	}
	return _u
}

// SetTotals sets the "totals" field.
func (_u *AssessmentEventUpdateOne) SetTotals(v map[string]int) *AssessmentEventUpdateOne {
	_u.mutation.SetTotals(v)
	return _u
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_u *AssessmentEventUpdateOne) Mutation() *AssessmentEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssessmentEventUpdate builder.
func (_u *AssessmentEventUpdateOne) Where(ps ...predicate.AssessmentEvent) *AssessmentEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentEventUpdateOne) Select(field string, fields ...string) *AssessmentEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssessmentEvent entity.
func (_u *AssessmentEventUpdateOne) Save(ctx context.Context) (*AssessmentEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEventUpdateOne) SaveX(ctx context.Context) *AssessmentEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentEventUpdateOne) check() error {
	if v, ok := _u.mutation.TestID(); ok {
		if err := assessmentevent.TestIDValidator(v); err != nil {
			return &ValidationError{Name: "test_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.test_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PrimaryDimension(); ok {
		if err := assessmentevent.PrimaryDimensionValidator(v); err != nil {
			return &ValidationError{Name: "primary_dimension", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.primary_dimension": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SecondaryDimension(); ok {
		if err := assessmentevent.SecondaryDimensionValidator(v); err != nil {
			return &ValidationError{Name: "secondary_dimension", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.secondary_dimension": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Combination(); ok {
		if err := assessmentevent.CombinationValidator(v); err != nil {
			return &ValidationError{Name: "combination", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.combination": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BlindSpot(); ok {
		if err := assessmentevent.BlindSpotValidator(v); err != nil {
			return &ValidationError{Name: "blind_spot", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.blind_spot": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentEventUpdateOne) sqlSave(ctx context.Context) (_node *AssessmentEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentevent.Table, assessmentevent.Columns, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssessmentEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessmentevent.FieldID)
		for _, f := range fields {
			if !assessmentevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessmentevent.FieldID {
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
	if value, ok := _u.mutation.TestID(); ok {
		_spec.SetField(assessmentevent.FieldTestID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PrimaryDimension(); ok {
		_spec.SetField(assessmentevent.FieldPrimaryDimension, field.TypeString, value)
	}
	if value, ok := _u.mutation.SecondaryDimension(); ok {
		_spec.SetField(assessmentevent.FieldSecondaryDimension, field.TypeString, value)
	}
	if value, ok := _u.mutation.Combination(); ok {
		_spec.SetField(assessmentevent.FieldCombination, field.TypeString, value)
	}
	if value, ok := _u.mutation.BlindSpot(); ok {
		_spec.SetField(assessmentevent.FieldBlindSpot, field.TypeString, value)
	}
	if value, ok := _u.mutation.Totals(); ok {
		_spec.SetField(assessmentevent.FieldTotals, field.TypeJSON, value)
	}
	_node = &AssessmentEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
