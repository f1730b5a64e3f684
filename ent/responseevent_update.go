// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anand/fintype/ent/predicate"
	"github.com/anand/fintype/ent/responseevent"
)

// ResponseEventUpdate is the builder for updating ResponseEvent entities.
type ResponseEventUpdate struct {
	config
	hooks    []Hook
	mutation *ResponseEventMutation
}

// Where appends a list predicates to the ResponseEventUpdate builder.
func (_u *ResponseEventUpdate) Where(ps ...predicate.ResponseEvent) *ResponseEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTestID sets the "test_id" field.
func (_u *ResponseEventUpdate) SetTestID(v string) *ResponseEventUpdate {
	_u.mutation.SetTestID(v)
	return _u
}

// SetNillableTestID sets the "test_id" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableTestID(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetTestID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *ResponseEventUpdate) SetQuestionID(v int) *ResponseEventUpdate {
	_u.mutation.ResetQuestionID()
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableQuestionID(v *int) *ResponseEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// AddQuestionID adds value to the "question_id" field.
func (_u *ResponseEventUpdate) AddQuestionID(v int) *ResponseEventUpdate {
	_u.mutation.AddQuestionID(v)
	return _u
}

// SetPhase sets the "phase" field.
func (_u *ResponseEventUpdate) SetPhase(v string) *ResponseEventUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillablePhase(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetOptionText sets the "option_text" field.
func (_u *ResponseEventUpdate) SetOptionText(v string) *ResponseEventUpdate {
	_u.mutation.SetOptionText(v)
	return _u
}

// SetNillableOptionText sets the "option_text" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableOptionText(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetOptionText(*v)
	}
	return _u
}

// SetDimension sets the "dimension" field.
func (_u *ResponseEventUpdate) SetDimension(v string) *ResponseEventUpdate {
	_u.mutation.SetDimension(v)
	return _u
}

// SetNillableDimension sets the "dimension" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableDimension(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetDimension(*v)
	}
	return _u
}

// Mutation returns the ResponseEventMutation object of the builder.
func (_u *ResponseEventUpdate) Mutation() *ResponseEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResponseEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResponseEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResponseEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResponseEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResponseEventUpdate) check() error {
	if v, ok := _u.mutation.TestID(); ok {
		if err := responseevent.TestIDValidator(v); err != nil {
			return &ValidationError{Name: "test_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.test_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := responseevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phase(); ok {
		if err := responseevent.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.phase": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionText(); ok {
		if err := responseevent.OptionTextValidator(v); err != nil {
			return &ValidationError{Name: "option_text", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.option_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Dimension(); ok {
		if err := responseevent.DimensionValidator(v); err != nil {
			return &ValidationError{Name: "dimension", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.dimension": %w`, err)}
		}
	}
	return nil
}

func (_u *ResponseEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(responseevent.Table, responseevent.Columns, sqlgraph.NewFieldSpec(responseevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TestID(); ok {
		_spec.SetField(responseevent.FieldTestID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(responseevent.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionID(); ok {
		_spec.AddField(responseevent.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(responseevent.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionText(); ok {
		_spec.SetField(responseevent.FieldOptionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Dimension(); ok {
		_spec.SetField(responseevent.FieldDimension, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{responseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResponseEventUpdateOne is the builder for updating a single ResponseEvent entity.
type ResponseEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResponseEventMutation
}

// SetTestID sets the "test_id" field.
func (_u *ResponseEventUpdateOne) SetTestID(v string) *ResponseEventUpdateOne {
	_u.mutation.SetTestID(v)
	return _u
}

// SetNillableTestID sets the "test_id" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableTestID(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetTestID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *ResponseEventUpdateOne) SetQuestionID(v int) *ResponseEventUpdateOne {
	_u.mutation.ResetQuestionID()
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableQuestionID(v *int) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// AddQuestionID adds value to the "question_id" field.
func (_u *ResponseEventUpdateOne) AddQuestionID(v int) *ResponseEventUpdateOne {
	_u.mutation.AddQuestionID(v)
	return _u
}

// SetPhase sets the "phase" field.
func (_u *ResponseEventUpdateOne) SetPhase(v string) *ResponseEventUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillablePhase(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetOptionText sets the "option_text" field.
func (_u *ResponseEventUpdateOne) SetOptionText(v string) *ResponseEventUpdateOne {
	_u.mutation.SetOptionText(v)
	return _u
}

// SetNillableOptionText sets the "option_text" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableOptionText(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetOptionText(*v)
	}
	return _u
}

// SetDimension sets the "dimension" field.
func (_u *ResponseEventUpdateOne) SetDimension(v string) *ResponseEventUpdateOne {
	_u.mutation.SetDimension(v)
	return _u
}

// SetNillableDimension sets the "dimension" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableDimension(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetDimension(*v)
	}
	return _u
}

// Mutation returns the ResponseEventMutation object of the builder.
func (_u *ResponseEventUpdateOne) Mutation() *ResponseEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResponseEventUpdate builder.
func (_u *ResponseEventUpdateOne) Where(ps ...predicate.ResponseEvent) *ResponseEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResponseEventUpdateOne) Select(field string, fields ...string) *ResponseEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResponseEvent entity.
func (_u *ResponseEventUpdateOne) Save(ctx context.Context) (*ResponseEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResponseEventUpdateOne) SaveX(ctx context.Context) *ResponseEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResponseEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResponseEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResponseEventUpdateOne) check() error {
	if v, ok := _u.mutation.TestID(); ok {
		if err := responseevent.TestIDValidator(v); err != nil {
			return &ValidationError{Name: "test_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.test_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := responseevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phase(); ok {
		if err := responseevent.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.phase": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionText(); ok {
		if err := responseevent.OptionTextValidator(v); err != nil {
			return &ValidationError{Name: "option_text", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.option_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Dimension(); ok {
		if err := responseevent.DimensionValidator(v); err != nil {
			return &ValidationError{Name: "dimension", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.dimension": %w`, err)}
		}
	}
	return nil
}

func (_u *ResponseEventUpdateOne) sqlSave(ctx context.Context) (_node *ResponseEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(responseevent.Table, responseevent.Columns, sqlgraph.NewFieldSpec(responseevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResponseEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, responseevent.FieldID)
		for _, f := range fields {
			if !responseevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != responseevent.FieldID {
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
		_spec.SetField(responseevent.FieldTestID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(responseevent.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionID(); ok {
		_spec.AddField(responseevent.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(responseevent.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionText(); ok {
		_spec.SetField(responseevent.FieldOptionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Dimension(); ok {
		_spec.SetField(responseevent.FieldDimension, field.TypeString, value)
	}
	_node = &ResponseEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{responseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
