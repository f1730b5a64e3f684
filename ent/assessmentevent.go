// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anand/fintype/ent/assessmentevent"
)

// AssessmentEvent is the model entity for the AssessmentEvent schema.
type AssessmentEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID of the finished test session
	TestID string `json:"test_id,omitempty"`
	// Highest-ranked dimension
	PrimaryDimension string `json:"primary_dimension,omitempty"`
	// Second-ranked dimension
	SecondaryDimension string `json:"secondary_dimension,omitempty"`
	// Two-letter combination code
	Combination string `json:"combination,omitempty"`
	// Lowest-ranked dimension
	BlindSpot string `json:"blind_spot,omitempty"`
	// Per-dimension total score snapshot
	Totals       map[string]int `json:"totals,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AssessmentEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case assessmentevent.FieldTotals:
			values[i] = new([]byte)
		case assessmentevent.FieldID, assessmentevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case assessmentevent.FieldTestID, assessmentevent.FieldPrimaryDimension, assessmentevent.FieldSecondaryDimension, assessmentevent.FieldCombination, assessmentevent.FieldBlindSpot:
			values[i] = new(sql.NullString)
		case assessmentevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AssessmentEvent fields.
func (_m *AssessmentEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case assessmentevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case assessmentevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case assessmentevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case assessmentevent.FieldTestID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field test_id", values[i])
			} else if value.Valid {
				_m.TestID = value.String
			}
		case assessmentevent.FieldPrimaryDimension:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field primary_dimension", values[i])
			} else if value.Valid {
				_m.PrimaryDimension = value.String
			}
		case assessmentevent.FieldSecondaryDimension:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field secondary_dimension", values[i])
			} else if value.Valid {
				_m.SecondaryDimension = value.String
			}
		case assessmentevent.FieldCombination:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field combination", values[i])
			} else if value.Valid {
				_m.Combination = value.String
			}
		case assessmentevent.FieldBlindSpot:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field blind_spot", values[i])
			} else if value.Valid {
				_m.BlindSpot = value.String
			}
		case assessmentevent.FieldTotals:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field totals", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Totals); err != nil {
					return fmt.Errorf("unmarshal field totals: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AssessmentEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AssessmentEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AssessmentEvent.
// Note that you need to call AssessmentEvent.Unwrap() before calling this method if this AssessmentEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AssessmentEvent) Update() *AssessmentEventUpdateOne {
	return NewAssessmentEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AssessmentEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AssessmentEvent) Unwrap() *AssessmentEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AssessmentEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AssessmentEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AssessmentEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("test_id=")
	builder.WriteString(_m.TestID)
	builder.WriteString(", ")
	builder.WriteString("primary_dimension=")
	builder.WriteString(_m.PrimaryDimension)
	builder.WriteString(", ")
	builder.WriteString("secondary_dimension=")
	builder.WriteString(_m.SecondaryDimension)
	builder.WriteString(", ")
	builder.WriteString("combination=")
	builder.WriteString(_m.Combination)
	builder.WriteString(", ")
	builder.WriteString("blind_spot=")
	builder.WriteString(_m.BlindSpot)
	builder.WriteString(", ")
	builder.WriteString("totals=")
	builder.WriteString(fmt.Sprintf("%v", _m.Totals))
	builder.WriteByte(')')
	return builder.String()
}

// AssessmentEvents is a parsable slice of AssessmentEvent.
type AssessmentEvents []*AssessmentEvent
