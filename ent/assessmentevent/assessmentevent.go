// Code generated by ent, DO NOT EDIT.

package assessmentevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the assessmentevent type in the database.
	Label = "assessment_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldTestID holds the string denoting the test_id field in the database.
	FieldTestID = "test_id"
	// FieldPrimaryDimension holds the string denoting the primary_dimension field in the database.
	FieldPrimaryDimension = "primary_dimension"
	// FieldSecondaryDimension holds the string denoting the secondary_dimension field in the database.
	FieldSecondaryDimension = "secondary_dimension"
	// FieldCombination holds the string denoting the combination field in the database.
	FieldCombination = "combination"
	// FieldBlindSpot holds the string denoting the blind_spot field in the database.
	FieldBlindSpot = "blind_spot"
	// FieldTotals holds the string denoting the totals field in the database.
	FieldTotals = "totals"
	// Table holds the table name of the assessmentevent in the database.
	Table = "assessment_events"
)

// Columns holds all SQL columns for assessmentevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldTestID,
	FieldPrimaryDimension,
	FieldSecondaryDimension,
	FieldCombination,
	FieldBlindSpot,
	FieldTotals,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// TestIDValidator is a validator for the "test_id" field. It is called by the builders before save.
	TestIDValidator func(string) error
	// PrimaryDimensionValidator is a validator for the "primary_dimension" field. It is called by the builders before save.
	PrimaryDimensionValidator func(string) error
	// SecondaryDimensionValidator is a validator for the "secondary_dimension" field. It is called by the builders before save.
	SecondaryDimensionValidator func(string) error
	// CombinationValidator is a validator for the "combination" field. It is called by the builders before save.
	CombinationValidator func(string) error
	// BlindSpotValidator is a validator for the "blind_spot" field. It is called by the builders before save.
	BlindSpotValidator func(string) error
)

// OrderOption defines the ordering options for the AssessmentEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByTestID orders the results by the test_id field.
func ByTestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTestID, opts...).ToFunc()
}

// ByPrimaryDimension orders the results by the primary_dimension field.
func ByPrimaryDimension(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrimaryDimension, opts...).ToFunc()
}

// BySecondaryDimension orders the results by the secondary_dimension field.
func BySecondaryDimension(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSecondaryDimension, opts...).ToFunc()
}

// ByCombination orders the results by the combination field.
func ByCombination(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCombination, opts...).ToFunc()
}

// ByBlindSpot orders the results by the blind_spot field.
func ByBlindSpot(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlindSpot, opts...).ToFunc()
}
