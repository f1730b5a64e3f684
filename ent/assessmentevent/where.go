// Code generated by ent, DO NOT EDIT.

package assessmentevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/anand/fintype/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TestID applies equality check predicate on the "test_id" field. It's identical to TestIDEQ.
func TestID(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldTestID, v))
}

// PrimaryDimension applies equality check predicate on the "primary_dimension" field. It's identical to PrimaryDimensionEQ.
func PrimaryDimension(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldPrimaryDimension, v))
}

// SecondaryDimension applies equality check predicate on the "secondary_dimension" field. It's identical to SecondaryDimensionEQ.
func SecondaryDimension(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldSecondaryDimension, v))
}

// Combination applies equality check predicate on the "combination" field. It's identical to CombinationEQ.
func Combination(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldCombination, v))
}

// BlindSpot applies equality check predicate on the "blind_spot" field. It's identical to BlindSpotEQ.
func BlindSpot(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldBlindSpot, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldTimestamp, v))
}

// TestIDEQ applies the EQ predicate on the "test_id" field.
func TestIDEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldTestID, v))
}

// TestIDNEQ applies the NEQ predicate on the "test_id" field.
func TestIDNEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldTestID, v))
}

// TestIDIn applies the In predicate on the "test_id" field.
func TestIDIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldTestID, vs...))
}

// TestIDNotIn applies the NotIn predicate on the "test_id" field.
func TestIDNotIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldTestID, vs...))
}

// TestIDGT applies the GT predicate on the "test_id" field.
func TestIDGT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldTestID, v))
}

// TestIDGTE applies the GTE predicate on the "test_id" field.
func TestIDGTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldTestID, v))
}

// TestIDLT applies the LT predicate on the "test_id" field.
func TestIDLT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldTestID, v))
}

// TestIDLTE applies the LTE predicate on the "test_id" field.
func TestIDLTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldTestID, v))
}

// TestIDContains applies the Contains predicate on the "test_id" field.
func TestIDContains(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContains(FieldTestID, v))
}

// TestIDHasPrefix applies the HasPrefix predicate on the "test_id" field.
func TestIDHasPrefix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasPrefix(FieldTestID, v))
}

// TestIDHasSuffix applies the HasSuffix predicate on the "test_id" field.
func TestIDHasSuffix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasSuffix(FieldTestID, v))
}

// TestIDEqualFold applies the EqualFold predicate on the "test_id" field.
func TestIDEqualFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEqualFold(FieldTestID, v))
}

// TestIDContainsFold applies the ContainsFold predicate on the "test_id" field.
func TestIDContainsFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContainsFold(FieldTestID, v))
}

// PrimaryDimensionEQ applies the EQ predicate on the "primary_dimension" field.
func PrimaryDimensionEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldPrimaryDimension, v))
}

// PrimaryDimensionNEQ applies the NEQ predicate on the "primary_dimension" field.
func PrimaryDimensionNEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldPrimaryDimension, v))
}

// PrimaryDimensionIn applies the In predicate on the "primary_dimension" field.
func PrimaryDimensionIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldPrimaryDimension, vs...))
}

// PrimaryDimensionNotIn applies the NotIn predicate on the "primary_dimension" field.
func PrimaryDimensionNotIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldPrimaryDimension, vs...))
}

// PrimaryDimensionGT applies the GT predicate on the "primary_dimension" field.
func PrimaryDimensionGT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldPrimaryDimension, v))
}

// PrimaryDimensionGTE applies the GTE predicate on the "primary_dimension" field.
func PrimaryDimensionGTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldPrimaryDimension, v))
}

// PrimaryDimensionLT applies the LT predicate on the "primary_dimension" field.
func PrimaryDimensionLT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldPrimaryDimension, v))
}

// PrimaryDimensionLTE applies the LTE predicate on the "primary_dimension" field.
func PrimaryDimensionLTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldPrimaryDimension, v))
}

// PrimaryDimensionContains applies the Contains predicate on the "primary_dimension" field.
func PrimaryDimensionContains(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContains(FieldPrimaryDimension, v))
}

// PrimaryDimensionHasPrefix applies the HasPrefix predicate on the "primary_dimension" field.
func PrimaryDimensionHasPrefix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasPrefix(FieldPrimaryDimension, v))
}

// PrimaryDimensionHasSuffix applies the HasSuffix predicate on the "primary_dimension" field.
func PrimaryDimensionHasSuffix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasSuffix(FieldPrimaryDimension, v))
}

// PrimaryDimensionEqualFold applies the EqualFold predicate on the "primary_dimension" field.
func PrimaryDimensionEqualFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEqualFold(FieldPrimaryDimension, v))
}

// PrimaryDimensionContainsFold applies the ContainsFold predicate on the "primary_dimension" field.
func PrimaryDimensionContainsFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContainsFold(FieldPrimaryDimension, v))
}

// SecondaryDimensionEQ applies the EQ predicate on the "secondary_dimension" field.
func SecondaryDimensionEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldSecondaryDimension, v))
}

// SecondaryDimensionNEQ applies the NEQ predicate on the "secondary_dimension" field.
func SecondaryDimensionNEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldSecondaryDimension, v))
}

// SecondaryDimensionIn applies the In predicate on the "secondary_dimension" field.
func SecondaryDimensionIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldSecondaryDimension, vs...))
}

// SecondaryDimensionNotIn applies the NotIn predicate on the "secondary_dimension" field.
func SecondaryDimensionNotIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldSecondaryDimension, vs...))
}

// SecondaryDimensionGT applies the GT predicate on the "secondary_dimension" field.
func SecondaryDimensionGT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldSecondaryDimension, v))
}

// SecondaryDimensionGTE applies the GTE predicate on the "secondary_dimension" field.
func SecondaryDimensionGTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldSecondaryDimension, v))
}

// SecondaryDimensionLT applies the LT predicate on the "secondary_dimension" field.
func SecondaryDimensionLT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldSecondaryDimension, v))
}

// SecondaryDimensionLTE applies the LTE predicate on the "secondary_dimension" field.
func SecondaryDimensionLTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldSecondaryDimension, v))
}

// SecondaryDimensionContains applies the Contains predicate on the "secondary_dimension" field.
func SecondaryDimensionContains(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContains(FieldSecondaryDimension, v))
}

// SecondaryDimensionHasPrefix applies the HasPrefix predicate on the "secondary_dimension" field.
func SecondaryDimensionHasPrefix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasPrefix(FieldSecondaryDimension, v))
}

// SecondaryDimensionHasSuffix applies the HasSuffix predicate on the "secondary_dimension" field.
func SecondaryDimensionHasSuffix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasSuffix(FieldSecondaryDimension, v))
}

// SecondaryDimensionEqualFold applies the EqualFold predicate on the "secondary_dimension" field.
func SecondaryDimensionEqualFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEqualFold(FieldSecondaryDimension, v))
}

// SecondaryDimensionContainsFold applies the ContainsFold predicate on the "secondary_dimension" field.
func SecondaryDimensionContainsFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContainsFold(FieldSecondaryDimension, v))
}

// CombinationEQ applies the EQ predicate on the "combination" field.
func CombinationEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldCombination, v))
}

// CombinationNEQ applies the NEQ predicate on the "combination" field.
func CombinationNEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldCombination, v))
}

// CombinationIn applies the In predicate on the "combination" field.
func CombinationIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldCombination, vs...))
}

// CombinationNotIn applies the NotIn predicate on the "combination" field.
func CombinationNotIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldCombination, vs...))
}

// CombinationGT applies the GT predicate on the "combination" field.
func CombinationGT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldCombination, v))
}

// CombinationGTE applies the GTE predicate on the "combination" field.
func CombinationGTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldCombination, v))
}

// CombinationLT applies the LT predicate on the "combination" field.
func CombinationLT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldCombination, v))
}

// CombinationLTE applies the LTE predicate on the "combination" field.
func CombinationLTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldCombination, v))
}

// CombinationContains applies the Contains predicate on the "combination" field.
func CombinationContains(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContains(FieldCombination, v))
}

// CombinationHasPrefix applies the HasPrefix predicate on the "combination" field.
func CombinationHasPrefix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasPrefix(FieldCombination, v))
}

// CombinationHasSuffix applies the HasSuffix predicate on the "combination" field.
func CombinationHasSuffix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasSuffix(FieldCombination, v))
}

// CombinationEqualFold applies the EqualFold predicate on the "combination" field.
func CombinationEqualFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEqualFold(FieldCombination, v))
}

// CombinationContainsFold applies the ContainsFold predicate on the "combination" field.
func CombinationContainsFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContainsFold(FieldCombination, v))
}

// BlindSpotEQ applies the EQ predicate on the "blind_spot" field.
func BlindSpotEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldBlindSpot, v))
}

// BlindSpotNEQ applies the NEQ predicate on the "blind_spot" field.
func BlindSpotNEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldBlindSpot, v))
}

// BlindSpotIn applies the In predicate on the "blind_spot" field.
func BlindSpotIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldBlindSpot, vs...))
}

// BlindSpotNotIn applies the NotIn predicate on the "blind_spot" field.
func BlindSpotNotIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldBlindSpot, vs...))
}

// BlindSpotGT applies the GT predicate on the "blind_spot" field.
func BlindSpotGT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldBlindSpot, v))
}

// BlindSpotGTE applies the GTE predicate on the "blind_spot" field.
func BlindSpotGTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldBlindSpot, v))
}

// BlindSpotLT applies the LT predicate on the "blind_spot" field.
func BlindSpotLT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldBlindSpot, v))
}

// BlindSpotLTE applies the LTE predicate on the "blind_spot" field.
func BlindSpotLTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldBlindSpot, v))
}

// BlindSpotContains applies the Contains predicate on the "blind_spot" field.
func BlindSpotContains(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContains(FieldBlindSpot, v))
}

// BlindSpotHasPrefix applies the HasPrefix predicate on the "blind_spot" field.
func BlindSpotHasPrefix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasPrefix(FieldBlindSpot, v))
}

// BlindSpotHasSuffix applies the HasSuffix predicate on the "blind_spot" field.
func BlindSpotHasSuffix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasSuffix(FieldBlindSpot, v))
}

// BlindSpotEqualFold applies the EqualFold predicate on the "blind_spot" field.
func BlindSpotEqualFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEqualFold(FieldBlindSpot, v))
}

// BlindSpotContainsFold applies the ContainsFold predicate on the "blind_spot" field.
func BlindSpotContainsFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContainsFold(FieldBlindSpot, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AssessmentEvent) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AssessmentEvent) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AssessmentEvent) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.NotPredicates(p))
}
