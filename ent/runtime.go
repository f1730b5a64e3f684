// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/anand/fintype/ent/assessmentevent"
	"github.com/anand/fintype/ent/responseevent"
	"github.com/anand/fintype/ent/schema"
	"github.com/anand/fintype/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assessmenteventMixin := schema.AssessmentEvent{}.Mixin()
	assessmenteventMixinFields0 := assessmenteventMixin[0].Fields()
	_ = assessmenteventMixinFields0
	assessmenteventFields := schema.AssessmentEvent{}.Fields()
	_ = assessmenteventFields
	// assessmenteventDescTimestamp is the schema descriptor for timestamp field.
	assessmenteventDescTimestamp := assessmenteventMixinFields0[1].Descriptor()
	// assessmentevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	assessmentevent.DefaultTimestamp = assessmenteventDescTimestamp.Default.(func() time.Time)
	// assessmenteventDescTestID is the schema descriptor for test_id field.
	assessmenteventDescTestID := assessmenteventFields[0].Descriptor()
	// assessmentevent.TestIDValidator is a validator for the "test_id" field. It is called by the builders before save.
	assessmentevent.TestIDValidator = assessmenteventDescTestID.Validators[0].(func(string) error)
	// assessmenteventDescPrimaryDimension is the schema descriptor for primary_dimension field.
	assessmenteventDescPrimaryDimension := assessmenteventFields[1].Descriptor()
	// assessmentevent.PrimaryDimensionValidator is a validator for the "primary_dimension" field. It is called by the builders before save.
	assessmentevent.PrimaryDimensionValidator = assessmenteventDescPrimaryDimension.Validators[0].(func(string) error)
	// assessmenteventDescSecondaryDimension is the schema descriptor for secondary_dimension field.
	assessmenteventDescSecondaryDimension := assessmenteventFields[2].Descriptor()
	// assessmentevent.SecondaryDimensionValidator is a validator for the "secondary_dimension" field. It is called by the builders before save.
	assessmentevent.SecondaryDimensionValidator = assessmenteventDescSecondaryDimension.Validators[0].(func(string) error)
	// assessmenteventDescCombination is the schema descriptor for combination field.
	assessmenteventDescCombination := assessmenteventFields[3].Descriptor()
	// assessmentevent.CombinationValidator is a validator for the "combination" field. It is called by the builders before save.
	assessmentevent.CombinationValidator = assessmenteventDescCombination.Validators[0].(func(string) error)
	// assessmenteventDescBlindSpot is the schema descriptor for blind_spot field.
	assessmenteventDescBlindSpot := assessmenteventFields[4].Descriptor()
	// assessmentevent.BlindSpotValidator is a validator for the "blind_spot" field. It is called by the builders before save.
	assessmentevent.BlindSpotValidator = assessmenteventDescBlindSpot.Validators[0].(func(string) error)
	responseeventMixin := schema.ResponseEvent{}.Mixin()
	responseeventMixinFields0 := responseeventMixin[0].Fields()
	_ = responseeventMixinFields0
	responseeventFields := schema.ResponseEvent{}.Fields()
	_ = responseeventFields
	// responseeventDescTimestamp is the schema descriptor for timestamp field.
	responseeventDescTimestamp := responseeventMixinFields0[1].Descriptor()
	// responseevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	responseevent.DefaultTimestamp = responseeventDescTimestamp.Default.(func() time.Time)
	// responseeventDescTestID is the schema descriptor for test_id field.
	responseeventDescTestID := responseeventFields[0].Descriptor()
	// responseevent.TestIDValidator is a validator for the "test_id" field. It is called by the builders before save.
	responseevent.TestIDValidator = responseeventDescTestID.Validators[0].(func(string) error)
	// responseeventDescQuestionID is the schema descriptor for question_id field.
	responseeventDescQuestionID := responseeventFields[1].Descriptor()
	// responseevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	responseevent.QuestionIDValidator = responseeventDescQuestionID.Validators[0].(func(int) error)
	// responseeventDescPhase is the schema descriptor for phase field.
	responseeventDescPhase := responseeventFields[2].Descriptor()
	// responseevent.PhaseValidator is a validator for the "phase" field. It is called by the builders before save.
	responseevent.PhaseValidator = responseeventDescPhase.Validators[0].(func(string) error)
	// responseeventDescOptionText is the schema descriptor for option_text field.
	responseeventDescOptionText := responseeventFields[3].Descriptor()
	// responseevent.OptionTextValidator is a validator for the "option_text" field. It is called by the builders before save.
	responseevent.OptionTextValidator = responseeventDescOptionText.Validators[0].(func(string) error)
	// responseeventDescDimension is the schema descriptor for dimension field.
	responseeventDescDimension := responseeventFields[4].Descriptor()
	// responseevent.DimensionValidator is a validator for the "dimension" field. It is called by the builders before save.
	responseevent.DimensionValidator = responseeventDescDimension.Validators[0].(func(string) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescKind is the schema descriptor for kind field.
	snapshotDescKind := snapshotFields[0].Descriptor()
	// snapshot.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	snapshot.KindValidator = snapshotDescKind.Validators[0].(func(string) error)
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[2].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
