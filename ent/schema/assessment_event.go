package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssessmentEvent records one completed assessment: the history record the
// profile tracker reads for stability and drift. Append-only, never mutated.
type AssessmentEvent struct {
	ent.Schema
}

func (AssessmentEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AssessmentEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("test_id").
			NotEmpty().
			Comment("UUID of the finished test session"),
		field.String("primary_dimension").
			NotEmpty().
			Comment("Highest-ranked dimension"),
		field.String("secondary_dimension").
			NotEmpty().
			Comment("Second-ranked dimension"),
		field.String("combination").
			NotEmpty().
			Comment("Two-letter combination code"),
		field.String("blind_spot").
			NotEmpty().
			Comment("Lowest-ranked dimension"),
		field.JSON("totals", map[string]int{}).
			Comment("Per-dimension total score snapshot"),
	}
}

func (AssessmentEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("test_id"),
		index.Fields("combination"),
	}
}
