package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResponseEvent records a single answered question within a test session.
// One is appended per selection; re-answering a question appends a new
// event and the latest one per question id wins on replay.
type ResponseEvent struct {
	ent.Schema
}

func (ResponseEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ResponseEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("test_id").
			NotEmpty().
			Comment("UUID of the test session this response belongs to"),
		field.Int("question_id").
			Positive().
			Comment("Battery question id (1-60)"),
		field.String("phase").
			NotEmpty().
			Comment("like or dislike"),
		field.String("option_text").
			NotEmpty().
			Comment("The canonical option the user selected"),
		field.String("dimension").
			NotEmpty().
			Comment("Dimension bound to the selected option"),
	}
}

func (ResponseEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("test_id"),
		index.Fields("test_id", "question_id"),
	}
}
