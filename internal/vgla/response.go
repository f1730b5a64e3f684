package vgla

import "time"

const (
	// QuestionCount is the fixed size of the battery.
	QuestionCount = 60

	// LikeQuestionCount is the number of like-phase questions; ids 1 through
	// LikeQuestionCount score into the like map, the rest into dislike.
	LikeQuestionCount = 30
)

// Response records a single answered question. A question has at most one
// response: re-answering replaces the earlier record.
type Response struct {
	QuestionID int       `json:"question_id"`
	OptionText string    `json:"option_text"`
	Dimension  Dimension `json:"dimension"`
	Timestamp  time.Time `json:"timestamp"`
}

// IsLike reports whether the response belongs to the like phase by id range.
func (r Response) IsLike() bool {
	return r.QuestionID >= 1 && r.QuestionID <= LikeQuestionCount
}

// IsDislike reports whether the response belongs to the dislike phase by id range.
func (r Response) IsDislike() bool {
	return r.QuestionID > LikeQuestionCount && r.QuestionID <= QuestionCount
}
