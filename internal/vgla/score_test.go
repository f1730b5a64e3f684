package vgla

import (
	"testing"
	"time"
)

// fullResponses builds a complete 60-response set where every like-phase
// question selects likeDim and every dislike-phase question selects dislikeDim.
func fullResponses(likeDim, dislikeDim Dimension) []Response {
	now := time.Now()
	responses := make([]Response, 0, QuestionCount)
	for id := 1; id <= QuestionCount; id++ {
		d := likeDim
		if id > LikeQuestionCount {
			d = dislikeDim
		}
		responses = append(responses, Response{
			QuestionID: id,
			OptionText: "option-" + string(d),
			Dimension:  d,
			Timestamp:  now,
		})
	}
	return responses
}

func TestScore_AllVisionLikesAllActionDislikes(t *testing.T) {
	sv := Score(fullResponses(Vision, Action))

	if sv.Like[Vision] != 30 {
		t.Errorf("Like[Vision] = %d, want 30", sv.Like[Vision])
	}
	if sv.Dislike[Action] != -30 {
		t.Errorf("Dislike[Action] = %d, want -30", sv.Dislike[Action])
	}
	if sv.Total[Vision] != 30 {
		t.Errorf("Total[Vision] = %d, want 30", sv.Total[Vision])
	}
	if sv.Total[Action] != -30 {
		t.Errorf("Total[Action] = %d, want -30", sv.Total[Action])
	}
	if sv.Total[Goal] != 0 || sv.Total[Logic] != 0 {
		t.Errorf("Total[Goal] = %d, Total[Logic] = %d, want 0 and 0", sv.Total[Goal], sv.Total[Logic])
	}
	if sv.OrderTotal[0] != Vision {
		t.Errorf("OrderTotal[0] = %s, want vision", sv.OrderTotal[0])
	}
	if sv.OrderTotal[3] != Action {
		t.Errorf("OrderTotal[3] = %s, want action", sv.OrderTotal[3])
	}
}

func TestScore_TotalIsLikePlusDislike(t *testing.T) {
	sv := Score(fullResponses(Goal, Goal))

	for _, d := range AllDimensions() {
		want := sv.Like[d] + sv.Dislike[d]
		if sv.Total[d] != want {
			t.Errorf("Total[%s] = %d, want %d", d, sv.Total[d], want)
		}
	}
	if sv.Total[Goal] != 0 {
		t.Errorf("Total[Goal] = %d, want 0 (30 likes cancel 30 dislikes)", sv.Total[Goal])
	}
}

func TestScore_EmptySetIsAllZero(t *testing.T) {
	sv := Score(nil)

	for _, d := range AllDimensions() {
		if sv.Like[d] != 0 || sv.Dislike[d] != 0 || sv.Total[d] != 0 {
			t.Errorf("dimension %s: like=%d dislike=%d total=%d, want all zero",
				d, sv.Like[d], sv.Dislike[d], sv.Total[d])
		}
	}
	// Ties resolve by declaration order.
	want := AllDimensions()
	for i, d := range sv.OrderTotal {
		if d != want[i] {
			t.Errorf("OrderTotal[%d] = %s, want %s", i, d, want[i])
		}
	}
}

func TestScore_OutOfRangeIDsIgnored(t *testing.T) {
	responses := []Response{
		{QuestionID: 0, Dimension: Vision},
		{QuestionID: 61, Dimension: Vision},
		{QuestionID: -3, Dimension: Vision},
	}
	sv := Score(responses)
	if sv.Total[Vision] != 0 {
		t.Errorf("Total[Vision] = %d, want 0 for out-of-range ids", sv.Total[Vision])
	}
}

func TestRankDimensions_TieBreakDeclarationOrder(t *testing.T) {
	tests := []struct {
		name   string
		scores map[Dimension]int
		want   []Dimension
	}{
		{
			name:   "all equal",
			scores: map[Dimension]int{Vision: 5, Goal: 5, Logic: 5, Action: 5},
			want:   []Dimension{Vision, Goal, Logic, Action},
		},
		{
			name:   "two-way tie at top",
			scores: map[Dimension]int{Vision: 2, Goal: 8, Logic: 8, Action: 1},
			want:   []Dimension{Goal, Logic, Vision, Action},
		},
		{
			name:   "strict ordering",
			scores: map[Dimension]int{Vision: -4, Goal: 0, Logic: 9, Action: 3},
			want:   []Dimension{Logic, Action, Goal, Vision},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RankDimensions(tt.scores)
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("rank[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestScore_UpsertEquivalence(t *testing.T) {
	// Selecting the same option twice for the same question must be recorded
	// as one response by the session; scoring the deduplicated set twice
	// produces identical vectors.
	responses := fullResponses(Logic, Vision)
	first := Score(responses)
	second := Score(responses)

	for _, d := range AllDimensions() {
		if first.Total[d] != second.Total[d] {
			t.Errorf("Total[%s] differs across runs: %d vs %d", d, first.Total[d], second.Total[d])
		}
	}
}
