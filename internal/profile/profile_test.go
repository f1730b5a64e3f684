package profile

import (
	"testing"
	"time"

	"github.com/anand/fintype/internal/vgla"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func resultWith(primary, secondary vgla.Dimension, combo vgla.Combination) *vgla.Result {
	return &vgla.Result{
		Scores: vgla.ScoreVector{
			Total: map[vgla.Dimension]int{
				vgla.Vision: 12, vgla.Goal: 4, vgla.Logic: -2, vgla.Action: -14,
			},
		},
		Primary:      primary,
		Secondary:    secondary,
		Combination:  combo,
		BlindSpot:    vgla.Action,
		AnalysisDate: testNow,
	}
}

func TestInitialize(t *testing.T) {
	result := resultWith(vgla.Vision, vgla.Goal, "VG")
	p := Initialize(result, testNow)

	if p.Primary != vgla.Vision || p.Secondary != vgla.Goal {
		t.Errorf("dimensions = %s/%s, want vision/goal", p.Primary, p.Secondary)
	}
	if p.Combination != "VG" {
		t.Errorf("combination = %s, want VG", p.Combination)
	}
	if !p.LastTestDate.Equal(testNow) {
		t.Errorf("last test date = %v, want %v", p.LastTestDate, testNow)
	}
	want := testNow.AddDate(0, 3, 0)
	if !p.NextTestDate.Equal(want) {
		t.Errorf("next test date = %v, want %v", p.NextTestDate, want)
	}
	if p.ShouldRetakeTest || p.HasTypeChanged {
		t.Error("fresh profile must not carry retake or change flags")
	}
	if p.TypeChangeDate != nil {
		t.Error("fresh profile must not have a type change date")
	}
}

func TestUpdateTypeSameCombination(t *testing.T) {
	p := Initialize(resultWith(vgla.Vision, vgla.Goal, "VG"), testNow)
	p.ShouldRetakeTest = true

	later := testNow.AddDate(0, 3, 0)
	updated := UpdateType(p, resultWith(vgla.Vision, vgla.Goal, "VG"), later)

	if updated.HasTypeChanged {
		t.Error("same combination must not flag a type change")
	}
	if updated.PreviousCombination != "" {
		t.Errorf("previous combination = %s, want empty", updated.PreviousCombination)
	}
	if updated.ShouldRetakeTest {
		t.Error("retake flag must clear after a retake")
	}
	if !updated.LastTestDate.Equal(later) {
		t.Errorf("last test date = %v, want %v", updated.LastTestDate, later)
	}
	if !updated.NextTestDate.Equal(later.AddDate(0, 3, 0)) {
		t.Errorf("next test date = %v, want %v", updated.NextTestDate, later.AddDate(0, 3, 0))
	}
	if p.ShouldRetakeTest != true {
		t.Error("input profile was mutated")
	}
}

func TestUpdateTypeChangedCombination(t *testing.T) {
	p := Initialize(resultWith(vgla.Vision, vgla.Goal, "VG"), testNow)

	later := testNow.AddDate(0, 4, 0)
	updated := UpdateType(p, resultWith(vgla.Logic, vgla.Action, "LA"), later)

	if !updated.HasTypeChanged {
		t.Error("expected type change flag")
	}
	if updated.PreviousCombination != "VG" {
		t.Errorf("previous combination = %s, want VG", updated.PreviousCombination)
	}
	if updated.TypeChangeDate == nil || !updated.TypeChangeDate.Equal(later) {
		t.Errorf("type change date = %v, want %v", updated.TypeChangeDate, later)
	}
	if updated.Combination != "LA" {
		t.Errorf("combination = %s, want LA", updated.Combination)
	}
	if p.HasTypeChanged {
		t.Error("input profile was mutated")
	}
}

func TestUpdateTypeChangeFlagPersists(t *testing.T) {
	p := Initialize(resultWith(vgla.Vision, vgla.Goal, "VG"), testNow)
	p = UpdateType(p, resultWith(vgla.Logic, vgla.Action, "LA"), testNow.AddDate(0, 3, 0))
	p = UpdateType(p, resultWith(vgla.Logic, vgla.Action, "LA"), testNow.AddDate(0, 6, 0))

	if !p.HasTypeChanged {
		t.Error("type change flag must survive later stable retakes")
	}
	if p.PreviousCombination != "VG" {
		t.Errorf("previous combination = %s, want VG", p.PreviousCombination)
	}
}

func TestCheckRetakeNeeded(t *testing.T) {
	p := Initialize(resultWith(vgla.Vision, vgla.Goal, "VG"), testNow)

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"just before window", p.NextTestDate.Add(-time.Millisecond), false},
		{"exactly at boundary", p.NextTestDate, true},
		{"after boundary", p.NextTestDate.Add(24 * time.Hour), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckRetakeNeeded(p, tt.now); got != tt.want {
				t.Errorf("CheckRetakeNeeded = %v, want %v", got, tt.want)
			}
		})
	}

	if CheckRetakeNeeded(nil, testNow) {
		t.Error("nil profile must never be due")
	}
}

func TestMarkRetakeDue(t *testing.T) {
	p := Initialize(resultWith(vgla.Vision, vgla.Goal, "VG"), testNow)

	if MarkRetakeDue(p, testNow.AddDate(0, 1, 0)) {
		t.Error("marked due one month in")
	}
	if p.ShouldRetakeTest {
		t.Error("flag set before the window opened")
	}

	if !MarkRetakeDue(p, p.NextTestDate) {
		t.Error("not marked due at the boundary")
	}
	if !p.ShouldRetakeTest {
		t.Error("flag not set at the boundary")
	}
}
