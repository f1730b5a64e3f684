package vgla

import (
	"testing"
	"time"
)

func TestResolve_GapBelowThresholdMixedCode(t *testing.T) {
	total := map[Dimension]int{Vision: 10, Goal: 8, Logic: 2, Action: -5}
	order := RankDimensions(total)

	res := Resolve(order, total)

	if res.Primary != Vision || res.Secondary != Goal {
		t.Errorf("primary/secondary = %s/%s, want vision/goal", res.Primary, res.Secondary)
	}
	if res.Combination != "VG" {
		t.Errorf("combination = %s, want VG (gap 2 < %d)", res.Combination, CombinationGapThreshold)
	}
	if res.BlindSpot != Action {
		t.Errorf("blind spot = %s, want action", res.BlindSpot)
	}
}

func TestResolve_GapAtOrAboveThresholdPureCode(t *testing.T) {
	tests := []struct {
		name  string
		total map[Dimension]int
		want  Combination
	}{
		{
			name:  "gap exactly threshold",
			total: map[Dimension]int{Vision: 10, Goal: 7, Logic: 0, Action: 0},
			want:  "VV",
		},
		{
			name:  "gap above threshold",
			total: map[Dimension]int{Vision: 10, Goal: 6, Logic: 0, Action: 0},
			want:  "VV",
		},
		{
			name:  "other primary",
			total: map[Dimension]int{Vision: 1, Goal: 2, Logic: 14, Action: 5},
			want:  "LL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Resolve(RankDimensions(tt.total), tt.total)
			if res.Combination != tt.want {
				t.Errorf("combination = %s, want %s", res.Combination, tt.want)
			}
			if !res.Combination.IsPure() {
				t.Errorf("expected pure code, got %s", res.Combination)
			}
		})
	}
}

func TestResolve_OrderSensitiveMixedCodes(t *testing.T) {
	vg := Resolve(RankDimensions(map[Dimension]int{Vision: 9, Goal: 8, Logic: 0, Action: 0}),
		map[Dimension]int{Vision: 9, Goal: 8, Logic: 0, Action: 0})
	gv := Resolve(RankDimensions(map[Dimension]int{Vision: 8, Goal: 9, Logic: 0, Action: 0}),
		map[Dimension]int{Vision: 8, Goal: 9, Logic: 0, Action: 0})

	if vg.Combination == gv.Combination {
		t.Errorf("VG and GV must be distinct codes, both were %s", vg.Combination)
	}
	if vg.Combination != "VG" || gv.Combination != "GV" {
		t.Errorf("got %s and %s, want VG and GV", vg.Combination, gv.Combination)
	}
}

func TestNewResult_EndToEnd(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	result := NewResult(fullResponses(Vision, Action), now)

	if result.Combination != "VV" {
		t.Errorf("combination = %s, want VV (gap 30)", result.Combination)
	}
	if result.Primary != Vision {
		t.Errorf("primary = %s, want vision", result.Primary)
	}
	if result.BlindSpot != Action {
		t.Errorf("blind spot = %s, want action", result.BlindSpot)
	}
	if !result.AnalysisDate.Equal(now) {
		t.Errorf("analysis date = %v, want %v", result.AnalysisDate, now)
	}
}
