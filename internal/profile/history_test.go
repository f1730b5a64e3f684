package profile

import (
	"testing"

	"github.com/anand/fintype/internal/vgla"
)

func historyOf(combos ...vgla.Combination) []HistoryRecord {
	records := make([]HistoryRecord, 0, len(combos))
	for i, c := range combos {
		records = append(records, HistoryRecord{
			TestID:      string(rune('a' + i)),
			TestDate:    testNow.AddDate(0, 3*i, 0),
			Combination: c,
		})
	}
	return records
}

func TestStability(t *testing.T) {
	tests := []struct {
		name    string
		history []HistoryRecord
		want    float64
	}{
		{"empty", nil, 1.0},
		{"single", historyOf("VG"), 1.0},
		{"all same", historyOf("VG", "VG", "VG"), 1.0},
		{"one change in four", historyOf("VG", "VG", "LA", "VG"), 0.75},
		{"all distinct", historyOf("VG", "LA", "GV", "AL"), 0.25},
		{"two types over two", historyOf("VG", "LA"), 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Stability(tt.history); got != tt.want {
				t.Errorf("Stability = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMostCommonType(t *testing.T) {
	tests := []struct {
		name    string
		history []HistoryRecord
		want    vgla.Combination
	}{
		{"empty", nil, ""},
		{"single", historyOf("VG"), "VG"},
		{"clear majority", historyOf("VG", "LA", "VG"), "VG"},
		{"tie goes to first seen", historyOf("LA", "VG", "VG", "LA"), "LA"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MostCommonType(tt.history); got != tt.want {
				t.Errorf("MostCommonType = %s, want %s", got, tt.want)
			}
		})
	}
}
