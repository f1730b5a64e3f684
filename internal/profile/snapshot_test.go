package profile

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/anand/fintype/internal/vgla"
)

func TestProfileSnapshotRoundTrip(t *testing.T) {
	changed := testNow.AddDate(0, 3, 0)
	p := &Profile{
		Primary:             vgla.Logic,
		Secondary:           vgla.Action,
		Combination:         "LA",
		LastTestDate:        changed,
		NextTestDate:        changed.AddDate(0, 3, 0),
		ShouldRetakeTest:    true,
		HasTypeChanged:      true,
		PreviousCombination: "VG",
		TypeChangeDate:      &changed,
	}

	raw, err := EncodeProfile(p)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeProfile(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if got.Primary != p.Primary || got.Secondary != p.Secondary {
		t.Errorf("dimensions = %s/%s, want %s/%s", got.Primary, got.Secondary, p.Primary, p.Secondary)
	}
	if got.Combination != p.Combination || got.PreviousCombination != p.PreviousCombination {
		t.Errorf("combinations = %s/%s, want %s/%s",
			got.Combination, got.PreviousCombination, p.Combination, p.PreviousCombination)
	}
	if !got.LastTestDate.Equal(p.LastTestDate) || !got.NextTestDate.Equal(p.NextTestDate) {
		t.Error("test dates did not round trip")
	}
	if got.ShouldRetakeTest != p.ShouldRetakeTest || got.HasTypeChanged != p.HasTypeChanged {
		t.Error("flags did not round trip")
	}
	if got.TypeChangeDate == nil || !got.TypeChangeDate.Equal(changed) {
		t.Errorf("type change date = %v, want %v", got.TypeChangeDate, changed)
	}
}

func TestProfileSnapshotOmitsUnsetChangeFields(t *testing.T) {
	p := Initialize(resultWith(vgla.Vision, vgla.Goal, "VG"), testNow)

	raw, err := EncodeProfile(p)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if strings.Contains(string(raw), "type_change_date") {
		t.Error("unset type_change_date leaked into the snapshot")
	}
	if strings.Contains(string(raw), "previous_combination") {
		t.Error("unset previous_combination leaked into the snapshot")
	}

	got, err := DecodeProfile(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.TypeChangeDate != nil || got.PreviousCombination != "" {
		t.Error("change fields materialized from an unchanged profile")
	}
}

func TestDecodeProfileRejectsCorruptSnapshots(t *testing.T) {
	valid := func() map[string]any {
		return map[string]any{
			"primary":        "vision",
			"secondary":      "goal",
			"combination":    "VG",
			"last_test_date": testNow.Format(time.RFC3339Nano),
			"next_test_date": testNow.AddDate(0, 3, 0).Format(time.RFC3339Nano),
		}
	}

	tests := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{"unknown primary", func(m map[string]any) { m["primary"] = "chaos" }},
		{"unknown secondary", func(m map[string]any) { m["secondary"] = "" }},
		{"invalid combination", func(m map[string]any) { m["combination"] = "XY" }},
		{"invalid previous combination", func(m map[string]any) { m["previous_combination"] = "ZZ" }},
		{"bad last test date", func(m map[string]any) { m["last_test_date"] = "yesterday" }},
		{"bad next test date", func(m map[string]any) { m["next_test_date"] = "12345" }},
		{"bad type change date", func(m map[string]any) { m["type_change_date"] = "not-a-time" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := valid()
			tt.mutate(m)
			raw, err := json.Marshal(m)
			if err != nil {
				t.Fatalf("marshal fixture: %v", err)
			}
			if _, err := DecodeProfile(raw); err == nil {
				t.Error("expected decode error")
			}
		})
	}

	if _, err := DecodeProfile(json.RawMessage(`{garbage`)); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
