package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mesokit/mesokit/internal/catalog"
	"github.com/mesokit/mesokit/internal/schedule"
)

func TestParseWeekdays(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    schedule.Weekdays
		wantErr bool
	}{
		{
			name:  "short names",
			input: "mon,wed,fri",
			want:  schedule.Weekdays{Monday: true, Wednesday: true, Friday: true},
		},
		{
			name:  "long names with spaces",
			input: "tuesday, saturday",
			want:  schedule.Weekdays{Tuesday: true, Saturday: true},
		},
		{
			name:  "empty",
			input: "",
			want:  schedule.Weekdays{},
		},
		{
			name:    "unknown day",
			input:   "mon,someday",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseWeekdays(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseWeekdays(%q) error = %v, wantErr %t", tt.input, err, tt.wantErr)
			}
			if err == nil {
				if diff := cmp.Diff(tt.want, got); diff != "" {
					t.Errorf("parseWeekdays(%q) mismatch (-want +got):\n%s", tt.input, diff)
				}
			}
		})
	}
}

func TestParseEquipment(t *testing.T) {
	t.Parallel()

	got := parseEquipment("barbell, dumbbell")
	want := []catalog.Equipment{catalog.EquipmentBarbell, catalog.EquipmentDumbbell}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parseEquipment mismatch (-want +got):\n%s", diff)
	}
	if parseEquipment("") != nil {
		t.Error("empty input should yield nil")
	}
}
