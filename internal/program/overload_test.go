package program_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mesokit/mesokit/internal/catalog"
	"github.com/mesokit/mesokit/internal/program"
)

func TestAdviseOverload(t *testing.T) {
	t.Parallel()

	benchPress := catalog.Exercise{
		ID:        "ex_001",
		Name:      "Barbell Bench Press",
		Muscle:    catalog.MuscleChest,
		Equipment: catalog.EquipmentBarbell,
		Compound:  true,
	}
	plan := program.ExercisePlan{
		ExerciseID:  "ex_001",
		Sets:        3,
		MinReps:     6,
		MaxReps:     10,
		TargetRIR:   2,
		RestSeconds: 150,
		WeightKg:    60,
	}

	session := func(reps ...int) program.ExerciseResult {
		result := program.ExerciseResult{ExerciseID: "ex_001"}
		for _, r := range reps {
			result.Sets = append(result.Sets, program.SetResult{Reps: r, WeightKg: 60, Completed: true})
		}
		return result
	}

	tests := []struct {
		name    string
		history []program.ExerciseResult
		want    program.OverloadSuggestion
	}{
		{
			name:    "no history holds",
			history: nil,
			want: program.OverloadSuggestion{
				ExerciseID: "ex_001", Action: program.OverloadHold,
				WeightKg: 60, MinReps: 6, MaxReps: 10,
			},
		},
		{
			name:    "mostly failed sets decrease the weight",
			history: []program.ExerciseResult{session(4, 5, 8)},
			want: program.OverloadSuggestion{
				ExerciseID: "ex_001", Action: program.OverloadDecreaseWeight,
				WeightKg: 57.5, MinReps: 6, MaxReps: 10,
				MessageKey: "overload.decreaseWeight",
			},
		},
		{
			name:    "two maxed sessions increase the weight",
			history: []program.ExerciseResult{session(10, 10, 10), session(10, 11, 10)},
			want: program.OverloadSuggestion{
				ExerciseID: "ex_001", Action: program.OverloadIncreaseWeight,
				WeightKg: 62.5, MinReps: 6, MaxReps: 10,
				MessageKey: "overload.increaseWeight",
			},
		},
		{
			name:    "one maxed session holds",
			history: []program.ExerciseResult{session(8, 8, 8), session(10, 10, 10)},
			want: program.OverloadSuggestion{
				ExerciseID: "ex_001", Action: program.OverloadHold,
				WeightKg: 60, MinReps: 6, MaxReps: 10,
			},
		},
		{
			name:    "clean session inside the range adds a rep",
			history: []program.ExerciseResult{session(7, 8, 8)},
			want: program.OverloadSuggestion{
				ExerciseID: "ex_001", Action: program.OverloadAddRep,
				WeightKg: 60, MinReps: 7, MaxReps: 10,
				MessageKey: "overload.addRep",
			},
		},
		{
			name: "incomplete sets are ignored",
			history: []program.ExerciseResult{{
				ExerciseID: "ex_001",
				Sets: []program.SetResult{
					{Reps: 2, WeightKg: 60, Completed: false},
					{Reps: 8, WeightKg: 60, Completed: true},
					{Reps: 7, WeightKg: 60, Completed: true},
				},
			}},
			want: program.OverloadSuggestion{
				ExerciseID: "ex_001", Action: program.OverloadAddRep,
				WeightKg: 60, MinReps: 7, MaxReps: 10,
				MessageKey: "overload.addRep",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := program.AdviseOverload(benchPress, plan, tt.history)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("AdviseOverload() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
