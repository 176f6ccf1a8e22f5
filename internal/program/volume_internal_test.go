package program

import (
	"testing"

	"github.com/mesokit/mesokit/internal/catalog"
)

func TestExperienceBand(t *testing.T) {
	t.Parallel()

	lm := catalog.VolumeLandmarks{MV: 4, MEV: 6, MAVLow: 10, MAVHigh: 16, MRV: 20}

	tests := []struct {
		name string
		exp  Experience
		want volumeRange
	}{
		{name: "beginner spans MEV to low MAV", exp: ExperienceBeginner, want: volumeRange{start: 6, end: 10}},
		{name: "intermediate spans the midpoints", exp: ExperienceIntermediate, want: volumeRange{start: 8, end: 13}},
		{name: "advanced spans the MAV band", exp: ExperienceAdvanced, want: volumeRange{start: 10, end: 16}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := experienceBand(tt.exp, lm); got != tt.want {
				t.Errorf("experienceBand(%s) = %+v, want %+v", tt.exp, got, tt.want)
			}
		})
	}
}

func TestWeeklySets(t *testing.T) {
	t.Parallel()

	r := volumeRange{start: 6, end: 12}

	tests := []struct {
		name          string
		weekIdx       int
		trainingWeeks int
		deload        bool
		want          int
	}{
		{name: "first week starts at band start", weekIdx: 0, trainingWeeks: 4, want: 6},
		{name: "middle week interpolates", weekIdx: 1, trainingWeeks: 4, want: 8},
		{name: "last training week hits band end", weekIdx: 3, trainingWeeks: 4, want: 12},
		{name: "deload drops to maintenance", weekIdx: 3, trainingWeeks: 4, deload: true, want: 4},
		{name: "single training week stays at start", weekIdx: 0, trainingWeeks: 1, want: 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := weeklySets(r, tt.weekIdx, tt.trainingWeeks, tt.deload, 4)
			if got != tt.want {
				t.Errorf("weeklySets(week %d of %d, deload %t) = %d, want %d",
					tt.weekIdx, tt.trainingWeeks, tt.deload, got, tt.want)
			}
		})
	}
}

func TestVolumeTargetsLimitation(t *testing.T) {
	t.Parallel()

	c, err := catalog.Default()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	profile := Profile{
		Age:          30,
		Sex:          SexMale,
		BodyweightKg: 80,
		Experience:   ExperienceAdvanced,
		Goal:         GoalHypertrophy,
		DaysPerWeek:  4,
		FullGym:      true,
		Limitations:  []catalog.Joint{catalog.JointKnee},
	}
	targets, err := volumeTargets(c, profile, deriveModifiers(profile))
	if err != nil {
		t.Fatalf("volumeTargets: %v", err)
	}

	// Knee limitation holds quads and glutes at maintenance.
	quadsLm, _ := c.Landmarks(catalog.MuscleQuads)
	if got := targets[catalog.MuscleQuads]; got.start != quadsLm.MV {
		t.Errorf("quads start = %d, want maintenance %d", got.start, quadsLm.MV)
	}
	if got := targets[catalog.MuscleQuads]; got.end > quadsLm.MV+limitedVolumeHeadroom {
		t.Errorf("quads end = %d, want at most %d", got.end, quadsLm.MV+limitedVolumeHeadroom)
	}

	// Chest is unaffected and keeps the advanced band.
	chestLm, _ := c.Landmarks(catalog.MuscleChest)
	if got := targets[catalog.MuscleChest]; got.start != chestLm.MAVLow {
		t.Errorf("chest start = %d, want %d", got.start, chestLm.MAVLow)
	}
}

func TestVolumeTargetsPriority(t *testing.T) {
	t.Parallel()

	c, err := catalog.Default()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	base := Profile{
		Age:          25,
		Sex:          SexFemale,
		BodyweightKg: 60,
		Experience:   ExperienceIntermediate,
		Goal:         GoalHypertrophy,
		DaysPerWeek:  4,
		FullGym:      true,
	}
	prioritized := base
	prioritized.PriorityMuscles = []catalog.Muscle{catalog.MuscleGlutes}

	baseTargets, err := volumeTargets(c, base, deriveModifiers(base))
	if err != nil {
		t.Fatalf("volumeTargets: %v", err)
	}
	prioTargets, err := volumeTargets(c, prioritized, deriveModifiers(prioritized))
	if err != nil {
		t.Fatalf("volumeTargets: %v", err)
	}

	if got, want := prioTargets[catalog.MuscleGlutes].start, baseTargets[catalog.MuscleGlutes].start+priorityVolumeBonus; got != want {
		t.Errorf("prioritized glutes start = %d, want %d", got, want)
	}

	// Targets never exceed MRV even with the priority bonus.
	for _, muscle := range catalog.Muscles() {
		lm, _ := c.Landmarks(muscle)
		if prioTargets[muscle].end > lm.MRV {
			t.Errorf("%s end = %d exceeds MRV %d", muscle, prioTargets[muscle].end, lm.MRV)
		}
	}
}
