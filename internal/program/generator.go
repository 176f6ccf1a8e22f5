// Package program generates resistance training programs: a mesocycle of
// weekly plans whose per-muscle volume ramps between evidence-based
// landmarks, with exercises selected for the trainee's equipment, schedule
// and limitations.
package program

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/mesokit/mesokit/internal/catalog"
)

// Frequency bounds.
const (
	minDaysPerWeek = 2
	maxDaysPerWeek = 6
)

// RIR ramp constants: training weeks descend from rirStart toward failure,
// and the deload week backs off again.
const (
	rirStart  = 3
	rirDeload = 2
)

// generator assembles a program for a single profile.
type generator struct {
	catalog *catalog.Catalog
	profile Profile
	mods    modifiers
	targets map[catalog.Muscle]volumeRange
}

// newGenerator validates the profile and computes its derived planning state.
func newGenerator(c *catalog.Catalog, p Profile) (*generator, error) {
	if err := validateProfile(p); err != nil {
		return nil, err
	}
	mods := deriveModifiers(p)
	targets, err := volumeTargets(c, p, mods)
	if err != nil {
		return nil, fmt.Errorf("compute volume targets: %w", err)
	}
	return &generator{
		catalog: c,
		profile: p,
		mods:    mods,
		targets: targets,
	}, nil
}

// validateProfile rejects profiles the planner cannot produce a program for.
func validateProfile(p Profile) error {
	if p.DaysPerWeek < minDaysPerWeek || p.DaysPerWeek > maxDaysPerWeek {
		return fmt.Errorf("days per week must be between %d and %d, got %d",
			minDaysPerWeek, maxDaysPerWeek, p.DaysPerWeek)
	}
	if p.BodyweightKg <= 0 {
		return errors.New("bodyweight must be positive")
	}
	if p.Age <= 0 {
		return errors.New("age must be positive")
	}
	return nil
}

// Generate assembles the full mesocycle.
func (g *generator) Generate(now time.Time) (Program, error) {
	split := splitFor(g.profile.DaysPerWeek)
	days, err := splitDays(split, g.profile.DaysPerWeek)
	if err != nil {
		return Program{}, err
	}

	totalWeeks := mesoLength(g.profile.Experience)
	trainingWeeks := totalWeeks - 1
	muscleFrequency := countMuscleFrequency(days)

	weeks := make([]WeekPlan, 0, totalWeeks)
	for week := range totalWeeks {
		deload := week == totalWeeks-1
		weekIdx := week
		if deload {
			weekIdx = trainingWeeks - 1
		}

		volume := g.weekVolume(weekIdx, trainingWeeks, deload, muscleFrequency)

		dayPlans := make([]DayPlan, 0, len(days))
		for dayIndex, day := range days {
			plan := g.buildDay(day, dayIndex, weekIdx, trainingWeeks, deload, volume, muscleFrequency)
			dayPlans = append(dayPlans, plan)
		}

		weeks = append(weeks, WeekPlan{
			Number:        week + 1,
			Deload:        deload,
			VolumeTargets: volume,
			Days:          dayPlans,
		})
	}

	return Program{
		ID:         uuid.New(),
		CreatedAt:  now,
		Split:      split,
		TotalWeeks: totalWeeks,
		Profile:    g.profile,
		Weeks:      weeks,
	}, nil
}

// weekVolume resolves the weekly set target of every trained muscle for one
// week position.
func (g *generator) weekVolume(
	weekIdx, trainingWeeks int,
	deload bool,
	muscleFrequency map[catalog.Muscle]int,
) map[catalog.Muscle]int {
	volume := make(map[catalog.Muscle]int, len(muscleFrequency))
	for muscle := range muscleFrequency {
		target, ok := g.targets[muscle]
		if !ok {
			continue
		}
		lm, _ := g.catalog.Landmarks(muscle)
		volume[muscle] = weeklySets(target, weekIdx, trainingWeeks, deload, lm.MV)
	}
	return volume
}

// buildDay assembles one training day of one week. Muscles without a volume
// target or a usable exercise pool are left out rather than failing the day.
func (g *generator) buildDay(
	day dayTemplate,
	dayIndex, weekIdx, trainingWeeks int,
	deload bool,
	volume map[catalog.Muscle]int,
	muscleFrequency map[catalog.Muscle]int,
) DayPlan {
	t := weekProgress(weekIdx, trainingWeeks)
	rir := targetRIR(t, deload)
	half := mesoHalf(weekIdx, trainingWeeks, deload)

	used := make(map[string]bool)
	var exercises []ExercisePlan
	for _, muscle := range day.muscles {
		daySets := int(math.Round(float64(volume[muscle]) / float64(muscleFrequency[muscle])))
		if daySets == 0 {
			continue
		}

		for _, p := range g.selectExercises(muscle, daySets, day.variant, half, used) {
			plan, ok := g.prescribe(p, weekIdx, deload, rir)
			if !ok {
				continue
			}
			exercises = append(exercises, plan)
		}
	}

	g.sortDayExercises(exercises)
	return DayPlan{
		Index:     dayIndex,
		Label:     day.label,
		Focus:     day.focus,
		Muscles:   append([]catalog.Muscle(nil), day.muscles...),
		Exercises: exercises,
	}
}

// prescribe fills in the set prescription for a selected exercise. An id that
// does not resolve in the catalog drops the exercise instead of failing.
func (g *generator) prescribe(p pick, weekIdx int, deload bool, rir int) (ExercisePlan, bool) {
	ex, ok := g.catalog.Exercise(p.exerciseID)
	if !ok {
		return ExercisePlan{}, false
	}

	rx := goalPrescription(g.profile.Goal, ex.Compound)
	rest := scaledRest(rx.restSeconds, g.mods.restMultiplier)

	base := startingWeight(ex, g.profile)
	weight := progressedWeight(base, ex, weekIdx, deload, g.mods.overloadMultiplier)

	return ExercisePlan{
		ExerciseID:  p.exerciseID,
		Sets:        p.sets,
		MinReps:     rx.minReps,
		MaxReps:     rx.maxReps,
		TargetRIR:   rir,
		RestSeconds: rest,
		WeightKg:    weight,
	}, true
}

// sortDayExercises orders a day compound movements first, then by muscle
// from large to small, keeping selection order within ties.
func (g *generator) sortDayExercises(exercises []ExercisePlan) {
	sort.SliceStable(exercises, func(i, j int) bool {
		a, _ := g.catalog.Exercise(exercises[i].ExerciseID)
		b, _ := g.catalog.Exercise(exercises[j].ExerciseID)
		if a.Compound != b.Compound {
			return a.Compound
		}
		return a.Muscle.SortRank() < b.Muscle.SortRank()
	})
}

// countMuscleFrequency counts how many days per week each muscle is trained.
func countMuscleFrequency(days []dayTemplate) map[catalog.Muscle]int {
	freq := make(map[catalog.Muscle]int)
	for _, day := range days {
		for _, m := range day.muscles {
			freq[m]++
		}
	}
	return freq
}

// targetRIR maps week progress to a reps-in-reserve target. Training weeks
// descend linearly from rirStart to 0; the deload backs off to rirDeload.
func targetRIR(t float64, deload bool) int {
	if deload {
		return rirDeload
	}
	return int(math.Round(rirStart - rirStart*t))
}

// mesoHalf reports whether the week falls in the first or second half of the
// training weeks. The deload reuses first-half selections.
func mesoHalf(weekIdx, trainingWeeks int, deload bool) int {
	if deload || weekIdx < (trainingWeeks+1)/2 {
		return 0
	}
	return 1
}

// scaledRest applies the age rest multiplier with a sane floor.
func scaledRest(base int, multiplier float64) int {
	rest := int(math.Floor(float64(base) * multiplier))
	if rest < 15 {
		rest = 15
	}
	return rest
}
