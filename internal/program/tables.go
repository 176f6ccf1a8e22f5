package program

import (
	"fmt"

	"github.com/mesokit/mesokit/internal/catalog"
)

// prescription holds the rep range and base rest period for a goal and
// movement class.
type prescription struct {
	minReps     int
	maxReps     int
	restSeconds int
}

// goalPrescription returns the rep range and rest period for a goal and
// movement class.
func goalPrescription(goal Goal, compound bool) prescription {
	switch goal {
	case GoalStrength:
		if compound {
			return prescription{minReps: 3, maxReps: 6, restSeconds: 210}
		}
		return prescription{minReps: 6, maxReps: 10, restSeconds: 120}
	case GoalEndurance:
		if compound {
			return prescription{minReps: 12, maxReps: 15, restSeconds: 75}
		}
		return prescription{minReps: 15, maxReps: 20, restSeconds: 45}
	case GoalHypertrophy:
		fallthrough
	default:
		if compound {
			return prescription{minReps: 6, maxReps: 10, restSeconds: 150}
		}
		return prescription{minReps: 10, maxReps: 15, restSeconds: 90}
	}
}

// dayTemplate is the muscle coverage of one training day. label is a message
// key; focus is the split role the day plays.
type dayTemplate struct {
	label   string
	focus   string
	variant int
	muscles []catalog.Muscle
}

// Day focus tags.
const (
	focusFullBody = "full_body"
	focusUpper    = "upper"
	focusLower    = "lower"
	focusPush     = "push"
	focusPull     = "pull"
	focusLegs     = "legs"
)

//nolint:gochecknoglobals // immutable day composition tables.
var (
	fullBodyMuscles = []catalog.Muscle{
		catalog.MuscleQuads, catalog.MuscleHamstrings, catalog.MuscleGlutes,
		catalog.MuscleChest, catalog.MuscleLats, catalog.MuscleShoulders,
		catalog.MuscleBiceps, catalog.MuscleTriceps, catalog.MuscleCalves,
		catalog.MuscleAbs,
	}
	upperMuscles = []catalog.Muscle{
		catalog.MuscleChest, catalog.MuscleLats, catalog.MuscleUpperBack,
		catalog.MuscleShoulders, catalog.MuscleBiceps, catalog.MuscleTriceps,
	}
	lowerMuscles = []catalog.Muscle{
		catalog.MuscleQuads, catalog.MuscleHamstrings, catalog.MuscleGlutes,
		catalog.MuscleCalves, catalog.MuscleAbs,
	}
	pushMuscles = []catalog.Muscle{
		catalog.MuscleChest, catalog.MuscleShoulders, catalog.MuscleTriceps,
	}
	pullMuscles = []catalog.Muscle{
		catalog.MuscleLats, catalog.MuscleUpperBack, catalog.MuscleTraps,
		catalog.MuscleBiceps, catalog.MuscleForearms,
	}
	legsAMuscles = []catalog.Muscle{
		catalog.MuscleQuads, catalog.MuscleHamstrings, catalog.MuscleGlutes,
		catalog.MuscleCalves, catalog.MuscleAbs,
	}
	legsBMuscles = []catalog.Muscle{
		catalog.MuscleQuads, catalog.MuscleHamstrings, catalog.MuscleGlutes,
		catalog.MuscleCalves, catalog.MuscleObliques,
	}
)

// splitFor maps weekly training frequency to a split type.
func splitFor(daysPerWeek int) SplitType {
	switch {
	case daysPerWeek <= 3:
		return SplitFullBody
	case daysPerWeek == 4:
		return SplitUpperLower
	case daysPerWeek == 5:
		return SplitHybrid
	default:
		return SplitPPL
	}
}

// splitDays returns the day templates for a split at the given frequency.
func splitDays(split SplitType, daysPerWeek int) ([]dayTemplate, error) {
	switch split {
	case SplitFullBody:
		labels := []string{"day.fullBodyA", "day.fullBodyB", "day.fullBodyC"}
		days := make([]dayTemplate, 0, daysPerWeek)
		for i := range daysPerWeek {
			days = append(days, dayTemplate{label: labels[i], focus: focusFullBody, variant: i, muscles: fullBodyMuscles})
		}
		return days, nil
	case SplitUpperLower:
		return []dayTemplate{
			{label: "day.upperA", focus: focusUpper, variant: 0, muscles: upperMuscles},
			{label: "day.lowerA", focus: focusLower, variant: 0, muscles: lowerMuscles},
			{label: "day.upperB", focus: focusUpper, variant: 1, muscles: upperMuscles},
			{label: "day.lowerB", focus: focusLower, variant: 1, muscles: lowerMuscles},
		}, nil
	case SplitHybrid:
		return []dayTemplate{
			{label: "day.upper", focus: focusUpper, variant: 0, muscles: upperMuscles},
			{label: "day.lower", focus: focusLower, variant: 0, muscles: lowerMuscles},
			{label: "day.push", focus: focusPush, variant: 1, muscles: pushMuscles},
			{label: "day.pull", focus: focusPull, variant: 1, muscles: pullMuscles},
			{label: "day.legs", focus: focusLegs, variant: 1, muscles: legsBMuscles},
		}, nil
	case SplitPPL:
		return []dayTemplate{
			{label: "day.pushA", focus: focusPush, variant: 0, muscles: pushMuscles},
			{label: "day.pullA", focus: focusPull, variant: 0, muscles: pullMuscles},
			{label: "day.legsA", focus: focusLegs, variant: 0, muscles: legsAMuscles},
			{label: "day.pushB", focus: focusPush, variant: 1, muscles: pushMuscles},
			{label: "day.pullB", focus: focusPull, variant: 1, muscles: pullMuscles},
			{label: "day.legsB", focus: focusLegs, variant: 1, muscles: legsBMuscles},
		}, nil
	default:
		return nil, fmt.Errorf("unknown split type %q", split)
	}
}

// mesoLength returns the program length in weeks, including the deload week.
func mesoLength(exp Experience) int {
	switch exp {
	case ExperienceBeginner:
		return 4
	case ExperienceIntermediate:
		return 5
	case ExperienceAdvanced:
		return 6
	default:
		return 4
	}
}
