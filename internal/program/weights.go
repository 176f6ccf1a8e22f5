package program

import (
	"math"

	"github.com/mesokit/mesokit/internal/catalog"
)

// Starting weight estimation constants. The estimate errs low on purpose;
// the overload advisor corrects upward within a couple of sessions.
const (
	compoundProgressionRate  = 0.025
	isolationProgressionRate = 0.01
)

//nolint:gochecknoglobals // immutable strength estimation tables.
var muscleStrengthFactor = map[catalog.Muscle]float64{
	catalog.MuscleQuads:      0.8,
	catalog.MuscleHamstrings: 0.5,
	catalog.MuscleGlutes:     0.7,
	catalog.MuscleChest:      0.6,
	catalog.MuscleLats:       0.55,
	catalog.MuscleUpperBack:  0.5,
	catalog.MuscleShoulders:  0.35,
	catalog.MuscleTraps:      0.5,
	catalog.MuscleCalves:     0.9,
	catalog.MuscleBiceps:     0.25,
	catalog.MuscleTriceps:    0.25,
	catalog.MuscleForearms:   0.2,
	catalog.MuscleAbs:        0.2,
	catalog.MuscleObliques:   0.15,
}

// equipmentLoadFactor scales the estimate for how the implement is loaded.
// Dumbbell and kettlebell loads are per hand.
//
//nolint:gochecknoglobals // immutable strength estimation tables.
var equipmentLoadFactor = map[catalog.Equipment]float64{
	catalog.EquipmentBarbell:    1.0,
	catalog.EquipmentSmith:      0.9,
	catalog.EquipmentMachine:    1.1,
	catalog.EquipmentCable:      0.5,
	catalog.EquipmentDumbbell:   0.35,
	catalog.EquipmentKettlebell: 0.35,
	catalog.EquipmentBands:      0,
	catalog.EquipmentBodyweight: 0,
}

// startingWeight estimates a first-week working weight for an exercise from
// the trainee's bodyweight and background, rounded down to the equipment's
// loading increment. Unloadable equipment yields 0.
func startingWeight(ex catalog.Exercise, p Profile) float64 {
	estimate := p.BodyweightKg *
		muscleStrengthFactor[ex.Muscle] *
		equipmentLoadFactor[ex.Equipment] *
		experienceStrengthFactor(p.Experience) *
		sexStrengthFactor(p.Sex)
	return roundToIncrement(estimate, ex.Equipment.WeightIncrement())
}

// progressedWeight applies the week-over-week load ramp to a base weight.
// The deload week returns to the base weight.
func progressedWeight(base float64, ex catalog.Exercise, weekIdx int, deload bool, overloadMultiplier float64) float64 {
	if deload || weekIdx == 0 {
		return base
	}
	rate := isolationProgressionRate
	if ex.Compound {
		rate = compoundProgressionRate
	}
	progressed := base * (1 + rate*overloadMultiplier*float64(weekIdx))
	return roundToIncrement(progressed, ex.Equipment.WeightIncrement())
}

func experienceStrengthFactor(exp Experience) float64 {
	switch exp {
	case ExperienceBeginner:
		return 0.6
	case ExperienceIntermediate:
		return 1.0
	case ExperienceAdvanced:
		return 1.3
	default:
		return 0.6
	}
}

func sexStrengthFactor(sex Sex) float64 {
	switch sex {
	case SexMale:
		return 1.0
	case SexFemale:
		return 0.7
	default:
		return 0.85
	}
}

// roundToIncrement rounds a weight to the nearest loadable step. A zero
// increment means the implement is unloadable and the weight is 0.
func roundToIncrement(weight, increment float64) float64 {
	if increment <= 0 {
		return 0
	}
	return math.Round(weight/increment) * increment
}
