package program

import "github.com/mesokit/mesokit/internal/catalog"

// OverloadAction is the adjustment the advisor suggests for an exercise.
type OverloadAction string

// Overload action constants.
const (
	OverloadHold           OverloadAction = "hold"
	OverloadDecreaseWeight OverloadAction = "decrease_weight"
	OverloadIncreaseWeight OverloadAction = "increase_weight"
	OverloadAddRep         OverloadAction = "add_rep"
)

// Message keys emitted with overload suggestions.
const (
	msgOverloadDecrease = "overload.decreaseWeight"
	msgOverloadIncrease = "overload.increaseWeight"
	msgOverloadAddRep   = "overload.addRep"
)

// failedSetThreshold is the share of completed sets below the rep minimum
// past which the weight comes down.
const failedSetThreshold = 0.5

// OverloadSuggestion is a double-progression adjustment for one exercise.
type OverloadSuggestion struct {
	ExerciseID string
	Action     OverloadAction
	// WeightKg is the suggested working weight after the adjustment.
	WeightKg float64
	// MinReps and MaxReps are the suggested target rep range.
	MinReps int
	MaxReps int
	// MessageKey names the localized explanation shown to the user. Empty
	// when the action is hold.
	MessageKey string
}

// AdviseOverload applies double progression to an exercise's recent results:
// failing weights come down an increment, topping out the rep range for two
// sessions running sends the weight up and the reps back down, and clean
// sessions inside the range earn one more rep. history is ordered oldest
// first and only completed sets count.
func AdviseOverload(ex catalog.Exercise, plan ExercisePlan, history []ExerciseResult) OverloadSuggestion {
	hold := OverloadSuggestion{
		ExerciseID: plan.ExerciseID,
		Action:     OverloadHold,
		WeightKg:   plan.WeightKg,
		MinReps:    plan.MinReps,
		MaxReps:    plan.MaxReps,
	}
	if len(history) == 0 {
		return hold
	}

	increment := ex.Equipment.WeightIncrement()
	last := history[len(history)-1]

	if failedShare(last, plan.MinReps) > failedSetThreshold {
		weight := plan.WeightKg - increment
		if weight < 0 {
			weight = 0
		}
		hold.Action = OverloadDecreaseWeight
		hold.WeightKg = weight
		hold.MessageKey = msgOverloadDecrease
		return hold
	}

	if len(history) >= 2 &&
		allCompletedAtLeast(last, plan.MaxReps) &&
		allCompletedAtLeast(history[len(history)-2], plan.MaxReps) {
		hold.Action = OverloadIncreaseWeight
		hold.WeightKg = plan.WeightKg + increment
		hold.MessageKey = msgOverloadIncrease
		return hold
	}

	if allCompletedWithin(last, plan.MinReps, plan.MaxReps) {
		hold.Action = OverloadAddRep
		hold.MinReps = plan.MinReps + 1
		hold.MessageKey = msgOverloadAddRep
		return hold
	}

	return hold
}

// failedShare returns the fraction of completed sets that fell below minReps.
func failedShare(result ExerciseResult, minReps int) float64 {
	completed := 0
	failed := 0
	for _, set := range result.Sets {
		if !set.Completed {
			continue
		}
		completed++
		if set.Reps < minReps {
			failed++
		}
	}
	if completed == 0 {
		return 0
	}
	return float64(failed) / float64(completed)
}

// allCompletedAtLeast reports whether every completed set reached reps.
// A session with no completed sets does not qualify.
func allCompletedAtLeast(result ExerciseResult, reps int) bool {
	completed := 0
	for _, set := range result.Sets {
		if !set.Completed {
			continue
		}
		completed++
		if set.Reps < reps {
			return false
		}
	}
	return completed > 0
}

// allCompletedWithin reports whether every completed set landed in
// [minReps, maxReps).
func allCompletedWithin(result ExerciseResult, minReps, maxReps int) bool {
	completed := 0
	for _, set := range result.Sets {
		if !set.Completed {
			continue
		}
		completed++
		if set.Reps < minReps || set.Reps >= maxReps {
			return false
		}
	}
	return completed > 0
}
