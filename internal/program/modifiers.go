package program

import "github.com/mesokit/mesokit/internal/catalog"

// Age adjustment constants.
const (
	restMultiplierOver40 = 1.1
	restMultiplierOver50 = 1.2

	overloadMultiplierOver35 = 0.9
	overloadMultiplierOver45 = 0.75
	overloadMultiplierOver60 = 0.5

	machinePreferenceAge         = 55
	machinePreferenceLimitations = 2
)

// modifiers aggregates the profile-derived adjustments that shape a program.
type modifiers struct {
	// restMultiplier scales rest periods up for older trainees.
	restMultiplier float64
	// overloadMultiplier slows week-to-week load progression.
	overloadMultiplier float64
	// machinePreference reorders exercise pools toward guided equipment.
	machinePreference bool
	// deprioritized exercises sink to the back of the selection order.
	deprioritized map[string]bool
	// limitedMuscles train at maintenance volume.
	limitedMuscles map[catalog.Muscle]bool
}

// deriveModifiers computes the adjustments for a profile.
func deriveModifiers(p Profile) modifiers {
	m := modifiers{
		restMultiplier:     1.0,
		overloadMultiplier: 1.0,
		machinePreference:  false,
		deprioritized:      catalog.DeprioritizedExercises(p.Limitations),
		limitedMuscles:     catalog.LimitedMuscles(p.Limitations),
	}

	switch {
	case p.Age >= 50:
		m.restMultiplier = restMultiplierOver50
	case p.Age >= 40:
		m.restMultiplier = restMultiplierOver40
	}

	switch {
	case p.Age >= 60:
		m.overloadMultiplier = overloadMultiplierOver60
	case p.Age >= 45:
		m.overloadMultiplier = overloadMultiplierOver45
	case p.Age >= 35:
		m.overloadMultiplier = overloadMultiplierOver35
	}

	if p.Age >= machinePreferenceAge || len(p.Limitations) >= machinePreferenceLimitations {
		m.machinePreference = true
	}

	return m
}
