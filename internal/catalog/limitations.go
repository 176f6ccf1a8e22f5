package catalog

// affectedMuscles maps a limited joint to the muscles whose volume is
// reduced toward maintenance while the limitation is reported.
//
//nolint:gochecknoglobals // immutable lookup table.
var affectedMuscles = map[Joint][]Muscle{
	JointKnee:      {MuscleQuads, MuscleGlutes},
	JointShoulder:  {MuscleChest, MuscleShoulders},
	JointElbow:     {MuscleBiceps, MuscleTriceps},
	JointWrist:     {MuscleForearms},
	JointLowerBack: {MuscleHamstrings},
	JointHip:       {MuscleGlutes},
	JointAnkle:     {MuscleCalves},
}

// riskyExercises maps a limited joint to catalog exercises that stress the
// joint enough to push them to the back of the selection order.
//
//nolint:gochecknoglobals // immutable lookup table.
var riskyExercises = map[Joint][]string{
	// Deep knee flexion under load.
	JointKnee: {"ex_051", "ex_052", "ex_054", "ex_055", "ex_060", "ex_112", "ex_130"},
	// Overhead and deep-stretch pressing.
	JointShoulder: {"ex_003", "ex_008", "ex_031", "ex_032", "ex_111", "ex_117"},
	// Loaded elbow extension at long muscle length.
	JointElbow: {"ex_087", "ex_088", "ex_094", "ex_118"},
	// Wrist extension under load.
	JointWrist: {"ex_095", "ex_096", "ex_113", "ex_121"},
	// Hinge patterns with a loaded spine.
	JointLowerBack: {"ex_045", "ex_057", "ex_058", "ex_065", "ex_114"},
	// Deep hip flexion under load.
	JointHip: {"ex_055", "ex_066", "ex_071", "ex_122"},
	// Loaded plantar flexion through a full stretch.
	JointAnkle: {"ex_073", "ex_074", "ex_123"},
}

// AffectedMuscles returns the muscles whose volume a limitation reduces.
func AffectedMuscles(j Joint) []Muscle {
	muscles := affectedMuscles[j]
	out := make([]Muscle, len(muscles))
	copy(out, muscles)
	return out
}

// LimitedMuscles returns the set of muscles affected by any of the given
// limitations.
func LimitedMuscles(limitations []Joint) map[Muscle]bool {
	out := make(map[Muscle]bool)
	for _, j := range limitations {
		for _, m := range affectedMuscles[j] {
			out[m] = true
		}
	}
	return out
}

// DeprioritizedExercises returns the set of exercise ids that the given
// limitations push to the back of the selection order.
func DeprioritizedExercises(limitations []Joint) map[string]bool {
	out := make(map[string]bool)
	for _, j := range limitations {
		for _, id := range riskyExercises[j] {
			out[id] = true
		}
	}
	return out
}
