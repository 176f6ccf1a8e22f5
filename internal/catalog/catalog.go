// Package catalog provides the read-only lookup tables that the planning
// engine is built on: the exercise catalog, the per-muscle volume landmarks,
// and the per-muscle recovery windows. The tables are loaded once from
// embedded YAML documents and never change at runtime.
package catalog

// Muscle identifies a trainable muscle group.
type Muscle string

// Muscle group constants, ordered from large to small.
const (
	MuscleQuads      Muscle = "quads"
	MuscleHamstrings Muscle = "hamstrings"
	MuscleGlutes     Muscle = "glutes"
	MuscleChest      Muscle = "chest"
	MuscleLats       Muscle = "lats"
	MuscleUpperBack  Muscle = "upper_back"
	MuscleShoulders  Muscle = "shoulders"
	MuscleTraps      Muscle = "traps"
	MuscleCalves     Muscle = "calves"
	MuscleBiceps     Muscle = "biceps"
	MuscleTriceps    Muscle = "triceps"
	MuscleForearms   Muscle = "forearms"
	MuscleAbs        Muscle = "abs"
	MuscleObliques   Muscle = "obliques"
)

//nolint:gochecknoglobals // immutable ordering table.
var muscleOrder = []Muscle{
	MuscleQuads, MuscleHamstrings, MuscleGlutes, MuscleChest, MuscleLats,
	MuscleUpperBack, MuscleShoulders, MuscleTraps, MuscleCalves, MuscleBiceps,
	MuscleTriceps, MuscleForearms, MuscleAbs, MuscleObliques,
}

// Muscles returns all muscle groups ordered from large to small.
func Muscles() []Muscle {
	out := make([]Muscle, len(muscleOrder))
	copy(out, muscleOrder)
	return out
}

// SortRank returns the position of the muscle in the large-to-small ordering.
// Unknown muscles sort last.
func (m Muscle) SortRank() int {
	for i, muscle := range muscleOrder {
		if muscle == m {
			return i
		}
	}
	return len(muscleOrder)
}

// Equipment identifies the equipment type an exercise requires.
type Equipment string

// Equipment type constants.
const (
	EquipmentBarbell    Equipment = "barbell"
	EquipmentDumbbell   Equipment = "dumbbell"
	EquipmentMachine    Equipment = "machine"
	EquipmentCable      Equipment = "cable"
	EquipmentSmith      Equipment = "smith"
	EquipmentKettlebell Equipment = "kettlebell"
	EquipmentBands      Equipment = "bands"
	EquipmentBodyweight Equipment = "bodyweight"
)

// AllEquipment returns every equipment type.
func AllEquipment() []Equipment {
	return []Equipment{
		EquipmentBarbell, EquipmentDumbbell, EquipmentMachine, EquipmentCable,
		EquipmentSmith, EquipmentKettlebell, EquipmentBands, EquipmentBodyweight,
	}
}

// IsMachineFamily reports whether the equipment is stack- or track-guided.
// These are preferred for users who benefit from a fixed movement path.
func (e Equipment) IsMachineFamily() bool {
	return e == EquipmentMachine || e == EquipmentCable || e == EquipmentSmith
}

// WeightIncrement returns the practical loading increment in kilograms for
// the equipment. Unloadable equipment returns 0.
func (e Equipment) WeightIncrement() float64 {
	switch e {
	case EquipmentBarbell, EquipmentSmith, EquipmentCable:
		return 2.5
	case EquipmentDumbbell:
		return 2.0
	case EquipmentMachine:
		return 5.0
	case EquipmentKettlebell:
		return 4.0
	case EquipmentBands, EquipmentBodyweight:
		return 0
	default:
		return 2.5
	}
}

// Joint identifies a joint that can carry a reported limitation.
type Joint string

// Joint constants.
const (
	JointKnee      Joint = "knee"
	JointShoulder  Joint = "shoulder"
	JointElbow     Joint = "elbow"
	JointWrist     Joint = "wrist"
	JointLowerBack Joint = "lower_back"
	JointHip       Joint = "hip"
	JointAnkle     Joint = "ankle"
)

// Exercise is a single catalog entry, e.g. Back Squat.
type Exercise struct {
	ID         string    `yaml:"id"`
	Name       string    `yaml:"name"`
	Muscle     Muscle    `yaml:"muscle"`
	Equipment  Equipment `yaml:"equipment"`
	Compound   bool      `yaml:"compound"`
	Unilateral bool      `yaml:"unilateral"`
}

// VolumeLandmarks holds the weekly set-count landmarks for a muscle.
type VolumeLandmarks struct {
	MV      int `yaml:"mv"`
	MEV     int `yaml:"mev"`
	MAVLow  int `yaml:"mavLow"`
	MAVHigh int `yaml:"mavHigh"`
	MRV     int `yaml:"mrv"`
}

// RecoveryWindow holds the hour thresholds for classifying a muscle's
// recovery status from the time since it was last trained.
type RecoveryWindow struct {
	FatiguedHours int `yaml:"fatigued"`
	FreshMinHours int `yaml:"freshMin"`
	FreshMaxHours int `yaml:"freshMax"`
}

// Catalog bundles the immutable lookup tables.
type Catalog struct {
	exercises map[string]Exercise
	pools     map[Muscle][]string
	landmarks map[Muscle]VolumeLandmarks
	recovery  map[Muscle]RecoveryWindow
}

// New constructs a catalog from the given tables. Exercise pools preserve the
// order of the exercises argument.
func New(
	exercises []Exercise,
	landmarks map[Muscle]VolumeLandmarks,
	recovery map[Muscle]RecoveryWindow,
) *Catalog {
	c := &Catalog{
		exercises: make(map[string]Exercise, len(exercises)),
		pools:     make(map[Muscle][]string),
		landmarks: landmarks,
		recovery:  recovery,
	}
	for _, ex := range exercises {
		c.exercises[ex.ID] = ex
		c.pools[ex.Muscle] = append(c.pools[ex.Muscle], ex.ID)
	}
	return c
}

// Exercise looks up an exercise by id.
func (c *Catalog) Exercise(id string) (Exercise, bool) {
	ex, ok := c.exercises[id]
	return ex, ok
}

// Pool returns the ordered candidate exercise ids for a muscle.
func (c *Catalog) Pool(m Muscle) []string {
	pool := c.pools[m]
	out := make([]string, len(pool))
	copy(out, pool)
	return out
}

// Landmarks returns the volume landmarks for a muscle.
func (c *Catalog) Landmarks(m Muscle) (VolumeLandmarks, bool) {
	lm, ok := c.landmarks[m]
	return lm, ok
}

// Recovery returns the recovery window for a muscle.
func (c *Catalog) Recovery(m Muscle) (RecoveryWindow, bool) {
	rw, ok := c.recovery[m]
	return rw, ok
}

// Len returns the number of exercises in the catalog.
func (c *Catalog) Len() int {
	return len(c.exercises)
}
