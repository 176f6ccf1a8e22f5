package program

import (
	"time"

	"github.com/google/uuid"
	"github.com/mesokit/mesokit/internal/catalog"
)

// Sex is used for starting weight estimation only.
type Sex string

// Sex constants.
const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
	SexOther  Sex = "other"
)

// Experience classifies training background.
type Experience string

// Experience level constants.
const (
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceAdvanced     Experience = "advanced"
)

// Goal is the primary adaptation the program trains for.
type Goal string

// Goal constants.
const (
	GoalHypertrophy Goal = "hypertrophy"
	GoalStrength    Goal = "strength"
	GoalEndurance   Goal = "endurance"
)

// SplitType identifies how the training week is divided.
type SplitType string

// Split type constants.
const (
	SplitFullBody  SplitType = "full_body"
	SplitUpperLower SplitType = "upper_lower"
	SplitHybrid    SplitType = "upper_lower_ppl"
	SplitPPL       SplitType = "push_pull_legs"
)

// Profile describes the trainee a program is generated for.
type Profile struct {
	Age             int                 `json:"age"`
	Sex             Sex                 `json:"sex"`
	BodyweightKg    float64             `json:"bodyweight_kg"`
	Experience      Experience          `json:"experience"`
	TrainingYears   float64             `json:"training_years"`
	Goal            Goal                `json:"goal"`
	DaysPerWeek     int                 `json:"days_per_week"`
	FullGym         bool                `json:"full_gym"`
	Equipment       []catalog.Equipment `json:"equipment,omitempty"`
	Limitations     []catalog.Joint     `json:"limitations,omitempty"`
	PriorityMuscles []catalog.Muscle    `json:"priority_muscles,omitempty"`
}

// ExercisePlan is the prescription for one exercise on one day.
type ExercisePlan struct {
	ExerciseID  string  `json:"exercise_id"`
	Sets        int     `json:"sets"`
	MinReps     int     `json:"min_reps"`
	MaxReps     int     `json:"max_reps"`
	TargetRIR   int     `json:"target_rir"`
	RestSeconds int     `json:"rest_seconds"`
	WeightKg    float64 `json:"weight_kg"`
}

// DayPlan is one training day within a week. Label is a message key resolved
// by the presentation layer; Focus tags the day's split role.
type DayPlan struct {
	Index     int              `json:"index"`
	Label     string           `json:"label"`
	Focus     string           `json:"focus"`
	Muscles   []catalog.Muscle `json:"muscles"`
	Exercises []ExercisePlan   `json:"exercises"`
}

// WeekPlan is one week of the program with its per-muscle weekly set targets.
type WeekPlan struct {
	Number        int                    `json:"number"`
	Deload        bool                   `json:"deload"`
	VolumeTargets map[catalog.Muscle]int `json:"volume_targets"`
	Days          []DayPlan              `json:"days"`
}

// Program is a complete generated mesocycle.
type Program struct {
	ID         uuid.UUID  `json:"id"`
	CreatedAt  time.Time  `json:"created_at"`
	Split      SplitType  `json:"split"`
	TotalWeeks int        `json:"total_weeks"`
	Profile    Profile    `json:"profile"`
	Weeks      []WeekPlan `json:"weeks"`
}

// SetResult is one performed set of an exercise.
type SetResult struct {
	Reps      int
	WeightKg  float64
	Completed bool
}

// ExerciseResult groups the performed sets of one exercise in a session.
type ExerciseResult struct {
	ExerciseID string
	Sets       []SetResult
}

// Session is a recorded workout.
type Session struct {
	ID          int64
	StartedAt   time.Time
	CompletedAt time.Time
	Exercises   []ExerciseResult
}

// allowedEquipment returns the equipment the trainee can load.
func (p Profile) allowedEquipment() map[catalog.Equipment]bool {
	allowed := make(map[catalog.Equipment]bool)
	if p.FullGym {
		for _, e := range catalog.AllEquipment() {
			allowed[e] = true
		}
		return allowed
	}
	allowed[catalog.EquipmentBodyweight] = true
	for _, e := range p.Equipment {
		allowed[e] = true
	}
	return allowed
}
