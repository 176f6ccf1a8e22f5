// Package schedule tracks the calendar side of a training program: which
// dates the planned days land on, detecting missed days, and reconciling the
// plan when life gets in the way.
package schedule

import (
	"time"

	"github.com/google/uuid"

	"github.com/mesokit/mesokit/internal/catalog"
)

// Weekdays stores which days of the week the user trains on.
type Weekdays struct {
	Monday    bool
	Tuesday   bool
	Wednesday bool
	Thursday  bool
	Friday    bool
	Saturday  bool
	Sunday    bool
}

// Active reports whether the given weekday is a training day.
func (w Weekdays) Active(d time.Weekday) bool {
	switch d {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	default:
		return false
	}
}

// Count returns the number of training days per week.
func (w Weekdays) Count() int {
	count := 0
	for d := time.Sunday; d <= time.Saturday; d++ {
		if w.Active(d) {
			count++
		}
	}
	return count
}

// Day is one planned training day placed on the calendar.
type Day struct {
	WeekNumber    int       // 1-based program week
	DayIndex      int       // 0-based day within the week's plan
	PlannedDate   time.Time // date only, midnight UTC
	CompletedDate time.Time // zero until the workout is completed
	SkippedDate   time.Time // zero unless the day was resolved away
	SkipReason    string    // user_skip or merged
}

// Completed reports whether the workout was performed.
func (d Day) Completed() bool {
	return !d.CompletedDate.IsZero()
}

// Skipped reports whether the day was resolved away without training.
func (d Day) Skipped() bool {
	return !d.SkippedDate.IsZero()
}

// Finished reports whether the day no longer needs attention.
func (d Day) Finished() bool {
	return d.Completed() || d.Skipped()
}

// MissedAsOf reports whether the day's planned date has passed without the
// workout being completed or skipped.
func (d Day) MissedAsOf(today time.Time) bool {
	return !d.Finished() && d.PlannedDate.Before(normalizeDate(today))
}

// Skip reason constants.
const (
	SkipReasonUser   = "user_skip"
	SkipReasonMerged = "merged"
)

// Schedule is the calendar state of one program.
type Schedule struct {
	ProgramID uuid.UUID
	Weekdays  Weekdays
	Days      []Day
}

// Status describes where a schedule stands in the reconciliation cycle.
type Status string

// Reconciliation status constants.
const (
	StatusClean    Status = "clean"
	StatusPending  Status = "pending"
	StatusResolved Status = "resolved"
)

// Action is a way of resolving missed days.
type Action string

// Resolution action constants.
const (
	ActionDoMissed       Action = "do_missed"
	ActionSkipContinue   Action = "skip_continue"
	ActionMerge          Action = "merge"
	ActionRescheduleWeek Action = "reschedule_week"
)

// Severity grades how badly the schedule has slipped.
type Severity string

// Severity constants.
const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityUrgent  Severity = "urgent"
)

// WeekContext describes how far through the current week the user is.
type WeekContext string

// Week context constants.
const (
	WeekContextEarly WeekContext = "early"
	WeekContextMid   WeekContext = "mid"
	WeekContextLate  WeekContext = "late"
)

// Phase describes where the current week sits in the mesocycle.
type Phase string

// Phase constants.
const (
	PhaseRamp   Phase = "ramp"
	PhasePeak   Phase = "peak"
	PhaseDeload Phase = "deload"
)

// Option is one offered resolution with its recommendation flag and the
// details a client needs to describe the outcome.
type Option struct {
	Action         Action
	Recommended    bool
	LabelKey       string
	DescriptionKey string

	// MergedMuscles and ExtraSets are set for merge options: the muscles
	// folded into the target session and the sets added to it.
	MergedMuscles []catalog.Muscle
	ExtraSets     int
	// NewDate is set for options that move a workout: today for doing the
	// missed session, the target session's date for a merge, the next
	// preferred weekday for a reschedule.
	NewDate time.Time
}

// Reconciliation is the assessment of a schedule at a point in time.
type Reconciliation struct {
	Status               Status
	MissedDays           []Day
	Severity             Severity
	DaysSinceLastSession int
	NudgeKey             string
	WeekContext          WeekContext
	Phase                Phase
	Options              []Option
}

// normalizeDate truncates a time to its date at midnight UTC.
func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
