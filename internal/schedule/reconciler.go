package schedule

import (
	"sort"
	"time"

	"github.com/mesokit/mesokit/internal/catalog"
	"github.com/mesokit/mesokit/internal/program"
)

// Detection thresholds.
const (
	urgentMissedCount  = 3
	urgentSlipDays     = 10
	warningMissedCount = 2
	warningSlipDays    = 5
	longBreakDays      = 7

	weekContextEarlyBelow = 1.0 / 3.0
	weekContextMidBelow   = 2.0 / 3.0
)

// Nudge message keys, by descending priority.
const (
	msgNudgeDeload    = "missedDay.nudgeDeload"
	msgNudgeUrgent    = "missedDay.nudgeUrgent"
	msgNudgeLongBreak = "missedDay.nudgeLongBreak"
	msgNudgeMultiple  = "missedDay.nudgeMultiple"
	msgNudgeSingle    = "missedDay.nudgeSingle"
)

// reconciler assesses one schedule against its program on a given day.
type reconciler struct {
	catalog *catalog.Catalog
	program program.Program
	sched   Schedule
	today   time.Time
}

func newReconciler(c *catalog.Catalog, prog program.Program, sched Schedule, today time.Time) *reconciler {
	return &reconciler{
		catalog: c,
		program: prog,
		sched:   sched,
		today:   normalizeDate(today),
	}
}

// Detect classifies the schedule: clean when nothing was missed, otherwise a
// pending reconciliation with graded severity, a nudge, and resolution
// options.
func (r *reconciler) Detect() Reconciliation {
	missed := r.missedDays()
	if len(missed) == 0 {
		return Reconciliation{Status: StatusClean}
	}

	weekNumber := missed[0].WeekNumber
	phase := r.phaseOf(weekNumber)
	weekCtx := r.weekContext(weekNumber)
	severity := r.severity(missed)

	return Reconciliation{
		Status:               StatusPending,
		MissedDays:           missed,
		DaysSinceLastSession: r.daysSinceLastCompleted(),
		Severity:             severity,
		NudgeKey:             r.nudgeKey(missed, phase, severity),
		WeekContext:          weekCtx,
		Phase:                phase,
		Options:              r.buildOptions(missed, phase, weekCtx),
	}
}

// missedDays returns the unfinished days whose date has passed, oldest first.
func (r *reconciler) missedDays() []Day {
	var missed []Day
	for _, day := range r.sched.Days {
		if day.MissedAsOf(r.today) {
			missed = append(missed, day)
		}
	}
	sort.Slice(missed, func(i, j int) bool {
		return missed[i].PlannedDate.Before(missed[j].PlannedDate)
	})
	return missed
}

// severity grades the slip by how many days were missed and how long the
// user has gone without completing a session.
func (r *reconciler) severity(missed []Day) Severity {
	slip := r.daysSinceLastCompleted()
	switch {
	case len(missed) >= urgentMissedCount || slip >= urgentSlipDays:
		return SeverityUrgent
	case len(missed) >= warningMissedCount || slip >= warningSlipDays:
		return SeverityWarning
	default:
		return SeverityInfo
	}
}

// nudgeKey picks the message shown with the reconciliation prompt.
func (r *reconciler) nudgeKey(missed []Day, phase Phase, severity Severity) string {
	switch {
	case phase == PhaseDeload:
		return msgNudgeDeload
	case severity == SeverityUrgent:
		return msgNudgeUrgent
	case r.daysSinceLastCompleted() >= longBreakDays:
		return msgNudgeLongBreak
	case len(missed) >= 2:
		return msgNudgeMultiple
	default:
		return msgNudgeSingle
	}
}

// phaseOf places a program week in the mesocycle.
func (r *reconciler) phaseOf(weekNumber int) Phase {
	if weekNumber >= 1 && weekNumber <= len(r.program.Weeks) && r.program.Weeks[weekNumber-1].Deload {
		return PhaseDeload
	}
	if weekNumber >= r.program.TotalWeeks-1 {
		return PhasePeak
	}
	return PhaseRamp
}

// weekContext classifies how far through the week's planned days the user is.
func (r *reconciler) weekContext(weekNumber int) WeekContext {
	total := 0
	finished := 0
	for _, day := range r.sched.Days {
		if day.WeekNumber != weekNumber {
			continue
		}
		total++
		if day.Finished() {
			finished++
		}
	}
	if total == 0 {
		return WeekContextEarly
	}
	ratio := float64(finished) / float64(total)
	switch {
	case ratio < weekContextEarlyBelow:
		return WeekContextEarly
	case ratio < weekContextMidBelow:
		return WeekContextMid
	default:
		return WeekContextLate
	}
}

// daysSince returns whole days from a date to today.
func (r *reconciler) daysSince(date time.Time) int {
	return int(r.today.Sub(normalizeDate(date)).Hours() / 24)
}

// daysSinceLastCompleted returns days since the most recent completed
// workout. Before any workout completes it counts from the first planned
// day instead.
func (r *reconciler) daysSinceLastCompleted() int {
	var last time.Time
	for _, day := range r.sched.Days {
		if day.Completed() && day.CompletedDate.After(last) {
			last = day.CompletedDate
		}
	}
	if last.IsZero() {
		for _, day := range r.sched.Days {
			if last.IsZero() || day.PlannedDate.Before(last) {
				last = day.PlannedDate
			}
		}
	}
	if last.IsZero() {
		return 0
	}
	return r.daysSince(last)
}

// recoveryState classifies a muscle by hours since it was last trained.
type recoveryState string

const (
	recoveryFatigued     recoveryState = "fatigued"
	recoveryFresh        recoveryState = "fresh"
	recoveryUndertrained recoveryState = "undertrained"
)

// neverTrainedHours stands in for muscles no completed session has touched.
const neverTrainedHours = 999

// hoursSinceTrained returns hours since the muscle last appeared in a
// completed workout.
func (r *reconciler) hoursSinceTrained(muscle catalog.Muscle) int {
	var last time.Time
	for _, day := range r.sched.Days {
		if !day.Completed() {
			continue
		}
		for _, m := range r.dayMuscles(day) {
			if m == muscle && day.CompletedDate.After(last) {
				last = day.CompletedDate
			}
		}
	}
	if last.IsZero() {
		return neverTrainedHours
	}
	return int(r.today.Sub(normalizeDate(last)).Hours())
}

// muscleRecovery grades a muscle against its recovery window.
func (r *reconciler) muscleRecovery(muscle catalog.Muscle) recoveryState {
	window, ok := r.catalog.Recovery(muscle)
	if !ok {
		return recoveryFresh
	}
	hours := r.hoursSinceTrained(muscle)
	switch {
	case hours < window.FatiguedHours:
		return recoveryFatigued
	case hours >= window.FreshMinHours && hours <= window.FreshMaxHours:
		return recoveryFresh
	default:
		return recoveryUndertrained
	}
}

// musclesRecovered reports whether none of the given days' muscles are still
// inside their fatigued window today.
func (r *reconciler) musclesRecovered(days []Day) bool {
	for _, day := range days {
		for _, muscle := range r.dayMuscles(day) {
			if r.muscleRecovery(muscle) == recoveryFatigued {
				return false
			}
		}
	}
	return true
}

// dayMuscles returns the muscles the program trains on a given day.
func (r *reconciler) dayMuscles(day Day) []catalog.Muscle {
	plan, ok := r.dayPlan(day)
	if !ok {
		return nil
	}
	seen := make(map[catalog.Muscle]bool)
	var muscles []catalog.Muscle
	for _, ex := range plan.Exercises {
		e, ok := r.catalog.Exercise(ex.ExerciseID)
		if !ok {
			continue
		}
		if !seen[e.Muscle] {
			seen[e.Muscle] = true
			muscles = append(muscles, e.Muscle)
		}
	}
	return muscles
}

// dayPlan resolves a scheduled day to its plan in the program.
func (r *reconciler) dayPlan(day Day) (program.DayPlan, bool) {
	if day.WeekNumber < 1 || day.WeekNumber > len(r.program.Weeks) {
		return program.DayPlan{}, false
	}
	week := r.program.Weeks[day.WeekNumber-1]
	if day.DayIndex < 0 || day.DayIndex >= len(week.Days) {
		return program.DayPlan{}, false
	}
	return week.Days[day.DayIndex], true
}
