package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/mesokit/mesokit/internal/catalog"
	"github.com/mesokit/mesokit/internal/program"
)

// mergedSetCap is the most sets a merged-in exercise keeps; the rest of its
// planned volume is let go with the missed day.
const mergedSetCap = 2

// Resolution is the outcome of resolving a pending reconciliation.
type Resolution struct {
	Action   Action
	Schedule Schedule
	// MergedInto identifies the day absorbing the missed work, merge only.
	MergedInto *Day
	// MergedExercises is the combined session for that day, merge only.
	MergedExercises []program.ExercisePlan
}

// Execute applies a resolution action to the schedule and returns the
// updated calendar.
func (r *reconciler) Execute(action Action) (Resolution, error) {
	missed := r.missedDays()
	if len(missed) == 0 {
		return Resolution{}, fmt.Errorf("nothing to resolve")
	}

	switch action {
	case ActionDoMissed:
		return r.executeDoMissed(missed)
	case ActionSkipContinue:
		return r.executeSkipContinue(missed, SkipReasonUser)
	case ActionMerge:
		return r.executeMerge(missed)
	case ActionRescheduleWeek:
		return r.executeRescheduleWeek(missed)
	default:
		return Resolution{}, fmt.Errorf("unknown action %q", action)
	}
}

// cloneSchedule copies the schedule so resolutions never mutate the
// reconciler's own view.
func (r *reconciler) cloneSchedule() Schedule {
	sched := r.sched
	sched.Days = append([]Day(nil), r.sched.Days...)
	return sched
}

// executeDoMissed moves the single missed day to today and walks every
// later unfinished day forward from there so no two days share a date.
func (r *reconciler) executeDoMissed(missed []Day) (Resolution, error) {
	if len(missed) != 1 {
		return Resolution{}, fmt.Errorf("do_missed requires exactly one missed day, got %d", len(missed))
	}
	sched := r.cloneSchedule()
	redistribute(&sched, r.today, dayKey(missed[0]))
	return Resolution{Action: ActionDoMissed, Schedule: sched}, nil
}

// executeSkipContinue marks the missed days skipped and lays the remaining
// plan out from today.
func (r *reconciler) executeSkipContinue(missed []Day, reason string) (Resolution, error) {
	sched := r.cloneSchedule()
	for i := range sched.Days {
		for _, m := range missed {
			if sameDay(sched.Days[i], m) {
				sched.Days[i].SkippedDate = r.today
				sched.Days[i].SkipReason = reason
			}
		}
	}
	redistribute(&sched, r.today, "")
	return Resolution{Action: ActionSkipContinue, Schedule: sched}, nil
}

// executeMerge folds the missed work into the next planned session.
func (r *reconciler) executeMerge(missed []Day) (Resolution, error) {
	target, ok := r.nextUnfinishedDay(missed)
	if !ok {
		return Resolution{}, fmt.Errorf("no upcoming day to merge into")
	}
	merged := r.mergedExercises(missed, target)

	res, err := r.executeSkipContinue(missed, SkipReasonMerged)
	if err != nil {
		return Resolution{}, err
	}
	res.Action = ActionMerge

	for i := range res.Schedule.Days {
		if sameDay(res.Schedule.Days[i], target) {
			res.MergedInto = &res.Schedule.Days[i]
		}
	}
	res.MergedExercises = merged
	return res, nil
}

// executeRescheduleWeek reassigns every unfinished day, missed ones
// included, to upcoming preferred weekdays.
func (r *reconciler) executeRescheduleWeek(_ []Day) (Resolution, error) {
	sched := r.cloneSchedule()
	redistribute(&sched, r.today, "")
	return Resolution{Action: ActionRescheduleWeek, Schedule: sched}, nil
}

// redistribute reassigns all unfinished days to preferred weekdays starting
// from the given date. Weeks stay in order: a week's days never land before
// the Monday after the previous week's last occupied date. A day matching
// pin is placed on the from date itself, preferred weekday or not.
func redistribute(sched *Schedule, from time.Time, pin string) {
	order := make([]int, 0, len(sched.Days))
	for i := range sched.Days {
		order = append(order, i)
	}
	sort.Slice(order, func(a, b int) bool {
		da, db := sched.Days[order[a]], sched.Days[order[b]]
		if da.WeekNumber != db.WeekNumber {
			return da.WeekNumber < db.WeekNumber
		}
		return da.DayIndex < db.DayIndex
	})

	cursor := normalizeDate(from)
	var boundary time.Time
	prevWeek := 0
	var lastInWeek time.Time

	for _, i := range order {
		day := &sched.Days[i]
		if day.WeekNumber != prevWeek {
			if prevWeek != 0 && !lastInWeek.IsZero() {
				boundary = mondayAfter(lastInWeek)
			}
			prevWeek = day.WeekNumber
			lastInWeek = time.Time{}
		}

		if day.Finished() {
			if day.PlannedDate.After(lastInWeek) {
				lastInWeek = day.PlannedDate
			}
			continue
		}

		if pin != "" && dayKey(*day) == pin {
			day.PlannedDate = normalizeDate(from)
			cursor = day.PlannedDate.AddDate(0, 0, 1)
			if day.PlannedDate.After(lastInWeek) {
				lastInWeek = day.PlannedDate
			}
			continue
		}

		next := nextAssignableDate(cursor, sched.Weekdays, boundary)
		day.PlannedDate = next
		cursor = next.AddDate(0, 0, 1)
		if next.After(lastInWeek) {
			lastInWeek = next
		}
	}
}

// nextAssignableDate returns the first preferred weekday at or after both
// the cursor and the boundary.
func nextAssignableDate(cursor time.Time, w Weekdays, boundary time.Time) time.Time {
	date := normalizeDate(cursor)
	if !boundary.IsZero() && date.Before(boundary) {
		date = boundary
	}
	if w.Count() == 0 {
		return date
	}
	for !w.Active(date.Weekday()) {
		date = date.AddDate(0, 0, 1)
	}
	return date
}

// nextActiveWeekday returns the first preferred weekday at or after date.
func nextActiveWeekday(date time.Time, w Weekdays) time.Time {
	return nextAssignableDate(date, w, time.Time{})
}

// mondayAfter returns the first Monday strictly after the given date.
func mondayAfter(date time.Time) time.Time {
	d := normalizeDate(date).AddDate(0, 0, 1)
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// nextUnfinishedDay finds the earliest planned day that is neither finished
// nor itself missed.
func (r *reconciler) nextUnfinishedDay(missed []Day) (Day, bool) {
	isMissed := make(map[string]bool, len(missed))
	for _, m := range missed {
		isMissed[dayKey(m)] = true
	}

	var (
		best  Day
		found bool
	)
	for _, day := range r.sched.Days {
		if day.Finished() || isMissed[dayKey(day)] {
			continue
		}
		if !found || day.PlannedDate.Before(best.PlannedDate) {
			best = day
			found = true
		}
	}
	return best, found
}

// mergedExercises builds the combined session: the target day's plan as-is,
// then the missed days' exercises capped at mergedSetCap sets each. An
// exercise already in the target keeps its original prescription.
func (r *reconciler) mergedExercises(missed []Day, target Day) []program.ExercisePlan {
	targetPlan, ok := r.dayPlan(target)
	if !ok {
		return nil
	}

	combined := make([]program.ExercisePlan, 0, len(targetPlan.Exercises))
	seen := make(map[string]bool)
	for _, ex := range targetPlan.Exercises {
		combined = append(combined, ex)
		seen[ex.ExerciseID] = true
	}

	for _, m := range missed {
		plan, ok := r.dayPlan(m)
		if !ok {
			continue
		}
		for _, ex := range plan.Exercises {
			if seen[ex.ExerciseID] {
				continue
			}
			seen[ex.ExerciseID] = true
			if ex.Sets > mergedSetCap {
				ex.Sets = mergedSetCap
			}
			combined = append(combined, ex)
		}
	}
	return combined
}

// mergedMuscles lists the muscles the missed days would add to the target.
func (r *reconciler) mergedMuscles(missed []Day) []catalog.Muscle {
	seen := make(map[catalog.Muscle]bool)
	var muscles []catalog.Muscle
	for _, m := range missed {
		for _, muscle := range r.dayMuscles(m) {
			if !seen[muscle] {
				seen[muscle] = true
				muscles = append(muscles, muscle)
			}
		}
	}
	return muscles
}

// weeklyMuscleSets sums the planned sets per muscle for a program week.
func (r *reconciler) weeklyMuscleSets(weekNumber int) map[catalog.Muscle]int {
	weekly := make(map[catalog.Muscle]int)
	if weekNumber < 1 || weekNumber > len(r.program.Weeks) {
		return weekly
	}
	for _, day := range r.program.Weeks[weekNumber-1].Days {
		for _, ex := range day.Exercises {
			e, ok := r.catalog.Exercise(ex.ExerciseID)
			if !ok {
				continue
			}
			weekly[e.Muscle] += ex.Sets
		}
	}
	return weekly
}

func sameDay(a, b Day) bool {
	return a.WeekNumber == b.WeekNumber && a.DayIndex == b.DayIndex
}

func dayKey(d Day) string {
	return fmt.Sprintf("%d/%d", d.WeekNumber, d.DayIndex)
}
