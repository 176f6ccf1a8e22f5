package schedule

// Option gating constants.
const (
	// doMissedMaxSlipDays bounds how long since the last session a workout
	// can still be worth doing as planned.
	doMissedMaxSlipDays = 4
	// mergeMaxMissed and rescheduleMaxMissed bound how much can be folded
	// forward before skipping is the honest answer.
	mergeMaxMissed      = 2
	rescheduleMaxMissed = 2
	// mergeMaxCombinedSets keeps a merged session below a workable length.
	// The gate counts the raw combined prescription; the per-exercise cap is
	// applied later when the session is built.
	mergeMaxCombinedSets = 28
	// mergeVolumeAllowance is the extra weekly volume a merge may add to a
	// muscle; the result must stay under the muscle's MRV.
	mergeVolumeAllowance = 4
	// rescheduleMaxGapDays bounds how far away the next preferred weekday
	// may be for rescheduling to make sense.
	rescheduleMaxGapDays = 5
	// mergeRecommendMaxSlipDays bounds recommending a merge to fresh slips.
	mergeRecommendMaxSlipDays = 3
)

// Option message keys.
const (
	msgOptionDoMissedLabel         = "missedDay.option.doMissed.label"
	msgOptionDoMissedDescription   = "missedDay.option.doMissed.description"
	msgOptionSkipLabel             = "missedDay.option.skipContinue.label"
	msgOptionSkipDescription       = "missedDay.option.skipContinue.description"
	msgOptionMergeLabel            = "missedDay.option.merge.label"
	msgOptionMergeDescription      = "missedDay.option.merge.description"
	msgOptionRescheduleLabel       = "missedDay.option.rescheduleWeek.label"
	msgOptionRescheduleDescription = "missedDay.option.rescheduleWeek.description"
)

// buildOptions assembles the resolution choices for the missed days.
// Exactly one option comes back recommended.
func (r *reconciler) buildOptions(missed []Day, phase Phase, weekCtx WeekContext) []Option {
	var options []Option

	slip := r.daysSinceLastCompleted()
	ready := r.musclesRecovered(missed)
	deload := phase == PhaseDeload
	late := weekCtx == WeekContextLate

	if len(missed) == 1 && ready && slip <= doMissedMaxSlipDays {
		options = append(options, Option{
			Action:         ActionDoMissed,
			Recommended:    !deload && !late,
			LabelKey:       msgOptionDoMissedLabel,
			DescriptionKey: msgOptionDoMissedDescription,
			NewDate:        r.today,
		})
	}

	options = append(options, Option{
		Action:         ActionSkipContinue,
		Recommended:    deload || len(missed) >= urgentMissedCount || (late && len(missed) >= warningMissedCount),
		LabelKey:       msgOptionSkipLabel,
		DescriptionKey: msgOptionSkipDescription,
	})

	if target, ok := r.mergeTarget(missed, deload, ready); ok {
		options = append(options, Option{
			Action:         ActionMerge,
			Recommended:    len(missed) == 1 && !late && slip <= mergeRecommendMaxSlipDays && !anyRecommended(options),
			LabelKey:       msgOptionMergeLabel,
			DescriptionKey: msgOptionMergeDescription,
			MergedMuscles:  r.mergedMuscles(missed),
			ExtraSets:      r.extraMergedSets(missed, target),
			NewDate:        target.PlannedDate,
		})
	}

	if r.rescheduleAllowed(missed, deload) {
		options = append(options, Option{
			Action:         ActionRescheduleWeek,
			Recommended:    weekCtx == WeekContextEarly && !anyRecommended(options),
			LabelKey:       msgOptionRescheduleLabel,
			DescriptionKey: msgOptionRescheduleDescription,
			NewDate:        nextActiveWeekday(r.today, r.sched.Weekdays),
		})
	}

	return ensureOneRecommended(options)
}

// mergeTarget checks whether the missed work can be folded into the next
// planned session without blowing up its length or any muscle's weekly
// volume ceiling, and returns that session's day.
func (r *reconciler) mergeTarget(missed []Day, deload, ready bool) (Day, bool) {
	if len(missed) > mergeMaxMissed || deload || !ready {
		return Day{}, false
	}
	target, ok := r.nextUnfinishedDay(missed)
	if !ok {
		return Day{}, false
	}

	if r.combinedSets(missed, target) > mergeMaxCombinedSets {
		return Day{}, false
	}

	// Weekly volume for every muscle gaining sets must stay under MRV even
	// with the merge allowance on top.
	weekly := r.weeklyMuscleSets(target.WeekNumber)
	for _, muscle := range r.mergedMuscles(missed) {
		lm, ok := r.catalog.Landmarks(muscle)
		if !ok {
			continue
		}
		if weekly[muscle]+mergeVolumeAllowance > lm.MRV {
			return Day{}, false
		}
	}
	return target, true
}

// combinedSets counts the sets a merged session would ask for before the
// per-exercise cap trims the missed work.
func (r *reconciler) combinedSets(missed []Day, target Day) int {
	total := 0
	for _, day := range append([]Day{target}, missed...) {
		plan, ok := r.dayPlan(day)
		if !ok {
			continue
		}
		for _, ex := range plan.Exercises {
			total += ex.Sets
		}
	}
	return total
}

// extraMergedSets counts the capped sets the merge would add on top of the
// target day's own prescription.
func (r *reconciler) extraMergedSets(missed []Day, target Day) int {
	own := 0
	if plan, ok := r.dayPlan(target); ok {
		for _, ex := range plan.Exercises {
			own += ex.Sets
		}
	}
	total := 0
	for _, ex := range r.mergedExercises(missed, target) {
		total += ex.Sets
	}
	return total - own
}

// rescheduleAllowed checks whether shifting the week is still practical.
func (r *reconciler) rescheduleAllowed(missed []Day, deload bool) bool {
	if len(missed) > rescheduleMaxMissed || deload {
		return false
	}
	next := nextActiveWeekday(r.today, r.sched.Weekdays)
	return r.daysSince(next) >= -rescheduleMaxGapDays
}

// anyRecommended reports whether an option is already marked recommended.
func anyRecommended(options []Option) bool {
	for _, o := range options {
		if o.Recommended {
			return true
		}
	}
	return false
}

// ensureOneRecommended leaves exactly one recommended option: the first one
// marked, or skip-and-continue when none is.
func ensureOneRecommended(options []Option) []Option {
	seen := false
	for i := range options {
		if options[i].Recommended {
			if seen {
				options[i].Recommended = false
			}
			seen = true
		}
	}
	if !seen {
		for i := range options {
			if options[i].Action == ActionSkipContinue {
				options[i].Recommended = true
				break
			}
		}
	}
	return options
}
