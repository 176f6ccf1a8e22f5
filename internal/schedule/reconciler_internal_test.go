package schedule

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mesokit/mesokit/internal/catalog"
	"github.com/mesokit/mesokit/internal/program"
)

// date builds a midnight-UTC date in March 2026; the 2nd is a Monday.
func date(day int) time.Time {
	return time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC)
}

// testProgram is a small four-week program training two days per week.
func testProgram() program.Program {
	dayA := program.DayPlan{Label: "day.fullBodyA", Exercises: []program.ExercisePlan{
		{ExerciseID: "ex_001", Sets: 3, MinReps: 6, MaxReps: 10, TargetRIR: 2, RestSeconds: 150, WeightKg: 60},
		{ExerciseID: "ex_045", Sets: 3, MinReps: 6, MaxReps: 10, TargetRIR: 2, RestSeconds: 150, WeightKg: 80},
	}}
	dayB := program.DayPlan{Label: "day.fullBodyB", Exercises: []program.ExercisePlan{
		{ExerciseID: "ex_013", Sets: 3, MinReps: 6, MaxReps: 10, TargetRIR: 2, RestSeconds: 150, WeightKg: 0},
		{ExerciseID: "ex_057", Sets: 3, MinReps: 6, MaxReps: 10, TargetRIR: 2, RestSeconds: 150, WeightKg: 70},
	}}

	weeks := make([]program.WeekPlan, 0, 4)
	for week := 1; week <= 4; week++ {
		weeks = append(weeks, program.WeekPlan{
			Number: week,
			Deload: week == 4,
			Days:   []program.DayPlan{dayA, dayB},
		})
	}
	return program.Program{
		ID:         uuid.New(),
		CreatedAt:  date(1),
		Split:      program.SplitFullBody,
		TotalWeeks: 4,
		Profile:    program.Profile{DaysPerWeek: 2},
		Weeks:      weeks,
	}
}

// testSchedule lays the test program on Mondays and Thursdays from March 2.
func testSchedule(prog program.Program) Schedule {
	sched := Schedule{
		ProgramID: prog.ID,
		Weekdays:  Weekdays{Monday: true, Thursday: true},
	}
	dates := []time.Time{date(2), date(5), date(9), date(12), date(16), date(19), date(23), date(26)}
	for i, d := range dates {
		sched.Days = append(sched.Days, Day{
			WeekNumber:  i/2 + 1,
			DayIndex:    i % 2,
			PlannedDate: d,
		})
	}
	return sched
}

func newTestReconciler(t *testing.T, sched Schedule, prog program.Program, today time.Time) *reconciler {
	t.Helper()
	c, err := catalog.Default()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return newReconciler(c, prog, sched, today)
}

func complete(sched *Schedule, index int, completedOn time.Time) {
	sched.Days[index].CompletedDate = completedOn
}

func TestDetectClean(t *testing.T) {
	t.Parallel()

	prog := testProgram()
	sched := testSchedule(prog)

	// The planned date itself has not passed yet.
	rec := newTestReconciler(t, sched, prog, date(2)).Detect()
	if rec.Status != StatusClean {
		t.Errorf("status = %s, want %s", rec.Status, StatusClean)
	}

	// Completed and skipped days never count as missed.
	complete(&sched, 0, date(2))
	sched.Days[1].SkippedDate = date(6)
	sched.Days[1].SkipReason = SkipReasonUser
	rec = newTestReconciler(t, sched, prog, date(8)).Detect()
	if rec.Status != StatusClean {
		t.Errorf("status after finishing week = %s, want %s", rec.Status, StatusClean)
	}
}

func TestDetectSingleMissed(t *testing.T) {
	t.Parallel()

	prog := testProgram()
	sched := testSchedule(prog)

	rec := newTestReconciler(t, sched, prog, date(4)).Detect()

	if rec.Status != StatusPending {
		t.Fatalf("status = %s, want %s", rec.Status, StatusPending)
	}
	if len(rec.MissedDays) != 1 || !rec.MissedDays[0].PlannedDate.Equal(date(2)) {
		t.Fatalf("missed days = %+v, want the March 2 workout", rec.MissedDays)
	}
	if rec.Severity != SeverityInfo {
		t.Errorf("severity = %s, want %s", rec.Severity, SeverityInfo)
	}
	if rec.NudgeKey != msgNudgeSingle {
		t.Errorf("nudge = %s, want %s", rec.NudgeKey, msgNudgeSingle)
	}
	if rec.Phase != PhaseRamp {
		t.Errorf("phase = %s, want %s", rec.Phase, PhaseRamp)
	}
	if rec.WeekContext != WeekContextEarly {
		t.Errorf("week context = %s, want %s", rec.WeekContext, WeekContextEarly)
	}

	assertRecommended(t, rec.Options, ActionDoMissed)
	if !optionOffered(rec.Options, ActionMerge) {
		t.Error("merge not offered for a single fresh miss")
	}
	if !optionOffered(rec.Options, ActionRescheduleWeek) {
		t.Error("reschedule not offered early in the week")
	}
}

func TestDetectSeverity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		today time.Time
		want  Severity
	}{
		{name: "one recent miss is info", today: date(4), want: SeverityInfo},
		{name: "two misses are warning", today: date(7), want: SeverityWarning},
		{name: "three misses are urgent", today: date(11), want: SeverityUrgent},
		{name: "long slip is urgent", today: date(13), want: SeverityUrgent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			prog := testProgram()
			rec := newTestReconciler(t, testSchedule(prog), prog, tt.today).Detect()
			if rec.Severity != tt.want {
				t.Errorf("severity = %s, want %s (missed %d)", rec.Severity, tt.want, len(rec.MissedDays))
			}
		})
	}
}

func TestDetectNudgePriority(t *testing.T) {
	t.Parallel()

	t.Run("deload outranks everything", func(t *testing.T) {
		t.Parallel()
		prog := testProgram()
		sched := testSchedule(prog)
		for i := range 6 {
			complete(&sched, i, sched.Days[i].PlannedDate)
		}
		rec := newTestReconciler(t, sched, prog, date(25)).Detect()
		if rec.Phase != PhaseDeload {
			t.Fatalf("phase = %s, want %s", rec.Phase, PhaseDeload)
		}
		if rec.NudgeKey != msgNudgeDeload {
			t.Errorf("nudge = %s, want %s", rec.NudgeKey, msgNudgeDeload)
		}
		assertRecommended(t, rec.Options, ActionSkipContinue)
		if optionOffered(rec.Options, ActionMerge) || optionOffered(rec.Options, ActionRescheduleWeek) {
			t.Error("merge and reschedule must not be offered during deload")
		}
	})

	t.Run("urgent outranks long break", func(t *testing.T) {
		t.Parallel()
		prog := testProgram()
		rec := newTestReconciler(t, testSchedule(prog), prog, date(13)).Detect()
		if rec.NudgeKey != msgNudgeUrgent {
			t.Errorf("nudge = %s, want %s", rec.NudgeKey, msgNudgeUrgent)
		}
		assertRecommended(t, rec.Options, ActionSkipContinue)
	})

	t.Run("long break after a week of silence", func(t *testing.T) {
		t.Parallel()
		prog := testProgram()
		sched := testSchedule(prog)
		complete(&sched, 0, date(2))
		rec := newTestReconciler(t, sched, prog, date(10)).Detect()
		if rec.NudgeKey != msgNudgeLongBreak {
			t.Errorf("nudge = %s, want %s", rec.NudgeKey, msgNudgeLongBreak)
		}
	})

	t.Run("multiple misses with recent training", func(t *testing.T) {
		t.Parallel()
		prog := testProgram()
		sched := testSchedule(prog)
		complete(&sched, 1, date(5))
		rec := newTestReconciler(t, sched, prog, date(10)).Detect()
		if len(rec.MissedDays) != 2 {
			t.Fatalf("missed = %d, want 2", len(rec.MissedDays))
		}
		if rec.NudgeKey != msgNudgeMultiple {
			t.Errorf("nudge = %s, want %s", rec.NudgeKey, msgNudgeMultiple)
		}
	})
}

func TestDetectRecoveryGate(t *testing.T) {
	t.Parallel()

	t.Run("fatigued missed muscles block do and merge", func(t *testing.T) {
		t.Parallel()
		prog := testProgram()
		sched := testSchedule(prog)
		// The first week's chest/quads day was done a week late, yesterday.
		// The second week's chest/quads day was missed, and those muscles
		// are still inside their fatigued window.
		complete(&sched, 0, date(9))
		sched.Days[1].SkippedDate = date(9)
		sched.Days[1].SkipReason = SkipReasonUser

		rec := newTestReconciler(t, sched, prog, date(10)).Detect()
		if rec.Status != StatusPending {
			t.Fatalf("status = %s, want %s", rec.Status, StatusPending)
		}
		if len(rec.MissedDays) != 1 || !rec.MissedDays[0].PlannedDate.Equal(date(9)) {
			t.Fatalf("missed days = %+v, want the March 9 workout", rec.MissedDays)
		}
		if optionOffered(rec.Options, ActionDoMissed) {
			t.Error("do_missed offered while the missed day's muscles are fatigued")
		}
		if optionOffered(rec.Options, ActionMerge) {
			t.Error("merge offered while the missed day's muscles are fatigued")
		}
	})

	t.Run("other muscles' fatigue does not block a fresh day", func(t *testing.T) {
		t.Parallel()
		prog := testProgram()
		sched := testSchedule(prog)
		// Lats and hamstrings were trained yesterday, but the missed day
		// works chest and quads, which have not been trained at all.
		complete(&sched, 1, date(3))

		rec := newTestReconciler(t, sched, prog, date(4)).Detect()
		if rec.Status != StatusPending {
			t.Fatalf("status = %s, want %s", rec.Status, StatusPending)
		}
		if !optionOffered(rec.Options, ActionDoMissed) {
			t.Error("do_missed not offered though the missed day's muscles are fresh")
		}
		if !optionOffered(rec.Options, ActionMerge) {
			t.Error("merge not offered though the missed day's muscles are fresh")
		}
	})
}

func TestDetectSeverityCountsFromLastSession(t *testing.T) {
	t.Parallel()

	prog := testProgram()
	sched := testSchedule(prog)
	// One workout done on March 2, everything since resolved away except
	// the March 5 day. Only one day is missed, but the last completed
	// session is twelve days back.
	complete(&sched, 0, date(2))
	for _, i := range []int{2, 3} {
		sched.Days[i].SkippedDate = date(13)
		sched.Days[i].SkipReason = SkipReasonUser
	}

	rec := newTestReconciler(t, sched, prog, date(14)).Detect()
	if rec.Status != StatusPending {
		t.Fatalf("status = %s, want %s", rec.Status, StatusPending)
	}
	if len(rec.MissedDays) != 1 {
		t.Fatalf("missed = %d, want 1", len(rec.MissedDays))
	}
	if rec.DaysSinceLastSession != 12 {
		t.Errorf("days since last session = %d, want 12", rec.DaysSinceLastSession)
	}
	if rec.Severity != SeverityUrgent {
		t.Errorf("severity = %s, want %s", rec.Severity, SeverityUrgent)
	}
	if optionOffered(rec.Options, ActionDoMissed) {
		t.Error("do_missed offered twelve days after the last session")
	}
}

func TestDetectExactlyOneRecommendation(t *testing.T) {
	t.Parallel()

	todays := []time.Time{date(3), date(4), date(6), date(7), date(10), date(11), date(13), date(20), date(25)}
	for _, today := range todays {
		prog := testProgram()
		rec := newTestReconciler(t, testSchedule(prog), prog, today).Detect()
		if rec.Status != StatusPending {
			continue
		}
		count := 0
		for _, o := range rec.Options {
			if o.Recommended {
				count++
			}
		}
		if count != 1 {
			t.Errorf("as of %s: %d recommended options, want exactly 1 (%+v)",
				today.Format("2006-01-02"), count, rec.Options)
		}
	}
}

func TestMergedExercisesCapsVolume(t *testing.T) {
	t.Parallel()

	prog := testProgram()
	sched := testSchedule(prog)
	r := newTestReconciler(t, sched, prog, date(4))

	missed := r.missedDays()
	target, ok := r.nextUnfinishedDay(missed)
	if !ok {
		t.Fatal("no target day")
	}
	merged := r.mergedExercises(missed, target)

	if len(merged) != 4 {
		t.Fatalf("merged exercises = %d, want 4", len(merged))
	}
	// Target day's own work keeps its full prescription.
	if merged[0].ExerciseID != "ex_013" || merged[0].Sets != 3 {
		t.Errorf("target exercise altered: %+v", merged[0])
	}
	// Merged-in work is capped.
	for _, ex := range merged[2:] {
		if ex.Sets > mergedSetCap {
			t.Errorf("merged exercise %s has %d sets, cap is %d", ex.ExerciseID, ex.Sets, mergedSetCap)
		}
	}
}

func TestDetectOptionMetadata(t *testing.T) {
	t.Parallel()

	prog := testProgram()
	rec := newTestReconciler(t, testSchedule(prog), prog, date(4)).Detect()
	if rec.Status != StatusPending {
		t.Fatalf("status = %s, want %s", rec.Status, StatusPending)
	}
	if rec.DaysSinceLastSession != 2 {
		t.Errorf("days since last session = %d, want 2", rec.DaysSinceLastSession)
	}

	byAction := make(map[Action]Option, len(rec.Options))
	for _, o := range rec.Options {
		if o.LabelKey == "" || o.DescriptionKey == "" {
			t.Errorf("option %s missing label or description key: %+v", o.Action, o)
		}
		byAction[o.Action] = o
	}

	if o, ok := byAction[ActionDoMissed]; !ok {
		t.Error("do_missed not offered")
	} else if !o.NewDate.Equal(date(4)) {
		t.Errorf("do_missed new date = %s, want today", o.NewDate.Format(dateFormat))
	}

	if o, ok := byAction[ActionMerge]; !ok {
		t.Error("merge not offered")
	} else {
		// The missed day works chest and quads; merging adds their capped
		// sets on top of the target session.
		if len(o.MergedMuscles) != 2 {
			t.Errorf("merged muscles = %v, want chest and quads", o.MergedMuscles)
		}
		if o.ExtraSets != 4 {
			t.Errorf("extra sets = %d, want 4", o.ExtraSets)
		}
		if !o.NewDate.Equal(date(5)) {
			t.Errorf("merge target date = %s, want March 5", o.NewDate.Format(dateFormat))
		}
	}

	if o, ok := byAction[ActionRescheduleWeek]; !ok {
		t.Error("reschedule not offered")
	} else if !o.NewDate.Equal(date(5)) {
		t.Errorf("reschedule new date = %s, want the next preferred weekday", o.NewDate.Format(dateFormat))
	}
}

func TestMergeGateUsesUncappedSets(t *testing.T) {
	t.Parallel()

	// Two 16-set days: merged and capped they fit in a session, but the
	// raw combined prescription is 32 sets and the gate counts that.
	plan := func(ids ...string) program.DayPlan {
		day := program.DayPlan{Label: "day.fullBodyA"}
		for _, id := range ids {
			day.Exercises = append(day.Exercises, program.ExercisePlan{
				ExerciseID: id, Sets: 4, MinReps: 6, MaxReps: 10, TargetRIR: 2, RestSeconds: 150,
			})
		}
		return day
	}
	dayA := plan("ex_001", "ex_013", "ex_031", "ex_045")
	dayB := plan("ex_057", "ex_065", "ex_079", "ex_087")

	prog := program.Program{
		ID:         uuid.New(),
		CreatedAt:  date(1),
		Split:      program.SplitFullBody,
		TotalWeeks: 2,
		Profile:    program.Profile{DaysPerWeek: 2},
		Weeks: []program.WeekPlan{
			{Number: 1, Days: []program.DayPlan{dayA, dayB}},
			{Number: 2, Days: []program.DayPlan{dayA, dayB}},
		},
	}
	sched := testSchedule(prog)
	sched.Days = sched.Days[:4]

	r := newTestReconciler(t, sched, prog, date(4))
	rec := r.Detect()
	if rec.Status != StatusPending {
		t.Fatalf("status = %s, want %s", rec.Status, StatusPending)
	}
	if optionOffered(rec.Options, ActionMerge) {
		t.Error("merge offered though the combined prescription is 32 sets")
	}

	// The capped session itself would have fit; the gate must not count it.
	missed := r.missedDays()
	target, ok := r.nextUnfinishedDay(missed)
	if !ok {
		t.Fatal("no target day")
	}
	capped := 0
	for _, ex := range r.mergedExercises(missed, target) {
		capped += ex.Sets
	}
	if capped > mergeMaxCombinedSets {
		t.Fatalf("capped session = %d sets, expected it to fit under %d", capped, mergeMaxCombinedSets)
	}
}

func assertRecommended(t *testing.T, options []Option, want Action) {
	t.Helper()
	for _, o := range options {
		if o.Recommended {
			if o.Action != want {
				t.Errorf("recommended action = %s, want %s", o.Action, want)
			}
			return
		}
	}
	t.Errorf("no recommended option, want %s", want)
}
