package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mesokit/mesokit/internal/catalog"
	"github.com/mesokit/mesokit/internal/errors"
	"github.com/mesokit/mesokit/internal/program"
	"github.com/mesokit/mesokit/internal/sqlite"
)

// Service exposes calendar placement and missed-day reconciliation.
type Service struct {
	catalog *catalog.Catalog
	repo    *repository
	logger  *slog.Logger
}

// NewService wires the schedule service against a database.
func NewService(db *sqlite.Database, logger *slog.Logger) (*Service, error) {
	c, err := catalog.Default()
	if err != nil {
		return nil, errors.Wrap(err, "load exercise catalog")
	}
	return &Service{
		catalog: c,
		repo:    newRepository(db, logger),
		logger:  logger,
	}, nil
}

// Create lays a program's weeks out on the calendar from a start date and
// persists the result. The number of preferred weekdays must match the
// program's training frequency.
func (s *Service) Create(ctx context.Context, prog program.Program, weekdays Weekdays, start time.Time) (Schedule, error) {
	if got, want := weekdays.Count(), prog.Profile.DaysPerWeek; got != want {
		return Schedule{}, fmt.Errorf("%d preferred weekdays for a %d-day program", got, want)
	}

	sched := Schedule{ProgramID: prog.ID, Weekdays: weekdays}
	cursor := normalizeDate(start)
	var boundary time.Time
	for _, week := range prog.Weeks {
		var lastInWeek time.Time
		for dayIndex := range week.Days {
			date := nextAssignableDate(cursor, weekdays, boundary)
			sched.Days = append(sched.Days, Day{
				WeekNumber:  week.Number,
				DayIndex:    dayIndex,
				PlannedDate: date,
			})
			cursor = date.AddDate(0, 0, 1)
			lastInWeek = date
		}
		boundary = mondayAfter(lastInWeek)
	}

	if err := s.repo.Save(ctx, sched); err != nil {
		return Schedule{}, errors.Wrap(err, "save schedule",
			slog.String("program_id", prog.ID.String()))
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "schedule created",
		slog.String("program_id", prog.ID.String()),
		slog.Int("days", len(sched.Days)))
	return sched, nil
}

// Reconcile assesses the schedule for missed days as of today. A pending
// assessment is parked on the program's active state until it is resolved.
func (s *Service) Reconcile(ctx context.Context, prog program.Program, today time.Time) (Reconciliation, error) {
	sched, err := s.repo.Get(ctx, prog.ID)
	if err != nil {
		return Reconciliation{}, errors.Wrap(err, "load schedule",
			slog.String("program_id", prog.ID.String()))
	}
	assessment := newReconciler(s.catalog, prog, sched, today).Detect()

	state, err := s.repo.GetActiveState(ctx, prog.ID)
	if err != nil {
		return Reconciliation{}, errors.Wrap(err, "load active state")
	}
	if assessment.Status == StatusPending {
		state.PendingResolution = &assessment
	} else {
		state.PendingResolution = nil
	}
	if err := s.repo.SaveActiveState(ctx, prog.ID, state); err != nil {
		return Reconciliation{}, errors.Wrap(err, "save active state")
	}
	return assessment, nil
}

// Resolve applies one of the offered actions to the pending reconciliation
// and persists the adjusted calendar.
func (s *Service) Resolve(ctx context.Context, prog program.Program, action Action, today time.Time) (Resolution, error) {
	sched, err := s.repo.Get(ctx, prog.ID)
	if err != nil {
		return Resolution{}, errors.Wrap(err, "load schedule",
			slog.String("program_id", prog.ID.String()))
	}

	rec := newReconciler(s.catalog, prog, sched, today)
	assessment := rec.Detect()
	if assessment.Status != StatusPending {
		return Resolution{}, errors.New("nothing to resolve")
	}
	if !optionOffered(assessment.Options, action) {
		return Resolution{}, fmt.Errorf("action %s not offered for this schedule", action)
	}

	resolution, err := rec.Execute(action)
	if err != nil {
		return Resolution{}, errors.Wrap(err, "execute resolution",
			slog.String("action", string(action)))
	}
	if err := s.repo.Save(ctx, resolution.Schedule); err != nil {
		return Resolution{}, errors.Wrap(err, "save resolved schedule",
			slog.String("program_id", prog.ID.String()))
	}

	state, err := s.repo.GetActiveState(ctx, prog.ID)
	if err != nil {
		return Resolution{}, errors.Wrap(err, "load active state")
	}
	state.PendingResolution = nil
	if err := s.repo.SaveActiveState(ctx, prog.ID, state); err != nil {
		return Resolution{}, errors.Wrap(err, "save active state")
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "schedule resolved",
		slog.String("program_id", prog.ID.String()),
		slog.String("action", string(action)),
		slog.Int("missed_days", len(assessment.MissedDays)))
	return resolution, nil
}

// CompleteDay marks a scheduled day done and advances the progress
// bookkeeping.
func (s *Service) CompleteDay(ctx context.Context, programID uuid.UUID, weekNumber, dayIndex int, completedAt time.Time) error {
	sched, err := s.repo.Get(ctx, programID)
	if err != nil {
		return errors.Wrap(err, "load schedule", slog.String("program_id", programID.String()))
	}

	found := false
	for i := range sched.Days {
		if sched.Days[i].WeekNumber == weekNumber && sched.Days[i].DayIndex == dayIndex {
			sched.Days[i].CompletedDate = normalizeDate(completedAt)
			found = true
		}
	}
	if !found {
		return fmt.Errorf("no scheduled day %d/%d", weekNumber, dayIndex)
	}
	if err := s.repo.Save(ctx, sched); err != nil {
		return errors.Wrap(err, "save schedule", slog.String("program_id", programID.String()))
	}

	state, err := s.repo.GetActiveState(ctx, programID)
	if err != nil {
		return errors.Wrap(err, "load active state")
	}
	state.CurrentWeek = weekNumber
	state.CurrentDay = dayIndex
	state.LastCompletedAt = completedAt
	state.CompletedDays = append(state.CompletedDays, fmt.Sprintf("%d/%d", weekNumber, dayIndex))
	if err := s.repo.SaveActiveState(ctx, programID, state); err != nil {
		return errors.Wrap(err, "save active state")
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "day completed",
		slog.String("program_id", programID.String()),
		slog.Int("week", weekNumber),
		slog.Int("day", dayIndex))
	return nil
}

func optionOffered(options []Option, action Action) bool {
	for _, o := range options {
		if o.Action == action {
			return true
		}
	}
	return false
}
