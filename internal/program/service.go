package program

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mesokit/mesokit/internal/catalog"
	"github.com/mesokit/mesokit/internal/errors"
	"github.com/mesokit/mesokit/internal/sqlite"
)

// Service exposes program generation and workout tracking.
type Service struct {
	catalog *catalog.Catalog
	repo    *repository
	logger  *slog.Logger
}

// NewService wires the program service against a database.
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

// Catalog exposes the loaded exercise catalog.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// Generate creates a program for the profile and persists it.
func (s *Service) Generate(ctx context.Context, profile Profile) (Program, error) {
	gen, err := newGenerator(s.catalog, profile)
	if err != nil {
		return Program{}, errors.Wrap(err, "create generator")
	}
	prog, err := gen.Generate(time.Now())
	if err != nil {
		return Program{}, errors.Wrap(err, "generate program")
	}
	if err := s.repo.CreateProgram(ctx, prog); err != nil {
		return Program{}, errors.Wrap(err, "save program",
			slog.String("program_id", prog.ID.String()))
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "program generated",
		slog.String("program_id", prog.ID.String()),
		slog.String("split", string(prog.Split)),
		slog.Int("total_weeks", prog.TotalWeeks))
	return prog, nil
}

// Get loads a stored program.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (Program, error) {
	prog, err := s.repo.GetProgram(ctx, id)
	if err != nil {
		return Program{}, errors.Wrap(err, "get program", slog.String("program_id", id.String()))
	}
	return prog, nil
}

// RecordSession persists a performed workout.
func (s *Service) RecordSession(ctx context.Context, sess Session) (int64, error) {
	id, err := s.repo.CreateSession(ctx, sess)
	if err != nil {
		return 0, errors.Wrap(err, "record session")
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "session recorded",
		slog.Int64("session_id", id),
		slog.Int("exercises", len(sess.Exercises)))
	return id, nil
}

// SuggestOverload advises a weight or rep adjustment for an exercise based
// on its recorded history.
func (s *Service) SuggestOverload(ctx context.Context, plan ExercisePlan) (OverloadSuggestion, error) {
	ex, ok := s.catalog.Exercise(plan.ExerciseID)
	if !ok {
		return OverloadSuggestion{}, errors.New("exercise not in catalog")
	}
	history, err := s.repo.ListExerciseHistory(ctx, plan.ExerciseID)
	if err != nil {
		return OverloadSuggestion{}, errors.Wrap(err, "load exercise history",
			slog.String("exercise_id", plan.ExerciseID))
	}
	return AdviseOverload(ex, plan, history), nil
}
