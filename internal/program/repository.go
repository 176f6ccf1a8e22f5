package program

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mesokit/mesokit/internal/sqlite"
)

// ErrNotFound is returned when a program or session does not exist.
var ErrNotFound = errors.New("not found")

const timestampFormat = time.RFC3339

// repository persists programs and workout sessions in SQLite.
type repository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func newRepository(db *sqlite.Database, logger *slog.Logger) *repository {
	return &repository{db: db, logger: logger}
}

// CreateProgram stores a generated program.
func (r *repository) CreateProgram(ctx context.Context, p Program) error {
	profileJSON, err := json.Marshal(p.Profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	planJSON, err := json.Marshal(p.Weeks)
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}

	_, err = r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO programs (id, created_at, split_type, total_weeks, profile, plan)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID.String(), p.CreatedAt.UTC().Format(timestampFormat),
		string(p.Split), p.TotalWeeks, string(profileJSON), string(planJSON))
	if err != nil {
		return fmt.Errorf("insert program: %w", err)
	}
	return nil
}

// GetProgram loads a program by id.
func (r *repository) GetProgram(ctx context.Context, id uuid.UUID) (Program, error) {
	var (
		createdAtStr string
		splitType    string
		totalWeeks   int
		profileJSON  string
		planJSON     string
	)
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT created_at, split_type, total_weeks, profile, plan
		FROM programs
		WHERE id = ?`, id.String()).
		Scan(&createdAtStr, &splitType, &totalWeeks, &profileJSON, &planJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Program{}, ErrNotFound
		}
		return Program{}, fmt.Errorf("query program: %w", err)
	}

	createdAt, err := time.Parse(timestampFormat, createdAtStr)
	if err != nil {
		return Program{}, fmt.Errorf("parse created_at: %w", err)
	}

	p := Program{
		ID:         id,
		CreatedAt:  createdAt,
		Split:      SplitType(splitType),
		TotalWeeks: totalWeeks,
	}
	if err = json.Unmarshal([]byte(profileJSON), &p.Profile); err != nil {
		return Program{}, fmt.Errorf("unmarshal profile: %w", err)
	}
	if err = json.Unmarshal([]byte(planJSON), &p.Weeks); err != nil {
		return Program{}, fmt.Errorf("unmarshal plan: %w", err)
	}
	return p, nil
}

// CreateSession stores a workout session with its exercises and sets.
func (r *repository) CreateSession(ctx context.Context, sess Session) (_ int64, err error) {
	tx, err := r.db.ReadWrite.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			err = errors.Join(err, fmt.Errorf("rollback transaction: %w", rollbackErr))
		}
	}()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO workout_sessions (started_at, completed_at)
		VALUES (?, ?)`,
		formatTimestamp(sess.StartedAt), formatTimestamp(sess.CompletedAt))
	if err != nil {
		return 0, fmt.Errorf("insert session: %w", err)
	}
	sessionID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("session id: %w", err)
	}

	for position, exercise := range sess.Exercises {
		var exRes sql.Result
		exRes, err = tx.ExecContext(ctx, `
			INSERT INTO session_exercises (session_id, exercise_id, position)
			VALUES (?, ?, ?)`,
			sessionID, exercise.ExerciseID, position)
		if err != nil {
			return 0, fmt.Errorf("insert session exercise: %w", err)
		}
		var exerciseRowID int64
		exerciseRowID, err = exRes.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("session exercise id: %w", err)
		}
		for i, set := range exercise.Sets {
			_, err = tx.ExecContext(ctx, `
				INSERT INTO session_sets (session_exercise_id, set_number, reps, weight_kg, completed)
				VALUES (?, ?, ?, ?, ?)`,
				exerciseRowID, i+1, set.Reps, set.WeightKg, boolToInt(set.Completed))
			if err != nil {
				return 0, fmt.Errorf("insert session set: %w", err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}
	return sessionID, nil
}

// ListExerciseHistory returns the completed results of one exercise across
// sessions, oldest first.
func (r *repository) ListExerciseHistory(ctx context.Context, exerciseID string) (_ []ExerciseResult, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT se.id, ss.reps, ss.weight_kg, ss.completed
		FROM session_exercises se
		JOIN workout_sessions ws ON ws.id = se.session_id
		JOIN session_sets ss ON ss.session_exercise_id = se.id
		WHERE se.exercise_id = ? AND ws.completed_at IS NOT NULL
		ORDER BY ws.started_at, se.id, ss.set_number`,
		exerciseID)
	if err != nil {
		return nil, fmt.Errorf("query exercise history: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	var (
		results   []ExerciseResult
		current   ExerciseResult
		currentID int64 = -1
	)
	for rows.Next() {
		var (
			rowID     int64
			set       SetResult
			completed int
		)
		if err = rows.Scan(&rowID, &set.Reps, &set.WeightKg, &completed); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		set.Completed = completed != 0

		if rowID != currentID {
			if currentID != -1 {
				results = append(results, current)
			}
			current = ExerciseResult{ExerciseID: exerciseID}
			currentID = rowID
		}
		current.Sets = append(current.Sets, set)
	}
	if currentID != -1 {
		results = append(results, current)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return results, nil
}

func formatTimestamp(t time.Time) sql.NullString {
	if t.IsZero() {
		return sql.NullString{}
	}
	return sql.NullString{String: t.UTC().Format(timestampFormat), Valid: true}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
