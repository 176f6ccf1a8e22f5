package schedule

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

// ErrNotFound is returned when no schedule exists for a program.
var ErrNotFound = errors.New("schedule not found")

const dateFormat = "2006-01-02"

// repository persists schedules in SQLite.
type repository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func newRepository(db *sqlite.Database, logger *slog.Logger) *repository {
	return &repository{db: db, logger: logger}
}

// Save upserts the full calendar state of a program.
func (r *repository) Save(ctx context.Context, sched Schedule) (err error) {
	tx, err := r.db.ReadWrite.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			err = errors.Join(err, fmt.Errorf("rollback transaction: %w", rollbackErr))
		}
	}()

	programID := sched.ProgramID.String()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO schedule_weekdays (program_id, monday, tuesday, wednesday, thursday, friday, saturday, sunday)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (program_id) DO UPDATE SET
			monday = excluded.monday, tuesday = excluded.tuesday,
			wednesday = excluded.wednesday, thursday = excluded.thursday,
			friday = excluded.friday, saturday = excluded.saturday,
			sunday = excluded.sunday`,
		programID,
		boolToInt(sched.Weekdays.Monday), boolToInt(sched.Weekdays.Tuesday),
		boolToInt(sched.Weekdays.Wednesday), boolToInt(sched.Weekdays.Thursday),
		boolToInt(sched.Weekdays.Friday), boolToInt(sched.Weekdays.Saturday),
		boolToInt(sched.Weekdays.Sunday))
	if err != nil {
		return fmt.Errorf("upsert weekdays: %w", err)
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM scheduled_days WHERE program_id = ?`, programID)
	if err != nil {
		return fmt.Errorf("clear scheduled days: %w", err)
	}
	for _, day := range sched.Days {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO scheduled_days (
				program_id, week_number, day_index,
				planned_date, completed_date, skipped_date, skip_reason
			) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			programID, day.WeekNumber, day.DayIndex,
			day.PlannedDate.Format(dateFormat),
			formatDate(day.CompletedDate), formatDate(day.SkippedDate),
			nullString(day.SkipReason))
		if err != nil {
			return fmt.Errorf("insert scheduled day: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Get loads the calendar state of a program.
func (r *repository) Get(ctx context.Context, programID uuid.UUID) (_ Schedule, err error) {
	sched := Schedule{ProgramID: programID}

	var monday, tuesday, wednesday, thursday, friday, saturday, sunday int
	err = r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT monday, tuesday, wednesday, thursday, friday, saturday, sunday
		FROM schedule_weekdays
		WHERE program_id = ?`, programID.String()).
		Scan(&monday, &tuesday, &wednesday, &thursday, &friday, &saturday, &sunday)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Schedule{}, ErrNotFound
		}
		return Schedule{}, fmt.Errorf("query weekdays: %w", err)
	}
	sched.Weekdays = Weekdays{
		Monday: monday != 0, Tuesday: tuesday != 0, Wednesday: wednesday != 0,
		Thursday: thursday != 0, Friday: friday != 0, Saturday: saturday != 0,
		Sunday: sunday != 0,
	}

	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT week_number, day_index, planned_date, completed_date, skipped_date, skip_reason
		FROM scheduled_days
		WHERE program_id = ?
		ORDER BY week_number, day_index`, programID.String())
	if err != nil {
		return Schedule{}, fmt.Errorf("query scheduled days: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	for rows.Next() {
		var (
			day          Day
			plannedStr   string
			completedStr sql.NullString
			skippedStr   sql.NullString
			skipReason   sql.NullString
		)
		if err = rows.Scan(&day.WeekNumber, &day.DayIndex, &plannedStr, &completedStr, &skippedStr, &skipReason); err != nil {
			return Schedule{}, fmt.Errorf("scan scheduled day: %w", err)
		}
		if day.PlannedDate, err = time.Parse(dateFormat, plannedStr); err != nil {
			return Schedule{}, fmt.Errorf("parse planned date: %w", err)
		}
		if day.CompletedDate, err = parseDate(completedStr); err != nil {
			return Schedule{}, fmt.Errorf("parse completed date: %w", err)
		}
		if day.SkippedDate, err = parseDate(skippedStr); err != nil {
			return Schedule{}, fmt.Errorf("parse skipped date: %w", err)
		}
		day.SkipReason = skipReason.String
		sched.Days = append(sched.Days, day)
	}
	if err = rows.Err(); err != nil {
		return Schedule{}, fmt.Errorf("rows error: %w", err)
	}
	return sched, nil
}

// activeState is the bookkeeping row advanced as workouts complete. A
// pending reconciliation is parked here until the user resolves it.
type activeState struct {
	CurrentWeek       int
	CurrentDay        int
	LastCompletedAt   time.Time
	CompletedDays     []string
	PendingResolution *Reconciliation
}

// SaveActiveState upserts the progress bookkeeping for a program.
func (r *repository) SaveActiveState(ctx context.Context, programID uuid.UUID, state activeState) error {
	completedJSON, err := json.Marshal(state.CompletedDays)
	if err != nil {
		return fmt.Errorf("marshal completed days: %w", err)
	}
	pendingJSON := sql.NullString{}
	if state.PendingResolution != nil {
		raw, err := json.Marshal(state.PendingResolution)
		if err != nil {
			return fmt.Errorf("marshal pending resolution: %w", err)
		}
		pendingJSON = sql.NullString{String: string(raw), Valid: true}
	}
	_, err = r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO active_state (program_id, current_week, current_day, last_completed_at, completed_days, pending_resolution)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (program_id) DO UPDATE SET
			current_week = excluded.current_week,
			current_day = excluded.current_day,
			last_completed_at = excluded.last_completed_at,
			completed_days = excluded.completed_days,
			pending_resolution = excluded.pending_resolution`,
		programID.String(), state.CurrentWeek, state.CurrentDay,
		formatTimestamp(state.LastCompletedAt), string(completedJSON), pendingJSON)
	if err != nil {
		return fmt.Errorf("upsert active state: %w", err)
	}
	return nil
}

// GetActiveState loads the progress bookkeeping, or a zero state when the
// program has not been started.
func (r *repository) GetActiveState(ctx context.Context, programID uuid.UUID) (activeState, error) {
	var (
		state         activeState
		lastCompleted sql.NullString
		completedJSON string
		pendingJSON   sql.NullString
	)
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT current_week, current_day, last_completed_at, completed_days, pending_resolution
		FROM active_state
		WHERE program_id = ?`, programID.String()).
		Scan(&state.CurrentWeek, &state.CurrentDay, &lastCompleted, &completedJSON, &pendingJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return activeState{CurrentWeek: 1, CompletedDays: []string{}}, nil
		}
		return activeState{}, fmt.Errorf("query active state: %w", err)
	}
	if state.LastCompletedAt, err = parseTimestamp(lastCompleted); err != nil {
		return activeState{}, fmt.Errorf("parse last completed: %w", err)
	}
	if err = json.Unmarshal([]byte(completedJSON), &state.CompletedDays); err != nil {
		return activeState{}, fmt.Errorf("unmarshal completed days: %w", err)
	}
	if pendingJSON.Valid {
		state.PendingResolution = &Reconciliation{}
		if err = json.Unmarshal([]byte(pendingJSON.String), state.PendingResolution); err != nil {
			return activeState{}, fmt.Errorf("unmarshal pending resolution: %w", err)
		}
	}
	return state, nil
}

func formatDate(t time.Time) sql.NullString {
	if t.IsZero() {
		return sql.NullString{}
	}
	return sql.NullString{String: t.Format(dateFormat), Valid: true}
}

func parseDate(s sql.NullString) (time.Time, error) {
	if !s.Valid {
		return time.Time{}, nil
	}
	return time.Parse(dateFormat, s.String)
}

func formatTimestamp(t time.Time) sql.NullString {
	if t.IsZero() {
		return sql.NullString{}
	}
	return sql.NullString{String: t.UTC().Format(time.RFC3339), Valid: true}
}

func parseTimestamp(s sql.NullString) (time.Time, error) {
	if !s.Valid {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, s.String)
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
