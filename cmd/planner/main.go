// Command planner generates a training program for a profile described via
// environment variables, schedules it on the calendar, and prints the result
// as JSON.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/mesokit/mesokit/internal/catalog"
	"github.com/mesokit/mesokit/internal/envstruct"
	"github.com/mesokit/mesokit/internal/errors"
	"github.com/mesokit/mesokit/internal/logging"
	"github.com/mesokit/mesokit/internal/program"
	"github.com/mesokit/mesokit/internal/schedule"
	"github.com/mesokit/mesokit/internal/sqlite"
)

type config struct {
	// SqliteURL is the URL to the SQLite database. You can use ":memory:" for an ethereal in-memory database.
	SqliteURL string `env:"MESOKIT_SQLITE_URL" envDefault:"./mesokit.sqlite3"`
	// Age of the trainee in years.
	Age int `env:"MESOKIT_AGE" envDefault:"30"`
	// Sex is one of male, female, other.
	Sex string `env:"MESOKIT_SEX" envDefault:"other"`
	// BodyweightKg is the trainee's bodyweight in kilograms.
	BodyweightKg int `env:"MESOKIT_BODYWEIGHT_KG" envDefault:"75"`
	// Experience is one of beginner, intermediate, advanced.
	Experience string `env:"MESOKIT_EXPERIENCE" envDefault:"beginner"`
	// TrainingYears counts years of consistent training.
	TrainingYears int `env:"MESOKIT_TRAINING_YEARS" envDefault:"0"`
	// Goal is one of hypertrophy, strength, endurance.
	Goal string `env:"MESOKIT_GOAL" envDefault:"hypertrophy"`
	// DaysPerWeek is the weekly training frequency, 2 to 6.
	DaysPerWeek int `env:"MESOKIT_DAYS_PER_WEEK" envDefault:"3"`
	// FullGym grants access to every equipment type.
	FullGym bool `env:"MESOKIT_FULL_GYM" envDefault:"true"`
	// Equipment is a comma-separated list of owned equipment when FullGym is off.
	Equipment string `env:"MESOKIT_EQUIPMENT" envDefault:""`
	// Limitations is a comma-separated list of limited joints, e.g. knee,shoulder.
	Limitations string `env:"MESOKIT_LIMITATIONS" envDefault:""`
	// PriorityMuscles is a comma-separated list of muscles to emphasize.
	PriorityMuscles string `env:"MESOKIT_PRIORITY_MUSCLES" envDefault:""`
	// Weekdays is a comma-separated list of training days, e.g. mon,wed,fri.
	// The count must match DaysPerWeek.
	Weekdays string `env:"MESOKIT_WEEKDAYS" envDefault:"mon,wed,fri"`
}

// output is the JSON document written to stdout.
type output struct {
	Program  program.Program   `json:"program"`
	Schedule schedule.Schedule `json:"schedule"`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	var cfg config
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open db", slog.String("url", cfg.SqliteURL))
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.LogAttrs(ctx, slog.LevelWarn, "close db", errors.SlogError(closeErr))
		}
	}()

	programs, err := program.NewService(db, logger)
	if err != nil {
		return errors.Wrap(err, "new program service")
	}
	schedules, err := schedule.NewService(db, logger)
	if err != nil {
		return errors.Wrap(err, "new schedule service")
	}

	profile := program.Profile{
		Age:             cfg.Age,
		Sex:             program.Sex(cfg.Sex),
		BodyweightKg:    float64(cfg.BodyweightKg),
		Experience:      program.Experience(cfg.Experience),
		TrainingYears:   float64(cfg.TrainingYears),
		Goal:            program.Goal(cfg.Goal),
		DaysPerWeek:     cfg.DaysPerWeek,
		FullGym:         cfg.FullGym,
		Equipment:       parseEquipment(cfg.Equipment),
		Limitations:     parseJoints(cfg.Limitations),
		PriorityMuscles: parseMuscles(cfg.PriorityMuscles),
	}

	prog, err := programs.Generate(ctx, profile)
	if err != nil {
		return errors.Wrap(err, "generate program")
	}

	weekdays, err := parseWeekdays(cfg.Weekdays)
	if err != nil {
		return errors.Wrap(err, "parse weekdays")
	}
	sched, err := schedules.Create(ctx, prog, weekdays, time.Now())
	if err != nil {
		return errors.Wrap(err, "create schedule")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(output{Program: prog, Schedule: sched}); err != nil {
		return errors.Wrap(err, "encode output")
	}
	return nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func parseEquipment(s string) []catalog.Equipment {
	var equipment []catalog.Equipment
	for _, item := range splitList(s) {
		equipment = append(equipment, catalog.Equipment(item))
	}
	return equipment
}

func parseJoints(s string) []catalog.Joint {
	var joints []catalog.Joint
	for _, item := range splitList(s) {
		joints = append(joints, catalog.Joint(item))
	}
	return joints
}

func parseMuscles(s string) []catalog.Muscle {
	var muscles []catalog.Muscle
	for _, item := range splitList(s) {
		muscles = append(muscles, catalog.Muscle(item))
	}
	return muscles
}

func parseWeekdays(s string) (schedule.Weekdays, error) {
	var w schedule.Weekdays
	for _, item := range splitList(s) {
		switch strings.ToLower(item) {
		case "mon", "monday":
			w.Monday = true
		case "tue", "tuesday":
			w.Tuesday = true
		case "wed", "wednesday":
			w.Wednesday = true
		case "thu", "thursday":
			w.Thursday = true
		case "fri", "friday":
			w.Friday = true
		case "sat", "saturday":
			w.Saturday = true
		case "sun", "sunday":
			w.Sunday = true
		default:
			return schedule.Weekdays{}, errors.New("unknown weekday " + item)
		}
	}
	return w, nil
}

func main() {
	ctx := context.Background()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelInfo,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "planner failed", errors.SlogError(err))
		os.Exit(1)
	}
}
