// Package migration folds the old habit_checks rows into each habit's
// completed_dates set. The task runs once at startup, guarded by a
// persisted flag, and can be re-run safely after a crash: habits that
// already carry completed dates are skipped.
package migration

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limetree/momentum/internal/error_values"
	"github.com/limetree/momentum/internal/repository"
	"github.com/limetree/momentum/internal/service"
	"github.com/limetree/momentum/internal/streak"
	"github.com/limetree/momentum/pkg/datekey"
)

const flagName = "legacy_checks_migrated"

type Migrator struct {
	habitsRepo repository.HabitsRepositoryI
	legacyRepo repository.LegacyChecksRepositoryI
	flagsRepo  repository.SystemFlagsRepositoryI
	stats      service.StatsServiceI
}

func New(
	habitsRepo repository.HabitsRepositoryI,
	legacyRepo repository.LegacyChecksRepositoryI,
	flagsRepo repository.SystemFlagsRepositoryI,
	stats service.StatsServiceI,
) *Migrator {
	if habitsRepo == nil || legacyRepo == nil || flagsRepo == nil || stats == nil {
		log.Fatal("provided nil deps to migrator")
	}
	return &Migrator{
		habitsRepo: habitsRepo,
		legacyRepo: legacyRepo,
		flagsRepo:  flagsRepo,
		stats:      stats,
	}
}

// Run performs the migration unless the completion flag is already set.
func (m *Migrator) Run(ctx context.Context) error {
	done, err := m.flagsRepo.IsSet(ctx, flagName)
	if err != nil {
		return errors.New("checking migration flag error: " + err.Error())
	}
	if done {
		slog.Info("legacy checks migration already completed, skipping")
		return nil
	}
	checks, err := m.legacyRepo.ListCheckDates(ctx)
	if err != nil {
		return errors.New("listing legacy checks error: " + err.Error())
	}
	if len(checks) == 0 {
		slog.Info("no legacy checks to migrate")
		return m.setFlag(ctx)
	}
	now := time.Now()
	owners := make(map[uuid.UUID]struct{})
	migrated := 0
	for habitID, dates := range checks {
		habit, err := m.habitsRepo.GetByID(ctx, habitID)
		if err != nil {
			if errors.Is(err, errorvalues.ErrHabitNotFound) {
				slog.Warn("legacy checks reference unknown habit", slog.String("habit_id", habitID.String()))
				continue
			}
			return errors.New("loading habit for migration error: " + err.Error())
		}
		// A habit that already carries completed dates was migrated by an
		// earlier, interrupted run.
		if len(habit.CompletedDates) > 0 {
			owners[habit.UserID] = struct{}{}
			continue
		}
		habit.CompletedDates = toDateKeys(dates)
		habit.CurrentStreak = streak.Compute(habit.CompletedDates, now)
		habit.BestStreak = max(habit.BestStreak, habit.CurrentStreak)
		if err = m.habitsRepo.UpdateProgress(ctx, habit); err != nil {
			return errors.New("persisting migrated habit error: " + err.Error())
		}
		owners[habit.UserID] = struct{}{}
		migrated++
	}
	for uid := range owners {
		if _, err = m.stats.Resync(ctx, uid); err != nil {
			slog.Error("resyncing migrated user stats failed",
				slog.String("uid", uid.String()),
				slog.String("error", err.Error()),
			)
		}
	}
	slog.Info("legacy checks migration completed", slog.Int("migrated_habits", migrated))
	return m.setFlag(ctx)
}

func (m *Migrator) setFlag(ctx context.Context) error {
	if err := m.flagsRepo.Set(ctx, flagName); err != nil {
		return errors.New("setting migration flag error: " + err.Error())
	}
	return nil
}

func toDateKeys(dates []time.Time) []string {
	set := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		set[datekey.Key(d)] = struct{}{}
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
