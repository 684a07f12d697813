package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limetree/momentum/internal/error_values"
	"github.com/limetree/momentum/internal/repository"
	"github.com/limetree/momentum/internal/streak"
	"github.com/limetree/momentum/pkg/datekey"
	"github.com/limetree/momentum/pkg/entity"
)

// HabitsService owns the per-user habit set. Every mutation recomputes the
// habit's derived streak fields and then resyncs the owner's stats row.
// The habit write and the resync are two independent calls; if the resync
// fails the habit write stands and the stats stay stale until the next
// successful resync.
type HabitsService struct {
	repo  repository.HabitsRepositoryI
	stats StatsServiceI
}

func NewHabitsService(habitsRepo repository.HabitsRepositoryI, stats StatsServiceI) *HabitsService {
	if habitsRepo == nil || stats == nil {
		log.Fatal("provided nil deps to habits service")
	}
	return &HabitsService{
		repo:  habitsRepo,
		stats: stats,
	}
}

func (hs *HabitsService) CreateHabit(ctx context.Context, uid uuid.UUID, req *CreateHabitRequest) (*entity.Habit, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errorvalues.ErrEmptyName
	}
	id, err := hs.repo.Create(ctx, &entity.Habit{
		UserID: uid,
		Name:   name,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	habit, err := hs.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	hs.resyncOwner(ctx, uid)
	return habit, nil
}

func (hs *HabitsService) GetUserHabits(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Habit, error) {
	habits, err := hs.repo.List(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	return habits, nil
}

func (hs *HabitsService) GetHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error) {
	return hs.ownedHabit(ctx, habitID, userID)
}

// ToggleToday flips today's membership in the completion set. The streak is
// recomputed from the set, so removing today can lower it; the best streak
// is a watermark and never drops.
func (hs *HabitsService) ToggleToday(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error) {
	habit, err := hs.ownedHabit(ctx, habitID, userID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	today := datekey.Today(now)
	habit.CompletedDates = flipDate(habit.CompletedDates, today)
	habit.CurrentStreak = streak.Compute(habit.CompletedDates, now)
	habit.BestStreak = max(habit.BestStreak, habit.CurrentStreak)
	if err = hs.repo.UpdateProgress(ctx, habit); err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	hs.resyncOwner(ctx, userID)
	return habit, nil
}

// ManualIncrement advances the streak counter by one, at most once per 24
// wall-clock hours. Inside the cool-down it is a silent no-op. Unlike
// ToggleToday this path does not recompute from the date set; that keeps the
// historic counter behavior where an increment can outrun the recorded days.
func (hs *HabitsService) ManualIncrement(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error) {
	habit, err := hs.ownedHabit(ctx, habitID, userID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if !streak.CanManualIncrement(habit.LastIncrementTime, now) {
		return habit, nil
	}
	habit.CurrentStreak++
	habit.BestStreak = max(habit.BestStreak, habit.CurrentStreak)
	habit.LastIncrementTime = &now
	today := datekey.Today(now)
	if !containsDate(habit.CompletedDates, today) {
		habit.CompletedDates = insertDate(habit.CompletedDates, today)
	}
	if err = hs.repo.UpdateProgress(ctx, habit); err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	hs.resyncOwner(ctx, userID)
	return habit, nil
}

func (hs *HabitsService) DeleteHabit(ctx context.Context, habitID, userID uuid.UUID) error {
	_, err := hs.ownedHabit(ctx, habitID, userID)
	if err != nil {
		return err
	}
	err = hs.repo.Delete(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return errors.New("habits repository error: " + err.Error())
	}
	hs.resyncOwner(ctx, userID)
	return nil
}

// Ownership check before every read or mutation
func (hs *HabitsService) ownedHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error) {
	habit, err := hs.repo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	return habit, nil
}

func (hs *HabitsService) resyncOwner(ctx context.Context, uid uuid.UUID) {
	if _, err := hs.stats.Resync(ctx, uid); err != nil {
		slog.Error("stats resync failed, stats stay stale until next mutation",
			slog.String("uid", uid.String()),
			slog.String("error", err.Error()),
		)
	}
}

func containsDate(dates []string, key string) bool {
	for _, d := range dates {
		if d == key {
			return true
		}
	}
	return false
}

func flipDate(dates []string, key string) []string {
	if containsDate(dates, key) {
		out := make([]string, 0, len(dates)-1)
		for _, d := range dates {
			if d != key {
				out = append(out, d)
			}
		}
		return out
	}
	return insertDate(dates, key)
}

// insertDate keeps the set deduped and sorted for display
func insertDate(dates []string, key string) []string {
	out := append(append(make([]string, 0, len(dates)+1), dates...), key)
	sort.Strings(out)
	return out
}
