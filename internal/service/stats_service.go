package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limetree/momentum/internal/error_values"
	"github.com/limetree/momentum/internal/repository"
	"github.com/limetree/momentum/pkg/datekey"
	"github.com/limetree/momentum/pkg/entity"
)

// StatsService keeps the per-user stats row an exact projection of that
// user's habit set. Resync always recomputes the totals in full instead of
// patching them, so a missed update heals on the next mutation.
type StatsService struct {
	habitsRepo repository.HabitsRepositoryI
	statsRepo  repository.StatsRepositoryI
}

func NewStatsService(habitsRepo repository.HabitsRepositoryI, statsRepo repository.StatsRepositoryI) *StatsService {
	if habitsRepo == nil || statsRepo == nil {
		log.Fatal("provided nil repos to stats service")
	}
	return &StatsService{
		habitsRepo: habitsRepo,
		statsRepo:  statsRepo,
	}
}

func (ss *StatsService) EnsureProfile(ctx context.Context, uid uuid.UUID, displayName, email string) error {
	err := ss.statsRepo.EnsureProfile(ctx, &entity.UserStats{
		UserID:      uid,
		DisplayName: displayName,
		Email:       email,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("stats repository error: " + err.Error())
	}
	return nil
}

func (ss *StatsService) Resync(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error) {
	habits, err := ss.habitsRepo.GetAllByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	stats := Aggregate(uid, habits, time.Now())
	if err = ss.statsRepo.UpdateTotals(ctx, stats); err != nil {
		if errors.Is(err, errorvalues.ErrStatsNotFound) {
			return nil, err
		}
		return nil, errors.New("stats repository error: " + err.Error())
	}
	return stats, nil
}

func (ss *StatsService) GetProfile(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error) {
	stats, err := ss.statsRepo.GetByUserID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrStatsNotFound) {
			return nil, err
		}
		return nil, errors.New("stats repository error: " + err.Error())
	}
	return stats, nil
}

// Aggregate computes the stats totals from a habit set. It is a pure
// function of the set and the clock: longest streak is the max best streak
// over all habits, completed-today counts habits whose set holds today's key.
func Aggregate(uid uuid.UUID, habits []*entity.Habit, now time.Time) *entity.UserStats {
	today := datekey.Today(now)
	stats := &entity.UserStats{
		UserID:      uid,
		TotalHabits: len(habits),
	}
	for _, h := range habits {
		if h.BestStreak > stats.LongestStreak {
			stats.LongestStreak = h.BestStreak
		}
		if containsDate(h.CompletedDates, today) {
			stats.TotalCompletedToday++
		}
	}
	return stats
}
