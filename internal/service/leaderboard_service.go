package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"sort"

	"github.com/google/uuid"
	errorvalues "github.com/limetree/momentum/internal/error_values"
	"github.com/limetree/momentum/internal/repository"
	"github.com/limetree/momentum/internal/streak"
	"github.com/limetree/momentum/pkg/entity"
)

// LeaderboardService ranks the stats rows of all users. It only ever reads;
// the rows themselves are maintained by the stats service. A short-TTL redis
// cache sits in front of the full-board query; cache trouble of any kind
// falls through to the database.
type LeaderboardService struct {
	statsRepo repository.StatsRepositoryI
	cache     BoardCacheI
}

// NewLeaderboardService accepts a nil cache, which disables caching.
func NewLeaderboardService(statsRepo repository.StatsRepositoryI, cache BoardCacheI) *LeaderboardService {
	if statsRepo == nil {
		log.Fatal("provided nil stats repo to leaderboard service")
	}
	return &LeaderboardService{
		statsRepo: statsRepo,
		cache:     cache,
	}
}

func (ls *LeaderboardService) GetLeaderboard(ctx context.Context) ([]*entity.LeaderboardEntry, error) {
	if ls.cache != nil {
		if entries, err := ls.cache.GetBoard(ctx); err == nil {
			return entries, nil
		}
	}
	all, err := ls.statsRepo.GetAll(ctx)
	if err != nil {
		return nil, errors.New("stats repository error: " + err.Error())
	}
	entries := Rank(all)
	if ls.cache != nil {
		if err = ls.cache.SetBoard(ctx, entries); err != nil {
			slog.Warn("leaderboard cache write failed", slog.String("error", err.Error()))
		}
	}
	return entries, nil
}

// GetUserRank counts the users whose longest streak is at least the given
// user's, the user itself included. This is deliberately not the 1-based
// position in the sorted board: tied users share one number.
func (ls *LeaderboardService) GetUserRank(ctx context.Context, uid uuid.UUID) (*UserRank, error) {
	all, err := ls.statsRepo.GetAll(ctx)
	if err != nil {
		return nil, errors.New("stats repository error: " + err.Error())
	}
	var own *entity.UserStats
	for _, s := range all {
		if s.UserID == uid {
			own = s
			break
		}
	}
	if own == nil {
		return nil, errorvalues.ErrStatsNotFound
	}
	rank := 0
	for _, s := range all {
		if s.LongestStreak >= own.LongestStreak {
			rank++
		}
	}
	return &UserRank{
		Rank:          rank,
		LongestStreak: own.LongestStreak,
	}, nil
}

// Rank sorts descending by longest streak, ties broken by more completions
// today. Beyond that the incoming order is kept (stable sort), which is the
// tie-break of last resort.
func Rank(all []*entity.UserStats) []*entity.LeaderboardEntry {
	sorted := make([]*entity.UserStats, len(all))
	copy(sorted, all)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].LongestStreak != sorted[j].LongestStreak {
			return sorted[i].LongestStreak > sorted[j].LongestStreak
		}
		return sorted[i].TotalCompletedToday > sorted[j].TotalCompletedToday
	})
	entries := make([]*entity.LeaderboardEntry, 0, len(sorted))
	for _, s := range sorted {
		entries = append(entries, &entity.LeaderboardEntry{
			UserID:              s.UserID,
			DisplayName:         s.DisplayName,
			LongestStreak:       s.LongestStreak,
			TotalHabits:         s.TotalHabits,
			TotalCompletedToday: s.TotalCompletedToday,
			Level:               streak.Level(s.LongestStreak),
		})
	}
	return entries
}
