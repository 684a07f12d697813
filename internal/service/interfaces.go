package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/limetree/momentum/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Email    string `validate:"omitempty,email,max=255"`
	Password string `validate:"required,min=8,max=72"`
}

type CreateHabitRequest struct {
	Name string
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

type UserRank struct {
	Rank          int `json:"rank"`
	LongestStreak int `json:"longestStreak"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database and the
	// user's stats profile. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, gives back user's data with ID
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type HabitsServiceI interface {
	// Creates a habit with an empty completion history. Name must be
	// non-empty after trimming
	CreateHabit(ctx context.Context, uid uuid.UUID, req *CreateHabitRequest) (*entity.Habit, error)
	// Lists habits owned by uid with pagination
	GetUserHabits(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Habit, error)
	GetHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error)
	// Flips today's membership in the habit's completion set and recomputes
	// the streak fields
	ToggleToday(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error)
	// Advances the streak counter by one if the 24h cool-down has expired;
	// a no-op otherwise
	ManualIncrement(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error)
	DeleteHabit(ctx context.Context, habitID, userID uuid.UUID) error
}

type StatsServiceI interface {
	// Idempotent profile upsert, called on every successful authentication
	EnsureProfile(ctx context.Context, uid uuid.UUID, displayName, email string) error
	// Recomputes the user's stats row in full from the current habit set
	Resync(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error)
	GetProfile(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error)
}

type LeaderboardServiceI interface {
	GetLeaderboard(ctx context.Context) ([]*entity.LeaderboardEntry, error)
	// Rank is the count of users whose longest streak is >= this user's,
	// the user itself included. Tied users share a rank number
	GetUserRank(ctx context.Context, uid uuid.UUID) (*UserRank, error)
}

// BoardCacheI is the read-through cache in front of the leaderboard query.
// A miss is reported as cache.ErrMiss; any other error is treated the same
// way by callers.
type BoardCacheI interface {
	GetBoard(ctx context.Context) ([]*entity.LeaderboardEntry, error)
	SetBoard(ctx context.Context, entries []*entity.LeaderboardEntry) error
}
