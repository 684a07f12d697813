package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limetree/momentum/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type HabitsRepositoryI interface {
	// Creates new habit. Only UserID and Name are taken from the struct
	Create(ctx context.Context, habit *entity.Habit) (uuid.UUID, error)
	// Searches habit with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error)
	// Lists habits owned by user with uid. Requires pagination params provided
	List(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Habit, error)
	// Returns the complete habit set of a user, used for stats resync
	GetAllByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error)
	// Persists completed dates and the derived streak fields of a habit
	UpdateProgress(ctx context.Context, habit *entity.Habit) error
	// Deletes habit with id
	Delete(ctx context.Context, id uuid.UUID) error
}

type StatsRepositoryI interface {
	// Upserts the stats row identity fields, preserving accumulated totals
	// when the row already exists
	EnsureProfile(ctx context.Context, stats *entity.UserStats) error
	// Overwrites the recomputed totals of a user's stats row
	UpdateTotals(ctx context.Context, stats *entity.UserStats) error
	// Returns one user's stats row
	GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error)
	// Returns every stats row, for the leaderboard
	GetAll(ctx context.Context) ([]*entity.UserStats, error)
}

type LegacyChecksRepositoryI interface {
	// Returns every legacy check date grouped by habit id
	ListCheckDates(ctx context.Context) (map[uuid.UUID][]time.Time, error)
}

type SystemFlagsRepositoryI interface {
	// Inspects if a named one-time flag has been set
	IsSet(ctx context.Context, name string) (bool, error)
	// Persists a named one-time flag
	Set(ctx context.Context, name string) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
