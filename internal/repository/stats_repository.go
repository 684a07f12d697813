package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limetree/momentum/internal/error_values"
	"github.com/limetree/momentum/pkg/cleanup"
	"github.com/limetree/momentum/pkg/entity"
)

type StatsRepository struct {
	conn PgConnection
}

func NewStatsRepo(cfg DBConfig) *StatsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for statsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for statsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &StatsRepository{
		conn: pool,
	}
}

func NewStatsRepoWithConn(conn PgConnection) *StatsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for statsRepo: " + err.Error())
	}
	return &StatsRepository{
		conn: conn,
	}
}

// EnsureProfile creates the stats row on first authentication. Repeat calls
// only refresh identity fields; accumulated totals are kept as they are.
func (sr *StatsRepository) EnsureProfile(ctx context.Context, stats *entity.UserStats) error {
	if stats == nil {
		return errors.New("stats is nil")
	}
	_, err := sr.conn.Exec(ctx, `INSERT INTO user_stats (user_id, display_name, email) VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET display_name = EXCLUDED.display_name, email = EXCLUDED.email, updated_at = NOW();`,
		stats.UserID,
		stats.DisplayName,
		stats.Email,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("ensuring stats profile db error: " + err.Error())
	}
	return nil
}

func (sr *StatsRepository) UpdateTotals(ctx context.Context, stats *entity.UserStats) error {
	if stats == nil {
		return errors.New("stats is nil")
	}
	ct, err := sr.conn.Exec(ctx, `UPDATE user_stats SET longest_streak = $1, total_habits = $2, total_completed_today = $3, updated_at = NOW() WHERE user_id = $4;`,
		stats.LongestStreak,
		stats.TotalHabits,
		stats.TotalCompletedToday,
		stats.UserID,
	)
	if err != nil {
		return errors.New("updating stats totals error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrStatsNotFound
	}
	return nil
}

func (sr *StatsRepository) GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error) {
	var stats entity.UserStats
	row := sr.conn.QueryRow(ctx, `SELECT user_id, display_name, email, longest_streak, total_habits, total_completed_today, updated_at FROM user_stats WHERE user_id = $1;`, uid)
	err := row.Scan(
		&stats.UserID,
		&stats.DisplayName,
		&stats.Email,
		&stats.LongestStreak,
		&stats.TotalHabits,
		&stats.TotalCompletedToday,
		&stats.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrStatsNotFound
		}
		return nil, errors.New("getting stats by uid error: " + err.Error())
	}
	return &stats, nil
}

func (sr *StatsRepository) GetAll(ctx context.Context) ([]*entity.UserStats, error) {
	rows, err := sr.conn.Query(ctx, `SELECT user_id, display_name, email, longest_streak, total_habits, total_completed_today, updated_at FROM user_stats;`)
	if err != nil {
		return nil, errors.New("getting all stats error: " + err.Error())
	}
	defer rows.Close()
	result := make([]*entity.UserStats, 0)
	for rows.Next() {
		s := entity.UserStats{}
		err = rows.Scan(
			&s.UserID,
			&s.DisplayName,
			&s.Email,
			&s.LongestStreak,
			&s.TotalHabits,
			&s.TotalCompletedToday,
			&s.UpdatedAt,
		)
		if err != nil {
			return nil, errors.New("unmarshalling stats error: " + err.Error())
		}
		result = append(result, &s)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning stats: " + rows.Err().Error())
	}
	return result, nil
}
