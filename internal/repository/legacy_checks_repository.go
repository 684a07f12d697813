package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/limetree/momentum/pkg/cleanup"
)

// LegacyChecksRepository reads the habit_checks table of the old schema,
// where each completion was its own row instead of a member of the habit's
// completed_dates set. Only the startup migrator touches it.
type LegacyChecksRepository struct {
	conn PgConnection
}

func NewLegacyChecksRepo(cfg DBConfig) *LegacyChecksRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for legacyChecksRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for legacyChecksRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &LegacyChecksRepository{
		conn: pool,
	}
}

func NewLegacyChecksRepoWithConn(conn PgConnection) *LegacyChecksRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for legacyChecksRepo: " + err.Error())
	}
	return &LegacyChecksRepository{
		conn: conn,
	}
}

func (lr *LegacyChecksRepository) ListCheckDates(ctx context.Context) (map[uuid.UUID][]time.Time, error) {
	rows, err := lr.conn.Query(ctx, `SELECT habit_id, check_date FROM habit_checks ORDER BY habit_id, check_date;`)
	if err != nil {
		return nil, errors.New("listing legacy checks error: " + err.Error())
	}
	defer rows.Close()
	result := make(map[uuid.UUID][]time.Time)
	for rows.Next() {
		var habitID uuid.UUID
		var date time.Time
		if err = rows.Scan(&habitID, &date); err != nil {
			return nil, errors.New("legacy check row parsing error: " + err.Error())
		}
		result[habitID] = append(result[habitID], date)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected legacy check rows error: " + rows.Err().Error())
	}
	return result, nil
}
