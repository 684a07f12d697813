package repository

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/limetree/momentum/pkg/cleanup"
)

// SystemFlagsRepository persists named one-time flags, such as the marker
// that the legacy checks migration already ran.
type SystemFlagsRepository struct {
	conn PgConnection
}

func NewSystemFlagsRepo(cfg DBConfig) *SystemFlagsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for systemFlagsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for systemFlagsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &SystemFlagsRepository{
		conn: pool,
	}
}

func NewSystemFlagsRepoWithConn(conn PgConnection) *SystemFlagsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for systemFlagsRepo: " + err.Error())
	}
	return &SystemFlagsRepository{
		conn: conn,
	}
}

func (fr *SystemFlagsRepository) IsSet(ctx context.Context, name string) (bool, error) {
	var exists bool
	row := fr.conn.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM system_flags WHERE name = $1);`, name)
	if err := row.Scan(&exists); err != nil {
		return false, errors.New("inspecting system flag error: " + err.Error())
	}
	return exists, nil
}

func (fr *SystemFlagsRepository) Set(ctx context.Context, name string) error {
	_, err := fr.conn.Exec(ctx, `INSERT INTO system_flags (name) VALUES ($1) ON CONFLICT (name) DO NOTHING;`, name)
	if err != nil {
		return errors.New("setting system flag error: " + err.Error())
	}
	return nil
}
