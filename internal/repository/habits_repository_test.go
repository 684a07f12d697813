package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/lib/pq"
	errorvalues "github.com/limetree/momentum/internal/error_values"
	"github.com/limetree/momentum/internal/repository"
	"github.com/limetree/momentum/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	userID = uuid.New()
)

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func TestCreateHabit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewHabitsRepoWithConn(mock)
	habit := entity.Habit{
		UserID: userID,
		Name:   "test_habit",
	}
	hid := uuid.New()
	ctx := context.Background()
	query := regexp.QuoteMeta(`INSERT INTO habits (user_id, name) VALUES ($1, $2) RETURNING id;`)
	t.Run("successfully created", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(habit.UserID, habit.Name).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(hid))
		id, err := repo.Create(ctx, &habit)
		assert.NoError(t, err)
		assert.Equal(t, hid, id)
	})
	t.Run("FK violation", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(habit.UserID, habit.Name).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		_, err := repo.Create(ctx, &habit)
		assert.ErrorIs(t, err, errorvalues.ErrOwnerNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(habit.UserID, habit.Name).
			WillReturnError(errors.New("db error"))
		_, err := repo.Create(ctx, &habit)
		assert.Error(t, err)
	})
}

func TestGetHabitByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewHabitsRepoWithConn(mock)
	lastInc := time.Now().Add(-30 * time.Hour)
	habit := entity.Habit{
		ID:                uuid.New(),
		UserID:            userID,
		Name:              "test_habit",
		CompletedDates:    []string{"2024-01-09", "2024-01-10"},
		CurrentStreak:     2,
		BestStreak:        5,
		LastIncrementTime: &lastInc,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}
	query := regexp.QuoteMeta(`SELECT user_id, name, completed_dates, current_streak, best_streak, last_increment_time, created_at, updated_at FROM habits WHERE id = $1;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(habit.ID).
			WillReturnRows(pgxmock.NewRows([]string{"user_id", "name", "completed_dates", "current_streak", "best_streak", "last_increment_time", "created_at", "updated_at"}).
				AddRow(habit.UserID, habit.Name, habit.CompletedDates, habit.CurrentStreak, habit.BestStreak, habit.LastIncrementTime, habit.CreatedAt, habit.UpdatedAt),
			)
		result, err := repo.GetByID(ctx, habit.ID)
		assert.NoError(t, err)
		assert.Equal(t, habit, *result)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(habit.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, habit.ID)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(habit.ID).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByID(ctx, habit.ID)
		assert.Error(t, err)
	})
}

func TestListHabits(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewHabitsRepoWithConn(mock)
	habits := []*entity.Habit{
		{
			ID:             uuid.New(),
			UserID:         userID,
			Name:           "test_habit_1",
			CompletedDates: []string{"2024-01-10"},
			CurrentStreak:  1,
			BestStreak:     1,
			CreatedAt:      time.Now(),
			UpdatedAt:      time.Now(),
		},
		{
			ID:             uuid.New(),
			UserID:         userID,
			Name:           "test_habit_2",
			CompletedDates: []string{},
			CreatedAt:      time.Now().Add(time.Hour),
			UpdatedAt:      time.Now().Add(time.Hour),
		},
	}
	query := regexp.QuoteMeta(`SELECT id, user_id, name, completed_dates, current_streak, best_streak, last_increment_time, created_at, updated_at
		FROM habits WHERE user_id = $1 ORDER BY created_at LIMIT $2 OFFSET $3;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		limit := 10
		offset := 0
		rows := pgxmock.NewRows([]string{"id", "user_id", "name", "completed_dates", "current_streak", "best_streak", "last_increment_time", "created_at", "updated_at"})
		for _, h := range habits {
			rows.AddRow(h.ID, h.UserID, h.Name, h.CompletedDates, h.CurrentStreak, h.BestStreak, h.LastIncrementTime, h.CreatedAt, h.UpdatedAt)
		}
		mock.ExpectQuery(query).
			WithArgs(userID, limit, offset).
			WillReturnRows(rows)
		result, err := repo.List(ctx, userID, limit, offset)
		assert.NoError(t, err)
		for i := range result {
			assert.Equal(t, *habits[i], *result[i])
		}
	})
	t.Run("used limit and offset", func(t *testing.T) {
		limit := 1
		offset := 1
		rows := pgxmock.NewRows([]string{"id", "user_id", "name", "completed_dates", "current_streak", "best_streak", "last_increment_time", "created_at", "updated_at"})
		h := habits[1]
		rows.AddRow(h.ID, h.UserID, h.Name, h.CompletedDates, h.CurrentStreak, h.BestStreak, h.LastIncrementTime, h.CreatedAt, h.UpdatedAt)
		mock.ExpectQuery(query).
			WithArgs(userID, limit, offset).
			WillReturnRows(rows)
		result, err := repo.List(ctx, userID, limit, offset)
		assert.NoError(t, err)
		assert.Equal(t, 1, len(result))
		assert.Equal(t, *habits[1], *result[0])
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID, 1, 1).
			WillReturnError(errors.New("db error"))
		_, err := repo.List(ctx, userID, 1, 1)
		assert.Error(t, err)
	})
}

func TestGetAllByUserID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewHabitsRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT id, user_id, name, completed_dates, current_streak, best_streak, last_increment_time, created_at, updated_at
		FROM habits WHERE user_id = $1 ORDER BY created_at;`)
	ctx := context.Background()
	t.Run("empty set", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "name", "completed_dates", "current_streak", "best_streak", "last_increment_time", "created_at", "updated_at"}))
		result, err := repo.GetAllByUserID(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, 0, len(result))
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetAllByUserID(ctx, userID)
		assert.Error(t, err)
	})
}

func TestUpdateProgress(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewHabitsRepoWithConn(mock)
	query := regexp.QuoteMeta(`UPDATE habits SET completed_dates = $1, current_streak = $2, best_streak = $3, last_increment_time = $4, updated_at = NOW() WHERE id = $5;`)
	habit := entity.Habit{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           "test_habit",
		CompletedDates: []string{"2024-01-10"},
		CurrentStreak:  1,
		BestStreak:     1,
	}
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(habit.CompletedDates, habit.CurrentStreak, habit.BestStreak, habit.LastIncrementTime, habit.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.UpdateProgress(ctx, &habit)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(habit.CompletedDates, habit.CurrentStreak, habit.BestStreak, habit.LastIncrementTime, habit.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		err := repo.UpdateProgress(ctx, &habit)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(habit.CompletedDates, habit.CurrentStreak, habit.BestStreak, habit.LastIncrementTime, habit.ID).
			WillReturnError(errors.New("db error"))
		err := repo.UpdateProgress(ctx, &habit)
		assert.Error(t, err)
	})
}

func TestDeleteHabit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewHabitsRepoWithConn(mock)
	query := regexp.QuoteMeta(`DELETE FROM habits WHERE id = $1;`)
	ctx := context.Background()
	id := uuid.New()
	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		err := repo.Delete(ctx, id)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		err := repo.Delete(ctx, id)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(id).
			WillReturnError(errors.New("db error"))
		err := repo.Delete(ctx, id)
		assert.Error(t, err)
	})
}

func TestHabitsIntegrational(t *testing.T) {
	cfg := setupHabitsTestDB(t)
	repo := repository.NewHabitsRepo(cfg)
	ctx := context.Background()
	habit := &entity.Habit{
		UserID: userID,
		Name:   "morning run",
	}
	t.Run("create", func(t *testing.T) {
		t.Run("success", func(t *testing.T) {
			id, err := repo.Create(ctx, habit)
			assert.NoError(t, err)
			habit.ID = id
		})
		t.Run("unknown user error", func(t *testing.T) {
			_, err := repo.Create(ctx, &entity.Habit{
				UserID: uuid.New(),
				Name:   "ttt",
			})
			assert.ErrorIs(t, err, errorvalues.ErrOwnerNotFound)
		})
	})
	t.Run("get habit by id", func(t *testing.T) {
		t.Run("fresh habit starts empty", func(t *testing.T) {
			h, err := repo.GetByID(ctx, habit.ID)
			assert.NoError(t, err)
			assert.Equal(t, habit.Name, h.Name)
			assert.Equal(t, []string{}, h.CompletedDates)
			assert.Equal(t, 0, h.CurrentStreak)
			assert.Equal(t, 0, h.BestStreak)
			assert.Nil(t, h.LastIncrementTime)
		})
		t.Run("not found", func(t *testing.T) {
			_, err := repo.GetByID(ctx, uuid.New())
			assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
		})
	})
	t.Run("update progress round-trip", func(t *testing.T) {
		now := time.Now().UTC().Truncate(time.Second)
		h, err := repo.GetByID(ctx, habit.ID)
		assert.NoError(t, err)
		h.CompletedDates = []string{"2024-01-09", "2024-01-10"}
		h.CurrentStreak = 2
		h.BestStreak = 2
		h.LastIncrementTime = &now
		assert.NoError(t, repo.UpdateProgress(ctx, h))
		stored, err := repo.GetByID(ctx, habit.ID)
		assert.NoError(t, err)
		assert.Equal(t, h.CompletedDates, stored.CompletedDates)
		assert.Equal(t, 2, stored.CurrentStreak)
		assert.Equal(t, 2, stored.BestStreak)
		assert.NotNil(t, stored.LastIncrementTime)
		assert.True(t, stored.LastIncrementTime.Equal(now))
	})
	t.Run("list", func(t *testing.T) {
		result, err := repo.List(ctx, userID, 10, 0)
		assert.NoError(t, err)
		assert.Equal(t, 1, len(result))
		all, err := repo.GetAllByUserID(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, 1, len(all))
	})
	t.Run("delete", func(t *testing.T) {
		assert.NoError(t, repo.Delete(ctx, habit.ID))
		_, err := repo.GetByID(ctx, habit.ID)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
}

func setupHabitsTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("momentum"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	connStr, err := container.ConnectionString(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	connStr += "sslmode=disable"
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	err = goose.Up(conn, "../../migrations")
	if err != nil {
		t.Fatal(err)
	}
	_, err = conn.Exec(`INSERT INTO users (id, name, email, password_hash) VALUES ($1, $2, $3, $4);`, userID, "test_name", "test@example.com", "pass_hash")
	if err != nil {
		t.Fatal(err)
	}
	conn.Close()
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	return &testPGConfig{
		connStr: connStr,
	}
}
