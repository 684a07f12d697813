package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/limetree/momentum/internal/repository"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

func TestFlagIsSet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewSystemFlagsRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM system_flags WHERE name = $1);`)
	ctx := context.Background()
	t.Run("set", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("some_flag").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
		set, err := repo.IsSet(ctx, "some_flag")
		assert.NoError(t, err)
		assert.True(t, set)
	})
	t.Run("not set", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("some_flag").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
		set, err := repo.IsSet(ctx, "some_flag")
		assert.NoError(t, err)
		assert.False(t, set)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("some_flag").
			WillReturnError(errors.New("db error"))
		_, err := repo.IsSet(ctx, "some_flag")
		assert.Error(t, err)
	})
}

func TestFlagSet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewSystemFlagsRepoWithConn(mock)
	query := regexp.QuoteMeta(`INSERT INTO system_flags (name) VALUES ($1) ON CONFLICT (name) DO NOTHING;`)
	ctx := context.Background()
	t.Run("set", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs("some_flag").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		assert.NoError(t, repo.Set(ctx, "some_flag"))
	})
	t.Run("set twice is fine", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs("some_flag").
			WillReturnResult(pgxmock.NewResult("INSERT", 0))
		assert.NoError(t, repo.Set(ctx, "some_flag"))
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs("some_flag").
			WillReturnError(errors.New("db error"))
		assert.Error(t, repo.Set(ctx, "some_flag"))
	})
}
