package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"film_api/internal/model"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestUserRepository_Create(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)
	createdAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (username, password_hash, role)")).
		WithArgs("alice", "hash", model.RoleUser).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), createdAt))

	user := &model.User{Username: "alice", PasswordHash: "hash", Role: model.RoleUser}
	err := repo.Create(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, createdAt, user.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_Duplicate(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("alice", "hash", model.RoleAdmin).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	err := repo.Create(context.Background(), &model.User{Username: "alice", PasswordHash: "hash", Role: model.RoleAdmin})

	assert.ErrorIs(t, err, ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_OtherError(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)
	boom := errors.New("connection reset")

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("alice", "hash", model.RoleUser).
		WillReturnError(boom)

	err := repo.Create(context.Background(), &model.User{Username: "alice", PasswordHash: "hash", Role: model.RoleUser})

	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrDuplicate)
}

func TestUserRepository_FindByUsername(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)
	createdAt := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, password_hash, role, created_at FROM users WHERE username = $1")).
		WithArgs("alice").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "password_hash", "role", "created_at"}).
			AddRow(int64(3), "alice", "hash", model.RoleAdmin, createdAt))

	user, err := repo.FindByUsername(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, &model.User{ID: 3, Username: "alice", PasswordHash: "hash", Role: model.RoleAdmin, CreatedAt: createdAt}, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByUsername_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username = $1")).
		WithArgs("ghost").
		WillReturnError(pgx.ErrNoRows)

	user, err := repo.FindByUsername(context.Background(), "ghost")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepository_HasAdmin(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(model.RoleAdmin).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	has, err := repo.HasAdmin(context.Background())

	require.NoError(t, err)
	assert.True(t, has)
	assert.NoError(t, mock.ExpectationsWereMet())
}
