package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lash-app/backend/internal/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:           uuid.MustParse("0192a0b4-7c1e-7d3a-9b1f-2a3c4d5e6f70"),
		Name:         "Maria",
		Email:        "m@x.com",
		BirthDate:    time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Phone:        "+5511999999999",
		PasswordHash: "$2a$10$hash",
		IsVerified:   true,
	}
}

func TestUserRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newUserRepository(db)
	user := testUser()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO user")).
		WithArgs(user.ID, user.Name, user.Email, user.BirthDate, user.Phone, user.PasswordHash, true, sql.NullString{}).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), user))
}

func TestUserRepository_CreateDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO user")).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'm@x.com' for key 'user_email_uq'"})

	err := repo.Create(context.Background(), testUser())
	assert.ErrorIs(t, err, domain.ErrDuplicateEntry)
}

func TestUserRepository_CreateNoRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO user")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Create(context.Background(), testUser())
	assert.ErrorIs(t, err, domain.ErrNoRowsAffected)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newUserRepository(db)
	user := testUser()
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "name", "email", "birth_date", "phone", "password_hash", "is_verified", "verification_code", "created_at", "updated_at"}).
		AddRow(user.ID[:], user.Name, user.Email, user.BirthDate, user.Phone, user.PasswordHash, true, nil, now, now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM user WHERE email = ?")).
		WithArgs("m@x.com").
		WillReturnRows(rows)

	got, err := repo.GetByEmail(context.Background(), "m@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "Maria", got.Name)
	assert.True(t, got.IsVerified)
	assert.False(t, got.VerificationCode.Valid)
	assert.Equal(t, now, got.CreatedAt)
}

func TestUserRepository_GetByEmailNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM user WHERE email = ?")).
		WithArgs("nobody@x.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserRepository_GetByEmailFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM user WHERE email = ?")).
		WillReturnError(errors.New("connection refused"))

	_, err := repo.GetByEmail(context.Background(), "m@x.com")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}
