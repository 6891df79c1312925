package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/lendhub/internal/domain"
)

const userID = "9b2e4f7a-1c3d-4e5f-8a9b-0c1d2e3f4a5b"

var userColumns = []string{"id", "name", "role", "password_hash", "created_at", "updated_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindByName(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		userName  string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:     "User found",
			userName: "alice",
			mockSetup: func() {
				rows := pgxmock.NewRows(userColumns).
					AddRow(userID, "alice", "Lender", "hashed_password", now, now)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, role, password_hash, created_at, updated_at FROM users WHERE name = $1")).
					WithArgs("alice").
					WillReturnRows(rows)
			},
			result: &domain.User{
				ID:           userID,
				Name:         "alice",
				Role:         "Lender",
				PasswordHash: "hashed_password",
				CreatedAt:    now,
				UpdatedAt:    now,
			},
		},
		{
			name:     "User not found",
			userName: "nobody",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE name = $1")).
					WithArgs("nobody").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name:     "Database error",
			userName: "alice",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE name = $1")).
					WithArgs("alice").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByName(context.Background(), tt.userName)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		id        string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "User found",
			id:   userID,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
					WithArgs(userID).
					WillReturnRows(pgxmock.NewRows(userColumns).AddRow(userID, "admin", domain.RoleAdmin, "hash", now, now))
			},
			found: true,
		},
		{
			name: "User not found",
			id:   userID,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
					WithArgs(userID).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name:      "Malformed id",
			id:        "42",
			mockSetup: func() {},
		},
		{
			name: "Database error",
			id:   userID,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
					WithArgs(userID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.found {
				require.NotNil(t, result)
				assert.Equal(t, domain.RoleAdmin, result.Role)
			} else {
				assert.Nil(t, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindAll(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Users listed", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM users ORDER BY created_at ASC")).
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow(userID, "admin", domain.RoleAdmin, "h1", now, now).
				AddRow("0f8c2a1e-2b3d-4c5e-9f6a-7b8c9d0e1f2a", "bob", "Borrower", "h2", now, now))

		users, err := repo.FindAll(context.Background())
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "bob", users[1].Name)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM users ORDER BY created_at ASC")).
			WillReturnError(errors.New("database error"))

		users, err := repo.FindAll(context.Background())
		assert.Error(t, err)
		assert.Nil(t, users)
	})
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name        string
		mockSetup   func()
		expectedErr error
		anyErr      bool
	}{
		{
			name: "User saved",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (id, name, role, password_hash)")).
					WithArgs(userID, "alice", "Lender", "hashed_password").
					WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
			},
		},
		{
			name: "Name already taken",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
					WithArgs(userID, "alice", "Lender", "hashed_password").
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectedErr: domain.ErrNameTaken,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
					WithArgs(userID, "alice", "Lender", "hashed_password").
					WillReturnError(errors.New("database error"))
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			user := &domain.User{ID: userID, Name: "alice", Role: "Lender", PasswordHash: "hashed_password"}
			result, err := repo.Create(context.Background(), user)
			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, result)
			case tt.anyErr:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, domain.ErrNameTaken)
			default:
				assert.NoError(t, err)
				assert.Equal(t, now, result.CreatedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	updateQuery := regexp.QuoteMeta("UPDATE users SET name = $1, role = $2, password_hash = $3, updated_at = now() WHERE id = $4")

	t.Run("User updated", func(t *testing.T) {
		mock.ExpectQuery(updateQuery).
			WithArgs("bob", "Borrower", "hash", userID).
			WillReturnRows(pgxmock.NewRows([]string{"updated_at"}).AddRow(now))

		user, err := repo.Update(context.Background(), &domain.User{ID: userID, Name: "bob", Role: "Borrower", PasswordHash: "hash"})
		require.NoError(t, err)
		assert.Equal(t, now, user.UpdatedAt)
	})

	t.Run("Rename collides", func(t *testing.T) {
		mock.ExpectQuery(updateQuery).
			WithArgs("admin", "Borrower", "hash", userID).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		_, err := repo.Update(context.Background(), &domain.User{ID: userID, Name: "admin", Role: "Borrower", PasswordHash: "hash"})
		assert.ErrorIs(t, err, domain.ErrNameTaken)
	})
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("User deleted", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
			WithArgs(userID).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, repo.Delete(context.Background(), userID))
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
			WithArgs(userID).
			WillReturnError(errors.New("database error"))

		assert.Error(t, repo.Delete(context.Background(), userID))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
