package userrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/GlebRadaev/lendhub/internal/domain"
	"github.com/GlebRadaev/lendhub/internal/pg"
)

const uniqueViolation = "23505"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func (repo *Repository) FindAll(ctx context.Context) ([]domain.User, error) {
	rows, err := repo.db.Query(ctx, "SELECT id, name, role, password_hash, created_at, updated_at FROM users ORDER BY created_at ASC")
	if err != nil {
		zap.L().Error("can't get users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Role, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt); err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (repo *Repository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT id, name, role, password_hash, created_at, updated_at FROM users WHERE id = $1", id).
		Scan(&user.ID, &user.Name, &user.Role, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByName(ctx context.Context, name string) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT id, name, role, password_hash, created_at, updated_at FROM users WHERE name = $1", name).
		Scan(&user.ID, &user.Name, &user.Role, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (id, name, role, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`
	err := repo.db.QueryRow(ctx, query, user.ID, user.Name, user.Role, user.PasswordHash).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrNameTaken
		}
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		UPDATE users
		SET name = $1, role = $2, password_hash = $3, updated_at = now()
		WHERE id = $4
		RETURNING updated_at
	`
	err := repo.db.QueryRow(ctx, query, user.Name, user.Role, user.PasswordHash, user.ID).Scan(&user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrNameTaken
		}
		zap.L().Error("can't update user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) Delete(ctx context.Context, id string) error {
	_, err := repo.db.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete user", zap.Error(err))
		return err
	}
	return nil
}
