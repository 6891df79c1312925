package loanrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/lendhub/internal/domain"
	"github.com/GlebRadaev/lendhub/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const selectLoan = `
        SELECT id, amount, interest_rate, duration, lender, status, requests, version, created_at, updated_at
        FROM loans
    `

func scanLoan(row pgx.Row) (*domain.Loan, error) {
	var (
		loan     domain.Loan
		requests []byte
	)
	err := row.Scan(&loan.ID, &loan.Amount, &loan.InterestRate, &loan.Duration, &loan.Lender,
		&loan.Status, &requests, &loan.Version, &loan.CreatedAt, &loan.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(requests) > 0 {
		if err := json.Unmarshal(requests, &loan.Requests); err != nil {
			return nil, fmt.Errorf("can't decode loan requests: %w", err)
		}
	}
	return &loan, nil
}

func (r *Repository) Create(ctx context.Context, loan *domain.Loan) (*domain.Loan, error) {
	query := `
        INSERT INTO loans (id, amount, interest_rate, duration, lender, status, requests)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING version, created_at, updated_at
    `
	requests, err := json.Marshal(loan.Requests)
	if err != nil {
		return nil, fmt.Errorf("can't encode loan requests: %w", err)
	}
	err = r.db.QueryRow(ctx, query, loan.ID, loan.Amount, loan.InterestRate, loan.Duration, loan.Lender, loan.Status, requests).
		Scan(&loan.Version, &loan.CreatedAt, &loan.UpdatedAt)
	if err != nil {
		zap.L().Error("can't create loan", zap.Error(err))
		return nil, err
	}
	return loan, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Loan, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}
	loan, err := scanLoan(r.db.QueryRow(ctx, selectLoan+" WHERE id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find loan", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return loan, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Loan, error) {
	rows, err := r.db.Query(ctx, selectLoan+" ORDER BY created_at ASC")
	if err != nil {
		zap.L().Error("can't get loans", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	loans := make([]domain.Loan, 0)
	for rows.Next() {
		loan, err := scanLoan(rows)
		if err != nil {
			zap.L().Error("can't scan loan row", zap.Error(err))
			return nil, err
		}
		loans = append(loans, *loan)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate loan rows", zap.Error(err))
		return nil, err
	}
	return loans, nil
}

// Save overwrites the whole document. The write only lands if nobody else
// saved the loan since it was read; otherwise domain.ErrConcurrentUpdate.
func (r *Repository) Save(ctx context.Context, loan *domain.Loan) error {
	query := `
        UPDATE loans
        SET amount = $1, interest_rate = $2, duration = $3, lender = $4, status = $5, requests = $6,
            version = version + 1, updated_at = now()
        WHERE id = $7 AND version = $8
        RETURNING version, updated_at
    `
	requests, err := json.Marshal(loan.Requests)
	if err != nil {
		return fmt.Errorf("can't encode loan requests: %w", err)
	}
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, query, loan.Amount, loan.InterestRate, loan.Duration, loan.Lender, loan.Status, requests, loan.ID, loan.Version).
			Scan(&loan.Version, &loan.UpdatedAt)
		if errors.Is(err, pgx.ErrNoRows) {
			zap.L().Warn("loan changed since it was loaded", zap.String("id", loan.ID), zap.Int("version", loan.Version))
			return domain.ErrConcurrentUpdate
		}
		if err != nil {
			zap.L().Error("can't save loan", zap.String("id", loan.ID), zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM loans")
	if err != nil {
		zap.L().Error("can't delete loans", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
