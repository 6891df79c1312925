package loanservice

//go:generate mockgen -source=loanservice.go -destination=mock_loanservice.go -package=loanservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/lendhub/internal/domain"
)

type Repo interface {
	Create(ctx context.Context, loan *domain.Loan) (*domain.Loan, error)
	FindByID(ctx context.Context, id string) (*domain.Loan, error)
	FindAll(ctx context.Context) ([]domain.Loan, error)
	Save(ctx context.Context, loan *domain.Loan) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var (
	ErrLoanNotFound = errors.New("loan not found")
)

func (s *Service) Create(ctx context.Context, amount, interestRate float64, duration int, lender string) (*domain.Loan, error) {
	loan := domain.NewLoan(uuid.NewString(), amount, interestRate, duration, lender)

	created, err := s.repo.Create(ctx, loan)
	if err != nil {
		zap.L().Error("can't create loan: ", zap.Error(err))
		return nil, fmt.Errorf("can't create loan: %w", err)
	}
	zap.L().Info("loan offer created", zap.String("id", created.ID), zap.String("lender", lender))
	return created, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Loan, error) {
	loans, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to get loans", zap.Error(err))
		return nil, err
	}
	for i := range loans {
		loans[i].Normalize()
	}
	return loans, nil
}

func (s *Service) Request(ctx context.Context, loanID, borrowerName string) (*domain.Loan, error) {
	return s.mutate(ctx, loanID, func(loan *domain.Loan) error {
		return loan.AddRequest(borrowerName)
	})
}

func (s *Service) Approve(ctx context.Context, loanID, borrowerName string) (*domain.Loan, error) {
	return s.mutate(ctx, loanID, func(loan *domain.Loan) error {
		return loan.Approve(borrowerName)
	})
}

func (s *Service) Reject(ctx context.Context, loanID, borrowerName string) (*domain.Loan, error) {
	return s.mutate(ctx, loanID, func(loan *domain.Loan) error {
		return loan.Reject(borrowerName)
	})
}

func (s *Service) Pay(ctx context.Context, loanID, borrowerName string, monthIndex int) (*domain.Loan, error) {
	return s.mutate(ctx, loanID, func(loan *domain.Loan) error {
		return loan.Pay(borrowerName, monthIndex)
	})
}

// mutate loads the aggregate, applies fn and writes the whole document back.
func (s *Service) mutate(ctx context.Context, loanID string, fn func(loan *domain.Loan) error) (*domain.Loan, error) {
	loan, err := s.repo.FindByID(ctx, loanID)
	if err != nil {
		zap.L().Error("can't load loan", zap.String("id", loanID), zap.Error(err))
		return nil, err
	}
	if loan == nil {
		return nil, ErrLoanNotFound
	}
	loan.Normalize()

	if err := fn(loan); err != nil {
		zap.L().Info("loan change refused", zap.String("id", loanID), zap.Error(err))
		return nil, err
	}

	if err := s.repo.Save(ctx, loan); err != nil {
		if !errors.Is(err, domain.ErrConcurrentUpdate) {
			zap.L().Error("can't save loan", zap.String("id", loanID), zap.Error(err))
		}
		return nil, err
	}
	return loan, nil
}
