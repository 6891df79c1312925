package adminservice

//go:generate mockgen -source=adminservice.go -destination=mock_adminservice.go -package=adminservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/lendhub/internal/domain"
	"github.com/GlebRadaev/lendhub/pkg/auth"
)

// DefaultPassword is the well-known value ResetPassword sets.
const DefaultPassword = "12345"

type UserRepo interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByName(ctx context.Context, name string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

type LoanRepo interface {
	DeleteAll(ctx context.Context) (int64, error)
}

type Service struct {
	userRepo    UserRepo
	loanRepo    LoanRepo
	hashService auth.HashServiceInterface
}

func New(userRepo UserRepo, loanRepo LoanRepo, hashService auth.HashServiceInterface) *Service {
	return &Service{
		userRepo:    userRepo,
		loanRepo:    loanRepo,
		hashService: hashService,
	}
}

var (
	ErrUserExists       = errors.New("user already exists")
	ErrUserNotFound     = errors.New("user not found")
	ErrAdminUndeletable = errors.New("cannot delete Admin user")
)

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to list users", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (s *Service) CreateUser(ctx context.Context, name, role, password string) (*domain.User, error) {
	existing, err := s.userRepo.FindByName(ctx, name)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	hash, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}
	user, err := s.userRepo.Create(ctx, &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Role:         role,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNameTaken) {
			return nil, ErrUserExists
		}
		return nil, err
	}
	zap.L().Info("user added", zap.String("name", name), zap.String("role", role))
	return user, nil
}

// UpdateUser replaces name and role; the password only changes when a new
// one is given.
func (s *Service) UpdateUser(ctx context.Context, id, name, role, password string) (*domain.User, error) {
	user, err := s.findUser(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Name = name
	user.Role = role
	if password != "" {
		hash, err := s.hashService.HashPassword(password)
		if err != nil {
			zap.L().Error("can't hash password", zap.Error(err))
			return nil, err
		}
		user.PasswordHash = hash
	}

	updated, err := s.userRepo.Update(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrNameTaken) {
			return nil, ErrUserExists
		}
		return nil, err
	}
	zap.L().Info("user updated", zap.String("id", id))
	return updated, nil
}

func (s *Service) DeleteUser(ctx context.Context, id string) error {
	user, err := s.findUser(ctx, id)
	if err != nil {
		return err
	}
	if user.Role == domain.RoleAdmin {
		zap.L().Warn("refused to delete admin", zap.String("id", id))
		return ErrAdminUndeletable
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}
	zap.L().Info("user removed", zap.String("id", id), zap.String("name", user.Name))
	return nil
}

func (s *Service) ResetPassword(ctx context.Context, id string) error {
	user, err := s.findUser(ctx, id)
	if err != nil {
		return err
	}
	hash, err := s.hashService.HashPassword(DefaultPassword)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return err
	}
	user.PasswordHash = hash
	if _, err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}
	zap.L().Warn("password reset to default", zap.String("id", id))
	return nil
}

// ClearLoans removes every loan document. There is no undo.
func (s *Service) ClearLoans(ctx context.Context) (int64, error) {
	removed, err := s.loanRepo.DeleteAll(ctx)
	if err != nil {
		zap.L().Error("failed to clear loans", zap.Error(err))
		return 0, err
	}
	zap.L().Warn("all loan data cleared", zap.Int64("removed", removed))
	return removed, nil
}

func (s *Service) findUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't find user", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
