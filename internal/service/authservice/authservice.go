package authservice

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/lendhub/internal/domain"
	"github.com/GlebRadaev/lendhub/pkg/auth"
)

const tokenTTL = 24 * time.Hour

type Repo interface {
	FindByName(ctx context.Context, name string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

var (
	ErrUserExists         = errors.New("username already taken")
	ErrForbiddenRole      = errors.New("role can't be self-assigned")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

func (s *Service) Register(ctx context.Context, name, password, role string) (*domain.User, error) {
	if role == domain.RoleAdmin {
		zap.L().Info("admin self-registration refused", zap.String("name", name))
		return nil, ErrForbiddenRole
	}
	return s.create(ctx, name, password, role)
}

func (s *Service) create(ctx context.Context, name, password, role string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByName(ctx, name)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("name", name))
		return nil, ErrUserExists
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Role:         role,
		PasswordHash: hashedPassword,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrNameTaken) {
			return nil, ErrUserExists
		}
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("name", name), zap.String("role", role))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, name, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByName(ctx, name)
	if err != nil {
		zap.L().Error("can't find user", zap.String("name", name), zap.Error(err))
		return nil, fmt.Errorf("can't find user: %w", err)
	}
	if user == nil {
		zap.L().Error("invalid credentials", zap.String("name", name))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("name", name))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("name", name))
	return user, nil
}

func (s *Service) GenerateToken(user *domain.User) (string, error) {
	expirationTime := time.Now().Add(tokenTTL)

	token, err := s.jwtService.GenerateJWT(user.ID, user.Role, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

// EnsureAdmin creates the bootstrap admin account unless a user with that
// name already exists.
func (s *Service) EnsureAdmin(ctx context.Context, name, password string) error {
	_, err := s.create(ctx, name, password, domain.RoleAdmin)
	if errors.Is(err, ErrUserExists) {
		return nil
	}
	return err
}
