package service

import (
	"context"

	"github.com/GlebRadaev/lendhub/internal/handlers/admin"
	"github.com/GlebRadaev/lendhub/internal/handlers/analysis"
	"github.com/GlebRadaev/lendhub/internal/handlers/auth"
	"github.com/GlebRadaev/lendhub/internal/handlers/loans"

	pkgauth "github.com/GlebRadaev/lendhub/pkg/auth"

	"github.com/GlebRadaev/lendhub/internal/repo"
	"github.com/GlebRadaev/lendhub/internal/service/adminservice"
	"github.com/GlebRadaev/lendhub/internal/service/analyticsservice"
	"github.com/GlebRadaev/lendhub/internal/service/authservice"
	"github.com/GlebRadaev/lendhub/internal/service/loanservice"
)

// Bootstrapper seeds the first admin account at startup.
type Bootstrapper interface {
	EnsureAdmin(ctx context.Context, name, password string) error
}

type Services struct {
	AuthService      auth.Service
	LoanService      loans.Service
	AnalyticsService analysis.Service
	AdminService     admin.Service
	Bootstrapper     Bootstrapper
}

func New(
	repo *repo.Repositories,
	hashService pkgauth.HashServiceInterface,
	jwtService pkgauth.JWTServiceInterface,
) *Services {
	authService := authservice.New(repo.UserRepo, hashService, jwtService)

	return &Services{
		AuthService:      authService,
		LoanService:      loanservice.New(repo.LoanRepo),
		AnalyticsService: analyticsservice.New(repo.LoanRepo),
		AdminService:     adminservice.New(repo.UserRepo, repo.LoanRepo, hashService),
		Bootstrapper:     authService,
	}
}
