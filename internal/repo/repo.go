package repo

//go:generate mockgen -source=repo.go -destination=mock_repo.go -package=repo

import (
	"github.com/GlebRadaev/lendhub/internal/pg"
	loanrepo "github.com/GlebRadaev/lendhub/internal/repo/loan-repo"
	userrepo "github.com/GlebRadaev/lendhub/internal/repo/user-repo"
	"github.com/GlebRadaev/lendhub/internal/service/adminservice"
	"github.com/GlebRadaev/lendhub/internal/service/loanservice"
)

// LoanRepo covers every consumer of the loans table: the loan workflow,
// analytics (FindAll) and the admin clear-loans action.
type LoanRepo interface {
	loanservice.Repo
	adminservice.LoanRepo
}

type Repositories struct {
	UserRepo adminservice.UserRepo
	LoanRepo LoanRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	loanRepo := loanrepo.New(conn, txManager)

	return &Repositories{
		UserRepo: userRepo,
		LoanRepo: loanRepo,
	}
}
