package handlers

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/lendhub/docs"
	"github.com/GlebRadaev/lendhub/internal/domain"
	adminhandlers "github.com/GlebRadaev/lendhub/internal/handlers/admin"
	analysishandlers "github.com/GlebRadaev/lendhub/internal/handlers/analysis"
	authhandlers "github.com/GlebRadaev/lendhub/internal/handlers/auth"
	loanshandlers "github.com/GlebRadaev/lendhub/internal/handlers/loans"
	"github.com/GlebRadaev/lendhub/internal/service"
	"github.com/GlebRadaev/lendhub/pkg/auth"
	"github.com/GlebRadaev/lendhub/pkg/logger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type LoanHandler interface {
	CreateLoan(w http.ResponseWriter, r *http.Request)
	GetLoans(w http.ResponseWriter, r *http.Request)
	RequestLoan(w http.ResponseWriter, r *http.Request)
	ApproveRequest(w http.ResponseWriter, r *http.Request)
	RejectRequest(w http.ResponseWriter, r *http.Request)
	PayInstallment(w http.ResponseWriter, r *http.Request)
}

type AnalysisHandler interface {
	GetAnalysis(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	GetUsers(w http.ResponseWriter, r *http.Request)
	AddUser(w http.ResponseWriter, r *http.Request)
	UpdateUser(w http.ResponseWriter, r *http.Request)
	DeleteUser(w http.ResponseWriter, r *http.Request)
	ResetPassword(w http.ResponseWriter, r *http.Request)
	ClearLoans(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	LoanHandler     LoanHandler
	AnalysisHandler AnalysisHandler
	AdminHandler    AdminHandler

	jwtService auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		LoanHandler:     loanshandlers.New(s.LoanService),
		AnalysisHandler: analysishandlers.New(s.AnalyticsService),
		AdminHandler:    adminhandlers.New(s.AdminService),
		jwtService:      jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.RequestID,
		middleware.Recoverer,
		logger.RequestLogger(os.Stdout),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Route("/loans", func(r chi.Router) {
			r.Post("/", h.LoanHandler.CreateLoan)
			r.Get("/", h.LoanHandler.GetLoans)
			r.Get("/analysis", h.AnalysisHandler.GetAnalysis)
			r.Put("/request/{loanId}", h.LoanHandler.RequestLoan)
			r.Put("/approve/{loanId}", h.LoanHandler.ApproveRequest)
			r.Put("/reject/{loanId}", h.LoanHandler.RejectRequest)
			r.Put("/pay/{loanId}", h.LoanHandler.PayInstallment)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(
				auth.AuthMiddleware(h.jwtService),
				auth.RequireRole(domain.RoleAdmin),
			)
			r.Get("/users", h.AdminHandler.GetUsers)
			r.Post("/users", h.AdminHandler.AddUser)
			r.Put("/users/{id}", h.AdminHandler.UpdateUser)
			r.Delete("/users/{id}", h.AdminHandler.DeleteUser)
			r.Put("/users/reset/{id}", h.AdminHandler.ResetPassword)
			r.Delete("/clear-loans", h.AdminHandler.ClearLoans)
		})
	})

	return r
}
