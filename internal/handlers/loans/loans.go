package loans

//go:generate mockgen -source=loans.go -destination=mock_loans.go -package=loans

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/lendhub/internal/domain"
	"github.com/GlebRadaev/lendhub/internal/dto"
	"github.com/GlebRadaev/lendhub/internal/service/loanservice"
	"github.com/GlebRadaev/lendhub/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, amount, interestRate float64, duration int, lender string) (*domain.Loan, error)
	List(ctx context.Context) ([]domain.Loan, error)
	Request(ctx context.Context, loanID, borrowerName string) (*domain.Loan, error)
	Approve(ctx context.Context, loanID, borrowerName string) (*domain.Loan, error)
	Reject(ctx context.Context, loanID, borrowerName string) (*domain.Loan, error)
	Pay(ctx context.Context, loanID, borrowerName string, monthIndex int) (*domain.Loan, error)
}

type LoanHandler struct {
	loanService Service
}

func New(loanService Service) *LoanHandler {
	return &LoanHandler{
		loanService: loanService,
	}
}

// respondWithServiceError maps loan errors onto status codes. Unknown errors
// are answered with 500 and the raw error text.
func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, loanservice.ErrLoanNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Loan not found")
	case errors.Is(err, domain.ErrRequestNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Request not found")
	case errors.Is(err, domain.ErrPaymentNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Payment not found")
	case errors.Is(err, domain.ErrRequestClosed):
		utils.RespondWithError(w, http.StatusBadRequest, "Request is already rejected or completed")
	case errors.Is(err, domain.ErrRequestNotApproved):
		utils.RespondWithError(w, http.StatusBadRequest, "Request is not approved")
	case errors.Is(err, domain.ErrDuplicateRequest):
		utils.RespondWithError(w, http.StatusBadRequest, "You already requested this loan")
	case errors.Is(err, domain.ErrConcurrentUpdate):
		utils.RespondWithError(w, http.StatusConflict, "Loan was modified concurrently, retry the request")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error: "+err.Error())
	}
}

// CreateLoan godoc
//
//	@Summary		Create a loan offer
//	@Description	Lender posts a new loan offer. Values are stored as given.
//	@Tags			Loans
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateLoanRequestDTO	true	"Loan offer"
//	@Success		200		{object}	domain.Loan
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/loans [post]
func (h *LoanHandler) CreateLoan(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLoanRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	loan, err := h.loanService.Create(r.Context(), req.Amount, req.InterestRate, req.Duration, req.Lender)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error: "+err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, loan)
}

// GetLoans godoc
//
//	@Summary		List loan offers
//	@Tags			Loans
//	@Produce		json
//	@Success		200	{array}		domain.Loan
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/loans [get]
func (h *LoanHandler) GetLoans(w http.ResponseWriter, r *http.Request) {
	loans, err := h.loanService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error: "+err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, loans)
}

// RequestLoan godoc
//
//	@Summary		Request a loan
//	@Description	Borrower requests an offer; a flat EMI schedule is attached to the request.
//	@Tags			Loans
//	@Accept			json
//	@Produce		json
//	@Param			loanId	path		string					true	"Loan ID"
//	@Param			request	body		dto.BorrowerRequestDTO	true	"Borrower"
//	@Success		200		{object}	domain.Loan
//	@Failure		400		{object}	utils.Response	"Duplicate request"
//	@Failure		404		{object}	utils.Response	"Loan not found"
//	@Failure		409		{object}	utils.Response	"Concurrent modification"
//	@Router			/api/loans/request/{loanId} [put]
func (h *LoanHandler) RequestLoan(w http.ResponseWriter, r *http.Request) {
	var req dto.BorrowerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	loan, err := h.loanService.Request(r.Context(), chi.URLParam(r, "loanId"), req.BorrowerName)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, loan)
}

// ApproveRequest godoc
//
//	@Summary		Approve a borrower request
//	@Description	Approves the request, regenerates its schedule and marks the offer approved.
//	@Tags			Loans
//	@Accept			json
//	@Produce		json
//	@Param			loanId	path		string					true	"Loan ID"
//	@Param			request	body		dto.BorrowerRequestDTO	true	"Borrower"
//	@Success		200		{object}	dto.LoanMessageResponseDTO
//	@Failure		400		{object}	utils.Response	"Request already rejected or completed"
//	@Failure		404		{object}	utils.Response	"Loan or request not found"
//	@Failure		409		{object}	utils.Response	"Concurrent modification"
//	@Router			/api/loans/approve/{loanId} [put]
func (h *LoanHandler) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	var req dto.BorrowerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	loan, err := h.loanService.Approve(r.Context(), chi.URLParam(r, "loanId"), req.BorrowerName)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.LoanMessageResponseDTO{
		Message: "Loan approved",
		Loan:    loan,
	})
}

// RejectRequest godoc
//
//	@Summary		Reject a borrower request
//	@Tags			Loans
//	@Accept			json
//	@Produce		json
//	@Param			loanId	path		string					true	"Loan ID"
//	@Param			request	body		dto.BorrowerRequestDTO	true	"Borrower"
//	@Success		200		{object}	dto.LoanMessageResponseDTO
//	@Failure		400		{object}	utils.Response	"Request already rejected or completed"
//	@Failure		404		{object}	utils.Response	"Loan or request not found"
//	@Failure		409		{object}	utils.Response	"Concurrent modification"
//	@Router			/api/loans/reject/{loanId} [put]
func (h *LoanHandler) RejectRequest(w http.ResponseWriter, r *http.Request) {
	var req dto.BorrowerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	loan, err := h.loanService.Reject(r.Context(), chi.URLParam(r, "loanId"), req.BorrowerName)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.LoanMessageResponseDTO{
		Message: "Loan rejected",
		Loan:    loan,
	})
}

// PayInstallment godoc
//
//	@Summary		Pay an EMI installment
//	@Description	Marks the installment at monthIndex (0-based) as paid; the request completes once all are paid.
//	@Tags			Loans
//	@Accept			json
//	@Produce		json
//	@Param			loanId	path		string				true	"Loan ID"
//	@Param			request	body		dto.PayRequestDTO	true	"Installment"
//	@Success		200		{object}	dto.LoanMessageResponseDTO
//	@Failure		400		{object}	utils.Response	"Request not approved"
//	@Failure		404		{object}	utils.Response	"Loan, request or payment not found"
//	@Failure		409		{object}	utils.Response	"Concurrent modification"
//	@Router			/api/loans/pay/{loanId} [put]
func (h *LoanHandler) PayInstallment(w http.ResponseWriter, r *http.Request) {
	var req dto.PayRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	loan, err := h.loanService.Pay(r.Context(), chi.URLParam(r, "loanId"), req.BorrowerName, req.MonthIndex)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.LoanMessageResponseDTO{
		Message: "Payment recorded",
		Loan:    loan,
	})
}
