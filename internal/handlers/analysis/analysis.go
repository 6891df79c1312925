package analysis

//go:generate mockgen -source=analysis.go -destination=mock_analysis.go -package=analysis

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/lendhub/internal/service/analyticsservice"
	"github.com/GlebRadaev/lendhub/pkg/utils"
)

type Service interface {
	Analyze(ctx context.Context) (*analyticsservice.Report, error)
}

type AnalysisHandler struct {
	analyticsService Service
}

func New(analyticsService Service) *AnalysisHandler {
	return &AnalysisHandler{
		analyticsService: analyticsService,
	}
}

// GetAnalysis godoc
//
//	@Summary		Portfolio analytics
//	@Description	Aggregate counters, top lenders by volume and a flat borrower/loan table.
//	@Tags			Loans
//	@Produce		json
//	@Success		200	{object}	analyticsservice.Report
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/loans/analysis [get]
func (h *AnalysisHandler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	report, err := h.analyticsService.Analyze(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error: "+err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, report)
}
