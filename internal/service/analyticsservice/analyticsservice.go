package analyticsservice

//go:generate mockgen -source=analyticsservice.go -destination=mock_analyticsservice.go -package=analyticsservice

import (
	"context"
	"slices"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/lendhub/internal/domain"
)

const (
	// NoBorrower стоит в поле заемщика у предложений без заявок;
	NoBorrower = "-"
	// MaxLenders ограничивает длину рейтинга кредиторов.
	MaxLenders = 8
)

type Repo interface {
	FindAll(ctx context.Context) ([]domain.Loan, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

type Record struct {
	LoanID       string  `json:"loanId"`
	Lender       string  `json:"lender"`
	Borrower     string  `json:"borrower"`
	Amount       float64 `json:"amount"`
	InterestRate float64 `json:"interestRate"`
	Duration     int     `json:"duration"`
	Status       string  `json:"status"`
}

type LenderTotal struct {
	Lender string  `json:"lender"`
	Amount float64 `json:"amount"`
}

type Report struct {
	TotalLoans      int            `json:"totalLoans"`
	TotalAmount     float64        `json:"totalAmount"`
	AvgInterestRate float64        `json:"avgInterestRate"`
	AvailableLoans  int            `json:"availableLoans"`
	ActiveLoans     int            `json:"activeLoans"`
	StatusCounts    map[string]int `json:"statusCounts"`
	LenderBarData   []LenderTotal  `json:"lenderBarData"`
	Loans           []Record       `json:"loans"`
}

func (s *Service) Analyze(ctx context.Context) (*Report, error) {
	loans, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to load loans for analysis", zap.Error(err))
		return nil, err
	}
	return Build(loans), nil
}

// Build aggregates loans into the dashboard report. Totals and the lender
// ranking count each loan once; availability and status counters work on
// the per-request records.
func Build(loans []domain.Loan) *Report {
	report := &Report{
		TotalLoans:    len(loans),
		StatusCounts:  make(map[string]int),
		LenderBarData: make([]LenderTotal, 0),
		Loans:         Flatten(loans),
	}

	total, rateSum := decimal.Zero, decimal.Zero
	lenderSums := make([]decimal.Decimal, 0)
	lenderIdx := make(map[string]int)
	for _, loan := range loans {
		amount := decimal.NewFromFloat(loan.Amount)
		total = total.Add(amount)
		rateSum = rateSum.Add(decimal.NewFromFloat(loan.InterestRate))

		i, ok := lenderIdx[loan.Lender]
		if !ok {
			i = len(lenderSums)
			lenderIdx[loan.Lender] = i
			lenderSums = append(lenderSums, decimal.Zero)
			report.LenderBarData = append(report.LenderBarData, LenderTotal{Lender: loan.Lender})
		}
		lenderSums[i] = lenderSums[i].Add(amount)
	}
	report.TotalAmount, _ = total.Float64()
	for i := range report.LenderBarData {
		report.LenderBarData[i].Amount, _ = lenderSums[i].Float64()
	}
	if len(loans) > 0 {
		report.AvgInterestRate, _ = rateSum.Div(decimal.NewFromInt(int64(len(loans)))).Round(2).Float64()
	}

	for _, rec := range report.Loans {
		switch rec.Status {
		case domain.LoanStatusAvailable:
			report.AvailableLoans++
		case domain.RequestStatusRequested, domain.RequestStatusApproved:
			report.ActiveLoans++
		}
		report.StatusCounts[rec.Status]++
	}

	slices.SortStableFunc(report.LenderBarData, func(a, b LenderTotal) int {
		switch {
		case a.Amount > b.Amount:
			return -1
		case a.Amount < b.Amount:
			return 1
		}
		return 0
	})
	if len(report.LenderBarData) > MaxLenders {
		report.LenderBarData = report.LenderBarData[:MaxLenders]
	}

	return report
}

func Flatten(loans []domain.Loan) []Record {
	records := make([]Record, 0, len(loans))
	for _, loan := range loans {
		base := Record{
			LoanID:       loan.ID,
			Lender:       loan.Lender,
			Amount:       loan.Amount,
			InterestRate: loan.InterestRate,
			Duration:     loan.Duration,
		}
		if len(loan.Requests) == 0 {
			base.Borrower = NoBorrower
			base.Status = domain.LoanStatusAvailable
			records = append(records, base)
			continue
		}
		for _, req := range loan.Requests {
			rec := base
			rec.Borrower = req.BorrowerName
			rec.Status = req.Status
			records = append(records, rec)
		}
	}
	return records
}
