package domain

import (
	"github.com/shopspring/decimal"
)

func NewLoan(id string, amount, interestRate float64, duration int, lender string) *Loan {
	return &Loan{
		ID:           id,
		Amount:       amount,
		InterestRate: interestRate,
		Duration:     duration,
		Lender:       lender,
		Status:       LoanStatusAvailable,
		Requests:     []Request{},
	}
}

// MonthlyInstallment returns the flat monthly payment: principal plus simple
// interest spread evenly over the duration, rounded half away from zero to
// cents.
func MonthlyInstallment(amount, interestRate float64, duration int) float64 {
	if duration <= 0 {
		return 0
	}
	total := decimal.NewFromFloat(amount).
		Mul(decimal.NewFromInt(1).Add(decimal.NewFromFloat(interestRate).Div(decimal.NewFromInt(100))))
	monthly, _ := total.Div(decimal.NewFromInt(int64(duration))).Round(2).Float64()
	return monthly
}

func Schedule(amount, interestRate float64, duration int) []Payment {
	if duration <= 0 {
		return []Payment{}
	}
	monthly := MonthlyInstallment(amount, interestRate, duration)
	payments := make([]Payment, duration)
	for i := range payments {
		payments[i] = Payment{Month: i + 1, Amount: monthly}
	}
	return payments
}

// Normalize fills the defaults older documents may lack.
func (l *Loan) Normalize() {
	if l.Status == "" {
		l.Status = LoanStatusAvailable
	}
	if l.Requests == nil {
		l.Requests = []Request{}
	}
}

// findOpenRequest is findRequest restricted to requests that can still be
// approved or rejected.
func (l *Loan) findOpenRequest(borrowerName string) (*Request, error) {
	req, err := l.findRequest(borrowerName)
	if err != nil {
		return nil, err
	}
	if req.Status == RequestStatusRejected || req.Status == RequestStatusCompleted {
		return nil, ErrRequestClosed
	}
	return req, nil
}

func (l *Loan) findRequest(borrowerName string) (*Request, error) {
	for i := range l.Requests {
		if l.Requests[i].BorrowerName == borrowerName {
			return &l.Requests[i], nil
		}
	}
	return nil, ErrRequestNotFound
}

func (l *Loan) AddRequest(borrowerName string) error {
	if _, err := l.findRequest(borrowerName); err == nil {
		return ErrDuplicateRequest
	}
	l.Requests = append(l.Requests, Request{
		BorrowerName: borrowerName,
		Status:       RequestStatusRequested,
		Payments:     Schedule(l.Amount, l.InterestRate, l.Duration),
	})
	return nil
}

// Approve marks the borrower's request approved and issues a fresh schedule,
// dropping any payment progress. Rejected and completed requests are final.
// Any approval moves the whole offer to
// approved regardless of the other requests.
func (l *Loan) Approve(borrowerName string) error {
	req, err := l.findOpenRequest(borrowerName)
	if err != nil {
		return err
	}
	req.Status = RequestStatusApproved
	req.Payments = Schedule(l.Amount, l.InterestRate, l.Duration)
	l.Status = LoanStatusApproved
	return nil
}

func (l *Loan) Reject(borrowerName string) error {
	req, err := l.findOpenRequest(borrowerName)
	if err != nil {
		return err
	}
	req.Status = RequestStatusRejected
	return nil
}

// Pay marks the installment at monthIndex (0-based) as paid. Once nothing is
// left unpaid the request is completed. Only approved requests take payments;
// paying a completed one again changes nothing.
func (l *Loan) Pay(borrowerName string, monthIndex int) error {
	req, err := l.findRequest(borrowerName)
	if err != nil {
		return err
	}
	if req.Status != RequestStatusApproved && req.Status != RequestStatusCompleted {
		return ErrRequestNotApproved
	}
	if monthIndex < 0 || monthIndex >= len(req.Payments) {
		return ErrPaymentNotFound
	}
	req.Payments[monthIndex].Paid = true

	for _, p := range req.Payments {
		if !p.Paid {
			return nil
		}
	}
	req.Status = RequestStatusCompleted
	return nil
}

func (l *Loan) Request(borrowerName string) (*Request, bool) {
	req, err := l.findRequest(borrowerName)
	return req, err == nil
}
