package domain

import "time"

const (
	// LoanStatusAvailable предложение открыто для заявок;
	LoanStatusAvailable string = "available"
	// LoanStatusApproved хотя бы одна заявка по предложению одобрена;
	LoanStatusApproved string = "approved"
)

const (
	RequestStatusRequested string = "requested"
	RequestStatusApproved  string = "approved"
	RequestStatusRejected  string = "rejected"
	RequestStatusCompleted string = "completed"
)

const RoleAdmin = "Admin"

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Loan is a lender's offer together with every borrower request made against
// it. The whole value is loaded and saved as one unit.
type Loan struct {
	ID           string    `json:"id"`
	Amount       float64   `json:"amount"`
	InterestRate float64   `json:"interestRate"`
	Duration     int       `json:"duration"`
	Lender       string    `json:"lender"`
	Status       string    `json:"status"`
	Requests     []Request `json:"requests"`
	Version      int       `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Request struct {
	BorrowerName string    `json:"borrowerName"`
	Status       string    `json:"status"`
	Payments     []Payment `json:"payments"`
}

type Payment struct {
	Month  int     `json:"month"`
	Amount float64 `json:"amount"`
	Paid   bool    `json:"paid"`
}
