package dto

import "github.com/GlebRadaev/lendhub/internal/domain"

type CreateLoanRequestDTO struct {
	Amount       float64 `json:"amount" example:"1200"`
	InterestRate float64 `json:"interestRate" example:"10"`
	Duration     int     `json:"duration" example:"12"`
	Lender       string  `json:"lender" example:"bank"`
}

type BorrowerRequestDTO struct {
	BorrowerName string `json:"borrowerName" example:"alice"`
}

type PayRequestDTO struct {
	BorrowerName string `json:"borrowerName" example:"alice"`
	MonthIndex   int    `json:"monthIndex" example:"0"`
}

type LoanMessageResponseDTO struct {
	Message string       `json:"message" example:"Loan approved"`
	Loan    *domain.Loan `json:"loan"`
}
