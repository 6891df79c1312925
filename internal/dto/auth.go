package dto

import "github.com/GlebRadaev/lendhub/internal/domain"

type RegisterRequestDTO struct {
	Name     string `json:"name" validate:"required,min=3,max=50" example:"alice"`
	Password string `json:"password" validate:"required,min=5" example:"secret123"`
	Role     string `json:"role" validate:"required,max=64" example:"Borrower"`
}

type RegisterResponseDTO struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

type LoginRequestDTO struct {
	Name     string `json:"name" validate:"required" example:"alice"`
	Password string `json:"password" validate:"required" example:"secret123"`
}

type LoginResponseDTO struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    *domain.User `json:"user"`
}
