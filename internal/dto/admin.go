package dto

import "github.com/GlebRadaev/lendhub/internal/domain"

type CreateUserRequestDTO struct {
	Name     string `json:"name" validate:"required,max=255" example:"alice"`
	Role     string `json:"role" validate:"required,max=64" example:"Lender"`
	Password string `json:"password" validate:"required" example:"secret123"`
}

// UpdateUserRequestDTO leaves the password unchanged when it is empty.
type UpdateUserRequestDTO struct {
	Name     string `json:"name" validate:"required,max=255" example:"alice"`
	Role     string `json:"role" validate:"required,max=64" example:"Lender"`
	Password string `json:"password,omitempty" example:"newsecret"`
}

type UserMessageResponseDTO struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}
