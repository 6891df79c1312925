package admin

//go:generate mockgen -source=admin.go -destination=mock_admin.go -package=admin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/lendhub/internal/domain"
	"github.com/GlebRadaev/lendhub/internal/dto"
	"github.com/GlebRadaev/lendhub/internal/service/adminservice"
	"github.com/GlebRadaev/lendhub/pkg/utils"
	"github.com/GlebRadaev/lendhub/pkg/validate"
)

type Service interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, name, role, password string) (*domain.User, error)
	UpdateUser(ctx context.Context, id, name, role, password string) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
	ResetPassword(ctx context.Context, id string) error
	ClearLoans(ctx context.Context) (int64, error)
}

type AdminHandler struct {
	adminService Service
}

func New(adminService Service) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, adminservice.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, adminservice.ErrUserExists):
		utils.RespondWithError(w, http.StatusBadRequest, "User already exists")
	case errors.Is(err, adminservice.ErrAdminUndeletable):
		utils.RespondWithError(w, http.StatusBadRequest, "Cannot delete Admin user")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error: "+err.Error())
	}
}

// GetUsers godoc
//
//	@Summary	List users
//	@Tags		Admin
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		domain.User
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	403	{object}	utils.Response	"Forbidden"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/users [get]
func (h *AdminHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminService.ListUsers(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, users)
}

// AddUser godoc
//
//	@Summary	Add a user
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.CreateUserRequestDTO	true	"New user"
//	@Success	200		{object}	dto.UserMessageResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid body or user already exists"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/users [post]
func (h *AdminHandler) AddUser(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.adminService.CreateUser(r.Context(), req.Name, req.Role, req.Password)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UserMessageResponseDTO{
		Message: "User added",
		User:    user,
	})
}

// UpdateUser godoc
//
//	@Summary		Update a user
//	@Description	Replaces name and role. An empty password keeps the current one.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"User ID"
//	@Param			request	body		dto.UpdateUserRequestDTO	true	"User fields"
//	@Success		200		{object}	dto.UserMessageResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Router			/api/admin/users/{id} [put]
func (h *AdminHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateUserRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.adminService.UpdateUser(r.Context(), chi.URLParam(r, "id"), req.Name, req.Role, req.Password)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UserMessageResponseDTO{
		Message: "User updated",
		User:    user,
	})
}

// DeleteUser godoc
//
//	@Summary	Delete a user
//	@Tags		Admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"User ID"
//	@Success	200	{object}	utils.Response
//	@Failure	400	{object}	utils.Response	"Cannot delete Admin user"
//	@Failure	404	{object}	utils.Response	"User not found"
//	@Router		/api/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.adminService.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "User removed"})
}

// ResetPassword godoc
//
//	@Summary	Reset a user's password to the default
//	@Tags		Admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"User ID"
//	@Success	200	{object}	utils.Response
//	@Failure	404	{object}	utils.Response	"User not found"
//	@Router		/api/admin/users/reset/{id} [put]
func (h *AdminHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	if err := h.adminService.ResetPassword(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{
		Message: fmt.Sprintf("Password reset to %s", adminservice.DefaultPassword),
	})
}

// ClearLoans godoc
//
//	@Summary	Delete every loan
//	@Tags		Admin
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	utils.Response
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/clear-loans [delete]
func (h *AdminHandler) ClearLoans(w http.ResponseWriter, r *http.Request) {
	if _, err := h.adminService.ClearLoans(r.Context()); err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "All loan data cleared"})
}
