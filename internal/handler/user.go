package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/userd/userd/internal/handler/dto"
	"github.com/userd/userd/internal/repository"
)

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	repo     *repository.Repository
	validate *validator.Validate
	logger   *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(repo *repository.Repository, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		repo:     repo,
		validate: validator.New(),
		logger:   logger,
	}
}

// Create handles POST /users/.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeUserRequest(w, r)
	if !ok {
		return
	}

	user := req.ToUser()
	if err := h.repo.CreateUser(r.Context(), user); err != nil {
		h.handleRepositoryError(w, err)
		return
	}

	h.logger.Info("user_created", "user_id", user.ID)

	writeJSON(w, http.StatusCreated, dto.ToUserResponse(user))
}

// List handles GET /users/.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.repo.ListUsers(r.Context())
	if err != nil {
		h.handleRepositoryError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserListResponse(users))
}

// Get handles GET /users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r)
	if !ok {
		return
	}

	user, err := h.repo.GetUserByID(r.Context(), id)
	if err != nil {
		h.handleRepositoryError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserResponse(user))
}

// Update handles PUT /users/{id}.
// Both name and email are overwritten unconditionally; there is no partial
// update.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r)
	if !ok {
		return
	}

	req, ok := h.decodeUserRequest(w, r)
	if !ok {
		return
	}

	user, err := h.repo.UpdateUser(r.Context(), id, req.Name, req.Email)
	if err != nil {
		h.handleRepositoryError(w, err)
		return
	}

	h.logger.Info("user_updated", "user_id", user.ID)

	writeJSON(w, http.StatusOK, dto.ToUserResponse(user))
}

// Delete handles DELETE /users/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r)
	if !ok {
		return
	}

	if err := h.repo.DeleteUser(r.Context(), id); err != nil {
		h.handleRepositoryError(w, err)
		return
	}

	h.logger.Info("user_deleted", "user_id", id)

	w.WriteHeader(http.StatusNoContent)
}

// decodeUserRequest decodes and validates the request body.
// Validation rejects the payload before any store access.
func (h *UserHandler) decodeUserRequest(w http.ResponseWriter, r *http.Request) (*dto.UserRequest, bool) {
	var req dto.UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return nil, false
	}

	if err := h.validate.Struct(&req); err != nil {
		h.writeError(w, http.StatusUnprocessableEntity, "VALIDATION_FAILED",
			"Name and email are required and must be 1-100 characters")
		return nil, false
	}

	return &req, true
}

// userID parses the {id} path parameter.
// A non-integer segment is a validation failure, not a missing record.
func (h *UserHandler) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.writeError(w, http.StatusUnprocessableEntity, "INVALID_ID", "User ID must be an integer")
		return 0, false
	}
	return id, true
}

// handleRepositoryError maps repository errors to HTTP responses.
func (h *UserHandler) handleRepositoryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		h.writeError(w, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	default:
		h.logger.Error("internal_error", "error", err)
		h.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}

// writeError writes an error response.
func (h *UserHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
