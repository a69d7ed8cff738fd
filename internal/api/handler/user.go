package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/tably-app/backoffice-service/internal/api"
	"github.com/tably-app/backoffice-service/internal/middleware"
	"github.com/tably-app/backoffice-service/internal/models"
	"github.com/tably-app/backoffice-service/internal/service"
)

// UserHandler handles account management requests
type UserHandler struct {
	authService *service.AuthService
}

// NewUserHandler creates a new user handler
func NewUserHandler(authService *service.AuthService) *UserHandler {
	return &UserHandler{
		authService: authService,
	}
}

// HandleUsers routes requests under /users
func (h *UserHandler) HandleUsers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		api.MethodNotAllowed(w)
		return
	}
	h.createUser(w, r)
}

// createUser provisions a new account
func (h *UserHandler) createUser(w http.ResponseWriter, r *http.Request) {
	var req models.UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.BadRequest(w, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" || req.Name == "" {
		api.BadRequest(w, "email, password and name are required")
		return
	}
	switch req.Role {
	case models.RoleSuperadmin, models.RoleManager, models.RoleWaiter:
	default:
		api.BadRequest(w, "role must be superadmin, manager or waiter")
		return
	}

	user, err := h.authService.RegisterUser(r.Context(), req)
	if err != nil {
		api.InternalServerError(w, err)
		return
	}

	api.RespondJSON(w, http.StatusCreated, user)
}

// HandleMe returns the account behind the presented token
func (h *UserHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		api.MethodNotAllowed(w)
		return
	}

	parts := strings.Split(r.Header.Get("Authorization"), " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		api.Unauthorized(w, "Invalid Authorization header format")
		return
	}

	user, err := h.authService.GetUserFromToken(r.Context(), parts[1])
	if err != nil {
		api.Unauthorized(w, "Invalid or expired token")
		return
	}

	api.RespondJSON(w, http.StatusOK, user)
}

// HandleChangePassword lets the signed-in user rotate their own password
func (h *UserHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		api.MethodNotAllowed(w)
		return
	}

	idStr, ok := middleware.GetUserID(r.Context())
	if !ok {
		api.Unauthorized(w, "Unauthorized")
		return
	}
	userID, err := uuid.Parse(idStr)
	if err != nil {
		api.Unauthorized(w, "Unauthorized")
		return
	}

	var req struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.BadRequest(w, "Invalid request body")
		return
	}
	if len(req.NewPassword) < 6 {
		api.BadRequest(w, "new password must be at least 6 characters")
		return
	}

	if err := h.authService.ChangePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		api.BadRequest(w, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
