package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/tably-app/backoffice-service/internal/api"
	"github.com/tably-app/backoffice-service/internal/models"
	"github.com/tably-app/backoffice-service/internal/service"
)

// TenantHandler handles tenant onboarding and plan catalog requests
type TenantHandler struct {
	tenantService *service.TenantService
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(tenantService *service.TenantService) *TenantHandler {
	return &TenantHandler{
		tenantService: tenantService,
	}
}

// HandleTenants routes requests under /clients
func (h *TenantHandler) HandleTenants(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/clients")
	path = strings.TrimPrefix(path, "/")

	switch r.Method {
	case http.MethodGet:
		if path == "" {
			h.listTenants(w, r)
			return
		}
		id, err := uuid.Parse(path)
		if err != nil {
			api.BadRequest(w, "Invalid client ID")
			return
		}
		h.getTenant(w, r, id)
	case http.MethodPost:
		if path != "" {
			api.BadRequest(w, "Invalid request path")
			return
		}
		h.createTenant(w, r)
	case http.MethodDelete:
		id, err := uuid.Parse(path)
		if err != nil {
			api.BadRequest(w, "Invalid client ID")
			return
		}
		h.deleteTenant(w, r, id)
	default:
		api.MethodNotAllowed(w)
	}
}

// HandlePlans serves the plan catalog
func (h *TenantHandler) HandlePlans(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		api.MethodNotAllowed(w)
		return
	}

	api.RespondJSON(w, http.StatusOK, h.tenantService.Catalog())
}

// listTenants lists all tenants
func (h *TenantHandler) listTenants(w http.ResponseWriter, r *http.Request) {
	tenants, err := h.tenantService.List(r.Context())
	if err != nil {
		api.InternalServerError(w, err)
		return
	}

	if tenants == nil {
		tenants = []models.Tenant{}
	}
	api.RespondJSON(w, http.StatusOK, tenants)
}

// getTenant gets a tenant
func (h *TenantHandler) getTenant(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	tenant, err := h.tenantService.Get(r.Context(), id)
	if err != nil {
		api.NotFound(w, err)
		return
	}

	api.RespondJSON(w, http.StatusOK, tenant)
}

// createTenant performs the terminal onboarding creation call
func (h *TenantHandler) createTenant(w http.ResponseWriter, r *http.Request) {
	var req models.TenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.BadRequest(w, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		api.BadRequest(w, err.Error())
		return
	}

	tenant, err := h.tenantService.CreateFromOnboarding(r.Context(), req)
	if err != nil {
		api.InternalServerError(w, err)
		return
	}

	api.RespondJSON(w, http.StatusCreated, tenant)
}

// deleteTenant removes a tenant account
func (h *TenantHandler) deleteTenant(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	if err := h.tenantService.Delete(r.Context(), id); err != nil {
		api.NotFound(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
