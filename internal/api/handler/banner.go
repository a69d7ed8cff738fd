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

// BannerHandler handles screensaver banner requests
type BannerHandler struct {
	bannerService *service.BannerService
}

// NewBannerHandler creates a new banner handler
func NewBannerHandler(bannerService *service.BannerService) *BannerHandler {
	return &BannerHandler{
		bannerService: bannerService,
	}
}

// HandleBanners routes requests under /screensaver/client
func (h *BannerHandler) HandleBanners(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/screensaver/client")
	path = strings.TrimPrefix(path, "/")

	switch r.Method {
	case http.MethodGet:
		// GET /screensaver/client/{restaurantId}
		restaurantID, err := uuid.Parse(path)
		if err != nil {
			api.BadRequest(w, "Invalid restaurant ID")
			return
		}
		h.listBanners(w, r, restaurantID)
	case http.MethodPost:
		if path != "" {
			api.BadRequest(w, "Invalid request path")
			return
		}
		h.createBanner(w, r)
	case http.MethodDelete:
		// DELETE /screensaver/client/{id}
		id, err := uuid.Parse(path)
		if err != nil {
			api.BadRequest(w, "Invalid banner ID")
			return
		}
		h.deleteBanner(w, r, id)
	default:
		api.MethodNotAllowed(w)
	}
}

// listBanners lists a tenant's screensaver playlist
func (h *BannerHandler) listBanners(w http.ResponseWriter, r *http.Request, restaurantID uuid.UUID) {
	banners, err := h.bannerService.List(r.Context(), restaurantID)
	if err != nil {
		api.InternalServerError(w, err)
		return
	}

	if banners == nil {
		banners = []models.Banner{}
	}
	api.RespondJSON(w, http.StatusOK, banners)
}

// createBanner creates a new screensaver banner
func (h *BannerHandler) createBanner(w http.ResponseWriter, r *http.Request) {
	var req models.BannerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.BadRequest(w, "Invalid request body")
		return
	}

	banner, err := h.bannerService.Create(r.Context(), req)
	if err != nil {
		api.InternalServerError(w, err)
		return
	}

	api.RespondJSON(w, http.StatusCreated, banner)
}

// deleteBanner removes a screensaver banner
func (h *BannerHandler) deleteBanner(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	if err := h.bannerService.Delete(r.Context(), id); err != nil {
		api.NotFound(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
