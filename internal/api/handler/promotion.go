package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/tably-app/backoffice-service/internal/api"
	"github.com/tably-app/backoffice-service/internal/models"
	"github.com/tably-app/backoffice-service/internal/service"
)

// maxPromotionUpload bounds the multipart payload, image included.
const maxPromotionUpload = 10 << 20 // 10MB

// PromotionHandler handles promotion requests
type PromotionHandler struct {
	promotionService *service.PromotionService
}

// NewPromotionHandler creates a new promotion handler
func NewPromotionHandler(promotionService *service.PromotionService) *PromotionHandler {
	return &PromotionHandler{
		promotionService: promotionService,
	}
}

// HandlePromotions routes requests under /marketing/promotions
func (h *PromotionHandler) HandlePromotions(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/marketing/promotions")
	path = strings.TrimPrefix(path, "/")

	switch r.Method {
	case http.MethodPost:
		if path != "" {
			api.BadRequest(w, "Invalid request path")
			return
		}
		h.createPromotion(w, r)
	case http.MethodGet:
		if path == "" {
			h.listPromotions(w, r)
			return
		}
		id, err := uuid.Parse(path)
		if err != nil {
			api.BadRequest(w, "Invalid promotion ID")
			return
		}
		h.getPromotion(w, r, id)
	case http.MethodDelete:
		id, err := uuid.Parse(path)
		if err != nil {
			api.BadRequest(w, "Invalid promotion ID")
			return
		}
		h.deletePromotion(w, r, id)
	default:
		api.MethodNotAllowed(w)
	}
}

// createPromotion decodes the multipart creation payload and creates the promotion
func (h *PromotionHandler) createPromotion(w http.ResponseWriter, r *http.Request) {
	req, image, imageName, err := parsePromotionForm(r)
	if err != nil {
		api.BadRequest(w, err.Error())
		return
	}
	if image != nil {
		defer image.Close()
	}

	var reader io.Reader
	if image != nil {
		reader = image
	}

	promo, err := h.promotionService.Create(r.Context(), req, reader, imageName)
	if err != nil {
		if errors.Is(err, models.ErrNoActiveDays) ||
			errors.Is(err, models.ErrInvalidDiscount) ||
			errors.Is(err, models.ErrBadDiscountType) ||
			errors.Is(err, models.ErrBadActivationClock) {
			api.BadRequest(w, err.Error())
			return
		}
		api.InternalServerError(w, err)
		return
	}

	api.RespondJSON(w, http.StatusCreated, promo)
}

// parsePromotionForm decodes the multipart fields of a promotion creation
// request: title and activeDays arrive JSON-encoded, the image is optional.
func parsePromotionForm(r *http.Request) (models.PromotionRequest, io.ReadCloser, string, error) {
	var req models.PromotionRequest

	if err := r.ParseMultipartForm(maxPromotionUpload); err != nil {
		return req, nil, "", errors.New("invalid multipart payload")
	}

	if err := json.Unmarshal([]byte(r.FormValue("title")), &req.Title); err != nil {
		return req, nil, "", errors.New("title must be a locale-keyed JSON object")
	}

	req.DiscountType = models.DiscountType(r.FormValue("discountType"))

	value, err := strconv.ParseFloat(r.FormValue("discountValue"), 64)
	if err != nil {
		return req, nil, "", errors.New("discountValue must be a number")
	}
	req.DiscountValue = value

	if err := json.Unmarshal([]byte(r.FormValue("activeDays")), &req.ActiveDays); err != nil {
		return req, nil, "", errors.New("activeDays must be a JSON array")
	}

	req.StartTime = r.FormValue("startTime")
	req.EndTime = r.FormValue("endTime")

	if raw := r.FormValue("restaurantId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return req, nil, "", errors.New("restaurantId must be a UUID")
		}
		req.RestaurantID = &id
	}

	file, header, err := r.FormFile("image")
	if err == http.ErrMissingFile {
		return req, nil, "", nil
	}
	if err != nil {
		return req, nil, "", errors.New("invalid image attachment")
	}

	return req, file, header.Filename, nil
}

// listPromotions lists promotions, optionally filtered by restaurant
func (h *PromotionHandler) listPromotions(w http.ResponseWriter, r *http.Request) {
	var restaurantID *uuid.UUID
	if raw := r.URL.Query().Get("restaurant_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			api.BadRequest(w, "Invalid restaurant ID")
			return
		}
		restaurantID = &id
	}

	promos, err := h.promotionService.List(r.Context(), restaurantID)
	if err != nil {
		api.InternalServerError(w, err)
		return
	}

	if promos == nil {
		promos = []models.Promotion{}
	}
	api.RespondJSON(w, http.StatusOK, promos)
}

// getPromotion gets a promotion
func (h *PromotionHandler) getPromotion(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	promo, err := h.promotionService.Get(r.Context(), id)
	if err != nil {
		api.NotFound(w, err)
		return
	}

	api.RespondJSON(w, http.StatusOK, promo)
}

// deletePromotion removes a promotion
func (h *PromotionHandler) deletePromotion(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	if err := h.promotionService.Delete(r.Context(), id); err != nil {
		api.NotFound(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
