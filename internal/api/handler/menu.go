package handler

import (
	"net/http"

	"github.com/tably-app/backoffice-service/internal/api"
	"github.com/tably-app/backoffice-service/internal/models"
	"github.com/tably-app/backoffice-service/internal/service"
)

// MenuHandler handles menu-related requests
type MenuHandler struct {
	menuService *service.MenuService
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{
		menuService: menuService,
	}
}

// HandleMenu serves the category/subcategory/product tree
func (h *MenuHandler) HandleMenu(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		api.MethodNotAllowed(w)
		return
	}

	tree, err := h.menuService.GetTree(r.Context())
	if err != nil {
		api.InternalServerError(w, err)
		return
	}

	if tree == nil {
		tree = []models.MenuCategory{}
	}
	api.RespondJSON(w, http.StatusOK, tree)
}
