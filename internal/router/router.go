package router

import (
	"encoding/json"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/tably-app/backoffice-service/internal/api"
	"github.com/tably-app/backoffice-service/internal/api/handler"
	"github.com/tably-app/backoffice-service/internal/db"
	"github.com/tably-app/backoffice-service/internal/metrics"
	"github.com/tably-app/backoffice-service/internal/middleware"
	"github.com/tably-app/backoffice-service/internal/models"
	"github.com/tably-app/backoffice-service/internal/service"
	"github.com/tably-app/backoffice-service/internal/websockets"
)

// APIRoot is the versioned prefix every REST path hangs off.
const APIRoot = "/api/v1"

// Services groups the service layer dependencies of the router
type Services struct {
	Auth      *service.AuthService
	Banner    *service.BannerService
	Promotion *service.PromotionService
	Menu      *service.MenuService
	Tenant    *service.TenantService
}

// Router handles HTTP routing
type Router struct {
	mux      *http.ServeMux
	services Services
	database *db.Postgres
	hub      *websockets.Hub
	logger   zerolog.Logger
}

// New creates a new router
func New(database *db.Postgres, services Services, hub *websockets.Hub, logger zerolog.Logger) *Router {
	r := &Router{
		mux:      http.NewServeMux(),
		services: services,
		database: database,
		hub:      hub,
		logger:   logger.With().Str("component", "http").Logger(),
	}

	r.setupRoutes()

	return r
}

// ServeHTTP implements the http.Handler interface
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// setupRoutes sets up the routes for the router
func (r *Router) setupRoutes() {
	// Public routes
	r.mux.Handle(APIRoot+"/auth/login", http.HandlerFunc(r.handleLogin))
	r.mux.Handle("/ws", http.HandlerFunc(r.handleWebSocket))
	r.mux.Handle("/metrics", promhttp.Handler())
	r.mux.Handle("/healthz", http.HandlerFunc(r.handleHealth))

	bannerHandler := handler.NewBannerHandler(r.services.Banner)
	promotionHandler := handler.NewPromotionHandler(r.services.Promotion)
	menuHandler := handler.NewMenuHandler(r.services.Menu)
	tenantHandler := handler.NewTenantHandler(r.services.Tenant)
	userHandler := handler.NewUserHandler(r.services.Auth)

	// Protected routes
	apiHandler := http.NewServeMux()
	apiHandler.Handle("/auth/me", http.HandlerFunc(userHandler.HandleMe))
	apiHandler.Handle("/auth/password", http.HandlerFunc(userHandler.HandleChangePassword))
	apiHandler.Handle("/screensaver/client", http.HandlerFunc(bannerHandler.HandleBanners))
	apiHandler.Handle("/screensaver/client/", http.HandlerFunc(bannerHandler.HandleBanners))
	apiHandler.Handle("/marketing/promotions", http.HandlerFunc(promotionHandler.HandlePromotions))
	apiHandler.Handle("/marketing/promotions/", http.HandlerFunc(promotionHandler.HandlePromotions))
	apiHandler.Handle("/menu", http.HandlerFunc(menuHandler.HandleMenu))
	apiHandler.Handle("/plans", http.HandlerFunc(tenantHandler.HandlePlans))

	// Tenant administration is reserved for the back-office superadmin
	adminOnly := middleware.RequireRole(models.RoleSuperadmin)
	apiHandler.Handle("/clients", adminOnly(http.HandlerFunc(tenantHandler.HandleTenants)))
	apiHandler.Handle("/clients/", adminOnly(http.HandlerFunc(tenantHandler.HandleTenants)))
	apiHandler.Handle("/users", adminOnly(http.HandlerFunc(userHandler.HandleUsers)))

	// Apply middleware to protected routes
	apiChain := middleware.Logger(r.logger)(
		middleware.Auth(r.services.Auth)(
			apiHandler,
		),
	)

	r.mux.Handle(APIRoot+"/", http.StripPrefix(APIRoot, apiChain))
}

// handleLogin handles user login
func (r *Router) handleLogin(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		api.MethodNotAllowed(w)
		return
	}

	var loginReq struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(req.Body).Decode(&loginReq); err != nil {
		api.BadRequest(w, "Invalid request body")
		return
	}

	token, user, err := r.services.Auth.Login(req.Context(), loginReq.Email, loginReq.Password)
	if err != nil {
		metrics.IncLogin("unknown", "failure")
		api.Unauthorized(w, err.Error())
		return
	}

	metrics.IncLogin(string(user.Role), "success")

	// Envelope matches what the dashboard client expects: the token at the
	// top level and the user nested under data.
	response := struct {
		Token string `json:"token"`
		Data  struct {
			User models.User `json:"user"`
		} `json:"data"`
	}{
		Token: token,
	}
	response.Data.User = *user

	api.RespondJSON(w, http.StatusOK, response)
}

// handleWebSocket handles WebSocket connections from tablets and admin dashboards
func (r *Router) handleWebSocket(w http.ResponseWriter, req *http.Request) {
	userID := req.URL.Query().Get("user_id")
	if userID == "" {
		api.BadRequest(w, "user_id is required")
		return
	}

	clientTypeStr := req.URL.Query().Get("client_type")
	if clientTypeStr == "" {
		api.BadRequest(w, "client_type is required")
		return
	}

	clientType := websockets.ClientType(clientTypeStr)

	switch clientType {
	case websockets.ClientTypeTablet, websockets.ClientTypeAdmin:
		// Valid client type
	default:
		api.BadRequest(w, "invalid client_type")
		return
	}

	conn, err := websockets.Upgrader.Upgrade(w, req, nil)
	if err != nil {
		// If upgrading fails, the upgrader has already written the error to the response
		return
	}

	websockets.ServeWs(r.hub, conn, userID, clientType)
}

// handleHealth reports liveness including database reachability
func (r *Router) handleHealth(w http.ResponseWriter, req *http.Request) {
	if err := r.database.HealthCheck(req.Context()); err != nil {
		http.Error(w, "database not ready", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
