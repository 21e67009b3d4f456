package rest

import (
	"mammacheck/internal/cache"
	"mammacheck/internal/service"
	"mammacheck/internal/transport/rest/handler"
	"mammacheck/internal/transport/rest/middleware"
	"mammacheck/internal/transport/ws"
	"net/http"
	"os"

	"github.com/gorilla/mux"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService    *service.AuthService
	SessionService *service.SessionService
	CenterService  *service.CenterService
	SyncService    *service.DirectorySyncService
	LocaleService  *service.LocaleService
	Stats          cache.StatsCache
	WSHub          *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	sessionHandler := handler.NewSessionHandler(c.SessionService)
	centerHandler := handler.NewCenterHandler(c.CenterService, c.SyncService)
	localeHandler := handler.NewLocaleHandler(c.LocaleService)
	statsHandler := handler.NewStatsHandler(c.Stats)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions", sessionHandler.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/steps", sessionHandler.Steps).Methods("GET", "OPTIONS")
	v1.HandleFunc("/centers", centerHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/locales", localeHandler.Languages).Methods("GET", "OPTIONS")
	v1.HandleFunc("/locales/{lang}", localeHandler.Get).Methods("GET", "OPTIONS")

	// WebSocket route (public with token in query param)
	v1.HandleFunc("/ws/sessions/{id}", wsHandler.SessionWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Session routes (require session auth)
	sessionRoutes := v1.NewRoute().Subrouter()
	sessionRoutes.Use(authMW.RequireSession)

	sessionRoutes.HandleFunc("/sessions/{id}/steps/{stepId}", sessionHandler.InitializeStep).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/sessions/{id}/answers", sessionHandler.SubmitAnswer).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/sessions/{id}/clarifications", sessionHandler.Clarify).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/sessions/{id}/reset", sessionHandler.Reset).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/sessions/{id}/transcript", sessionHandler.Transcript).Methods("GET", "OPTIONS")
	sessionRoutes.HandleFunc("/sessions/{id}/assessment", sessionHandler.Assessment).Methods("GET", "OPTIONS")

	// Admin routes (require admin auth)
	adminRoutes := v1.NewRoute().Subrouter()
	adminRoutes.Use(authMW.RequireAdmin)

	adminRoutes.HandleFunc("/admin/centers", centerHandler.Create).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/admin/centers/sync", centerHandler.Sync).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/admin/locales/{lang}", localeHandler.Upsert).Methods("PUT", "OPTIONS")
	adminRoutes.HandleFunc("/admin/stats", statsHandler.Get).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
