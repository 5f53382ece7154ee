package http

import (
	"net/http"

	"product-catalog-api/internal/delivery/http/handler"
	"product-catalog-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router          *mux.Router
	authHandler     *handler.AuthHandler
	productHandler  *handler.ProductHandler
	auditLogHandler *handler.AuditLogHandler
	authMiddleware  *middleware.AuthMiddleware
	corsMiddleware  *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	productHandler *handler.ProductHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:          mux.NewRouter(),
		authHandler:     authHandler,
		productHandler:  productHandler,
		auditLogHandler: auditLogHandler,
		authMiddleware:  authMiddleware,
		corsMiddleware:  corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Product reads (public)
	api.HandleFunc("/products", r.productHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", r.productHandler.GetByID).Methods(http.MethodGet)

	// Product mutations (protected, owner-scoped)
	products := api.PathPrefix("/products").Subrouter()
	products.Use(r.authMiddleware.Authenticate)
	products.HandleFunc("", r.productHandler.Create).Methods(http.MethodPost)
	products.HandleFunc("/generate", r.productHandler.Generate).Methods(http.MethodPost)
	products.HandleFunc("/{id}", r.productHandler.Update).Methods(http.MethodPut)
	products.HandleFunc("/{id}/stock", r.productHandler.UpdateStock).Methods(http.MethodPatch)
	products.HandleFunc("/{id}", r.productHandler.Delete).Methods(http.MethodDelete)

	// Audit logs (protected)
	auditLogs := api.PathPrefix("/audit-logs").Subrouter()
	auditLogs.Use(r.authMiddleware.Authenticate)
	auditLogs.HandleFunc("", r.auditLogHandler.GetMyAuditLogs).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
