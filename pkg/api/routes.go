package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API routes with the given router
func (h *Handler) RegisterRoutes(router *mux.Router) {
	// Auth operations
	router.HandleFunc("/api/auth/login", h.HandleLogin).Methods("POST")
	router.Handle("/api/auth/logout", h.RequireAuth(http.HandlerFunc(h.HandleLogout))).Methods("POST")
	router.Handle("/api/auth/me", h.RequireAuth(http.HandlerFunc(h.HandleMe))).Methods("GET")
	router.Handle("/api/auth/change-password", h.RequireAuth(http.HandlerFunc(h.HandleChangePassword))).Methods("POST")

	// Collection reads (public: the site renders from these)
	router.HandleFunc("/api/collections/{coll}", h.HandleListCollection).Methods("GET")
	router.HandleFunc("/api/collections/{coll}/records/{id}", h.HandleGetRecord).Methods("GET")

	// Collection mutations (admin only)
	router.Handle("/api/collections/{coll}", h.RequireAuth(http.HandlerFunc(h.HandleAddRecord))).Methods("POST")
	router.Handle("/api/collections/{coll}/records/{id}", h.RequireAuth(http.HandlerFunc(h.HandleUpdateRecord))).Methods("PATCH")
	router.Handle("/api/collections/{coll}/records/{id}", h.RequireAuth(http.HandlerFunc(h.HandleDeleteRecord))).Methods("DELETE")

	// Settings
	router.HandleFunc("/api/settings", h.HandleGetSettings).Methods("GET")
	router.Handle("/api/settings", h.RequireAuth(http.HandlerFunc(h.HandleUpdateSettings))).Methods("PATCH")

	// Health check
	router.HandleFunc("/healthz", h.HandleHealth).Methods("GET")
}
