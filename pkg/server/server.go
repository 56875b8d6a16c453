// Package server wires the content store, session manager, and API handlers
// onto a single router.
package server

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/lilhale/sitestore/pkg/api"
	"github.com/lilhale/sitestore/pkg/auth"
	"github.com/lilhale/sitestore/pkg/kv"
	"github.com/lilhale/sitestore/pkg/storage"
)

// Server holds references to the stores, router, etc.
type Server struct {
	router   *mux.Router
	store    *storage.Store
	sessions *auth.Manager
}

// NewServer creates a new instance of Server over the given key-value store.
func NewServer(kvStore kv.Store, tokenSecret []byte, storeOptions ...storage.StoreOption) (*Server, error) {
	sessions, err := auth.NewManager(kvStore, tokenSecret)
	if err != nil {
		return nil, err
	}

	s := &Server{
		router:   mux.NewRouter(),
		store:    storage.NewStore(kvStore, storeOptions...),
		sessions: sessions,
	}

	handler := api.NewHandler(s.store, s.sessions)
	handler.RegisterRoutes(s.router)

	// Use the logging middleware for all routes
	s.router.Use(requestLoggerMiddleware)

	// Customize NotFoundHandler to log 404s
	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("WARN: No route found for %s %s", r.Method, r.URL.Path)
		http.NotFound(w, r)
	})

	return s, nil
}

// requestLoggerMiddleware logs the method, URL path, and duration for each request.
func requestLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		elapsed := time.Since(start)
		log.Printf("INFO: Request %s %s took %s", r.Method, r.URL.Path, elapsed)
	})
}

// InitStore hydrates or seeds the content document.
func (s *Server) InitStore() {
	if _, err := s.store.Initialize(); err != nil {
		log.Printf("WARN: Store initialized with warning: %v", err)
	} else {
		log.Printf("INFO: Store initialized")
	}
}

// Store exposes the content store.
func (s *Server) Store() *storage.Store {
	return s.store
}

// Sessions exposes the session manager.
func (s *Server) Sessions() *auth.Manager {
	return s.sessions
}

// Router exposes the internal mux.Router.
func (s *Server) Router() http.Handler {
	return s.router
}
