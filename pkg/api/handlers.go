package api

import (
	"github.com/lilhale/sitestore/pkg/domain"
)

// Handler provides HTTP handlers for the content and auth API
type Handler struct {
	store    domain.ContentStore
	sessions domain.SessionStore
}

// NewHandler creates a new API handler with dependency injection
func NewHandler(store domain.ContentStore, sessions domain.SessionStore) *Handler {
	return &Handler{
		store:    store,
		sessions: sessions,
	}
}
