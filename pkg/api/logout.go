package api

import (
	"encoding/json"
	"log"
	"net/http"
)

// HandleLogout handles POST requests to end the admin session
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if user := sessionUserFrom(r); user != nil {
		log.Printf("INFO: Admin '%s' logged out", user.Username)
	}
	h.sessions.Logout()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}
