package api

import (
	"encoding/json"
	"net/http"
)

// HandleMe handles GET requests for the authenticated session user
func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user := sessionUserFrom(r)
	if user == nil {
		WriteJSONError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}
