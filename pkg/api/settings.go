package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/lilhale/sitestore/pkg/domain"
)

// HandleGetSettings handles GET requests for the settings singleton
func (h *Handler) HandleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings := h.store.GetSettings()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(settings)
}

// HandleUpdateSettings handles PATCH requests to merge a partial settings
// update into the singleton
func (h *Handler) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	log.Printf("INFO: handleUpdateSettings called")

	var patch domain.SettingsPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Printf("ERROR: Decoding body failed: %v", err)
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	settings, err := h.store.UpdateSettings(patch)
	if err != nil && !domain.IsPersistenceWarning(err) {
		log.Printf("ERROR: Settings update failed: %v", err)
		WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err != nil {
		log.Printf("WARN: Settings updated but not persisted: %v", err)
	}

	log.Printf("INFO: Settings updated")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(settings)
}
