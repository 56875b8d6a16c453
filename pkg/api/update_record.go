package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lilhale/sitestore/pkg/domain"
)

// HandleUpdateRecord handles PATCH requests to partially update a record
func (h *Handler) HandleUpdateRecord(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	collName := vars["coll"]
	recordID := vars["id"]

	log.Printf("INFO: handleUpdateRecord called for collection '%s', record '%s'", collName, recordID)

	var fields domain.Record
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		log.Printf("ERROR: Decoding body failed: %v", err)
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	record, err := h.store.UpdateRecord(collName, recordID, fields)
	if err != nil && !domain.IsPersistenceWarning(err) {
		if errors.Is(err, domain.ErrNotFound) {
			log.Printf("INFO: Record '%s' not found in collection '%s'", recordID, collName)
			WriteJSONError(w, http.StatusNotFound, err.Error())
			return
		}
		log.Printf("ERROR: Update failed for record '%s' in collection '%s': %v", recordID, collName, err)
		WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err != nil {
		log.Printf("WARN: Record '%s' updated in '%s' but not persisted: %v", recordID, collName, err)
	}

	log.Printf("INFO: Updated record '%s' in collection '%s'", recordID, collName)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record)
}
