package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lilhale/sitestore/pkg/domain"
)

// HandleAddRecord handles POST requests to add a record to a collection
func (h *Handler) HandleAddRecord(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	collName := vars["coll"]

	log.Printf("INFO: handleAddRecord called for collection '%s'", collName)

	var fields domain.Record
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		log.Printf("ERROR: Decoding body failed: %v", err)
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	record, err := h.store.AddRecord(collName, fields)
	if err != nil && !domain.IsPersistenceWarning(err) {
		log.Printf("ERROR: Add failed for collection '%s': %v", collName, err)
		WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err != nil {
		// The record exists in memory; the write-through just failed
		log.Printf("WARN: Record added to '%s' but not persisted: %v", collName, err)
	}

	log.Printf("INFO: Added record '%s' to collection '%s'", record.ID(), collName)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(record)
}
