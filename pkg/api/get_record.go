package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lilhale/sitestore/pkg/domain"
)

// HandleGetRecord handles GET requests to retrieve a specific record by ID
func (h *Handler) HandleGetRecord(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	collName := vars["coll"]
	recordID := vars["id"]

	log.Printf("INFO: handleGetRecord called for collection '%s', record '%s'", collName, recordID)

	record, err := h.store.GetRecord(collName, recordID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			log.Printf("INFO: Record '%s' not found in collection '%s'", recordID, collName)
			WriteJSONError(w, http.StatusNotFound, err.Error())
			return
		}
		log.Printf("ERROR: Get failed for record '%s' in collection '%s': %v", recordID, collName, err)
		WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record)
}
