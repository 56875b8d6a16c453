package api

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lilhale/sitestore/pkg/domain"
)

// HandleDeleteRecord handles DELETE requests to remove a record by ID
func (h *Handler) HandleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	collName := vars["coll"]
	recordID := vars["id"]

	log.Printf("INFO: handleDeleteRecord called for collection '%s', record '%s'", collName, recordID)

	removed, err := h.store.DeleteRecord(collName, recordID)
	if err != nil && !domain.IsPersistenceWarning(err) {
		log.Printf("ERROR: Delete failed for record '%s' in collection '%s': %v", recordID, collName, err)
		WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err != nil {
		log.Printf("WARN: Record '%s' deleted from '%s' but not persisted: %v", recordID, collName, err)
	}

	if !removed {
		log.Printf("INFO: Record '%s' not found in collection '%s'", recordID, collName)
		WriteJSONError(w, http.StatusNotFound, "record not found")
		return
	}

	log.Printf("INFO: Deleted record '%s' from collection '%s'", recordID, collName)
	w.WriteHeader(http.StatusNoContent)
}
