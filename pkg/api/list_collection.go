package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lilhale/sitestore/pkg/domain"
)

// HandleListCollection handles GET requests to list a collection with
// optional offset/limit paging
func (h *Handler) HandleListCollection(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	collName := vars["coll"]

	log.Printf("INFO: handleListCollection called for collection '%s'", collName)

	opts := domain.DefaultPageOptions()
	query := r.URL.Query()
	if v := query.Get("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil {
			WriteJSONError(w, http.StatusBadRequest, "invalid offset parameter")
			return
		}
		opts.Offset = offset
	}
	if v := query.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			WriteJSONError(w, http.StatusBadRequest, "invalid limit parameter")
			return
		}
		opts.Limit = limit
	}

	page, err := h.store.ListPage(collName, opts)
	if err != nil {
		log.Printf("ERROR: List failed for collection '%s': %v", collName, err)
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	log.Printf("INFO: Listed %d of %d records in collection '%s'", len(page.Records), page.Total, collName)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(page)
}
