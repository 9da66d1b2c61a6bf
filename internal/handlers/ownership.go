package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"wellsphere/internal/storage"
)

// fetchOwned is the single-record authorization gate: it parses the {id} path
// segment, loads the record and verifies it belongs to the requesting user.
// It writes the 404/403/500 response itself; callers proceed only when the
// second return value is true. Missing records and malformed ids both come
// back as 404 so ids belonging to other users cannot be probed apart from
// ids that never existed.
func fetchOwned[T any](
	w http.ResponseWriter,
	r *http.Request,
	resource string,
	fetch func(context.Context, int) (T, error),
	ownerID func(T) int,
) (T, bool) {
	var zero T

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusNotFound, resource+" not found")
		return zero, false
	}

	record, err := fetch(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(w, http.StatusNotFound, resource+" not found")
			return zero, false
		}
		log.Printf("handlers.fetchOwned: fetching %s %d: %v", resource, id, err)
		respondError(w, http.StatusInternalServerError, "Error fetching "+resource+": "+err.Error())
		return zero, false
	}

	if ownerID(record) != UserID(r) {
		respondError(w, http.StatusForbidden, "Access denied")
		return zero, false
	}

	return record, true
}

func pathID(r *http.Request) int {
	id, _ := strconv.Atoi(r.PathValue("id"))
	return id
}
