package main

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/DarshanRT1/Hotel-Booking/internal/domain"
	"github.com/go-chi/chi"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// objectIDParam reads an id from the path. A malformed id cannot name a
// stored record, so it is reported as not found.
func objectIDParam(r *http.Request, name string) (primitive.ObjectID, error) {
	raw := chi.URLParam(r, name)

	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%s %q: %w", name, raw, domain.ErrNotFound)
	}

	return id, nil
}

func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

func limitQuery(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, domain.NewValidationError("limit", "limit must be a non-negative integer")
	}

	return limit, nil
}
