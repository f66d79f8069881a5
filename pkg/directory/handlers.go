// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package directory

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/parasautohuolto/directory-service/internal/authorization"
	"github.com/parasautohuolto/directory-service/internal/logging"
	"github.com/parasautohuolto/directory-service/internal/storage"
	"github.com/parasautohuolto/directory-service/pkg/authentication"
)

type API struct {
	service ServiceInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/places", a.search)
	mux.Get("/api/v0/places/regions", a.regions)
	mux.Get("/api/v0/places/{cid}", a.getPlace)
	mux.Post("/api/v0/places/refresh", a.refresh)
}

func (a *API) search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	result, err := a.service.Search(r.Context(), query.Get("q"), query.Get("region"), query.Get("grade"))
	if err != nil {
		a.logger.Errorf("failed to search places: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "failed to search places"})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (a *API) regions(w http.ResponseWriter, r *http.Request) {
	regions, err := a.service.Regions(r.Context())
	if err != nil {
		a.logger.Errorf("failed to list regions: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "failed to list regions"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"regions": regions})
}

func (a *API) getPlace(w http.ResponseWriter, r *http.Request) {
	cid := chi.URLParam(r, "cid")

	place, err := a.service.GetPlace(r.Context(), cid)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]any{"error": "place not found"})
			return
		}
		a.logger.Errorf("failed to fetch place %s: %v", cid, err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "failed to fetch place"})
		return
	}

	writeJSON(w, http.StatusOK, place)
}

func (a *API) refresh(w http.ResponseWriter, r *http.Request) {
	principal, ok := authentication.PrincipalFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "unauthenticated"})
		return
	}

	count, err := a.service.Refresh(r.Context(), principal)
	if err != nil {
		if errors.Is(err, authorization.ErrDenied) {
			writeJSON(w, http.StatusForbidden, map[string]any{"error": "admin role required"})
			return
		}
		a.logger.Errorf("failed to refresh directory: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "failed to refresh directory"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"count": count})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
