// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package identities

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
	mux.Get("/api/v0/me", a.me)
	mux.Get("/api/v0/identities", a.list)
}

func (a *API) me(w http.ResponseWriter, r *http.Request) {
	principal, ok := authentication.PrincipalFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "unauthenticated"})
		return
	}

	identity, err := a.service.Get(r.Context(), principal.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]any{"error": "identity not found"})
			return
		}
		a.logger.Errorf("failed to fetch identity %s: %v", principal.ID, err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "failed to fetch identity"})
		return
	}

	writeJSON(w, http.StatusOK, identity)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	principal, ok := authentication.PrincipalFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "unauthenticated"})
		return
	}

	identities, err := a.service.List(r.Context(), principal)
	if err != nil {
		if errors.Is(err, authorization.ErrDenied) {
			writeJSON(w, http.StatusForbidden, map[string]any{"error": "admin role required"})
			return
		}
		a.logger.Errorf("failed to list identities: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "failed to list identities"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"identities": identities})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
