// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/parasautohuolto/directory-service/internal/authorization"
	"github.com/parasautohuolto/directory-service/internal/logging"
	"github.com/parasautohuolto/directory-service/pkg/authentication"
)

type API struct {
	service  ServiceInterface
	validate *validator.Validate
	logger   logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

// RegisterEndpoints registers the pre-authentication endpoints.
func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/invitations/validate", a.validateToken)
}

// RegisterProtectedEndpoints registers endpoints requiring a session.
func (a *API) RegisterProtectedEndpoints(mux chi.Router) {
	mux.Post("/api/v0/invitations", a.create)
	mux.Get("/api/v0/invitations", a.list)
}

type createRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=editor viewer"`
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	principal, ok := authentication.PrincipalFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "unauthenticated"})
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := a.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "a valid email and a role of editor or viewer are required"})
		return
	}

	invitation, err := a.service.Create(r.Context(), principal, req.Email, req.Role)
	if err != nil {
		if errors.Is(err, authorization.ErrDenied) {
			writeJSON(w, http.StatusForbidden, map[string]any{"error": "admin role required"})
			return
		}
		if errors.Is(err, ErrInvalidRole) {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": ErrInvalidRole.Error()})
			return
		}
		a.logger.Errorf("failed to create invitation: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "failed to create invitation"})
		return
	}

	writeJSON(w, http.StatusCreated, invitation)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	principal, ok := authentication.PrincipalFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "unauthenticated"})
		return
	}

	invitations, err := a.service.List(r.Context(), principal)
	if err != nil {
		if errors.Is(err, authorization.ErrDenied) {
			writeJSON(w, http.StatusForbidden, map[string]any{"error": "admin role required"})
			return
		}
		a.logger.Errorf("failed to list invitations: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "failed to list invitations"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"invitations": invitations})
}

func (a *API) validateToken(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "token is required"})
		return
	}

	result, err := a.service.Validate(r.Context(), token)
	if err != nil {
		a.logger.Errorf("failed to validate invitation token: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "failed to validate invitation"})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
