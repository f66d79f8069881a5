// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/parasautohuolto/directory-service/internal/logging"
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
	mux.Post("/api/v0/auth/login", a.login)
	mux.Get("/api/v0/auth/callback", a.callback)
}

// RegisterProtectedEndpoints registers endpoints requiring a session.
func (a *API) RegisterProtectedEndpoints(mux chi.Router) {
	mux.Post("/api/v0/auth/logout", a.logout)
}

type loginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := a.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "a valid email is required"})
		return
	}

	if err := a.service.StartSignIn(r.Context(), req.Email); err != nil {
		a.logger.Errorf("failed to start sign-in: %v", err)
		writeJSON(w, http.StatusBadGateway, map[string]any{"error": "failed to send sign-in link"})
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]any{"status": "sent"})
}

func (a *API) callback(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "token is required"})
		return
	}

	session, identity, err := a.service.CompleteSignIn(r.Context(), token)
	if err != nil {
		if errors.Is(err, ErrInvalidLoginToken) {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "invalid or expired sign-in link"})
			return
		}
		a.logger.Errorf("failed to complete sign-in: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "sign-in failed"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"session_token": session,
		"identity":      identity,
	})
}

func (a *API) logout(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "unauthenticated"})
		return
	}

	meta, ok := SessionMetaFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "unauthenticated"})
		return
	}

	if err := a.service.SignOut(r.Context(), principal, meta.JTI, meta.Expiry); err != nil {
		a.logger.Errorf("failed to sign out: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "sign-out failed"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
