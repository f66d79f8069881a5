// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package notes

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/parasautohuolto/directory-service/internal/authorization"
	"github.com/parasautohuolto/directory-service/internal/logging"
	"github.com/parasautohuolto/directory-service/internal/storage"
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

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/places/{cid}/notes", a.listForPlace)
	mux.Post("/api/v0/places/{cid}/notes", a.add)
	mux.Put("/api/v0/notes/{id}", a.update)
	mux.Post("/api/v0/notes/{id}/pin", a.togglePin)
	mux.Delete("/api/v0/notes/{id}", a.delete)
}

func (a *API) listForPlace(w http.ResponseWriter, r *http.Request) {
	cid := chi.URLParam(r, "cid")

	notes, err := a.service.ListForPlace(r.Context(), cid)
	if err != nil {
		a.logger.Errorf("failed to list notes for place %s: %v", cid, err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "failed to list notes"})
		return
	}

	count, err := a.service.CountForPlace(r.Context(), cid)
	if err != nil {
		a.logger.Errorf("failed to count notes for place %s: %v", cid, err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "failed to list notes"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"notes": notes, "count": count})
}

type addRequest struct {
	Content  string `json:"content" validate:"required"`
	NoteType string `json:"note_type" validate:"omitempty,oneof=general contact_attempt issue follow_up closed"`
}

func (a *API) add(w http.ResponseWriter, r *http.Request) {
	principal, ok := authentication.PrincipalFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "unauthenticated"})
		return
	}

	var req addRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := a.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "content is required and note_type must be a known type"})
		return
	}

	note, err := a.service.Add(r.Context(), principal, chi.URLParam(r, "cid"), req.Content, req.NoteType)
	if err != nil {
		a.writeServiceError(w, err, "failed to add note")
		return
	}

	writeJSON(w, http.StatusCreated, note)
}

type updateRequest struct {
	Content  string  `json:"content" validate:"required"`
	NoteType *string `json:"note_type" validate:"omitempty,oneof=general contact_attempt issue follow_up closed"`
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	principal, ok := authentication.PrincipalFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "unauthenticated"})
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := a.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "content is required and note_type must be a known type"})
		return
	}

	note, err := a.service.Update(r.Context(), principal, chi.URLParam(r, "id"), req.Content, req.NoteType)
	if err != nil {
		a.writeServiceError(w, err, "failed to update note")
		return
	}

	writeJSON(w, http.StatusOK, note)
}

func (a *API) togglePin(w http.ResponseWriter, r *http.Request) {
	principal, ok := authentication.PrincipalFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "unauthenticated"})
		return
	}

	note, err := a.service.TogglePin(r.Context(), principal, chi.URLParam(r, "id"))
	if err != nil {
		a.writeServiceError(w, err, "failed to pin note")
		return
	}

	writeJSON(w, http.StatusOK, note)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	principal, ok := authentication.PrincipalFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "unauthenticated"})
		return
	}

	if err := a.service.Delete(r.Context(), principal, chi.URLParam(r, "id")); err != nil {
		a.writeServiceError(w, err, "failed to delete note")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) writeServiceError(w http.ResponseWriter, err error, message string) {
	switch {
	case errors.Is(err, ErrEmptyContent):
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": ErrEmptyContent.Error()})
	case errors.Is(err, storage.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "not found"})
	case errors.Is(err, authorization.ErrDenied):
		writeJSON(w, http.StatusForbidden, map[string]any{"error": "only the author or an admin may modify a note"})
	default:
		a.logger.Errorf("%s: %v", message, err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": message})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
