// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package notes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/parasautohuolto/directory-service/internal/logging"
	"github.com/parasautohuolto/directory-service/internal/monitoring"
	"github.com/parasautohuolto/directory-service/internal/tracing"
	"github.com/parasautohuolto/directory-service/internal/types"
)

// ErrEmptyContent rejects notes whose content is blank after trimming.
var ErrEmptyContent = errors.New("note content must not be empty")

type Service struct {
	storage StorageInterface
	authz   AuthorizerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authz AuthorizerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		authz:   authz,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) ListForPlace(ctx context.Context, cid string) ([]*types.Note, error) {
	ctx, span := s.tracer.Start(ctx, "notes.Service.ListForPlace")
	defer span.End()

	notes, err := s.storage.ListNotesByPlace(ctx, cid)
	if err != nil {
		return nil, err
	}

	SortNotes(notes)
	return notes, nil
}

func (s *Service) CountForPlace(ctx context.Context, cid string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "notes.Service.CountForPlace")
	defer span.End()

	return s.storage.CountNotesByPlace(ctx, cid)
}

// Add creates a note on a place. Any authenticated user may add notes.
func (s *Service) Add(ctx context.Context, principal *types.Principal, cid, content, noteType string) (*types.Note, error) {
	ctx, span := s.tracer.Start(ctx, "notes.Service.Add")
	defer span.End()

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	if noteType == "" {
		noteType = types.NoteTypeGeneral
	}

	if _, err := s.storage.GetPlace(ctx, cid); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate note ID: %w", err)
	}

	note, err := s.storage.CreateNote(ctx, &types.Note{
		ID:       id.String(),
		CID:      cid,
		UserID:   principal.ID,
		Content:  content,
		NoteType: noteType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return note, nil
}

// Update rewrites a note's content and optionally its type. Only the author
// or an admin may update a note.
func (s *Service) Update(ctx context.Context, principal *types.Principal, id, content string, noteType *string) (*types.Note, error) {
	ctx, span := s.tracer.Start(ctx, "notes.Service.Update")
	defer span.End()

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	note, err := s.storage.GetNote(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.authz.CheckNoteAccess(ctx, principal, note.UserID); err != nil {
		return nil, err
	}

	return s.storage.UpdateNote(ctx, id, content, noteType)
}

// TogglePin flips a note's pinned flag. Only the author or an admin may pin.
func (s *Service) TogglePin(ctx context.Context, principal *types.Principal, id string) (*types.Note, error) {
	ctx, span := s.tracer.Start(ctx, "notes.Service.TogglePin")
	defer span.End()

	note, err := s.storage.GetNote(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.authz.CheckNoteAccess(ctx, principal, note.UserID); err != nil {
		return nil, err
	}

	return s.storage.SetNotePinned(ctx, id, !note.IsPinned)
}

// Delete removes a note. Only the author or an admin may delete.
func (s *Service) Delete(ctx context.Context, principal *types.Principal, id string) error {
	ctx, span := s.tracer.Start(ctx, "notes.Service.Delete")
	defer span.End()

	note, err := s.storage.GetNote(ctx, id)
	if err != nil {
		return err
	}

	if err := s.authz.CheckNoteAccess(ctx, principal, note.UserID); err != nil {
		return err
	}

	return s.storage.DeleteNote(ctx, id)
}
