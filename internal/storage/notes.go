// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/parasautohuolto/directory-service/internal/types"
)

const noteColumns = "id, cid, user_id, content, note_type, is_pinned, created_at, updated_at"

func (s *Storage) CreateNote(ctx context.Context, note *types.Note) (*types.Note, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateNote")
	defer span.End()

	var n types.Note
	err := s.db.Statement(ctx).
		Insert("place_notes").
		Columns("id", "cid", "user_id", "content", "note_type").
		Values(note.ID, note.CID, note.UserID, note.Content, note.NoteType).
		Suffix("RETURNING " + noteColumns).
		QueryRowContext(ctx).
		Scan(&n.ID, &n.CID, &n.UserID, &n.Content, &n.NoteType, &n.IsPinned, &n.CreatedAt, &n.UpdatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert note: %w", err)
	}

	return &n, nil
}

func (s *Storage) GetNote(ctx context.Context, id string) (*types.Note, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetNote")
	defer span.End()

	var n types.Note
	err := s.db.Statement(ctx).
		Select("id", "cid", "user_id", "content", "note_type", "is_pinned", "created_at", "updated_at").
		From("place_notes").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&n.ID, &n.CID, &n.UserID, &n.Content, &n.NoteType, &n.IsPinned, &n.CreatedAt, &n.UpdatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return &n, nil
}

// ListNotesByPlace returns a place's notes with the authoring identity's
// email, pinned notes first and newest first within each group.
func (s *Storage) ListNotesByPlace(ctx context.Context, cid string) ([]*types.Note, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListNotesByPlace")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("n.id", "n.cid", "n.user_id", "i.email", "n.content", "n.note_type", "n.is_pinned", "n.created_at", "n.updated_at").
		From("place_notes n").
		Join("identities i ON n.user_id = i.id").
		Where(sq.Eq{"n.cid": cid}).
		OrderBy("n.is_pinned DESC", "n.created_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	var notes []*types.Note
	for rows.Next() {
		var n types.Note
		if err := rows.Scan(&n.ID, &n.CID, &n.UserID, &n.UserEmail, &n.Content, &n.NoteType, &n.IsPinned, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return notes, nil
}

func (s *Storage) CountNotesByPlace(ctx context.Context, cid string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountNotesByPlace")
	defer span.End()

	var count int64
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("place_notes").
		Where(sq.Eq{"cid": cid}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count notes: %w", err)
	}

	return count, nil
}

func (s *Storage) UpdateNote(ctx context.Context, id, content string, noteType *string) (*types.Note, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateNote")
	defer span.End()

	query := s.db.Statement(ctx).
		Update("place_notes").
		Set("content", content).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + noteColumns)

	if noteType != nil {
		query = query.Set("note_type", *noteType)
	}

	var n types.Note
	err := query.
		QueryRowContext(ctx).
		Scan(&n.ID, &n.CID, &n.UserID, &n.Content, &n.NoteType, &n.IsPinned, &n.CreatedAt, &n.UpdatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return &n, nil
}

func (s *Storage) SetNotePinned(ctx context.Context, id string, pinned bool) (*types.Note, error) {
	ctx, span := s.tracer.Start(ctx, "storage.SetNotePinned")
	defer span.End()

	var n types.Note
	err := s.db.Statement(ctx).
		Update("place_notes").
		Set("is_pinned", pinned).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING "+noteColumns).
		QueryRowContext(ctx).
		Scan(&n.ID, &n.CID, &n.UserID, &n.Content, &n.NoteType, &n.IsPinned, &n.CreatedAt, &n.UpdatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to set note pin state: %w", err)
	}

	return &n, nil
}

func (s *Storage) DeleteNote(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteNote")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("place_notes").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
