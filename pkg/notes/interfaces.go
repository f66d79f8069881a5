// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package notes

import (
	"context"

	"github.com/parasautohuolto/directory-service/internal/types"
)

type ServiceInterface interface {
	ListForPlace(ctx context.Context, cid string) ([]*types.Note, error)
	CountForPlace(ctx context.Context, cid string) (int64, error)
	Add(ctx context.Context, principal *types.Principal, cid, content, noteType string) (*types.Note, error)
	Update(ctx context.Context, principal *types.Principal, id, content string, noteType *string) (*types.Note, error)
	TogglePin(ctx context.Context, principal *types.Principal, id string) (*types.Note, error)
	Delete(ctx context.Context, principal *types.Principal, id string) error
}

// StorageInterface is the subset of the storage layer used by this package.
type StorageInterface interface {
	GetPlace(ctx context.Context, cid string) (*types.Place, error)
	CreateNote(ctx context.Context, note *types.Note) (*types.Note, error)
	GetNote(ctx context.Context, id string) (*types.Note, error)
	ListNotesByPlace(ctx context.Context, cid string) ([]*types.Note, error)
	CountNotesByPlace(ctx context.Context, cid string) (int64, error)
	UpdateNote(ctx context.Context, id, content string, noteType *string) (*types.Note, error)
	SetNotePinned(ctx context.Context, id string, pinned bool) (*types.Note, error)
	DeleteNote(ctx context.Context, id string) error
}

type AuthorizerInterface interface {
	CheckNoteAccess(ctx context.Context, principal *types.Principal, authorID string) error
}
