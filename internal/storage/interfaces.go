// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/parasautohuolto/directory-service/internal/types"
)

type StorageInterface interface {
	// Identities
	GetIdentity(ctx context.Context, id string) (*types.Identity, error)
	GetIdentityByEmail(ctx context.Context, email string) (*types.Identity, error)
	CountIdentities(ctx context.Context) (int64, error)
	CreateIdentity(ctx context.Context, identity *types.Identity) (*types.Identity, error)
	ListIdentities(ctx context.Context) ([]*types.Identity, error)

	// Invitations
	CreateInvitation(ctx context.Context, invitation *types.Invitation) (*types.Invitation, error)
	GetInvitationByToken(ctx context.Context, token string) (*types.Invitation, error)
	GetPendingInvitationByEmail(ctx context.Context, email string, now time.Time) (*types.Invitation, error)
	ListInvitations(ctx context.Context) ([]*types.Invitation, error)
	ClaimInvitation(ctx context.Context, id string, usedAt time.Time) error

	// Places
	ListPlacesPage(ctx context.Context, offset, limit uint64) ([]*types.Place, error)
	GetPlace(ctx context.Context, cid string) (*types.Place, error)

	// Notes
	CreateNote(ctx context.Context, note *types.Note) (*types.Note, error)
	GetNote(ctx context.Context, id string) (*types.Note, error)
	ListNotesByPlace(ctx context.Context, cid string) ([]*types.Note, error)
	CountNotesByPlace(ctx context.Context, cid string) (int64, error)
	UpdateNote(ctx context.Context, id, content string, noteType *string) (*types.Note, error)
	SetNotePinned(ctx context.Context, id string, pinned bool) (*types.Note, error)
	DeleteNote(ctx context.Context, id string) error
}
