// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"context"

	"github.com/parasautohuolto/directory-service/internal/types"
)

// ValidationResult is the public answer to an invitation token check. Unknown,
// expired and consumed tokens all collapse to Valid being false.
type ValidationResult struct {
	Valid bool   `json:"valid"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

type ServiceInterface interface {
	Create(ctx context.Context, principal *types.Principal, email, role string) (*types.Invitation, error)
	List(ctx context.Context, principal *types.Principal) ([]*types.Invitation, error)
	Validate(ctx context.Context, token string) (*ValidationResult, error)
}

// StorageInterface is the subset of the storage layer used by this package.
type StorageInterface interface {
	CreateInvitation(ctx context.Context, invitation *types.Invitation) (*types.Invitation, error)
	GetInvitationByToken(ctx context.Context, token string) (*types.Invitation, error)
	ListInvitations(ctx context.Context) ([]*types.Invitation, error)
}

type AuthorizerInterface interface {
	CheckAdmin(ctx context.Context, principal *types.Principal, policy string) error
}

type MailerInterface interface {
	Send(ctx context.Context, to, subject, body string) error
}
