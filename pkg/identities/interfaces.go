// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package identities

import (
	"context"
	"time"

	"github.com/parasautohuolto/directory-service/internal/types"
)

type ServiceInterface interface {
	Resolve(ctx context.Context, email string) (*types.Identity, error)
	Get(ctx context.Context, id string) (*types.Identity, error)
	List(ctx context.Context, principal *types.Principal) ([]*types.Identity, error)
}

// StorageInterface is the subset of the storage layer used by this package.
type StorageInterface interface {
	GetIdentity(ctx context.Context, id string) (*types.Identity, error)
	GetIdentityByEmail(ctx context.Context, email string) (*types.Identity, error)
	CountIdentities(ctx context.Context) (int64, error)
	CreateIdentity(ctx context.Context, identity *types.Identity) (*types.Identity, error)
	ListIdentities(ctx context.Context) ([]*types.Identity, error)
	GetPendingInvitationByEmail(ctx context.Context, email string, now time.Time) (*types.Invitation, error)
	ClaimInvitation(ctx context.Context, id string, usedAt time.Time) error
}

// TxRunnerInterface runs a function inside a storage transaction.
type TxRunnerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

type AuthorizerInterface interface {
	CheckAdmin(ctx context.Context, principal *types.Principal, policy string) error
}
