// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/parasautohuolto/directory-service/internal/types"
)

type AuthorizerInterface interface {
	CheckAdmin(ctx context.Context, principal *types.Principal, policy string) error
	CheckNoteAccess(ctx context.Context, principal *types.Principal, authorID string) error
}
