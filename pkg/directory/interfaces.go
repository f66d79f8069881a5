// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package directory

import (
	"context"

	"github.com/parasautohuolto/directory-service/internal/types"
)

// SearchResult is a filtered directory view. Places is capped for transport;
// TotalCount and Stats always cover the full filtered set.
type SearchResult struct {
	Places     []*types.Place `json:"places"`
	TotalCount int            `json:"total_count"`
	Stats      *types.Stats   `json:"stats"`
}

type ServiceInterface interface {
	Search(ctx context.Context, query, region, grade string) (*SearchResult, error)
	Regions(ctx context.Context) ([]string, error)
	GetPlace(ctx context.Context, cid string) (*types.Place, error)
	Refresh(ctx context.Context, principal *types.Principal) (int, error)
}

// StorageInterface is the subset of the storage layer used by this package.
type StorageInterface interface {
	ListPlacesPage(ctx context.Context, offset, limit uint64) ([]*types.Place, error)
}

type AuthorizerInterface interface {
	CheckAdmin(ctx context.Context, principal *types.Principal, policy string) error
}
