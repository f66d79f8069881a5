// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package directory

import (
	"context"
	"fmt"

	"github.com/parasautohuolto/directory-service/internal/types"
)

// loadAll reads the full directory in fixed-size pages, ordered by trust score
// descending with the place ID as tiebreaker. A page failure halts the
// sequence; the places loaded up to that point are returned with the error.
func (s *Service) loadAll(ctx context.Context) ([]*types.Place, error) {
	places := make([]*types.Place, 0, s.pageSize)

	for offset := uint64(0); ; offset += s.pageSize {
		page, err := s.storage.ListPlacesPage(ctx, offset, s.pageSize)
		if err != nil {
			return places, fmt.Errorf("failed to load places page at offset %d: %w", offset, err)
		}

		places = append(places, page...)

		if uint64(len(page)) < s.pageSize {
			return places, nil
		}
	}
}
