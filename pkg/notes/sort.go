// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package notes

import (
	"sort"

	"github.com/parasautohuolto/directory-service/internal/types"
)

// SortNotes orders notes pinned-first, then newest-first. The sort is stable
// so equal notes keep their relative order.
func SortNotes(notes []*types.Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		if notes[i].IsPinned != notes[j].IsPinned {
			return notes[i].IsPinned
		}
		return notes[i].CreatedAt.After(notes[j].CreatedAt)
	})
}
