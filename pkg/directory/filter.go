// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package directory

import (
	"sort"
	"strings"

	"github.com/parasautohuolto/directory-service/internal/types"
)

// Filter narrows places to those matching all given criteria. An empty
// criterion matches everything. The text query is a case-insensitive substring
// match over title, city, address and category; region and grade match
// exactly. Input order is preserved and the input slice is never mutated.
func Filter(places []*types.Place, query, region, grade string) []*types.Place {
	query = strings.ToLower(strings.TrimSpace(query))

	filtered := make([]*types.Place, 0, len(places))
	for _, place := range places {
		if query != "" && !matchesQuery(place, query) {
			continue
		}
		if region != "" && place.Region != region {
			continue
		}
		if grade != "" && place.Grade != grade {
			continue
		}
		filtered = append(filtered, place)
	}

	return filtered
}

func matchesQuery(place *types.Place, query string) bool {
	for _, field := range []string{place.Title, place.City, place.Address, place.CategoryName} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// ComputeStats aggregates a filtered view. All zeroes for an empty input.
func ComputeStats(places []*types.Place) *types.Stats {
	stats := &types.Stats{Count: len(places)}
	if len(places) == 0 {
		return stats
	}

	var trustSum, ratingSum float64
	for _, place := range places {
		trustSum += place.TrustScore
		ratingSum += place.TotalScore
		if place.Email != "" {
			stats.CountWithEmail++
		}
	}

	stats.AvgTrustScore = trustSum / float64(len(places))
	stats.AvgRating = ratingSum / float64(len(places))

	return stats
}

// DistinctRegions returns the sorted set of non-empty regions.
func DistinctRegions(places []*types.Place) []string {
	seen := make(map[string]struct{})
	regions := make([]string, 0)
	for _, place := range places {
		if place.Region == "" {
			continue
		}
		if _, ok := seen[place.Region]; ok {
			continue
		}
		seen[place.Region] = struct{}{}
		regions = append(regions, place.Region)
	}

	sort.Strings(regions)
	return regions
}
