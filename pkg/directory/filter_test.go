// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parasautohuolto/directory-service/internal/types"
)

func testPlaces() []*types.Place {
	return []*types.Place{
		{CID: "1", Title: "Autohuolto Virtanen", City: "Tampere", Region: "Pirkanmaa", Grade: "A", TrustScore: 9.1, TotalScore: 4.8, Email: "info@virtanen.fi"},
		{CID: "2", Title: "Korjaamo Lahtinen", City: "Helsinki", Region: "Uusimaa", Grade: "B", TrustScore: 7.4, TotalScore: 4.2},
		{CID: "3", Title: "Nopea Huolto Oy", City: "Espoo", Region: "Uusimaa", Grade: "A", TrustScore: 8.2, TotalScore: 4.5, Email: "asiakaspalvelu@nopeahuolto.fi"},
		{CID: "4", Title: "Rengasmestarit", City: "Oulu", Region: "Pohjois-Pohjanmaa", Grade: "C", TrustScore: 5.0, TotalScore: 3.9},
	}
}

func TestFilter(t *testing.T) {
	places := testPlaces()

	testCases := []struct {
		name         string
		query        string
		region       string
		grade        string
		expectedCIDs []string
	}{
		{
			name:         "no criteria returns everything in order",
			expectedCIDs: []string{"1", "2", "3", "4"},
		},
		{
			name:         "query matches title case-insensitively",
			query:        "huolto",
			expectedCIDs: []string{"1", "3"},
		},
		{
			name:         "query matches city",
			query:        "tampere",
			expectedCIDs: []string{"1"},
		},
		{
			name:         "region matches exactly",
			region:       "Uusimaa",
			expectedCIDs: []string{"2", "3"},
		},
		{
			name:         "criteria combine conjunctively",
			query:        "huolto",
			region:       "Uusimaa",
			grade:        "A",
			expectedCIDs: []string{"3"},
		},
		{
			name:         "no match yields empty result",
			query:        "venesatama",
			expectedCIDs: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			filtered := Filter(places, tc.query, tc.region, tc.grade)

			cids := make([]string, 0, len(filtered))
			for _, place := range filtered {
				cids = append(cids, place.CID)
			}

			assert.Equal(t, tc.expectedCIDs, cids)
		})
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	places := testPlaces()

	_ = Filter(places, "huolto", "", "")

	require.Len(t, places, 4)
	assert.Equal(t, "1", places[0].CID)
	assert.Equal(t, "4", places[3].CID)
}

func TestComputeStats(t *testing.T) {
	t.Run("empty input yields zeroes", func(t *testing.T) {
		stats := ComputeStats(nil)

		assert.Equal(t, 0, stats.Count)
		assert.Zero(t, stats.AvgTrustScore)
		assert.Zero(t, stats.AvgRating)
		assert.Equal(t, 0, stats.CountWithEmail)
	})

	t.Run("aggregates over the full set", func(t *testing.T) {
		stats := ComputeStats(testPlaces())

		assert.Equal(t, 4, stats.Count)
		assert.InDelta(t, (9.1+7.4+8.2+5.0)/4, stats.AvgTrustScore, 1e-9)
		assert.InDelta(t, (4.8+4.2+4.5+3.9)/4, stats.AvgRating, 1e-9)
		assert.Equal(t, 2, stats.CountWithEmail)
	})
}

func TestDistinctRegions(t *testing.T) {
	places := append(testPlaces(), &types.Place{CID: "5", Title: "Nimetön", Region: ""})

	regions := DistinctRegions(places)

	assert.Equal(t, []string{"Pirkanmaa", "Pohjois-Pohjanmaa", "Uusimaa"}, regions)
}
