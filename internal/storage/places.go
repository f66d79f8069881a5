// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/parasautohuolto/directory-service/internal/types"
)

var placeColumns = []string{
	"cid", "title", "category_name", "address", "city", "postal_code",
	"phone", "website", "email", "total_score", "reviews_count",
	"score_trust", "score_points", "score_amounts", "score_perf",
	"grade", "region", "rank", "ai_sentiment", "ai_topics", "ai_summary",
	"ai_sentiment_score",
}

func scanPlace(row sq.RowScanner) (*types.Place, error) {
	var p types.Place
	var topics []byte

	err := row.Scan(
		&p.CID, &p.Title, &p.CategoryName, &p.Address, &p.City, &p.PostalCode,
		&p.Phone, &p.Website, &p.Email, &p.TotalScore, &p.ReviewsCount,
		&p.TrustScore, &p.PointsScore, &p.AmountsScore, &p.PerfScore,
		&p.Grade, &p.Region, &p.Rank, &p.AISentiment, &topics, &p.AISummary,
		&p.AISentimentScore,
	)
	if err != nil {
		return nil, err
	}

	if len(topics) > 0 {
		if err := json.Unmarshal(topics, &p.AITopics); err != nil {
			return nil, fmt.Errorf("failed to decode ai_topics: %w", err)
		}
	}

	return &p, nil
}

// ListPlacesPage returns one page of the scored directory ordered by trust
// score descending. The cid tiebreak keeps the offset cursor stable when
// rows share a score.
func (s *Storage) ListPlacesPage(ctx context.Context, offset, limit uint64) ([]*types.Place, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPlacesPage")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(placeColumns...).
		From("places").
		OrderBy("score_trust DESC", "cid ASC").
		Offset(offset).
		Limit(limit).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list places: %w", err)
	}
	defer rows.Close()

	var places []*types.Place
	for rows.Next() {
		p, err := scanPlace(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan place: %w", err)
		}
		places = append(places, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return places, nil
}

func (s *Storage) GetPlace(ctx context.Context, cid string) (*types.Place, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPlace")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(placeColumns...).
		From("places").
		Where(sq.Eq{"cid": cid}).
		QueryRowContext(ctx)

	p, err := scanPlace(row)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get place: %w", err)
	}

	return p, nil
}
