// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package directory

import (
	"context"
	"sync"

	"github.com/parasautohuolto/directory-service/internal/authorization"
	"github.com/parasautohuolto/directory-service/internal/logging"
	"github.com/parasautohuolto/directory-service/internal/monitoring"
	"github.com/parasautohuolto/directory-service/internal/storage"
	"github.com/parasautohuolto/directory-service/internal/tracing"
	"github.com/parasautohuolto/directory-service/internal/types"
)

// maxSearchResults caps the places returned per search response. Counts and
// stats are still computed over the full filtered set.
const maxSearchResults = 100

type Service struct {
	storage  StorageInterface
	authz    AuthorizerInterface
	pageSize uint64

	mu     sync.RWMutex
	places []*types.Place
	byCID  map[string]*types.Place
	loaded bool

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authz AuthorizerInterface,
	pageSize uint64,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		authz:    authz,
		pageSize: pageSize,
		byCID:    make(map[string]*types.Place),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// Search filters the directory snapshot and aggregates the result. The
// snapshot is loaded on first use.
func (s *Service) Search(ctx context.Context, query, region, grade string) (*SearchResult, error) {
	ctx, span := s.tracer.Start(ctx, "directory.Service.Search")
	defer span.End()

	places, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	filtered := Filter(places, query, region, grade)

	capped := filtered
	if len(capped) > maxSearchResults {
		capped = capped[:maxSearchResults]
	}

	return &SearchResult{
		Places:     capped,
		TotalCount: len(filtered),
		Stats:      ComputeStats(filtered),
	}, nil
}

func (s *Service) Regions(ctx context.Context) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "directory.Service.Regions")
	defer span.End()

	places, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return DistinctRegions(places), nil
}

func (s *Service) GetPlace(ctx context.Context, cid string) (*types.Place, error) {
	ctx, span := s.tracer.Start(ctx, "directory.Service.GetPlace")
	defer span.End()

	if _, err := s.snapshot(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	place, ok := s.byCID[cid]
	s.mu.RUnlock()
	if !ok {
		return nil, storage.ErrNotFound
	}

	return place, nil
}

// Refresh reloads the snapshot from storage and returns the new place count.
func (s *Service) Refresh(ctx context.Context, principal *types.Principal) (int, error) {
	ctx, span := s.tracer.Start(ctx, "directory.Service.Refresh")
	defer span.End()

	if err := s.authz.CheckAdmin(ctx, principal, authorization.PolicyDirectoryRefresh); err != nil {
		return 0, err
	}

	count, err := s.reload(ctx)
	if err != nil {
		return count, err
	}

	s.logger.Infof("directory snapshot refreshed, %d places", count)
	return count, nil
}

// snapshot returns the current place list, loading it on first call. Readers
// share the slice; it is replaced wholesale and never mutated in place.
func (s *Service) snapshot(ctx context.Context) ([]*types.Place, error) {
	s.mu.RLock()
	if s.loaded {
		places := s.places
		s.mu.RUnlock()
		return places, nil
	}
	s.mu.RUnlock()

	if _, err := s.reload(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	places := s.places
	s.mu.RUnlock()
	return places, nil
}

func (s *Service) reload(ctx context.Context) (int, error) {
	places, err := s.loadAll(ctx)
	if err != nil {
		// Serve whatever was loaded before the failure rather than
		// dropping the directory entirely.
		s.logger.Errorf("directory load halted after %d places: %v", len(places), err)
		if len(places) == 0 {
			return 0, err
		}
	}

	byCID := make(map[string]*types.Place, len(places))
	for _, place := range places {
		byCID[place.CID] = place
	}

	s.mu.Lock()
	s.places = places
	s.byCID = byCID
	s.loaded = true
	s.mu.Unlock()

	return len(places), nil
}
