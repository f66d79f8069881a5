// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package directory

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/parasautohuolto/directory-service/internal/storage"
	"github.com/parasautohuolto/directory-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package directory -destination ./mock_directory.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package directory -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package directory -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package directory -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func makePlaces(start, count int) []*types.Place {
	places := make([]*types.Place, 0, count)
	for i := start; i < start+count; i++ {
		places = append(places, &types.Place{
			CID:    fmt.Sprintf("cid-%06d", i),
			Title:  fmt.Sprintf("Huolto %d", i),
			Region: "Uusimaa",
		})
	}
	return places
}

func newTestService(t *testing.T) (*Service, *MockStorageInterface, *MockAuthorizerInterface, *MockTracingInterface, *MockLoggerInterface) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStorage := NewMockStorageInterface(ctrl)
	mockAuthz := NewMockAuthorizerInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	s := NewService(mockStorage, mockAuthz, 1000, mockTracer, mockMonitor, mockLogger)
	return s, mockStorage, mockAuthz, mockTracer, mockLogger
}

func TestService_SearchLoadsFullDirectory(t *testing.T) {
	s, mockStorage, _, mockTracer, _ := newTestService(t)

	mockTracer.EXPECT().Start(gomock.Any(), "directory.Service.Search").Return(context.Background(), trace.SpanFromContext(context.Background()))

	// 2500 rows come back as pages of 1000, 1000 and 500; the short page
	// ends the sequence.
	mockStorage.EXPECT().ListPlacesPage(gomock.Any(), uint64(0), uint64(1000)).Return(makePlaces(0, 1000), nil)
	mockStorage.EXPECT().ListPlacesPage(gomock.Any(), uint64(1000), uint64(1000)).Return(makePlaces(1000, 1000), nil)
	mockStorage.EXPECT().ListPlacesPage(gomock.Any(), uint64(2000), uint64(1000)).Return(makePlaces(2000, 500), nil)

	result, err := s.Search(context.Background(), "", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.TotalCount != 2500 {
		t.Errorf("expected total count 2500, got %d", result.TotalCount)
	}
	if len(result.Places) != maxSearchResults {
		t.Errorf("expected %d places in the response, got %d", maxSearchResults, len(result.Places))
	}
	if result.Stats.Count != 2500 {
		t.Errorf("expected stats over the full set, got count %d", result.Stats.Count)
	}
}

func TestService_SearchLoadsOnce(t *testing.T) {
	s, mockStorage, _, mockTracer, _ := newTestService(t)

	mockTracer.EXPECT().Start(gomock.Any(), "directory.Service.Search").Return(context.Background(), trace.SpanFromContext(context.Background())).Times(2)
	mockStorage.EXPECT().ListPlacesPage(gomock.Any(), uint64(0), uint64(1000)).Return(makePlaces(0, 10), nil).Times(1)

	for i := 0; i < 2; i++ {
		if _, err := s.Search(context.Background(), "", "", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
}

func TestService_SearchServesPartialLoad(t *testing.T) {
	s, mockStorage, _, mockTracer, mockLogger := newTestService(t)

	dbErr := errors.New("db error")

	mockTracer.EXPECT().Start(gomock.Any(), "directory.Service.Search").Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockStorage.EXPECT().ListPlacesPage(gomock.Any(), uint64(0), uint64(1000)).Return(makePlaces(0, 1000), nil)
	mockStorage.EXPECT().ListPlacesPage(gomock.Any(), uint64(1000), uint64(1000)).Return(nil, dbErr)
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())

	result, err := s.Search(context.Background(), "", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.TotalCount != 1000 {
		t.Errorf("expected the partially loaded 1000 places, got %d", result.TotalCount)
	}
}

func TestService_SearchFailsWhenNothingLoads(t *testing.T) {
	s, mockStorage, _, mockTracer, mockLogger := newTestService(t)

	dbErr := errors.New("db error")

	mockTracer.EXPECT().Start(gomock.Any(), "directory.Service.Search").Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockStorage.EXPECT().ListPlacesPage(gomock.Any(), uint64(0), uint64(1000)).Return(nil, dbErr)
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())

	_, err := s.Search(context.Background(), "", "", "")
	if !errors.Is(err, dbErr) {
		t.Errorf("expected error %v, got %v", dbErr, err)
	}
}

func TestService_GetPlace(t *testing.T) {
	s, mockStorage, _, mockTracer, _ := newTestService(t)

	mockTracer.EXPECT().Start(gomock.Any(), "directory.Service.GetPlace").Return(context.Background(), trace.SpanFromContext(context.Background())).Times(2)
	mockStorage.EXPECT().ListPlacesPage(gomock.Any(), uint64(0), uint64(1000)).Return(makePlaces(0, 10), nil)

	place, err := s.GetPlace(context.Background(), "cid-000003")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if place.CID != "cid-000003" {
		t.Errorf("expected cid-000003, got %s", place.CID)
	}

	_, err = s.GetPlace(context.Background(), "cid-999999")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Refresh(t *testing.T) {
	admin := &types.Principal{ID: "admin-id", Role: types.RoleAdmin}
	viewer := &types.Principal{ID: "viewer-id", Role: types.RoleViewer}
	denied := errors.New("access denied")

	t.Run("admin refresh replaces the snapshot", func(t *testing.T) {
		s, mockStorage, mockAuthz, mockTracer, mockLogger := newTestService(t)

		mockTracer.EXPECT().Start(gomock.Any(), "directory.Service.Refresh").Return(context.Background(), trace.SpanFromContext(context.Background()))
		mockAuthz.EXPECT().CheckAdmin(gomock.Any(), admin, gomock.Any()).Return(nil)
		mockStorage.EXPECT().ListPlacesPage(gomock.Any(), uint64(0), uint64(1000)).Return(makePlaces(0, 42), nil)
		mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any())

		count, err := s.Refresh(context.Background(), admin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 42 {
			t.Errorf("expected 42 places, got %d", count)
		}
	})

	t.Run("non-admin is denied", func(t *testing.T) {
		s, _, mockAuthz, mockTracer, _ := newTestService(t)

		mockTracer.EXPECT().Start(gomock.Any(), "directory.Service.Refresh").Return(context.Background(), trace.SpanFromContext(context.Background()))
		mockAuthz.EXPECT().CheckAdmin(gomock.Any(), viewer, gomock.Any()).Return(denied)

		_, err := s.Refresh(context.Background(), viewer)
		if !errors.Is(err, denied) {
			t.Errorf("expected error %v, got %v", denied, err)
		}
	})
}
