// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package notes

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/parasautohuolto/directory-service/internal/storage"
	"github.com/parasautohuolto/directory-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package notes -destination ./mock_notes.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package notes -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package notes -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package notes -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func newTestService(t *testing.T) (*Service, *MockStorageInterface, *MockAuthorizerInterface, *MockTracingInterface) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStorage := NewMockStorageInterface(ctrl)
	mockAuthz := NewMockAuthorizerInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	s := NewService(mockStorage, mockAuthz, mockTracer, mockMonitor, mockLogger)
	return s, mockStorage, mockAuthz, mockTracer
}

func expectSpan(mockTracer *MockTracingInterface, name string) {
	mockTracer.EXPECT().Start(gomock.Any(), name).Return(context.Background(), trace.SpanFromContext(context.Background()))
}

func TestService_Add(t *testing.T) {
	editor := &types.Principal{ID: "editor-id", Role: types.RoleEditor}

	testCases := []struct {
		name        string
		content     string
		noteType    string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name:     "content is trimmed and type defaults to general",
			content:  "  soitettu, ei vastausta  ",
			noteType: "",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetPlace(gomock.Any(), "cid-1").Return(&types.Place{CID: "cid-1"}, nil)
				mockStorage.EXPECT().CreateNote(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, note *types.Note) (*types.Note, error) {
						if note.Content != "soitettu, ei vastausta" {
							t.Errorf("expected trimmed content, got %q", note.Content)
						}
						if note.NoteType != types.NoteTypeGeneral {
							t.Errorf("expected default note type, got %s", note.NoteType)
						}
						if note.UserID != "editor-id" {
							t.Errorf("expected the caller as author, got %s", note.UserID)
						}
						return note, nil
					},
				)
			},
		},
		{
			name:        "blank content is rejected without storage access",
			content:     "   \n\t ",
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: ErrEmptyContent,
		},
		{
			name:    "unknown place is rejected",
			content: "hyvä paikka",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetPlace(gomock.Any(), "cid-1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, _, mockTracer := newTestService(t)

			expectSpan(mockTracer, "notes.Service.Add")
			tc.setupMocks(mockStorage)

			note, err := s.Add(context.Background(), editor, "cid-1", tc.content, tc.noteType)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if note.ID == "" {
				t.Error("expected a generated note ID")
			}
		})
	}
}

func TestService_MutationAuthorization(t *testing.T) {
	author := &types.Principal{ID: "author-id", Role: types.RoleViewer}
	other := &types.Principal{ID: "other-id", Role: types.RoleViewer}
	denied := errors.New("access denied")
	note := &types.Note{ID: "note-1", CID: "cid-1", UserID: "author-id", Content: "vanha", IsPinned: false}

	t.Run("author updates own note", func(t *testing.T) {
		s, mockStorage, mockAuthz, mockTracer := newTestService(t)

		expectSpan(mockTracer, "notes.Service.Update")
		mockStorage.EXPECT().GetNote(gomock.Any(), "note-1").Return(note, nil)
		mockAuthz.EXPECT().CheckNoteAccess(gomock.Any(), author, "author-id").Return(nil)
		mockStorage.EXPECT().UpdateNote(gomock.Any(), "note-1", "uusi sisältö", nil).Return(note, nil)

		if _, err := s.Update(context.Background(), author, "note-1", "uusi sisältö", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("non-author update is denied", func(t *testing.T) {
		s, mockStorage, mockAuthz, mockTracer := newTestService(t)

		expectSpan(mockTracer, "notes.Service.Update")
		mockStorage.EXPECT().GetNote(gomock.Any(), "note-1").Return(note, nil)
		mockAuthz.EXPECT().CheckNoteAccess(gomock.Any(), other, "author-id").Return(denied)

		if _, err := s.Update(context.Background(), other, "note-1", "uusi", nil); !errors.Is(err, denied) {
			t.Errorf("expected error %v, got %v", denied, err)
		}
	})

	t.Run("toggle pin flips the current flag", func(t *testing.T) {
		s, mockStorage, mockAuthz, mockTracer := newTestService(t)

		pinned := &types.Note{ID: "note-1", UserID: "author-id", IsPinned: true}

		expectSpan(mockTracer, "notes.Service.TogglePin")
		mockStorage.EXPECT().GetNote(gomock.Any(), "note-1").Return(pinned, nil)
		mockAuthz.EXPECT().CheckNoteAccess(gomock.Any(), author, "author-id").Return(nil)
		mockStorage.EXPECT().SetNotePinned(gomock.Any(), "note-1", false).Return(&types.Note{ID: "note-1", IsPinned: false}, nil)

		result, err := s.TogglePin(context.Background(), author, "note-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsPinned {
			t.Error("expected the pin to be cleared")
		}
	})

	t.Run("non-author delete is denied", func(t *testing.T) {
		s, mockStorage, mockAuthz, mockTracer := newTestService(t)

		expectSpan(mockTracer, "notes.Service.Delete")
		mockStorage.EXPECT().GetNote(gomock.Any(), "note-1").Return(note, nil)
		mockAuthz.EXPECT().CheckNoteAccess(gomock.Any(), other, "author-id").Return(denied)

		if err := s.Delete(context.Background(), other, "note-1"); !errors.Is(err, denied) {
			t.Errorf("expected error %v, got %v", denied, err)
		}
	})
}

func TestSortNotes(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	notes := []*types.Note{
		{ID: "old", CreatedAt: base},
		{ID: "newer", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "pinned-old", CreatedAt: base.Add(-time.Hour), IsPinned: true},
		{ID: "newest", CreatedAt: base.Add(3 * time.Hour)},
		{ID: "pinned-new", CreatedAt: base.Add(time.Hour), IsPinned: true},
	}

	SortNotes(notes)

	expected := []string{"pinned-new", "pinned-old", "newest", "newer", "old"}
	for i, id := range expected {
		if notes[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, notes[i].ID)
		}
	}

	// Pinning the newest unpinned note moves it to the front.
	for _, note := range notes {
		if note.ID == "newest" {
			note.IsPinned = true
		}
	}
	SortNotes(notes)
	if notes[0].ID != "newest" {
		t.Errorf("expected newest pinned note first, got %s", notes[0].ID)
	}
}
