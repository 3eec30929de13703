// Package mocks provides testify mocks for the adapter interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gooze.dev/pkg/mockprep/internal/adapter"
	m "gooze.dev/pkg/mockprep/internal/model"
)

var (
	_ adapter.EditorAdapter = (*MockEditorAdapter)(nil)
	_ adapter.JournalStore  = (*MockJournalStore)(nil)
	_ adapter.WatchAdapter  = (*MockWatchAdapter)(nil)
)

// MockEditorAdapter is a mock implementation of adapter.EditorAdapter.
type MockEditorAdapter struct {
	mock.Mock
}

// Open provides a mock function.
func (_m *MockEditorAdapter) Open(ctx context.Context, path m.Path) error {
	ret := _m.Called(ctx, path)
	return ret.Error(0)
}

// MockJournalStore is a mock implementation of adapter.JournalStore.
type MockJournalStore struct {
	mock.Mock
}

// Push provides a mock function.
func (_m *MockJournalStore) Push(ctx context.Context, entry m.UndoEntry) error {
	ret := _m.Called(ctx, entry)
	return ret.Error(0)
}

// Last provides a mock function.
func (_m *MockJournalStore) Last(ctx context.Context, path m.Path) (m.UndoEntry, error) {
	ret := _m.Called(ctx, path)
	return ret.Get(0).(m.UndoEntry), ret.Error(1)
}

// Pop provides a mock function.
func (_m *MockJournalStore) Pop(ctx context.Context, path m.Path) (m.UndoEntry, error) {
	ret := _m.Called(ctx, path)
	return ret.Get(0).(m.UndoEntry), ret.Error(1)
}

// Depth provides a mock function.
func (_m *MockJournalStore) Depth(ctx context.Context, path m.Path) (int, error) {
	ret := _m.Called(ctx, path)
	return ret.Int(0), ret.Error(1)
}

// MockWatchAdapter is a mock implementation of adapter.WatchAdapter.
type MockWatchAdapter struct {
	mock.Mock
}

// Watch provides a mock function. The first two return values must be
// receive-only channels.
func (_m *MockWatchAdapter) Watch(ctx context.Context, root m.Path) (<-chan m.Path, <-chan error, error) {
	ret := _m.Called(ctx, root)

	var paths <-chan m.Path
	if v := ret.Get(0); v != nil {
		paths = v.(<-chan m.Path)
	}

	var errs <-chan error
	if v := ret.Get(1); v != nil {
		errs = v.(<-chan error)
	}

	return paths, errs, ret.Error(2)
}
