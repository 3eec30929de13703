// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gooze.dev/pkg/mockprep/internal/domain"
	m "gooze.dev/pkg/mockprep/internal/model"
)

var _ domain.Updater = (*MockUpdater)(nil)

// MockUpdater is a mock implementation of domain.Updater.
type MockUpdater struct {
	mock.Mock
}

// Prepare provides a mock function.
func (_m *MockUpdater) Prepare(ctx context.Context, args domain.PrepareArgs) (domain.PrepareResult, error) {
	ret := _m.Called(ctx, args)
	return ret.Get(0).(domain.PrepareResult), ret.Error(1)
}

// Apply provides a mock function.
func (_m *MockUpdater) Apply(ctx context.Context, doc *domain.Document) error {
	ret := _m.Called(ctx, doc)
	return ret.Error(0)
}

// Undo provides a mock function.
func (_m *MockUpdater) Undo(ctx context.Context, path m.Path) error {
	ret := _m.Called(ctx, path)
	return ret.Error(0)
}
