// Package mocks provides testify mocks for the controller interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gooze.dev/pkg/mockprep/internal/controller"
	m "gooze.dev/pkg/mockprep/internal/model"
)

// MockUI is a mock implementation of controller.UI.
type MockUI struct {
	mock.Mock
}

var _ controller.UI = (*MockUI)(nil)

// Notify records the notification.
func (_m *MockUI) Notify(ctx context.Context, n m.Notification) {
	_m.Called(ctx, n)
}

// DisplayDiff records the diff.
func (_m *MockUI) DisplayDiff(ctx context.Context, path m.Path, diff string) {
	_m.Called(ctx, path, diff)
}

// DisplayInventory records the entries.
func (_m *MockUI) DisplayInventory(ctx context.Context, entries []m.InventoryEntry, format controller.OutputFormat) error {
	ret := _m.Called(ctx, entries, format)
	return ret.Error(0)
}

// Notifications returns every notification passed to Notify.
func (_m *MockUI) Notifications() []m.Notification {
	var out []m.Notification

	for _, call := range _m.Calls {
		if call.Method == "Notify" {
			out = append(out, call.Arguments.Get(1).(m.Notification))
		}
	}

	return out
}

// Level matches a notification of the given level.
func Level(level m.NotificationLevel) interface{} {
	return mock.MatchedBy(func(n m.Notification) bool { return n.Level == level })
}
