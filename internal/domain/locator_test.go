package domain_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/mockprep/internal/adapter"
	"gooze.dev/pkg/mockprep/internal/domain"
	m "gooze.dev/pkg/mockprep/internal/model"
)

func TestClassLocator(t *testing.T) {
	ctx := context.Background()

	t.Run("first top-level class", func(t *testing.T) {
		ui := newQuietUI()
		locator := domain.NewClassLocator(adapter.NewLocalJavaFileAdapter(), ui)

		doc := domain.NewDocument("A.java", "package a;\n\nclass A { public void a() {} }\n\nclass B {}\n")
		class, err := locator.Locate(ctx, doc)
		require.NoError(t, err)
		require.NotNil(t, class)
		assert.Equal(t, "A", class.Name)
		assert.Equal(t, m.KindClass, class.Kind)

		for _, n := range ui.Notifications() {
			assert.Equal(t, m.LevelDebug, n.Level)
		}
		assert.NotEmpty(t, ui.Notifications())
	})

	t.Run("not a Java file", func(t *testing.T) {
		locator := domain.NewClassLocator(adapter.NewLocalJavaFileAdapter(), nil)

		class, err := locator.Locate(ctx, domain.NewDocument("README.md", "# title\n"))
		require.NoError(t, err)
		assert.Nil(t, class)
	})

	t.Run("no type declared", func(t *testing.T) {
		locator := domain.NewClassLocator(adapter.NewLocalJavaFileAdapter(), nil)

		class, err := locator.Locate(ctx, domain.NewDocument("package-info.java", "package a;\n"))
		require.NoError(t, err)
		assert.Nil(t, class)
	})
}
