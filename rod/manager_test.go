//go:build integration

package rod_test

import (
	"testing"

	"github.com/fwojciec/goose/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowserManager(t *testing.T) {
	t.Parallel()

	t.Run("relaunches once the page budget is spent", func(t *testing.T) {
		t.Parallel()

		bm, err := rod.NewBrowserManager(rod.WithMaxPages(2))
		require.NoError(t, err)
		defer bm.Close()

		first := bm.Browser()
		firstPID := bm.LauncherPID()
		bm.IncrementPageCount()
		assert.Same(t, first, bm.Browser())

		bm.IncrementPageCount()
		second := bm.Browser()

		assert.NotSame(t, first, second)
		assert.NotEqual(t, firstPID, bm.LauncherPID())
	})

	t.Run("forgets the launcher on close", func(t *testing.T) {
		t.Parallel()

		bm, err := rod.NewBrowserManager()
		require.NoError(t, err)
		require.NotZero(t, bm.LauncherPID())

		require.NoError(t, bm.Close())
		require.NoError(t, bm.Close())

		assert.Zero(t, bm.LauncherPID())
	})
}
