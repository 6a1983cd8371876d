package helpers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureParentDir(t *testing.T) {
	t.Run("should create missing parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "a", "b", "db.sqlite")

		err := EnsureParentDir(path)

		require.NoError(t, err)
		info, err := os.Stat(filepath.Dir(path))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("should accept a bare filename", func(t *testing.T) {
		err := EnsureParentDir("db.sqlite")

		assert.NoError(t, err)
	})

	t.Run("should accept an existing directory", func(t *testing.T) {
		dir := t.TempDir()

		err := EnsureParentDir(filepath.Join(dir, "db.sqlite"))

		assert.NoError(t, err)
	})
}

func TestRetry(t *testing.T) {
	ctx := context.Background()

	t.Run("should return nil on first success", func(t *testing.T) {
		calls := 0

		err := Retry(ctx, func() error {
			calls++
			return nil
		}, 3)

		assert.NoError(t, err)
		assert.Equal(t, 1, calls, "Expected no retries after a success")
	})

	t.Run("should retry until success", func(t *testing.T) {
		calls := 0

		err := Retry(ctx, func() error {
			calls++
			if calls < 3 {
				return fmt.Errorf("attempt %d failed", calls)
			}
			return nil
		}, 5)

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("should return the last error when attempts run out", func(t *testing.T) {
		err := Retry(ctx, func() error {
			return fmt.Errorf("always failing")
		}, 2)

		assert.Error(t, err)
		assert.EqualError(t, err, "always failing")
	})

	t.Run("should stop when the context is canceled", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		calls := 0
		err := Retry(canceled, func() error {
			calls++
			return fmt.Errorf("should not run")
		}, 3)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, calls, "Expected no attempts on a canceled context")
	})
}
