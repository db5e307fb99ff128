package archive

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezkam/tasks/internal/config"
	"github.com/rezkam/tasks/internal/infrastructure/archive/fs"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("none", func(t *testing.T) {
		a, closer, err := Open(ctx, config.ArchiveConfig{Type: config.ArchiveNone})
		require.NoError(t, err)
		assert.Nil(t, a)
		assert.NoError(t, closer.Close())
	})

	t.Run("filesystem", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "snapshots")

		a, closer, err := Open(ctx, config.ArchiveConfig{Type: config.ArchiveFS, FSDir: dir})
		require.NoError(t, err)
		assert.IsType(t, &fs.Store{}, a)
		assert.DirExists(t, dir)
		assert.NoError(t, closer.Close())
	})

	t.Run("unknown", func(t *testing.T) {
		_, _, err := Open(ctx, config.ArchiveConfig{Type: "s3"})
		assert.Error(t, err)
	})
}
