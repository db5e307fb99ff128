// Package archive selects the report snapshot backend named in configuration.
package archive

import (
	"context"
	"fmt"
	"io"

	"github.com/rezkam/tasks/internal/application/task"
	"github.com/rezkam/tasks/internal/config"
	"github.com/rezkam/tasks/internal/infrastructure/archive/fs"
	"github.com/rezkam/tasks/internal/infrastructure/archive/gcs"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open returns the configured archive and a closer for its resources.
// ArchiveNone yields a nil archive; snapshot operations then report
// task.ErrArchiveUnavailable.
func Open(ctx context.Context, cfg config.ArchiveConfig) (task.ReportArchive, io.Closer, error) {
	switch cfg.Type {
	case config.ArchiveNone:
		return nil, nopCloser{}, nil
	case config.ArchiveFS:
		store, err := fs.NewStore(cfg.FSDir)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open filesystem archive: %w", err)
		}
		return store, nopCloser{}, nil
	case config.ArchiveGCS:
		store, err := gcs.NewStore(ctx, cfg.GCSBucket, cfg.GCSPrefix)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open GCS archive: %w", err)
		}
		return store, store, nil
	default:
		return nil, nil, fmt.Errorf("unknown archive type: %q", cfg.Type)
	}
}
