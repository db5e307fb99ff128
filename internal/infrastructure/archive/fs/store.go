// Package fs stores report snapshots as JSON files in a directory.
package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/rezkam/tasks/internal/application/task"
	"github.com/rezkam/tasks/internal/domain"
)

// maxConcurrency bounds parallel file reads in List.
const maxConcurrency = 20

// Store is a filesystem-based implementation of task.ReportArchive.
type Store struct {
	baseDir string
	mu      sync.RWMutex
}

var _ task.ReportArchive = (*Store)(nil)

// NewStore creates a new filesystem store rooted at baseDir.
func NewStore(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create base directory: %w", err)
	}
	return &Store{baseDir: baseDir}, nil
}

func (s *Store) filePath(id string) string {
	return filepath.Join(s.baseDir, id+".json")
}

// Save writes the snapshot to <id>.json, replacing any previous file.
// The file is written to a temporary name first and renamed into place.
func (s *Store) Save(ctx context.Context, snapshot domain.ReportSnapshot) error {
	if snapshot.ID == "" || strings.ContainsAny(snapshot.ID, `/\`) {
		return fmt.Errorf("invalid snapshot id %q", snapshot.ID)
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.baseDir, ".snapshot-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.filePath(snapshot.ID)); err != nil {
		return fmt.Errorf("failed to move file into place: %w", err)
	}
	return nil
}

// List scans the directory for JSON files and loads them in parallel.
// Unreadable or corrupt files are logged and skipped.
func (s *Store) List(ctx context.Context) ([]domain.ReportSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var (
		mu        sync.Mutex
		snapshots = make([]domain.ReportSnapshot, 0, len(entries))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrency)

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		filename := entry.Name()
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			snapshot, err := readSnapshot(filepath.Join(s.baseDir, filename))
			if err != nil {
				slog.WarnContext(gctx, "skipping unreadable snapshot",
					slog.String("file", filename),
					slog.String("error", err.Error()))
				return nil
			}

			mu.Lock()
			snapshots = append(snapshots, snapshot)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load snapshots: %w", err)
	}
	return snapshots, nil
}

func readSnapshot(path string) (domain.ReportSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.ReportSnapshot{}, err
	}

	var snapshot domain.ReportSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return domain.ReportSnapshot{}, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return snapshot, nil
}
