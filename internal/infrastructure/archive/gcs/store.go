// Package gcs stores report snapshots as JSON objects in a Google Cloud
// Storage bucket.
package gcs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"cloud.google.com/go/storage"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/iterator"

	"github.com/rezkam/tasks/internal/application/task"
	"github.com/rezkam/tasks/internal/domain"
)

const maxConcurrency = 20

// Store is a GCS-based implementation of task.ReportArchive.
type Store struct {
	client *storage.Client
	bucket string
	prefix string
}

var _ task.ReportArchive = (*Store)(nil)

// NewStore creates a new GCS store writing objects under prefix.
// It assumes the client is authenticated (e.g. via GOOGLE_APPLICATION_CREDENTIALS).
func NewStore(ctx context.Context, bucketName, prefix string) (*Store, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}
	return &Store{
		client: client,
		bucket: bucketName,
		prefix: prefix,
	}, nil
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) objectName(id string) string {
	return fmt.Sprintf("%s%s.json", s.prefix, id)
}

// Save writes the snapshot object, replacing any previous version.
func (s *Store) Save(ctx context.Context, snapshot domain.ReportSnapshot) error {
	if snapshot.ID == "" || strings.Contains(snapshot.ID, "/") {
		return fmt.Errorf("invalid snapshot id %q", snapshot.ID)
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	w := s.client.Bucket(s.bucket).Object(s.objectName(snapshot.ID)).NewWriter(ctx)
	w.ContentType = "application/json"
	if _, err := w.Write(data); err != nil {
		w.Close()
		return fmt.Errorf("failed to write object: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize object: %w", err)
	}
	return nil
}

// List iterates over the bucket prefix and loads every snapshot in parallel.
// Objects that vanish or fail to decode mid-listing are skipped.
func (s *Store) List(ctx context.Context) ([]domain.ReportSnapshot, error) {
	it := s.client.Bucket(s.bucket).Objects(ctx, &storage.Query{Prefix: s.prefix})

	var names []string
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate objects: %w", err)
		}
		if !strings.HasSuffix(attrs.Name, ".json") {
			continue
		}
		// Only direct children of the prefix.
		if strings.Contains(strings.TrimPrefix(attrs.Name, s.prefix), "/") {
			continue
		}
		names = append(names, attrs.Name)
	}

	var (
		mu        sync.Mutex
		snapshots = make([]domain.ReportSnapshot, 0, len(names))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrency)

	for _, name := range names {
		g.Go(func() error {
			snapshot, err := s.read(gctx, name)
			if err != nil {
				if errors.Is(err, storage.ErrObjectNotExist) {
					return nil
				}
				if gctx.Err() != nil {
					return gctx.Err()
				}
				slog.WarnContext(gctx, "skipping unreadable snapshot",
					slog.String("object", name),
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

func (s *Store) read(ctx context.Context, name string) (domain.ReportSnapshot, error) {
	r, err := s.client.Bucket(s.bucket).Object(name).NewReader(ctx)
	if err != nil {
		return domain.ReportSnapshot{}, err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return domain.ReportSnapshot{}, fmt.Errorf("failed to read object: %w", err)
	}

	var snapshot domain.ReportSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return domain.ReportSnapshot{}, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return snapshot, nil
}
