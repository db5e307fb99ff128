package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rezkam/tasks/internal/domain"
)

// CreateGenre stores a genre.
func (s *Store) CreateGenre(ctx context.Context, name string) (*domain.Genre, error) {
	var g domain.Genre
	err := s.db.QueryRow(ctx,
		`INSERT INTO genres (name) VALUES ($1) RETURNING id, name, created_at`, name,
	).Scan(&g.ID, &g.Name, &g.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create genre: %w", err)
	}
	g.CreatedAt = g.CreatedAt.UTC()
	return &g, nil
}

// FindGenreByID retrieves a single genre.
func (s *Store) FindGenreByID(ctx context.Context, id int64) (*domain.Genre, error) {
	var g domain.Genre
	err := s.db.QueryRow(ctx,
		`SELECT id, name, created_at FROM genres WHERE id = $1`, id,
	).Scan(&g.ID, &g.Name, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", domain.ErrGenreNotFound, id)
		}
		return nil, fmt.Errorf("failed to get genre: %w", err)
	}
	g.CreatedAt = g.CreatedAt.UTC()
	return &g, nil
}

// ListGenres returns every genre ordered by id.
func (s *Store) ListGenres(ctx context.Context) ([]domain.Genre, error) {
	rows, err := s.db.Query(ctx, `SELECT id, name, created_at FROM genres ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}

	genres, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Genre, error) {
		var g domain.Genre
		err := row.Scan(&g.ID, &g.Name, &g.CreatedAt)
		g.CreatedAt = g.CreatedAt.UTC()
		return g, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan genres: %w", err)
	}
	return genres, nil
}

// DeleteGenre removes a genre that no task references.
func (s *Store) DeleteGenre(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM genres WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err, fkTaskGenre) {
			return fmt.Errorf("%w: %d: %w", domain.ErrGenreInUse, id, err)
		}
		return fmt.Errorf("failed to delete genre: %w", err)
	}
	return checkRowsAffected(tag.RowsAffected(), domain.ErrGenreNotFound, id)
}
