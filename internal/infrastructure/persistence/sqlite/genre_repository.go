package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rezkam/tasks/internal/domain"
)

type genreRow struct {
	ID        int64  `db:"id"`
	Name      string `db:"name"`
	CreatedAt string `db:"created_at"`
}

func (r genreRow) toDomain() (domain.Genre, error) {
	createdAt, err := time.Parse(timeLayout, r.CreatedAt)
	if err != nil {
		return domain.Genre{}, fmt.Errorf("genre %d: invalid created_at: %w", r.ID, err)
	}
	return domain.Genre{ID: r.ID, Name: r.Name, CreatedAt: createdAt}, nil
}

// CreateGenre stores a genre.
func (s *Store) CreateGenre(ctx context.Context, name string) (*domain.Genre, error) {
	var row genreRow
	err := s.q.GetContext(ctx, &row,
		`INSERT INTO genres (name, created_at) VALUES (?, ?) RETURNING id, name, created_at`,
		name, s.now().Format(timeLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to create genre: %w", err)
	}

	g, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// FindGenreByID retrieves a single genre.
func (s *Store) FindGenreByID(ctx context.Context, id int64) (*domain.Genre, error) {
	var row genreRow
	err := s.q.GetContext(ctx, &row, `SELECT id, name, created_at FROM genres WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", domain.ErrGenreNotFound, id)
		}
		return nil, fmt.Errorf("failed to get genre: %w", err)
	}

	g, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// ListGenres returns every genre ordered by id.
func (s *Store) ListGenres(ctx context.Context) ([]domain.Genre, error) {
	var rows []genreRow
	if err := s.q.SelectContext(ctx, &rows, `SELECT id, name, created_at FROM genres ORDER BY id`); err != nil {
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}

	genres := make([]domain.Genre, 0, len(rows))
	for _, r := range rows {
		g, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		genres = append(genres, g)
	}
	return genres, nil
}

// DeleteGenre removes a genre that no task references.
func (s *Store) DeleteGenre(ctx context.Context, id int64) error {
	res, err := s.q.ExecContext(ctx, `DELETE FROM genres WHERE id = ?`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: %d: %w", domain.ErrGenreInUse, id, err)
		}
		return fmt.Errorf("failed to delete genre: %w", err)
	}
	return checkRowsAffected(res, domain.ErrGenreNotFound, id)
}
