package genre

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rezkam/tasks/internal/domain"
)

// Repository defines storage operations for genres.
type Repository interface {
	// CreateGenre stores a genre with an already validated name.
	CreateGenre(ctx context.Context, name string) (*domain.Genre, error)

	// FindGenreByID returns domain.ErrGenreNotFound if the genre doesn't exist.
	FindGenreByID(ctx context.Context, id int64) (*domain.Genre, error)

	// ListGenres returns every genre ordered by id.
	ListGenres(ctx context.Context) ([]domain.Genre, error)

	// DeleteGenre removes a genre.
	// Returns domain.ErrGenreNotFound if the genre doesn't exist.
	// Returns domain.ErrGenreInUse if tasks still reference it.
	DeleteGenre(ctx context.Context, id int64) error
}

// Service provides business logic for genre management.
type Service struct {
	repo Repository
}

// NewService creates a new genre service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates the name and stores a new genre.
func (s *Service) Create(ctx context.Context, name string) (*domain.Genre, error) {
	genreName, err := domain.NewGenreName(name)
	if err != nil {
		return nil, err // ErrGenreNameRequired or ErrGenreNameTooLong
	}

	created, err := s.repo.CreateGenre(ctx, genreName.String())
	if err != nil {
		return nil, fmt.Errorf("failed to create genre: %w", err)
	}

	slog.InfoContext(ctx, "genre created",
		slog.Int64("genre_id", created.ID),
		slog.String("name", created.Name))

	return created, nil
}

// Get retrieves a genre by ID.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Genre, error) {
	if id <= 0 {
		return nil, domain.ErrGenreNotFound
	}
	return s.repo.FindGenreByID(ctx, id)
}

// List returns every genre.
func (s *Service) List(ctx context.Context) ([]domain.Genre, error) {
	genres, err := s.repo.ListGenres(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}
	return genres, nil
}

// Delete removes a genre that no task references.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrGenreNotFound
	}

	if err := s.repo.DeleteGenre(ctx, id); err != nil {
		return fmt.Errorf("failed to delete genre: %w", err)
	}

	slog.InfoContext(ctx, "genre deleted", slog.Int64("genre_id", id))
	return nil
}
