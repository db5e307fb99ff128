package genre

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezkam/tasks/internal/domain"
)

// mockGenreRepo records the name handed to CreateGenre.
type mockGenreRepo struct {
	capturedName string
	inUse        map[int64]bool
	genres       map[int64]domain.Genre
}

func newMockGenreRepo() *mockGenreRepo {
	return &mockGenreRepo{inUse: map[int64]bool{}, genres: map[int64]domain.Genre{}}
}

func (m *mockGenreRepo) CreateGenre(_ context.Context, name string) (*domain.Genre, error) {
	m.capturedName = name
	g := domain.Genre{ID: int64(len(m.genres) + 1), Name: name}
	m.genres[g.ID] = g
	return &g, nil
}

func (m *mockGenreRepo) FindGenreByID(_ context.Context, id int64) (*domain.Genre, error) {
	g, ok := m.genres[id]
	if !ok {
		return nil, domain.ErrGenreNotFound
	}
	return &g, nil
}

func (m *mockGenreRepo) ListGenres(context.Context) ([]domain.Genre, error) {
	panic("not used in genre service tests")
}

func (m *mockGenreRepo) DeleteGenre(_ context.Context, id int64) error {
	if _, ok := m.genres[id]; !ok {
		return domain.ErrGenreNotFound
	}
	if m.inUse[id] {
		return domain.ErrGenreInUse
	}
	delete(m.genres, id)
	return nil
}

func TestService_Create_TrimsName(t *testing.T) {
	repo := newMockGenreRepo()
	svc := NewService(repo)

	g, err := svc.Create(context.Background(), "  仕事  ")
	require.NoError(t, err)
	assert.Equal(t, "仕事", repo.capturedName)
	assert.Equal(t, "仕事", g.Name)
}

func TestService_Create_Validation(t *testing.T) {
	svc := NewService(newMockGenreRepo())

	_, err := svc.Create(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrGenreNameRequired)

	_, err = svc.Create(context.Background(), strings.Repeat("x", 256))
	assert.ErrorIs(t, err, domain.ErrGenreNameTooLong)
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newMockGenreRepo()
	svc := NewService(repo)

	busy, err := svc.Create(ctx, "busy")
	require.NoError(t, err)
	repo.inUse[busy.ID] = true

	assert.ErrorIs(t, svc.Delete(ctx, busy.ID), domain.ErrGenreInUse)
	assert.ErrorIs(t, svc.Delete(ctx, 404), domain.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, -1), domain.ErrGenreNotFound)

	repo.inUse[busy.ID] = false
	require.NoError(t, svc.Delete(ctx, busy.ID))

	_, err = svc.Get(ctx, busy.ID)
	assert.ErrorIs(t, err, domain.ErrGenreNotFound)
}
