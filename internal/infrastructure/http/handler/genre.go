package handler

import (
	"log/slog"
	"net/http"

	"github.com/rezkam/tasks/internal/infrastructure/http/response"
)

// ListGenres handles GET /genres.
func (h *TaskHandler) ListGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.genres.List(r.Context())
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	dtos := make([]GenreDTO, len(genres))
	for i, g := range genres {
		dtos[i] = MapGenreToDTO(g)
	}
	response.OK(w, dtos)
}

// CreateGenre handles POST /genres.
func (h *TaskHandler) CreateGenre(w http.ResponseWriter, r *http.Request) {
	obj, err := decodeObject(r)
	if err != nil {
		response.BadRequest(w, "invalid JSON")
		return
	}

	var name string
	if v, ok := obj["name"]; ok && v != nil {
		s, isString := v.(string)
		if !isString {
			response.ValidationError(w, "name", "must be a string")
			return
		}
		name = s
	}

	g, err := h.genres.Create(r.Context(), name)
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	slog.InfoContext(r.Context(), "genre created via HTTP", "genre_id", g.ID)
	response.Created(w, MapGenreToDTO(*g))
}

// GetGenre handles GET /genres/{id}.
func (h *TaskHandler) GetGenre(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	g, err := h.genres.Get(r.Context(), id)
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}
	response.OK(w, MapGenreToDTO(*g))
}

// DeleteGenre handles DELETE /genres/{id}. Genres still used by a task
// answer 409.
func (h *TaskHandler) DeleteGenre(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	if err := h.genres.Delete(r.Context(), id); err != nil {
		response.FromDomainError(w, r, err)
		return
	}
	response.NoContent(w)
}
