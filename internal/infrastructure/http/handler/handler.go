// Package handler adapts HTTP requests to the task and genre services.
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rezkam/tasks/internal/application/genre"
	"github.com/rezkam/tasks/internal/application/task"
	mw "github.com/rezkam/tasks/internal/infrastructure/http/middleware"
)

// TaskHandler serves the task, aggregate and genre endpoints.
type TaskHandler struct {
	tasks  *task.Service
	genres *genre.Service
}

// NewTaskHandler creates a new HTTP API handler.
func NewTaskHandler(tasks *task.Service, genres *genre.Service) *TaskHandler {
	return &TaskHandler{
		tasks:  tasks,
		genres: genres,
	}
}

// NewRouter mounts every API route on a fresh chi router.
// Both production code and tests use it so routing stays identical.
func NewRouter(tasks *task.Service, genres *genre.Service) http.Handler {
	h := NewTaskHandler(tasks, genres)

	r := chi.NewRouter()
	r.Use(mw.RequireJSON)

	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", h.ListTasks)
		r.Post("/", h.CreateTask)

		// Static segments must be registered before /{id}.
		r.Get("/stats", h.GetStats)
		r.Get("/report", h.GetReport)
		r.Get("/report/snapshots", h.ListReportSnapshots)
		r.Post("/report/snapshots", h.CreateReportSnapshot)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetTask)
			r.Patch("/", h.UpdateTask)
			r.Put("/", h.UpdateTask)
			r.Delete("/", h.DeleteTask)
			r.Post("/status", h.UpdateTaskStatus)
			r.Post("/duplicate", h.DuplicateTask)
		})
	})

	r.Route("/genres", func(r chi.Router) {
		r.Get("/", h.ListGenres)
		r.Post("/", h.CreateGenre)
		r.Get("/{id}", h.GetGenre)
		r.Delete("/{id}", h.DeleteGenre)
	})

	return r
}
