package handler

import (
	"log/slog"
	"net/http"

	"github.com/rezkam/tasks/internal/application/task"
	"github.com/rezkam/tasks/internal/infrastructure/http/response"
)

// ListTasks handles GET /tasks.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.tasks.List(r.Context())
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}
	response.OK(w, MapTasksToDTO(tasks))
}

// GetTask handles GET /tasks/{id}.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	t, err := h.tasks.Get(r.Context(), id)
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}
	response.OK(w, MapTaskToDTO(*t))
}

// CreateTask handles POST /tasks and answers with the full task list.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	raw, err := decodeTaskParams(r)
	if err != nil {
		response.BadRequest(w, "invalid JSON")
		return
	}

	created, err := h.tasks.Create(r.Context(), raw)
	if err != nil {
		slog.WarnContext(r.Context(), "failed to create task via HTTP", "error", err)
		response.FromDomainError(w, r, err)
		return
	}

	slog.InfoContext(r.Context(), "task created via HTTP", "task_id", created.ID)
	h.respondWithAll(w, r)
}

// UpdateTask handles PATCH and PUT /tasks/{id}. Only keys present in the
// body are changed.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	raw, err := decodeTaskParams(r)
	if err != nil {
		response.BadRequest(w, "invalid JSON")
		return
	}

	if _, err := h.tasks.Update(r.Context(), id, raw); err != nil {
		slog.WarnContext(r.Context(), "failed to update task via HTTP",
			"task_id", id,
			"error", err)
		response.FromDomainError(w, r, err)
		return
	}
	h.respondWithAll(w, r)
}

// UpdateTaskStatus handles POST /tasks/{id}/status with body {"status": ...}.
func (h *TaskHandler) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	raw, err := decodeTaskParams(r)
	if err != nil {
		response.BadRequest(w, "invalid JSON")
		return
	}
	status, ok := raw[task.KeyStatus]
	if !ok || status == nil {
		response.ValidationError(w, task.KeyStatus, "required field missing")
		return
	}

	if _, err := h.tasks.UpdateStatus(r.Context(), id, status); err != nil {
		response.FromDomainError(w, r, err)
		return
	}
	h.respondWithAll(w, r)
}

// DeleteTask handles DELETE /tasks/{id}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	if err := h.tasks.Delete(r.Context(), id); err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	slog.InfoContext(r.Context(), "task deleted via HTTP", "task_id", id)
	h.respondWithAll(w, r)
}

// DuplicateTask handles POST /tasks/{id}/duplicate.
func (h *TaskHandler) DuplicateTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	dup, err := h.tasks.Duplicate(r.Context(), id)
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	slog.InfoContext(r.Context(), "task duplicated via HTTP",
		"source_id", id,
		"task_id", dup.ID)
	h.respondWithAll(w, r)
}

// respondWithAll writes the current task list after a successful mutation.
func (h *TaskHandler) respondWithAll(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.tasks.List(r.Context())
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}
	response.OK(w, MapTasksToDTO(tasks))
}
