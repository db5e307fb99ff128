package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rezkam/tasks/internal/application/task"
	"github.com/rezkam/tasks/internal/domain"
)

// taskEnvelope is the optional wrapper key accepted around task payloads.
const taskEnvelope = "task"

var errInvalidJSON = errors.New("invalid JSON")

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (int64, error) {
	return domain.ParseID(chi.URLParam(r, "id"))
}

// decodeObject decodes a JSON object body, keeping numbers as json.Number so
// the normalizer sees exact integers. An empty body is an empty object.
func decodeObject(r *http.Request) (map[string]any, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return map[string]any{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, errInvalidJSON
	}
	if obj == nil {
		return map[string]any{}, nil
	}
	return obj, nil
}

// decodeTaskParams decodes a task payload, unwrapping {"task": {...}}.
func decodeTaskParams(r *http.Request) (task.RawParams, error) {
	obj, err := decodeObject(r)
	if err != nil {
		return nil, err
	}

	if len(obj) == 1 {
		if inner, ok := obj[taskEnvelope].(map[string]any); ok {
			return task.RawParams(inner), nil
		}
	}
	return task.RawParams(obj), nil
}
