package fakeapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/bod/internal/common"
	"github.com/gorilla/mux"
)

type handler struct {
	store *Store
}

type errorBody struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, common.ErrorNotFound):
		status = http.StatusNotFound
	case errors.Is(err, common.ErrorValidation):
		status = http.StatusBadRequest
	}
	writeJSON(w, status, errorBody{Message: err.Error()})
}

func pathID(r *http.Request) (int, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: bad id %q", common.ErrorValidation, raw)
	}
	return id, nil
}

func decodeObject(r *http.Request) (Object, error) {
	var obj Object
	if err := json.NewDecoder(r.Body).Decode(&obj); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}
	if obj == nil {
		return nil, fmt.Errorf("%w: body must be a JSON object", common.ErrorValidation)
	}
	return obj, nil
}

func (h *handler) list(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := map[string]string{}
		for key, values := range r.URL.Query() {
			if len(values) > 0 {
				filters[key] = values[0]
			}
		}
		items, err := h.store.List(name, filters)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func (h *handler) get(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeError(w, err)
			return
		}
		obj, err := h.store.Get(name, id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, obj)
	}
}

func (h *handler) create(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		obj, err := decodeObject(r)
		if err != nil {
			writeError(w, err)
			return
		}
		created, err := h.store.Create(name, obj)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

func (h *handler) update(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeError(w, err)
			return
		}
		obj, err := decodeObject(r)
		if err != nil {
			writeError(w, err)
			return
		}
		updated, err := h.store.Update(name, id, obj)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

func (h *handler) delete(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeError(w, err)
			return
		}
		if err := h.store.Delete(name, id); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Object{})
	}
}
