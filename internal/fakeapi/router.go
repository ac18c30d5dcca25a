package fakeapi

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/bod/internal/common"
	"github.com/dmitrijs2005/bod/internal/logging"
	"github.com/gorilla/mux"
)

// NewRouter serves every resource of store under /<name>.
func NewRouter(store *Store, log logging.Logger) *mux.Router {
	h := &handler{store: store}

	r := mux.NewRouter()
	r.Use(loggingMiddleware(log))

	for _, name := range store.Names() {
		r.HandleFunc("/"+name, h.list(name)).Methods(http.MethodGet)
		r.HandleFunc("/"+name, h.create(name)).Methods(http.MethodPost)
		r.HandleFunc("/"+name+"/{id}", h.get(name)).Methods(http.MethodGet)
		r.HandleFunc("/"+name+"/{id}", h.update(name)).Methods(http.MethodPut)
		r.HandleFunc("/"+name+"/{id}", h.delete(name)).Methods(http.MethodDelete)
	}

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody{Message: "no route for " + r.URL.Path})
	})
	return r
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(log logging.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			log.Info(r.Context(), "request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(start),
				"request_id", r.Header.Get(common.RequestIDHeaderName),
			)
		})
	}
}
