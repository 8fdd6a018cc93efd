package rates

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"tricalc/internal/domain"
)

// Server serves a rate table over HTTP.
//
//	GET /latest/{base}  the table re-expressed relative to {base}
//	GET /healthz        200 "ok"
type Server struct {
	load    func(ctx context.Context) (domain.RateTable, error)
	handler http.Handler
}

// NewServer returns a handler serving a fixed table.
func NewServer(table domain.RateTable, log *slog.Logger) *Server {
	return newServer(func(context.Context) (domain.RateTable, error) { return table, nil }, log)
}

// NewProxyServer returns a handler serving whatever store loads. The first
// request triggers the store's fetch; a failed load is answered with 500 and
// a JSON error.
func NewProxyServer(store domain.CurrencyStore, log *slog.Logger) *Server {
	return newServer(store.Load, log)
}

func newServer(load func(ctx context.Context) (domain.RateTable, error), log *slog.Logger) *Server {
	s := &Server{load: load}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /latest/{base}", s.handleLatest)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	s.handler = withLogging(log, mux)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) handleLatest(w http.ResponseWriter, r *http.Request) {
	table, err := s.load(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	base := strings.ToUpper(r.PathValue("base"))
	baseRate, ok := table.Rate(base)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown base currency " + base})
		return
	}

	rebased := make(map[string]float64, table.Len())
	for _, code := range table.Codes() {
		r, _ := table.Rate(code)
		rebased[code] = r / baseRate
	}
	writeJSON(w, http.StatusOK, payload{
		Base:  base,
		Date:  table.FetchedAt().UTC().Format(time.DateOnly),
		Rates: rebased,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

// withLogging records method, path, remote, status, bytes and duration.
func withLogging(log *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		if log != nil {
			log.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"remote", r.RemoteAddr,
				"status", rec.status,
				"bytes", rec.bytes,
				"duration", time.Since(start),
			)
		}
	})
}
