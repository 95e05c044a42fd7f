package router

import (
	"bufio"
	"encoding/json"
	"log"
	"net"
	"net/http"
	"time"
)

const headerAdminAPIKey = "X-Admin-API-Key"

// adminKeyGate returns a wrapper requiring the configured admin API key on
// the owner/admin surface. An empty configured key disables the gate.
func adminKeyGate(key string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		if key == "" {
			return next
		}

		return func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get(headerAdminAPIKey) != key {
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusForbidden)
				_ = json.NewEncoder(w).Encode(map[string]any{
					"error": map[string]any{
						"code":    "unauthorized",
						"message": "missing or invalid admin API key",
					},
				})
				return
			}

			next(w, r)
		}
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Hijack forwards to the underlying writer so the websocket upgrade on
// /v1/events still works behind the logging wrapper.
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, http.ErrNotSupported
	}

	return hijacker.Hijack()
}

// WithRequestLogging wraps the handler with one key=value access log line
// per request.
func WithRequestLogging(handler http.Handler, logger *log.Logger) http.Handler {
	if logger == nil {
		return handler
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startedAt := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		handler.ServeHTTP(recorder, r)

		logger.Printf("request handled method=%s path=%s status=%d latency_ms=%d",
			r.Method, r.URL.Path, recorder.status, time.Since(startedAt).Milliseconds())
	})
}
