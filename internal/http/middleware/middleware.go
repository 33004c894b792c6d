package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"roster-service/internal/logging"
	"roster-service/internal/metrics"
)

// LoggingMiddleware wraps the handler with request logging, request ID
// support, and metrics.
func LoggingMiddleware(baseLogger *slog.Logger, recorder *metrics.Recorder, next http.Handler) http.Handler {
	if baseLogger == nil {
		baseLogger = slog.Default()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := sanitizeRequestID(r.Header.Get("X-Request-ID"))
		w.Header().Set("X-Request-ID", reqID)

		clientIP := r.RemoteAddr
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			clientIP = forwarded
		}

		logger := baseLogger.With(
			slog.String(logging.FieldRequestID, reqID),
			slog.String(logging.FieldMethod, r.Method),
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", clientIP),
		)

		ctx := logging.WithLogger(r.Context(), logger)
		ctx = withRequestID(ctx, reqID)
		r = r.WithContext(ctx)
		ww := &responseWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		if recorder != nil {
			recorder.RecordHTTPRequest(r.Method, normalizePath(r.URL.Path), ww.status, duration)
		}

		logger.Info("request complete",
			slog.Int(logging.FieldStatusCode, ww.status),
			slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
		)
	})
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (w *responseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// normalizePath collapses id-bearing paths so metrics stay low-cardinality.
func normalizePath(path string) string {
	path = strings.Split(path, "?")[0]
	switch path {
	case "/health", "/ready", "/teams", "/players", "/players/next", "/session":
		return path
	}
	if strings.HasPrefix(path, "/teams/") {
		rest := strings.Trim(strings.TrimPrefix(path, "/teams/"), "/")
		parts := strings.Split(rest, "/")
		switch {
		case len(parts) == 2 && parts[1] == "players":
			return "/teams/:id/players"
		case len(parts) == 3 && parts[1] == "players":
			return "/teams/:id/players/:playerId"
		default:
			return "/teams/:id"
		}
	}
	return path
}
