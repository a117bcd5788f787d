package utils

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// RespondJSON sends a JSON response with the given status code and payload.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// Headers are already sent, so only log
		log.Error().Err(err).Msg("error encoding JSON response")
	}
}

// RespondError sends a JSON error response and appends the message to the
// request's log builder. If logger is nil, the message goes straight to the
// global logger.
func RespondError(w http.ResponseWriter, logger *strings.Builder, message string, status int) {
	if logger != nil {
		AddToLogMessage(logger, message)
	} else {
		log.Warn().Int("status", status).Msg(message)
	}
	RespondJSON(w, status, map[string]string{"error": message})
}

// FlushLogMessage writes a request's accumulated log builder as one entry.
func FlushLogMessage(logMessageBuilder *strings.Builder) {
	if logMessageBuilder.Len() == 0 {
		return
	}
	log.Info().Msg(strings.TrimRight(logMessageBuilder.String(), "\n"))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// LatencyMiddleware logs the duration and status of each request
func LatencyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("latency", time.Since(start)).
			Msg("[LATENCY]")
	})
}
