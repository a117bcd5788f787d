package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/raushankrgupta/trymeup/session"
	"github.com/raushankrgupta/trymeup/utils"
)

// Handler serves the try-on session API.
type Handler struct {
	Sessions          *session.Manager
	JWTSecret         string
	GenerationTimeout time.Duration
	MaxUploadBytes    int64
}

const (
	defaultGenerationTimeout = 5 * time.Minute
	defaultMaxUploadBytes    = 10 << 20
)

// NewRouter wires every route behind CORS and latency logging.
func NewRouter(h *Handler) http.Handler {
	if h.GenerationTimeout <= 0 {
		h.GenerationTimeout = defaultGenerationTimeout
	}
	if h.MaxUploadBytes <= 0 {
		h.MaxUploadBytes = defaultMaxUploadBytes
	}

	r := mux.NewRouter()
	r.HandleFunc("/health", HealthHandler).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	s := r.PathPrefix("/sessions").Subrouter()
	s.Use(h.AuthMiddleware)
	s.HandleFunc("", h.CreateSessionHandler).Methods(http.MethodPost)
	s.HandleFunc("/{id}", h.GetSessionHandler).Methods(http.MethodGet)
	s.HandleFunc("/{id}", h.DeleteSessionHandler).Methods(http.MethodDelete)
	s.HandleFunc("/{id}/images/{role}", h.UploadImageHandler).Methods(http.MethodPost)
	s.HandleFunc("/{id}/try-on", h.VirtualTryOnHandler).Methods(http.MethodPost)
	s.HandleFunc("/{id}/try-another-outfit", h.TryAnotherOutfitHandler).Methods(http.MethodPost)
	s.HandleFunc("/{id}/favorites", h.SaveFavoriteHandler).Methods(http.MethodPost)
	s.HandleFunc("/{id}/favorites", h.GalleryHandler).Methods(http.MethodGet)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS", "PUT", "DELETE"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)
	return utils.LatencyMiddleware(cors(r))
}

// HealthHandler reports liveness
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// lookupSession resolves the {id} path variable for the caller. It writes
// the error response itself and returns nil when the session is missing.
func (h *Handler) lookupSession(w http.ResponseWriter, r *http.Request, logMessageBuilder *strings.Builder) *session.Session {
	id := mux.Vars(r)["id"]
	s, err := h.Sessions.Get(id, GetUserIDFromContext(r.Context()))
	if err != nil {
		utils.RespondError(w, logMessageBuilder, "Session not found", http.StatusNotFound)
		return nil
	}
	utils.AddToLogMessage(logMessageBuilder, "SessionID="+id)
	return s
}

// respondSessionError maps orchestrator errors to HTTP statuses.
func respondSessionError(w http.ResponseWriter, logMessageBuilder *strings.Builder, err error) {
	var (
		intakeErr     *session.IntakeError
		validationErr *session.ValidationError
		generationErr *session.GenerationError
	)
	switch {
	case errors.As(err, &intakeErr):
		utils.RespondError(w, logMessageBuilder, intakeErr.Message, http.StatusUnprocessableEntity)
	case errors.As(err, &validationErr):
		utils.RespondError(w, logMessageBuilder, validationErr.Message, http.StatusBadRequest)
	case errors.As(err, &generationErr):
		utils.AddToLogMessage(logMessageBuilder, "Generation failed: "+err.Error())
		status := http.StatusBadGateway
		if generationErr.Message == session.MsgQuotaExceeded {
			status = http.StatusTooManyRequests
		}
		utils.RespondError(w, logMessageBuilder, generationErr.Message, status)
	case errors.Is(err, session.ErrInvalidRole):
		utils.RespondError(w, logMessageBuilder, "Role must be 'self' or 'outfit'", http.StatusBadRequest)
	case errors.Is(err, session.ErrSuperseded):
		utils.RespondError(w, logMessageBuilder, "Upload replaced by a newer one", http.StatusConflict)
	case errors.Is(err, session.ErrGenerationInProgress):
		utils.RespondError(w, logMessageBuilder, "A try-on is already being generated", http.StatusConflict)
	case errors.Is(err, session.ErrStaleResult):
		utils.RespondError(w, logMessageBuilder, "Images changed while generating; try again", http.StatusConflict)
	case errors.Is(err, session.ErrSessionClosed), errors.Is(err, session.ErrSessionNotFound):
		utils.RespondError(w, logMessageBuilder, "Session not found", http.StatusNotFound)
	default:
		utils.RespondError(w, logMessageBuilder, "Internal error: "+err.Error(), http.StatusInternalServerError)
	}
}
