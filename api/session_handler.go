package api

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/raushankrgupta/trymeup/utils"
)

// CreateSessionHandler starts an empty try-on session for the caller
func (h *Handler) CreateSessionHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLogMessage(&logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Create Session API]")

	s := h.Sessions.Create(GetUserIDFromContext(r.Context()))
	utils.AddToLogMessage(&logMessageBuilder, "SessionID="+s.ID())

	utils.RespondJSON(w, http.StatusCreated, s.Snapshot())
}

// GetSessionHandler returns the current session state
func (h *Handler) GetSessionHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	s := h.lookupSession(w, r, &logMessageBuilder)
	if s == nil {
		utils.FlushLogMessage(&logMessageBuilder)
		return
	}
	utils.RespondJSON(w, http.StatusOK, s.Snapshot())
}

// DeleteSessionHandler closes the session and drops its state
func (h *Handler) DeleteSessionHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLogMessage(&logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Delete Session API]")

	id := mux.Vars(r)["id"]
	if err := h.Sessions.Delete(id, GetUserIDFromContext(r.Context())); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Session not found", http.StatusNotFound)
		return
	}
	utils.AddToLogMessage(&logMessageBuilder, "Session closed: "+id)
	w.WriteHeader(http.StatusNoContent)
}
