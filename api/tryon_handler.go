package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/raushankrgupta/trymeup/models"
	"github.com/raushankrgupta/trymeup/utils"
)

// VirtualTryOnHandler handles the virtual try-on request
func (h *Handler) VirtualTryOnHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLogMessage(&logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Virtual Try-On API]")

	s := h.lookupSession(w, r, &logMessageBuilder)
	if s == nil {
		return
	}

	// The generation call is slow, so it gets its own deadline
	ctx, cancel := context.WithTimeout(r.Context(), h.GenerationTimeout)
	defer cancel()

	result, err := s.Generate(ctx)
	if err != nil {
		respondSessionError(w, &logMessageBuilder, err)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, "Try-on generated")
	utils.RespondJSON(w, http.StatusOK, models.TryOnResponse{Result: result, Session: s.Snapshot()})
}

// TryAnotherOutfitHandler clears the outfit and its result, keeping the
// user's photo and favorites
func (h *Handler) TryAnotherOutfitHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLogMessage(&logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Try Another Outfit API]")

	s := h.lookupSession(w, r, &logMessageBuilder)
	if s == nil {
		return
	}

	s.TryAnotherOutfit()
	utils.RespondJSON(w, http.StatusOK, s.Snapshot())
}
