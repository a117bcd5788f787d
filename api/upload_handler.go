package api

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/raushankrgupta/trymeup/models"
	"github.com/raushankrgupta/trymeup/session"
	"github.com/raushankrgupta/trymeup/utils"
)

const uploadField = "image"

// UploadImageHandler ingests the multipart "image" file into the self or
// outfit slot
func (h *Handler) UploadImageHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLogMessage(&logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Upload Image API]")

	s := h.lookupSession(w, r, &logMessageBuilder)
	if s == nil {
		return
	}

	role, err := session.ParseRole(mux.Vars(r)["role"])
	if err != nil {
		respondSessionError(w, &logMessageBuilder, err)
		return
	}

	// Allow some room for multipart framing on top of the image itself
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes+1<<20)
	if err := r.ParseMultipartForm(h.MaxUploadBytes); err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Error parsing form data: %v", err), http.StatusBadRequest)
		return
	}

	file, fileHeader, err := r.FormFile(uploadField)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Missing 'image' file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(io.LimitReader(file, h.MaxUploadBytes+1))
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Error reading file", http.StatusBadRequest)
		return
	}
	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Role=%s, File=%s, Bytes=%d", role, fileHeader.Filename, len(raw)))

	img, err := s.UploadImage(r.Context(), role, raw)
	if err != nil {
		respondSessionError(w, &logMessageBuilder, err)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, "Image stored")
	utils.RespondJSON(w, http.StatusOK, models.UploadResponse{Image: img, Session: s.Snapshot()})
}
