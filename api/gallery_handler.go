package api

import (
	"net/http"
	"strings"

	"github.com/raushankrgupta/trymeup/models"
	"github.com/raushankrgupta/trymeup/utils"
)

// SaveFavoriteHandler saves the current try-on result. Saving with no result
// or saving the same result twice leaves the favorites unchanged.
func (h *Handler) SaveFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLogMessage(&logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Save Favorite API]")

	s := h.lookupSession(w, r, &logMessageBuilder)
	if s == nil {
		return
	}

	entry, added := s.SaveFavorite()
	resp := models.FavoriteResponse{Added: added, Favorites: s.Favorites()}
	if added {
		resp.Favorite = &entry
		utils.AddToLogMessage(&logMessageBuilder, "Favorite saved: "+entry.ID)
		utils.RespondJSON(w, http.StatusCreated, resp)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, "Nothing new to save")
	utils.RespondJSON(w, http.StatusOK, resp)
}

// GalleryHandler lists the session's favorites, latest first
func (h *Handler) GalleryHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	s := h.lookupSession(w, r, &logMessageBuilder)
	if s == nil {
		utils.FlushLogMessage(&logMessageBuilder)
		return
	}

	favorites := s.Favorites()
	utils.RespondJSON(w, http.StatusOK, models.GalleryResponse{Images: favorites, Total: len(favorites)})
}
