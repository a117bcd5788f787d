package models

import "github.com/raushankrgupta/trymeup/session"

// TryOnResponse is returned by a successful try-on request
type TryOnResponse struct {
	Result  *session.GenerationResult `json:"result"`
	Session session.Snapshot          `json:"session"`
}

// UploadResponse is returned after an image lands in a slot
type UploadResponse struct {
	Image   *session.UploadedImage `json:"image"`
	Session session.Snapshot       `json:"session"`
}

// FavoriteResponse reports the outcome of a save request
type FavoriteResponse struct {
	Added     bool                    `json:"added"`
	Favorite  *session.FavoriteEntry  `json:"favorite,omitempty"`
	Favorites []session.FavoriteEntry `json:"favorites"`
}

// GalleryResponse lists the session's favorites, latest first
type GalleryResponse struct {
	Images []session.FavoriteEntry `json:"images"`
	Total  int                     `json:"total"`
}

// ErrorResponse is the body of every non-2xx reply
type ErrorResponse struct {
	Error string `json:"error"`
}
