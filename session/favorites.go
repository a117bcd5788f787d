package session

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteEntry is a saved generation result.
type FavoriteEntry struct {
	ID      string       `json:"id"`
	Image   EncodedImage `json:"image"`
	SavedAt time.Time    `json:"saved_at"`
}

// Favorites keeps saved results unique by image, newest first. It is not
// safe for concurrent use; Session guards it.
type Favorites struct {
	entries []FavoriteEntry
	seen    map[EncodedImage]struct{}
}

func NewFavorites() *Favorites {
	return &Favorites{seen: make(map[EncodedImage]struct{})}
}

// Save prepends result unless an entry with the same image exists. It
// reports whether an entry was added.
func (f *Favorites) Save(result *GenerationResult, at time.Time) (FavoriteEntry, bool) {
	if result == nil || result.Image == "" {
		return FavoriteEntry{}, false
	}
	if _, ok := f.seen[result.Image]; ok {
		return FavoriteEntry{}, false
	}
	entry := FavoriteEntry{
		ID:      uuid.New().String(),
		Image:   result.Image,
		SavedAt: at,
	}
	f.entries = append([]FavoriteEntry{entry}, f.entries...)
	f.seen[result.Image] = struct{}{}
	return entry, true
}

// List returns a copy of the entries, most recently saved first.
func (f *Favorites) List() []FavoriteEntry {
	out := make([]FavoriteEntry, len(f.entries))
	copy(out, f.entries)
	return out
}

func (f *Favorites) Len() int { return len(f.entries) }
