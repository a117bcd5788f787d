package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavorites_SaveDedupAndOrder(t *testing.T) {
	f := NewFavorites()
	at := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	_, added := f.Save(nil, at)
	assert.False(t, added)
	assert.Equal(t, 0, f.Len())

	c := &GenerationResult{Image: "data:image/png;base64,Qw=="}
	d := &GenerationResult{Image: "data:image/png;base64,RA=="}

	entry, added := f.Save(c, at)
	require.True(t, added)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, at, entry.SavedAt)

	_, added = f.Save(&GenerationResult{Image: c.Image}, at.Add(time.Minute))
	assert.False(t, added, "equal image is a duplicate")
	assert.Equal(t, 1, f.Len())

	_, added = f.Save(d, at.Add(2*time.Minute))
	require.True(t, added)

	list := f.List()
	require.Len(t, list, 2)
	assert.Equal(t, d.Image, list[0].Image)
	assert.Equal(t, c.Image, list[1].Image)
}

func TestFavorites_ListIsACopy(t *testing.T) {
	f := NewFavorites()
	f.Save(&GenerationResult{Image: "data:image/png;base64,Qw=="}, time.Now())

	list := f.List()
	list[0].Image = "mutated"

	assert.Equal(t, EncodedImage("data:image/png;base64,Qw=="), f.List()[0].Image)
}

func TestFavorites_EmptyImageIgnored(t *testing.T) {
	f := NewFavorites()
	_, added := f.Save(&GenerationResult{}, time.Now())
	assert.False(t, added)
	assert.Empty(t, f.List())
}
