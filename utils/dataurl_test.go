package utils

import (
	"testing"

	"github.com/raushankrgupta/trymeup/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDataURL(t *testing.T) {
	img := EncodeDataURL("image/jpeg", []byte{0xff, 0xd8, 0xff})
	assert.Equal(t, session.EncodedImage("data:image/jpeg;base64,/9j/"), img)

	mimeType, data, err := ParseDataURL(img)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", mimeType)
	assert.Equal(t, []byte{0xff, 0xd8, 0xff}, data)
}

func TestParseDataURL_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   session.EncodedImage
	}{
		{"no prefix", "image/png;base64,AAAA"},
		{"no payload", "data:image/png;base64"},
		{"not base64", "data:text/plain,hello"},
		{"bad base64", "data:image/png;base64,@@@"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseDataURL(tt.in)
			assert.ErrorIs(t, err, ErrInvalidDataURL)
		})
	}
}
