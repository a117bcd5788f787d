package utils

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/gabriel-vasile/mimetype"
	"github.com/raushankrgupta/trymeup/session"
	_ "golang.org/x/image/webp"
)

// AllowedImageTypes are the upload formats the uploader accepts.
var AllowedImageTypes = []string{"image/png", "image/jpeg", "image/webp"}

var (
	ErrEmptyImage       = errors.New("image is empty")
	ErrImageTooLarge    = errors.New("image exceeds upload limit")
	ErrUnsupportedImage = errors.New("unsupported image type")
)

// ImageDecoder validates uploaded bytes and turns them into a data URL.
type ImageDecoder struct {
	MaxBytes int64
}

func NewImageDecoder(maxBytes int64) *ImageDecoder {
	return &ImageDecoder{MaxBytes: maxBytes}
}

// Decode checks size and type, fully decodes the image to catch corrupt
// input, and returns the original bytes as a data URL.
func (d *ImageDecoder) Decode(ctx context.Context, raw []byte) (session.EncodedImage, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(raw) == 0 {
		return "", ErrEmptyImage
	}
	if d.MaxBytes > 0 && int64(len(raw)) > d.MaxBytes {
		return "", fmt.Errorf("%w: %d bytes > %d", ErrImageTooLarge, len(raw), d.MaxBytes)
	}

	mtype := mimetype.Detect(raw)
	if !mimetype.EqualsAny(mtype.String(), AllowedImageTypes...) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedImage, mtype.String())
	}

	if _, _, err := image.Decode(bytes.NewReader(raw)); err != nil {
		return "", fmt.Errorf("failed to decode %s: %w", mtype.String(), err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	return EncodeDataURL(mtype.String(), raw), nil
}

var _ session.Decoder = (*ImageDecoder)(nil)
