package utils

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/raushankrgupta/trymeup/session"
)

var ErrInvalidDataURL = errors.New("invalid data URL")

// EncodeDataURL wraps raw bytes as a base64 data URL.
func EncodeDataURL(mimeType string, data []byte) session.EncodedImage {
	return session.EncodedImage("data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data))
}

// ParseDataURL splits a base64 data URL into its media type and bytes.
func ParseDataURL(img session.EncodedImage) (string, []byte, error) {
	s := string(img)
	if !strings.HasPrefix(s, "data:") {
		return "", nil, fmt.Errorf("%w: missing data: prefix", ErrInvalidDataURL)
	}
	header, payload, ok := strings.Cut(s[len("data:"):], ",")
	if !ok {
		return "", nil, fmt.Errorf("%w: missing payload", ErrInvalidDataURL)
	}
	mimeType, isBase64 := strings.CutSuffix(header, ";base64")
	if !isBase64 {
		return "", nil, fmt.Errorf("%w: only base64 payloads are supported", ErrInvalidDataURL)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidDataURL, err)
	}
	return mimeType, data, nil
}
