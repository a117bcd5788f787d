package session

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Role names the slot an uploaded image fills.
type Role string

const (
	RoleSelf   Role = "self"
	RoleOutfit Role = "outfit"
)

// ParseRole accepts "self" and "outfit", case-insensitively.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleSelf:
		return RoleSelf, nil
	case RoleOutfit:
		return RoleOutfit, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
}

func (r Role) valid() bool { return r == RoleSelf || r == RoleOutfit }

func (r Role) intakeMessage() string {
	if r == RoleSelf {
		return MsgSelfIntake
	}
	return MsgOutfitIntake
}

// EncodedImage is a self-contained data URL (data:<mime>;base64,<payload>).
type EncodedImage string

// MimeType returns the media type of a data URL, or "" if it has none.
func (e EncodedImage) MimeType() string {
	s := string(e)
	if !strings.HasPrefix(s, "data:") {
		return ""
	}
	end := strings.IndexAny(s, ";,")
	if end < 0 {
		return ""
	}
	return s[len("data:"):end]
}

// UploadedImage is the current image held in one slot.
type UploadedImage struct {
	ID         uint64       `json:"id"`
	Role       Role         `json:"role"`
	Data       EncodedImage `json:"data"`
	MimeType   string       `json:"mime_type"`
	UploadedAt time.Time    `json:"uploaded_at"`
}

// Pair identifies the inputs a result was computed from. Zero means absent.
type Pair struct {
	SelfID   uint64 `json:"self_id"`
	OutfitID uint64 `json:"outfit_id"`
}

// Complete reports whether both slots are filled.
func (p Pair) Complete() bool { return p.SelfID != 0 && p.OutfitID != 0 }

// Decoder turns raw upload bytes into an embeddable image.
type Decoder interface {
	Decode(ctx context.Context, raw []byte) (EncodedImage, error)
}

// UploadImage decodes raw into the slot for role. Only the most recently
// issued intake for a role may land; older ones return ErrSuperseded.
func (s *Session) UploadImage(ctx context.Context, role Role, raw []byte) (*UploadedImage, error) {
	if !role.valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrSessionClosed
	}
	s.intakeSeq[role]++
	seq := s.intakeSeq[role]
	s.touch()
	s.mu.Unlock()

	data, decodeErr := s.decoder.Decode(ctx, raw)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrSessionClosed
	}
	if s.intakeSeq[role] != seq {
		intakeTotal.WithLabelValues(string(role), "superseded").Inc()
		s.logger.Debug().Str("role", string(role)).Uint64("seq", seq).Msg("discarding superseded intake")
		return nil, ErrSuperseded
	}
	if decodeErr != nil {
		intakeTotal.WithLabelValues(string(role), "failed").Inc()
		msg := role.intakeMessage()
		s.intakeErr[role] = msg
		s.logger.Warn().Err(decodeErr).Str("role", string(role)).Msg("image intake failed")
		return nil, &IntakeError{Role: role, Message: msg, Err: decodeErr}
	}

	s.nextImageID++
	img := &UploadedImage{
		ID:         s.nextImageID,
		Role:       role,
		Data:       data,
		MimeType:   data.MimeType(),
		UploadedAt: s.now(),
	}
	s.images[role] = img
	delete(s.intakeErr, role)
	s.gen.reset()
	s.fb.reset()

	intakeTotal.WithLabelValues(string(role), "ok").Inc()
	s.logger.Info().Str("role", string(role)).Uint64("image_id", img.ID).Msg("image uploaded")

	copied := *img
	return &copied, nil
}
