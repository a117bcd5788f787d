package session_test

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/raushankrgupta/trymeup/mocks"
	"github.com/raushankrgupta/trymeup/session"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testNotification = 150 * time.Millisecond

func dataURL(s string) session.EncodedImage {
	return session.EncodedImage("data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte(s)))
}

// passthroughDecoder encodes raw bytes as a png data URL. Bytes equal to
// "corrupt" fail.
type passthroughDecoder struct{}

func (passthroughDecoder) Decode(_ context.Context, raw []byte) (session.EncodedImage, error) {
	if string(raw) == "corrupt" {
		return "", assertErr("corrupt image")
	}
	return dataURL(string(raw)), nil
}

type assertErr string

func (e assertErr) Error() string { return string(e) }

type fixture struct {
	s        *session.Session
	gen      *mocks.MockGenerator
	feedback *mocks.MockFeedbackProvider
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		gen:      mocks.NewMockGenerator(t),
		feedback: mocks.NewMockFeedbackProvider(t),
	}
	f.s = session.New("user-1", passthroughDecoder{}, f.gen, f.feedback, session.Options{
		NotificationDuration: testNotification,
		FeedbackTimeout:      time.Second,
	})
	t.Cleanup(f.s.Close)
	return f
}

func (f *fixture) upload(t *testing.T, role session.Role, raw string) *session.UploadedImage {
	t.Helper()
	img, err := f.s.UploadImage(context.Background(), role, []byte(raw))
	require.NoError(t, err)
	return img
}

func (f *fixture) expectGenerate(self, outfit, result string) *mock.Call {
	return f.gen.On("Generate", mock.Anything, dataURL(self), dataURL(outfit)).Return(dataURL(result), nil)
}
