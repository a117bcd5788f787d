package session

import (
	"context"
)

// FeedbackProvider is the remote styling-feedback service.
type FeedbackProvider interface {
	Feedback(ctx context.Context, self, outfit EncodedImage) (string, error)
}

// FeedbackResult is the text produced for an input pair.
type FeedbackResult struct {
	Text string `json:"text"`
	Pair Pair   `json:"pair"`
}

// FeedbackErrorPolicy describes how feedback failures are handled: they are
// logged and counted, never shown to the user, never retried, and never
// change generation state.
const FeedbackErrorPolicy = "suppress"

type feedbackToken struct {
	seq  uint64
	pair Pair
}

// feedbackController tracks the best-effort request that follows a
// successful generation. All methods run under the session lock.
type feedbackController struct {
	seq     uint64
	loading bool
	result  *FeedbackResult
}

func (f *feedbackController) begin(pair Pair) feedbackToken {
	f.seq++
	f.loading = true
	f.result = nil
	return feedbackToken{seq: f.seq, pair: pair}
}

func (f *feedbackController) current(t feedbackToken) bool { return f.seq == t.seq }

// reset drops the current text and invalidates any request in flight.
func (f *feedbackController) reset() {
	f.seq++
	f.loading = false
	f.result = nil
}

// startFeedback must be called with s.mu held.
func (s *Session) startFeedback(t feedbackToken, self, outfit EncodedImage) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.runFeedback(t, self, outfit)
	}()
}

func (s *Session) runFeedback(t feedbackToken, self, outfit EncodedImage) {
	ctx, cancel := context.WithTimeout(s.ctx, s.opts.FeedbackTimeout)
	defer cancel()

	text, err := s.feedback.Feedback(ctx, self, outfit)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.fb.current(t) || s.pairLocked() != t.pair {
		feedbackTotal.WithLabelValues("stale").Inc()
		return
	}
	s.fb.loading = false

	if err != nil {
		feedbackTotal.WithLabelValues("suppressed").Inc()
		s.logger.Warn().Err(&FeedbackError{Err: err}).Str("policy", FeedbackErrorPolicy).Msg("feedback request failed")
		return
	}
	feedbackTotal.WithLabelValues("ok").Inc()
	s.fb.result = &FeedbackResult{Text: text, Pair: t.pair}
}
