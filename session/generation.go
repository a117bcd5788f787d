package session

import (
	"context"
	"strings"
	"time"
)

// GenerationState is the generation controller's state.
type GenerationState string

const (
	StateIdle       GenerationState = "idle"
	StateRequesting GenerationState = "requesting"
	StateSuccess    GenerationState = "success"
	StateFailure    GenerationState = "failure"
)

// Generator is the remote try-on generation service.
type Generator interface {
	Generate(ctx context.Context, self, outfit EncodedImage) (EncodedImage, error)
}

// GenerationResult is a generated image tagged with the inputs behind it.
type GenerationResult struct {
	Image     EncodedImage `json:"image"`
	Pair      Pair         `json:"pair"`
	CreatedAt time.Time    `json:"created_at"`
}

type generationToken struct {
	seq  uint64
	pair Pair
}

// generationController owns the primary loading/result/error state. All
// methods run under the session lock.
type generationController struct {
	state  GenerationState
	seq    uint64
	pair   Pair
	result *GenerationResult
	err    string
}

func newGenerationController() generationController {
	return generationController{state: StateIdle}
}

func (g *generationController) begin(pair Pair) (generationToken, error) {
	if g.state == StateRequesting {
		return generationToken{}, ErrGenerationInProgress
	}
	g.seq++
	g.state = StateRequesting
	g.pair = pair
	g.result = nil
	g.err = ""
	return generationToken{seq: g.seq, pair: pair}, nil
}

func (g *generationController) owns(t generationToken) bool {
	return g.state == StateRequesting && g.seq == t.seq
}

func (g *generationController) succeed(t generationToken, img EncodedImage, at time.Time) *GenerationResult {
	g.state = StateSuccess
	g.result = &GenerationResult{Image: img, Pair: t.pair, CreatedAt: at}
	g.err = ""
	return g.result
}

func (g *generationController) fail(msg string) {
	g.state = StateFailure
	g.result = nil
	g.err = msg
}

// abandon drops an in-flight attempt whose inputs changed underneath it.
func (g *generationController) abandon() {
	g.state = StateIdle
	g.result = nil
}

// reset clears result and error after an input change. An in-flight request
// keeps the Requesting state until it returns and is found stale.
func (g *generationController) reset() {
	g.result = nil
	g.err = ""
	if g.state != StateRequesting {
		g.state = StateIdle
	}
}

// Generate runs a single try-on request for the current input pair.
func (s *Session) Generate(ctx context.Context) (*GenerationResult, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrSessionClosed
	}
	s.touch()
	self, outfit := s.images[RoleSelf], s.images[RoleOutfit]
	if self == nil || outfit == nil {
		if s.gen.state != StateRequesting {
			s.gen.state = StateIdle
			s.gen.err = MsgMissingImages
		}
		s.mu.Unlock()
		generationTotal.WithLabelValues("invalid").Inc()
		return nil, &ValidationError{Message: MsgMissingImages}
	}

	token, err := s.gen.begin(s.pairLocked())
	if err != nil {
		s.mu.Unlock()
		generationTotal.WithLabelValues("rejected").Inc()
		return nil, err
	}
	s.fb.reset()
	selfData, outfitData := self.Data, outfit.Data
	s.mu.Unlock()

	s.logger.Info().Uint64("self_id", token.pair.SelfID).Uint64("outfit_id", token.pair.OutfitID).Msg("generation requested")

	start := time.Now()
	img, genErr := s.generator.Generate(ctx, selfData, outfitData)
	generationDuration.Observe(time.Since(start).Seconds())

	s.mu.Lock()
	if s.closed || !s.gen.owns(token) || s.pairLocked() != token.pair {
		if s.gen.owns(token) {
			s.gen.abandon()
		}
		s.mu.Unlock()
		generationTotal.WithLabelValues("stale").Inc()
		s.logger.Info().Msg("discarding generation result for a previous input pair")
		return nil, ErrStaleResult
	}

	if genErr != nil {
		msg := generationMessage(genErr)
		s.gen.fail(msg)
		s.mu.Unlock()
		generationTotal.WithLabelValues("failed").Inc()
		s.logger.Error().Err(genErr).Msg("generation failed")
		return nil, &GenerationError{Message: msg, Err: genErr}
	}

	res := s.gen.succeed(token, img, s.now())
	out := *res
	fbToken := s.fb.begin(token.pair)
	s.notifier.Trigger()
	s.startFeedback(fbToken, selfData, outfitData)
	s.mu.Unlock()

	generationTotal.WithLabelValues("ok").Inc()
	s.logger.Info().Msg("generation succeeded")
	return &out, nil
}

func generationMessage(err error) string {
	lower := strings.ToLower(err.Error())
	if strings.Contains(lower, "429") || strings.Contains(lower, "quota") {
		return MsgQuotaExceeded
	}
	return MsgGenerationFailed
}
