// Package session holds the try-on session orchestrator: image intake, a
// single-flight generation request, the best-effort feedback that follows it,
// a transient success notification and the favorites collection.
//
// Every mutation of a Session goes through its mutex. Remote calls run
// outside the lock and carry the input pair they were issued for; a response
// whose pair no longer matches the session is dropped.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const DefaultFeedbackTimeout = time.Minute

// Options configures a Session.
type Options struct {
	NotificationDuration time.Duration
	FeedbackTimeout      time.Duration
	Logger               *zerolog.Logger
	// Now is the clock used for timestamps. Defaults to time.Now.
	Now func() time.Time
}

// Session is one user's try-on workspace.
type Session struct {
	id    string
	owner string

	decoder   Decoder
	generator Generator
	feedback  FeedbackProvider
	opts      Options
	logger    zerolog.Logger
	notifier  *Notification

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu          sync.Mutex
	closed      bool
	lastActive  time.Time
	images      map[Role]*UploadedImage
	intakeSeq   map[Role]uint64
	intakeErr   map[Role]string
	nextImageID uint64
	gen         generationController
	fb          feedbackController
	favorites   *Favorites
}

// New creates an empty session with both image slots unset.
func New(owner string, decoder Decoder, generator Generator, feedback FeedbackProvider, opts Options) *Session {
	if opts.FeedbackTimeout <= 0 {
		opts.FeedbackTimeout = DefaultFeedbackTimeout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	id := uuid.New().String()
	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		id:        id,
		owner:     owner,
		decoder:   decoder,
		generator: generator,
		feedback:  feedback,
		opts:      opts,
		logger:    logger.With().Str("session_id", id).Logger(),
		notifier:  NewNotification(opts.NotificationDuration),
		ctx:       ctx,
		cancel:    cancel,
		images:    make(map[Role]*UploadedImage),
		intakeSeq: make(map[Role]uint64),
		intakeErr: make(map[Role]string),
		gen:       newGenerationController(),
		favorites: NewFavorites(),
	}
	s.lastActive = opts.Now()
	return s
}

func (s *Session) ID() string    { return s.id }
func (s *Session) Owner() string { return s.owner }

// Snapshot is a read-only view of the session for presentation.
type Snapshot struct {
	ID                  string            `json:"id"`
	SelfImage           *UploadedImage    `json:"self_image"`
	OutfitImage         *UploadedImage    `json:"outfit_image"`
	Result              *GenerationResult `json:"result"`
	Feedback            *FeedbackResult   `json:"feedback"`
	State               GenerationState   `json:"state"`
	Generating          bool              `json:"generating"`
	FeedbackLoading     bool              `json:"feedback_loading"`
	Error               string            `json:"error,omitempty"`
	IntakeErrors        map[Role]string   `json:"intake_errors,omitempty"`
	NotificationVisible bool              `json:"notification_visible"`
	NotificationMessage string            `json:"notification_message,omitempty"`
	Favorites           []FavoriteEntry   `json:"favorites"`
}

// Snapshot copies the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:              s.id,
		SelfImage:       copyImage(s.images[RoleSelf]),
		OutfitImage:     copyImage(s.images[RoleOutfit]),
		State:           s.gen.state,
		Generating:      s.gen.state == StateRequesting,
		FeedbackLoading: s.fb.loading,
		Error:           s.gen.err,
		Favorites:       s.favorites.List(),
	}
	if s.gen.result != nil {
		r := *s.gen.result
		snap.Result = &r
	}
	if s.fb.result != nil {
		f := *s.fb.result
		snap.Feedback = &f
	}
	if len(s.intakeErr) > 0 {
		snap.IntakeErrors = make(map[Role]string, len(s.intakeErr))
		for role, msg := range s.intakeErr {
			snap.IntakeErrors[role] = msg
		}
	}
	if s.notifier.Visible() {
		snap.NotificationVisible = true
		snap.NotificationMessage = NotificationMessage
	}
	return snap
}

// SaveFavorite stores the current result. It is a no-op when there is no
// result or the same image was already saved.
func (s *Session) SaveFavorite() (FavoriteEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return FavoriteEntry{}, false
	}
	s.touch()
	entry, added := s.favorites.Save(s.gen.result, s.now())
	if added {
		favoritesSaved.Inc()
		s.logger.Info().Str("favorite_id", entry.ID).Msg("favorite saved")
	}
	return entry, added
}

// Favorites returns the saved entries, most recent first.
func (s *Session) Favorites() []FavoriteEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorites.List()
}

// TryAnotherOutfit clears the outfit slot and everything derived from it.
// The self image and favorites are kept.
func (s *Session) TryAnotherOutfit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.touch()
	s.intakeSeq[RoleOutfit]++
	delete(s.images, RoleOutfit)
	delete(s.intakeErr, RoleOutfit)
	s.gen.reset()
	s.fb.reset()
	s.logger.Info().Msg("outfit cleared")
}

// Wait blocks until background feedback requests have finished.
func (s *Session) Wait() { s.wg.Wait() }

// Close cancels background work and rejects further mutations.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.fb.reset()
	s.mu.Unlock()

	s.cancel()
	s.notifier.Stop()
	s.wg.Wait()
}

// LastActive is the time of the most recent operation.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

func (s *Session) pairLocked() Pair {
	var p Pair
	if img := s.images[RoleSelf]; img != nil {
		p.SelfID = img.ID
	}
	if img := s.images[RoleOutfit]; img != nil {
		p.OutfitID = img.ID
	}
	return p
}

func (s *Session) touch() { s.lastActive = s.opts.Now() }

func (s *Session) now() time.Time { return s.opts.Now() }

func copyImage(img *UploadedImage) *UploadedImage {
	if img == nil {
		return nil
	}
	c := *img
	return &c
}
