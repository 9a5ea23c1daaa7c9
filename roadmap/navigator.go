// Package roadmap orchestrates roadmap generation and stage-by-stage
// navigation through the result.
package roadmap

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/nextsteps/nextsteps-cli/api"
	apperrors "github.com/nextsteps/nextsteps-cli/internal/errors"
	"github.com/nextsteps/nextsteps-cli/internal/utils"
	"github.com/nextsteps/nextsteps-cli/sessions"
)

// DefaultGoalTitle is sent to the generator when the profile has no
// goal set.
const DefaultGoalTitle = "Software Developer"

// Phase is the navigator's tagged state:
// idle -> generating -> viewing, with error reachable from generating.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseGenerating
	PhaseViewing
	PhaseError
)

// State is a renderable snapshot of the navigator. Roadmap is non-nil
// only in PhaseViewing; Message only in PhaseError.
type State struct {
	Phase   Phase
	Roadmap *api.Roadmap
	Cursor  int
	Message string
}

// Service is the slice of the remote API the navigator consumes.
type Service interface {
	Profile(ctx context.Context, userID, credential string) (*api.Profile, error)
	GenerateRoadmap(ctx context.Context, req api.GenerateRequest, credential string) (*api.Roadmap, error)
}

type profileResult struct {
	profile *api.Profile
}

// Navigator holds the generated roadmap and the stage cursor. The
// profile prefetch started by Mount is owned by its own future and is
// joined only at the moment Generate reads it, so a prefetch that
// resolves mid-generation cannot race the request being built.
type Navigator struct {
	svc    Service
	store  sessions.Store
	logger zerolog.Logger

	mu      sync.Mutex
	phase   Phase
	roadmap *api.Roadmap
	cursor  int
	message string

	prefetch chan profileResult
	profile  *api.Profile
}

// NavigatorOption defines a function type to modify the Navigator instance.
type NavigatorOption func(*Navigator)

// WithLogger sets the navigator's logger.
func WithLogger(logger zerolog.Logger) NavigatorOption {
	return func(n *Navigator) {
		n.logger = logger
	}
}

// New initializes a Navigator in PhaseIdle with no roadmap and cursor 0.
func New(svc Service, store sessions.Store, options ...NavigatorOption) *Navigator {
	n := &Navigator{
		svc:    svc,
		store:  store,
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		opt(n)
	}
	return n
}

// Mount starts the best-effort profile prefetch. A failed fetch is
// logged and swallowed; generation proceeds with defaulted fields.
// The returned channel closes when the prefetch has settled; callers
// are free to ignore it.
func (n *Navigator) Mount(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	sess, ok := n.store.Get()
	if !ok || sess.UserID == "" {
		close(done)
		return done
	}

	future := make(chan profileResult, 1)
	n.mu.Lock()
	n.prefetch = future
	n.mu.Unlock()

	go func() {
		defer close(done)
		fetched, err := n.svc.Profile(ctx, sess.UserID, sess.Credential)
		if err != nil {
			n.logger.Warn().Err(err).Msg("profile prefetch failed")
			future <- profileResult{}
			return
		}
		future <- profileResult{profile: fetched}
	}()
	return done
}

// Generate requests a roadmap built from whatever the prefetch has
// resolved by now. It resets the cursor, transitions to generating,
// and applies exactly one transition when the response resolves. A
// second call while one is in flight is not prevented; the later
// response wins.
func (n *Navigator) Generate(ctx context.Context) State {
	sess, ok := n.store.Get()
	if !ok {
		return n.fail("Failed to generate roadmap")
	}

	n.mu.Lock()
	n.phase = PhaseGenerating
	n.cursor = 0
	n.message = ""
	profile := n.joinPrefetchLocked()
	n.mu.Unlock()

	req := api.GenerateRequest{
		UserID:    sess.UserID,
		GoalTitle: DefaultGoalTitle,
		Skills:    []string{},
		Interests: []string{},
	}
	if profile != nil {
		req.FirstName = profile.FirstName
		req.Surname = profile.Surname
		if utils.Value(profile.GoalTitle) != "" {
			req.GoalTitle = *profile.GoalTitle
		}
		if profile.Skills != nil {
			req.Skills = profile.Skills
		}
		if profile.Interests != nil {
			req.Interests = profile.Interests
		}
	}

	generated, err := n.svc.GenerateRoadmap(ctx, req, sess.Credential)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrConnectivity) {
			n.logger.Warn().Err(err).Msg("roadmap generation failed")
			return n.fail("Failed to connect to the server")
		}
		n.logger.Warn().Err(err).Msg("roadmap generation rejected")
		return n.fail("Failed to generate roadmap")
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	n.phase = PhaseViewing
	n.roadmap = generated
	n.cursor = 0
	n.message = ""
	return n.snapshotLocked()
}

// joinPrefetchLocked drains the prefetch future without blocking. An
// unresolved prefetch simply yields the last known profile (nil on the
// first generation), per the best-effort contract.
func (n *Navigator) joinPrefetchLocked() *api.Profile {
	if n.prefetch == nil {
		return n.profile
	}
	select {
	case res := <-n.prefetch:
		n.prefetch = nil
		if res.profile != nil {
			n.profile = res.profile
		}
	default:
	}
	return n.profile
}

// Previous moves the cursor back one stage. At the first stage it is a
// no-op, not an error.
func (n *Navigator) Previous() State {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.roadmap != nil && n.cursor > 0 {
		n.cursor--
	}
	return n.snapshotLocked()
}

// Next advances the cursor one stage. At the last stage it is a no-op.
func (n *Navigator) Next() State {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.roadmap != nil && n.cursor < len(n.roadmap.Stages)-1 {
		n.cursor++
	}
	return n.snapshotLocked()
}

// State returns the current snapshot.
func (n *Navigator) State() State {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.snapshotLocked()
}

func (n *Navigator) fail(message string) State {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.phase = PhaseError
	n.roadmap = nil
	n.cursor = 0
	n.message = message
	return n.snapshotLocked()
}

func (n *Navigator) snapshotLocked() State {
	return State{
		Phase:   n.phase,
		Roadmap: n.roadmap,
		Cursor:  n.cursor,
		Message: n.message,
	}
}
