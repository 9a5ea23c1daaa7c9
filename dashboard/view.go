// Package dashboard is the view model for the dashboard screen: the
// composite snapshot fetch, the 401 session teardown, and the
// confirmed optimistic roadmap deletion.
package dashboard

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/nextsteps/nextsteps-cli/api"
	apperrors "github.com/nextsteps/nextsteps-cli/internal/errors"
	"github.com/nextsteps/nextsteps-cli/sessions"
)

// Phase is the view's tagged state: loading -> ready | error, plus
// redirecting when the session is absent or invalidated.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReady
	PhaseError
	PhaseRedirecting
)

// State is a renderable snapshot of the view.
type State struct {
	Phase    Phase
	Snapshot *api.DashboardSnapshot
	Message  string
}

// Service is the slice of the remote API the dashboard consumes.
type Service interface {
	Dashboard(ctx context.Context, userID, credential string) (*api.DashboardSnapshot, error)
	DeleteRoadmap(ctx context.Context, id, credential string) error
}

// Confirmer asks the user a yes/no question. Deletion only proceeds on
// true; declining performs no action and is not an error.
type Confirmer func(prompt string) bool

// ConfirmDeletePrompt is the question asked before a roadmap is deleted.
const ConfirmDeletePrompt = "Are you sure you want to delete this roadmap? This action cannot be undone."

// View owns the dashboard state machine and the locally mutated
// snapshot copy.
type View struct {
	svc    Service
	store  sessions.Store
	logger zerolog.Logger

	mu    sync.Mutex
	state State
}

// ViewOption defines a function type to modify the View instance.
type ViewOption func(*View)

// WithLogger sets the view's logger.
func WithLogger(logger zerolog.Logger) ViewOption {
	return func(v *View) {
		v.logger = logger
	}
}

// New initializes a View in PhaseLoading.
func New(svc Service, store sessions.Store, options ...ViewOption) *View {
	v := &View{
		svc:    svc,
		store:  store,
		logger: zerolog.Nop(),
		state:  State{Phase: PhaseLoading},
	}
	for _, opt := range options {
		opt(v)
	}
	return v
}

// Mount fetches the snapshot with the stored credential attached. An
// absent session redirects without a fetch. A 401 clears the entire
// session store and redirects; this is the only path on which the
// client invalidates a session from a server signal.
func (v *View) Mount(ctx context.Context) State {
	sess, ok := v.store.Get()
	if !ok {
		return v.transition(State{Phase: PhaseRedirecting})
	}

	snapshot, err := v.svc.Dashboard(ctx, sess.UserID, sess.Credential)
	switch {
	case err == nil:
		return v.transition(State{Phase: PhaseReady, Snapshot: snapshot})
	case apperrors.Is(err, apperrors.ErrUnauthorized):
		v.logger.Info().Msg("credential rejected, clearing session")
		v.store.Clear()
		return v.transition(State{Phase: PhaseRedirecting})
	case apperrors.Is(err, apperrors.ErrConnectivity):
		v.logger.Warn().Err(err).Msg("dashboard fetch failed")
		return v.transition(State{Phase: PhaseError, Message: "Failed to connect to the server"})
	default:
		v.logger.Warn().Err(err).Msg("dashboard fetch rejected")
		return v.transition(State{Phase: PhaseError, Message: "Failed to load dashboard"})
	}
}

// DeleteRoadmap deletes the identified roadmap after explicit
// confirmation. On success the summary is removed from the local list
// and totalRoadmaps drops by exactly one; no other stat is recomputed
// and no re-fetch happens. On decline or failure the snapshot is left
// untouched; failures surface the response status when available.
func (v *View) DeleteRoadmap(ctx context.Context, id string, confirm Confirmer) error {
	if confirm == nil || !confirm(ConfirmDeletePrompt) {
		return nil
	}

	sess, ok := v.store.Get()
	if !ok {
		return &apperrors.UserFacing{Message: "Failed to delete roadmap", Kind: apperrors.ErrSessionAbsent}
	}

	if err := v.svc.DeleteRoadmap(ctx, id, sess.Credential); err != nil {
		v.logger.Warn().Err(err).Str("roadmap_id", id).Msg("roadmap delete failed")
		if code, ok := apperrors.StatusCode(err); ok {
			return &apperrors.UserFacing{
				Message: fmt.Sprintf("Failed to delete roadmap (Status: %d)", code),
				Kind:    apperrors.ErrRemote,
			}
		}
		return &apperrors.UserFacing{Message: "Failed to delete roadmap", Kind: apperrors.ErrConnectivity}
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.removeRoadmapLocked(id)
	return nil
}

// removeRoadmapLocked applies the optimistic local mutation. An id not
// present leaves the snapshot untouched.
func (v *View) removeRoadmapLocked(id string) {
	snapshot := v.state.Snapshot
	if snapshot == nil {
		return
	}
	index := -1
	for i, summary := range snapshot.Roadmaps {
		if summary.ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return
	}
	remaining := make([]api.RoadmapSummary, 0, len(snapshot.Roadmaps)-1)
	remaining = append(remaining, snapshot.Roadmaps[:index]...)
	remaining = append(remaining, snapshot.Roadmaps[index+1:]...)
	snapshot.Roadmaps = remaining
	snapshot.Stats.TotalRoadmaps--
}

// State returns the current snapshot.
func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *View) transition(next State) State {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = next
	return next
}
