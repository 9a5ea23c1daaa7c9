// Package profile is the view model for the profile screen: a
// read-only snapshot of the remote profile plus the display
// derivations the screen renders.
package profile

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/nextsteps/nextsteps-cli/api"
	apperrors "github.com/nextsteps/nextsteps-cli/internal/errors"
	"github.com/nextsteps/nextsteps-cli/sessions"
)

// Phase is the tagged state of the view. Exactly one phase holds at a
// time; Profile is non-nil only in PhaseReady and Message only in
// PhaseError.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReady
	PhaseError
	PhaseRedirecting
)

// State is a snapshot of the view model, safe to render after the
// mutating call returns.
type State struct {
	Phase   Phase
	Profile *api.Profile
	Message string
}

// Service is the slice of the remote API this view consumes.
type Service interface {
	Profile(ctx context.Context, userID, credential string) (*api.Profile, error)
}

// ViewModel owns the profile screen's state machine:
// loading -> ready | error | redirecting.
type ViewModel struct {
	svc    Service
	store  sessions.Store
	logger zerolog.Logger

	mu    sync.Mutex
	state State
}

// ViewModelOption defines a function type to modify the ViewModel instance.
type ViewModelOption func(*ViewModel)

// WithLogger sets the view model's logger.
func WithLogger(logger zerolog.Logger) ViewModelOption {
	return func(vm *ViewModel) {
		vm.logger = logger
	}
}

// New initializes a ViewModel in PhaseLoading.
func New(svc Service, store sessions.Store, options ...ViewModelOption) *ViewModel {
	vm := &ViewModel{
		svc:    svc,
		store:  store,
		logger: zerolog.Nop(),
		state:  State{Phase: PhaseLoading},
	}
	for _, opt := range options {
		opt(vm)
	}
	return vm
}

// Mount fetches the profile keyed by the stored user id and applies
// exactly one transition out of PhaseLoading. Without a stored user id
// it redirects to login without issuing a request.
func (vm *ViewModel) Mount(ctx context.Context) State {
	sess, ok := vm.store.Get()
	if !ok || sess.UserID == "" {
		return vm.transition(State{Phase: PhaseRedirecting})
	}

	fetched, err := vm.svc.Profile(ctx, sess.UserID, sess.Credential)
	switch {
	case err == nil:
		return vm.transition(State{Phase: PhaseReady, Profile: fetched})
	case apperrors.Is(err, apperrors.ErrProfileNotFound):
		return vm.transition(State{Phase: PhaseError, Message: "Profile not found"})
	case apperrors.Is(err, apperrors.ErrConnectivity):
		vm.logger.Warn().Err(err).Msg("profile fetch failed")
		return vm.transition(State{Phase: PhaseError, Message: "Failed to connect to the server"})
	default:
		vm.logger.Warn().Err(err).Msg("profile fetch rejected")
		return vm.transition(State{Phase: PhaseError, Message: "Failed to load profile"})
	}
}

// State returns the current snapshot.
func (vm *ViewModel) State() State {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.state
}

func (vm *ViewModel) transition(next State) State {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.state = next
	return next
}
