// Package auth implements the login, registration and logout flows.
// It is the only writer of the session store besides the dashboard's
// 401 teardown.
package auth

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/nextsteps/nextsteps-cli/api"
	"github.com/nextsteps/nextsteps-cli/guard"
	apperrors "github.com/nextsteps/nextsteps-cli/internal/errors"
	"github.com/nextsteps/nextsteps-cli/sessions"
)

const connectivityMessage = "Failed to connect to the server. Please try again."

// Service is the slice of the remote API the auth flows consume.
type Service interface {
	Login(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error)
	Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error)
}

// Flow drives authentication against the remote service and owns the
// login/logout writes to the session store.
type Flow struct {
	svc    Service
	store  sessions.Store
	logger zerolog.Logger
}

// FlowOption defines a function type to modify the Flow instance.
type FlowOption func(*Flow)

// WithLogger sets the flow's logger.
func WithLogger(logger zerolog.Logger) FlowOption {
	return func(f *Flow) {
		f.logger = logger
	}
}

// NewFlow initializes a Flow with its required dependencies.
func NewFlow(svc Service, store sessions.Store, options ...FlowOption) (*Flow, error) {
	if svc == nil {
		return nil, errors.New("[NewFlow] service is required")
	}
	if store == nil {
		return nil, errors.New("[NewFlow] session store is required")
	}
	flow := &Flow{
		svc:    svc,
		store:  store,
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		opt(flow)
	}
	return flow, nil
}

// Login authenticates and, on success, persists the session and
// directs to the profile view. On rejected credentials the session is
// left untouched and the server's message (or a generic fallback) is
// surfaced inline via the returned error.
func (f *Flow) Login(ctx context.Context, username, password string) (guard.Route, error) {
	if err := validateLoginInput(username, password); err != nil {
		return "", &apperrors.UserFacing{Message: err.Error(), Kind: apperrors.ErrValidation}
	}

	resp, err := f.svc.Login(ctx, api.LoginRequest{Username: username, Password: password})
	if err != nil {
		f.logger.Warn().Err(err).Msg("login request failed")
		return "", &apperrors.UserFacing{Message: connectivityMessage, Kind: apperrors.ErrConnectivity}
	}

	if !resp.Success {
		message := resp.Message
		if message == "" {
			message = LoginFailedErr.Error()
		}
		return "", &apperrors.UserFacing{Message: message, Kind: apperrors.ErrInvalidCredentials}
	}

	f.store.Set(sessions.Session{
		UserID:     resp.UserID,
		Email:      resp.Email,
		Credential: resp.Token,
	})
	return guard.RouteProfile, nil
}

// Register creates an account and directs to the login view on
// success. The password-confirmation check runs before any request.
func (f *Flow) Register(ctx context.Context, firstName, surname, email, password, confirmPassword string) (guard.Route, error) {
	if err := validateRegisterInput(email, password, confirmPassword); err != nil {
		return "", &apperrors.UserFacing{Message: err.Error(), Kind: apperrors.ErrValidation}
	}

	resp, err := f.svc.Register(ctx, api.RegisterRequest{
		FirstName: firstName,
		Surname:   surname,
		Email:     email,
		Password:  password,
	})
	if err != nil {
		f.logger.Warn().Err(err).Msg("register request failed")
		return "", &apperrors.UserFacing{Message: connectivityMessage, Kind: apperrors.ErrConnectivity}
	}

	if !resp.Success {
		message := resp.Message
		if message == "" {
			message = RegistrationErr.Error()
		}
		return "", &apperrors.UserFacing{Message: message, Kind: apperrors.ErrValidation}
	}
	return guard.RouteLogin, nil
}

// Logout clears the persisted session and directs to login.
func (f *Flow) Logout() guard.Route {
	f.store.Clear()
	return guard.RouteLogin
}
