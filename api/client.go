// Package api is the HTTP client for the remote NextSteps service.
// It maps transport and status failures onto the client's error
// taxonomy; callers never see raw HTTP details except through
// errors.StatusCode.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	apperrors "github.com/nextsteps/nextsteps-cli/internal/errors"
)

// Client calls the remote NextSteps service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// ClientOption defines a function type to modify the Client instance.
type ClientOption func(*Client)

// WithHTTPClient sets the underlying http.Client (primarily for testing).
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger used for request tracing and transport causes.
func WithLogger(logger zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient initializes a new Client for the service at baseURL.
func NewClient(baseURL string, options ...ClientOption) *Client {
	client := &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
		logger:     zerolog.Nop(),
	}
	for _, opt := range options {
		opt(client)
	}
	return client
}

// Login authenticates with username/password. A decoded response is
// returned for both accepted and rejected credentials; the caller
// inspects Success. Only transport and decode failures are errors.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	resp, err := c.do(ctx, http.MethodPost, "/api/auth/login", "", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var loginResp LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		return nil, errors.Wrap(apperrors.ErrConnectivity, "[Login] decode response")
	}
	// The service signals rejected credentials in the body, not the
	// status code alone.
	if resp.StatusCode >= http.StatusBadRequest {
		loginResp.Success = false
	}
	return &loginResp, nil
}

// Register creates a new account. Mirrors Login's success-in-body contract.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	resp, err := c.do(ctx, http.MethodPost, "/api/auth/register", "", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var registerResp RegisterResponse
	if err := json.NewDecoder(resp.Body).Decode(&registerResp); err != nil {
		return nil, errors.Wrap(apperrors.ErrConnectivity, "[Register] decode response")
	}
	if resp.StatusCode >= http.StatusBadRequest {
		registerResp.Success = false
	}
	return &registerResp, nil
}

// Profile fetches the profile for userID. The credential is attached
// when present but the endpoint does not require it.
func (c *Client) Profile(ctx context.Context, userID, credential string) (*Profile, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/profile/"+userID, credential, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var profile Profile
		if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
			return nil, errors.Wrap(apperrors.ErrConnectivity, "[Profile] decode response")
		}
		return &profile, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, apperrors.ErrProfileNotFound
	default:
		return nil, c.statusError("[Profile]", resp)
	}
}

// Dashboard fetches the composite dashboard snapshot. A 401 maps to
// ErrUnauthorized so callers can tear the session down.
func (c *Client) Dashboard(ctx context.Context, userID, credential string) (*DashboardSnapshot, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/dashboard/"+userID, credential, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var snapshot DashboardSnapshot
		if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
			return nil, errors.Wrap(apperrors.ErrConnectivity, "[Dashboard] decode response")
		}
		return &snapshot, nil
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, apperrors.ErrUnauthorized
	default:
		return nil, c.statusError("[Dashboard]", resp)
	}
}

// GenerateRoadmap requests generation of a personalised roadmap.
func (c *Client) GenerateRoadmap(ctx context.Context, req GenerateRequest, credential string) (*Roadmap, error) {
	resp, err := c.do(ctx, http.MethodPost, "/api/roadmaps/generate", credential, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.statusError("[GenerateRoadmap]", resp)
	}
	var roadmap Roadmap
	if err := json.NewDecoder(resp.Body).Decode(&roadmap); err != nil {
		return nil, errors.Wrap(apperrors.ErrConnectivity, "[GenerateRoadmap] decode response")
	}
	return &roadmap, nil
}

// DeleteRoadmap deletes the roadmap with the given id. Any 2xx status
// counts as success; a failure carries the response status for display.
func (c *Client) DeleteRoadmap(ctx context.Context, id, credential string) error {
	resp, err := c.do(ctx, http.MethodDelete, "/api/roadmaps/"+id, credential, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}
	return c.statusError("[DeleteRoadmap]", resp)
}

func (c *Client) do(ctx context.Context, method, path, credential string, body any) (*http.Response, error) {
	requestID := uuid.New().String()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrapf(err, "[do] marshal request %s %s", method, path)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, errors.Wrapf(err, "[do] build request %s %s", method, path)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if credential != "" {
		req.Header.Set("Authorization", "Bearer "+credential)
	}
	req.Header.Set("X-Request-ID", requestID)

	c.logger.Debug().
		Str("request_id", requestID).
		Str("method", method).
		Str("path", path).
		Msg("remote call")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Root cause is logged, not surfaced to the user.
		c.logger.Warn().
			Str("request_id", requestID).
			Str("method", method).
			Str("path", path).
			Err(err).
			Msg("remote call failed")
		return nil, errors.Wrapf(apperrors.ErrConnectivity, "[do] %s %s", method, path)
	}

	c.logger.Debug().
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Msg("remote response")
	return resp, nil
}

func (c *Client) statusError(op string, resp *http.Response) error {
	text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	c.logger.Warn().
		Str("op", op).
		Int("status", resp.StatusCode).
		Msg("remote call rejected")
	return fmt.Errorf("%s: %w", op, &apperrors.StatusError{Code: resp.StatusCode, Body: string(text)})
}
