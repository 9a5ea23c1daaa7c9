package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nextsteps/nextsteps-cli/api"
	"github.com/nextsteps/nextsteps-cli/api/apitest"
	apperrors "github.com/nextsteps/nextsteps-cli/internal/errors"
)

const (
	testUsername   = "a@b.com"
	testPassword   = "x"
	testUserID     = "u1"
	testCredential = "t1"
)

type clientFixture struct {
	service *apitest.Service
	server  *httptest.Server
	client  *api.Client
}

func setupClientFixture(t *testing.T) *clientFixture {
	t.Helper()
	service := &apitest.Service{
		Accounts: map[string]apitest.Account{
			testUsername: {Password: testPassword, UserID: testUserID, Token: testCredential},
		},
		Profiles:   map[string]api.Profile{},
		Dashboards: map[string]api.DashboardSnapshot{},
	}
	server := httptest.NewServer(service.Handler())
	t.Cleanup(server.Close)
	return &clientFixture{
		service: service,
		server:  server,
		client:  api.NewClient(server.URL),
	}
}

func TestLoginAcceptedAndRejected(t *testing.T) {
	f := setupClientFixture(t)

	resp, err := f.client.Login(context.Background(), api.LoginRequest{Username: testUsername, Password: testPassword})
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.Equal(t, testUserID, resp.UserID)
	require.Equal(t, testUsername, resp.Email)
	require.Equal(t, testCredential, resp.Token)

	f.service.LoginMessage = "Bad username or password"
	resp, err = f.client.Login(context.Background(), api.LoginRequest{Username: testUsername, Password: "wrong"})
	require.NoError(t, err, "a rejected login is a decoded response, not an error")
	require.False(t, resp.Success)
	require.Equal(t, "Bad username or password", resp.Message)
}

func TestLoginConnectivityFailure(t *testing.T) {
	f := setupClientFixture(t)
	f.server.Close()

	_, err := f.client.Login(context.Background(), api.LoginRequest{Username: testUsername, Password: testPassword})
	require.Error(t, err)
	require.True(t, apperrors.Is(err, apperrors.ErrConnectivity))
}

func TestRegister(t *testing.T) {
	f := setupClientFixture(t)

	resp, err := f.client.Register(context.Background(), api.RegisterRequest{
		FirstName: "Ada", Surname: "Lovelace", Email: "new@b.com", Password: testPassword,
	})
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.Len(t, f.service.RegisterRequests, 1)

	f.service.RegisterMessage = "Email already registered"
	resp, err = f.client.Register(context.Background(), api.RegisterRequest{Email: "new@b.com", Password: testPassword})
	require.NoError(t, err)
	require.False(t, resp.Success)
	require.Equal(t, "Email already registered", resp.Message)
}

func TestProfileStatusMapping(t *testing.T) {
	f := setupClientFixture(t)
	f.service.Profiles[testUserID] = api.Profile{FirstName: "Ada", Surname: "Lovelace", Email: testUsername}

	profile, err := f.client.Profile(context.Background(), testUserID, testCredential)
	require.NoError(t, err)
	require.Equal(t, "Ada", profile.FirstName)

	_, err = f.client.Profile(context.Background(), "unknown", testCredential)
	require.True(t, apperrors.Is(err, apperrors.ErrProfileNotFound))
}

func TestDashboardAttachesBearerAndMaps401(t *testing.T) {
	f := setupClientFixture(t)
	f.service.Dashboards[testUserID] = api.DashboardSnapshot{
		Roadmaps: []api.RoadmapSummary{{ID: "r1", Title: "One"}},
		Stats:    api.DashboardStats{TotalRoadmaps: 1},
	}

	snapshot, err := f.client.Dashboard(context.Background(), testUserID, testCredential)
	require.NoError(t, err)
	require.Equal(t, 1, snapshot.Stats.TotalRoadmaps)

	_, err = f.client.Dashboard(context.Background(), testUserID, "stale-token")
	require.True(t, apperrors.Is(err, apperrors.ErrUnauthorized))

	_, err = f.client.Dashboard(context.Background(), testUserID, "")
	require.True(t, apperrors.Is(err, apperrors.ErrUnauthorized))
}

func TestGenerateRoadmap(t *testing.T) {
	f := setupClientFixture(t)
	f.service.Generated = api.Roadmap{
		TargetRole: "Data Engineer",
		Stages:     []api.Stage{{Title: "A"}, {Title: "B"}},
	}

	roadmap, err := f.client.GenerateRoadmap(context.Background(), api.GenerateRequest{
		UserID:    testUserID,
		GoalTitle: "Data Engineer",
		Skills:    []string{"Go"},
		Interests: []string{},
	}, testCredential)
	require.NoError(t, err)
	require.Equal(t, "Data Engineer", roadmap.TargetRole)
	require.Len(t, roadmap.Stages, 2)

	require.Len(t, f.service.GenerateRequests, 1)
	require.Equal(t, []string{"Go"}, f.service.GenerateRequests[0].Skills)
}

func TestGenerateRoadmapFailureCarriesStatus(t *testing.T) {
	f := setupClientFixture(t)
	f.service.GenerateStatus = http.StatusBadGateway

	_, err := f.client.GenerateRoadmap(context.Background(), api.GenerateRequest{UserID: testUserID}, testCredential)
	require.Error(t, err)
	code, ok := apperrors.StatusCode(err)
	require.True(t, ok)
	require.Equal(t, http.StatusBadGateway, code)
}

func TestDeleteRoadmap(t *testing.T) {
	f := setupClientFixture(t)

	require.NoError(t, f.client.DeleteRoadmap(context.Background(), "r1", testCredential))
	require.Equal(t, []string{"r1"}, f.service.DeletedIDs)

	f.service.DeleteStatus = http.StatusForbidden
	err := f.client.DeleteRoadmap(context.Background(), "r2", testCredential)
	require.Error(t, err)
	code, ok := apperrors.StatusCode(err)
	require.True(t, ok)
	require.Equal(t, http.StatusForbidden, code)
}
