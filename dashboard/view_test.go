package dashboard_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nextsteps/nextsteps-cli/api"
	"github.com/nextsteps/nextsteps-cli/dashboard"
	apperrors "github.com/nextsteps/nextsteps-cli/internal/errors"
	"github.com/nextsteps/nextsteps-cli/sessions"
	"github.com/nextsteps/nextsteps-cli/sessions/storefakes"
)

const (
	testUserID     = "u1"
	testCredential = "t1"
)

type fakeService struct {
	snapshot   *api.DashboardSnapshot
	fetchErr   error
	fetchCalls int

	deleteErr   error
	deleteCalls []string
}

var _ dashboard.Service = (*fakeService)(nil)

func (f *fakeService) Dashboard(context.Context, string, string) (*api.DashboardSnapshot, error) {
	f.fetchCalls++
	return f.snapshot, f.fetchErr
}

func (f *fakeService) DeleteRoadmap(_ context.Context, id, _ string) error {
	f.deleteCalls = append(f.deleteCalls, id)
	return f.deleteErr
}

func threeRoadmapSnapshot() *api.DashboardSnapshot {
	return &api.DashboardSnapshot{
		Roadmaps: []api.RoadmapSummary{
			{ID: "r1", Title: "One"},
			{ID: "r2", Title: "Two"},
			{ID: "r3", Title: "Three"},
		},
		Stats: api.DashboardStats{
			TotalRoadmaps:        3,
			TotalStages:          9,
			TotalStagesCompleted: 4,
		},
	}
}

type viewFixture struct {
	svc   *fakeService
	store *storefakes.FakeStore
	view  *dashboard.View
}

func setupViewFixture(t *testing.T, svc *fakeService) *viewFixture {
	t.Helper()
	store := storefakes.NewFakeStore()
	store.Seed(sessions.Session{UserID: testUserID, Email: "a@b.com", Credential: testCredential})
	return &viewFixture{svc: svc, store: store, view: dashboard.New(svc, store)}
}

func accept(string) bool  { return true }
func decline(string) bool { return false }

func TestMountRedirectsWithoutSession(t *testing.T) {
	svc := &fakeService{}
	view := dashboard.New(svc, storefakes.NewFakeStore())

	state := view.Mount(context.Background())
	require.Equal(t, dashboard.PhaseRedirecting, state.Phase)
	require.Zero(t, svc.fetchCalls, "no fetch may be attempted without a session")
}

func TestMountReady(t *testing.T) {
	f := setupViewFixture(t, &fakeService{snapshot: threeRoadmapSnapshot()})

	state := f.view.Mount(context.Background())
	require.Equal(t, dashboard.PhaseReady, state.Phase)
	require.Len(t, state.Snapshot.Roadmaps, 3)
}

func TestMountUnauthorizedClearsWholeSession(t *testing.T) {
	f := setupViewFixture(t, &fakeService{fetchErr: apperrors.ErrUnauthorized})

	state := f.view.Mount(context.Background())
	require.Equal(t, dashboard.PhaseRedirecting, state.Phase)
	require.Equal(t, 1, f.store.ClearCalls)
	_, ok := f.store.Get()
	require.False(t, ok, "401 must always leave an empty session store")
}

func TestMountFailureIsGenericError(t *testing.T) {
	f := setupViewFixture(t, &fakeService{fetchErr: &apperrors.StatusError{Code: 500}})

	state := f.view.Mount(context.Background())
	require.Equal(t, dashboard.PhaseError, state.Phase)
	require.Equal(t, "Failed to load dashboard", state.Message)
	require.Zero(t, f.store.ClearCalls, "only a 401 tears the session down")
}

func TestDeleteConfirmedRemovesSummaryAndDecrementsTotal(t *testing.T) {
	f := setupViewFixture(t, &fakeService{snapshot: threeRoadmapSnapshot()})
	f.view.Mount(context.Background())

	require.NoError(t, f.view.DeleteRoadmap(context.Background(), "r2", accept))
	require.Equal(t, []string{"r2"}, f.svc.deleteCalls)

	snapshot := f.view.State().Snapshot
	require.Equal(t, 2, snapshot.Stats.TotalRoadmaps)
	require.Len(t, snapshot.Roadmaps, 2)
	require.Equal(t, "r1", snapshot.Roadmaps[0].ID)
	require.Equal(t, "r3", snapshot.Roadmaps[1].ID)

	// Only totalRoadmaps is recomputed; the stage counters keep their
	// pre-delete values.
	require.Equal(t, 9, snapshot.Stats.TotalStages)
	require.Equal(t, 4, snapshot.Stats.TotalStagesCompleted)
}

func TestDeleteDeclinedDoesNothing(t *testing.T) {
	f := setupViewFixture(t, &fakeService{snapshot: threeRoadmapSnapshot()})
	before := *f.view.Mount(context.Background()).Snapshot

	require.NoError(t, f.view.DeleteRoadmap(context.Background(), "r2", decline))
	require.Empty(t, f.svc.deleteCalls, "declining must not issue the request")
	require.Equal(t, before, *f.view.State().Snapshot)
}

func TestDeleteFailureLeavesSnapshotUntouchedAndSurfacesStatus(t *testing.T) {
	f := setupViewFixture(t, &fakeService{
		snapshot:  threeRoadmapSnapshot(),
		deleteErr: &apperrors.StatusError{Code: 403},
	})
	before := *f.view.Mount(context.Background()).Snapshot

	err := f.view.DeleteRoadmap(context.Background(), "r2", accept)
	require.Error(t, err)
	require.Equal(t, "Failed to delete roadmap (Status: 403)", err.Error())
	require.Equal(t, before, *f.view.State().Snapshot)
}

func TestDeleteConnectivityFailureLeavesSnapshotUntouched(t *testing.T) {
	f := setupViewFixture(t, &fakeService{
		snapshot:  threeRoadmapSnapshot(),
		deleteErr: apperrors.ErrConnectivity,
	})
	before := *f.view.Mount(context.Background()).Snapshot

	err := f.view.DeleteRoadmap(context.Background(), "r2", accept)
	require.Error(t, err)
	require.Equal(t, "Failed to delete roadmap", err.Error())
	require.Equal(t, before, *f.view.State().Snapshot)
}

func TestDeleteAbsentIDLeavesSnapshotUntouched(t *testing.T) {
	f := setupViewFixture(t, &fakeService{snapshot: threeRoadmapSnapshot()})
	before := *f.view.Mount(context.Background()).Snapshot

	require.NoError(t, f.view.DeleteRoadmap(context.Background(), "missing", accept))
	require.Equal(t, before, *f.view.State().Snapshot)
}
