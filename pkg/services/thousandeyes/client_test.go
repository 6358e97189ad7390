package thousandeyes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netops-tools/te-reporter/pkg/models/api"
	"github.com/netops-tools/te-reporter/pkg/models/domain"
)

// fakeAPI serves a small slice of the vendor API surface, enough to exercise
// auth headers, pagination links and failure statuses.
type fakeAPI struct {
	server *httptest.Server

	authHeaders []string
	usageCalls  int
}

func newFakeAPI(t *testing.T) *fakeAPI {
	f := &fakeAPI{}

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			f.authHeaders = append(f.authHeaders, req.Header.Get("Authorization"))
			next.ServeHTTP(w, req)
		})
	})

	router.Get("/agents", func(w http.ResponseWriter, req *http.Request) {
		switch req.URL.Query().Get("aid") {
		case "111":
			writeJSON(t, w, api.AgentsResponse{Agents: []api.Agent{
				{AgentID: 1, AgentName: "fra-dc1"},
				{AgentID: 2, AgentName: "fra-dc2"},
			}})
		case "broken":
			_, _ = w.Write([]byte("{"))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error": "unknown account"}`))
		}
	})

	router.Get("/endpoint/agents", func(w http.ResponseWriter, req *http.Request) {
		if req.Header.Get("Accept") != acceptHAL {
			w.WriteHeader(http.StatusNotAcceptable)
			return
		}
		if req.URL.Query().Get("page") == "2" {
			writeJSON(t, w, api.EndpointAgentsResponse{Agents: []api.EndpointAgent{
				{ID: "ep-3", Name: "laptop-3"},
			}})
			return
		}
		writeJSON(t, w, api.EndpointAgentsResponse{
			Agents: []api.EndpointAgent{
				{ID: "ep-1", Name: "laptop-1"},
				{ID: "ep-2", Name: "laptop-2"},
			},
			Links: api.Links{Next: api.Link{Href: f.server.URL + "/endpoint/agents?aid=111&page=2"}},
		})
	})

	router.Get("/tests", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(t, w, api.TestsResponse{Tests: []api.Test{
			{TestID: 900, TestName: "edge http", Agents: []api.TestAgent{{AgentID: 1}, {AgentID: 2}}},
		}})
	})

	router.Get("/endpoint/tests/scheduled-tests", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(t, w, api.ScheduledTestsResponse{Tests: []api.ScheduledTest{
			{TestID: "sch-1", TestName: "vpn check", IsEnabled: true},
		}})
	})

	router.Get("/endpoint/test-results/scheduled-tests/{testID}/http-server", func(w http.ResponseWriter, req *http.Request) {
		switch chi.URLParam(req, "testID") {
		case "sch-1":
			if req.URL.Query().Get("page") == "2" {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			writeJSON(t, w, api.TestResultsResponse{
				Results: []api.TestResult{{TestID: "sch-1", ServerIP: "203.0.113.9", AgentID: "ep-1"}},
				Links:   api.Links{Next: api.Link{Href: f.server.URL + "/endpoint/test-results/scheduled-tests/sch-1/http-server?aid=111&page=2"}},
			})
		case "sch-denied":
			w.WriteHeader(http.StatusForbidden)
		default:
			writeJSON(t, w, api.TestResultsResponse{})
		}
	})

	router.Get("/endpoint/labels", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(t, w, api.LabelsResponse{Labels: []api.Label{
			{ID: "lb-1", Name: "branch", Color: "#93249F", MatchType: "and"},
		}})
	})

	router.Get("/usage", func(w http.ResponseWriter, req *http.Request) {
		f.usageCalls++
		writeJSON(t, w, api.UsageResponse{Usage: api.Usage{
			Quota:          api.Quota{MonthStart: "2024-04-01", MonthEnd: "2024-04-30", CloudUnitsIncluded: 1_000_000},
			CloudUnitsUsed: 250_000,
		}})
	})

	f.server = httptest.NewServer(router)
	t.Cleanup(f.server.Close)
	return f
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func newTestClient(f *fakeAPI) *Client {
	return NewClient(Settings{BaseURL: f.server.URL, APIKey: "test-key"})
}

func TestClient_GetAgents(t *testing.T) {
	fake := newFakeAPI(t)
	client := newTestClient(fake)

	agents, err := client.GetAgents(context.Background(), "111")
	require.NoError(t, err)

	require.Len(t, agents, 2)
	assert.Equal(t, "fra-dc1", agents[0].AgentName)
	require.NotEmpty(t, fake.authHeaders)
	assert.Equal(t, "Bearer test-key", fake.authHeaders[0])
}

func TestClient_GetAgents_ErrorStatus(t *testing.T) {
	fake := newFakeAPI(t)
	client := newTestClient(fake)

	_, err := client.GetAgents(context.Background(), "999")
	require.Error(t, err)

	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Contains(t, apiErr.Endpoint, "/agents")
	assert.Contains(t, apiErr.Error(), "unknown account")
}

func TestClient_GetAgents_MalformedBody(t *testing.T) {
	fake := newFakeAPI(t)
	client := newTestClient(fake)

	_, err := client.GetAgents(context.Background(), "broken")
	require.Error(t, err)

	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Zero(t, apiErr.Status)
}

func TestClient_GetEndpointAgents_FollowsPagination(t *testing.T) {
	fake := newFakeAPI(t)
	client := newTestClient(fake)

	agents, err := client.GetEndpointAgents(context.Background(), "111")
	require.NoError(t, err)

	require.Len(t, agents, 3)
	assert.Equal(t, "ep-1", agents[0].ID)
	assert.Equal(t, "ep-3", agents[2].ID)
}

func TestClient_GetScheduledTestResults(t *testing.T) {
	fake := newFakeAPI(t)
	client := newTestClient(fake)

	t.Run("keeps rows fetched before a failing page", func(t *testing.T) {
		results, err := client.GetScheduledTestResults(context.Background(), "111", "sch-1")
		require.NoError(t, err)

		require.Len(t, results, 1)
		assert.Equal(t, "ep-1", results[0].AgentID)
	})

	t.Run("denied test yields no rows and no error", func(t *testing.T) {
		results, err := client.GetScheduledTestResults(context.Background(), "111", "sch-denied")
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestClient_GetUsage(t *testing.T) {
	fake := newFakeAPI(t)
	client := newTestClient(fake)

	usage, err := client.GetUsage(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(250_000), usage.CloudUnitsUsed)
	assert.Equal(t, "2024-04-01", usage.Quota.MonthStart)
	assert.Equal(t, 1, fake.usageCalls)
}

func TestClient_GetLabels(t *testing.T) {
	fake := newFakeAPI(t)
	client := newTestClient(fake)

	labels, err := client.GetLabels(context.Background(), "111")
	require.NoError(t, err)

	require.Len(t, labels, 1)
	assert.Equal(t, "#93249F", labels[0].Color)
}
