package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/netops-tools/te-reporter/pkg/models/api"
	"github.com/netops-tools/te-reporter/pkg/models/domain"
)

type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) GetAgents(ctx context.Context, aid string) ([]api.Agent, error) {
	args := m.Called(ctx, aid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]api.Agent), args.Error(1)
}

func (m *mockAPI) GetEndpointAgents(ctx context.Context, aid string) ([]api.EndpointAgent, error) {
	args := m.Called(ctx, aid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]api.EndpointAgent), args.Error(1)
}

func (m *mockAPI) GetTests(ctx context.Context, aid string) ([]api.Test, error) {
	args := m.Called(ctx, aid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]api.Test), args.Error(1)
}

func (m *mockAPI) GetScheduledTests(ctx context.Context, aid string) ([]api.ScheduledTest, error) {
	args := m.Called(ctx, aid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]api.ScheduledTest), args.Error(1)
}

func (m *mockAPI) GetScheduledTestResults(ctx context.Context, aid, testID string) ([]api.TestResult, error) {
	args := m.Called(ctx, aid, testID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]api.TestResult), args.Error(1)
}

func (m *mockAPI) GetLabels(ctx context.Context, aid string) ([]api.Label, error) {
	args := m.Called(ctx, aid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]api.Label), args.Error(1)
}

func TestExplorer_ListAgents(t *testing.T) {
	client := &mockAPI{}
	client.On("GetAgents", mock.Anything, "111").Return([]api.Agent{
		{OrgID: 77, AgentID: 4501, AgentName: "fra-dc1", IPAddresses: []string{"10.0.0.4"}},
	}, nil)

	agents, err := NewExplorer(client).ListAgents(context.Background(), "111")
	require.NoError(t, err)

	require.Len(t, agents, 1)
	assert.Equal(t, "77", agents[0].OrgID)
	assert.Equal(t, "4501", agents[0].AgentID)
	assert.Equal(t, "fra-dc1", agents[0].AgentName)
}

func TestExplorer_ClientErrorPassesThrough(t *testing.T) {
	client := &mockAPI{}
	client.On("GetAgents", mock.Anything, "111").Return(nil, &domain.APIError{
		Endpoint: "/agents", Status: 401, Err: errors.New("unauthorized"),
	})

	_, err := NewExplorer(client).ListAgents(context.Background(), "111")
	require.Error(t, err)

	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.Status)
}

func TestExplorer_RecordMissingIdentityFieldFailsListing(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(*mockAPI)
		list     func(Explorer) error
		endpoint string
	}{
		{
			name: "agent without agentId",
			setup: func(m *mockAPI) {
				m.On("GetAgents", mock.Anything, "111").Return([]api.Agent{{AgentName: "fra-dc1"}}, nil)
			},
			list: func(e Explorer) error {
				_, err := e.ListAgents(context.Background(), "111")
				return err
			},
			endpoint: "/agents",
		},
		{
			name: "endpoint agent without id",
			setup: func(m *mockAPI) {
				m.On("GetEndpointAgents", mock.Anything, "111").Return([]api.EndpointAgent{{Name: "laptop-1"}}, nil)
			},
			list: func(e Explorer) error {
				_, err := e.ListEndpointAgents(context.Background(), "111")
				return err
			},
			endpoint: "/endpoint/agents",
		},
		{
			name: "test without testName",
			setup: func(m *mockAPI) {
				m.On("GetTests", mock.Anything, "111").Return([]api.Test{{TestID: 900}}, nil)
			},
			list: func(e Explorer) error {
				_, err := e.ListEnterpriseTests(context.Background(), "111")
				return err
			},
			endpoint: "/tests",
		},
		{
			name: "scheduled test without testId",
			setup: func(m *mockAPI) {
				m.On("GetScheduledTests", mock.Anything, "111").Return([]api.ScheduledTest{{TestName: "vpn check"}}, nil)
			},
			list: func(e Explorer) error {
				_, err := e.ListScheduledTests(context.Background(), "111")
				return err
			},
			endpoint: "/endpoint/tests/scheduled-tests",
		},
		{
			name: "result without agentId",
			setup: func(m *mockAPI) {
				m.On("GetScheduledTestResults", mock.Anything, "111", "sch-1").Return([]api.TestResult{{TestID: "sch-1"}}, nil)
			},
			list: func(e Explorer) error {
				_, err := e.ListScheduledTestResults(context.Background(), "111", "sch-1")
				return err
			},
			endpoint: "/endpoint/test-results",
		},
		{
			name: "label without name",
			setup: func(m *mockAPI) {
				m.On("GetLabels", mock.Anything, "111").Return([]api.Label{{ID: "lb-1"}}, nil)
			},
			list: func(e Explorer) error {
				_, err := e.ListLabels(context.Background(), "111")
				return err
			},
			endpoint: "/endpoint/labels",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockAPI{}
			tt.setup(client)

			err := tt.list(NewExplorer(client))
			require.Error(t, err)

			var apiErr *domain.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.endpoint, apiErr.Endpoint)
			assert.Zero(t, apiErr.Status)
		})
	}
}
