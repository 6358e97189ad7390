package inventory

import (
	"context"

	"github.com/netops-tools/te-reporter/pkg/adapters"
	"github.com/netops-tools/te-reporter/pkg/models/api"
	"github.com/netops-tools/te-reporter/pkg/models/domain"
)

// API is the slice of the vendor client the explorer needs.
type API interface {
	GetAgents(ctx context.Context, aid string) ([]api.Agent, error)
	GetEndpointAgents(ctx context.Context, aid string) ([]api.EndpointAgent, error)
	GetTests(ctx context.Context, aid string) ([]api.Test, error)
	GetScheduledTests(ctx context.Context, aid string) ([]api.ScheduledTest, error)
	GetScheduledTestResults(ctx context.Context, aid, testID string) ([]api.TestResult, error)
	GetLabels(ctx context.Context, aid string) ([]api.Label, error)
}

// Explorer lists one account group's monitoring inventory as domain records.
// A payload record missing its identity fields fails the listing, so schema
// drift shows up as an API error instead of half-empty report rows.
type Explorer interface {
	ListAgents(ctx context.Context, aid string) ([]domain.EnterpriseAgent, error)
	ListEndpointAgents(ctx context.Context, aid string) ([]domain.EndpointAgent, error)
	ListEnterpriseTests(ctx context.Context, aid string) ([]domain.EnterpriseTest, error)
	ListScheduledTests(ctx context.Context, aid string) ([]domain.ScheduledTest, error)
	ListScheduledTestResults(ctx context.Context, aid, testID string) ([]domain.TestResult, error)
	ListLabels(ctx context.Context, aid string) ([]domain.Label, error)
}

type inventoryExplorer struct {
	client API
}

func NewExplorer(client API) Explorer {
	return &inventoryExplorer{client: client}
}

func (e *inventoryExplorer) ListAgents(ctx context.Context, aid string) ([]domain.EnterpriseAgent, error) {
	records, err := e.client.GetAgents(ctx, aid)
	if err != nil {
		return nil, err
	}

	agents := make([]domain.EnterpriseAgent, 0, len(records))
	for _, record := range records {
		agent, err := adapters.MapAgentToDomain(record)
		if err != nil {
			return nil, &domain.APIError{Endpoint: "/agents", Err: err}
		}
		agents = append(agents, agent)
	}
	return agents, nil
}

func (e *inventoryExplorer) ListEndpointAgents(ctx context.Context, aid string) ([]domain.EndpointAgent, error) {
	records, err := e.client.GetEndpointAgents(ctx, aid)
	if err != nil {
		return nil, err
	}

	agents := make([]domain.EndpointAgent, 0, len(records))
	for _, record := range records {
		agent, err := adapters.MapEndpointAgentToDomain(record)
		if err != nil {
			return nil, &domain.APIError{Endpoint: "/endpoint/agents", Err: err}
		}
		agents = append(agents, agent)
	}
	return agents, nil
}

func (e *inventoryExplorer) ListEnterpriseTests(ctx context.Context, aid string) ([]domain.EnterpriseTest, error) {
	records, err := e.client.GetTests(ctx, aid)
	if err != nil {
		return nil, err
	}

	tests := make([]domain.EnterpriseTest, 0, len(records))
	for _, record := range records {
		test, err := adapters.MapEnterpriseTestToDomain(record)
		if err != nil {
			return nil, &domain.APIError{Endpoint: "/tests", Err: err}
		}
		tests = append(tests, test)
	}
	return tests, nil
}

func (e *inventoryExplorer) ListScheduledTests(ctx context.Context, aid string) ([]domain.ScheduledTest, error) {
	records, err := e.client.GetScheduledTests(ctx, aid)
	if err != nil {
		return nil, err
	}

	tests := make([]domain.ScheduledTest, 0, len(records))
	for _, record := range records {
		test, err := adapters.MapScheduledTestToDomain(record)
		if err != nil {
			return nil, &domain.APIError{Endpoint: "/endpoint/tests/scheduled-tests", Err: err}
		}
		tests = append(tests, test)
	}
	return tests, nil
}

func (e *inventoryExplorer) ListScheduledTestResults(ctx context.Context, aid, testID string) ([]domain.TestResult, error) {
	records, err := e.client.GetScheduledTestResults(ctx, aid, testID)
	if err != nil {
		return nil, err
	}

	results := make([]domain.TestResult, 0, len(records))
	for _, record := range records {
		result, err := adapters.MapTestResultToDomain(record)
		if err != nil {
			return nil, &domain.APIError{Endpoint: "/endpoint/test-results", Err: err}
		}
		results = append(results, result)
	}
	return results, nil
}

func (e *inventoryExplorer) ListLabels(ctx context.Context, aid string) ([]domain.Label, error) {
	records, err := e.client.GetLabels(ctx, aid)
	if err != nil {
		return nil, err
	}

	labels := make([]domain.Label, 0, len(records))
	for _, record := range records {
		label, err := adapters.MapLabelToDomain(record)
		if err != nil {
			return nil, &domain.APIError{Endpoint: "/endpoint/labels", Err: err}
		}
		labels = append(labels, label)
	}
	return labels, nil
}
