package thousandeyes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/netops-tools/te-reporter/pkg/models/api"
	"github.com/netops-tools/te-reporter/pkg/models/domain"
)

const (
	acceptHAL = "application/hal+json"

	defaultTimeout = 30 * time.Second
	maxErrorBody   = 4 << 10
)

type Settings struct {
	BaseURL string
	APIKey  string

	// Client overrides the HTTP client, mainly for tests.
	Client *http.Client
}

// Client talks to the ThousandEyes v7 REST API. All listing calls are scoped
// to one account group via the aid query parameter; usage is organization-wide.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewClient(settings Settings) *Client {
	httpClient := settings.Client
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		baseURL: strings.TrimRight(settings.BaseURL, "/"),
		apiKey:  settings.APIKey,
		client:  httpClient,
	}
}

// GetAgents lists the enterprise agents visible in one account group.
func (c *Client) GetAgents(ctx context.Context, aid string) ([]api.Agent, error) {
	var resp api.AgentsResponse
	if err := c.get(ctx, c.endpoint("/agents", aid), "", &resp); err != nil {
		return nil, err
	}
	return resp.Agents, nil
}

// GetEndpointAgents lists endpoint agents, following HAL pagination links
// until the last page.
func (c *Client) GetEndpointAgents(ctx context.Context, aid string) ([]api.EndpointAgent, error) {
	logger := zerolog.Ctx(ctx)

	endpoint := c.endpoint("/endpoint/agents", aid)
	var agents []api.EndpointAgent
	for page := 1; endpoint != ""; page++ {
		var resp api.EndpointAgentsResponse
		if err := c.get(ctx, endpoint, acceptHAL, &resp); err != nil {
			return nil, err
		}
		agents = append(agents, resp.Agents...)
		logger.Debug().Str("aid", aid).Int("page", page).Int("count", len(resp.Agents)).
			Msg("fetched endpoint agents page")
		endpoint = resp.Links.Next.Href
	}
	return agents, nil
}

// GetTests lists the enterprise tests configured in one account group,
// including each test's assigned agent references.
func (c *Client) GetTests(ctx context.Context, aid string) ([]api.Test, error) {
	var resp api.TestsResponse
	if err := c.get(ctx, c.endpoint("/tests", aid), "", &resp); err != nil {
		return nil, err
	}
	return resp.Tests, nil
}

// GetScheduledTests lists the scheduled endpoint tests of one account group.
func (c *Client) GetScheduledTests(ctx context.Context, aid string) ([]api.ScheduledTest, error) {
	var resp api.ScheduledTestsResponse
	if err := c.get(ctx, c.endpoint("/endpoint/tests/scheduled-tests", aid), "", &resp); err != nil {
		return nil, err
	}
	return resp.Tests, nil
}

// GetScheduledTestResults lists the http-server results of one scheduled
// test, following pagination. Results availability is spotty on this API, so
// an HTTP error does not fail the call: whatever was fetched before the
// failing page is returned with a warning. Transport and decode failures are
// still hard errors.
func (c *Client) GetScheduledTestResults(ctx context.Context, aid, testID string) ([]api.TestResult, error) {
	logger := zerolog.Ctx(ctx)

	endpoint := c.endpoint("/endpoint/test-results/scheduled-tests/"+url.PathEscape(testID)+"/http-server", aid)
	var results []api.TestResult
	for endpoint != "" {
		var resp api.TestResultsResponse
		if err := c.get(ctx, endpoint, "", &resp); err != nil {
			var apiErr *domain.APIError
			if errors.As(err, &apiErr) && apiErr.Status != 0 {
				logger.Warn().Str("aid", aid).Str("test_id", testID).Int("status", apiErr.Status).
					Msg("could not fetch scheduled test results, keeping rows fetched so far")
				return results, nil
			}
			return nil, err
		}
		results = append(results, resp.Results...)
		endpoint = resp.Links.Next.Href
	}
	return results, nil
}

// GetLabels lists the endpoint labels of one account group.
func (c *Client) GetLabels(ctx context.Context, aid string) ([]api.Label, error) {
	var resp api.LabelsResponse
	if err := c.get(ctx, c.endpoint("/endpoint/labels", aid), "", &resp); err != nil {
		return nil, err
	}
	return resp.Labels, nil
}

// GetUsage fetches organization-wide unit usage for the current quota month.
// Unlike the listing calls it is not scoped to an account group.
func (c *Client) GetUsage(ctx context.Context) (api.Usage, error) {
	var resp api.UsageResponse
	if err := c.get(ctx, c.baseURL+"/usage", "", &resp); err != nil {
		return api.Usage{}, err
	}
	return resp.Usage, nil
}

func (c *Client) endpoint(path, aid string) string {
	query := url.Values{"aid": {aid}}
	return c.baseURL + path + "?" + query.Encode()
}

func (c *Client) get(ctx context.Context, endpoint, accept string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &domain.APIError{Endpoint: endpoint, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &domain.APIError{Endpoint: endpoint, Err: err}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("failed to close response body")
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		apiErr := &domain.APIError{Endpoint: endpoint, Status: resp.StatusCode}
		if msg := bytes.TrimSpace(body); len(msg) > 0 {
			apiErr.Err = errors.New(string(msg))
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.APIError{Endpoint: endpoint, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}
