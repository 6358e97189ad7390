package api

// ScheduledTestsResponse is the payload of GET /endpoint/tests/scheduled-tests.
type ScheduledTestsResponse struct {
	Tests []ScheduledTest `json:"tests"`
}

// ScheduledTest is a scheduled endpoint test. Note the vendor flips the
// enabled flag name to isEnabled on this resource.
type ScheduledTest struct {
	TestID      string `json:"testId"`
	TestName    string `json:"testName"`
	Server      string `json:"server"`
	CreatedDate string `json:"createdDate"`
	Type        string `json:"type"`
	IsEnabled   bool   `json:"isEnabled"`
}

// TestResultsResponse is one page of
// GET /endpoint/test-results/scheduled-tests/{testId}/http-server.
type TestResultsResponse struct {
	Results []TestResult `json:"results"`
	Links   Links        `json:"_links"`
}

// TestResult ties a scheduled test to the endpoint agent it ran on. This is
// the agent-reference source for scheduled tests.
type TestResult struct {
	TestID   string `json:"testId"`
	ServerIP string `json:"serverIp"`
	AgentID  string `json:"agentId"`
}
