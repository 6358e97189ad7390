package api

// TestsResponse is the payload of GET /tests.
type TestsResponse struct {
	Tests []Test `json:"tests"`
}

// Test is an enterprise test. The embedded Agents list carries the agent
// references the test is assigned to; it is absent on some test types.
type Test struct {
	TestID        int64       `json:"testId"`
	TestName      string      `json:"testName"`
	CreatedBy     string      `json:"createdBy"`
	CreatedDate   string      `json:"createdDate"`
	ModifiedBy    string      `json:"modifiedBy"`
	ModifiedDate  string      `json:"modifiedDate"`
	Type          string      `json:"type"`
	AlertsEnabled bool        `json:"alertsEnabled"`
	Enabled       bool        `json:"enabled"`
	Direction     string      `json:"direction"`
	TargetAgentID int64       `json:"targetAgentId"`
	Agents        []TestAgent `json:"agents"`
}

// TestAgent is an agent reference embedded in a test payload.
type TestAgent struct {
	AgentID int64 `json:"agentId"`
}
