package api

// UsageResponse is the payload of GET /usage. The endpoint takes no account
// group parameter; it covers every account group the token can see.
type UsageResponse struct {
	Usage Usage `json:"usage"`
}

type Usage struct {
	Quota                            Quota                  `json:"quota"`
	CloudUnitsUsed                   int64                  `json:"cloudUnitsUsed"`
	CloudUnitsProjected              int64                  `json:"cloudUnitsProjected"`
	CloudUnitsNextBillingPeriod      int64                  `json:"cloudUnitsNextBillingPeriod"`
	EnterpriseUnitsUsed              int64                  `json:"enterpriseUnitsUsed"`
	EnterpriseUnitsProjected         int64                  `json:"enterpriseUnitsProjected"`
	EnterpriseUnitsNextBillingPeriod int64                  `json:"enterpriseUnitsNextBillingPeriod"`
	Tests                            []TestUsage            `json:"tests"`
	EnterpriseAgents                 []EnterpriseAgentUsage `json:"enterpriseAgents"`
	EndpointAgents                   []EndpointAgentUsage   `json:"endpointAgents"`
}

type Quota struct {
	MonthStart         string `json:"monthStart"`
	MonthEnd           string `json:"monthEnd"`
	CloudUnitsIncluded int64  `json:"cloudUnitsIncluded"`
}

// TestUsage is per-test cloud unit consumption.
type TestUsage struct {
	AID                 int64  `json:"aid"`
	AccountGroupName    string `json:"accountGroupName"`
	TestID              int64  `json:"testId"`
	TestName            string `json:"testName"`
	TestType            string `json:"testType"`
	CloudUnitsUsed      int64  `json:"cloudUnitsUsed"`
	CloudUnitsProjected int64  `json:"cloudUnitsProjected"`
}

// EnterpriseAgentUsage is per-agent enterprise unit consumption.
type EnterpriseAgentUsage struct {
	AID                      int64  `json:"aid"`
	AccountGroupName         string `json:"accountGroupName"`
	AgentID                  int64  `json:"agentId"`
	AgentName                string `json:"agentName"`
	EnterpriseUnitsUsed      int64  `json:"enterpriseUnitsUsed"`
	EnterpriseUnitsProjected int64  `json:"enterpriseUnitsProjected"`
}

// EndpointAgentUsage is per-account-group endpoint agent consumption.
type EndpointAgentUsage struct {
	AID                     int64  `json:"aid"`
	AccountGroupName        string `json:"accountGroupName"`
	EndpointAgentsUsed      int64  `json:"endpointAgentsUsed"`
	EndpointAgentsProjected int64  `json:"endpointAgentsProjected"`
}
