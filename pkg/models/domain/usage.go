package domain

// Usage is the vendor-computed consumption summary, fetched once per run for
// all account groups the token can see. The quota block is flattened into the
// summary fields.
type Usage struct {
	MonthStart                       string
	MonthEnd                         string
	CloudUnitsIncluded               int64
	CloudUnitsUsed                   int64
	CloudUnitsProjected              int64
	CloudUnitsNextBillingPeriod      int64
	EnterpriseUnitsUsed              int64
	EnterpriseUnitsProjected         int64
	EnterpriseUnitsNextBillingPeriod int64
	Tests                            []TestUsage
	EnterpriseAgents                 []EnterpriseAgentUsage
	EndpointAgents                   []EndpointAgentUsage
}

type TestUsage struct {
	AID                 string
	AccountGroupName    string
	TestID              string
	TestName            string
	TestType            string
	CloudUnitsUsed      int64
	CloudUnitsProjected int64
}

type EnterpriseAgentUsage struct {
	AID                      string
	AccountGroupName         string
	AgentID                  string
	AgentName                string
	EnterpriseUnitsUsed      int64
	EnterpriseUnitsProjected int64
}

type EndpointAgentUsage struct {
	AID                     string
	AccountGroupName        string
	EndpointAgentsUsed      int64
	EndpointAgentsProjected int64
}
