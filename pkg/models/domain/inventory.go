package domain

// Vendor identifiers are heterogeneous (numeric for enterprise resources,
// UUID strings for endpoint resources); the domain layer carries them all as
// strings so the correlator can join across record shapes.

type EnterpriseAgent struct {
	OrgID       string
	AgentID     string
	AgentName   string
	AgentType   string
	AgentState  string
	LastSeen    string
	CreatedDate string
	Utilization float64
	Location    string
	Enabled     bool
	Hostname    string
	IPAddresses []string
}

type EndpointAgent struct {
	ID              string
	Name            string
	ComputerName    string
	OSVersion       string
	Platform        string
	LastSeen        string
	Status          string
	Deleted         bool
	Version         string
	CreatedAt       string
	NumberOfClients int64
	LocationName    string
	AgentType       string
	LicenseType     string
}

// EnterpriseTest carries its assigned-agent references in AgentIDs, flattened
// from the embedded list in the vendor payload.
type EnterpriseTest struct {
	TestID        string
	TestName      string
	CreatedBy     string
	CreatedDate   string
	ModifiedBy    string
	ModifiedDate  string
	Type          string
	AlertsEnabled bool
	Enabled       bool
	Direction     string
	TargetAgentID string
	AgentIDs      []string
}

type ScheduledTest struct {
	TestID      string
	TestName    string
	Server      string
	CreatedDate string
	Type        string
	IsEnabled   bool
}

// TestResult is one scheduled-test result record; its AgentID is an agent
// reference for the owning test.
type TestResult struct {
	TestID   string
	ServerIP string
	AgentID  string
}

type Label struct {
	ID        string
	Name      string
	Color     string
	MatchType string
}

// AssignmentSource names the test kind an assignment row came from.
type AssignmentSource string

const (
	SourceEnterprise AssignmentSource = "enterprise"
	SourceScheduled  AssignmentSource = "scheduled"
)

// Assignment is the derived test-to-agent pairing, one row per referenced
// agent. AgentName is resolved from the account group's fetched agent sets
// and stays empty when the referenced agent was not fetched.
type Assignment struct {
	TestID    string
	TestName  string
	Source    AssignmentSource
	ServerIP  string
	AgentID   string
	AgentName string
}

// AccountInventory bundles everything fetched and derived for one account
// group.
type AccountInventory struct {
	Group          AccountGroup
	Agents         []EnterpriseAgent
	EndpointAgents []EndpointAgent
	Tests          []EnterpriseTest
	ScheduledTests []ScheduledTest
	Labels         []Label
	Assignments    []Assignment
}
