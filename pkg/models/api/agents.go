package api

// AgentsResponse is the payload of GET /agents.
type AgentsResponse struct {
	Agents []Agent `json:"agents"`
}

// Agent is an enterprise agent as returned by the vendor. Timestamps are
// vendor-formatted strings and pass through unparsed.
type Agent struct {
	OrgID       int64    `json:"orgId"`
	AgentID     int64    `json:"agentId"`
	AgentName   string   `json:"agentName"`
	AgentType   string   `json:"agentType"`
	AgentState  string   `json:"agentState"`
	LastSeen    string   `json:"lastSeen"`
	CreatedDate string   `json:"createdDate"`
	Utilization float64  `json:"utilization"`
	Location    string   `json:"location"`
	Enabled     bool     `json:"enabled"`
	Hostname    string   `json:"hostname"`
	IPAddresses []string `json:"ipAddresses"`
}
