package api

// EndpointAgentsResponse is one page of GET /endpoint/agents (HAL+JSON).
type EndpointAgentsResponse struct {
	Agents []EndpointAgent `json:"agents"`
	Links  Links           `json:"_links"`
}

// EndpointAgent is an agent installed on a user device. IDs are vendor UUIDs.
type EndpointAgent struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	ComputerName    string        `json:"computerName"`
	OSVersion       string        `json:"osVersion"`
	Platform        string        `json:"platform"`
	LastSeen        string        `json:"lastSeen"`
	Status          string        `json:"status"`
	Deleted         bool          `json:"deleted"`
	Version         string        `json:"version"`
	CreatedAt       string        `json:"createdAt"`
	NumberOfClients int64         `json:"numberOfClients"`
	Location        AgentLocation `json:"location"`
	AgentType       string        `json:"agentType"`
	LicenseType     string        `json:"licenseType"`
}

type AgentLocation struct {
	LocationName string `json:"locationName"`
}
