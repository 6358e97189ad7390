package adapters

import (
	"fmt"
	"strconv"

	"github.com/netops-tools/te-reporter/pkg/models/api"
	"github.com/netops-tools/te-reporter/pkg/models/domain"
)

// Mapping from vendor wire types to domain records. Identity fields are
// required; a record missing one fails here so a schema drift surfaces as an
// API error instead of sparse report rows.

func MapAgentToDomain(a api.Agent) (domain.EnterpriseAgent, error) {
	if a.AgentID == 0 {
		return domain.EnterpriseAgent{}, fmt.Errorf("agent: missing agentId")
	}
	if a.AgentName == "" {
		return domain.EnterpriseAgent{}, fmt.Errorf("agent %d: missing agentName", a.AgentID)
	}

	return domain.EnterpriseAgent{
		OrgID:       optionalID(a.OrgID),
		AgentID:     strconv.FormatInt(a.AgentID, 10),
		AgentName:   a.AgentName,
		AgentType:   a.AgentType,
		AgentState:  a.AgentState,
		LastSeen:    a.LastSeen,
		CreatedDate: a.CreatedDate,
		Utilization: a.Utilization,
		Location:    a.Location,
		Enabled:     a.Enabled,
		Hostname:    a.Hostname,
		IPAddresses: append([]string(nil), a.IPAddresses...),
	}, nil
}

func MapEndpointAgentToDomain(a api.EndpointAgent) (domain.EndpointAgent, error) {
	if a.ID == "" {
		return domain.EndpointAgent{}, fmt.Errorf("endpoint agent: missing id")
	}
	if a.Name == "" {
		return domain.EndpointAgent{}, fmt.Errorf("endpoint agent %s: missing name", a.ID)
	}

	return domain.EndpointAgent{
		ID:              a.ID,
		Name:            a.Name,
		ComputerName:    a.ComputerName,
		OSVersion:       a.OSVersion,
		Platform:        a.Platform,
		LastSeen:        a.LastSeen,
		Status:          a.Status,
		Deleted:         a.Deleted,
		Version:         a.Version,
		CreatedAt:       a.CreatedAt,
		NumberOfClients: a.NumberOfClients,
		LocationName:    a.Location.LocationName,
		AgentType:       a.AgentType,
		LicenseType:     a.LicenseType,
	}, nil
}

func MapEnterpriseTestToDomain(t api.Test) (domain.EnterpriseTest, error) {
	if t.TestID == 0 {
		return domain.EnterpriseTest{}, fmt.Errorf("test: missing testId")
	}
	if t.TestName == "" {
		return domain.EnterpriseTest{}, fmt.Errorf("test %d: missing testName", t.TestID)
	}

	agentIDs := make([]string, 0, len(t.Agents))
	for _, ref := range t.Agents {
		agentIDs = append(agentIDs, strconv.FormatInt(ref.AgentID, 10))
	}

	return domain.EnterpriseTest{
		TestID:        strconv.FormatInt(t.TestID, 10),
		TestName:      t.TestName,
		CreatedBy:     t.CreatedBy,
		CreatedDate:   t.CreatedDate,
		ModifiedBy:    t.ModifiedBy,
		ModifiedDate:  t.ModifiedDate,
		Type:          t.Type,
		AlertsEnabled: t.AlertsEnabled,
		Enabled:       t.Enabled,
		Direction:     t.Direction,
		TargetAgentID: optionalID(t.TargetAgentID),
		AgentIDs:      agentIDs,
	}, nil
}

func MapScheduledTestToDomain(t api.ScheduledTest) (domain.ScheduledTest, error) {
	if t.TestID == "" {
		return domain.ScheduledTest{}, fmt.Errorf("scheduled test: missing testId")
	}
	if t.TestName == "" {
		return domain.ScheduledTest{}, fmt.Errorf("scheduled test %s: missing testName", t.TestID)
	}

	return domain.ScheduledTest{
		TestID:      t.TestID,
		TestName:    t.TestName,
		Server:      t.Server,
		CreatedDate: t.CreatedDate,
		Type:        t.Type,
		IsEnabled:   t.IsEnabled,
	}, nil
}

func MapTestResultToDomain(r api.TestResult) (domain.TestResult, error) {
	if r.AgentID == "" {
		return domain.TestResult{}, fmt.Errorf("test result for %s: missing agentId", r.TestID)
	}

	return domain.TestResult{
		TestID:   r.TestID,
		ServerIP: r.ServerIP,
		AgentID:  r.AgentID,
	}, nil
}

func MapLabelToDomain(l api.Label) (domain.Label, error) {
	if l.ID == "" {
		return domain.Label{}, fmt.Errorf("label: missing id")
	}
	if l.Name == "" {
		return domain.Label{}, fmt.Errorf("label %s: missing name", l.ID)
	}

	return domain.Label{
		ID:        l.ID,
		Name:      l.Name,
		Color:     l.Color,
		MatchType: l.MatchType,
	}, nil
}

// optionalID renders a numeric vendor id that may legitimately be absent; the
// zero value means the payload carried none.
func optionalID(id int64) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}
