package adapters

import (
	"strconv"

	"github.com/netops-tools/te-reporter/pkg/models/api"
	"github.com/netops-tools/te-reporter/pkg/models/domain"
)

// MapUsageToDomain flattens the organization usage payload. Account and test
// ids arrive numeric here even though the inventory endpoints use strings, so
// they are normalized on the way in.
func MapUsageToDomain(u api.Usage) domain.Usage {
	out := domain.Usage{
		MonthStart:                       u.Quota.MonthStart,
		MonthEnd:                         u.Quota.MonthEnd,
		CloudUnitsIncluded:               u.Quota.CloudUnitsIncluded,
		CloudUnitsUsed:                   u.CloudUnitsUsed,
		CloudUnitsProjected:              u.CloudUnitsProjected,
		CloudUnitsNextBillingPeriod:      u.CloudUnitsNextBillingPeriod,
		EnterpriseUnitsUsed:              u.EnterpriseUnitsUsed,
		EnterpriseUnitsProjected:         u.EnterpriseUnitsProjected,
		EnterpriseUnitsNextBillingPeriod: u.EnterpriseUnitsNextBillingPeriod,
	}

	for _, t := range u.Tests {
		out.Tests = append(out.Tests, domain.TestUsage{
			AID:                 strconv.FormatInt(t.AID, 10),
			AccountGroupName:    t.AccountGroupName,
			TestID:              strconv.FormatInt(t.TestID, 10),
			TestName:            t.TestName,
			TestType:            t.TestType,
			CloudUnitsUsed:      t.CloudUnitsUsed,
			CloudUnitsProjected: t.CloudUnitsProjected,
		})
	}

	for _, a := range u.EnterpriseAgents {
		out.EnterpriseAgents = append(out.EnterpriseAgents, domain.EnterpriseAgentUsage{
			AID:                      strconv.FormatInt(a.AID, 10),
			AccountGroupName:         a.AccountGroupName,
			AgentID:                  strconv.FormatInt(a.AgentID, 10),
			AgentName:                a.AgentName,
			EnterpriseUnitsUsed:      a.EnterpriseUnitsUsed,
			EnterpriseUnitsProjected: a.EnterpriseUnitsProjected,
		})
	}

	for _, a := range u.EndpointAgents {
		out.EndpointAgents = append(out.EndpointAgents, domain.EndpointAgentUsage{
			AID:                     strconv.FormatInt(a.AID, 10),
			AccountGroupName:        a.AccountGroupName,
			EndpointAgentsUsed:      a.EndpointAgentsUsed,
			EndpointAgentsProjected: a.EndpointAgentsProjected,
		})
	}

	return out
}
