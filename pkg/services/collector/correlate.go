package collector

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/netops-tools/te-reporter/pkg/models/domain"
)

// buildAssignments computes the test-to-agent mapping for one account group:
// one row per reference, in fetch order, never deduplicated. Enterprise tests
// carry their agent references inline; scheduled tests reveal theirs through
// result rows, which is why the two sources resolve against different agent
// pools. A reference to an agent missing from this group's inventory keeps
// its row with an empty agent name and is logged, not dropped.
func buildAssignments(
	ctx context.Context,
	agents []domain.EnterpriseAgent,
	endpointAgents []domain.EndpointAgent,
	tests []domain.EnterpriseTest,
	scheduled []domain.ScheduledTest,
	resultsByTest map[string][]domain.TestResult,
) []domain.Assignment {
	logger := zerolog.Ctx(ctx)

	agentNames := make(map[string]string, len(agents))
	for _, a := range agents {
		agentNames[a.AgentID] = a.AgentName
	}
	endpointNames := make(map[string]string, len(endpointAgents))
	for _, a := range endpointAgents {
		endpointNames[a.ID] = a.Name
	}

	var assignments []domain.Assignment

	for _, t := range tests {
		for _, agentID := range t.AgentIDs {
			name, known := agentNames[agentID]
			if !known {
				logger.Warn().Str("test_id", t.TestID).Str("agent_id", agentID).
					Msg("test references an enterprise agent not in this account group")
			}
			assignments = append(assignments, domain.Assignment{
				TestID:    t.TestID,
				TestName:  t.TestName,
				Source:    domain.SourceEnterprise,
				AgentID:   agentID,
				AgentName: name,
			})
		}
	}

	for _, st := range scheduled {
		for _, result := range resultsByTest[st.TestID] {
			name, known := endpointNames[result.AgentID]
			if !known {
				logger.Warn().Str("test_id", st.TestID).Str("agent_id", result.AgentID).
					Msg("result references an endpoint agent not in this account group")
			}

			testID := result.TestID
			if testID == "" {
				testID = st.TestID
			}
			assignments = append(assignments, domain.Assignment{
				TestID:    testID,
				TestName:  st.TestName,
				Source:    domain.SourceScheduled,
				ServerIP:  result.ServerIP,
				AgentID:   result.AgentID,
				AgentName: name,
			})
		}
	}

	return assignments
}
