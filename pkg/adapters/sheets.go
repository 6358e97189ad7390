package adapters

import (
	"strings"

	"github.com/netops-tools/te-reporter/pkg/models/domain"
	"github.com/netops-tools/te-reporter/pkg/models/store"
)

// Workbook sheet names, in write order.
const (
	SheetAccountGroups         = "Account Groups"
	SheetAgents                = "Agents"
	SheetEndpointAgents        = "Endpoint Agents"
	SheetEnterpriseTests       = "Enterprise Tests"
	SheetScheduledTests        = "Scheduled Tests"
	SheetAssignments           = "Assignments"
	SheetLabels                = "Labels"
	SheetUsageSummary          = "Usage Summary"
	SheetUsageTests            = "Usage Tests"
	SheetUsageEnterpriseAgents = "Usage Enterprise Agents"
	SheetUsageEndpointAgents   = "Usage Endpoint Agents"
)

// MapReportToSheets lays the report out as workbook tables. Sheet order and
// per-sheet column order are fixed; rows keep the account-group order of the
// input file. Every sheet is present even when its table is empty.
func MapReportToSheets(report domain.Report) []store.Sheet {
	return []store.Sheet{
		accountGroupsSheet(report.Groups),
		agentsSheet(report.Groups),
		endpointAgentsSheet(report.Groups),
		enterpriseTestsSheet(report.Groups),
		scheduledTestsSheet(report.Groups),
		assignmentsSheet(report.Groups),
		labelsSheet(report.Groups),
		usageSummarySheet(report.Usage),
		usageTestsSheet(report.Usage),
		usageEnterpriseAgentsSheet(report.Usage),
		usageEndpointAgentsSheet(report.Usage),
	}
}

func accountGroupsSheet(groups []domain.AccountInventory) store.Sheet {
	sheet := store.Sheet{
		Name:   SheetAccountGroups,
		Header: []string{"accountGroupName", "aid"},
	}
	for _, g := range groups {
		sheet.Rows = append(sheet.Rows, []any{g.Group.Name, g.Group.AID})
	}
	return sheet
}

func agentsSheet(groups []domain.AccountInventory) store.Sheet {
	sheet := store.Sheet{
		Name: SheetAgents,
		Header: []string{
			"accountGroupName", "aid", "orgId", "agentId", "agentName", "agentType",
			"agentState", "lastSeen", "createdDate", "utilization", "location",
			"enabled", "hostname", "ipAddresses",
		},
	}
	for _, g := range groups {
		for _, a := range g.Agents {
			sheet.Rows = append(sheet.Rows, []any{
				g.Group.Name, g.Group.AID, a.OrgID, a.AgentID, a.AgentName,
				a.AgentType, a.AgentState, a.LastSeen, a.CreatedDate, a.Utilization,
				a.Location, a.Enabled, a.Hostname, strings.Join(a.IPAddresses, ", "),
			})
		}
	}
	return sheet
}

func endpointAgentsSheet(groups []domain.AccountInventory) store.Sheet {
	sheet := store.Sheet{
		Name: SheetEndpointAgents,
		Header: []string{
			"accountGroupName", "id", "aid", "name", "computerName", "osVersion",
			"platform", "lastSeen", "status", "deleted", "version", "createdAt",
			"numberOfClients", "locationName", "agentType", "licenseType",
		},
	}
	for _, g := range groups {
		for _, a := range g.EndpointAgents {
			sheet.Rows = append(sheet.Rows, []any{
				g.Group.Name, a.ID, g.Group.AID, a.Name, a.ComputerName, a.OSVersion,
				a.Platform, a.LastSeen, a.Status, a.Deleted, a.Version, a.CreatedAt,
				a.NumberOfClients, a.LocationName, a.AgentType, a.LicenseType,
			})
		}
	}
	return sheet
}

func enterpriseTestsSheet(groups []domain.AccountInventory) store.Sheet {
	sheet := store.Sheet{
		Name: SheetEnterpriseTests,
		Header: []string{
			"accountGroupName", "aid", "testId", "testName", "createdBy",
			"createdDate", "modifiedBy", "modifiedDate", "type", "alertsEnabled",
			"enabled", "direction", "targetAgentId",
		},
	}
	for _, g := range groups {
		for _, t := range g.Tests {
			sheet.Rows = append(sheet.Rows, []any{
				g.Group.Name, g.Group.AID, t.TestID, t.TestName, t.CreatedBy,
				t.CreatedDate, t.ModifiedBy, t.ModifiedDate, t.Type, t.AlertsEnabled,
				t.Enabled, t.Direction, t.TargetAgentID,
			})
		}
	}
	return sheet
}

func scheduledTestsSheet(groups []domain.AccountInventory) store.Sheet {
	sheet := store.Sheet{
		Name: SheetScheduledTests,
		Header: []string{
			"accountGroupName", "aid", "testId", "testName", "server", "createdDate",
			"type", "isEnabled",
		},
	}
	for _, g := range groups {
		for _, t := range g.ScheduledTests {
			sheet.Rows = append(sheet.Rows, []any{
				g.Group.Name, g.Group.AID, t.TestID, t.TestName, t.Server,
				t.CreatedDate, t.Type, t.IsEnabled,
			})
		}
	}
	return sheet
}

func assignmentsSheet(groups []domain.AccountInventory) store.Sheet {
	sheet := store.Sheet{
		Name: SheetAssignments,
		Header: []string{
			"accountGroupName", "aid", "testId", "testName", "source", "serverIp",
			"agentId", "agentName",
		},
	}
	for _, g := range groups {
		for _, a := range g.Assignments {
			sheet.Rows = append(sheet.Rows, []any{
				g.Group.Name, g.Group.AID, a.TestID, a.TestName, string(a.Source),
				a.ServerIP, a.AgentID, a.AgentName,
			})
		}
	}
	return sheet
}

func labelsSheet(groups []domain.AccountInventory) store.Sheet {
	sheet := store.Sheet{
		Name: SheetLabels,
		Header: []string{
			"accountGroupName", "aid", "id", "name", "color", "matchType",
		},
		ColorColumn: "color",
	}
	for _, g := range groups {
		for _, l := range g.Labels {
			sheet.Rows = append(sheet.Rows, []any{
				g.Group.Name, g.Group.AID, l.ID, l.Name, l.Color, l.MatchType,
			})
		}
	}
	return sheet
}

func usageSummarySheet(usage *domain.Usage) store.Sheet {
	sheet := store.Sheet{
		Name:   SheetUsageSummary,
		Header: []string{"metric", "value"},
	}
	if usage == nil {
		return sheet
	}
	sheet.Rows = [][]any{
		{"quotaMonthStart", usage.MonthStart},
		{"quotaMonthEnd", usage.MonthEnd},
		{"cloudUnitsIncluded", usage.CloudUnitsIncluded},
		{"cloudUnitsUsed", usage.CloudUnitsUsed},
		{"cloudUnitsProjected", usage.CloudUnitsProjected},
		{"cloudUnitsNextBillingPeriod", usage.CloudUnitsNextBillingPeriod},
		{"enterpriseUnitsUsed", usage.EnterpriseUnitsUsed},
		{"enterpriseUnitsProjected", usage.EnterpriseUnitsProjected},
		{"enterpriseUnitsNextBillingPeriod", usage.EnterpriseUnitsNextBillingPeriod},
	}
	return sheet
}

func usageTestsSheet(usage *domain.Usage) store.Sheet {
	sheet := store.Sheet{
		Name: SheetUsageTests,
		Header: []string{
			"aid", "accountGroupName", "testId", "testName", "testType",
			"cloudUnitsUsed", "cloudUnitsProjected",
		},
	}
	if usage == nil {
		return sheet
	}
	for _, t := range usage.Tests {
		sheet.Rows = append(sheet.Rows, []any{
			t.AID, t.AccountGroupName, t.TestID, t.TestName, t.TestType,
			t.CloudUnitsUsed, t.CloudUnitsProjected,
		})
	}
	return sheet
}

func usageEnterpriseAgentsSheet(usage *domain.Usage) store.Sheet {
	sheet := store.Sheet{
		Name: SheetUsageEnterpriseAgents,
		Header: []string{
			"aid", "accountGroupName", "agentId", "agentName",
			"enterpriseUnitsUsed", "enterpriseUnitsProjected",
		},
	}
	if usage == nil {
		return sheet
	}
	for _, a := range usage.EnterpriseAgents {
		sheet.Rows = append(sheet.Rows, []any{
			a.AID, a.AccountGroupName, a.AgentID, a.AgentName,
			a.EnterpriseUnitsUsed, a.EnterpriseUnitsProjected,
		})
	}
	return sheet
}

func usageEndpointAgentsSheet(usage *domain.Usage) store.Sheet {
	sheet := store.Sheet{
		Name: SheetUsageEndpointAgents,
		Header: []string{
			"aid", "accountGroupName", "endpointAgentsUsed", "endpointAgentsProjected",
		},
	}
	if usage == nil {
		return sheet
	}
	for _, a := range usage.EndpointAgents {
		sheet.Rows = append(sheet.Rows, []any{
			a.AID, a.AccountGroupName, a.EndpointAgentsUsed, a.EndpointAgentsProjected,
		})
	}
	return sheet
}
