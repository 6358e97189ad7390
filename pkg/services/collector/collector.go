package collector

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/netops-tools/te-reporter/pkg/adapters"
	"github.com/netops-tools/te-reporter/pkg/models/domain"
	"github.com/netops-tools/te-reporter/pkg/models/store"
	"github.com/netops-tools/te-reporter/pkg/services/inventory"
	"github.com/netops-tools/te-reporter/pkg/services/usage"
)

// AccountSource yields the account groups to report on, in input-file order.
type AccountSource interface {
	AccountGroups(ctx context.Context) ([]domain.AccountGroup, error)
}

// ReportWriter persists the finished sheets and returns the output path.
type ReportWriter interface {
	Write(ctx context.Context, sheets []store.Sheet) (string, error)
}

type Dependencies struct {
	Accounts  AccountSource
	Inventory inventory.Explorer
	Usage     usage.Manager
	Writer    ReportWriter
}

// Collector drives one report run: walk every account group, correlate its
// inventory, fetch organization usage once, write the workbook.
type Collector interface {
	Run(ctx context.Context) (*domain.RunSummary, error)
}

type reportCollector struct {
	deps Dependencies
}

func NewCollector(deps Dependencies) Collector {
	return &reportCollector{deps: deps}
}

func (c *reportCollector) Run(ctx context.Context) (*domain.RunSummary, error) {
	logger := zerolog.Ctx(ctx)

	groups, err := c.deps.Accounts.AccountGroups(ctx)
	if err != nil {
		return nil, err
	}
	logger.Info().Int("count", len(groups)).Msg("loaded account groups")

	var report domain.Report
	for _, group := range groups {
		inv, err := c.collectGroup(ctx, group)
		if err != nil {
			return nil, err
		}
		report.Groups = append(report.Groups, inv)
	}

	orgUsage, err := c.deps.Usage.GetUsage(ctx)
	if err != nil {
		return nil, err
	}
	report.Usage = orgUsage

	// The usage endpoint is organization wide; the first group is log
	// context only.
	usageEvent := logger.Info()
	if len(groups) > 0 {
		usageEvent = usageEvent.Str("account_group", groups[0].Name).Str("aid", groups[0].AID)
	}
	usageEvent.Msg("fetched organization usage")

	path, err := c.deps.Writer.Write(ctx, adapters.MapReportToSheets(report))
	if err != nil {
		return nil, err
	}

	logger.Info().Str("file", path).Msg("report written")
	return report.Summarize(path), nil
}

func (c *reportCollector) collectGroup(ctx context.Context, group domain.AccountGroup) (domain.AccountInventory, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().Str("account_group", group.Name).Str("aid", group.AID).Msg("collecting account group")

	inv := domain.AccountInventory{Group: group}

	var err error
	if inv.Agents, err = c.deps.Inventory.ListAgents(ctx, group.AID); err != nil {
		return domain.AccountInventory{}, err
	}
	if inv.EndpointAgents, err = c.deps.Inventory.ListEndpointAgents(ctx, group.AID); err != nil {
		return domain.AccountInventory{}, err
	}
	if inv.Tests, err = c.deps.Inventory.ListEnterpriseTests(ctx, group.AID); err != nil {
		return domain.AccountInventory{}, err
	}
	if inv.ScheduledTests, err = c.deps.Inventory.ListScheduledTests(ctx, group.AID); err != nil {
		return domain.AccountInventory{}, err
	}

	resultsByTest := make(map[string][]domain.TestResult, len(inv.ScheduledTests))
	for _, st := range inv.ScheduledTests {
		results, err := c.deps.Inventory.ListScheduledTestResults(ctx, group.AID, st.TestID)
		if err != nil {
			return domain.AccountInventory{}, err
		}
		resultsByTest[st.TestID] = results
	}

	if inv.Labels, err = c.deps.Inventory.ListLabels(ctx, group.AID); err != nil {
		return domain.AccountInventory{}, err
	}

	inv.Assignments = buildAssignments(ctx, inv.Agents, inv.EndpointAgents, inv.Tests, inv.ScheduledTests, resultsByTest)

	logger.Info().
		Str("account_group", group.Name).
		Int("agents", len(inv.Agents)).
		Int("endpoint_agents", len(inv.EndpointAgents)).
		Int("tests", len(inv.Tests)).
		Int("scheduled_tests", len(inv.ScheduledTests)).
		Int("assignments", len(inv.Assignments)).
		Int("labels", len(inv.Labels)).
		Msg("account group collected")

	return inv, nil
}
