package domain

// Report is the accumulated result of one run: per-account-group inventories
// in input order, plus the single global usage summary.
type Report struct {
	Groups []AccountInventory
	Usage  *Usage
}

// GroupSummary counts what one account group contributed to the report.
type GroupSummary struct {
	Name           string
	AID            string
	Agents         int
	EndpointAgents int
	Tests          int
	ScheduledTests int
	Assignments    int
	Labels         int
}

// RunSummary describes a finished run: where the workbook landed and how much
// each account group contributed.
type RunSummary struct {
	File   string
	Groups []GroupSummary
}

func (r *Report) Summarize(file string) *RunSummary {
	summary := &RunSummary{File: file}
	for _, g := range r.Groups {
		summary.Groups = append(summary.Groups, GroupSummary{
			Name:           g.Group.Name,
			AID:            g.Group.AID,
			Agents:         len(g.Agents),
			EndpointAgents: len(g.EndpointAgents),
			Tests:          len(g.Tests),
			ScheduledTests: len(g.ScheduledTests),
			Assignments:    len(g.Assignments),
			Labels:         len(g.Labels),
		})
	}
	return summary
}
