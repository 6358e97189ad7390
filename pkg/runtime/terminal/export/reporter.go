package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/netops-tools/te-reporter/pkg/models/domain"
)

type TableConfig struct {
	NameWidth  int
	AIDWidth   int
	CountWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NameWidth:  28,
		AIDWidth:   14,
		CountWidth: 10,
	}
}

// Reporter prints a run summary to the console: one table row per account
// group with the counts that went into the workbook.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(summary *domain.RunSummary) error {
	funcMap := template.FuncMap{
		"formatRow": func(name, aid string, counts ...any) string {
			row := fmt.Sprintf("| %-*s | %-*s |", c.config.NameWidth, name, c.config.AIDWidth, aid)
			for _, count := range counts {
				row += fmt.Sprintf(" %*v |", c.config.CountWidth, count)
			}
			return row
		},
		"separator": func() string {
			sep := fmt.Sprintf("+%s+%s+",
				strings.Repeat("-", c.config.NameWidth+2),
				strings.Repeat("-", c.config.AIDWidth+2))
			for i := 0; i < 6; i++ {
				sep += strings.Repeat("-", c.config.CountWidth+2) + "+"
			}
			return sep
		},
	}

	tmpl := `
Report written to {{.File}}

{{separator}}
{{formatRow "Account Group" "AID" "Agents" "Endpoint" "Tests" "Scheduled" "Assigned" "Labels"}}
{{separator}}
{{range .Groups}}{{formatRow .Name .AID .Agents .EndpointAgents .Tests .ScheduledTests .Assignments .Labels}}
{{end}}{{separator}}
`

	t, err := template.New("summary").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, summary)
}
