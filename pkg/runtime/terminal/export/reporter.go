package export

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/hr-tools/social-atlas/pkg/models/domain"
	"github.com/hr-tools/social-atlas/pkg/services/labels"
)

// Reporter outputs a report to the console in a formatted text form
type Reporter struct {
	writer   io.Writer
	registry labels.Registry
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer, registry labels.Registry) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	if registry == nil {
		registry = labels.Empty()
	}
	return &Reporter{writer: writer, registry: registry}
}

func (c *Reporter) Handle(report *domain.Report) error {
	tmpl := `
Workforce report {{.SubmissionID}}
Period: {{.PeriodStart}} to {{.PeriodEnd}}
Employees: {{.EmployeeCount}}

{{range .Sections}}
=== {{.Title}} ===
{{range .Lines}}
- {{.Label}}: {{.Value}}{{if .Source}} [{{.Source}}]{{end}}
  {{.Explanation}}
{{end}}
{{end}}
`
	t, err := template.New("report").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, BuildView(report, c.registry))
}
