package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/safetyworks/depot-report/pkg/models/domain"
)

type TableConfig struct {
	PathWidth    int
	MessageWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		PathWidth:    56,
		MessageWidth: 60,
	}
}

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

// HandleViolations prints every validation failure as a table row. The
// caller decides whether the run as a whole fails.
func (c *Reporter) HandleViolations(violations []domain.FieldViolation) error {
	funcMap := template.FuncMap{
		"formatRow": func(path, message string) string {
			return fmt.Sprintf("| %-*s | %-*s |",
				c.config.PathWidth, path,
				c.config.MessageWidth, message)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+",
				strings.Repeat("-", c.config.PathWidth+2),
				strings.Repeat("-", c.config.MessageWidth+2))
		},
	}

	tmpl := `
Validation failed with {{len .}} problem(s):

{{separator}}
{{formatRow "Field" "Problem"}}
{{separator}}
{{range .}}{{formatRow .Path .Message}}
{{end}}{{separator}}
`

	t, err := template.New("violations").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, violations)
}

func (c *Reporter) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.writer, format, args...)
}
