package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/safetyworks/depot-report/pkg/runtime/terminal/export"
	"github.com/safetyworks/depot-report/pkg/services/render"
	"github.com/safetyworks/depot-report/pkg/services/render/pdf"
	"github.com/safetyworks/depot-report/pkg/services/report"
)

type ExportCmd struct {
	filePath string
	outPath  string
	reporter *export.Reporter
}

func NewExportCmd(reporter *export.Reporter) *cobra.Command {
	ec := &ExportCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Validate a report JSON file and export it as a PDF document",
		RunE:  ec.run,
	}

	cmd.Flags().StringVar(&ec.filePath, "file", "", "Path to the report JSON file")
	cmd.Flags().StringVar(&ec.outPath, "out", "report.pdf", "Path of the PDF file to write")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (ec *ExportCmd) run(cmd *cobra.Command, args []string) error {
	candidate, err := readReportFile(ec.filePath)
	if err != nil {
		return err
	}

	validated, violations := report.Validate(candidate)
	if len(violations) > 0 {
		if err := ec.reporter.HandleViolations(violations); err != nil {
			return err
		}
		return fmt.Errorf("report is not valid")
	}

	pages := render.NewRenderer(nil).Render(validated)

	out, err := os.Create(ec.outPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	if err := pdf.NewEncoder().Encode(pages, out); err != nil {
		return err
	}

	ec.reporter.Printf("Wrote %s (%s)\n", ec.outPath, render.Describe(pages))
	return nil
}
