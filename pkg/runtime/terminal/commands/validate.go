package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/safetyworks/depot-report/pkg/models/api"
	"github.com/safetyworks/depot-report/pkg/runtime/terminal/export"
	"github.com/safetyworks/depot-report/pkg/services/report"
)

type ValidateCmd struct {
	filePath string
	reporter *export.Reporter
}

func NewValidateCmd(reporter *export.Reporter) *cobra.Command {
	vc := &ValidateCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a report JSON file against the compliance schema",
		RunE:  vc.run,
	}

	cmd.Flags().StringVar(&vc.filePath, "file", "", "Path to the report JSON file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (vc *ValidateCmd) run(cmd *cobra.Command, args []string) error {
	candidate, err := readReportFile(vc.filePath)
	if err != nil {
		return err
	}

	_, violations := report.Validate(candidate)
	if len(violations) > 0 {
		if err := vc.reporter.HandleViolations(violations); err != nil {
			return err
		}
		return fmt.Errorf("report is not valid")
	}

	vc.reporter.Printf("Report is valid.\n")
	return nil
}

func readReportFile(path string) (api.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return api.Report{}, fmt.Errorf("failed to read report file: %w", err)
	}

	var candidate api.Report
	if err := json.Unmarshal(data, &candidate); err != nil {
		return api.Report{}, fmt.Errorf("failed to parse report file: %w", err)
	}
	return candidate, nil
}
