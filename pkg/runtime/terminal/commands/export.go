package commands

import (
	"fmt"
	"io"

	"github.com/hr-tools/social-atlas/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

type ExportCmd struct {
	declarationPath string
	cataloguePath   string
	labelsPath      string
	outPath         string
	output          io.Writer
}

func NewExportCmd(output io.Writer) *cobra.Command {
	ec := &ExportCmd{output: output}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the answered questionnaire to an xlsx workbook",
		RunE:  ec.run,
	}

	cmd.Flags().StringVar(&ec.declarationPath, "declaration", "", "Path to the declaration file")
	cmd.Flags().StringVar(&ec.cataloguePath, "catalogue", "", "Path to the question catalogue (semicolon-delimited)")
	cmd.Flags().StringVar(&ec.labelsPath, "labels", "", "Path to the dimension labels file (optional)")
	cmd.Flags().StringVar(&ec.outPath, "out", "questionnaire.xlsx", "Path of the workbook to write")

	_ = cmd.MarkFlagRequired("declaration")
	_ = cmd.MarkFlagRequired("catalogue")

	return cmd
}

func (ec *ExportCmd) run(cmd *cobra.Command, _ []string) error {
	rep, registry, err := runPipeline(cmd, ec.declarationPath, ec.cataloguePath, ec.labelsPath)
	if err != nil {
		return err
	}

	if err := export.NewWorkbookExporter(registry).Export(rep, ec.outPath); err != nil {
		return err
	}

	_, err = fmt.Fprintf(ec.output, "questionnaire written to %s\n", ec.outPath)
	return err
}
