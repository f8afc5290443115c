package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/hr-tools/social-atlas/pkg/models/domain"
	"github.com/hr-tools/social-atlas/pkg/runtime/terminal/export"
	"github.com/hr-tools/social-atlas/pkg/services/answers"
	"github.com/hr-tools/social-atlas/pkg/services/catalogue"
	"github.com/hr-tools/social-atlas/pkg/services/labels"
	"github.com/hr-tools/social-atlas/pkg/services/report"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type AnalyzeCmd struct {
	declarationPath string
	cataloguePath   string
	labelsPath      string
	output          io.Writer
}

func NewAnalyzeCmd(output io.Writer) *cobra.Command {
	ac := &AnalyzeCmd{output: output}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Compute questionnaire answers from a payroll declaration",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.declarationPath, "declaration", "", "Path to the declaration file")
	cmd.Flags().StringVar(&ac.cataloguePath, "catalogue", "", "Path to the question catalogue (semicolon-delimited)")
	cmd.Flags().StringVar(&ac.labelsPath, "labels", "", "Path to the dimension labels file (optional)")

	_ = cmd.MarkFlagRequired("declaration")
	_ = cmd.MarkFlagRequired("catalogue")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, _ []string) error {
	rep, registry, err := runPipeline(cmd, ac.declarationPath, ac.cataloguePath, ac.labelsPath)
	if err != nil {
		return err
	}

	return export.NewReporter(ac.output, registry).Handle(rep)
}

// runPipeline loads the inputs and runs one full processing pass. Shared by
// analyze and export.
func runPipeline(
	cmd *cobra.Command,
	declarationPath, cataloguePath, labelsPath string,
) (*domain.Report, labels.Registry, error) {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	catalogueFile, err := os.Open(cataloguePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open catalogue: %w", err)
	}
	defer catalogueFile.Close()

	questions, err := catalogue.Load(catalogueFile)
	if err != nil {
		return nil, nil, err
	}

	raw, err := os.ReadFile(declarationPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read declaration: %w", err)
	}

	registry := labels.Empty()
	if labelsPath != "" {
		registry, err = labels.NewRegistry(labelsPath)
		if err != nil {
			return nil, nil, err
		}
	}

	ctrl := report.NewController(answers.NewCalculator())
	rep, err := ctrl.Process(ctx, string(raw), questions)
	if err != nil {
		return nil, nil, err
	}

	return rep, registry, nil
}
