package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hr-tools/social-atlas/pkg/models/domain"
	"github.com/hr-tools/social-atlas/pkg/services/answers"
	"github.com/hr-tools/social-atlas/pkg/services/dsn"
	"github.com/hr-tools/social-atlas/pkg/services/workforce"
	"github.com/rs/zerolog"
)

// Controller runs the full pipeline for one submitted declaration file:
// conformity check, parse, graph build, normalization and answer computation.
// Every run is independent; nothing is carried over between submissions.
type Controller interface {
	Process(ctx context.Context, raw string, questions []*domain.QuestionNode) (*domain.Report, error)
}

type controller struct {
	calculator answers.Calculator
}

func NewController(calculator answers.Calculator) Controller {
	return &controller{calculator: calculator}
}

func (c *controller) Process(
	ctx context.Context,
	raw string,
	questions []*domain.QuestionNode,
) (*domain.Report, error) {
	logger := zerolog.Ctx(ctx)

	if err := dsn.CheckConformity(raw); err != nil {
		return nil, NewStructuralError(err)
	}

	rows := dsn.ParseLines(raw)
	decl := dsn.BuildDeclaration(ctx, rows)

	period, err := workforce.ExtractPeriod(decl)
	if err != nil {
		return nil, NewStructuralError(err)
	}

	employees := workforce.NormalizeEmployees(decl)

	answerSet, err := c.calculator.ComputeAnswers(ctx, decl, questions)
	if err != nil {
		// The period was validated above, so anything surfacing here is
		// on our side.
		return nil, fmt.Errorf("failed to compute answers: %w", err)
	}

	report := &domain.Report{
		SubmissionID:  uuid.NewString(),
		Period:        period,
		EmployeeCount: len(employees),
		Questions:     questions,
		Answers:       answerSet,
	}

	logger.Info().
		Str("submission_id", report.SubmissionID).
		Int("rows", len(rows)).
		Int("employees", report.EmployeeCount).
		Int("answers", len(answerSet)).
		Msg("declaration processed")

	return report, nil
}
