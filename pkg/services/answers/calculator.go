package answers

import (
	"context"
	"fmt"

	"github.com/hr-tools/social-atlas/pkg/models/domain"
	"github.com/hr-tools/social-atlas/pkg/services/workforce"
	"github.com/rs/zerolog"
)

// Calculator produces the answer map for a declaration against a question
// tree. Computation is pure and deterministic given identical inputs.
type Calculator interface {
	ComputeAnswers(
		ctx context.Context,
		decl *domain.Declaration,
		questions []*domain.QuestionNode,
	) (map[string]domain.Answer, error)
}

type calculator struct{}

func NewCalculator() Calculator {
	return &calculator{}
}

func (c *calculator) ComputeAnswers(
	ctx context.Context,
	decl *domain.Declaration,
	questions []*domain.QuestionNode,
) (map[string]domain.Answer, error) {
	period, err := workforce.ExtractPeriod(decl)
	if err != nil {
		return nil, fmt.Errorf("failed to extract reporting period: %w", err)
	}

	employees := workforce.NormalizeEmployees(decl)

	out := make(map[string]domain.Answer)
	for _, question := range questions {
		c.walk(ctx, question, employees, period, out)
	}
	return out, nil
}

// walk visits the node in pre-order and recurses into children regardless of
// node kind.
func (c *calculator) walk(
	ctx context.Context,
	node *domain.QuestionNode,
	employees []domain.Employee,
	period domain.ReportingPeriod,
	out map[string]domain.Answer,
) {
	switch node.Kind {
	case domain.QuestionSection:
		// Container only, no answer of its own.
	case domain.QuestionTable:
		c.answerTable(ctx, node, employees, period, out)
	default:
		c.answerLeaf(ctx, node, employees, period, out)
	}

	for _, child := range node.Children {
		c.walk(ctx, child, employees, period, out)
	}
}

func (c *calculator) answerTable(
	ctx context.Context,
	node *domain.QuestionNode,
	employees []domain.Employee,
	period domain.ReportingPeriod,
	out map[string]domain.Answer,
) {
	logger := zerolog.Ctx(ctx)

	dimension, ok := tableDimensions[node.ID]
	if !ok {
		logger.Debug().Str("question", node.ID).Msg("table has no grouping dimension, skipped")
		return
	}

	for key, members := range dimension.group(employees) {
		for _, child := range node.Children {
			metric, ok := tableMetrics[child.ID]
			if !ok {
				continue
			}
			value, explanation := metric(members, period)
			out[child.ID+"_"+key] = domain.Answer{
				Value:       value,
				Source:      domain.AnswerComputed,
				Explanation: fmt.Sprintf("group %s: %s", key, explanation),
			}
		}
	}
}

func (c *calculator) answerLeaf(
	ctx context.Context,
	node *domain.QuestionNode,
	employees []domain.Employee,
	period domain.ReportingPeriod,
	out map[string]domain.Answer,
) {
	logger := zerolog.Ctx(ctx)

	if _, ok := manualQuestions[node.ID]; ok {
		out[node.ID] = domain.Answer{
			Value:       nil,
			Source:      domain.AnswerManual,
			Explanation: "methodology question, answered by the reporting entity",
		}
		return
	}

	metric, ok := metrics[node.ID]
	if !ok {
		logger.Debug().Str("question", node.ID).Msg("no metric strategy for question, skipped")
		return
	}

	value, explanation := metric(employees, period)
	out[node.ID] = domain.Answer{
		Value:       value,
		Source:      domain.AnswerComputed,
		Explanation: explanation,
	}
}
