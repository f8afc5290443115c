package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hr-tools/social-atlas/pkg/models/domain"
	"github.com/hr-tools/social-atlas/pkg/services/labels"
)

// Line is one rendered questionnaire entry: a question (or one
// question/dimension combination) with its answer.
type Line struct {
	Key         string
	Label       string
	Value       string
	Source      string
	Explanation string
}

type Section struct {
	Title string
	Lines []Line
}

// View is the flattened, display-ready form of a report, shared by the text
// reporter and the workbook exporter. Both consume the answer map read-only.
type View struct {
	SubmissionID  string
	PeriodStart   string
	PeriodEnd     string
	EmployeeCount int
	Sections      []Section
}

const notProvided = "not provided"

// BuildView walks the question tree and pairs every answerable node with its
// answer. Missing and manual answers render as "not provided", never as an
// error.
func BuildView(report *domain.Report, registry labels.Registry) View {
	view := View{
		SubmissionID:  report.SubmissionID,
		PeriodStart:   report.Period.Start.Format("2006-01-02"),
		PeriodEnd:     report.Period.End.Format("2006-01-02"),
		EmployeeCount: report.EmployeeCount,
	}

	for _, root := range report.Questions {
		section := Section{Title: fmt.Sprintf("%s %s", root.ID, root.Label)}
		collectLines(root, report.Answers, registry, &section.Lines)
		view.Sections = append(view.Sections, section)
	}
	return view
}

func collectLines(
	node *domain.QuestionNode,
	answers map[string]domain.Answer,
	registry labels.Registry,
	out *[]Line,
) {
	switch node.Kind {
	case domain.QuestionSection:
		// Sections only contribute their children.
	case domain.QuestionTable:
		for _, child := range node.Children {
			for _, key := range bucketKeys(child.ID, answers) {
				answer := answers[child.ID+"_"+key]
				*out = append(*out, Line{
					Key:         child.ID + "_" + key,
					Label:       fmt.Sprintf("%s (%s)", child.Label, bucketLabel(registry, key)),
					Value:       formatValue(answer.Value),
					Source:      string(answer.Source),
					Explanation: answer.Explanation,
				})
			}
		}
	default:
		line := Line{Key: node.ID, Label: node.Label, Value: notProvided}
		if answer, ok := answers[node.ID]; ok {
			line.Value = formatValue(answer.Value)
			line.Source = string(answer.Source)
			line.Explanation = answer.Explanation
		}
		*out = append(*out, line)
	}

	for _, child := range node.Children {
		if node.Kind == domain.QuestionTable {
			// Table children were rendered above, bucket by bucket.
			continue
		}
		collectLines(child, answers, registry, out)
	}
}

// bucketKeys lists the dimension values answered for one table child, sorted
// for a stable rendering order.
func bucketKeys(childID string, answers map[string]domain.Answer) []string {
	prefix := childID + "_"
	var keys []string
	for key := range answers {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, strings.TrimPrefix(key, prefix))
		}
	}
	sort.Strings(keys)
	return keys
}

// bucketLabel resolves a dimension value to its display label. Composite
// values are `{gender}_{jobCode}`; plain values are tried as a country first,
// then as a job category, finally echoed back.
func bucketLabel(registry labels.Registry, key string) string {
	if gender, job, ok := strings.Cut(key, "_"); ok {
		return registry.Gender(gender) + " / " + registry.JobCategory(job)
	}
	if label := registry.Country(key); label != key {
		return label
	}
	return registry.JobCategory(key)
}

func formatValue(value any) string {
	if value == nil {
		return notProvided
	}
	return fmt.Sprintf("%v", value)
}
