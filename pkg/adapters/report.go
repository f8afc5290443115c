package adapters

import (
	"sort"

	"github.com/hr-tools/social-atlas/pkg/models/api"
	"github.com/hr-tools/social-atlas/pkg/models/domain"
)

// MapReportDomainToApi flattens the answer map into a list sorted by key so
// the JSON payload is deterministic.
func MapReportDomainToApi(report *domain.Report) api.Report {
	answerList := make([]api.Answer, 0, len(report.Answers))
	for key, answer := range report.Answers {
		answerList = append(answerList, api.Answer{
			Key:         key,
			Value:       answer.Value,
			Source:      string(answer.Source),
			Explanation: answer.Explanation,
		})
	}
	sort.Slice(answerList, func(i, j int) bool {
		return answerList[i].Key < answerList[j].Key
	})

	return api.Report{
		SubmissionID: report.SubmissionID,
		Period: api.TimePeriod{
			Start: report.Period.Start,
			End:   report.Period.End,
		},
		EmployeeCount: report.EmployeeCount,
		Answers:       answerList,
	}
}

func MapQuestionDomainToApi(node *domain.QuestionNode) api.Question {
	question := api.Question{
		ID:      node.ID,
		Label:   node.Label,
		Kind:    string(node.Kind),
		Order:   node.Order,
		Options: node.Options,
	}
	for _, child := range node.Children {
		question.Children = append(question.Children, MapQuestionDomainToApi(child))
	}
	return question
}

func MapQuestionsDomainToApi(nodes []*domain.QuestionNode) []api.Question {
	questions := make([]api.Question, 0, len(nodes))
	for _, node := range nodes {
		questions = append(questions, MapQuestionDomainToApi(node))
	}
	return questions
}
