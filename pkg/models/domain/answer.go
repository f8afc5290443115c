package domain

type AnswerSource string

const (
	AnswerComputed AnswerSource = "computed"
	AnswerManual   AnswerSource = "manual"
)

// Answer is a computed or manually-entered value for a question, or for a
// question/dimension combination when keyed as `{childId}_{bucket}`. The
// explanation is a first-class audit output, not a debug artifact.
type Answer struct {
	Value       any
	Source      AnswerSource
	Explanation string
}
