package domain

type QuestionKind string

const (
	QuestionSection    QuestionKind = "section"
	QuestionTable      QuestionKind = "table"
	QuestionNumeric    QuestionKind = "numeric"
	QuestionEnumerated QuestionKind = "enumerated"
	QuestionFreeText   QuestionKind = "free-text"
)

// QuestionNode is one node of the answerable-question tree. Ids are unique
// across the whole tree; Order determines sibling sequence. Section and table
// nodes never carry answers directly.
type QuestionNode struct {
	ID       string
	Label    string
	Kind     QuestionKind
	Order    int
	ParentID string
	Options  []string
	Children []*QuestionNode
}
