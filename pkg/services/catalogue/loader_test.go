package catalogue

import (
	"strings"
	"testing"

	"github.com/hr-tools/social-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalogue = `id;label_en;kind;order;parent_id;options
S1-6;Characteristics of the undertaking's employees;section;1;;
S1-6_01;Total number of employees (head count);numeric;1;S1-6;
S1-6_04;Employees by country;table;4;S1-6;
S1-6_04a;Head count at period end;numeric;1;S1-6_04;
S1-6_03;Methodology used for head count;free-text;3;S1-6;
S1-6_02;Average number of employees;numeric;2;S1-6;
S1-9;Diversity metrics;section;2;;
S1-9_01;Employees by gender and category;table;1;S1-9;
S1-9_01a;Head count at period end;numeric;1;S1-9_01;
S1-9_03;Reporting basis;enumerated;3;S1-9;head count, full-time equivalent
`

func TestLoad(t *testing.T) {
	tree, err := Load(strings.NewReader(sampleCatalogue))
	require.NoError(t, err)
	require.Len(t, tree, 2)

	s16 := tree[0]
	assert.Equal(t, "S1-6", s16.ID)
	assert.Equal(t, domain.QuestionSection, s16.Kind)

	// Children sorted by order, not by source position.
	ids := make([]string, 0, len(s16.Children))
	for _, child := range s16.Children {
		ids = append(ids, child.ID)
	}
	assert.Equal(t, []string{"S1-6_01", "S1-6_02", "S1-6_03", "S1-6_04"}, ids)

	table := s16.Children[3]
	require.Len(t, table.Children, 1)
	assert.Equal(t, "S1-6_04a", table.Children[0].ID)

	s19 := tree[1]
	enumerated := s19.Children[1]
	assert.Equal(t, "S1-9_03", enumerated.ID)
	assert.Equal(t, []string{"head count", "full-time equivalent"}, enumerated.Options)
}

func TestLoad_Idempotent(t *testing.T) {
	first, err := Load(strings.NewReader(sampleCatalogue))
	require.NoError(t, err)
	second, err := Load(strings.NewReader(sampleCatalogue))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestLoad_MissingRequiredColumn(t *testing.T) {
	src := "id;label_en;kind\nS1-6;Employees;section\n"

	_, err := Load(strings.NewReader(src))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"order"`)
}

func TestLoad_FieldCountMismatch(t *testing.T) {
	src := "id;label_en;kind;order\n" +
		"S1-6;Employees;section;1\n" +
		"S1-6_01;Total employees;numeric\n"

	_, err := Load(strings.NewReader(src))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestLoad_TooFewLines(t *testing.T) {
	_, err := Load(strings.NewReader("id;label_en;kind;order\n"))
	require.Error(t, err)

	_, err = Load(strings.NewReader(""))
	require.Error(t, err)
}

func TestLoad_UnknownParentBecomesRoot(t *testing.T) {
	src := "id;label_en;kind;order;parent_id\n" +
		"S1-6_01;Total employees;numeric;1;S9-9\n"

	tree, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, "S1-6_01", tree[0].ID)
}

func TestLoad_SiblingOrderTiesKeepSourceOrder(t *testing.T) {
	src := "id;label_en;kind;order\n" +
		"B;Second in file;numeric;1\n" +
		"A;First by nothing;numeric;1\n"

	tree, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, tree, 2)
	assert.Equal(t, "B", tree[0].ID)
	assert.Equal(t, "A", tree[1].ID)
}

func TestLoad_DuplicateID(t *testing.T) {
	src := "id;label_en;kind;order\n" +
		"S1-6_01;Total employees;numeric;1\n" +
		"S1-6_01;Total employees again;numeric;2\n"

	_, err := Load(strings.NewReader(src))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"S1-6_01"`)
}
