package dsn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLines(t *testing.T) {
	text := "DSN mensuelle - fichier de test\r\n" +
		"S10.G00.00.001,'SocialSoft'\r\n" +
		"S20.G00.05.005,'20251101'\r\n" +
		"ligne non conforme\r\n" +
		"S21.G00.30.002,'O'CONNOR'\r\n" +
		"\r\n"

	rows := ParseLines(text)
	require.Len(t, rows, 3)

	assert.Equal(t, Row{Block: "S10.G00.00", Field: "001", Seq: 1, Value: "SocialSoft"}, rows[0])
	assert.Equal(t, Row{Block: "S20.G00.05", Field: "005", Seq: 5, Value: "20251101"}, rows[1])
	// Value runs to the line's trailing quote, embedded quotes included.
	assert.Equal(t, "O'CONNOR", rows[2].Value)
}

func TestParseLines_EmptyAndNonMatching(t *testing.T) {
	assert.Empty(t, ParseLines(""))
	assert.Empty(t, ParseLines("just some text\nanother line"))
}

func TestCheckConformity(t *testing.T) {
	valid := "S10.G00.00.001,'x'\nS20.G00.05.001,'01'\nS21.G00.30.001,'123'\n"
	require.NoError(t, CheckConformity(valid))

	noDetail := "S10.G00.00.001,'x'\nS20.G00.05.001,'01'\n"
	err := CheckConformity(noDetail)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"S21."`)

	err = CheckConformity("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"S10."`)
}

func TestCollectBloc_SplitsOnSequenceReset(t *testing.T) {
	rows := []Row{
		{Block: "S21.G00.40", Field: "001", Seq: 1, Value: "20250101"},
		{Block: "S21.G00.40", Field: "004", Seq: 4, Value: "38"},
		// Sequence resets: a second contract occurrence starts here.
		{Block: "S21.G00.40", Field: "001", Seq: 1, Value: "20250601"},
		{Block: "S21.G00.40", Field: "004", Seq: 4, Value: "52"},
	}

	bloc, next := CollectBloc(rows, 0)
	assert.Equal(t, 2, next)
	assert.Equal(t, Bloc{"001": "20250101", "004": "38"}, bloc)

	bloc, next = CollectBloc(rows, next)
	assert.Equal(t, 4, next)
	assert.Equal(t, Bloc{"001": "20250601", "004": "52"}, bloc)
}

func TestCollectBloc_StopsOnBlockChange(t *testing.T) {
	rows := []Row{
		{Block: "S21.G00.30", Field: "001", Seq: 1, Value: "a"},
		{Block: "S21.G00.30", Field: "005", Seq: 5, Value: "01"},
		{Block: "S21.G00.40", Field: "001", Seq: 1, Value: "20250101"},
	}

	bloc, next := CollectBloc(rows, 0)
	assert.Equal(t, 2, next)
	assert.Len(t, bloc, 2)
}
