package dsn

import (
	"regexp"
	"strconv"
	"strings"
)

// Row is one decoded declaration line. Block is the three-segment block code
// (e.g. "S21.G00.30"), Field the three-digit rubrique number. Seq is the
// numeric occurrence sequence used to split bloc instances; it falls back to
// 1 when the field token is not numeric.
type Row struct {
	Block string
	Field string
	Seq   int
	Value string
}

// Matching lines carry a 16-character fixed prefix (`SNN.GNN.NN.NNN,'`)
// followed by a quoted value terminated by the line's trailing quote.
var rowPattern = regexp.MustCompile(`^(S\d{2}\.G\d{2}\.\d{2})\.(\d{3}),'(.*)'$`)

// ParseLines scans the declaration text line by line and returns every
// matching row in file order. Non-matching lines (headers, footers, malformed
// records) are skipped on purpose: downstream stages detect an empty result
// as missing mandatory blocks.
func ParseLines(text string) []Row {
	var rows []Row
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r", ""), "\n") {
		m := rowPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		seq, err := strconv.Atoi(m[2])
		if err != nil {
			seq = 1
		}

		rows = append(rows, Row{
			Block: m[1],
			Field: m[2],
			Seq:   seq,
			Value: m[3],
		})
	}
	return rows
}
