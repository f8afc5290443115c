package catalogue

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/hr-tools/social-atlas/pkg/models/domain"
)

// Columns the tabular catalogue must declare in its header row.
var requiredColumns = []string{"id", "label_en", "kind", "order"}

// Optional columns, absent or blank fields default to empty.
const (
	columnParent  = "parent_id"
	columnOptions = "options"
)

// Load parses a semicolon-delimited catalogue into the ordered question tree.
// Tree assembly is two passes: index every node by id, then attach each node
// to its declared parent when that parent exists, else treat it as a root.
// Siblings are sorted ascending by order, stable for ties, recursively.
// Loading is deterministic: the same source always yields an equal tree.
func Load(r io.Reader) ([]*domain.QuestionNode, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalogue: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("catalogue must contain a header row and at least one question")
	}

	header := records[0]
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("catalogue header is missing required column %q", required)
		}
	}

	index := make(map[string]*domain.QuestionNode)
	var nodes []*domain.QuestionNode

	for n, record := range records[1:] {
		if len(record) != len(header) {
			return nil, fmt.Errorf("catalogue row %d has %d fields, expected %d", n+1, len(record), len(header))
		}

		order, err := strconv.Atoi(strings.TrimSpace(record[columns["order"]]))
		if err != nil {
			return nil, fmt.Errorf("catalogue row %d has a non-numeric order %q", n+1, record[columns["order"]])
		}

		node := &domain.QuestionNode{
			ID:       strings.TrimSpace(record[columns["id"]]),
			Label:    strings.TrimSpace(record[columns["label_en"]]),
			Kind:     domain.QuestionKind(strings.TrimSpace(record[columns["kind"]])),
			Order:    order,
			Children: []*domain.QuestionNode{},
		}
		if i, ok := columns[columnParent]; ok {
			node.ParentID = strings.TrimSpace(record[i])
		}
		if i, ok := columns[columnOptions]; ok {
			node.Options = splitOptions(record[i])
		}

		if _, dup := index[node.ID]; dup {
			return nil, fmt.Errorf("catalogue row %d redefines question id %q", n+1, node.ID)
		}
		index[node.ID] = node
		nodes = append(nodes, node)
	}

	var roots []*domain.QuestionNode
	for _, node := range nodes {
		if parent, ok := index[node.ParentID]; ok && node.ParentID != "" {
			parent.Children = append(parent.Children, node)
			continue
		}
		roots = append(roots, node)
	}

	sortTree(roots)
	return roots, nil
}

func splitOptions(field string) []string {
	if strings.TrimSpace(field) == "" {
		return nil
	}
	parts := strings.Split(field, ",")
	options := make([]string, 0, len(parts))
	for _, part := range parts {
		options = append(options, strings.TrimSpace(part))
	}
	return options
}

func sortTree(nodes []*domain.QuestionNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].Order < nodes[j].Order
	})
	for _, node := range nodes {
		sortTree(node.Children)
	}
}
