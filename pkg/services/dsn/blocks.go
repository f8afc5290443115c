package dsn

// Bloc is one fully-aggregated record occurrence: rubrique number -> value.
type Bloc map[string]string

// CollectBloc collapses the contiguous run of rows starting at index i into
// one bloc. The run continues while rows share the starting block code and
// their sequence stays non-decreasing; a reset separates two occurrences of
// the same block (e.g. two contracts in a row). Comparison is numeric, not
// lexical. Returns the bloc and the index of the first row past the run.
func CollectBloc(rows []Row, i int) (Bloc, int) {
	bloc := Bloc{rows[i].Field: rows[i].Value}
	block := rows[i].Block
	prev := rows[i].Seq

	j := i + 1
	for j < len(rows) && rows[j].Block == block && rows[j].Seq >= prev {
		bloc[rows[j].Field] = rows[j].Value
		prev = rows[j].Seq
		j++
	}
	return bloc, j
}
