package search

// maxIndexedDistance caps the deletion expansion. The number of variants per
// prefix grows as C(len, k), so larger cutoffs fall back to a linear scan.
const maxIndexedDistance = 2

// Index is the per-session lookup structure over an immutable snapshot of
// entries. It is never mutated after NewIndex returns and is safe to share.
type Index struct {
	entries     []Entry
	folded      [][]rune
	maxDistance int

	// variants maps every deletion variant (up to maxDistance deletions) of
	// every name prefix to the ordinals of the entries producing it. Nil when
	// the index is unbounded or the cutoff is too large to expand.
	variants map[string][]int
}

// NewIndex builds an Index over entries. A maxDistance of 0 or less means no
// cutoff: every entry is ranked, distant ones last.
func NewIndex(entries []Entry, maxDistance int) *Index {
	if maxDistance < 0 {
		maxDistance = 0
	}
	ix := &Index{
		entries:     entries,
		folded:      make([][]rune, len(entries)),
		maxDistance: maxDistance,
	}
	for i, e := range entries {
		ix.folded[i] = fold(e.Name)
	}
	if maxDistance > 0 && maxDistance <= maxIndexedDistance {
		ix.expand()
	}
	return ix
}

func (ix *Index) expand() {
	ix.variants = make(map[string][]int)
	for i, name := range ix.folded {
		seen := make(map[string]bool)
		for n := 0; n <= len(name); n++ {
			for _, v := range deletions(name[:n], ix.maxDistance) {
				if seen[v] {
					continue
				}
				seen[v] = true
				ix.variants[v] = append(ix.variants[v], i)
			}
		}
	}
}

// Len reports the number of indexed entries.
func (ix *Index) Len() int { return len(ix.entries) }

// Entry returns the entry with the given ordinal.
func (ix *Index) Entry(ordinal int) Entry { return ix.entries[ordinal] }

// Rank returns entry names ordered best match first.
func (ix *Index) Rank(query string) []string {
	order := ix.Order(query)
	names := make([]string, len(order))
	for i, ordinal := range order {
		names[i] = ix.entries[ordinal].Name
	}
	return names
}

// Order is Rank expressed as entry ordinals. An empty query yields every
// ordinal in input order. Otherwise entries are sorted by ascending Distance,
// ties kept in input order, and entries beyond a configured cutoff dropped.
func (ix *Index) Order(query string) []int {
	if query == "" {
		order := make([]int, len(ix.entries))
		for i := range order {
			order[i] = i
		}
		return order
	}

	q := fold(query)
	results := make([]scored, 0, len(ix.entries))
	for _, ordinal := range ix.candidates(q) {
		d := prefixDistance(q, ix.folded[ordinal])
		if ix.maxDistance > 0 && d > ix.maxDistance {
			continue
		}
		results = append(results, scored{ordinal: ordinal, distance: d})
	}
	byDistance(results)

	order := make([]int, len(results))
	for i, r := range results {
		order[i] = r.ordinal
	}
	return order
}

// candidates returns, in ascending ordinal order, the entries that may lie
// within the cutoff. Any prefix p with lev(q, p) <= k shares a variant of at
// most k deletions with q, so the set is a superset that Order verifies.
func (ix *Index) candidates(q []rune) []int {
	if ix.variants == nil {
		all := make([]int, len(ix.entries))
		for i := range all {
			all[i] = i
		}
		return all
	}

	hit := make([]bool, len(ix.entries))
	for _, v := range deletions(q, ix.maxDistance) {
		for _, ordinal := range ix.variants[v] {
			hit[ordinal] = true
		}
	}
	var out []int
	for ordinal, ok := range hit {
		if ok {
			out = append(out, ordinal)
		}
	}
	return out
}

// deletions lists s and every string obtained from it by removing up to k
// runes, without duplicates.
func deletions(s []rune, k int) []string {
	seen := map[string]bool{string(s): true}
	out := []string{string(s)}
	frontier := [][]rune{s}
	for depth := 0; depth < k; depth++ {
		var next [][]rune
		for _, word := range frontier {
			for i := range word {
				v := make([]rune, 0, len(word)-1)
				v = append(v, word[:i]...)
				v = append(v, word[i+1:]...)
				key := string(v)
				if seen[key] {
					continue
				}
				seen[key] = true
				out = append(out, key)
				next = append(next, v)
			}
		}
		frontier = next
	}
	return out
}
