package cidrset

// RemoveNested emits every prefix that is not contained by any previously
// emitted prefix of the same family. Its output is a subsequence of the
// input in the same broadest-first order, computed in O(N) with a small
// per-family "current cover" pointer.
//
// If assumeSorted is false, the input is sorted internally first (a copy is
// taken; the caller's slice is not mutated). Callers that already sorted
// their input should pass assumeSorted=true to skip the resort — this
// mirrors the contract the teacher's nested/aggregate passes expose via
// their own sort-then-process helpers.
//
// Two prefixes with an identical tuple are, by construction, each other's
// container — so RemoveNested also performs dedup as a side effect of
// containment.
func RemoveNested(prefixes []Prefix, assumeSorted bool) []Prefix {
	if len(prefixes) <= 1 {
		return prefixes
	}

	data := prefixes
	if !assumeSorted {
		data = SortedCopy(prefixes)
	}

	out := make([]Prefix, 0, len(data))
	var cover [2]Prefix  // current broadest cover per family, indexed by Family
	var hasCover [2]bool

	for i := range data {
		p := data[i]
		fam := p.Family()
		if hasCover[fam] && cover[fam].ContainsPrefix(p) {
			continue
		}
		out = append(out, p)
		cover[fam] = p
		hasCover[fam] = true
	}

	return out
}
