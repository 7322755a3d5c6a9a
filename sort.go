package cidrset

import "sort"

// Sort orders prefixes broadest-first: by family, then numeric base address,
// then ascending prefix length. Within a family, equal base addresses order
// shorter (broader) length first; distinct base addresses order by numeric
// base regardless of length. This is the precondition RemoveNested and
// Aggregate both depend on.
//
// Sort mutates and returns its argument (in place), matching the teacher's
// sort.Slice-in-place style in algorithms.go.
func Sort(prefixes []Prefix) []Prefix {
	sort.Slice(prefixes, func(i, j int) bool {
		return less(prefixes[i], prefixes[j])
	})
	return prefixes
}

func less(a, b Prefix) bool {
	if a.Family() != b.Family() {
		return a.Family() < b.Family()
	}
	if c := a.min.Cmp(b.min); c != 0 {
		return c < 0
	}
	return a.Bits() < b.Bits()
}

// SortedCopy returns a broadest-first sorted copy of prefixes, leaving the
// input untouched.
func SortedCopy(prefixes []Prefix) []Prefix {
	out := make([]Prefix, len(prefixes))
	copy(out, prefixes)
	return Sort(out)
}
