package cidrset

// Canonicalize runs the full three-stage pipeline — sort broadest-first,
// remove nested, aggregate adjacent siblings — and returns a canonical
// prefix set (§4.3): sorted, non-overlapping, non-adjacent-sibling.
//
// Canonicalize is idempotent and coverage-preserving; see the property
// tests in canonicalize_test.go.
func Canonicalize(prefixes []Prefix) []Prefix {
	sorted := SortedCopy(prefixes)
	nested := RemoveNested(sorted, true)
	return Aggregate(nested)
}

// CanonicalizeSeq drains seq and canonicalizes it. This is the point where
// the pipeline's streaming contract necessarily breaks (§5): Sort must
// materialize its input.
func CanonicalizeSeq(seq Seq) []Prefix {
	return Canonicalize(Collect(seq))
}
