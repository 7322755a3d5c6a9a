package cidrset

// Intersect returns the set of addresses present in both a and b, as a
// minimal canonical prefix set. Both inputs are canonicalized internally.
//
// Each family is walked independently with a linear two-pointer scan over
// the two canonical lists (both already sorted by base address with no
// overlaps within a list): whichever of the two current prefixes ends first
// advances. This is the design's resolution of an Open Question — the
// teacher's and the original implementation's equivalent routines scan one
// list per entry of the other (O(N*M)) and, in the original, double-count an
// overlap against both operands; the two-pointer walk here is linear and
// emits the overlap exactly once.
func Intersect(a, b []Prefix) []Prefix {
	aCanon := Canonicalize(a)
	bCanon := Canonicalize(b)

	var out []Prefix
	for fam := FamilyV4; fam <= FamilyV6; fam++ {
		out = append(out, intersectFamily(filterFamily(aCanon, fam), filterFamily(bCanon, fam), fam)...)
	}
	return Canonicalize(out)
}

func intersectFamily(a, b []Prefix, fam Family) []Prefix {
	var out []Prefix
	i, j := 0, 0

	for i < len(a) && j < len(b) {
		lo := a[i].min
		if b[j].min.Cmp(lo) > 0 {
			lo = b[j].min
		}
		hi := a[i].max
		if b[j].max.Cmp(hi) < 0 {
			hi = b[j].max
		}

		if lo.Cmp(hi) <= 0 {
			out = append(out, splitRangeIntoPrefixes(lo, hi, fam)...)
		}

		if a[i].max.Cmp(b[j].max) < 0 {
			i++
		} else if b[j].max.Cmp(a[i].max) < 0 {
			j++
		} else {
			i++
			j++
		}
	}
	return out
}

// DiffResult reports the three-way classification of two prefix sets.
type DiffResult struct {
	Added     []Prefix // in next but not previous
	Removed   []Prefix // in previous but not next
	Unchanged []Prefix // in both
}

// Diff compares previous to next and classifies the address space each
// covers, grounded on the original implementation's diff() call in api.py.
func Diff(previous, next []Prefix) (DiffResult, error) {
	added, err := Subtract(next, previous)
	if err != nil {
		return DiffResult{}, err
	}
	removed, err := Subtract(previous, next)
	if err != nil {
		return DiffResult{}, err
	}
	unchanged := Intersect(previous, next)

	return DiffResult{Added: added, Removed: removed, Unchanged: unchanged}, nil
}
