package cidrset

import (
	"fmt"

	"github.com/holiman/uint256"
)

// Subtract removes every address covered by exclude from base, returning the
// minimal canonical set of prefixes covering what remains. Both inputs are
// canonicalized internally first, so callers may pass raw, unsorted,
// overlapping sets.
//
// The algorithm is a single monotone cursor over each family's canonical
// base list, walking the matching canonical exclude list alongside it —
// O(N+M) instead of the teacher's exclusion.go, which binary-searches the
// overlap list per base prefix (O(N log M)) and is itself an improvement on
// a naive O(N*M) scan. Because both lists are already sorted broadest-first
// by base address, a single cursor into exclude never needs to back up: once
// a base prefix's remaining holes are punched, the next base prefix starts
// no earlier than where the last one left off.
func Subtract(base, exclude []Prefix) ([]Prefix, error) {
	baseCanon := Canonicalize(base)
	excludeCanon := Canonicalize(exclude)

	var out []Prefix
	fragments := 0

	for fam := FamilyV4; fam <= FamilyV6; fam++ {
		baseFam := filterFamily(baseCanon, fam)
		exclFam := filterFamily(excludeCanon, fam)

		pieces, err := subtractFamily(baseFam, exclFam, fam, &fragments)
		if err != nil {
			return nil, err
		}
		out = append(out, pieces...)
	}

	return Canonicalize(out), nil
}

func filterFamily(prefixes []Prefix, fam Family) []Prefix {
	out := make([]Prefix, 0, len(prefixes))
	for _, p := range prefixes {
		if p.Family() == fam {
			out = append(out, p)
		}
	}
	return out
}

// subtractFamily punches holes from each base prefix using exclude entries
// that overlap it, advancing a single cursor j into exclude across the whole
// base list.
func subtractFamily(base, exclude []Prefix, fam Family, fragments *int) ([]Prefix, error) {
	var out []Prefix
	j := 0

	for _, b := range base {
		lo := new(uint256.Int).Set(b.min)
		bMax := b.max

		// Advance the cursor past any exclude entries that end before this
		// base prefix begins; they can never matter again since both lists
		// are sorted by base address.
		for j < len(exclude) && exclude[j].max.Cmp(lo) < 0 {
			j++
		}

		k := j
		for k < len(exclude) && lo.Cmp(bMax) <= 0 {
			e := exclude[k]
			if e.min.Cmp(bMax) > 0 {
				break // no more overlap possible for this base prefix
			}
			if e.max.Cmp(lo) < 0 {
				k++
				continue
			}

			if e.min.Cmp(lo) > 0 {
				// gap [lo, e.min-1] survives
				gapEnd := new(uint256.Int).Sub(e.min, uint256.NewInt(1))
				pieces := splitRangeIntoPrefixes(lo, gapEnd, fam)
				*fragments += len(pieces)
				if *fragments > MaxOutputFragments {
					return nil, fmt.Errorf("%w: subtract produced more than %d fragments", ErrLimitExceeded, MaxOutputFragments)
				}
				out = append(out, pieces...)
			}

			if e.max.Cmp(lo) >= 0 {
				lo = new(uint256.Int).Add(e.max, uint256.NewInt(1))
			}
			if e.max.Cmp(bMax) >= 0 {
				break
			}
			k++
		}

		if lo.Cmp(bMax) <= 0 {
			pieces := splitRangeIntoPrefixes(lo, bMax, fam)
			*fragments += len(pieces)
			if *fragments > MaxOutputFragments {
				return nil, fmt.Errorf("%w: subtract produced more than %d fragments", ErrLimitExceeded, MaxOutputFragments)
			}
			out = append(out, pieces...)
		}
	}

	return out, nil
}
