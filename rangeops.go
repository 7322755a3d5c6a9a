package cidrset

import "github.com/holiman/uint256"

// splitRangeIntoPrefixes walks [min, max] into the minimal sequence of
// CIDR-aligned blocks that exactly cover it, broadest-first at each step.
// This is the same trailing-zero bit walk as BourgeoisBear/range2cidr's
// splitIntoPrefixes, reworked over uint256.Int instead of [16]byte so it
// serves both families without the byte-slice indirection.
//
// At each position, the largest block starting at lo that both (a) lo is
// aligned to, and (b) still fits under hi, is emitted; lo then advances past
// it. The loop terminates because lo strictly increases and is bounded by
// hi.
func splitRangeIntoPrefixes(lo, hi *uint256.Int, family Family) []Prefix {
	var out []Prefix
	width := family.Width()
	one := uint256.NewInt(1)

	cur := new(uint256.Int).Set(lo)
	for cur.Cmp(hi) <= 0 {
		// Largest power-of-two block aligned to cur: the count of trailing
		// zero bits in cur, capped so the block still fits within [cur, hi].
		maxShift := width
		if !cur.IsZero() {
			tz := trailingZeros(cur, width)
			if tz < maxShift {
				maxShift = tz
			}
		}

		var blockEnd *uint256.Int
		shift := maxShift
		for {
			size := new(uint256.Int).Lsh(one, uint(shift))
			end := new(uint256.Int).Add(cur, size)
			end.Sub(end, one)
			if end.Cmp(hi) <= 0 {
				blockEnd = end
				break
			}
			shift--
		}

		pfx, err := PrefixFromRange(cur, blockEnd, family)
		if err != nil {
			// The construction above always yields an aligned power-of-two
			// range, so this is unreachable in practice.
			panic(err)
		}
		out = append(out, pfx)

		next := new(uint256.Int).Add(blockEnd, one)
		if blockEnd.Cmp(hi) == 0 {
			break
		}
		cur = next
	}

	return out
}

// trailingZeros counts trailing zero bits of v within a width-bit field,
// capped at width (v==0 is handled by the caller).
func trailingZeros(v *uint256.Int, width int) int {
	if v.IsZero() {
		return width
	}
	one := uint256.NewInt(1)
	tmp := new(uint256.Int).Set(v)
	n := 0
	for n < width {
		if !new(uint256.Int).And(tmp, one).IsZero() {
			break
		}
		tmp.Rsh(tmp, 1)
		n++
	}
	return n
}
