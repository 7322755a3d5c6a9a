package cidrset

import "github.com/holiman/uint256"

// Aggregate merges adjacent sibling prefixes (the two children of a common
// parent at length L-1) into their parent, to a fixed point. prefixes must
// already be nested-free and broadest-first sorted (RemoveNested's output).
//
// The algorithm is the single linear pass with a stack that the design
// prescribes: push the next prefix; while the top two entries on the stack
// are siblings, pop both and push their parent. Because input arrives in
// broadest-first order, a merge can only ever create a new sibling pair with
// what is now the new top of stack, so one pass reaches the fixed point —
// unlike the teacher's algorithms.go, which re-scans the whole slice in a
// bounded loop until nothing changes.
func Aggregate(prefixes []Prefix) []Prefix {
	if len(prefixes) <= 1 {
		return prefixes
	}

	stack := make([]Prefix, 0, len(prefixes))

	for _, next := range prefixes {
		stack = append(stack, next)

		for len(stack) >= 2 {
			top := stack[len(stack)-1]
			under := stack[len(stack)-2]

			parent, ok := mergeSiblings(under, top)
			if !ok {
				break
			}
			stack = stack[:len(stack)-2]
			stack = append(stack, parent)
		}
	}

	return stack
}

// mergeSiblings returns the parent of a and b if they are the two children
// of a common CIDR parent (same family, same length, base addresses differ
// only in the bit at position length-1), and false otherwise.
func mergeSiblings(a, b Prefix) (Prefix, bool) {
	if a.Family() != b.Family() || a.Bits() != b.Bits() || a.Bits() == 0 {
		return Prefix{}, false
	}

	one := uint256.NewInt(1)
	aNext := new(uint256.Int).Add(a.max, one)
	if aNext.Cmp(b.min) != 0 {
		return Prefix{}, false
	}

	// a and b are adjacent; they're siblings only if the combined range is
	// exactly twice a's size and aligned on a's own base, i.e. a is the
	// low child (its base has the parent-length bit clear).
	size := new(uint256.Int).Sub(a.max, a.min)
	size.Add(size, one)
	doubled := new(uint256.Int).Lsh(size, 1)

	bSize := new(uint256.Int).Sub(b.max, b.min)
	bSize.Add(bSize, one)
	if size.Cmp(bSize) != 0 {
		return Prefix{}, false
	}

	mask := new(uint256.Int).Sub(doubled, one)
	if !new(uint256.Int).And(a.min, mask).IsZero() {
		return Prefix{}, false
	}

	parent, err := PrefixFromRange(a.min, b.max, a.Family())
	if err != nil {
		return Prefix{}, false
	}
	return parent, true
}
