package cidrset

import (
	"fmt"

	"github.com/holiman/uint256"
)

// Split breaks p into the full set of /targetLen subnets it contains.
// targetLen must be >= p.Bits(); equal length returns []Prefix{p}.
//
// maxSubnets bounds the subnet count before any allocation happens: the
// count 1<<(targetLen-p.Bits()) is computed first, and if it exceeds
// maxSubnets the call fails without ever building the slice. Pass 0 to fall
// back to DefaultMaxSubnets.
func Split(p Prefix, targetLen int, maxSubnets int) ([]Prefix, error) {
	width := p.Family().Width()
	if targetLen < p.Bits() || targetLen > width {
		return nil, fmt.Errorf("%w: target length must be >= source length and <= %d", ErrUnsupportedLen, width)
	}
	if maxSubnets <= 0 {
		maxSubnets = DefaultMaxSubnets
	}

	shift := targetLen - p.Bits()
	if shift == 0 {
		return []Prefix{p}, nil
	}
	if shift >= 63 { // guards the uint64 count below from overflow
		return nil, fmt.Errorf("%w: subnet count exceeds %d", ErrLimitExceeded, maxSubnets)
	}
	count := uint64(1) << uint(shift)
	if count > uint64(maxSubnets) {
		return nil, fmt.Errorf("%w: split into %d subnets exceeds limit of %d", ErrLimitExceeded, count, maxSubnets)
	}

	subnetSize := new(uint256.Int).Lsh(uint256.NewInt(1), uint(width-targetLen))
	one := uint256.NewInt(1)

	out := make([]Prefix, 0, count)
	cur := new(uint256.Int).Set(p.min)
	for i := uint64(0); i < count; i++ {
		end := new(uint256.Int).Add(cur, subnetSize)
		end.Sub(end, one)
		sub, err := PrefixFromRange(cur, end, p.Family())
		if err != nil {
			return nil, err
		}
		out = append(out, sub)
		cur = new(uint256.Int).Add(cur, subnetSize)
	}
	return out, nil
}
