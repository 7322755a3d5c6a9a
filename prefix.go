package cidrset

import (
	"fmt"
	"net/netip"
	"strings"

	"github.com/holiman/uint256"
)

// Prefix is a CIDR interval: a family, a base address, and a length. The low
// W-L host bits of the base address are always zero (construction masks
// them). Two prefixes with the same (family, base, length) tuple are the
// same Prefix, regardless of how they were spelled on input.
//
// Prefix is an immutable value from the caller's perspective; the min/max
// bounds are cached at construction time so interval comparisons used across
// the canonicalizer and set operations are O(1) integer compares instead of
// repeated bit-math on netip.Prefix.
type Prefix struct {
	addr netip.Prefix
	min  *uint256.Int
	max  *uint256.Int
}

// Family reports which address space p lives in.
func (p Prefix) Family() Family {
	if p.addr.Addr().Is4() {
		return FamilyV4
	}
	return FamilyV6
}

// Bits is the prefix length L.
func (p Prefix) Bits() int { return p.addr.Bits() }

// Addr is the masked base address.
func (p Prefix) Addr() netip.Addr { return p.addr.Addr() }

// Netip returns the underlying netip.Prefix.
func (p Prefix) Netip() netip.Prefix { return p.addr }

// Min is the first address integer in the interval p covers.
func (p Prefix) Min() *uint256.Int { return p.min }

// Max is the last address integer in the interval p covers.
func (p Prefix) Max() *uint256.Int { return p.max }

func (p Prefix) String() string { return p.addr.String() }

// Equal reports whether p and o have the same semantic identity.
func (p Prefix) Equal(o Prefix) bool {
	return p.Family() == o.Family() && p.min.Cmp(o.min) == 0 && p.max.Cmp(o.max) == 0
}

// ContainsAddr reports whether addr (same family) falls within p's interval.
func (p Prefix) ContainsAddr(addr netip.Addr) bool {
	if (addr.Is4() && p.Family() != FamilyV4) || (addr.Is6() && p.Family() != FamilyV6) {
		return false
	}
	v, err := addrToUint256(addr)
	if err != nil {
		return false
	}
	return p.min.Cmp(v) <= 0 && v.Cmp(p.max) <= 0
}

// ContainsPrefix reports whether o's interval is a subset of p's (same
// family). A prefix contains itself.
func (p Prefix) ContainsPrefix(o Prefix) bool {
	return p.Family() == o.Family() && p.min.Cmp(o.min) <= 0 && p.max.Cmp(o.max) >= 0
}

// NewPrefix builds a Prefix from an already-parsed netip.Prefix, masking any
// host bits at construction (non-strict input is silently accepted and
// masked to the network base, per the data model).
func NewPrefix(pfx netip.Prefix) (Prefix, error) {
	if !pfx.IsValid() {
		return Prefix{}, fmt.Errorf("%w: invalid prefix", ErrInvalidInput)
	}
	masked := pfx.Masked()
	min, max, err := prefixToRange(masked)
	if err != nil {
		return Prefix{}, err
	}
	return Prefix{addr: masked, min: min, max: max}, nil
}

// ParsePrefix parses a strict CIDR string or bare address (upgraded to /32
// or /128) into a Prefix. It does not run the tolerant extractor's
// leading-zero defense — use Normalize for dirty input.
func ParsePrefix(s string) (Prefix, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Prefix{}, fmt.Errorf("%w: empty prefix string", ErrInvalidInput)
	}

	pfx, err := netip.ParsePrefix(s)
	if err != nil {
		addr, addrErr := netip.ParseAddr(s)
		if addrErr != nil {
			return Prefix{}, fmt.Errorf("%w: %q: %v", ErrInvalidInput, s, err)
		}
		pfx = netip.PrefixFrom(addr, addr.BitLen())
	}
	return NewPrefix(pfx)
}

// PrefixFromRange reconstructs the unique Prefix whose interval is exactly
// [min, max], or an error if that range isn't CIDR-aligned.
func PrefixFromRange(min, max *uint256.Int, family Family) (Prefix, error) {
	pfx, err := rangeToPrefix(min, max, family)
	if err != nil {
		return Prefix{}, err
	}
	return Prefix{addr: pfx, min: new(uint256.Int).Set(min), max: new(uint256.Int).Set(max)}, nil
}

func addrToUint256(addr netip.Addr) (*uint256.Int, error) {
	if addr.Is4() {
		b := addr.As4()
		v := new(uint256.Int)
		v.SetBytes(b[:])
		return v, nil
	}
	if addr.Is6() {
		b := addr.As16()
		v := new(uint256.Int)
		v.SetBytes(b[:])
		return v, nil
	}
	return nil, fmt.Errorf("%w: unsupported address type", ErrInvalidInput)
}

func prefixToRange(pfx netip.Prefix) (*uint256.Int, *uint256.Int, error) {
	addr := pfx.Addr()
	bits := pfx.Bits()

	if addr.Is4() {
		return ipv4RangeFromPrefix(addr, bits)
	}
	if addr.Is6() {
		return ipv6RangeFromPrefix(addr, bits)
	}
	return nil, nil, fmt.Errorf("%w: unsupported address type", ErrInvalidInput)
}

func ipv4RangeFromPrefix(addr netip.Addr, bits int) (*uint256.Int, *uint256.Int, error) {
	if bits < 0 || bits > 32 {
		return nil, nil, fmt.Errorf("%w: IPv4 prefix length must be 0-32, got %d", ErrInvalidInput, bits)
	}

	b := addr.As4()
	base := uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])

	hostBits := 32 - bits
	var mask uint32
	if hostBits >= 32 {
		mask = 0
	} else {
		mask = uint32(0xFFFFFFFF) << hostBits
	}
	minVal := base & mask
	var maxVal uint32
	if hostBits >= 32 {
		maxVal = 0xFFFFFFFF
	} else {
		maxVal = minVal | ((uint32(1) << hostBits) - 1)
	}

	return uint256.NewInt(uint64(minVal)), uint256.NewInt(uint64(maxVal)), nil
}

func ipv6RangeFromPrefix(addr netip.Addr, bits int) (*uint256.Int, *uint256.Int, error) {
	if bits < 0 || bits > 128 {
		return nil, nil, fmt.Errorf("%w: IPv6 prefix length must be 0-128, got %d", ErrInvalidInput, bits)
	}

	b := addr.As16()
	base := new(uint256.Int).SetBytes(b[:])

	hostBits := 128 - bits
	if hostBits == 0 {
		return base, new(uint256.Int).Set(base), nil
	}

	hostMask := new(uint256.Int).Lsh(uint256.NewInt(1), uint(hostBits))
	hostMask.Sub(hostMask, uint256.NewInt(1))

	networkMask := new(uint256.Int).Not(hostMask)
	minVal := new(uint256.Int).And(base, networkMask)
	maxVal := new(uint256.Int).Or(minVal, hostMask)

	return minVal, maxVal, nil
}

// rangeToPrefix reconstructs the CIDR prefix for [min, max] if that range is
// exactly a power-of-two-sized, alignment-respecting block; otherwise it
// reports an error (the caller is expected to have already partitioned the
// range into CIDR-aligned pieces).
func rangeToPrefix(min, max *uint256.Int, family Family) (netip.Prefix, error) {
	if min.Cmp(max) > 0 {
		return netip.Prefix{}, fmt.Errorf("%w: min > max in range", ErrInvalidInput)
	}

	width := family.Width()

	if min.Cmp(max) == 0 {
		return netip.PrefixFrom(addrFromUint256(min, family), width), nil
	}

	size := new(uint256.Int).Sub(max, min)
	size.Add(size, uint256.NewInt(1))
	if !isPowerOfTwo(size) {
		return netip.Prefix{}, fmt.Errorf("%w: range is not a power of 2", ErrInvalidInput)
	}

	bits := width
	tmp := new(uint256.Int).Set(size)
	one := uint256.NewInt(1)
	for tmp.Cmp(one) > 0 {
		tmp.Rsh(tmp, 1)
		bits--
	}

	hostBits := width - bits
	if hostBits > 0 {
		hostMask := new(uint256.Int).Lsh(uint256.NewInt(1), uint(hostBits))
		hostMask.Sub(hostMask, uint256.NewInt(1))
		if !new(uint256.Int).And(min, hostMask).IsZero() {
			return netip.Prefix{}, fmt.Errorf("%w: range not aligned to prefix boundary", ErrInvalidInput)
		}
	}

	return netip.PrefixFrom(addrFromUint256(min, family), bits), nil
}

func addrFromUint256(v *uint256.Int, family Family) netip.Addr {
	if family == FamilyV4 {
		b32 := v.Bytes32()
		var b4 [4]byte
		copy(b4[:], b32[28:32])
		return netip.AddrFrom4(b4)
	}
	b32 := v.Bytes32()
	var b16 [16]byte
	copy(b16[:], b32[16:32])
	return netip.AddrFrom16(b16)
}

func isPowerOfTwo(n *uint256.Int) bool {
	if n.IsZero() {
		return false
	}
	tmp := new(uint256.Int).Sub(n, uint256.NewInt(1))
	tmp.And(n, tmp)
	return tmp.IsZero()
}
