package cidrset

import (
	"unsafe"

	"github.com/holiman/uint256"
)

// Report summarizes a canonicalization or set-operation result against its
// input, the pure-function equivalent of the teacher's AggregationStats —
// without the mutex and running-state fields that only existed to support
// a long-lived, concurrently-mutated aggregator.
type Report struct {
	IPv4Count      int
	IPv6Count      int
	TotalCount     int
	OriginalCount  int
	ReductionRatio float64
	ApproxBytes    int64

	// AddressesV4/AddressesV6 mirror the original ip_counter's running
	// address-space totals: the sum of (max-min+1) over every prefix in
	// the family. Held as *uint256.Int since a single IPv6 /0 already
	// overflows a uint64.
	AddressesV4 *uint256.Int
	AddressesV6 *uint256.Int

	// LengthHistogram counts prefixes by family and bit length, keyed the
	// way ip_counter's length histogram was: [family][prefix length].
	LengthHistogram map[Family]map[int]int
}

// Stats computes a Report comparing result against its pre-canonicalization
// original count. Callers typically pass canonicalized output for result and
// len(rawInput) for originalCount.
func Stats(result []Prefix, originalCount int) Report {
	var ipv4, ipv6 int
	addrV4 := new(uint256.Int)
	addrV6 := new(uint256.Int)
	histogram := map[Family]map[int]int{FamilyV4: {}, FamilyV6: {}}
	one := uint256.NewInt(1)

	for _, p := range result {
		span := new(uint256.Int).Sub(p.Max(), p.Min())
		span.Add(span, one)

		switch p.Family() {
		case FamilyV4:
			ipv4++
			addrV4.Add(addrV4, span)
		default:
			ipv6++
			addrV6.Add(addrV6, span)
		}
		histogram[p.Family()][p.Bits()]++
	}

	total := ipv4 + ipv6
	var ratio float64
	if originalCount > 0 {
		ratio = 1.0 - (float64(total) / float64(originalCount))
	}

	return Report{
		IPv4Count:       ipv4,
		IPv6Count:       ipv6,
		TotalCount:      total,
		OriginalCount:   originalCount,
		ReductionRatio:  ratio,
		ApproxBytes:     approxMemoryUsage(result),
		AddressesV4:     addrV4,
		AddressesV6:     addrV6,
		LengthHistogram: histogram,
	}
}

// approxMemoryUsage estimates the resident size of a []Prefix, the
// structural descendant of calculateMemoryUsage now that Prefix is held by
// value: each element's two *uint256.Int fields still point at heap
// allocations, so those are counted alongside the slice header and backing
// array rather than assumed away.
func approxMemoryUsage(prefixes []Prefix) int64 {
	var total int64
	total += int64(unsafe.Sizeof(prefixes))
	total += int64(cap(prefixes)) * int64(unsafe.Sizeof(Prefix{}))
	for _, p := range prefixes {
		if p.min != nil {
			total += int64(unsafe.Sizeof(*p.min))
		}
		if p.max != nil {
			total += int64(unsafe.Sizeof(*p.max))
		}
	}
	return total
}
