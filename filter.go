package cidrset

import "net/netip"

// FilterFlags configures the L2 classification filter. All flags default
// false. A prefix is excluded if any enabled predicate matches; a
// classification hit on the base address implies removal of the whole
// prefix interval.
type FilterFlags struct {
	IPv4Only          bool
	IPv6Only          bool
	ExcludePrivate    bool // RFC 1918 (v4), ULA (v6)
	ExcludeLoopback   bool
	ExcludeLinkLocal  bool
	ExcludeMulticast  bool
	ExcludeReserved   bool
	ExcludeUnspecified bool
}

// Bogons sets every exclude_* flag, matching the --bogons CLI bundle.
func (f FilterFlags) Bogons() FilterFlags {
	f.ExcludePrivate = true
	f.ExcludeLoopback = true
	f.ExcludeLinkLocal = true
	f.ExcludeMulticast = true
	f.ExcludeReserved = true
	f.ExcludeUnspecified = true
	return f
}

// classificationRanges are the bogon CIDR literals. IPv4 entries are
// grounded on the localBypassCIDRs table in Fokir-Ianus-Split-Tunnel-VPN's
// ip_filter.go; IPv6 entries are the RFC 4193/4291 equivalents.
var (
	privateRanges = mustPrefixes(
		"10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16", // RFC 1918
		"fc00::/7", // ULA
	)
	loopbackRanges = mustPrefixes("127.0.0.0/8", "::1/128")
	linkLocalRanges = mustPrefixes("169.254.0.0/16", "fe80::/10")
	multicastRanges = mustPrefixes("224.0.0.0/4", "ff00::/8")
	unspecifiedRanges = mustPrefixes("0.0.0.0/32", "::/128")
	// reservedRanges are the remaining IETF-reserved / special-purpose
	// blocks (RFC 5735 / RFC 6890) not already covered above.
	reservedRanges = mustPrefixes(
		"0.0.0.0/8",          // "this network"
		"100.64.0.0/10",      // shared address space (CGN)
		"192.0.0.0/24",       // IETF protocol assignments
		"192.0.2.0/24",       // TEST-NET-1
		"192.88.99.0/24",     // 6to4 relay anycast
		"198.18.0.0/15",      // benchmarking
		"198.51.100.0/24",    // TEST-NET-2
		"203.0.113.0/24",     // TEST-NET-3
		"240.0.0.0/4",        // reserved for future use
		"255.255.255.255/32", // limited broadcast
		"2001:db8::/32",      // documentation
		"64:ff9b::/96",       // NAT64 well-known prefix
		"100::/64",           // discard-only
	)
)

func mustPrefixes(ss ...string) []Prefix {
	out := make([]Prefix, 0, len(ss))
	for _, s := range ss {
		p, err := ParsePrefix(s)
		if err != nil {
			panic(err) // literals are fixed at compile time
		}
		out = append(out, p)
	}
	return out
}

// anyContains reports whether any range in ranges covers p's base address.
// A classification hit on the base address implies removal of the whole
// prefix interval, so this checks ContainsAddr rather than ContainsPrefix:
// a bogon range narrower than p still disqualifies all of p.
func anyContains(ranges []Prefix, p Prefix) bool {
	addr := p.Addr()
	for _, r := range ranges {
		if r.Family() == p.Family() && r.ContainsAddr(addr) {
			return true
		}
	}
	return false
}

// excluded reports whether p should be dropped under flags.
func excluded(p Prefix, flags FilterFlags) bool {
	if flags.IPv4Only && p.Family() != FamilyV4 {
		return true
	}
	if flags.IPv6Only && p.Family() != FamilyV6 {
		return true
	}
	if flags.ExcludePrivate && anyContains(privateRanges, p) {
		return true
	}
	if flags.ExcludeLoopback && anyContains(loopbackRanges, p) {
		return true
	}
	if flags.ExcludeLinkLocal && anyContains(linkLocalRanges, p) {
		return true
	}
	if flags.ExcludeMulticast && anyContains(multicastRanges, p) {
		return true
	}
	if flags.ExcludeReserved && anyContains(reservedRanges, p) {
		return true
	}
	if flags.ExcludeUnspecified && anyContains(unspecifiedRanges, p) {
		return true
	}
	return false
}

// Apply streams seq through the classification filter. O(1) memory beyond
// the fixed bogon-literal tables.
func Apply(seq Seq, flags FilterFlags) Seq {
	return Filter(seq, func(p Prefix) bool { return !excluded(p, flags) })
}

// IsBogon reports whether addr falls in any classification-excluded range
// under the full bogon bundle, for callers that want a single-address answer
// without building a Prefix first.
func IsBogon(addr netip.Addr) bool {
	bits := 32
	if addr.Is6() {
		bits = 128
	}
	p, err := NewPrefix(netip.PrefixFrom(addr, bits))
	if err != nil {
		return false
	}
	return excluded(p, FilterFlags{}.Bogons())
}
