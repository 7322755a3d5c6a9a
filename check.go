package cidrset

import "net/netip"

// Contains reports whether addr is covered by any prefix in the set. Streams
// source and returns on the first match, so it never materializes the whole
// set for a single lookup.
func Contains(source Seq, addr netip.Addr) bool {
	found := false
	source(func(p Prefix) bool {
		if p.ContainsAddr(addr) {
			found = true
			return false
		}
		return true
	})
	return found
}

// ContainsPrefix reports whether target is a subset of some prefix in the
// set — i.e. every address target covers is also covered by one member of
// source.
func ContainsPrefix(source Seq, target Prefix) bool {
	found := false
	source(func(p Prefix) bool {
		if p.ContainsPrefix(target) {
			found = true
			return false
		}
		return true
	})
	return found
}

// Check parses s as either a bare address or a CIDR prefix and reports
// whether it is covered by source, dispatching to Contains or
// ContainsPrefix accordingly.
func Check(source Seq, s string) (bool, error) {
	p, err := ParsePrefix(s)
	if err != nil {
		return false, err
	}
	if p.Bits() == p.Family().Width() {
		return Contains(source, p.Addr()), nil
	}
	return ContainsPrefix(source, p), nil
}
