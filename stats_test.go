package cidrset

import "testing"

func TestStatsReductionRatio(t *testing.T) {
	in := parseAll(t, "192.168.0.0/24", "192.168.1.0/24", "192.168.2.0/24", "192.168.3.0/24")
	result := Canonicalize(in)
	report := Stats(result, len(in))

	if report.OriginalCount != 4 {
		t.Errorf("expected OriginalCount=4, got %d", report.OriginalCount)
	}
	if report.TotalCount != 1 {
		t.Errorf("expected TotalCount=1, got %d", report.TotalCount)
	}
	if report.ReductionRatio <= 0 {
		t.Errorf("expected a positive reduction ratio, got %f", report.ReductionRatio)
	}
}

func TestStatsFamilySplit(t *testing.T) {
	in := parseAll(t, "10.0.0.0/24", "2001:db8::/32", "2001:db9::/32")
	report := Stats(in, len(in))

	if report.IPv4Count != 1 {
		t.Errorf("expected IPv4Count=1, got %d", report.IPv4Count)
	}
	if report.IPv6Count != 2 {
		t.Errorf("expected IPv6Count=2, got %d", report.IPv6Count)
	}
}

func TestStatsAddressesCoveredAndHistogram(t *testing.T) {
	in := parseAll(t, "10.0.0.0/24", "10.0.1.0/25")
	report := Stats(in, len(in))

	if got := report.AddressesV4.Uint64(); got != 256+128 {
		t.Errorf("expected 384 IPv4 addresses covered, got %d", got)
	}
	if !report.AddressesV6.IsZero() {
		t.Errorf("expected zero IPv6 addresses covered, got %s", report.AddressesV6)
	}

	hist := report.LengthHistogram[FamilyV4]
	if hist[24] != 1 || hist[25] != 1 {
		t.Errorf("expected one /24 and one /25, got %v", hist)
	}
}
