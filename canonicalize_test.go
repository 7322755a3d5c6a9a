package cidrset

import "testing"

func mustParse(t *testing.T, s string) Prefix {
	t.Helper()
	p, err := ParsePrefix(s)
	if err != nil {
		t.Fatalf("ParsePrefix(%q) failed: %v", s, err)
	}
	return p
}

func parseAll(t *testing.T, ss ...string) []Prefix {
	t.Helper()
	out := make([]Prefix, len(ss))
	for i, s := range ss {
		out[i] = mustParse(t, s)
	}
	return out
}

// S1 — Aggregation.
func TestCanonicalizeAggregatesAdjacentSiblings(t *testing.T) {
	in := parseAll(t, "192.168.0.0/24", "192.168.1.0/24", "192.168.2.0/24", "192.168.3.0/24")
	out := Canonicalize(in)

	if len(out) != 1 {
		t.Fatalf("expected 1 aggregated prefix, got %d: %v", len(out), out)
	}
	if out[0].String() != "192.168.0.0/22" {
		t.Errorf("expected 192.168.0.0/22, got %s", out[0].String())
	}
}

// S2 — Nested absorption.
func TestCanonicalizeRemovesNested(t *testing.T) {
	in := parseAll(t, "10.1.1.1/32", "10.0.0.0/8", "10.50.0.0/16")
	out := Canonicalize(in)

	if len(out) != 1 || out[0].String() != "10.0.0.0/8" {
		t.Fatalf("expected [10.0.0.0/8], got %v", out)
	}
}

func TestCanonicalizeIsIdempotent(t *testing.T) {
	in := parseAll(t, "192.168.0.0/24", "192.168.1.0/24", "10.0.0.0/16", "10.1.0.0/24")
	once := Canonicalize(in)
	twice := Canonicalize(once)

	if len(once) != len(twice) {
		t.Fatalf("canonicalize not idempotent: %v vs %v", once, twice)
	}
	for i := range once {
		if !once[i].Equal(twice[i]) {
			t.Errorf("mismatch at %d: %v vs %v", i, once[i], twice[i])
		}
	}
}

func TestCanonicalizePreservesCoverage(t *testing.T) {
	in := parseAll(t, "192.168.0.0/25", "192.168.0.128/25", "10.0.0.0/24")
	out := Canonicalize(in)

	for _, p := range in {
		if !ContainsPrefix(FromSlice(out), p) {
			t.Errorf("canonical result lost coverage of %s", p.String())
		}
	}
}

func TestAggregateLeavesNoSiblingsUnmerged(t *testing.T) {
	in := parseAll(t, "172.16.0.0/24", "172.16.1.0/24", "172.16.4.0/24")
	out := Canonicalize(in)

	for i := 0; i+1 < len(out); i++ {
		if _, ok := mergeSiblings(out[i], out[i+1]); ok {
			t.Errorf("adjacent siblings survived aggregation: %s, %s", out[i], out[i+1])
		}
	}
}

func TestSortTotalOrder(t *testing.T) {
	in := parseAll(t, "10.0.0.0/8", "2001:db8::/32", "1.0.0.0/8", "::1/128")
	out := SortedCopy(in)

	for i := 0; i+1 < len(out); i++ {
		if less(out[i+1], out[i]) {
			t.Errorf("sort order violated at %d: %v before %v", i, out[i], out[i+1])
		}
	}
}
