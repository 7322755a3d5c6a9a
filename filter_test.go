package cidrset

import "testing"

// S5 — Bogon filter.
func TestApplyBogonsFiltersToPublicOnly(t *testing.T) {
	in := parseAll(t, "8.8.8.8/32", "127.0.0.1/32", "169.254.1.1/32", "224.0.0.1/32", "0.0.0.0/0")

	out := Collect(Apply(FromSlice(in), FilterFlags{}.Bogons()))

	if len(out) != 1 || out[0].String() != "8.8.8.8/32" {
		t.Fatalf("expected [8.8.8.8/32], got %v", out)
	}
}

func TestApplyIPv4OnlyDropsIPv6(t *testing.T) {
	in := parseAll(t, "10.0.0.0/24", "2001:db8::/32")
	out := Collect(Apply(FromSlice(in), FilterFlags{IPv4Only: true}))

	if len(out) != 1 || out[0].Family() != FamilyV4 {
		t.Fatalf("expected only the IPv4 prefix, got %v", out)
	}
}

func TestApplyExcludePrivate(t *testing.T) {
	in := parseAll(t, "10.1.2.0/24", "172.16.5.0/24", "192.168.1.0/24", "8.8.8.0/24")
	out := Collect(Apply(FromSlice(in), FilterFlags{ExcludePrivate: true}))

	if len(out) != 1 || out[0].String() != "8.8.8.0/24" {
		t.Fatalf("expected only the public prefix to survive, got %v", out)
	}
}

func TestIsBogonSingleAddress(t *testing.T) {
	tests := []struct {
		addr string
		want bool
	}{
		{"8.8.8.8", false},
		{"127.0.0.1", true},
		{"169.254.1.1", true},
		{"224.0.0.1", true},
		{"192.168.1.1", true},
	}
	for _, tc := range tests {
		a := mustParse(t, tc.addr).Addr()
		if got := IsBogon(a); got != tc.want {
			t.Errorf("IsBogon(%s) = %v, want %v", tc.addr, got, tc.want)
		}
	}
}
