package cidrset

import "testing"

// S10 — Leading-zero defense.
func TestNormalizeStripsLeadingZeros(t *testing.T) {
	p, ok := Normalize("010.0.0.1")
	if !ok {
		t.Fatal("expected normalization to succeed")
	}
	if p.String() != "10.0.0.1/32" {
		t.Errorf("expected 10.0.0.1/32, got %s", p.String())
	}
}

func TestNormalizeStripsLeadingZerosWithMask(t *testing.T) {
	p, ok := Normalize("192.168.001.001/24")
	if !ok {
		t.Fatal("expected normalization to succeed")
	}
	if p.String() != "192.168.1.0/24" {
		t.Errorf("expected 192.168.1.0/24, got %s", p.String())
	}
}

func TestNormalizeRejectsGarbage(t *testing.T) {
	if _, ok := Normalize("Version 1.0"); ok {
		t.Error("expected garbage text not to normalize")
	}
}

func TestExtractPrefixesFromLogLine(t *testing.T) {
	line := "2026-07-30 connection from 192.168.1.5 to 10.0.0.0/24 refused"
	out := ExtractPrefixes(line)

	if len(out) != 2 {
		t.Fatalf("expected 2 prefixes, got %d: %v", len(out), out)
	}
}

func TestExtractPrefixesIPv6(t *testing.T) {
	line := "route added for 2001:db8::/32"
	out := ExtractPrefixes(line)

	if len(out) != 1 || out[0].String() != "2001:db8::/32" {
		t.Fatalf("expected [2001:db8::/32], got %v", out)
	}
}
