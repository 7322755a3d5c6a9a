package cidrset

import "testing"

// S3 — Hole-punch.
func TestSubtractHolePunch(t *testing.T) {
	base := parseAll(t, "10.0.0.0/30")
	exclude := parseAll(t, "10.0.0.1/32")

	out, err := Subtract(base, exclude)
	if err != nil {
		t.Fatalf("Subtract failed: %v", err)
	}

	want := parseAll(t, "10.0.0.0/32", "10.0.0.2/31")
	if len(out) != len(want) {
		t.Fatalf("expected %v, got %v", want, out)
	}
	for i := range want {
		if !out[i].Equal(want[i]) {
			t.Errorf("at %d: expected %s, got %s", i, want[i].String(), out[i].String())
		}
	}
}

// S6 — Mixed-family subtract is inert.
func TestSubtractCrossFamilyIsInert(t *testing.T) {
	base := parseAll(t, "10.0.0.0/24")
	exclude := parseAll(t, "2001:db8::/32")

	out, err := Subtract(base, exclude)
	if err != nil {
		t.Fatalf("Subtract failed: %v", err)
	}
	if len(out) != 1 || !out[0].Equal(base[0]) {
		t.Fatalf("expected base unchanged, got %v", out)
	}
}

func TestSubtractRoundTrip(t *testing.T) {
	base := parseAll(t, "10.0.0.0/24")
	exclude := parseAll(t, "10.0.0.64/26")

	diff, err := Subtract(base, exclude)
	if err != nil {
		t.Fatalf("Subtract failed: %v", err)
	}
	overlap := Intersect(base, exclude)

	union := Canonicalize(append(append([]Prefix{}, diff...), overlap...))
	baseCanon := Canonicalize(base)

	if len(union) != len(baseCanon) {
		t.Fatalf("round trip mismatch: union=%v base=%v", union, baseCanon)
	}
	for i := range baseCanon {
		if !union[i].Equal(baseCanon[i]) {
			t.Errorf("round trip mismatch at %d: %s vs %s", i, union[i], baseCanon[i])
		}
	}
}

func TestSubtractFullyConsumed(t *testing.T) {
	base := parseAll(t, "192.168.1.0/24")
	exclude := parseAll(t, "192.168.0.0/16")

	out, err := Subtract(base, exclude)
	if err != nil {
		t.Fatalf("Subtract failed: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty result, got %v", out)
	}
}

func TestSubtractNoOverlap(t *testing.T) {
	base := parseAll(t, "10.0.0.0/24")
	exclude := parseAll(t, "192.168.0.0/24")

	out, err := Subtract(base, exclude)
	if err != nil {
		t.Fatalf("Subtract failed: %v", err)
	}
	if len(out) != 1 || !out[0].Equal(base[0]) {
		t.Fatalf("expected base unchanged, got %v", out)
	}
}
