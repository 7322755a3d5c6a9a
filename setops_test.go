package cidrset

import "testing"

func TestIntersectBasic(t *testing.T) {
	a := parseAll(t, "10.0.0.0/24")
	b := parseAll(t, "10.0.0.128/25")

	out := Intersect(a, b)
	if len(out) != 1 || out[0].String() != "10.0.0.128/25" {
		t.Fatalf("expected [10.0.0.128/25], got %v", out)
	}
}

func TestIntersectDisjoint(t *testing.T) {
	a := parseAll(t, "10.0.0.0/24")
	b := parseAll(t, "192.168.0.0/24")

	if out := Intersect(a, b); len(out) != 0 {
		t.Fatalf("expected empty intersection, got %v", out)
	}
}

func TestIntersectEmitsOverlapOnce(t *testing.T) {
	a := parseAll(t, "10.0.0.0/23", "10.0.2.0/24")
	b := parseAll(t, "10.0.0.0/24", "10.0.1.0/24", "10.0.2.0/24")

	out := Intersect(a, b)
	want := Canonicalize(parseAll(t, "10.0.0.0/23", "10.0.2.0/24"))

	if len(out) != len(want) {
		t.Fatalf("expected %v, got %v", want, out)
	}
	for i := range want {
		if !out[i].Equal(want[i]) {
			t.Errorf("at %d: expected %s got %s", i, want[i], out[i])
		}
	}
}

// S4 — Semantic diff.
func TestDiffUnchangedSupersetPrefix(t *testing.T) {
	next := parseAll(t, "192.168.0.0/24", "192.168.1.0/24")
	previous := parseAll(t, "192.168.0.0/23")

	result, err := Diff(previous, next)
	if err != nil {
		t.Fatalf("Diff failed: %v", err)
	}
	if len(result.Added) != 0 {
		t.Errorf("expected no added, got %v", result.Added)
	}
	if len(result.Removed) != 0 {
		t.Errorf("expected no removed, got %v", result.Removed)
	}
	if len(result.Unchanged) != 1 || result.Unchanged[0].String() != "192.168.0.0/23" {
		t.Errorf("expected unchanged=[192.168.0.0/23], got %v", result.Unchanged)
	}
}

func TestDiffAddedAndRemoved(t *testing.T) {
	previous := parseAll(t, "10.0.0.0/24")
	next := parseAll(t, "10.0.1.0/24")

	result, err := Diff(previous, next)
	if err != nil {
		t.Fatalf("Diff failed: %v", err)
	}
	if len(result.Added) != 1 || result.Added[0].String() != "10.0.1.0/24" {
		t.Errorf("expected added=[10.0.1.0/24], got %v", result.Added)
	}
	if len(result.Removed) != 1 || result.Removed[0].String() != "10.0.0.0/24" {
		t.Errorf("expected removed=[10.0.0.0/24], got %v", result.Removed)
	}
	if len(result.Unchanged) != 0 {
		t.Errorf("expected no unchanged, got %v", result.Unchanged)
	}
}

func TestDiffAddedRemovedDisjoint(t *testing.T) {
	previous := parseAll(t, "10.0.0.0/24", "10.0.1.0/24")
	next := parseAll(t, "10.0.1.0/24", "10.0.2.0/24")

	result, err := Diff(previous, next)
	if err != nil {
		t.Fatalf("Diff failed: %v", err)
	}

	addedAddrs := make(map[string]bool)
	for _, p := range result.Added {
		addedAddrs[p.String()] = true
	}
	for _, p := range result.Removed {
		if addedAddrs[p.String()] {
			t.Errorf("prefix %s present in both added and removed", p.String())
		}
	}
}
