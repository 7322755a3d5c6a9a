package cidrset

import "testing"

// S8 — Split round-trip.
func TestSplitRoundTrip(t *testing.T) {
	p := mustParse(t, "10.0.0.0/24")

	out, err := Split(p, 26, 0)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if len(out) != 4 {
		t.Fatalf("expected 4 subnets, got %d", len(out))
	}

	union := Canonicalize(out)
	if len(union) != 1 || !union[0].Equal(p) {
		t.Fatalf("split subnets don't reconstruct %s: got %v", p, union)
	}
}

func TestSplitEqualLengthIsIdentity(t *testing.T) {
	p := mustParse(t, "10.0.0.0/24")
	out, err := Split(p, 24, 0)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if len(out) != 1 || !out[0].Equal(p) {
		t.Fatalf("expected identity split, got %v", out)
	}
}

func TestSplitRejectsShorterTarget(t *testing.T) {
	p := mustParse(t, "10.0.0.0/24")
	if _, err := Split(p, 16, 0); err == nil {
		t.Fatal("expected error for target length shorter than source")
	}
}

func TestSplitRejectsExceedingMaxSubnets(t *testing.T) {
	p := mustParse(t, "10.0.0.0/8")
	if _, err := Split(p, 30, 100); err == nil {
		t.Fatal("expected LimitExceeded error for subnet count over cap")
	}
}

func TestCheckMembership(t *testing.T) {
	source := parseAll(t, "10.0.0.0/24", "192.168.1.0/24")

	ok, err := Check(FromSlice(source), "10.0.0.5")
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if !ok {
		t.Error("expected 10.0.0.5 to be covered")
	}

	ok, err = Check(FromSlice(source), "172.16.0.1")
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if ok {
		t.Error("expected 172.16.0.1 to not be covered")
	}
}

func TestCheckPrefixSubset(t *testing.T) {
	source := parseAll(t, "10.0.0.0/16")

	ok, err := Check(FromSlice(source), "10.0.1.0/24")
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if !ok {
		t.Error("expected 10.0.1.0/24 to be a subset of 10.0.0.0/16")
	}
}
