package cidrset

import (
	"strings"
	"testing"
)

func TestReadAnnotatedSplitsTrailingComment(t *testing.T) {
	input := "10.0.0.0/24 # internal net\n192.168.1.0/24\n# full line comment\n"
	out, err := ReadAnnotated(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadAnnotated failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 entries, got %d: %v", len(out), out)
	}
	if out[0].Comment != "internal net" {
		t.Errorf("expected comment %q, got %q", "internal net", out[0].Comment)
	}
	if out[1].Comment != "" {
		t.Errorf("expected no comment, got %q", out[1].Comment)
	}
}

func TestMergeAnnotatedDedupesAndKeepsComment(t *testing.T) {
	entries := []Annotated{
		{Prefix: mustParse(t, "10.0.0.0/24"), Comment: ""},
		{Prefix: mustParse(t, "10.0.0.0/24"), Comment: "internal"},
		{Prefix: mustParse(t, "192.168.1.0/24"), Comment: "guest"},
	}

	merged := MergeAnnotated(entries)
	if len(merged) != 2 {
		t.Fatalf("expected 2 entries after dedup, got %d: %v", len(merged), merged)
	}

	for _, e := range merged {
		if e.Prefix.String() == "10.0.0.0/24" && e.Comment != "internal" {
			t.Errorf("expected the duplicate's comment to win, got %q", e.Comment)
		}
	}
}

func TestMergeAnnotatedDoesNotAggregate(t *testing.T) {
	entries := []Annotated{
		{Prefix: mustParse(t, "10.0.0.0/25"), Comment: "a"},
		{Prefix: mustParse(t, "10.0.0.128/25"), Comment: "b"},
	}
	merged := MergeAnnotated(entries)
	if len(merged) != 2 {
		t.Fatalf("expected comment-preserving merge to skip aggregation, got %v", merged)
	}
}
