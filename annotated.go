package cidrset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Annotated pairs a Prefix with an optional trailing comment, for the
// comment-preserving path through add/merge (§4.5): aggregation would erase
// the binding between a comment and the specific subnet it was attached to,
// so this path only dedupes and sorts.
type Annotated struct {
	Prefix  Prefix
	Comment string
}

// ReadAnnotatedFile reads path line by line, splitting each line on the
// first '#' into a prefix candidate and a comment. Lines that
// don't yield a prefix are skipped.
func ReadAnnotatedFile(path string) ([]Annotated, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: file not found: %s", ErrIOFailure, path)
		}
		return nil, fmt.Errorf("%w: failed to open %s: %v", ErrIOFailure, path, err)
	}
	defer func() { _ = f.Close() }()
	return ReadAnnotated(f)
}

// ReadAnnotated is ReadAnnotatedFile's reader-based core.
func ReadAnnotated(reader io.Reader) ([]Annotated, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var out []Annotated
	lines := 0
	for scanner.Scan() {
		lines++
		if lines > MaxLineCount {
			return nil, fmt.Errorf("%w: input exceeds the %d line limit", ErrLimitExceeded, MaxLineCount)
		}

		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}

		body, comment := raw, ""
		if idx := strings.IndexByte(raw, '#'); idx >= 0 {
			body = strings.TrimSpace(raw[:idx])
			comment = strings.TrimSpace(raw[idx+1:])
		}
		if body == "" {
			continue
		}

		found := ExtractPrefixes(body)
		if len(found) == 0 {
			continue
		}
		for _, p := range found {
			out = append(out, Annotated{Prefix: p, Comment: comment})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	return out, nil
}

// MergeAnnotated deduplicates entries by prefix identity, keeping the first
// comment seen unless it's empty and a later duplicate has one, then
// returns the result sorted broadest-first. No nesting removal or
// aggregation is performed — doing so would discard the comment-to-subnet
// binding that's the whole point of this path.
func MergeAnnotated(entries []Annotated) []Annotated {
	type key struct {
		fam Family
		s   string
	}
	seen := make(map[key]int, len(entries))
	var out []Annotated

	for _, e := range entries {
		k := key{fam: e.Prefix.Family(), s: e.Prefix.String()}
		if idx, ok := seen[k]; ok {
			if out[idx].Comment == "" && e.Comment != "" {
				out[idx].Comment = e.Comment
			}
			continue
		}
		seen[k] = len(out)
		out = append(out, e)
	}

	SortAnnotated(out)
	return out
}

// SortAnnotated sorts entries broadest-first by their prefixes, in place.
func SortAnnotated(entries []Annotated) {
	sort.Slice(entries, func(i, j int) bool {
		return less(entries[i].Prefix, entries[j].Prefix)
	})
}
