package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/prefixopt/cidrset"
)

// readSource loads prefixes from path, or from stdin if path is empty.
func readSource(path string) ([]cidrset.Prefix, error) {
	if path == "" {
		return cidrset.ReadText(os.Stdin)
	}
	return cidrset.ReadNetworks(path)
}

// readAnnotatedSource loads comment-annotated prefixes from path, or stdin
// if path is empty.
func readAnnotatedSource(path string) ([]cidrset.Annotated, error) {
	if path == "" {
		return cidrset.ReadAnnotated(os.Stdin)
	}
	return cidrset.ReadAnnotatedFile(path)
}

// openOutput returns a writer for outputPath, or stdout if outputPath is
// empty, plus a close func the caller should always invoke.
func openOutput(outputPath string) (io.Writer, func() error, error) {
	if outputPath == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: creating %s: %v", cidrset.ErrIOFailure, outputPath, err)
	}
	return f, f.Close, nil
}

// writeList renders prefixes according to format ("list" or "csv").
func writeList(w io.Writer, prefixes []cidrset.Prefix, format string) error {
	bw := bufio.NewWriter(w)
	defer func() { _ = bw.Flush() }()

	switch format {
	case "", "list":
		for _, p := range prefixes {
			if _, err := fmt.Fprintln(bw, p.String()); err != nil {
				return fmt.Errorf("%w: %v", cidrset.ErrIOFailure, err)
			}
		}
	case "csv":
		parts := make([]string, len(prefixes))
		for i, p := range prefixes {
			parts[i] = p.String()
		}
		if _, err := fmt.Fprint(bw, strings.Join(parts, ",")); err != nil {
			return fmt.Errorf("%w: %v", cidrset.ErrIOFailure, err)
		}
	default:
		return fmt.Errorf("%w: unknown format %q", cidrset.ErrInvalidInput, format)
	}
	return bw.Flush()
}

// writeAnnotated renders comment-preserving output: one "prefix # comment"
// line per entry, in list format; CSV is rejected by the caller's own flag
// validation since --keep-comments and --format csv are mutually exclusive.
func writeAnnotated(w io.Writer, entries []cidrset.Annotated) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		line := e.Prefix.String()
		if e.Comment != "" {
			line += " # " + e.Comment
		}
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return fmt.Errorf("%w: %v", cidrset.ErrIOFailure, err)
		}
	}
	return bw.Flush()
}
