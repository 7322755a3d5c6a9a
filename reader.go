package cidrset

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ReadNetworks opens path and dispatches on its extension: .csv and .json
// get their own readers, everything else is read as free text line by line
// through the tolerant extractor. This mirrors read_networks' per-extension
// dispatch, generalizing the teacher's AddFromFile/AddFromReader (which only
// ever did line-oriented reads) to the fuller set of source formats the
// original tool supports.
func ReadNetworks(path string) ([]Prefix, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: file not found: %s", ErrIOFailure, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrIOFailure, path, err)
	}
	if info.Size() > MaxFileSizeBytes {
		return nil, fmt.Errorf("%w: %s exceeds the %d byte file size limit", ErrLimitExceeded, path, MaxFileSizeBytes)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s: %v", ErrIOFailure, path, err)
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(f, "prefix")
	case ".json":
		out, err := ReadJSON(f, "prefixes")
		if errors.Is(err, ErrParseTail) {
			// Non-fatal per the error-kind contract: deliver what parsed
			// before the tail broke instead of failing the whole read.
			return out, nil
		}
		return out, err
	default:
		return ReadText(f)
	}
}

// ReadText reads reader line by line, running each non-empty, non-comment
// line through the tolerant extractor. A line the extractor finds nothing
// in is tried once more as a whole-line strict parse before being dropped,
// matching the teacher's AddFromReader fallback behavior.
func ReadText(reader io.Reader) ([]Prefix, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var out []Prefix
	lines := 0
	for scanner.Scan() {
		lines++
		if lines > MaxLineCount {
			return nil, fmt.Errorf("%w: input exceeds the %d line limit", ErrLimitExceeded, MaxLineCount)
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		out = append(out, extractOrWholeLine(line)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	return out, nil
}

// ReadCSV reads reader as a header-tagged CSV and extracts prefixes from the
// named column of each row.
func ReadCSV(reader io.Reader, column string) ([]Prefix, error) {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV header: %v", ErrIOFailure, err)
	}

	colIdx := -1
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), column) {
			colIdx = i
			break
		}
	}
	if colIdx == -1 {
		return nil, fmt.Errorf("%w: CSV has no %q column", ErrInvalidInput, column)
	}

	var out []Prefix
	rows := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading CSV row %d: %v", ErrIOFailure, rows+1, err)
		}

		rows++
		if rows > MaxLineCount {
			return nil, fmt.Errorf("%w: CSV exceeds the %d row limit", ErrLimitExceeded, MaxLineCount)
		}

		if colIdx >= len(record) {
			continue
		}
		cell := strings.TrimSpace(record[colIdx])
		if cell == "" {
			continue
		}
		out = append(out, extractOrWholeLine(cell)...)
	}
	return out, nil
}

// ReadJSON reads reader as a JSON document and extracts prefixes from the
// string values of the named top-level array key. Tokens are consumed one
// at a time via json.Decoder so the whole document is never buffered. If an
// array item fails to decode (for example a truncated or malformed tail), the
// items parsed before it are returned along with ErrParseTail rather than
// failing the whole read. Bytes after the array's last item are not read.
func ReadJSON(reader io.Reader, key string) ([]Prefix, error) {
	dec := json.NewDecoder(reader)

	if err := seekJSONArrayKey(dec, key); err != nil {
		return nil, err
	}

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: expected %q to be an array: %v", ErrInvalidInput, key, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, fmt.Errorf("%w: %q is not a JSON array", ErrInvalidInput, key)
	}

	var out []Prefix
	items := 0
	var tailErr error
	for dec.More() {
		var item any
		if err := dec.Decode(&item); err != nil {
			tailErr = fmt.Errorf("%w: %v", ErrParseTail, err)
			break
		}
		items++
		if items > MaxJSONItems {
			return nil, fmt.Errorf("%w: JSON array exceeds the %d item limit", ErrLimitExceeded, MaxJSONItems)
		}

		s := fmt.Sprint(item)
		out = append(out, extractOrWholeLine(s)...)
	}

	return out, tailErr
}

// seekJSONArrayKey scans top-level object keys until it finds key, leaving
// dec positioned right before that key's value.
func seekJSONArrayKey(dec *json.Decoder, key string) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("%w: expected a JSON object at the top level", ErrInvalidInput)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		name, _ := keyTok.(string)
		if name == key {
			return nil
		}
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	return fmt.Errorf("%w: no %q key found", ErrInvalidInput, key)
}

// extractOrWholeLine runs the tolerant extractor over s and falls back to a
// single strict whole-string parse if the extractor found nothing.
func extractOrWholeLine(s string) []Prefix {
	if found := ExtractPrefixes(s); len(found) > 0 {
		return found
	}
	if p, err := ParsePrefix(s); err == nil {
		return []Prefix{p}
	}
	return nil
}
