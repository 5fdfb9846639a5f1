package feed

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

// headerReader wraps a csv.Reader and canonicalizes the header row once,
// before gocsv sees it. Canonicalization happens here at the boundary so no
// dual-name ambiguity survives past ingestion.
type headerReader struct {
	feed     string
	r        *csv.Reader
	canon    func(string) string
	required []string
	started  bool
}

func newHeaderReader(feed string, r *csv.Reader, canon func(string) string, required []string) *headerReader {
	r.TrimLeadingSpace = true
	return &headerReader{feed: feed, r: r, canon: canon, required: required}
}

func (h *headerReader) Read() ([]string, error) {
	row, err := h.r.Read()
	if err != nil {
		return nil, err
	}
	if h.started {
		return row, nil
	}
	h.started = true

	for i, cell := range row {
		row[i] = h.canon(strings.TrimSpace(cell))
	}

	var missing []string
	for _, want := range h.required {
		found := false
		for _, cell := range row {
			if cell == want {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, want)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Feed: h.feed, Missing: missing, Header: row}
	}
	return row, nil
}

func (h *headerReader) ReadAll() ([][]string, error) {
	var out [][]string
	for {
		row, err := h.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		out = append(out, row)
	}
	return out, nil
}
