// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// utf8BOM is stripped from the first header cell.
const utf8BOM = "\uFEFF"

// Record is one CSV row keyed by header name.
type Record map[string]string

// Load reads header-keyed CSV from r. The first row is the header; each
// further row becomes a Record. Row order is preserved.
//
// A header-only input yields zero records and no error; an empty input
// returns ErrNoRecords.
func Load(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoRecords
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrMalformedCSV, err)
	}
	keys, err := headerKeys(header)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, 64)
	for row := 0; ; row++ {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrMalformedCSV, row, err)
		}
		rec := make(Record, len(keys))
		for i, k := range keys {
			rec[k] = fields[i]
		}
		records = append(records, rec)
	}

	return records, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	records, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return records, nil
}

// headerKeys copies the header (ReuseRecord recycles the slice) and rejects
// duplicate names.
func headerKeys(header []string) ([]string, error) {
	keys := make([]string, len(header))
	seen := make(map[string]struct{}, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		h = strings.TrimSpace(h)
		if _, dup := seen[h]; dup {
			return nil, fmt.Errorf("%w: duplicate header %q", ErrMalformedCSV, h)
		}
		seen[h] = struct{}{}
		keys[i] = h
	}

	return keys, nil
}
