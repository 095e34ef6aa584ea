// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultFields are the nine country indicators clustered by default, in
// feature-vector order.
var DefaultFields = []string{
	"child_mort", "exports", "health", "imports", "income",
	"inflation", "life_expec", "total_fer", "gdpp",
}

// DefaultLabelField names the column used for item labels.
const DefaultLabelField = "country"

// Extract parses fields of rec, in order, into a feature vector.
//
// Errors: ErrMissingField, ErrNotNumeric (NaN and ±Inf included), both
// naming the field.
func Extract(rec Record, fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		raw, ok := rec[f]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingField, f)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %q = %q", ErrNotNumeric, f, raw)
		}
		out[i] = v
	}

	return out, nil
}

// Features extracts one vector per record. The first failing record aborts
// the whole extraction with its index in the error.
func Features(records []Record, fields []string) ([][]float64, error) {
	out := make([][]float64, len(records))
	for i, rec := range records {
		v, err := Extract(rec, fields)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out[i] = v
	}

	return out, nil
}

// Labels returns the value of field for every record. Records lacking the
// field (or an empty field name) are labelled by their row index.
func Labels(records []Record, field string) []string {
	out := make([]string, len(records))
	for i, rec := range records {
		if v, ok := rec[field]; ok && field != "" {
			out[i] = v
			continue
		}
		out[i] = strconv.Itoa(i)
	}

	return out
}
