// SPDX-License-Identifier: MIT

package dataset

import "errors"

var (
	// ErrMissingField indicates a record without a requested feature field.
	ErrMissingField = errors.New("dataset: missing field")

	// ErrNotNumeric indicates a field value that does not parse as a finite float64.
	ErrNotNumeric = errors.New("dataset: field is not numeric")

	// ErrMalformedCSV indicates unparsable CSV, a row whose column count differs
	// from the header, or a duplicated header name.
	ErrMalformedCSV = errors.New("dataset: malformed CSV")

	// ErrNoRecords indicates an input without even a header row.
	ErrNoRecords = errors.New("dataset: no header row")
)
