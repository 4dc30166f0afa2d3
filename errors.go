// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package appearance

import (
	"github.com/cockroachdb/appearance/internal/base"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// ErrInvalidRecord is a marker for errors caused by a malformed Record: a
// missing key, an odd-length interval list, a lesson that is not exactly one
// interval, a non-integer value or a pair with its start after its end.
//
// Test for it with errors.Is from github.com/cockroachdb/errors.
var ErrInvalidRecord = errors.New("appearance: invalid record")

// IsValidationError returns true if err was caused by a malformed record.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidRecord)
}

// ValidationError describes why a record was rejected. Retrieve it with
// errors.As.
type ValidationError struct {
	// Field is the offending key ("lesson", "pupil", "tutor" or "id"), or
	// empty if the problem concerns the record as a whole.
	Field string
	// Err is the underlying cause.
	Err error
}

var _ error = (*ValidationError)(nil)

// Error implements error.
func (e *ValidationError) Error() string {
	return redact.StringWithoutMarkers(e)
}

// SafeFormat implements redact.SafeFormatter.
func (e *ValidationError) SafeFormat(w redact.SafePrinter, _ rune) {
	if e.Field == "" {
		w.Printf("invalid record: %v", e.Err)
		return
	}
	w.Printf("invalid record: %s: %v", redact.SafeString(e.Field), e.Err)
}

// Unwrap returns the underlying cause.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// invalidf returns a ValidationError for field, marked with ErrInvalidRecord
// and base.ErrInvalidInput.
func invalidf(field string, format string, args ...interface{}) error {
	return validationError(field, base.InvalidInputf(format, args...))
}

func validationError(field string, cause error) error {
	return errors.Mark(&ValidationError{Field: field, Err: cause}, ErrInvalidRecord)
}
