// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package base

import "github.com/cockroachdb/errors"

// ErrInvalidInput marks errors caused by malformed caller input, as opposed
// to internal assertion failures. Use errors.Is to test for it.
var ErrInvalidInput = errors.New("appearance: invalid input")

// InvalidInputf formats an error and marks it with ErrInvalidInput.
func InvalidInputf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrInvalidInput)
}
