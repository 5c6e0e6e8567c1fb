// Copyright 2026 The mlio Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package data

import (
	"github.com/mlio-dev/mlio/format"
)

// report converts a pipeline outcome into the uniform boolean-or-panic
// contract. A nil err is success. Otherwise the diagnostic either panics
// (fatal) or goes to the warning sink with a false return; callers must
// treat false as "operation did not happen", never as partial success.
func report(op, filename string, c format.Category, f format.FileFormat, err error, o *DataOptions) bool {
	if err == nil {
		return true
	}
	derr := &Error{Op: op, Filename: filename, Category: c, Format: f, Err: err}
	if o.Fatal {
		panic(derr)
	}
	o.logger().Warn(op+" failed",
		"file", filename,
		"category", c.String(),
		"format", f.String(),
		"error", err)
	return false
}
