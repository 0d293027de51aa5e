// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package horae

import "fmt"

// RangeError is returned when constructing a DateTime from a calendar field
// outside of its valid range.
type RangeError struct {
	Field string
	Value int
	Min   int
	Max   int
}

// Error returns the string representation of a RangeError.
func (e *RangeError) Error() string {
	return fmt.Sprintf("horae: %s %d out of range [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

// ParseError describes a problem parsing a DateTime.
type ParseError struct {
	Value   string
	Elem    string
	Message string
}

// Error returns the string representation of a ParseError.
func (e *ParseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("parsing datetime %q: cannot parse %q", e.Value, e.Elem)
	}
	return fmt.Sprintf("parsing datetime %q: %s", e.Value, e.Message)
}
