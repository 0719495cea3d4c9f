// Copyright 2025 The go-gemm Authors. SPDX-License-Identifier: Apache-2.0

package gemm

import "fmt"

// ShapeError reports operands whose dimensions cannot be multiplied, or a
// destination whose shape does not match the product. It is returned before
// any output memory is written.
type ShapeError struct {
	ARows, ACols int
	BRows, BCols int
	// CRows/CCols are set when a caller-supplied destination was rejected.
	CRows, CCols int
}

func (e *ShapeError) Error() string {
	if e.CRows != 0 || e.CCols != 0 {
		return fmt.Sprintf("gemm: shape mismatch: C is %dx%d, want %dx%d",
			e.CRows, e.CCols, e.ARows, e.BCols)
	}
	return fmt.Sprintf("gemm: shape mismatch: A is %dx%d, B is %dx%d",
		e.ARows, e.ACols, e.BRows, e.BCols)
}

// ConfigError reports a Config field that failed validation.
type ConfigError struct {
	Field string
	Value int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("gemm: invalid config: %s = %d", e.Field, e.Value)
}

// SizeError reports a matrix shape that cannot be represented or allocated:
// non-positive dimensions, an int-overflowing element count, or a backing
// slice of the wrong length.
type SizeError struct {
	Rows, Cols int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("gemm: invalid matrix size %dx%d", e.Rows, e.Cols)
}
