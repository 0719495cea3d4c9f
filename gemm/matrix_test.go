// Copyright 2025 The go-gemm Authors. SPDX-License-Identifier: Apache-2.0

package gemm

import (
	"errors"
	"testing"
)

func TestNewRejectsBadShapes(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{0, 4},
		{4, 0},
		{-1, 4},
		{1 << 40, 1 << 40}, // element count overflows int
	} {
		_, err := New(tc.rows, tc.cols)
		var sizeErr *SizeError
		if !errors.As(err, &sizeErr) {
			t.Errorf("New(%d, %d): got %v, want *SizeError", tc.rows, tc.cols, err)
		}
	}
}

func TestFromSlice(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6}
	m, err := FromSlice(2, 3, data)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	if m.At(1, 2) != 6 {
		t.Errorf("At(1,2) = %v, want 6", m.At(1, 2))
	}

	m.Set(0, 1, 42)
	if data[1] != 42 {
		t.Error("FromSlice copied instead of aliasing")
	}

	if _, err := FromSlice(2, 3, data[:5]); err == nil {
		t.Error("FromSlice accepted a short backing slice")
	}
}

func TestRowAliasesStorage(t *testing.T) {
	m, err := New(3, 4)
	if err != nil {
		t.Fatal(err)
	}
	row := m.Row(1)
	if len(row) != 4 {
		t.Fatalf("Row(1) len = %d, want 4", len(row))
	}
	row[2] = 7
	if m.At(1, 2) != 7 {
		t.Error("Row does not alias matrix storage")
	}
}
