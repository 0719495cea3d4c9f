// Copyright 2025 The go-gemm Authors. SPDX-License-Identifier: Apache-2.0

package gemm

// Naive computes C = A * B with the unblocked triple loop. It is the
// reference the optimized kernel is validated against and the baseline
// gemmbench times.
func Naive(a, b *Matrix) (*Matrix, error) {
	if a.cols != b.rows {
		return nil, &ShapeError{ARows: a.rows, ACols: a.cols, BRows: b.rows, BCols: b.cols}
	}
	c, err := New(a.rows, b.cols)
	if err != nil {
		return nil, err
	}
	naiveMatMul(a.data, b.data, c.data, a.rows, b.cols, a.cols)
	return c, nil
}

// naiveMatMul assumes c is zeroed. The i-p-j order keeps the inner loop
// streaming over rows of B and C.
func naiveMatMul(a, b, c []float32, m, n, k int) {
	for i := range m {
		for p := range k {
			aip := a[i*k+p]
			bRow := b[p*n : (p+1)*n]
			cRow := c[i*n : (i+1)*n]
			for j, bv := range bRow {
				cRow[j] += aip * bv
			}
		}
	}
}
