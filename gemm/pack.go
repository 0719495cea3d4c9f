// Copyright 2025 go-gemm Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gemm

import (
	"github.com/ajroetker/go-highway/hwy"
	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"
)

// packRHS copies B (k x n, row-major) into the blocked layout
// (ceil(n/bn), k, bn) with
//
//	packed[j*k*bn + p*bn + l] = B[p, j*bn+l]
//
// so the micro-kernel's reduction reads each column block as consecutive
// bn-wide rows. When bn does not divide n the trailing block is zero-padded
// to bn; the padded columns never reach C.
//
// Column blocks are independent, so the fill fans out across the pool when
// one is supplied, with a vectorized inner copy per row.
func packRHS(b []float32, k, n, bn int, vec bool, pool *workerpool.Pool) []float32 {
	nBlocks := (n + bn - 1) / bn
	packed := make([]float32, nBlocks*k*bn)

	fill := func(start, end int) {
		for j := start; j < end; j++ {
			packColumnBlock(packed[j*k*bn:(j+1)*k*bn], b, k, n, j*bn, bn, vec)
		}
	}
	if pool != nil {
		pool.ParallelFor(nBlocks, fill)
	} else {
		fill(0, nBlocks)
	}
	return packed
}

// packColumnBlock fills one (k, bn) slab from the columns [col, col+bn) of
// B, zero-padding rows when fewer than bn columns remain.
func packColumnBlock(dst, b []float32, k, n, col, bn int, vec bool) {
	w := min(bn, n-col)
	lanes := hwy.MaxLanes[float32]()

	for p := range k {
		src := b[p*n+col : p*n+col+w]
		row := dst[p*bn : (p+1)*bn]

		var l int
		if vec {
			for ; l+lanes <= w; l += lanes {
				hwy.Store(hwy.Load(src[l:]), row[l:])
			}
		}
		for ; l < w; l++ {
			row[l] = src[l]
		}
		for ; l < bn; l++ {
			row[l] = 0
		}
	}
}
