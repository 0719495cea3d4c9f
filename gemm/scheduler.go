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

// kernel bundles the operands and derived dimensions for one multiply call.
// A, B and packed are read-only once constructed; C is partitioned by
// row-block so concurrent workers never write the same memory.
type kernel struct {
	a, b, c []float32
	packed  []float32 // blocked copy of b; nil when packing is off
	m, n, k int
	cfg     Config
}

// rowBlocks returns the number of BlockM-high row-blocks of C.
func (kr *kernel) rowBlocks() int {
	return (kr.m + kr.cfg.BlockM - 1) / kr.cfg.BlockM
}

// computeRowBlocks runs the full column/reduction nest for row-blocks
// [moStart, moEnd). acc is a BlockM*BlockN scratch tile owned by the caller
// and reused across tiles; it is the only mutable state besides this
// worker's slice of C.
func (kr *kernel) computeRowBlocks(moStart, moEnd int, acc []float32) {
	bm, bn := kr.cfg.BlockM, kr.cfg.BlockN
	nBlocks := (kr.n + bn - 1) / bn

	for mo := moStart; mo < moEnd; mo++ {
		i0 := mo * bm
		rows := min(bm, kr.m-i0)

		for no := 0; no < nBlocks; no++ {
			j0 := no * bn
			cols := min(bn, kr.n-j0)

			kr.computeTile(i0, j0, rows, cols, no, acc)
			kr.flushTile(i0, j0, rows, cols, acc)
		}
	}
}

// computeTile accumulates the complete reduction for one rows x cols tile
// of C into acc.
//
// Nest order is reduction block, tile row, unrolled reduction step, tile
// column. Hoisting the reduction blocks outside the tile rows keeps the
// accumulator hot across the whole reduction, and visiting a full reduction
// sub-block per row before advancing turns A's access pattern row-major.
func (kr *kernel) computeTile(i0, j0, rows, cols, no int, acc []float32) {
	bn, kf := kr.cfg.BlockN, kr.cfg.KFactor
	vec := kr.cfg.Vectorize

	for i := 0; i < rows; i++ {
		zeroRange(acc[i*bn:], cols, vec)
	}

	for p0 := 0; p0 < kr.k; p0 += kf {
		pEnd := min(p0+kf, kr.k)

		for i := 0; i < rows; i++ {
			aRow := kr.a[(i0+i)*kr.k : (i0+i+1)*kr.k]
			accRow := acc[i*bn : i*bn+cols]

			if pEnd-p0 == 4 {
				b0 := kr.bRow(p0, j0, no)
				b1 := kr.bRow(p0+1, j0, no)
				b2 := kr.bRow(p0+2, j0, no)
				b3 := kr.bRow(p0+3, j0, no)
				if vec {
					fmaRow4(accRow, aRow[p0], aRow[p0+1], aRow[p0+2], aRow[p0+3],
						b0, b1, b2, b3, cols)
				} else {
					fmaRow4Scalar(accRow, aRow[p0], aRow[p0+1], aRow[p0+2], aRow[p0+3],
						b0, b1, b2, b3, cols)
				}
				continue
			}

			// Trailing partial sub-block (K not divisible by KFactor) or a
			// non-default KFactor.
			for p := p0; p < pEnd; p++ {
				bRow := kr.bRow(p, j0, no)
				if vec {
					fmaRow(accRow, aRow[p], bRow, cols)
				} else {
					fmaRowScalar(accRow, aRow[p], bRow, cols)
				}
			}
		}
	}
}

// bRow returns the B row segment for reduction index p and the column block
// starting at j0: a bn-wide packed row, or the raw row-major segment when
// packing is off. The slice is at least cols elements long in either case.
func (kr *kernel) bRow(p, j0, no int) []float32 {
	if kr.packed != nil {
		base := (no*kr.k + p) * kr.cfg.BlockN
		return kr.packed[base:]
	}
	return kr.b[p*kr.n+j0:]
}

// flushTile commits the accumulated tile to C, one contiguous row write per
// tile row. Each element of C is written exactly once per multiply.
func (kr *kernel) flushTile(i0, j0, rows, cols int, acc []float32) {
	bn := kr.cfg.BlockN
	for i := 0; i < rows; i++ {
		copyRow(kr.c[(i0+i)*kr.n+j0:], acc[i*bn:], cols, kr.cfg.Vectorize)
	}
}
