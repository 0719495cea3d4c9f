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

import "github.com/ajroetker/go-highway/hwy"

// The micro-kernel operates on one accumulator row of a tile at a time:
// acc[0:w] += broadcast(A element) * (contiguous w-wide row of B). Vector
// strips are guarded by w so remainder tiles never read past an operand
// bound; the leftover lanes fall through to the scalar tail.

// fmaRow computes acc[0:w] += s * b[0:w].
func fmaRow(acc []float32, s float32, b []float32, w int) {
	vS := hwy.Set(s)
	lanes := vS.NumLanes()

	var c int
	for ; c+lanes <= w; c += lanes {
		vAcc := hwy.MulAdd(vS, hwy.Load(b[c:]), hwy.Load(acc[c:]))
		hwy.Store(vAcc, acc[c:])
	}
	for ; c < w; c++ {
		acc[c] += s * b[c]
	}
}

// fmaRow4 is the fully unrolled KFactor=4 reduction step: four broadcast
// elements of A against four consecutive B rows in one pass over the
// accumulator row. The four chained MulAdds per strip keep the FMA pipeline
// busy without a branch per reduction step, and load/store each accumulator
// strip once instead of four times.
func fmaRow4(acc []float32, s0, s1, s2, s3 float32, b0, b1, b2, b3 []float32, w int) {
	vS0 := hwy.Set(s0)
	vS1 := hwy.Set(s1)
	vS2 := hwy.Set(s2)
	vS3 := hwy.Set(s3)
	lanes := vS0.NumLanes()

	var c int
	for ; c+lanes <= w; c += lanes {
		vAcc := hwy.Load(acc[c:])
		vAcc = hwy.MulAdd(vS0, hwy.Load(b0[c:]), vAcc)
		vAcc = hwy.MulAdd(vS1, hwy.Load(b1[c:]), vAcc)
		vAcc = hwy.MulAdd(vS2, hwy.Load(b2[c:]), vAcc)
		vAcc = hwy.MulAdd(vS3, hwy.Load(b3[c:]), vAcc)
		hwy.Store(vAcc, acc[c:])
	}
	for ; c < w; c++ {
		acc[c] += s0*b0[c] + s1*b1[c] + s2*b2[c] + s3*b3[c]
	}
}

// fmaRowScalar is the plain-Go body used when vectorization is toggled off.
func fmaRowScalar(acc []float32, s float32, b []float32, w int) {
	for c := 0; c < w; c++ {
		acc[c] += s * b[c]
	}
}

// fmaRow4Scalar matches fmaRow4's summation order without SIMD.
func fmaRow4Scalar(acc []float32, s0, s1, s2, s3 float32, b0, b1, b2, b3 []float32, w int) {
	for c := 0; c < w; c++ {
		acc[c] += s0*b0[c] + s1*b1[c] + s2*b2[c] + s3*b3[c]
	}
}

// copyRow writes src[0:w] to dst[0:w], vectorized when vec is set.
func copyRow(dst, src []float32, w int, vec bool) {
	var c int
	if vec {
		lanes := hwy.MaxLanes[float32]()
		for ; c+lanes <= w; c += lanes {
			hwy.Store(hwy.Load(src[c:]), dst[c:])
		}
	}
	for ; c < w; c++ {
		dst[c] = src[c]
	}
}

// zeroRange clears buf[0:w], vectorized when vec is set.
func zeroRange(buf []float32, w int, vec bool) {
	var c int
	if vec {
		vZero := hwy.Zero[float32]()
		lanes := vZero.NumLanes()
		for ; c+lanes <= w; c += lanes {
			hwy.Store(vZero, buf[c:])
		}
	}
	for ; c < w; c++ {
		buf[c] = 0
	}
}
