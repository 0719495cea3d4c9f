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

// Package gemm implements a cache- and vector-aware dense float32 matrix
// multiplication kernel for CPU execution.
//
// The kernel composes five optimizations over the naive triple loop:
//
//   - loop tiling of the output into BlockM x BlockN tiles
//   - repacking of the right-hand operand into a (N/BlockN, K, BlockN)
//     layout so the reduction streams over contiguous memory
//   - a SIMD micro-kernel (via go-highway) with the KFactor reduction
//     sub-block fully unrolled
//   - a per-tile accumulation buffer flushed to C in one contiguous pass
//   - row-block parallelism across a fixed worker pool
//
// Each optimization can be toggled independently through Config; toggles
// change performance, never the numeric result beyond floating-point
// summation-order effects.
//
// Basic usage:
//
//	c, err := gemm.Multiply(a, b, gemm.DefaultConfig())
package gemm
