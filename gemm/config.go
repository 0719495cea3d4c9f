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

// Default tile shape, tuned for a 32KB L1 data cache: a 32x32 float32 tile
// plus the packed B strip it reduces against stay resident while the full
// reduction runs. Both defaults are multiples of the widest vector width
// (16 float32 lanes on AVX-512).
const (
	DefaultBlockM = 32
	DefaultBlockN = 32

	// DefaultKFactor is the reduction sub-block width. The micro-kernel
	// fully unrolls this many multiply-accumulate steps per pass over an
	// accumulator row.
	DefaultKFactor = 4
)

// Config selects the tile shape and which optimizations are active.
//
// The toggles are independent so each optimization's effect can be measured
// in isolation; disabling one degrades performance, never correctness.
// Block widths need not divide the matrix dimensions: trailing partial
// blocks are computed at their true extent.
type Config struct {
	// BlockM, BlockN are the output tile dimensions.
	BlockM, BlockN int

	// KFactor is the reduction sub-block width (unroll factor). It should
	// divide K for the fast path; a trailing partial sub-block is handled
	// without unrolling.
	KFactor int

	// Workers is the number of parallel workers. Zero means one per
	// available CPU; negative values are rejected.
	Workers int

	// Packing repacks B into a (ceil(N/BlockN), K, BlockN) layout before
	// computing, so the reduction reads contiguous memory.
	Packing bool

	// Vectorize runs the inner loops through go-highway SIMD ops instead
	// of scalar code.
	Vectorize bool

	// Parallel fans independent row-blocks across a worker pool.
	Parallel bool
}

// DefaultConfig returns the fully optimized configuration.
func DefaultConfig() Config {
	return Config{
		BlockM:    DefaultBlockM,
		BlockN:    DefaultBlockN,
		KFactor:   DefaultKFactor,
		Packing:   true,
		Vectorize: true,
		Parallel:  true,
	}
}

func (c Config) validate() error {
	if c.BlockM <= 0 {
		return &ConfigError{Field: "BlockM", Value: c.BlockM}
	}
	if c.BlockN <= 0 {
		return &ConfigError{Field: "BlockN", Value: c.BlockN}
	}
	if c.KFactor <= 0 {
		return &ConfigError{Field: "KFactor", Value: c.KFactor}
	}
	if c.Workers < 0 {
		return &ConfigError{Field: "Workers", Value: c.Workers}
	}
	return nil
}
