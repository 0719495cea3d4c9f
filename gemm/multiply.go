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

import "github.com/ajroetker/go-highway/hwy/contrib/workerpool"

// Multiply computes C = A * B under cfg and returns a freshly allocated C.
//
// A is M x K and B is K x N; a *ShapeError is returned when A's column
// count does not equal B's row count, and a *ConfigError when cfg fails
// validation. Both checks run before any work begins.
func Multiply(a, b *Matrix, cfg Config) (*Matrix, error) {
	if a.cols != b.rows {
		return nil, &ShapeError{ARows: a.rows, ACols: a.cols, BRows: b.rows, BCols: b.cols}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	c, err := New(a.rows, b.cols)
	if err != nil {
		return nil, err
	}
	run(c, a, b, cfg)
	return c, nil
}

// MultiplyInto computes C = A * B into dst, overwriting every element of
// dst exactly once. dst must be M x N.
func MultiplyInto(dst, a, b *Matrix, cfg Config) error {
	if a.cols != b.rows {
		return &ShapeError{ARows: a.rows, ACols: a.cols, BRows: b.rows, BCols: b.cols}
	}
	if dst.rows != a.rows || dst.cols != b.cols {
		return &ShapeError{
			ARows: a.rows, ACols: a.cols, BRows: b.rows, BCols: b.cols,
			CRows: dst.rows, CCols: dst.cols,
		}
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	run(dst, a, b, cfg)
	return nil
}

// run drives one validated multiply: pack B, then fan the tile scheduler's
// outer row-block loop across workers.
//
// Row-blocks write disjoint row ranges of C and read only shared immutable
// state (A, B, packed B), so the workers need no synchronization beyond the
// final join inside ParallelFor. Each worker owns one accumulation tile for
// its whole chunk, and every tile's summation order is fixed, so the result
// is independent of the worker count.
func run(c, a, b *Matrix, cfg Config) {
	kr := &kernel{
		a:   a.data,
		b:   b.data,
		c:   c.data,
		m:   a.rows,
		n:   b.cols,
		k:   a.cols,
		cfg: cfg,
	}

	var pool *workerpool.Pool
	if cfg.Parallel {
		pool = workerpool.New(cfg.Workers)
		defer pool.Close()
	}

	if cfg.Packing {
		kr.packed = packRHS(b.data, kr.k, kr.n, cfg.BlockN, cfg.Vectorize, pool)
	}

	if pool != nil {
		pool.ParallelFor(kr.rowBlocks(), func(start, end int) {
			acc := make([]float32, cfg.BlockM*cfg.BlockN)
			kr.computeRowBlocks(start, end, acc)
		})
		return
	}

	acc := make([]float32, cfg.BlockM*cfg.BlockN)
	kr.computeRowBlocks(0, kr.rowBlocks(), acc)
}
