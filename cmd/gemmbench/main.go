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

// gemmbench times the gemm kernel against the naive reference over a chosen
// problem size, optionally verifying the numeric output.
//
// The --stage flag replays the kernel's optimizations one at a time:
// blocked, vectorized, packed, parallel are successive configurations of
// the same kernel, and naive bypasses it entirely.
package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/ajroetker/go-highway/hwy"
	"github.com/spf13/cobra"

	"github.com/irenemizus/go-gemm/gemm"
)

type options struct {
	m, k, n  int
	blockM   int
	blockN   int
	kfactor  int
	workers  int
	repeat   int
	stage    string
	noVerify bool
	seed     int64
}

func main() {
	var opts options

	root := &cobra.Command{
		Use:   "gemmbench",
		Short: "Benchmark the dense float32 matrix multiplication kernel",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd, opts)
		},
	}

	flags := root.Flags()
	flags.IntVar(&opts.m, "m", 4096, "rows of A")
	flags.IntVar(&opts.k, "k", 1024, "columns of A / rows of B")
	flags.IntVar(&opts.n, "n", 128, "columns of B")
	flags.IntVar(&opts.blockM, "block-m", gemm.DefaultBlockM, "output tile height")
	flags.IntVar(&opts.blockN, "block-n", gemm.DefaultBlockN, "output tile width")
	flags.IntVar(&opts.kfactor, "kfactor", gemm.DefaultKFactor, "reduction unroll factor")
	flags.IntVar(&opts.workers, "workers", 0, "parallel workers (0 = all CPUs)")
	flags.IntVar(&opts.repeat, "repeat", 10, "timed iterations")
	flags.StringVar(&opts.stage, "stage", "full",
		"optimization stage: naive, blocked, vectorized, packed, parallel, full")
	flags.BoolVar(&opts.noVerify, "no-verify", false, "skip verification against the naive reference")
	flags.Int64Var(&opts.seed, "seed", 1, "random seed for operand values")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// stageConfig maps a stage name to the kernel configuration that enables the
// optimizations up to and including it.
func stageConfig(opts options) (gemm.Config, error) {
	cfg := gemm.Config{
		BlockM:  opts.blockM,
		BlockN:  opts.blockN,
		KFactor: opts.kfactor,
		Workers: opts.workers,
	}
	switch opts.stage {
	case "blocked":
	case "vectorized":
		cfg.Vectorize = true
	case "packed":
		cfg.Vectorize = true
		cfg.Packing = true
	case "parallel", "full":
		cfg.Vectorize = true
		cfg.Packing = true
		cfg.Parallel = true
	default:
		return cfg, fmt.Errorf("unknown stage %q", opts.stage)
	}
	return cfg, nil
}

func run(cmd *cobra.Command, opts options) error {
	if opts.repeat < 1 {
		return fmt.Errorf("--repeat must be at least 1")
	}

	rng := rand.New(rand.NewSource(opts.seed))
	a, err := gemm.New(opts.m, opts.k)
	if err != nil {
		return err
	}
	b, err := gemm.New(opts.k, opts.n)
	if err != nil {
		return err
	}
	for _, d := range [][]float32{a.Data(), b.Data()} {
		for j := range d {
			d[j] = rng.Float32()
		}
	}

	cmd.Printf("gemmbench: %dx%d * %dx%d, stage=%s, dispatch=%s\n",
		opts.m, opts.k, opts.k, opts.n, opts.stage, hwy.CurrentName())

	step, err := makeStep(opts, a, b)
	if err != nil {
		return err
	}

	// Warm-up run; also the output used for verification.
	c, err := step()
	if err != nil {
		return err
	}

	start := time.Now()
	for i := 0; i < opts.repeat; i++ {
		if _, err := step(); err != nil {
			return err
		}
	}
	mean := time.Since(start) / time.Duration(opts.repeat)

	flops := 2 * float64(opts.m) * float64(opts.n) * float64(opts.k)
	cmd.Printf("mean %v (%.2f GFLOPS over %d runs)\n",
		mean, flops/mean.Seconds()/1e9, opts.repeat)

	if opts.noVerify || opts.stage == "naive" {
		return nil
	}
	want, err := gemm.Naive(a, b)
	if err != nil {
		return err
	}
	if err := verify(c, want, 1e-5); err != nil {
		return err
	}
	cmd.Println("verified against naive reference (rtol 1e-5)")
	return nil
}

// makeStep returns the timed operation for the selected stage.
func makeStep(opts options, a, b *gemm.Matrix) (func() (*gemm.Matrix, error), error) {
	if opts.stage == "naive" {
		return func() (*gemm.Matrix, error) { return gemm.Naive(a, b) }, nil
	}
	cfg, err := stageConfig(opts)
	if err != nil {
		return nil, err
	}
	c, err := gemm.New(opts.m, opts.n)
	if err != nil {
		return nil, err
	}
	return func() (*gemm.Matrix, error) {
		if err := gemm.MultiplyInto(c, a, b, cfg); err != nil {
			return nil, err
		}
		return c, nil
	}, nil
}

func verify(got, want *gemm.Matrix, rtol float64) error {
	g, w := got.Data(), want.Data()
	for i := range w {
		diff := math.Abs(float64(g[i]) - float64(w[i]))
		tol := rtol * math.Max(math.Abs(float64(w[i])), 1)
		if diff > tol {
			return fmt.Errorf("verification failed at element %d: got %v, want %v", i, g[i], w[i])
		}
	}
	return nil
}
