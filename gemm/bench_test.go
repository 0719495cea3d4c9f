// Copyright 2025 The go-gemm Authors. SPDX-License-Identifier: Apache-2.0

package gemm

import (
	"fmt"
	"testing"

	"github.com/ajroetker/go-highway/hwy"
)

func benchMatrices(n int) (*Matrix, *Matrix) {
	a, _ := New(n, n)
	b, _ := New(n, n)
	for i := range a.data {
		a.data[i] = float32(i%7) + 0.5
		b.data[i] = float32(i%11) + 0.25
	}
	return a, b
}

func BenchmarkMultiply(b *testing.B) {
	b.Logf("Dispatch level: %s", hwy.CurrentName())
	for _, n := range []int{64, 128, 256, 512} {
		b.Run(fmt.Sprintf("%d", n), func(b *testing.B) {
			ma, mb := benchMatrices(n)
			c, _ := New(n, n)
			cfg := DefaultConfig()
			flops := float64(2 * n * n * n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := MultiplyInto(c, ma, mb, cfg); err != nil {
					b.Fatal(err)
				}
			}
			b.ReportMetric(flops*float64(b.N)/b.Elapsed().Seconds()/1e9, "GFLOPS")
		})
	}
}

func BenchmarkMultiplyStages(b *testing.B) {
	n := 256
	stages := []struct {
		name string
		cfg  Config
	}{
		{"blocked", Config{BlockM: 32, BlockN: 32, KFactor: 4}},
		{"vectorized", Config{BlockM: 32, BlockN: 32, KFactor: 4, Vectorize: true}},
		{"packed", Config{BlockM: 32, BlockN: 32, KFactor: 4, Vectorize: true, Packing: true}},
		{"parallel", DefaultConfig()},
	}
	for _, st := range stages {
		b.Run(st.name, func(b *testing.B) {
			ma, mb := benchMatrices(n)
			c, _ := New(n, n)
			flops := float64(2 * n * n * n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := MultiplyInto(c, ma, mb, st.cfg); err != nil {
					b.Fatal(err)
				}
			}
			b.ReportMetric(flops*float64(b.N)/b.Elapsed().Seconds()/1e9, "GFLOPS")
		})
	}
}

func BenchmarkNaive(b *testing.B) {
	for _, n := range []int{64, 128, 256} {
		b.Run(fmt.Sprintf("%d", n), func(b *testing.B) {
			ma, mb := benchMatrices(n)
			flops := float64(2 * n * n * n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := Naive(ma, mb); err != nil {
					b.Fatal(err)
				}
			}
			b.ReportMetric(flops*float64(b.N)/b.Elapsed().Seconds()/1e9, "GFLOPS")
		})
	}
}
