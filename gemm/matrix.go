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

// Matrix is a dense row-major float32 matrix. The shape is fixed at
// construction; element (i, j) lives at data[i*cols+j].
type Matrix struct {
	rows, cols int
	data       []float32
}

// New allocates a zeroed rows x cols matrix.
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, &SizeError{Rows: rows, Cols: cols}
	}
	total := rows * cols
	if total/cols != rows {
		// rows*cols overflowed int
		return nil, &SizeError{Rows: rows, Cols: cols}
	}
	return &Matrix{rows: rows, cols: cols, data: make([]float32, total)}, nil
}

// FromSlice wraps data as a rows x cols matrix without copying.
// len(data) must be exactly rows*cols.
func FromSlice(rows, cols int, data []float32) (*Matrix, error) {
	if rows <= 0 || cols <= 0 || rows*cols/cols != rows {
		return nil, &SizeError{Rows: rows, Cols: cols}
	}
	if len(data) != rows*cols {
		return nil, &SizeError{Rows: rows, Cols: cols}
	}
	return &Matrix{rows: rows, cols: cols, data: data}, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Data returns the backing slice in row-major order.
func (m *Matrix) Data() []float32 { return m.data }

// At returns element (i, j).
func (m *Matrix) At(i, j int) float32 { return m.data[i*m.cols+j] }

// Set stores v at element (i, j).
func (m *Matrix) Set(i, j int, v float32) { m.data[i*m.cols+j] = v }

// Row returns row i as a slice aliasing the matrix storage.
func (m *Matrix) Row(i int) []float32 { return m.data[i*m.cols : (i+1)*m.cols] }
