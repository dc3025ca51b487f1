// Package tensor provides dense batched values for the Glia computation
// graph.
//
// # Overview
//
// A Dense value is an immutable N-dimensional array of floating-point
// numbers whose first dimension is the batch dimension. Precision is
// selected at construction time and propagates through every derived
// computation:
//   - Float16 (half), via IEEE 754 binary16
//   - Float32 (single)
//   - Float64 (double)
//
// # Basic Usage
//
//	import "github.com/glia-ml/glia/tensor"
//
//	// A batch of two samples, double precision.
//	x, err := tensor.FromRows(tensor.Float64, [][]float64{
//	    {0, -0.1},
//	    {0.1, 1},
//	})
//
//	// A single sample; the batch dimension of 1 is prepended.
//	v, err := tensor.FromVector(tensor.Float32, []float64{1, 2, 3})
//
// # Elementwise operations
//
// Unary application returns a new value of the same shape; binary
// combination (Add, Sub, Mul) requires identical shapes and precisions
// and fails with ErrShapeMismatch or ErrDTypeMismatch otherwise.
package tensor
