package tensor

import (
	"github.com/glia-ml/glia/internal/tensor"
)

// Dense is a dense N-dimensional value with a declared batch dimension.
type Dense = tensor.Dense

// Shape represents the dimensions of a value.
type Shape = tensor.Shape

// DataType is runtime precision information for a Dense value.
type DataType = tensor.DataType

// Supported element types.
const (
	Float16 = tensor.Float16
	Float32 = tensor.Float32
	Float64 = tensor.Float64
)

// Typed failures reported by construction and elementwise kernels.
var (
	ErrShapeMismatch = tensor.ErrShapeMismatch
	ErrDTypeMismatch = tensor.ErrDTypeMismatch
)

// NewDense allocates a zero-filled value with the given shape and type.
func NewDense(shape Shape, dtype DataType) (*Dense, error) {
	return tensor.NewDense(shape, dtype)
}

// FromSlice builds a Dense from a flat slice; the element type selects
// the precision.
func FromSlice[T tensor.Float](vals []T, shape Shape) (*Dense, error) {
	return tensor.FromSlice(vals, shape)
}

// FromFloat64s builds a Dense of the given shape and precision from
// float64 values.
func FromFloat64s(dtype DataType, shape Shape, vals []float64) (*Dense, error) {
	return tensor.FromFloat64s(dtype, shape, vals)
}

// FromRows builds a batched value from one sample row per batch entry.
func FromRows(dtype DataType, rows [][]float64) (*Dense, error) {
	return tensor.FromRows(dtype, rows)
}

// FromVector builds a single-sample value of shape [1, len(vals)].
func FromVector(dtype DataType, vals []float64) (*Dense, error) {
	return tensor.FromVector(dtype, vals)
}

// ParseDataType maps a precision spelling from configuration to a
// DataType ("half", "single" or "double").
func ParseDataType(s string) (DataType, error) {
	return tensor.ParseDataType(s)
}
