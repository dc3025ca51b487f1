package tensor

import (
	"bytes"
	"fmt"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// Dense is a dense N-dimensional value with a declared batch dimension
// (the first one). A Dense is treated as immutable once filled: operators
// always allocate a fresh result instead of writing in place, so a value
// can safely be shared by several graph nodes.
type Dense struct {
	shape Shape
	dtype DataType
	data  []byte
}

// NewDense allocates a zero-filled value with the given shape and type.
func NewDense(shape Shape, dtype DataType) (*Dense, error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.Wrap(err, "NewDense")
	}
	return &Dense{
		shape: shape.Clone(),
		dtype: dtype,
		data:  make([]byte, shape.NumElements()*dtype.Size()),
	}, nil
}

// FromSlice builds a Dense from a flat slice. The element type selects the
// precision: float32 slices produce Float32 values, float64 slices Float64.
func FromSlice[T Float](vals []T, shape Shape) (*Dense, error) {
	var zero T
	d, err := NewDense(shape, inferDataType(zero))
	if err != nil {
		return nil, err
	}
	if len(vals) != d.NumElements() {
		return nil, errors.Wrapf(ErrShapeMismatch,
			"FromSlice: %d values for shape %v (%d elements)", len(vals), shape, d.NumElements())
	}
	for i, v := range vals {
		d.setAt(i, float64(v))
	}
	return d, nil
}

// FromFloat64s builds a Dense of the given shape and precision from
// float64 values, rounding to the target precision on store.
func FromFloat64s(dtype DataType, shape Shape, vals []float64) (*Dense, error) {
	d, err := NewDense(shape, dtype)
	if err != nil {
		return nil, err
	}
	if len(vals) != d.NumElements() {
		return nil, errors.Wrapf(ErrShapeMismatch,
			"FromFloat64s: %d values for shape %v (%d elements)", len(vals), shape, d.NumElements())
	}
	for i, v := range vals {
		d.setAt(i, v)
	}
	return d, nil
}

// FromRows builds a batched value of shape [len(rows), width] from one
// sample row per batch entry. All rows must have the same width.
func FromRows(dtype DataType, rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return nil, errors.Wrap(ErrShapeMismatch, "FromRows: no rows")
	}
	width := len(rows[0])
	flat := make([]float64, 0, len(rows)*width)
	for i, row := range rows {
		if len(row) != width {
			return nil, errors.Wrapf(ErrShapeMismatch,
				"FromRows: row %d has %d elements, want %d", i, len(row), width)
		}
		flat = append(flat, row...)
	}
	return FromFloat64s(dtype, Shape{len(rows), width}, flat)
}

// FromVector builds a single-sample value of shape [1, len(vals)]. Use it
// for inputs given without a batch dimension.
func FromVector(dtype DataType, vals []float64) (*Dense, error) {
	return FromRows(dtype, [][]float64{vals})
}

// Shape returns the value's shape.
func (d *Dense) Shape() Shape {
	return d.shape
}

// DType returns the value's data type.
func (d *Dense) DType() DataType {
	return d.dtype
}

// NumElements returns the total number of elements.
func (d *Dense) NumElements() int {
	return d.shape.NumElements()
}

// AsFloat32 interprets the data as []float32.
// Panics if the value's dtype is not Float32.
func (d *Dense) AsFloat32() []float32 {
	if d.dtype != Float32 {
		panic(fmt.Sprintf("value dtype is %s, not float32", d.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*float32)(unsafe.Pointer(&d.data[0])), d.NumElements())
}

// AsFloat64 interprets the data as []float64.
// Panics if the value's dtype is not Float64.
func (d *Dense) AsFloat64() []float64 {
	if d.dtype != Float64 {
		panic(fmt.Sprintf("value dtype is %s, not float64", d.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*float64)(unsafe.Pointer(&d.data[0])), d.NumElements())
}

// AsFloat16Bits interprets the data as raw IEEE 754 binary16 bits.
// Panics if the value's dtype is not Float16.
func (d *Dense) AsFloat16Bits() []uint16 {
	if d.dtype != Float16 {
		panic(fmt.Sprintf("value dtype is %s, not float16", d.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*uint16)(unsafe.Pointer(&d.data[0])), d.NumElements())
}

// Float64s returns all elements widened to float64, in row-major order.
// The returned slice is a copy.
func (d *Dense) Float64s() []float64 {
	out := make([]float64, d.NumElements())
	for i := range out {
		out[i] = d.at(i)
	}
	return out
}

// Equal reports bitwise equality: same shape, same dtype, same element bits.
func (d *Dense) Equal(other *Dense) bool {
	return d.dtype == other.dtype &&
		d.shape.Equal(other.shape) &&
		bytes.Equal(d.data, other.data)
}

// at reads element i widened to float64.
func (d *Dense) at(i int) float64 {
	switch d.dtype {
	case Float16:
		return float64(float16.Frombits(d.AsFloat16Bits()[i]).Float32())
	case Float32:
		return float64(d.AsFloat32()[i])
	case Float64:
		return d.AsFloat64()[i]
	default:
		panic("unknown data type")
	}
}

// setAt stores v into element i, rounding to the value's precision.
func (d *Dense) setAt(i int, v float64) {
	switch d.dtype {
	case Float16:
		d.AsFloat16Bits()[i] = float16.Fromfloat32(float32(v)).Bits()
	case Float32:
		d.AsFloat32()[i] = float32(v)
	case Float64:
		d.AsFloat64()[i] = v
	default:
		panic("unknown data type")
	}
}
