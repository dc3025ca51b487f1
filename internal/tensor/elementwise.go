package tensor

import "github.com/pkg/errors"

// Unary applies f elementwise and returns a new value of the same shape
// and precision. Float16 and Float32 values compute through float64 and
// round on store.
func (d *Dense) Unary(f func(float64) float64) *Dense {
	out, err := NewDense(d.shape, d.dtype)
	if err != nil {
		panic(err) // d.shape already validated at construction
	}
	n := d.NumElements()
	for i := 0; i < n; i++ {
		out.setAt(i, f(d.at(i)))
	}
	return out
}

// Add returns the elementwise sum. Operands must have identical shape and
// precision.
func (d *Dense) Add(other *Dense) (*Dense, error) {
	return d.binary("Add", other, func(a, b float64) float64 { return a + b })
}

// Sub returns the elementwise difference.
func (d *Dense) Sub(other *Dense) (*Dense, error) {
	return d.binary("Sub", other, func(a, b float64) float64 { return a - b })
}

// Mul returns the elementwise (Hadamard) product.
func (d *Dense) Mul(other *Dense) (*Dense, error) {
	return d.binary("Mul", other, func(a, b float64) float64 { return a * b })
}

func (d *Dense) binary(name string, other *Dense, f func(a, b float64) float64) (*Dense, error) {
	if !d.shape.Equal(other.shape) {
		return nil, errors.Wrapf(ErrShapeMismatch, "%s: shapes %v and %v differ", name, d.shape, other.shape)
	}
	if d.dtype != other.dtype {
		return nil, errors.Wrapf(ErrDTypeMismatch, "%s: %s and %s", name, d.dtype, other.dtype)
	}
	out, err := NewDense(d.shape, d.dtype)
	if err != nil {
		panic(err)
	}
	n := d.NumElements()
	for i := 0; i < n; i++ {
		out.setAt(i, f(d.at(i), other.at(i)))
	}
	return out, nil
}
