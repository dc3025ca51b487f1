package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glia-ml/glia/internal/tensor"
)

func TestUnary(t *testing.T) {
	d, err := tensor.FromVector(tensor.Float64, []float64{1, -2, 3})
	require.NoError(t, err)

	neg := d.Unary(func(v float64) float64 { return -v })

	assert.Equal(t, []float64{-1, 2, -3}, neg.Float64s())
	assert.True(t, neg.Shape().Equal(d.Shape()))
	assert.Equal(t, []float64{1, -2, 3}, d.Float64s(), "input must stay untouched")
}

func TestAdd(t *testing.T) {
	a, err := tensor.FromVector(tensor.Float64, []float64{1, 2})
	require.NoError(t, err)
	b, err := tensor.FromVector(tensor.Float64, []float64{10, 20})
	require.NoError(t, err)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{11, 22}, sum.Float64s())
}

func TestMul(t *testing.T) {
	a, err := tensor.FromVector(tensor.Float32, []float64{2, 3})
	require.NoError(t, err)
	b, err := tensor.FromVector(tensor.Float32, []float64{4, 5})
	require.NoError(t, err)

	prod, err := a.Mul(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{8, 15}, prod.Float64s())
	assert.Equal(t, tensor.Float32, prod.DType())
}

func TestSub(t *testing.T) {
	a, err := tensor.FromVector(tensor.Float64, []float64{1, 1})
	require.NoError(t, err)
	b, err := tensor.FromVector(tensor.Float64, []float64{0.25, 0.75})
	require.NoError(t, err)

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.75, 0.25}, diff.Float64s())
}

func TestBinary_ShapeMismatch(t *testing.T) {
	a, err := tensor.FromVector(tensor.Float64, []float64{1, 2})
	require.NoError(t, err)
	b, err := tensor.FromVector(tensor.Float64, []float64{1, 2, 3})
	require.NoError(t, err)

	_, err = a.Add(b)
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestBinary_DTypeMismatch(t *testing.T) {
	a, err := tensor.FromVector(tensor.Float64, []float64{1, 2})
	require.NoError(t, err)
	b, err := tensor.FromVector(tensor.Float32, []float64{1, 2})
	require.NoError(t, err)

	_, err = a.Mul(b)
	require.ErrorIs(t, err, tensor.ErrDTypeMismatch)
}

func TestFloat16_Arithmetic(t *testing.T) {
	a, err := tensor.FromVector(tensor.Float16, []float64{0.5, 1.5})
	require.NoError(t, err)
	b, err := tensor.FromVector(tensor.Float16, []float64{0.25, 0.5})
	require.NoError(t, err)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, tensor.Float16, sum.DType())
	assert.Equal(t, []float64{0.75, 2}, sum.Float64s())
}
