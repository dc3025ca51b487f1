package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glia-ml/glia/internal/tensor"
)

func TestFromRows(t *testing.T) {
	d, err := tensor.FromRows(tensor.Float64, [][]float64{
		{0, -0.1},
		{0.1, 1},
	})
	require.NoError(t, err)

	assert.True(t, d.Shape().Equal(tensor.Shape{2, 2}))
	assert.Equal(t, tensor.Float64, d.DType())
	assert.Equal(t, []float64{0, -0.1, 0.1, 1}, d.Float64s())
}

func TestFromRows_Ragged(t *testing.T) {
	_, err := tensor.FromRows(tensor.Float64, [][]float64{
		{1, 2, 3},
		{4, 5},
	})
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestFromVector_PrependsBatchDimension(t *testing.T) {
	d, err := tensor.FromVector(tensor.Float32, []float64{1, 2, 3})
	require.NoError(t, err)

	assert.True(t, d.Shape().Equal(tensor.Shape{1, 3}))
	assert.Equal(t, tensor.Float32, d.DType())
}

func TestFromSlice_InfersDType(t *testing.T) {
	f32, err := tensor.FromSlice([]float32{1, 2}, tensor.Shape{2})
	require.NoError(t, err)
	assert.Equal(t, tensor.Float32, f32.DType())
	assert.Equal(t, []float32{1, 2}, f32.AsFloat32())

	f64, err := tensor.FromSlice([]float64{1, 2}, tensor.Shape{2})
	require.NoError(t, err)
	assert.Equal(t, tensor.Float64, f64.DType())
}

func TestFromSlice_LengthMismatch(t *testing.T) {
	_, err := tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{2, 2})
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestFloat16_RoundTrip(t *testing.T) {
	// Values exactly representable in binary16.
	d, err := tensor.FromVector(tensor.Float16, []float64{0.5, -2.25, 100})
	require.NoError(t, err)

	assert.Equal(t, tensor.Float16, d.DType())
	assert.Equal(t, 3, len(d.AsFloat16Bits()))
	assert.Equal(t, []float64{0.5, -2.25, 100}, d.Float64s())
}

func TestEqual_Bitwise(t *testing.T) {
	a, err := tensor.FromVector(tensor.Float64, []float64{1, 2})
	require.NoError(t, err)
	b, err := tensor.FromVector(tensor.Float64, []float64{1, 2})
	require.NoError(t, err)
	c, err := tensor.FromVector(tensor.Float64, []float64{1, 3})
	require.NoError(t, err)
	f32, err := tensor.FromVector(tensor.Float32, []float64{1, 2})
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(f32), "same values, different precision")
}

func TestParseDataType(t *testing.T) {
	cases := []struct {
		in   string
		want tensor.DataType
	}{
		{"half", tensor.Float16},
		{"float16", tensor.Float16},
		{"single", tensor.Float32},
		{"float32", tensor.Float32},
		{"double", tensor.Float64},
		{"Double", tensor.Float64},
	}
	for _, c := range cases {
		got, err := tensor.ParseDataType(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}

	_, err := tensor.ParseDataType("quad")
	assert.Error(t, err)
}
