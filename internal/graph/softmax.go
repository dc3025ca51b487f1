package graph

import (
	"math"

	"github.com/pkg/errors"

	"github.com/glia-ml/glia/internal/tensor"
)

// softmaxShape validates that x is a batch of rank-1 class-score vectors
// and returns (batch, classes).
func softmaxShape(x *tensor.Dense) (int, int, error) {
	shape := x.Shape()
	if len(shape) != 2 {
		return 0, 0, errors.Wrapf(tensor.ErrShapeMismatch,
			"Softmax: sample rank %d, want rank-1 class scores (input shape %v)", len(shape)-1, shape)
	}
	return shape[0], shape[1], nil
}

// softmaxForward computes, per sample row:
//
//	y_i = exp(x_i - max(x)) / Σ_j exp(x_j - max(x))
//
// The max-subtraction keeps every exponent non-positive, so rows with
// large-magnitude scores cannot overflow.
func softmaxForward(xs []*tensor.Dense) (*tensor.Dense, error) {
	x := xs[0]
	batch, classes, err := softmaxShape(x)
	if err != nil {
		return nil, err
	}

	in := x.Float64s()
	out := make([]float64, len(in))
	for b := 0; b < batch; b++ {
		offset := b * classes
		maxVal := in[offset]
		for j := 1; j < classes; j++ {
			if in[offset+j] > maxVal {
				maxVal = in[offset+j]
			}
		}

		sumExp := 0.0
		for j := 0; j < classes; j++ {
			out[offset+j] = math.Exp(in[offset+j] - maxVal)
			sumExp += out[offset+j]
		}

		for j := 0; j < classes; j++ {
			out[offset+j] /= sumExp
		}
	}

	return tensor.FromFloat64s(x.DType(), x.Shape(), out)
}

// softmaxBackward computes the full Jacobian-vector product per sample row:
//
//	dx_i = y_i * (dy_i - Σ_j dy_j * y_j)
func softmaxBackward(xs []*tensor.Dense, y, dy *tensor.Dense) ([]*tensor.Dense, error) {
	batch, classes, err := softmaxShape(xs[0])
	if err != nil {
		return nil, err
	}

	yData := y.Float64s()
	dyData := dy.Float64s()
	dxData := make([]float64, len(yData))
	for b := 0; b < batch; b++ {
		offset := b * classes
		dot := 0.0
		for j := 0; j < classes; j++ {
			dot += dyData[offset+j] * yData[offset+j]
		}

		for j := 0; j < classes; j++ {
			dxData[offset+j] = yData[offset+j] * (dyData[offset+j] - dot)
		}
	}

	dx, err := tensor.FromFloat64s(y.DType(), y.Shape(), dxData)
	if err != nil {
		return nil, errors.Wrap(err, "Softmax")
	}
	return []*tensor.Dense{dx}, nil
}
