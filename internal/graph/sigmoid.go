package graph

import (
	"math"

	"github.com/pkg/errors"

	"github.com/glia-ml/glia/internal/tensor"
)

// sigmoid computes 1/(1+exp(-x)). The split on sign keeps exp's argument
// non-positive, so large-magnitude inputs never overflow.
func sigmoid(x float64) float64 {
	if x >= 0 {
		return 1.0 / (1.0 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1.0 + e)
}

func sigmoidForward(xs []*tensor.Dense) (*tensor.Dense, error) {
	return xs[0].Unary(sigmoid), nil
}

// sigmoidBackward computes dx = dy * y * (1-y) from the cached forward
// output y.
func sigmoidBackward(_ []*tensor.Dense, y, dy *tensor.Dense) ([]*tensor.Dense, error) {
	deriv, err := y.Mul(y.Unary(func(v float64) float64 { return 1.0 - v }))
	if err != nil {
		return nil, errors.Wrap(err, "Sigmoid")
	}
	dx, err := dy.Mul(deriv)
	if err != nil {
		return nil, errors.Wrap(err, "Sigmoid")
	}
	return []*tensor.Dense{dx}, nil
}
