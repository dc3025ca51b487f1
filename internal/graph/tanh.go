package graph

import (
	"math"

	"github.com/pkg/errors"

	"github.com/glia-ml/glia/internal/tensor"
)

func tanhForward(xs []*tensor.Dense) (*tensor.Dense, error) {
	return xs[0].Unary(math.Tanh), nil
}

// tanhBackward computes dx = dy * (1 - y²).
func tanhBackward(_ []*tensor.Dense, y, dy *tensor.Dense) ([]*tensor.Dense, error) {
	dx, err := dy.Mul(y.Unary(func(v float64) float64 { return 1.0 - v*v }))
	if err != nil {
		return nil, errors.Wrap(err, "Tanh")
	}
	return []*tensor.Dense{dx}, nil
}
