package graph

import (
	"github.com/pkg/errors"

	"github.com/glia-ml/glia/internal/tensor"
)

func reluForward(xs []*tensor.Dense) (*tensor.Dense, error) {
	return xs[0].Unary(func(v float64) float64 {
		if v > 0 {
			return v
		}
		return 0
	}), nil
}

// reluBackward masks dy with the input sign: dx = dy where x > 0, else 0.
func reluBackward(xs []*tensor.Dense, _, dy *tensor.Dense) ([]*tensor.Dense, error) {
	mask := xs[0].Unary(func(v float64) float64 {
		if v > 0 {
			return 1
		}
		return 0
	})
	dx, err := dy.Mul(mask)
	if err != nil {
		return nil, errors.Wrap(err, "ReLU")
	}
	return []*tensor.Dense{dx}, nil
}
