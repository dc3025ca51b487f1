package graph

import (
	"math"

	"github.com/pkg/errors"

	"github.com/glia-ml/glia/internal/tensor"
)

func expForward(xs []*tensor.Dense) (*tensor.Dense, error) {
	return xs[0].Unary(math.Exp), nil
}

// expBackward computes dx = dy * y: the derivative of exp is exp itself,
// already available as the cached forward output.
func expBackward(_ []*tensor.Dense, y, dy *tensor.Dense) ([]*tensor.Dense, error) {
	dx, err := dy.Mul(y)
	if err != nil {
		return nil, errors.Wrap(err, "Exp")
	}
	return []*tensor.Dense{dx}, nil
}
