package graph

import (
	"github.com/pkg/errors"

	"github.com/glia-ml/glia/internal/tensor"
)

func plusForward(xs []*tensor.Dense) (*tensor.Dense, error) {
	return xs[0].Add(xs[1])
}

// plusBackward passes the incoming gradient to both operands unchanged.
func plusBackward(_ []*tensor.Dense, _, dy *tensor.Dense) ([]*tensor.Dense, error) {
	return []*tensor.Dense{dy, dy}, nil
}

func elemTimesForward(xs []*tensor.Dense) (*tensor.Dense, error) {
	return xs[0].Mul(xs[1])
}

// elemTimesBackward routes each operand the gradient scaled by the other:
// d(a*b)/da = b, d(a*b)/db = a.
func elemTimesBackward(xs []*tensor.Dense, _, dy *tensor.Dense) ([]*tensor.Dense, error) {
	da, err := dy.Mul(xs[1])
	if err != nil {
		return nil, errors.Wrap(err, "ElemTimes")
	}
	db, err := dy.Mul(xs[0])
	if err != nil {
		return nil, errors.Wrap(err, "ElemTimes")
	}
	return []*tensor.Dense{da, db}, nil
}
