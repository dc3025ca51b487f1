// Package graph implements an arena-based computation graph of elementwise
// operators with forward evaluation and reverse-mode differentiation.
//
// Nodes are addressed by stable integer IDs assigned in construction order.
// Every edge points to an earlier ID, so the arena order is always a valid
// topological order: the graph doubles as the tape walked by the backward
// pass.
package graph

import "github.com/glia-ml/glia/internal/tensor"

// Op is the closed set of operator kinds a node can carry.
type Op int

// Supported operators.
const (
	Input Op = iota
	Sigmoid
	Exp
	Softmax
	Tanh
	ReLU
	Plus
	ElemTimes
)

// String returns a human-readable operator name.
func (op Op) String() string {
	switch op {
	case Input:
		return "Input"
	case Sigmoid:
		return "Sigmoid"
	case Exp:
		return "Exp"
	case Softmax:
		return "Softmax"
	case Tanh:
		return "Tanh"
	case ReLU:
		return "ReLU"
	case Plus:
		return "Plus"
	case ElemTimes:
		return "ElemTimes"
	default:
		return "Unknown"
	}
}

// rule bundles an operator's forward transform with its local-gradient
// (Jacobian-vector-product) function.
//
// forward receives the evaluated input values and produces the node's
// output. backward receives the input values, the cached forward output y
// and the incoming gradient dy, and returns one gradient per input.
//
// Dispatch is through the fixed table below rather than per-node virtual
// methods: the evaluator stays exhaustive over the closed Op set, and a
// node whose kind misses the table is an UnknownOperator failure.
type rule struct {
	forward  func(xs []*tensor.Dense) (*tensor.Dense, error)
	backward func(xs []*tensor.Dense, y, dy *tensor.Dense) ([]*tensor.Dense, error)
}

var rules = map[Op]rule{
	Sigmoid:   {sigmoidForward, sigmoidBackward},
	Exp:       {expForward, expBackward},
	Softmax:   {softmaxForward, softmaxBackward},
	Tanh:      {tanhForward, tanhBackward},
	ReLU:      {reluForward, reluBackward},
	Plus:      {plusForward, plusBackward},
	ElemTimes: {elemTimesForward, elemTimesBackward},
}
