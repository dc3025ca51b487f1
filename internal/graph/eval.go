package graph

import (
	"github.com/pkg/errors"

	"github.com/glia-ml/glia/internal/tensor"
)

// visitState tracks a node's progress within one Evaluator.
type visitState uint8

const (
	unvisited visitState = iota
	inProgress
	forwardDone
)

// Evaluator computes forward values and reverse-mode gradients for one
// graph. Forward results are memoized per instance, so a node shared by
// several consumers is computed exactly once and repeated Forward calls
// return the identical cached value. Construct a fresh Evaluator to
// re-evaluate from scratch.
//
// An Evaluator owns its memo and gradient maps outright: distinct
// instances never share mutable state and may run concurrently.
type Evaluator struct {
	g      *Graph
	values []*tensor.Dense
	state  []visitState
}

// NewEvaluator creates an evaluator over g.
func NewEvaluator(g *Graph) *Evaluator {
	return &Evaluator{
		g:      g,
		values: make([]*tensor.Dense, g.Len()),
		state:  make([]visitState, g.Len()),
	}
}

// Forward evaluates the node's output value, recursively evaluating its
// inputs first. Leaf nodes return their held literal unchanged.
func (e *Evaluator) Forward(id NodeID) (*tensor.Dense, error) {
	e.g.checkID(id)
	e.grow()
	return e.eval(id)
}

func (e *Evaluator) eval(id NodeID) (*tensor.Dense, error) {
	switch e.state[id] {
	case forwardDone:
		return e.values[id], nil
	case inProgress:
		return nil, errors.Wrapf(ErrCyclicGraph, "node %d revisited during forward traversal", id)
	}

	n := e.g.nodes[id]
	if n.op == Input {
		e.values[id] = n.value
		e.state[id] = forwardDone
		return n.value, nil
	}

	r, ok := rules[n.op]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownOperator, "node %d carries operator kind %d", id, int(n.op))
	}

	e.state[id] = inProgress
	xs := make([]*tensor.Dense, len(n.inputs))
	for i, in := range n.inputs {
		v, err := e.eval(in)
		if err != nil {
			return nil, err
		}
		xs[i] = v
	}

	y, err := r.forward(xs)
	if err != nil {
		return nil, errors.Wrapf(err, "%s (node %d)", n.op, id)
	}
	e.values[id] = y
	e.state[id] = forwardDone
	return y, nil
}

// Backward propagates the seed gradient from the given node down to its
// leaves and returns the accumulated gradient for every node the gradient
// reached, leaves included. The forward pass is run (or reused) first to
// obtain the cached intermediate outputs the local-gradient rules need.
//
// The seed must match the shape of the node's forward output; otherwise
// the call fails with ShapeMismatch. When a node feeds multiple consumers
// its gradient contributions are summed.
func (e *Evaluator) Backward(id NodeID, seed *tensor.Dense) (map[NodeID]*tensor.Dense, error) {
	out, err := e.Forward(id)
	if err != nil {
		return nil, err
	}
	if !seed.Shape().Equal(out.Shape()) {
		return nil, errors.Wrapf(tensor.ErrShapeMismatch,
			"Backward: seed shape %v, forward output shape %v", seed.Shape(), out.Shape())
	}

	// The arena order is topological, so one reverse sweep from the seed
	// node visits every consumer before its producers.
	grads := map[NodeID]*tensor.Dense{id: seed}
	for nid := id; nid >= 0; nid-- {
		dy, ok := grads[nid]
		if !ok {
			continue // no gradient flows through this node
		}
		n := e.g.nodes[nid]
		if n.op == Input {
			continue
		}

		xs := make([]*tensor.Dense, len(n.inputs))
		for i, in := range n.inputs {
			xs[i] = e.values[in]
		}

		dxs, err := rules[n.op].backward(xs, e.values[nid], dy)
		if err != nil {
			return nil, errors.Wrapf(err, "%s (node %d)", n.op, nid)
		}

		for i, in := range n.inputs {
			dx := dxs[i]
			if dx == nil {
				continue
			}
			if existing, ok := grads[in]; ok {
				sum, err := existing.Add(dx)
				if err != nil {
					return nil, errors.Wrapf(err, "Backward: accumulating gradient at node %d", in)
				}
				grads[in] = sum
			} else {
				grads[in] = dx
			}
		}
	}

	return grads, nil
}

// grow extends the memo tables when nodes were added after the Evaluator
// was constructed.
func (e *Evaluator) grow() {
	for len(e.values) < e.g.Len() {
		e.values = append(e.values, nil)
		e.state = append(e.state, unvisited)
	}
}
