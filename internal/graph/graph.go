package graph

import (
	"fmt"

	"github.com/glia-ml/glia/internal/tensor"
)

// NodeID addresses a node in a Graph's arena. IDs are assigned in
// construction order and stay stable for the graph's lifetime.
type NodeID int

// node is one entry in the arena: an operator kind plus the IDs of its
// inputs. Leaf (Input) nodes carry their literal value instead.
type node struct {
	op     Op
	inputs []NodeID
	value  *tensor.Dense
}

// Graph is an arena of operator nodes forming a DAG. Nodes may be shared
// by multiple consumers; edges are index lists rather than pointers, so
// sharing needs no ownership bookkeeping and memoization can key on IDs.
type Graph struct {
	nodes []node
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{}
}

// Len returns the number of nodes in the arena.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// OpAt returns the operator kind of the given node.
func (g *Graph) OpAt(id NodeID) Op {
	g.checkID(id)
	return g.nodes[id].op
}

// InputsOf returns the input IDs of the given node. The returned slice is
// a copy.
func (g *Graph) InputsOf(id NodeID) []NodeID {
	g.checkID(id)
	return append([]NodeID(nil), g.nodes[id].inputs...)
}

// Input adds a leaf node holding the literal value v.
func (g *Graph) Input(v *tensor.Dense) NodeID {
	if v == nil {
		panic("graph: Input value is nil")
	}
	return g.add(node{op: Input, value: v})
}

// Sigmoid adds a node computing 1/(1+exp(-x)) elementwise.
func (g *Graph) Sigmoid(x NodeID) NodeID {
	return g.apply(Sigmoid, x)
}

// Exp adds a node computing exp(x) elementwise.
func (g *Graph) Exp(x NodeID) NodeID {
	return g.apply(Exp, x)
}

// Softmax adds a node computing softmax over each sample row. The input
// must be a batch of rank-1 class-score vectors.
func (g *Graph) Softmax(x NodeID) NodeID {
	return g.apply(Softmax, x)
}

// Tanh adds a node computing tanh(x) elementwise.
func (g *Graph) Tanh(x NodeID) NodeID {
	return g.apply(Tanh, x)
}

// ReLU adds a node computing max(0, x) elementwise.
func (g *Graph) ReLU(x NodeID) NodeID {
	return g.apply(ReLU, x)
}

// Plus adds a node computing the elementwise sum a + b.
func (g *Graph) Plus(a, b NodeID) NodeID {
	return g.apply(Plus, a, b)
}

// ElemTimes adds a node computing the elementwise product a * b.
func (g *Graph) ElemTimes(a, b NodeID) NodeID {
	return g.apply(ElemTimes, a, b)
}

// apply appends a non-leaf node. Input IDs must already exist in the
// arena, which makes every edge point backwards and the graph acyclic by
// construction.
func (g *Graph) apply(op Op, inputs ...NodeID) NodeID {
	for _, in := range inputs {
		g.checkID(in)
	}
	return g.add(node{op: op, inputs: inputs})
}

func (g *Graph) add(n node) NodeID {
	g.nodes = append(g.nodes, n)
	return NodeID(len(g.nodes) - 1)
}

func (g *Graph) checkID(id NodeID) {
	if id < 0 || int(id) >= len(g.nodes) {
		panic(fmt.Sprintf("graph: node %d out of range (len %d)", id, len(g.nodes)))
	}
}
