package graph

import (
	"github.com/glia-ml/glia/internal/graph"
)

// Graph is an arena of operator nodes forming a DAG.
type Graph = graph.Graph

// NodeID addresses a node in a Graph's arena.
type NodeID = graph.NodeID

// Op is the closed set of operator kinds a node can carry.
type Op = graph.Op

// Supported operators.
const (
	Input     = graph.Input
	Sigmoid   = graph.Sigmoid
	Exp       = graph.Exp
	Softmax   = graph.Softmax
	Tanh      = graph.Tanh
	ReLU      = graph.ReLU
	Plus      = graph.Plus
	ElemTimes = graph.ElemTimes
)

// Evaluator computes forward values and reverse-mode gradients for one
// graph.
type Evaluator = graph.Evaluator

// Typed failures reported by the Evaluator.
var (
	ErrUnknownOperator = graph.ErrUnknownOperator
	ErrCyclicGraph     = graph.ErrCyclicGraph
)

// New creates an empty graph.
func New() *Graph {
	return graph.New()
}

// NewEvaluator creates an evaluator over g.
func NewEvaluator(g *Graph) *Evaluator {
	return graph.NewEvaluator(g)
}
