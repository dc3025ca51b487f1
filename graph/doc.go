// Package graph provides the Glia computation graph and its evaluator.
//
// A Graph is an arena of operator nodes addressed by stable integer IDs;
// an Evaluator walks it to produce forward outputs and, given a seed
// gradient, backward gradients at any input node via reverse-mode
// differentiation.
//
// Example:
//
//	import (
//	    "github.com/glia-ml/glia/graph"
//	    "github.com/glia-ml/glia/tensor"
//	)
//
//	x, _ := tensor.FromRows(tensor.Float64, [][]float64{{0, -0.1}})
//
//	g := graph.New()
//	in := g.Input(x)
//	out := g.Sigmoid(in)
//
//	ev := graph.NewEvaluator(g)
//	y, _ := ev.Forward(out)
//
//	seed, _ := tensor.FromRows(tensor.Float64, [][]float64{{1, 1}})
//	grads, _ := ev.Backward(out, seed)
//	dx := grads[in] // gradient at the leaf
package graph
