package graph

import "github.com/pkg/errors"

// Typed failures reported by the Evaluator. All represent programmer
// errors in graph construction or use, never transient conditions.
var (
	// ErrUnknownOperator is returned when a node carries an operator kind
	// the rule table has no entry for.
	ErrUnknownOperator = errors.New("unknown operator")

	// ErrCyclicGraph is returned when forward traversal revisits a node
	// already on the recursion stack. Graphs built through the arena
	// constructors cannot cycle; the check is defensive.
	ErrCyclicGraph = errors.New("cyclic graph")
)
