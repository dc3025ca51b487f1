package tensor

import "github.com/pkg/errors"

// Typed failures reported by value construction and elementwise kernels.
// Callers match them with errors.Is.
var (
	// ErrShapeMismatch is returned when an operand's shape is incompatible
	// with an operation's requirement.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrDTypeMismatch is returned when binary operands carry different
	// precisions. Precision is fixed at construction and never coerced.
	ErrDTypeMismatch = errors.New("dtype mismatch")
)
