// Package tensor provides the dense value container used by the Glia
// computation graph.
package tensor

import (
	"strings"

	"github.com/pkg/errors"
)

// DataType is runtime type information for a Dense value's elements.
// Precision is chosen when a value is constructed and propagates through
// every derived computation; there is no ambient default.
type DataType int

// Supported element types.
const (
	Float16 DataType = iota
	Float32
	Float64
)

// Size returns the byte size of one element.
func (dt DataType) Size() int {
	switch dt {
	case Float16:
		return 2
	case Float32:
		return 4
	case Float64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float16:
		return "float16"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// ParseDataType maps a precision spelling from configuration to a DataType.
// Recognized spellings: "half"/"float16", "single"/"float32",
// "double"/"float64".
func ParseDataType(s string) (DataType, error) {
	switch strings.ToLower(s) {
	case "half", "float16":
		return Float16, nil
	case "single", "float32":
		return Float32, nil
	case "double", "float64":
		return Float64, nil
	default:
		return 0, errors.Errorf("unknown precision %q (want half, single or double)", s)
	}
}

// Float is the constraint for element types accepted by FromSlice.
type Float interface {
	~float32 | ~float64
}

// inferDataType infers the DataType matching a generic element type.
func inferDataType[T Float](dummy T) DataType {
	switch any(dummy).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	default:
		panic("unsupported type")
	}
}
