// Package setop defines the operations that combine two line sets.
package setop

import (
	"strconv"
	"strings"

	"github.com/Qendolin/line-set-tool/pkg/core/sets"
	"github.com/pkg/errors"
)

// Operation selects how two sets are combined. The zero value means no
// operation has been chosen and is not valid.
type Operation int

const (
	Intersection Operation = iota + 1
	Union
	Difference
)

// ErrInvalidOperation is returned for Operation values outside the defined variants.
var ErrInvalidOperation = errors.New("invalid operation")

// Operations returns all valid operations in display order.
func Operations() []Operation {
	return []Operation{Intersection, Union, Difference}
}

// Valid reports whether op is one of the defined variants.
func (op Operation) Valid() bool {
	switch op {
	case Intersection, Union, Difference:
		return true
	default:
		return false
	}
}

// String returns the display name of the operation.
func (op Operation) String() string {
	switch op {
	case Intersection:
		return "Intersection"
	case Union:
		return "Union"
	case Difference:
		return "Difference"
	case 0:
		return "None"
	default:
		return "Invalid(" + strconv.Itoa(int(op)) + ")"
	}
}

// Symbol returns the mathematical symbol of the operation.
func (op Operation) Symbol() string {
	switch op {
	case Intersection:
		return "∩"
	case Union:
		return "∪"
	case Difference:
		return "−"
	default:
		return "?"
	}
}

var aliases = map[string]Operation{
	"intersection": Intersection,
	"intersect":    Intersection,
	"and":          Intersection,
	"union":        Union,
	"or":           Union,
	"difference":   Difference,
	"diff":         Difference,
	"minus":        Difference,
	"sub":          Difference,
}

// ParseOperation resolves an operation name, ignoring case and surrounding space.
func ParseOperation(name string) (Operation, error) {
	if op, ok := aliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return op, nil
	}
	return 0, errors.Wrapf(ErrInvalidOperation, "unknown operation %q", name)
}

// Apply combines a and b according to op. For Difference, the result holds
// the elements of a that are not in b. Neither input is modified.
func Apply(a, b sets.Set, op Operation) (sets.Set, error) {
	switch op {
	case Intersection:
		return sets.Intersection(a, b), nil
	case Union:
		return sets.Union(a, b), nil
	case Difference:
		return sets.Subtract(a, b), nil
	default:
		return nil, errors.Wrapf(ErrInvalidOperation, "operation %s", op)
	}
}
