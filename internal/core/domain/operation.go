package domain

import (
	"fmt"
	"time"
)

// OpKind identifies a calculator operation.
type OpKind string

const (
	// OpAdd is addition.
	OpAdd OpKind = "add"
	// OpMultiply is multiplication.
	OpMultiply OpKind = "multiply"
)

// String returns the operation name.
func (k OpKind) String() string {
	return string(k)
}

// IsValid returns true if the kind is a known operation.
func (k OpKind) IsValid() bool {
	switch k {
	case OpAdd, OpMultiply:
		return true
	default:
		return false
	}
}

// Symbol returns the arithmetic symbol for display ("+" or "*").
func (k OpKind) Symbol() string {
	switch k {
	case OpAdd:
		return "+"
	case OpMultiply:
		return "*"
	default:
		return "?"
	}
}

// Operation is one recorded calculator call.
type Operation struct {
	// ID is the unique identifier for the operation.
	ID string

	// Calculator is the name of the calculator that performed the call.
	Calculator string

	// Kind is the operation performed.
	Kind OpKind

	// A and B are the operands.
	A float64
	B float64

	// Result is the computed value.
	Result float64

	// At is when the operation was performed.
	At time.Time
}

// String returns the history entry form, e.g. "3 * 4 = 12".
func (o Operation) String() string {
	return fmt.Sprintf("%s %s %s = %s",
		formatNumber(o.A), o.Kind.Symbol(), formatNumber(o.B), formatNumber(o.Result))
}
