package billing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ValidationError reports malformed or missing required input. Nothing is
// partially applied when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}

// ConflictError reports an illegal state transition, carrying the offending
// state so the caller can show what actually blocked the request.
type ConflictError struct {
	Entity string
	ID     uint
	State  string
	Reason string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: %s %d in state %q: %s", e.Entity, e.ID, e.State, e.Reason)
}

// MissingReferenceError means a non-cash split was entered without the
// transaction reference that method requires.
type MissingReferenceError struct {
	Index  int
	Method string
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("payment split %d: method %q requires a reference", e.Index, e.Method)
}

// AmountMismatchError means the payment splits do not settle the balance due.
// The checkout is blocked entirely; no side effects occur.
type AmountMismatchError struct {
	Expected decimal.Decimal
	Got      decimal.Decimal
}

func (e *AmountMismatchError) Error() string {
	return fmt.Sprintf("amount mismatch: splits total %s, balance due %s", e.Got, e.Expected)
}
