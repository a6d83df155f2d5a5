package ledger

import "fmt"

// ValidationError rejects a malformed draft before any store access.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NotFoundError is returned when a record is absent or not owned by the caller.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

// InsufficientBalanceError rejects an expense that would overdraw the month's
// remaining balance. Remaining is the unclamped signed value at check time.
type InsufficientBalanceError struct {
	Remaining float64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("Insufficient balance. Remaining ₹%s", formatAmount(e.Remaining))
}

// ConflictError rejects a mutation that would violate a ledger invariant.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }
