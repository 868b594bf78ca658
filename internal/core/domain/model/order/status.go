package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the kitchen workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Preparing ──> Ready ──> Delivered
//	   │            │             │           │
//	   └────────────┴──────┬──────┴───────────┘
//	                       v
//	                   Cancelled
//
// Forward movement is single-step only; cancellation is legal from any
// non-terminal state. Delivered and Cancelled are terminal.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status are waiting to be confirmed by staff.
	Pending

	// Confirmed indicates the order has been accepted by the restaurant.
	Confirmed

	// Preparing indicates the kitchen is working on the order.
	Preparing

	// Ready indicates the order is prepared and waiting for handoff.
	Ready

	// Delivered indicates the order reached the customer.
	// This is a terminal state with no further transitions allowed.
	Delivered

	// Cancelled indicates the order was withdrawn before delivery.
	// This is a terminal state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Confirmed: "confirmed",
		Preparing: "preparing",
		Ready:     "ready",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Confirmed: "confirmed",
		Preparing: "preparing",
		Ready:     "ready",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses a wire-format status name into a Status value.
// Returns a ValueIsInvalidError for names outside the defined set; the
// Unknown status is never produced from a valid name.
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status name", name),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Confirmed, Preparing, Ready, Delivered, Cancelled.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase wire name of the status.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones, for which
// it returns "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
// Delivered and Cancelled are the two terminal states.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// next returns the immediate forward successor in the fulfillment chain,
// or Unknown when the status has no forward successor.
func (s Status) next() Status {
	switch s {
	case Pending:
		return Confirmed
	case Confirmed:
		return Preparing
	case Preparing:
		return Ready
	case Ready:
		return Delivered
	default:
		return Unknown
	}
}

// CanTransitionTo reports whether moving from s to target is legal without
// performing the transition. Legal moves are the single forward step in the
// fulfillment chain and cancellation from any non-terminal state.
func (s Status) CanTransitionTo(target Status) bool {
	if s.Validate() != nil || target.Validate() != nil {
		return false
	}
	if s.IsTerminal() {
		return false
	}
	if target == Cancelled {
		return true
	}
	return target == s.next()
}

// TransitionTo validates and performs a transition from s to target.
//
// Valid transitions:
//   - the immediate forward step (pending -> confirmed, confirmed -> preparing,
//     preparing -> ready, ready -> delivered)
//   - any non-terminal state -> cancelled
//
// Skipping forward states, moving backward, and leaving a terminal state all
// fail. Callers wanting to skip ahead must transition step by step, each step
// independently validated.
//
// Returns:
//   - (target, nil) on a legal transition
//   - (0, *errs.InvalidTransitionError) otherwise
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewInvalidTransitionError(s.String(), target.String())
	}
	return target, nil
}
