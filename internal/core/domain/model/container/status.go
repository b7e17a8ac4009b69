package container

import (
	"fmt"

	"packtrack/internal/pkg/errs"
)

// Status represents the lifecycle state of a container.
// It implements a state machine with defined transitions to ensure
// containers follow the correct packaging and shipment workflow.
//
// State transitions:
//
//	Preparing <──> Sealed ──> Loaded ──> Delivered
//	    │                       ^            ^
//	    ├───────────────────────┘            │
//	    └────────────────────────────────────┘
//	 (Sealed reopens when allocations change underneath it;
//	  Loaded and Delivered may be reached from any earlier state)
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Preparing is the initial status: the container is still being filled.
	Preparing

	// Sealed indicates the container content is complete and closed.
	// A sealed container reopens when an allocation it holds changes.
	Sealed

	// Loaded indicates the container has been loaded onto a vehicle.
	Loaded

	// Delivered indicates the container reached its destination and a
	// delivery receipt was recorded. This is a final state.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Preparing: "Preparing",
		Sealed:    "Sealed",
		Loaded:    "Loaded",
		Delivered: "Delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Preparing: "Preparing",
		Sealed:    "Sealed",
		Loaded:    "Loaded",
		Delivered: "Delivered",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Preparing, Sealed, Loaded, Delivered.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Seal transitions the status to Sealed.
//
// Valid transitions:
//   - Preparing -> Sealed
//
// Returns:
//   - (Sealed, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Seal() (Status, error) {
	if s != Preparing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to seal", s.String()),
		)
	}
	return Sealed, nil
}

// Reopen transitions the status back to Preparing.
//
// Valid transitions:
//   - Sealed -> Preparing (content changed after sealing)
//
// Returns:
//   - (Preparing, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Reopen() (Status, error) {
	if s != Sealed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to reopen", s.String()),
		)
	}
	return Preparing, nil
}

// Load transitions the status to Loaded.
//
// Valid transitions:
//   - Preparing -> Loaded
//   - Sealed -> Loaded
//
// Invalid transitions:
//   - Loaded -> Loaded (already loaded)
//   - Delivered -> Loaded (final state)
//
// Returns:
//   - (Loaded, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Load() (Status, error) {
	if s != Preparing && s != Sealed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to load", s.String()),
		)
	}
	return Loaded, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Preparing -> Delivered
//   - Sealed -> Delivered
//   - Loaded -> Delivered
//
// Delivered is a final state with no further transitions possible.
//
// Returns:
//   - (Delivered, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Deliver() (Status, error) {
	if s != Preparing && s != Sealed && s != Loaded {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}
	return Delivered, nil
}
