package checkout

import "errors"

// Validation errors are detected locally and never reach the upstream
// API; the user corrects the input and re-triggers.
var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrAuthRequired       = errors.New("authentication required")
	ErrIncompleteShipping = errors.New("incomplete shipping details")

	// ErrSubmissionInFlight rejects a re-trigger while a submission is
	// outstanding. At most one order request is ever in flight.
	ErrSubmissionInFlight = errors.New("submission already in flight")
)
