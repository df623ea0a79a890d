package checkout

// Status tracks one checkout attempt through its lifecycle.
type Status string

const (
	StatusIdle       Status = "IDLE"
	StatusValidating Status = "VALIDATING"
	StatusSubmitting Status = "SUBMITTING"
	StatusSucceeded  Status = "SUCCEEDED"
	StatusFailed     Status = "FAILED"
)

// IsTerminal reports whether the attempt has finished. A failed attempt
// stays terminal until the user explicitly re-triggers checkout.
func (s Status) IsTerminal() bool {
	return s == StatusSucceeded || s == StatusFailed
}

func (s Status) String() string {
	return string(s)
}
