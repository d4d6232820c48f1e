package execution

// Status is the lifecycle state of a prompt execution. Transitions are
// monotonic from the form side: once a terminal status is observed the
// execution is permanently read-only here (retries happen elsewhere).
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusRunning   Status = "RUNNING"
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"
	StatusTimeout   Status = "TIMEOUT"
	StatusCancelled Status = "CANCELLED"
)

// Terminal reports whether the status ends the lifecycle.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusTimeout, StatusCancelled:
		return true
	default:
		return false
	}
}

// FailedLike reports whether the status is a non-success terminal state.
func (s Status) FailedLike() bool {
	switch s {
	case StatusFailed, StatusTimeout, StatusCancelled:
		return true
	default:
		return false
	}
}

// Active reports whether the execution is still progressing server-side and
// therefore worth polling.
func (s Status) Active() bool {
	return s == StatusPending || s == StatusRunning
}
