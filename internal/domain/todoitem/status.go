package todoitem

// StatusCode is the completion state of a TodoItem. It is a closed set:
// only the two constants below are valid.
type StatusCode string

const (
	StatusNotCompleted StatusCode = "NOT_COMPLETED"
	StatusCompleted    StatusCode = "COMPLETED"
)

// StatusFromComplete maps the boolean "complete" flag to a StatusCode.
func StatusFromComplete(complete bool) StatusCode {
	if complete {
		return StatusCompleted
	}
	return StatusNotCompleted
}

// IsValid returns true if the status is one of the defined constants.
func (s StatusCode) IsValid() bool {
	switch s {
	case StatusNotCompleted, StatusCompleted:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s StatusCode) String() string {
	return string(s)
}
