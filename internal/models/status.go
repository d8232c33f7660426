package models

import (
	"fmt"
	"strings"
)

// Status is the lifecycle tag of an issue.
// Any status may be set at creation; there are no enforced transitions.
type Status string

const (
	// StatusOpen is the default for new issues.
	StatusOpen Status = "open"

	// StatusInProgress marks an issue someone is working on.
	StatusInProgress Status = "in-progress"

	// StatusClosed marks a resolved issue.
	StatusClosed Status = "closed"
)

// DefaultStatus is applied when a create request omits the status
const DefaultStatus = StatusOpen

// ValidStatuses returns all valid status values in display order.
func ValidStatuses() []Status {
	return []Status{StatusOpen, StatusInProgress, StatusClosed}
}

// IsValid returns true if the status is a known value.
func (s Status) IsValid() bool {
	for _, valid := range ValidStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// Label returns the human readable form used in selects.
func (s Status) Label() string {
	switch s {
	case StatusOpen:
		return "Open"
	case StatusInProgress:
		return "In progress"
	case StatusClosed:
		return "Closed"
	default:
		return string(s)
	}
}

func (s Status) String() string {
	return string(s)
}

// ParseStatus converts user input into a Status.
// Empty input yields DefaultStatus; unknown values return ErrInvalidStatus.
func ParseStatus(raw string) (Status, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return DefaultStatus, nil
	}
	status := Status(value)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q (valid: open, in-progress, closed)", ErrInvalidStatus, raw)
	}
	return status, nil
}
