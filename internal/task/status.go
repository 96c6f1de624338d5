package task

import (
	"fmt"
	"strings"
)

// Policy decides what advancing a completed task does.
type Policy string

const (
	// PolicyStop keeps completed tasks completed.
	PolicyStop Policy = "stop"
	// PolicyReopen moves completed tasks back to in progress.
	PolicyReopen Policy = "reopen"
)

// ParsePolicy validates and normalizes a policy value.
func ParsePolicy(value string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(value))); p {
	case PolicyStop, PolicyReopen:
		return p, nil
	case "":
		return PolicyStop, nil
	default:
		return "", fmt.Errorf("invalid completed policy %q (valid: stop, reopen)", value)
	}
}

// Advance returns the status after current under PolicyStop.
func Advance(current Status) Status {
	return AdvanceWith(PolicyStop, current)
}

// AdvanceWith returns the status one step after current.
// Unknown statuses are returned unchanged.
func AdvanceWith(policy Policy, current Status) Status {
	switch current {
	case StatusNotStarted:
		return StatusInProgress
	case StatusInProgress:
		return StatusCompleted
	case StatusCompleted:
		if policy == PolicyReopen {
			return StatusInProgress
		}
		return StatusCompleted
	default:
		return current
	}
}
