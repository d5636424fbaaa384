package docket

import "fmt"

// Status is a hearing's scheduling state.
type Status string

const (
	StatusNew         Status = "new"
	StatusRescheduled Status = "rescheduled"
	StatusCancelled   Status = "cancelled"
)

// Statuses lists every valid status in display order.
var Statuses = []Status{StatusNew, StatusRescheduled, StatusCancelled}

// ParseStatus validates a status string. The empty string defaults to
// StatusNew, matching the lifecycle of a freshly authored hearing.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case "":
		return StatusNew, nil
	case StatusNew:
		return StatusNew, nil
	case StatusRescheduled:
		return StatusRescheduled, nil
	case StatusCancelled:
		return StatusCancelled, nil
	}
	return "", fmt.Errorf("invalid status %q (want new, rescheduled or cancelled)", s)
}

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusRescheduled, StatusCancelled:
		return true
	}
	return false
}

// Label is the human-readable form of the status.
func (s Status) Label() string {
	switch s {
	case StatusNew:
		return "New"
	case StatusRescheduled:
		return "Rescheduled"
	case StatusCancelled:
		return "Cancelled"
	}
	return string(s)
}

// BadgeClass names the CSS class for the status badge in the web views.
func (s Status) BadgeClass() string {
	switch s {
	case StatusNew:
		return "status-new"
	case StatusRescheduled:
		return "status-rescheduled"
	case StatusCancelled:
		return "status-cancelled"
	}
	return "status-unknown"
}

// Dimmed reports whether events with this status render at reduced opacity.
func (s Status) Dimmed() bool {
	return s == StatusCancelled
}
