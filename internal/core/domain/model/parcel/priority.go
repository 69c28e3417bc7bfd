package parcel

import (
	"fmt"
	"strings"

	"parceltracker/internal/pkg/errs"
)

// Priority is the handling class of a parcel.
type Priority int

const (
	UnknownPriority Priority = iota
	Normal
	Urgent
	Express
)

var priorityNames = map[Priority]string{
	Normal:  "NORMAL",
	Urgent:  "URGENT",
	Express: "EXPRESS",
}

// Priorities returns every valid priority.
func Priorities() []Priority {
	return []Priority{Normal, Urgent, Express}
}

// HighPriorities are the priorities counted by the high-priority-pending view.
func HighPriorities() []Priority {
	return []Priority{Urgent, Express}
}

func ParsePriority(s string) (Priority, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for priority, n := range priorityNames {
		if n == name {
			return priority, nil
		}
	}
	return UnknownPriority, errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%q is not a valid priority", s))
}

func (p Priority) Validate() error {
	if _, ok := priorityNames[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsHigh reports URGENT and EXPRESS.
func (p Priority) IsHigh() bool {
	return p == Urgent || p == Express
}
