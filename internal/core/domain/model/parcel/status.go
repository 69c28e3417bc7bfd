package parcel

import (
	"fmt"
	"strings"

	"parceltracker/internal/pkg/errs"
)

// Status is the position of a parcel in the delivery pipeline.
//
// Documented progression:
//
//	CREATED ──> COLLECTED ──> IN_STOCK ──> IN_TRANSIT ──> DELIVERED
//
// CREATED is the only legal initial status and DELIVERED is terminal. The
// aggregate does not reject out-of-order changes: any status may follow any
// other so operators can correct mistakes. Precedes exposes the documented
// order for callers that want to detect backward moves.
type Status int

const (
	// UnknownStatus is the zero value and never valid.
	UnknownStatus Status = iota
	Created
	Collected
	InStock
	InTransit
	Delivered
)

var statusNames = map[Status]string{
	Created:   "CREATED",
	Collected: "COLLECTED",
	InStock:   "IN_STOCK",
	InTransit: "IN_TRANSIT",
	Delivered: "DELIVERED",
}

// Statuses returns every valid status in pipeline order.
func Statuses() []Status {
	return []Status{Created, Collected, InStock, InTransit, Delivered}
}

// ParseStatus converts the wire/storage name (e.g. "IN_TRANSIT") to a Status.
// Matching ignores case and surrounding spaces.
func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for status, n := range statusNames {
		if n == name {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate returns an error for UnknownStatus and out-of-range values.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further delivery work is expected.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// Precedes reports whether s comes strictly before other in the documented progression.
func (s Status) Precedes(other Status) bool {
	if s.Validate() != nil || other.Validate() != nil {
		return false
	}
	return s < other
}
