package parcel

import (
	"errors"
	"sort"
	"strings"
	"time"

	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/pkg/errs"
)

var ErrHistoryEntryIsNotConstructed = errors.New("HistoryEntry must be created via NewHistoryEntry or RestoreHistoryEntry")

// HistoryEntry is one immutable row of the delivery history ledger: the status a
// parcel entered and when. Entries are never modified after creation.
type HistoryEntry struct {
	id        kernel.UUID
	parcelID  kernel.UUID
	status    Status
	timestamp time.Time
	comment   *string

	isConstructed bool
}

// NewHistoryEntry creates a ledger entry with a fresh id. Blank comments are stored as nil.
func NewHistoryEntry(parcelID kernel.UUID, status Status, comment *string, at time.Time) (HistoryEntry, error) {
	return RestoreHistoryEntry(kernel.NewUUID(), parcelID, status, at, comment)
}

// RestoreHistoryEntry rebuilds a persisted ledger entry.
func RestoreHistoryEntry(
	id kernel.UUID,
	parcelID kernel.UUID,
	status Status,
	at time.Time,
	comment *string,
) (HistoryEntry, error) {
	var problems []error
	if id.Validate() != nil {
		problems = append(problems, errs.NewValueIsRequiredError("id"))
	}
	if parcelID.Validate() != nil {
		problems = append(problems, errs.NewValueIsRequiredError("parcelId"))
	}
	if at.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("timestamp"))
	}
	if err := errors.Join(append(problems, status.Validate())...); err != nil {
		return HistoryEntry{}, err
	}

	return HistoryEntry{
		id:            id,
		parcelID:      parcelID,
		status:        status,
		timestamp:     at,
		comment:       normalizeComment(comment),
		isConstructed: true,
	}, nil
}

func (e HistoryEntry) Validate() error {
	if !e.isConstructed {
		return ErrHistoryEntryIsNotConstructed
	}
	return nil
}

func (e HistoryEntry) ID() kernel.UUID {
	return e.id
}

func (e HistoryEntry) ParcelID() kernel.UUID {
	return e.parcelID
}

func (e HistoryEntry) Status() Status {
	return e.status
}

func (e HistoryEntry) Timestamp() time.Time {
	return e.timestamp
}

// Comment returns nil when the entry has no comment.
func (e HistoryEntry) Comment() *string {
	return e.comment
}

// HasComment reports a non-blank comment.
func (e HistoryEntry) HasComment() bool {
	return e.comment != nil
}

func normalizeComment(comment *string) *string {
	if comment == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*comment)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// Timeline is the history of one parcel ordered by timestamp ascending.
type Timeline []HistoryEntry

// NewTimeline orders entries by timestamp; entries with equal timestamps keep
// their insertion order.
func NewTimeline(entries []HistoryEntry) Timeline {
	t := make(Timeline, len(entries))
	copy(t, entries)
	sort.SliceStable(t, func(i, j int) bool {
		return t[i].timestamp.Before(t[j].timestamp)
	})
	return t
}

// Latest returns the most recent entry, false for an empty timeline.
func (t Timeline) Latest() (HistoryEntry, bool) {
	if len(t) == 0 {
		return HistoryEntry{}, false
	}
	return t[len(t)-1], true
}

// IsWellFormed reports whether the timeline starts with CREATED and its
// timestamps never decrease.
func (t Timeline) IsWellFormed() bool {
	if len(t) == 0 || t[0].status != Created {
		return false
	}
	for i := 1; i < len(t); i++ {
		if t[i].timestamp.Before(t[i-1].timestamp) {
			return false
		}
	}
	return true
}
