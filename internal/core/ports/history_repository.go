package ports

import (
	"context"
	"time"

	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/domain/model/parcel"
)

// HistoryRepository is the append-only ledger of parcel status changes.
type HistoryRepository interface {
	Append(ctx context.Context, entries ...parcel.HistoryEntry) error

	// Get returns errs.ObjectNotFoundError for an unknown entry id.
	Get(ctx context.Context, id kernel.UUID) (parcel.HistoryEntry, error)

	// List returns every entry, oldest first.
	List(ctx context.Context) ([]parcel.HistoryEntry, error)

	// Timeline returns the entries of one parcel ordered by timestamp, then by
	// insertion order. It does not check that the parcel exists.
	Timeline(ctx context.Context, parcelID kernel.UUID) (parcel.Timeline, error)

	// Latest returns errs.ObjectNotFoundError when the parcel has no entries.
	Latest(ctx context.Context, parcelID kernel.UUID) (parcel.HistoryEntry, error)

	// Delete removes a single entry. It is a corrective action.
	Delete(ctx context.Context, id kernel.UUID) error

	CountByParcel(ctx context.Context, parcelID kernel.UUID) (int64, error)

	// CountByStatusBetween counts entries with status whose timestamp is in [from, to).
	CountByStatusBetween(ctx context.Context, status parcel.Status, from, to time.Time) (int64, error)

	// ListWithComments returns the entries with a non-blank comment, oldest first.
	ListWithComments(ctx context.Context) ([]parcel.HistoryEntry, error)
}
