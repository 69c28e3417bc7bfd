// Package ports defines the contracts between the parcel core and its
// infrastructure: persistence, the entity directory and event publishing.
package ports

import (
	"context"

	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
// Line items are stored with their parcel; history entries go through
// HistoryRepository.
type ParcelRepository interface {
	// Add persists a new parcel with its line items.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists the mutable fields of an existing parcel.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Delete removes the parcel together with its line items and history.
	Delete(ctx context.Context, aggregate *parcel.Parcel) error

	// Get returns errs.ObjectNotFoundError when no parcel has the id.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// Search returns one page of the parcels matching every criterion.
	Search(ctx context.Context, criteria ParcelCriteria, page PageRequest) (Page[*parcel.Parcel], error)

	// Find returns every matching parcel, newest first.
	Find(ctx context.Context, criteria ParcelCriteria) ([]*parcel.Parcel, error)

	Count(ctx context.Context, criteria ParcelCriteria) (int64, error)
}
