package ports

import (
	"context"

	"parceltracker/internal/core/domain/model/parcel"
)

// EventPublisher delivers parcel domain events to the outside world. It is
// called after the transaction that produced the events has committed.
type EventPublisher interface {
	Publish(ctx context.Context, events ...parcel.Event) error
}
