package events

import (
	"context"
	"errors"

	"parceltracker/internal/core/domain/model/parcel"
	"parceltracker/internal/core/ports"
)

// Fanout hands the same events to every publisher. A failing publisher does
// not stop the others.
type Fanout []ports.EventPublisher

func (f Fanout) Publish(ctx context.Context, events ...parcel.Event) error {
	var failures []error
	for _, publisher := range f {
		if publisher == nil {
			continue
		}
		if err := publisher.Publish(ctx, events...); err != nil {
			failures = append(failures, err)
		}
	}
	return errors.Join(failures...)
}
