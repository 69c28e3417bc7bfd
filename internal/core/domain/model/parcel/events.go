package parcel

import (
	"time"

	"parceltracker/internal/core/domain/model/kernel"
)

// Event is a fact recorded by the Parcel aggregate. Events are published by the
// unit of work after the surrounding transaction commits.
type Event interface {
	EventName() string
	AggregateID() kernel.UUID
	OccurredAt() time.Time
}

const (
	EventCreated       = "parcel.created"
	EventStatusChanged = "parcel.status_changed"
	EventDeleted       = "parcel.deleted"
)

// CreatedEvent is raised once per parcel, when it is first stored.
type CreatedEvent struct {
	ParcelID kernel.UUID
	Priority Priority
	Weight   kernel.Weight
	At       time.Time
}

func (e CreatedEvent) EventName() string        { return EventCreated }
func (e CreatedEvent) AggregateID() kernel.UUID { return e.ParcelID }
func (e CreatedEvent) OccurredAt() time.Time    { return e.At }

// StatusChangedEvent is raised for every appended history entry whose status
// differs from the previous one.
type StatusChangedEvent struct {
	ParcelID kernel.UUID
	From     Status
	To       Status
	Comment  *string
	At       time.Time
}

func (e StatusChangedEvent) EventName() string        { return EventStatusChanged }
func (e StatusChangedEvent) AggregateID() kernel.UUID { return e.ParcelID }
func (e StatusChangedEvent) OccurredAt() time.Time    { return e.At }

// DeletedEvent carries only the id; the parcel and its history are gone.
type DeletedEvent struct {
	ParcelID kernel.UUID
	At       time.Time
}

func (e DeletedEvent) EventName() string        { return EventDeleted }
func (e DeletedEvent) AggregateID() kernel.UUID { return e.ParcelID }
func (e DeletedEvent) OccurredAt() time.Time    { return e.At }
