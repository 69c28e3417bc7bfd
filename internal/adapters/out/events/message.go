package events

import (
	"strings"
	"time"

	"parceltracker/internal/core/domain/model/parcel"
)

const subjectPrefix = "parcels."

// Message is the JSON body of a published event.
type Message struct {
	Event      string    `json:"event"`
	ParcelID   string    `json:"parcelId"`
	OccurredAt time.Time `json:"occurredAt"`
	Priority   string    `json:"priority,omitempty"`
	Weight     string    `json:"weight,omitempty"`
	From       string    `json:"from,omitempty"`
	To         string    `json:"to,omitempty"`
	Comment    *string   `json:"comment,omitempty"`
}

func newMessage(event parcel.Event) Message {
	msg := Message{
		Event:      event.EventName(),
		ParcelID:   event.AggregateID().String(),
		OccurredAt: event.OccurredAt().UTC(),
	}
	switch e := event.(type) {
	case parcel.CreatedEvent:
		msg.Priority = e.Priority.String()
		msg.Weight = e.Weight.Kilograms().StringFixed(2)
	case parcel.StatusChangedEvent:
		msg.From = e.From.String()
		msg.To = e.To.String()
		msg.Comment = e.Comment
	}
	return msg
}

// Subject maps parcel.created to parcels.created.
func Subject(event parcel.Event) string {
	return subjectPrefix + strings.TrimPrefix(event.EventName(), "parcel.")
}
