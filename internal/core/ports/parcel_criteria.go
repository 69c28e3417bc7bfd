package ports

import (
	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/domain/model/parcel"
)

// ParcelCriteria is a conjunction of optional parcel filters. Nil pointers,
// empty strings and empty slices impose no constraint; the zero value matches
// every parcel.
type ParcelCriteria struct {
	Status           *parcel.Status
	Priority         *parcel.Priority
	ZoneID           *kernel.UUID
	DeliveryPersonID *kernel.UUID
	SenderID         *kernel.UUID
	RecipientID      *kernel.UUID

	// CityContains matches a case-insensitive substring of the destination city.
	CityContains string
	// CityEquals matches the whole destination city, ignoring case.
	CityEquals string

	// UnassignedOnly keeps parcels without delivery person. It is combined with
	// DeliveryPersonID like any other criterion, so setting both matches nothing.
	UnassignedOnly bool

	PriorityIn []parcel.Priority
	StatusNot  *parcel.Status
}

// HighPriorityPending selects URGENT and EXPRESS parcels that are not delivered.
func HighPriorityPending() ParcelCriteria {
	delivered := parcel.Delivered
	return ParcelCriteria{PriorityIn: parcel.HighPriorities(), StatusNot: &delivered}
}
