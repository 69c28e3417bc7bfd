package queries

import (
	"context"
	"errors"
	"strings"

	"parceltracker/internal/core/application/views"
	"parceltracker/internal/core/domain/model/directory"
	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/domain/model/parcel"
	"parceltracker/internal/core/ports"
	"parceltracker/internal/pkg/errs"
	"parceltracker/internal/pkg/guard"
)

var ErrGetParcelsByQueryIsNotConstructed = errors.New(
	"GetParcelsByQuery must be created via one of the NewParcelsBy* constructors",
)

// GetParcelsByQuery is a single-criterion parcel view returned as a plain list,
// newest first. Views keyed by a directory entity check that it exists.
type GetParcelsByQuery struct {
	criteria ports.ParcelCriteria
	// reference is the directory entity the view is keyed by, if any.
	reference *reference
	guard     guard.ConstructorGuard
}

type reference struct {
	kind      directory.Kind
	paramName string
	id        kernel.UUID
}

func newParcelsByQuery(criteria ports.ParcelCriteria, ref *reference) GetParcelsByQuery {
	return GetParcelsByQuery{criteria: criteria, reference: ref, guard: guard.NewConstructorGuard()}
}

func NewParcelsByStatusQuery(status parcel.Status) (GetParcelsByQuery, error) {
	if err := status.Validate(); err != nil {
		return GetParcelsByQuery{}, err
	}
	return newParcelsByQuery(ports.ParcelCriteria{Status: &status}, nil), nil
}

func NewParcelsByPriorityQuery(priority parcel.Priority) (GetParcelsByQuery, error) {
	if err := priority.Validate(); err != nil {
		return GetParcelsByQuery{}, err
	}
	return newParcelsByQuery(ports.ParcelCriteria{Priority: &priority}, nil), nil
}

// NewParcelsByCityQuery matches the whole city name, ignoring case.
func NewParcelsByCityQuery(city string) (GetParcelsByQuery, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return GetParcelsByQuery{}, errs.NewValueIsRequiredError("city")
	}
	return newParcelsByQuery(ports.ParcelCriteria{CityEquals: city}, nil), nil
}

func NewParcelsByZoneQuery(zoneID kernel.UUID) (GetParcelsByQuery, error) {
	if err := zoneID.Validate(); err != nil {
		return GetParcelsByQuery{}, err
	}
	return newParcelsByQuery(ports.ParcelCriteria{ZoneID: &zoneID},
		&reference{kind: directory.KindZone, paramName: "zoneId", id: zoneID}), nil
}

func NewParcelsBySenderQuery(senderID kernel.UUID) (GetParcelsByQuery, error) {
	if err := senderID.Validate(); err != nil {
		return GetParcelsByQuery{}, err
	}
	return newParcelsByQuery(ports.ParcelCriteria{SenderID: &senderID},
		&reference{kind: directory.KindSender, paramName: "senderId", id: senderID}), nil
}

func NewParcelsByRecipientQuery(recipientID kernel.UUID) (GetParcelsByQuery, error) {
	if err := recipientID.Validate(); err != nil {
		return GetParcelsByQuery{}, err
	}
	return newParcelsByQuery(ports.ParcelCriteria{RecipientID: &recipientID},
		&reference{kind: directory.KindRecipient, paramName: "recipientId", id: recipientID}), nil
}

func NewParcelsByDeliveryPersonQuery(deliveryPersonID kernel.UUID) (GetParcelsByQuery, error) {
	if err := deliveryPersonID.Validate(); err != nil {
		return GetParcelsByQuery{}, err
	}
	return newParcelsByQuery(ports.ParcelCriteria{DeliveryPersonID: &deliveryPersonID},
		&reference{kind: directory.KindDeliveryPerson, paramName: "deliveryPersonId", id: deliveryPersonID}), nil
}

// NewUnassignedParcelsQuery selects parcels without delivery person.
func NewUnassignedParcelsQuery() GetParcelsByQuery {
	return newParcelsByQuery(ports.ParcelCriteria{UnassignedOnly: true}, nil)
}

// NewHighPriorityPendingParcelsQuery selects URGENT and EXPRESS parcels not yet delivered.
func NewHighPriorityPendingParcelsQuery() GetParcelsByQuery {
	return newParcelsByQuery(ports.HighPriorityPending(), nil)
}

func (q GetParcelsByQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelsByQueryIsNotConstructed)
}

func (q GetParcelsByQuery) Criteria() ports.ParcelCriteria {
	return q.criteria
}

type GetParcelsByQueryHandler struct {
	parcels   ports.ParcelRepository
	directory ports.Directory
}

func NewGetParcelsByQueryHandler(parcels ports.ParcelRepository, directory ports.Directory) GetParcelsByQueryHandler {
	return GetParcelsByQueryHandler{parcels: parcels, directory: directory}
}

// Handle fails with NotFound when the keyed directory entity does not exist,
// even if no parcel would match.
func (h GetParcelsByQueryHandler) Handle(ctx context.Context, query GetParcelsByQuery) ([]views.ParcelSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if ref := query.reference; ref != nil {
		if err := ports.RequireEntity(ctx, h.directory, ref.kind, ref.paramName, ref.id); err != nil {
			return nil, err
		}
	}

	parcels, err := h.parcels.Find(ctx, query.Criteria())
	if err != nil {
		return nil, err
	}
	return views.SummarizeAll(parcels), nil
}
