package directory

import (
	"errors"

	"parceltracker/internal/core/domain/model/kernel"
)

// DeliveryPerson carries parcels within an optional zone. Phone and email are unique.
type DeliveryPerson struct {
	id      kernel.UUID
	contact Contact
	zoneID  *kernel.UUID
}

func NewDeliveryPerson(id kernel.UUID, contact Contact, zoneID *kernel.UUID) (*DeliveryPerson, error) {
	if err := errors.Join(requireID(id), requireContact(contact)); err != nil {
		return nil, err
	}
	if zoneID != nil && zoneID.Validate() != nil {
		zoneID = nil
	}
	return &DeliveryPerson{id: id, contact: contact, zoneID: zoneID}, nil
}

func (d *DeliveryPerson) ID() kernel.UUID     { return d.id }
func (d *DeliveryPerson) Kind() Kind          { return KindDeliveryPerson }
func (d *DeliveryPerson) DisplayName() string { return d.contact.FullName() }
func (d *DeliveryPerson) Contact() Contact    { return d.contact }

// ZoneID returns nil when the person has no zone.
func (d *DeliveryPerson) ZoneID() *kernel.UUID { return d.zoneID }
