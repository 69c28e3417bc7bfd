// Package parcelrepo persists the Parcel aggregate and its line items and
// implements the parcel search.
package parcelrepo

import (
	"time"

	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ParcelDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Description      *string         `gorm:"size:255"`
	Weight           decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	Status           string          `gorm:"size:16;not null;index"`
	StatusChangedAt  time.Time       `gorm:"not null"`
	Priority         string          `gorm:"size:16;not null;index"`
	DestinationCity  string          `gorm:"size:100;not null;index"`
	CreatedAt        time.Time       `gorm:"not null;index"`
	SenderID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	RecipientID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	DeliveryPersonID *uuid.UUID      `gorm:"type:uuid;index"`
	ZoneID           *uuid.UUID      `gorm:"type:uuid;index"`
	Items            []LineItemDTO   `gorm:"foreignKey:ParcelID;constraint:OnDelete:CASCADE"`
}

func (ParcelDTO) TableName() string {
	return "parcels"
}

// LineItemDTO is a product carried by a parcel. Position keeps the order the
// items were given in.
type LineItemDTO struct {
	ParcelID  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position  int             `gorm:"primaryKey;autoIncrement:false"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (LineItemDTO) TableName() string {
	return "parcel_items"
}

// updatableColumns are the parcel columns an update may change.
var updatableColumns = []string{
	"description", "weight", "status", "status_changed_at", "priority",
	"destination_city", "delivery_person_id", "zone_id",
}

func fromDomain(p *parcel.Parcel) ParcelDTO {
	items := make([]LineItemDTO, 0, len(p.Items()))
	for i, item := range p.Items() {
		items = append(items, LineItemDTO{
			ParcelID:  p.ID().Bytes(),
			Position:  i,
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
		})
	}

	return ParcelDTO{
		ID:               p.ID().Bytes(),
		Description:      p.Description(),
		Weight:           p.Weight().Kilograms(),
		Status:           p.Status().String(),
		StatusChangedAt:  p.StatusChangedAt(),
		Priority:         p.Priority().String(),
		DestinationCity:  p.DestinationCity(),
		CreatedAt:        p.CreatedAt(),
		SenderID:         p.SenderID().Bytes(),
		RecipientID:      p.RecipientID().Bytes(),
		DeliveryPersonID: optionalBytes(p.DeliveryPersonID()),
		ZoneID:           optionalBytes(p.ZoneID()),
		Items:            items,
	}
}

func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	sender, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return nil, err
	}
	recipient, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}
	deliveryPerson, err := optionalUUID(dto.DeliveryPersonID)
	if err != nil {
		return nil, err
	}
	zone, err := optionalUUID(dto.ZoneID)
	if err != nil {
		return nil, err
	}
	weight, err := kernel.NewWeight(dto.Weight)
	if err != nil {
		return nil, err
	}
	status, err := parcel.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	priority, err := parcel.ParsePriority(dto.Priority)
	if err != nil {
		return nil, err
	}

	items := make([]parcel.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		item, itemErr := parcel.NewLineItem(productID, itemDTO.Quantity, itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return parcel.RestoreParcel(parcel.State{
		ID:               id,
		Description:      dto.Description,
		Weight:           weight,
		Status:           status,
		StatusChangedAt:  dto.StatusChangedAt,
		Priority:         priority,
		DestinationCity:  dto.DestinationCity,
		CreatedAt:        dto.CreatedAt,
		SenderID:         sender,
		RecipientID:      recipient,
		DeliveryPersonID: deliveryPerson,
		ZoneID:           zone,
		Items:            items,
	})
}

func optionalBytes(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
