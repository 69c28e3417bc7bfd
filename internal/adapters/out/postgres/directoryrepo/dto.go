// Package directoryrepo stores the thin directory of zones, delivery persons,
// senders, recipients and products the parcel core refers to.
package directoryrepo

import (
	"parceltracker/internal/core/domain/model/directory"
	"parceltracker/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ZoneDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"size:100;not null;uniqueIndex:idx_zones_name"`
	Description *string   `gorm:"type:text"`
}

func (ZoneDTO) TableName() string {
	return "zones"
}

// ContactDTO is the person columns of a recipient.
type ContactDTO struct {
	FirstName string `gorm:"size:100;not null"`
	LastName  string `gorm:"size:100;not null"`
	Phone     string `gorm:"size:20;not null"`
	Email     string `gorm:"size:100;not null"`
}

// UniqueContactDTO is ContactDTO for tables where phone and email identify the person.
type UniqueContactDTO struct {
	FirstName string `gorm:"size:100;not null"`
	LastName  string `gorm:"size:100;not null"`
	Phone     string `gorm:"size:20;not null;uniqueIndex"`
	Email     string `gorm:"size:100;not null;uniqueIndex"`
}

type DeliveryPersonDTO struct {
	ID      uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Contact UniqueContactDTO `gorm:"embedded"`
	ZoneID  *uuid.UUID       `gorm:"type:uuid;index"`
	Zone    *ZoneDTO         `gorm:"foreignKey:ZoneID;constraint:OnDelete:SET NULL"`
}

func (DeliveryPersonDTO) TableName() string {
	return "delivery_persons"
}

type SenderDTO struct {
	ID      uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Contact UniqueContactDTO `gorm:"embedded"`
	Address string           `gorm:"size:255;not null"`
}

func (SenderDTO) TableName() string {
	return "senders"
}

type RecipientDTO struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Contact ContactDTO `gorm:"embedded"`
	Address string     `gorm:"size:255;not null"`
}

func (RecipientDTO) TableName() string {
	return "recipients"
}

type ProductDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"size:100;not null;uniqueIndex:idx_products_name"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Description *string         `gorm:"type:text"`
}

func (ProductDTO) TableName() string {
	return "products"
}

// Models lists the directory tables in dependency order for migrations.
func Models() []any {
	return []any{&ZoneDTO{}, &DeliveryPersonDTO{}, &SenderDTO{}, &RecipientDTO{}, &ProductDTO{}}
}

func contactFromDomain(c directory.Contact) ContactDTO {
	return ContactDTO{FirstName: c.FirstName(), LastName: c.LastName(), Phone: c.Phone(), Email: c.Email()}
}

func contactToDomain(dto ContactDTO) (directory.Contact, error) {
	return directory.NewContact(dto.FirstName, dto.LastName, dto.Phone, dto.Email)
}

func zoneToDomain(dto ZoneDTO) (*directory.Zone, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return directory.NewZone(id, dto.Name, dto.Description)
}

func deliveryPersonToDomain(dto DeliveryPersonDTO) (*directory.DeliveryPerson, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	contact, err := contactToDomain(ContactDTO(dto.Contact))
	if err != nil {
		return nil, err
	}
	var zoneID *kernel.UUID
	if dto.ZoneID != nil {
		zID, zoneErr := kernel.UUIDFromBytes(dto.ZoneID[:])
		if zoneErr != nil {
			return nil, zoneErr
		}
		zoneID = &zID
	}
	return directory.NewDeliveryPerson(id, contact, zoneID)
}

func senderToDomain(dto SenderDTO) (*directory.SenderClient, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	contact, err := contactToDomain(ContactDTO(dto.Contact))
	if err != nil {
		return nil, err
	}
	return directory.NewSenderClient(id, contact, dto.Address)
}

func recipientToDomain(dto RecipientDTO) (*directory.Recipient, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	contact, err := contactToDomain(dto.Contact)
	if err != nil {
		return nil, err
	}
	return directory.NewRecipient(id, contact, dto.Address)
}

func productToDomain(dto ProductDTO) (*directory.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return directory.NewProduct(id, dto.Name, dto.Price, dto.Description)
}
