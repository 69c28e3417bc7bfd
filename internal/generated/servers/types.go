package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
	decimal "github.com/shopspring/decimal"
)

const (
	BearerAuthScopes = "bearerAuth.Scopes"
)

// Defines values for GroupDimension.
const (
	GroupDimensionCity     GroupDimension = "city"
	GroupDimensionPriority GroupDimension = "priority"
	GroupDimensionStatus   GroupDimension = "status"
	GroupDimensionZone     GroupDimension = "zone"
)

// Defines values for ParcelPriority.
const (
	ParcelPriorityEXPRESS ParcelPriority = "EXPRESS"
	ParcelPriorityNORMAL  ParcelPriority = "NORMAL"
	ParcelPriorityURGENT  ParcelPriority = "URGENT"
)

// Defines values for ParcelStatus.
const (
	ParcelStatusCOLLECTED ParcelStatus = "COLLECTED"
	ParcelStatusCREATED   ParcelStatus = "CREATED"
	ParcelStatusDELIVERED ParcelStatus = "DELIVERED"
	ParcelStatusINSTOCK   ParcelStatus = "IN_STOCK"
	ParcelStatusINTRANSIT ParcelStatus = "IN_TRANSIT"
)

// Count defines model for Count.
type Count struct {
	Count int64 `json:"count"`
}

// CountByLabel defines model for CountByLabel.
type CountByLabel map[string]int

// Decimal defines model for Decimal.
type Decimal = decimal.Decimal

// DeliveryPerson defines model for DeliveryPerson.
type DeliveryPerson struct {
	Email     string              `json:"email"`
	FirstName string              `json:"firstName"`
	Id        openapi_types.UUID  `json:"id"`
	LastName  string              `json:"lastName"`
	Phone     string              `json:"phone"`
	ZoneId    *openapi_types.UUID `json:"zoneId,omitempty"`
}

// DeliveryPersonStatistics defines model for DeliveryPersonStatistics.
type DeliveryPersonStatistics struct {
	AverageWeight    Decimal            `json:"averageWeight"`
	DeliveredParcels int                `json:"deliveredParcels"`
	DeliveryPersonId openapi_types.UUID `json:"deliveryPersonId"`
	DeliveryRate     Decimal            `json:"deliveryRate"`
	Name             string             `json:"name"`
	ParcelsByStatus  CountByLabel       `json:"parcelsByStatus"`
	TotalParcels     int                `json:"totalParcels"`
	TotalWeight      Decimal            `json:"totalWeight"`
	ZoneName         string             `json:"zoneName"`
}

// DirectoryCounts defines model for DirectoryCounts.
type DirectoryCounts struct {
	DeliveryPersons int `json:"deliveryPersons"`
	Products        int `json:"products"`
	Recipients      int `json:"recipients"`
	Senders         int `json:"senders"`
	Zones           int `json:"zones"`
}

// Error defines model for Error.
type Error struct {
	Code       int          `json:"code"`
	Message    string       `json:"message"`
	Violations *[]Violation `json:"violations,omitempty"`
}

// GlobalStatistics defines model for GlobalStatistics.
type GlobalStatistics struct {
	AverageParcelsPerDeliveryPerson Decimal         `json:"averageParcelsPerDeliveryPerson"`
	AverageWeight                   Decimal         `json:"averageWeight"`
	Directory                       DirectoryCounts `json:"directory"`
	HighPriorityPending             int             `json:"highPriorityPending"`
	ParcelsByPriority               CountByLabel    `json:"parcelsByPriority"`
	ParcelsByStatus                 CountByLabel    `json:"parcelsByStatus"`
	TotalParcels                    int             `json:"totalParcels"`
	TotalWeight                     Decimal         `json:"totalWeight"`
	UnassignedParcels               int             `json:"unassignedParcels"`
}

// GroupCounts defines model for GroupCounts.
type GroupCounts map[string]int64

// GroupDimension defines model for GroupDimension.
type GroupDimension string

// HistoryEntry defines model for HistoryEntry.
type HistoryEntry struct {
	Comment   *string            `json:"comment,omitempty"`
	Id        openapi_types.UUID `json:"id"`
	ParcelId  openapi_types.UUID `json:"parcelId"`
	Status    ParcelStatus       `json:"status"`
	Timestamp time.Time          `json:"timestamp"`
}

// LineItem defines model for LineItem.
type LineItem struct {
	ProductId   openapi_types.UUID `json:"productId"`
	ProductName string             `json:"productName"`
	Quantity    int                `json:"quantity"`
	Subtotal    Decimal            `json:"subtotal"`
	UnitPrice   Decimal            `json:"unitPrice"`
}

// NewDeliveryPerson defines model for NewDeliveryPerson.
type NewDeliveryPerson struct {
	Email     string              `json:"email" validate:"required,email"`
	FirstName string              `json:"firstName" validate:"required"`
	LastName  string              `json:"lastName" validate:"required"`
	Phone     string              `json:"phone" validate:"required"`
	ZoneId    *openapi_types.UUID `json:"zoneId,omitempty"`
}

// NewHistoryEntry defines model for NewHistoryEntry.
type NewHistoryEntry struct {
	Comment  *string            `json:"comment,omitempty"`
	ParcelId openapi_types.UUID `json:"parcelId" validate:"required"`
	Status   ParcelStatus       `json:"status"`
}

// NewLineItem defines model for NewLineItem.
type NewLineItem struct {
	ProductId openapi_types.UUID `json:"productId" validate:"required"`
	Quantity  int                `json:"quantity" validate:"gte=1"`
	UnitPrice *Decimal           `json:"unitPrice,omitempty"`
}

// NewParcel defines model for NewParcel.
type NewParcel struct {
	Description     *string            `json:"description,omitempty" validate:"omitempty,max=255"`
	DestinationCity string             `json:"destinationCity" validate:"required,max=100"`
	Items           *[]NewLineItem     `json:"items,omitempty" validate:"omitempty,dive"`
	Priority        ParcelPriority     `json:"priority"`
	RecipientId     openapi_types.UUID `json:"recipientId" validate:"required"`
	SenderId        openapi_types.UUID `json:"senderId" validate:"required"`
	Weight          Decimal            `json:"weight"`
}

// NewParty defines model for NewParty.
type NewParty struct {
	Address   string `json:"address" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
}

// NewProduct defines model for NewProduct.
type NewProduct struct {
	Description *string `json:"description,omitempty"`
	Name        string  `json:"name" validate:"required,max=100"`
	Price       Decimal `json:"price"`
}

// NewZone defines model for NewZone.
type NewZone struct {
	Description *string `json:"description,omitempty"`
	Name        string  `json:"name" validate:"required,max=100"`
}

// Parcel defines model for Parcel.
type Parcel struct {
	CreatedAt       time.Time          `json:"createdAt"`
	DeliveryPerson  *Ref               `json:"deliveryPerson,omitempty"`
	Description     *string            `json:"description,omitempty"`
	DestinationCity string             `json:"destinationCity"`
	Id              openapi_types.UUID `json:"id"`
	Items           []LineItem         `json:"items"`
	Priority        ParcelPriority     `json:"priority"`
	Recipient       Ref                `json:"recipient"`
	Sender          Ref                `json:"sender"`
	Status          ParcelStatus       `json:"status"`
	TotalValue      Decimal            `json:"totalValue"`
	Weight          Decimal            `json:"weight"`
	Zone            *Ref               `json:"zone,omitempty"`
}

// ParcelPage defines model for ParcelPage.
type ParcelPage struct {
	Items         []ParcelSummary `json:"items"`
	Page          int             `json:"page"`
	Size          int             `json:"size"`
	TotalElements int64           `json:"totalElements"`
	TotalPages    int             `json:"totalPages"`
}

// ParcelPatch defines model for ParcelPatch.
type ParcelPatch struct {
	DeliveryPersonId *openapi_types.UUID `json:"deliveryPersonId,omitempty"`
	Description      *string             `json:"description,omitempty" validate:"omitempty,max=255"`
	DestinationCity  *string             `json:"destinationCity,omitempty" validate:"omitempty,max=100"`
	Priority         *ParcelPriority     `json:"priority,omitempty"`
	Status           *ParcelStatus       `json:"status,omitempty"`
	Weight           *Decimal            `json:"weight,omitempty"`
	ZoneId           *openapi_types.UUID `json:"zoneId,omitempty"`
}

// ParcelPriority defines model for ParcelPriority.
type ParcelPriority string

// ParcelStatus defines model for ParcelStatus.
type ParcelStatus string

// ParcelSummary defines model for ParcelSummary.
type ParcelSummary struct {
	CreatedAt        time.Time           `json:"createdAt"`
	DeliveryPersonId *openapi_types.UUID `json:"deliveryPersonId,omitempty"`
	Description      *string             `json:"description,omitempty"`
	DestinationCity  string              `json:"destinationCity"`
	Id               openapi_types.UUID  `json:"id"`
	Priority         ParcelPriority      `json:"priority"`
	RecipientId      openapi_types.UUID  `json:"recipientId"`
	SenderId         openapi_types.UUID  `json:"senderId"`
	Status           ParcelStatus        `json:"status"`
	Weight           Decimal             `json:"weight"`
	ZoneId           *openapi_types.UUID `json:"zoneId,omitempty"`
}

// Party defines model for Party.
type Party struct {
	Address   string             `json:"address"`
	Email     string             `json:"email"`
	FirstName string             `json:"firstName"`
	Id        openapi_types.UUID `json:"id"`
	LastName  string             `json:"lastName"`
	Phone     string             `json:"phone"`
}

// Product defines model for Product.
type Product struct {
	Description *string            `json:"description,omitempty"`
	Id          openapi_types.UUID `json:"id"`
	Name        string             `json:"name"`
	Price       Decimal            `json:"price"`
}

// Ref defines model for Ref.
type Ref struct {
	Id   openapi_types.UUID `json:"id"`
	Name string             `json:"name"`
}

// StatusUpdate defines model for StatusUpdate.
type StatusUpdate struct {
	Comment *string      `json:"comment,omitempty"`
	Status  ParcelStatus `json:"status"`
}

// Tracking defines model for Tracking.
type Tracking struct {
	History []HistoryEntry `json:"history"`
	Parcel  Parcel         `json:"parcel"`
}

// Violation defines model for Violation.
type Violation struct {
	Field   *string `json:"field,omitempty"`
	Message string  `json:"message"`
}

// Zone defines model for Zone.
type Zone struct {
	Description *string            `json:"description,omitempty"`
	Id          openapi_types.UUID `json:"id"`
	Name        string             `json:"name"`
}

// ZoneStatistics defines model for ZoneStatistics.
type ZoneStatistics struct {
	AverageParcelsPerDeliveryPerson Decimal            `json:"averageParcelsPerDeliveryPerson"`
	AverageWeight                   Decimal            `json:"averageWeight"`
	DeliveryPersonCount             int                `json:"deliveryPersonCount"`
	ParcelsByPriority               CountByLabel       `json:"parcelsByPriority"`
	ParcelsByStatus                 CountByLabel       `json:"parcelsByStatus"`
	TotalParcels                    int                `json:"totalParcels"`
	TotalWeight                     Decimal            `json:"totalWeight"`
	ZoneId                          openapi_types.UUID `json:"zoneId"`
	ZoneName                        string             `json:"zoneName"`
}

// DeliveryPersonId defines model for DeliveryPersonId.
type DeliveryPersonId = openapi_types.UUID

// EntryId defines model for EntryId.
type EntryId = openapi_types.UUID

// ParcelId defines model for ParcelId.
type ParcelId = openapi_types.UUID

// ZoneId defines model for ZoneId.
type ZoneId = openapi_types.UUID

// ListParcelsParams defines parameters for ListParcels.
type ListParcelsParams struct {
	// Page 0-based page number
	Page *int `form:"page,omitempty" json:"page,omitempty"`
	Size *int `form:"size,omitempty" json:"size,omitempty"`

	// Sort field[,asc|desc] with field one of createdAt, weight, priority, status, destinationCity
	Sort *string `form:"sort,omitempty" json:"sort,omitempty"`
}

// CountParcelsParams defines parameters for CountParcels.
type CountParcelsParams struct {
	Status           *ParcelStatus       `form:"status,omitempty" json:"status,omitempty"`
	Priority         *ParcelPriority     `form:"priority,omitempty" json:"priority,omitempty"`
	ZoneId           *openapi_types.UUID `form:"zoneId,omitempty" json:"zoneId,omitempty"`
	DeliveryPersonId *openapi_types.UUID `form:"deliveryPersonId,omitempty" json:"deliveryPersonId,omitempty"`
	SenderId         *openapi_types.UUID `form:"senderId,omitempty" json:"senderId,omitempty"`
	RecipientId      *openapi_types.UUID `form:"recipientId,omitempty" json:"recipientId,omitempty"`

	// City Case-insensitive substring of the destination city
	City           *string `form:"city,omitempty" json:"city,omitempty"`
	UnassignedOnly *bool   `form:"unassignedOnly,omitempty" json:"unassignedOnly,omitempty"`
}

// SearchParcelsParams defines parameters for SearchParcels.
type SearchParcelsParams struct {
	Status           *ParcelStatus       `form:"status,omitempty" json:"status,omitempty"`
	Priority         *ParcelPriority     `form:"priority,omitempty" json:"priority,omitempty"`
	ZoneId           *openapi_types.UUID `form:"zoneId,omitempty" json:"zoneId,omitempty"`
	DeliveryPersonId *openapi_types.UUID `form:"deliveryPersonId,omitempty" json:"deliveryPersonId,omitempty"`
	SenderId         *openapi_types.UUID `form:"senderId,omitempty" json:"senderId,omitempty"`
	RecipientId      *openapi_types.UUID `form:"recipientId,omitempty" json:"recipientId,omitempty"`

	// City Case-insensitive substring of the destination city
	City           *string `form:"city,omitempty" json:"city,omitempty"`
	UnassignedOnly *bool   `form:"unassignedOnly,omitempty" json:"unassignedOnly,omitempty"`

	// Page 0-based page number
	Page *int `form:"page,omitempty" json:"page,omitempty"`
	Size *int `form:"size,omitempty" json:"size,omitempty"`

	// Sort field[,asc|desc] with field one of createdAt, weight, priority, status, destinationCity
	Sort *string `form:"sort,omitempty" json:"sort,omitempty"`
}

// TrackParcelParams defines parameters for TrackParcel.
type TrackParcelParams struct {
	Email string `form:"email" json:"email"`
}

// CreateDeliveryPersonJSONRequestBody defines body for CreateDeliveryPerson for application/json ContentType.
type CreateDeliveryPersonJSONRequestBody = NewDeliveryPerson

// CreateHistoryEntryJSONRequestBody defines body for CreateHistoryEntry for application/json ContentType.
type CreateHistoryEntryJSONRequestBody = NewHistoryEntry

// CreateParcelJSONRequestBody defines body for CreateParcel for application/json ContentType.
type CreateParcelJSONRequestBody = NewParcel

// UpdateParcelJSONRequestBody defines body for UpdateParcel for application/json ContentType.
type UpdateParcelJSONRequestBody = ParcelPatch

// UpdateParcelStatusJSONRequestBody defines body for UpdateParcelStatus for application/json ContentType.
type UpdateParcelStatusJSONRequestBody = StatusUpdate

// CreateProductJSONRequestBody defines body for CreateProduct for application/json ContentType.
type CreateProductJSONRequestBody = NewProduct

// CreateRecipientJSONRequestBody defines body for CreateRecipient for application/json ContentType.
type CreateRecipientJSONRequestBody = NewParty

// CreateSenderJSONRequestBody defines body for CreateSender for application/json ContentType.
type CreateSenderJSONRequestBody = NewParty

// CreateZoneJSONRequestBody defines body for CreateZone for application/json ContentType.
type CreateZoneJSONRequestBody = NewZone
