package http

import (
	"fmt"

	"parceltracker/internal/core/application/usecases/queries"
	"parceltracker/internal/core/application/views"
	"parceltracker/internal/core/domain/model/directory"
	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/domain/model/parcel"
	"parceltracker/internal/core/domain/services"
	"parceltracker/internal/core/ports"
	"parceltracker/internal/generated/servers"
	"parceltracker/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Path parameters that do not parse are a malformed request, not a
// validation failure of a resource.

func pathUUID(name string, id openapi_types.UUID) (kernel.UUID, error) {
	out, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return kernel.UUID{}, errs.NewBadRequestErrorWithCause(fmt.Sprintf("invalid %s", name), err)
	}
	return out, nil
}

func pathStatus(s servers.ParcelStatus) (parcel.Status, error) {
	status, err := parcel.ParseStatus(string(s))
	if err != nil {
		return parcel.UnknownStatus, errs.NewBadRequestErrorWithCause("invalid status", err)
	}
	return status, nil
}

func pathPriority(p servers.ParcelPriority) (parcel.Priority, error) {
	priority, err := parcel.ParsePriority(string(p))
	if err != nil {
		return parcel.UnknownPriority, errs.NewBadRequestErrorWithCause("invalid priority", err)
	}
	return priority, nil
}

func optionalUUID(name string, id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	out, err := pathUUID(name, *id)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// bodyStatus keeps the validation semantics of an unknown enum inside a body.
func bodyStatus(s servers.ParcelStatus) parcel.Status {
	status, err := parcel.ParseStatus(string(s))
	if err != nil {
		return parcel.UnknownStatus
	}
	return status
}

func bodyPriority(p servers.ParcelPriority) parcel.Priority {
	priority, err := parcel.ParsePriority(string(p))
	if err != nil {
		return parcel.UnknownPriority
	}
	return priority
}

// bodyUUID maps the zero UUID to the zero kernel.UUID so that the command
// constructor reports the field as required.
func bodyUUID(id openapi_types.UUID) kernel.UUID {
	out, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return kernel.UUID{}
	}
	return out
}

type criteriaParams struct {
	Status           *servers.ParcelStatus
	Priority         *servers.ParcelPriority
	ZoneId           *openapi_types.UUID
	DeliveryPersonId *openapi_types.UUID
	SenderId         *openapi_types.UUID
	RecipientId      *openapi_types.UUID
	City             *string
	UnassignedOnly   *bool
}

func (p criteriaParams) criteria() (ports.ParcelCriteria, error) {
	var criteria ports.ParcelCriteria
	var err error

	if p.Status != nil {
		status, statusErr := pathStatus(*p.Status)
		if statusErr != nil {
			return ports.ParcelCriteria{}, statusErr
		}
		criteria.Status = &status
	}
	if p.Priority != nil {
		priority, priorityErr := pathPriority(*p.Priority)
		if priorityErr != nil {
			return ports.ParcelCriteria{}, priorityErr
		}
		criteria.Priority = &priority
	}
	if criteria.ZoneID, err = optionalUUID("zoneId", p.ZoneId); err != nil {
		return ports.ParcelCriteria{}, err
	}
	if criteria.DeliveryPersonID, err = optionalUUID("deliveryPersonId", p.DeliveryPersonId); err != nil {
		return ports.ParcelCriteria{}, err
	}
	if criteria.SenderID, err = optionalUUID("senderId", p.SenderId); err != nil {
		return ports.ParcelCriteria{}, err
	}
	if criteria.RecipientID, err = optionalUUID("recipientId", p.RecipientId); err != nil {
		return ports.ParcelCriteria{}, err
	}
	if p.City != nil {
		criteria.CityContains = *p.City
	}
	if p.UnassignedOnly != nil {
		criteria.UnassignedOnly = *p.UnassignedOnly
	}
	return criteria, nil
}

func pageRequest(page, size *int, sort *string) (ports.PageRequest, error) {
	var number, pageSize int
	if page != nil {
		number = *page
	}
	if size != nil {
		pageSize = *size
		if pageSize == 0 {
			return ports.PageRequest{}, errs.NewValueIsOutOfRangeError("size", 0, 1, ports.MaxPageSize)
		}
	}
	order := ports.DefaultSort
	if sort != nil {
		parsed, err := ports.ParseSort(*sort)
		if err != nil {
			return ports.PageRequest{}, err
		}
		order = parsed
	}
	return ports.NewPageRequest(number, pageSize, order)
}

func toUUID(id kernel.UUID) openapi_types.UUID {
	return id.Bytes()
}

func toOptionalUUID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	out := id.Bytes()
	return &out
}

func toParcelSummary(s views.ParcelSummary) servers.ParcelSummary {
	return servers.ParcelSummary{
		Id:               toUUID(s.ID),
		Description:      s.Description,
		Weight:           s.Weight,
		Status:           servers.ParcelStatus(s.Status.String()),
		Priority:         servers.ParcelPriority(s.Priority.String()),
		DestinationCity:  s.DestinationCity,
		CreatedAt:        s.CreatedAt,
		SenderId:         toUUID(s.SenderID),
		RecipientId:      toUUID(s.RecipientID),
		DeliveryPersonId: toOptionalUUID(s.DeliveryPersonID),
		ZoneId:           toOptionalUUID(s.ZoneID),
	}
}

func toParcelSummaries(summaries []views.ParcelSummary) []servers.ParcelSummary {
	out := make([]servers.ParcelSummary, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, toParcelSummary(s))
	}
	return out
}

func toParcelPage(page ports.Page[views.ParcelSummary]) servers.ParcelPage {
	return servers.ParcelPage{
		Items:         toParcelSummaries(page.Items),
		Page:          page.Number,
		Size:          page.Size,
		TotalElements: page.Total,
		TotalPages:    page.TotalPages(),
	}
}

func toRef(r views.Ref) servers.Ref {
	return servers.Ref{Id: toUUID(r.ID), Name: r.Name}
}

func toOptionalRef(r *views.Ref) *servers.Ref {
	if r == nil {
		return nil
	}
	out := toRef(*r)
	return &out
}

func toParcel(v views.ParcelView) servers.Parcel {
	items := make([]servers.LineItem, 0, len(v.Items))
	for _, item := range v.Items {
		items = append(items, servers.LineItem{
			ProductId:   toUUID(item.ProductID),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal,
		})
	}

	return servers.Parcel{
		Id:              toUUID(v.ID),
		Description:     v.Description,
		Weight:          v.Weight,
		Status:          servers.ParcelStatus(v.Status.String()),
		Priority:        servers.ParcelPriority(v.Priority.String()),
		DestinationCity: v.DestinationCity,
		CreatedAt:       v.CreatedAt,
		Sender:          toRef(v.Sender),
		Recipient:       toRef(v.Recipient),
		DeliveryPerson:  toOptionalRef(v.DeliveryPerson),
		Zone:            toOptionalRef(v.Zone),
		Items:           items,
		TotalValue:      v.TotalValue,
	}
}

func toHistoryEntry(v views.HistoryEntryView) servers.HistoryEntry {
	return servers.HistoryEntry{
		Id:        toUUID(v.ID),
		ParcelId:  toUUID(v.ParcelID),
		Status:    servers.ParcelStatus(v.Status.String()),
		Timestamp: v.Timestamp,
		Comment:   v.Comment,
	}
}

func toHistoryEntries(entries []views.HistoryEntryView) []servers.HistoryEntry {
	out := make([]servers.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, toHistoryEntry(e))
	}
	return out
}

func toTracking(v queries.TrackingView) servers.Tracking {
	return servers.Tracking{
		Parcel:  toParcel(v.Parcel),
		History: toHistoryEntries(v.Timeline),
	}
}

func statusCounts(counts map[parcel.Status]int) servers.CountByLabel {
	out := make(servers.CountByLabel, len(counts))
	for status, n := range counts {
		out[status.String()] = n
	}
	return out
}

func priorityCounts(counts map[parcel.Priority]int) servers.CountByLabel {
	out := make(servers.CountByLabel, len(counts))
	for priority, n := range counts {
		out[priority.String()] = n
	}
	return out
}

func toGlobalStatistics(s services.GlobalStats) servers.GlobalStatistics {
	return servers.GlobalStatistics{
		TotalParcels:                    s.TotalParcels,
		TotalWeight:                     s.TotalWeight,
		AverageWeight:                   s.AverageWeight,
		ParcelsByStatus:                 statusCounts(s.ParcelsByStatus),
		ParcelsByPriority:               priorityCounts(s.ParcelsByPriority),
		UnassignedParcels:               s.UnassignedParcels,
		HighPriorityPending:             s.HighPriorityPending,
		AverageParcelsPerDeliveryPerson: s.AverageParcelsPerDeliveryPerson,
		Directory: servers.DirectoryCounts{
			Zones:           s.Directory.Zones,
			DeliveryPersons: s.Directory.DeliveryPersons,
			Senders:         s.Directory.Senders,
			Recipients:      s.Directory.Recipients,
			Products:        s.Directory.Products,
		},
	}
}

func toDeliveryPersonStatistics(s services.DeliveryPersonStats) servers.DeliveryPersonStatistics {
	return servers.DeliveryPersonStatistics{
		DeliveryPersonId: toUUID(s.DeliveryPersonID),
		Name:             s.Name,
		ZoneName:         s.ZoneName,
		TotalParcels:     s.TotalParcels,
		TotalWeight:      s.TotalWeight,
		AverageWeight:    s.AverageWeight,
		ParcelsByStatus:  statusCounts(s.ParcelsByStatus),
		DeliveredParcels: s.DeliveredParcels,
		DeliveryRate:     s.DeliveryRate,
	}
}

func toZoneStatistics(s services.ZoneStats) servers.ZoneStatistics {
	return servers.ZoneStatistics{
		ZoneId:                          toUUID(s.ZoneID),
		ZoneName:                        s.ZoneName,
		TotalParcels:                    s.TotalParcels,
		TotalWeight:                     s.TotalWeight,
		AverageWeight:                   s.AverageWeight,
		ParcelsByStatus:                 statusCounts(s.ParcelsByStatus),
		ParcelsByPriority:               priorityCounts(s.ParcelsByPriority),
		DeliveryPersonCount:             s.DeliveryPersonCount,
		AverageParcelsPerDeliveryPerson: s.AverageParcelsPerDeliveryPerson,
	}
}

func toZone(z *directory.Zone) servers.Zone {
	return servers.Zone{Id: toUUID(z.ID()), Name: z.Name(), Description: z.Description()}
}

func toDeliveryPerson(d *directory.DeliveryPerson) servers.DeliveryPerson {
	c := d.Contact()
	return servers.DeliveryPerson{
		Id:        toUUID(d.ID()),
		FirstName: c.FirstName(),
		LastName:  c.LastName(),
		Phone:     c.Phone(),
		Email:     c.Email(),
		ZoneId:    toOptionalUUID(d.ZoneID()),
	}
}

func toParty(id kernel.UUID, c directory.Contact, address string) servers.Party {
	return servers.Party{
		Id:        toUUID(id),
		FirstName: c.FirstName(),
		LastName:  c.LastName(),
		Phone:     c.Phone(),
		Email:     c.Email(),
		Address:   address,
	}
}

func toProduct(p *directory.Product) servers.Product {
	return servers.Product{Id: toUUID(p.ID()), Name: p.Name(), Price: p.Price(), Description: p.Description()}
}

// collect maps the entities of one kind, skipping anything of another type.
func collect[E directory.Entity, T any](entities []directory.Entity, convert func(E) T) []T {
	out := make([]T, 0, len(entities))
	for _, entity := range entities {
		if e, ok := entity.(E); ok {
			out = append(out, convert(e))
		}
	}
	return out
}
