package queries

import (
	"context"
	"errors"

	"parceltracker/internal/core/domain/model/directory"
	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/domain/model/parcel"
	"parceltracker/internal/core/domain/services"
	"parceltracker/internal/core/ports"
	"parceltracker/internal/pkg/guard"

	"golang.org/x/sync/errgroup"
)

// StatsConcurrency bounds the per-entity fan-out of the all-entity statistics.
const StatsConcurrency = 4

var ErrStatisticsQueryIsNotConstructed = errors.New(
	"StatisticsQuery must be created via NewStatisticsQuery constructor",
)

// StatisticsQuery addresses the statistics of one directory entity.
type StatisticsQuery struct {
	id    kernel.UUID
	guard guard.ConstructorGuard
}

func NewStatisticsQuery(id kernel.UUID) (StatisticsQuery, error) {
	if err := id.Validate(); err != nil {
		return StatisticsQuery{}, err
	}
	return StatisticsQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q StatisticsQuery) Validate() error {
	return q.guard.Validate(ErrStatisticsQueryIsNotConstructed)
}

func (q StatisticsQuery) ID() kernel.UUID {
	return q.id
}

type statisticsReader struct {
	parcels    ports.ParcelRepository
	directory  ports.Directory
	calculator services.StatisticsCalculator
}

func newStatisticsReader(parcels ports.ParcelRepository, dir ports.Directory) statisticsReader {
	return statisticsReader{parcels: parcels, directory: dir, calculator: services.NewStatisticsCalculator()}
}

func (r statisticsReader) deliveryPersonStats(
	ctx context.Context,
	person *directory.DeliveryPerson,
	zoneName string,
) (services.DeliveryPersonStats, error) {
	id := person.ID()
	parcels, err := r.parcels.Find(ctx, ports.ParcelCriteria{DeliveryPersonID: &id})
	if err != nil {
		return services.DeliveryPersonStats{}, err
	}
	return r.calculator.DeliveryPerson(person, zoneName, parcels), nil
}

func (r statisticsReader) zoneStats(ctx context.Context, zone *directory.Zone) (services.ZoneStats, error) {
	id := zone.ID()
	persons, err := r.directory.CountDeliveryPersonsInZone(ctx, id)
	if err != nil {
		return services.ZoneStats{}, err
	}
	parcels, err := r.parcels.Find(ctx, ports.ParcelCriteria{ZoneID: &id})
	if err != nil {
		return services.ZoneStats{}, err
	}
	return r.calculator.Zone(zone, int(persons), parcels), nil
}

// GetGlobalStatisticsQueryHandler computes the statistics over every parcel
// together with the directory sizes.
type GetGlobalStatisticsQueryHandler struct {
	statisticsReader
}

func NewGetGlobalStatisticsQueryHandler(parcels ports.ParcelRepository, dir ports.Directory) GetGlobalStatisticsQueryHandler {
	return GetGlobalStatisticsQueryHandler{newStatisticsReader(parcels, dir)}
}

func (h GetGlobalStatisticsQueryHandler) Handle(ctx context.Context) (services.GlobalStats, error) {
	kinds := directory.Kinds()
	counts := make([]int64, len(kinds))

	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range kinds {
		g.Go(func() error {
			n, err := h.directory.Count(gctx, kind)
			counts[i] = n
			return err
		})
	}
	var all []*parcel.Parcel
	g.Go(func() error {
		var err error
		all, err = h.parcels.Find(gctx, ports.ParcelCriteria{})
		return err
	})
	if err := g.Wait(); err != nil {
		return services.GlobalStats{}, err
	}

	var dc services.DirectoryCounts
	for i, kind := range kinds {
		n := int(counts[i])
		switch kind {
		case directory.KindZone:
			dc.Zones = n
		case directory.KindDeliveryPerson:
			dc.DeliveryPersons = n
		case directory.KindSender:
			dc.Senders = n
		case directory.KindRecipient:
			dc.Recipients = n
		case directory.KindProduct:
			dc.Products = n
		}
	}
	return h.calculator.Global(all, dc), nil
}

type GetDeliveryPersonStatisticsQueryHandler struct {
	statisticsReader
}

func NewGetDeliveryPersonStatisticsQueryHandler(
	parcels ports.ParcelRepository,
	dir ports.Directory,
) GetDeliveryPersonStatisticsQueryHandler {
	return GetDeliveryPersonStatisticsQueryHandler{newStatisticsReader(parcels, dir)}
}

// Handle fails with NotFound on "deliveryPersonId" for an unknown person.
func (h GetDeliveryPersonStatisticsQueryHandler) Handle(
	ctx context.Context,
	query StatisticsQuery,
) (services.DeliveryPersonStats, error) {
	if err := query.Validate(); err != nil {
		return services.DeliveryPersonStats{}, err
	}

	entity, err := ports.LookupEntity(ctx, h.directory, directory.KindDeliveryPerson, "deliveryPersonId", query.ID())
	if err != nil {
		return services.DeliveryPersonStats{}, err
	}
	person, ok := entity.(*directory.DeliveryPerson)
	if !ok {
		return services.DeliveryPersonStats{}, directory.KindDeliveryPerson.NotFound("deliveryPersonId", query.ID())
	}

	var zoneName string
	if zoneID := person.ZoneID(); zoneID != nil {
		zone, err := h.directory.Get(ctx, directory.KindZone, *zoneID)
		if err != nil {
			return services.DeliveryPersonStats{}, err
		}
		zoneName = zone.DisplayName()
	}
	return h.deliveryPersonStats(ctx, person, zoneName)
}

type GetZoneStatisticsQueryHandler struct {
	statisticsReader
}

func NewGetZoneStatisticsQueryHandler(parcels ports.ParcelRepository, dir ports.Directory) GetZoneStatisticsQueryHandler {
	return GetZoneStatisticsQueryHandler{newStatisticsReader(parcels, dir)}
}

// Handle fails with NotFound on "zoneId" for an unknown zone.
func (h GetZoneStatisticsQueryHandler) Handle(ctx context.Context, query StatisticsQuery) (services.ZoneStats, error) {
	if err := query.Validate(); err != nil {
		return services.ZoneStats{}, err
	}

	entity, err := ports.LookupEntity(ctx, h.directory, directory.KindZone, "zoneId", query.ID())
	if err != nil {
		return services.ZoneStats{}, err
	}
	zone, ok := entity.(*directory.Zone)
	if !ok {
		return services.ZoneStats{}, directory.KindZone.NotFound("zoneId", query.ID())
	}
	return h.zoneStats(ctx, zone)
}

// GetAllDeliveryPersonStatisticsQueryHandler returns one entry per delivery
// person in directory order.
type GetAllDeliveryPersonStatisticsQueryHandler struct {
	statisticsReader
}

func NewGetAllDeliveryPersonStatisticsQueryHandler(
	parcels ports.ParcelRepository,
	dir ports.Directory,
) GetAllDeliveryPersonStatisticsQueryHandler {
	return GetAllDeliveryPersonStatisticsQueryHandler{newStatisticsReader(parcels, dir)}
}

func (h GetAllDeliveryPersonStatisticsQueryHandler) Handle(ctx context.Context) ([]services.DeliveryPersonStats, error) {
	persons, err := h.directory.ListDeliveryPersons(ctx)
	if err != nil {
		return nil, err
	}
	zones, err := h.directory.ListZones(ctx)
	if err != nil {
		return nil, err
	}
	zoneNames := make(map[kernel.UUID]string, len(zones))
	for _, z := range zones {
		zoneNames[z.ID()] = z.Name()
	}

	result := make([]services.DeliveryPersonStats, len(persons))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(StatsConcurrency)
	for i, person := range persons {
		g.Go(func() error {
			var zoneName string
			if zoneID := person.ZoneID(); zoneID != nil {
				zoneName = zoneNames[*zoneID]
			}
			stats, err := h.deliveryPersonStats(gctx, person, zoneName)
			result[i] = stats
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetAllZoneStatisticsQueryHandler returns one entry per zone in directory order.
type GetAllZoneStatisticsQueryHandler struct {
	statisticsReader
}

func NewGetAllZoneStatisticsQueryHandler(parcels ports.ParcelRepository, dir ports.Directory) GetAllZoneStatisticsQueryHandler {
	return GetAllZoneStatisticsQueryHandler{newStatisticsReader(parcels, dir)}
}

func (h GetAllZoneStatisticsQueryHandler) Handle(ctx context.Context) ([]services.ZoneStats, error) {
	zones, err := h.directory.ListZones(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]services.ZoneStats, len(zones))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(StatsConcurrency)
	for i, zone := range zones {
		g.Go(func() error {
			stats, err := h.zoneStats(gctx, zone)
			result[i] = stats
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
