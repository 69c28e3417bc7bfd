package services

import (
	"parceltracker/internal/core/domain/model/directory"
	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/domain/model/parcel"

	"github.com/shopspring/decimal"
)

// StatsScale is the number of decimal places averages and rates are rounded to.
const StatsScale = 2

var hundred = decimal.NewFromInt(100)

// DirectoryCounts are the raw directory sizes reported with the global statistics.
type DirectoryCounts struct {
	Zones           int
	DeliveryPersons int
	Senders         int
	Recipients      int
	Products        int
}

// GlobalStats summarizes every parcel. AverageParcelsPerDeliveryPerson divides
// by the directory's delivery person count, not by the assigned ones.
type GlobalStats struct {
	TotalParcels                    int
	TotalWeight                     decimal.Decimal
	AverageWeight                   decimal.Decimal
	ParcelsByStatus                 map[parcel.Status]int
	ParcelsByPriority               map[parcel.Priority]int
	UnassignedParcels               int
	HighPriorityPending             int
	AverageParcelsPerDeliveryPerson decimal.Decimal
	Directory                       DirectoryCounts
}

// DeliveryPersonStats covers the parcels assigned to one delivery person.
// ZoneName is empty for a person without zone. DeliveryRate is the delivered
// share in percent.
type DeliveryPersonStats struct {
	DeliveryPersonID kernel.UUID
	Name             string
	ZoneName         string
	TotalParcels     int
	TotalWeight      decimal.Decimal
	AverageWeight    decimal.Decimal
	ParcelsByStatus  map[parcel.Status]int
	DeliveredParcels int
	DeliveryRate     decimal.Decimal
}

// ZoneStats covers the parcels of one zone and the delivery persons attached
// to it.
type ZoneStats struct {
	ZoneID                          kernel.UUID
	ZoneName                        string
	TotalParcels                    int
	TotalWeight                     decimal.Decimal
	AverageWeight                   decimal.Decimal
	ParcelsByStatus                 map[parcel.Status]int
	ParcelsByPriority               map[parcel.Priority]int
	DeliveryPersonCount             int
	AverageParcelsPerDeliveryPerson decimal.Decimal
}

// StatisticsCalculator turns a parcel set into operational rollups. It holds no
// state and performs no I/O; callers load the parcels and directory data.
//
// Numeric rules:
//   - weight sums are exact decimals
//   - averages and rates are computed from unrounded sums and rounded half-up
//     to StatsScale places
//   - a zero denominator yields 0
//   - status and priority maps contain every enumerated value
type StatisticsCalculator struct{}

func NewStatisticsCalculator() StatisticsCalculator {
	return StatisticsCalculator{}
}

// Global computes the statistics over the entire parcel set.
func (StatisticsCalculator) Global(parcels []*parcel.Parcel, counts DirectoryCounts) GlobalStats {
	t := tally(parcels)

	stats := GlobalStats{
		TotalParcels:      t.count,
		TotalWeight:       t.weight,
		AverageWeight:     ratio(t.weight, decimal.NewFromInt(int64(t.count))),
		ParcelsByStatus:   t.byStatus,
		ParcelsByPriority: t.byPriority,
		Directory:         counts,
		AverageParcelsPerDeliveryPerson: ratio(
			decimal.NewFromInt(int64(t.count)),
			decimal.NewFromInt(int64(counts.DeliveryPersons)),
		),
	}
	for _, p := range parcels {
		if p.DeliveryPersonID() == nil {
			stats.UnassignedParcels++
		}
		if p.IsHighPriorityPending() {
			stats.HighPriorityPending++
		}
	}
	return stats
}

// DeliveryPerson computes the statistics over the parcels assigned to person.
// zoneName is the resolved name of the person's zone, empty when the person
// has none.
func (StatisticsCalculator) DeliveryPerson(
	person *directory.DeliveryPerson,
	zoneName string,
	parcels []*parcel.Parcel,
) DeliveryPersonStats {
	t := tally(parcels)
	if zoneName == "" {
		zoneName = directory.UnassignedZoneName
	}

	delivered := t.byStatus[parcel.Delivered]
	return DeliveryPersonStats{
		DeliveryPersonID: person.ID(),
		Name:             person.DisplayName(),
		ZoneName:         zoneName,
		TotalParcels:     t.count,
		TotalWeight:      t.weight,
		AverageWeight:    ratio(t.weight, decimal.NewFromInt(int64(t.count))),
		ParcelsByStatus:  t.byStatus,
		DeliveredParcels: delivered,
		DeliveryRate: ratio(
			decimal.NewFromInt(int64(delivered)).Mul(hundred),
			decimal.NewFromInt(int64(t.count)),
		),
	}
}

// Zone computes the statistics over the parcels of zone. deliveryPersonCount is
// the number of delivery persons the directory places in the zone.
func (StatisticsCalculator) Zone(zone *directory.Zone, deliveryPersonCount int, parcels []*parcel.Parcel) ZoneStats {
	t := tally(parcels)

	return ZoneStats{
		ZoneID:              zone.ID(),
		ZoneName:            zone.Name(),
		TotalParcels:        t.count,
		TotalWeight:         t.weight,
		AverageWeight:       ratio(t.weight, decimal.NewFromInt(int64(t.count))),
		ParcelsByStatus:     t.byStatus,
		ParcelsByPriority:   t.byPriority,
		DeliveryPersonCount: deliveryPersonCount,
		AverageParcelsPerDeliveryPerson: ratio(
			decimal.NewFromInt(int64(t.count)),
			decimal.NewFromInt(int64(deliveryPersonCount)),
		),
	}
}

type parcelTally struct {
	count      int
	weight     decimal.Decimal
	byStatus   map[parcel.Status]int
	byPriority map[parcel.Priority]int
}

func tally(parcels []*parcel.Parcel) parcelTally {
	t := parcelTally{
		weight:     decimal.Zero,
		byStatus:   make(map[parcel.Status]int, len(parcel.Statuses())),
		byPriority: make(map[parcel.Priority]int, len(parcel.Priorities())),
	}
	for _, s := range parcel.Statuses() {
		t.byStatus[s] = 0
	}
	for _, p := range parcel.Priorities() {
		t.byPriority[p] = 0
	}

	for _, p := range parcels {
		t.count++
		t.weight = t.weight.Add(p.Weight().Kilograms())
		t.byStatus[p.Status()]++
		t.byPriority[p.Priority()]++
	}
	return t
}

// ratio returns num/den rounded to StatsScale, or 0 when den is 0.
func ratio(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.DivRound(den, StatsScale)
}
