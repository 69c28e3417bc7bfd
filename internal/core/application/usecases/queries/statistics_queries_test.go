package queries_test

import (
	"context"
	"errors"
	"testing"

	"parceltracker/internal/core/application/usecases/queries"
	"parceltracker/internal/core/domain/model/directory"
	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/domain/model/parcel"
	"parceltracker/internal/core/ports"
	"parceltracker/internal/core/ports/mocks"
	"parceltracker/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetGlobalStatisticsQueryHandler_Handle(t *testing.T) {
	parcels := new(mocks.ParcelRepository)
	dir := new(mocks.DirectoryRepository)
	person := kernel.NewUUID()
	all := []*parcel.Parcel{
		testParcel(t, "2.50", assignedTo(person)),
		testParcel(t, "1.25", withPriority(parcel.Express)),
		testParcel(t, "3.00", withPriority(parcel.Urgent), withStatus(parcel.Delivered)),
	}
	parcels.On("Find", mock.Anything, ports.ParcelCriteria{}).Return(all, nil).Once()
	for _, kind := range directory.Kinds() {
		dir.On("Count", mock.Anything, kind).Return(int64(2), nil).Once()
	}

	stats, err := queries.NewGetGlobalStatisticsQueryHandler(parcels, dir).Handle(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalParcels)
	assert.True(t, decimal.RequireFromString("6.75").Equal(stats.TotalWeight))
	assert.True(t, decimal.RequireFromString("2.25").Equal(stats.AverageWeight))
	assert.Equal(t, 2, stats.UnassignedParcels)
	assert.Equal(t, 1, stats.HighPriorityPending)
	assert.Equal(t, 2, stats.Directory.Zones)
	assert.Equal(t, 2, stats.Directory.Products)
	assert.True(t, decimal.RequireFromString("1.5").Equal(stats.AverageParcelsPerDeliveryPerson))
	parcels.AssertExpectations(t)
	dir.AssertExpectations(t)
}

func TestGetGlobalStatisticsQueryHandler_Handle_PropagatesError(t *testing.T) {
	parcels := new(mocks.ParcelRepository)
	dir := new(mocks.DirectoryRepository)
	boom := errors.New("db down")
	parcels.On("Find", mock.Anything, ports.ParcelCriteria{}).Return(nil, boom).Maybe()
	dir.On("Count", mock.Anything, mock.Anything).Return(int64(0), nil).Maybe()

	_, err := queries.NewGetGlobalStatisticsQueryHandler(parcels, dir).Handle(context.Background())

	assert.ErrorIs(t, err, boom)
}

func TestGetDeliveryPersonStatisticsQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("should resolve zone name and compute delivery rate", func(t *testing.T) {
		parcels := new(mocks.ParcelRepository)
		dir := new(mocks.DirectoryRepository)
		zone := testZone(t, "North")
		zoneID := zone.ID()
		person := testDeliveryPerson(t, "Dana", &zoneID)
		personID := person.ID()
		assigned := []*parcel.Parcel{
			testParcel(t, "1.00", assignedTo(personID), withStatus(parcel.Delivered)),
			testParcel(t, "1.00", assignedTo(personID), withStatus(parcel.Delivered)),
			testParcel(t, "1.00", assignedTo(personID)),
		}
		dir.On("Get", ctx, directory.KindDeliveryPerson, personID).Return(person, nil).Once()
		dir.On("Get", ctx, directory.KindZone, zoneID).Return(zone, nil).Once()
		parcels.On("Find", ctx, ports.ParcelCriteria{DeliveryPersonID: &personID}).Return(assigned, nil).Once()

		query, err := queries.NewStatisticsQuery(personID)
		require.NoError(t, err)

		stats, err := queries.NewGetDeliveryPersonStatisticsQueryHandler(parcels, dir).Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, "Dana Tester", stats.Name)
		assert.Equal(t, "North", stats.ZoneName)
		assert.Equal(t, 3, stats.TotalParcels)
		assert.Equal(t, 2, stats.DeliveredParcels)
		assert.True(t, decimal.RequireFromString("66.67").Equal(stats.DeliveryRate))
	})

	t.Run("should return not found for unknown delivery person", func(t *testing.T) {
		dir := new(mocks.DirectoryRepository)
		id := kernel.NewUUID()
		dir.On("Get", ctx, directory.KindDeliveryPerson, id).
			Return(nil, directory.KindDeliveryPerson.NotFound("id", id)).Once()

		query, err := queries.NewStatisticsQuery(id)
		require.NoError(t, err)

		_, err = queries.NewGetDeliveryPersonStatisticsQueryHandler(new(mocks.ParcelRepository), dir).Handle(ctx, query)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Contains(t, err.Error(), "deliveryPersonId")
	})
}

func TestGetZoneStatisticsQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	parcels := new(mocks.ParcelRepository)
	dir := new(mocks.DirectoryRepository)
	zone := testZone(t, "South")
	zoneID := zone.ID()
	inSouth := []*parcel.Parcel{
		testParcel(t, "1.00", inZone(zoneID)),
		testParcel(t, "2.00", inZone(zoneID)),
		testParcel(t, "3.00", inZone(zoneID)),
	}
	dir.On("Get", ctx, directory.KindZone, zoneID).Return(zone, nil).Once()
	dir.On("CountDeliveryPersonsInZone", ctx, zoneID).Return(int64(0), nil).Once()
	parcels.On("Find", ctx, ports.ParcelCriteria{ZoneID: &zoneID}).Return(inSouth, nil).Once()

	query, err := queries.NewStatisticsQuery(zoneID)
	require.NoError(t, err)

	stats, err := queries.NewGetZoneStatisticsQueryHandler(parcels, dir).Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalParcels)
	assert.Equal(t, 0, stats.DeliveryPersonCount)
	assert.True(t, decimal.Zero.Equal(stats.AverageParcelsPerDeliveryPerson))
	assert.True(t, decimal.RequireFromString("2").Equal(stats.AverageWeight))
}

func TestGetAllDeliveryPersonStatisticsQueryHandler_Handle(t *testing.T) {
	parcels := new(mocks.ParcelRepository)
	dir := new(mocks.DirectoryRepository)
	zone := testZone(t, "East")
	zoneID := zone.ID()
	persons := []*directory.DeliveryPerson{
		testDeliveryPerson(t, "Alex", &zoneID),
		testDeliveryPerson(t, "Blair", nil),
		testDeliveryPerson(t, "Casey", &zoneID),
	}
	dir.On("ListDeliveryPersons", mock.Anything).Return(persons, nil).Once()
	dir.On("ListZones", mock.Anything).Return([]*directory.Zone{zone}, nil).Once()
	for i, person := range persons {
		id := person.ID()
		found := make([]*parcel.Parcel, 0, i)
		for range i {
			found = append(found, testParcel(t, "1.00", assignedTo(id)))
		}
		parcels.On("Find", mock.Anything, ports.ParcelCriteria{DeliveryPersonID: &id}).Return(found, nil).Once()
	}

	stats, err := queries.NewGetAllDeliveryPersonStatisticsQueryHandler(parcels, dir).Handle(context.Background())

	require.NoError(t, err)
	require.Len(t, stats, 3)
	for i, person := range persons {
		assert.Equal(t, person.ID(), stats[i].DeliveryPersonID)
		assert.Equal(t, i, stats[i].TotalParcels)
	}
	assert.Equal(t, "East", stats[0].ZoneName)
	assert.Equal(t, directory.UnassignedZoneName, stats[1].ZoneName)
	parcels.AssertExpectations(t)
}

func TestGetAllZoneStatisticsQueryHandler_Handle(t *testing.T) {
	parcels := new(mocks.ParcelRepository)
	dir := new(mocks.DirectoryRepository)
	zones := []*directory.Zone{testZone(t, "A"), testZone(t, "B")}
	dir.On("ListZones", mock.Anything).Return(zones, nil).Once()
	for _, zone := range zones {
		id := zone.ID()
		dir.On("CountDeliveryPersonsInZone", mock.Anything, id).Return(int64(1), nil).Once()
		parcels.On("Find", mock.Anything, ports.ParcelCriteria{ZoneID: &id}).
			Return([]*parcel.Parcel{testParcel(t, "4.00", inZone(id))}, nil).Once()
	}

	stats, err := queries.NewGetAllZoneStatisticsQueryHandler(parcels, dir).Handle(context.Background())

	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "A", stats[0].ZoneName)
	assert.Equal(t, "B", stats[1].ZoneName)
	assert.True(t, decimal.NewFromInt(1).Equal(stats[1].AverageParcelsPerDeliveryPerson))
}
