package parcelrepo_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "parceltracker/internal/adapters/out/postgres"
	"parceltracker/internal/adapters/out/postgres/historyrepo"
	"parceltracker/internal/adapters/out/postgres/parcelrepo"
	"parceltracker/internal/adapters/out/postgres/pgtest"
	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/domain/model/parcel"
	"parceltracker/internal/core/ports"
	"parceltracker/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type ParcelRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *parcelrepo.GormParcelRepository
	history    *historyrepo.GormHistoryRepository
	now        time.Time
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background(), postgres_adapter.Migrate)
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
	suite.repository = parcelrepo.NewGormParcelRepository(suite.db, nil)
	suite.history = historyrepo.NewGormHistoryRepository(suite.db)
	suite.now = time.Now().UTC().Truncate(time.Second)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestAdd_PersistsParcelWithItems() {
	ctx := context.Background()
	tracker := new(MockAggregateTracker)
	repository := parcelrepo.NewGormParcelRepository(suite.db, tracker)

	first := suite.lineItem(2, "100.00")
	second := suite.lineItem(1, "4.50")
	p := suite.newParcel("2.50", "Lyon", first, second)
	tracker.On("TrackAggregate", p.ID(), p).Once()

	suite.Require().NoError(repository.Add(ctx, p))

	loaded, err := repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.Created, loaded.Status())
	suite.Equal("Lyon", loaded.DestinationCity())
	suite.True(decimal.RequireFromString("2.5").Equal(loaded.Weight().Kilograms()))
	suite.Require().Len(loaded.Items(), 2)
	suite.True(loaded.Items()[0].ProductID().IsEqual(first.ProductID()))
	suite.True(decimal.RequireFromString("204.50").Equal(loaded.TotalValue()))
	suite.True(suite.now.Equal(loaded.CreatedAt()))
	tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_WritesMutableColumns() {
	ctx := context.Background()
	p := suite.newParcel("1.00", "Lyon")
	suite.Require().NoError(suite.repository.Add(ctx, p))

	person := kernel.NewUUID()
	suite.Require().NoError(p.ChangeDescription(nil))
	suite.Require().NoError(p.AssignDeliveryPerson(person))
	_, err := p.ChangeStatus(parcel.InTransit, nil, suite.now.Add(time.Hour))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Update(ctx, p))

	loaded, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Nil(loaded.Description())
	suite.Equal(parcel.InTransit, loaded.Status())
	suite.True(loaded.IsAssignedTo(person))
	suite.True(suite.now.Add(time.Hour).Equal(loaded.StatusChangedAt()))
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_UnknownParcel_ReturnsNotFound() {
	p := suite.newParcel("1.00", "Lyon")

	err := suite.repository.Update(context.Background(), p)

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestDelete_RemovesItemsAndHistory() {
	ctx := context.Background()
	p := suite.newParcel("1.00", "Lyon", suite.lineItem(1, "1.00"))
	suite.Require().NoError(suite.repository.Add(ctx, p))
	suite.Require().NoError(suite.history.Append(ctx, p.PullHistory()...))

	suite.Require().NoError(suite.repository.Delete(ctx, p))

	_, err := suite.repository.Get(ctx, p.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
	suite.assertRows("parcel_items", 0)
	suite.assertRows("parcel_history", 0)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGet_UnknownParcel_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

// A parcel assigned to the zone but also to a delivery person is not unassigned.
func (suite *ParcelRepositoryIntegrationTestSuite) TestSearch_ZoneAndUnassignedOnly() {
	ctx := context.Background()
	zone := kernel.NewUUID()

	assigned := suite.newParcel("1.00", "Lyon")
	suite.Require().NoError(assigned.AssignZone(zone))
	suite.Require().NoError(assigned.AssignDeliveryPerson(kernel.NewUUID()))
	waiting := suite.newParcel("1.00", "Lyon")
	suite.Require().NoError(waiting.AssignZone(zone))
	suite.save(assigned, waiting, suite.newParcel("1.00", "Lyon"))

	page, err := suite.repository.Search(ctx,
		ports.ParcelCriteria{ZoneID: &zone, UnassignedOnly: true},
		suite.pageRequest(0, 10, ports.DefaultSort))

	suite.Require().NoError(err)
	suite.Equal(int64(1), page.Total)
	suite.Require().Len(page.Items, 1)
	suite.True(page.Items[0].ID().IsEqual(waiting.ID()))
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestSearch_CitySubstringIgnoresCaseAndWildcards() {
	ctx := context.Background()
	suite.save(
		suite.newParcel("1.00", "Saint-Étienne"),
		suite.newParcel("1.00", "Paris"),
		suite.newParcel("1.00", "Lyon 50%"),
	)

	page, err := suite.repository.Search(ctx, ports.ParcelCriteria{CityContains: "SAINT"},
		suite.pageRequest(0, 10, ports.DefaultSort))
	suite.Require().NoError(err)
	suite.Require().Len(page.Items, 1)
	suite.Equal("Saint-Étienne", page.Items[0].DestinationCity())

	page, err = suite.repository.Search(ctx, ports.ParcelCriteria{CityContains: "%"},
		suite.pageRequest(0, 10, ports.DefaultSort))
	suite.Require().NoError(err)
	suite.Require().Len(page.Items, 1)
	suite.Equal("Lyon 50%", page.Items[0].DestinationCity())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestSearch_PagesAndSorts() {
	ctx := context.Background()
	for i, kg := range []string{"3.00", "1.00", "2.00", "5.00", "4.00"} {
		p := suite.newParcelAt(kg, "Lyon", suite.now.Add(time.Duration(i)*time.Minute))
		suite.save(p)
	}

	page, err := suite.repository.Search(ctx, ports.ParcelCriteria{},
		suite.pageRequest(1, 2, ports.Sort{Field: ports.SortByWeight}))

	suite.Require().NoError(err)
	suite.Equal(int64(5), page.Total)
	suite.Equal(3, page.TotalPages())
	suite.Require().Len(page.Items, 2)
	suite.True(decimal.RequireFromString("3").Equal(page.Items[0].Weight().Kilograms()))
	suite.True(decimal.RequireFromString("4").Equal(page.Items[1].Weight().Kilograms()))

	beyond, err := suite.repository.Search(ctx, ports.ParcelCriteria{},
		suite.pageRequest(9, 2, ports.DefaultSort))
	suite.Require().NoError(err)
	suite.Equal(int64(5), beyond.Total)
	suite.Empty(beyond.Items)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestFind_HighPriorityPendingNewestFirst() {
	ctx := context.Background()
	older := suite.newParcelAt("1.00", "Lyon", suite.now)
	suite.Require().NoError(older.ChangePriority(parcel.Urgent))
	newer := suite.newParcelAt("1.00", "Lyon", suite.now.Add(time.Minute))
	suite.Require().NoError(newer.ChangePriority(parcel.Express))
	delivered := suite.newParcelAt("1.00", "Lyon", suite.now)
	suite.Require().NoError(delivered.ChangePriority(parcel.Express))
	_, err := delivered.ChangeStatus(parcel.Delivered, nil, suite.now.Add(time.Hour))
	suite.Require().NoError(err)
	suite.save(older, newer, delivered, suite.newParcel("1.00", "Lyon"))

	found, err := suite.repository.Find(ctx, ports.HighPriorityPending())

	suite.Require().NoError(err)
	suite.Require().Len(found, 2)
	suite.True(found[0].ID().IsEqual(newer.ID()))
	suite.True(found[1].ID().IsEqual(older.ID()))

	count, err := suite.repository.Count(ctx, ports.HighPriorityPending())
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)
}

func (suite *ParcelRepositoryIntegrationTestSuite) newParcel(kg, city string, items ...parcel.LineItem) *parcel.Parcel {
	return suite.newParcelAt(kg, city, suite.now, items...)
}

func (suite *ParcelRepositoryIntegrationTestSuite) newParcelAt(
	kg, city string,
	at time.Time,
	items ...parcel.LineItem,
) *parcel.Parcel {
	w, err := kernel.NewWeight(decimal.RequireFromString(kg))
	suite.Require().NoError(err)
	description := "test parcel"
	p, err := parcel.NewParcel(kernel.NewUUID(), &description, w, parcel.Normal, city,
		kernel.NewUUID(), kernel.NewUUID(), items, at)
	suite.Require().NoError(err)
	return p
}

func (suite *ParcelRepositoryIntegrationTestSuite) lineItem(quantity int, price string) parcel.LineItem {
	item, err := parcel.NewLineItem(kernel.NewUUID(), quantity, decimal.RequireFromString(price))
	suite.Require().NoError(err)
	return item
}

func (suite *ParcelRepositoryIntegrationTestSuite) save(parcels ...*parcel.Parcel) {
	for _, p := range parcels {
		suite.Require().NoError(suite.repository.Add(context.Background(), p))
	}
}

func (suite *ParcelRepositoryIntegrationTestSuite) pageRequest(number, size int, sort ports.Sort) ports.PageRequest {
	page, err := ports.NewPageRequest(number, size, sort)
	suite.Require().NoError(err)
	return page
}

func (suite *ParcelRepositoryIntegrationTestSuite) assertRows(table string, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Table(table).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestParcelRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(ParcelRepositoryIntegrationTestSuite))
}
