package queries_test

import (
	"context"
	"testing"
	"time"

	"parceltracker/internal/core/application/usecases/queries"
	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/domain/model/parcel"
	"parceltracker/internal/core/ports/mocks"
	"parceltracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetParcelHistoryQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("should return the timeline oldest first", func(t *testing.T) {
		parcels := new(mocks.ParcelRepository)
		history := new(mocks.HistoryRepository)
		p := testParcel(t, "2.50")
		timeline := parcel.NewTimeline([]parcel.HistoryEntry{
			historyEntry(t, p.ID(), parcel.InTransit, created.Add(time.Hour)),
			historyEntry(t, p.ID(), parcel.Created, created),
		})
		parcels.On("Get", ctx, p.ID()).Return(p, nil).Once()
		history.On("Timeline", ctx, p.ID()).Return(timeline, nil).Once()

		query, err := queries.NewParcelHistoryQuery(p.ID())
		require.NoError(t, err)

		result, err := queries.NewGetParcelHistoryQueryHandler(parcels, history).Handle(ctx, query)

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, parcel.Created, result[0].Status)
		assert.Equal(t, parcel.InTransit, result[1].Status)
		parcels.AssertExpectations(t)
		history.AssertExpectations(t)
	})

	t.Run("should return not found for unknown parcel", func(t *testing.T) {
		parcels := new(mocks.ParcelRepository)
		history := new(mocks.HistoryRepository)
		id := kernel.NewUUID()
		parcels.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("parcel", "parcelId", id)).Once()

		query, err := queries.NewParcelHistoryQuery(id)
		require.NoError(t, err)

		_, err = queries.NewGetParcelHistoryQueryHandler(parcels, history).Handle(ctx, query)

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
		history.AssertNotCalled(t, "Timeline", mock.Anything, mock.Anything)
	})
}

func TestGetLatestHistoryEntryQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("should return latest entry", func(t *testing.T) {
		parcels := new(mocks.ParcelRepository)
		history := new(mocks.HistoryRepository)
		p := testParcel(t, "2.50")
		latest := historyEntry(t, p.ID(), parcel.Delivered, created.Add(time.Hour))
		parcels.On("Get", ctx, p.ID()).Return(p, nil).Once()
		history.On("Latest", ctx, p.ID()).Return(latest, nil).Once()

		query, err := queries.NewParcelHistoryQuery(p.ID())
		require.NoError(t, err)

		result, err := queries.NewGetLatestHistoryEntryQueryHandler(parcels, history).Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, latest.ID(), result.ID)
		assert.Equal(t, parcel.Delivered, result.Status)
	})

	t.Run("should return not found for empty ledger", func(t *testing.T) {
		parcels := new(mocks.ParcelRepository)
		history := new(mocks.HistoryRepository)
		p := testParcel(t, "2.50")
		parcels.On("Get", ctx, p.ID()).Return(p, nil).Once()
		history.On("Latest", ctx, p.ID()).
			Return(parcel.HistoryEntry{}, errs.NewObjectNotFoundError("history entry", "parcelId", p.ID())).Once()

		query, err := queries.NewParcelHistoryQuery(p.ID())
		require.NoError(t, err)

		_, err = queries.NewGetLatestHistoryEntryQueryHandler(parcels, history).Handle(ctx, query)

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestCountParcelHistoryQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	parcels := new(mocks.ParcelRepository)
	history := new(mocks.HistoryRepository)
	p := testParcel(t, "2.50")
	parcels.On("Get", ctx, p.ID()).Return(p, nil).Once()
	history.On("CountByParcel", ctx, p.ID()).Return(int64(3), nil).Once()

	query, err := queries.NewParcelHistoryQuery(p.ID())
	require.NoError(t, err)

	count, err := queries.NewCountParcelHistoryQueryHandler(parcels, history).Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestHistoryEntryQueries(t *testing.T) {
	ctx := context.Background()
	parcelID := kernel.NewUUID()
	entry := historyEntry(t, parcelID, parcel.Collected, created)

	t.Run("get by id", func(t *testing.T) {
		history := new(mocks.HistoryRepository)
		history.On("Get", ctx, entry.ID()).Return(entry, nil).Once()

		query, err := queries.NewGetHistoryEntryQuery(entry.ID())
		require.NoError(t, err)

		result, err := queries.NewGetHistoryEntryQueryHandler(history).Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, parcelID, result.ParcelID)
	})

	t.Run("list all", func(t *testing.T) {
		history := new(mocks.HistoryRepository)
		history.On("List", ctx).Return([]parcel.HistoryEntry{entry}, nil).Once()

		result, err := queries.NewListHistoryEntriesQueryHandler(history).Handle(ctx)

		require.NoError(t, err)
		assert.Len(t, result, 1)
	})

	t.Run("with comments", func(t *testing.T) {
		history := new(mocks.HistoryRepository)
		history.On("ListWithComments", ctx).Return([]parcel.HistoryEntry{}, nil).Once()

		result, err := queries.NewGetCommentedHistoryEntriesQueryHandler(history).Handle(ctx)

		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})
}

func TestCountDeliveredTodayQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	history := new(mocks.HistoryRepository)
	history.On("CountByStatusBetween", ctx, parcel.Delivered,
		mock.MatchedBy(func(from time.Time) bool {
			return from.Hour() == 0 && from.Minute() == 0 && !from.After(time.Now())
		}),
		mock.MatchedBy(func(to time.Time) bool { return to.After(time.Now()) }),
	).Return(int64(7), nil).Once()

	count, err := queries.NewCountDeliveredTodayQueryHandler(history).Handle(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
	history.AssertExpectations(t)
}

func TestDayBounds(t *testing.T) {
	at := time.Date(2026, 5, 4, 23, 59, 59, 0, time.Local)

	from, to := queries.DayBounds(at)

	assert.Equal(t, time.Date(2026, 5, 4, 0, 0, 0, 0, time.Local), from)
	assert.Equal(t, time.Date(2026, 5, 5, 0, 0, 0, 0, time.Local), to)
	assert.False(t, at.Before(from))
	assert.True(t, at.Before(to))
}
