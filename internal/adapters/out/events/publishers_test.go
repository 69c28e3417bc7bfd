package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"parceltracker/internal/adapters/out/events"
	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/domain/model/parcel"
	"parceltracker/internal/core/ports/mocks"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var at = time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

type MockConn struct {
	mock.Mock
}

func (m *MockConn) Publish(subject string, data []byte) error {
	return m.Called(subject, data).Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createdEvent(t *testing.T) parcel.CreatedEvent {
	t.Helper()
	w, err := kernel.NewWeight(decimal.RequireFromString("2.5"))
	require.NoError(t, err)
	return parcel.CreatedEvent{ParcelID: kernel.NewUUID(), Priority: parcel.Urgent, Weight: w, At: at}
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "parcels.created", events.Subject(parcel.CreatedEvent{}))
	assert.Equal(t, "parcels.status_changed", events.Subject(parcel.StatusChangedEvent{}))
	assert.Equal(t, "parcels.deleted", events.Subject(parcel.DeletedEvent{}))
}

func TestNatsPublisher_Publish(t *testing.T) {
	t.Run("should send one JSON message per event", func(t *testing.T) {
		conn := new(MockConn)
		created := createdEvent(t)
		changed := parcel.StatusChangedEvent{
			ParcelID: created.ParcelID, From: parcel.Created, To: parcel.Collected, At: at.Add(time.Hour),
		}

		var body events.Message
		conn.On("Publish", "parcels.created", mock.Anything).Run(func(args mock.Arguments) {
			require.NoError(t, json.Unmarshal(args.Get(1).([]byte), &body))
		}).Return(nil).Once()
		conn.On("Publish", "parcels.status_changed", mock.Anything).Return(nil).Once()

		err := events.NewNatsPublisher(conn, discardLogger()).Publish(context.Background(), created, changed)

		require.NoError(t, err)
		conn.AssertExpectations(t)
		assert.Equal(t, parcel.EventCreated, body.Event)
		assert.Equal(t, created.ParcelID.String(), body.ParcelID)
		assert.Equal(t, "URGENT", body.Priority)
		assert.Equal(t, "2.50", body.Weight)
		assert.True(t, at.Equal(body.OccurredAt))
	})

	t.Run("should keep publishing after a failure", func(t *testing.T) {
		conn := new(MockConn)
		conn.On("Publish", "parcels.created", mock.Anything).Return(errors.New("no responders")).Once()
		conn.On("Publish", "parcels.deleted", mock.Anything).Return(nil).Once()

		err := events.NewNatsPublisher(conn, discardLogger()).Publish(context.Background(),
			createdEvent(t), parcel.DeletedEvent{ParcelID: kernel.NewUUID(), At: at})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "parcels.created")
		conn.AssertExpectations(t)
	})
}

func TestMetricsPublisher_Publish(t *testing.T) {
	publisher := events.NewMetricsPublisher(prometheus.NewRegistry())
	id := kernel.NewUUID()

	err := publisher.Publish(context.Background(),
		createdEvent(t),
		parcel.StatusChangedEvent{ParcelID: id, From: parcel.Created, To: parcel.Delivered, At: at},
		parcel.StatusChangedEvent{ParcelID: id, From: parcel.Collected, To: parcel.Delivered, At: at},
		parcel.DeletedEvent{ParcelID: id, At: at},
	)

	require.NoError(t, err)
	counter := publisher.Counter()
	assert.InDelta(t, 1, testutil.ToFloat64(counter.WithLabelValues(parcel.EventCreated, "CREATED")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(counter.WithLabelValues(parcel.EventStatusChanged, "DELIVERED")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(counter.WithLabelValues(parcel.EventDeleted, "")), 0)
}

func TestFanout_Publish(t *testing.T) {
	first := new(mocks.EventPublisher)
	second := new(mocks.EventPublisher)
	event := parcel.DeletedEvent{ParcelID: kernel.NewUUID(), At: at}
	first.On("Publish", mock.Anything, []parcel.Event{event}).Return(errors.New("down")).Once()
	second.On("Publish", mock.Anything, []parcel.Event{event}).Return(nil).Once()

	err := events.Fanout{first, nil, second}.Publish(context.Background(), event)

	assert.EqualError(t, err, "down")
	first.AssertExpectations(t)
	second.AssertExpectations(t)
}
