package parcel_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/domain/model/parcel"
	"parceltracker/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func mustWeight(t *testing.T, kg string) kernel.Weight {
	t.Helper()
	w, err := kernel.NewWeight(decimal.RequireFromString(kg))
	require.NoError(t, err)
	return w
}

func strPtr(s string) *string {
	return &s
}

func newParcel(t *testing.T) *parcel.Parcel {
	t.Helper()
	p, err := parcel.NewParcel(
		kernel.NewUUID(),
		strPtr("books"),
		mustWeight(t, "2.50"),
		parcel.Normal,
		"Lyon",
		kernel.NewUUID(),
		kernel.NewUUID(),
		nil,
		now,
	)
	require.NoError(t, err)
	return p
}

func TestNewParcel(t *testing.T) {
	id := kernel.NewUUID()
	sender := kernel.NewUUID()
	recipient := kernel.NewUUID()
	weight := mustWeight(t, "2.50")

	t.Run("should create parcel in CREATED with one history entry", func(t *testing.T) {
		p, err := parcel.NewParcel(id, strPtr("  books "), weight, parcel.Urgent, " Lyon ", sender, recipient, nil, now)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, "books", *p.Description())
		assert.Equal(t, "Lyon", p.DestinationCity())
		assert.Equal(t, parcel.Created, p.Status())
		assert.Equal(t, parcel.Urgent, p.Priority())
		assert.Equal(t, now, p.CreatedAt())
		assert.Equal(t, now, p.StatusChangedAt())
		assert.True(t, p.SenderID().IsEqual(sender))
		assert.True(t, p.RecipientID().IsEqual(recipient))
		assert.Nil(t, p.DeliveryPersonID())
		assert.Nil(t, p.ZoneID())

		history := p.PullHistory()
		require.Len(t, history, 1)
		assert.Equal(t, parcel.Created, history[0].Status())
		assert.Nil(t, history[0].Comment())
		assert.Equal(t, now, history[0].Timestamp())
		assert.True(t, history[0].ParcelID().IsEqual(id))
		assert.Empty(t, p.PullHistory())

		events := p.PullEvents()
		require.Len(t, events, 1)
		assert.Equal(t, parcel.EventCreated, events[0].EventName())
	})

	t.Run("should store blank description as nil", func(t *testing.T) {
		p, err := parcel.NewParcel(id, strPtr("   "), weight, parcel.Normal, "Lyon", sender, recipient, nil, now)

		require.NoError(t, err)
		assert.Nil(t, p.Description())
	})

	t.Run("should report every invalid argument", func(t *testing.T) {
		var missingID kernel.UUID
		var missingWeight kernel.Weight

		p, err := parcel.NewParcel(missingID, strPtr(strings.Repeat("x", 256)), missingWeight,
			parcel.UnknownPriority, "  ", missingID, missingID, nil, now)

		require.Error(t, err)
		assert.Nil(t, p)

		var ve *errs.ValidationError
		require.ErrorAs(t, errs.Collect(err), &ve)
		fields := make([]string, 0, len(ve.Violations))
		for _, v := range ve.Violations {
			fields = append(fields, v.Field)
		}
		assert.ElementsMatch(t, []string{
			"id", "description", "weight", "priority", "destinationCity", "senderId", "recipientId",
		}, fields)
	})

	t.Run("should reject destination city over 100 characters", func(t *testing.T) {
		_, err := parcel.NewParcel(id, nil, weight, parcel.Normal, strings.Repeat("a", 101), sender, recipient, nil, now)

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrValueIsInvalid))
		assert.Contains(t, err.Error(), "destinationCity")
	})

	t.Run("should compute total value from line items", func(t *testing.T) {
		first, err := parcel.NewLineItem(kernel.NewUUID(), 2, decimal.RequireFromString("10.50"))
		require.NoError(t, err)
		second, err := parcel.NewLineItem(kernel.NewUUID(), 1, decimal.RequireFromString("4.00"))
		require.NoError(t, err)

		p, err := parcel.NewParcel(id, nil, weight, parcel.Normal, "Lyon", sender, recipient,
			[]parcel.LineItem{first, second}, now)

		require.NoError(t, err)
		assert.Len(t, p.Items(), 2)
		assert.True(t, decimal.RequireFromString("25.00").Equal(p.TotalValue()))
	})
}

func TestParcel_ChangeStatus(t *testing.T) {
	t.Run("should append one entry per actual change", func(t *testing.T) {
		p := newParcel(t)
		p.PullHistory()
		p.PullEvents()

		changed, err := p.ChangeStatus(parcel.Collected, strPtr("picked up"), now.Add(time.Hour))

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, parcel.Collected, p.Status())
		assert.Equal(t, now.Add(time.Hour), p.StatusChangedAt())

		history := p.PullHistory()
		require.Len(t, history, 1)
		assert.Equal(t, parcel.Collected, history[0].Status())
		assert.Equal(t, "picked up", *history[0].Comment())

		events := p.PullEvents()
		require.Len(t, events, 1)
		changedEvent, ok := events[0].(parcel.StatusChangedEvent)
		require.True(t, ok)
		assert.Equal(t, parcel.Created, changedEvent.From)
		assert.Equal(t, parcel.Collected, changedEvent.To)
	})

	t.Run("should not append when status is unchanged", func(t *testing.T) {
		p := newParcel(t)
		p.PullHistory()

		changed, err := p.ChangeStatus(parcel.Created, strPtr("again"), now.Add(time.Minute))

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Empty(t, p.PullHistory())
		assert.Equal(t, now, p.StatusChangedAt())
	})

	// Current behavior: the documented progression is not enforced.
	t.Run("should allow backward and skipping transitions", func(t *testing.T) {
		p := newParcel(t)

		changed, err := p.ChangeStatus(parcel.Delivered, nil, now.Add(time.Minute))
		require.NoError(t, err)
		assert.True(t, changed)

		changed, err = p.ChangeStatus(parcel.Collected, nil, now.Add(2*time.Minute))
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, parcel.Collected, p.Status())
	})

	t.Run("should raise earlier timestamps to the latest entry", func(t *testing.T) {
		p := newParcel(t)
		p.PullHistory()

		_, err := p.ChangeStatus(parcel.Collected, nil, now.Add(-time.Hour))

		require.NoError(t, err)
		history := p.PullHistory()
		require.Len(t, history, 1)
		assert.Equal(t, now, history[0].Timestamp())
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		p := newParcel(t)

		changed, err := p.ChangeStatus(parcel.UnknownStatus, nil, now)

		require.Error(t, err)
		assert.False(t, changed)
		assert.True(t, errors.Is(err, errs.ErrValueIsInvalid))
	})
}

func TestParcel_RecordStatus(t *testing.T) {
	t.Run("should append even when status repeats", func(t *testing.T) {
		p := newParcel(t)
		p.PullHistory()
		p.PullEvents()

		err := p.RecordStatus(parcel.Created, strPtr("correction"), now.Add(time.Minute))

		require.NoError(t, err)
		require.Len(t, p.PullHistory(), 1)
		assert.Empty(t, p.PullEvents())
		assert.Equal(t, now.Add(time.Minute), p.StatusChangedAt())
	})
}

func TestParcel_SyncStatus(t *testing.T) {
	t.Run("should re-project status from the latest entry", func(t *testing.T) {
		p := newParcel(t)
		created := p.PullHistory()[0]
		_, err := p.ChangeStatus(parcel.Collected, nil, now.Add(time.Hour))
		require.NoError(t, err)

		require.NoError(t, p.SyncStatus(created))

		assert.Equal(t, parcel.Created, p.Status())
		assert.Equal(t, now, p.StatusChangedAt())
	})

	t.Run("should reject an entry of another parcel", func(t *testing.T) {
		p := newParcel(t)
		foreign, err := parcel.NewHistoryEntry(kernel.NewUUID(), parcel.Collected, nil, now)
		require.NoError(t, err)

		err = p.SyncStatus(foreign)

		assert.ErrorIs(t, err, parcel.ErrForeignHistoryEntry)
	})
}

func TestParcel_Assignment(t *testing.T) {
	p := newParcel(t)
	person := kernel.NewUUID()

	assert.False(t, p.IsAssignedTo(person))

	require.NoError(t, p.AssignDeliveryPerson(person))
	assert.True(t, p.IsAssignedTo(person))
	assert.False(t, p.IsAssignedTo(kernel.NewUUID()))

	var missing kernel.UUID
	assert.ErrorIs(t, p.AssignZone(missing), errs.ErrValueIsRequired)
}

func TestParcel_IsHighPriorityPending(t *testing.T) {
	p := newParcel(t)
	assert.False(t, p.IsHighPriorityPending())

	require.NoError(t, p.ChangePriority(parcel.Express))
	assert.True(t, p.IsHighPriorityPending())

	_, err := p.ChangeStatus(parcel.Delivered, nil, now.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, p.IsHighPriorityPending())
}

func TestRestoreParcel(t *testing.T) {
	zone := kernel.NewUUID()
	state := parcel.State{
		ID:              kernel.NewUUID(),
		Weight:          mustWeight(t, "1.00"),
		Status:          parcel.InTransit,
		StatusChangedAt: now.Add(time.Hour),
		Priority:        parcel.Express,
		DestinationCity: "Nice",
		CreatedAt:       now,
		SenderID:        kernel.NewUUID(),
		RecipientID:     kernel.NewUUID(),
		ZoneID:          &zone,
	}

	p, err := parcel.RestoreParcel(state)

	require.NoError(t, err)
	assert.Equal(t, parcel.InTransit, p.Status())
	assert.True(t, p.ZoneID().IsEqual(zone))
	assert.Empty(t, p.PullHistory())
	assert.Empty(t, p.PullEvents())
}

func TestParcel_Validate(t *testing.T) {
	var p parcel.Parcel
	assert.ErrorIs(t, p.Validate(), parcel.ErrParcelIsNotConstructed)
}
