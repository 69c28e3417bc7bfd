package queries_test

import (
	"testing"
	"time"

	"parceltracker/internal/core/domain/model/directory"
	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/domain/model/parcel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var created = time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC)

func contact(t *testing.T, first, email string) directory.Contact {
	t.Helper()
	c, err := directory.NewContact(first, "Tester", "+33 1", email)
	require.NoError(t, err)
	return c
}

func testSender(t *testing.T) *directory.SenderClient {
	t.Helper()
	s, err := directory.NewSenderClient(kernel.NewUUID(), contact(t, "Sam", "sam@example.org"), "1 Quai")
	require.NoError(t, err)
	return s
}

func testRecipient(t *testing.T) *directory.Recipient {
	t.Helper()
	r, err := directory.NewRecipient(kernel.NewUUID(), contact(t, "Rita", "Rita@Example.org"), "2 Rue")
	require.NoError(t, err)
	return r
}

func testZone(t *testing.T, name string) *directory.Zone {
	t.Helper()
	z, err := directory.NewZone(kernel.NewUUID(), name, nil)
	require.NoError(t, err)
	return z
}

func testDeliveryPerson(t *testing.T, first string, zoneID *kernel.UUID) *directory.DeliveryPerson {
	t.Helper()
	d, err := directory.NewDeliveryPerson(kernel.NewUUID(), contact(t, first, first+"@example.org"), zoneID)
	require.NoError(t, err)
	return d
}

type parcelOption func(t *testing.T, p *parcel.Parcel)

func withStatus(status parcel.Status) parcelOption {
	return func(t *testing.T, p *parcel.Parcel) {
		_, err := p.ChangeStatus(status, nil, created.Add(time.Hour))
		require.NoError(t, err)
	}
}

func withPriority(priority parcel.Priority) parcelOption {
	return func(t *testing.T, p *parcel.Parcel) {
		require.NoError(t, p.ChangePriority(priority))
	}
}

func assignedTo(id kernel.UUID) parcelOption {
	return func(t *testing.T, p *parcel.Parcel) {
		require.NoError(t, p.AssignDeliveryPerson(id))
	}
}

func inZone(id kernel.UUID) parcelOption {
	return func(t *testing.T, p *parcel.Parcel) {
		require.NoError(t, p.AssignZone(id))
	}
}

func testParcel(t *testing.T, kg string, opts ...parcelOption) *parcel.Parcel {
	t.Helper()
	w, err := kernel.NewWeight(decimal.RequireFromString(kg))
	require.NoError(t, err)
	p, err := parcel.NewParcel(kernel.NewUUID(), nil, w, parcel.Normal, "Lyon",
		kernel.NewUUID(), kernel.NewUUID(), nil, created)
	require.NoError(t, err)
	for _, opt := range opts {
		opt(t, p)
	}
	p.PullHistory()
	p.PullEvents()
	return p
}

func historyEntry(t *testing.T, parcelID kernel.UUID, status parcel.Status, at time.Time) parcel.HistoryEntry {
	t.Helper()
	e, err := parcel.NewHistoryEntry(parcelID, status, nil, at)
	require.NoError(t, err)
	return e
}
