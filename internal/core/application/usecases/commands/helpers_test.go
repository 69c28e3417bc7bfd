package commands_test

import (
	"testing"
	"time"

	"parceltracker/internal/core/domain/model/directory"
	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/domain/model/parcel"
	"parceltracker/internal/core/ports/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	factory *mocks.UnitOfWorkFactory
	uow     *mocks.UnitOfWork
	parcels *mocks.ParcelRepository
	history *mocks.HistoryRepository
	dir     *mocks.DirectoryRepository
}

// newFixture wires a unit of work whose repository accessors may be called any
// number of times; tests set expectations on the repositories themselves.
func newFixture() *fixture {
	f := &fixture{
		factory: new(mocks.UnitOfWorkFactory),
		uow:     new(mocks.UnitOfWork),
		parcels: new(mocks.ParcelRepository),
		history: new(mocks.HistoryRepository),
		dir:     new(mocks.DirectoryRepository),
	}
	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("ParcelRepository").Return(f.parcels).Maybe()
	f.uow.On("HistoryRepository").Return(f.history).Maybe()
	f.uow.On("DirectoryRepository").Return(f.dir).Maybe()
	return f
}

func (f *fixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.factory.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.parcels.AssertExpectations(t)
	f.history.AssertExpectations(t)
	f.dir.AssertExpectations(t)
}

func testContact(t *testing.T) directory.Contact {
	t.Helper()
	c, err := directory.NewContact("Ada", "Lovelace", "+44 1", "ada@example.org")
	require.NoError(t, err)
	return c
}

func testSender(t *testing.T) *directory.SenderClient {
	t.Helper()
	s, err := directory.NewSenderClient(kernel.NewUUID(), testContact(t), "1 Analytical St")
	require.NoError(t, err)
	return s
}

func testRecipient(t *testing.T) *directory.Recipient {
	t.Helper()
	r, err := directory.NewRecipient(kernel.NewUUID(), testContact(t), "2 Engine Rd")
	require.NoError(t, err)
	return r
}

func testParcel(t *testing.T, senderID, recipientID kernel.UUID) *parcel.Parcel {
	t.Helper()
	w, err := kernel.NewWeight(decimal.RequireFromString("2.50"))
	require.NoError(t, err)
	p, err := parcel.NewParcel(kernel.NewUUID(), nil, w, parcel.Normal, "Lyon",
		senderID, recipientID, nil, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	p.PullHistory()
	p.PullEvents()
	return p
}

// expectResolve allows the view resolver to load the parcel's parties.
func (f *fixture) expectResolve(sender *directory.SenderClient, recipient *directory.Recipient) {
	f.dir.On("Get", mock.Anything, directory.KindSender, sender.ID()).Return(sender, nil).Once()
	f.dir.On("Get", mock.Anything, directory.KindRecipient, recipient.ID()).Return(recipient, nil).Once()
}

func entriesWith(status parcel.Status, count int) any {
	return mock.MatchedBy(func(entries []parcel.HistoryEntry) bool {
		if len(entries) != count {
			return false
		}
		for _, e := range entries {
			if e.Status() != status {
				return false
			}
		}
		return true
	})
}

func strPtr(s string) *string {
	return &s
}
