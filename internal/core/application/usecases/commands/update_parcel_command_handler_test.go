package commands_test

import (
	"strings"
	"testing"

	"parceltracker/internal/core/application/usecases/commands"
	"parceltracker/internal/core/domain/model/directory"
	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/domain/model/parcel"
	"parceltracker/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateParcelCommandHandler_Handle_StatusChangeAppendsEntry(t *testing.T) {
	ctx := t.Context()
	sender := testSender(t)
	recipient := testRecipient(t)
	p := testParcel(t, sender.ID(), recipient.ID())
	inTransit := parcel.InTransit

	cmd, err := commands.NewUpdateParcelCommand(p.ID(), commands.ParcelPatch{Status: &inTransit})
	require.NoError(t, err)

	f := newFixture()
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.parcels.On("Get", ctx, p.ID()).Return(p, nil).Once(),
		f.parcels.On("Update", ctx, p).Return(nil).Once(),
		f.history.On("Append", ctx, entriesWith(parcel.InTransit, 1)).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	f.expectResolve(sender, recipient)

	view, err := commands.NewUpdateParcelCommandHandler(f.factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, parcel.InTransit, view.Status)
	assert.Equal(t, parcel.InTransit, p.Status())
	f.assertExpectations(t)
}

func TestUpdateParcelCommandHandler_Handle_SameStatusAppendsNothing(t *testing.T) {
	ctx := t.Context()
	sender := testSender(t)
	recipient := testRecipient(t)
	p := testParcel(t, sender.ID(), recipient.ID())
	created := parcel.Created
	city := "Marseille"

	cmd, err := commands.NewUpdateParcelCommand(p.ID(), commands.ParcelPatch{Status: &created, DestinationCity: &city})
	require.NoError(t, err)

	f := newFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.parcels.On("Get", ctx, p.ID()).Return(p, nil).Once()
	f.parcels.On("Update", ctx, p).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
	f.expectResolve(sender, recipient)

	_, err = commands.NewUpdateParcelCommandHandler(f.factory).Handle(ctx, cmd)

	require.NoError(t, err)
	f.history.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	assert.Equal(t, "Marseille", p.DestinationCity())
	f.assertExpectations(t)
}

func TestUpdateParcelCommandHandler_Handle_OmittedFieldsUnchanged(t *testing.T) {
	ctx := t.Context()
	sender := testSender(t)
	recipient := testRecipient(t)
	p := testParcel(t, sender.ID(), recipient.ID())
	description, priority, city := p.Description(), p.Priority(), p.DestinationCity()
	weight := decimal.RequireFromString("7.25")

	cmd, err := commands.NewUpdateParcelCommand(p.ID(), commands.ParcelPatch{Weight: &weight})
	require.NoError(t, err)

	f := newFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.parcels.On("Get", ctx, p.ID()).Return(p, nil).Once()
	f.parcels.On("Update", ctx, p).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
	f.expectResolve(sender, recipient)

	_, err = commands.NewUpdateParcelCommandHandler(f.factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "7.25", p.Weight().String())
	assert.Equal(t, description, p.Description())
	assert.Equal(t, priority, p.Priority())
	assert.Equal(t, city, p.DestinationCity())
	assert.Equal(t, parcel.Created, p.Status())
	assert.Nil(t, p.DeliveryPersonID())
	assert.Nil(t, p.ZoneID())
	f.assertExpectations(t)
}

func TestUpdateParcelCommandHandler_Handle_UnknownZone(t *testing.T) {
	ctx := t.Context()
	p := testParcel(t, kernel.NewUUID(), kernel.NewUUID())
	zoneID := kernel.NewUUID()

	cmd, err := commands.NewUpdateParcelCommand(p.ID(), commands.ParcelPatch{ZoneID: &zoneID})
	require.NoError(t, err)

	f := newFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.parcels.On("Get", ctx, p.ID()).Return(p, nil).Once()
	f.dir.On("Exists", ctx, directory.KindZone, zoneID).Return(false, nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	_, err = commands.NewUpdateParcelCommandHandler(f.factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Contains(t, err.Error(), "zone with zoneId")
	assert.Nil(t, p.ZoneID())
	f.assertExpectations(t)
}

func TestUpdateParcelCommandHandler_Handle_UnknownParcel(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewUpdateParcelCommand(id, commands.ParcelPatch{})
	require.NoError(t, err)

	f := newFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.parcels.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("parcel", "id", id.String())).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	_, err = commands.NewUpdateParcelCommandHandler(f.factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.assertExpectations(t)
}

func TestUpdateParcelCommandHandler_Handle_CollectsAggregateViolations(t *testing.T) {
	ctx := t.Context()
	p := testParcel(t, kernel.NewUUID(), kernel.NewUUID())
	blank := "   "
	description := strings.Repeat("x", 256)

	cmd, err := commands.NewUpdateParcelCommand(p.ID(), commands.ParcelPatch{
		DestinationCity: &blank,
		Description:     &description,
	})
	require.NoError(t, err)

	f := newFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.parcels.On("Get", ctx, p.ID()).Return(p, nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	_, err = commands.NewUpdateParcelCommandHandler(f.factory).Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	f.parcels.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestNewUpdateParcelCommand_InvalidFields(t *testing.T) {
	weight := decimal.RequireFromString("0")
	status := parcel.UnknownStatus
	var zone kernel.UUID

	_, err := commands.NewUpdateParcelCommand(kernel.NewUUID(), commands.ParcelPatch{
		Weight: &weight,
		Status: &status,
		ZoneID: &zone,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
