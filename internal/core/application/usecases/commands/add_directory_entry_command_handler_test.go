package commands_test

import (
	"testing"

	"parceltracker/internal/core/application/usecases/commands"
	"parceltracker/internal/core/domain/model/directory"
	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddDirectoryEntryCommandHandler_Handle_Zone(t *testing.T) {
	ctx := t.Context()
	zone, err := directory.NewZone(kernel.NewUUID(), "North", nil)
	require.NoError(t, err)
	cmd, err := commands.NewAddDirectoryEntryCommand(zone)
	require.NoError(t, err)

	f := newFixture()
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.dir.On("Add", ctx, zone).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = commands.NewAddDirectoryEntryCommandHandler(f.factory).Handle(ctx, cmd)

	require.NoError(t, err)
	f.assertExpectations(t)
}

func TestAddDirectoryEntryCommandHandler_Handle_UnknownZone(t *testing.T) {
	ctx := t.Context()
	zoneID := kernel.NewUUID()
	person, err := directory.NewDeliveryPerson(kernel.NewUUID(), testContact(t), &zoneID)
	require.NoError(t, err)
	cmd, err := commands.NewAddDirectoryEntryCommand(person)
	require.NoError(t, err)

	f := newFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.dir.On("Exists", ctx, directory.KindZone, zoneID).Return(false, nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	err = commands.NewAddDirectoryEntryCommandHandler(f.factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.dir.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestAddDirectoryEntryCommandHandler_Handle_Duplicate(t *testing.T) {
	ctx := t.Context()
	zone, err := directory.NewZone(kernel.NewUUID(), "North", nil)
	require.NoError(t, err)
	cmd, err := commands.NewAddDirectoryEntryCommand(zone)
	require.NoError(t, err)

	f := newFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.dir.On("Add", ctx, zone).Return(errs.NewDuplicateError("zone", "name", "North")).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	err = commands.NewAddDirectoryEntryCommandHandler(f.factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrDuplicate)
	f.assertExpectations(t)
}

func TestNewAddDirectoryEntryCommand_Nil(t *testing.T) {
	_, err := commands.NewAddDirectoryEntryCommand(nil)

	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
