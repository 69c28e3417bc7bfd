package commands

import (
	"context"
	"errors"

	"parceltracker/internal/core/ports"
	"parceltracker/internal/pkg/errs"
)

// DeleteHistoryEntryCommandHandler deletes a ledger entry and re-projects the
// parcel status from the entry that is newest afterwards.
type DeleteHistoryEntryCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewDeleteHistoryEntryCommandHandler(uowFactory ports.UnitOfWorkFactory) DeleteHistoryEntryCommandHandler {
	return DeleteHistoryEntryCommandHandler{uowFactory: uowFactory}
}

// Handle fails with NotFound for an unknown entry. When the last entry of a
// parcel is deleted the parcel keeps its status.
func (h DeleteHistoryEntryCommandHandler) Handle(ctx context.Context, cmd DeleteHistoryEntryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	history := uow.HistoryRepository()
	entry, err := history.Get(ctx, cmd.EntryID())
	if err != nil {
		return err
	}
	if err = history.Delete(ctx, entry.ID()); err != nil {
		return err
	}

	latest, err := history.Latest(ctx, entry.ParcelID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return uow.Commit(ctx)
	case err != nil:
		return err
	}

	parcels := uow.ParcelRepository()
	p, err := parcels.Get(ctx, entry.ParcelID())
	if err != nil {
		return err
	}
	if err = p.SyncStatus(latest); err != nil {
		return err
	}
	if err = parcels.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
