package commands

import (
	"context"
	"time"

	"parceltracker/internal/core/ports"
)

// DeleteParcelCommandHandler removes a parcel together with its line items and
// history.
type DeleteParcelCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewDeleteParcelCommandHandler(uowFactory ports.UnitOfWorkFactory) DeleteParcelCommandHandler {
	return DeleteParcelCommandHandler{uowFactory: uowFactory}
}

// Handle fails with NotFound when the parcel does not exist.
func (h DeleteParcelCommandHandler) Handle(ctx context.Context, cmd DeleteParcelCommand) error {
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

	repo := uow.ParcelRepository()
	p, err := repo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	p.MarkDeleted(time.Now())
	if err = repo.Delete(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
