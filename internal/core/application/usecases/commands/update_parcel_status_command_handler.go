package commands

import (
	"context"
	"fmt"
	"time"

	"parceltracker/internal/core/application/views"
	"parceltracker/internal/core/ports"
	"parceltracker/internal/pkg/errs"
)

// UpdateParcelStatusCommandHandler changes a parcel status on behalf of its assignee.
type UpdateParcelStatusCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewUpdateParcelStatusCommandHandler(uowFactory ports.UnitOfWorkFactory) UpdateParcelStatusCommandHandler {
	return UpdateParcelStatusCommandHandler{uowFactory: uowFactory}
}

// Handle fails with BadRequest when the parcel is not assigned to the acting
// delivery person, unassigned parcels included.
//
// Resubmitting the current status is accepted and changes nothing: no history
// entry is appended, so its comment is not stored. A comment on an unchanged
// status belongs in a corrective entry (CreateHistoryEntryCommandHandler).
func (h UpdateParcelStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateParcelStatusCommand,
) (views.ParcelView, error) {
	if err := cmd.Validate(); err != nil {
		return views.ParcelView{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return views.ParcelView{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	p, err := uow.ParcelRepository().Get(ctx, cmd.ParcelID())
	if err != nil {
		return views.ParcelView{}, err
	}

	if !p.IsAssignedTo(cmd.DeliveryPersonID()) {
		return views.ParcelView{}, errs.NewBadRequestError(fmt.Sprintf(
			"parcel %s is not assigned to delivery person %s", p.ID(), cmd.DeliveryPersonID()))
	}

	if _, err = p.ChangeStatus(cmd.Status(), cmd.Comment(), time.Now()); err != nil {
		return views.ParcelView{}, err
	}

	if err = saveParcel(ctx, uow, p); err != nil {
		return views.ParcelView{}, err
	}

	view, err := views.NewResolver(uow.DirectoryRepository()).Resolve(ctx, p)
	if err != nil {
		return views.ParcelView{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return views.ParcelView{}, err
	}

	return view, nil
}
