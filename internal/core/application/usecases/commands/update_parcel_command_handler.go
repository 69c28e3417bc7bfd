package commands

import (
	"context"
	"errors"
	"time"

	"parceltracker/internal/core/application/views"
	"parceltracker/internal/core/domain/model/directory"
	"parceltracker/internal/core/domain/model/parcel"
	"parceltracker/internal/core/ports"
)

// UpdateParcelCommandHandler applies partial parcel updates.
type UpdateParcelCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewUpdateParcelCommandHandler(uowFactory ports.UnitOfWorkFactory) UpdateParcelCommandHandler {
	return UpdateParcelCommandHandler{uowFactory: uowFactory}
}

// Handle fails with NotFound for an unknown parcel, delivery person or zone.
// Field violations found by the aggregate are returned together.
func (h UpdateParcelCommandHandler) Handle(ctx context.Context, cmd UpdateParcelCommand) (views.ParcelView, error) {
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

	patch := cmd.Patch()
	dir := uow.DirectoryRepository()
	if patch.DeliveryPersonID != nil {
		err = ports.RequireEntity(ctx, dir, directory.KindDeliveryPerson, "deliveryPersonId", *patch.DeliveryPersonID)
		if err != nil {
			return views.ParcelView{}, err
		}
	}
	if patch.ZoneID != nil {
		if err = ports.RequireEntity(ctx, dir, directory.KindZone, "zoneId", *patch.ZoneID); err != nil {
			return views.ParcelView{}, err
		}
	}

	if err = applyPatch(p, patch, cmd); err != nil {
		return views.ParcelView{}, err
	}

	if patch.Status != nil {
		if _, err = p.ChangeStatus(*patch.Status, nil, time.Now()); err != nil {
			return views.ParcelView{}, err
		}
	}

	if err = saveParcel(ctx, uow, p); err != nil {
		return views.ParcelView{}, err
	}

	view, err := views.NewResolver(dir).Resolve(ctx, p)
	if err != nil {
		return views.ParcelView{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return views.ParcelView{}, err
	}

	return view, nil
}

func applyPatch(p *parcel.Parcel, patch ParcelPatch, cmd UpdateParcelCommand) error {
	var problems []error
	if patch.Description != nil {
		problems = append(problems, p.ChangeDescription(patch.Description))
	}
	if w := cmd.Weight(); w != nil {
		problems = append(problems, p.ChangeWeight(*w))
	}
	if patch.Priority != nil {
		problems = append(problems, p.ChangePriority(*patch.Priority))
	}
	if patch.DestinationCity != nil {
		problems = append(problems, p.ChangeDestinationCity(*patch.DestinationCity))
	}
	if patch.DeliveryPersonID != nil {
		problems = append(problems, p.AssignDeliveryPerson(*patch.DeliveryPersonID))
	}
	if patch.ZoneID != nil {
		problems = append(problems, p.AssignZone(*patch.ZoneID))
	}
	return errors.Join(problems...)
}

// saveParcel persists the parcel and the history entries it recorded.
func saveParcel(ctx context.Context, uow ports.UnitOfWork, p *parcel.Parcel) error {
	if err := uow.ParcelRepository().Update(ctx, p); err != nil {
		return err
	}
	if entries := p.PullHistory(); len(entries) > 0 {
		return uow.HistoryRepository().Append(ctx, entries...)
	}
	return nil
}
