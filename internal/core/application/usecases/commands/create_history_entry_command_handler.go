package commands

import (
	"context"
	"time"

	"parceltracker/internal/core/application/views"
	"parceltracker/internal/core/ports"
)

// CreateHistoryEntryCommandHandler records a corrective entry and refreshes the
// parcel's status so it keeps matching the newest entry.
type CreateHistoryEntryCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewCreateHistoryEntryCommandHandler(uowFactory ports.UnitOfWorkFactory) CreateHistoryEntryCommandHandler {
	return CreateHistoryEntryCommandHandler{uowFactory: uowFactory}
}

func (h CreateHistoryEntryCommandHandler) Handle(
	ctx context.Context,
	cmd CreateHistoryEntryCommand,
) (views.HistoryEntryView, error) {
	if err := cmd.Validate(); err != nil {
		return views.HistoryEntryView{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return views.HistoryEntryView{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	p, err := uow.ParcelRepository().Get(ctx, cmd.ParcelID())
	if err != nil {
		return views.HistoryEntryView{}, err
	}

	if err = p.RecordStatus(cmd.Status(), cmd.Comment(), time.Now()); err != nil {
		return views.HistoryEntryView{}, err
	}
	entries := p.PullHistory()

	if err = uow.ParcelRepository().Update(ctx, p); err != nil {
		return views.HistoryEntryView{}, err
	}
	if err = uow.HistoryRepository().Append(ctx, entries...); err != nil {
		return views.HistoryEntryView{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return views.HistoryEntryView{}, err
	}

	return views.History(entries[len(entries)-1]), nil
}
