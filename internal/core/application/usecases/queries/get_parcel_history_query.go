package queries

import (
	"context"
	"errors"

	"parceltracker/internal/core/application/views"
	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/ports"
	"parceltracker/internal/pkg/guard"
)

var ErrParcelHistoryQueryIsNotConstructed = errors.New(
	"ParcelHistoryQuery must be created via NewParcelHistoryQuery constructor",
)

// ParcelHistoryQuery addresses the ledger of one parcel. It is shared by the
// timeline, latest and count handlers, each of which answers NotFound for an
// unknown parcel.
type ParcelHistoryQuery struct {
	parcelID kernel.UUID
	guard    guard.ConstructorGuard
}

func NewParcelHistoryQuery(parcelID kernel.UUID) (ParcelHistoryQuery, error) {
	if err := parcelID.Validate(); err != nil {
		return ParcelHistoryQuery{}, err
	}
	return ParcelHistoryQuery{parcelID: parcelID, guard: guard.NewConstructorGuard()}, nil
}

func (q ParcelHistoryQuery) Validate() error {
	return q.guard.Validate(ErrParcelHistoryQueryIsNotConstructed)
}

func (q ParcelHistoryQuery) ParcelID() kernel.UUID {
	return q.parcelID
}

type parcelHistoryReader struct {
	parcels ports.ParcelRepository
	history ports.HistoryRepository
}

func (r parcelHistoryReader) check(ctx context.Context, query ParcelHistoryQuery) error {
	if err := query.Validate(); err != nil {
		return err
	}
	_, err := r.parcels.Get(ctx, query.ParcelID())
	return err
}

// GetParcelHistoryQueryHandler returns the timeline of a parcel, oldest first.
type GetParcelHistoryQueryHandler struct {
	parcelHistoryReader
}

func NewGetParcelHistoryQueryHandler(
	parcels ports.ParcelRepository,
	history ports.HistoryRepository,
) GetParcelHistoryQueryHandler {
	return GetParcelHistoryQueryHandler{parcelHistoryReader{parcels: parcels, history: history}}
}

func (h GetParcelHistoryQueryHandler) Handle(ctx context.Context, query ParcelHistoryQuery) ([]views.HistoryEntryView, error) {
	if err := h.check(ctx, query); err != nil {
		return nil, err
	}
	timeline, err := h.history.Timeline(ctx, query.ParcelID())
	if err != nil {
		return nil, err
	}
	return views.HistoryList(timeline), nil
}

// GetLatestHistoryEntryQueryHandler returns the most recent entry of a parcel.
type GetLatestHistoryEntryQueryHandler struct {
	parcelHistoryReader
}

func NewGetLatestHistoryEntryQueryHandler(
	parcels ports.ParcelRepository,
	history ports.HistoryRepository,
) GetLatestHistoryEntryQueryHandler {
	return GetLatestHistoryEntryQueryHandler{parcelHistoryReader{parcels: parcels, history: history}}
}

func (h GetLatestHistoryEntryQueryHandler) Handle(ctx context.Context, query ParcelHistoryQuery) (views.HistoryEntryView, error) {
	if err := h.check(ctx, query); err != nil {
		return views.HistoryEntryView{}, err
	}
	entry, err := h.history.Latest(ctx, query.ParcelID())
	if err != nil {
		return views.HistoryEntryView{}, err
	}
	return views.History(entry), nil
}

type CountParcelHistoryQueryHandler struct {
	parcelHistoryReader
}

func NewCountParcelHistoryQueryHandler(
	parcels ports.ParcelRepository,
	history ports.HistoryRepository,
) CountParcelHistoryQueryHandler {
	return CountParcelHistoryQueryHandler{parcelHistoryReader{parcels: parcels, history: history}}
}

func (h CountParcelHistoryQueryHandler) Handle(ctx context.Context, query ParcelHistoryQuery) (int64, error) {
	if err := h.check(ctx, query); err != nil {
		return 0, err
	}
	return h.history.CountByParcel(ctx, query.ParcelID())
}
