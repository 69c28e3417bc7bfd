package queries

import (
	"context"
	"errors"

	"parceltracker/internal/core/application/views"
	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/ports"
	"parceltracker/internal/pkg/guard"
)

var ErrGetParcelQueryIsNotConstructed = errors.New(
	"GetParcelQuery must be created via NewGetParcelQuery constructor",
)

// GetParcelQuery loads one parcel with its references resolved.
type GetParcelQuery struct {
	parcelID kernel.UUID
	guard    guard.ConstructorGuard
}

func NewGetParcelQuery(parcelID kernel.UUID) (GetParcelQuery, error) {
	if err := parcelID.Validate(); err != nil {
		return GetParcelQuery{}, err
	}
	return GetParcelQuery{parcelID: parcelID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetParcelQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelQueryIsNotConstructed)
}

func (q GetParcelQuery) ParcelID() kernel.UUID {
	return q.parcelID
}

type GetParcelQueryHandler struct {
	parcels  ports.ParcelRepository
	resolver views.Resolver
}

func NewGetParcelQueryHandler(parcels ports.ParcelRepository, directory ports.Directory) GetParcelQueryHandler {
	return GetParcelQueryHandler{parcels: parcels, resolver: views.NewResolver(directory)}
}

// Handle returns the parcel with every reference resolved.
func (h GetParcelQueryHandler) Handle(ctx context.Context, query GetParcelQuery) (views.ParcelView, error) {
	if err := query.Validate(); err != nil {
		return views.ParcelView{}, err
	}

	p, err := h.parcels.Get(ctx, query.ParcelID())
	if err != nil {
		return views.ParcelView{}, err
	}
	return h.resolver.Resolve(ctx, p)
}
