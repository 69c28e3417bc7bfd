package queries

import (
	"context"
	"errors"

	"parceltracker/internal/core/application/views"
	"parceltracker/internal/core/ports"
	"parceltracker/internal/pkg/guard"
)

var ErrSearchParcelsQueryIsNotConstructed = errors.New(
	"SearchParcelsQuery must be created via NewSearchParcelsQuery constructor",
)

// SearchParcelsQuery returns one page of the parcels matching every supplied
// criterion. Without criteria it is the plain paginated parcel list.
type SearchParcelsQuery struct {
	criteria ports.ParcelCriteria
	page     ports.PageRequest
	guard    guard.ConstructorGuard
}

func NewSearchParcelsQuery(criteria ports.ParcelCriteria, page ports.PageRequest) (SearchParcelsQuery, error) {
	var problems []error
	if criteria.Status != nil {
		problems = append(problems, criteria.Status.Validate())
	}
	if criteria.Priority != nil {
		problems = append(problems, criteria.Priority.Validate())
	}
	if err := errors.Join(problems...); err != nil {
		return SearchParcelsQuery{}, err
	}
	if page.Size == 0 {
		page = ports.PageRequest{Size: ports.DefaultPageSize, Sort: ports.DefaultSort}
	}
	return SearchParcelsQuery{criteria: criteria, page: page, guard: guard.NewConstructorGuard()}, nil
}

func (q SearchParcelsQuery) Validate() error {
	return q.guard.Validate(ErrSearchParcelsQueryIsNotConstructed)
}

func (q SearchParcelsQuery) Criteria() ports.ParcelCriteria { return q.criteria }
func (q SearchParcelsQuery) Page() ports.PageRequest        { return q.page }

type SearchParcelsQueryHandler struct {
	parcels ports.ParcelRepository
}

func NewSearchParcelsQueryHandler(parcels ports.ParcelRepository) SearchParcelsQueryHandler {
	return SearchParcelsQueryHandler{parcels: parcels}
}

func (h SearchParcelsQueryHandler) Handle(
	ctx context.Context,
	query SearchParcelsQuery,
) (ports.Page[views.ParcelSummary], error) {
	if err := query.Validate(); err != nil {
		return ports.Page[views.ParcelSummary]{}, err
	}

	page, err := h.parcels.Search(ctx, query.Criteria(), query.Page())
	if err != nil {
		return ports.Page[views.ParcelSummary]{}, err
	}
	return ports.MapPage(page, views.Summarize), nil
}

var ErrCountParcelsQueryIsNotConstructed = errors.New(
	"CountParcelsQuery must be created via NewCountParcelsQuery constructor",
)

// CountParcelsQuery counts the parcels matching the criteria.
type CountParcelsQuery struct {
	criteria ports.ParcelCriteria
	guard    guard.ConstructorGuard
}

func NewCountParcelsQuery(criteria ports.ParcelCriteria) CountParcelsQuery {
	return CountParcelsQuery{criteria: criteria, guard: guard.NewConstructorGuard()}
}

func (q CountParcelsQuery) Validate() error {
	return q.guard.Validate(ErrCountParcelsQueryIsNotConstructed)
}

func (q CountParcelsQuery) Criteria() ports.ParcelCriteria { return q.criteria }

type CountParcelsQueryHandler struct {
	parcels ports.ParcelRepository
}

func NewCountParcelsQueryHandler(parcels ports.ParcelRepository) CountParcelsQueryHandler {
	return CountParcelsQueryHandler{parcels: parcels}
}

func (h CountParcelsQueryHandler) Handle(ctx context.Context, query CountParcelsQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}
	return h.parcels.Count(ctx, query.criteria)
}
