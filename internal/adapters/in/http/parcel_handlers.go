package http

import (
	"net/http"

	"parceltracker/internal/core/application/usecases/commands"
	"parceltracker/internal/core/application/usecases/queries"
	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/generated/servers"
	"parceltracker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CreateParcel handles POST /api/v1/parcels.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var body servers.CreateParcelJSONRequestBody
	invalid, err := bind(ctx, &body)
	if err != nil {
		return err
	}

	var items []commands.LineItemInput
	if body.Items != nil {
		items = make([]commands.LineItemInput, 0, len(*body.Items))
		for _, item := range *body.Items {
			items = append(items, commands.LineItemInput{
				ProductID: bodyUUID(item.ProductId),
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
			})
		}
	}

	cmd, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(),
		body.Description,
		body.Weight,
		bodyPriority(body.Priority),
		body.DestinationCity,
		bodyUUID(body.SenderId),
		bodyUUID(body.RecipientId),
		items,
	)
	if rejected(invalid, err) {
		return errs.Merge(invalid, err)
	}

	view, err := s.commands.CreateParcel.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, toParcel(view))
}

// ListParcels handles GET /api/v1/parcels.
func (s *Server) ListParcels(ctx echo.Context, params servers.ListParcelsParams) error {
	return s.search(ctx, criteriaParams{}, params.Page, params.Size, params.Sort)
}

// SearchParcels handles GET /api/v1/parcels/search.
func (s *Server) SearchParcels(ctx echo.Context, params servers.SearchParcelsParams) error {
	filter := criteriaParams{
		Status:           params.Status,
		Priority:         params.Priority,
		ZoneId:           params.ZoneId,
		DeliveryPersonId: params.DeliveryPersonId,
		SenderId:         params.SenderId,
		RecipientId:      params.RecipientId,
		City:             params.City,
		UnassignedOnly:   params.UnassignedOnly,
	}
	return s.search(ctx, filter, params.Page, params.Size, params.Sort)
}

func (s *Server) search(ctx echo.Context, filter criteriaParams, page, size *int, sort *string) error {
	criteria, err := filter.criteria()
	if err != nil {
		return err
	}
	request, err := pageRequest(page, size, sort)
	if err != nil {
		return errs.Collect(err)
	}
	query, err := queries.NewSearchParcelsQuery(criteria, request)
	if err != nil {
		return errs.Collect(err)
	}

	result, err := s.queries.SearchParcels.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toParcelPage(result))
}

// CountParcels handles GET /api/v1/parcels/count.
func (s *Server) CountParcels(ctx echo.Context, params servers.CountParcelsParams) error {
	criteria, err := criteriaParams(params).criteria()
	if err != nil {
		return err
	}

	count, err := s.queries.CountParcels.Handle(ctx.Request().Context(), queries.NewCountParcelsQuery(criteria))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, servers.Count{Count: count})
}

// GetUnassignedParcels handles GET /api/v1/parcels/unassigned.
func (s *Server) GetUnassignedParcels(ctx echo.Context) error {
	return s.parcelsBy(ctx, queries.NewUnassignedParcelsQuery(), nil)
}

// GetHighPriorityPendingParcels handles GET /api/v1/parcels/high-priority-pending.
func (s *Server) GetHighPriorityPendingParcels(ctx echo.Context) error {
	return s.parcelsBy(ctx, queries.NewHighPriorityPendingParcelsQuery(), nil)
}

// GetParcelsByStatus handles GET /api/v1/parcels/by-status/{status}.
func (s *Server) GetParcelsByStatus(ctx echo.Context, status servers.ParcelStatus) error {
	parsed, err := pathStatus(status)
	if err != nil {
		return err
	}
	query, err := queries.NewParcelsByStatusQuery(parsed)
	return s.parcelsBy(ctx, query, err)
}

// GetParcelsByPriority handles GET /api/v1/parcels/by-priority/{priority}.
func (s *Server) GetParcelsByPriority(ctx echo.Context, priority servers.ParcelPriority) error {
	parsed, err := pathPriority(priority)
	if err != nil {
		return err
	}
	query, err := queries.NewParcelsByPriorityQuery(parsed)
	return s.parcelsBy(ctx, query, err)
}

// GetParcelsByCity handles GET /api/v1/parcels/by-city/{city}.
func (s *Server) GetParcelsByCity(ctx echo.Context, city string) error {
	query, err := queries.NewParcelsByCityQuery(city)
	return s.parcelsBy(ctx, query, err)
}

// GetParcelsByZone handles GET /api/v1/parcels/by-zone/{zoneId}.
func (s *Server) GetParcelsByZone(ctx echo.Context, zoneId servers.ZoneId) error {
	return s.parcelsByID(ctx, "zoneId", zoneId, queries.NewParcelsByZoneQuery)
}

// GetParcelsBySender handles GET /api/v1/parcels/by-sender/{senderId}.
func (s *Server) GetParcelsBySender(ctx echo.Context, senderId openapi_types.UUID) error {
	return s.parcelsByID(ctx, "senderId", senderId, queries.NewParcelsBySenderQuery)
}

// GetParcelsByRecipient handles GET /api/v1/parcels/by-recipient/{recipientId}.
func (s *Server) GetParcelsByRecipient(ctx echo.Context, recipientId openapi_types.UUID) error {
	return s.parcelsByID(ctx, "recipientId", recipientId, queries.NewParcelsByRecipientQuery)
}

// GetParcelsByDeliveryPerson handles GET /api/v1/parcels/by-delivery-person/{deliveryPersonId}.
func (s *Server) GetParcelsByDeliveryPerson(ctx echo.Context, deliveryPersonId servers.DeliveryPersonId) error {
	return s.parcelsByID(ctx, "deliveryPersonId", deliveryPersonId, queries.NewParcelsByDeliveryPersonQuery)
}

func (s *Server) parcelsByID(
	ctx echo.Context,
	name string,
	id openapi_types.UUID,
	build func(kernel.UUID) (queries.GetParcelsByQuery, error),
) error {
	parsed, err := pathUUID(name, id)
	if err != nil {
		return err
	}
	query, err := build(parsed)
	return s.parcelsBy(ctx, query, err)
}

func (s *Server) parcelsBy(ctx echo.Context, query queries.GetParcelsByQuery, err error) error {
	if err != nil {
		return errs.Collect(err)
	}

	summaries, err := s.queries.GetParcelsBy.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toParcelSummaries(summaries))
}

// GroupParcels handles GET /api/v1/parcels/grouped/{dimension}.
func (s *Server) GroupParcels(ctx echo.Context, dimension servers.GroupDimension) error {
	parsed, err := queries.ParseGroupDimension(string(dimension))
	if err != nil {
		return errs.NewBadRequestErrorWithCause("invalid dimension", err)
	}
	query, err := queries.NewGroupParcelsQuery(parsed)
	if err != nil {
		return errs.Collect(err)
	}

	counts, err := s.queries.GroupParcels.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, servers.GroupCounts(counts))
}

// GetParcel handles GET /api/v1/parcels/{parcelId}.
func (s *Server) GetParcel(ctx echo.Context, parcelId servers.ParcelId) error {
	id, err := pathUUID("parcelId", parcelId)
	if err != nil {
		return err
	}
	query, err := queries.NewGetParcelQuery(id)
	if err != nil {
		return errs.Collect(err)
	}

	view, err := s.queries.GetParcel.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toParcel(view))
}

// UpdateParcel handles PATCH /api/v1/parcels/{parcelId}.
func (s *Server) UpdateParcel(ctx echo.Context, parcelId servers.ParcelId) error {
	id, err := pathUUID("parcelId", parcelId)
	if err != nil {
		return err
	}
	var body servers.UpdateParcelJSONRequestBody
	invalid, err := bind(ctx, &body)
	if err != nil {
		return err
	}

	patch := commands.ParcelPatch{
		Description:     body.Description,
		Weight:          body.Weight,
		DestinationCity: body.DestinationCity,
	}
	if body.Priority != nil {
		priority := bodyPriority(*body.Priority)
		patch.Priority = &priority
	}
	if body.Status != nil {
		status := bodyStatus(*body.Status)
		patch.Status = &status
	}
	if body.DeliveryPersonId != nil {
		person := bodyUUID(*body.DeliveryPersonId)
		patch.DeliveryPersonID = &person
	}
	if body.ZoneId != nil {
		zone := bodyUUID(*body.ZoneId)
		patch.ZoneID = &zone
	}

	cmd, err := commands.NewUpdateParcelCommand(id, patch)
	if rejected(invalid, err) {
		return errs.Merge(invalid, err)
	}
	view, err := s.commands.UpdateParcel.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toParcel(view))
}

// DeleteParcel handles DELETE /api/v1/parcels/{parcelId}.
func (s *Server) DeleteParcel(ctx echo.Context, parcelId servers.ParcelId) error {
	id, err := pathUUID("parcelId", parcelId)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteParcelCommand(id)
	if err != nil {
		return errs.Collect(err)
	}

	if err = s.commands.DeleteParcel.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// UpdateParcelStatus handles PATCH /api/v1/parcels/{parcelId}/status. The acting
// delivery person is the authenticated caller.
func (s *Server) UpdateParcelStatus(ctx echo.Context, parcelId servers.ParcelId) error {
	principal, err := requirePrincipal(ctx)
	if err != nil {
		return err
	}
	if principal.DeliveryPersonID == nil {
		return ErrForbidden
	}
	id, err := pathUUID("parcelId", parcelId)
	if err != nil {
		return err
	}
	var body servers.UpdateParcelStatusJSONRequestBody
	invalid, err := bind(ctx, &body)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateParcelStatusCommand(id, bodyStatus(body.Status), *principal.DeliveryPersonID, body.Comment)
	if rejected(invalid, err) {
		return errs.Merge(invalid, err)
	}
	view, err := s.commands.UpdateParcelStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toParcel(view))
}

// GetParcelHistory handles GET /api/v1/parcels/{parcelId}/history.
func (s *Server) GetParcelHistory(ctx echo.Context, parcelId servers.ParcelId) error {
	return s.GetHistoryByParcel(ctx, parcelId)
}

// TrackParcel handles the public GET /api/v1/tracking/{parcelId}.
func (s *Server) TrackParcel(ctx echo.Context, parcelId servers.ParcelId, params servers.TrackParcelParams) error {
	id, err := pathUUID("parcelId", parcelId)
	if err != nil {
		return err
	}
	query, err := queries.NewTrackParcelQuery(id, params.Email)
	if err != nil {
		return errs.Collect(err)
	}

	tracking, err := s.queries.TrackParcel.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toTracking(tracking))
}
