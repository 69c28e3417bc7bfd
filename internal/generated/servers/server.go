// Package servers binds api/openapi.yml to echo: the ServerInterface the HTTP
// adapter implements, the wrapper that binds path and query parameters, the
// request and response types, and the loader of the embedded document.
//
// The layout follows what oapi-codegen emits for its echo server target.
// Keep it in step with api/openapi.yml by hand when the document changes.
package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {

	// (GET /api/v1/delivery-persons)
	ListDeliveryPersons(ctx echo.Context) error

	// (POST /api/v1/delivery-persons)
	CreateDeliveryPerson(ctx echo.Context) error

	// (GET /api/v1/history)
	ListHistoryEntries(ctx echo.Context) error

	// (POST /api/v1/history)
	CreateHistoryEntry(ctx echo.Context) error

	// (GET /api/v1/history/delivered-today/count)
	CountDeliveredToday(ctx echo.Context) error

	// (GET /api/v1/history/parcels/{parcelId})
	GetHistoryByParcel(ctx echo.Context, parcelId ParcelId) error

	// (GET /api/v1/history/parcels/{parcelId}/count)
	CountHistoryEntries(ctx echo.Context, parcelId ParcelId) error

	// (GET /api/v1/history/parcels/{parcelId}/latest)
	GetLatestHistoryEntry(ctx echo.Context, parcelId ParcelId) error

	// (GET /api/v1/history/with-comments)
	GetCommentedHistoryEntries(ctx echo.Context) error

	// (DELETE /api/v1/history/{entryId})
	DeleteHistoryEntry(ctx echo.Context, entryId EntryId) error

	// (GET /api/v1/history/{entryId})
	GetHistoryEntry(ctx echo.Context, entryId EntryId) error

	// (GET /api/v1/parcels)
	ListParcels(ctx echo.Context, params ListParcelsParams) error

	// (POST /api/v1/parcels)
	CreateParcel(ctx echo.Context) error

	// (GET /api/v1/parcels/by-city/{city})
	GetParcelsByCity(ctx echo.Context, city string) error

	// (GET /api/v1/parcels/by-delivery-person/{deliveryPersonId})
	GetParcelsByDeliveryPerson(ctx echo.Context, deliveryPersonId DeliveryPersonId) error

	// (GET /api/v1/parcels/by-priority/{priority})
	GetParcelsByPriority(ctx echo.Context, priority ParcelPriority) error

	// (GET /api/v1/parcels/by-recipient/{recipientId})
	GetParcelsByRecipient(ctx echo.Context, recipientId openapi_types.UUID) error

	// (GET /api/v1/parcels/by-sender/{senderId})
	GetParcelsBySender(ctx echo.Context, senderId openapi_types.UUID) error

	// (GET /api/v1/parcels/by-status/{status})
	GetParcelsByStatus(ctx echo.Context, status ParcelStatus) error

	// (GET /api/v1/parcels/by-zone/{zoneId})
	GetParcelsByZone(ctx echo.Context, zoneId ZoneId) error

	// (GET /api/v1/parcels/count)
	CountParcels(ctx echo.Context, params CountParcelsParams) error

	// (GET /api/v1/parcels/grouped/{dimension})
	GroupParcels(ctx echo.Context, dimension GroupDimension) error

	// (GET /api/v1/parcels/high-priority-pending)
	GetHighPriorityPendingParcels(ctx echo.Context) error

	// (GET /api/v1/parcels/search)
	SearchParcels(ctx echo.Context, params SearchParcelsParams) error

	// (GET /api/v1/parcels/unassigned)
	GetUnassignedParcels(ctx echo.Context) error

	// (DELETE /api/v1/parcels/{parcelId})
	DeleteParcel(ctx echo.Context, parcelId ParcelId) error

	// (GET /api/v1/parcels/{parcelId})
	GetParcel(ctx echo.Context, parcelId ParcelId) error

	// (PATCH /api/v1/parcels/{parcelId})
	UpdateParcel(ctx echo.Context, parcelId ParcelId) error

	// (GET /api/v1/parcels/{parcelId}/history)
	GetParcelHistory(ctx echo.Context, parcelId ParcelId) error

	// (PATCH /api/v1/parcels/{parcelId}/status)
	UpdateParcelStatus(ctx echo.Context, parcelId ParcelId) error

	// (GET /api/v1/products)
	ListProducts(ctx echo.Context) error

	// (POST /api/v1/products)
	CreateProduct(ctx echo.Context) error

	// (GET /api/v1/recipients)
	ListRecipients(ctx echo.Context) error

	// (POST /api/v1/recipients)
	CreateRecipient(ctx echo.Context) error

	// (GET /api/v1/senders)
	ListSenders(ctx echo.Context) error

	// (POST /api/v1/senders)
	CreateSender(ctx echo.Context) error

	// (GET /api/v1/statistics/delivery-persons)
	GetAllDeliveryPersonStatistics(ctx echo.Context) error

	// (GET /api/v1/statistics/delivery-persons/{deliveryPersonId})
	GetDeliveryPersonStatistics(ctx echo.Context, deliveryPersonId DeliveryPersonId) error

	// (GET /api/v1/statistics/global)
	GetGlobalStatistics(ctx echo.Context) error

	// (GET /api/v1/statistics/zones)
	GetAllZoneStatistics(ctx echo.Context) error

	// (GET /api/v1/statistics/zones/{zoneId})
	GetZoneStatistics(ctx echo.Context, zoneId ZoneId) error

	// (GET /api/v1/tracking/{parcelId})
	TrackParcel(ctx echo.Context, parcelId ParcelId, params TrackParcelParams) error

	// (GET /api/v1/zones)
	ListZones(ctx echo.Context) error

	// (POST /api/v1/zones)
	CreateZone(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListDeliveryPersons converts echo context to params.
func (w *ServerInterfaceWrapper) ListDeliveryPersons(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListDeliveryPersons(ctx)
	return err
}

// CreateDeliveryPerson converts echo context to params.
func (w *ServerInterfaceWrapper) CreateDeliveryPerson(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateDeliveryPerson(ctx)
	return err
}

// ListHistoryEntries converts echo context to params.
func (w *ServerInterfaceWrapper) ListHistoryEntries(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListHistoryEntries(ctx)
	return err
}

// CreateHistoryEntry converts echo context to params.
func (w *ServerInterfaceWrapper) CreateHistoryEntry(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateHistoryEntry(ctx)
	return err
}

// CountDeliveredToday converts echo context to params.
func (w *ServerInterfaceWrapper) CountDeliveredToday(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CountDeliveredToday(ctx)
	return err
}

// GetHistoryByParcel converts echo context to params.
func (w *ServerInterfaceWrapper) GetHistoryByParcel(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "parcelId" -------------
	var parcelId ParcelId

	err = runtime.BindStyledParameterWithOptions("simple", "parcelId", ctx.Param("parcelId"), &parcelId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter parcelId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetHistoryByParcel(ctx, parcelId)
	return err
}

// CountHistoryEntries converts echo context to params.
func (w *ServerInterfaceWrapper) CountHistoryEntries(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "parcelId" -------------
	var parcelId ParcelId

	err = runtime.BindStyledParameterWithOptions("simple", "parcelId", ctx.Param("parcelId"), &parcelId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter parcelId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CountHistoryEntries(ctx, parcelId)
	return err
}

// GetLatestHistoryEntry converts echo context to params.
func (w *ServerInterfaceWrapper) GetLatestHistoryEntry(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "parcelId" -------------
	var parcelId ParcelId

	err = runtime.BindStyledParameterWithOptions("simple", "parcelId", ctx.Param("parcelId"), &parcelId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter parcelId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetLatestHistoryEntry(ctx, parcelId)
	return err
}

// GetCommentedHistoryEntries converts echo context to params.
func (w *ServerInterfaceWrapper) GetCommentedHistoryEntries(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetCommentedHistoryEntries(ctx)
	return err
}

// DeleteHistoryEntry converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteHistoryEntry(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "entryId" -------------
	var entryId EntryId

	err = runtime.BindStyledParameterWithOptions("simple", "entryId", ctx.Param("entryId"), &entryId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter entryId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeleteHistoryEntry(ctx, entryId)
	return err
}

// GetHistoryEntry converts echo context to params.
func (w *ServerInterfaceWrapper) GetHistoryEntry(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "entryId" -------------
	var entryId EntryId

	err = runtime.BindStyledParameterWithOptions("simple", "entryId", ctx.Param("entryId"), &entryId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter entryId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetHistoryEntry(ctx, entryId)
	return err
}

// ListParcels converts echo context to params.
func (w *ServerInterfaceWrapper) ListParcels(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params ListParcelsParams
	// ------------- Optional query parameter "page" -------------

	err = runtime.BindQueryParameter("form", true, false, "page", ctx.QueryParams(), &params.Page)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter page: %s", err))
	}

	// ------------- Optional query parameter "size" -------------

	err = runtime.BindQueryParameter("form", true, false, "size", ctx.QueryParams(), &params.Size)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter size: %s", err))
	}

	// ------------- Optional query parameter "sort" -------------

	err = runtime.BindQueryParameter("form", true, false, "sort", ctx.QueryParams(), &params.Sort)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter sort: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListParcels(ctx, params)
	return err
}

// CreateParcel converts echo context to params.
func (w *ServerInterfaceWrapper) CreateParcel(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateParcel(ctx)
	return err
}

// GetParcelsByCity converts echo context to params.
func (w *ServerInterfaceWrapper) GetParcelsByCity(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "city" -------------
	var city string

	err = runtime.BindStyledParameterWithOptions("simple", "city", ctx.Param("city"), &city, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter city: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetParcelsByCity(ctx, city)
	return err
}

// GetParcelsByDeliveryPerson converts echo context to params.
func (w *ServerInterfaceWrapper) GetParcelsByDeliveryPerson(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "deliveryPersonId" -------------
	var deliveryPersonId DeliveryPersonId

	err = runtime.BindStyledParameterWithOptions("simple", "deliveryPersonId", ctx.Param("deliveryPersonId"), &deliveryPersonId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter deliveryPersonId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetParcelsByDeliveryPerson(ctx, deliveryPersonId)
	return err
}

// GetParcelsByPriority converts echo context to params.
func (w *ServerInterfaceWrapper) GetParcelsByPriority(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "priority" -------------
	var priority ParcelPriority

	err = runtime.BindStyledParameterWithOptions("simple", "priority", ctx.Param("priority"), &priority, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter priority: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetParcelsByPriority(ctx, priority)
	return err
}

// GetParcelsByRecipient converts echo context to params.
func (w *ServerInterfaceWrapper) GetParcelsByRecipient(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "recipientId" -------------
	var recipientId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "recipientId", ctx.Param("recipientId"), &recipientId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter recipientId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetParcelsByRecipient(ctx, recipientId)
	return err
}

// GetParcelsBySender converts echo context to params.
func (w *ServerInterfaceWrapper) GetParcelsBySender(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "senderId" -------------
	var senderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "senderId", ctx.Param("senderId"), &senderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter senderId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetParcelsBySender(ctx, senderId)
	return err
}

// GetParcelsByStatus converts echo context to params.
func (w *ServerInterfaceWrapper) GetParcelsByStatus(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "status" -------------
	var status ParcelStatus

	err = runtime.BindStyledParameterWithOptions("simple", "status", ctx.Param("status"), &status, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetParcelsByStatus(ctx, status)
	return err
}

// GetParcelsByZone converts echo context to params.
func (w *ServerInterfaceWrapper) GetParcelsByZone(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "zoneId" -------------
	var zoneId ZoneId

	err = runtime.BindStyledParameterWithOptions("simple", "zoneId", ctx.Param("zoneId"), &zoneId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter zoneId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetParcelsByZone(ctx, zoneId)
	return err
}

// CountParcels converts echo context to params.
func (w *ServerInterfaceWrapper) CountParcels(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params CountParcelsParams
	// ------------- Optional query parameter "status" -------------

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	// ------------- Optional query parameter "priority" -------------

	err = runtime.BindQueryParameter("form", true, false, "priority", ctx.QueryParams(), &params.Priority)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter priority: %s", err))
	}

	// ------------- Optional query parameter "zoneId" -------------

	err = runtime.BindQueryParameter("form", true, false, "zoneId", ctx.QueryParams(), &params.ZoneId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter zoneId: %s", err))
	}

	// ------------- Optional query parameter "deliveryPersonId" -------------

	err = runtime.BindQueryParameter("form", true, false, "deliveryPersonId", ctx.QueryParams(), &params.DeliveryPersonId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter deliveryPersonId: %s", err))
	}

	// ------------- Optional query parameter "senderId" -------------

	err = runtime.BindQueryParameter("form", true, false, "senderId", ctx.QueryParams(), &params.SenderId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter senderId: %s", err))
	}

	// ------------- Optional query parameter "recipientId" -------------

	err = runtime.BindQueryParameter("form", true, false, "recipientId", ctx.QueryParams(), &params.RecipientId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter recipientId: %s", err))
	}

	// ------------- Optional query parameter "city" -------------

	err = runtime.BindQueryParameter("form", true, false, "city", ctx.QueryParams(), &params.City)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter city: %s", err))
	}

	// ------------- Optional query parameter "unassignedOnly" -------------

	err = runtime.BindQueryParameter("form", true, false, "unassignedOnly", ctx.QueryParams(), &params.UnassignedOnly)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter unassignedOnly: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CountParcels(ctx, params)
	return err
}

// GroupParcels converts echo context to params.
func (w *ServerInterfaceWrapper) GroupParcels(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "dimension" -------------
	var dimension GroupDimension

	err = runtime.BindStyledParameterWithOptions("simple", "dimension", ctx.Param("dimension"), &dimension, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter dimension: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GroupParcels(ctx, dimension)
	return err
}

// GetHighPriorityPendingParcels converts echo context to params.
func (w *ServerInterfaceWrapper) GetHighPriorityPendingParcels(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetHighPriorityPendingParcels(ctx)
	return err
}

// SearchParcels converts echo context to params.
func (w *ServerInterfaceWrapper) SearchParcels(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params SearchParcelsParams
	// ------------- Optional query parameter "status" -------------

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	// ------------- Optional query parameter "priority" -------------

	err = runtime.BindQueryParameter("form", true, false, "priority", ctx.QueryParams(), &params.Priority)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter priority: %s", err))
	}

	// ------------- Optional query parameter "zoneId" -------------

	err = runtime.BindQueryParameter("form", true, false, "zoneId", ctx.QueryParams(), &params.ZoneId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter zoneId: %s", err))
	}

	// ------------- Optional query parameter "deliveryPersonId" -------------

	err = runtime.BindQueryParameter("form", true, false, "deliveryPersonId", ctx.QueryParams(), &params.DeliveryPersonId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter deliveryPersonId: %s", err))
	}

	// ------------- Optional query parameter "senderId" -------------

	err = runtime.BindQueryParameter("form", true, false, "senderId", ctx.QueryParams(), &params.SenderId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter senderId: %s", err))
	}

	// ------------- Optional query parameter "recipientId" -------------

	err = runtime.BindQueryParameter("form", true, false, "recipientId", ctx.QueryParams(), &params.RecipientId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter recipientId: %s", err))
	}

	// ------------- Optional query parameter "city" -------------

	err = runtime.BindQueryParameter("form", true, false, "city", ctx.QueryParams(), &params.City)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter city: %s", err))
	}

	// ------------- Optional query parameter "unassignedOnly" -------------

	err = runtime.BindQueryParameter("form", true, false, "unassignedOnly", ctx.QueryParams(), &params.UnassignedOnly)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter unassignedOnly: %s", err))
	}

	// ------------- Optional query parameter "page" -------------

	err = runtime.BindQueryParameter("form", true, false, "page", ctx.QueryParams(), &params.Page)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter page: %s", err))
	}

	// ------------- Optional query parameter "size" -------------

	err = runtime.BindQueryParameter("form", true, false, "size", ctx.QueryParams(), &params.Size)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter size: %s", err))
	}

	// ------------- Optional query parameter "sort" -------------

	err = runtime.BindQueryParameter("form", true, false, "sort", ctx.QueryParams(), &params.Sort)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter sort: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.SearchParcels(ctx, params)
	return err
}

// GetUnassignedParcels converts echo context to params.
func (w *ServerInterfaceWrapper) GetUnassignedParcels(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetUnassignedParcels(ctx)
	return err
}

// DeleteParcel converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteParcel(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "parcelId" -------------
	var parcelId ParcelId

	err = runtime.BindStyledParameterWithOptions("simple", "parcelId", ctx.Param("parcelId"), &parcelId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter parcelId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeleteParcel(ctx, parcelId)
	return err
}

// GetParcel converts echo context to params.
func (w *ServerInterfaceWrapper) GetParcel(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "parcelId" -------------
	var parcelId ParcelId

	err = runtime.BindStyledParameterWithOptions("simple", "parcelId", ctx.Param("parcelId"), &parcelId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter parcelId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetParcel(ctx, parcelId)
	return err
}

// UpdateParcel converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateParcel(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "parcelId" -------------
	var parcelId ParcelId

	err = runtime.BindStyledParameterWithOptions("simple", "parcelId", ctx.Param("parcelId"), &parcelId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter parcelId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateParcel(ctx, parcelId)
	return err
}

// GetParcelHistory converts echo context to params.
func (w *ServerInterfaceWrapper) GetParcelHistory(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "parcelId" -------------
	var parcelId ParcelId

	err = runtime.BindStyledParameterWithOptions("simple", "parcelId", ctx.Param("parcelId"), &parcelId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter parcelId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetParcelHistory(ctx, parcelId)
	return err
}

// UpdateParcelStatus converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateParcelStatus(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "parcelId" -------------
	var parcelId ParcelId

	err = runtime.BindStyledParameterWithOptions("simple", "parcelId", ctx.Param("parcelId"), &parcelId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter parcelId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateParcelStatus(ctx, parcelId)
	return err
}

// ListProducts converts echo context to params.
func (w *ServerInterfaceWrapper) ListProducts(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListProducts(ctx)
	return err
}

// CreateProduct converts echo context to params.
func (w *ServerInterfaceWrapper) CreateProduct(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateProduct(ctx)
	return err
}

// ListRecipients converts echo context to params.
func (w *ServerInterfaceWrapper) ListRecipients(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListRecipients(ctx)
	return err
}

// CreateRecipient converts echo context to params.
func (w *ServerInterfaceWrapper) CreateRecipient(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateRecipient(ctx)
	return err
}

// ListSenders converts echo context to params.
func (w *ServerInterfaceWrapper) ListSenders(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListSenders(ctx)
	return err
}

// CreateSender converts echo context to params.
func (w *ServerInterfaceWrapper) CreateSender(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateSender(ctx)
	return err
}

// GetAllDeliveryPersonStatistics converts echo context to params.
func (w *ServerInterfaceWrapper) GetAllDeliveryPersonStatistics(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetAllDeliveryPersonStatistics(ctx)
	return err
}

// GetDeliveryPersonStatistics converts echo context to params.
func (w *ServerInterfaceWrapper) GetDeliveryPersonStatistics(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "deliveryPersonId" -------------
	var deliveryPersonId DeliveryPersonId

	err = runtime.BindStyledParameterWithOptions("simple", "deliveryPersonId", ctx.Param("deliveryPersonId"), &deliveryPersonId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter deliveryPersonId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetDeliveryPersonStatistics(ctx, deliveryPersonId)
	return err
}

// GetGlobalStatistics converts echo context to params.
func (w *ServerInterfaceWrapper) GetGlobalStatistics(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetGlobalStatistics(ctx)
	return err
}

// GetAllZoneStatistics converts echo context to params.
func (w *ServerInterfaceWrapper) GetAllZoneStatistics(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetAllZoneStatistics(ctx)
	return err
}

// GetZoneStatistics converts echo context to params.
func (w *ServerInterfaceWrapper) GetZoneStatistics(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "zoneId" -------------
	var zoneId ZoneId

	err = runtime.BindStyledParameterWithOptions("simple", "zoneId", ctx.Param("zoneId"), &zoneId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter zoneId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetZoneStatistics(ctx, zoneId)
	return err
}

// TrackParcel converts echo context to params.
func (w *ServerInterfaceWrapper) TrackParcel(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "parcelId" -------------
	var parcelId ParcelId

	err = runtime.BindStyledParameterWithOptions("simple", "parcelId", ctx.Param("parcelId"), &parcelId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter parcelId: %s", err))
	}

	// Parameter object where we will unmarshal all parameters from the context
	var params TrackParcelParams
	// ------------- Required query parameter "email" -------------

	err = runtime.BindQueryParameter("form", true, true, "email", ctx.QueryParams(), &params.Email)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter email: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.TrackParcel(ctx, parcelId, params)
	return err
}

// ListZones converts echo context to params.
func (w *ServerInterfaceWrapper) ListZones(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListZones(ctx)
	return err
}

// CreateZone converts echo context to params.
func (w *ServerInterfaceWrapper) CreateZone(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateZone(ctx)
	return err
}

// This is a simple interface which specifies echo.Route addition functions which
// are present on both echo.Echo and echo.Group, since we want to allow using
// either of them for path registration
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// Registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {

	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/delivery-persons", wrapper.ListDeliveryPersons)
	router.POST(baseURL+"/api/v1/delivery-persons", wrapper.CreateDeliveryPerson)
	router.GET(baseURL+"/api/v1/history", wrapper.ListHistoryEntries)
	router.POST(baseURL+"/api/v1/history", wrapper.CreateHistoryEntry)
	router.GET(baseURL+"/api/v1/history/delivered-today/count", wrapper.CountDeliveredToday)
	router.GET(baseURL+"/api/v1/history/parcels/:parcelId", wrapper.GetHistoryByParcel)
	router.GET(baseURL+"/api/v1/history/parcels/:parcelId/count", wrapper.CountHistoryEntries)
	router.GET(baseURL+"/api/v1/history/parcels/:parcelId/latest", wrapper.GetLatestHistoryEntry)
	router.GET(baseURL+"/api/v1/history/with-comments", wrapper.GetCommentedHistoryEntries)
	router.DELETE(baseURL+"/api/v1/history/:entryId", wrapper.DeleteHistoryEntry)
	router.GET(baseURL+"/api/v1/history/:entryId", wrapper.GetHistoryEntry)
	router.GET(baseURL+"/api/v1/parcels", wrapper.ListParcels)
	router.POST(baseURL+"/api/v1/parcels", wrapper.CreateParcel)
	router.GET(baseURL+"/api/v1/parcels/by-city/:city", wrapper.GetParcelsByCity)
	router.GET(baseURL+"/api/v1/parcels/by-delivery-person/:deliveryPersonId", wrapper.GetParcelsByDeliveryPerson)
	router.GET(baseURL+"/api/v1/parcels/by-priority/:priority", wrapper.GetParcelsByPriority)
	router.GET(baseURL+"/api/v1/parcels/by-recipient/:recipientId", wrapper.GetParcelsByRecipient)
	router.GET(baseURL+"/api/v1/parcels/by-sender/:senderId", wrapper.GetParcelsBySender)
	router.GET(baseURL+"/api/v1/parcels/by-status/:status", wrapper.GetParcelsByStatus)
	router.GET(baseURL+"/api/v1/parcels/by-zone/:zoneId", wrapper.GetParcelsByZone)
	router.GET(baseURL+"/api/v1/parcels/count", wrapper.CountParcels)
	router.GET(baseURL+"/api/v1/parcels/grouped/:dimension", wrapper.GroupParcels)
	router.GET(baseURL+"/api/v1/parcels/high-priority-pending", wrapper.GetHighPriorityPendingParcels)
	router.GET(baseURL+"/api/v1/parcels/search", wrapper.SearchParcels)
	router.GET(baseURL+"/api/v1/parcels/unassigned", wrapper.GetUnassignedParcels)
	router.DELETE(baseURL+"/api/v1/parcels/:parcelId", wrapper.DeleteParcel)
	router.GET(baseURL+"/api/v1/parcels/:parcelId", wrapper.GetParcel)
	router.PATCH(baseURL+"/api/v1/parcels/:parcelId", wrapper.UpdateParcel)
	router.GET(baseURL+"/api/v1/parcels/:parcelId/history", wrapper.GetParcelHistory)
	router.PATCH(baseURL+"/api/v1/parcels/:parcelId/status", wrapper.UpdateParcelStatus)
	router.GET(baseURL+"/api/v1/products", wrapper.ListProducts)
	router.POST(baseURL+"/api/v1/products", wrapper.CreateProduct)
	router.GET(baseURL+"/api/v1/recipients", wrapper.ListRecipients)
	router.POST(baseURL+"/api/v1/recipients", wrapper.CreateRecipient)
	router.GET(baseURL+"/api/v1/senders", wrapper.ListSenders)
	router.POST(baseURL+"/api/v1/senders", wrapper.CreateSender)
	router.GET(baseURL+"/api/v1/statistics/delivery-persons", wrapper.GetAllDeliveryPersonStatistics)
	router.GET(baseURL+"/api/v1/statistics/delivery-persons/:deliveryPersonId", wrapper.GetDeliveryPersonStatistics)
	router.GET(baseURL+"/api/v1/statistics/global", wrapper.GetGlobalStatistics)
	router.GET(baseURL+"/api/v1/statistics/zones", wrapper.GetAllZoneStatistics)
	router.GET(baseURL+"/api/v1/statistics/zones/:zoneId", wrapper.GetZoneStatistics)
	router.GET(baseURL+"/api/v1/tracking/:parcelId", wrapper.TrackParcel)
	router.GET(baseURL+"/api/v1/zones", wrapper.ListZones)
	router.POST(baseURL+"/api/v1/zones", wrapper.CreateZone)

}
