package http

import (
	"net/http"

	"parceltracker/internal/core/application/usecases/queries"
	"parceltracker/internal/generated/servers"
	"parceltracker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func (s *Server) GetGlobalStatistics(ctx echo.Context) error {
	stats, err := s.queries.GlobalStatistics.Handle(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toGlobalStatistics(stats))
}

func (s *Server) GetAllDeliveryPersonStatistics(ctx echo.Context) error {
	stats, err := s.queries.AllDeliveryPersonStatistics.Handle(ctx.Request().Context())
	if err != nil {
		return err
	}

	out := make([]servers.DeliveryPersonStatistics, 0, len(stats))
	for _, st := range stats {
		out = append(out, toDeliveryPersonStatistics(st))
	}
	return ctx.JSON(http.StatusOK, out)
}

func (s *Server) GetDeliveryPersonStatistics(ctx echo.Context, deliveryPersonId servers.DeliveryPersonId) error {
	query, err := statisticsQuery("deliveryPersonId", deliveryPersonId)
	if err != nil {
		return err
	}

	stats, err := s.queries.DeliveryPersonStatistics.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toDeliveryPersonStatistics(stats))
}

func (s *Server) GetAllZoneStatistics(ctx echo.Context) error {
	stats, err := s.queries.AllZoneStatistics.Handle(ctx.Request().Context())
	if err != nil {
		return err
	}

	out := make([]servers.ZoneStatistics, 0, len(stats))
	for _, st := range stats {
		out = append(out, toZoneStatistics(st))
	}
	return ctx.JSON(http.StatusOK, out)
}

func (s *Server) GetZoneStatistics(ctx echo.Context, zoneId servers.ZoneId) error {
	query, err := statisticsQuery("zoneId", zoneId)
	if err != nil {
		return err
	}

	stats, err := s.queries.ZoneStatistics.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toZoneStatistics(stats))
}

func statisticsQuery(name string, raw openapi_types.UUID) (queries.StatisticsQuery, error) {
	id, err := pathUUID(name, raw)
	if err != nil {
		return queries.StatisticsQuery{}, err
	}
	query, err := queries.NewStatisticsQuery(id)
	if err != nil {
		return queries.StatisticsQuery{}, errs.Collect(err)
	}
	return query, nil
}
