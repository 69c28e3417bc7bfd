package http

import (
	"net/http"

	"parceltracker/internal/core/application/usecases/commands"
	"parceltracker/internal/core/application/usecases/queries"
	"parceltracker/internal/generated/servers"
	"parceltracker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateHistoryEntry handles POST /api/v1/history, a corrective ledger entry.
func (s *Server) CreateHistoryEntry(ctx echo.Context) error {
	var body servers.CreateHistoryEntryJSONRequestBody
	invalid, err := bind(ctx, &body)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateHistoryEntryCommand(bodyUUID(body.ParcelId), bodyStatus(body.Status), body.Comment)
	if rejected(invalid, err) {
		return errs.Merge(invalid, err)
	}
	entry, err := s.commands.CreateHistoryEntry.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, toHistoryEntry(entry))
}

// ListHistoryEntries handles GET /api/v1/history.
func (s *Server) ListHistoryEntries(ctx echo.Context) error {
	entries, err := s.queries.ListHistoryEntries.Handle(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toHistoryEntries(entries))
}

// GetHistoryEntry handles GET /api/v1/history/{entryId}.
func (s *Server) GetHistoryEntry(ctx echo.Context, entryId servers.EntryId) error {
	id, err := pathUUID("entryId", entryId)
	if err != nil {
		return err
	}
	query, err := queries.NewGetHistoryEntryQuery(id)
	if err != nil {
		return errs.Collect(err)
	}

	entry, err := s.queries.GetHistoryEntry.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toHistoryEntry(entry))
}

// DeleteHistoryEntry handles DELETE /api/v1/history/{entryId}.
func (s *Server) DeleteHistoryEntry(ctx echo.Context, entryId servers.EntryId) error {
	id, err := pathUUID("entryId", entryId)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteHistoryEntryCommand(id)
	if err != nil {
		return errs.Collect(err)
	}

	if err = s.commands.DeleteHistoryEntry.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetHistoryByParcel handles GET /api/v1/history/parcels/{parcelId}.
func (s *Server) GetHistoryByParcel(ctx echo.Context, parcelId servers.ParcelId) error {
	query, err := s.parcelHistoryQuery(parcelId)
	if err != nil {
		return err
	}

	entries, err := s.queries.GetParcelHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toHistoryEntries(entries))
}

// GetLatestHistoryEntry handles GET /api/v1/history/parcels/{parcelId}/latest.
func (s *Server) GetLatestHistoryEntry(ctx echo.Context, parcelId servers.ParcelId) error {
	query, err := s.parcelHistoryQuery(parcelId)
	if err != nil {
		return err
	}

	entry, err := s.queries.GetLatestHistoryEntry.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toHistoryEntry(entry))
}

// CountHistoryEntries handles GET /api/v1/history/parcels/{parcelId}/count.
func (s *Server) CountHistoryEntries(ctx echo.Context, parcelId servers.ParcelId) error {
	query, err := s.parcelHistoryQuery(parcelId)
	if err != nil {
		return err
	}

	count, err := s.queries.CountParcelHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, servers.Count{Count: count})
}

func (s *Server) parcelHistoryQuery(parcelId servers.ParcelId) (queries.ParcelHistoryQuery, error) {
	id, err := pathUUID("parcelId", parcelId)
	if err != nil {
		return queries.ParcelHistoryQuery{}, err
	}
	query, err := queries.NewParcelHistoryQuery(id)
	if err != nil {
		return queries.ParcelHistoryQuery{}, errs.Collect(err)
	}
	return query, nil
}

// CountDeliveredToday handles GET /api/v1/history/delivered-today/count.
func (s *Server) CountDeliveredToday(ctx echo.Context) error {
	count, err := s.queries.CountDeliveredToday.Handle(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, servers.Count{Count: count})
}

// GetCommentedHistoryEntries handles GET /api/v1/history/with-comments.
func (s *Server) GetCommentedHistoryEntries(ctx echo.Context) error {
	entries, err := s.queries.GetCommentedHistoryEntries.Handle(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toHistoryEntries(entries))
}
