package http

import (
	"errors"

	"parceltracker/internal/core/application/usecases/commands"
	"parceltracker/internal/core/application/usecases/queries"
	"parceltracker/internal/generated/servers"
	"parceltracker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var _ servers.ServerInterface = (*Server)(nil)

// CommandHandlers are the write use cases exposed over HTTP.
type CommandHandlers struct {
	CreateParcel       commands.CreateParcelCommandHandler
	UpdateParcel       commands.UpdateParcelCommandHandler
	UpdateParcelStatus commands.UpdateParcelStatusCommandHandler
	DeleteParcel       commands.DeleteParcelCommandHandler
	CreateHistoryEntry commands.CreateHistoryEntryCommandHandler
	DeleteHistoryEntry commands.DeleteHistoryEntryCommandHandler
	AddDirectoryEntry  commands.AddDirectoryEntryCommandHandler
}

// QueryHandlers are the read use cases exposed over HTTP.
type QueryHandlers struct {
	GetParcel     queries.GetParcelQueryHandler
	SearchParcels queries.SearchParcelsQueryHandler
	CountParcels  queries.CountParcelsQueryHandler
	GetParcelsBy  queries.GetParcelsByQueryHandler
	GroupParcels  queries.GroupParcelsQueryHandler
	TrackParcel   queries.TrackParcelQueryHandler

	GetParcelHistory           queries.GetParcelHistoryQueryHandler
	GetLatestHistoryEntry      queries.GetLatestHistoryEntryQueryHandler
	CountParcelHistory         queries.CountParcelHistoryQueryHandler
	GetHistoryEntry            queries.GetHistoryEntryQueryHandler
	ListHistoryEntries         queries.ListHistoryEntriesQueryHandler
	GetCommentedHistoryEntries queries.GetCommentedHistoryEntriesQueryHandler
	CountDeliveredToday        queries.CountDeliveredTodayQueryHandler

	GlobalStatistics            queries.GetGlobalStatisticsQueryHandler
	DeliveryPersonStatistics    queries.GetDeliveryPersonStatisticsQueryHandler
	AllDeliveryPersonStatistics queries.GetAllDeliveryPersonStatisticsQueryHandler
	ZoneStatistics              queries.GetZoneStatisticsQueryHandler
	AllZoneStatistics           queries.GetAllZoneStatisticsQueryHandler

	ListDirectory queries.ListDirectoryQueryHandler
}

// Server implements servers.ServerInterface on top of the application use cases.
// Handlers return errors; NewHTTPErrorHandler renders them.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
}

func NewServer(commands CommandHandlers, queries QueryHandlers) *Server {
	return &Server{commands: commands, queries: queries}
}

// bind decodes the request body into dst and runs the echo validator on it.
// A body that cannot be decoded is returned as err. Tag violations come back
// as invalid so that handlers report them together with the violations of the
// command they build from the body (see errs.Merge).
func bind(ctx echo.Context, dst any) (invalid error, err error) {
	if err = ctx.Bind(dst); err != nil {
		return nil, err
	}
	if err = ctx.Validate(dst); err != nil {
		if errors.Is(err, errs.ErrValidation) {
			return err, nil
		}
		return nil, err
	}
	return nil, nil
}

// rejected reports whether the request must be answered with the merged
// violations of the body tags and the command constructor.
func rejected(invalid, err error) bool {
	return invalid != nil || err != nil
}
