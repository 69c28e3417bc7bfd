package cmd

import (
	"log/slog"

	httpin "parceltracker/internal/adapters/in/http"
	"parceltracker/internal/adapters/out/postgres"
	"parceltracker/internal/adapters/out/postgres/directoryrepo"
	"parceltracker/internal/adapters/out/postgres/historyrepo"
	"parceltracker/internal/adapters/out/postgres/parcelrepo"
	"parceltracker/internal/core/application/usecases/commands"
	"parceltracker/internal/core/application/usecases/queries"
	"parceltracker/internal/core/ports"
	"parceltracker/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot owns the adapters shared by every use case. Write use cases
// go through a unit of work per call; read use cases use the pool directly.
type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	gormDB     *gorm.DB
	uowFactory ports.UnitOfWorkFactory
	parcels    ports.ParcelRepository
	history    ports.HistoryRepository
	directory  ports.DirectoryRepository
}

// NewCompositionRoot wires the persistence adapters. publisher receives the
// parcel events after each commit and may be nil.
func NewCompositionRoot(config Config, gormDB *gorm.DB, publisher ports.EventPublisher, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		logger:     logger,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		parcels:    parcelrepo.NewGormParcelRepository(gormDB, nil),
		history:    historyrepo.NewGormHistoryRepository(gormDB),
		directory:  directoryrepo.NewGormDirectoryRepository(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	return commands.NewCreateParcelCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateUpdateParcelCommandHandler() commands.UpdateParcelCommandHandler {
	return commands.NewUpdateParcelCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateUpdateParcelStatusCommandHandler() commands.UpdateParcelStatusCommandHandler {
	return commands.NewUpdateParcelStatusCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateDeleteParcelCommandHandler() commands.DeleteParcelCommandHandler {
	return commands.NewDeleteParcelCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateCreateHistoryEntryCommandHandler() commands.CreateHistoryEntryCommandHandler {
	return commands.NewCreateHistoryEntryCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateDeleteHistoryEntryCommandHandler() commands.DeleteHistoryEntryCommandHandler {
	return commands.NewDeleteHistoryEntryCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateAddDirectoryEntryCommandHandler() commands.AddDirectoryEntryCommandHandler {
	return commands.NewAddDirectoryEntryCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetParcelQueryHandler() queries.GetParcelQueryHandler {
	return queries.NewGetParcelQueryHandler(c.parcels, c.directory)
}

func (c *CompositionRoot) CreateSearchParcelsQueryHandler() queries.SearchParcelsQueryHandler {
	return queries.NewSearchParcelsQueryHandler(c.parcels)
}

func (c *CompositionRoot) CreateCountParcelsQueryHandler() queries.CountParcelsQueryHandler {
	return queries.NewCountParcelsQueryHandler(c.parcels)
}

func (c *CompositionRoot) CreateGetParcelsByQueryHandler() queries.GetParcelsByQueryHandler {
	return queries.NewGetParcelsByQueryHandler(c.parcels, c.directory)
}

func (c *CompositionRoot) CreateGroupParcelsQueryHandler() queries.GroupParcelsQueryHandler {
	return queries.NewGroupParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackParcelQueryHandler() queries.TrackParcelQueryHandler {
	return queries.NewTrackParcelQueryHandler(c.parcels, c.history, c.directory)
}

func (c *CompositionRoot) CreateGetParcelHistoryQueryHandler() queries.GetParcelHistoryQueryHandler {
	return queries.NewGetParcelHistoryQueryHandler(c.parcels, c.history)
}

func (c *CompositionRoot) CreateGetLatestHistoryEntryQueryHandler() queries.GetLatestHistoryEntryQueryHandler {
	return queries.NewGetLatestHistoryEntryQueryHandler(c.parcels, c.history)
}

func (c *CompositionRoot) CreateCountParcelHistoryQueryHandler() queries.CountParcelHistoryQueryHandler {
	return queries.NewCountParcelHistoryQueryHandler(c.parcels, c.history)
}

func (c *CompositionRoot) CreateGetHistoryEntryQueryHandler() queries.GetHistoryEntryQueryHandler {
	return queries.NewGetHistoryEntryQueryHandler(c.history)
}

func (c *CompositionRoot) CreateListHistoryEntriesQueryHandler() queries.ListHistoryEntriesQueryHandler {
	return queries.NewListHistoryEntriesQueryHandler(c.history)
}

func (c *CompositionRoot) CreateGetCommentedHistoryEntriesQueryHandler() queries.GetCommentedHistoryEntriesQueryHandler {
	return queries.NewGetCommentedHistoryEntriesQueryHandler(c.history)
}

func (c *CompositionRoot) CreateCountDeliveredTodayQueryHandler() queries.CountDeliveredTodayQueryHandler {
	return queries.NewCountDeliveredTodayQueryHandler(c.history)
}

func (c *CompositionRoot) CreateGetGlobalStatisticsQueryHandler() queries.GetGlobalStatisticsQueryHandler {
	return queries.NewGetGlobalStatisticsQueryHandler(c.parcels, c.directory)
}

func (c *CompositionRoot) CreateGetDeliveryPersonStatisticsQueryHandler() queries.GetDeliveryPersonStatisticsQueryHandler {
	return queries.NewGetDeliveryPersonStatisticsQueryHandler(c.parcels, c.directory)
}

func (c *CompositionRoot) CreateGetAllDeliveryPersonStatisticsQueryHandler() queries.GetAllDeliveryPersonStatisticsQueryHandler {
	return queries.NewGetAllDeliveryPersonStatisticsQueryHandler(c.parcels, c.directory)
}

func (c *CompositionRoot) CreateGetZoneStatisticsQueryHandler() queries.GetZoneStatisticsQueryHandler {
	return queries.NewGetZoneStatisticsQueryHandler(c.parcels, c.directory)
}

func (c *CompositionRoot) CreateGetAllZoneStatisticsQueryHandler() queries.GetAllZoneStatisticsQueryHandler {
	return queries.NewGetAllZoneStatisticsQueryHandler(c.parcels, c.directory)
}

func (c *CompositionRoot) CreateListDirectoryQueryHandler() queries.ListDirectoryQueryHandler {
	return queries.NewListDirectoryQueryHandler(c.directory)
}

// CreateServer collects every use case behind the generated HTTP interface.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		httpin.CommandHandlers{
			CreateParcel:       c.CreateCreateParcelCommandHandler(),
			UpdateParcel:       c.CreateUpdateParcelCommandHandler(),
			UpdateParcelStatus: c.CreateUpdateParcelStatusCommandHandler(),
			DeleteParcel:       c.CreateDeleteParcelCommandHandler(),
			CreateHistoryEntry: c.CreateCreateHistoryEntryCommandHandler(),
			DeleteHistoryEntry: c.CreateDeleteHistoryEntryCommandHandler(),
			AddDirectoryEntry:  c.CreateAddDirectoryEntryCommandHandler(),
		},
		httpin.QueryHandlers{
			GetParcel:     c.CreateGetParcelQueryHandler(),
			SearchParcels: c.CreateSearchParcelsQueryHandler(),
			CountParcels:  c.CreateCountParcelsQueryHandler(),
			GetParcelsBy:  c.CreateGetParcelsByQueryHandler(),
			GroupParcels:  c.CreateGroupParcelsQueryHandler(),
			TrackParcel:   c.CreateTrackParcelQueryHandler(),

			GetParcelHistory:           c.CreateGetParcelHistoryQueryHandler(),
			GetLatestHistoryEntry:      c.CreateGetLatestHistoryEntryQueryHandler(),
			CountParcelHistory:         c.CreateCountParcelHistoryQueryHandler(),
			GetHistoryEntry:            c.CreateGetHistoryEntryQueryHandler(),
			ListHistoryEntries:         c.CreateListHistoryEntriesQueryHandler(),
			GetCommentedHistoryEntries: c.CreateGetCommentedHistoryEntriesQueryHandler(),
			CountDeliveredToday:        c.CreateCountDeliveredTodayQueryHandler(),

			GlobalStatistics:            c.CreateGetGlobalStatisticsQueryHandler(),
			DeliveryPersonStatistics:    c.CreateGetDeliveryPersonStatisticsQueryHandler(),
			AllDeliveryPersonStatistics: c.CreateGetAllDeliveryPersonStatisticsQueryHandler(),
			ZoneStatistics:              c.CreateGetZoneStatisticsQueryHandler(),
			AllZoneStatistics:           c.CreateGetAllZoneStatisticsQueryHandler(),

			ListDirectory: c.CreateListDirectoryQueryHandler(),
		},
	)
}

func (c *CompositionRoot) CreateAuthenticator() *httpin.Authenticator {
	return httpin.NewAuthenticator(c.config.JWTSecret)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateCountDeliveredTodayQueryHandler(),
		c.CreateGetGlobalStatisticsQueryHandler(),
		c.CreateCountParcelsQueryHandler(),
		jobs.Schedules{
			DeliveryReport: c.config.ReportSchedule,
			Backlog:        c.config.BacklogSchedule,
		},
		c.logger,
	)
}
