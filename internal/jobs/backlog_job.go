package jobs

import (
	"context"
	"log/slog"
	"time"

	"parceltracker/internal/core/application/usecases/queries"
	"parceltracker/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DefaultBacklogSchedule checks the backlog every five minutes.
const DefaultBacklogSchedule = "30 */5 * * * *"

type parcelCounter interface {
	Handle(ctx context.Context, query queries.CountParcelsQuery) (int64, error)
}

// BacklogJob warns about URGENT and EXPRESS parcels that are not delivered yet
// and about parcels nobody is assigned to.
type BacklogJob struct {
	counter  parcelCounter
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewBacklogJob(counter parcelCounter, schedule string, logger *slog.Logger) *BacklogJob {
	if schedule == "" {
		schedule = DefaultBacklogSchedule
	}
	return &BacklogJob{
		counter:  counter,
		schedule: schedule,
		timeout:  30 * time.Second,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "backlog_job"),
	}
}

// Run counts the backlog once. Nothing is logged when the backlog is empty.
func (j *BacklogJob) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	pending, err := j.counter.Handle(ctx, queries.NewCountParcelsQuery(ports.HighPriorityPending()))
	if err != nil {
		return err
	}
	unassigned, err := j.counter.Handle(ctx, queries.NewCountParcelsQuery(ports.ParcelCriteria{UnassignedOnly: true}))
	if err != nil {
		return err
	}

	if pending > 0 || unassigned > 0 {
		j.logger.WarnContext(ctx, "Parcel backlog",
			"high_priority_pending", pending,
			"unassigned", unassigned,
		)
	}
	return nil
}

func (j *BacklogJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Backlog job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Backlog job started", "schedule", j.schedule)
	return nil
}

func (j *BacklogJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Backlog job stopped")
}
