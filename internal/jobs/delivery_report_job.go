package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"parceltracker/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// DefaultDeliveryReportSchedule runs the report every fifteen minutes.
const DefaultDeliveryReportSchedule = "0 */15 * * * *"

type deliveredTodayCounter interface {
	Handle(ctx context.Context) (int64, error)
}

type globalStatisticsReader interface {
	Handle(ctx context.Context) (services.GlobalStats, error)
}

// DeliveryReportJob periodically logs how many parcels were delivered today
// together with the global parcel totals.
type DeliveryReportJob struct {
	delivered deliveredTodayCounter
	global    globalStatisticsReader
	schedule  string
	timeout   time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewDeliveryReportJob(
	delivered deliveredTodayCounter,
	global globalStatisticsReader,
	schedule string,
	logger *slog.Logger,
) *DeliveryReportJob {
	if schedule == "" {
		schedule = DefaultDeliveryReportSchedule
	}
	return &DeliveryReportJob{
		delivered: delivered,
		global:    global,
		schedule:  schedule,
		timeout:   30 * time.Second,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "delivery_report_job"),
	}
}

// Run produces one report.
func (j *DeliveryReportJob) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	delivered, deliveredErr := j.delivered.Handle(ctx)
	stats, statsErr := j.global.Handle(ctx)
	if err := errors.Join(deliveredErr, statsErr); err != nil {
		return err
	}

	j.logger.InfoContext(ctx, "Delivery report",
		"delivered_today", delivered,
		"total_parcels", stats.TotalParcels,
		"unassigned_parcels", stats.UnassignedParcels,
		"high_priority_pending", stats.HighPriorityPending,
		"total_weight_kg", stats.TotalWeight.String(),
	)
	return nil
}

// Start schedules Run on the configured cron expression (with seconds).
func (j *DeliveryReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Delivery report job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery report job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running report to finish.
func (j *DeliveryReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Delivery report job stopped")
}
