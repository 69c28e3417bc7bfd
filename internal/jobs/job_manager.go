package jobs

import (
	"fmt"
	"log/slog"
)

// Schedules holds the cron expressions (with seconds) of the jobs. Empty
// values fall back to the job defaults.
type Schedules struct {
	DeliveryReport string
	Backlog        string
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	deliveryReportJob *DeliveryReportJob
	backlogJob        *BacklogJob
}

// NewJobManager wires the read-only query handlers the jobs report on.
func NewJobManager(
	delivered deliveredTodayCounter,
	global globalStatisticsReader,
	counter parcelCounter,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		deliveryReportJob: NewDeliveryReportJob(delivered, global, schedules.DeliveryReport, logger),
		backlogJob:        NewBacklogJob(counter, schedules.Backlog, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.deliveryReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start delivery report job: %w", err)
	}

	if err := jm.backlogJob.Start(); err != nil {
		jm.deliveryReportJob.Stop()
		return fmt.Errorf("failed to start backlog job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running ones.
func (jm *JobManager) StopAll() {
	jm.backlogJob.Stop()
	jm.deliveryReportJob.Stop()
}
