// Package jobs provides scheduled background tasks for the parcel tracker.
//
// Jobs are cron based (github.com/robfig/cron/v3, six field expressions with
// seconds) and only call read-only query handlers.
//
// # Available Jobs
//
// 1. DeliveryReportJob - logs the parcels delivered today and the global totals
// 2. BacklogJob - warns about undelivered URGENT/EXPRESS parcels and unassigned parcels
//
// # Usage
//
//	jobManager := jobs.NewJobManager(countDeliveredToday, globalStatistics, countParcels,
//		jobs.Schedules{DeliveryReport: cfg.ReportSchedule}, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and the job keeps its schedule. Failed job starts stop
// any already running jobs.
package jobs
