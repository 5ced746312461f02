// Package jobs provides scheduled background tasks for the forwarding service.
//
// Jobs are built on github.com/robfig/cron/v3 with second-precision schedules.
//
// # Available Jobs
//
// StorageWarningJob sweeps held consolidations and publishes a storage warning
// for each one that has reached its warning date. Every consolidation is warned
// once; the default schedule is hourly ("0 0 * * * *").
//
// # Usage
//
//	jobManager := jobs.NewJobManager(sendStorageWarningsHandler, config.StorageWarningSchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A sweep that fails is logged and retried on the next tick. Consolidations
// whose warning could not be published stay unmarked, so they are picked up
// again.
package jobs
