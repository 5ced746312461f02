package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager owns the background jobs of the service so main starts and
// stops them in one place.
type JobManager struct {
	storageWarningJob *StorageWarningJob
}

// NewJobManager builds every job. The schedule follows NewStorageWarningJob.
func NewJobManager(
	storageWarnings StorageWarningSender,
	storageWarningSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		storageWarningJob: NewStorageWarningJob(storageWarnings, storageWarningSchedule, logger),
	}
}

// StartAll schedules every job and fails on the first one that cannot start.
func (jm *JobManager) StartAll() error {
	if err := jm.storageWarningJob.Start(); err != nil {
		return fmt.Errorf("failed to start storage warning job: %w", err)
	}
	return nil
}

// StopAll waits for running jobs to finish.
func (jm *JobManager) StopAll() {
	jm.storageWarningJob.Stop()
}
