package jobs

import (
	"context"
	"log/slog"
	"time"

	"forwarding/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultStorageWarningSchedule runs the sweep at the top of every hour.
const DefaultStorageWarningSchedule = "0 0 * * * *"

// StorageWarningSender is satisfied by commands.SendStorageWarningsCommandHandler.
type StorageWarningSender interface {
	Handle(ctx context.Context, cmd commands.SendStorageWarningsCommand) (int, error)
}

// StorageWarningJob periodically warns client suites whose consolidations are
// about to leave the free storage period. A sweep still running when the next
// one is due makes the next one skip.
type StorageWarningJob struct {
	sender   StorageWarningSender
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStorageWarningJob creates the job. The schedule is a six-field cron
// expression (seconds first); empty means DefaultStorageWarningSchedule.
func NewStorageWarningJob(sender StorageWarningSender, schedule string, logger *slog.Logger) *StorageWarningJob {
	if schedule == "" {
		schedule = DefaultStorageWarningSchedule
	}

	return &StorageWarningJob{
		sender:   sender,
		schedule: schedule,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger.With("component", "storage_warning_job"),
	}
}

// Start schedules the sweep. It fails when the schedule does not parse.
func (j *StorageWarningJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Storage warning job started", "schedule", j.schedule)
	return nil
}

// RunOnce performs a single sweep and logs its outcome. Partial failures are
// logged together with the number of warnings that did go out.
func (j *StorageWarningJob) RunOnce(ctx context.Context) {
	cmd := commands.NewSendStorageWarningsCommand(time.Now())

	sent, err := j.sender.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Storage warning sweep failed", "sent", sent, "error", err)
		return
	}

	if sent > 0 {
		j.logger.InfoContext(ctx, "Storage warnings sent", "sent", sent)
	}
}

// Stop stops scheduling and waits for a running sweep to finish.
func (j *StorageWarningJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Storage warning job stopped")
}
