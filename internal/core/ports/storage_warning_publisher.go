package ports

import (
	"context"
	"time"

	"forwarding/internal/core/domain/model/kernel"
)

// StorageWarning notifies a client suite that storage charges are approaching.
type StorageWarning struct {
	ConsolidationID   kernel.UUID
	SuiteNumber       string
	ConsolidatedAt    time.Time
	WarningDate       time.Time
	FreePeriodEnd     time.Time
	RemainingFreeDays int
	PolicyVersion     int
}

// StorageWarningPublisher delivers storage warnings to the notification pipeline.
type StorageWarningPublisher interface {
	Publish(ctx context.Context, warning StorageWarning) error
}
