// Package kafka publishes pricing events to Kafka topics.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"forwarding/internal/core/ports"

	skafka "github.com/segmentio/kafka-go"
)

// EventTypeStorageWarning is written to the "event-type" header of every
// storage warning message.
const EventTypeStorageWarning = "forwarding.storage.warning.v1"

// Writer is the subset of kafka.Writer the producer needs.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

// StorageWarningProducer implements ports.StorageWarningPublisher. Messages are
// keyed by suite number so every warning of one client lands on one partition.
type StorageWarningProducer struct {
	writer Writer
}

// NewStorageWarningProducer creates a producer writing to topic on the given broker.
func NewStorageWarningProducer(brokerURL, topic string) *StorageWarningProducer {
	w := &skafka.Writer{
		Addr:                   skafka.TCP(brokerURL),
		Topic:                  topic,
		Balancer:               &skafka.Hash{},
		RequiredAcks:           skafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
	return &StorageWarningProducer{writer: w}
}

// NewStorageWarningProducerWithWriter allows injecting a test writer.
func NewStorageWarningProducerWithWriter(w Writer) *StorageWarningProducer {
	return &StorageWarningProducer{writer: w}
}

// storageWarningMessage is the JSON wire format of a storage warning.
type storageWarningMessage struct {
	ConsolidationID   string    `json:"consolidationId"`
	SuiteNumber       string    `json:"suiteNumber"`
	ConsolidatedAt    time.Time `json:"consolidatedAt"`
	WarningDate       time.Time `json:"warningDate"`
	FreePeriodEnd     time.Time `json:"freePeriodEnd"`
	RemainingFreeDays int       `json:"remainingFreeDays"`
	PolicyVersion     int       `json:"policyVersion"`
}

func (p *StorageWarningProducer) Publish(ctx context.Context, warning ports.StorageWarning) error {
	b, err := json.Marshal(storageWarningMessage{
		ConsolidationID:   warning.ConsolidationID.String(),
		SuiteNumber:       warning.SuiteNumber,
		ConsolidatedAt:    warning.ConsolidatedAt.UTC(),
		WarningDate:       warning.WarningDate.UTC(),
		FreePeriodEnd:     warning.FreePeriodEnd.UTC(),
		RemainingFreeDays: warning.RemainingFreeDays,
		PolicyVersion:     warning.PolicyVersion,
	})
	if err != nil {
		return fmt.Errorf("marshal storage warning: %w", err)
	}

	msg := skafka.Message{
		Key:   []byte(warning.SuiteNumber),
		Value: b,
		Headers: []skafka.Header{
			{Key: "event-type", Value: []byte(EventTypeStorageWarning)},
		},
	}
	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write storage warning for %s: %w", warning.ConsolidationID, err)
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (p *StorageWarningProducer) Close() error {
	return p.writer.Close()
}
