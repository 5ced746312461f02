package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"forwarding/internal/adapters/out/kafka"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/ports"

	skafka "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []skafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...skafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func testWarning() ports.StorageWarning {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return ports.StorageWarning{
		ConsolidationID:   kernel.NewUUID(),
		SuiteNumber:       "FWD-10042",
		ConsolidatedAt:    at,
		WarningDate:       at.AddDate(0, 0, 23),
		FreePeriodEnd:     at.AddDate(0, 0, 30),
		RemainingFreeDays: 7,
		PolicyVersion:     3,
	}
}

func TestStorageWarningProducer_Publish(t *testing.T) {
	fw := &fakeWriter{}
	producer := kafka.NewStorageWarningProducerWithWriter(fw)
	warning := testWarning()

	err := producer.Publish(context.Background(), warning)

	require.NoError(t, err)
	require.Len(t, fw.msgs, 1)

	msg := fw.msgs[0]
	assert.Equal(t, "FWD-10042", string(msg.Key))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, kafka.EventTypeStorageWarning, string(msg.Headers[0].Value))

	var payload map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &payload))
	assert.Equal(t, warning.ConsolidationID.String(), payload["consolidationId"])
	assert.Equal(t, "2024-01-24T00:00:00Z", payload["warningDate"])
	assert.Equal(t, "2024-01-31T00:00:00Z", payload["freePeriodEnd"])
	assert.InDelta(t, 7, payload["remainingFreeDays"], 0)
	assert.InDelta(t, 3, payload["policyVersion"], 0)
}

func TestStorageWarningProducer_Publish_WriterError(t *testing.T) {
	writeErr := errors.New("broker unavailable")
	producer := kafka.NewStorageWarningProducerWithWriter(&fakeWriter{err: writeErr})

	err := producer.Publish(context.Background(), testWarning())

	require.ErrorIs(t, err, writeErr)
}

func TestStorageWarningProducer_Close(t *testing.T) {
	fw := &fakeWriter{}
	producer := kafka.NewStorageWarningProducerWithWriter(fw)

	require.NoError(t, producer.Close())
	assert.True(t, fw.closed)
}
