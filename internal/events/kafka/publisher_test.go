package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-petr/pet-ledger/internal/events"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type captureWriter struct {
	messages []kafka.Message
	err      error
}

func (w *captureWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}

	w.messages = append(w.messages, msgs...)

	return nil
}

func (w *captureWriter) Close() error { return nil }

func TestPublish(t *testing.T) {
	writer := &captureWriter{}
	publisher := &Publisher{writer: writer}

	event := events.NewTransactionCompleted(1, 2, decimal.NewFromInt(40), "rent")

	err := publisher.Publish(context.Background(), event)
	require.NoError(t, err)
	require.Len(t, writer.messages, 1)

	msg := writer.messages[0]
	require.Equal(t, event.ID.String(), string(msg.Key))

	var got events.TransactionCompleted
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	require.Equal(t, event.ID, got.ID)
	require.Equal(t, event.FromAccountID, got.FromAccountID)
	require.Equal(t, event.ToAccountID, got.ToAccountID)
	require.True(t, event.Amount.Equal(got.Amount))
	require.Equal(t, event.Remarks, got.Remarks)
}

func TestPublishWriterError(t *testing.T) {
	wantErr := errors.New("broker unavailable")
	publisher := &Publisher{writer: &captureWriter{err: wantErr}}

	err := publisher.Publish(context.Background(), events.NewTransactionCompleted(1, 2, decimal.NewFromInt(1), ""))
	require.ErrorIs(t, err, wantErr)
}

func TestNewPublisher(t *testing.T) {
	publisher := NewPublisher([]string{"localhost:9092"}, "transaction_completed")
	require.NotNil(t, publisher.writer)
	require.NoError(t, publisher.Close())
}
