package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return w.err
}

func TestPublishOrderRealized(t *testing.T) {
	w := &recordingWriter{}
	customer := uint(7)
	date := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	err := NewKafkaPublisher(w).PublishOrderRealized(context.Background(), OrderRealized{
		OrderID:    42,
		CustomerID: &customer,
		DishIDs:    []uint{3, 1},
		OrderDate:  date,
		Timestamp:  date,
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)
	assert.Equal(t, "42", string(w.msgs[0].Key))

	var got OrderRealized
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &got))
	assert.Equal(t, TypeOrderRealized, got.Type)
	assert.Equal(t, []uint{3, 1}, got.DishIDs)
	require.NotNil(t, got.CustomerID)
	assert.Equal(t, customer, *got.CustomerID)
	assert.True(t, date.Equal(got.OrderDate))
}

func TestPublishOrderRealizedWriterError(t *testing.T) {
	w := &recordingWriter{err: errors.New("broker down")}
	err := NewKafkaPublisher(w).PublishOrderRealized(context.Background(), OrderRealized{OrderID: 1})
	assert.EqualError(t, err, "broker down")
}

func TestNoopPublisher(t *testing.T) {
	assert.NoError(t, NoopPublisher{}.PublishOrderRealized(context.Background(), OrderRealized{OrderID: 1}))
}

func TestNewKafkaWriter(t *testing.T) {
	w := NewKafkaWriter([]string{"localhost:9092"}, "orders")
	assert.Equal(t, "orders", w.Topic)
	assert.Equal(t, "localhost:9092", w.Addr.String())
}
