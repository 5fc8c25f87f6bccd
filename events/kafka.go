// Package events publishes order lifecycle events.
package events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
)

const TypeOrderRealized = "order.realized"

// OrderRealized is the payload written when a customer realizes an order.
type OrderRealized struct {
	Type       string    `json:"type"`
	OrderID    uint      `json:"order_id"`
	CustomerID *uint     `json:"customer_id"`
	DishIDs    []uint    `json:"dish_ids"`
	OrderDate  time.Time `json:"order_date"`
	Timestamp  time.Time `json:"timestamp"`
}

// MessageWriter is the part of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaPublisher struct {
	Writer MessageWriter
}

func NewKafkaPublisher(writer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

// NewKafkaWriter builds a writer for topic on brokers.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}

// PublishOrderRealized writes evt keyed by order id so events of one order stay ordered.
func (p *KafkaPublisher) PublishOrderRealized(ctx context.Context, evt OrderRealized) error {
	if evt.Type == "" {
		evt.Type = TypeOrderRealized
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(evt.OrderID), 10)),
		Value: payload,
	})
}

// NoopPublisher drops every event. Used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishOrderRealized(context.Context, OrderRealized) error { return nil }
