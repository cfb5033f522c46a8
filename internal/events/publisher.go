package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/fsdevblog/groph-bankorder/internal/domain"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkaGo.Message) error
	Close() error
}

// KafkaPublisher публикует события заказов в топик. Ключ сообщения ID заказа, поэтому события
// одного заказа попадают в одну партицию и читаются по порядку.
type KafkaPublisher struct {
	w messageWriter
	l *logrus.Entry
}

func NewKafkaPublisher(brokers []string, topic string, l *logrus.Logger) (*KafkaPublisher, error) {
	if len(brokers) == 0 || topic == "" {
		return nil, errors.New("kafka publisher: brokers and topic are required")
	}
	w := &kafkaGo.Writer{
		Addr:                   kafkaGo.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafkaGo.Hash{},
		RequiredAcks:           kafkaGo.RequireAll,
		AllowAutoTopicCreation: true,
	}
	return newKafkaPublisher(w, l), nil
}

func newKafkaPublisher(w messageWriter, l *logrus.Logger) *KafkaPublisher {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &KafkaPublisher{
		w: w,
		l: l.WithFields(logrus.Fields{
			"component": "events",
			"module":    "kafka_publisher",
		}),
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event domain.BankOrderEvent) error {
	msg, err := buildMessage(event)
	if err != nil {
		return err
	}
	if writeErr := p.w.WriteMessages(ctx, msg); writeErr != nil {
		return fmt.Errorf("write bank order event: %w", writeErr)
	}
	p.l.WithFields(logrus.Fields{
		"bankOrderID": event.BankOrderID,
		"operation":   event.Operation,
		"status":      event.Status,
	}).Debug("event published")
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.w.Close() //nolint:wrapcheck
}

func buildMessage(event domain.BankOrderEvent) (kafkaGo.Message, error) {
	bytes, err := json.Marshal(event)
	if err != nil {
		return kafkaGo.Message{}, fmt.Errorf("marshal bank order event: %w", err)
	}
	return kafkaGo.Message{
		Key:   []byte(strconv.FormatInt(event.BankOrderID, 10)),
		Value: bytes,
		Headers: []kafkaGo.Header{
			{Key: "operation", Value: []byte(event.Operation)},
		},
		Time: event.OccurredAt,
	}, nil
}

// NopPublisher ничего не публикует. Используется, когда брокеры не настроены.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, domain.BankOrderEvent) error { return nil }

func (NopPublisher) Close() error { return nil }
