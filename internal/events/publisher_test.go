package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/fsdevblog/groph-bankorder/internal/domain"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type fakeWriter struct {
	msgs   []kafkaGo.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkaGo.Message) error {
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

type PublisherTestSuite struct {
	suite.Suite
	writer    *fakeWriter
	publisher *KafkaPublisher
}

func TestPublisherTestSuite(t *testing.T) {
	suite.Run(t, new(PublisherTestSuite))
}

func (s *PublisherTestSuite) SetupTest() {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	s.writer = &fakeWriter{}
	s.publisher = newKafkaPublisher(s.writer, l)
}

func (s *PublisherTestSuite) TestPublish() {
	occurred := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	event := domain.BankOrderEvent{
		BankOrderID:  42,
		BankOrderSeq: "*000042",
		Operation:    "validate",
		Status:       domain.BankOrderStatusValidated,
		OccurredAt:   occurred,
	}

	s.Require().NoError(s.publisher.Publish(context.Background(), event))
	s.Require().Len(s.writer.msgs, 1)

	msg := s.writer.msgs[0]
	s.Equal("42", string(msg.Key))
	s.Equal(occurred, msg.Time)
	s.Require().Len(msg.Headers, 1)
	s.Equal("validate", string(msg.Headers[0].Value))

	var decoded domain.BankOrderEvent
	s.Require().NoError(json.Unmarshal(msg.Value, &decoded))
	s.Equal(event.BankOrderSeq, decoded.BankOrderSeq)
	s.Equal(domain.BankOrderStatusValidated, decoded.Status)
	s.True(occurred.Equal(decoded.OccurredAt))
	s.Contains(string(msg.Value), `"bankOrderSeq":"*000042"`)
}

func (s *PublisherTestSuite) TestPublishWriteError() {
	writeErr := errors.New("leader not available")
	s.writer.err = writeErr

	err := s.publisher.Publish(context.Background(), domain.BankOrderEvent{BankOrderID: 1})
	s.Require().Error(err)
	s.ErrorIs(err, writeErr)
}

func (s *PublisherTestSuite) TestClose() {
	s.Require().NoError(s.publisher.Close())
	s.True(s.writer.closed)
}

func (s *PublisherTestSuite) TestNewKafkaPublisherRequiresConfig() {
	_, err := NewKafkaPublisher(nil, "bank-orders", nil)
	s.Require().Error(err)

	_, err = NewKafkaPublisher([]string{"localhost:9092"}, "", nil)
	s.Require().Error(err)

	p, err := NewKafkaPublisher([]string{"localhost:9092"}, "bank-orders", nil)
	s.Require().NoError(err)
	s.Require().NoError(p.Close())
}

func (s *PublisherTestSuite) TestNopPublisher() {
	var p NopPublisher
	s.Require().NoError(p.Publish(context.Background(), domain.BankOrderEvent{}))
	s.Require().NoError(p.Close())
}
