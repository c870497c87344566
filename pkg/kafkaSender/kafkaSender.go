package kafkaSender

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/IBM/sarama"
)

type Config struct {
	Brokers []string
	Topic   string
}

type Event struct {
	Key     string
	Message string
}

// Sender publishes checkout notifications to Kafka. Delivery is
// fire-and-forget from the caller's point of view: the checkout flow
// logs a failed publish and moves on.
type Sender struct {
	cfg      Config
	producer sarama.SyncProducer
}

func NewSender(cfg Config) *Sender {
	return &Sender{cfg: cfg}
}

func (s *Sender) Start(ctx context.Context) error {
	if s.producer != nil {
		return errors.New("kafka sender is already running")
	}

	config := sarama.NewConfig()
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(s.cfg.Brokers, config)
	if err != nil {
		return fmt.Errorf("failed to create kafka producer: %w", err)
	}

	s.producer = producer
	return nil
}

func (s *Sender) Stop(ctx context.Context) error {
	if s.producer == nil {
		return errors.New("kafka sender is not running")
	}
	return s.producer.Close()
}

func (s *Sender) Send(event Event) error {
	if s.producer == nil {
		return errors.New("kafka sender is not running")
	}

	msg := &sarama.ProducerMessage{
		Topic: s.cfg.Topic,
		Key:   sarama.StringEncoder(event.Key),
		Value: sarama.StringEncoder(event.Message),
	}

	partition, offset, err := s.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to send message to kafka: %w", err)
	}

	log.Printf("checkout event sent to kafka: partition=%d, offset=%d", partition, offset)
	return nil
}
