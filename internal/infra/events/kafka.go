package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/IBM/sarama"
)

// KafkaPublisher maps subjects to topics; dots are valid in Kafka topic names.
type KafkaPublisher struct {
	producer sarama.SyncProducer
}

func NewKafkaPublisher(brokers []string) (*KafkaPublisher, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	return &KafkaPublisher{producer: producer}, nil
}

func (k *KafkaPublisher) Publish(ctx context.Context, subject string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}
	msg := &sarama.ProducerMessage{Topic: subject, Value: sarama.ByteEncoder(data)}
	if req, ok := payload.(BookingRequestEvent); ok {
		msg.Key = sarama.StringEncoder(req.LocationID.String())
	}

	partition, offset, err := k.producer.SendMessage(msg)
	if err != nil {
		return err
	}
	slog.DebugContext(ctx, "published event", "driver", "kafka", "topic", subject,
		"partition", partition, "offset", offset)
	return nil
}

func (k *KafkaPublisher) Close() error {
	return k.producer.Close()
}
