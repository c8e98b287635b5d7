package messaging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
)

var (
	// ErrKafkaTopicRequired is returned when the topic is empty.
	ErrKafkaTopicRequired = errors.New("messaging: kafka topic is required")
	// ErrKafkaHandlerRequired is returned when Consume is called with a nil handler.
	ErrKafkaHandlerRequired = errors.New("messaging: kafka handler is required")
	// ErrKafkaBrokersRequired is returned when no Kafka brokers are configured.
	ErrKafkaBrokersRequired = errors.New("messaging: kafka brokers are required")
	// ErrKafkaGroupRequired is returned when a consumer group is not provided.
	ErrKafkaGroupRequired = errors.New("messaging: kafka consumer group is required")
)

// KafkaConfig configures the Kafka implementation.
type KafkaConfig struct {
	// Brokers lists Kafka broker addresses.
	Brokers []string
	// Dialer configures broker connections.
	Dialer *kafka.Dialer
}

// Kafka is a messaging implementation backed by kafka-go.
type Kafka struct {
	brokers []string
	dialer  *kafka.Dialer

	mu      sync.Mutex
	writers map[string]*kafka.Writer
	closed  bool
}

// NewKafka constructs a Kafka messaging client.
func NewKafka(cfg KafkaConfig) (*Kafka, error) {
	if len(cfg.Brokers) == 0 {
		return nil, ErrKafkaBrokersRequired
	}

	return &Kafka{
		brokers: append([]string{}, cfg.Brokers...),
		dialer:  cfg.Dialer,
		writers: map[string]*kafka.Writer{},
	}, nil
}

// Close shuts down all Kafka writers.
func (k *Kafka) Close() error {
	k.mu.Lock()
	if k.closed {
		k.mu.Unlock()
		return nil
	}
	k.closed = true
	writers := make([]*kafka.Writer, 0, len(k.writers))
	for _, w := range k.writers {
		writers = append(writers, w)
	}
	k.writers = nil
	k.mu.Unlock()

	var closeErr error
	for _, w := range writers {
		closeErr = errors.Join(closeErr, w.Close())
	}
	return closeErr
}

// Publish sends a message to a Kafka topic.
func (k *Kafka) Publish(ctx context.Context, destination string, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if destination == "" {
		return ErrKafkaTopicRequired
	}

	writer, err := k.getWriter(destination)
	if err != nil {
		return err
	}

	kmsg := kafka.Message{
		Key:   msg.Key,
		Value: msg.Body,
		Time:  time.Now(),
	}
	for key, value := range msg.Attributes {
		kmsg.Headers = append(kmsg.Headers, kafka.Header{Key: key, Value: []byte(value)})
	}

	if err := writer.WriteMessages(ctx, kmsg); err != nil {
		return fmt.Errorf("messaging: kafka publish: %w", err)
	}
	return nil
}

// Consume reads messages from a Kafka topic in a consumer group, committing
// offsets only after the handler succeeds.
func (k *Kafka) Consume(ctx context.Context, source string, handler Handler, opts ...ConsumeOption) error {
	if source == "" {
		return ErrKafkaTopicRequired
	}
	if handler == nil {
		return ErrKafkaHandlerRequired
	}

	co := newConsumeOptions(opts...)
	if co.group == "" {
		return ErrKafkaGroupRequired
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  k.brokers,
		GroupID:  co.group,
		Topic:    source,
		MaxBytes: 10e6,
		Dialer:   k.dialer,
	})
	defer reader.Close()

	for {
		m, err := reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			return fmt.Errorf("messaging: kafka consume: %w", err)
		}

		attrs := make(map[string]string, len(m.Headers))
		for _, h := range m.Headers {
			attrs[h.Key] = string(h.Value)
		}

		herr := callHandlerWithRecover(ctx, "kafka", func() error {
			return handler(ctx, Message{Body: m.Value, Key: m.Key, Attributes: attrs})
		})
		if herr != nil {
			// Skip the commit so the message is redelivered after rebalance.
			continue
		}

		if err := reader.CommitMessages(ctx, m); err != nil {
			return fmt.Errorf("messaging: kafka commit: %w", err)
		}
	}
}

func (k *Kafka) getWriter(topic string) (*kafka.Writer, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.closed {
		return nil, io.ErrClosedPipe
	}
	if w, ok := k.writers[topic]; ok {
		return w, nil
	}

	w := kafka.NewWriter(kafka.WriterConfig{
		Brokers:  k.brokers,
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
		Dialer:   k.dialer,
	})
	k.writers[topic] = w
	return w, nil
}
