package messaging

import (
	"context"
	"errors"
	"fmt"

	nsq "github.com/nsqio/go-nsq"
)

var (
	// ErrNSQTopicRequired is returned when the topic is empty.
	ErrNSQTopicRequired = errors.New("messaging: nsq topic is required")
	// ErrNSQChannelRequired is returned when the channel is empty.
	ErrNSQChannelRequired = errors.New("messaging: nsq channel is required")
	// ErrNSQHandlerRequired is returned when Consume is called with a nil handler.
	ErrNSQHandlerRequired = errors.New("messaging: nsq handler is required")
	// ErrNSQProducerAddrRequired is returned when the producer address is missing.
	ErrNSQProducerAddrRequired = errors.New("messaging: nsq producer address is required")
	// ErrNSQConsumerAddrsRequired is returned when no consumer addresses are configured.
	ErrNSQConsumerAddrsRequired = errors.New("messaging: nsq nsqd/lookupd addresses are required")
)

// NSQConfig configures the NSQ implementation.
type NSQConfig struct {
	// ProducerAddr is the NSQD address for publishing.
	ProducerAddr string
	// ConsumerNSQDAddrs lists NSQD addresses for consumers.
	ConsumerNSQDAddrs []string
	// ConsumerLookupdAddrs lists lookupd addresses for consumers.
	ConsumerLookupdAddrs []string
}

// NSQ is a messaging implementation backed by NSQ.
type NSQ struct {
	producer *nsq.Producer

	consumerNSQDAddrs    []string
	consumerLookupdAddrs []string
}

// NewNSQ constructs an NSQ messaging client.
func NewNSQ(cfg NSQConfig) (*NSQ, error) {
	var producer *nsq.Producer
	if cfg.ProducerAddr != "" {
		p, err := nsq.NewProducer(cfg.ProducerAddr, nsq.NewConfig())
		if err != nil {
			return nil, fmt.Errorf("messaging: nsq new producer: %w", err)
		}
		p.SetLoggerLevel(nsq.LogLevelError)
		producer = p
	}

	return &NSQ{
		producer:             producer,
		consumerNSQDAddrs:    append([]string{}, cfg.ConsumerNSQDAddrs...),
		consumerLookupdAddrs: append([]string{}, cfg.ConsumerLookupdAddrs...),
	}, nil
}

// Close stops the NSQ producer.
func (n *NSQ) Close() error {
	if n.producer != nil {
		n.producer.Stop()
	}
	return nil
}

// Publish sends a message to an NSQ topic.
func (n *NSQ) Publish(ctx context.Context, destination string, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if destination == "" {
		return ErrNSQTopicRequired
	}
	if n.producer == nil {
		return ErrNSQProducerAddrRequired
	}

	if err := n.producer.Publish(destination, msg.Body); err != nil {
		return fmt.Errorf("messaging: nsq publish: %w", err)
	}
	return nil
}

// Consume reads messages from an NSQ topic/channel and blocks until ctx is
// done. A handler error requeues the message.
func (n *NSQ) Consume(ctx context.Context, source string, handler Handler, opts ...ConsumeOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if source == "" {
		return ErrNSQTopicRequired
	}
	if handler == nil {
		return ErrNSQHandlerRequired
	}
	if len(n.consumerNSQDAddrs) == 0 && len(n.consumerLookupdAddrs) == 0 {
		return ErrNSQConsumerAddrsRequired
	}

	co := newConsumeOptions(opts...)
	if co.channel == "" {
		return ErrNSQChannelRequired
	}

	consumer, err := nsq.NewConsumer(source, co.channel, nsq.NewConfig())
	if err != nil {
		return fmt.Errorf("messaging: nsq new consumer: %w", err)
	}
	consumer.SetLoggerLevel(nsq.LogLevelError)

	consumer.AddConcurrentHandlers(nsq.HandlerFunc(func(m *nsq.Message) error {
		return callHandlerWithRecover(ctx, "nsq", func() error {
			return handler(ctx, Message{Body: m.Body})
		})
	}), co.concurrency)

	if len(n.consumerLookupdAddrs) > 0 {
		err = consumer.ConnectToNSQLookupds(n.consumerLookupdAddrs)
	} else {
		err = consumer.ConnectToNSQDs(n.consumerNSQDAddrs)
	}
	if err != nil {
		consumer.Stop()
		<-consumer.StopChan
		return fmt.Errorf("messaging: nsq connect: %w", err)
	}

	select {
	case <-ctx.Done():
		consumer.Stop()
		<-consumer.StopChan
		return ctx.Err()
	case <-consumer.StopChan:
		return nil
	}
}
