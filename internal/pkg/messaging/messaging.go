// Package messaging provides a broker-agnostic API for publishing and
// consuming messages.
//
// Business code stays independent from the underlying messaging system
// (Kafka, NATS, NSQ, Google Pub/Sub). Implementations acknowledge a message
// when the handler returns nil and request redelivery otherwise, where the
// broker supports it.
package messaging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"
)

// ErrUnsupported is returned when a feature is not supported by the selected broker.
var ErrUnsupported = errors.New("messaging: unsupported operation")

// Message is a broker-agnostic message.
type Message struct {
	// Body is the message payload.
	Body []byte
	// Key is used by Kafka for partitioning; other brokers ignore it.
	Key []byte
	// Attributes carries string metadata (headers, Pub/Sub attributes).
	Attributes map[string]string
}

// Handler processes a received message. A nil return acknowledges the
// message; an error requests redelivery when the broker supports it.
type Handler func(ctx context.Context, msg Message) error

// Messaging is a broker-agnostic client that can publish and consume messages.
type Messaging interface {
	io.Closer

	// Publish sends a message to the destination (topic/subject/queue).
	Publish(ctx context.Context, destination string, msg Message) error

	// Consume blocks consuming messages from the source until ctx is done
	// or a fatal broker error occurs.
	Consume(ctx context.Context, source string, handler Handler, opts ...ConsumeOption) error
}

type consumeOptions struct {
	// concurrency is the number of handler goroutines.
	concurrency int
	// group is the consumer group (Kafka).
	group string
	// channel is the channel name (NSQ).
	channel string
	// queueGroup is the queue group name (NATS).
	queueGroup string
	// subscription is the subscription name (Google Pub/Sub).
	subscription string
}

// ConsumeOption configures consumer behavior.
type ConsumeOption func(*consumeOptions)

func newConsumeOptions(opts ...ConsumeOption) consumeOptions {
	co := consumeOptions{concurrency: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&co)
		}
	}
	if co.concurrency < 1 {
		co.concurrency = 1
	}
	return co
}

// WithConcurrency sets how many handler goroutines process messages in parallel.
func WithConcurrency(n int) ConsumeOption {
	return func(o *consumeOptions) { o.concurrency = n }
}

// WithGroup sets the consumer group name (Kafka).
func WithGroup(group string) ConsumeOption {
	return func(o *consumeOptions) { o.group = group }
}

// WithChannel sets the channel name (NSQ).
func WithChannel(channel string) ConsumeOption {
	return func(o *consumeOptions) { o.channel = channel }
}

// WithQueueGroup sets the queue group name (NATS).
func WithQueueGroup(queueGroup string) ConsumeOption {
	return func(o *consumeOptions) { o.queueGroup = queueGroup }
}

// WithSubscription sets the subscription name (Google Pub/Sub).
func WithSubscription(subscription string) ConsumeOption {
	return func(o *consumeOptions) { o.subscription = subscription }
}

func callHandlerWithRecover(ctx context.Context, kind string, fn func() error) (err error) {
	defer func() {
		if rvr := recover(); rvr != nil {
			slog.ErrorContext(ctx, "panic in messaging handler",
				"kind", kind,
				"panic", rvr,
				"stack", string(debug.Stack()),
			)
			err = fmt.Errorf("messaging: panic in %s handler: %v", kind, rvr)
		}
	}()

	return fn()
}
