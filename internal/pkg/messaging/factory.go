package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const (
	// DriverNSQ selects the NSQ backend.
	DriverNSQ = "nsq"
	// DriverNATS selects the NATS backend.
	DriverNATS = "nats"
	// DriverKafka selects the Kafka backend.
	DriverKafka = "kafka"
	// DriverGooglePubSub selects the Google Pub/Sub backend.
	DriverGooglePubSub = "google-pubsub"
)

// ErrUnknownDriver indicates a driver name outside the supported set.
var ErrUnknownDriver = errors.New("messaging: unknown driver")

// FactoryOptions carries the per-backend configuration; only the block for
// the selected driver is read.
type FactoryOptions struct {
	NSQ    NSQConfig
	Kafka  KafkaConfig
	NATS   NATSConfig
	PubSub PubSubConfig
}

// NewFromDriver builds the Messaging backend named by driver, typically the
// messaging.driver config value.
func NewFromDriver(ctx context.Context, driver string, opts FactoryOptions) (Messaging, error) {
	switch strings.TrimSpace(driver) {
	case DriverNSQ:
		return NewNSQ(opts.NSQ)
	case DriverKafka:
		return NewKafka(opts.Kafka)
	case DriverNATS:
		return NewNATS(opts.NATS)
	case DriverGooglePubSub:
		return NewPubSub(ctx, opts.PubSub)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, driver)
	}
}
