package messaging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"cloud.google.com/go/pubsub/v2"
	"google.golang.org/api/option"
)

var (
	// ErrPubSubProjectRequired is returned when the project ID is missing.
	ErrPubSubProjectRequired = errors.New("messaging: pubsub project id is required")
	// ErrPubSubTopicRequired is returned when the topic is empty.
	ErrPubSubTopicRequired = errors.New("messaging: pubsub topic is required")
	// ErrPubSubHandlerRequired is returned when Consume is called with a nil handler.
	ErrPubSubHandlerRequired = errors.New("messaging: pubsub handler is required")
	// ErrPubSubSubscriptionRequired is returned when no subscription is provided.
	ErrPubSubSubscriptionRequired = errors.New("messaging: pubsub subscription is required")
)

// PubSubConfig configures the Google Pub/Sub implementation.
type PubSubConfig struct {
	// ProjectID is the Google Cloud project.
	ProjectID string
	// ClientOptions are passed to the Pub/Sub client.
	ClientOptions []option.ClientOption
	// Client overrides the constructed client, mainly for tests.
	Client *pubsub.Client
}

// PubSub is a messaging implementation backed by Google Pub/Sub.
type PubSub struct {
	client *pubsub.Client

	mu         sync.Mutex
	publishers map[string]*pubsub.Publisher
	closed     bool
}

// NewPubSub constructs a Google Pub/Sub messaging client.
func NewPubSub(ctx context.Context, cfg PubSubConfig) (*PubSub, error) {
	if cfg.Client != nil {
		return &PubSub{client: cfg.Client, publishers: map[string]*pubsub.Publisher{}}, nil
	}
	if cfg.ProjectID == "" {
		return nil, ErrPubSubProjectRequired
	}

	c, err := pubsub.NewClient(ctx, cfg.ProjectID, cfg.ClientOptions...)
	if err != nil {
		return nil, fmt.Errorf("messaging: pubsub new client: %w", err)
	}

	return &PubSub{client: c, publishers: map[string]*pubsub.Publisher{}}, nil
}

// Close stops publishers and closes the client.
func (p *PubSub) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	pubs := make([]*pubsub.Publisher, 0, len(p.publishers))
	for _, pub := range p.publishers {
		pubs = append(pubs, pub)
	}
	p.publishers = nil
	p.mu.Unlock()

	for _, pub := range pubs {
		pub.Stop()
	}
	return p.client.Close()
}

// Publish sends a message to a Pub/Sub topic and waits for the server ack.
func (p *PubSub) Publish(ctx context.Context, destination string, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if destination == "" {
		return ErrPubSubTopicRequired
	}

	pub, err := p.getPublisher(destination)
	if err != nil {
		return err
	}

	res := pub.Publish(ctx, &pubsub.Message{
		Data:       msg.Body,
		Attributes: msg.Attributes,
	})
	if _, err := res.Get(ctx); err != nil {
		return fmt.Errorf("messaging: pubsub publish: %w", err)
	}
	return nil
}

// Consume receives messages from a Pub/Sub subscription and blocks until
// ctx is done. The source argument names the topic for symmetry; the
// subscription must be provided via WithSubscription.
func (p *PubSub) Consume(ctx context.Context, source string, handler Handler, opts ...ConsumeOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if handler == nil {
		return ErrPubSubHandlerRequired
	}

	co := newConsumeOptions(opts...)
	subscription := co.subscription
	if subscription == "" {
		subscription = source
	}
	if subscription == "" {
		return ErrPubSubSubscriptionRequired
	}

	sub := p.client.Subscriber(subscription)
	sub.ReceiveSettings.NumGoroutines = co.concurrency

	return sub.Receive(ctx, func(ctx context.Context, m *pubsub.Message) {
		err := callHandlerWithRecover(ctx, "pubsub", func() error {
			return handler(ctx, Message{Body: m.Data, Attributes: m.Attributes})
		})
		if err != nil {
			m.Nack()
			return
		}
		m.Ack()
	})
}

func (p *PubSub) getPublisher(topic string) (*pubsub.Publisher, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, io.ErrClosedPipe
	}
	if pub, ok := p.publishers[topic]; ok {
		return pub, nil
	}

	pub := p.client.Publisher(topic)
	p.publishers[topic] = pub
	return pub, nil
}
