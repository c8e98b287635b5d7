package messaging

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/nats-io/nats.go"
)

var (
	// ErrNATSSubjectRequired is returned when the subject is empty.
	ErrNATSSubjectRequired = errors.New("messaging: nats subject is required")
	// ErrNATSURLRequired is returned when the NATS server URL is missing.
	ErrNATSURLRequired = errors.New("messaging: nats url is required")
	// ErrNATSHandlerRequired is returned when Consume is called with a nil handler.
	ErrNATSHandlerRequired = errors.New("messaging: nats handler is required")
)

// NATSConfig configures the NATS implementation.
type NATSConfig struct {
	// URL is the NATS server address.
	URL string
	// Options are passed to the NATS client.
	Options []nats.Option
}

// NATS is a messaging implementation backed by NATS core.
type NATS struct {
	conn *nats.Conn
}

// NewNATS constructs a NATS messaging client.
func NewNATS(cfg NATSConfig) (*NATS, error) {
	if cfg.URL == "" {
		return nil, ErrNATSURLRequired
	}

	conn, err := nats.Connect(cfg.URL, cfg.Options...)
	if err != nil {
		return nil, fmt.Errorf("messaging: nats connect: %w", err)
	}

	return &NATS{conn: conn}, nil
}

// Close drains and closes the NATS connection.
func (n *NATS) Close() error {
	err := n.conn.Drain()
	n.conn.Close()
	return err
}

// Publish sends a message to a NATS subject.
func (n *NATS) Publish(ctx context.Context, destination string, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if destination == "" {
		return ErrNATSSubjectRequired
	}

	nmsg := nats.NewMsg(destination)
	nmsg.Data = msg.Body
	for key, value := range msg.Attributes {
		nmsg.Header.Add(key, value)
	}

	if err := n.conn.PublishMsg(nmsg); err != nil {
		return fmt.Errorf("messaging: nats publish: %w", err)
	}
	if err := n.conn.Flush(); err != nil {
		return fmt.Errorf("messaging: nats flush: %w", err)
	}
	return nil
}

// Consume subscribes to a NATS subject in a queue group and blocks until
// ctx is done.
func (n *NATS) Consume(ctx context.Context, source string, handler Handler, opts ...ConsumeOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if source == "" {
		return ErrNATSSubjectRequired
	}
	if handler == nil {
		return ErrNATSHandlerRequired
	}

	co := newConsumeOptions(opts...)
	msgCh := make(chan *nats.Msg, co.concurrency)

	sub, err := n.conn.QueueSubscribe(source, co.queueGroup, func(m *nats.Msg) {
		select {
		case msgCh <- m:
		case <-ctx.Done():
		}
	})
	if err != nil {
		return fmt.Errorf("messaging: nats subscribe: %w", err)
	}

	var wg sync.WaitGroup
	for range co.concurrency {
		wg.Go(func() {
			for m := range msgCh {
				attrs := make(map[string]string, len(m.Header))
				for key, values := range m.Header {
					if len(values) > 0 {
						attrs[key] = values[0]
					}
				}

				//nolint:errcheck // core NATS has no redelivery to request
				_ = callHandlerWithRecover(ctx, "nats", func() error {
					return handler(ctx, Message{Body: m.Data, Attributes: attrs})
				})
			}
		})
	}

	<-ctx.Done()
	uerr := sub.Drain()
	close(msgCh)
	wg.Wait()

	return errors.Join(ctx.Err(), uerr)
}
