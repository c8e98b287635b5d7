package mq

import (
	"context"
	"encoding/json"

	"github.com/seyia90/authstarter/internal/auth/usecase"
	"github.com/seyia90/authstarter/internal/pkg/instrument"
	"github.com/seyia90/authstarter/internal/pkg/messaging"
	"github.com/seyia90/authstarter/internal/shared/event"
	"go.opentelemetry.io/otel/codes"
)

const keyOfCorrelationID string = "cID"

type Messaging struct {
	client messaging.Messaging
	ins    instrument.Instrumentation
}

func NewMessaging(client messaging.Messaging, ins instrument.Instrumentation) *Messaging {
	return &Messaging{client: client, ins: ins}
}

func (m *Messaging) PublishUserRegistered(ctx context.Context, msg usecase.UserRegisteredEvent) error {
	ctx, span := m.ins.Tracer("auth.outbound.mq").Start(ctx, "PublishUserRegistered")
	defer span.End()

	body, err := json.Marshal(event.UserRegisteredMessage{
		UserID:    msg.UserID,
		Email:     msg.Email,
		FirstName: msg.FirstName,
		LastName:  msg.LastName,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	cID := instrument.GetCorrelationID(ctx)
	if err := m.client.Publish(ctx, event.UserRegisteredDestination, messaging.Message{
		Body:       body,
		Attributes: map[string]string{keyOfCorrelationID: cID},
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
