package inbound

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"

	"github.com/seyia90/authstarter/internal/notification/usecase"
	"github.com/seyia90/authstarter/internal/pkg/config"
	"github.com/seyia90/authstarter/internal/pkg/goroutine"
	"github.com/seyia90/authstarter/internal/pkg/instrument"
	"github.com/seyia90/authstarter/internal/pkg/messaging"
	"github.com/seyia90/authstarter/internal/pkg/uid"
	"github.com/seyia90/authstarter/internal/shared/event"
)

const keyOfCorrelationID string = "cID"

type MQHandler struct {
	uc   uc
	uuid uid.StringID
	ins  instrument.Instrumentation
}

func RegisterMQConsumer(
	ctx context.Context,
	cfg config.Config,
	routine *goroutine.Manager,
	messenger messaging.Messaging,
	uuid uid.StringID,
	uc uc,
	ins instrument.Instrumentation,
) {
	mqHandler := &MQHandler{uc: uc, uuid: uuid, ins: ins}

	enabledConsumerNames := cfg.GetArray("modules.notification.consumer_names")

	consumers := []struct {
		name    string
		topic   string
		handler messaging.Handler
	}{
		{
			name:    event.UserRegisteredConsumerNotification,
			topic:   event.UserRegisteredDestination,
			handler: mqHandler.UserRegisteredNotification,
		},
	}

	for _, consumer := range consumers {
		if len(enabledConsumerNames) > 0 && slices.Contains(enabledConsumerNames, consumer.name) {
			routine.Go(ctx, func(pCtx context.Context) error {
				slog.InfoContext(ctx, "running consumer", "consumer", consumer.name)
				return messenger.Consume(pCtx,
					consumer.topic,
					consumer.handler,
					messaging.WithChannel(consumer.name),
					messaging.WithQueueGroup(consumer.name),
					messaging.WithGroup(consumer.name),
					messaging.WithSubscription(consumer.name),
					messaging.WithConcurrency(10),
				)
			})
		}
	}
}

func (h *MQHandler) ensureCorrelationID(ctx context.Context, attributes map[string]string) context.Context {
	if cID, ok := attributes[keyOfCorrelationID]; ok && cID != "" {
		return instrument.SetCorrelationID(ctx, cID)
	}
	return instrument.SetCorrelationID(ctx, h.uuid.Generate())
}

func (h *MQHandler) UserRegisteredNotification(ctx context.Context, msg messaging.Message) error {
	ctx = h.ensureCorrelationID(ctx, msg.Attributes)

	ctx, span := h.ins.Tracer("notification.inbound.mq").Start(ctx, "UserRegisteredNotification")
	defer span.End()

	slog.InfoContext(ctx, "consume: user registered notification", "msg_body", string(msg.Body))

	var payload event.UserRegisteredMessage
	if err := json.Unmarshal(msg.Body, &payload); err != nil {
		slog.ErrorContext(ctx, "failed to parse message body of user registered notification",
			"msg_body", string(msg.Body), "error", err)
		return nil
	}

	if err := h.uc.ConsumeUserRegistered(ctx, usecase.ConsumeUserRegisteredInput{
		UserID:    payload.UserID,
		Email:     payload.Email,
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to consume user registered", "msg_body", string(msg.Body), "error", err)
		return err
	}

	return nil
}
