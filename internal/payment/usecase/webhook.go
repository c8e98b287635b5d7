package usecase

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/seyia90/authstarter/internal/pkg/goerror"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

type WebhookInput struct {
	Payload   []byte
	Signature string
}

// HandleWebhook verifies the Stripe signature and acknowledges payment
// intent outcome events. Unrecognized event types are acknowledged without
// action so Stripe does not retry them.
func (s *Usecase) HandleWebhook(ctx context.Context, in WebhookInput) error {
	ctx, span := s.startSpan(ctx, "HandleWebhook")
	defer span.End()

	secret := s.cfg.GetString("stripe.webhook_secret")

	ev, err := webhook.ConstructEventWithOptions(in.Payload, in.Signature, secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		slog.WarnContext(ctx, "stripe webhook signature verification failed", "error", err)
		return goerror.NewBusiness("Invalid webhook signature", goerror.CodeUnauthorized)
	}

	switch ev.Type {
	case "payment_intent.succeeded", "payment_intent.payment_failed":
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(ev.Data.Raw, &intent); err != nil {
			slog.ErrorContext(ctx, "failed to parse payment intent event", "event_type", ev.Type, "error", err)
			return goerror.NewInvalidFormat()
		}

		slog.InfoContext(ctx, "stripe payment intent event",
			"event_type", ev.Type,
			"payment_intent_id", intent.ID,
			"amount", intent.Amount,
			"currency", intent.Currency,
			"status", intent.Status,
		)
	default:
		slog.InfoContext(ctx, "ignoring stripe event", "event_type", ev.Type)
	}

	return nil
}
