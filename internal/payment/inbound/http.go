package inbound

import (
	"context"

	"github.com/seyia90/authstarter/internal/payment/usecase"
	"github.com/seyia90/authstarter/internal/pkg/router"
)

type uc interface {
	CreatePaymentIntent(ctx context.Context, in usecase.CreatePaymentIntentInput) (*usecase.CreatePaymentIntentOutput, error)
	HandleWebhook(ctx context.Context, in usecase.WebhookInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/v1/payments/intent", end.CreatePaymentIntent) // need authenticated
	r.POST("/api/v1/payments/webhook", end.Webhook)
}
