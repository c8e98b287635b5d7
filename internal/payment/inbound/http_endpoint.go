package inbound

import (
	"github.com/seyia90/authstarter/internal/payment/usecase"
	"github.com/seyia90/authstarter/internal/pkg/router"
)

// Stripe caps webhook payloads well below this.
const maxWebhookBody = 1 << 20

// HTTPEndpoint exposes HTTP handlers for Stripe payments.
type HTTPEndpoint struct {
	uc uc
}

type CreatePaymentIntentRequest struct {
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
}

// CreatePaymentIntent creates a Stripe payment intent for the caller.
// @Summary Create payment intent
// @Description Creates a Stripe payment intent and returns its client secret.
// @Tags Payment
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreatePaymentIntentRequest true "Payment intent payload"
// @Success 201 {object} router.successResponse{data=usecase.CreatePaymentIntentOutput} "Payment intent"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Stripe error"
// @Router /api/v1/payments/intent [post]
func (h *HTTPEndpoint) CreatePaymentIntent(r *router.Request) (any, error) {
	var req CreatePaymentIntentRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	return h.uc.CreatePaymentIntent(r.Context(), usecase.CreatePaymentIntentInput{
		Amount:      req.Amount,
		Currency:    req.Currency,
		Description: req.Description,
	})
}

// Webhook receives Stripe event callbacks. The raw body is needed for
// signature verification.
// @Summary Stripe webhook
// @Description Verifies the Stripe signature and processes payment_intent events.
// @Tags Payment
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Stripe signature header"
// @Success 200 {object} router.successResponse "Webhook processed"
// @Failure 401 {object} router.errorResponse "Invalid webhook signature"
// @Router /api/v1/payments/webhook [post]
func (h *HTTPEndpoint) Webhook(r *router.Request) (any, error) {
	payload, err := r.ReadRawBody(maxWebhookBody)
	if err != nil {
		return nil, err
	}

	if err := h.uc.HandleWebhook(r.Context(), usecase.WebhookInput{
		Payload:   payload,
		Signature: r.Header.Get("Stripe-Signature"),
	}); err != nil {
		return nil, err
	}

	return WebhookResponse{}, nil
}

type WebhookResponse struct{}

func (WebhookResponse) Message() string {
	return "Webhook processed."
}
