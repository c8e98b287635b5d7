package usecase

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/seyia90/authstarter/internal/pkg/goerror"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

type CreatePaymentIntentInput struct {
	// Amount is the charge in the currency's smallest unit (e.g. cents).
	Amount      int64  `validate:"required,gt=0"`
	Currency    string `validate:"required,len=3,alpha"`
	Description string `validate:"max=500"`
}

type CreatePaymentIntentOutput struct {
	PaymentIntentID string `json:"payment_intent_id"`
	ClientSecret    string `json:"client_secret"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
}

func (CreatePaymentIntentOutput) Message() string {
	return "Payment intent created successfully."
}

func (CreatePaymentIntentOutput) StatusCode() int { return 201 }

// CreatePaymentIntent creates a Stripe payment intent and returns its client
// secret for client-side confirmation.
func (s *Usecase) CreatePaymentIntent(ctx context.Context, in CreatePaymentIntentInput) (*CreatePaymentIntentOutput, error) {
	ctx, span := s.startSpan(ctx, "CreatePaymentIntent")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(in.Amount),
		Currency: stripe.String(strings.ToLower(in.Currency)),
	}
	if in.Description != "" {
		params.Description = stripe.String(in.Description)
	}
	params.AddMetadata("user_id", strconv.FormatInt(clm.UserID, 10))
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create stripe payment intent",
			"user_id", clm.UserID, "amount", in.Amount, "currency", in.Currency, "error", err)
		return nil, goerror.NewBusiness("Failed to create payment intent", goerror.CodeInternal)
	}

	return &CreatePaymentIntentOutput{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		Amount:          intent.Amount,
		Currency:        string(intent.Currency),
	}, nil
}
