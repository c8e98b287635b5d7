// Package smsout renders OTP text messages and sends them through the SMS
// provider.
package smsout

import (
	"context"
	"fmt"

	"github.com/seyia90/authstarter/internal/pkg/config"
	"github.com/seyia90/authstarter/internal/pkg/instrument"
	"github.com/seyia90/authstarter/internal/pkg/sms"
	"go.opentelemetry.io/otel/codes"
)

const otpTemplate = "Hello %s, your %s %s is: %s. Valid for %d minutes. Do not share this OTP with anyone."

type Sender struct {
	client sms.SMS
	cfg    config.Config
	ins    instrument.Instrumentation
}

func NewSender(client sms.SMS, cfg config.Config, ins instrument.Instrumentation) *Sender {
	return &Sender{client: client, cfg: cfg, ins: ins}
}

func (s *Sender) SendPhoneVerificationOTP(ctx context.Context, phone, code, firstName string) error {
	return s.send(ctx, "SendPhoneVerificationOTP", phone, "phone verification code", code, firstName)
}

func (s *Sender) SendPasswordResetOTP(ctx context.Context, phone, code, firstName string) error {
	return s.send(ctx, "SendPasswordResetOTP", phone, "password reset code", code, firstName)
}

func (s *Sender) send(ctx context.Context, span, phone, kind, code, firstName string) error {
	ctx, sp := s.ins.Tracer("auth.outbound.smsout").Start(ctx, span)
	defer sp.End()

	appName := s.cfg.GetString("app.name")
	validFor := s.cfg.GetInt32("otp.expiry_minutes")
	if validFor <= 0 {
		validFor = 10
	}

	body := fmt.Sprintf(otpTemplate, firstName, appName, kind, code, validFor)

	if err := s.client.Send(ctx, sms.Message{To: phone, Body: body}); err != nil {
		sp.RecordError(err)
		sp.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
