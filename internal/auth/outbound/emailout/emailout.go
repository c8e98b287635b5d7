// Package emailout renders verification and password reset emails and sends
// them through the mail provider.
package emailout

import (
	"context"
	"fmt"

	"github.com/seyia90/authstarter/internal/pkg/config"
	"github.com/seyia90/authstarter/internal/pkg/instrument"
	"github.com/seyia90/authstarter/internal/pkg/mail"
	"go.opentelemetry.io/otel/codes"
)

type Sender struct {
	client mail.Mail
	cfg    config.Config
	ins    instrument.Instrumentation
}

func NewSender(client mail.Mail, cfg config.Config, ins instrument.Instrumentation) *Sender {
	return &Sender{client: client, cfg: cfg, ins: ins}
}

func (s *Sender) SendVerificationOTP(ctx context.Context, email, code, firstName string) error {
	ctx, span := s.ins.Tracer("auth.outbound.emailout").Start(ctx, "SendVerificationOTP")
	defer span.End()

	appName := s.cfg.GetString("app.name")
	validFor := s.cfg.GetInt32("otp.expiry_minutes")
	if validFor <= 0 {
		validFor = 10
	}

	msg := mail.Message{
		To:      []string{email},
		Subject: fmt.Sprintf("%s Email Verification", appName),
		TextBody: fmt.Sprintf(
			"Hello %s,\n\nYour %s email verification code is: %s.\nIt is valid for %d minutes. Do not share this code with anyone.\n",
			firstName, appName, code, validFor,
		),
		HTMLBody: fmt.Sprintf(
			"<p>Hello %s,</p><p>Your %s email verification code is: <b>%s</b>.</p><p>It is valid for %d minutes. Do not share this code with anyone.</p>",
			firstName, appName, code, validFor,
		),
	}

	if err := s.client.Send(ctx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

func (s *Sender) SendResetToken(ctx context.Context, email, token, firstName string) error {
	ctx, span := s.ins.Tracer("auth.outbound.emailout").Start(ctx, "SendResetToken")
	defer span.End()

	appName := s.cfg.GetString("app.name")
	link := s.cfg.GetString("app.frontend_url") + "/reset-password?token=" + token

	msg := mail.Message{
		To:      []string{email},
		Subject: fmt.Sprintf("%s Password Reset", appName),
		TextBody: fmt.Sprintf(
			"Hello %s,\n\nWe received a request to reset your %s password.\nUse this link to choose a new one: %s\n\nIf you did not request this, you can ignore this email.\n",
			firstName, appName, link,
		),
		HTMLBody: fmt.Sprintf(
			"<p>Hello %s,</p><p>We received a request to reset your %s password.</p><p><a href=%q>Reset your password</a></p><p>If you did not request this, you can ignore this email.</p>",
			firstName, appName, link,
		),
	}

	if err := s.client.Send(ctx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
