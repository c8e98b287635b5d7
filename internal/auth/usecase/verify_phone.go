package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/seyia90/authstarter/internal/auth/entity"
	"github.com/seyia90/authstarter/internal/pkg/goerror"
)

type VerifyPhoneInput struct {
	Phone string `validate:"required"`
	OTP   string `validate:"required,numeric"`
}

// VerifyPhone validates a phone verification code. The raw phone number is
// canonicalized before lookup so any national format the formatter accepts
// resolves to the stored record.
func (s *Usecase) VerifyPhone(ctx context.Context, in VerifyPhoneInput) error {
	ctx, span := s.startSpan(ctx, "VerifyPhone")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	phone, err := s.canonicalPhone(ctx, in.Phone)
	if err != nil {
		return err
	}

	user, err := s.repoDB.GetUserByPhone(ctx, phone)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("User not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by phone", "error", err)
		return goerror.NewServer(err)
	}

	return s.validateOTP(ctx, user, entity.OTPPurposePhoneVerify, in.OTP)
}
