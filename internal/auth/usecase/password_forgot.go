package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/seyia90/authstarter/internal/auth/entity"
	"github.com/seyia90/authstarter/internal/pkg/goerror"
)

type GeneratePasswordResetOTPInput struct {
	Phone string `validate:"required"`
}

// GeneratePasswordResetOTP issues a password reset code to the user's phone.
// Reset issuances advance the same per-user throttle counters as
// verification issuances.
func (s *Usecase) GeneratePasswordResetOTP(ctx context.Context, in GeneratePasswordResetOTPInput) error {
	ctx, span := s.startSpan(ctx, "GeneratePasswordResetOTP")
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
		return goerror.NewBusiness("User with this phone number does not exist", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by phone", "error", err)
		return goerror.NewServer(err)
	}

	return s.issueOTP(ctx, user, entity.OTPPurposePasswordReset, func(ctx context.Context, code string) error {
		return s.smsChannel.SendPasswordResetOTP(ctx, user.Phone, code, user.FirstName)
	})
}
