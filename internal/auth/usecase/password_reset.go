package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/seyia90/authstarter/internal/auth/entity"
	"github.com/seyia90/authstarter/internal/pkg/goerror"
)

type ResetPasswordWithOTPInput struct {
	Phone       string `validate:"required"`
	OTP         string `validate:"required,numeric"`
	NewPassword string `validate:"required,password"`
}

// ResetPasswordWithOTP checks the reset code and, on success, stores a new
// credential hash while clearing the code and expiry. An invalid or expired
// code leaves the credential unchanged.
func (s *Usecase) ResetPasswordWithOTP(ctx context.Context, in ResetPasswordWithOTPInput) error {
	ctx, span := s.startSpan(ctx, "ResetPasswordWithOTP")
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
		return goerror.NewBusiness("Invalid or expired reset OTP", goerror.CodeInvalidInput)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by phone", "error", err)
		return goerror.NewServer(err)
	}

	if err := s.checkOTPCode(ctx, user, entity.OTPPurposePasswordReset, in.OTP); err != nil {
		return err
	}

	hashed, err := s.bcrypt.Hash(in.NewPassword)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash new password", "user_id", user.ID, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.repoDB.ResetUserPassword(ctx, user.ID, string(hashed)); err != nil {
		slog.ErrorContext(ctx, "failed to repo reset user password", "user_id", user.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
