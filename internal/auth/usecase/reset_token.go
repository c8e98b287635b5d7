package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/seyia90/authstarter/internal/pkg/goerror"
)

// The token-based reset flow predates the SMS OTP flow and is kept for
// email-only accounts: a random hex token is emailed as a link instead of a
// short code. It shares the OTP expiry window but not the issuance throttle.

type GenerateResetTokenInput struct {
	Email string `validate:"required,email"`
}

// GenerateResetToken stores a fresh reset token and emails it to the user.
func (s *Usecase) GenerateResetToken(ctx context.Context, in GenerateResetTokenInput) error {
	ctx, span := s.startSpan(ctx, "GenerateResetToken")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	user, err := s.repoDB.GetUserByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("User with this email does not exist", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	token := s.token.Generate()
	expiresAt := s.clock.Now().Add(s.otpExpiry())

	if err := s.repoDB.SaveResetToken(ctx, user.ID, token, expiresAt); err != nil {
		slog.ErrorContext(ctx, "failed to repo save reset token", "user_id", user.ID, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.emailChannel.SendResetToken(ctx, user.Email, token, user.FirstName); err != nil {
		slog.ErrorContext(ctx, "failed to send reset token mail", "user_id", user.ID, "error", err)
		return goerror.NewDeliveryFailure(err, "Failed to send password reset mail. Please try again.")
	}

	return nil
}

type ResetPasswordWithTokenInput struct {
	Token       string `validate:"required"`
	NewPassword string `validate:"required,password"`
}

// ResetPasswordWithToken consumes an emailed reset token, rehashes the
// credential, and clears the token.
func (s *Usecase) ResetPasswordWithToken(ctx context.Context, in ResetPasswordWithTokenInput) error {
	ctx, span := s.startSpan(ctx, "ResetPasswordWithToken")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	user, err := s.repoDB.GetUserByResetToken(ctx, in.Token)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("Invalid or expired reset token", goerror.CodeInvalidInput)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by reset token", "error", err)
		return goerror.NewServer(err)
	}

	if user.ResetTokenExpiresAt == nil || !s.clock.Now().Before(*user.ResetTokenExpiresAt) {
		return goerror.NewBusiness("Invalid or expired reset token", goerror.CodeInvalidInput)
	}

	hashed, err := s.bcrypt.Hash(in.NewPassword)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash new password", "user_id", user.ID, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.repoDB.ResetUserPasswordByToken(ctx, user.ID, string(hashed)); err != nil {
		slog.ErrorContext(ctx, "failed to repo reset user password by token", "user_id", user.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
