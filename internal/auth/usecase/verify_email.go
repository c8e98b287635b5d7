package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/seyia90/authstarter/internal/auth/entity"
	"github.com/seyia90/authstarter/internal/pkg/goerror"
)

type VerifyEmailInput struct {
	Email string `validate:"required,email"`
	OTP   string `validate:"required,numeric"`
}

// VerifyEmail validates an email verification code.
func (s *Usecase) VerifyEmail(ctx context.Context, in VerifyEmailInput) error {
	ctx, span := s.startSpan(ctx, "VerifyEmail")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	user, err := s.repoDB.GetUserByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("User not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	return s.validateOTP(ctx, user, entity.OTPPurposeEmailVerify, in.OTP)
}
