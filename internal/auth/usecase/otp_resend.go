package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/seyia90/authstarter/internal/auth/entity"
	"github.com/seyia90/authstarter/internal/pkg/goerror"
)

type ResendVerificationOTPInput struct {
	Email string `validate:"required,email"`
}

// ResendVerificationOTP looks the user up by email and issues a fresh email
// verification code. Each resend is a new throttled issuance.
func (s *Usecase) ResendVerificationOTP(ctx context.Context, in ResendVerificationOTPInput) error {
	ctx, span := s.startSpan(ctx, "ResendVerificationOTP")
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

	if user.EmailVerified {
		return goerror.NewBusiness("Email already verified", goerror.CodeInvalidInput)
	}

	return s.issueOTP(ctx, user, entity.OTPPurposeEmailVerify, func(ctx context.Context, code string) error {
		return s.emailChannel.SendVerificationOTP(ctx, user.Email, code, user.FirstName)
	})
}
