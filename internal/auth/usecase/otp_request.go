package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/seyia90/authstarter/internal/auth/entity"
	"github.com/seyia90/authstarter/internal/pkg/goerror"
)

type GenerateVerificationOTPInput struct {
	UserID int64  `validate:"required"`
	Type   string `validate:"required,oneof=phone mail"`
}

// GenerateVerificationOTP issues a fresh verification code for the user's
// phone or email, subject to the shared issuance throttle.
func (s *Usecase) GenerateVerificationOTP(ctx context.Context, in GenerateVerificationOTPInput) error {
	ctx, span := s.startSpan(ctx, "GenerateVerificationOTP")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	purpose := entity.OTPPurposeFromString(in.Type)
	if purpose.IsUnknown() {
		return goerror.NewBusiness("Invalid type", goerror.CodeInvalidInput)
	}

	user, err := s.repoDB.GetUserByID(ctx, in.UserID)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("User not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by id", "user_id", in.UserID, "error", err)
		return goerror.NewServer(err)
	}

	return s.issueOTP(ctx, user, purpose, func(ctx context.Context, code string) error {
		if purpose == entity.OTPPurposePhoneVerify {
			return s.smsChannel.SendPhoneVerificationOTP(ctx, user.Phone, code, user.FirstName)
		}
		return s.emailChannel.SendVerificationOTP(ctx, user.Email, code, user.FirstName)
	})
}
