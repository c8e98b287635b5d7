package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/seyia90/authstarter/internal/pkg/goerror"
)

type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type LoginOutput struct {
	AccessToken string `json:"access_token"`
	UserID      int64  `json:"user_id,string"`
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
}

func (o *LoginOutput) Message() string {
	return o.FullName + " is logged in successfully"
}

// Login authenticates by email and password. An unverified email is rejected
// rather than treated as bad credentials, so the client can route the user
// to the verification flow.
func (s *Usecase) Login(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	ctx, span := s.startSpan(ctx, "Login")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	user, err := s.repoDB.GetUserByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "login attempt for unavailable user", "email", in.Email)
		return nil, goerror.NewBusiness("Invalid credentials", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if !s.bcrypt.Verify(user.Password, in.Password) {
		slog.WarnContext(ctx, "login attempt with wrong password", "user_id", user.ID)
		return nil, goerror.NewBusiness("Invalid credentials", goerror.CodeUnauthorized)
	}

	if !user.EmailVerified {
		slog.WarnContext(ctx, "login attempt with unverified email", "user_id", user.ID)
		return nil, goerror.NewBusiness(
			"Please verify your email before logging in. Check your inbox for the verification OTP.",
			goerror.CodeForbidden,
		)
	}

	token, err := s.jwt.Generate(user.ID, user.Email, user.Phone, user.Role.String())
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate access token", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &LoginOutput{
		AccessToken: token,
		UserID:      user.ID,
		Email:       user.Email,
		FullName:    user.FullName(),
	}, nil
}
