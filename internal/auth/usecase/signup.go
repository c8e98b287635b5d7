package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/seyia90/authstarter/internal/auth/entity"
	"github.com/seyia90/authstarter/internal/pkg/goerror"
)

type SignupInput struct {
	Email     string `validate:"required,email"`
	Phone     string `validate:"required"`
	FirstName string `validate:"required,max=100"`
	LastName  string `validate:"required,max=100"`
	Password  string `validate:"required,password"`
}

type SignupOutput struct {
	UserID  int64  `json:"user_id,string"`
	Email   string `json:"email"`
	Warning string `json:"warning,omitempty"`
}

func (SignupOutput) Message() string {
	return "User created successfully. Please verify your email with the OTP sent to your email."
}

// Signup creates the account and issues an email verification code. A
// delivery failure on that first code does not undo the signup; the response
// carries a warning so the client can point the user at the resend flow.
func (s *Usecase) Signup(ctx context.Context, in SignupInput) (*SignupOutput, error) {
	ctx, span := s.startSpan(ctx, "Signup")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	phone, err := s.canonicalPhone(ctx, in.Phone)
	if err != nil {
		return nil, err
	}

	hashed, err := s.bcrypt.Hash(in.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return nil, goerror.NewServer(err)
	}

	user := entity.User{
		ID:        s.uid.Generate(),
		Email:     in.Email,
		Phone:     phone,
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Password:  string(hashed),
		Role:      entity.RoleUser,
	}

	if err := s.repoDB.CreateUser(ctx, user); err != nil {
		if errors.Is(err, entity.ErrEmailTaken) {
			return nil, goerror.NewBusiness("User with this email already exists", goerror.CodeConflict)
		}
		if errors.Is(err, entity.ErrPhoneTaken) {
			return nil, goerror.NewBusiness("User with this phone number already exists", goerror.CodeConflict)
		}
		slog.ErrorContext(ctx, "failed to repo create user", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	s.goroutine.Go(ctx, func(ctx context.Context) error {
		if err := s.repoMessaging.PublishUserRegistered(ctx, UserRegisteredEvent{
			UserID:    user.ID,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		}); err != nil {
			slog.ErrorContext(ctx, "failed to publish user registered", "user_id", user.ID, "error", err)
		}
		return nil
	})

	out := &SignupOutput{UserID: user.ID, Email: user.Email}

	issueErr := s.issueOTP(ctx, &user, entity.OTPPurposeEmailVerify, func(ctx context.Context, code string) error {
		return s.emailChannel.SendVerificationOTP(ctx, user.Email, code, user.FirstName)
	})
	if issueErr != nil {
		slog.WarnContext(ctx, "signup verification otp not delivered", "user_id", user.ID, "error", issueErr)
		out.Warning = "User created successfully, but failed to send verification mail. Please use the resend OTP feature."
	}

	return out, nil
}
