package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/seyia90/authstarter/internal/auth/entity"
	"github.com/seyia90/authstarter/internal/pkg/goerror"
	"github.com/seyia90/authstarter/internal/pkg/jwt"
)

type ProfileOutput struct {
	UserID        int64     `json:"user_id,string"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Role          string    `json:"role"`
	PhoneVerified bool      `json:"phone_verified"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
}

func newProfileOutput(user *entity.User) *ProfileOutput {
	return &ProfileOutput{
		UserID:        user.ID,
		Email:         user.Email,
		Phone:         user.Phone,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Role:          user.Role.String(),
		PhoneVerified: user.PhoneVerified,
		EmailVerified: user.EmailVerified,
		CreatedAt:     user.CreatedAt,
	}
}

// Profile returns the authenticated user's account.
func (s *Usecase) Profile(ctx context.Context) (*ProfileOutput, error) {
	ctx, span := s.startSpan(ctx, "Profile")
	defer span.End()

	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	user, err := s.repoDB.GetUserByID(ctx, clm.UserID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("User not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by id", "user_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return newProfileOutput(user), nil
}

type ProfileUpdateInput struct {
	FirstName string `validate:"required,max=100"`
	LastName  string `validate:"required,max=100"`
}

// ProfileUpdate changes the authenticated user's display name.
func (s *Usecase) ProfileUpdate(ctx context.Context, in ProfileUpdateInput) error {
	ctx, span := s.startSpan(ctx, "ProfileUpdate")
	defer span.End()

	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if err := s.repoDB.UpdateUserProfile(ctx, entity.UpdateProfile{
		ID:        clm.UserID,
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
	}); err != nil {
		slog.ErrorContext(ctx, "failed to repo update user profile", "user_id", clm.UserID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
