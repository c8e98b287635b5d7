package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/seyia90/authstarter/internal/notification/entity"
)

type ConsumeUserRegisteredInput struct {
	UserID    int64  `validate:"required,gt=0"`
	Email     string `validate:"required,email"`
	FirstName string `validate:"required"`
	LastName  string
}

// ConsumeUserRegistered seeds the default marketing preference for a freshly
// registered user. Malformed payloads are dropped rather than redelivered.
func (s *Usecase) ConsumeUserRegistered(ctx context.Context, in ConsumeUserRegisteredInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeUserRegistered")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.ErrorContext(ctx, "invalid user registered payload", "user_id", in.UserID, "error", err)
		return nil
	}

	pref := entity.MarketingPreference{
		UserID:     in.UserID,
		Email:      strings.ToLower(in.Email),
		OptedIn:    true,
		Categories: []entity.Category{entity.CategoryPromotional},
	}

	if err := s.repoDB.CreatePreference(ctx, pref); err != nil {
		slog.ErrorContext(ctx, "failed to repo create default preference", "user_id", in.UserID, "error", err)
		return err
	}

	return nil
}
