package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/samber/lo"
	"github.com/seyia90/authstarter/internal/notification/entity"
	"github.com/seyia90/authstarter/internal/pkg/goerror"
)

type PreferenceOutput struct {
	UserID      int64      `json:"user_id,string"`
	Email       string     `json:"email"`
	OptedIn     bool       `json:"opted_in"`
	OptOutAt    *time.Time `json:"opt_out_at,omitempty"`
	Categories  []string   `json:"categories"`
	LastEmailAt *time.Time `json:"last_email_at,omitempty"`
}

func newPreferenceOutput(pref *entity.MarketingPreference) *PreferenceOutput {
	return &PreferenceOutput{
		UserID:   pref.UserID,
		Email:    pref.Email,
		OptedIn:  pref.OptedIn,
		OptOutAt: pref.OptOutAt,
		Categories: lo.Map(pref.Categories, func(c entity.Category, _ int) string {
			return c.String()
		}),
		LastEmailAt: pref.LastEmailAt,
	}
}

// PreferenceGet returns the authenticated user's marketing preference,
// creating an opted-in promotional default on first read.
func (s *Usecase) PreferenceGet(ctx context.Context) (*PreferenceOutput, error) {
	ctx, span := s.startSpan(ctx, "PreferenceGet")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	pref, err := s.repoDB.GetPreferenceByUserID(ctx, clm.UserID)
	if errors.Is(err, goerror.ErrNotFound) {
		return s.seedDefaultPreference(ctx, clm.UserID, clm.UserEmail)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get preference", "user_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return newPreferenceOutput(pref), nil
}

func (s *Usecase) seedDefaultPreference(ctx context.Context, userID int64, email string) (*PreferenceOutput, error) {
	pref := entity.MarketingPreference{
		UserID:     userID,
		Email:      email,
		OptedIn:    true,
		Categories: []entity.Category{entity.CategoryPromotional},
	}

	if err := s.repoDB.CreatePreference(ctx, pref); err != nil {
		slog.ErrorContext(ctx, "failed to repo create default preference", "user_id", userID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return newPreferenceOutput(&pref), nil
}

type PreferenceUpdateInput struct {
	OptedIn    bool
	Categories []string `validate:"dive,oneof=promotional newsletter product_update"`
}

// PreferenceUpdate changes opt-in state and categories. Opting out stamps
// the opt-out time.
func (s *Usecase) PreferenceUpdate(ctx context.Context, in PreferenceUpdateInput) error {
	ctx, span := s.startSpan(ctx, "PreferenceUpdate")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	update := entity.UpdatePreference{
		UserID:  clm.UserID,
		OptedIn: in.OptedIn,
		Categories: lo.Map(in.Categories, func(raw string, _ int) entity.Category {
			return entity.CategoryFromString(raw)
		}),
	}

	if !in.OptedIn {
		now := s.clock.Now()
		update.OptOutAt = &now
	}

	if err := s.repoDB.UpdatePreference(ctx, update); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("Preference not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo update preference", "user_id", clm.UserID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
