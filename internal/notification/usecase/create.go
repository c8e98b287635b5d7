package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/seyia90/authstarter/internal/notification/entity"
	"github.com/seyia90/authstarter/internal/pkg/goerror"
)

type CreateInput struct {
	Title       string `validate:"required,max=200"`
	Content     string `validate:"required"`
	Category    string `validate:"required,oneof=promotional newsletter product_update"`
	Timing      string `validate:"required,oneof=immediate scheduled"`
	ScheduledAt *time.Time
}

type CreateOutput struct {
	NotificationID int64 `json:"notification_id,string"`
}

func (CreateOutput) Message() string {
	return "Notification created successfully."
}

func (CreateOutput) StatusCode() int { return 201 }

// Create stores a broadcast. A scheduled broadcast requires a future
// scheduled time; an immediate one is dispatched by a follow-up Send call.
func (s *Usecase) Create(ctx context.Context, in CreateInput) (*CreateOutput, error) {
	ctx, span := s.startSpan(ctx, "Create")
	defer span.End()

	if _, err := s.authenticatedAndAuthorized(ctx, "notifications", "write"); err != nil {
		return nil, err
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	timing := entity.TimingFromString(in.Timing)
	if timing == entity.TimingScheduled {
		if in.ScheduledAt == nil {
			return nil, goerror.NewBusiness("Scheduled notifications require a scheduled time", goerror.CodeInvalidInput)
		}
		if !in.ScheduledAt.After(s.clock.Now()) {
			return nil, goerror.NewBusiness("Scheduled time must be in the future", goerror.CodeInvalidInput)
		}
	}

	notification := entity.MarketingNotification{
		ID:          s.uid.Generate(),
		Title:       strings.TrimSpace(in.Title),
		Content:     in.Content,
		Category:    entity.CategoryFromString(in.Category),
		Timing:      timing,
		ScheduledAt: in.ScheduledAt,
	}

	if err := s.repoDB.CreateNotification(ctx, notification); err != nil {
		slog.ErrorContext(ctx, "failed to repo create notification", "title", notification.Title, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &CreateOutput{NotificationID: notification.ID}, nil
}
