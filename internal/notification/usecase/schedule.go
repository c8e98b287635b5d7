package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/seyia90/authstarter/internal/pkg/goerror"
)

type ScheduleInput struct {
	NotificationID int64     `validate:"required"`
	ScheduledAt    time.Time `validate:"required"`
}

// Schedule moves an unsent broadcast to a future send time.
func (s *Usecase) Schedule(ctx context.Context, in ScheduleInput) error {
	ctx, span := s.startSpan(ctx, "Schedule")
	defer span.End()

	if _, err := s.authenticatedAndAuthorized(ctx, "notifications", "write"); err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if !in.ScheduledAt.After(s.clock.Now()) {
		return goerror.NewBusiness("Scheduled time must be in the future", goerror.CodeInvalidInput)
	}

	notification, err := s.repoDB.GetNotificationByID(ctx, in.NotificationID)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("Notification not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get notification", "notification_id", in.NotificationID, "error", err)
		return goerror.NewServer(err)
	}

	if notification.Sent {
		return goerror.NewBusiness("Notification has already been sent", goerror.CodeConflict)
	}

	if err := s.repoDB.ScheduleNotification(ctx, in.NotificationID, in.ScheduledAt); err != nil {
		slog.ErrorContext(ctx, "failed to repo schedule notification", "notification_id", in.NotificationID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
