package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/seyia90/authstarter/internal/notification/entity"
	"github.com/seyia90/authstarter/internal/pkg/goerror"
	"github.com/seyia90/authstarter/internal/pkg/idempotency"
	"github.com/seyia90/authstarter/internal/pkg/mail"
)

type SendInput struct {
	NotificationID int64 `validate:"required"`
}

type SendOutput struct {
	NotificationID int64 `json:"notification_id,string"`
	SuccessCount   int32 `json:"success_count"`
	FailureCount   int32 `json:"failure_count"`
}

func (o *SendOutput) Message() string {
	return fmt.Sprintf("Notification sent to %d subscribers (%d failed).", o.SuccessCount, o.FailureCount)
}

// Send dispatches a broadcast to every opted-in subscriber of its category.
// The redis idempotency guard makes a concurrent or repeated Send for the
// same broadcast a no-op instead of a double fire.
func (s *Usecase) Send(ctx context.Context, in SendInput) (*SendOutput, error) {
	ctx, span := s.startSpan(ctx, "Send")
	defer span.End()

	if _, err := s.authenticatedAndAuthorized(ctx, "notifications", "write"); err != nil {
		return nil, err
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	out := &SendOutput{NotificationID: in.NotificationID}

	key := "notification:send:" + strconv.FormatInt(in.NotificationID, 10)
	err := s.idempotency.Exec(ctx, key, func(ctx context.Context) error {
		return s.broadcast(ctx, in.NotificationID, out)
	})
	if err != nil {
		if errors.Is(err, idempotency.ErrAlreadyInProgress) || errors.Is(err, idempotency.ErrAlreadyCompleted) {
			return nil, goerror.NewBusiness("Notification send is already in progress or completed", goerror.CodeConflict)
		}
		var gerr *goerror.Error
		if errors.As(err, &gerr) {
			return nil, err
		}
		slog.ErrorContext(ctx, "failed to send notification", "notification_id", in.NotificationID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return out, nil
}

func (s *Usecase) broadcast(ctx context.Context, id int64, out *SendOutput) error {
	notification, err := s.repoDB.GetNotificationByID(ctx, id)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("Notification not found", goerror.CodeNotFound)
	}
	if err != nil {
		return err
	}

	now := s.clock.Now()
	if err := notification.Sendable(now); err != nil {
		if errors.Is(err, entity.ErrAlreadySent) {
			return goerror.NewBusiness("Notification has already been sent", goerror.CodeConflict)
		}
		return goerror.NewBusiness("Scheduled time has not been reached yet", goerror.CodeInvalidInput)
	}

	subscribers, err := s.repoDB.ListOptedInPreferences(ctx, notification.Category)
	if err != nil {
		return err
	}

	for _, sub := range subscribers {
		msg := mail.Message{
			To:       []string{sub.Email},
			Subject:  notification.Title,
			HTMLBody: notification.Content,
		}

		if sendErr := s.repoMail.Send(ctx, msg); sendErr != nil {
			slog.WarnContext(ctx, "failed to send marketing email",
				"notification_id", id, "user_id", sub.UserID, "error", sendErr)
			out.FailureCount++
			continue
		}

		out.SuccessCount++

		if touchErr := s.repoDB.TouchPreferenceEmailAt(ctx, sub.UserID, now); touchErr != nil {
			slog.WarnContext(ctx, "failed to stamp last email time",
				"notification_id", id, "user_id", sub.UserID, "error", touchErr)
		}
	}

	return s.repoDB.MarkNotificationSent(ctx, entity.SendResult{
		NotificationID: id,
		SentAt:         now,
		SuccessCount:   out.SuccessCount,
		FailureCount:   out.FailureCount,
	})
}
