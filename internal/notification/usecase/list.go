package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/samber/lo"
	"github.com/seyia90/authstarter/internal/notification/entity"
	"github.com/seyia90/authstarter/internal/pkg/goerror"
)

type ListInput struct {
	Category string
	Page     int32 `validate:"gte=0"`
	Size     int32 `validate:"gte=0,lte=100"`
}

type NotificationItem struct {
	ID           int64      `json:"id,string"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	Category     string     `json:"category"`
	Timing       string     `json:"timing"`
	ScheduledAt  *time.Time `json:"scheduled_at,omitempty"`
	Sent         bool       `json:"sent"`
	SentAt       *time.Time `json:"sent_at,omitempty"`
	SuccessCount int32      `json:"success_count"`
	FailureCount int32      `json:"failure_count"`
	CreatedAt    time.Time  `json:"created_at"`
}

type ListOutput struct {
	Notifications []NotificationItem `json:"notifications"`
	total         int64
	page          int32
	size          int32
}

func (o *ListOutput) Meta() map[string]any {
	return map[string]any{
		"total": o.total,
		"page":  o.page,
		"size":  o.size,
	}
}

// List returns broadcasts, newest first, optionally narrowed by category.
func (s *Usecase) List(ctx context.Context, in ListInput) (*ListOutput, error) {
	ctx, span := s.startSpan(ctx, "List")
	defer span.End()

	if _, err := s.authenticatedAndAuthorized(ctx, "notifications", "read"); err != nil {
		return nil, err
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if in.Page <= 0 {
		in.Page = 1
	}
	if in.Size <= 0 {
		in.Size = 20
	}

	notifications, total, err := s.repoDB.ListNotifications(ctx, entity.NotificationListFilter{
		Category: entity.CategoryFromString(in.Category),
		Page:     in.Page,
		Size:     in.Size,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list notifications", "error", err)
		return nil, goerror.NewServer(err)
	}

	items := lo.Map(notifications, func(n entity.MarketingNotification, _ int) NotificationItem {
		return NotificationItem{
			ID:           n.ID,
			Title:        n.Title,
			Content:      n.Content,
			Category:     n.Category.String(),
			Timing:       n.Timing.String(),
			ScheduledAt:  n.ScheduledAt,
			Sent:         n.Sent,
			SentAt:       n.SentAt,
			SuccessCount: n.SuccessCount,
			FailureCount: n.FailureCount,
			CreatedAt:    n.CreatedAt,
		}
	})

	return &ListOutput{Notifications: items, total: total, page: in.Page, size: in.Size}, nil
}
