package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/seyia90/authstarter/internal/notification/entity"
	"github.com/seyia90/authstarter/internal/pkg/goerror"
)

const notificationColumns = `id, title, content, category, timing, scheduled_at,
	sent, sent_at, success_count, failure_count, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNotification(row rowScanner) (*entity.MarketingNotification, error) {
	var (
		n           entity.MarketingNotification
		category    string
		timing      string
		scheduledAt pgtype.Timestamptz
		sentAt      pgtype.Timestamptz
	)

	err := row.Scan(
		&n.ID, &n.Title, &n.Content, &category, &timing, &scheduledAt,
		&n.Sent, &sentAt, &n.SuccessCount, &n.FailureCount, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	n.Category = entity.CategoryFromString(category)
	n.Timing = entity.TimingFromString(timing)
	n.ScheduledAt = timePtr(scheduledAt)
	n.SentAt = timePtr(sentAt)

	return &n, nil
}

func (s *DB) CreateNotification(ctx context.Context, n entity.MarketingNotification) (err error) {
	ctx, span := s.startSpan(ctx, "CreateNotification")
	defer func() { s.endSpan(span, err) }()

	query := `
		INSERT INTO marketing_notifications (id, title, content, category, timing, scheduled_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())`

	_, err = s.conn.Exec(ctx, query,
		n.ID, n.Title, n.Content, n.Category.String(), n.Timing.String(), n.ScheduledAt)

	return s.mapError(err)
}

func (s *DB) GetNotificationByID(ctx context.Context, id int64) (_ *entity.MarketingNotification, err error) {
	ctx, span := s.startSpan(ctx, "GetNotificationByID")
	defer func() { s.endSpan(span, err) }()

	query := `SELECT ` + notificationColumns + ` FROM marketing_notifications WHERE id = $1`

	notification, err := scanNotification(s.conn.QueryRow(ctx, query, id))
	if err != nil {
		return nil, s.mapError(err)
	}

	return notification, nil
}

func (s *DB) ListNotifications(ctx context.Context, filter entity.NotificationListFilter) (_ []entity.MarketingNotification, _ int64, err error) {
	ctx, span := s.startSpan(ctx, "ListNotifications")
	defer func() { s.endSpan(span, err) }()

	where := ``
	args := []any{}

	if filter.Category != entity.CategoryUnknown {
		where = ` WHERE category = $1`
		args = append(args, filter.Category.String())
	}

	var total int64
	if err = s.conn.QueryRow(ctx, `SELECT COUNT(*) FROM marketing_notifications`+where, args...).Scan(&total); err != nil {
		return nil, 0, s.mapError(err)
	}

	limitPos := len(args) + 1
	args = append(args, filter.Size, (filter.Page-1)*filter.Size)
	query := `SELECT ` + notificationColumns + ` FROM marketing_notifications` + where +
		` ORDER BY created_at DESC LIMIT $` + itoa(limitPos) + ` OFFSET $` + itoa(limitPos+1)

	rows, err := s.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, s.mapError(err)
	}
	defer rows.Close()

	notifications := make([]entity.MarketingNotification, 0, filter.Size)
	for rows.Next() {
		notification, scanErr := scanNotification(rows)
		if scanErr != nil {
			err = scanErr
			return nil, 0, s.mapError(err)
		}
		notifications = append(notifications, *notification)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, s.mapError(err)
	}

	return notifications, total, nil
}

func (s *DB) ScheduleNotification(ctx context.Context, id int64, at time.Time) (err error) {
	ctx, span := s.startSpan(ctx, "ScheduleNotification")
	defer func() { s.endSpan(span, err) }()

	query := `
		UPDATE marketing_notifications
		SET timing = 'scheduled',
			scheduled_at = $2,
			updated_at = now()
		WHERE id = $1 AND sent = FALSE`

	tag, err := s.conn.Exec(ctx, query, id, at)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

func (s *DB) MarkNotificationSent(ctx context.Context, res entity.SendResult) (err error) {
	ctx, span := s.startSpan(ctx, "MarkNotificationSent")
	defer func() { s.endSpan(span, err) }()

	query := `
		UPDATE marketing_notifications
		SET sent = TRUE,
			sent_at = $2,
			success_count = $3,
			failure_count = $4,
			updated_at = now()
		WHERE id = $1 AND sent = FALSE`

	tag, err := s.conn.Exec(ctx, query, res.NotificationID, res.SentAt, res.SuccessCount, res.FailureCount)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrConflict
	}

	return nil
}
