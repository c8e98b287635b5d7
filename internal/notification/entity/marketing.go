package entity

import (
	"errors"
	"time"
)

// ErrAlreadySent guards a broadcast against being fired twice.
var ErrAlreadySent = errors.New("notification: broadcast already sent")

// MarketingNotification is one broadcast of marketing content.
type MarketingNotification struct {
	ID          int64
	Title       string
	Content     string
	Category    Category
	Timing      Timing
	ScheduledAt *time.Time

	Sent         bool
	SentAt       *time.Time
	SuccessCount int32
	FailureCount int32

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Sendable reports whether the broadcast may go out now.
func (n *MarketingNotification) Sendable(now time.Time) error {
	if n.Sent {
		return ErrAlreadySent
	}
	if n.Timing == TimingScheduled && n.ScheduledAt != nil && now.Before(*n.ScheduledAt) {
		return errors.New("notification: scheduled time not reached")
	}
	return nil
}

// SendResult stamps the outcome of a broadcast.
type SendResult struct {
	NotificationID int64
	SentAt         time.Time
	SuccessCount   int32
	FailureCount   int32
}

// MarketingPreference is one user's marketing opt-in state.
type MarketingPreference struct {
	UserID      int64
	Email       string
	OptedIn     bool
	OptOutAt    *time.Time
	Categories  []Category
	LastEmailAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// WantsCategory reports whether the user receives the given category.
func (p *MarketingPreference) WantsCategory(c Category) bool {
	if !p.OptedIn {
		return false
	}
	for _, have := range p.Categories {
		if have == c {
			return true
		}
	}
	return false
}

// UpdatePreference carries mutable preference fields.
type UpdatePreference struct {
	UserID     int64
	OptedIn    bool
	OptOutAt   *time.Time
	Categories []Category
}

// NotificationListFilter narrows the broadcast listing.
type NotificationListFilter struct {
	Category Category
	Page     int32
	Size     int32
}
