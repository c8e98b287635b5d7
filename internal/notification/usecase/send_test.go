package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/seyia90/authstarter/internal/notification/entity"
	"github.com/seyia90/authstarter/internal/pkg/goerror"
)

func seedNotification(f *fixture, t *testing.T, timing string, scheduledAt *time.Time) int64 {
	t.Helper()

	out, err := f.uc.Create(adminCtx(), CreateInput{
		Title:       "June Deals",
		Content:     "<p>Save big</p>",
		Category:    "promotional",
		Timing:      timing,
		ScheduledAt: scheduledAt,
	})
	if err != nil {
		t.Fatalf("create notification: %v", err)
	}
	return out.NotificationID
}

func TestSendBroadcast(t *testing.T) {
	f := newFixture(t)
	seedSubscriber(f.repo, 10, "a@example.com")
	seedSubscriber(f.repo, 11, "b@example.com")
	seedSubscriber(f.repo, 12, "c@example.com", entity.CategoryNewsletter)

	id := seedNotification(f, t, "immediate", nil)

	out, err := f.uc.Send(adminCtx(), SendInput{NotificationID: id})
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	if out.SuccessCount != 2 || out.FailureCount != 0 {
		t.Fatalf("counts = %d/%d, want 2/0", out.SuccessCount, out.FailureCount)
	}
	if len(f.mail.sent) != 2 {
		t.Fatalf("delivered %d emails, want 2; newsletter-only subscriber must be skipped", len(f.mail.sent))
	}

	n := f.repo.notifications[id]
	if !n.Sent || n.SentAt == nil {
		t.Fatal("notification must be stamped sent")
	}
	if n.SuccessCount != 2 {
		t.Fatalf("persisted success count = %d", n.SuccessCount)
	}

	if f.repo.preferences[10].LastEmailAt == nil {
		t.Fatal("subscriber last email time must be stamped")
	}
	if f.repo.preferences[12].LastEmailAt != nil {
		t.Fatal("skipped subscriber must not be stamped")
	}
}

func TestSendCountsFailuresAndContinues(t *testing.T) {
	f := newFixture(t)
	seedSubscriber(f.repo, 10, "a@example.com")
	seedSubscriber(f.repo, 11, "broken@example.com")
	seedSubscriber(f.repo, 12, "c@example.com")
	f.mail.failTo["broken@example.com"] = true

	id := seedNotification(f, t, "immediate", nil)

	out, err := f.uc.Send(adminCtx(), SendInput{NotificationID: id})
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	if out.SuccessCount != 2 || out.FailureCount != 1 {
		t.Fatalf("counts = %d/%d, want 2/1", out.SuccessCount, out.FailureCount)
	}
	if f.repo.preferences[11].LastEmailAt != nil {
		t.Fatal("failed recipient must not be stamped")
	}

	n := f.repo.notifications[id]
	if !n.Sent || n.FailureCount != 1 {
		t.Fatalf("persisted outcome = sent:%v %d/%d", n.Sent, n.SuccessCount, n.FailureCount)
	}
}

func TestSendTwiceIsRefused(t *testing.T) {
	f := newFixture(t)
	seedSubscriber(f.repo, 10, "a@example.com")

	id := seedNotification(f, t, "immediate", nil)

	if _, err := f.uc.Send(adminCtx(), SendInput{NotificationID: id}); err != nil {
		t.Fatalf("first send: %v", err)
	}

	_, err := f.uc.Send(adminCtx(), SendInput{NotificationID: id})
	ge := asGoError(t, err)
	if ge.Code() != goerror.CodeConflict {
		t.Fatalf("code = %v, want CodeConflict", ge.Code())
	}
	if len(f.mail.sent) != 1 {
		t.Fatalf("second send must not deliver, total = %d", len(f.mail.sent))
	}
}

func TestSendScheduledBeforeTime(t *testing.T) {
	f := newFixture(t)
	seedSubscriber(f.repo, 10, "a@example.com")

	future := f.clock.now.Add(2 * time.Hour)
	id := seedNotification(f, t, "scheduled", &future)

	_, err := f.uc.Send(adminCtx(), SendInput{NotificationID: id})
	ge := asGoError(t, err)
	if ge.Msg() != "Scheduled time has not been reached yet" {
		t.Fatalf("message = %q", ge.Msg())
	}
	if len(f.mail.sent) != 0 {
		t.Fatal("nothing may be delivered before the scheduled time")
	}
}

func TestSendScheduledAfterTime(t *testing.T) {
	f := newFixture(t)
	seedSubscriber(f.repo, 10, "a@example.com")

	future := f.clock.now.Add(2 * time.Hour)
	id := seedNotification(f, t, "scheduled", &future)

	f.clock.now = f.clock.now.Add(3 * time.Hour)

	out, err := f.uc.Send(adminCtx(), SendInput{NotificationID: id})
	if err != nil {
		t.Fatalf("send after scheduled time: %v", err)
	}
	if out.SuccessCount != 1 {
		t.Fatalf("success count = %d", out.SuccessCount)
	}
}

func TestSendUnknownNotification(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Send(adminCtx(), SendInput{NotificationID: 404})
	ge := asGoError(t, err)
	if ge.Code() != goerror.CodeNotFound {
		t.Fatalf("code = %v, want CodeNotFound", ge.Code())
	}
}

func TestSendRequiresAdmin(t *testing.T) {
	f := newFixture(t)
	id := seedNotification(f, t, "immediate", nil)

	_, err := f.uc.Send(userCtx(10), SendInput{NotificationID: id})
	ge := asGoError(t, err)
	if ge.Code() != goerror.CodeForbidden {
		t.Fatalf("code = %v, want CodeForbidden", ge.Code())
	}

	if _, err := f.uc.Send(context.Background(), SendInput{NotificationID: id}); asGoError(t, err).Code() != goerror.CodeUnauthorized {
		t.Fatal("anonymous send must be unauthorized")
	}
}

func TestCreateScheduledRequiresFutureTime(t *testing.T) {
	f := newFixture(t)

	past := f.clock.now.Add(-time.Minute)
	_, err := f.uc.Create(adminCtx(), CreateInput{
		Title:       "Too late",
		Content:     "x",
		Category:    "newsletter",
		Timing:      "scheduled",
		ScheduledAt: &past,
	})
	ge := asGoError(t, err)
	if ge.Msg() != "Scheduled time must be in the future" {
		t.Fatalf("message = %q", ge.Msg())
	}

	_, err = f.uc.Create(adminCtx(), CreateInput{
		Title:    "No time",
		Content:  "x",
		Category: "newsletter",
		Timing:   "scheduled",
	})
	ge = asGoError(t, err)
	if ge.Msg() != "Scheduled notifications require a scheduled time" {
		t.Fatalf("message = %q", ge.Msg())
	}
}

func TestScheduleSentNotification(t *testing.T) {
	f := newFixture(t)
	seedSubscriber(f.repo, 10, "a@example.com")

	id := seedNotification(f, t, "immediate", nil)
	if _, err := f.uc.Send(adminCtx(), SendInput{NotificationID: id}); err != nil {
		t.Fatalf("send: %v", err)
	}

	err := f.uc.Schedule(adminCtx(), ScheduleInput{NotificationID: id, ScheduledAt: f.clock.now.Add(time.Hour)})
	ge := asGoError(t, err)
	if ge.Msg() != "Notification has already been sent" {
		t.Fatalf("message = %q", ge.Msg())
	}
}

func TestScheduleMovesSendTime(t *testing.T) {
	f := newFixture(t)

	id := seedNotification(f, t, "immediate", nil)
	at := f.clock.now.Add(time.Hour)

	if err := f.uc.Schedule(adminCtx(), ScheduleInput{NotificationID: id, ScheduledAt: at}); err != nil {
		t.Fatalf("schedule: %v", err)
	}

	n := f.repo.notifications[id]
	if n.Timing != entity.TimingScheduled || n.ScheduledAt == nil || !n.ScheduledAt.Equal(at) {
		t.Fatalf("notification = %+v", n)
	}
}
