package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/casbin/casbin/v3"
	"github.com/casbin/casbin/v3/model"
	"github.com/seyia90/authstarter/internal/notification/entity"
	"github.com/seyia90/authstarter/internal/pkg/goerror"
	"github.com/seyia90/authstarter/internal/pkg/idempotency"
	"github.com/seyia90/authstarter/internal/pkg/instrument"
	"github.com/seyia90/authstarter/internal/pkg/jwt"
	"github.com/seyia90/authstarter/internal/pkg/mail"
	"github.com/seyia90/authstarter/internal/pkg/validator"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type fakeNumberID struct {
	next int64
}

func (f *fakeNumberID) Generate() int64 {
	f.next++
	return f.next
}

type fakeRepo struct {
	notifications map[int64]*entity.MarketingNotification
	preferences   map[int64]*entity.MarketingPreference

	createPrefErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		notifications: make(map[int64]*entity.MarketingNotification),
		preferences:   make(map[int64]*entity.MarketingPreference),
	}
}

func (r *fakeRepo) CreateNotification(_ context.Context, n entity.MarketingNotification) error {
	r.notifications[n.ID] = &n
	return nil
}

func (r *fakeRepo) GetNotificationByID(_ context.Context, id int64) (*entity.MarketingNotification, error) {
	n, ok := r.notifications[id]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	cp := *n
	return &cp, nil
}

func (r *fakeRepo) ListNotifications(_ context.Context, _ entity.NotificationListFilter) ([]entity.MarketingNotification, int64, error) {
	out := make([]entity.MarketingNotification, 0, len(r.notifications))
	for _, n := range r.notifications {
		out = append(out, *n)
	}
	return out, int64(len(out)), nil
}

func (r *fakeRepo) ScheduleNotification(_ context.Context, id int64, at time.Time) error {
	n, ok := r.notifications[id]
	if !ok || n.Sent {
		return goerror.ErrNotFound
	}
	n.Timing = entity.TimingScheduled
	scheduled := at
	n.ScheduledAt = &scheduled
	return nil
}

func (r *fakeRepo) MarkNotificationSent(_ context.Context, res entity.SendResult) error {
	n, ok := r.notifications[res.NotificationID]
	if !ok {
		return goerror.ErrNotFound
	}
	if n.Sent {
		return goerror.ErrConflict
	}
	n.Sent = true
	sentAt := res.SentAt
	n.SentAt = &sentAt
	n.SuccessCount = res.SuccessCount
	n.FailureCount = res.FailureCount
	return nil
}

func (r *fakeRepo) ListOptedInPreferences(_ context.Context, category entity.Category) ([]entity.MarketingPreference, error) {
	var out []entity.MarketingPreference
	for _, p := range r.preferences {
		if p.WantsCategory(category) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetPreferenceByUserID(_ context.Context, userID int64) (*entity.MarketingPreference, error) {
	p, ok := r.preferences[userID]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeRepo) CreatePreference(_ context.Context, pref entity.MarketingPreference) error {
	if r.createPrefErr != nil {
		return r.createPrefErr
	}
	if _, ok := r.preferences[pref.UserID]; ok {
		return nil
	}
	r.preferences[pref.UserID] = &pref
	return nil
}

func (r *fakeRepo) UpdatePreference(_ context.Context, in entity.UpdatePreference) error {
	p, ok := r.preferences[in.UserID]
	if !ok {
		return goerror.ErrNotFound
	}
	p.OptedIn = in.OptedIn
	p.OptOutAt = in.OptOutAt
	p.Categories = in.Categories
	return nil
}

func (r *fakeRepo) TouchPreferenceEmailAt(_ context.Context, userID int64, at time.Time) error {
	p, ok := r.preferences[userID]
	if !ok {
		return goerror.ErrNotFound
	}
	stamp := at
	p.LastEmailAt = &stamp
	return nil
}

type fakeMailer struct {
	failTo map[string]bool
	sent   []mail.Message
}

func (f *fakeMailer) Send(_ context.Context, msg mail.Message) error {
	if len(msg.To) == 1 && f.failTo[msg.To[0]] {
		return errors.New("mailbox unavailable")
	}
	f.sent = append(f.sent, msg)
	return nil
}

// fakeIdempotency tracks key states in memory with StateTracker semantics.
type fakeIdempotency struct {
	done map[string]bool
}

func (f *fakeIdempotency) Acquire(_ context.Context, key string, _ time.Duration) (idempotency.State, error) {
	if f.done[key] {
		return idempotency.StateCompleted, idempotency.ErrAlreadyCompleted
	}
	return idempotency.StateNone, nil
}

func (f *fakeIdempotency) MarkCompleted(_ context.Context, key string, _ time.Duration) error {
	if f.done == nil {
		f.done = make(map[string]bool)
	}
	f.done[key] = true
	return nil
}

func (f *fakeIdempotency) MarkFailed(_ context.Context, key string, _ time.Duration) error {
	delete(f.done, key)
	return nil
}

func (f *fakeIdempotency) Exec(ctx context.Context, key string, fn func(context.Context) error, _ ...idempotency.Option) error {
	if f.done == nil {
		f.done = make(map[string]bool)
	}
	if f.done[key] {
		return idempotency.ErrAlreadyCompleted
	}
	if err := fn(ctx); err != nil {
		return err
	}
	f.done[key] = true
	return nil
}

type fixture struct {
	uc   *Usecase
	repo *fakeRepo
	mail *fakeMailer

	clock *fakeClock
}

func testEnforcer(t *testing.T) *casbin.Enforcer {
	t.Helper()

	m, err := model.NewModelFromString(`
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && (p.obj == "*" || r.obj == p.obj) && (p.act == "*" || r.act == p.act)
`)
	if err != nil {
		t.Fatalf("build casbin model: %v", err)
	}
	e, err := casbin.NewEnforcer(m)
	if err != nil {
		t.Fatalf("build casbin enforcer: %v", err)
	}
	if _, err := e.AddPolicy("admin", "*", "*"); err != nil {
		t.Fatalf("add casbin policy: %v", err)
	}
	return e
}

type stubConfig struct{}

func (stubConfig) Close() error                   { return nil }
func (stubConfig) GetBool(string) bool            { return false }
func (stubConfig) GetString(string) string        { return "" }
func (stubConfig) GetInt(string) int              { return 0 }
func (stubConfig) GetInt32(string) int32          { return 0 }
func (stubConfig) GetInt64(string) int64          { return 0 }
func (stubConfig) GetFloat64(string) float64      { return 0 }
func (stubConfig) GetSecond(string) time.Duration { return 0 }
func (stubConfig) GetMinute(string) time.Duration { return 0 }
func (stubConfig) GetHour(string) time.Duration   { return 0 }
func (stubConfig) GetArray(string) []string       { return nil }

func newFixture(t *testing.T) *fixture {
	t.Helper()

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}

	f := &fixture{
		repo:  newFakeRepo(),
		mail:  &fakeMailer{failTo: make(map[string]bool)},
		clock: &fakeClock{now: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)},
	}

	f.uc = New(Dependency{
		RepoDB:      f.repo,
		RepoMail:    f.mail,
		Idempotency: &fakeIdempotency{},
		Config:      stubConfig{},
		UID:         &fakeNumberID{},
		Clock:       f.clock,
		Validator:   v10,
		Enforcer:    testEnforcer(t),
		Instrument:  instrument.NewNoop(),
	})

	return f
}

func adminCtx() context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{UserID: 1, UserEmail: "admin@example.com", Role: "admin"})
}

func userCtx(id int64) context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{UserID: id, UserEmail: "ada@example.com", Role: "user"})
}

func seedSubscriber(r *fakeRepo, id int64, email string, categories ...entity.Category) {
	if len(categories) == 0 {
		categories = []entity.Category{entity.CategoryPromotional}
	}
	r.preferences[id] = &entity.MarketingPreference{
		UserID:     id,
		Email:      email,
		OptedIn:    true,
		Categories: categories,
	}
}

func asGoError(t *testing.T, err error) *goerror.Error {
	t.Helper()

	var ge *goerror.Error
	if !errors.As(err, &ge) {
		t.Fatalf("expected *goerror.Error, got %T: %v", err, err)
	}
	return ge
}
