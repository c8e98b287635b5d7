package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/casbin/casbin/v3"
	"github.com/casbin/casbin/v3/model"
	"github.com/seyia90/authstarter/internal/auth/entity"
	"github.com/seyia90/authstarter/internal/pkg/goerror"
	"github.com/seyia90/authstarter/internal/pkg/goroutine"
	"github.com/seyia90/authstarter/internal/pkg/hash"
	"github.com/seyia90/authstarter/internal/pkg/instrument"
	"github.com/seyia90/authstarter/internal/pkg/jwt"
	"github.com/seyia90/authstarter/internal/pkg/sms"
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

type fakeStringID struct {
	value string
}

func (f *fakeStringID) Generate() string { return f.value }

// fakeRepo keeps users in memory and applies OTP writes the way the SQL
// layer does, so issuance and validation can round-trip in tests.
type fakeRepo struct {
	users map[int64]*entity.User

	saveIssueErr error
	createErr    error

	savedIssues []entity.OTPIssue
}

func newFakeRepo(users ...*entity.User) *fakeRepo {
	r := &fakeRepo{users: make(map[int64]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeRepo) GetUserByID(_ context.Context, id int64) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeRepo) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, goerror.ErrNotFound
}

func (r *fakeRepo) GetUserByPhone(_ context.Context, phone string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Phone == phone {
			cp := *u
			return &cp, nil
		}
	}
	return nil, goerror.ErrNotFound
}

func (r *fakeRepo) GetUserByResetToken(_ context.Context, token string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ResetToken == token && token != "" {
			cp := *u
			return &cp, nil
		}
	}
	return nil, goerror.ErrNotFound
}

func (r *fakeRepo) GetUserList(_ context.Context, _ entity.UserListFilter) ([]entity.User, int64, error) {
	out := make([]entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (r *fakeRepo) CreateUser(_ context.Context, user entity.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return entity.ErrEmailTaken
		}
		if u.Phone == user.Phone {
			return entity.ErrPhoneTaken
		}
	}
	r.users[user.ID] = &user
	return nil
}

func (r *fakeRepo) SaveOTPIssue(_ context.Context, issue entity.OTPIssue) error {
	if r.saveIssueErr != nil {
		return r.saveIssueErr
	}
	r.savedIssues = append(r.savedIssues, issue)

	u, ok := r.users[issue.UserID]
	if !ok {
		return goerror.ErrNotFound
	}
	expires := issue.ExpiresAt
	state := entity.OTPState{Code: issue.Code, ExpiresAt: &expires}
	switch issue.Purpose {
	case entity.OTPPurposePhoneVerify:
		u.PhoneOTP = state
	case entity.OTPPurposeEmailVerify:
		u.EmailOTP = state
	default:
		u.ResetOTP = state
	}
	u.OTPRequestCount = issue.RequestCount
	last := issue.LastRequestAt
	u.LastOTPRequestAt = &last
	return nil
}

func (r *fakeRepo) MarkChannelVerified(_ context.Context, userID int64, purpose entity.OTPPurpose) error {
	u, ok := r.users[userID]
	if !ok {
		return goerror.ErrNotFound
	}
	switch purpose {
	case entity.OTPPurposePhoneVerify:
		u.PhoneVerified = true
		u.PhoneOTP = entity.OTPState{}
	case entity.OTPPurposeEmailVerify:
		u.EmailVerified = true
		u.EmailOTP = entity.OTPState{}
	default:
		return goerror.ErrNotFound
	}
	return nil
}

func (r *fakeRepo) ResetUserPassword(_ context.Context, userID int64, newHash string) error {
	u, ok := r.users[userID]
	if !ok {
		return goerror.ErrNotFound
	}
	u.Password = newHash
	u.ResetOTP = entity.OTPState{}
	return nil
}

func (r *fakeRepo) SaveResetToken(_ context.Context, userID int64, token string, expiresAt time.Time) error {
	u, ok := r.users[userID]
	if !ok {
		return goerror.ErrNotFound
	}
	u.ResetToken = token
	u.ResetTokenExpiresAt = &expiresAt
	return nil
}

func (r *fakeRepo) ResetUserPasswordByToken(_ context.Context, userID int64, newHash string) error {
	u, ok := r.users[userID]
	if !ok {
		return goerror.ErrNotFound
	}
	u.Password = newHash
	u.ResetToken = ""
	u.ResetTokenExpiresAt = nil
	return nil
}

func (r *fakeRepo) UpdateUserProfile(_ context.Context, in entity.UpdateProfile) error {
	u, ok := r.users[in.ID]
	if !ok {
		return goerror.ErrNotFound
	}
	u.FirstName = in.FirstName
	u.LastName = in.LastName
	return nil
}

func (r *fakeRepo) MarkUserDeleted(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return goerror.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type fakeSMSChannel struct {
	mu    sync.Mutex
	err   error
	sent  []string
	calls int
}

func (f *fakeSMSChannel) SendPhoneVerificationOTP(_ context.Context, _, code, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, code)
	return nil
}

func (f *fakeSMSChannel) SendPasswordResetOTP(_ context.Context, _, code, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, code)
	return nil
}

type fakeEmailChannel struct {
	err    error
	sent   []string
	tokens []string
}

func (f *fakeEmailChannel) SendVerificationOTP(_ context.Context, _, code, _ string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, code)
	return nil
}

func (f *fakeEmailChannel) SendResetToken(_ context.Context, _, token, _ string) error {
	if f.err != nil {
		return f.err
	}
	f.tokens = append(f.tokens, token)
	return nil
}

type fakeMessaging struct {
	published []UserRegisteredEvent
}

func (f *fakeMessaging) PublishUserRegistered(_ context.Context, msg UserRegisteredEvent) error {
	f.published = append(f.published, msg)
	return nil
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

type fixture struct {
	uc    *Usecase
	dep   Dependency
	repo  *fakeRepo
	sms   *fakeSMSChannel
	email *fakeEmailChannel
	msg   *fakeMessaging
	clock *fakeClock
	jwt   jwt.JWT
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

func newFixture(t *testing.T, users ...*entity.User) *fixture {
	t.Helper()

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}

	clk := &fakeClock{now: time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)}

	secret := make([]byte, 64)
	for i := range secret {
		secret[i] = byte(i)
	}
	signer, err := jwt.NewHS512(jwt.Config{
		Secret: secret,
		Issuer: "test",
		TTL:    time.Hour,
		Clock:  clk,
		UUID:   &fakeStringID{value: "jti"},
	})
	if err != nil {
		t.Fatalf("new jwt: %v", err)
	}

	f := &fixture{
		repo:  newFakeRepo(users...),
		sms:   &fakeSMSChannel{},
		email: &fakeEmailChannel{},
		msg:   &fakeMessaging{},
		clock: clk,
		jwt:   signer,
	}

	f.dep = Dependency{
		RepoDB:        f.repo,
		RepoMessaging: f.msg,
		SMSChannel:    f.sms,
		EmailChannel:  f.email,
		PhoneFormat:   sms.NewFormatter(sms.FormatterConfig{CountryCode: "+234"}),
		Validator:     v10,
		Config:        stubConfig{},
		Bcrypt:        hash.NewBcrypt(4, ""),
		UID:           &fakeNumberID{},
		Token:         &fakeStringID{value: "reset-token"},
		Clock:         clk,
		JWT:           signer,
		Instrument:    instrument.NewNoop(),
		Enforcer:      testEnforcer(t),
		Goroutine:     goroutine.NewManager(4),
	}
	f.uc = New(f.dep)

	return f
}

func testUser(id int64) *entity.User {
	return &entity.User{
		ID:        id,
		Email:     "ada@example.com",
		Phone:     "+2348012345678",
		FirstName: "Ada",
		LastName:  "Obi",
		Password:  "$2a$04$invalidhashforbaseline000000000000000000000000000000",
		Role:      entity.RoleUser,
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
