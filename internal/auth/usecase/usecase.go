package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/casbin/casbin/v3"
	"github.com/seyia90/authstarter/internal/auth/entity"
	"github.com/seyia90/authstarter/internal/pkg/clock"
	"github.com/seyia90/authstarter/internal/pkg/config"
	"github.com/seyia90/authstarter/internal/pkg/goerror"
	"github.com/seyia90/authstarter/internal/pkg/goroutine"
	"github.com/seyia90/authstarter/internal/pkg/hash"
	"github.com/seyia90/authstarter/internal/pkg/instrument"
	"github.com/seyia90/authstarter/internal/pkg/jwt"
	"github.com/seyia90/authstarter/internal/pkg/sms"
	"github.com/seyia90/authstarter/internal/pkg/uid"
	"github.com/seyia90/authstarter/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

// UserRegisteredEvent is published after a successful signup.
type UserRegisteredEvent struct {
	UserID    int64
	Email     string
	FirstName string
	LastName  string
}

type repoMessaging interface {
	PublishUserRegistered(ctx context.Context, msg UserRegisteredEvent) error
}

type repoDB interface {
	GetUserByID(ctx context.Context, id int64) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByPhone(ctx context.Context, phone string) (*entity.User, error)
	GetUserByResetToken(ctx context.Context, token string) (*entity.User, error)
	GetUserList(ctx context.Context, filter entity.UserListFilter) ([]entity.User, int64, error)

	CreateUser(ctx context.Context, user entity.User) error

	SaveOTPIssue(ctx context.Context, issue entity.OTPIssue) error
	MarkChannelVerified(ctx context.Context, userID int64, purpose entity.OTPPurpose) error
	ResetUserPassword(ctx context.Context, userID int64, newHash string) error
	SaveResetToken(ctx context.Context, userID int64, token string, expiresAt time.Time) error
	ResetUserPasswordByToken(ctx context.Context, userID int64, newHash string) error

	UpdateUserProfile(ctx context.Context, in entity.UpdateProfile) error
	MarkUserDeleted(ctx context.Context, id int64) error
}

// smsChannel delivers codes over SMS and canonicalizes phone numbers.
type smsChannel interface {
	SendPhoneVerificationOTP(ctx context.Context, phone, code, firstName string) error
	SendPasswordResetOTP(ctx context.Context, phone, code, firstName string) error
}

// emailChannel delivers codes and reset links over email.
type emailChannel interface {
	SendVerificationOTP(ctx context.Context, email, code, firstName string) error
	SendResetToken(ctx context.Context, email, token, firstName string) error
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	smsChannel    smsChannel
	emailChannel  emailChannel
	phoneFormat   *sms.Formatter
	validator     validator.Validator
	cfg           config.Config
	bcrypt        hash.Hash
	uid           uid.NumberID
	token         uid.StringID
	clock         clock.Clocker
	jwt           jwt.JWT
	ins           instrument.Instrumentation
	enforcer      *casbin.Enforcer
	goroutine     *goroutine.Manager
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	SMSChannel    smsChannel
	EmailChannel  emailChannel
	PhoneFormat   *sms.Formatter
	Validator     validator.Validator
	Config        config.Config
	Bcrypt        hash.Hash
	UID           uid.NumberID
	Token         uid.StringID
	Clock         clock.Clocker
	JWT           jwt.JWT
	Instrument    instrument.Instrumentation
	Enforcer      *casbin.Enforcer
	Goroutine     *goroutine.Manager
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		smsChannel:    dep.SMSChannel,
		emailChannel:  dep.EmailChannel,
		phoneFormat:   dep.PhoneFormat,
		validator:     dep.Validator,
		cfg:           dep.Config,
		bcrypt:        dep.Bcrypt,
		uid:           dep.UID,
		token:         dep.Token,
		clock:         dep.Clock,
		jwt:           dep.JWT,
		ins:           dep.Instrument,
		enforcer:      dep.Enforcer,
		goroutine:     dep.Goroutine,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("auth.usecase").Start(ctx, name)
}

// canonicalPhone formats raw into international form or returns a
// caller-facing validation error.
func (s *Usecase) canonicalPhone(ctx context.Context, raw string) (string, error) {
	formatted, err := s.phoneFormat.Format(raw)
	if err != nil {
		slog.WarnContext(ctx, "invalid phone number format", "phone", raw)
		return "", goerror.NewBusiness(
			"Invalid phone number format for "+s.phoneFormat.CountryName(),
			goerror.CodeInvalidFormat,
		)
	}
	return formatted, nil
}

func (s *Usecase) authenticatedAndAuthorized(ctx context.Context, obj, act string) (*jwt.Claims, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	ok, err := s.enforcer.Enforce(clm.Role, obj, act)
	if err != nil {
		slog.ErrorContext(ctx, "failed to check authorization", "user_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	if !ok {
		return nil, goerror.NewBusiness("Account not allowed", goerror.CodeForbidden)
	}

	return clm, nil
}
