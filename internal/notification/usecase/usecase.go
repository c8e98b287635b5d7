package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/casbin/casbin/v3"
	"github.com/seyia90/authstarter/internal/notification/entity"
	"github.com/seyia90/authstarter/internal/pkg/clock"
	"github.com/seyia90/authstarter/internal/pkg/config"
	"github.com/seyia90/authstarter/internal/pkg/goerror"
	"github.com/seyia90/authstarter/internal/pkg/idempotency"
	"github.com/seyia90/authstarter/internal/pkg/instrument"
	"github.com/seyia90/authstarter/internal/pkg/jwt"
	"github.com/seyia90/authstarter/internal/pkg/mail"
	"github.com/seyia90/authstarter/internal/pkg/uid"
	"github.com/seyia90/authstarter/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	CreateNotification(ctx context.Context, n entity.MarketingNotification) error
	GetNotificationByID(ctx context.Context, id int64) (*entity.MarketingNotification, error)
	ListNotifications(ctx context.Context, filter entity.NotificationListFilter) ([]entity.MarketingNotification, int64, error)
	ScheduleNotification(ctx context.Context, id int64, at time.Time) error
	MarkNotificationSent(ctx context.Context, res entity.SendResult) error

	ListOptedInPreferences(ctx context.Context, category entity.Category) ([]entity.MarketingPreference, error)
	GetPreferenceByUserID(ctx context.Context, userID int64) (*entity.MarketingPreference, error)
	CreatePreference(ctx context.Context, pref entity.MarketingPreference) error
	UpdatePreference(ctx context.Context, in entity.UpdatePreference) error
	TouchPreferenceEmailAt(ctx context.Context, userID int64, at time.Time) error
}

type repoMail interface {
	Send(ctx context.Context, msg mail.Message) error
}

type Usecase struct {
	repoDB      repoDB
	repoMail    repoMail
	idempotency idempotency.Idempotency
	cfg         config.Config
	uid         uid.NumberID
	clock       clock.Clocker
	validator   validator.Validator
	enforcer    *casbin.Enforcer
	ins         instrument.Instrumentation
}

type Dependency struct {
	RepoDB      repoDB
	RepoMail    repoMail
	Idempotency idempotency.Idempotency
	Config      config.Config
	UID         uid.NumberID
	Clock       clock.Clocker
	Validator   validator.Validator
	Enforcer    *casbin.Enforcer
	Instrument  instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:      dep.RepoDB,
		repoMail:    dep.RepoMail,
		idempotency: dep.Idempotency,
		cfg:         dep.Config,
		uid:         dep.UID,
		clock:       dep.Clock,
		validator:   dep.Validator,
		enforcer:    dep.Enforcer,
		ins:         dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("notification.usecase").Start(ctx, name)
}

func (s *Usecase) authenticated(ctx context.Context) (*jwt.Claims, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}
	return clm, nil
}

func (s *Usecase) authenticatedAndAuthorized(ctx context.Context, obj, act string) (*jwt.Claims, error) {
	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
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
