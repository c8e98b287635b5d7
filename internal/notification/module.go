package notification

import (
	"context"

	"github.com/casbin/casbin/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/seyia90/authstarter/internal/notification/inbound"
	"github.com/seyia90/authstarter/internal/notification/outbound/db"
	"github.com/seyia90/authstarter/internal/notification/outbound/email"
	"github.com/seyia90/authstarter/internal/notification/usecase"
	"github.com/seyia90/authstarter/internal/pkg/clock"
	"github.com/seyia90/authstarter/internal/pkg/config"
	"github.com/seyia90/authstarter/internal/pkg/goroutine"
	"github.com/seyia90/authstarter/internal/pkg/idempotency"
	"github.com/seyia90/authstarter/internal/pkg/instrument"
	"github.com/seyia90/authstarter/internal/pkg/mail"
	"github.com/seyia90/authstarter/internal/pkg/messaging"
	"github.com/seyia90/authstarter/internal/pkg/router"
	"github.com/seyia90/authstarter/internal/pkg/uid"
	"github.com/seyia90/authstarter/internal/pkg/validator"
)

type Dependency struct {
	Ctx         context.Context
	DBConn      *pgxpool.Pool
	Messaging   messaging.Messaging
	Idempotency idempotency.Idempotency
	Config      config.Config
	Instrument  instrument.Instrumentation
	UID         uid.NumberID
	UUID        uid.StringID
	Clock       clock.Clocker
	Goroutine   *goroutine.Manager
	Validator   validator.Validator
	Enforcer    *casbin.Enforcer
	Router      *router.Router
	Mail        mail.Mail
}

func New(dep Dependency) error {
	dbNotif := db.NewDB(dep.DBConn, dep.Instrument)
	repoMail := email.New(dep.Mail, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:      dbNotif,
		RepoMail:    repoMail,
		Idempotency: dep.Idempotency,
		Config:      dep.Config,
		UID:         dep.UID,
		Clock:       dep.Clock,
		Validator:   dep.Validator,
		Enforcer:    dep.Enforcer,
		Instrument:  dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)
	if dep.Ctx != nil {
		inbound.RegisterMQConsumer(dep.Ctx, dep.Config, dep.Goroutine, dep.Messaging, dep.UUID, uc, dep.Instrument)
	}

	return nil
}
