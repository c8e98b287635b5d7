package auth

import (
	"github.com/casbin/casbin/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/seyia90/authstarter/internal/auth/inbound"
	"github.com/seyia90/authstarter/internal/auth/outbound/db"
	"github.com/seyia90/authstarter/internal/auth/outbound/emailout"
	"github.com/seyia90/authstarter/internal/auth/outbound/mq"
	"github.com/seyia90/authstarter/internal/auth/outbound/smsout"
	"github.com/seyia90/authstarter/internal/auth/usecase"
	"github.com/seyia90/authstarter/internal/pkg/clock"
	"github.com/seyia90/authstarter/internal/pkg/config"
	"github.com/seyia90/authstarter/internal/pkg/goroutine"
	"github.com/seyia90/authstarter/internal/pkg/hash"
	"github.com/seyia90/authstarter/internal/pkg/instrument"
	"github.com/seyia90/authstarter/internal/pkg/jwt"
	"github.com/seyia90/authstarter/internal/pkg/mail"
	"github.com/seyia90/authstarter/internal/pkg/messaging"
	"github.com/seyia90/authstarter/internal/pkg/router"
	"github.com/seyia90/authstarter/internal/pkg/sms"
	"github.com/seyia90/authstarter/internal/pkg/uid"
	"github.com/seyia90/authstarter/internal/pkg/validator"
)

type Dependency struct {
	DBConn      *pgxpool.Pool              `validate:"required"`
	Goroutine   *goroutine.Manager         `validate:"required"`
	Enforcer    *casbin.Enforcer           `validate:"required"`
	Router      *router.Router             `validate:"required"`
	Messaging   messaging.Messaging        `validate:"required"`
	SMS         sms.SMS                    `validate:"required"`
	PhoneFormat *sms.Formatter             `validate:"required"`
	Mail        mail.Mail                  `validate:"required"`
	Config      config.Config              `validate:"required"`
	Instrument  instrument.Instrumentation `validate:"required"`
	UID         uid.NumberID               `validate:"required"`
	Token       uid.StringID               `validate:"required"`
	Bcrypt      hash.Hash                  `validate:"required"`
	Clock       clock.Clocker              `validate:"required"`
	Validator   validator.Validator        `validate:"required"`
	JWT         jwt.JWT                    `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbAuth := db.NewDB(dep.DBConn, dep.Instrument)
	repoMsg := mq.NewMessaging(dep.Messaging, dep.Instrument)
	smsSender := smsout.NewSender(dep.SMS, dep.Config, dep.Instrument)
	emailSender := emailout.NewSender(dep.Mail, dep.Config, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:        dbAuth,
		RepoMessaging: repoMsg,
		SMSChannel:    smsSender,
		EmailChannel:  emailSender,
		PhoneFormat:   dep.PhoneFormat,
		Validator:     dep.Validator,
		Config:        dep.Config,
		Bcrypt:        dep.Bcrypt,
		UID:           dep.UID,
		Token:         dep.Token,
		Clock:         dep.Clock,
		JWT:           dep.JWT,
		Instrument:    dep.Instrument,
		Enforcer:      dep.Enforcer,
		Goroutine:     dep.Goroutine,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
