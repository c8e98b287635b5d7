package app

import (
	"log/slog"
	"os"

	"github.com/seyia90/authstarter/internal/auth"
	"github.com/seyia90/authstarter/internal/notification"
	"github.com/seyia90/authstarter/internal/payment"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.auth.enabled") {
		err := auth.New(auth.Dependency{
			DBConn:      a.dbConn,
			Goroutine:   a.goroutine,
			Enforcer:    a.casbin,
			Router:      a.router,
			Messaging:   a.messaging,
			SMS:         a.sms,
			PhoneFormat: a.phoneFormat,
			Mail:        a.mail,
			Config:      a.config,
			Instrument:  a.ins,
			UID:         a.uid,
			Token:       a.token,
			Bcrypt:      a.bcrypt,
			Clock:       a.clock,
			Validator:   a.validator,
			JWT:         a.jwt,
		})
		if err != nil {
			slog.Error("failed to init auth module", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.notification.enabled") {
		err := notification.New(notification.Dependency{
			Ctx:         a.ctx,
			DBConn:      a.dbConn,
			Messaging:   a.messaging,
			Idempotency: a.idemp,
			Config:      a.config,
			Instrument:  a.ins,
			UID:         a.uid,
			UUID:        a.uuid,
			Clock:       a.clock,
			Goroutine:   a.goroutine,
			Validator:   a.validator,
			Enforcer:    a.casbin,
			Router:      a.router,
			Mail:        a.mail,
		})
		if err != nil {
			slog.Error("failed to init notification module", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.payment.enabled") {
		err := payment.New(payment.Dependency{
			Config:     a.config,
			Validator:  a.validator,
			Instrument: a.ins,
			Router:     a.router,
		})
		if err != nil {
			slog.Error("failed to init payment module", "error", err)
			os.Exit(1)
		}
	}
}
