// Package app wires configuration, resources and modules into a runnable
// service.
package app

import (
	"context"
	"net/http"

	"github.com/casbin/casbin/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/seyia90/authstarter/internal/pkg/clock"
	"github.com/seyia90/authstarter/internal/pkg/config"
	"github.com/seyia90/authstarter/internal/pkg/goroutine"
	"github.com/seyia90/authstarter/internal/pkg/hash"
	"github.com/seyia90/authstarter/internal/pkg/idempotency"
	"github.com/seyia90/authstarter/internal/pkg/instrument"
	"github.com/seyia90/authstarter/internal/pkg/jwt"
	"github.com/seyia90/authstarter/internal/pkg/mail"
	"github.com/seyia90/authstarter/internal/pkg/messaging"
	"github.com/seyia90/authstarter/internal/pkg/router"
	"github.com/seyia90/authstarter/internal/pkg/sms"
	"github.com/seyia90/authstarter/internal/pkg/uid"
	"github.com/seyia90/authstarter/internal/pkg/validator"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	bcrypt    hash.Hash
	uid       uid.NumberID
	uuid      uid.StringID
	token     uid.StringID
	jwt       jwt.JWT

	// resources
	dbConn      *pgxpool.Pool
	cacheConn   *redis.Client
	idemp       idempotency.Idempotency
	mail        mail.Mail
	sms         sms.SMS
	phoneFormat *sms.Formatter
	messaging   messaging.Messaging
	casbin      *casbin.Enforcer

	// server
	router     *router.Router
	httpServer *http.Server

	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initJWT()
	app.initDatabase()
	app.initCache()
	app.initMail()
	app.initSMS()
	app.initMessaging()
	app.initCasbin()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
