package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/casbin/casbin/v3"
	"github.com/casbin/casbin/v3/model"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"github.com/sethvargo/go-retry"
	"github.com/seyia90/authstarter/docs"
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
	"github.com/swaggo/swag/v2"
)

func (a *App) initConfig() {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "/config/config.yaml"
		if os.Getenv("LOCAL") == "true" {
			path = "./config/config.yaml"
		}
	}

	cfg, err := config.NewViper(path)
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	//nolint:errcheck,gosec // ignore error
	os.Setenv("TZ", cfg.GetString("app.tz"))

	a.config = cfg
}

func (a *App) initInstrument() {
	ins, err := instrument.New(context.Background(), &instrument.Config{
		Enabled:          a.config.GetBool("instrument.enabled"),
		ServiceName:      a.config.GetString("instrument.service_name"),
		ServiceVersion:   a.config.GetString("instrument.service_version"),
		Environment:      a.config.GetString("instrument.env"),
		OTLPEndpoint:     a.config.GetString("instrument.otlp_endpoint"),
		OTLPSecure:       a.config.GetBool("instrument.otlp_secure"),
		TraceSampleRatio: a.config.GetFloat64("instrument.trace_sample_ratio"),
		MetricsInterval:  a.config.GetSecond("instrument.metric_interval_seconds"),
		MaskFields:       a.config.GetArray("instrument.log_mask_fields"),
	})
	if err != nil {
		slog.Error("failed to init instrumentation", "error", err)
		os.Exit(1)
	}
	a.ins = ins
}

func (a *App) initLibraries() {
	a.clock = clock.New()
	a.uuid = uid.NewUUID()
	a.token = uid.NewRandomToken(32)
	a.goroutine = goroutine.NewManager(a.config.GetInt("app.server.max_goroutine"))
	a.bcrypt = hash.NewBcrypt(a.config.GetInt("hash.bcrypt.cost"), a.config.GetString("hash.bcrypt.pepper"))

	validator, err := validator.NewV10Validator()
	if err != nil {
		slog.Error("failed to init validation v10 validator", "error", err)
		os.Exit(1)
	}
	a.validator = validator

	snow, err := uid.NewSnowflake()
	if err != nil {
		slog.Error("failed to init uid number snowflake", "error", err)
		os.Exit(1)
	}
	a.uid = snow
}

func (a *App) initJWT() {
	defaultJWT, err := jwt.NewHS512(jwt.Config{
		Secret: []byte(a.config.GetString("jwt.secret")),
		Issuer: a.config.GetString("jwt.issuer"),
		TTL:    a.config.GetMinute("jwt.ttl_minutes"),
		Clock:  a.clock,
		UUID:   a.uuid,
	})
	if err != nil {
		slog.Error("failed to init jwt token", "error", err)
		os.Exit(1)
	}
	a.jwt = defaultJWT
}

func (a *App) initDatabase() {
	config, err := pgxpool.ParseConfig(a.config.GetString("database.url"))
	if err != nil {
		slog.Error("failed to parse DB connection string", "error", err)
		os.Exit(1)
	}

	config.MaxConns = a.config.GetInt32("database.pool.max_conns")
	config.MinConns = a.config.GetInt32("database.pool.min_conns")
	config.MaxConnLifetime = a.config.GetSecond("database.pool.max_conn_lifetime_seconds")
	config.MaxConnIdleTime = a.config.GetSecond("database.pool.max_conn_idle_seconds")
	config.HealthCheckPeriod = a.config.GetSecond("database.pool.health_check_period_seconds")

	pool, err := pgxpool.NewWithConfig(a.ctx, config)
	if err != nil {
		slog.Error("failed to create DB connection pool", "error", err)
		os.Exit(1)
	}

	backoff := retry.WithMaxRetries(5, retry.NewFibonacci(500*time.Millisecond))
	err = retry.Do(a.ctx, backoff, func(ctx context.Context) error {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return retry.RetryableError(pool.Ping(pingCtx))
	})
	if err != nil {
		slog.Error("failed to ping DB", "error", err)
		os.Exit(1)
	}

	a.dbConn = pool
}

func (a *App) initCache() {
	opt, err := redis.ParseURL(a.config.GetString("redis.url"))
	if err != nil {
		slog.Error("failed to parse redis url", "error", err)
		os.Exit(1)
	}

	rdb := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(a.ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		slog.Error("failed to init redis", "error", err)
		os.Exit(1)
	}

	a.cacheConn = rdb
	a.idemp = idempotency.New(a.cacheConn)
}

func (a *App) initMail() {
	mail, err := mail.NewSMTP(mail.SMTPConfig{
		Host:     a.config.GetString("mail.host"),
		Port:     a.config.GetInt("mail.port"),
		Username: a.config.GetString("mail.username"),
		Password: a.config.GetString("mail.password"),
		From:     a.config.GetString("mail.from"),
	})
	if err != nil {
		slog.Error("failed to init mail", "error", err)
		os.Exit(1)
	}

	a.mail = mail
}

func (a *App) initSMS() {
	termii, err := sms.NewTermii(sms.TermiiConfig{
		APIKey:   a.config.GetString("sms.termii.api_key"),
		SenderID: a.config.GetString("sms.termii.sender_id"),
		BaseURL:  a.config.GetString("sms.termii.base_url"),
		Timeout:  a.config.GetSecond("sms.termii.timeout_seconds"),
	})
	if err != nil {
		slog.Error("failed to init sms", "error", err)
		os.Exit(1)
	}

	a.sms = termii
	a.phoneFormat = sms.NewFormatter(sms.FormatterConfig{
		CountryCode: a.config.GetString("sms.country_code"),
		PhoneRegex:  a.config.GetString("sms.phone_regex"),
	})
}

func (a *App) initMessaging() {
	driver := a.config.GetString("messaging.driver")
	client, err := messaging.NewFromDriver(a.ctx, driver, messaging.FactoryOptions{
		NSQ: messaging.NSQConfig{
			ProducerAddr:         a.config.GetString("messaging.nsq.producer_addr"),
			ConsumerNSQDAddrs:    a.config.GetArray("messaging.nsq.consumer_nsqd_addrs"),
			ConsumerLookupdAddrs: a.config.GetArray("messaging.nsq.consumer_lookupd_addrs"),
		},
		Kafka: messaging.KafkaConfig{
			Brokers: a.config.GetArray("messaging.kafka.brokers"),
		},
		NATS: messaging.NATSConfig{
			URL: a.config.GetString("messaging.nats.url"),
			Options: []nats.Option{
				nats.Name(a.config.GetString("messaging.nats.name")),
				nats.MaxReconnects(a.config.GetInt("messaging.nats.max_reconnects")),
				nats.Timeout(a.config.GetSecond("messaging.nats.timeout_seconds")),
				nats.ReconnectWait(a.config.GetSecond("messaging.nats.reconnect_wait_seconds")),
				nats.RetryOnFailedConnect(a.config.GetBool("messaging.nats.retry_on_failed_connect")),
			},
		},
		PubSub: messaging.PubSubConfig{
			ProjectID: a.config.GetString("messaging.pubsub.project_id"),
		},
	})
	if err != nil {
		slog.Error("failed to init messaging", "error", err, "driver", driver)
		os.Exit(1)
	}

	a.messaging = client
}

func (a *App) initCasbin() {
	const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && (p.obj == "*" || r.obj == p.obj) && (p.act == "*" || r.act == p.act)
`
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		slog.Error("failed to create model casbin", "error", err)
		os.Exit(1)
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		slog.Error("failed to init casbin", "error", err)
		os.Exit(1)
	}

	// Static policies. Admins manage the user directory and marketing
	// broadcasts; regular users act on their own resources only.
	policies := [][]string{
		{"admin", "*", "*"},
	}
	if _, err := e.AddPolicies(policies); err != nil {
		slog.Error("failed to add casbin policies", "error", err)
		os.Exit(1)
	}

	a.casbin = e
}

func (a *App) initHTTPServer() {
	publicEndpoints := map[string]map[string]struct{}{
		http.MethodGet: {
			"/api/docs": {},
		},
		http.MethodPost: {
			"/api/v1/auth/signup":                {},
			"/api/v1/auth/login":                 {},
			"/api/v1/auth/otp/resend":            {},
			"/api/v1/auth/verify/phone":          {},
			"/api/v1/auth/verify/email":          {},
			"/api/v1/auth/password/forgot":       {},
			"/api/v1/auth/password/reset":        {},
			"/api/v1/auth/password/forgot-token": {},
			"/api/v1/auth/password/reset-token":  {},
			"/api/v1/payments/webhook":           {},
		},
	}

	a.router = router.NewRouter(router.Config{
		Config:          a.config,
		UUID:            a.uuid,
		JWT:             a.jwt,
		Instrument:      a.ins,
		PublicEndpoints: publicEndpoints,
	})

	a.router.GETRaw("/api/docs", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
		if err != nil {
			http.Error(w, "documentation unavailable", http.StatusInternalServerError)

			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		//nolint:errcheck // best effort write
		w.Write([]byte(doc))
	}))

	routerWithCORS := cors.New(cors.Options{
		AllowedOrigins: a.config.GetArray("app.server.cors"),
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler(a.router)

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("app.server.http.address"),
		Handler:           routerWithCORS,
		ReadTimeout:       a.config.GetSecond("app.server.http.read_timeout_seconds"),
		ReadHeaderTimeout: a.config.GetSecond("app.server.http.read_header_timeout_seconds"),
		WriteTimeout:      a.config.GetSecond("app.server.http.write_timeout_seconds"),
		IdleTimeout:       a.config.GetSecond("app.server.http.idle_timeout_seconds"),
	}
}

func (a *App) initClosers() {
	a.closers = []struct {
		name string
		fn   func(context.Context) error
	}{
		{
			name: "Instrument",
			fn: func(ctx context.Context) error {
				return a.ins.Shutdown(ctx)
			},
		},
		{
			name: "Messaging",
			fn: func(context.Context) error {
				return a.messaging.Close()
			},
		},
		{
			name: "SMS",
			fn: func(context.Context) error {
				return a.sms.Close()
			},
		},
		{
			name: "Mail",
			fn: func(context.Context) error {
				return a.mail.Close()
			},
		},
		{
			name: "Redis",
			fn: func(context.Context) error {
				return a.cacheConn.Close()
			},
		},
		{
			name: "Database",
			fn: func(context.Context) error {
				a.dbConn.Close()

				return nil
			},
		},
		{
			name: "Config",
			fn: func(context.Context) error {
				return a.config.Close()
			},
		},
	}
}
