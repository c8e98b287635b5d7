package payment

import (
	"github.com/seyia90/authstarter/internal/payment/inbound"
	"github.com/seyia90/authstarter/internal/payment/usecase"
	"github.com/seyia90/authstarter/internal/pkg/config"
	"github.com/seyia90/authstarter/internal/pkg/instrument"
	"github.com/seyia90/authstarter/internal/pkg/router"
	"github.com/seyia90/authstarter/internal/pkg/validator"
	"github.com/stripe/stripe-go/v82"
)

type Dependency struct {
	Config     config.Config
	Validator  validator.Validator
	Instrument instrument.Instrumentation
	Router     *router.Router
}

func New(dep Dependency) error {
	stripe.Key = dep.Config.GetString("stripe.secret_key")

	uc := usecase.New(usecase.Dependency{
		Config:     dep.Config,
		Validator:  dep.Validator,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
