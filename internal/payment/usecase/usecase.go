package usecase

import (
	"context"

	"github.com/seyia90/authstarter/internal/pkg/config"
	"github.com/seyia90/authstarter/internal/pkg/goerror"
	"github.com/seyia90/authstarter/internal/pkg/instrument"
	"github.com/seyia90/authstarter/internal/pkg/jwt"
	"github.com/seyia90/authstarter/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type Usecase struct {
	cfg       config.Config
	validator validator.Validator
	ins       instrument.Instrumentation
}

type Dependency struct {
	Config     config.Config
	Validator  validator.Validator
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		cfg:       dep.Config,
		validator: dep.Validator,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("payment.usecase").Start(ctx, name)
}

func (s *Usecase) authenticated(ctx context.Context) (*jwt.Claims, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}
	return clm, nil
}
