// Package db implements the notification persistence layer on PostgreSQL.
package db

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/lo"
	"github.com/seyia90/authstarter/internal/notification/entity"
	"github.com/seyia90/authstarter/internal/pkg/goerror"
	"github.com/seyia90/authstarter/internal/pkg/instrument"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type DB struct {
	conn *pgxpool.Pool
	ins  instrument.Instrumentation
}

func NewDB(conn *pgxpool.Pool, ins instrument.Instrumentation) *DB {
	return &DB{conn: conn, ins: ins}
}

func (s *DB) mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return goerror.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return goerror.ErrConflict
	}

	return err
}

func (s *DB) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("notification.outbound.db").Start(ctx, name)
}

func (s *DB) endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, goerror.ErrNotFound) && !errors.Is(err, goerror.ErrConflict) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func timePtr(ts pgtype.Timestamptz) *time.Time {
	if !ts.Valid {
		return nil
	}
	t := ts.Time
	return &t
}

func categoryStrings(categories []entity.Category) []string {
	return lo.Map(categories, func(c entity.Category, _ int) string { return c.String() })
}

func categoriesFromStrings(raw []string) []entity.Category {
	return lo.Map(raw, func(v string, _ int) entity.Category { return entity.CategoryFromString(v) })
}
