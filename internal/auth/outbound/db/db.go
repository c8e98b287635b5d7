// Package db implements the auth persistence layer on PostgreSQL.
package db

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/seyia90/authstarter/internal/auth/entity"
	"github.com/seyia90/authstarter/internal/pkg/goerror"
	"github.com/seyia90/authstarter/internal/pkg/instrument"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	constraintUserEmail = "users_email_key"
	constraintUserPhone = "users_phone_key"
)

type DB struct {
	conn *pgxpool.Pool
	ins  instrument.Instrumentation
}

func NewDB(conn *pgxpool.Pool, ins instrument.Instrumentation) *DB {
	return &DB{conn: conn, ins: ins}
}

// mapError converts driver errors into domain errors. Unique violations are
// distinguished by constraint so callers can report which field collided.
func (s *DB) mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return goerror.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case constraintUserEmail:
			return entity.ErrEmailTaken
		case constraintUserPhone:
			return entity.ErrPhoneTaken
		default:
			return goerror.ErrConflict
		}
	}

	return err
}

func (s *DB) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("auth.outbound.db").Start(ctx, name)
}

func (s *DB) endSpan(span trace.Span, err error) {
	if err != nil &&
		!errors.Is(err, goerror.ErrNotFound) &&
		!errors.Is(err, goerror.ErrConflict) &&
		!errors.Is(err, entity.ErrEmailTaken) &&
		!errors.Is(err, entity.ErrPhoneTaken) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

const userColumns = `id, email, phone, first_name, last_name, password, role,
	phone_verified, email_verified,
	phone_otp, phone_otp_expires_at,
	email_otp, email_otp_expires_at,
	reset_otp, reset_otp_expires_at,
	reset_token, reset_token_expires_at,
	otp_request_count, last_otp_request_at,
	created_at, updated_at, deleted_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*entity.User, error) {
	var (
		u          entity.User
		role       string
		phoneOTP   pgtype.Text
		phoneOTPEx pgtype.Timestamptz
		emailOTP   pgtype.Text
		emailOTPEx pgtype.Timestamptz
		resetOTP   pgtype.Text
		resetOTPEx pgtype.Timestamptz
		resetTok   pgtype.Text
		resetTokEx pgtype.Timestamptz
		lastOTPAt  pgtype.Timestamptz
		deletedAt  pgtype.Timestamptz
	)

	err := row.Scan(
		&u.ID, &u.Email, &u.Phone, &u.FirstName, &u.LastName, &u.Password, &role,
		&u.PhoneVerified, &u.EmailVerified,
		&phoneOTP, &phoneOTPEx,
		&emailOTP, &emailOTPEx,
		&resetOTP, &resetOTPEx,
		&resetTok, &resetTokEx,
		&u.OTPRequestCount, &lastOTPAt,
		&u.CreatedAt, &u.UpdatedAt, &deletedAt,
	)
	if err != nil {
		return nil, err
	}

	u.Role = entity.RoleFromString(role)
	u.PhoneOTP = entity.OTPState{Code: phoneOTP.String, ExpiresAt: timePtr(phoneOTPEx)}
	u.EmailOTP = entity.OTPState{Code: emailOTP.String, ExpiresAt: timePtr(emailOTPEx)}
	u.ResetOTP = entity.OTPState{Code: resetOTP.String, ExpiresAt: timePtr(resetOTPEx)}
	u.ResetToken = resetTok.String
	u.ResetTokenExpiresAt = timePtr(resetTokEx)
	u.LastOTPRequestAt = timePtr(lastOTPAt)
	u.DeletedAt = timePtr(deletedAt)

	return &u, nil
}

func timePtr(ts pgtype.Timestamptz) *time.Time {
	if !ts.Valid {
		return nil
	}
	t := ts.Time
	return &t
}
