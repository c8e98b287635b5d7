package db

import (
	"context"
	"time"

	"github.com/seyia90/authstarter/internal/auth/entity"
	"github.com/seyia90/authstarter/internal/pkg/goerror"
)

// otpColumns maps a purpose to its code/expiry column pair.
func otpColumns(purpose entity.OTPPurpose) (code, expires string) {
	switch purpose {
	case entity.OTPPurposePhoneVerify:
		return "phone_otp", "phone_otp_expires_at"
	case entity.OTPPurposeEmailVerify:
		return "email_otp", "email_otp_expires_at"
	default:
		return "reset_otp", "reset_otp_expires_at"
	}
}

// SaveOTPIssue writes the code, expiry and advanced throttle counters in one
// statement so a concurrent request cannot observe a half-issued state.
func (s *DB) SaveOTPIssue(ctx context.Context, issue entity.OTPIssue) (err error) {
	ctx, span := s.startSpan(ctx, "SaveOTPIssue")
	defer func() { s.endSpan(span, err) }()

	codeCol, expiresCol := otpColumns(issue.Purpose)

	query := `
		UPDATE users
		SET ` + codeCol + ` = $2,
			` + expiresCol + ` = $3,
			otp_request_count = $4,
			last_otp_request_at = $5,
			updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL`

	tag, err := s.conn.Exec(ctx, query,
		issue.UserID, issue.Code, issue.ExpiresAt, issue.RequestCount, issue.LastRequestAt)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

// MarkChannelVerified sets the verified flag for the purpose's channel and
// clears the consumed code.
func (s *DB) MarkChannelVerified(ctx context.Context, userID int64, purpose entity.OTPPurpose) (err error) {
	ctx, span := s.startSpan(ctx, "MarkChannelVerified")
	defer func() { s.endSpan(span, err) }()

	var flagCol string
	switch purpose {
	case entity.OTPPurposePhoneVerify:
		flagCol = "phone_verified"
	case entity.OTPPurposeEmailVerify:
		flagCol = "email_verified"
	default:
		return goerror.ErrNotFound
	}

	codeCol, expiresCol := otpColumns(purpose)

	query := `
		UPDATE users
		SET ` + flagCol + ` = TRUE,
			` + codeCol + ` = NULL,
			` + expiresCol + ` = NULL,
			updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL`

	tag, err := s.conn.Exec(ctx, query, userID)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

// ResetUserPassword replaces the password and clears the consumed reset code.
func (s *DB) ResetUserPassword(ctx context.Context, userID int64, newHash string) (err error) {
	ctx, span := s.startSpan(ctx, "ResetUserPassword")
	defer func() { s.endSpan(span, err) }()

	query := `
		UPDATE users
		SET password = $2,
			reset_otp = NULL,
			reset_otp_expires_at = NULL,
			updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL`

	tag, err := s.conn.Exec(ctx, query, userID, newHash)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

func (s *DB) SaveResetToken(ctx context.Context, userID int64, token string, expiresAt time.Time) (err error) {
	ctx, span := s.startSpan(ctx, "SaveResetToken")
	defer func() { s.endSpan(span, err) }()

	query := `
		UPDATE users
		SET reset_token = $2,
			reset_token_expires_at = $3,
			updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL`

	tag, err := s.conn.Exec(ctx, query, userID, token, expiresAt)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

func (s *DB) ResetUserPasswordByToken(ctx context.Context, userID int64, newHash string) (err error) {
	ctx, span := s.startSpan(ctx, "ResetUserPasswordByToken")
	defer func() { s.endSpan(span, err) }()

	query := `
		UPDATE users
		SET password = $2,
			reset_token = NULL,
			reset_token_expires_at = NULL,
			updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL`

	tag, err := s.conn.Exec(ctx, query, userID, newHash)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

func (s *DB) UpdateUserProfile(ctx context.Context, in entity.UpdateProfile) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateUserProfile")
	defer func() { s.endSpan(span, err) }()

	query := `
		UPDATE users
		SET first_name = $2,
			last_name = $3,
			updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL`

	tag, err := s.conn.Exec(ctx, query, in.ID, in.FirstName, in.LastName)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

func (s *DB) MarkUserDeleted(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "MarkUserDeleted")
	defer func() { s.endSpan(span, err) }()

	query := `
		UPDATE users
		SET deleted_at = now(),
			updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL`

	tag, err := s.conn.Exec(ctx, query, id)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}
