package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"strconv"
	"time"

	"github.com/seyia90/authstarter/internal/auth/entity"
	"github.com/seyia90/authstarter/internal/pkg/goerror"
)

const (
	defaultOTPExpiryMinutes      = 10
	defaultOTPDailyLimit         = 3
	defaultOTPMinIntervalMinutes = 5
)

func (s *Usecase) otpExpiry() time.Duration {
	if d := s.cfg.GetMinute("otp.expiry_minutes"); d > 0 {
		return d
	}
	return defaultOTPExpiryMinutes * time.Minute
}

func (s *Usecase) otpDailyLimit() int32 {
	if n := s.cfg.GetInt32("otp.daily_limit"); n > 0 {
		return n
	}
	return defaultOTPDailyLimit
}

func (s *Usecase) otpMinInterval() time.Duration {
	if d := s.cfg.GetMinute("otp.min_interval_minutes"); d > 0 {
		return d
	}
	return defaultOTPMinIntervalMinutes * time.Minute
}

// generateOTPCode draws a uniformly random code in the purpose's range.
// The range floor guarantees the fixed width, so no zero padding is needed.
func generateOTPCode(purpose entity.OTPPurpose) (string, error) {
	min, max := purpose.CodeRange()

	n, err := rand.Int(rand.Reader, big.NewInt(max-min+1))
	if err != nil {
		return "", fmt.Errorf("generate otp code: %w", err)
	}
	return strconv.FormatInt(min+n.Int64(), 10), nil
}

// sameCalendarDay compares the local calendar dates of a and b.
func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// checkThrottle applies the shared daily-quota and minimum-interval policy.
// It returns the request count the next issuance should persist.
//
// The quota counter rolls over at local midnight: when the last request fell
// on an earlier calendar day the working count resets to zero before the
// limit check. The minimum interval applies across purposes, so verification
// and reset requests share one throttle clock per user.
func (s *Usecase) checkThrottle(ctx context.Context, user *entity.User, now time.Time) (int32, error) {
	count := user.OTPRequestCount
	if user.LastOTPRequestAt != nil && !sameCalendarDay(*user.LastOTPRequestAt, now) {
		count = 0
	}

	if count >= s.otpDailyLimit() {
		slog.WarnContext(ctx, "otp daily limit reached", "user_id", user.ID, "count", count)
		return 0, goerror.NewBusiness(
			"You have exceeded the maximum number of OTP requests for today. Please try again tomorrow.",
			goerror.CodeTooManyRequest,
		)
	}

	minInterval := s.otpMinInterval()
	if user.LastOTPRequestAt != nil && user.LastOTPRequestAt.After(now.Add(-minInterval)) {
		slog.WarnContext(ctx, "otp requested before minimum interval", "user_id", user.ID)
		return 0, goerror.NewBusiness(
			fmt.Sprintf("Please wait at least %d minutes before requesting a new OTP.", int(minInterval.Minutes())),
			goerror.CodeTooManyRequest,
		)
	}

	return count + 1, nil
}

// issueOTP runs the issuance state machine for one user and purpose: guard
// checks, code generation, delivery, then a single persisted update.
//
// Delivery is attempted before the write. A delivery failure does not abort
// the write: the code, expiry, and advanced throttle counters are persisted
// anyway so the user can still verify through a later resend or assisted
// flow, and the call returns a delivery-failure error distinct from a
// throttle rejection. Concurrent issuances for the same user race without
// locking; the last persisted code wins.
func (s *Usecase) issueOTP(
	ctx context.Context,
	user *entity.User,
	purpose entity.OTPPurpose,
	deliver func(ctx context.Context, code string) error,
) error {
	if purpose.IsUnknown() {
		return goerror.NewBusiness("Invalid type", goerror.CodeInvalidInput)
	}

	switch purpose {
	case entity.OTPPurposePhoneVerify:
		if user.PhoneVerified {
			return goerror.NewBusiness("Phone number already verified", goerror.CodeInvalidInput)
		}
	case entity.OTPPurposeEmailVerify:
		if user.EmailVerified {
			return goerror.NewBusiness("Email already verified", goerror.CodeInvalidInput)
		}
	}

	now := s.clock.Now()

	nextCount, err := s.checkThrottle(ctx, user, now)
	if err != nil {
		return err
	}

	code, err := generateOTPCode(purpose)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate otp code", "user_id", user.ID, "error", err)
		return goerror.NewServer(err)
	}

	deliveryErr := deliver(ctx, code)
	if deliveryErr != nil {
		slog.ErrorContext(ctx, "failed to deliver otp",
			"user_id", user.ID,
			"purpose", purpose.String(),
			"error", deliveryErr,
		)
	}

	issue := entity.OTPIssue{
		UserID:        user.ID,
		Purpose:       purpose,
		Code:          code,
		ExpiresAt:     now.Add(s.otpExpiry()),
		RequestCount:  nextCount,
		LastRequestAt: now,
	}
	if err := s.repoDB.SaveOTPIssue(ctx, issue); err != nil {
		slog.ErrorContext(ctx, "failed to repo save otp issue", "user_id", user.ID, "purpose", purpose.String(), "error", err)
		return goerror.NewServer(err)
	}

	if deliveryErr != nil {
		return goerror.NewDeliveryFailure(deliveryErr, deliveryFailureMessage(purpose))
	}

	return nil
}

func deliveryFailureMessage(purpose entity.OTPPurpose) string {
	switch purpose {
	case entity.OTPPurposePhoneVerify:
		return "Failed to send verification SMS. Please try resending OTP."
	case entity.OTPPurposeEmailVerify:
		return "Failed to send verification mail. Please try resending OTP."
	default:
		return "Failed to send password reset SMS. Please try resending OTP."
	}
}

// checkOTPCode runs the validation sequence for one user and purpose: the
// already-verified guard, exact code equality, then expiry. Persisting the
// success outcome (verified flag or new credential) is up to the caller.
// There is no failed-attempt lockout; retries are bounded only by expiry
// and the issuance throttle.
func (s *Usecase) checkOTPCode(ctx context.Context, user *entity.User, purpose entity.OTPPurpose, presented string) error {
	switch purpose {
	case entity.OTPPurposePhoneVerify:
		if user.PhoneVerified {
			return goerror.NewBusiness("Phone number already verified", goerror.CodeInvalidInput)
		}
	case entity.OTPPurposeEmailVerify:
		if user.EmailVerified {
			return goerror.NewBusiness("Email already verified", goerror.CodeInvalidInput)
		}
	}

	state := user.OTPFor(purpose)
	if !state.Pending() || state.Code != presented {
		slog.WarnContext(ctx, "otp mismatch", "user_id", user.ID, "purpose", purpose.String())
		return goerror.NewBusiness("Invalid OTP", goerror.CodeInvalidInput)
	}

	if state.ExpiresAt == nil || !s.clock.Now().Before(*state.ExpiresAt) {
		slog.WarnContext(ctx, "otp expired", "user_id", user.ID, "purpose", purpose.String())
		return goerror.NewBusiness("OTP has expired. Please request a new one.", goerror.CodeInvalidInput)
	}

	return nil
}

// validateOTP checks a verification code and, on success, marks the channel
// verified while clearing the code and expiry in one update.
func (s *Usecase) validateOTP(ctx context.Context, user *entity.User, purpose entity.OTPPurpose, presented string) error {
	if err := s.checkOTPCode(ctx, user, purpose, presented); err != nil {
		return err
	}

	if err := s.repoDB.MarkChannelVerified(ctx, user.ID, purpose); err != nil {
		slog.ErrorContext(ctx, "failed to repo mark channel verified", "user_id", user.ID, "purpose", purpose.String(), "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
