package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/seyia90/authstarter/internal/auth/entity"
	"github.com/seyia90/authstarter/internal/pkg/goerror"
)

func TestGeneratePasswordResetOTP(t *testing.T) {
	f := newFixture(t, testUser(1))

	if err := f.uc.GeneratePasswordResetOTP(context.Background(), GeneratePasswordResetOTPInput{Phone: "08012345678"}); err != nil {
		t.Fatalf("issue reset otp: %v", err)
	}

	if len(f.sms.sent) != 1 {
		t.Fatalf("expected 1 sms, got %d", len(f.sms.sent))
	}
	if len(f.sms.sent[0]) != 4 {
		t.Fatalf("reset code %q should be 4 digits", f.sms.sent[0])
	}
	if !f.repo.users[1].ResetOTP.Pending() {
		t.Fatal("reset code must be persisted")
	}
}

func TestGeneratePasswordResetOTPUnknownPhone(t *testing.T) {
	f := newFixture(t)

	err := f.uc.GeneratePasswordResetOTP(context.Background(), GeneratePasswordResetOTPInput{Phone: "08012345678"})
	ge := asGoError(t, err)
	if ge.Msg() != "User with this phone number does not exist" {
		t.Fatalf("message = %q", ge.Msg())
	}
}

func TestResetPasswordWithOTP(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)
	user := withPendingOTP(testUser(1), entity.OTPPurposePasswordReset, "7777", now.Add(5*time.Minute))
	oldHash := user.Password
	f := newFixture(t, user)

	err := f.uc.ResetPasswordWithOTP(context.Background(), ResetPasswordWithOTPInput{
		Phone:       "08012345678",
		OTP:         "7777",
		NewPassword: "Brand-New-Pass1",
	})
	if err != nil {
		t.Fatalf("reset password: %v", err)
	}

	u := f.repo.users[1]
	if u.Password == oldHash {
		t.Fatal("credential hash should have changed")
	}
	if u.ResetOTP.Pending() {
		t.Fatal("reset code must be cleared after use")
	}
	if !f.uc.bcrypt.Verify(u.Password, "Brand-New-Pass1") {
		t.Fatal("new password should verify against the stored hash")
	}
}

func TestResetPasswordWithOTPWrongCode(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)
	user := withPendingOTP(testUser(1), entity.OTPPurposePasswordReset, "7777", now.Add(5*time.Minute))
	oldHash := user.Password
	f := newFixture(t, user)

	err := f.uc.ResetPasswordWithOTP(context.Background(), ResetPasswordWithOTPInput{
		Phone:       "08012345678",
		OTP:         "1234",
		NewPassword: "Brand-New-Pass1",
	})
	ge := asGoError(t, err)
	if ge.Msg() != "Invalid OTP" {
		t.Fatalf("message = %q", ge.Msg())
	}
	if f.repo.users[1].Password != oldHash {
		t.Fatal("credential must be untouched on a failed reset")
	}
}

func TestResetPasswordWithOTPExpired(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)
	user := withPendingOTP(testUser(1), entity.OTPPurposePasswordReset, "7777", now.Add(-time.Second))
	f := newFixture(t, user)

	err := f.uc.ResetPasswordWithOTP(context.Background(), ResetPasswordWithOTPInput{
		Phone:       "08012345678",
		OTP:         "7777",
		NewPassword: "Brand-New-Pass1",
	})
	ge := asGoError(t, err)
	if ge.Msg() != "OTP has expired. Please request a new one." {
		t.Fatalf("message = %q", ge.Msg())
	}
}

func TestResetPasswordWithOTPUnknownPhone(t *testing.T) {
	f := newFixture(t)

	err := f.uc.ResetPasswordWithOTP(context.Background(), ResetPasswordWithOTPInput{
		Phone:       "08012345678",
		OTP:         "7777",
		NewPassword: "Brand-New-Pass1",
	})
	ge := asGoError(t, err)
	if ge.Msg() != "Invalid or expired reset OTP" {
		t.Fatalf("message = %q", ge.Msg())
	}
}

func TestGenerateResetToken(t *testing.T) {
	f := newFixture(t, testUser(1))

	if err := f.uc.GenerateResetToken(context.Background(), GenerateResetTokenInput{Email: "ada@example.com"}); err != nil {
		t.Fatalf("generate reset token: %v", err)
	}

	u := f.repo.users[1]
	if u.ResetToken != "reset-token" {
		t.Fatalf("stored token = %q", u.ResetToken)
	}
	wantExpiry := f.clock.now.Add(10 * time.Minute)
	if u.ResetTokenExpiresAt == nil || !u.ResetTokenExpiresAt.Equal(wantExpiry) {
		t.Fatalf("token expiry = %v, want %v", u.ResetTokenExpiresAt, wantExpiry)
	}
	if len(f.email.tokens) != 1 || f.email.tokens[0] != "reset-token" {
		t.Fatalf("emailed tokens = %v", f.email.tokens)
	}
}

func TestResetPasswordWithToken(t *testing.T) {
	f := newFixture(t, testUser(1))

	if err := f.uc.GenerateResetToken(context.Background(), GenerateResetTokenInput{Email: "ada@example.com"}); err != nil {
		t.Fatalf("generate reset token: %v", err)
	}

	err := f.uc.ResetPasswordWithToken(context.Background(), ResetPasswordWithTokenInput{
		Token:       "reset-token",
		NewPassword: "Brand-New-Pass1",
	})
	if err != nil {
		t.Fatalf("reset with token: %v", err)
	}

	u := f.repo.users[1]
	if u.ResetToken != "" || u.ResetTokenExpiresAt != nil {
		t.Fatal("token must be cleared after use")
	}
	if !f.uc.bcrypt.Verify(u.Password, "Brand-New-Pass1") {
		t.Fatal("new password should verify against the stored hash")
	}
}

func TestResetPasswordWithTokenExpired(t *testing.T) {
	f := newFixture(t, testUser(1))

	if err := f.uc.GenerateResetToken(context.Background(), GenerateResetTokenInput{Email: "ada@example.com"}); err != nil {
		t.Fatalf("generate reset token: %v", err)
	}

	f.clock.now = f.clock.now.Add(11 * time.Minute)

	err := f.uc.ResetPasswordWithToken(context.Background(), ResetPasswordWithTokenInput{
		Token:       "reset-token",
		NewPassword: "Brand-New-Pass1",
	})
	ge := asGoError(t, err)
	if ge.Msg() != "Invalid or expired reset token" {
		t.Fatalf("message = %q", ge.Msg())
	}
}

func TestResetPasswordWithTokenUnknown(t *testing.T) {
	f := newFixture(t, testUser(1))

	err := f.uc.ResetPasswordWithToken(context.Background(), ResetPasswordWithTokenInput{
		Token:       "nope",
		NewPassword: "Brand-New-Pass1",
	})
	ge := asGoError(t, err)
	if ge.Code() != goerror.CodeInvalidInput {
		t.Fatalf("code = %v, want CodeInvalidInput", ge.Code())
	}
}
