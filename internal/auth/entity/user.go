package entity

import (
	"errors"
	"time"
)

var (
	// ErrEmailTaken is surfaced when a unique-email constraint is violated.
	ErrEmailTaken = errors.New("auth: user with this email already exists")
	// ErrPhoneTaken is surfaced when a unique-phone constraint is violated.
	ErrPhoneTaken = errors.New("auth: user with this phone number already exists")
)

// OTPState is a single pending one-time code for one purpose.
type OTPState struct {
	// Code is the stored code; empty when no code is pending.
	Code string
	// ExpiresAt bounds validity; the code is valid strictly before it.
	ExpiresAt *time.Time
}

// Pending reports whether a code is stored.
func (o OTPState) Pending() bool {
	return o.Code != ""
}

// User is the account record. OTP and throttle state live on the user so
// issuance and validation mutate a single row.
type User struct {
	ID        int64
	Email     string
	Phone     string
	FirstName string
	LastName  string
	Password  string // hashed
	Role      UserRole

	PhoneVerified bool
	EmailVerified bool

	PhoneOTP OTPState
	EmailOTP OTPState
	ResetOTP OTPState

	// ResetToken supports the legacy emailed-link reset flow.
	ResetToken          string
	ResetTokenExpiresAt *time.Time

	// OTPRequestCount counts issuances since the start of the current local
	// calendar day. Shared across purposes.
	OTPRequestCount int32
	// LastOTPRequestAt is the most recent issuance time, across any purpose.
	LastOTPRequestAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// FullName joins first and last name for display.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// OTPFor returns the OTP state for the given purpose.
func (u *User) OTPFor(p OTPPurpose) OTPState {
	switch p {
	case OTPPurposePhoneVerify:
		return u.PhoneOTP
	case OTPPurposeEmailVerify:
		return u.EmailOTP
	case OTPPurposePasswordReset:
		return u.ResetOTP
	default:
		return OTPState{}
	}
}

// OTPIssue carries the single-update payload written when a code is issued:
// the fresh code and expiry plus the advanced throttle counters.
type OTPIssue struct {
	UserID        int64
	Purpose       OTPPurpose
	Code          string
	ExpiresAt     time.Time
	RequestCount  int32
	LastRequestAt time.Time
}

// UserListFilter narrows the admin user listing.
type UserListFilter struct {
	Search string
	Role   UserRole
	Page   int32
	Size   int32
}

// UpdateProfile carries mutable profile fields.
type UpdateProfile struct {
	ID        int64
	FirstName string
	LastName  string
}
