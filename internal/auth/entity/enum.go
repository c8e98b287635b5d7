package entity

// OTPPurpose identifies which pending code a request concerns.
type OTPPurpose int16

const (
	OTPPurposeUnknown       OTPPurpose = 0
	OTPPurposePhoneVerify   OTPPurpose = 1
	OTPPurposeEmailVerify   OTPPurpose = 2
	OTPPurposePasswordReset OTPPurpose = 3
)

// OTPPurposeFromString parses a purpose tag as accepted by the API
// ("phone", "mail") and internal names.
func OTPPurposeFromString(str string) OTPPurpose {
	switch str {
	case "phone", "phone-verify":
		return OTPPurposePhoneVerify
	case "mail", "email-verify":
		return OTPPurposeEmailVerify
	case "password-reset":
		return OTPPurposePasswordReset
	default:
		return OTPPurposeUnknown
	}
}

func (p OTPPurpose) String() string {
	switch p {
	case OTPPurposePhoneVerify:
		return "phone-verify"
	case OTPPurposeEmailVerify:
		return "email-verify"
	case OTPPurposePasswordReset:
		return "password-reset"
	default:
		return "unknown"
	}
}

// IsUnknown reports whether the purpose is not a recognized tag.
func (p OTPPurpose) IsUnknown() bool {
	switch p {
	case OTPPurposePhoneVerify, OTPPurposeEmailVerify, OTPPurposePasswordReset:
		return false
	default:
		return true
	}
}

// CodeRange returns the inclusive numeric bounds for codes of this purpose.
// Phone verification and password reset use 4 digits, email verification 6.
func (p OTPPurpose) CodeRange() (min, max int64) {
	switch p {
	case OTPPurposeEmailVerify:
		return 100000, 999999
	default:
		return 1000, 9999
	}
}

// Digits returns the code width for this purpose.
func (p OTPPurpose) Digits() int {
	if p == OTPPurposeEmailVerify {
		return 6
	}
	return 4
}

// UserRole is the coarse RBAC role stored on the user and carried in tokens.
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// RoleFromString parses a stored role, defaulting to RoleUser.
func RoleFromString(str string) UserRole {
	if str == string(RoleAdmin) {
		return RoleAdmin
	}
	return RoleUser
}

func (r UserRole) String() string {
	return string(r)
}
