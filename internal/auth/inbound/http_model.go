package inbound

import "time"

type SignupRequest struct {
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
}

type SignupResponse struct {
	UserID  int64  `json:"user_id,string"`
	Email   string `json:"email"`
	Warning string `json:"warning,omitempty"`
}

func (SignupResponse) Message() string {
	return "User created successfully. Please verify your email with the OTP sent to your email."
}

func (SignupResponse) StatusCode() int { return 201 }

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	UserID      int64  `json:"user_id,string"`
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
}

func (r LoginResponse) Message() string {
	return r.FullName + " is logged in successfully"
}

type GenerateOTPRequest struct {
	Type string `json:"type"`
}

type GenerateOTPResponse struct{}

func (GenerateOTPResponse) Message() string {
	return "OTP sent successfully."
}

type ResendOTPRequest struct {
	Email string `json:"email"`
}

type ResendOTPResponse struct{}

func (ResendOTPResponse) Message() string {
	return "OTP sent successfully. Please check your email."
}

type VerifyPhoneRequest struct {
	Phone string `json:"phone"`
	OTP   string `json:"otp"`
}

type VerifyPhoneResponse struct{}

func (VerifyPhoneResponse) Message() string {
	return "Phone number verified successfully."
}

type VerifyEmailRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type VerifyEmailResponse struct{}

func (VerifyEmailResponse) Message() string {
	return "Email verified successfully."
}

type PasswordForgotRequest struct {
	Phone string `json:"phone"`
}

type PasswordForgotResponse struct{}

func (PasswordForgotResponse) Message() string {
	return "Password reset OTP sent successfully."
}

type PasswordResetRequest struct {
	Phone       string `json:"phone"`
	OTP         string `json:"otp"`
	NewPassword string `json:"new_password"`
}

type PasswordResetResponse struct{}

func (PasswordResetResponse) Message() string {
	return "Password reset successfully."
}

type ForgotTokenRequest struct {
	Email string `json:"email"`
}

type ForgotTokenResponse struct{}

func (ForgotTokenResponse) Message() string {
	return "Password reset link sent successfully. Please check your email."
}

type ResetTokenRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

type ResetTokenResponse struct{}

func (ResetTokenResponse) Message() string {
	return "Password reset successfully."
}

type ProfileResponse struct {
	UserID        int64     `json:"user_id,string"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Role          string    `json:"role"`
	PhoneVerified bool      `json:"phone_verified"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
}

type ProfileUpdateRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type ProfileUpdateResponse struct{}

func (ProfileUpdateResponse) Message() string {
	return "Profile updated successfully."
}

type UserUpdateResponse struct{}

func (UserUpdateResponse) Message() string {
	return "User updated successfully."
}

type UserDeleteResponse struct{}

func (UserDeleteResponse) Message() string {
	return "User deleted successfully."
}
