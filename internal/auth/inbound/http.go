package inbound

import (
	"context"

	"github.com/seyia90/authstarter/internal/auth/usecase"
	"github.com/seyia90/authstarter/internal/pkg/router"
)

type uc interface {
	Signup(ctx context.Context, in usecase.SignupInput) (*usecase.SignupOutput, error)
	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)

	GenerateVerificationOTP(ctx context.Context, in usecase.GenerateVerificationOTPInput) error
	ResendVerificationOTP(ctx context.Context, in usecase.ResendVerificationOTPInput) error
	VerifyPhone(ctx context.Context, in usecase.VerifyPhoneInput) error
	VerifyEmail(ctx context.Context, in usecase.VerifyEmailInput) error

	GeneratePasswordResetOTP(ctx context.Context, in usecase.GeneratePasswordResetOTPInput) error
	ResetPasswordWithOTP(ctx context.Context, in usecase.ResetPasswordWithOTPInput) error
	GenerateResetToken(ctx context.Context, in usecase.GenerateResetTokenInput) error
	ResetPasswordWithToken(ctx context.Context, in usecase.ResetPasswordWithTokenInput) error

	Profile(ctx context.Context) (*usecase.ProfileOutput, error)
	ProfileUpdate(ctx context.Context, in usecase.ProfileUpdateInput) error

	UserList(ctx context.Context, in usecase.UserListInput) (*usecase.UserListOutput, error)
	UserDetail(ctx context.Context, in usecase.UserDetailInput) (*usecase.ProfileOutput, error)
	UserUpdate(ctx context.Context, in usecase.UserUpdateInput) error
	UserDelete(ctx context.Context, in usecase.UserDeleteInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Account
	r.POST("/api/v1/auth/signup", end.Signup)
	r.POST("/api/v1/auth/login", end.Login)

	// OTP issuance & verification
	r.POST("/api/v1/auth/otp/request", end.GenerateVerificationOTP) // need authenticated
	r.POST("/api/v1/auth/otp/resend", end.ResendVerificationOTP)
	r.POST("/api/v1/auth/verify/phone", end.VerifyPhone)
	r.POST("/api/v1/auth/verify/email", end.VerifyEmail)

	// Password recovery
	r.POST("/api/v1/auth/password/forgot", end.GeneratePasswordResetOTP)
	r.POST("/api/v1/auth/password/reset", end.ResetPasswordWithOTP)
	r.POST("/api/v1/auth/password/forgot-token", end.GenerateResetToken)
	r.POST("/api/v1/auth/password/reset-token", end.ResetPasswordWithToken)

	// Profile (need authenticated)
	r.GET("/api/v1/auth/profile", end.Profile)
	r.PUT("/api/v1/auth/profile", end.ProfileUpdate)

	// User Directory (need authenticated & authorization)
	r.GET("/api/v1/users", end.UserList)
	r.GET("/api/v1/users/:id", end.UserDetail)
	r.PUT("/api/v1/users/:id", end.UserUpdate)
	r.DELETE("/api/v1/users/:id", end.UserDelete)
}
