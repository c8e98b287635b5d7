package inbound

import (
	"github.com/seyia90/authstarter/internal/auth/usecase"
	"github.com/seyia90/authstarter/internal/pkg/goerror"
	"github.com/seyia90/authstarter/internal/pkg/jwt"
	"github.com/seyia90/authstarter/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for signup, login, OTP verification,
// password recovery and user management.
type HTTPEndpoint struct {
	uc uc
}

// Signup creates an account and sends an email verification code.
// @Summary Register user
// @Description Creates an account and sends a verification OTP to the email address. A delivery failure is reported in the response warning, the account is still created.
// @Tags Auth, Account
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup payload"
// @Success 201 {object} router.successResponse{data=SignupResponse} "Account created"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 409 {object} router.errorResponse "Email or phone already registered"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/auth/signup [post]
func (h *HTTPEndpoint) Signup(r *router.Request) (any, error) {
	var req SignupRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Signup(r.Context(), usecase.SignupInput{
		Email:     req.Email,
		Phone:     req.Phone,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		return nil, err
	}

	return SignupResponse{
		UserID:  resp.UserID,
		Email:   resp.Email,
		Warning: resp.Warning,
	}, nil
}

// Login authenticates by email and password and returns an access token.
// @Summary Authenticate user
// @Description Validates credentials and returns an access token. Requires a verified email address.
// @Tags Auth, Account
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login payload"
// @Success 200 {object} router.successResponse{data=LoginResponse} "Authentication result"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Invalid credentials"
// @Failure 403 {object} router.errorResponse "Email not verified"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/auth/login [post]
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Login(r.Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return LoginResponse{
		AccessToken: resp.AccessToken,
		UserID:      resp.UserID,
		Email:       resp.Email,
		FullName:    resp.FullName,
	}, nil
}

// GenerateVerificationOTP issues a verification code for the authenticated
// user's phone or email.
// @Summary Request verification OTP
// @Description Issues a fresh verification code for the caller's phone or email, subject to the shared daily quota and minimum interval.
// @Tags Auth, Verification
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body GenerateOTPRequest true "OTP request payload (type: phone|mail)"
// @Success 200 {object} router.successResponse "OTP sent"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 429 {object} router.errorResponse "Daily quota or minimum interval exceeded"
// @Failure 502 {object} router.errorResponse "Code persisted but delivery failed"
// @Router /api/v1/auth/otp/request [post]
func (h *HTTPEndpoint) GenerateVerificationOTP(r *router.Request) (any, error) {
	clm := jwt.GetAuth(r.Context())
	if clm == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	var req GenerateOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.GenerateVerificationOTP(r.Context(), usecase.GenerateVerificationOTPInput{
		UserID: clm.UserID,
		Type:   req.Type,
	}); err != nil {
		return nil, err
	}

	return GenerateOTPResponse{}, nil
}

// ResendVerificationOTP re-issues the email verification code by address.
// @Summary Resend email verification OTP
// @Description Re-issues the email verification code for an unverified account, replacing any pending code.
// @Tags Auth, Verification
// @Accept json
// @Produce json
// @Param request body ResendOTPRequest true "Resend payload"
// @Success 200 {object} router.successResponse "OTP sent"
// @Failure 404 {object} router.errorResponse "User not found"
// @Failure 429 {object} router.errorResponse "Daily quota or minimum interval exceeded"
// @Failure 502 {object} router.errorResponse "Code persisted but delivery failed"
// @Router /api/v1/auth/otp/resend [post]
func (h *HTTPEndpoint) ResendVerificationOTP(r *router.Request) (any, error) {
	var req ResendOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.ResendVerificationOTP(r.Context(), usecase.ResendVerificationOTPInput{
		Email: req.Email,
	}); err != nil {
		return nil, err
	}

	return ResendOTPResponse{}, nil
}

// VerifyPhone validates a phone verification code.
// @Summary Verify phone number
// @Description Validates the pending phone verification code and marks the number verified.
// @Tags Auth, Verification
// @Accept json
// @Produce json
// @Param request body VerifyPhoneRequest true "Verification payload"
// @Success 200 {object} router.successResponse "Phone verified"
// @Failure 404 {object} router.errorResponse "User not found"
// @Failure 422 {object} router.errorResponse "Invalid or expired OTP"
// @Router /api/v1/auth/verify/phone [post]
func (h *HTTPEndpoint) VerifyPhone(r *router.Request) (any, error) {
	var req VerifyPhoneRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.VerifyPhone(r.Context(), usecase.VerifyPhoneInput{
		Phone: req.Phone,
		OTP:   req.OTP,
	}); err != nil {
		return nil, err
	}

	return VerifyPhoneResponse{}, nil
}

// VerifyEmail validates an email verification code.
// @Summary Verify email address
// @Description Validates the pending email verification code and marks the address verified.
// @Tags Auth, Verification
// @Accept json
// @Produce json
// @Param request body VerifyEmailRequest true "Verification payload"
// @Success 200 {object} router.successResponse "Email verified"
// @Failure 404 {object} router.errorResponse "User not found"
// @Failure 422 {object} router.errorResponse "Invalid or expired OTP"
// @Router /api/v1/auth/verify/email [post]
func (h *HTTPEndpoint) VerifyEmail(r *router.Request) (any, error) {
	var req VerifyEmailRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.VerifyEmail(r.Context(), usecase.VerifyEmailInput{
		Email: req.Email,
		OTP:   req.OTP,
	}); err != nil {
		return nil, err
	}

	return VerifyEmailResponse{}, nil
}

// GeneratePasswordResetOTP sends a reset code to the given phone number.
// @Summary Request password reset OTP
// @Description Sends a password reset code over SMS, subject to the shared issuance throttle.
// @Tags Auth, Password Recovery
// @Accept json
// @Produce json
// @Param request body PasswordForgotRequest true "Forgot password payload"
// @Success 200 {object} router.successResponse "Reset OTP sent"
// @Failure 404 {object} router.errorResponse "Phone number not registered"
// @Failure 429 {object} router.errorResponse "Daily quota or minimum interval exceeded"
// @Failure 502 {object} router.errorResponse "Code persisted but delivery failed"
// @Router /api/v1/auth/password/forgot [post]
func (h *HTTPEndpoint) GeneratePasswordResetOTP(r *router.Request) (any, error) {
	var req PasswordForgotRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.GeneratePasswordResetOTP(r.Context(), usecase.GeneratePasswordResetOTPInput{
		Phone: req.Phone,
	}); err != nil {
		return nil, err
	}

	return PasswordForgotResponse{}, nil
}

// ResetPasswordWithOTP sets a new password after validating the reset code.
// @Summary Reset password with OTP
// @Description Validates the reset code for the phone number and replaces the password in one update.
// @Tags Auth, Password Recovery
// @Accept json
// @Produce json
// @Param request body PasswordResetRequest true "Reset payload"
// @Success 200 {object} router.successResponse "Password reset"
// @Failure 422 {object} router.errorResponse "Invalid or expired reset OTP"
// @Router /api/v1/auth/password/reset [post]
func (h *HTTPEndpoint) ResetPasswordWithOTP(r *router.Request) (any, error) {
	var req PasswordResetRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.ResetPasswordWithOTP(r.Context(), usecase.ResetPasswordWithOTPInput{
		Phone:       req.Phone,
		OTP:         req.OTP,
		NewPassword: req.NewPassword,
	}); err != nil {
		return nil, err
	}

	return PasswordResetResponse{}, nil
}

// GenerateResetToken emails a password reset link.
// @Summary Request password reset link
// @Description Emails a single-use reset token as a link to the account's address.
// @Tags Auth, Password Recovery
// @Accept json
// @Produce json
// @Param request body ForgotTokenRequest true "Forgot password payload"
// @Success 200 {object} router.successResponse "Reset link sent"
// @Failure 404 {object} router.errorResponse "Email not registered"
// @Failure 502 {object} router.errorResponse "Delivery failed"
// @Router /api/v1/auth/password/forgot-token [post]
func (h *HTTPEndpoint) GenerateResetToken(r *router.Request) (any, error) {
	var req ForgotTokenRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.GenerateResetToken(r.Context(), usecase.GenerateResetTokenInput{
		Email: req.Email,
	}); err != nil {
		return nil, err
	}

	return ForgotTokenResponse{}, nil
}

// ResetPasswordWithToken sets a new password after validating an emailed token.
// @Summary Reset password with token
// @Description Validates an emailed reset token and replaces the password, consuming the token.
// @Tags Auth, Password Recovery
// @Accept json
// @Produce json
// @Param request body ResetTokenRequest true "Reset payload"
// @Success 200 {object} router.successResponse "Password reset"
// @Failure 422 {object} router.errorResponse "Invalid or expired reset token"
// @Router /api/v1/auth/password/reset-token [post]
func (h *HTTPEndpoint) ResetPasswordWithToken(r *router.Request) (any, error) {
	var req ResetTokenRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.ResetPasswordWithToken(r.Context(), usecase.ResetPasswordWithTokenInput{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	}); err != nil {
		return nil, err
	}

	return ResetTokenResponse{}, nil
}

// Profile returns the authenticated user's account.
// @Summary Get profile
// @Description Returns the authenticated user's account details.
// @Tags Auth, Profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} router.successResponse{data=ProfileResponse} "Profile"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Router /api/v1/auth/profile [get]
func (h *HTTPEndpoint) Profile(r *router.Request) (any, error) {
	resp, err := h.uc.Profile(r.Context())
	if err != nil {
		return nil, err
	}

	return profileResponse(resp), nil
}

// ProfileUpdate changes the authenticated user's display name.
// @Summary Update profile
// @Description Changes the authenticated user's first and last name.
// @Tags Auth, Profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body ProfileUpdateRequest true "Profile payload"
// @Success 200 {object} router.successResponse "Profile updated"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/auth/profile [put]
func (h *HTTPEndpoint) ProfileUpdate(r *router.Request) (any, error) {
	var req ProfileUpdateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.ProfileUpdate(r.Context(), usecase.ProfileUpdateInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}); err != nil {
		return nil, err
	}

	return ProfileUpdateResponse{}, nil
}

// UserList lists users for administrators.
// @Summary List users
// @Description Returns a paginated list of users with optional search and role filters. Admin only.
// @Tags Auth, User Directory
// @Security BearerAuth
// @Produce json
// @Param search query string false "Search by email, phone or name"
// @Param role query string false "Filter by role (user|admin)"
// @Param page query int false "Pagination page"
// @Param size query int false "Pagination size"
// @Success 200 {object} router.successResponse{data=usecase.UserListOutput} "User list"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Router /api/v1/users [get]
func (h *HTTPEndpoint) UserList(r *router.Request) (any, error) {
	page, err := r.GetQueryInt32("page")
	if err != nil {
		return nil, err
	}

	size, err := r.GetQueryInt32("size")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.UserList(r.Context(), usecase.UserListInput{
		Search: r.GetQuery("search"),
		Role:   r.GetQuery("role"),
		Page:   page,
		Size:   size,
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// UserDetail returns one user for administrators.
// @Summary Get user
// @Description Returns one user's account details. Admin only.
// @Tags Auth, User Directory
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} router.successResponse{data=ProfileResponse} "User"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 404 {object} router.errorResponse "User not found"
// @Router /api/v1/users/{id} [get]
func (h *HTTPEndpoint) UserDetail(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.UserDetail(r.Context(), usecase.UserDetailInput{ID: id})
	if err != nil {
		return nil, err
	}

	return profileResponse(resp), nil
}

// UserUpdate changes another user's display name, for administrators.
// @Summary Update user
// @Description Changes another user's first and last name. Admin only.
// @Tags Auth, User Directory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body ProfileUpdateRequest true "Profile payload"
// @Success 200 {object} router.successResponse "User updated"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 404 {object} router.errorResponse "User not found"
// @Router /api/v1/users/{id} [put]
func (h *HTTPEndpoint) UserUpdate(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req ProfileUpdateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.UserUpdate(r.Context(), usecase.UserUpdateInput{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}); err != nil {
		return nil, err
	}

	return UserUpdateResponse{}, nil
}

// UserDelete soft-deletes a user, for administrators.
// @Summary Delete user
// @Description Soft-deletes a user account. Admins cannot delete their own account.
// @Tags Auth, User Directory
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} router.successResponse "User deleted"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 404 {object} router.errorResponse "User not found"
// @Router /api/v1/users/{id} [delete]
func (h *HTTPEndpoint) UserDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.UserDelete(r.Context(), usecase.UserDeleteInput{ID: id}); err != nil {
		return nil, err
	}

	return UserDeleteResponse{}, nil
}

func profileResponse(resp *usecase.ProfileOutput) ProfileResponse {
	return ProfileResponse{
		UserID:        resp.UserID,
		Email:         resp.Email,
		Phone:         resp.Phone,
		FirstName:     resp.FirstName,
		LastName:      resp.LastName,
		Role:          resp.Role,
		PhoneVerified: resp.PhoneVerified,
		EmailVerified: resp.EmailVerified,
		CreatedAt:     resp.CreatedAt,
	}
}
