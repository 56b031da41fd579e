package usecase

import (
	authdomain "parkhub-backend/internal/auth/domain"
	authdto "parkhub-backend/internal/auth/dto"
	"parkhub-backend/pkg/response"
)

// AuthUsecase exposes the authentication operations consumed by the thin
// HTTP layer. Every operation returns the uniform Result envelope; nothing
// escapes as an unhandled fault.
type AuthUsecase interface {
	Register(req *authdto.RegisterRequest) *response.Result
	Login(req *authdto.LoginRequest) *response.Result
	Refresh(userID, refreshToken string) *response.Result
	GetUser(accessToken string) *response.Result
	ForgotPassword(email string) *response.Result
	ResetPassword(req *authdto.ResetPasswordRequest) *response.Result
	AuthenticateGoogle(email, firstName, lastName string) *response.Result

	Authorizer
}

// Authorizer resolves and checks the acting user for protected operations.
type Authorizer interface {
	// GetUserByToken strips the "Bearer " prefix, verifies the token and
	// loads the account it asserts.
	GetUserByToken(bearerToken string) (*authdomain.User, error)
	// IsAuthorized reports whether the acting user owns the resource.
	IsAuthorized(user *authdomain.User, resourceOwnerID string) bool
}

// PasswordResetNotifier delivers password-reset instructions out of band.
type PasswordResetNotifier interface {
	SendPasswordReset(email string) error
}
