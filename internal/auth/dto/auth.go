package dto

import "time"

type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	DOB       string `json:"dob"` // YYYY-MM-DD, optional
	Gender    string `json:"gender"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	UserID       string `json:"userId" binding:"required"`
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type GoogleAuthRequest struct {
	// Either an authorization code to exchange server-side,
	// or a verified profile forwarded by the client.
	Code      string `json:"code"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

type ResetPasswordRequest struct {
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	PasswordConfirm string `json:"passwordConfirm" binding:"required"`
}

type AuthenticationResponse struct {
	AuthToken         string     `json:"authToken"`
	RefreshToken      string     `json:"refreshToken"`
	UserID            string     `json:"userId"`
	Username          string     `json:"username"`
	FirstName         string     `json:"firstName"`
	LastName          string     `json:"lastName"`
	DOB               *time.Time `json:"dob"`
	Gender            string     `json:"gender"`
	Role              string     `json:"role"`
	IsProfileComplete bool       `json:"isProfileComplete"`
}

type UserResponse struct {
	AuthToken         string     `json:"authToken"`
	RefreshToken      string     `json:"refreshToken,omitempty"`
	UserID            string     `json:"userId"`
	Username          string     `json:"username"`
	FirstName         string     `json:"firstName"`
	LastName          string     `json:"lastName"`
	DOB               *time.Time `json:"dob"`
	Gender            string     `json:"gender"`
	Role              string     `json:"role"`
	IsProfileComplete bool       `json:"isProfileComplete"`
}
