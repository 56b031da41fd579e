package usecase

import (
	"errors"
	"log"
	"regexp"
	"strings"
	"time"

	authdomain "parkhub-backend/internal/auth/domain"
	authdto "parkhub-backend/internal/auth/dto"
	"parkhub-backend/internal/auth/repository"
	"parkhub-backend/internal/auth/token"
	"parkhub-backend/pkg/response"

	"github.com/google/uuid"
)

const (
	msgUnexpected        = "An unexpected error occurred while processing your request. Please try again later."
	msgAlreadyExists     = "Username/email already exists"
	msgWeakPassword      = "Password must be at least 8 characters long and contain at least 2 digits"
	msgFutureDOB         = "Date of birth cannot be in the future"
	msgInvalidDOB        = "Invalid date of birth"
	msgInvalidEmail      = "Invalid email address"
	msgShortFirstName    = "First name must be at least 2 characters long"
	msgShortLastName     = "Last name must be at least 2 characters long"
	msgBadCredentials    = "Invalid username or password"
	msgInvalidAccount    = "Invalid account details"
	msgIncompleteProfile = "Please complete your profile"
	msgInvalidRefresh    = "Invalid refresh token"

	bearerPrefix = "Bearer "
)

var emailPattern = regexp.MustCompile(`^[\w\-.]+@([\w\-]+\.)+[\w\-]{2,4}$`)

// authUsecase implements AuthUsecase against the user store, credential
// verifier, token codec and refresh-token store.
type authUsecase struct {
	userRepo    repository.UserRepository
	credentials repository.CredentialVerifier
	tokens      *token.Service
	refresh     *RefreshTokenService
	notifier    PasswordResetNotifier
	now         func() time.Time
}

func NewAuthUsecase(
	userRepo repository.UserRepository,
	credentials repository.CredentialVerifier,
	tokens *token.Service,
	refresh *RefreshTokenService,
	notifier PasswordResetNotifier,
) AuthUsecase {
	return &authUsecase{
		userRepo:    userRepo,
		credentials: credentials,
		tokens:      tokens,
		refresh:     refresh,
		notifier:    notifier,
		now:         time.Now,
	}
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) *response.Result {
	existing, err := u.userRepo.FindByUsername(req.Username)
	if err != nil {
		return u.unexpected("register", err)
	}
	if existing != nil {
		return response.Fail(msgAlreadyExists)
	}

	if !validPassword(req.Password) {
		return response.Fail(msgWeakPassword)
	}

	var dob *time.Time
	if req.DOB != "" {
		parsed, err := time.Parse(time.DateOnly, req.DOB)
		if err != nil {
			return response.Fail(msgInvalidDOB)
		}
		if parsed.After(u.now()) {
			return response.Fail(msgFutureDOB)
		}
		dob = &parsed
	}

	if !emailPattern.MatchString(req.Username) {
		return response.Fail(msgInvalidEmail)
	}
	if len(req.FirstName) < 2 {
		return response.Fail(msgShortFirstName)
	}
	if len(req.LastName) < 2 {
		return response.Fail(msgShortLastName)
	}

	hashed, err := repository.HashPassword(req.Password)
	if err != nil {
		return u.unexpected("register", err)
	}

	user := &authdomain.User{
		Username:          req.Username,
		Password:          hashed,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		DOB:               dob,
		Gender:            req.Gender,
		Role:              authdomain.RoleUser,
		IsProfileComplete: true,
		AuthMethod:        authdomain.AuthMethodPassword,
		CreatedAt:         u.now(),
		LastLogin:         u.now(),
	}

	// Create and the immediate last-login stamp run in one transaction; a
	// concurrent duplicate registration surfaces via the unique index.
	err = u.userRepo.Transaction(func(tx repository.UserRepository) error {
		if err := tx.Create(user); err != nil {
			return err
		}
		user.LastLogin = u.now()
		return tx.Update(user)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return response.Fail(msgAlreadyExists)
		}
		return u.unexpected("register", err)
	}

	return u.issueTokens(user, user.IsProfileComplete)
}

func (u *authUsecase) Login(req *authdto.LoginRequest) *response.Result {
	if err := u.credentials.Verify(req.Username, req.Password); err != nil {
		if errors.Is(err, repository.ErrBadCredentials) {
			return response.Fail(msgBadCredentials)
		}
		return u.unexpected("login", err)
	}

	user, err := u.userRepo.FindByUsername(req.Username)
	if err != nil {
		return u.unexpected("login", err)
	}
	if user == nil {
		return response.Fail(msgInvalidAccount)
	}

	user.LastLogin = u.now()
	if err := u.userRepo.Update(user); err != nil {
		return u.unexpected("login", err)
	}

	return u.issueTokens(user, user.IsProfileComplete)
}

// Refresh mints a fresh token pair after validating the presented refresh
// token. The new refresh value is returned but intentionally not persisted;
// the stored token stays authoritative until it expires.
func (u *authUsecase) Refresh(userID, refreshToken string) *response.Result {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return u.unexpected("refresh", err)
	}
	if user == nil {
		return response.Fail(msgInvalidAccount)
	}
	if !user.IsProfileComplete {
		return response.Fail(msgIncompleteProfile)
	}
	if !u.refresh.ValidateToken(userID, refreshToken) {
		return response.Fail(msgInvalidRefresh)
	}

	accessToken, err := u.tokens.GenerateAccessToken(user)
	if err != nil {
		return u.unexpected("refresh", err)
	}
	newRefresh, err := u.tokens.GenerateRefreshToken(user.Username)
	if err != nil {
		return u.unexpected("refresh", err)
	}

	return response.Ok(&authdto.AuthenticationResponse{
		AuthToken:    accessToken,
		RefreshToken: newRefresh,
		UserID:       user.ID,
		Username:     user.Username,
		Role:         string(user.Role),
	})
}

func (u *authUsecase) GetUser(accessToken string) *response.Result {
	username, err := u.tokens.ExtractUsername(accessToken)
	if err != nil {
		return u.unexpected("get user", err)
	}
	user, err := u.userRepo.FindByUsername(username)
	if err != nil {
		return u.unexpected("get user", err)
	}
	if user == nil {
		return response.Fail(msgInvalidAccount)
	}

	refreshToken, err := u.tokens.GenerateRefreshToken(user.Username)
	if err != nil {
		return u.unexpected("get user", err)
	}

	return response.Ok(&authdto.UserResponse{
		AuthToken:         accessToken,
		RefreshToken:      refreshToken,
		UserID:            user.ID,
		Username:          user.Username,
		FirstName:         user.FirstName,
		LastName:          user.LastName,
		DOB:               user.DOB,
		Gender:            user.Gender,
		Role:              string(user.Role),
		IsProfileComplete: user.IsProfileComplete,
	})
}

func (u *authUsecase) ForgotPassword(email string) *response.Result {
	user, err := u.userRepo.FindByUsername(email)
	if err != nil {
		return u.unexpected("forgot password", err)
	}
	if user == nil {
		return response.Fail(msgInvalidAccount)
	}
	if err := u.notifier.SendPasswordReset(email); err != nil {
		return u.unexpected("forgot password", err)
	}
	return response.Ok("Password reset link sent to email")
}

func (u *authUsecase) ResetPassword(req *authdto.ResetPasswordRequest) *response.Result {
	user, err := u.userRepo.FindByUsername(req.Email)
	if err != nil {
		return u.unexpected("reset password", err)
	}
	if user == nil {
		return response.Fail(msgInvalidAccount)
	}
	if req.Password != req.PasswordConfirm {
		return response.Fail("Passwords do not match")
	}

	hashed, err := repository.HashPassword(req.Password)
	if err != nil {
		return u.unexpected("reset password", err)
	}
	user.Password = hashed
	if err := u.userRepo.Update(user); err != nil {
		return u.unexpected("reset password", err)
	}
	return response.Ok("Password reset successfully")
}

// AuthenticateGoogle maps a verified Google profile onto a local account,
// creating it on first sign-in.
func (u *authUsecase) AuthenticateGoogle(email, firstName, lastName string) *response.Result {
	user, err := u.userRepo.FindByUsername(email)
	if err != nil {
		return u.unexpected("google auth", err)
	}

	if user == nil {
		// Federated accounts get a random unusable password hash so the
		// password login path can never match.
		hashed, err := repository.HashPassword(uuid.New().String())
		if err != nil {
			return u.unexpected("google auth", err)
		}
		user = &authdomain.User{
			Username:          email,
			Password:          hashed,
			FirstName:         firstName,
			LastName:          lastName,
			Role:              authdomain.RoleUser,
			IsProfileComplete: true,
			AuthMethod:        authdomain.AuthMethodGoogle,
			CreatedAt:         u.now(),
			LastLogin:         u.now(),
		}
		if err := u.userRepo.Create(user); err != nil {
			if errors.Is(err, repository.ErrDuplicateUsername) {
				return response.Fail(msgAlreadyExists)
			}
			return u.unexpected("google auth", err)
		}
	}

	user.LastLogin = u.now()
	user.AuthMethod = authdomain.AuthMethodGoogle
	if err := u.userRepo.Update(user); err != nil {
		return u.unexpected("google auth", err)
	}

	return u.issueTokens(user, user.IsProfileComplete)
}

func (u *authUsecase) GetUserByToken(bearerToken string) (*authdomain.User, error) {
	raw := strings.TrimPrefix(bearerToken, bearerPrefix)
	username, err := u.tokens.ExtractUsername(raw)
	if err != nil {
		return nil, err
	}
	return u.userRepo.FindByUsername(username)
}

func (u *authUsecase) IsAuthorized(user *authdomain.User, resourceOwnerID string) bool {
	return user != nil && user.ID == resourceOwnerID
}

// issueTokens mints the access/refresh pair, persists the refresh token and
// builds the full profile payload.
func (u *authUsecase) issueTokens(user *authdomain.User, profileComplete bool) *response.Result {
	accessToken, err := u.tokens.GenerateAccessToken(user)
	if err != nil {
		return u.unexpected("issue tokens", err)
	}
	refreshToken, err := u.tokens.GenerateRefreshToken(user.Username)
	if err != nil {
		return u.unexpected("issue tokens", err)
	}
	if err := u.refresh.SaveToken(user.ID, refreshToken); err != nil {
		return u.unexpected("issue tokens", err)
	}

	return response.Ok(&authdto.AuthenticationResponse{
		AuthToken:         accessToken,
		RefreshToken:      refreshToken,
		UserID:            user.ID,
		Username:          user.Username,
		FirstName:         user.FirstName,
		LastName:          user.LastName,
		DOB:               user.DOB,
		Gender:            user.Gender,
		Role:              string(user.Role),
		IsProfileComplete: profileComplete,
	})
}

func (u *authUsecase) unexpected(op string, err error) *response.Result {
	log.Printf("[ERROR] auth %s: %v", op, err)
	return response.Fail(msgUnexpected)
}

// validPassword enforces the registration policy: at least 8 characters and
// at least 2 digits.
func validPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	digits := 0
	for _, r := range password {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 2
}
