package usecase

import (
	"testing"
	"time"

	authdomain "parkhub-backend/internal/auth/domain"
	authdto "parkhub-backend/internal/auth/dto"
	"parkhub-backend/internal/auth/repository"
	"parkhub-backend/internal/auth/token"
	"parkhub-backend/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserRepo is an in-memory UserRepository enforcing username uniqueness.
type fakeUserRepo struct {
	byID       map[string]*authdomain.User
	byUsername map[string]*authdomain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:       make(map[string]*authdomain.User),
		byUsername: make(map[string]*authdomain.User),
	}
}

func (r *fakeUserRepo) Create(user *authdomain.User) error {
	if _, exists := r.byUsername[user.Username]; exists {
		return repository.ErrDuplicateUsername
	}
	if user.ID == "" {
		user.ID = uuid.Must(uuid.NewV7()).String()
	}
	copied := *user
	r.byID[user.ID] = &copied
	r.byUsername[user.Username] = &copied
	return nil
}

func (r *fakeUserRepo) FindByUsername(username string) (*authdomain.User, error) {
	if u, ok := r.byUsername[username]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(id string) (*authdomain.User, error) {
	if u, ok := r.byID[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(user *authdomain.User) error {
	copied := *user
	r.byID[user.ID] = &copied
	r.byUsername[user.Username] = &copied
	return nil
}

func (r *fakeUserRepo) Transaction(fn func(tx repository.UserRepository) error) error {
	return fn(r)
}

type fakeNotifier struct {
	sent []string
}

func (n *fakeNotifier) SendPasswordReset(email string) error {
	n.sent = append(n.sent, email)
	return nil
}

type authFixture struct {
	usecase  AuthUsecase
	users    *fakeUserRepo
	refresh  *fakeRefreshRepo
	tokens   *token.Service
	notifier *fakeNotifier
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTAccessExpiry:    30 * time.Minute,
		JWTRefreshExpiry:   168 * time.Hour,
		RefreshTokenExpiry: 10 * time.Minute,
	}
	users := newFakeUserRepo()
	refreshRepo := newFakeRefreshRepo()
	tokens := token.NewService(cfg)
	notifier := &fakeNotifier{}

	uc := NewAuthUsecase(
		users,
		repository.NewCredentialVerifier(users),
		tokens,
		NewRefreshTokenService(refreshRepo, cfg),
		notifier,
	)
	return &authFixture{usecase: uc, users: users, refresh: refreshRepo, tokens: tokens, notifier: notifier}
}

func validRegistration() *authdto.RegisterRequest {
	return &authdto.RegisterRequest{
		Username:  "a@x.com",
		Password:  "Password123",
		FirstName: "John",
		LastName:  "Doe",
		DOB:       "1990-01-01",
		Gender:    "Male",
	}
}

func TestRegisterSuccess(t *testing.T) {
	f := newAuthFixture(t)

	res := f.usecase.Register(validRegistration())
	require.True(t, res.Success, res.ErrorMessage)

	payload, ok := res.Data.(*authdto.AuthenticationResponse)
	require.True(t, ok)
	assert.NotEmpty(t, payload.AuthToken)
	assert.NotEmpty(t, payload.RefreshToken)
	assert.Equal(t, "a@x.com", payload.Username)
	assert.Equal(t, "USER", payload.Role)
	assert.True(t, payload.IsProfileComplete)

	stored, err := f.users.FindByUsername("a@x.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, authdomain.AuthMethodPassword, stored.AuthMethod)
	assert.NotEqual(t, "Password123", stored.Password)
	assert.True(t, repository.CheckPasswordHash("Password123", stored.Password))
	assert.False(t, stored.LastLogin.IsZero())
}

func TestRegisterDuplicateUsername(t *testing.T) {
	f := newAuthFixture(t)

	first := f.usecase.Register(validRegistration())
	require.True(t, first.Success)

	second := f.usecase.Register(validRegistration())
	assert.False(t, second.Success)
	assert.Equal(t, "Username/email already exists", second.ErrorMessage)

	// The first user is unaffected.
	stored, err := f.users.FindByUsername("a@x.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, repository.CheckPasswordHash("Password123", stored.Password))
}

func TestRegisterValidation(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*authdto.RegisterRequest)
		message string
	}{
		{"short password", func(r *authdto.RegisterRequest) { r.Password = "Pw1" },
			"Password must be at least 8 characters long and contain at least 2 digits"},
		{"one digit", func(r *authdto.RegisterRequest) { r.Password = "Password1" },
			"Password must be at least 8 characters long and contain at least 2 digits"},
		{"future dob", func(r *authdto.RegisterRequest) { r.DOB = "2999-01-01" },
			"Date of birth cannot be in the future"},
		{"malformed dob", func(r *authdto.RegisterRequest) { r.DOB = "01/01/1990" },
			"Invalid date of birth"},
		{"bad email", func(r *authdto.RegisterRequest) { r.Username = "not-an-email" },
			"Invalid email address"},
		{"short first name", func(r *authdto.RegisterRequest) { r.FirstName = "J" },
			"First name must be at least 2 characters long"},
		{"short last name", func(r *authdto.RegisterRequest) { r.LastName = "D" },
			"Last name must be at least 2 characters long"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newAuthFixture(t)
			req := validRegistration()
			tc.mutate(req)

			res := f.usecase.Register(req)
			assert.False(t, res.Success)
			assert.Equal(t, tc.message, res.ErrorMessage)
		})
	}
}

func TestValidPassword(t *testing.T) {
	assert.True(t, validPassword("Password123"))
	assert.True(t, validPassword("12abcdef"))
	assert.False(t, validPassword("Pass12"))     // too short
	assert.False(t, validPassword("Password1"))  // one digit
	assert.False(t, validPassword("Passwords!")) // no digits
}

func TestLogin(t *testing.T) {
	f := newAuthFixture(t)
	require.True(t, f.usecase.Register(validRegistration()).Success)

	res := f.usecase.Login(&authdto.LoginRequest{Username: "a@x.com", Password: "Password123"})
	require.True(t, res.Success, res.ErrorMessage)
	payload := res.Data.(*authdto.AuthenticationResponse)
	assert.NotEmpty(t, payload.AuthToken)
	assert.NotEmpty(t, payload.RefreshToken)
	assert.True(t, payload.IsProfileComplete)
}

func TestLoginWrongPassword(t *testing.T) {
	f := newAuthFixture(t)
	require.True(t, f.usecase.Register(validRegistration()).Success)

	res := f.usecase.Login(&authdto.LoginRequest{Username: "a@x.com", Password: "wrong1234"})
	assert.False(t, res.Success)
	assert.Equal(t, "Invalid username or password", res.ErrorMessage)
	assert.Nil(t, res.Data)
}

func TestLoginUnknownAccountUsesSameMessage(t *testing.T) {
	f := newAuthFixture(t)

	res := f.usecase.Login(&authdto.LoginRequest{Username: "ghost@x.com", Password: "whatever12"})
	assert.False(t, res.Success)
	assert.Equal(t, "Invalid username or password", res.ErrorMessage)
}

func TestRefresh(t *testing.T) {
	f := newAuthFixture(t)
	reg := f.usecase.Register(validRegistration())
	require.True(t, reg.Success)
	payload := reg.Data.(*authdto.AuthenticationResponse)

	res := f.usecase.Refresh(payload.UserID, payload.RefreshToken)
	require.True(t, res.Success, res.ErrorMessage)
	refreshed := res.Data.(*authdto.AuthenticationResponse)
	assert.NotEmpty(t, refreshed.AuthToken)
	assert.NotEmpty(t, refreshed.RefreshToken)
	assert.Equal(t, "a@x.com", refreshed.Username)
}

func TestRefreshWrongToken(t *testing.T) {
	f := newAuthFixture(t)
	reg := f.usecase.Register(validRegistration())
	require.True(t, reg.Success)
	payload := reg.Data.(*authdto.AuthenticationResponse)

	res := f.usecase.Refresh(payload.UserID, "wrongToken")
	assert.False(t, res.Success)
	assert.Equal(t, "Invalid refresh token", res.ErrorMessage)
}

func TestRefreshUnknownUser(t *testing.T) {
	f := newAuthFixture(t)

	res := f.usecase.Refresh("no-such-id", "whatever")
	assert.False(t, res.Success)
	assert.Equal(t, "Invalid account details", res.ErrorMessage)
}

func TestRefreshIncompleteProfile(t *testing.T) {
	f := newAuthFixture(t)
	reg := f.usecase.Register(validRegistration())
	require.True(t, reg.Success)
	payload := reg.Data.(*authdto.AuthenticationResponse)

	user, err := f.users.FindByID(payload.UserID)
	require.NoError(t, err)
	user.IsProfileComplete = false
	require.NoError(t, f.users.Update(user))

	res := f.usecase.Refresh(payload.UserID, payload.RefreshToken)
	assert.False(t, res.Success)
	assert.Equal(t, "Please complete your profile", res.ErrorMessage)
}

func TestGetUser(t *testing.T) {
	f := newAuthFixture(t)
	reg := f.usecase.Register(validRegistration())
	require.True(t, reg.Success)
	payload := reg.Data.(*authdto.AuthenticationResponse)

	res := f.usecase.GetUser(payload.AuthToken)
	require.True(t, res.Success, res.ErrorMessage)
	profile := res.Data.(*authdto.UserResponse)
	assert.Equal(t, "a@x.com", profile.Username)
	assert.Equal(t, payload.AuthToken, profile.AuthToken)
	assert.Equal(t, "John", profile.FirstName)
}

func TestGetUserMalformedToken(t *testing.T) {
	f := newAuthFixture(t)

	res := f.usecase.GetUser("garbage")
	assert.False(t, res.Success)
	assert.Equal(t, msgUnexpected, res.ErrorMessage)
}

func TestForgotPassword(t *testing.T) {
	f := newAuthFixture(t)
	require.True(t, f.usecase.Register(validRegistration()).Success)

	res := f.usecase.ForgotPassword("a@x.com")
	assert.True(t, res.Success)
	assert.Equal(t, []string{"a@x.com"}, f.notifier.sent)

	res = f.usecase.ForgotPassword("ghost@x.com")
	assert.False(t, res.Success)
	assert.Equal(t, "Invalid account details", res.ErrorMessage)
	assert.Len(t, f.notifier.sent, 1)
}

func TestResetPassword(t *testing.T) {
	f := newAuthFixture(t)
	require.True(t, f.usecase.Register(validRegistration()).Success)

	res := f.usecase.ResetPassword(&authdto.ResetPasswordRequest{
		Email: "a@x.com", Password: "NewPass99", PasswordConfirm: "Different99",
	})
	assert.False(t, res.Success)
	assert.Equal(t, "Passwords do not match", res.ErrorMessage)

	res = f.usecase.ResetPassword(&authdto.ResetPasswordRequest{
		Email: "a@x.com", Password: "NewPass99", PasswordConfirm: "NewPass99",
	})
	require.True(t, res.Success)

	login := f.usecase.Login(&authdto.LoginRequest{Username: "a@x.com", Password: "NewPass99"})
	assert.True(t, login.Success)
}

func TestAuthenticateGoogleCreatesThenReuses(t *testing.T) {
	f := newAuthFixture(t)

	first := f.usecase.AuthenticateGoogle("g@x.com", "Grace", "Hopper")
	require.True(t, first.Success, first.ErrorMessage)
	created, err := f.users.FindByUsername("g@x.com")
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, authdomain.AuthMethodGoogle, created.AuthMethod)
	assert.True(t, created.IsProfileComplete)
	assert.Equal(t, authdomain.RoleUser, created.Role)
	firstLogin := created.LastLogin

	time.Sleep(2 * time.Millisecond)
	second := f.usecase.AuthenticateGoogle("g@x.com", "Grace", "Hopper")
	require.True(t, second.Success)

	again, err := f.users.FindByUsername("g@x.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)
	assert.True(t, again.LastLogin.After(firstLogin))
	assert.Len(t, f.users.byID, 1)
}

func TestFederatedPasswordIsUnusable(t *testing.T) {
	f := newAuthFixture(t)
	require.True(t, f.usecase.AuthenticateGoogle("g@x.com", "Grace", "Hopper").Success)

	res := f.usecase.Login(&authdto.LoginRequest{Username: "g@x.com", Password: "anything123"})
	assert.False(t, res.Success)
	assert.Equal(t, "Invalid username or password", res.ErrorMessage)
}

func TestGetUserByTokenAndIsAuthorized(t *testing.T) {
	f := newAuthFixture(t)
	reg := f.usecase.Register(validRegistration())
	require.True(t, reg.Success)
	payload := reg.Data.(*authdto.AuthenticationResponse)

	user, err := f.usecase.GetUserByToken("Bearer " + payload.AuthToken)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, payload.UserID, user.ID)

	assert.True(t, f.usecase.IsAuthorized(user, user.ID))
	assert.False(t, f.usecase.IsAuthorized(user, "someone-else"))
	assert.False(t, f.usecase.IsAuthorized(nil, user.ID))

	_, err = f.usecase.GetUserByToken("Bearer tampered")
	assert.Error(t, err)
}

func TestEndToEndScenario(t *testing.T) {
	f := newAuthFixture(t)

	reg := f.usecase.Register(validRegistration())
	require.True(t, reg.Success)
	payload := reg.Data.(*authdto.AuthenticationResponse)
	assert.NotEmpty(t, payload.AuthToken)
	assert.NotEmpty(t, payload.RefreshToken)

	login := f.usecase.Login(&authdto.LoginRequest{Username: "a@x.com", Password: "Password123"})
	require.True(t, login.Success)

	bad := f.usecase.Login(&authdto.LoginRequest{Username: "a@x.com", Password: "wrong1234"})
	assert.Equal(t, "Invalid username or password", bad.ErrorMessage)

	refresh := f.usecase.Refresh(payload.UserID, "wrongToken")
	assert.Equal(t, "Invalid refresh token", refresh.ErrorMessage)
}
