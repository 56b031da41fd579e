package token

import (
	"errors"
	"time"

	authdomain "parkhub-backend/internal/auth/domain"
	"parkhub-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken indicates the token failed signature, shape or expiry checks.
var ErrInvalidToken = errors.New("invalid token")

// Claims carried by access tokens. Refresh tokens carry only registered
// claims plus a token_id distinguishing each refresh cycle.
type Claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Service signs and verifies the compact tokens used for API access.
type Service struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		secret:     []byte(cfg.JWTSecret),
		accessTTL:  cfg.JWTAccessExpiry,
		refreshTTL: cfg.JWTRefreshExpiry,
		now:        time.Now,
	}
}

// WithClock overrides the time source; used by tests.
func (s *Service) WithClock(fn func() time.Time) *Service {
	s.now = fn
	return s
}

// GenerateAccessToken signs a short-lived token asserting the user's
// identity and role.
func (s *Service) GenerateAccessToken(user *authdomain.User) (string, error) {
	now := s.now()
	claims := Claims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// GenerateRefreshToken signs a longer-lived token identifying a refresh
// cycle. It is never accepted for API authorization.
func (s *Service) GenerateRefreshToken(username string) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":      username,
		"token_id": uuid.New().String(),
		"iat":      now.Unix(),
		"exp":      now.Add(s.refreshTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ExtractUsername verifies the token and returns its subject. Callers must
// strip any "Bearer " prefix before calling.
func (s *Service) ExtractUsername(tokenString string) (string, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// ExtractClaims verifies the token and returns its full claim set.
func (s *Service) ExtractClaims(tokenString string) (*Claims, error) {
	return s.parse(tokenString)
}

func (s *Service) parse(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
