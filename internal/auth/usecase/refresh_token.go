package usecase

import (
	"errors"
	"time"

	authdomain "parkhub-backend/internal/auth/domain"
	"parkhub-backend/internal/auth/repository"
	"parkhub-backend/pkg/config"
)

// ErrExpiredToken signals a stored refresh token past its expiry. The row is
// already deleted when this is returned.
var ErrExpiredToken = errors.New("refresh token is expired, please make a new login")

// RefreshTokenService enforces the one-valid-refresh-token-per-user policy.
type RefreshTokenService struct {
	repo repository.RefreshTokenRepository
	ttl  time.Duration
	now  func() time.Time
}

func NewRefreshTokenService(repo repository.RefreshTokenRepository, cfg *config.Config) *RefreshTokenService {
	return &RefreshTokenService{
		repo: repo,
		ttl:  cfg.RefreshTokenExpiry,
		now:  time.Now,
	}
}

// WithClock overrides the time source; used by tests.
func (s *RefreshTokenService) WithClock(fn func() time.Time) *RefreshTokenService {
	s.now = fn
	return s
}

// SaveToken stores a refresh token for the user. While a non-expired token
// exists it stays authoritative and the new value is discarded; an expired
// token is deleted before the new one is inserted.
func (s *RefreshTokenService) SaveToken(userID, tokenValue string) error {
	existing, err := s.repo.FindByUserID(userID)
	if err != nil {
		return err
	}
	if existing != nil {
		if !existing.Expired(s.now()) {
			return nil
		}
		if err := s.repo.Delete(existing); err != nil {
			return err
		}
	}
	return s.repo.Save(&authdomain.RefreshToken{
		Token:      tokenValue,
		UserID:     userID,
		ExpiryDate: s.now().Add(s.ttl),
	})
}

// ValidateToken reports whether the presented value exactly matches the
// user's stored, non-expired refresh token. An expired row is deleted as a
// side effect.
func (s *RefreshTokenService) ValidateToken(userID, presented string) bool {
	stored, err := s.repo.FindByUserID(userID)
	if err != nil || stored == nil {
		return false
	}
	if err := s.VerifyExpiration(stored); err != nil {
		return false
	}
	return stored.Token == presented
}

// VerifyExpiration deletes the row and returns ErrExpiredToken when the
// token is past its expiry.
func (s *RefreshTokenService) VerifyExpiration(token *authdomain.RefreshToken) error {
	if token.Expired(s.now()) {
		if err := s.repo.Delete(token); err != nil {
			return err
		}
		return ErrExpiredToken
	}
	return nil
}

func (s *RefreshTokenService) FindByUserID(userID string) (*authdomain.RefreshToken, error) {
	return s.repo.FindByUserID(userID)
}

func (s *RefreshTokenService) FindByToken(tokenValue string) (*authdomain.RefreshToken, error) {
	return s.repo.FindByToken(tokenValue)
}
