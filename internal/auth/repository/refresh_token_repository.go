package repository

import (
	"errors"

	authdomain "parkhub-backend/internal/auth/domain"

	"gorm.io/gorm"
)

// refreshTokenRepository implements RefreshTokenRepository backed by GORM.
type refreshTokenRepository struct {
	db *gorm.DB
}

func NewRefreshTokenRepository(db *gorm.DB) RefreshTokenRepository {
	return &refreshTokenRepository{
		db: db,
	}
}

func (r *refreshTokenRepository) Save(token *authdomain.RefreshToken) error {
	return r.db.Create(token).Error
}

func (r *refreshTokenRepository) FindByUserID(userID string) (*authdomain.RefreshToken, error) {
	var token authdomain.RefreshToken
	err := r.db.Where("user_id = ?", userID).First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &token, nil
}

func (r *refreshTokenRepository) FindByToken(tokenValue string) (*authdomain.RefreshToken, error) {
	var token authdomain.RefreshToken
	err := r.db.Where("token = ?", tokenValue).First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &token, nil
}

func (r *refreshTokenRepository) Delete(token *authdomain.RefreshToken) error {
	return r.db.Where("token = ?", token.Token).Delete(&authdomain.RefreshToken{}).Error
}
