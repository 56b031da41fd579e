package repository

import authdomain "parkhub-backend/internal/auth/domain"

// UserRepository defines data access for user accounts.
type UserRepository interface {
	Create(user *authdomain.User) error
	FindByUsername(username string) (*authdomain.User, error)
	FindByID(id string) (*authdomain.User, error)
	Update(user *authdomain.User) error
	// Transaction runs fn against a repository bound to a single transaction.
	Transaction(fn func(tx UserRepository) error) error
}

// RefreshTokenRepository defines data access for stored refresh tokens.
type RefreshTokenRepository interface {
	Save(token *authdomain.RefreshToken) error
	FindByUserID(userID string) (*authdomain.RefreshToken, error)
	FindByToken(token string) (*authdomain.RefreshToken, error)
	Delete(token *authdomain.RefreshToken) error
}
