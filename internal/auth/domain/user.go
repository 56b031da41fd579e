package domain

import "time"

// Role is the closed set of account roles.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// IsAdmin reports whether the role grants administrative access.
func (r Role) IsAdmin() bool {
	switch r {
	case RoleAdmin:
		return true
	default:
		return false
	}
}

// AuthMethod values stored on a user record.
const (
	AuthMethodPassword = "password"
	AuthMethodGoogle   = "google"
)

type User struct {
	ID                string     `json:"id" gorm:"primaryKey"`
	Username          string     `json:"username" gorm:"uniqueIndex;size:45;not null"`
	Password          string     `json:"-" gorm:"not null"` // Never return password in JSON
	FirstName         string     `json:"firstName" gorm:"size:45"`
	LastName          string     `json:"lastName" gorm:"size:45"`
	DOB               *time.Time `json:"dob"`
	Gender            string     `json:"gender" gorm:"size:15"`
	Role              Role       `json:"role" gorm:"size:15"`
	IsProfileComplete bool       `json:"isProfileComplete"`
	AuthMethod        string     `json:"authMethod" gorm:"size:15"`
	CreatedAt         time.Time  `json:"createdAt"`
	LastLogin         time.Time  `json:"lastLogin"`
}

func (User) TableName() string {
	return "users"
}

type RefreshToken struct {
	Token      string    `json:"token" gorm:"primaryKey"`
	UserID     string    `json:"userId" gorm:"index"`
	ExpiryDate time.Time `json:"expiryDate"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

// Expired reports whether the stored token is past its expiry instant.
func (t *RefreshToken) Expired(now time.Time) bool {
	return t.ExpiryDate.Before(now)
}
