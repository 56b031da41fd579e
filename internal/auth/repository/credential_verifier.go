package repository

import "errors"

// ErrBadCredentials is returned on any username/password mismatch. The same
// error covers unknown accounts to avoid user enumeration.
var ErrBadCredentials = errors.New("invalid username or password")

// CredentialVerifier checks a username/password pair against stored hashes.
type CredentialVerifier interface {
	Verify(username, password string) error
}

type credentialVerifier struct {
	users UserRepository
}

func NewCredentialVerifier(users UserRepository) CredentialVerifier {
	return &credentialVerifier{users: users}
}

func (v *credentialVerifier) Verify(username, password string) error {
	user, err := v.users.FindByUsername(username)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrBadCredentials
	}
	if !CheckPasswordHash(password, user.Password) {
		return ErrBadCredentials
	}
	return nil
}
