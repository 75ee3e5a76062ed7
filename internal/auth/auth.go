// Package auth implements the placeholder login check. A single admin
// account comes from configuration; there are no sessions, tokens or roles
// behind it, it only gates the UI's login screen.
package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Verifier checks a username/password pair against the configured admin
// account. The password is hashed once at construction so the plaintext is
// not kept around.
type Verifier struct {
	username     string
	passwordHash []byte
}

// NewVerifier creates a verifier for the configured admin credentials.
func NewVerifier(username, password string) (*Verifier, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Verifier{username: username, passwordHash: hash}, nil
}

// Verify returns nil when the credentials match the admin account.
func (v *Verifier) Verify(username, password string) error {
	if username != v.username {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(v.passwordHash, []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// Username returns the admin account name for the login acknowledgement.
func (v *Verifier) Username() string {
	return v.username
}
