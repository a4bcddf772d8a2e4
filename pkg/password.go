package pkg

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores input past 72 bytes
const maxPasswordLen = 72

var ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

func HashPassword(p string) (string, error) {
	if len(p) > maxPasswordLen {
		return "", ErrPasswordTooLong
	}
	b, err := bcrypt.GenerateFromPassword([]byte(p), bcrypt.DefaultCost)
	return string(b), err
}

// ComparePassword returns nil when pw matches hash.
func ComparePassword(hash, pw string) error {
	if len(pw) > maxPasswordLen {
		return bcrypt.ErrMismatchedHashAndPassword
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw))
}
