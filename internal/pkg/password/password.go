package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"bikepacking-api/internal/pkg/errs"
)

var (
	ErrHashingFailed = errs.New("password hashing failed")
	ErrMismatch      = errs.New("password does not match")
	ErrEmpty         = errs.New("password is empty")
)

// Cost is the bcrypt work factor. Tests lower it to bcrypt.MinCost.
var Cost = bcrypt.DefaultCost

func HashPassword(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmpty
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", errs.Mark(err, ErrHashingFailed)
	}
	return string(hashed), nil
}

// ComparePassword returns ErrMismatch for a wrong password and another error
// only when the stored hash itself is unusable.
func ComparePassword(hashed, plain string) error {
	if hashed == "" || plain == "" {
		return ErrEmpty
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return errs.Wrap(err, "compare password hash")
	}
}
