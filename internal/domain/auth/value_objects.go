package auth

import (
	"errors"
	"strings"

	"bikepacking-api/internal/domain/user"
)

var ErrPasswordRequired = errors.New("password is required")

// Credentials pairs a normalized email with the submitted password.
type Credentials struct {
	email  user.Email
	secret string
}

// ForLogin requires only a non-empty password.
func ForLogin(email, password string) (Credentials, error) {
	e, err := user.NewEmail(email)
	if err != nil {
		return Credentials{}, err
	}
	if strings.TrimSpace(password) == "" {
		return Credentials{}, ErrPasswordRequired
	}
	return Credentials{email: e, secret: password}, nil
}

// ForSignup applies the password policy.
func ForSignup(email, password string) (Credentials, error) {
	e, err := user.NewEmail(email)
	if err != nil {
		return Credentials{}, err
	}
	p, err := user.NewPassword(password)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{email: e, secret: p.Value()}, nil
}

func (c Credentials) Email() user.Email { return c.email }

func (c Credentials) Secret() string { return c.secret }
