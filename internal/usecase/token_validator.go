package usecase

import (
	"bikepacking-api/internal/domain/user"
	"bikepacking-api/internal/pkg/jwt"
)

// Principal is the authenticated caller extracted from a token.
type Principal struct {
	UserID int64
	Email  string
	Role   user.Role
}

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (*Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (*Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, jwt.ErrInvalidToken
	}

	return &Principal{UserID: claims.UserID, Email: claims.Email, Role: role}, nil
}
