//go:build unit || e2e

package builder

import (
	reqdto "bikepacking-api/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:     "rider@example.com",
		Password:  "password123",
		FirstName: "Test",
		LastName:  "Rider",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildSignupDTO() reqdto.SignupRequest {
	return reqdto.SignupRequest{
		Email:     a.Email,
		Password:  a.Password,
		FirstName: a.FirstName,
		LastName:  a.LastName,
	}
}
