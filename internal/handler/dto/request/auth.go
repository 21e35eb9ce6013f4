package request

import (
	"bikepacking-api/internal/domain/auth"
	"bikepacking-api/internal/domain/user"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (auth.Credentials, error) {
	return auth.ForLogin(r.Email, r.Password)
}

type SignupRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	Age       *int32 `json:"age,omitempty" binding:"omitempty,min=0,max=150"`
}

// CreateUserRequest is the admin variant of signup that may assign a role.
type CreateUserRequest struct {
	SignupRequest
	Role string `json:"role" binding:"omitempty,oneof=user admin"`
}

// Validated holds signup fields that passed domain validation.
type Validated struct {
	Credentials auth.Credentials
	Name        user.Name
	Age         *int32
	Role        user.Role
}

func (r *SignupRequest) ToDomain() (Validated, error) {
	creds, err := auth.ForSignup(r.Email, r.Password)
	if err != nil {
		return Validated{}, err
	}
	name, err := user.NewName(r.FirstName, r.LastName)
	if err != nil {
		return Validated{}, err
	}
	if err := user.ValidateAge(r.Age); err != nil {
		return Validated{}, err
	}
	return Validated{Credentials: creds, Name: name, Age: r.Age, Role: user.RoleUser}, nil
}

func (r *CreateUserRequest) ToDomain() (Validated, error) {
	v, err := r.SignupRequest.ToDomain()
	if err != nil {
		return Validated{}, err
	}
	if r.Role != "" {
		role, err := user.NewRole(r.Role)
		if err != nil {
			return Validated{}, err
		}
		v.Role = role
	}
	return v, nil
}
