package user

import (
	"strings"
	"time"
)

type User struct {
	id           int64
	email        Email
	passwordHash string
	firstName    string
	lastName     string
	age          *int32
	role         Role
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser builds an unsaved user; the id is assigned by the store.
func NewUser(email Email, passwordHash string, name Name, age *int32, role Role) *User {
	return &User{
		email:        email,
		passwordHash: passwordHash,
		firstName:    name.First(),
		lastName:     name.Last(),
		age:          age,
		role:         role,
		isActive:     true,
	}
}

func (u *User) ID() int64             { return u.id }
func (u *User) Email() Email          { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) FirstName() string     { return u.firstName }
func (u *User) LastName() string      { return u.lastName }
func (u *User) Age() *int32           { return u.age }
func (u *User) Role() Role            { return u.role }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }

// DisplayName joins first and last name.
func (u *User) DisplayName() string {
	return strings.TrimSpace(u.firstName + " " + u.lastName)
}
