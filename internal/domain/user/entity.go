package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmail  = errors.New("invalid email")
	ErrInvalidRole   = errors.New("invalid role")
	ErrInvalidGender = errors.New("invalid gender")
)

type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	v := strings.TrimSpace(value)
	if v == "" || !strings.Contains(v, "@") {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: v}, nil
}

func (e Email) String() string {
	return e.value
}

type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	displayName  string
	role         Role
	gender       Gender
	phone        string
	isActive     bool
	createdAt    time.Time
}

func NewUser(email Email, passwordHash, displayName string, role Role, gender Gender, phone string) (*User, error) {
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	if !gender.IsValid() {
		return nil, ErrInvalidGender
	}
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		displayName:  displayName,
		role:         role,
		gender:       gender,
		phone:        phone,
		isActive:     true,
	}, nil
}

func ReconstructUser(
	id uuid.UUID,
	email Email,
	passwordHash, displayName string,
	role Role,
	gender Gender,
	phone string,
	isActive bool,
	createdAt time.Time,
) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		displayName:  displayName,
		role:         role,
		gender:       gender,
		phone:        phone,
		isActive:     isActive,
		createdAt:    createdAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) DisplayName() string  { return u.displayName }
func (u *User) Role() Role           { return u.role }
func (u *User) Gender() Gender       { return u.gender }
func (u *User) Phone() string        { return u.phone }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }
