//go:build unit || e2e

package builder

import (
	"time"

	"swim-academy-api/internal/domain/user"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	DisplayName  string
	Role         user.Role
	Gender       user.Gender
	Phone        string
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "member@example.com",
		PasswordHash: "$2a$10$hashedhashedhashedhashedhashedhash",
		DisplayName:  "Test Member",
		Role:         user.RoleMember,
		Gender:       user.GenderMale,
		Phone:        "010-0000-0000",
		IsActive:     true,
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

func (b *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	return user.ReconstructUser(
		b.ID, email, b.PasswordHash, b.DisplayName,
		b.Role, b.Gender, b.Phone, b.IsActive, time.Now(),
	), nil
}
