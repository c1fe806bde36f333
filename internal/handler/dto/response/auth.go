package response

import (
	"swim-academy-api/internal/domain/user"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	Gender      string    `json:"gender"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

func FromUser(u *user.User) UserResponse {
	return UserResponse{
		ID:          u.ID(),
		Email:       u.Email().String(),
		DisplayName: u.DisplayName(),
		Role:        u.Role().String(),
		Gender:      u.Gender().String(),
	}
}
