package usecase

import (
	"context"
	"errors"

	"swim-academy-api/internal/domain/user"
	"swim-academy-api/internal/pkg/jwt"
	"swim-academy-api/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrTokenGeneration    = errors.New("token generation failed")
	ErrTokenValidation    = errors.New("token validation failed")
)

type AuthUseCase interface {
	Login(ctx context.Context, email, rawPassword string) (string, *user.User, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*user.User, error)
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type authUseCaseImpl struct {
	users      UserFinder
	jwtService *jwt.Service
}

// UserFinder is the pool-bound read access the auth flow needs.
type UserFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
}

func NewAuthUseCase(users UserFinder, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		users:      users,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, email, rawPassword string) (string, *user.User, error) {
	u, err := a.users.FindByEmail(ctx, email)
	if err != nil || u == nil {
		return "", nil, ErrInvalidCredentials
	}
	if !u.IsActive() {
		return "", nil, ErrUserInactive
	}
	if err := password.ComparePassword(u.PasswordHash(), rawPassword); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(u.ID(), u.Role())
	if err != nil {
		return "", nil, ErrTokenGeneration
	}
	return token, u, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	u, err := a.users.FindByID(ctx, userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	if !u.IsActive() {
		return nil, ErrUserInactive
	}
	return u, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	role := user.Role(claims.Role)
	if !role.IsValid() {
		return uuid.Nil, "", ErrTokenValidation
	}
	return claims.UserID, role, nil
}
