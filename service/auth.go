package service

import (
	"context"
	"errors"

	"kitchenops/entity"
	"kitchenops/util"
)

// ErrInvalidCredentials is returned for both unknown emails and wrong
// passwords, so a caller cannot probe which one failed.
var ErrInvalidCredentials = errors.New("invalid email or password")

// UserStore is the slice of user persistence the auth service needs.
type UserStore interface {
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetRole(ctx context.Context, userID uint) (string, error)
}

// AuthService authenticates users and issues tokens.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
}

type authService struct {
	users        UserStore
	jwtSecretKey []byte
}

// NewAuthService creates and returns a new AuthService.
func NewAuthService(users UserStore, config *entity.Config) AuthService {
	return &authService{
		users:        users,
		jwtSecretKey: config.JWTSecretKey,
	}
}

// Login handles user authentication and returns the user plus a signed
// token carrying their role.
func (a *authService) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := a.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !util.CheckPasswordHash(password, user.Password) {
		return nil, "", ErrInvalidCredentials
	}

	role, err := a.users.GetRole(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}

	token, err := util.GenerateJWT(user.ID, user.Email, role, a.jwtSecretKey)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}
