package controller

import (
	"context"
	"errors"
	"strings"

	"kitchenops/entity"
	"kitchenops/repository"
	"kitchenops/service"
)

var (
	// ErrUnknownRole rejects roles outside the admin/user pair.
	ErrUnknownRole = errors.New("unknown role")
	// ErrUnknownGrant rejects (resource, action) pairs outside the fixed
	// catalogs.
	ErrUnknownGrant = errors.New("unknown resource or action")
	// ErrEmailRequired rejects user creation with a blank email.
	ErrEmailRequired = errors.New("email is required")
)

type UserController interface {
	ListUsers(ctx context.Context) ([]entity.UserRole, error)
	CreateUser(ctx context.Context, req *entity.CreateUserRequest) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	SetRole(ctx context.Context, userID uint, role string) error
	ListPermissions(ctx context.Context, userID uint) ([]entity.Permission, error)
	GrantPermission(ctx context.Context, userID uint, resource, action string) (*entity.Permission, error)
	RevokePermission(ctx context.Context, permissionID uint) error
}

type userController struct {
	userRepository       repository.UserRepository
	permissionRepository repository.PermissionRepository
}

func NewUserController(userRepository *repository.UserRepository, permissionRepository *repository.PermissionRepository) UserController {
	return &userController{
		userRepository:       *userRepository,
		permissionRepository: *permissionRepository,
	}
}

// ListUsers returns every user with their role and email.
func (c *userController) ListUsers(ctx context.Context) ([]entity.UserRole, error) {
	return c.userRepository.ListUsersWithRoles(ctx)
}

// CreateUser registers a new user with a hashed password and a role row.
func (c *userController) CreateUser(ctx context.Context, req *entity.CreateUserRequest) (*entity.User, error) {
	role := req.Role
	if role == "" {
		role = service.RoleUser
	}
	if !service.ValidRole(role) {
		return nil, ErrUnknownRole
	}

	user := entity.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	}
	if user.Email == "" {
		return nil, ErrEmailRequired
	}
	if err := c.userRepository.CreateUser(ctx, &user, role); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail fetches a single user by email.
func (c *userController) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return c.userRepository.GetUserByEmail(ctx, email)
}

// SetRole changes a user's role.
func (c *userController) SetRole(ctx context.Context, userID uint, role string) error {
	if !service.ValidRole(role) {
		return ErrUnknownRole
	}
	return c.userRepository.SetRole(ctx, userID, role)
}

// ListPermissions returns the explicit grants of one user. Admins hold
// everything implicitly, so their list is usually empty.
func (c *userController) ListPermissions(ctx context.Context, userID uint) ([]entity.Permission, error) {
	return c.permissionRepository.ListByUser(ctx, userID)
}

// GrantPermission adds one (resource, action) pair for a user after
// checking it against the fixed catalogs.
func (c *userController) GrantPermission(ctx context.Context, userID uint, resource, action string) (*entity.Permission, error) {
	if !service.ValidGrant(resource, action) {
		return nil, ErrUnknownGrant
	}
	return c.permissionRepository.Grant(ctx, userID, resource, action)
}

// RevokePermission deletes one grant by its ID.
func (c *userController) RevokePermission(ctx context.Context, permissionID uint) error {
	return c.permissionRepository.Revoke(ctx, permissionID)
}
