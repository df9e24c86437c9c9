package repository

import (
	"context"

	"kitchenops/entity"
	"kitchenops/mapper"
	"kitchenops/model"

	"gorm.io/gorm"
)

// UserRepository is a struct that holds the database connection.
type UserRepository struct {
	DB *gorm.DB
}

// NewUserRepository creates and returns a new UserRepository.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		DB: db,
	}
}

// CreateUser creates a new user together with its role row.
func (r *UserRepository) CreateUser(ctx context.Context, userEntity *entity.User, role string) error {
	userModel := mapper.UserEntityToModel(userEntity)
	if userModel == nil {
		return gorm.ErrInvalidData
	}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(userModel).Error; err != nil {
			return err
		}
		return tx.Create(&model.UserRole{UserID: userModel.ID, Role: role}).Error
	})
	if err != nil {
		return err
	}
	userEntity.ID = userModel.ID
	return nil
}

// GetUserByID fetches a user from the database by ID.
func (r *UserRepository) GetUserByID(ctx context.Context, id uint) (*entity.User, error) {
	var userModel model.User
	if err := r.DB.WithContext(ctx).First(&userModel, id).Error; err != nil {
		return nil, err
	}
	return mapper.UserModelToEntity(&userModel), nil
}

// GetUserByEmail fetches a user from the database by email.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&userModel).Error; err != nil {
		return nil, err
	}
	return mapper.UserModelToEntity(&userModel), nil
}

// GetRole returns the role of a user, defaulting to "user" when no role
// row exists yet.
func (r *UserRepository) GetRole(ctx context.Context, userID uint) (string, error) {
	var roleModel model.UserRole
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&roleModel).Error
	if err == gorm.ErrRecordNotFound {
		return "user", nil
	}
	if err != nil {
		return "", err
	}
	return roleModel.Role, nil
}

// SetRole updates (or creates) the role row of a user.
func (r *UserRepository) SetRole(ctx context.Context, userID uint, role string) error {
	res := r.DB.WithContext(ctx).
		Model(&model.UserRole{}).
		Where("user_id = ?", userID).
		Update("role", role)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return r.DB.WithContext(ctx).Create(&model.UserRole{UserID: userID, Role: role}).Error
	}
	return nil
}

// ListUsersWithRoles returns every user's id, role, and email for the
// permissions screen.
func (r *UserRepository) ListUsersWithRoles(ctx context.Context) ([]entity.UserRole, error) {
	var rows []entity.UserRole
	err := r.DB.WithContext(ctx).
		Table("users").
		Select("users.id AS user_id, COALESCE(user_roles.role, 'user') AS role, users.email").
		Joins("LEFT JOIN user_roles ON user_roles.user_id = users.id").
		Order("users.email").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
