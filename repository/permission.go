package repository

import (
	"context"

	"kitchenops/entity"
	"kitchenops/mapper"
	"kitchenops/model"

	"gorm.io/gorm"
)

// PermissionRepository stores explicitly granted (resource, action) pairs.
type PermissionRepository struct {
	DB *gorm.DB
}

// NewPermissionRepository creates and returns a new PermissionRepository.
func NewPermissionRepository(db *gorm.DB) *PermissionRepository {
	return &PermissionRepository{
		DB: db,
	}
}

// ListByUser fetches the grants of one user.
func (r *PermissionRepository) ListByUser(ctx context.Context, userID uint) ([]entity.Permission, error) {
	var permModels []model.UserPermission
	if err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Find(&permModels).Error; err != nil {
		return nil, err
	}

	perms := make([]entity.Permission, 0, len(permModels))
	for i := range permModels {
		perms = append(perms, *mapper.PermissionModelToEntity(&permModels[i]))
	}
	return perms, nil
}

// Grant inserts one (resource, action) pair for a user.
func (r *PermissionRepository) Grant(ctx context.Context, userID uint, resource, action string) (*entity.Permission, error) {
	permModel := model.UserPermission{
		UserID:   userID,
		Resource: resource,
		Action:   action,
	}
	if err := r.DB.WithContext(ctx).Create(&permModel).Error; err != nil {
		return nil, err
	}
	return mapper.PermissionModelToEntity(&permModel), nil
}

// Revoke deletes one grant by its ID.
func (r *PermissionRepository) Revoke(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&model.UserPermission{}, id).Error
}
