package repository

import (
	"context"

	"kitchenops/entity"
	"kitchenops/mapper"
	"kitchenops/model"

	"gorm.io/gorm"
)

// RecipeTypeRepository is a struct that holds the database connection.
type RecipeTypeRepository struct {
	DB *gorm.DB
}

// NewRecipeTypeRepository creates and returns a new RecipeTypeRepository.
func NewRecipeTypeRepository(db *gorm.DB) *RecipeTypeRepository {
	return &RecipeTypeRepository{
		DB: db,
	}
}

// ListRecipeTypes fetches all recipe types ordered by name.
func (r *RecipeTypeRepository) ListRecipeTypes(ctx context.Context) ([]entity.RecipeType, error) {
	var typeModels []model.RecipeType
	if err := r.DB.WithContext(ctx).Order("name").Find(&typeModels).Error; err != nil {
		return nil, err
	}

	types := make([]entity.RecipeType, 0, len(typeModels))
	for i := range typeModels {
		types = append(types, *mapper.RecipeTypeModelToEntity(&typeModels[i]))
	}
	return types, nil
}

// CreateRecipeType creates a new recipe type in the database.
func (r *RecipeTypeRepository) CreateRecipeType(ctx context.Context, typeEntity *entity.RecipeType) error {
	typeModel := mapper.RecipeTypeEntityToModel(typeEntity)
	if err := r.DB.WithContext(ctx).Create(typeModel).Error; err != nil {
		return err
	}
	typeEntity.ID = typeModel.ID
	return nil
}

// UpdateRecipeType updates the name of an existing recipe type.
func (r *RecipeTypeRepository) UpdateRecipeType(ctx context.Context, id uint, name string) error {
	return r.DB.WithContext(ctx).
		Model(&model.RecipeType{}).
		Where("id = ?", id).
		Update("name", name).Error
}

// DeleteRecipeType deletes a recipe type from the database by ID.
func (r *RecipeTypeRepository) DeleteRecipeType(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&model.RecipeType{}, id).Error
}

// CountRecipeTypes returns the total number of recipe types.
func (r *RecipeTypeRepository) CountRecipeTypes(ctx context.Context) (int64, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&model.RecipeType{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
