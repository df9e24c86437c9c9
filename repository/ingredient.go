package repository

import (
	"context"

	"kitchenops/entity"
	"kitchenops/mapper"
	"kitchenops/model"

	"gorm.io/gorm"
)

// IngredientRepository is a struct that holds the database connection.
type IngredientRepository struct {
	DB *gorm.DB
}

// NewIngredientRepository creates and returns a new IngredientRepository.
func NewIngredientRepository(db *gorm.DB) *IngredientRepository {
	return &IngredientRepository{
		DB: db,
	}
}

// ListIngredients fetches all ingredients ordered by name.
func (r *IngredientRepository) ListIngredients(ctx context.Context) ([]entity.Ingredient, error) {
	var ingredientModels []model.Ingredient
	if err := r.DB.WithContext(ctx).Order("name").Find(&ingredientModels).Error; err != nil {
		return nil, err
	}

	ingredients := make([]entity.Ingredient, 0, len(ingredientModels))
	for i := range ingredientModels {
		ingredients = append(ingredients, *mapper.IngredientModelToEntity(&ingredientModels[i]))
	}
	return ingredients, nil
}

// GetIngredientByID fetches an ingredient from the database by ID.
func (r *IngredientRepository) GetIngredientByID(ctx context.Context, id uint) (*entity.Ingredient, error) {
	var ingredientModel model.Ingredient
	if err := r.DB.WithContext(ctx).First(&ingredientModel, id).Error; err != nil {
		return nil, err
	}
	return mapper.IngredientModelToEntity(&ingredientModel), nil
}

// CreateIngredient creates a new ingredient in the database.
func (r *IngredientRepository) CreateIngredient(ctx context.Context, ingredientEntity *entity.Ingredient) error {
	ingredientModel := mapper.IngredientEntityToModel(ingredientEntity)
	if err := r.DB.WithContext(ctx).Create(ingredientModel).Error; err != nil {
		return err
	}
	ingredientEntity.ID = ingredientModel.ID
	ingredientEntity.CreatedAt = ingredientModel.CreatedAt
	return nil
}

// UpdateIngredient updates the name of an existing ingredient.
func (r *IngredientRepository) UpdateIngredient(ctx context.Context, id uint, name string) error {
	return r.DB.WithContext(ctx).
		Model(&model.Ingredient{}).
		Where("id = ?", id).
		Update("name", name).Error
}

// DeleteIngredient deletes an ingredient from the database by ID.
func (r *IngredientRepository) DeleteIngredient(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&model.Ingredient{}, id).Error
}

// CountIngredients returns the total number of ingredients.
func (r *IngredientRepository) CountIngredients(ctx context.Context) (int64, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&model.Ingredient{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
