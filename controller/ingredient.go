package controller

import (
	"context"
	"errors"
	"strings"

	"kitchenops/entity"
	"kitchenops/repository"
)

// ErrNameRequired rejects blank names on the simple name-only entities.
var ErrNameRequired = errors.New("name is required")

type IngredientController interface {
	ListIngredients(ctx context.Context) ([]entity.Ingredient, error)
	CreateIngredient(ctx context.Context, name string) (*entity.Ingredient, error)
	UpdateIngredient(ctx context.Context, id uint, name string) error
	DeleteIngredient(ctx context.Context, id uint) error
}

type ingredientController struct {
	ingredientRepository repository.IngredientRepository
}

func NewIngredientController(ingredientRepository *repository.IngredientRepository) IngredientController {
	return &ingredientController{
		ingredientRepository: *ingredientRepository,
	}
}

// ListIngredients retrieves all ingredients ordered by name.
func (c *ingredientController) ListIngredients(ctx context.Context) ([]entity.Ingredient, error) {
	return c.ingredientRepository.ListIngredients(ctx)
}

// CreateIngredient adds a new ingredient after trimming and checking the name.
func (c *ingredientController) CreateIngredient(ctx context.Context, name string) (*entity.Ingredient, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	ingredient := entity.Ingredient{Name: name}
	if err := c.ingredientRepository.CreateIngredient(ctx, &ingredient); err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// UpdateIngredient renames an existing ingredient.
func (c *ingredientController) UpdateIngredient(ctx context.Context, id uint, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}
	return c.ingredientRepository.UpdateIngredient(ctx, id, name)
}

// DeleteIngredient removes an ingredient by ID.
func (c *ingredientController) DeleteIngredient(ctx context.Context, id uint) error {
	return c.ingredientRepository.DeleteIngredient(ctx, id)
}
