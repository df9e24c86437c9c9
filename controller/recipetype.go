package controller

import (
	"context"
	"strings"

	"kitchenops/entity"
	"kitchenops/repository"
)

type RecipeTypeController interface {
	ListRecipeTypes(ctx context.Context) ([]entity.RecipeType, error)
	CreateRecipeType(ctx context.Context, name string) (*entity.RecipeType, error)
	UpdateRecipeType(ctx context.Context, id uint, name string) error
	DeleteRecipeType(ctx context.Context, id uint) error
}

type recipeTypeController struct {
	recipeTypeRepository repository.RecipeTypeRepository
}

func NewRecipeTypeController(recipeTypeRepository *repository.RecipeTypeRepository) RecipeTypeController {
	return &recipeTypeController{
		recipeTypeRepository: *recipeTypeRepository,
	}
}

// ListRecipeTypes retrieves all recipe types ordered by name.
func (c *recipeTypeController) ListRecipeTypes(ctx context.Context) ([]entity.RecipeType, error) {
	return c.recipeTypeRepository.ListRecipeTypes(ctx)
}

// CreateRecipeType adds a new recipe type after trimming and checking the name.
func (c *recipeTypeController) CreateRecipeType(ctx context.Context, name string) (*entity.RecipeType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	recipeType := entity.RecipeType{Name: name}
	if err := c.recipeTypeRepository.CreateRecipeType(ctx, &recipeType); err != nil {
		return nil, err
	}
	return &recipeType, nil
}

// UpdateRecipeType renames an existing recipe type.
func (c *recipeTypeController) UpdateRecipeType(ctx context.Context, id uint, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}
	return c.recipeTypeRepository.UpdateRecipeType(ctx, id, name)
}

// DeleteRecipeType removes a recipe type by ID.
func (c *recipeTypeController) DeleteRecipeType(ctx context.Context, id uint) error {
	return c.recipeTypeRepository.DeleteRecipeType(ctx, id)
}
