package controller

import (
	"context"

	"golang.org/x/sync/errgroup"

	"kitchenops/entity"
	"kitchenops/repository"
)

type StatsController interface {
	GetStats(ctx context.Context) (*entity.Stats, error)
}

type statsController struct {
	ingredientRepository repository.IngredientRepository
	recipeRepository     repository.RecipeRepository
	recipeTypeRepository repository.RecipeTypeRepository
	orderRepository      repository.OrderRepository
}

func NewStatsController(
	ingredientRepository *repository.IngredientRepository,
	recipeRepository *repository.RecipeRepository,
	recipeTypeRepository *repository.RecipeTypeRepository,
	orderRepository *repository.OrderRepository,
) StatsController {
	return &statsController{
		ingredientRepository: *ingredientRepository,
		recipeRepository:     *recipeRepository,
		recipeTypeRepository: *recipeTypeRepository,
		orderRepository:      *orderRepository,
	}
}

// GetStats counts the four dashboard figures concurrently. Recipes are
// counted as distinct names, not stored lines.
func (c *statsController) GetStats(ctx context.Context) (*entity.Stats, error) {
	var stats entity.Stats

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := c.ingredientRepository.CountIngredients(ctx)
		stats.Ingredients = n
		return err
	})
	g.Go(func() error {
		n, err := c.recipeRepository.CountDistinctNames(ctx)
		stats.Recipes = n
		return err
	})
	g.Go(func() error {
		n, err := c.recipeTypeRepository.CountRecipeTypes(ctx)
		stats.RecipeTypes = n
		return err
	})
	g.Go(func() error {
		n, err := c.orderRepository.CountOrders(ctx)
		stats.Orders = n
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}
