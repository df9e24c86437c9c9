package controller

import (
	"context"
	"fmt"
	"strings"

	"kitchenops/entity"
	"kitchenops/logger"
	"kitchenops/repository"
	"kitchenops/service"

	"go.uber.org/zap"
)

type RecipeController interface {
	ListLines(ctx context.Context) ([]entity.RecipeLine, error)
	ListGrouped(ctx context.Context, search string) ([]entity.GroupedRecipe, error)
	RecipeNames(ctx context.Context) ([]string, error)
	SaveRecipe(ctx context.Context, originalName string, req *entity.SaveRecipeRequest) ([]entity.RecipeLine, error)
	DeleteRecipe(ctx context.Context, name string) error
}

type recipeController struct {
	recipeRepository     repository.RecipeRepository
	recipeTypeRepository repository.RecipeTypeRepository
}

func NewRecipeController(recipeRepository *repository.RecipeRepository, recipeTypeRepository *repository.RecipeTypeRepository) RecipeController {
	return &recipeController{
		recipeRepository:     *recipeRepository,
		recipeTypeRepository: *recipeTypeRepository,
	}
}

// ListLines retrieves every recipe line with its joined ingredient name.
func (c *recipeController) ListLines(ctx context.Context) ([]entity.RecipeLine, error) {
	return c.recipeRepository.ListLines(ctx)
}

// ListGrouped projects the flat line list into recipes: one group per
// distinct name, lines in stored order, optionally filtered by a
// case-insensitive name search. Recipes are never stored as rows, so the
// grouping is recomputed on every call.
func (c *recipeController) ListGrouped(ctx context.Context, search string) ([]entity.GroupedRecipe, error) {
	lines, err := c.recipeRepository.ListLines(ctx)
	if err != nil {
		return nil, err
	}
	types, err := c.recipeTypeRepository.ListRecipeTypes(ctx)
	if err != nil {
		return nil, err
	}

	typeNames := make(map[uint]string, len(types))
	for _, t := range types {
		typeNames[t.ID] = t.Name
	}

	// Lines arrive ordered by name, so groups come out name-ascending.
	grouped := make([]entity.GroupedRecipe, 0)
	index := make(map[string]int)
	for _, line := range lines {
		i, ok := index[line.Name]
		if !ok {
			group := entity.GroupedRecipe{
				Name:         line.Name,
				RecipeTypeID: line.RecipeTypeID,
			}
			if line.RecipeTypeID != nil {
				group.RecipeTypeName = typeNames[*line.RecipeTypeID]
			}
			i = len(grouped)
			index[line.Name] = i
			grouped = append(grouped, group)
		}
		grouped[i].Lines = append(grouped[i].Lines, line)
	}

	if q := strings.ToLower(strings.TrimSpace(search)); q != "" {
		filtered := grouped[:0]
		for _, g := range grouped {
			if strings.Contains(strings.ToLower(g.Name), q) {
				filtered = append(filtered, g)
			}
		}
		grouped = filtered
	}

	return grouped, nil
}

// RecipeNames returns the distinct recipe names for the order form.
func (c *recipeController) RecipeNames(ctx context.Context) ([]string, error) {
	return c.recipeRepository.DistinctNames(ctx)
}

// SaveRecipe reconciles the stored lines of the recipe named originalName
// with the edited set: one bulk delete of dropped lines, an update per
// surviving line, one bulk insert of new lines, in that order. The steps
// are not transactional; if one fails midway, already-applied deletes
// stand and the caller must refetch to see the true state. On success the
// reloaded line list is returned.
func (c *recipeController) SaveRecipe(ctx context.Context, originalName string, req *entity.SaveRecipeRequest) ([]entity.RecipeLine, error) {
	var original []entity.RecipeLine
	if originalName != "" {
		lines, err := c.recipeRepository.ListLinesByName(ctx, originalName)
		if err != nil {
			return nil, err
		}
		original = lines
	}

	plan, err := service.BuildReconcilePlan(original, req)
	if err != nil {
		return nil, err
	}

	if err := c.recipeRepository.DeleteLinesByIDs(ctx, plan.DeleteIDs); err != nil {
		return nil, fmt.Errorf("delete removed lines: %w", err)
	}
	for _, update := range plan.Updates {
		if err := c.recipeRepository.UpdateLine(ctx, update.ID, update.Payload); err != nil {
			logger.Error("recipe save failed midway, deletes already applied",
				zap.String("recipe", req.Name), zap.Uint("line_id", update.ID), zap.Error(err))
			return nil, fmt.Errorf("update line %d: %w", update.ID, err)
		}
	}
	if err := c.recipeRepository.InsertLines(ctx, plan.Inserts); err != nil {
		logger.Error("recipe save failed midway, deletes and updates already applied",
			zap.String("recipe", req.Name), zap.Error(err))
		return nil, fmt.Errorf("insert new lines: %w", err)
	}

	return c.recipeRepository.ListLinesByName(ctx, strings.TrimSpace(req.Name))
}

// DeleteRecipe removes every line of one recipe group with a single bulk
// delete.
func (c *recipeController) DeleteRecipe(ctx context.Context, name string) error {
	lines, err := c.recipeRepository.ListLinesByName(ctx, name)
	if err != nil {
		return err
	}
	ids := make([]uint, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ID)
	}
	return c.recipeRepository.DeleteLinesByIDs(ctx, ids)
}
