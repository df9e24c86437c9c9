package repository

import (
	"context"

	"kitchenops/entity"
	"kitchenops/model"
	"kitchenops/service"

	"gorm.io/gorm"
)

// RecipeRepository persists recipe lines. There is no recipe table: a
// recipe is the set of lines sharing a name, so every method here works on
// lines.
type RecipeRepository struct {
	DB *gorm.DB
}

// NewRecipeRepository creates and returns a new RecipeRepository.
func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{
		DB: db,
	}
}

// recipeLineRow is the scan target for line queries joined with the
// ingredient name.
type recipeLineRow struct {
	ID             uint
	Name           string
	RecipeTypeID   *uint
	IngredientID   uint
	QuantityBase   float64
	Unit           string
	IngredientName string
}

func (row *recipeLineRow) toEntity() entity.RecipeLine {
	return entity.RecipeLine{
		ID:             row.ID,
		Name:           row.Name,
		RecipeTypeID:   row.RecipeTypeID,
		IngredientID:   row.IngredientID,
		QuantityBase:   row.QuantityBase,
		Unit:           row.Unit,
		IngredientName: row.IngredientName,
	}
}

// ListLines fetches all recipe lines ordered by recipe name, each joined
// with its ingredient name.
func (r *RecipeRepository) ListLines(ctx context.Context) ([]entity.RecipeLine, error) {
	var rows []recipeLineRow
	err := r.DB.WithContext(ctx).
		Table("recipes").
		Select("recipes.id, recipes.name, recipes.recipe_type_id, recipes.ingredient_id, recipes.quantity_base, recipes.unit, ingredients.name AS ingredient_name").
		Joins("LEFT JOIN ingredients ON ingredients.id = recipes.ingredient_id").
		Order("recipes.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	lines := make([]entity.RecipeLine, 0, len(rows))
	for i := range rows {
		lines = append(lines, rows[i].toEntity())
	}
	return lines, nil
}

// ListLinesByName fetches the persisted lines of one recipe group.
func (r *RecipeRepository) ListLinesByName(ctx context.Context, name string) ([]entity.RecipeLine, error) {
	var rows []recipeLineRow
	err := r.DB.WithContext(ctx).
		Table("recipes").
		Select("recipes.id, recipes.name, recipes.recipe_type_id, recipes.ingredient_id, recipes.quantity_base, recipes.unit, ingredients.name AS ingredient_name").
		Joins("LEFT JOIN ingredients ON ingredients.id = recipes.ingredient_id").
		Where("recipes.name = ?", name).
		Order("recipes.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	lines := make([]entity.RecipeLine, 0, len(rows))
	for i := range rows {
		lines = append(lines, rows[i].toEntity())
	}
	return lines, nil
}

// DistinctNames returns all distinct recipe names ordered alphabetically.
func (r *RecipeRepository) DistinctNames(ctx context.Context) ([]string, error) {
	var names []string
	err := r.DB.WithContext(ctx).
		Model(&model.RecipeLine{}).
		Distinct("name").
		Order("name").
		Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

// DeleteLinesByIDs issues one bulk delete for the given line ids.
func (r *RecipeRepository) DeleteLinesByIDs(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).Delete(&model.RecipeLine{}, ids).Error
}

// UpdateLine rewrites the payload columns of one persisted line. The id
// keys the update and is never part of the written columns.
func (r *RecipeRepository) UpdateLine(ctx context.Context, id uint, payload service.LinePayload) error {
	return r.DB.WithContext(ctx).
		Model(&model.RecipeLine{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":           payload.Name,
			"recipe_type_id": payload.RecipeTypeID,
			"ingredient_id":  payload.IngredientID,
			"quantity_base":  payload.QuantityBase,
			"unit":           payload.Unit,
		}).Error
}

// InsertLines issues one bulk insert for new lines.
func (r *RecipeRepository) InsertLines(ctx context.Context, payloads []service.LinePayload) error {
	if len(payloads) == 0 {
		return nil
	}
	lineModels := make([]model.RecipeLine, 0, len(payloads))
	for _, p := range payloads {
		lineModels = append(lineModels, model.RecipeLine{
			Name:         p.Name,
			RecipeTypeID: p.RecipeTypeID,
			IngredientID: p.IngredientID,
			QuantityBase: p.QuantityBase,
			Unit:         p.Unit,
		})
	}
	return r.DB.WithContext(ctx).Create(&lineModels).Error
}

// CountDistinctNames counts recipes, not lines.
func (r *RecipeRepository) CountDistinctNames(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.RecipeLine{}).
		Distinct("name").
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
