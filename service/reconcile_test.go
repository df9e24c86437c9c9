package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kitchenops/entity"
)

func uintPtr(v uint) *uint { return &v }

func TestNormalizeQuantity(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"plain number", `2.5`, 2.5},
		{"integer", `4`, 4},
		{"numeric string", `"2.5"`, 2.5},
		{"comma decimal string", `"2,5"`, 2.5},
		{"whitespace string", `" 3,25 "`, 3.25},
		{"not a number", `"abc"`, 0},
		{"empty string", `""`, 0},
		{"null", `null`, 0},
		{"missing", ``, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeQuantity(json.RawMessage(tt.raw)))
		})
	}
}

func TestBuildReconcilePlanValidation(t *testing.T) {
	t.Run("blank name", func(t *testing.T) {
		_, err := BuildReconcilePlan(nil, &entity.SaveRecipeRequest{
			Name:  "   ",
			Lines: []entity.RecipeLineInput{{IngredientID: 1}},
		})
		assert.ErrorIs(t, err, ErrEmptyRecipeName)
	})

	t.Run("no lines", func(t *testing.T) {
		_, err := BuildReconcilePlan(nil, &entity.SaveRecipeRequest{Name: "Marinara"})
		assert.ErrorIs(t, err, ErrNoRecipeLines)
	})
}

func TestBuildReconcilePlanDiff(t *testing.T) {
	original := []entity.RecipeLine{
		{ID: 1, Name: "Marinara", IngredientID: 10, QuantityBase: 1, Unit: "kg"},
		{ID: 2, Name: "Marinara", IngredientID: 11, QuantityBase: 0.5, Unit: "l"},
	}
	req := &entity.SaveRecipeRequest{
		Name:         " Marinara ",
		RecipeTypeID: uintPtr(3),
		Lines: []entity.RecipeLineInput{
			{ID: uintPtr(1), IngredientID: 10, QuantityBase: json.RawMessage(`"1,5"`), Unit: " kg "},
			{IngredientID: 12, QuantityBase: json.RawMessage(`2`), Unit: "pcs"},
		},
	}

	plan, err := BuildReconcilePlan(original, req)
	require.NoError(t, err)

	assert.Equal(t, []uint{2}, plan.DeleteIDs)

	require.Len(t, plan.Updates, 1)
	assert.Equal(t, uint(1), plan.Updates[0].ID)
	assert.Equal(t, LinePayload{
		Name:         "Marinara",
		RecipeTypeID: uintPtr(3),
		IngredientID: 10,
		QuantityBase: 1.5,
		Unit:         "kg",
	}, plan.Updates[0].Payload)

	require.Len(t, plan.Inserts, 1)
	assert.Equal(t, LinePayload{
		Name:         "Marinara",
		RecipeTypeID: uintPtr(3),
		IngredientID: 12,
		QuantityBase: 2,
		Unit:         "pcs",
	}, plan.Inserts[0])
}

func TestBuildReconcilePlanNewRecipe(t *testing.T) {
	req := &entity.SaveRecipeRequest{
		Name: "Pesto",
		Lines: []entity.RecipeLineInput{
			{IngredientID: 5, QuantityBase: json.RawMessage(`0.2`), Unit: "kg"},
			{IngredientID: 6, QuantityBase: json.RawMessage(`0.1`), Unit: "l"},
		},
	}

	plan, err := BuildReconcilePlan(nil, req)
	require.NoError(t, err)

	assert.Empty(t, plan.DeleteIDs)
	assert.Empty(t, plan.Updates)
	assert.Len(t, plan.Inserts, 2)
	for _, payload := range plan.Inserts {
		assert.Equal(t, "Pesto", payload.Name)
	}
}

func TestBuildReconcilePlanDropAll(t *testing.T) {
	// Keeping only new lines deletes every original id.
	original := []entity.RecipeLine{{ID: 7}, {ID: 8}}
	req := &entity.SaveRecipeRequest{
		Name: "Aioli",
		Lines: []entity.RecipeLineInput{
			{IngredientID: 9, QuantityBase: json.RawMessage(`1`), Unit: "kg"},
		},
	}

	plan, err := BuildReconcilePlan(original, req)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{7, 8}, plan.DeleteIDs)
	assert.Empty(t, plan.Updates)
	assert.Len(t, plan.Inserts, 1)
}
