package service

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"kitchenops/entity"
)

var (
	ErrEmptyRecipeName = errors.New("recipe name cannot be empty")
	ErrNoRecipeLines   = errors.New("a recipe needs at least one ingredient line")
)

// LinePayload is the sanitized column set written for a recipe line. It
// never carries the line id: ids key updates and deletes but are not part
// of any write payload.
type LinePayload struct {
	Name         string  `json:"name"`
	RecipeTypeID *uint   `json:"recipe_type_id"`
	IngredientID uint    `json:"ingredient_id"`
	QuantityBase float64 `json:"quantity_base"`
	Unit         string  `json:"unit"`
}

// LineUpdate pairs a persisted line id with its new payload.
type LineUpdate struct {
	ID      uint
	Payload LinePayload
}

// ReconcilePlan is the minimal set of store operations that transforms the
// persisted lines of a recipe into the edited target set: one bulk delete,
// one update per surviving line, one bulk insert for new lines.
type ReconcilePlan struct {
	DeleteIDs []uint
	Updates   []LineUpdate
	Inserts   []LinePayload
}

// NormalizeQuantity parses a raw JSON quantity value. Clients send either a
// number or locale-formatted text, so a comma decimal separator is replaced
// with a period before parsing; anything that does not resolve to a finite
// number becomes 0.
func NormalizeQuantity(raw json.RawMessage) float64 {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return 0
	}
	if strings.HasPrefix(s, `"`) {
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0
		}
		s = strings.Replace(strings.TrimSpace(text), ",", ".", 1)
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

// BuildReconcilePlan diffs the persisted lines of a recipe against the
// edited set and returns the operations needed to reconcile them. It
// validates and sanitizes before anything touches the store: the recipe
// name must be non-empty after trimming and at least one line must remain.
// Every resulting payload carries the same name and recipe type, so a
// rename or type change propagates to the whole group.
func BuildReconcilePlan(original []entity.RecipeLine, req *entity.SaveRecipeRequest) (*ReconcilePlan, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrEmptyRecipeName
	}
	if len(req.Lines) == 0 {
		return nil, ErrNoRecipeLines
	}

	plan := &ReconcilePlan{}
	currentIDs := make(map[uint]struct{}, len(req.Lines))

	for _, line := range req.Lines {
		payload := LinePayload{
			Name:         name,
			RecipeTypeID: req.RecipeTypeID,
			IngredientID: line.IngredientID,
			QuantityBase: NormalizeQuantity(line.QuantityBase),
			Unit:         strings.TrimSpace(line.Unit),
		}
		if line.ID != nil {
			currentIDs[*line.ID] = struct{}{}
			plan.Updates = append(plan.Updates, LineUpdate{ID: *line.ID, Payload: payload})
		} else {
			plan.Inserts = append(plan.Inserts, payload)
		}
	}

	for _, line := range original {
		if _, kept := currentIDs[line.ID]; !kept {
			plan.DeleteIDs = append(plan.DeleteIDs, line.ID)
		}
	}

	return plan, nil
}
