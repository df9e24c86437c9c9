package entity

import (
	"encoding/json"
	"time"
)

// Ingredient is a raw ingredient that recipe lines reference.
type Ingredient struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// RecipeType categorizes recipes (sauces, dressings, ...).
type RecipeType struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// RecipeLine is one ingredient line of a recipe. A recipe is not stored as
// its own row: it is the set of lines sharing the same Name.
type RecipeLine struct {
	ID             uint    `json:"id"`
	Name           string  `json:"name"`
	RecipeTypeID   *uint   `json:"recipe_type_id"`
	IngredientID   uint    `json:"ingredient_id"`
	QuantityBase   float64 `json:"quantity_base"`
	Unit           string  `json:"unit"`
	IngredientName string  `json:"ingredient_name,omitempty"`
}

// GroupedRecipe is the derived projection of all lines sharing one name.
type GroupedRecipe struct {
	Name           string       `json:"name"`
	RecipeTypeID   *uint        `json:"recipe_type_id"`
	RecipeTypeName string       `json:"recipe_type_name,omitempty"`
	Lines          []RecipeLine `json:"lines"`
}

// OrderItem schedules a recipe for preparation on a given day.
// DayName is always derived from PrepDate (or OrderDate when PrepDate is
// absent); it is never edited independently.
type OrderItem struct {
	ID         uint    `json:"id"`
	RecipeName string  `json:"recipe_name"`
	Quantity   float64 `json:"quantity"`
	OrderDate  string  `json:"order_date"`
	PrepDate   *string `json:"prep_date"`
	DayName    string  `json:"day_name"`
	CreatedBy  *string `json:"created_by"`
}

// GroupDate returns the date an order is grouped and day-named by.
func (o OrderItem) GroupDate() string {
	if o.PrepDate != nil && *o.PrepDate != "" {
		return *o.PrepDate
	}
	return o.OrderDate
}

// SummaryRow is one row of the daily ingredient requirement view. It is
// aggregated by the database, never computed here.
type SummaryRow struct {
	OrderDate     string  `json:"order_date"`
	DayName       string  `json:"day_name"`
	Ingredient    string  `json:"ingredient"`
	Unit          string  `json:"unit"`
	TotalQuantity float64 `json:"total_quantity"`
}

// OrderGroup is one day's worth of orders, keyed and headed by the group
// date.
type OrderGroup struct {
	Date    string      `json:"date"`
	Heading string      `json:"heading"`
	Items   []OrderItem `json:"items"`
}

// SummaryGroup is one day's worth of summary rows.
type SummaryGroup struct {
	Date    string       `json:"date"`
	Heading string       `json:"heading"`
	Items   []SummaryRow `json:"items"`
}

// User represents an application user.
type User struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserRole pairs a user with their role plus the email shown on the
// permissions screen.
type UserRole struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	Email  string `json:"email,omitempty"`
}

// Permission is one explicitly granted (resource, action) capability.
type Permission struct {
	ID       uint   `json:"id"`
	UserID   uint   `json:"user_id"`
	Resource string `json:"resource"`
	Action   string `json:"action"`
}

// Stats holds the dashboard counters. Recipes counts distinct names, not
// lines.
type Stats struct {
	Ingredients int64 `json:"ingredients"`
	Recipes     int64 `json:"recipes"`
	RecipeTypes int64 `json:"recipe_types"`
	Orders      int64 `json:"orders"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RecipeLineInput is one edited line in a save request. ID is nil for lines
// not yet persisted. QuantityBase is kept raw because clients send it either
// as a number or as locale-formatted text ("2,5").
type RecipeLineInput struct {
	ID           *uint           `json:"id"`
	IngredientID uint            `json:"ingredient_id"`
	QuantityBase json.RawMessage `json:"quantity_base"`
	Unit         string          `json:"unit"`
}

// SaveRecipeRequest carries the full edited state of one recipe group.
type SaveRecipeRequest struct {
	Name         string            `json:"name"`
	RecipeTypeID *uint             `json:"recipe_type_id"`
	Lines        []RecipeLineInput `json:"lines"`
}

// OrderRequest is the create/update payload for an order. DayName is not
// accepted from the client; it is recomputed on every write.
type OrderRequest struct {
	RecipeName string  `json:"recipe_name" binding:"required"`
	Quantity   float64 `json:"quantity"`
	OrderDate  string  `json:"order_date" binding:"required"`
	PrepDate   string  `json:"prep_date"`
}

type RoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type GrantRequest struct {
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

// MarshalJSON hides the password field when a User is serialized. The
// shadowing field must carry a real JSON name to win the promotion conflict
// against the embedded one; omitempty then drops it from the output.
func (u User) MarshalJSON() ([]byte, error) {
	type Alias User
	return json.Marshal(&struct {
		*Alias
		Password string `json:"password,omitempty"`
	}{
		Alias: (*Alias)(&u),
	})
}
