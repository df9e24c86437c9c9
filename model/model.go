package model

import (
	"time"
)

// Ingredient is a raw ingredient referenced by recipe lines.
type Ingredient struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// RecipeType categorizes recipes.
type RecipeType struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255;not null" json:"name"`
}

// RecipeLine is one ingredient line of a recipe. The table keeps the
// historical name "recipes"; a recipe itself is the group of lines sharing
// the same Name.
type RecipeLine struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Name         string  `gorm:"size:255;not null;index" json:"name"`
	RecipeTypeID *uint   `gorm:"index" json:"recipe_type_id"`
	IngredientID uint    `gorm:"not null;index" json:"ingredient_id"`
	QuantityBase float64 `gorm:"not null" json:"quantity_base"`
	Unit         string  `gorm:"size:50;not null" json:"unit"`
}

func (RecipeLine) TableName() string { return "recipes" }

// OrderItem schedules a recipe for a day. Dates are plain YYYY-MM-DD
// strings so range filters and descending sort stay lexicographic.
type OrderItem struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	RecipeName string  `gorm:"size:255;not null;index" json:"recipe_name"`
	Quantity   float64 `gorm:"not null;default:1" json:"quantity"`
	OrderDate  string  `gorm:"size:10;not null;index" json:"order_date"`
	PrepDate   *string `gorm:"size:10;index" json:"prep_date"`
	DayName    string  `gorm:"size:10;not null" json:"day_name"`
	CreatedBy  *string `gorm:"size:255" json:"created_by"`
}

// User represents an application user.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255" json:"name"`
	Email     string    `gorm:"size:255;unique;not null" json:"email"`
	Password  []byte    `gorm:"type:bytea;not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// UserRole holds one role row per user.
type UserRole struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"not null;uniqueIndex" json:"user_id"`
	Role   string `gorm:"size:20;not null;default:'user'" json:"role"`
}

// UserPermission is one granted (resource, action) pair.
type UserPermission struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	UserID   uint   `gorm:"not null;index:idx_user_resource_action,unique" json:"user_id"`
	Resource string `gorm:"size:50;not null;index:idx_user_resource_action,unique" json:"resource"`
	Action   string `gorm:"size:20;not null;index:idx_user_resource_action,unique" json:"action"`
}

// DailySummaryRow maps the read-only aggregate view. It carries no primary
// key and is never written by the application.
type DailySummaryRow struct {
	OrderDate     string  `json:"order_date"`
	DayName       string  `json:"day_name"`
	Ingredient    string  `json:"ingredient"`
	Unit          string  `json:"unit"`
	TotalQuantity float64 `json:"total_quantity"`
}

func (DailySummaryRow) TableName() string { return "v_daily_ingredient_summary" }

// Relationships

// RecipeLine.RecipeTypeID references RecipeType.ID (nullable).
// RecipeLine.IngredientID references Ingredient.ID.
// OrderItem.RecipeName references RecipeLine.Name by convention only.
// UserRole.UserID and UserPermission.UserID reference User.ID.
