package mapper

import (
	"kitchenops/entity"
	"kitchenops/model"
	"kitchenops/util"
)

// IngredientEntityToModel maps an Ingredient entity to the corresponding model.
func IngredientEntityToModel(e *entity.Ingredient) *model.Ingredient {
	return &model.Ingredient{
		ID:        e.ID,
		Name:      e.Name,
		CreatedAt: e.CreatedAt,
	}
}

// IngredientModelToEntity maps an Ingredient model to the corresponding entity.
func IngredientModelToEntity(m *model.Ingredient) *entity.Ingredient {
	return &entity.Ingredient{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
	}
}

// RecipeTypeEntityToModel maps a RecipeType entity to the corresponding model.
func RecipeTypeEntityToModel(e *entity.RecipeType) *model.RecipeType {
	return &model.RecipeType{
		ID:   e.ID,
		Name: e.Name,
	}
}

// RecipeTypeModelToEntity maps a RecipeType model to the corresponding entity.
func RecipeTypeModelToEntity(m *model.RecipeType) *entity.RecipeType {
	return &entity.RecipeType{
		ID:   m.ID,
		Name: m.Name,
	}
}

// RecipeLineModelToEntity maps a RecipeLine model to the corresponding entity.
// The joined ingredient name is attached by the repository, not here.
func RecipeLineModelToEntity(m *model.RecipeLine) *entity.RecipeLine {
	return &entity.RecipeLine{
		ID:           m.ID,
		Name:         m.Name,
		RecipeTypeID: m.RecipeTypeID,
		IngredientID: m.IngredientID,
		QuantityBase: m.QuantityBase,
		Unit:         m.Unit,
	}
}

// OrderItemEntityToModel maps an OrderItem entity to the corresponding model.
func OrderItemEntityToModel(e *entity.OrderItem) *model.OrderItem {
	return &model.OrderItem{
		ID:         e.ID,
		RecipeName: e.RecipeName,
		Quantity:   e.Quantity,
		OrderDate:  e.OrderDate,
		PrepDate:   e.PrepDate,
		DayName:    e.DayName,
		CreatedBy:  e.CreatedBy,
	}
}

// OrderItemModelToEntity maps an OrderItem model to the corresponding entity.
func OrderItemModelToEntity(m *model.OrderItem) *entity.OrderItem {
	return &entity.OrderItem{
		ID:         m.ID,
		RecipeName: m.RecipeName,
		Quantity:   m.Quantity,
		OrderDate:  m.OrderDate,
		PrepDate:   m.PrepDate,
		DayName:    m.DayName,
		CreatedBy:  m.CreatedBy,
	}
}

// SummaryRowModelToEntity maps a DailySummaryRow model to the corresponding entity.
func SummaryRowModelToEntity(m *model.DailySummaryRow) *entity.SummaryRow {
	return &entity.SummaryRow{
		OrderDate:     m.OrderDate,
		DayName:       m.DayName,
		Ingredient:    m.Ingredient,
		Unit:          m.Unit,
		TotalQuantity: m.TotalQuantity,
	}
}

// UserEntityToModel maps a User entity to the corresponding model, hashing
// the plain-text password on the way in.
func UserEntityToModel(e *entity.User) *model.User {
	hashedPassword, err := util.HashPassword(e.Password)
	if err != nil {
		return nil
	}
	return &model.User{
		ID:       e.ID,
		Name:     e.Name,
		Email:    e.Email,
		Password: hashedPassword,
	}
}

// UserModelToEntity maps a User model to the corresponding entity.
func UserModelToEntity(m *model.User) *entity.User {
	return &entity.User{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Password:  string(m.Password),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// PermissionModelToEntity maps a UserPermission model to the corresponding entity.
func PermissionModelToEntity(m *model.UserPermission) *entity.Permission {
	return &entity.Permission{
		ID:       m.ID,
		UserID:   m.UserID,
		Resource: m.Resource,
		Action:   m.Action,
	}
}
