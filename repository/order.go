package repository

import (
	"context"

	"kitchenops/entity"
	"kitchenops/mapper"
	"kitchenops/model"

	"gorm.io/gorm"
)

// OrderRepository is a struct that holds the database connection.
type OrderRepository struct {
	DB *gorm.DB
}

// NewOrderRepository creates and returns a new OrderRepository.
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{
		DB: db,
	}
}

// ListOrdersByRange fetches orders whose group date (prep date, falling
// back to order date) lies in [from, to], newest first. Empty bounds are
// skipped.
func (r *OrderRepository) ListOrdersByRange(ctx context.Context, from, to string) ([]entity.OrderItem, error) {
	query := r.DB.WithContext(ctx).Model(&model.OrderItem{})
	if from != "" {
		query = query.Where("COALESCE(prep_date, order_date) >= ?", from)
	}
	if to != "" {
		query = query.Where("COALESCE(prep_date, order_date) <= ?", to)
	}

	var orderModels []model.OrderItem
	if err := query.Order("COALESCE(prep_date, order_date) DESC, id").Find(&orderModels).Error; err != nil {
		return nil, err
	}

	orders := make([]entity.OrderItem, 0, len(orderModels))
	for i := range orderModels {
		orders = append(orders, *mapper.OrderItemModelToEntity(&orderModels[i]))
	}
	return orders, nil
}

// GetOrderByID fetches an order from the database by ID.
func (r *OrderRepository) GetOrderByID(ctx context.Context, id uint) (*entity.OrderItem, error) {
	var orderModel model.OrderItem
	if err := r.DB.WithContext(ctx).First(&orderModel, id).Error; err != nil {
		return nil, err
	}
	return mapper.OrderItemModelToEntity(&orderModel), nil
}

// CreateOrder creates a new order in the database.
func (r *OrderRepository) CreateOrder(ctx context.Context, orderEntity *entity.OrderItem) error {
	orderModel := mapper.OrderItemEntityToModel(orderEntity)
	if err := r.DB.WithContext(ctx).Create(orderModel).Error; err != nil {
		return err
	}
	orderEntity.ID = orderModel.ID
	return nil
}

// UpdateOrder rewrites an existing order keyed by its ID.
func (r *OrderRepository) UpdateOrder(ctx context.Context, orderEntity *entity.OrderItem) error {
	orderModel := mapper.OrderItemEntityToModel(orderEntity)
	return r.DB.WithContext(ctx).
		Model(&model.OrderItem{}).
		Where("id = ?", orderModel.ID).
		Updates(map[string]interface{}{
			"recipe_name": orderModel.RecipeName,
			"quantity":    orderModel.Quantity,
			"order_date":  orderModel.OrderDate,
			"prep_date":   orderModel.PrepDate,
			"day_name":    orderModel.DayName,
		}).Error
}

// DeleteOrder deletes an order from the database by ID.
func (r *OrderRepository) DeleteOrder(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&model.OrderItem{}, id).Error
}

// CountOrders returns the total number of orders.
func (r *OrderRepository) CountOrders(ctx context.Context) (int64, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&model.OrderItem{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
