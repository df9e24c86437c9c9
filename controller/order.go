package controller

import (
	"context"
	"strconv"

	"kitchenops/dateutil"
	"kitchenops/entity"
	"kitchenops/repository"
	"kitchenops/service"
	"kitchenops/util"
)

type OrderController interface {
	ListGrouped(ctx context.Context, from, to string) ([]entity.OrderGroup, error)
	CreateOrder(ctx context.Context, req *entity.OrderRequest, createdBy string) (*entity.OrderItem, error)
	UpdateOrder(ctx context.Context, id uint, req *entity.OrderRequest) (*entity.OrderItem, error)
	DeleteOrder(ctx context.Context, id uint) error
	ExportCSV(ctx context.Context, from, to string) (string, error)
}

type orderController struct {
	orderRepository repository.OrderRepository
}

func NewOrderController(orderRepository *repository.OrderRepository) OrderController {
	return &orderController{
		orderRepository: *orderRepository,
	}
}

// ListGrouped fetches orders in the given group-date range and groups them
// by that date, newest group first, with a long-form heading per group.
func (c *orderController) ListGrouped(ctx context.Context, from, to string) ([]entity.OrderGroup, error) {
	orders, err := c.orderRepository.ListOrdersByRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	keys, byDate := service.GroupByDate(orders, entity.OrderItem.GroupDate)
	groups := make([]entity.OrderGroup, 0, len(keys))
	for _, date := range keys {
		heading, err := dateutil.Heading(date)
		if err != nil {
			heading = date
		}
		groups = append(groups, entity.OrderGroup{
			Date:    date,
			Heading: heading,
			Items:   byDate[date],
		})
	}
	return groups, nil
}

// buildOrder validates a submission and derives the day name from the
// group date. Nothing is written when validation fails.
func buildOrder(req *entity.OrderRequest, createdBy *string) (*entity.OrderItem, error) {
	if err := service.ValidateOrderDates(req.OrderDate, req.PrepDate); err != nil {
		return nil, err
	}

	order := entity.OrderItem{
		RecipeName: req.RecipeName,
		Quantity:   req.Quantity,
		OrderDate:  req.OrderDate,
		CreatedBy:  createdBy,
	}
	if req.PrepDate != "" {
		prep := req.PrepDate
		order.PrepDate = &prep
	}

	day, err := dateutil.WeekdayOf(order.GroupDate())
	if err != nil {
		return nil, err
	}
	order.DayName = day
	return &order, nil
}

// CreateOrder validates and stores a new order, stamping the creator.
func (c *orderController) CreateOrder(ctx context.Context, req *entity.OrderRequest, createdBy string) (*entity.OrderItem, error) {
	var creator *string
	if createdBy != "" {
		creator = &createdBy
	}
	order, err := buildOrder(req, creator)
	if err != nil {
		return nil, err
	}
	if err := c.orderRepository.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateOrder validates and rewrites an existing order. The original
// creator stamp is preserved.
func (c *orderController) UpdateOrder(ctx context.Context, id uint, req *entity.OrderRequest) (*entity.OrderItem, error) {
	existing, err := c.orderRepository.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}

	order, err := buildOrder(req, existing.CreatedBy)
	if err != nil {
		return nil, err
	}
	order.ID = id
	if err := c.orderRepository.UpdateOrder(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// DeleteOrder removes an order by ID.
func (c *orderController) DeleteOrder(ctx context.Context, id uint) error {
	return c.orderRepository.DeleteOrder(ctx, id)
}

// ExportCSV serializes the orders in range, one row per order keyed by its
// group date, with the weekday recomputed rather than trusting the stored
// day name.
func (c *orderController) ExportCSV(ctx context.Context, from, to string) (string, error) {
	orders, err := c.orderRepository.ListOrdersByRange(ctx, from, to)
	if err != nil {
		return "", err
	}

	rows := [][]string{{"Preparation Date", "Day", "Recipe", "Quantity", "Order Date"}}
	for _, o := range orders {
		keyDate := o.GroupDate()
		day, err := dateutil.WeekdayOf(keyDate)
		if err != nil {
			day = o.DayName
		}
		rows = append(rows, []string{
			keyDate,
			day,
			o.RecipeName,
			strconv.FormatFloat(o.Quantity, 'f', -1, 64),
			o.OrderDate,
		})
	}
	return util.MarshalCSV(rows), nil
}
