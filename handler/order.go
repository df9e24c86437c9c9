package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"kitchenops/controller"
	"kitchenops/entity"
)

type OrderHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Export(c *gin.Context)
}

type orderHandler struct {
	orderController controller.OrderController
}

func NewOrderHandler(orderController controller.OrderController) OrderHandler {
	return &orderHandler{
		orderController: orderController,
	}
}

// List returns orders in the requested range grouped by day, newest first.
func (h *orderHandler) List(c *gin.Context) {
	from, to, err := dateRange(c)
	if err != nil {
		respondError(c, err)
		return
	}

	groups, err := h.orderController.ListGrouped(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"from":   from,
		"to":     to,
		"groups": groups,
	})
}

// Create schedules a new order, stamped with the caller's email.
func (h *orderHandler) Create(c *gin.Context) {
	var req entity.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orderController.CreateOrder(c.Request.Context(), &req, c.GetString("userEmail"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"order": order})
}

// Update rewrites an existing order.
func (h *orderHandler) Update(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req entity.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orderController.UpdateOrder(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// Delete removes an order.
func (h *orderHandler) Delete(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.orderController.DeleteOrder(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "order deleted"})
}

// Export streams the orders in range as a CSV download with the range baked
// into the filename.
func (h *orderHandler) Export(c *gin.Context) {
	from, to, err := dateRange(c)
	if err != nil {
		respondError(c, err)
		return
	}

	csv, err := h.orderController.ExportCSV(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("orders_%s_%s.csv", from, to)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}
