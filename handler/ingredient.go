package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kitchenops/controller"
)

type nameRequest struct {
	Name string `json:"name"`
}

type IngredientHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type ingredientHandler struct {
	ingredientController controller.IngredientController
}

func NewIngredientHandler(ingredientController controller.IngredientController) IngredientHandler {
	return &ingredientHandler{
		ingredientController: ingredientController,
	}
}

// List returns all ingredients ordered by name.
func (h *ingredientHandler) List(c *gin.Context) {
	ingredients, err := h.ingredientController.ListIngredients(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ingredients": ingredients})
}

// Create adds a new ingredient.
func (h *ingredientHandler) Create(c *gin.Context) {
	var req nameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ingredient, err := h.ingredientController.CreateIngredient(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ingredient": ingredient})
}

// Update renames an ingredient.
func (h *ingredientHandler) Update(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req nameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.ingredientController.UpdateIngredient(c.Request.Context(), id, req.Name); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ingredient updated"})
}

// Delete removes an ingredient.
func (h *ingredientHandler) Delete(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.ingredientController.DeleteIngredient(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ingredient deleted"})
}
