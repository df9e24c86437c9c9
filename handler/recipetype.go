package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kitchenops/controller"
)

type RecipeTypeHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type recipeTypeHandler struct {
	recipeTypeController controller.RecipeTypeController
}

func NewRecipeTypeHandler(recipeTypeController controller.RecipeTypeController) RecipeTypeHandler {
	return &recipeTypeHandler{
		recipeTypeController: recipeTypeController,
	}
}

// List returns all recipe types ordered by name.
func (h *recipeTypeHandler) List(c *gin.Context) {
	recipeTypes, err := h.recipeTypeController.ListRecipeTypes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe_types": recipeTypes})
}

// Create adds a new recipe type.
func (h *recipeTypeHandler) Create(c *gin.Context) {
	var req nameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipeType, err := h.recipeTypeController.CreateRecipeType(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"recipe_type": recipeType})
}

// Update renames a recipe type.
func (h *recipeTypeHandler) Update(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req nameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.recipeTypeController.UpdateRecipeType(c.Request.Context(), id, req.Name); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recipe type updated"})
}

// Delete removes a recipe type.
func (h *recipeTypeHandler) Delete(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.recipeTypeController.DeleteRecipeType(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recipe type deleted"})
}
