package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kitchenops/controller"
	"kitchenops/entity"
)

type RecipeHandler interface {
	ListLines(c *gin.Context)
	ListGrouped(c *gin.Context)
	Names(c *gin.Context)
	Save(c *gin.Context)
	Delete(c *gin.Context)
}

type recipeHandler struct {
	recipeController controller.RecipeController
}

func NewRecipeHandler(recipeController controller.RecipeController) RecipeHandler {
	return &recipeHandler{
		recipeController: recipeController,
	}
}

// ListLines returns the flat line list with joined ingredient names.
func (h *recipeHandler) ListLines(c *gin.Context) {
	lines, err := h.recipeController.ListLines(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lines": lines})
}

// ListGrouped returns recipes as name groups, optionally filtered by the
// search query parameter.
func (h *recipeHandler) ListGrouped(c *gin.Context) {
	recipes, err := h.recipeController.ListGrouped(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// Names returns the distinct recipe names for the order form.
func (h *recipeHandler) Names(c *gin.Context) {
	names, err := h.recipeController.RecipeNames(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"names": names})
}

// Save reconciles the stored lines of the recipe named in the path with the
// submitted set. The POST route has no name parameter, so creating a new
// recipe reaches here with an empty original name and turns into pure
// inserts.
func (h *recipeHandler) Save(c *gin.Context) {
	var req entity.SaveRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lines, err := h.recipeController.SaveRecipe(c.Request.Context(), c.Param("name"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lines": lines})
}

// Delete removes every line of the recipe named in the path.
func (h *recipeHandler) Delete(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": controller.ErrNameRequired.Error()})
		return
	}

	if err := h.recipeController.DeleteRecipe(c.Request.Context(), name); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recipe deleted"})
}
