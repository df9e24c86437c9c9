package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"kitchenops/controller"
)

type SummaryHandler interface {
	List(c *gin.Context)
	Export(c *gin.Context)
}

type summaryHandler struct {
	summaryController controller.SummaryController
}

func NewSummaryHandler(summaryController controller.SummaryController) SummaryHandler {
	return &summaryHandler{
		summaryController: summaryController,
	}
}

// List returns the aggregated ingredient requirements in range, grouped by
// day.
func (h *summaryHandler) List(c *gin.Context) {
	from, to, err := dateRange(c)
	if err != nil {
		respondError(c, err)
		return
	}

	groups, err := h.summaryController.ListGrouped(c.Request.Context(), from, to)
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

// Export streams the summary rows in range as a CSV download.
func (h *summaryHandler) Export(c *gin.Context) {
	from, to, err := dateRange(c)
	if err != nil {
		respondError(c, err)
		return
	}

	csv, err := h.summaryController.ExportCSV(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("ingredient-summary-%s-to-%s.csv", from, to)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}
