package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"kitchenops/controller"
	"kitchenops/dateutil"
	"kitchenops/service"
)

// respondError maps an error to its HTTP status and writes the JSON error
// body. Validation failures become 400, missing rows 404, bad credentials
// 401, anything else 500.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, controller.ErrNameRequired),
		errors.Is(err, controller.ErrEmailRequired),
		errors.Is(err, controller.ErrUnknownRole),
		errors.Is(err, controller.ErrUnknownGrant),
		errors.Is(err, service.ErrEmptyRecipeName),
		errors.Is(err, service.ErrNoRecipeLines),
		errors.Is(err, service.ErrOrderAfterPrep),
		errors.Is(err, service.ErrBadDate):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, gorm.ErrRecordNotFound):
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// parseUintParam reads a numeric path parameter.
func parseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + " " + strconv.Quote(raw)})
		return 0, false
	}
	return uint(id), true
}

// dateRange reads the from/to query parameters, filling a one-week window
// starting today when either is missing, and snaps an inverted edit back
// into order so from <= to always holds.
func dateRange(c *gin.Context) (string, string, error) {
	from := c.Query("from")
	to := c.Query("to")

	today := dateutil.Today()
	if from == "" {
		from = today
	}
	if to == "" {
		week, err := dateutil.AddDays(from, 6)
		if err != nil {
			return "", "", err
		}
		to = week
	}

	if !dateutil.Valid(from) || !dateutil.Valid(to) {
		return "", "", service.ErrBadDate
	}

	to = service.SetRangeTo(from, to)
	from = service.SetRangeFrom(to, from)
	return from, to, nil
}
