package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kitchenops/dateutil"
	"kitchenops/service"
)

func rangeContext(t *testing.T, query string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/orders"+query, nil)
	return c
}

func TestDateRangeExplicit(t *testing.T) {
	c := rangeContext(t, "?from=2025-01-10&to=2025-01-20")
	from, to, err := dateRange(c)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-10", from)
	assert.Equal(t, "2025-01-20", to)
}

func TestDateRangeInvertedSnaps(t *testing.T) {
	c := rangeContext(t, "?from=2025-01-10&to=2025-01-05")
	from, to, err := dateRange(c)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-10", from)
	assert.Equal(t, "2025-01-10", to)
}

func TestDateRangeDefaultsToWeek(t *testing.T) {
	c := rangeContext(t, "")
	from, to, err := dateRange(c)
	require.NoError(t, err)

	assert.Equal(t, dateutil.Today(), from)
	week, err := dateutil.AddDays(from, 6)
	require.NoError(t, err)
	assert.Equal(t, week, to)
}

func TestDateRangeBadDate(t *testing.T) {
	c := rangeContext(t, "?from=january&to=2025-01-20")
	_, _, err := dateRange(c)
	assert.ErrorIs(t, err, service.ErrBadDate)
}
