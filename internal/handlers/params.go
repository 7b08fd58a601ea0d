package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/SscSPs/portfel_tracker/internal/dto"
	"github.com/gin-gonic/gin"
)

// pathInt parses a numeric path parameter, answering 400 when it is not an integer.
func pathInt(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + name + " parameter"})
		return 0, false
	}
	return v, true
}

// pathYearMonth parses :year and :month. Range checks on month are left to the services.
func pathYearMonth(c *gin.Context) (int, int, bool) {
	year, ok := pathInt(c, "year")
	if !ok {
		return 0, 0, false
	}
	month, ok := pathInt(c, "month")
	if !ok {
		return 0, 0, false
	}
	return year, month, true
}

// queryDate parses a YYYY-MM-DD query parameter.
// An absent parameter yields the zero time and ok.
func queryDate(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, true
	}
	t, err := dto.ParseDate(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + name + ", expected YYYY-MM-DD"})
		return time.Time{}, false
	}
	return t, true
}

// timeNow is swapped in tests that depend on the current month.
var timeNow = time.Now
