package httpx

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseIDParam - читает целочисленный path-параметр; (0, false) при мусоре.
func ParseIDParam(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
