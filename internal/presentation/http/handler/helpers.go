package handler

import (
	"time"

	"github.com/gin-gonic/gin"
)

// parseDateQuery parses an optional YYYY-MM-DD query parameter. The bool
// result reports whether the value was present but malformed.
func parseDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, false
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, true
	}
	return &t, false
}
