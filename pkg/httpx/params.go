package httpx

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseID - положительный int64 из параметра пути (например, :id).
func ParseID(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive integer", name, raw)
	}
	return id, nil
}
