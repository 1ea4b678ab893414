package httpx

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/restaurant_svc/internal/ports"
)

// RequestLogger - access-лог; request_id и trace/span добавляет сам логгер из контекста.
// Служебные маршруты из skip не логируются.
func RequestLogger(log ports.Logger, skip ...string) gin.HandlerFunc {
	skipped := make(map[string]struct{}, len(skip))
	for _, p := range skip {
		skipped[p] = struct{}{}
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if _, ok := skipped[path]; ok {
			return
		}
		if path == "" {
			path = c.Request.URL.Path
		}

		status := c.Writer.Status()
		ctx := c.Request.Context()
		format := "request method=%s path=%s status=%d ip=%s duration=%s size=%d"
		args := []any{c.Request.Method, path, status, c.ClientIP(), time.Since(start), c.Writer.Size()}

		if status >= 500 {
			log.Errorf(ctx, format, args...)
			return
		}
		log.Infof(ctx, format, args...)
	}
}
