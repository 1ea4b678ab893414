package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/restaurant_svc/internal/domain"
	"github.com/Gunvolt24/restaurant_svc/pkg/validate"
)

type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	Operation string `json:"operation,omitempty"`
	EntityID  int64  `json:"entity_id,omitempty"`
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}

// writeError - отображение ошибок приложения на HTTP-статусы.
// Для 5xx клиенту не уходит текст внутренней ошибки.
func (h *Handler) writeError(c *gin.Context, op string, err error) {
	var entity *domain.EntityError
	hasEntity := errors.As(err, &entity)

	switch {
	case errors.Is(err, validate.ErrInvalidInput):
		badRequest(c, err)
	case errors.Is(err, domain.ErrNotFound):
		resp := errorResponse{Error: "not found"}
		if hasEntity {
			resp.Code, resp.Operation, resp.EntityID = entity.Code, entity.Operation, entity.EntityID
		}
		c.JSON(http.StatusNotFound, resp)
	case errors.Is(err, domain.ErrConflict):
		resp := errorResponse{Error: "conflict"}
		if hasEntity {
			resp.Code, resp.Operation, resp.EntityID = entity.Code, entity.Operation, entity.EntityID
		}
		c.JSON(http.StatusConflict, resp)
	case errors.Is(err, context.DeadlineExceeded):
		h.log.Warnf(c.Request.Context(), "%s timed out: %v", op, err)
		c.JSON(http.StatusGatewayTimeout, errorResponse{Error: "request timed out"})
	default:
		h.log.Errorf(c.Request.Context(), "%s failed: %v", op, err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
