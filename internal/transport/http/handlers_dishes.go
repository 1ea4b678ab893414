package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/restaurant_svc/pkg/httpx"
)

func (h *Handler) createDish(c *gin.Context) {
	restaurantID, err := httpx.ParseID(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}
	var req createDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	dish, err := req.toDomain(restaurantID)
	if err != nil {
		badRequest(c, err)
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	id, err := h.dishes.Create(ctx, dish)
	if err != nil {
		h.writeError(c, "create dish", err)
		return
	}
	c.JSON(http.StatusCreated, idResponse{ID: id})
}

func (h *Handler) getDish(c *gin.Context) {
	id, err := httpx.ParseID(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	d, err := h.dishes.Get(ctx, id)
	if err != nil {
		h.writeError(c, "get dish", err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// updateDish - изменение цены, доступности или категории; публикует событие через сервис.
func (h *Handler) updateDish(c *gin.Context) {
	id, err := httpx.ParseID(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}
	var req updateDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	patch, err := req.toDomain()
	if err != nil {
		badRequest(c, err)
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	if err := h.dishes.Update(ctx, id, patch); err != nil {
		h.writeError(c, "update dish", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) deleteDish(c *gin.Context) {
	id, err := httpx.ParseID(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	if err := h.dishes.Delete(ctx, id); err != nil {
		h.writeError(c, "delete dish", err)
		return
	}
	c.Status(http.StatusNoContent)
}
