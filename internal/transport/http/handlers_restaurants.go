package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/restaurant_svc/pkg/httpx"
)

func (h *Handler) createRestaurant(c *gin.Context) {
	var req createRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	id, err := h.restaurants.Create(ctx, req.toDomain())
	if err != nil {
		h.writeError(c, "create restaurant", err)
		return
	}
	c.JSON(http.StatusCreated, idResponse{ID: id})
}

func (h *Handler) getRestaurant(c *gin.Context) {
	id, err := httpx.ParseID(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	r, err := h.restaurants.Get(ctx, id)
	if err != nil {
		h.writeError(c, "get restaurant", err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *Handler) updateRestaurant(c *gin.Context) {
	id, err := httpx.ParseID(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}
	var req updateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	if err := h.restaurants.Update(ctx, id, req.toDomain()); err != nil {
		h.writeError(c, "update restaurant", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) deleteRestaurant(c *gin.Context) {
	id, err := httpx.ParseID(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	if err := h.restaurants.Delete(ctx, id); err != nil {
		h.writeError(c, "delete restaurant", err)
		return
	}
	c.Status(http.StatusNoContent)
}
