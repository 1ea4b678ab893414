package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/restaurant_svc/pkg/validate"
)

// validateOrder - бизнес-отказ отдается как 200 с success=false.
func (h *Handler) validateOrder(c *gin.Context) {
	var req validateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	location := req.CustomerLocation.toDomain()
	if err := validate.ValidateCoordinate("customer_location", location); err != nil {
		badRequest(c, err)
		return
	}
	if req.DishNames == nil {
		req.DishNames = []string{}
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	res, err := h.orders.ValidateOrder(ctx, req.RestaurantID, req.DishNames, location)
	if err != nil {
		h.writeError(c, "validate order", err)
		return
	}
	c.JSON(http.StatusOK, toValidateOrderResponse(res))
}
