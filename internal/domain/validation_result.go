package domain

// Тексты бизнес-отказов. Отдаются клиенту как есть.
const (
	MsgNoDishes             = "Order has no dishes."
	MsgRestaurantClosed     = "Restaurant is closed."
	MsgDeliveryUnavailable  = "Delivery is not available for this location."
	MsgDishesMissingPrefix  = "Some dishes do not exist for this restaurant: "
	MsgDishesUnavailablePfx = "Some dishes are not available: "
)

// OrderValidationResult - итог проверки заказа.
// DeliveryZone заполнена всегда; Dishes - только при успехе, в порядке и кратности запроса.
type OrderValidationResult struct {
	Success      bool
	Description  string
	DeliveryZone DeliveryZone
	Dishes       []Dish
}

// ValidationSucceeded - успешный результат.
func ValidationSucceeded(zone DeliveryZone, dishes []Dish) OrderValidationResult {
	return OrderValidationResult{Success: true, DeliveryZone: zone, Dishes: dishes}
}

// ValidationFailed - бизнес-отказ с описанием причины.
func ValidationFailed(zone DeliveryZone, description string) OrderValidationResult {
	return OrderValidationResult{Description: description, DeliveryZone: zone, Dishes: []Dish{}}
}
