package ports

import (
	"context"

	"github.com/Gunvolt24/restaurant_svc/internal/domain"
)

// OrderValidator - проверка заказа: бизнес-отказы в результате, инфраструктурные сбои в error.
type OrderValidator interface {
	ValidateOrder(
		ctx context.Context,
		restaurantID int64,
		dishNames []string,
		location domain.Coordinate,
	) (domain.OrderValidationResult, error)
}

// RestaurantManager - административные операции с ресторанами.
type RestaurantManager interface {
	Get(ctx context.Context, id int64) (*domain.Restaurant, error)
	Create(ctx context.Context, r domain.NewRestaurant) (int64, error)
	Update(ctx context.Context, id int64, patch domain.RestaurantPatch) error
	Delete(ctx context.Context, id int64) error
}

// DishManager - административные операции с блюдами.
type DishManager interface {
	Get(ctx context.Context, id int64) (*domain.Dish, error)
	Create(ctx context.Context, d domain.NewDish) (int64, error)
	Update(ctx context.Context, id int64, patch domain.DishPatch) error
	Delete(ctx context.Context, id int64) error
}
