package ports

import (
	"context"

	"github.com/Gunvolt24/restaurant_svc/internal/domain"
)

// CatalogValidator - проверка входных данных административных операций.
type CatalogValidator interface {
	ValidateRestaurant(ctx context.Context, r *domain.NewRestaurant) error
	ValidateRestaurantPatch(ctx context.Context, p *domain.RestaurantPatch) error
	ValidateDish(ctx context.Context, d *domain.NewDish) error
	ValidateDishPatch(ctx context.Context, p *domain.DishPatch) error
}
