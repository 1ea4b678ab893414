package ports

import (
	"context"

	"github.com/Gunvolt24/restaurant_svc/internal/domain"
)

// DishCatalog - поиск блюд ресторана по нормализованным названиям.
// Возвращает только найденные блюда; сравнение на стороне хранилища выполняется
// по тем же правилам, что и domain.NormalizeDishName.
type DishCatalog interface {
	FindByNormalizedNames(ctx context.Context, restaurantID int64, names []string) ([]domain.Dish, error)
}

type DishRepository interface {
	DishCatalog
	GetByID(ctx context.Context, id int64) (*domain.Dish, error)
	Create(ctx context.Context, d domain.NewDish) (int64, error)
	Update(ctx context.Context, id int64, patch domain.DishPatch) error
	Delete(ctx context.Context, id int64) error
}
