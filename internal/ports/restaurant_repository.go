package ports

import (
	"context"

	"github.com/Gunvolt24/restaurant_svc/internal/domain"
)

// RestaurantLookup - чтение снимка ресторана по id.
// Если ресторана нет, ошибка матчится с domain.ErrNotFound.
type RestaurantLookup interface {
	GetByID(ctx context.Context, id int64) (*domain.Restaurant, error)
}

// RestaurantRepository - хранилище ресторанов вместе с расписанием.
type RestaurantRepository interface {
	RestaurantLookup
	Create(ctx context.Context, r domain.NewRestaurant) (int64, error)
	Update(ctx context.Context, id int64, patch domain.RestaurantPatch) error
	Delete(ctx context.Context, id int64) error
}
