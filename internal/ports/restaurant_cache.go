package ports

import (
	"context"

	"github.com/Gunvolt24/restaurant_svc/internal/domain"
)

// RestaurantCache - кэш снимков ресторанов.
// Требования к реализации: потокобезопасность; возврат копий сущности.
type RestaurantCache interface {
	// Get - (restaurant, true) при попадании, (nil, false) при промахе или истечении TTL.
	Get(ctx context.Context, id int64) (*domain.Restaurant, bool)

	// Set - сохранить или обновить снимок.
	Set(ctx context.Context, r *domain.Restaurant) error

	// Invalidate - удалить запись; отсутствие записи не ошибка.
	Invalidate(ctx context.Context, id int64) error
}
