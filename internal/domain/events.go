package domain

import "time"

// DishUpdatedEvent - уведомление об изменении цены, доступности или категории блюда.
type DishUpdatedEvent struct {
	EventID      string
	DishID       int64
	RestaurantID int64
	Price        int64
	Available    bool
	OccurredAt   time.Time
}
