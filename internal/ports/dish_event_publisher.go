package ports

import (
	"context"

	"github.com/Gunvolt24/restaurant_svc/internal/domain"
)

type DishEventPublisher interface {
	PublishDishUpdated(ctx context.Context, ev domain.DishUpdatedEvent) error
	Close() error
}
