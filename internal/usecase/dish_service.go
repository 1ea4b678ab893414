package usecase

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/restaurant_svc/internal/domain"
	"github.com/Gunvolt24/restaurant_svc/internal/ports"
	"github.com/google/uuid"
	"github.com/zoobzio/clockz"
)

// DishService - администрирование меню. После изменения блюда публикует событие DishUpdated.
type DishService struct {
	repo      ports.DishRepository
	events    ports.DishEventPublisher
	log       ports.Logger
	validator ports.CatalogValidator
	clock     clockz.Clock
}

var _ ports.DishManager = (*DishService)(nil)

// NewDishService - DI-конструктор. events может быть nil (публикация отключена).
func NewDishService(
	repo ports.DishRepository,
	events ports.DishEventPublisher,
	log ports.Logger,
	validator ports.CatalogValidator,
	clock clockz.Clock,
) *DishService {
	if clock == nil {
		clock = clockz.RealClock
	}
	return &DishService{repo: repo, events: events, log: log, validator: validator, clock: clock}
}

func (s *DishService) Get(ctx context.Context, id int64) (*domain.Dish, error) {
	return s.repo.GetByID(ctx, id)
}

// Create - добавить блюдо в меню ресторана.
func (s *DishService) Create(ctx context.Context, d domain.NewDish) (int64, error) {
	if err := s.validator.ValidateDish(ctx, &d); err != nil {
		s.log.Warnf(ctx, "dish validation failed restaurant_id=%d err=%v", d.RestaurantID, err)
		return 0, fmt.Errorf("validation failed: %w", err)
	}

	id, err := s.repo.Create(ctx, d)
	if err != nil {
		s.log.Errorf(ctx, "repo.Create dish failed restaurant_id=%d err=%v", d.RestaurantID, err)
		return 0, fmt.Errorf("failed to create dish: %w", err)
	}

	s.log.Infof(ctx, "dish created id=%d restaurant_id=%d", id, d.RestaurantID)
	return id, nil
}

// Update - изменить цену, доступность или категорию.
// Шаги:
//  1. проверка патча;
//  2. обновление в БД;
//  3. перечитывание блюда;
//  4. публикация события. Ошибка публикации возвращается, но изменение уже сохранено.
func (s *DishService) Update(ctx context.Context, id int64, patch domain.DishPatch) error {
	if err := s.validator.ValidateDishPatch(ctx, &patch); err != nil {
		s.log.Warnf(ctx, "dish patch validation failed id=%d err=%v", id, err)
		return fmt.Errorf("validation failed: %w", err)
	}

	if err := s.repo.Update(ctx, id, patch); err != nil {
		s.log.Errorf(ctx, "repo.Update dish failed id=%d err=%v", id, err)
		return fmt.Errorf("failed to update dish: %w", err)
	}

	if s.events == nil {
		s.log.Infof(ctx, "dish updated id=%d (events disabled)", id)
		return nil
	}

	dish, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Errorf(ctx, "repo.GetByID after update failed id=%d err=%v", id, err)
		return fmt.Errorf("failed to reload dish: %w", err)
	}

	ev := domain.DishUpdatedEvent{
		EventID:      uuid.NewString(),
		DishID:       dish.ID,
		RestaurantID: dish.RestaurantID,
		Price:        dish.Price,
		Available:    dish.Available,
		OccurredAt:   s.clock.Now().UTC(),
	}
	if err := s.events.PublishDishUpdated(ctx, ev); err != nil {
		s.log.Errorf(ctx, "publish dish updated failed id=%d event_id=%s err=%v", id, ev.EventID, err)
		return fmt.Errorf("failed to publish dish update: %w", err)
	}

	s.log.Infof(ctx, "dish updated id=%d event_id=%s", id, ev.EventID)
	return nil
}

func (s *DishService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Errorf(ctx, "repo.Delete dish failed id=%d err=%v", id, err)
		return fmt.Errorf("failed to delete dish: %w", err)
	}
	s.log.Infof(ctx, "dish deleted id=%d", id)
	return nil
}
