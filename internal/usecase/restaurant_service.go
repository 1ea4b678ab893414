package usecase

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/restaurant_svc/internal/domain"
	"github.com/Gunvolt24/restaurant_svc/internal/ports"
)

// RestaurantService - администрирование ресторанов (без знаний о транспорте).
type RestaurantService struct {
	repo      ports.RestaurantRepository // хранилище ресторанов и расписаний
	cache     ports.RestaurantCache      // кэш снимков, сбрасывается после изменений
	log       ports.Logger
	validator ports.CatalogValidator
}

var _ ports.RestaurantManager = (*RestaurantService)(nil)

// NewRestaurantService - DI-конструктор. cache может быть nil.
func NewRestaurantService(
	repo ports.RestaurantRepository,
	cache ports.RestaurantCache,
	log ports.Logger,
	validator ports.CatalogValidator,
) *RestaurantService {
	return &RestaurantService{repo: repo, cache: cache, log: log, validator: validator}
}

// Get - ресторан по id; читает хранилище напрямую, минуя кэш.
func (s *RestaurantService) Get(ctx context.Context, id int64) (*domain.Restaurant, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Create - проверить данные и сохранить ресторан вместе с расписанием.
func (s *RestaurantService) Create(ctx context.Context, r domain.NewRestaurant) (int64, error) {
	if err := s.validator.ValidateRestaurant(ctx, &r); err != nil {
		s.log.Warnf(ctx, "restaurant validation failed err=%v", err)
		return 0, fmt.Errorf("validation failed: %w", err)
	}

	id, err := s.repo.Create(ctx, r)
	if err != nil {
		s.log.Errorf(ctx, "repo.Create restaurant failed err=%v", err)
		return 0, fmt.Errorf("failed to create restaurant: %w", err)
	}

	s.log.Infof(ctx, "restaurant created id=%d", id)
	return id, nil
}

// Update - частичное обновление; расписание, если передано, заменяется целиком.
func (s *RestaurantService) Update(ctx context.Context, id int64, patch domain.RestaurantPatch) error {
	if err := s.validator.ValidateRestaurantPatch(ctx, &patch); err != nil {
		s.log.Warnf(ctx, "restaurant patch validation failed id=%d err=%v", id, err)
		return fmt.Errorf("validation failed: %w", err)
	}

	if err := s.repo.Update(ctx, id, patch); err != nil {
		s.log.Errorf(ctx, "repo.Update restaurant failed id=%d err=%v", id, err)
		return fmt.Errorf("failed to update restaurant: %w", err)
	}

	s.invalidate(ctx, id)
	s.log.Infof(ctx, "restaurant updated id=%d", id)
	return nil
}

// Delete - удалить ресторан и его расписание. Блюда должны быть удалены заранее.
func (s *RestaurantService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Errorf(ctx, "repo.Delete restaurant failed id=%d err=%v", id, err)
		return fmt.Errorf("failed to delete restaurant: %w", err)
	}

	s.invalidate(ctx, id)
	s.log.Infof(ctx, "restaurant deleted id=%d", id)
	return nil
}

func (s *RestaurantService) invalidate(ctx context.Context, id int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.log.Warnf(ctx, "cache.Invalidate failed id=%d err=%v", id, err)
	}
}
