package validate

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Gunvolt24/restaurant_svc/internal/domain"
	"github.com/Gunvolt24/restaurant_svc/internal/ports"
)

// Проверка, что CatalogValidator удовлетворяет интерфейсу ports.CatalogValidator.
var _ ports.CatalogValidator = (*CatalogValidator)(nil)

// ErrInvalidInput - базовая (sentinel error) ошибка валидации входных данных.
var ErrInvalidInput = errors.New("invalid input")

const (
	maxNameLen    = 200
	maxAddressLen = 500
)

// CatalogValidator - валидация ресторанов и блюд перед записью в хранилище.
type CatalogValidator struct{}

// NewCatalogValidator - конструктор CatalogValidator.
// Возвращает ErrInvalidInput (с обернутой причиной) при любой проблеме.
func NewCatalogValidator() *CatalogValidator { return &CatalogValidator{} }

// ValidateCoordinate - широта в [-90, 90], долгота в [-180, 180], без NaN и бесконечностей.
func ValidateCoordinate(field string, c domain.Coordinate) error {
	if math.IsNaN(c.Latitude) || c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("%w: %s.latitude вне диапазона [-90, 90]", ErrInvalidInput, field)
	}
	if math.IsNaN(c.Longitude) || c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("%w: %s.longitude вне диапазона [-180, 180]", ErrInvalidInput, field)
	}
	return nil
}

// ValidateRestaurant - проверяет обязательные поля, расписание и зону доставки.
func (v *CatalogValidator) ValidateRestaurant(_ context.Context, r *domain.NewRestaurant) error {
	if r == nil {
		return fmt.Errorf("%w: ресторан не может быть nil", ErrInvalidInput)
	}
	if err := v.validateName(r.Name); err != nil {
		return err
	}
	if err := v.validateAddress(r.Address); err != nil {
		return err
	}
	if err := v.validateSchedule(&r.Schedule); err != nil {
		return err
	}
	return v.validateZone(r.DeliveryZone)
}

// ValidateRestaurantPatch - проверяет только переданные поля.
func (v *CatalogValidator) ValidateRestaurantPatch(_ context.Context, p *domain.RestaurantPatch) error {
	if p == nil {
		return fmt.Errorf("%w: patch не может быть nil", ErrInvalidInput)
	}
	if p.Name != nil {
		if err := v.validateName(*p.Name); err != nil {
			return err
		}
	}
	if p.Address != nil {
		if err := v.validateAddress(*p.Address); err != nil {
			return err
		}
	}
	if p.Schedule != nil {
		if err := v.validateSchedule(p.Schedule); err != nil {
			return err
		}
	}
	if p.DeliveryZone != nil {
		return v.validateZone(*p.DeliveryZone)
	}
	return nil
}

// ValidateDish - название, неотрицательная цена и категория из перечисления.
func (v *CatalogValidator) ValidateDish(_ context.Context, d *domain.NewDish) error {
	if d == nil {
		return fmt.Errorf("%w: блюдо не может быть nil", ErrInvalidInput)
	}
	if d.RestaurantID < 0 {
		return fmt.Errorf("%w: restaurant_id не может быть отрицательным", ErrInvalidInput)
	}
	if domain.NormalizeDishName(d.Name) == "" {
		return fmt.Errorf("%w: name обязателен", ErrInvalidInput)
	}
	if len(d.Name) > maxNameLen {
		return fmt.Errorf("%w: name длиннее %d байт", ErrInvalidInput, maxNameLen)
	}
	if d.Price < 0 {
		return fmt.Errorf("%w: price должен быть неотрицательным", ErrInvalidInput)
	}
	if !d.Category.Valid() {
		return fmt.Errorf("%w: неизвестная category %q", ErrInvalidInput, d.Category)
	}
	return nil
}

func (v *CatalogValidator) ValidateDishPatch(_ context.Context, p *domain.DishPatch) error {
	if p == nil {
		return fmt.Errorf("%w: patch не может быть nil", ErrInvalidInput)
	}
	if p.Price != nil && *p.Price < 0 {
		return fmt.Errorf("%w: price должен быть неотрицательным", ErrInvalidInput)
	}
	if p.Category != nil && !p.Category.Valid() {
		return fmt.Errorf("%w: неизвестная category %q", ErrInvalidInput, *p.Category)
	}
	return nil
}

func (v *CatalogValidator) validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name обязателен", ErrInvalidInput)
	}
	if len(name) > maxNameLen {
		return fmt.Errorf("%w: name длиннее %d байт", ErrInvalidInput, maxNameLen)
	}
	return nil
}

func (v *CatalogValidator) validateAddress(addr string) error {
	if strings.TrimSpace(addr) == "" {
		return fmt.Errorf("%w: address обязателен", ErrInvalidInput)
	}
	if len(addr) > maxAddressLen {
		return fmt.Errorf("%w: address длиннее %d байт", ErrInvalidInput, maxAddressLen)
	}
	return nil
}

// Интервалы, собранные в обход domain.NewTimeSlot, тоже должны лежать в пределах суток.
func (v *CatalogValidator) validateSchedule(w *domain.WorkSchedule) error {
	for d := time.Sunday; d <= time.Saturday; d++ {
		s := w.Slot(d)
		if s == nil {
			continue
		}
		if _, err := domain.NewTimeSlot(s.Open, s.Close); err != nil {
			return fmt.Errorf("%w: schedule.%s: %v", ErrInvalidInput, strings.ToLower(d.String()), err)
		}
	}
	return nil
}

func (v *CatalogValidator) validateZone(z domain.DeliveryZone) error {
	if math.IsNaN(z.RadiusKm) || math.IsInf(z.RadiusKm, 0) || z.RadiusKm < 0 {
		return fmt.Errorf("%w: delivery_zone.radius_km должен быть конечным и неотрицательным", ErrInvalidInput)
	}
	return ValidateCoordinate("delivery_zone.center", z.Center)
}
