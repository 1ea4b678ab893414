package rest

import (
	"errors"

	"github.com/Gunvolt24/restaurant_svc/internal/domain"
)

type coordinateDTO struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}

func (c coordinateDTO) toDomain() domain.Coordinate {
	return domain.Coordinate{Latitude: *c.Latitude, Longitude: *c.Longitude}
}

type validateOrderRequest struct {
	RestaurantID     int64          `json:"restaurant_id" binding:"required,gt=0"`
	DishNames        []string       `json:"dish_names"`
	CustomerLocation *coordinateDTO `json:"customer_location" binding:"required"`
}

type orderDishDTO struct {
	ID       int64               `json:"id"`
	Name     string              `json:"name"`
	Price    int64               `json:"price"`
	Category domain.FoodCategory `json:"category"`
}

type validateOrderResponse struct {
	Success      bool                `json:"success"`
	Description  string              `json:"description,omitempty"`
	DeliveryZone domain.DeliveryZone `json:"delivery_zone"`
	Dishes       []orderDishDTO      `json:"dishes,omitempty"`
}

func toValidateOrderResponse(res domain.OrderValidationResult) validateOrderResponse {
	out := validateOrderResponse{
		Success:      res.Success,
		Description:  res.Description,
		DeliveryZone: res.DeliveryZone,
	}
	if !res.Success {
		return out
	}
	out.Dishes = make([]orderDishDTO, 0, len(res.Dishes))
	for _, d := range res.Dishes {
		out.Dishes = append(out.Dishes, orderDishDTO{ID: d.ID, Name: d.Name, Price: d.Price, Category: d.Category})
	}
	return out
}

type createRestaurantRequest struct {
	Name         string              `json:"name"`
	Address      string              `json:"address"`
	Schedule     domain.WorkSchedule `json:"schedule"`
	DeliveryZone domain.DeliveryZone `json:"delivery_zone"`
}

func (r createRestaurantRequest) toDomain() domain.NewRestaurant {
	return domain.NewRestaurant{
		Name:         r.Name,
		Address:      r.Address,
		Schedule:     r.Schedule,
		DeliveryZone: r.DeliveryZone,
	}
}

type updateRestaurantRequest struct {
	Name         *string              `json:"name"`
	Address      *string              `json:"address"`
	Schedule     *domain.WorkSchedule `json:"schedule"`
	DeliveryZone *domain.DeliveryZone `json:"delivery_zone"`
}

func (r updateRestaurantRequest) toDomain() domain.RestaurantPatch {
	return domain.RestaurantPatch{
		Name:         r.Name,
		Address:      r.Address,
		Schedule:     r.Schedule,
		DeliveryZone: r.DeliveryZone,
	}
}

type createDishRequest struct {
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Available *bool  `json:"available"`
	Category  string `json:"category"`
}

// toDomain - блюдо без явного available создается доступным.
func (r createDishRequest) toDomain(restaurantID int64) (domain.NewDish, error) {
	category, err := domain.ParseFoodCategory(r.Category)
	if err != nil {
		return domain.NewDish{}, err
	}
	available := true
	if r.Available != nil {
		available = *r.Available
	}
	return domain.NewDish{
		RestaurantID: restaurantID,
		Name:         r.Name,
		Price:        r.Price,
		Available:    available,
		Category:     category,
	}, nil
}

type updateDishRequest struct {
	Price     *int64  `json:"price"`
	Available *bool   `json:"available"`
	Category  *string `json:"category"`
}

func (r updateDishRequest) toDomain() (domain.DishPatch, error) {
	patch := domain.DishPatch{Price: r.Price, Available: r.Available}
	if r.Category != nil {
		category, err := domain.ParseFoodCategory(*r.Category)
		if err != nil {
			return domain.DishPatch{}, err
		}
		patch.Category = &category
	}
	if patch.Price == nil && patch.Available == nil && patch.Category == nil {
		return domain.DishPatch{}, errors.New("empty patch: nothing to update")
	}
	return patch, nil
}

type idResponse struct {
	ID int64 `json:"id"`
}
